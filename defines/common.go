package defines

const (
	CodecPB = "pb"
)

const (
	// 编码包头: 4字节大端序长度
	PackHeadLen = 4
)
