package config

// demo进程[静态配置]
type DemoConfig struct {
	LogFilename string   // log文件, 空字符串写入stderr
	LogLevel    int      // 详见log/defines.go
	Codec       string   // 列表编码方式, 目前只有"pb"
	Values      []string // demo中追加到列表的值
}

var (
	DemoConf = DemoConfig{
		Codec:  "pb",
		Values: []string{"1", "2", "3"},
	}
)
