package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/golang/protobuf/proto"
	structpb "github.com/golang/protobuf/ptypes/struct"

	"github.com/xingshuo/slist/defines"
	"github.com/xingshuo/slist/interfaces"
	"github.com/xingshuo/slist/log"
)

// 协议格式: 4字节包头长度 + pb(google.protobuf.ListValue)
func FillHeader(b []byte) []byte {
	bodyLen := len(b)
	data := make([]byte, bodyLen+defines.PackHeadLen)
	binary.BigEndian.PutUint32(data, uint32(bodyLen))
	copy(data[defines.PackHeadLen:], b)
	return data
}

// 校验包头并返回包体
func StripHeader(data []byte) ([]byte, error) {
	if len(data) < defines.PackHeadLen {
		return nil, defines.ErrShortPacket
	}
	bodyLen := binary.BigEndian.Uint32(data)
	body := data[defines.PackHeadLen:]
	if uint32(len(body)) != bodyLen {
		return nil, fmt.Errorf("%w: head says %d, got %d", defines.ErrShortPacket, bodyLen, len(body))
	}
	return body, nil
}

// PBCodec packs list values into a length-prefixed ListValue. Numbers travel
// as doubles, the way the well-known Value type carries them.
type PBCodec struct {
}

func (c *PBCodec) Encode(vals []interface{}) ([]byte, error) {
	lv := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(vals))}
	for _, v := range vals {
		pv, err := toValue(v)
		if err != nil {
			return nil, err
		}
		lv.Values = append(lv.Values, pv)
	}
	b, err := proto.Marshal(lv)
	if err != nil {
		log.Errorf("pb marshal err:%v.\n", err)
		return nil, err
	}
	return FillHeader(b), nil
}

func (c *PBCodec) Decode(data []byte) ([]interface{}, error) {
	body, err := StripHeader(data)
	if err != nil {
		return nil, err
	}
	lv := &structpb.ListValue{}
	if err := proto.Unmarshal(body, lv); err != nil {
		log.Errorf("pb unmarshal err:%v.\n", err)
		return nil, err
	}
	vals := make([]interface{}, 0, len(lv.Values))
	for _, pv := range lv.Values {
		switch k := pv.Kind.(type) {
		case *structpb.Value_NullValue:
			vals = append(vals, nil)
		case *structpb.Value_BoolValue:
			vals = append(vals, k.BoolValue)
		case *structpb.Value_NumberValue:
			vals = append(vals, k.NumberValue)
		case *structpb.Value_StringValue:
			vals = append(vals, k.StringValue)
		default:
			return nil, fmt.Errorf("%w: value kind %T", defines.ErrUnsupportedType, pv.Kind)
		}
	}
	return vals, nil
}

func toValue(v interface{}) (*structpb.Value, error) {
	switch x := v.(type) {
	case nil:
		return &structpb.Value{Kind: &structpb.Value_NullValue{}}, nil
	case bool:
		return &structpb.Value{Kind: &structpb.Value_BoolValue{BoolValue: x}}, nil
	case string:
		return &structpb.Value{Kind: &structpb.Value_StringValue{StringValue: x}}, nil
	case int:
		return integer(int64(x))
	case int8:
		return number(float64(x)), nil
	case int16:
		return number(float64(x)), nil
	case int32:
		return number(float64(x)), nil
	case int64:
		return integer(x)
	case uint:
		return unsigned(uint64(x))
	case uint8:
		return number(float64(x)), nil
	case uint16:
		return number(float64(x)), nil
	case uint32:
		return number(float64(x)), nil
	case uint64:
		return unsigned(x)
	case float32:
		return number(float64(x)), nil
	case float64:
		return number(x), nil
	default:
		return nil, fmt.Errorf("%w: %T", defines.ErrUnsupportedType, v)
	}
}

// double能精确表示的最大整数
const maxExactInt = 1 << 53

func integer(x int64) (*structpb.Value, error) {
	if x > maxExactInt || x < -maxExactInt {
		return nil, fmt.Errorf("%w: %d not exact as double", defines.ErrUnsupportedType, x)
	}
	return number(float64(x)), nil
}

func unsigned(x uint64) (*structpb.Value, error) {
	if x > maxExactInt {
		return nil, fmt.Errorf("%w: %d not exact as double", defines.ErrUnsupportedType, x)
	}
	return number(float64(x)), nil
}

func number(f float64) *structpb.Value {
	return &structpb.Value{Kind: &structpb.Value_NumberValue{NumberValue: f}}
}

// New returns the codec registered under name.
func New(name string) (interfaces.Codec, error) {
	switch name {
	case defines.CodecPB, "":
		return &PBCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", defines.ErrUnknownCodec, name)
	}
}
