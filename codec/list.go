package codec

import (
	"fmt"
	"math"

	"github.com/xingshuo/slist/defines"
	"github.com/xingshuo/slist/interfaces"
	"github.com/xingshuo/slist/lib"
)

// Marshal encodes the values of l in order.
func Marshal[T comparable](l *lib.LinkedList[T], c interfaces.Codec) ([]byte, error) {
	vals := l.Values()
	args := make([]interface{}, len(vals))
	for i, v := range vals {
		args[i] = v
	}
	return c.Encode(args)
}

// Unmarshal decodes data into a fresh list. Decoded numbers are converted back
// to T when T is a numeric type.
func Unmarshal[T comparable](data []byte, c interfaces.Codec) (*lib.LinkedList[T], error) {
	args, err := c.Decode(data)
	if err != nil {
		return nil, err
	}
	l := lib.New[T]()
	for i, a := range args {
		v, err := convert[T](a)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		l.Append(v)
	}
	return l, nil
}

func convert[T comparable](a interface{}) (T, error) {
	var zero T
	if v, ok := a.(T); ok {
		return v, nil
	}
	f, ok := a.(float64)
	if !ok {
		return zero, fmt.Errorf("%w: %T into %T", defines.ErrUnsupportedType, a, zero)
	}
	if _, isFloat := any(zero).(float32); isFloat {
		if math.Abs(f) > math.MaxFloat32 {
			return zero, fmt.Errorf("%w: %v overflows float32", defines.ErrUnsupportedType, f)
		}
		return any(float32(f)).(T), nil
	}
	lo, hi, ok := intBounds(zero)
	if !ok {
		return zero, fmt.Errorf("%w: %T into %T", defines.ErrUnsupportedType, a, zero)
	}
	if f != math.Trunc(f) || f < lo || f >= hi {
		return zero, fmt.Errorf("%w: %v not representable as %T", defines.ErrUnsupportedType, f, zero)
	}
	var out interface{}
	switch any(zero).(type) {
	case int:
		out = int(f)
	case int8:
		out = int8(f)
	case int16:
		out = int16(f)
	case int32:
		out = int32(f)
	case int64:
		out = int64(f)
	case uint:
		out = uint(f)
	case uint8:
		out = uint8(f)
	case uint16:
		out = uint16(f)
	case uint32:
		out = uint32(f)
	case uint64:
		out = uint64(f)
	}
	return out.(T), nil
}

// 整数类型的取值区间[lo, hi), 上界都是2的幂, double可精确表示
func intBounds(v interface{}) (lo, hi float64, ok bool) {
	switch v.(type) {
	case int:
		return math.MinInt, -math.MinInt, true
	case int8:
		return math.MinInt8, -math.MinInt8, true
	case int16:
		return math.MinInt16, -math.MinInt16, true
	case int32:
		return math.MinInt32, -math.MinInt32, true
	case int64:
		return math.MinInt64, -math.MinInt64, true
	case uint:
		return 0, math.MaxUint + 1, true
	case uint8:
		return 0, math.MaxUint8 + 1, true
	case uint16:
		return 0, math.MaxUint16 + 1, true
	case uint32:
		return 0, math.MaxUint32 + 1, true
	case uint64:
		return 0, math.MaxUint64 + 1, true
	default:
		return 0, 0, false
	}
}
