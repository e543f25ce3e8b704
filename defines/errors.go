package defines

import (
	"errors"
)

var (
	ErrEmptyList        = errors.New("EmptyList")
	ErrNegativeIndex    = errors.New("NegativeIndex")
	ErrIndexOutOfBounds = errors.New("IndexOutOfBounds")
	ErrNotFound         = errors.New("NotFound")

	ErrShortPacket     = errors.New("ShortPacket")
	ErrUnsupportedType = errors.New("UnsupportedType")
	ErrUnknownCodec    = errors.New("UnknownCodec")
)
