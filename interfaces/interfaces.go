package interfaces

import (
	"io"
)

// List is the operation set shared by lib.LinkedList and lib.SyncList.
// Concat and Copy take the concrete type and are not part of it.
type List[T comparable] interface {
	IsEmpty() bool
	Push(v T)
	Append(v T)
	InsertAtIndex(index int, v T) error
	InsertAfter(anchor, v T) error
	InsertBefore(anchor, v T) error
	Size() int
	DeleteFirst() error
	DeleteLast() error
	DeleteNode(v T) error
	DeleteAtIndex(index int) error
	PeekFirst() (T, error)
	PeekLast() (T, error)
	PeekAtIndex(index int) (T, error)
	Contains(v T) (bool, error)
	ReverseList() error
	Values() []T
	DisplayList()
	Display(w io.Writer)
}

type Codec interface {
	Encode(vals []interface{}) ([]byte, error)
	Decode(data []byte) ([]interface{}, error)
}
