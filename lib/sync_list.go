package lib

import (
	"io"
	"sync"
)

// SyncList guards a whole LinkedList with one mutex. There is no per-node
// locking; every call holds the lock for its full traversal. Concat and Copy
// copy nodes instead of sharing them, so no chain is reachable from two locks.
type SyncList[T comparable] struct {
	mu   sync.Mutex
	list *LinkedList[T]
}

func NewSyncList[T comparable](vals ...T) *SyncList[T] {
	return &SyncList[T]{list: New(vals...)}
}

func (sl *SyncList[T]) IsEmpty() bool {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.list.IsEmpty()
}

func (sl *SyncList[T]) Push(v T) {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	sl.list.Push(v)
}

func (sl *SyncList[T]) Append(v T) {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	sl.list.Append(v)
}

func (sl *SyncList[T]) InsertAtIndex(index int, v T) error {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.list.InsertAtIndex(index, v)
}

func (sl *SyncList[T]) InsertAfter(anchor, v T) error {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.list.InsertAfter(anchor, v)
}

func (sl *SyncList[T]) InsertBefore(anchor, v T) error {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.list.InsertBefore(anchor, v)
}

func (sl *SyncList[T]) Size() int {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.list.Size()
}

func (sl *SyncList[T]) DeleteFirst() error {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.list.DeleteFirst()
}

func (sl *SyncList[T]) DeleteLast() error {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.list.DeleteLast()
}

func (sl *SyncList[T]) DeleteNode(v T) error {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.list.DeleteNode(v)
}

func (sl *SyncList[T]) DeleteAtIndex(index int) error {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.list.DeleteAtIndex(index)
}

func (sl *SyncList[T]) PeekFirst() (T, error) {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.list.PeekFirst()
}

func (sl *SyncList[T]) PeekLast() (T, error) {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.list.PeekLast()
}

func (sl *SyncList[T]) PeekAtIndex(index int) (T, error) {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.list.PeekAtIndex(index)
}

func (sl *SyncList[T]) Contains(v T) (bool, error) {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.list.Contains(v)
}

func (sl *SyncList[T]) ReverseList() error {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.list.ReverseList()
}

// Concat appends a copy of other's values. Unlike LinkedList.Concat the two
// lists never share nodes, so each mutex keeps guarding its own chain.
func (sl *SyncList[T]) Concat(other *SyncList[T]) {
	if other == nil {
		return
	}
	cp := other.Clone()
	sl.mu.Lock()
	defer sl.mu.Unlock()
	sl.list.Concat(cp)
}

// Copy replaces sl's contents with a copy of other's values.
func (sl *SyncList[T]) Copy(other *SyncList[T]) {
	cp := New[T]()
	if other != nil {
		cp = other.Clone()
	}
	sl.mu.Lock()
	defer sl.mu.Unlock()
	sl.list.Copy(cp)
}

func (sl *SyncList[T]) Clone() *LinkedList[T] {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.list.Clone()
}

// ForEach holds the lock while consumer runs; consumer must not call back
// into sl.
func (sl *SyncList[T]) ForEach(consumer Consumer[T]) {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	sl.list.ForEach(consumer)
}

func (sl *SyncList[T]) Values() []T {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.list.Values()
}

func (sl *SyncList[T]) String() string {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	return sl.list.String()
}

func (sl *SyncList[T]) DisplayList() {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	sl.list.DisplayList()
}

func (sl *SyncList[T]) Display(w io.Writer) {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	sl.list.Display(w)
}
