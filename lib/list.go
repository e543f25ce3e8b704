package lib

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xingshuo/slist/defines"
	"github.com/xingshuo/slist/log"
)

// 单链表, 只持有头节点, 长度不缓存

type listNode[T comparable] struct {
	val  T
	next *listNode[T]
}

// Consumer 遍历回调, 返回false时停止遍历
type Consumer[T comparable] func(i int, v T) bool

// LinkedList is a singly linked list holding only its head. Every operation
// walks from the head, so tail and index operations are linear.
//
// Concat and Copy link chains rather than duplicating nodes: after either call
// the two lists share nodes and a mutation through one is visible through the
// other. Use Clone when an independent copy is needed.
type LinkedList[T comparable] struct {
	head *listNode[T]
}

// New builds a list holding vals in order.
func New[T comparable](vals ...T) *LinkedList[T] {
	l := &LinkedList[T]{}
	var tail *listNode[T]
	for _, v := range vals {
		n := &listNode[T]{val: v}
		if tail == nil {
			l.head = n
		} else {
			tail.next = n
		}
		tail = n
	}
	return l
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

// Push prepends v.
func (l *LinkedList[T]) Push(v T) {
	l.head = &listNode[T]{val: v, next: l.head}
}

// Append adds v after the current tail.
func (l *LinkedList[T]) Append(v T) {
	n := &listNode[T]{val: v}
	if l.head == nil {
		l.head = n
		return
	}
	l.tail().next = n
}

// InsertAtIndex places v so that it becomes the element at index. Valid
// indexes are 0..Size().
func (l *LinkedList[T]) InsertAtIndex(index int, v T) error {
	if index < 0 {
		return fmt.Errorf("%w: %d", defines.ErrNegativeIndex, index)
	}
	if index == 0 {
		l.Push(v)
		return nil
	}
	prev := l.nodeAt(index - 1)
	if prev == nil {
		return fmt.Errorf("%w: insert at %d", defines.ErrIndexOutOfBounds, index)
	}
	prev.next = &listNode[T]{val: v, next: prev.next}
	return nil
}

// InsertAfter places v right after the first node equal to anchor.
func (l *LinkedList[T]) InsertAfter(anchor, v T) error {
	if l.head == nil {
		return defines.ErrEmptyList
	}
	n := l.head
	for n != nil && n.val != anchor {
		n = n.next
	}
	if n == nil {
		return defines.ErrNotFound
	}
	n.next = &listNode[T]{val: v, next: n.next}
	return nil
}

// InsertBefore places v right before the first node equal to anchor.
func (l *LinkedList[T]) InsertBefore(anchor, v T) error {
	if l.head == nil {
		return defines.ErrEmptyList
	}
	if l.head.val == anchor {
		l.Push(v)
		return nil
	}
	prev := l.findPrev(anchor)
	if prev == nil {
		return defines.ErrNotFound
	}
	prev.next = &listNode[T]{val: v, next: prev.next}
	return nil
}

// Size counts the nodes by walking the chain.
func (l *LinkedList[T]) Size() int {
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
	}
	return count
}

func (l *LinkedList[T]) DeleteFirst() error {
	if l.head == nil {
		return defines.ErrEmptyList
	}
	l.head = l.head.next
	return nil
}

func (l *LinkedList[T]) DeleteLast() error {
	if l.head == nil {
		return defines.ErrEmptyList
	}
	if l.head.next == nil {
		l.head = nil
		return nil
	}
	n := l.head
	for n.next.next != nil {
		n = n.next
	}
	n.next = nil
	return nil
}

// DeleteNode unlinks the first node equal to v.
func (l *LinkedList[T]) DeleteNode(v T) error {
	if l.head == nil {
		return defines.ErrEmptyList
	}
	if l.head.val == v {
		l.head = l.head.next
		return nil
	}
	prev := l.findPrev(v)
	if prev == nil {
		return defines.ErrNotFound
	}
	prev.next = prev.next.next
	return nil
}

func (l *LinkedList[T]) DeleteAtIndex(index int) error {
	if index < 0 {
		return fmt.Errorf("%w: %d", defines.ErrNegativeIndex, index)
	}
	if l.head == nil {
		return defines.ErrEmptyList
	}
	if index == 0 {
		l.head = l.head.next
		return nil
	}
	prev := l.nodeAt(index - 1)
	if prev == nil || prev.next == nil {
		return fmt.Errorf("%w: delete at %d", defines.ErrIndexOutOfBounds, index)
	}
	prev.next = prev.next.next
	return nil
}

func (l *LinkedList[T]) PeekFirst() (T, error) {
	if l.head == nil {
		var zero T
		return zero, defines.ErrEmptyList
	}
	return l.head.val, nil
}

func (l *LinkedList[T]) PeekLast() (T, error) {
	if l.head == nil {
		var zero T
		return zero, defines.ErrEmptyList
	}
	return l.tail().val, nil
}

func (l *LinkedList[T]) PeekAtIndex(index int) (T, error) {
	var zero T
	if index < 0 {
		return zero, fmt.Errorf("%w: %d", defines.ErrNegativeIndex, index)
	}
	if l.head == nil {
		return zero, defines.ErrEmptyList
	}
	n := l.nodeAt(index)
	if n == nil {
		return zero, fmt.Errorf("%w: peek at %d", defines.ErrIndexOutOfBounds, index)
	}
	return n.val, nil
}

// Contains reports whether some node equals v. An empty list is an error
// rather than a plain false.
func (l *LinkedList[T]) Contains(v T) (bool, error) {
	if l.head == nil {
		return false, defines.ErrEmptyList
	}
	for n := l.head; n != nil; n = n.next {
		if n.val == v {
			return true, nil
		}
	}
	return false, nil
}

// ReverseList redirects every link to its predecessor in place.
func (l *LinkedList[T]) ReverseList() error {
	if l.head == nil {
		return defines.ErrEmptyList
	}
	var prev *listNode[T]
	cur := l.head
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	l.head = prev
	return nil
}

// Concat links other's chain after l's tail. The chain is shared, not copied:
// other keeps its head and later changes to that chain show up in l too.
// Lists that already share their tail are left alone, since linking them
// would close a cycle.
func (l *LinkedList[T]) Concat(other *LinkedList[T]) {
	if other == nil || other.head == nil {
		return
	}
	if l.head == nil {
		l.head = other.head
		return
	}
	tail := l.tail()
	if tail == other.tail() {
		log.Warningf("concat skipped: lists already share tail node %v", tail.val)
		return
	}
	tail.next = other.head
}

// Copy makes l point at other's chain. Nodes are shared, not duplicated.
func (l *LinkedList[T]) Copy(other *LinkedList[T]) {
	if other == nil {
		l.head = nil
		return
	}
	l.head = other.head
}

// Clone returns a list with freshly allocated nodes holding the same values.
func (l *LinkedList[T]) Clone() *LinkedList[T] {
	return New(l.Values()...)
}

func (l *LinkedList[T]) ForEach(consumer Consumer[T]) {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if !consumer(i, n.val) {
			return
		}
		i++
	}
}

func (l *LinkedList[T]) Values() []T {
	vals := make([]T, 0)
	for n := l.head; n != nil; n = n.next {
		vals = append(vals, n.val)
	}
	return vals
}

func (l *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.val)
	}
	sb.WriteByte(']')
	return sb.String()
}

// DisplayList prints one value per line to stdout.
func (l *LinkedList[T]) DisplayList() {
	l.Display(os.Stdout)
}

func (l *LinkedList[T]) Display(w io.Writer) {
	for n := l.head; n != nil; n = n.next {
		if _, err := fmt.Fprintln(w, n.val); err != nil {
			log.Errorf("display list err:%v", err)
			return
		}
	}
}

func (l *LinkedList[T]) tail() *listNode[T] {
	n := l.head
	if n == nil {
		return nil
	}
	for n.next != nil {
		n = n.next
	}
	return n
}

// nil when the chain ends before index
func (l *LinkedList[T]) nodeAt(index int) *listNode[T] {
	n := l.head
	for i := 0; i < index && n != nil; i++ {
		n = n.next
	}
	return n
}

// 返回第一个值为v的节点的前驱, 不检查头节点
func (l *LinkedList[T]) findPrev(v T) *listNode[T] {
	for n := l.head; n != nil && n.next != nil; n = n.next {
		if n.next.val == v {
			return n
		}
	}
	return nil
}
