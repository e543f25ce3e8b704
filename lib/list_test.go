package lib

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xingshuo/slist/defines"
	"github.com/xingshuo/slist/interfaces"
	"github.com/xingshuo/slist/log"
)

var _ interfaces.List[string] = (*LinkedList[string])(nil)

func TestLinkedList_Scenario(t *testing.T) {
	log.Init("", log.LevelInfo)

	l := New[string]()
	l.Append("a")
	l.Append("b")
	l.Append("c")
	assert.Equal(t, []string{"a", "b", "c"}, l.Values())

	v, err := l.PeekAtIndex(1)
	assert.Nil(t, err)
	assert.Equal(t, "b", v)

	assert.Nil(t, l.DeleteNode("b"))
	assert.Equal(t, []string{"a", "c"}, l.Values())

	assert.Nil(t, l.ReverseList())
	assert.Equal(t, []string{"c", "a"}, l.Values())
}

func TestLinkedList_PushAppendPeek(t *testing.T) {
	l := New[int]()
	l.Push(1)
	first, err := l.PeekFirst()
	assert.Nil(t, err)
	assert.Equal(t, 1, first)

	l.Append(9)
	last, err := l.PeekLast()
	assert.Nil(t, err)
	assert.Equal(t, 9, last)

	l.Push(0)
	assert.Equal(t, []int{0, 1, 9}, l.Values())
	assert.Equal(t, 3, l.Size())
}

func TestLinkedList_SizeTracksMutations(t *testing.T) {
	l := New[int]()
	added := 0
	for i := 0; i < 10; i++ {
		if i%2 == 0 {
			l.Push(i)
		} else {
			l.Append(i)
		}
		added++
	}
	assert.Equal(t, added, l.Size())

	require.Nil(t, l.DeleteFirst())
	require.Nil(t, l.DeleteLast())
	require.Nil(t, l.DeleteAtIndex(3))
	assert.Equal(t, added-3, l.Size())
}

func TestLinkedList_InsertAtIndex(t *testing.T) {
	l := New("a", "c")
	assert.Nil(t, l.InsertAtIndex(1, "b"))
	assert.Nil(t, l.InsertAtIndex(3, "d"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, l.Values())

	err := l.InsertAtIndex(-1, "x")
	assert.ErrorIs(t, err, defines.ErrNegativeIndex)
	err = l.InsertAtIndex(5, "x")
	assert.ErrorIs(t, err, defines.ErrIndexOutOfBounds)
	assert.Equal(t, []string{"a", "b", "c", "d"}, l.Values())

	empty := New[string]()
	assert.ErrorIs(t, empty.InsertAtIndex(1, "x"), defines.ErrIndexOutOfBounds)
	assert.Nil(t, empty.InsertAtIndex(0, "x"))
	assert.Equal(t, []string{"x"}, empty.Values())
}

func TestLinkedList_InsertAtZeroIsPush(t *testing.T) {
	a := New(1, 2, 3)
	b := New(1, 2, 3)
	assert.Nil(t, a.InsertAtIndex(0, 7))
	b.Push(7)
	assert.Equal(t, b.Values(), a.Values())
}

func TestLinkedList_InsertAfter(t *testing.T) {
	l := New[string]()
	assert.ErrorIs(t, l.InsertAfter("a", "b"), defines.ErrEmptyList)

	l = New("a", "c", "a")
	assert.Nil(t, l.InsertAfter("a", "b"))
	assert.Nil(t, l.InsertAfter("a", "z"))
	assert.Equal(t, []string{"a", "z", "b", "c", "a"}, l.Values())

	assert.ErrorIs(t, l.InsertAfter("missing", "x"), defines.ErrNotFound)
	assert.Equal(t, []string{"a", "z", "b", "c", "a"}, l.Values())

	assert.Nil(t, l.InsertAfter("c", "d"))
	assert.Equal(t, []string{"a", "z", "b", "c", "d", "a"}, l.Values())
}

func TestLinkedList_InsertBefore(t *testing.T) {
	l := New[string]()
	assert.ErrorIs(t, l.InsertBefore("a", "b"), defines.ErrEmptyList)

	l = New("b", "d")
	assert.Nil(t, l.InsertBefore("b", "a"))
	assert.Nil(t, l.InsertBefore("d", "c"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, l.Values())

	assert.ErrorIs(t, l.InsertBefore("x", "y"), defines.ErrNotFound)
	assert.Equal(t, []string{"a", "b", "c", "d"}, l.Values())
}

func TestLinkedList_DeleteFirstLast(t *testing.T) {
	l := New[string]()
	assert.ErrorIs(t, l.DeleteFirst(), defines.ErrEmptyList)
	assert.ErrorIs(t, l.DeleteLast(), defines.ErrEmptyList)

	l = New("x")
	assert.Nil(t, l.DeleteLast())
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Size())

	l = New("a", "b", "c")
	assert.Nil(t, l.DeleteLast())
	assert.Equal(t, []string{"a", "b"}, l.Values())
	assert.Nil(t, l.DeleteFirst())
	assert.Equal(t, []string{"b"}, l.Values())
	assert.Nil(t, l.DeleteFirst())
	assert.True(t, l.IsEmpty())
}

func TestLinkedList_DeleteNode(t *testing.T) {
	l := New[int]()
	assert.ErrorIs(t, l.DeleteNode(1), defines.ErrEmptyList)

	l = New(1, 2, 3, 2)
	assert.Nil(t, l.DeleteNode(1))
	assert.Nil(t, l.DeleteNode(2))
	assert.Equal(t, []int{3, 2}, l.Values())
	assert.ErrorIs(t, l.DeleteNode(5), defines.ErrNotFound)
	assert.Equal(t, []int{3, 2}, l.Values())
	assert.Nil(t, l.DeleteNode(2))
	assert.Equal(t, []int{3}, l.Values())
}

func TestLinkedList_DeleteAtIndex(t *testing.T) {
	l := New[int]()
	assert.ErrorIs(t, l.DeleteAtIndex(-1), defines.ErrNegativeIndex)
	assert.ErrorIs(t, l.DeleteAtIndex(0), defines.ErrEmptyList)

	l = New(7)
	assert.Nil(t, l.DeleteAtIndex(0))
	assert.True(t, l.IsEmpty())

	l = New(0, 1, 2, 3)
	assert.ErrorIs(t, l.DeleteAtIndex(4), defines.ErrIndexOutOfBounds)
	assert.ErrorIs(t, l.DeleteAtIndex(10), defines.ErrIndexOutOfBounds)
	assert.Equal(t, []int{0, 1, 2, 3}, l.Values())
	assert.Nil(t, l.DeleteAtIndex(3))
	assert.Nil(t, l.DeleteAtIndex(1))
	assert.Equal(t, []int{0, 2}, l.Values())
}

func TestLinkedList_Peek(t *testing.T) {
	l := New[string]()
	_, err := l.PeekFirst()
	assert.ErrorIs(t, err, defines.ErrEmptyList)
	_, err = l.PeekLast()
	assert.ErrorIs(t, err, defines.ErrEmptyList)
	_, err = l.PeekAtIndex(-2)
	assert.ErrorIs(t, err, defines.ErrNegativeIndex)
	_, err = l.PeekAtIndex(0)
	assert.ErrorIs(t, err, defines.ErrEmptyList)

	l = New("a", "b")
	v, err := l.PeekAtIndex(0)
	assert.Nil(t, err)
	assert.Equal(t, "a", v)
	_, err = l.PeekAtIndex(2)
	assert.ErrorIs(t, err, defines.ErrIndexOutOfBounds)
}

func TestLinkedList_Contains(t *testing.T) {
	l := New[string]()
	_, err := l.Contains("a")
	assert.ErrorIs(t, err, defines.ErrEmptyList)

	l = New("a", "b")
	ok, err := l.Contains("b")
	assert.Nil(t, err)
	assert.True(t, ok)

	require.Nil(t, l.DeleteNode("b"))
	ok, err = l.Contains("b")
	assert.Nil(t, err)
	assert.False(t, ok)

	type point struct{ X, Y int }
	pl := New(point{1, 2}, point{3, 4})
	ok, err = pl.Contains(point{3, 4})
	assert.Nil(t, err)
	assert.True(t, ok)
}

func TestLinkedList_ReverseInvolution(t *testing.T) {
	l := New[int]()
	assert.ErrorIs(t, l.ReverseList(), defines.ErrEmptyList)

	l = New(1, 2, 3, 4, 5)
	require.Nil(t, l.ReverseList())
	assert.Equal(t, []int{5, 4, 3, 2, 1}, l.Values())
	require.Nil(t, l.ReverseList())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, l.Values())

	single := New(1)
	require.Nil(t, single.ReverseList())
	assert.Equal(t, []int{1}, single.Values())
}

func TestLinkedList_ConcatAliases(t *testing.T) {
	a := New("1")
	b := New("2", "3")
	a.Concat(b)
	assert.Equal(t, []string{"1", "2", "3"}, a.Values())

	// a and b share "2","3": mutating b's chain shows up in a
	b.Append("4")
	assert.Equal(t, []string{"1", "2", "3", "4"}, a.Values())
	require.Nil(t, b.InsertAfter("2", "2.5"))
	assert.Equal(t, []string{"1", "2", "2.5", "3", "4"}, a.Values())

	// moving b's head does not unlink the node from a
	require.Nil(t, b.DeleteFirst())
	assert.Equal(t, []string{"2.5", "3", "4"}, b.Values())
	assert.Equal(t, 5, a.Size())
}

func TestLinkedList_ConcatEdges(t *testing.T) {
	a := New("1")
	a.Concat(New[string]())
	a.Concat(nil)
	assert.Equal(t, []string{"1"}, a.Values())

	empty := New[string]()
	b := New("x", "y")
	empty.Concat(b)
	assert.Equal(t, []string{"x", "y"}, empty.Values())
	b.Push("w")
	assert.Equal(t, []string{"x", "y"}, empty.Values())
	b.Append("z")
	assert.Equal(t, []string{"x", "y", "z"}, empty.Values())

	// would close a cycle
	self := New(1, 2)
	self.Concat(self)
	assert.Equal(t, []int{1, 2}, self.Values())

	c := New(1, 2, 3)
	d := New[int]()
	d.Copy(c)
	c.Concat(d)
	assert.Equal(t, []int{1, 2, 3}, c.Values())
}

func TestLinkedList_CopyAliases(t *testing.T) {
	src := New("a", "b")
	dst := New("old")
	dst.Copy(src)
	assert.Equal(t, []string{"a", "b"}, dst.Values())

	require.Nil(t, src.InsertAfter("a", "c"))
	assert.Equal(t, []string{"a", "c", "b"}, dst.Values())

	dst.Copy(nil)
	assert.True(t, dst.IsEmpty())
}

func TestLinkedList_CloneIsIndependent(t *testing.T) {
	src := New(1, 2, 3)
	cp := src.Clone()
	src.Append(4)
	require.Nil(t, src.DeleteNode(2))
	assert.Equal(t, []int{1, 2, 3}, cp.Values())
	assert.Equal(t, []int{1, 3, 4}, src.Values())
}

func TestLinkedList_Display(t *testing.T) {
	var buf bytes.Buffer
	New[string]().Display(&buf)
	assert.Equal(t, "", buf.String())

	New("a", "b").Display(&buf)
	assert.Equal(t, "a\nb\n", buf.String())
	assert.Equal(t, "[a b]", New("a", "b").String())
	assert.Equal(t, "[]", New[int]().String())
}

func TestLinkedList_ForEach(t *testing.T) {
	l := New(10, 20, 30, 40)
	var seen []int
	l.ForEach(func(i int, v int) bool {
		seen = append(seen, i*1000+v)
		return i < 1
	})
	assert.Equal(t, []int{10, 1020}, seen)
}
