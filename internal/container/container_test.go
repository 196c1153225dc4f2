package container

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashTable_InsertAndSearch(t *testing.T) {
	table := NewHashTable[int]()

	table.Insert("alice", 1)
	table.Insert("bob", 2)

	// Assert что оба значения находятся
	assert.Equal(t, 1, *table.Search("alice"))
	assert.Equal(t, 2, *table.Search("bob"))
	assert.Nil(t, table.Search("carol"))
}

func TestHashTable_OverwriteExistingKey(t *testing.T) {
	table := NewHashTable[string]()

	table.Insert("alice", "old")
	table.Insert("alice", "new")

	// Assert что значение перезаписано, а не добавлено второй раз
	assert.Equal(t, "new", *table.Search("alice"))
	count := 0
	table.Each(func(string, *string) { count++ })
	assert.Equal(t, 1, count)
}

func TestHashTable_CollisionChaining(t *testing.T) {
	table := NewHashTable[int]()

	// Больше ключей, чем бакетов - коллизии неизбежны
	for i := 0; i < Capacity*3; i++ {
		table.Insert("user"+strconv.Itoa(i), i)
	}

	for i := 0; i < Capacity*3; i++ {
		v := table.Search("user" + strconv.Itoa(i))
		assert.NotNil(t, v)
		assert.Equal(t, i, *v)
	}
}

func TestHashTable_SearchReturnsMutableReference(t *testing.T) {
	table := NewHashTable[int]()
	table.Insert("alice", 1)

	*table.Search("alice") = 5

	assert.Equal(t, 5, *table.Search("alice"))
}

func TestList_InsertionOrder(t *testing.T) {
	list := NewList[string]()

	list.InsertAtEnd("a")
	list.InsertAtEnd("b")
	list.InsertAtEnd("c")

	assert.Equal(t, []string{"a", "b", "c"}, list.ToSlice())
}

func TestList_RemoveFunc(t *testing.T) {
	list := NewList[string]()
	list.InsertAtEnd("a")
	list.InsertAtEnd("b")
	list.InsertAtEnd("c")

	ok := list.RemoveFunc(func(s string) bool { return s == "b" })

	assert.True(t, ok)
	assert.Equal(t, []string{"a", "c"}, list.ToSlice())

	// Повторное удаление того же элемента не проходит
	ok = list.RemoveFunc(func(s string) bool { return s == "b" })
	assert.False(t, ok)
}

func TestList_RemoveHead(t *testing.T) {
	list := NewList[string]()
	list.InsertAtEnd("a")
	list.InsertAtEnd("b")

	ok := list.RemoveFunc(func(s string) bool { return s == "a" })

	assert.True(t, ok)
	assert.Equal(t, []string{"b"}, list.ToSlice())
}

func TestList_UpdateFunc(t *testing.T) {
	list := NewList[string]()
	list.InsertAtEnd("a")
	list.InsertAtEnd("b")

	ok := list.UpdateFunc(
		func(s string) bool { return s == "b" },
		func(s *string) { *s = "edited" },
	)

	assert.True(t, ok)
	assert.Equal(t, []string{"a", "edited"}, list.ToSlice())
}

func TestQueue_FIFO(t *testing.T) {
	q := NewQueue[string]()

	q.Enqueue("first")
	q.Enqueue("second")

	assert.Equal(t, []string{"first", "second"}, q.ToSlice())

	v, err := q.Dequeue()
	assert.NoError(t, err)
	assert.Equal(t, "first", v)
}

func TestQueue_DequeueEmpty(t *testing.T) {
	q := NewQueue[string]()

	_, err := q.Dequeue()

	// Assert ошибка на пустой очереди
	assert.ErrorIs(t, err, ErrEmpty)
	assert.True(t, q.IsEmpty())
}

func TestStack_PushPopPeek(t *testing.T) {
	s := NewStack[string]()

	s.Push("a")
	s.Push("b")

	top, err := s.Peek()
	assert.NoError(t, err)
	assert.Equal(t, "b", top)

	v, err := s.Pop()
	assert.NoError(t, err)
	assert.Equal(t, "b", v)
	assert.Equal(t, 1, s.Len())
}

func TestStack_PopEmpty(t *testing.T) {
	s := NewStack[string]()

	_, err := s.Pop()
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = s.Peek()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestStack_ContainsAndRemove(t *testing.T) {
	s := NewStack[string]()
	s.Push("alice")
	s.Push("bob")
	s.Push("carol")

	assert.True(t, s.Contains("alice"))

	// Удаление из середины, не только с вершины
	ok := s.Remove("bob")
	assert.True(t, ok)
	assert.False(t, s.Contains("bob"))
	assert.Equal(t, 2, s.Len())

	ok = s.Remove("bob")
	assert.False(t, ok)
}

func TestBST_InOrder(t *testing.T) {
	tree := NewBST(func(a, b string) bool { return a < b })

	tree.Insert("b")
	tree.Insert("a")
	tree.Insert("c")

	assert.Equal(t, []string{"a", "b", "c"}, tree.InOrder())
	assert.Equal(t, []string{"c", "b", "a"}, tree.ReverseInOrder())
}

func TestBST_DuplicatesGoRight(t *testing.T) {
	tree := NewBST(func(a, b string) bool { return a < b })

	tree.Insert("a")
	tree.Insert("a")
	tree.Insert("a")

	// Дубликаты не теряются
	assert.Equal(t, []string{"a", "a", "a"}, tree.InOrder())
}

func TestBST_TraversalsAreExactReverses(t *testing.T) {
	tree := NewBST(func(a, b int) bool { return a < b })
	for _, v := range []int{5, 3, 8, 1, 9, 3, 7} {
		tree.Insert(v)
	}

	asc := tree.InOrder()
	desc := tree.ReverseInOrder()

	assert.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestBST_Clear(t *testing.T) {
	tree := NewBST(func(a, b int) bool { return a < b })
	tree.Insert(1)

	tree.Clear()

	assert.Empty(t, tree.InOrder())
}
