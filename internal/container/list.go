package container

type listNode[T any] struct {
	data T
	next *listNode[T]
}

// List - односвязный список с добавлением в хвост
type List[T any] struct {
	head *listNode[T]
}

// NewList создает пустой список
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// InsertAtEnd добавляет элемент в конец списка
func (l *List[T]) InsertAtEnd(val T) {
	node := &listNode[T]{data: val}
	if l.head == nil {
		l.head = node
		return
	}
	cur := l.head
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = node
}

// ToSlice возвращает элементы в порядке вставки
func (l *List[T]) ToSlice() []T {
	var out []T
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.data)
	}
	return out
}

// Each обходит элементы в порядке вставки
func (l *List[T]) Each(fn func(val *T)) {
	for cur := l.head; cur != nil; cur = cur.next {
		fn(&cur.data)
	}
}

// RemoveFunc удаляет первый элемент, для которого match вернул true
func (l *List[T]) RemoveFunc(match func(T) bool) bool {
	var prev *listNode[T]
	for cur := l.head; cur != nil; cur = cur.next {
		if match(cur.data) {
			if prev == nil {
				l.head = cur.next
			} else {
				prev.next = cur.next
			}
			return true
		}
		prev = cur
	}
	return false
}

// UpdateFunc применяет update к первому элементу, для которого match вернул true
func (l *List[T]) UpdateFunc(match func(T) bool, update func(*T)) bool {
	for cur := l.head; cur != nil; cur = cur.next {
		if match(cur.data) {
			update(&cur.data)
			return true
		}
	}
	return false
}
