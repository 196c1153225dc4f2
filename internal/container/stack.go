package container

type stackNode[T comparable] struct {
	data T
	next *stackNode[T]
}

// Stack - стек на односвязных узлах; используется и как множество
// с произвольным удалением (лайки поста)
type Stack[T comparable] struct {
	top *stackNode[T]
}

// NewStack создает пустой стек
func NewStack[T comparable]() *Stack[T] {
	return &Stack[T]{}
}

// Push кладет элемент на вершину
func (s *Stack[T]) Push(val T) {
	s.top = &stackNode[T]{data: val, next: s.top}
}

// Pop снимает элемент с вершины
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.top == nil {
		return zero, ErrEmpty
	}
	data := s.top.data
	s.top = s.top.next
	return data, nil
}

// Peek возвращает вершину, не снимая ее
func (s *Stack[T]) Peek() (T, error) {
	var zero T
	if s.top == nil {
		return zero, ErrEmpty
	}
	return s.top.data, nil
}

// IsEmpty сообщает, пуст ли стек
func (s *Stack[T]) IsEmpty() bool {
	return s.top == nil
}

// Len возвращает число элементов
func (s *Stack[T]) Len() int {
	count := 0
	for cur := s.top; cur != nil; cur = cur.next {
		count++
	}
	return count
}

// Contains проверяет наличие элемента
func (s *Stack[T]) Contains(val T) bool {
	for cur := s.top; cur != nil; cur = cur.next {
		if cur.data == val {
			return true
		}
	}
	return false
}

// Remove удаляет первый найденный элемент, где бы он ни находился
func (s *Stack[T]) Remove(val T) bool {
	var prev *stackNode[T]
	for cur := s.top; cur != nil; cur = cur.next {
		if cur.data == val {
			if prev == nil {
				s.top = cur.next
			} else {
				prev.next = cur.next
			}
			return true
		}
		prev = cur
	}
	return false
}

// ToSlice возвращает элементы от вершины к основанию
func (s *Stack[T]) ToSlice() []T {
	var out []T
	for cur := s.top; cur != nil; cur = cur.next {
		out = append(out, cur.data)
	}
	return out
}
