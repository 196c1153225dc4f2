package container

import "errors"

// ErrEmpty возвращается при извлечении из пустой очереди или стека
var ErrEmpty = errors.New("container is empty")

type queueNode[T any] struct {
	data T
	next *queueNode[T]
}

// Queue - очередь FIFO на односвязных узлах
type Queue[T any] struct {
	front *queueNode[T]
	rear  *queueNode[T]
}

// NewQueue создает пустую очередь
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue добавляет элемент в хвост очереди
func (q *Queue[T]) Enqueue(val T) {
	node := &queueNode[T]{data: val}
	if q.rear == nil {
		q.front = node
		q.rear = node
		return
	}
	q.rear.next = node
	q.rear = node
}

// Dequeue извлекает элемент из головы очереди
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.front == nil {
		return zero, ErrEmpty
	}
	data := q.front.data
	q.front = q.front.next
	if q.front == nil {
		q.rear = nil
	}
	return data, nil
}

// IsEmpty сообщает, пуста ли очередь
func (q *Queue[T]) IsEmpty() bool {
	return q.front == nil
}

// ToSlice возвращает элементы в порядке поступления
func (q *Queue[T]) ToSlice() []T {
	var out []T
	for cur := q.front; cur != nil; cur = cur.next {
		out = append(out, cur.data)
	}
	return out
}
