// Package queue provides the FIFO token buffer used by the lexer.
//
// Besides the usual append/dequeue pair it can be truncated back to an
// earlier size, which is how the lexer discards tokens emitted during a
// failed speculative attempt.
package queue

// Queue is a FIFO sequence of items.
// The zero value is an empty queue ready to use.
type Queue[T any] struct {
	buffer []T
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Size returns the number of items in the queue.
func (q *Queue[T]) Size() int {
	return len(q.buffer)
}

// IsEmpty returns true if the queue holds no items.
func (q *Queue[T]) IsEmpty() bool {
	return len(q.buffer) == 0
}

// Append adds an item to the tail of the queue.
func (q *Queue[T]) Append(x T) {
	q.buffer = append(q.buffer, x)
}

// Dequeue removes and returns the head of the queue.
// Returns the zero value and false if the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if len(q.buffer) == 0 {
		return zero, false
	}
	head := q.buffer[0]
	q.buffer[0] = zero
	q.buffer = q.buffer[1:]
	if len(q.buffer) == 0 {
		// Start over at the front of a fresh backing array.
		q.buffer = nil
	}
	return head, true
}

// ReduceTo truncates the queue to its first n items.
// Items past n are cleared so nothing keeps them reachable.
// Sizes at or above the current size leave the queue unchanged.
func (q *Queue[T]) ReduceTo(n int) {
	if n < 0 {
		n = 0
	}
	if n >= len(q.buffer) {
		return
	}
	clear(q.buffer[n:])
	q.buffer = q.buffer[:n]
}

// At returns the item at index i, counted from the head.
func (q *Queue[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(q.buffer) {
		var zero T
		return zero, false
	}
	return q.buffer[i], true
}

// Items returns a copy of the queued items in order.
func (q *Queue[T]) Items() []T {
	result := make([]T, len(q.buffer))
	copy(result, q.buffer)
	return result
}
