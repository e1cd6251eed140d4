// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "sync"

// MPSCLock is a multi-producer single-consumer ring buffer whose push
// side runs inside a critical section instead of a CAS retry loop.
//
// This is the exclusive-push strategy: a mutex guarantees exactly one
// writer completes at a time, giving the same mutual-exclusion outcome as
// the optimistic MPSC protocol without its retry loops or its livelock
// risk under sustained contention. Prefer it when producers are few or
// pushes are bursty; prefer MPSC when producers contend constantly and
// must never wait on a lock holder.
//
// The consumer side delegates to the embedded SPSC buffer and stays
// lock-free: Pop, Peek, PopN, Flush and the capacity queries never touch
// the mutex.
type MPSCLock[T any] struct {
	mu sync.Mutex
	rb *SPSC[T]
}

// NewMPSCLock creates a new lock-guarded MPSC ring buffer holding up to
// capacity elements. Panics if capacity < 1.
func NewMPSCLock[T any](capacity int) *MPSCLock[T] {
	return &MPSCLock[T]{rb: NewSPSC[T](capacity)}
}

// Push adds an element to the buffer (multiple producers safe).
// Returns false if the buffer is full.
func (q *MPSCLock[T]) Push(val T) bool {
	q.mu.Lock()
	ok := q.rb.Push(val)
	q.mu.Unlock()
	return ok
}

// PushN bulk-enqueues from src (multiple producers safe).
// Returns the number of elements actually enqueued.
func (q *MPSCLock[T]) PushN(src []T) int {
	q.mu.Lock()
	n := q.rb.PushN(src)
	q.mu.Unlock()
	return n
}

// Enqueue adds an element to the buffer (multiple producers safe).
// Returns nil on success, ErrWouldBlock if the buffer is full.
func (q *MPSCLock[T]) Enqueue(elem *T) error {
	if !q.Push(*elem) {
		return ErrWouldBlock
	}
	return nil
}

// Pop removes and returns the oldest element (single consumer only).
func (q *MPSCLock[T]) Pop() T { return q.rb.Pop() }

// Dequeue removes and returns the oldest element (single consumer only).
// Returns (zero-value, ErrWouldBlock) if the buffer is empty.
func (q *MPSCLock[T]) Dequeue() (T, error) { return q.rb.Dequeue() }

// Peek returns the oldest element without removing it (single consumer only).
func (q *MPSCLock[T]) Peek() T { return q.rb.Peek() }

// PopN bulk-dequeues into dst (single consumer only).
func (q *MPSCLock[T]) PopN(dst []T) int { return q.rb.PopN(dst) }

// Flush discards all buffered elements (single consumer only).
func (q *MPSCLock[T]) Flush() { q.rb.Flush() }

// Available returns the number of buffered elements.
func (q *MPSCLock[T]) Available() int { return q.rb.Available() }

// AvailableForWrite returns the number of free slots.
func (q *MPSCLock[T]) AvailableForWrite() int { return q.rb.AvailableForWrite() }

// Cap returns the buffer capacity.
func (q *MPSCLock[T]) Cap() int { return q.rb.Cap() }
