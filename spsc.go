// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"code.hybscloud.com/atomix"

	"code.hybscloud.com/ringq/internal/ringidx"
)

// SPSC is a single-producer single-consumer bounded ring buffer.
//
// Storage is capacity+1 slots: the spare slot keeps "full" and "empty"
// distinguishable without an element counter, so capacity is exact and
// never rounded. The producer owns inPosT, the consumer owns outPos;
// neither side ever blocks or takes a lock.
//
// Exactly one goroutine (or interrupt-style context) may call the
// producer-side operations and exactly one the consumer-side operations.
// Concurrent producer/producer or consumer/consumer calls are undefined.
//
// Memory: O(capacity) with no per-slot overhead
type SPSC[T any] struct {
	_      pad
	outPos atomix.Uint64 // Consumer reads from here
	_      pad
	inPosT atomix.Uint64 // Producer boundary; slots before it are published
	_      pad
	buffer []T
	size   uint64 // capacity + 1 physical slots
}

// NewSPSC creates a new SPSC ring buffer holding up to capacity elements.
// Panics if capacity < 1.
func NewSPSC[T any](capacity int) *SPSC[T] {
	if capacity < 1 {
		panic("ringq: capacity must be >= 1")
	}

	size := uint64(capacity) + 1
	return &SPSC[T]{
		buffer: make([]T, size),
		size:   size,
	}
}

// Push adds an element to the buffer (producer only).
// Returns false if the buffer is full; no state changes on failure.
//
// The slot is written before the boundary advances (release store), so
// the consumer never observes an advanced boundary ahead of the value.
func (q *SPSC[T]) Push(val T) bool {
	in := q.inPosT.LoadRelaxed()
	next := ringidx.Next(in, q.size)
	if next == q.outPos.LoadAcquire() {
		return false
	}

	q.buffer[in] = val
	q.inPosT.StoreRelease(next)
	return true
}

// PushN bulk-enqueues from src (producer only). When the free range spans
// the wraparound boundary the copy is split into two contiguous runs.
// Returns the number of elements actually enqueued, which may be less
// than len(src) (0 when full), never more.
func (q *SPSC[T]) PushN(src []T) int {
	in := q.inPosT.LoadRelaxed()
	n := uint64(ringidx.AvailableForWrite(in, q.outPos.LoadAcquire(), q.size))
	if m := uint64(len(src)); m < n {
		n = m
	}
	if n == 0 {
		return 0
	}

	first := n
	if tail := q.size - in; first > tail {
		first = tail
	}
	copy(q.buffer[in:in+first], src[:first])
	copy(q.buffer[:n-first], src[first:n])

	q.inPosT.StoreRelease(ringidx.Add(in, n, q.size))
	return int(n)
}

// Enqueue adds an element to the buffer (producer only).
// The element is copied into the buffer's internal storage.
// Returns nil on success, ErrWouldBlock if the buffer is full.
func (q *SPSC[T]) Enqueue(elem *T) error {
	if !q.Push(*elem) {
		return ErrWouldBlock
	}
	return nil
}

// Pop removes and returns the oldest element (consumer only).
// Returns the zero value of T when the buffer is empty; an empty buffer
// and a stored zero value are indistinguishable to the caller. Use
// Dequeue for an explicit empty signal.
func (q *SPSC[T]) Pop() T {
	val, _ := q.Dequeue()
	return val
}

// Dequeue removes and returns the oldest element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the buffer is empty.
func (q *SPSC[T]) Dequeue() (T, error) {
	out := q.outPos.LoadRelaxed()
	if q.inPosT.LoadAcquire() == out {
		var zero T
		return zero, ErrWouldBlock
	}

	val := q.buffer[out]
	var zero T
	q.buffer[out] = zero
	q.outPos.StoreRelease(ringidx.Next(out, q.size))
	return val, nil
}

// Peek returns the oldest element without removing it (consumer only).
// Returns the zero value of T when the buffer is empty.
func (q *SPSC[T]) Peek() T {
	out := q.outPos.LoadRelaxed()
	if q.inPosT.LoadAcquire() == out {
		var zero T
		return zero
	}
	return q.buffer[out]
}

// PopN bulk-dequeues into dst (consumer only). When the readable range
// spans the wraparound boundary the copy is split into two contiguous
// runs; outPos advances once, after both copies. Returns the number of
// elements copied: at most len(dst) and at most Available().
func (q *SPSC[T]) PopN(dst []T) int {
	out := q.outPos.LoadRelaxed()
	n := uint64(ringidx.Available(q.inPosT.LoadAcquire(), out, q.size))
	if m := uint64(len(dst)); m < n {
		n = m
	}
	if n == 0 {
		return 0
	}

	first := n
	if tail := q.size - out; first > tail {
		first = tail
	}
	copy(dst[:first], q.buffer[out:out+first])
	copy(dst[first:n], q.buffer[:n-first])
	clear(q.buffer[out : out+first])
	clear(q.buffer[:n-first])

	q.outPos.StoreRelease(ringidx.Add(out, n, q.size))
	return int(n)
}

// Flush discards all buffered elements (consumer only).
func (q *SPSC[T]) Flush() {
	q.outPos.StoreRelease(q.inPosT.LoadAcquire())
}

// Available returns the number of buffered elements.
func (q *SPSC[T]) Available() int {
	return ringidx.Available(q.inPosT.LoadAcquire(), q.outPos.LoadAcquire(), q.size)
}

// AvailableForWrite returns the number of free slots.
func (q *SPSC[T]) AvailableForWrite() int {
	return ringidx.AvailableForWrite(q.inPosT.LoadAcquire(), q.outPos.LoadAcquire(), q.size)
}

// Cap returns the buffer capacity.
func (q *SPSC[T]) Cap() int {
	return int(q.size - 1)
}
