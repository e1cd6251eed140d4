// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"

	"code.hybscloud.com/ringq/internal/ringidx"
)

// MPSC is a multi-producer single-consumer bounded ring buffer.
//
// Producers race to reserve slots through a CAS retry loop on inPosL and
// may finish their writes out of reservation order. A commit counter
// (inPosC) tracks completed writes; the consumer-visible boundary (inPosT)
// only advances when the commit counter catches up with the reservation
// index, so the consumer never reads a hole. Retries are bounded by the
// number of concurrently contending producers; sustained contention can
// retry indefinitely (accepted livelock risk of the optimistic design).
//
// The consumer-side operations are those of SPSC and must be called from
// a single consumer context. AvailableForWrite counts against the
// reservation index: reserved-but-uncommitted slots already consume
// capacity.
type MPSC[T any] struct {
	_      pad
	outPos atomix.Uint64 // Consumer reads from here
	_      pad
	inPosT atomix.Uint64 // Published boundary; producers advance it commit-complete
	_      pad
	inPosL atomix.Uint64 // Reservation index (producers CAS here)
	_      pad
	inPosC atomix.Uint64 // Commit counter (producers CAS here)
	_      pad
	buffer []T
	size   uint64 // capacity + 1 physical slots
}

// NewMPSC creates a new MPSC ring buffer holding up to capacity elements.
// Panics if capacity < 1.
func NewMPSC[T any](capacity int) *MPSC[T] {
	if capacity < 1 {
		panic("ringq: capacity must be >= 1")
	}

	size := uint64(capacity) + 1
	return &MPSC[T]{
		buffer: make([]T, size),
		size:   size,
	}
}

// Push adds an element to the buffer (multiple producers safe).
// Returns false if the buffer is full; a failed push claims nothing.
func (q *MPSC[T]) Push(val T) bool {
	sw := spin.Wait{}

	// Reserve: claim exactly one slot, or give up when full.
	var in, next uint64
	for {
		in = q.inPosL.LoadAcquire()
		next = ringidx.Next(in, q.size)
		if next == q.outPos.LoadAcquire() {
			return false
		}
		if q.inPosL.CompareAndSwapAcqRel(in, next) {
			break
		}
		sw.Once()
	}

	// Write: the claimed slot is exclusively ours. No ordering against
	// other producers' writes is needed; the commit CAS chain below
	// carries this write to the consumer.
	q.buffer[in] = val

	// Commit: always advances, regardless of write completion order.
	sw.Reset()
	var wrapped uint64
	for {
		c := q.inPosC.LoadRelaxed()
		wrapped = ringidx.Next(c, q.size)
		if q.inPosC.CompareAndSwapAcqRel(c, wrapped) {
			break
		}
		sw.Once()
	}

	// Publish: if this commit completed the last outstanding reservation,
	// every slot up to here is fully written and may become visible.
	// Otherwise a later producer's commit publishes on our behalf.
	if q.inPosL.LoadAcquire() == wrapped {
		q.inPosT.StoreRelease(wrapped)
	}
	return true
}

// Enqueue adds an element to the buffer (multiple producers safe).
// Returns nil on success, ErrWouldBlock if the buffer is full.
func (q *MPSC[T]) Enqueue(elem *T) error {
	if !q.Push(*elem) {
		return ErrWouldBlock
	}
	return nil
}

// Pop removes and returns the oldest element (single consumer only).
// Returns the zero value of T when the buffer is empty.
func (q *MPSC[T]) Pop() T {
	val, _ := q.Dequeue()
	return val
}

// Dequeue removes and returns the oldest element (single consumer only).
// Returns (zero-value, ErrWouldBlock) if the buffer is empty.
func (q *MPSC[T]) Dequeue() (T, error) {
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

// Peek returns the oldest element without removing it (single consumer only).
func (q *MPSC[T]) Peek() T {
	out := q.outPos.LoadRelaxed()
	if q.inPosT.LoadAcquire() == out {
		var zero T
		return zero
	}
	return q.buffer[out]
}

// PopN bulk-dequeues into dst (single consumer only).
// Returns the number of elements copied: at most len(dst), at most Available().
func (q *MPSC[T]) PopN(dst []T) int {
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

// Flush discards all published elements (single consumer only).
// In-flight pushes that have reserved but not yet published survive.
func (q *MPSC[T]) Flush() {
	q.outPos.StoreRelease(q.inPosT.LoadAcquire())
}

// Available returns the number of published elements.
func (q *MPSC[T]) Available() int {
	return ringidx.Available(q.inPosT.LoadAcquire(), q.outPos.LoadAcquire(), q.size)
}

// AvailableForWrite returns the number of unreserved slots.
func (q *MPSC[T]) AvailableForWrite() int {
	return ringidx.AvailableForWrite(q.inPosL.LoadAcquire(), q.outPos.LoadAcquire(), q.size)
}

// Cap returns the buffer capacity.
func (q *MPSC[T]) Cap() int {
	return int(q.size - 1)
}
