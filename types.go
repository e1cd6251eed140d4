// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// Buffer is the combined producer-consumer interface for a bounded ring
// buffer.
//
// All operations are non-blocking and return immediately: a full push
// reports false (or ErrWouldBlock via Enqueue), an empty pop returns the
// element type's zero value (or ErrWouldBlock via Dequeue). Nothing ever
// suspends, so either side may run in a context that must not sleep.
//
// Example:
//
//	q := ringq.NewMPSC[byte](256)
//
//	// Producer(s)
//	if !q.Push(b) {
//	    // Buffer full - drop or back off
//	}
//
//	// Consumer
//	if q.Available() > 0 {
//	    b := q.Pop()
//	    handle(b)
//	}
type Buffer[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
}

// Producer is the write-side interface.
//
// How many goroutines may call it concurrently depends on the buffer type:
//   - SPSC: exactly one producer
//   - MPSC, MPSCLock: any number of producers
//
// The element is copied into the buffer, so the caller's value may be
// reused after the call returns.
type Producer[T any] interface {
	// Push adds an element (non-blocking).
	// Returns false if the buffer is full; no state changes on failure.
	Push(val T) bool

	// Enqueue adds the pointed-to element (non-blocking).
	// Returns nil on success, ErrWouldBlock if the buffer is full.
	Enqueue(elem *T) error

	// AvailableForWrite returns the number of free slots.
	// Slots reserved by in-flight multi-producer pushes count as used.
	AvailableForWrite() int
}

// BulkProducer is the optional bulk write-side interface.
// SPSC and MPSCLock implement it; the CAS-based MPSC does not, because a
// contiguous multi-slot reservation cannot fail atomically under the
// optimistic protocol.
type BulkProducer[T any] interface {
	// PushN enqueues a prefix of src, splitting the copy across the
	// wraparound boundary when needed. Returns the count enqueued.
	PushN(src []T) int
}

// Consumer is the read-side interface. Exactly one goroutine may use it;
// all buffer types in this package are single-consumer.
type Consumer[T any] interface {
	// Pop removes and returns the oldest element (non-blocking).
	// Returns the zero value of T when empty. An empty buffer and a
	// stored zero value are indistinguishable here; use Dequeue when
	// the distinction matters.
	Pop() T

	// Dequeue removes and returns the oldest element (non-blocking).
	// Returns (zero-value, ErrWouldBlock) when empty.
	Dequeue() (T, error)

	// Peek returns the oldest element without removing it.
	// Returns the zero value of T when empty.
	Peek() T

	// PopN dequeues up to len(dst) elements into dst.
	// Returns the count copied, never more than was available.
	PopN(dst []T) int

	// Flush discards all buffered elements.
	Flush()

	// Available returns the number of buffered elements.
	Available() int
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
