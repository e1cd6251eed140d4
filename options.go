// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// Options configures buffer creation and push-strategy selection.
type Options struct {
	// Producer constraints (determines buffer type)
	multiProducer bool

	// Push strategy for multi-producer buffers
	exclusive bool // Critical-section push instead of CAS retry

	// Capacity (exact, never rounded)
	capacity int
}

// Builder creates ring buffers with fluent configuration.
//
// The builder selects the algorithm from the producer constraint and the
// push-strategy hint:
//
//	// SPSC buffer (single producer, single consumer)
//	q := ringq.BuildSPSC[byte](ringq.New(256))
//
//	// MPSC buffer, optimistic CAS push (default multi-producer strategy)
//	q := ringq.BuildMPSC[byte](ringq.New(256).MultiProducer())
//
//	// MPSC buffer, critical-section push
//	q := ringq.BuildMPSC[byte](ringq.New(256).MultiProducer().Exclusive())
type Builder struct {
	opts Options
}

// New creates a buffer builder with the given capacity.
//
// Capacity is exact: a buffer built with capacity n holds up to n elements
// and allocates n+1 physical slots.
//
// Panics if capacity < 1.
func New(capacity int) *Builder {
	if capacity < 1 {
		panic("ringq: capacity must be >= 1")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// MultiProducer declares that several goroutines will push concurrently.
// Selects the MPSC reservation protocol (or MPSCLock with Exclusive).
func (b *Builder) MultiProducer() *Builder {
	b.opts.multiProducer = true
	return b
}

// Exclusive selects the critical-section push strategy for multi-producer
// buffers: producers serialize on a mutex instead of retrying CAS
// reservations. Mutual exclusion through masking rather than optimism -
// same protocol outcome, no retry loop.
//
// Only meaningful together with MultiProducer.
func (b *Builder) Exclusive() *Builder {
	b.opts.exclusive = true
	return b
}

// Build creates a Buffer[T] with automatic algorithm selection.
//
// Algorithm selection:
//
//	(default)                   → SPSC
//	MultiProducer               → MPSC (CAS reservation push)
//	MultiProducer + Exclusive   → MPSCLock (critical-section push)
//
// Panics if Exclusive is set without MultiProducer: a single producer
// never contends, so there is nothing for the critical section to guard.
func Build[T any](b *Builder) Buffer[T] {
	switch {
	case b.opts.multiProducer && b.opts.exclusive:
		return NewMPSCLock[T](b.opts.capacity)
	case b.opts.multiProducer:
		return NewMPSC[T](b.opts.capacity)
	case b.opts.exclusive:
		panic("ringq: Exclusive requires MultiProducer")
	default:
		return NewSPSC[T](b.opts.capacity)
	}
}

// BuildSPSC creates an SPSC buffer with compile-time type safety.
// Panics if the builder is configured with MultiProducer or Exclusive.
func BuildSPSC[T any](b *Builder) *SPSC[T] {
	if b.opts.multiProducer || b.opts.exclusive {
		panic("ringq: BuildSPSC requires a single-producer configuration")
	}
	return NewSPSC[T](b.opts.capacity)
}

// BuildMPSC creates a multi-producer buffer with compile-time type safety.
// Panics if the builder is not configured with MultiProducer.
func BuildMPSC[T any](b *Builder) Buffer[T] {
	if !b.opts.multiProducer {
		panic("ringq: BuildMPSC requires MultiProducer")
	}
	if b.opts.exclusive {
		return NewMPSCLock[T](b.opts.capacity)
	}
	return NewMPSC[T](b.opts.capacity)
}
