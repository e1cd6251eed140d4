// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringq provides fixed-capacity non-blocking ring buffers.
//
// The package moves discrete elements (typically bytes) between one
// producer context and one consumer context without blocking, sleeping,
// or taking a lock on the hot path. It is built for pairings like an
// interrupt-style callback feeding a foreground loop, where neither side
// may wait on the other.
//
// Three variants cover the producer patterns:
//
//   - SPSC: single producer, single consumer
//   - MPSC: multiple producers via CAS slot reservation, single consumer
//   - MPSCLock: multiple producers serialized in a critical section,
//     single consumer
//
// # Quick Start
//
// Direct constructors (recommended for most cases):
//
//	q := ringq.NewSPSC[byte](256)
//	q := ringq.NewMPSC[Sample](1024)
//
// Builder API selects the variant from constraints:
//
//	q := ringq.Build[byte](ringq.New(256))                              // → SPSC
//	q := ringq.Build[byte](ringq.New(256).MultiProducer())              // → MPSC
//	q := ringq.Build[byte](ringq.New(256).MultiProducer().Exclusive())  // → MPSCLock
//
// Capacity is exact, never rounded: a buffer built with capacity n holds
// up to n elements and allocates n+1 physical slots. The spare slot keeps
// "full" and "empty" distinguishable without an element counter.
//
// # Basic Usage
//
// All variants share the same operations:
//
//	q := ringq.NewSPSC[byte](256)
//
//	// Producer side (non-blocking)
//	if !q.Push(b) {
//	    // Buffer full - drop, count, or back off
//	}
//
//	// Consumer side (non-blocking)
//	b := q.Pop()       // zero value when empty
//	b = q.Peek()       // non-destructive
//	n := q.PopN(dst)   // bulk, wraparound-safe
//	q.Flush()          // discard everything buffered
//
// Pop and Peek return the element type's zero value on an empty buffer,
// matching the classic sentinel contract: an empty buffer and a stored
// zero value look the same. When the distinction matters, use the
// error-returning pair instead:
//
//	if err := q.Enqueue(&b); ringq.IsWouldBlock(err) { ... } // full
//	v, err := q.Dequeue()
//	if ringq.IsWouldBlock(err) { ... }                       // empty
//
// # Choosing a Multi-Producer Strategy
//
// MPSC producers reserve slots optimistically and retry on CAS conflicts.
// Retries are bounded by the number of concurrently contending producers;
// under sustained contention a producer can retry indefinitely. MPSCLock
// trades that for a short mutex hold: exactly one writer completes at a
// time, so pushes may wait on the lock holder but never retry. Both give
// the consumer the same guarantee: the visible boundary never advances
// over a slot that is not fully written.
//
// # Common Patterns
//
// Byte hand-off from a receive callback to a foreground loop (SPSC):
//
//	rx := ringq.NewSPSC[byte](512)
//
//	onReceive := func(b byte) { // runs in the driver's context
//	    if !rx.Push(b) {
//	        overruns++
//	    }
//	}
//
//	for { // foreground loop
//	    buf := make([]byte, 64)
//	    n := rx.PopN(buf)
//	    if n > 0 {
//	        process(buf[:n])
//	    }
//	}
//
// Event aggregation from several sources (MPSC):
//
//	q := ringq.NewMPSC[Event](4096)
//
//	for sensor := range slices.Values(sensors) {
//	    go func(s Sensor) {
//	        for ev := range s.Events() {
//	            q.Push(ev)
//	        }
//	    }(sensor)
//	}
//
//	go func() { // single consumer
//	    backoff := iox.Backoff{}
//	    for {
//	        ev, err := q.Dequeue()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        aggregate(ev)
//	    }
//	}()
//
// # Constraints
//
// Element types must be cheap to copy and have a meaningful zero value;
// the buffers never run constructors or destructors. Capacity is fixed at
// construction. Exactly one goroutine may use the consumer side of any
// variant; concurrent consumers are undefined.
package ringq
