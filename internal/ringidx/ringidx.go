// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringidx provides wraparound index arithmetic shared by the
// ring buffer variants.
//
// All positions are already reduced modulo size, where size is the
// physical slot count (capacity + 1). The spare slot keeps "full" and
// "empty" distinguishable without a separate element counter:
// the buffer is empty when in == out and full when Next(in) == out.
package ringidx

// Next returns the position following pos.
func Next(pos, size uint64) uint64 {
	pos++
	if pos == size {
		return 0
	}
	return pos
}

// Add advances pos by n. n must not exceed size.
func Add(pos, n, size uint64) uint64 {
	pos += n
	if pos >= size {
		pos -= size
	}
	return pos
}

// Available returns the number of readable slots between the consumer
// position out and the producer boundary in.
func Available(in, out, size uint64) int {
	return int((in + size - out) % size)
}

// AvailableForWrite returns the number of writable slots, keeping one
// slot spare.
func AvailableForWrite(in, out, size uint64) int {
	return int((out + size - in - 1) % size)
}
