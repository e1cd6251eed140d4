// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringidx_test

import (
	"testing"

	"code.hybscloud.com/ringq/internal/ringidx"
)

func TestNext(t *testing.T) {
	tests := []struct {
		pos, size, want uint64
	}{
		{0, 5, 1},
		{3, 5, 4},
		{4, 5, 0}, // wrap
		{0, 2, 1},
		{1, 2, 0}, // wrap, minimal ring
	}
	for _, tt := range tests {
		if got := ringidx.Next(tt.pos, tt.size); got != tt.want {
			t.Fatalf("Next(%d, %d): got %d, want %d", tt.pos, tt.size, got, tt.want)
		}
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		pos, n, size, want uint64
	}{
		{0, 0, 5, 0},
		{2, 2, 5, 4},
		{3, 4, 5, 2}, // wrap
		{4, 5, 5, 4}, // full lap
		{1, 1, 2, 0},
	}
	for _, tt := range tests {
		if got := ringidx.Add(tt.pos, tt.n, tt.size); got != tt.want {
			t.Fatalf("Add(%d, %d, %d): got %d, want %d", tt.pos, tt.n, tt.size, got, tt.want)
		}
	}
}

func TestAvailable(t *testing.T) {
	tests := []struct {
		in, out, size uint64
		want          int
	}{
		{0, 0, 5, 0},  // empty
		{4, 0, 5, 4},  // full (capacity 4)
		{2, 4, 5, 3},  // wrapped readable range
		{0, 1, 5, 4},  // in wrapped past out
		{1, 0, 2, 1},  // minimal ring, one buffered
	}
	for _, tt := range tests {
		if got := ringidx.Available(tt.in, tt.out, tt.size); got != tt.want {
			t.Fatalf("Available(%d, %d, %d): got %d, want %d", tt.in, tt.out, tt.size, got, tt.want)
		}
	}
}

func TestAvailableForWrite(t *testing.T) {
	tests := []struct {
		in, out, size uint64
		want          int
	}{
		{0, 0, 5, 4}, // empty: full capacity free
		{4, 0, 5, 0}, // full: spare slot never counts
		{2, 4, 5, 1},
		{0, 1, 5, 0},
		{0, 0, 2, 1},
	}
	for _, tt := range tests {
		if got := ringidx.AvailableForWrite(tt.in, tt.out, tt.size); got != tt.want {
			t.Fatalf("AvailableForWrite(%d, %d, %d): got %d, want %d", tt.in, tt.out, tt.size, got, tt.want)
		}
	}
}

// TestConservation verifies Available + AvailableForWrite covers every
// (in, out) pair: the two counts always sum to capacity.
func TestConservation(t *testing.T) {
	for size := uint64(2); size <= 9; size++ {
		capacity := int(size - 1)
		for in := uint64(0); in < size; in++ {
			for out := uint64(0); out < size; out++ {
				got := ringidx.Available(in, out, size) + ringidx.AvailableForWrite(in, out, size)
				if got != capacity {
					t.Fatalf("size %d, in %d, out %d: sum %d, want %d", size, in, out, got, capacity)
				}
			}
		}
	}
}
