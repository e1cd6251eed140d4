// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq_test

import (
	"testing"

	"code.hybscloud.com/ringq"
)

// =============================================================================
// Builder API Tests
// =============================================================================

// TestBuilderSelection verifies the builder picks the right algorithm for
// each constraint combination.
func TestBuilderSelection(t *testing.T) {
	tests := []struct {
		name  string
		build func() ringq.Buffer[int]
		want  string
	}{
		{
			name:  "Default",
			build: func() ringq.Buffer[int] { return ringq.Build[int](ringq.New(5)) },
			want:  "*ringq.SPSC[int]",
		},
		{
			name:  "MultiProducer",
			build: func() ringq.Buffer[int] { return ringq.Build[int](ringq.New(5).MultiProducer()) },
			want:  "*ringq.MPSC[int]",
		},
		{
			name:  "MultiProducerExclusive",
			build: func() ringq.Buffer[int] { return ringq.Build[int](ringq.New(5).MultiProducer().Exclusive()) },
			want:  "*ringq.MPSCLock[int]",
		},
		{
			name:  "TypedSPSC",
			build: func() ringq.Buffer[int] { return ringq.BuildSPSC[int](ringq.New(5)) },
			want:  "*ringq.SPSC[int]",
		},
		{
			name:  "TypedMPSC",
			build: func() ringq.Buffer[int] { return ringq.BuildMPSC[int](ringq.New(5).MultiProducer()) },
			want:  "*ringq.MPSC[int]",
		},
		{
			name:  "TypedMPSCExclusive",
			build: func() ringq.Buffer[int] { return ringq.BuildMPSC[int](ringq.New(5).MultiProducer().Exclusive()) },
			want:  "*ringq.MPSCLock[int]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.build()

			var typeName string
			switch q.(type) {
			case *ringq.SPSC[int]:
				typeName = "*ringq.SPSC[int]"
			case *ringq.MPSC[int]:
				typeName = "*ringq.MPSC[int]"
			case *ringq.MPSCLock[int]:
				typeName = "*ringq.MPSCLock[int]"
			}
			if typeName != tt.want {
				t.Fatalf("type: got %s, want %s", typeName, tt.want)
			}
			if q.Cap() != 5 {
				t.Fatalf("Cap: got %d, want 5", q.Cap())
			}

			// Built buffers must actually work.
			if !q.Push(42) {
				t.Fatal("Push on fresh buffer failed")
			}
			if got := q.Pop(); got != 42 {
				t.Fatalf("Pop: got %d, want 42", got)
			}
		})
	}
}

// TestBuilderPanics verifies misconfiguration panics.
func TestBuilderPanics(t *testing.T) {
	tests := []struct {
		name string
		f    func()
	}{
		{"CapacityZero", func() { ringq.New(0) }},
		{"ExclusiveWithoutMulti", func() { ringq.Build[int](ringq.New(5).Exclusive()) }},
		{"BuildSPSCMulti", func() { ringq.BuildSPSC[int](ringq.New(5).MultiProducer()) }},
		{"BuildSPSCExclusive", func() { ringq.BuildSPSC[int](ringq.New(5).Exclusive()) }},
		{"BuildMPSCSingle", func() { ringq.BuildMPSC[int](ringq.New(5)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			tt.f()
		})
	}
}
