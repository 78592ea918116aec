// Package ring benchmarks for the SPSC ring primitives.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring_test

import (
	"testing"

	"github.com/momentics/hioload-ring/ring"
)

// BenchmarkBuffer_WriteRead benchmarks a lockstep write/read cycle.
func BenchmarkBuffer_WriteRead(b *testing.B) {
	buf := ring.NewBuffer[int](1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Write(i)
		buf.Read()
	}
}

// BenchmarkBuffer_Overwrite benchmarks overwrite on a permanently full buffer.
func BenchmarkBuffer_Overwrite(b *testing.B) {
	buf := ring.NewBuffer[int](1024)
	for i := 0; buf.Write(i); i++ {
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Overwrite(i)
	}
}

// BenchmarkQueue_TryEnqueueTryDequeue benchmarks the non-blocking cycle.
func BenchmarkQueue_TryEnqueueTryDequeue(b *testing.B) {
	q := ring.NewQueue[int](1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.TryEnqueue(i)
		q.TryDequeue()
	}
}

// BenchmarkQueue_BlockingHandoff benchmarks cross-goroutine hand-off with
// the blocking operations on both sides.
func BenchmarkQueue_BlockingHandoff(b *testing.B) {
	q := ring.NewQueue[int](1024)

	done := make(chan struct{})
	go func() {
		for i := 0; i < b.N; i++ {
			q.Dequeue()
		}
		close(done)
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
	}
	<-done
}

// BenchmarkQueue_TryPeek benchmarks a non-consuming peek on a half-full queue.
func BenchmarkQueue_TryPeek(b *testing.B) {
	q := ring.NewQueue[int](1024)
	for i := 0; i < 512; i++ {
		q.Enqueue(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.TryPeek(i & 255)
	}
}
