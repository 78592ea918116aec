// Package ring adapts the internal concurrency ring buffer as api.Buffer.
//
// Buffer[T] is a thin wrapper over concurrency.RingBuffer[T].
// Provides latest-value hand-off between one producer and one consumer.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/internal/concurrency"
)

// Buffer[T] implements api.Buffer[T] with power-of-two capacity.
type Buffer[T any] struct {
	*concurrency.RingBuffer[T]
}

// NewBuffer creates a latest-value buffer of the given size, which must be
// a power of two greater than 1.
func NewBuffer[T any](size uint64) *Buffer[T] {
	return &Buffer[T]{RingBuffer: concurrency.NewRingBuffer[T](size)}
}

// Ensure compile-time compliance.
var _ api.Buffer[any] = (*Buffer[any])(nil)
