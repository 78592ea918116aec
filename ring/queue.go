// Package ring adapts the internal concurrency ring queue as api.Queue.
//
// Queue[T] is a thin wrapper over concurrency.RingQueue[T].
// Provides blocking FIFO hand-off between one producer and one consumer.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/internal/concurrency"
)

// Queue[T] implements api.Queue[T] with power-of-two capacity.
type Queue[T any] struct {
	*concurrency.RingQueue[T]
}

// NewQueue creates a blocking FIFO queue of the given size, which must be
// a power of two greater than 1.
func NewQueue[T any](size uint64) *Queue[T] {
	return &Queue[T]{RingQueue: concurrency.NewRingQueue[T](size)}
}

// Ensure compile-time compliance.
var _ api.Queue[any] = (*Queue[any])(nil)
