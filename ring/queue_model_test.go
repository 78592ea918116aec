// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// queue_model_test.go — Randomized model test: the ring queue's observable
// behavior is checked against an unbounded FIFO oracle.
package ring_test

import (
	"math/rand"
	"testing"

	"github.com/eapache/queue"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/ring"
)

// TestQueueAgainstFIFOOracle drives a random sequence of non-blocking
// operations and mirrors every successful mutation into an eapache queue.
// Any divergence in values, ordering, or occupancy fails the test.
func TestQueueAgainstFIFOOracle(t *testing.T) {
	const (
		size = 16
		ops  = 200000
	)
	rng := rand.New(rand.NewSource(1))
	q := ring.NewQueue[int](size)
	oracle := queue.New()

	for op := 0; op < ops; op++ {
		switch rng.Intn(4) {
		case 0: // try-enqueue
			v := rng.Int()
			ok := q.TryEnqueue(v)
			require.Equal(t, oracle.Length() < size-1, ok, "op %d: enqueue admissibility diverged", op)
			if ok {
				oracle.Add(v)
			}
		case 1: // try-dequeue
			v, ok := q.TryDequeue()
			require.Equal(t, oracle.Length() > 0, ok, "op %d: dequeue availability diverged", op)
			if ok {
				require.Equal(t, oracle.Remove(), v, "op %d: dequeued value diverged", op)
			}
		case 2: // try-peek at a random admissible offset
			amount := rng.Intn(size)
			v, ok := q.TryPeek(amount)
			require.Equal(t, amount < oracle.Length(), ok, "op %d: peek availability diverged", op)
			if ok {
				require.Equal(t, oracle.Get(amount), v, "op %d: peeked value diverged", op)
			}
		case 3: // advisory snapshots
			require.Equal(t, oracle.Length(), q.Len(), "op %d: length diverged", op)
			require.Equal(t, oracle.Length() == 0, q.IsEmpty(), "op %d: emptiness diverged", op)
			require.Equal(t, oracle.Length() == size-1, q.IsFull(), "op %d: fullness diverged", op)
		}
	}
}

// TestQueueCanPeekMatchesOracle checks the can_peek boundary at every
// occupancy level of a capacity-8 queue.
func TestQueueCanPeekMatchesOracle(t *testing.T) {
	const size = 8
	q := ring.NewQueue[int](size)
	oracle := queue.New()

	for fill := 0; fill < size-1; fill++ {
		for amount := 0; amount < size; amount++ {
			require.Equal(t, amount < oracle.Length(), q.CanPeek(amount),
				"fill %d amount %d", fill, amount)
		}
		q.Enqueue(fill)
		oracle.Add(fill)
	}
}
