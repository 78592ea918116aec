// Package api
// Author: momentics@gmail.com
//
// Contracts for the SPSC ring primitives: the shared storage surface and
// the two variants built on it.

package api

// Ring is the surface common to both ring variants: advisory state
// snapshots over the shared cursors.
type Ring[T any] interface {
	// IsFull reports whether one more write would collide with the read cursor.
	IsFull() bool
	// IsEmpty reports whether the masked cursors coincide.
	IsEmpty() bool
	// Len returns the number of unread elements.
	Len() int
	// Cap returns the slot count; usable capacity is Cap()-1.
	Cap() int
	// Data exposes raw slot storage for iteration and testing.
	Data() []T
}

// Buffer is the latest-value variant: bounded or overwriting writes,
// destructive reads, non-consuming view of the next value.
type Buffer[T any] interface {
	Ring[T]

	// Write stores a value; returns false without mutation when full.
	Write(val T) bool
	// Overwrite stores a value, discarding the oldest unread element when full.
	Overwrite(val T)
	// Read consumes the oldest unread element; ok false when empty.
	Read() (T, bool)
	// Current returns the next readable element without consuming it,
	// blocking until one is available.
	Current() T
	// TryCurrent is Current without blocking; ok false when empty.
	TryCurrent() (T, bool)
	// WakeAll releases any goroutine parked in Current.
	WakeAll()
}

// Queue is the blocking FIFO variant: parks the producer when full and the
// consumer when empty, and supports peeking ahead of the consume point.
type Queue[T any] interface {
	Ring[T]

	// Enqueue appends a value, blocking while the queue is full.
	Enqueue(val T)
	// TryEnqueue appends a value unless full; reports success.
	TryEnqueue(val T) bool
	// Dequeue removes the oldest element, blocking while the queue is empty.
	Dequeue() T
	// TryDequeue removes the oldest element; ok false when empty.
	TryDequeue() (T, bool)
	// Current returns the next element to dequeue without consuming it,
	// blocking until one is available.
	Current() T
	// TryCurrent is Current without blocking; ok false when empty.
	TryCurrent() (T, bool)
	// CanPeek reports whether at least amount+1 unread elements are available.
	CanPeek(amount int) bool
	// Peek returns the element amount positions ahead of the read cursor,
	// blocking until enough elements are available. Never consumes.
	Peek(amount int) T
	// TryPeek is Peek without blocking; ok false when unavailable.
	TryPeek(amount int) (T, bool)
	// WakeAll unconditionally wakes goroutines parked on either cursor.
	WakeAll()
}
