// File: internal/concurrency/ringbuffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingBuffer is the latest-value SPSC variant: bounded or overwriting
// writes, destructive reads, and a non-consuming view of the next value.

package concurrency

// RingBuffer is a single-producer/single-consumer latest-value buffer.
// Exactly one goroutine may call the write side (Write, Overwrite) and
// exactly one the read side (Read, Current, TryCurrent) at a time.
type RingBuffer[T any] struct {
	ringBase[T]
}

// NewRingBuffer allocates a buffer of power-of-two size (> 1).
func NewRingBuffer[T any](size uint64) *RingBuffer[T] {
	return &RingBuffer[T]{newRingBase[T](size)}
}

// Write stores val at the write cursor's slot and advances the cursor.
// Returns false without mutation when the buffer is full.
func (r *RingBuffer[T]) Write(val T) bool {
	if r.IsFull() {
		return false
	}
	r.buff[r.head.Load()&r.mask] = val
	r.head.Add()
	r.head.Notify()
	return true
}

// Overwrite never fails: when the buffer is full it first advances the read
// cursor, discarding the oldest unread element, then stores as Write does.
//
// Advancing the read cursor from the producer is the single exception to
// the SPSC cursor ownership rule. It races a concurrent Read; Overwrite is
// only valid while the consumer is known not to be mid-read.
func (r *RingBuffer[T]) Overwrite(val T) {
	if r.IsFull() {
		r.tail.Add()
	}
	r.buff[r.head.Load()&r.mask] = val
	r.head.Add()
	r.head.Notify()
}

// Read consumes and returns the oldest unread element. ok is false when
// the buffer is empty. Each element is returned at most once.
func (r *RingBuffer[T]) Read() (val T, ok bool) {
	lhead := r.head.Load() & r.mask
	ltail := r.tail.Load() & r.mask
	if lhead == ltail {
		return val, false
	}
	val = r.buff[ltail]
	r.tail.Add()
	return val, true
}

// TryCurrent returns the next readable element without advancing the read
// cursor. ok is false when the buffer is empty.
func (r *RingBuffer[T]) TryCurrent() (val T, ok bool) {
	lhead := r.head.Load()
	ltail := r.tail.Load()
	if lhead&r.mask == ltail&r.mask {
		return val, false
	}
	return r.buff[ltail&r.mask], true
}

// Current returns the next readable element without consuming it, parking
// on the write cursor until the producer publishes one.
func (r *RingBuffer[T]) Current() T {
	for {
		lhead := r.head.Load()
		if lhead&r.mask != r.tail.Load()&r.mask {
			return r.buff[r.tail.Load()&r.mask]
		}
		r.head.Wait(lhead)
	}
}

// WakeAll wakes any goroutine parked in Current without publishing a
// value. A released waiter rechecks and parks again while the buffer stays
// empty; shutdown paths pair WakeAll with an external flag.
func (r *RingBuffer[T]) WakeAll() {
	r.head.Notify()
	r.tail.Notify()
}
