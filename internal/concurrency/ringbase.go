// File: internal/concurrency/ringbase.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ringBase is the storage both ring variants share: a fixed power-of-two
// slot array addressed by masking the write and read cursors.

package concurrency

// ringBase holds the slot array and the two cursors. The head cursor marks
// the next slot to store into, the tail cursor the next slot to consume.
// One slot is sacrificed so full and empty are distinguishable by index
// comparison alone: usable capacity is len(buff)-1.
type ringBase[T any] struct {
	buff []T
	mask uint64
	head *Cursor
	tail *Cursor
}

func newRingBase[T any](size uint64) ringBase[T] {
	if size <= 1 || size&(size-1) != 0 {
		panic("ring: size must be a power of two greater than 1")
	}
	return ringBase[T]{
		buff: make([]T, size),
		mask: size - 1,
		head: NewCursor(),
		tail: NewCursor(),
	}
}

// IsFull reports whether advancing the write cursor by one would collide
// with the read cursor. Advisory snapshot: the state may change as soon as
// the call returns, and every mutating operation revalidates before acting.
func (r *ringBase[T]) IsFull() bool {
	lhead := (r.head.Load() + 1) & r.mask
	ltail := r.tail.Load() & r.mask
	return lhead == ltail
}

// IsEmpty reports whether the masked cursors coincide.
func (r *ringBase[T]) IsEmpty() bool {
	return r.head.Load()&r.mask == r.tail.Load()&r.mask
}

// Len returns the number of unread elements.
func (r *ringBase[T]) Len() int {
	return int(r.head.Load() - r.tail.Load())
}

// Cap returns the slot count. Usable capacity is Cap()-1.
func (r *ringBase[T]) Cap() int {
	return len(r.buff)
}

// Data exposes the raw slot array for iteration and testing. It carries no
// synchronization and must not race a live producer.
func (r *ringBase[T]) Data() []T {
	return r.buff
}

// available counts unread elements from the masked cursor positions,
// wraparound-aware.
func (r *ringBase[T]) available() uint64 {
	return r.availableAt(r.head.Load())
}

// availableAt counts unread elements against a caller-supplied write
// cursor snapshot, so blocking paths can park on the very value their
// availability check was computed from.
func (r *ringBase[T]) availableAt(head uint64) uint64 {
	lhead := head & r.mask
	ltail := r.tail.Load() & r.mask
	if lhead >= ltail {
		return lhead - ltail
	}
	return uint64(len(r.buff)) - ltail + lhead
}
