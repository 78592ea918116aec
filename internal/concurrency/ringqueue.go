// File: internal/concurrency/ringqueue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingQueue is the blocking FIFO SPSC variant: the producer parks when the
// queue is full, the consumer when it is empty, and the consumer may peek
// an arbitrary number of elements ahead of the consume point.

package concurrency

// RingQueue is a single-producer/single-consumer blocking FIFO queue.
// Exactly one goroutine may call the write side (Enqueue, TryEnqueue) and
// exactly one the read side (Dequeue, TryDequeue, Current, Peek) at a time.
//
// Every blocking operation loops check, park-if-unsatisfied, recheck on
// wake until its condition holds, and loads its park snapshot before the
// condition check: a publish landing between the check and the park then
// makes the snapshot stale and Wait returns immediately instead of
// missing the wakeup. There are no timeouts: a parked goroutine stays
// parked until the counterpart advances its cursor or WakeAll is called.
type RingQueue[T any] struct {
	ringBase[T]
}

// NewRingQueue allocates a queue of power-of-two size (> 1).
func NewRingQueue[T any](size uint64) *RingQueue[T] {
	return &RingQueue[T]{newRingBase[T](size)}
}

// Enqueue appends val, parking on the read cursor while the queue is full.
func (q *RingQueue[T]) Enqueue(val T) {
	for {
		lhead := q.head.Load()
		ltail := q.tail.Load()
		if (lhead+1)&q.mask != ltail&q.mask {
			break
		}
		q.tail.Wait(ltail)
	}
	q.buff[q.head.Load()&q.mask] = val
	q.head.Add()
	q.head.Notify()
}

// TryEnqueue appends val unless the queue is full; reports success.
func (q *RingQueue[T]) TryEnqueue(val T) bool {
	lhead := q.head.Load()
	ltail := q.tail.Load()
	if (lhead+1)&q.mask == ltail&q.mask {
		return false
	}
	q.buff[lhead&q.mask] = val
	q.head.Add()
	q.head.Notify()
	return true
}

// Dequeue removes and returns the oldest element, parking on the write
// cursor while the queue is empty.
func (q *RingQueue[T]) Dequeue() T {
	for {
		lhead := q.head.Load()
		if lhead&q.mask != q.tail.Load()&q.mask {
			break
		}
		q.head.Wait(lhead)
	}
	val := q.buff[q.tail.Load()&q.mask]
	q.tail.Add()
	q.tail.Notify()
	return val
}

// TryDequeue removes and returns the oldest element; ok is false when the
// queue is empty.
func (q *RingQueue[T]) TryDequeue() (val T, ok bool) {
	lhead := q.head.Load() & q.mask
	ltail := q.tail.Load() & q.mask
	if lhead == ltail {
		return val, false
	}
	val = q.buff[ltail]
	q.tail.Add()
	q.tail.Notify()
	return val, true
}

// TryCurrent returns the next element to dequeue without consuming it; ok
// is false when the queue is empty.
func (q *RingQueue[T]) TryCurrent() (val T, ok bool) {
	lhead := q.head.Load()
	ltail := q.tail.Load()
	if lhead&q.mask == ltail&q.mask {
		return val, false
	}
	return q.buff[ltail&q.mask], true
}

// Current returns the next element to dequeue without consuming it,
// parking on the write cursor until one is available.
func (q *RingQueue[T]) Current() T {
	for {
		lhead := q.head.Load()
		if lhead&q.mask != q.tail.Load()&q.mask {
			return q.buff[q.tail.Load()&q.mask]
		}
		q.head.Wait(lhead)
	}
}

// CanPeek reports whether at least amount+1 unread elements are available.
// amount must be in [0, Cap()): offsets at or past capacity are a contract
// violation and panic.
func (q *RingQueue[T]) CanPeek(amount int) bool {
	if amount < 0 || amount >= len(q.buff) {
		panic("ring: peek offset out of range")
	}
	return uint64(amount) < q.available()
}

// TryPeek returns the element amount positions ahead of the read cursor
// (0 = next to dequeue) without mutating either cursor; ok is false when
// fewer than amount+1 elements are available.
func (q *RingQueue[T]) TryPeek(amount int) (val T, ok bool) {
	if amount < 0 || amount >= len(q.buff) {
		panic("ring: peek offset out of range")
	}
	if uint64(amount) >= q.available() {
		return val, false
	}
	ltail := q.tail.Load() & q.mask
	return q.buff[(ltail+uint64(amount))&q.mask], true
}

// Peek returns the element amount positions ahead of the read cursor,
// parking on the write cursor until enough elements are available. The
// availability check is derived from the same write cursor snapshot the
// park uses, so a publish between check and park is never missed. It
// never consumes.
func (q *RingQueue[T]) Peek(amount int) T {
	if amount < 0 || amount >= len(q.buff) {
		panic("ring: peek offset out of range")
	}
	for {
		lhead := q.head.Load()
		if uint64(amount) < q.availableAt(lhead) {
			break
		}
		q.head.Wait(lhead)
	}
	ltail := q.tail.Load() & q.mask
	return q.buff[(ltail+uint64(amount))&q.mask]
}

// WakeAll unconditionally wakes goroutines parked on either cursor. A
// released waiter rechecks its condition and parks again if it still does
// not hold; the escape hatch exists for shutdown and flush paths composed
// with an external flag.
func (q *RingQueue[T]) WakeAll() {
	q.head.Notify()
	q.tail.Notify()
}
