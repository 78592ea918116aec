// File: internal/concurrency/cursor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cursor is the position counter both ring variants are built on: a
// monotonically increasing atomic value a goroutine can park on until the
// counterpart side publishes an advance.

package concurrency

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Cursor is a monotonically increasing ring position. The counter never
// wraps; the physical slot for a position is the value masked by
// capacity-1. The producing side publishes with Add, observers load with
// Load, and a goroutine may park on a snapshot with Wait until the
// counterpart calls Notify.
//
// Go's sync/atomic operations are sequentially consistent, which subsumes
// the acquire/release pairing the publish protocol requires: a reader that
// observes an advanced cursor also observes the slot store that preceded
// the advance.
type Cursor struct {
	val atomic.Uint64
	_   cpu.CacheLinePad

	waiters atomic.Int32
	_       cpu.CacheLinePad

	mu sync.Mutex
	cv *sync.Cond
}

// NewCursor returns a cursor positioned at zero.
func NewCursor() *Cursor {
	c := &Cursor{}
	c.cv = sync.NewCond(&c.mu)
	return c
}

// Load returns the current position.
func (c *Cursor) Load() uint64 {
	return c.val.Load()
}

// Add advances the position by one and returns the new value. Add does not
// wake waiters; callers pair it with Notify after the slot store.
func (c *Cursor) Add() uint64 {
	return c.val.Add(1)
}

// Wait parks the calling goroutine while the position equals old. It parks
// at most once: any broadcast returns control to the caller even if the
// position is unchanged, so the caller's recheck loop decides whether to
// park again. A stale snapshot returns immediately.
func (c *Cursor) Wait(old uint64) {
	c.mu.Lock()
	c.waiters.Add(1)
	if c.val.Load() == old {
		c.cv.Wait()
	}
	c.waiters.Add(-1)
	c.mu.Unlock()
}

// Notify wakes every goroutine parked on the cursor. The waiter count is
// registered before a waiter loads the position, so a Notify that reads
// zero waiters is ordered before any park that could have missed it; the
// uncontended path never touches the mutex.
func (c *Cursor) Notify() {
	if c.waiters.Load() == 0 {
		return
	}
	c.mu.Lock()
	c.cv.Broadcast()
	c.mu.Unlock()
}
