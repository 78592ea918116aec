// Package ring
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity SPSC ring primitives for lock-free data hand-off between
// two goroutines. Two variants share one storage and cursor scheme:
// Buffer keeps latest-value semantics (reject-or-overwrite writes,
// non-consuming peek), Queue is a blocking FIFO (parking producer and
// consumer, multi-step peek, explicit wake escape hatch).
//
// Capacity must be a power of two greater than 1; one slot is sacrificed
// to tell full from empty, so usable capacity is size-1. Exactly one
// goroutine may drive the write side and exactly one the read side of any
// instance. See buffer.go and queue.go for implementation details.
package ring
