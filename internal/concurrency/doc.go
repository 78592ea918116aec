// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free SPSC ring primitives for hioload-ring: the padded cursor with
// park/wake support and the two ring variants built over a shared
// power-of-two slot array (latest-value buffer, blocking FIFO queue).
//
// The SPSC contract is strict: one goroutine owns the write cursor and one
// the read cursor. Nothing here is safe for multi-producer or
// multi-consumer use.
package concurrency
