// SPDX-License-Identifier: MIT-0

package crcea

import "encoding/hex"

// Context is a mutable, per-stream holder of running CRC state plus
// total bytes processed. It is bound to a single Model (and, once the
// dispatcher resolves one, to that Model's table) and is not
// thread-safe: it is owned by one logical writer at a time.
type Context[T Word] struct {
	model *Model[T]
	state T
	total uint64
}

// NewContext creates a Context bound to m, set up with initialCRC.
func NewContext[T Word](m *Model[T], initialCRC T) *Context[T] {
	c := &Context[T]{model: m}
	c.Reset(initialCRC)
	return c
}

// Reset re-runs setup with initialCRC and zeroes the byte counter, so
// the Context (and its underlying allocation) can be reused for a new
// message.
func (c *Context[T]) Reset(initialCRC T) {
	c.state = c.model.Setup(initialCRC)
	c.total = 0
}

// Update folds p into the running state. It may be called zero or more
// times between Reset and Finish; the empty slice is always a no-op.
func (c *Context[T]) Update(p []byte) {
	c.state = c.model.Update(c.state, p)
	c.total += uint64(len(p))
}

// Finish returns the CRC for the bytes processed so far. It does not
// mutate the Context, so it may be called multiple times and further
// Update calls remain valid afterward.
func (c *Context[T]) Finish() T {
	return c.model.Finish(c.state)
}

// Total returns the number of bytes passed to Update since the last
// Reset.
func (c *Context[T]) Total() uint64 {
	return c.total
}

// Digest returns Finish() packed MSB-first into ceil(bitsize/8) bytes.
func (c *Context[T]) Digest() []byte {
	crc := c.Finish()
	n := (c.model.bitsize + 7) / 8
	out := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(crc)
		crc >>= 8
	}
	return out
}

// HexDigest returns the lowercase, zero-padded hex representation of
// Digest().
func (c *Context[T]) HexDigest() string {
	return hex.EncodeToString(c.Digest())
}
