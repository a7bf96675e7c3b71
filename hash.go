// SPDX-License-Identifier: MIT-0

package crcea

import "hash"

// Hash64 is a hash.Hash that also exposes the running CRC as a uint64,
// regardless of the underlying word type.
type Hash64 interface {
	hash.Hash
	Sum64() uint64
}

type hashAdapter[T Word] struct {
	ctx        *Context[T]
	initialCRC T
}

// NewHash wraps a new Context bound to m, set up with initialCRC, in a
// hash.Hash64-compatible adapter. Reset() restores this same initialCRC,
// not whatever default m happens to carry.
func NewHash[T Word](m *Model[T], initialCRC T) Hash64 {
	return &hashAdapter[T]{ctx: NewContext(m, initialCRC), initialCRC: initialCRC}
}

func (h *hashAdapter[T]) Write(p []byte) (int, error) {
	h.ctx.Update(p)
	return len(p), nil
}

func (h *hashAdapter[T]) Sum(b []byte) []byte {
	return append(b, h.ctx.Digest()...)
}

func (h *hashAdapter[T]) Reset() {
	h.ctx.Reset(h.initialCRC)
}

func (h *hashAdapter[T]) Size() int {
	return (h.ctx.model.bitsize + 7) / 8
}

func (h *hashAdapter[T]) BlockSize() int {
	return 1
}

func (h *hashAdapter[T]) Sum64() uint64 {
	return uint64(h.ctx.Finish())
}
