// SPDX-License-Identifier: MIT-0

// Package crcea is a general-purpose, parameterisable CRC engine.
//
// Given a Model describing a CRC variant (bit width, generator
// polynomial, initial value, input/output reflection, final XOR) and a
// choice of Algorithm, it folds arbitrary-length byte input into a
// running state in streaming fashion and produces the standard CRC
// digest of that input. It expresses the full space of commonly
// catalogued CRC variants (CRC-8, CRC-16/CCITT, CRC-32/ISO-HDLC,
// CRC-32C, CRC-64/XZ, ...) and can compute them with any of seven
// evaluation strategies trading table size for throughput:
// bit-by-bit, bit-by-bit-fast, half-byte table, standard byte table,
// and slicing-by-4/8/16.
//
// The design is adapted from the dearblue/mruby-crc C engine
// (libcrcea): a single generic implementation parametrised over the
// running state's backing integer type stands in for that project's
// per-width macro expansion.
package crcea

import (
	"errors"
	"fmt"
	"math/bits"
	"sync"
	"sync/atomic"
)

// Word is the set of unsigned integer types that can back a CRC
// engine's running state. The bit width of the chosen type must be
// greater than or equal to the CRC's own bit width (Model.bitsize).
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// wordBits returns the bit width of T, derived from the all-ones value
// of T rather than unsafe.Sizeof so that the whole engine stays free of
// the unsafe package.
func wordBits[T Word]() int {
	return bits.Len64(uint64(^T(0)))
}

// Algorithm selects one of the seven evaluation strategies the engine
// can use to fold input bytes into the running CRC state. The numeric
// values match the convention of the original C engine: negative
// values need no table, zero and one address 16- and 256-entry
// tables, and the slicing values equal the number of 256-entry table
// rows (and the number of bytes consumed per step).
type Algorithm int

const (
	BitByBit      Algorithm = -2 // tableless, one bit at a time
	BitByBitFast  Algorithm = -1 // tableless, 8 precomputed polynomial shifts
	HalfByteTable Algorithm = 0  // 16-entry table, two lookups per byte
	StandardTable Algorithm = 1  // 256-entry table, one lookup per byte
	SlicingBy4    Algorithm = 4  // 4 * 256-entry table, 4 bytes per step
	SlicingBy8    Algorithm = 8  // 8 * 256-entry table, 8 bytes per step
	SlicingBy16   Algorithm = 16 // 16 * 256-entry table, 16 bytes per step
)

func (a Algorithm) String() string {
	switch a {
	case BitByBit:
		return "bitbybit"
	case BitByBitFast:
		return "bitbybit_fast"
	case HalfByteTable:
		return "halfbyte_table"
	case StandardTable:
		return "standard_table"
	case SlicingBy4:
		return "slicing_by_4"
	case SlicingBy8:
		return "slicing_by_8"
	case SlicingBy16:
		return "slicing_by_16"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// valid reports whether a is one of the seven defined algorithm values.
func (a Algorithm) valid() bool {
	switch a {
	case BitByBit, BitByBitFast, HalfByteTable, StandardTable, SlicingBy4, SlicingBy8, SlicingBy16:
		return true
	default:
		return false
	}
}

// tableBased reports whether a requires a precomputed table at all.
func (a Algorithm) tableBased() bool {
	return a >= HalfByteTable
}

// sliceWidth returns the number of input bytes a's update step
// consumes at once: 1 for HalfByteTable/StandardTable, N for
// SlicingBy{4,8,16}.
func (a Algorithm) sliceWidth() int {
	if a <= StandardTable {
		return 1
	}
	return int(a)
}

// Model is the immutable description of a CRC variant, generic over
// the integer type T used to hold its running state. A Model may be
// shared and reused concurrently: the only mutable state it carries
// is its lazily-built table, which is published behind a sync.Once so
// first use from multiple goroutines is safe.
type Model[T Word] struct {
	bitsize               int
	polynomial            T
	initialCRC            T
	xorOutput             T
	reflectIn, reflectOut bool

	algorithm Algorithm
	alloc     Allocator[T]

	tableOnce  sync.Once
	downgraded atomic.Bool
	table      []T
}

// NewModel constructs a Model, validating its parameters. bitsize must
// be in 1..wordBits(T); polynomial must be odd (its x^0 coefficient,
// i.e. bit 0, must be set); algorithm must be one of the seven defined
// Algorithm values. alloc may be nil, in which case DefaultAllocator
// is used to lazily build a table on first use; pass NoAllocator to
// force every table-based algorithm to degrade to BitByBitFast.
func NewModel[T Word](bitsize int, polynomial, initialCRC, xorOutput T, reflectIn, reflectOut bool, algorithm Algorithm, alloc Allocator[T]) (*Model[T], error) {
	w := wordBits[T]()
	if bitsize < 1 || bitsize > w {
		return nil, fmt.Errorf("crcea: bitsize %d out of range 1..%d", bitsize, w)
	}
	if polynomial&1 == 0 {
		return nil, errors.New("crcea: polynomial must be odd (bit 0 must be set)")
	}
	if !algorithm.valid() {
		return nil, fmt.Errorf("crcea: unknown algorithm %d", int(algorithm))
	}
	return &Model[T]{
		bitsize:    bitsize,
		polynomial: polynomial,
		initialCRC: initialCRC,
		xorOutput:  xorOutput,
		reflectIn:  reflectIn,
		reflectOut: reflectOut,
		algorithm:  algorithm,
		alloc:      alloc,
	}, nil
}

// MustNewModel is like NewModel but panics on error. Intended for
// package-level preset tables whose parameters are known-good at
// compile time.
func MustNewModel[T Word](bitsize int, polynomial, initialCRC, xorOutput T, reflectIn, reflectOut bool, algorithm Algorithm, alloc Allocator[T]) *Model[T] {
	m, err := NewModel(bitsize, polynomial, initialCRC, xorOutput, reflectIn, reflectOut, algorithm, alloc)
	if err != nil {
		panic(err)
	}
	return m
}

// Bitsize returns the CRC's bit width.
func (m *Model[T]) Bitsize() int { return m.bitsize }

// Algorithm returns the algorithm the model was configured with. Note
// that the dispatcher may resolve a different, narrower algorithm at
// update time (see resolveAlgorithm in kernels.go); this always
// reports the originally requested choice.
func (m *Model[T]) Algorithm() Algorithm { return m.algorithm }

// bitmask returns a value with the low n bits set (n in 0..wordBits(T)).
func bitmask[T Word](n int) T {
	w := wordBits[T]()
	if n >= w {
		return ^T(0)
	}
	if n <= 0 {
		return 0
	}
	return (T(1) << n) - 1
}

// bitReflect reverses the order of the low `bits` bits of n, one bit
// at a time rather than via the pairwise mask-swap trick common in C
// CRC code, which needs width-specific constants that don't typecheck
// across a single Go generic instantiated at multiple widths.
func bitReflect[T Word](n T, bits int) T {
	var x T
	for i := 0; i < bits; i++ {
		x <<= 1
		x |= n & 1
		n >>= 1
	}
	return x
}

// Setup maps a user-visible CRC value into the internal running state
// that the update kernels share, regardless of width or reflection.
func (m *Model[T]) Setup(crc T) T {
	return setup(m, crc)
}

// Finish maps a running state back into a user-visible CRC value. It
// is a pure function of state: calling it does not mutate state, so it
// may be called repeatedly with further updates still valid in between.
func (m *Model[T]) Finish(state T) T {
	return finish(m, state)
}

func setup[T Word](m *Model[T], crc T) T {
	w := wordBits[T]()
	s := (crc ^ m.xorOutput) & bitmask[T](m.bitsize)
	if m.reflectIn != m.reflectOut {
		s = bitReflect(s<<(w-m.bitsize), w)
	}
	if !m.reflectIn {
		s <<= w - m.bitsize
	}
	return s
}

func finish[T Word](m *Model[T], state T) T {
	w := wordBits[T]()
	if !m.reflectIn {
		state >>= w - m.bitsize
	}
	if m.reflectIn != m.reflectOut {
		state = bitReflect(state<<(w-m.bitsize), w)
	}
	state ^= m.xorOutput
	return state & bitmask[T](m.bitsize)
}
