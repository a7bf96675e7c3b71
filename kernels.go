// SPDX-License-Identifier: MIT-0

package crcea

// This file implements the update kernels (bitbybit, bitbybit_fast,
// halfbyte_table, standard_table and the slicing_by_N family), plus
// the dispatcher that picks among them.
//
// Each kernel folds a byte range into a state the same way the
// equivalent C macro in libcrcea's core.h does; the slicing family is
// generalized into one function parametrised by N instead of three
// near-identical bodies, since a Go rendition of this engine should be
// generic over width/shape rather than macro-expanded per size.

// updateBitByBit folds p into state one bit at a time, using no table.
func updateBitByBit[T Word](m *Model[T], state T, p []byte) T {
	w := wordBits[T]()
	if m.reflectIn {
		poly := bitReflect(m.polynomial<<(w-m.bitsize), w)
		for _, b := range p {
			state ^= T(b)
			for i := 0; i < 8; i++ {
				if state&1 != 0 {
					state = (state >> 1) ^ poly
				} else {
					state >>= 1
				}
			}
		}
		return state
	}
	poly := m.polynomial << (w - m.bitsize)
	for _, b := range p {
		state ^= T(b) << (w - 8)
		for i := 0; i < 8; i++ {
			if state>>(w-1) != 0 {
				state = (state << 1) ^ poly
			} else {
				state <<= 1
			}
		}
	}
	return state
}

// updateBitByBitFast folds p into state a whole byte at a time using
// eight precomputed shifted-polynomial constants instead of a table,
// eliminating the inner bit loop. Ground truth: CRC_UPDATE_BITBYBIT_FAST
// in core.h, itself citing Hacker's Delight's crc32h.
func updateBitByBitFast[T Word](m *Model[T], state T, p []byte) T {
	w := wordBits[T]()
	var g [8]T

	if m.reflectIn {
		g[0] = bitReflect(m.polynomial<<(w-m.bitsize), w)
		for i := 1; i < 8; i++ {
			prev := g[i-1]
			g[i] = (prev >> 1) ^ (g[0] & (T(0) - (prev & 1)))
		}
		for _, b := range p {
			state ^= T(b)
			var acc T
			for i := 0; i < 8; i++ {
				bit := (state >> i) & 1
				acc ^= g[7-i] & (T(0) - bit)
			}
			state = (state >> 8) ^ acc
		}
		return state
	}

	g[0] = m.polynomial << (w - m.bitsize)
	for i := 1; i < 8; i++ {
		prev := g[i-1]
		top := (prev >> (w - 1)) & 1
		g[i] = (prev << 1) ^ (g[0] & (T(0) - top))
	}
	for _, b := range p {
		state ^= T(b) << (w - 8)
		var acc T
		for i := 0; i < 8; i++ {
			bit := (state >> (w - 1 - i)) & 1
			acc ^= g[7-i] & (T(0) - bit)
		}
		state = (state << 8) ^ acc
	}
	return state
}

// updateHalfByteTable folds p into state two nibbles at a time using a
// 16-entry table.
func updateHalfByteTable[T Word](m *Model[T], table []T, state T, p []byte) T {
	w := wordBits[T]()
	if m.reflectIn {
		for _, b := range p {
			state ^= T(b)
			state = (state >> 4) ^ table[state&0xf]
			state = (state >> 4) ^ table[state&0xf]
		}
		return state
	}
	for _, b := range p {
		state ^= T(b) << (w - 8)
		state = (state << 4) ^ table[state>>(w-4)]
		state = (state << 4) ^ table[state>>(w-4)]
	}
	return state
}

// updateStandardTable folds p into state one byte at a time using a
// 256-entry table.
func updateStandardTable[T Word](m *Model[T], table []T, state T, p []byte) T {
	w := wordBits[T]()
	if m.reflectIn {
		for _, b := range p {
			state = (state >> 8) ^ table[byte(state)^b]
		}
		return state
	}
	for _, b := range p {
		state = (state << 8) ^ table[byte(state>>(w-8))^b]
	}
	return state
}

// updateSlicingByN folds p into state n bytes at a time using an
// n*256-entry table (row s derived from row s-1, see BuildTable), with
// any trailing bytes that don't fill a whole n-byte step handled by
// the standard-table recurrence over table's row 0.
func updateSlicingByN[T Word](m *Model[T], table []T, state T, p []byte, n int) T {
	w := wordBits[T]()
	full := len(p) - len(p)%n

	if m.reflectIn {
		for i := 0; i < full; i += n {
			var acc T
			for k := 0; k < n; k++ {
				lane := byte(state>>(8*k)) ^ p[i+k]
				row := table[(n-1-k)*256 : (n-1-k)*256+256]
				acc ^= row[lane]
			}
			state = (state >> (8 * n)) ^ acc
		}
	} else {
		for i := 0; i < full; i += n {
			var acc T
			for k := 0; k < n; k++ {
				lane := byte(state>>(w-8*(k+1))) ^ p[i+k]
				row := table[(n-1-k)*256 : (n-1-k)*256+256]
				acc ^= row[lane]
			}
			state = (state << (8 * n)) ^ acc
		}
	}

	if full < len(p) {
		state = updateStandardTable(m, table[:256], state, p[full:])
	}
	return state
}

// resolveAlgorithm returns the algorithm that should actually be used
// for the next update: the model's configured algorithm, or a
// downgrade to BitByBitFast if a table-based algorithm's slice needs
// more bits than T's word holds (wordBits(T) < 8*N for a slice width
// N) or its table failed to allocate. Table construction happens at
// most once per Model, guarded by m.tableOnce, so concurrent first use
// from several goroutines builds (or fails to build) the table exactly
// once.
func (m *Model[T]) resolveAlgorithm() Algorithm {
	algo := m.algorithm
	if !algo.tableBased() {
		return algo
	}
	if wordBits[T]() < 8*algo.sliceWidth() {
		return BitByBitFast
	}
	if m.downgraded.Load() {
		return BitByBitFast
	}

	m.tableOnce.Do(func() {
		alloc := m.alloc
		if alloc == nil {
			alloc = DefaultAllocator[T]
		}
		buf, ok := alloc(algo, TableLen(algo))
		if !ok {
			m.downgraded.Store(true)
			return
		}
		BuildTable(m, buf)
		m.table = buf
	})

	if m.downgraded.Load() {
		return BitByBitFast
	}
	return algo
}

// Update folds p into state using the model's configured evaluation
// strategy, lazily building (or, on allocator failure, permanently
// bypassing) a table as needed. It never fails: update on any byte
// range, including an empty one, always succeeds.
func (m *Model[T]) Update(state T, p []byte) T {
	switch algo := m.resolveAlgorithm(); {
	case algo == BitByBit:
		return updateBitByBit(m, state, p)
	case algo == BitByBitFast:
		return updateBitByBitFast(m, state, p)
	case algo == HalfByteTable:
		return updateHalfByteTable(m, m.table, state, p)
	case algo == StandardTable:
		return updateStandardTable(m, m.table, state, p)
	default: // SlicingBy4 / SlicingBy8 / SlicingBy16
		return updateSlicingByN(m, m.table, state, p, algo.sliceWidth())
	}
}
