// SPDX-License-Identifier: MIT-0

package crcea

import "sync"

// Preset is a named CRC variant that builds its Model lazily, the
// first time one of its methods is called, guarded by sync.Once so
// concurrent first use is safe. An unused Preset never allocates a
// table.
type Preset[T Word] struct {
	bitsize                          int
	polynomial, initialCRC, xorOutput T
	reflectIn, reflectOut            bool
	algorithm                        Algorithm

	once  sync.Once
	model *Model[T]
}

func newPreset[T Word](bitsize int, polynomial, initialCRC, xorOutput T, reflectIn, reflectOut bool) *Preset[T] {
	return &Preset[T]{
		bitsize:    bitsize,
		polynomial: polynomial,
		initialCRC: initialCRC,
		xorOutput:  xorOutput,
		reflectIn:  reflectIn,
		reflectOut: reflectOut,
		algorithm:  StandardTable,
	}
}

// Model returns (building on first call) the Preset's underlying Model.
func (p *Preset[T]) Model() *Model[T] {
	p.once.Do(func() {
		p.model = MustNewModel(p.bitsize, p.polynomial, p.initialCRC, p.xorOutput, p.reflectIn, p.reflectOut, p.algorithm, nil)
	})
	return p.model
}

// NewContext returns a fresh streaming Context whose register starts at
// the preset's catalogue init value. Setup takes a user-visible CRC, so
// init is first turned into the CRC of the empty message: bit-reversed
// when the output is reflected, then XORed with the final XOR value.
func (p *Preset[T]) NewContext() *Context[T] {
	crc := p.initialCRC
	if p.reflectOut {
		crc = bitReflect(crc, p.bitsize)
	}
	return NewContext(p.Model(), crc^p.xorOutput)
}

// Calc computes the CRC of a single chunk of data in one call.
func (p *Preset[T]) Calc(data []byte) T {
	c := p.NewContext()
	c.Update(data)
	return c.Finish()
}

// Named presets, parameters from Greg Cook's CRC catalogue
// (https://reveng.sourceforge.io/crc-catalogue/all.htm), covering the
// widths and variants this module's tests exercise.
var (
	CRC8SMBUS    = newPreset[uint8](8, 0x07, 0x00, 0x00, false, false) // CRC-8/SMBUS, alias CRC-8
	CRC8ROHC     = newPreset[uint8](8, 0x07, 0xff, 0x00, true, true)   // CRC-8/ROHC
	CRC8MAXIMDOW = newPreset[uint8](8, 0x31, 0x00, 0x00, true, true)   // CRC-8/MAXIM-DOW, alias MAXIM, DOW-CRC
	CRC8AUTOSAR  = newPreset[uint8](8, 0x2f, 0xff, 0xff, false, false) // CRC-8/AUTOSAR

	CRC16ARC         = newPreset[uint16](16, 0x8005, 0x0000, 0x0000, true, true)   // CRC-16/ARC, alias CRC-16, ARC
	CRC16CCITTFALSE  = newPreset[uint16](16, 0x1021, 0xffff, 0x0000, false, false) // CRC-16/IBM-3740, alias CRC-16/CCITT-FALSE
	CRC16KERMIT      = newPreset[uint16](16, 0x1021, 0x0000, 0x0000, true, true)   // CRC-16/KERMIT, alias CRC-CCITT
	CRC16XMODEM      = newPreset[uint16](16, 0x1021, 0x0000, 0x0000, false, false) // CRC-16/XMODEM
	CRC16MODBUS      = newPreset[uint16](16, 0x8005, 0xffff, 0x0000, true, true)   // CRC-16/MODBUS
	CRC16USB         = newPreset[uint16](16, 0x8005, 0xffff, 0xffff, true, true)   // CRC-16/USB
	CRC16IBMSDLC     = newPreset[uint16](16, 0x1021, 0xffff, 0xffff, true, true)   // CRC-16/IBM-SDLC, alias X-25
	CRC16DNP         = newPreset[uint16](16, 0x3d65, 0x0000, 0xffff, true, true)   // CRC-16/DNP
	CRC16T10DIF      = newPreset[uint16](16, 0x8bb7, 0x0000, 0x0000, false, false) // CRC-16/T10-DIF
	CRC16CDMA2000    = newPreset[uint16](16, 0xc867, 0xffff, 0x0000, false, false) // CRC-16/CDMA2000

	CRC24OPENPGP = newPreset[uint32](24, 0x864cfb, 0xb704ce, 0x000000, false, false) // CRC-24/OPENPGP, alias CRC-24
	CRC24BLE     = newPreset[uint32](24, 0x00065b, 0x555555, 0x000000, true, true)   // CRC-24/BLE

	CRC32ISOHDLC = newPreset[uint32](32, 0x04c11db7, 0xffffffff, 0xffffffff, true, true)   // CRC-32/ISO-HDLC, alias CRC-32, PKZIP
	CRC32BZIP2   = newPreset[uint32](32, 0x04c11db7, 0xffffffff, 0xffffffff, false, false) // CRC-32/BZIP2
	CRC32C       = newPreset[uint32](32, 0x1edc6f41, 0xffffffff, 0xffffffff, true, true)   // CRC-32/ISCSI, alias CRC-32C, Castagnoli
	CRC32MPEG2   = newPreset[uint32](32, 0x04c11db7, 0xffffffff, 0x00000000, false, false) // CRC-32/MPEG-2
	CRC32CKSUM   = newPreset[uint32](32, 0x04c11db7, 0x00000000, 0xffffffff, false, false) // CRC-32/CKSUM, alias POSIX
	CRC32JAMCRC  = newPreset[uint32](32, 0x04c11db7, 0xffffffff, 0x00000000, true, true)   // CRC-32/JAMCRC

	CRC64XZ    = newPreset[uint64](64, 0x42f0e1eba9ea3693, 0xffffffffffffffff, 0xffffffffffffffff, true, true)   // CRC-64/XZ, alias CRC-64/GO-ECMA
	CRC64ECMA  = newPreset[uint64](64, 0x42f0e1eba9ea3693, 0x0000000000000000, 0x0000000000000000, false, false) // CRC-64/ECMA-182, alias CRC-64
	CRC64GOISO = newPreset[uint64](64, 0x000000000000001b, 0xffffffffffffffff, 0xffffffffffffffff, true, true)   // CRC-64/GO-ISO
	CRC64REDIS = newPreset[uint64](64, 0xad93d23594c935a9, 0x0000000000000000, 0x0000000000000000, true, true)   // CRC-64/REDIS
)
