// SPDX-License-Identifier: MIT-0

package crcea_test

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/crcea-go/crcea"
)

// Ground truth: mbsulliv/crc16's table-driven Convey spec over its
// preset catalogue, checking each preset's digest of the standard
// "123456789" reference message against its catalogued check value.
func TestPresetsConvey(t *testing.T) {
	cases := []struct {
		name  string
		calc  func([]byte) uint64
		check uint64
	}{
		{"CRC-8/SMBUS", func(b []byte) uint64 { return uint64(crcea.CRC8SMBUS.Calc(b)) }, 0xf4},
		{"CRC-8/ROHC", func(b []byte) uint64 { return uint64(crcea.CRC8ROHC.Calc(b)) }, 0xd0},
		{"CRC-16/ARC", func(b []byte) uint64 { return uint64(crcea.CRC16ARC.Calc(b)) }, 0xbb3d},
		{"CRC-16/MODBUS", func(b []byte) uint64 { return uint64(crcea.CRC16MODBUS.Calc(b)) }, 0x4b37},
		{"CRC-32/ISO-HDLC", func(b []byte) uint64 { return uint64(crcea.CRC32ISOHDLC.Calc(b)) }, 0xcbf43926},
		{"CRC-32C", func(b []byte) uint64 { return uint64(crcea.CRC32C.Calc(b)) }, 0xe3069283},
		{"CRC-64/XZ", func(b []byte) uint64 { return crcea.CRC64XZ.Calc(b) }, 0x995dc9bbdf1939fa},
	}

	for _, c := range cases {
		Convey(fmt.Sprintf("TestPresetsConvey: %s", c.name), t, func() {
			got := c.calc(checkData)
			So(fmt.Sprintf("%#x", got), ShouldEqual, fmt.Sprintf("%#x", c.check))
		})
	}
}

func TestHashConvey(t *testing.T) {
	Convey("a Hash64 adapter over CRC-16/XMODEM", t, func() {
		m := crcea.CRC16XMODEM.Model()
		h := crcea.NewHash(m, 0x0000)

		fmt.Fprint(h, "standard")
		fmt.Fprint(h, " library hash interface")
		sum1 := h.Sum64()

		h.Reset()
		fmt.Fprint(h, "standard library hash interface")
		sum2 := h.Sum64()

		Convey("Reset then rewriting the same bytes reproduces the same sum", func() {
			So(sum1, ShouldEqual, sum2)
		})

		Convey("Size and BlockSize describe a 16-bit, byte-oriented CRC", func() {
			So(h.Size(), ShouldEqual, 2)
			So(h.BlockSize(), ShouldEqual, 1)
		})
	})
}

func TestContextConvey(t *testing.T) {
	Convey("a streaming Context fed one byte at a time", t, func() {
		p := crcea.CRC32ISOHDLC
		whole := p.NewContext()
		whole.Update(checkData)
		want := whole.Finish()

		byteAtATime := p.NewContext()
		for _, b := range checkData {
			byteAtATime.Update([]byte{b})
		}

		Convey("agrees with a single bulk Update", func() {
			So(byteAtATime.Finish(), ShouldEqual, want)
		})

		Convey("and counts every byte it saw", func() {
			So(byteAtATime.Total(), ShouldEqual, uint64(len(checkData)))
		})
	})
}
