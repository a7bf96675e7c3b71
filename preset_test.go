// SPDX-License-Identifier: MIT-0

package crcea_test

import (
	"testing"

	"github.com/crcea-go/crcea"
)

// The reference message used by every catalogued CRC variant's "check"
// value is the ASCII string "123456789".
var checkData = []byte("123456789")

func TestPresetCheckValues(t *testing.T) {
	cases := []struct {
		name  string
		calc  func([]byte) uint64
		check uint64
	}{
		{"CRC-8/SMBUS", func(b []byte) uint64 { return uint64(crcea.CRC8SMBUS.Calc(b)) }, 0xf4},
		{"CRC-16/ARC", func(b []byte) uint64 { return uint64(crcea.CRC16ARC.Calc(b)) }, 0xbb3d},
		{"CRC-16/IBM-3740 (CCITT-FALSE)", func(b []byte) uint64 { return uint64(crcea.CRC16CCITTFALSE.Calc(b)) }, 0x29b1},
		{"CRC-32/ISO-HDLC", func(b []byte) uint64 { return uint64(crcea.CRC32ISOHDLC.Calc(b)) }, 0xcbf43926},
		{"CRC-32C (ISCSI)", func(b []byte) uint64 { return uint64(crcea.CRC32C.Calc(b)) }, 0xe3069283},
		{"CRC-64/XZ", func(b []byte) uint64 { return crcea.CRC64XZ.Calc(b) }, 0x995dc9bbdf1939fa},
	}
	for _, c := range cases {
		if got := c.calc(checkData); got != c.check {
			t.Errorf("%s: Calc(%q) = %#x, want %#x", c.name, checkData, got, c.check)
		}
	}
}

func TestPresetModelIsBuiltOnce(t *testing.T) {
	p := crcea.CRC16XMODEM
	m1 := p.Model()
	m2 := p.Model()
	if m1 != m2 {
		t.Error("Preset.Model() should return the same Model instance on every call")
	}
}

func TestPresetNewContextIndependence(t *testing.T) {
	c1 := crcea.CRC16ARC.NewContext()
	c2 := crcea.CRC16ARC.NewContext()
	c1.Update([]byte("abc"))
	if c2.Total() != 0 {
		t.Error("contexts from the same preset must not share state")
	}
}
