// SPDX-License-Identifier: MIT-0

package crcea

import "testing"

func TestNewModelRejectsBadBitsize(t *testing.T) {
	if _, err := NewModel[uint8](0, 0x07, 0, 0, false, false, StandardTable, nil); err == nil {
		t.Error("bitsize 0 should be rejected")
	}
	if _, err := NewModel[uint8](9, 0x07, 0, 0, false, false, StandardTable, nil); err == nil {
		t.Error("bitsize 9 should be rejected for uint8")
	}
}

func TestNewModelRejectsEvenPolynomial(t *testing.T) {
	if _, err := NewModel[uint8](8, 0x06, 0, 0, false, false, StandardTable, nil); err == nil {
		t.Error("even polynomial should be rejected")
	}
}

func TestNewModelRejectsUnknownAlgorithm(t *testing.T) {
	if _, err := NewModel[uint8](8, 0x07, 0, 0, false, false, Algorithm(99), nil); err == nil {
		t.Error("unknown algorithm should be rejected")
	}
}

func TestMustNewModelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustNewModel[uint8](8, 0x06, 0, 0, false, false, StandardTable, nil)
}

func TestBitReflect(t *testing.T) {
	if got := bitReflect[uint8](0b10110000, 8); got != 0b00001101 {
		t.Errorf("bitReflect(0b10110000, 8) = %#b, want 0b00001101", got)
	}
	if got := bitReflect[uint8](0, 8); got != 0 {
		t.Errorf("bitReflect(0, 8) = %#b, want 0", got)
	}
	if got := bitReflect[uint8](0xff, 8); got != 0xff {
		t.Errorf("bitReflect(0xff, 8) = %#x, want 0xff", got)
	}
}

func TestSetupFinishRoundTrip(t *testing.T) {
	for _, refIn := range []bool{false, true} {
		for _, refOut := range []bool{false, true} {
			m := MustNewModel[uint16](16, 0x1021, 0xffff, 0x0000, refIn, refOut, BitByBit, nil)
			got := m.Finish(m.Setup(0xffff))
			if got != 0xffff {
				t.Errorf("refIn=%v refOut=%v: setup/finish of initial value round-trips to %#x, want 0xffff", refIn, refOut, got)
			}
		}
	}
}

func TestAlgorithmString(t *testing.T) {
	cases := map[Algorithm]string{
		BitByBit:      "bitbybit",
		BitByBitFast:  "bitbybit_fast",
		HalfByteTable: "halfbyte_table",
		StandardTable: "standard_table",
		SlicingBy4:    "slicing_by_4",
		SlicingBy8:    "slicing_by_8",
		SlicingBy16:   "slicing_by_16",
	}
	for algo, want := range cases {
		if got := algo.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(algo), got, want)
		}
	}
}

func TestBitmask(t *testing.T) {
	if got := bitmask[uint16](0); got != 0 {
		t.Errorf("bitmask(0) = %#x, want 0", got)
	}
	if got := bitmask[uint16](16); got != 0xffff {
		t.Errorf("bitmask(16) = %#x, want 0xffff", got)
	}
	if got := bitmask[uint16](12); got != 0x0fff {
		t.Errorf("bitmask(12) = %#x, want 0x0fff", got)
	}
}
