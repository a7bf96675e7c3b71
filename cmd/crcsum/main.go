// SPDX-License-Identifier: MIT-0

// Command crcsum computes a CRC digest of a file or of stdin, either
// using one of the library's named presets or a custom model described
// on the command line.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/crcea-go/crcea"
)

type namedPreset struct {
	bitsize int
	calc    func([]byte) uint64
}

// presets maps a catalogue name to a lookup that runs its Calc and
// widens the result to uint64 for uniform printing across word types.
var presets = map[string]namedPreset{
	"crc8/smbus":        {8, func(b []byte) uint64 { return uint64(crcea.CRC8SMBUS.Calc(b)) }},
	"crc8/rohc":         {8, func(b []byte) uint64 { return uint64(crcea.CRC8ROHC.Calc(b)) }},
	"crc8/maxim-dow":    {8, func(b []byte) uint64 { return uint64(crcea.CRC8MAXIMDOW.Calc(b)) }},
	"crc8/autosar":      {8, func(b []byte) uint64 { return uint64(crcea.CRC8AUTOSAR.Calc(b)) }},
	"crc16/arc":         {16, func(b []byte) uint64 { return uint64(crcea.CRC16ARC.Calc(b)) }},
	"crc16/ccitt-false": {16, func(b []byte) uint64 { return uint64(crcea.CRC16CCITTFALSE.Calc(b)) }},
	"crc16/kermit":      {16, func(b []byte) uint64 { return uint64(crcea.CRC16KERMIT.Calc(b)) }},
	"crc16/xmodem":      {16, func(b []byte) uint64 { return uint64(crcea.CRC16XMODEM.Calc(b)) }},
	"crc16/modbus":      {16, func(b []byte) uint64 { return uint64(crcea.CRC16MODBUS.Calc(b)) }},
	"crc16/usb":         {16, func(b []byte) uint64 { return uint64(crcea.CRC16USB.Calc(b)) }},
	"crc16/ibm-sdlc":    {16, func(b []byte) uint64 { return uint64(crcea.CRC16IBMSDLC.Calc(b)) }},
	"crc16/dnp":         {16, func(b []byte) uint64 { return uint64(crcea.CRC16DNP.Calc(b)) }},
	"crc16/t10-dif":     {16, func(b []byte) uint64 { return uint64(crcea.CRC16T10DIF.Calc(b)) }},
	"crc16/cdma2000":    {16, func(b []byte) uint64 { return uint64(crcea.CRC16CDMA2000.Calc(b)) }},
	"crc24/openpgp":     {24, func(b []byte) uint64 { return uint64(crcea.CRC24OPENPGP.Calc(b)) }},
	"crc24/ble":         {24, func(b []byte) uint64 { return uint64(crcea.CRC24BLE.Calc(b)) }},
	"crc32/iso-hdlc":    {32, func(b []byte) uint64 { return uint64(crcea.CRC32ISOHDLC.Calc(b)) }},
	"crc32/bzip2":       {32, func(b []byte) uint64 { return uint64(crcea.CRC32BZIP2.Calc(b)) }},
	"crc32c":            {32, func(b []byte) uint64 { return uint64(crcea.CRC32C.Calc(b)) }},
	"crc32/mpeg-2":      {32, func(b []byte) uint64 { return uint64(crcea.CRC32MPEG2.Calc(b)) }},
	"crc32/cksum":       {32, func(b []byte) uint64 { return uint64(crcea.CRC32CKSUM.Calc(b)) }},
	"crc32/jamcrc":      {32, func(b []byte) uint64 { return uint64(crcea.CRC32JAMCRC.Calc(b)) }},
	"crc64/xz":          {64, func(b []byte) uint64 { return crcea.CRC64XZ.Calc(b) }},
	"crc64/ecma-182":    {64, func(b []byte) uint64 { return crcea.CRC64ECMA.Calc(b) }},
	"crc64/go-iso":      {64, func(b []byte) uint64 { return crcea.CRC64GOISO.Calc(b) }},
	"crc64/redis":       {64, func(b []byte) uint64 { return crcea.CRC64REDIS.Calc(b) }},
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: crcsum [options] [file]")
	fmt.Fprintln(os.Stderr, "Reads from stdin if file is omitted.")
	fmt.Fprintln(os.Stderr, "\nOptions:")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "\nPresets (-preset):")
	for name := range presets {
		fmt.Fprintf(os.Stderr, "  %s\n", name)
	}
	fmt.Fprintln(os.Stderr, "\nCustom models (when -preset is not given):")
	fmt.Fprintln(os.Stderr, "  crcsum -width=32 -poly=0x4c11db7 -init=0xffffffff -xorout=0xffffffff -refin -refout")
}

func main() {
	preset := flag.String("preset", "", "name of a catalogued CRC variant, e.g. crc32/iso-hdlc")
	width := flag.Int("width", 32, "CRC width in bits (1..64), for a custom model")
	poly := flag.Uint64("poly", 0x04c11db7, "generator polynomial, for a custom model")
	init := flag.Uint64("init", 0xffffffff, "initial register value, for a custom model")
	xorout := flag.Uint64("xorout", 0xffffffff, "final XOR value, for a custom model")
	refin := flag.Bool("refin", true, "reflect each input byte before use, for a custom model")
	refout := flag.Bool("refout", true, "reflect the final register before the XOR, for a custom model")
	algoName := flag.String("algo", "standard_table", "evaluation strategy for a custom model: bitbybit, bitbybit_fast, halfbyte_table, standard_table, slicing_by_4, slicing_by_8, slicing_by_16")

	flag.Usage = printUsage
	flag.Parse()

	var data []byte
	var err error
	switch flag.NArg() {
	case 0:
		data, err = io.ReadAll(os.Stdin)
	case 1:
		data, err = os.ReadFile(flag.Arg(0))
	default:
		printUsage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("crcsum: %v", err)
	}

	if *preset != "" {
		p, ok := presets[strings.ToLower(*preset)]
		if !ok {
			log.Fatalf("crcsum: unknown preset %q", *preset)
		}
		digits := (p.bitsize + 3) / 4
		fmt.Printf("%0*x\n", digits, p.calc(data))
		return
	}

	algo, err := parseAlgorithm(*algoName)
	if err != nil {
		log.Fatalf("crcsum: %v", err)
	}

	result, err := calcCustom(*width, *poly, *init, *xorout, *refin, *refout, algo, data)
	if err != nil {
		log.Fatalf("crcsum: %v", err)
	}
	digits := (*width + 3) / 4
	fmt.Printf("%0*x\n", digits, result)
}

func parseAlgorithm(name string) (crcea.Algorithm, error) {
	switch strings.ToLower(name) {
	case "bitbybit":
		return crcea.BitByBit, nil
	case "bitbybit_fast":
		return crcea.BitByBitFast, nil
	case "halfbyte_table":
		return crcea.HalfByteTable, nil
	case "standard_table":
		return crcea.StandardTable, nil
	case "slicing_by_4":
		return crcea.SlicingBy4, nil
	case "slicing_by_8":
		return crcea.SlicingBy8, nil
	case "slicing_by_16":
		return crcea.SlicingBy16, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q", name)
	}
}

// calcCustom builds a Model of the smallest word type that can hold
// width bits and runs it over data. Go generics need their type
// parameter at compile time, so this dispatches over the handful of
// supported widths rather than picking T dynamically. init is the
// initial register value; Setup takes a user-visible CRC, so it is given
// the CRC of the empty message: init, bit-reversed when refout is set,
// XORed with xorout.
func calcCustom(width int, poly, init, xorout uint64, refin, refout bool, algo crcea.Algorithm, data []byte) (uint64, error) {
	start := init
	if refout {
		start = 0
		for i := 0; i < width; i++ {
			start = start<<1 | (init>>i)&1
		}
	}
	start ^= xorout
	switch {
	case width <= 8:
		m, err := crcea.NewModel[uint8](width, uint8(poly), uint8(init), uint8(xorout), refin, refout, algo, nil)
		if err != nil {
			return 0, err
		}
		return uint64(m.Finish(m.Update(m.Setup(uint8(start)), data))), nil
	case width <= 16:
		m, err := crcea.NewModel[uint16](width, uint16(poly), uint16(init), uint16(xorout), refin, refout, algo, nil)
		if err != nil {
			return 0, err
		}
		return uint64(m.Finish(m.Update(m.Setup(uint16(start)), data))), nil
	case width <= 32:
		m, err := crcea.NewModel[uint32](width, uint32(poly), uint32(init), uint32(xorout), refin, refout, algo, nil)
		if err != nil {
			return 0, err
		}
		return uint64(m.Finish(m.Update(m.Setup(uint32(start)), data))), nil
	case width <= 64:
		m, err := crcea.NewModel[uint64](width, poly, init, xorout, refin, refout, algo, nil)
		if err != nil {
			return 0, err
		}
		return m.Finish(m.Update(m.Setup(start), data)), nil
	default:
		return 0, fmt.Errorf("width %d out of range 1..64", width)
	}
}
