// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package opcode

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMatchesMachineCode(t *testing.T) {
	tests := []struct {
		Name     string
		Encoding string
		Code     string
		Want     MachineCodeMatch
	}{
		{
			Name:     "opcode only",
			Encoding: "37",
			Code:     "37",
			Want:     Match,
		},
		{
			Name:     "REX-like opcode",
			Encoding: "48+rw",
			Code:     "49", // Looks like a REX prefix and isn't identical to 48.
			Want:     Match,
		},
		{
			Name:     "prefix opcode",
			Encoding: "9B 66 37",
			Code:     "9b 66 67 37 12",
			Want:     Match,
		},
		{
			Name:     "missing prefix opcode",
			Encoding: "9B D9 /7",
			Code:     "d9 38",
			Want:     MismatchNoPrefixOpcode,
		},
		{
			Name:     "missing prefix",
			Encoding: "66 37",
			Code:     "37 12",
			Want:     MismatchMissingMandatoryPrefix,
		},
		{
			Name:     "reordered prefixes",
			Encoding: "66 67 37",
			Code:     "67 66 37 12",
			Want:     Match,
		},
		{
			Name:     "complex prefixes",
			Encoding: "NFx 66 0F AE /7",
			Code:     "66 0f ae 38",
			Want:     Match,
		},
		{
			Name:     "forbidden rep prefix",
			Encoding: "NFx 66 0F AE /7",
			Code:     "f3 66 0f ae 38",
			Want:     MismatchForbiddenRepPrefix,
		},
		{
			Name:     "forbidden operand size prefix",
			Encoding: "NP 0F 10 /r",
			Code:     "66 0f 10 c1",
			Want:     MismatchForbiddenVEXPrefix,
		},
		{
			Name:     "missing REX.W",
			Encoding: "REX.W 03 /r",
			Code:     "41 03 c1",
			Want:     MismatchMissingREX_W,
		},
		{
			Name:     "VEX",
			Encoding: "VEX.256.66.0F38.W0 13 /r",
			Code:     "c4 e2 7d 13 ea",
			Want:     Match,
		},
		{
			Name:     "VEX map needs 3 bytes",
			Encoding: "VEX.128.66.0F38.W0 13 /r",
			Code:     "c5 f9 13 c1",
			Want:     MismatchUnexpected2ByteVEXPrefix,
		},
		{
			Name:     "VEX wrong length",
			Encoding: "VEX.128.0F.WIG 58 /r",
			Code:     "c5 f4 58 c1",
			Want:     MismatchMissingVEX_L,
		},
		{
			Name:     "fixed ModR/M.reg",
			Encoding: "80 /2 ib",
			Code:     "80 d1 80",
			Want:     Match,
		},
		{
			Name:     "wrong ModR/M.reg",
			Encoding: "80 /2 ib",
			Code:     "80 c1 80",
			Want:     MismatchWrongModRMreg,
		},
		{
			Name:     "fixed ModR/M byte",
			Encoding: "0F 01 D0",
			Code:     "0f 01 d0",
			Want:     Match,
		},
		{
			Name:     "wrong fixed ModR/M byte",
			Encoding: "0F 01 D0",
			Code:     "0f 01 d1",
			Want:     MismatchWrongOpcode,
		},
		{
			Name:     "FPU stack index",
			Encoding: "D8 C0+i",
			Code:     "d8 c3",
			Want:     Match,
		},
		{
			Name:     "VEX extended registers",
			Encoding: "VEX.NDS.256.66.0F.WIG 58 /r",
			Code:     "c5 65 58 f1", // (vaddpd ymm14 ymm3 ymm1)
			Want:     Match,
		},
		{
			Name:     "EVEX extended registers",
			Encoding: "EVEX.256.66.0F.W1 58 /r",
			Code:     "62 11 e5 28 58 f7", // (vaddpd ymm14 ymm3 ymm31)
			Want:     Match,
		},
		{
			Name:     "EVEX wrong map",
			Encoding: "EVEX.128.66.0F38.W0 18 /r",
			Code:     "62 f1 7d 08 18 c1",
			Want:     MismatchMissingVEXm_mmmm,
		},
		{
			Name:     "XOP",
			Encoding: "XOP.128.08.W0 A2 /r /is4",
			Code:     "8f e8 78 a2 c1 20",
			Want:     Match,
		},
		{
			Name:     "XOP needs XOP escape",
			Encoding: "XOP.128.08.W0 A2 /r /is4",
			Code:     "c4 e8 78 a2 c1 20",
			Want:     MismatchMissingVEXPrefix,
		},
		{
			Name:     "MVEX",
			Encoding: "MVEX.512.66.0F.W0 FE /r",
			Code:     "62 f1 79 08 fe c1",
			Want:     Match,
		},
		{
			Name:     "implied immediate",
			Encoding: "0F 0F /r B4",
			Code:     "0f 0f c1 b4",
			Want:     Match,
		},
		{
			Name:     "wrong implied immediate",
			Encoding: "0F 0F /r B4",
			Code:     "0f 0f c1 b5",
			Want:     MismatchWrongImpliedImmediate,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			encoding, err := ParseEncoding(test.Encoding)
			if err != nil {
				t.Fatalf("ParseEncoding(%q): got unexpected error: %v", test.Encoding, err)
			}

			codeS := strings.ReplaceAll(test.Code, " ", "")
			code, err := hex.DecodeString(codeS)
			if err != nil {
				t.Fatalf("bad code %q: %v", test.Code, err)
			}

			got := encoding.MatchesMachineCode(code)
			if got != test.Want {
				t.Fatalf("%q.MatchesMachineCode(% x): got %v, want %v", test.Encoding, code, got, test.Want)
			}
		})
	}
}

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		Name     string
		Encoding string
		Want     *Encoding
	}{
		{
			Name:     "opcode only",
			Encoding: "37",
			Want: &Encoding{
				Syntax: "37",
				Opcode: []byte{0x37},
			},
		},
		{
			// Make sure this is recorded as
			// an opcode, not an opcode prefix.
			Name:     "fwait",
			Encoding: "9B",
			Want: &Encoding{
				Syntax: "9B",
				Opcode: []byte{0x9b},
			},
		},
		{
			Name:     "fwait prefix",
			Encoding: "9B D9 /7",
			Want: &Encoding{
				Syntax:        "9B D9 /7",
				PrefixOpcodes: []byte{0x9b},
				Opcode:        []byte{0xd9},
				ModRM:         true,
				ModRMreg:      7 + 1,
			},
		},
		{
			Name:     "size prefixes",
			Encoding: "66 67 37",
			Want: &Encoding{
				Syntax:            "66 67 37",
				MandatoryPrefixes: []Prefix{PrefixOperandSize, PrefixAddressSize},
				Opcode:            []byte{0x37},
			},
		},
		{
			Name:     "always REX",
			Encoding: "REX + 81 /0 id",
			Want: &Encoding{
				Syntax:   "REX + 81 /0 id",
				REX:      true,
				Opcode:   []byte{0x81},
				ModRM:    true,
				ModRMreg: 1,
			},
		},
		{
			Name:     "always REX.W",
			Encoding: "REX.W + 03 /r",
			Want: &Encoding{
				Syntax:      "REX.W + 03 /r",
				OperandSize: 64,
				REX:         true,
				REX_W:       true,
				Opcode:      []byte{0x03},
				ModRM:       true,
			},
		},
		{
			Name:     "size tags",
			Encoding: "o16 a32 05 iw",
			Want: &Encoding{
				Syntax:      "o16 a32 05 iw",
				OperandSize: 16,
				AddressSize: 32,
				Opcode:      []byte{0x05},
			},
		},
		{
			Name:     "default 64-bit operand",
			Encoding: "d64 o64 50+ro",
			Want: &Encoding{
				Syntax:           "d64 o64 50+ro",
				OperandSize:      64,
				Default64:        true,
				Opcode:           []byte{0x50},
				RegisterModifier: 1,
			},
		},
		{
			Name:     "fixed ModRM mod",
			Encoding: "F3 0F 38 DD 11:rrr:bbb",
			Want: &Encoding{
				Syntax:            "F3 0F 38 DD 11:rrr:bbb",
				MandatoryPrefixes: []Prefix{0xf3},
				Opcode:            []byte{0x0f, 0x38, 0xdd},
				ModRM:             true,
				ModRMmod:          0b11 + 1,
			},
		},
		{
			Name:     "constrained ModRM mod",
			Encoding: "F3 0F 38 DD !(11):rrr:bbb",
			Want: &Encoding{
				Syntax:            "F3 0F 38 DD !(11):rrr:bbb",
				MandatoryPrefixes: []Prefix{0xf3},
				Opcode:            []byte{0x0f, 0x38, 0xdd},
				ModRM:             true,
				ModRMmod:          5,
			},
		},
		{
			Name:     "fixed ModRM reg",
			Encoding: "F3 0F 38 DD 11:101:bbb",
			Want: &Encoding{
				Syntax:            "F3 0F 38 DD 11:101:bbb",
				MandatoryPrefixes: []Prefix{0xf3},
				Opcode:            []byte{0x0f, 0x38, 0xdd},
				ModRM:             true,
				ModRMmod:          0b11 + 1,
				ModRMreg:          0b101 + 1,
			},
		},
		{
			Name:     "fixed ModRM byte",
			Encoding: "C6 F8 ib",
			Want: &Encoding{
				Syntax: "C6 F8 ib",
				Opcode: []byte{0xc6, 0xf8},
				ModRM:  true,
			},
		},
		{
			Name:     "FPU stack index",
			Encoding: "D8 C0+i",
			Want: &Encoding{
				Syntax:     "D8 C0+i",
				Opcode:     []byte{0xd8, 0xc0},
				StackIndex: 2,
				ModRM:      true,
			},
		},
		{
			Name:     "complex prefix",
			Encoding: "NFx 66 0F AE /7",
			Want: &Encoding{
				Syntax:            "NFx 66 0F AE /7",
				NoRepPrefixes:     true,
				MandatoryPrefixes: []Prefix{0x66},
				Opcode:            []byte{0x0f, 0xae},
				ModRM:             true,
				ModRMreg:          7 + 1,
			},
		},
		{
			Name:     "VEX",
			Encoding: "VEX.128.66.0F38.W0 13 /r",
			Want: &Encoding{
				Syntax:    "VEX.128.66.0F38.W0 13 /r",
				VEX:       true,
				VEX_L:     false,
				VEXpp:     0b01,
				VEXm_mmmm: 0b0_0010,
				VEX_W:     false,
				Opcode:    []byte{0x13},
				ModRM:     true,
			},
		},
		{
			Name:     "VEX ignored W outside 64-bit mode",
			Encoding: "VEX.LZ.0F38.W1 F2 /r WIG32",
			Want: &Encoding{
				Syntax:    "VEX.LZ.0F38.W1 F2 /r WIG32",
				VEX:       true,
				VEXm_mmmm: 0b0_0010,
				VEX_W:     true,
				VEX_WIG32: true,
				Opcode:    []byte{0xf2},
				ModRM:     true,
			},
		},
		{
			Name:     "EVEX",
			Encoding: "EVEX.256.66.0F.W1 58 /r",
			Want: &Encoding{
				Syntax:    "EVEX.256.66.0F.W1 58 /r",
				EVEX:      true,
				VEX_L:     true,
				EVEX_Lp:   false,
				VEXpp:     0b01,
				VEXm_mmmm: 0b0_0001,
				VEX_W:     true,
				Opcode:    []byte{0x58},
				ModRM:     true,
			},
		},
		{
			Name:     "EVEX ignored length",
			Encoding: "EVEX.LLIG.F3.0F.W0 58 /r",
			Want: &Encoding{
				Syntax:    "EVEX.LLIG.F3.0F.W0 58 /r",
				EVEX:      true,
				VEX_LIG:   true,
				VEXpp:     0b10,
				VEXm_mmmm: 0b0_0001,
				Opcode:    []byte{0x58},
				ModRM:     true,
			},
		},
		{
			Name:     "XOP",
			Encoding: "XOP.128.08.W0 A2 /r /is4",
			Want: &Encoding{
				Syntax:    "XOP.128.08.W0 A2 /r /is4",
				XOP:       true,
				VEXm_mmmm: 0b0_1000,
				VEXis4:    true,
				Opcode:    []byte{0xa2},
				ModRM:     true,
			},
		},
		{
			Name:     "MVEX",
			Encoding: "MVEX.512.66.0F.W0 FE /r",
			Want: &Encoding{
				Syntax:    "MVEX.512.66.0F.W0 FE /r",
				MVEX:      true,
				EVEX_Lp:   true,
				VEXpp:     0b01,
				VEXm_mmmm: 0b0_0001,
				Opcode:    []byte{0xfe},
				ModRM:     true,
			},
		},
		{
			Name:     "implied immediate",
			Encoding: "0F 0F /r B4",
			Want: &Encoding{
				Syntax:           "0F 0F /r B4",
				Opcode:           []byte{0x0f, 0x0f},
				ModRM:            true,
				ImpliedImmediate: []byte{0xb4},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got, err := ParseEncoding(test.Encoding)
			if err != nil {
				t.Fatalf("ParseEncoding(%q): got unexpected error: %v", test.Encoding, err)
			}

			if diff := cmp.Diff(test.Want, got); diff != "" {
				t.Fatalf("ParseEncoding(%q): (-want, +got)\n%s", test.Encoding, diff)
			}
		})
	}
}

func TestParseEncodingErrors(t *testing.T) {
	tests := []struct {
		Name     string
		Encoding string
	}{
		{Name: "empty", Encoding: ""},
		{Name: "bad clause", Encoding: "58 zz"},
		{Name: "escape only", Encoding: "0F 38"},
		{Name: "XOP low map", Encoding: "XOP.128.0F.W0 A2 /r"},
		{Name: "VEX XOP map", Encoding: "VEX.128.09.W0 A2 /r"},
		{Name: "VEX 512", Encoding: "VEX.512.0F.W0 58 /r"},
		{Name: "VEX missing map", Encoding: "VEX.128.66.W0 58 /r"},
		{Name: "bad ModRM clause", Encoding: "58 11:rrr"},
		{Name: "bad ModRM field", Encoding: "58 11:1000:bbb"},
		{Name: "two code offsets", Encoding: "E8 cw cd"},
		{Name: "two is4 clauses", Encoding: "VEX.128.66.0F3A.W0 4A /r /is4 /is4"},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got, err := ParseEncoding(test.Encoding)
			if err == nil {
				t.Fatalf("ParseEncoding(%q): got %#v, want error", test.Encoding, got)
			}
		})
	}
}

func TestEncodingMap(t *testing.T) {
	tests := []struct {
		Encoding string
		Kind     Kind
		Map      uint8
		Opcode   byte
		Vector   int
	}{
		{"37", KindLegacy, Map1Byte, 0x37, 0},
		{"0F 05", KindLegacy, Map0F, 0x05, 0},
		{"66 0F 38 00 /r", KindLegacy, Map0F38, 0x00, 0},
		{"66 0F 3A 0F /r ib", KindLegacy, Map0F3A, 0x0f, 0},
		{"VEX.256.0F.WIG 58 /r", KindVEX, 1, 0x58, 256},
		{"EVEX.512.66.0F.W1 58 /r", KindEVEX, 1, 0x58, 512},
		{"XOP.128.09.W0 90 /r", KindXOP, 9, 0x90, 128},
		{"MVEX.512.0F.W0 58 /r", KindMVEX, 1, 0x58, 512},
	}

	for _, test := range tests {
		t.Run(test.Encoding, func(t *testing.T) {
			e, err := ParseEncoding(test.Encoding)
			if err != nil {
				t.Fatal(err)
			}

			if got := e.Kind(); got != test.Kind {
				t.Errorf("Kind(): got %s, want %s", got, test.Kind)
			}

			if got := e.Map(); got != test.Map {
				t.Errorf("Map(): got %d, want %d", got, test.Map)
			}

			if got := e.OpcodeByte(); got != test.Opcode {
				t.Errorf("OpcodeByte(): got %#02x, want %#02x", got, test.Opcode)
			}

			if got := e.VectorSize(); got != test.Vector {
				t.Errorf("VectorSize(): got %d, want %d", got, test.Vector)
			}
		})
	}
}
