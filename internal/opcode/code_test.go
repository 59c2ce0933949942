// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package opcode

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"
)

func TestCodeBytes(t *testing.T) {
	modrm := func(mod, reg, rm byte) ModRM {
		var m ModRM
		m.SetMod(mod)
		m.SetReg(reg)
		m.SetRM(rm)
		return m
	}

	tests := []struct {
		Name  string
		Code  func() *Code
		Want  string
		Displ int // Offset of the displacement, if any.
		Imm   int // Offset of the immediate, if any.
	}{
		{
			Name: "REX with displacement and immediate",
			Code: func() *Code {
				c := new(Code)
				c.REX.SetOn()
				c.REX.SetW(true)
				c.Opcode[0] = 0x83
				c.OpcodeLen = 1
				c.ModRM = modrm(ModSmallDisplacedRegister, 0, 0)
				c.UseModRM = true
				c.AddDisplacement(0x10, 1)
				c.AddImmediate(0x20, 1)
				return c
			},
			Want:  "48 83 40 10 20", // add qword [rax+0x10], 0x20
			Displ: 3,
			Imm:   4,
		},
		{
			Name: "prefix opcode",
			Code: func() *Code {
				c := new(Code)
				c.AddPrefixOpcode(FwaitOpcode)
				c.Opcode[0] = 0xdf
				c.OpcodeLen = 1
				c.ModRM = 0xe0
				c.UseModRM = true
				return c
			},
			Want:  "9b df e0", // fstsw ax
			Displ: 3,
			Imm:   3,
		},
		{
			Name: "legacy prefixes and SIB",
			Code: func() *Code {
				c := new(Code)
				c.AddPrefix(PrefixFS)
				c.AddPrefix(PrefixOperandSize)
				c.Opcode[0] = 0x89
				c.OpcodeLen = 1
				c.ModRM = modrm(ModDereferenceRegister, 1, RMSIB)
				c.UseModRM = true
				c.SIB = 0x24
				c.UseSIB = true
				return c
			},
			Want:  "64 66 89 0c 24", // mov fs:[rsp], cx
			Displ: 5,
			Imm:   5,
		},
		{
			Name: "2-byte VEX",
			Code: func() *Code {
				c := new(Code)
				c.VEX.Default()
				c.VEX.SetM_MMMM(0b0_0001)
				c.VEX.SetVVVV(^byte(2) & 0b1111)
				c.Opcode[0] = 0x58
				c.OpcodeLen = 1
				c.ModRM = modrm(ModRegister, 1, 3)
				c.UseModRM = true
				return c
			},
			Want:  "c5 e8 58 cb", // vaddps xmm1, xmm2, xmm3
			Displ: 4,
			Imm:   4,
		},
		{
			Name: "forced 3-byte VEX",
			Code: func() *Code {
				c := new(Code)
				c.VEX.Default()
				c.VEX.SetM_MMMM(0b0_0001)
				c.VEX.SetVVVV(^byte(2) & 0b1111)
				c.Force3ByteVEX = true
				c.Opcode[0] = 0x58
				c.OpcodeLen = 1
				c.ModRM = modrm(ModRegister, 1, 3)
				c.UseModRM = true
				return c
			},
			Want:  "c4 e1 68 58 cb",
			Displ: 5,
			Imm:   5,
		},
		{
			Name: "XOP",
			Code: func() *Code {
				c := new(Code)
				c.VEX = DecodeVEX3(0xe8, 0x78)
				c.XOP = true
				c.Opcode[0] = 0xa2
				c.OpcodeLen = 1
				c.ModRM = 0xc1
				c.UseModRM = true
				c.AddImmediate(0x20, 1)
				return c
			},
			Want:  "8f e8 78 a2 c1 20", // vpcmov xmm0, xmm0, xmm1, xmm2
			Displ: 5,
			Imm:   5,
		},
		{
			Name: "EVEX",
			Code: func() *Code {
				c := new(Code)
				c.EVEX = EVEX{0x11, 0xe5, 0x28}
				c.Opcode[0] = 0x58
				c.OpcodeLen = 1
				c.ModRM = 0xf7
				c.UseModRM = true
				return c
			},
			Want:  "62 11 e5 28 58 f7", // vaddpd ymm14, ymm3, ymm31
			Displ: 6,
			Imm:   6,
		},
		{
			Name: "MVEX",
			Code: func() *Code {
				c := new(Code)
				c.MVEX.Default()
				c.MVEX.SetMMMM(0b0001)
				c.MVEX.SetPP(0b01)
				c.Opcode[0] = 0xfe
				c.OpcodeLen = 1
				c.ModRM = 0xc1
				c.UseModRM = true
				return c
			},
			Want:  "62 f1 79 08 fe c1", // vpaddd zmm0, zmm0, zmm1
			Displ: 6,
			Imm:   6,
		},
		{
			Name: "code offset",
			Code: func() *Code {
				c := new(Code)
				c.Opcode[0] = 0xe8
				c.OpcodeLen = 1
				c.AddCodeOffset(0xfffffffb, 4)
				return c
			},
			Want:  "e8 fb ff ff ff", // call $+0
			Displ: 1,
			Imm:   5,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			want, err := hex.DecodeString(strings.ReplaceAll(test.Want, " ", ""))
			if err != nil {
				t.Fatalf("bad code %q: %v", test.Want, err)
			}

			c := test.Code()
			if got := c.Bytes(); !bytes.Equal(got, want) {
				t.Fatalf("%s.Bytes():\nGot:  % x\nWant: % x", c, got, want)
			}

			if got := c.Len(); got != len(want) {
				t.Errorf("Len(): got %d, want %d", got, len(want))
			}

			if got := c.DisplacementOffset(); got != test.Displ {
				t.Errorf("DisplacementOffset(): got %d, want %d", got, test.Displ)
			}

			if got := c.ImmediateOffset(); got != test.Imm {
				t.Errorf("ImmediateOffset(): got %d, want %d", got, test.Imm)
			}

			var buf bytes.Buffer
			n, err := c.EncodeTo(&buf)
			if err != nil {
				t.Fatalf("EncodeTo(): %v", err)
			}

			if n != len(want) || !bytes.Equal(buf.Bytes(), want) {
				t.Errorf("EncodeTo(): wrote %d bytes % x, want % x", n, buf.Bytes(), want)
			}
		})
	}
}

func TestDecodeVEX(t *testing.T) {
	two := DecodeVEX2(0xe8)
	three := DecodeVEX3(0xe1, 0x68)
	if two != three {
		t.Fatalf("DecodeVEX2(e8): got %s, want %s", two, three)
	}

	if !two.Can2Byte() {
		t.Errorf("%s.Can2Byte(): got false, want true", two)
	}

	if _, p0 := two.Encode2Byte(); p0 != 0xe8 {
		t.Errorf("%s.Encode2Byte(): got %#02x, want 0xe8", two, p0)
	}

	if two.VVVV() != 0b1101 || two.L() || two.PP() != 0 {
		t.Errorf("DecodeVEX2(e8): got %s", two)
	}

	// W and the extended map both
	// need the 3-byte form.
	three.SetW(true)
	if three.Can2Byte() {
		t.Errorf("%s.Can2Byte(): got true, want false", three)
	}
}

func TestDisplacementCompression(t *testing.T) {
	tests := []struct {
		Name      string
		Tuple     TupleType
		Vector    int
		W         bool
		Broadcast bool
		DataSize  int
		Want      int64
		Err       bool
	}{
		{Name: "full", Tuple: TupleFull, Vector: 512, Want: 64},
		{Name: "full broadcast", Tuple: TupleFull, Vector: 512, W: true, Broadcast: true, Want: 8},
		{Name: "half", Tuple: TupleHalf, Vector: 256, Want: 16},
		{Name: "half broadcast", Tuple: TupleHalf, Vector: 256, Broadcast: true, Want: 4},
		{Name: "full mem", Tuple: TupleFullMem, Vector: 128, Want: 16},
		{Name: "scalar", Tuple: Tuple1Scalar, Vector: 128, DataSize: 32, Want: 4},
		{Name: "scalar without size", Tuple: Tuple1Scalar, Vector: 128, Err: true},
		{Name: "fixed", Tuple: Tuple1Fixed, Vector: 512, W: true, Want: 8},
		{Name: "tuple4", Tuple: Tuple4, Vector: 512, Want: 16},
		{Name: "mem128", Tuple: TupleMem128, Vector: 256, Want: 16},
		{Name: "movddup", Tuple: TupleMOVDDUP, Vector: 128, Want: 8},
		{Name: "movddup bad size", Tuple: TupleMOVDDUP, Vector: 64, Err: true},
		{Name: "none", Tuple: TupleNone, Vector: 512, Want: 1},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got, err := DisplacementCompression(test.Tuple, test.Vector, test.W, test.Broadcast, test.DataSize)
			if test.Err {
				if err == nil {
					t.Fatalf("DisplacementCompression(): got %d, want error", got)
				}

				return
			}

			if err != nil {
				t.Fatalf("DisplacementCompression(): %v", err)
			}

			if got != test.Want {
				t.Fatalf("DisplacementCompression(): got %d, want %d", got, test.Want)
			}
		})
	}
}
