// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustInstruction(t *testing.T, code Code, ops ...Operand) Instruction {
	t.Helper()
	inst, err := NewInstruction(code, ops...)
	if err != nil {
		t.Fatalf("NewInstruction(%s): %v", code, err)
	}

	return inst
}

func TestEncode(t *testing.T) {
	tests := []struct {
		Name    string
		Bitness int
		IP      uint64
		Code    Code
		Ops     []Operand
		Setup   func(inst *Instruction)
		Options EncoderOptions
		Want    string
	}{
		{
			Name:    "pop rcx",
			Bitness: 64,
			Code:    Pop_rm64,
			Ops:     []Operand{Reg(RCX)},
			Want:    "8fc1",
		},
		{
			Name:    "add scaled index",
			Bitness: 64,
			Code:    Add_rm64_r64,
			Ops:     []Operand{Mem(Memory{Base: RAX, Index: RBX, Scale: 4, Displacement: 0x10}), Reg(RCX)},
			Want:    "48014c9810",
		},
		{
			Name:    "add extended registers",
			Bitness: 64,
			Code:    Add_rm64_r64,
			Ops:     []Operand{Mem(Memory{Base: R12, Index: R13, Scale: 8, Displacement: -8}), Reg(R8)},
			Want:    "4f0144ecf8",
		},
		{
			Name:    "mov fs absolute",
			Bitness: 64,
			Code:    Mov_r64_rm64,
			Ops:     []Operand{Reg(RAX), Mem(Memory{Segment: FS, DisplSize: 8})},
			Want:    "64488b042500000000",
		},
		{
			Name:    "lea rip",
			Bitness: 64,
			Code:    Lea_r64_m,
			Ops:     []Operand{Reg(RAX), Mem(Memory{Base: RIP, Displacement: 0x10})},
			Want:    "488d0510000000",
		},
		{
			Name:    "mov imm64",
			Bitness: 64,
			Code:    Mov_r64_imm64,
			Ops:     []Operand{Reg(RAX), Uimm(0x1122334455667788)},
			Want:    "48b88877665544332211",
		},
		{
			Name:    "push r12",
			Bitness: 64,
			Code:    Push_r64,
			Ops:     []Operand{Reg(R12)},
			Want:    "4154",
		},
		{
			Name:    "push sign-extended",
			Bitness: 64,
			Code:    Pushq_imm8,
			Ops:     []Operand{Imm(-128)},
			Want:    "6a80",
		},
		{
			Name:    "mov sil",
			Bitness: 64,
			Code:    Mov_rm8_r8,
			Ops:     []Operand{Reg(AL), Reg(SIL)},
			Want:    "4088f0",
		},
		{
			Name:    "rol by one",
			Bitness: 64,
			Code:    Rol_rm8_1,
			Ops:     []Operand{Reg(AL), Imm(1)},
			Want:    "d0c0",
		},
		{
			Name:    "add al",
			Bitness: 32,
			Code:    Add_AL_imm8,
			Ops:     []Operand{Reg(AL), Imm(5)},
			Want:    "0405",
		},
		{
			Name:    "add al unsigned",
			Bitness: 32,
			Code:    Add_AL_imm8,
			Ops:     []Operand{Reg(AL), Imm(255)},
			Want:    "04ff",
		},
		{
			Name:    "add eax unsigned",
			Bitness: 32,
			Code:    Add_EAX_imm32,
			Ops:     []Operand{Reg(EAX), Imm(0xffffffff)},
			Want:    "05ffffffff",
		},
		{
			Name:    "add sign-extended byte",
			Bitness: 32,
			Code:    Add_rm32_imm8,
			Ops:     []Operand{Reg(EAX), Imm(-1)},
			Want:    "83c0ff",
		},
		{
			Name:    "add sign-extended doubleword",
			Bitness: 64,
			Code:    Add_RAX_imm32,
			Ops:     []Operand{Reg(RAX), Imm(-0x80000000)},
			Want:    "480500000080",
		},
		{
			Name:    "enter",
			Bitness: 64,
			Code:    Enterq_imm16_imm8,
			Ops:     []Operand{Imm(16), Imm(1)},
			Want:    "c8100001",
		},
		{
			Name:    "call",
			Bitness: 64,
			IP:      0x1000,
			Code:    Call_rel32_64,
			Ops:     []Operand{Branch(0x2000)},
			Want:    "e8fb0f0000",
		},
		{
			Name:    "jmp to self",
			Bitness: 64,
			IP:      0x1000,
			Code:    Jmp_rel8_64,
			Ops:     []Operand{Branch(0x1000)},
			Want:    "ebfe",
		},
		{
			Name:    "call 16",
			Bitness: 16,
			Code:    Call_rel16,
			Ops:     []Operand{Branch(0)},
			Want:    "e8fdff",
		},
		{
			Name:    "xlat",
			Bitness: 64,
			Code:    Xlat_m8,
			Ops:     []Operand{Mem(Memory{Base: RBX, Index: AL})},
			Want:    "d7",
		},
		{
			Name:    "fstenv",
			Bitness: 64,
			Code:    Fstenv_m28byte,
			Ops:     []Operand{Mem(Memory{Base: RAX})},
			Want:    "9bd930",
		},
		{
			Name:    "ebp needs a displacement",
			Bitness: 32,
			Code:    Add_rm32_r32,
			Ops:     []Operand{Mem(Memory{Base: EBP}), Reg(EAX)},
			Want:    "014500",
		},
		{
			Name:    "esp needs a sib",
			Bitness: 32,
			Code:    Add_rm32_r32,
			Ops:     []Operand{Mem(Memory{Base: ESP}), Reg(EAX)},
			Want:    "010424",
		},
		{
			Name:    "16-bit addressing in 32-bit mode",
			Bitness: 32,
			Code:    Mov_r32_rm32,
			Ops:     []Operand{Reg(EAX), Mem(Memory{Base: BX})},
			Want:    "678b07",
		},
		{
			Name:    "16-bit base and index",
			Bitness: 16,
			Code:    Mov_r16_rm16,
			Ops:     []Operand{Reg(AX), Mem(Memory{Base: BX, Index: SI, Displacement: 0x1234})},
			Want:    "8b803412",
		},
		{
			Name:    "16-bit absolute",
			Bitness: 16,
			Code:    Mov_r16_rm16,
			Ops:     []Operand{Reg(AX), Mem(Memory{Displacement: 0x1234, DisplSize: 2})},
			Want:    "8b063412",
		},
		{
			Name:    "pop cs",
			Bitness: 16,
			Code:    Popw_CS,
			Ops:     []Operand{Reg(CS)},
			Want:    "0f",
		},
		{
			Name:    "vex 2-byte",
			Bitness: 64,
			Code:    VEX_Vaddps_xmm_xmm_xmmm128,
			Ops:     []Operand{Reg(XMM0), Reg(XMM1), Reg(XMM2)},
			Want:    "c5f058c2",
		},
		{
			Name:    "vex 3-byte",
			Bitness: 64,
			Code:    VEX_Vaddps_xmm_xmm_xmmm128,
			Ops:     []Operand{Reg(XMM8), Reg(XMM9), Reg(XMM10)},
			Want:    "c4413058c2",
		},
		{
			Name:    "vex 3-byte forced",
			Bitness: 64,
			Code:    VEX_Vaddps_xmm_xmm_xmmm128,
			Ops:     []Operand{Reg(XMM0), Reg(XMM1), Reg(XMM2)},
			Options: EncoderPreventVEX2,
			Want:    "c4e17058c2",
		},
		{
			Name:    "evex masked",
			Bitness: 64,
			Code:    EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er,
			Ops:     []Operand{Reg(ZMM0), Reg(ZMM1), Reg(ZMM2)},
			Setup: func(inst *Instruction) {
				inst.SetOpMask(K1)
				inst.SetZeroingMasking(true)
			},
			Want: "62f174c958c2",
		},
		{
			Name:    "evex compressed displacement",
			Bitness: 64,
			Code:    EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er,
			Ops:     []Operand{Reg(ZMM0), Reg(ZMM1), Mem(Memory{Base: RAX, Displacement: 0x40})},
			Want:    "62f17448584001",
		},
		{
			Name:    "evex broadcast",
			Bitness: 64,
			Code:    EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er,
			Ops:     []Operand{Reg(ZMM0), Reg(ZMM1), Mem(Memory{Base: RAX, Displacement: 0x40, Broadcast: true})},
			Want:    "62f17458584010",
		},
		{
			Name:    "vex gather",
			Bitness: 64,
			Code:    VEX_Vpgatherdd_xmm_vm32x_xmm,
			Ops:     []Operand{Reg(XMM1), Mem(Memory{Base: RAX, Index: XMM2, Scale: 4, Displacement: 0x10}), Reg(XMM3)},
			Want:    "c4e261904c9010",
		},
		{
			Name:    "evex gather high index",
			Bitness: 64,
			Code:    EVEX_Vpgatherdd_zmm_k1_vm32z,
			Ops:     []Operand{Reg(ZMM1), Mem(Memory{Base: RAX, Index: ZMM18, Scale: 4, Displacement: 0x40})},
			Setup:   func(inst *Instruction) { inst.SetOpMask(K1) },
			Want:    "62f27d41904c9010",
		},
		{
			Name:    "evex scatter without base",
			Bitness: 32,
			Code:    EVEX_Vscatterqpd_vm64y_k1_ymm,
			Ops:     []Operand{Mem(Memory{Index: YMM5, Scale: 8, Displacement: 0x1000}), Reg(YMM2)},
			Setup:   func(inst *Instruction) { inst.SetOpMask(K7) },
			Want:    "62f2fd2fa314ed00100000",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			inst := mustInstruction(t, test.Code, test.Ops...)
			if test.Setup != nil {
				test.Setup(&inst)
			}

			var buf bytes.Buffer
			e := NewEncoder(test.Bitness, &buf)
			e.SetOptions(test.Options)
			n, err := e.Encode(&inst, test.IP)
			if err != nil {
				t.Fatalf("Encode(%s): %v", &inst, err)
			}

			got := hex.EncodeToString(buf.Bytes())
			if got != test.Want {
				t.Fatalf("Encode(%s):\nGot:  %s\nWant: %s", &inst, got, test.Want)
			}

			if n != buf.Len() {
				t.Errorf("Encode(%s): returned %d, wrote %d bytes", &inst, n, buf.Len())
			}

			// The result decodes to the same
			// instruction.
			d := NewDecoder(test.Bitness, bytes.NewReader(buf.Bytes()), DecoderPopCS)
			d.SetIP(test.IP)
			decoded := d.Decode()
			if decoded.Code() != inst.Code() {
				t.Fatalf("Decode(%s): got %s, want %s", got, decoded.Code(), inst.Code())
			}

			if decoded.String() != inst.String() {
				t.Errorf("Decode(%s): got %s, want %s", got, &decoded, &inst)
			}

			var again bytes.Buffer
			e = NewEncoder(test.Bitness, &again)
			e.SetOptions(test.Options)
			if _, err := e.Encode(&decoded, test.IP); err != nil {
				t.Fatalf("Encode(%s): %v", &decoded, err)
			}

			if !bytes.Equal(again.Bytes(), buf.Bytes()) {
				t.Errorf("Encode(%s): got %x, want %s", &decoded, again.Bytes(), got)
			}
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		Name    string
		Bitness int
		Code    Code
		Ops     []Operand
		Setup   func(inst *Instruction)
		Want    string
	}{
		{
			Name:    "wrong mode",
			Bitness: 32,
			Code:    Add_rm64_r64,
			Ops:     []Operand{Reg(RAX), Reg(RBX)},
			Want:    "not available in this mode",
		},
		{
			Name:    "high byte with rex",
			Bitness: 64,
			Code:    Mov_rm8_r8,
			Ops:     []Operand{Reg(AH), Reg(SIL)},
			Want:    "AH, CH, DH and BH cannot be used with a REX prefix",
		},
		{
			Name:    "branch out of range",
			Bitness: 64,
			Code:    Jmp_rel8_64,
			Ops:     []Operand{Branch(0x2000)},
			Want:    "branch target 0x2000 is out of range",
		},
		{
			Name:    "lock on vex",
			Bitness: 64,
			Code:    VEX_Vaddps_xmm_xmm_xmmm128,
			Ops:     []Operand{Reg(XMM0), Reg(XMM1), Reg(XMM2)},
			Setup:   func(inst *Instruction) { inst.SetLockPrefix(true) },
		},
		{
			Name:    "opmask on vex",
			Bitness: 64,
			Code:    VEX_Vaddps_xmm_xmm_xmmm128,
			Ops:     []Operand{Reg(XMM0), Reg(XMM1), Reg(XMM2)},
			Setup:   func(inst *Instruction) { inst.opmask = K1 },
		},
		{
			Name:    "extended register in 32-bit mode",
			Bitness: 32,
			Code:    Add_rm32_r32,
			Ops:     []Operand{Reg(R8D), Reg(EAX)},
		},
		{
			Name:    "64-bit addressing in 32-bit mode",
			Bitness: 32,
			Code:    Add_rm32_r32,
			Ops:     []Operand{Mem(Memory{Base: RAX}), Reg(EAX)},
		},
		{
			Name:    "16-bit addressing in 64-bit mode",
			Bitness: 64,
			Code:    Add_rm32_r32,
			Ops:     []Operand{Mem(Memory{Base: BX}), Reg(EAX)},
		},
		{
			Name:    "gather without opmask",
			Bitness: 64,
			Code:    EVEX_Vpgatherdd_zmm_k1_vm32z,
			Ops:     []Operand{Reg(ZMM1), Mem(Memory{Base: RAX, Index: ZMM2, Scale: 4})},
			Want:    "gathers and scatters need an opmask other than k0",
		},
		{
			Name:    "gather destination is index",
			Bitness: 64,
			Code:    VEX_Vpgatherdd_xmm_vm32x_xmm,
			Ops:     []Operand{Reg(XMM1), Mem(Memory{Base: RAX, Index: XMM1}), Reg(XMM3)},
			Want:    "the destination, index and mask registers must differ",
		},
		{
			Name:    "gather 16-bit addressing",
			Bitness: 32,
			Code:    VEX_Vpgatherdd_xmm_vm32x_xmm,
			Ops:     []Operand{Reg(XMM1), Mem(Memory{Base: BX, Index: XMM2}), Reg(XMM3)},
			Want:    "gathers and scatters cannot use 16-bit addressing",
		},
		{
			Name:    "vex gather high index",
			Bitness: 64,
			Code:    VEX_Vpgatherdd_xmm_vm32x_xmm,
			Ops:     []Operand{Reg(XMM1), Mem(Memory{Base: RAX, Index: XMM18}), Reg(XMM3)},
			Want:    "XMM18 needs an EVEX prefix",
		},
		{
			Name:    "rip displacement too large",
			Bitness: 64,
			Code:    Lea_r64_m,
			Ops:     []Operand{Reg(RAX), Mem(Memory{Base: RIP, Displacement: 1 << 40})},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			inst := mustInstruction(t, test.Code, test.Ops...)
			if test.Setup != nil {
				test.Setup(&inst)
			}

			var buf bytes.Buffer
			n, err := NewEncoder(test.Bitness, &buf).Encode(&inst, 0)
			if err == nil {
				t.Fatalf("Encode(%s): got %x, want an error", &inst, buf.Bytes())
			}

			if n != 0 || buf.Len() != 0 {
				t.Errorf("Encode(%s): wrote %d bytes on failure", &inst, buf.Len())
			}

			var encErr *EncodeError
			if !errors.As(err, &encErr) {
				t.Fatalf("Encode(%s): got error %v (%T), want *EncodeError", &inst, err, err)
			}

			if encErr.Code != test.Code || encErr.Bitness != test.Bitness {
				t.Errorf("Encode(%s): got error for %s in %d-bit mode", &inst, encErr.Code, encErr.Bitness)
			}

			if test.Want != "" && encErr.Reason != test.Want {
				t.Errorf("Encode(%s): got reason %q, want %q", &inst, encErr.Reason, test.Want)
			}
		})
	}
}

func TestEncodeInvalid(t *testing.T) {
	var inst Instruction
	_, err := EncodeBytes(64, &inst, 0)
	if err == nil {
		t.Fatal("EncodeBytes(INVALID): got nil error")
	}

	want := "x86: cannot encode INVALID in 64-bit mode: not an instruction"
	if err.Error() != want {
		t.Fatalf("EncodeBytes(INVALID):\nGot:  %v\nWant: %s", err, want)
	}
}

type failWriter struct{ n int }

var errFull = errors.New("full")

func (w *failWriter) WriteByte(byte) error {
	if w.n == 0 {
		return errFull
	}

	w.n--
	return nil
}

func TestEncodeWriteError(t *testing.T) {
	inst := mustInstruction(t, Mov_r64_imm64, Reg(RAX), Uimm(1))
	_, err := NewEncoder(64, &failWriter{n: 3}).Encode(&inst, 0)
	if !errors.Is(err, errFull) {
		t.Fatalf("Encode(): got error %v, want %v", err, errFull)
	}
}

func TestNewInstructionErrors(t *testing.T) {
	tests := []struct {
		Name string
		Code Code
		Ops  []Operand
		Want string
	}{
		{
			Name: "operand count",
			Code: Add_rm64_r64,
			Ops:  []Operand{Reg(RAX)},
			Want: "Add_rm64_r64: got 1 operands, want 2",
		},
		{
			Name: "register class",
			Code: Add_rm64_r64,
			Ops:  []Operand{Reg(RAX), Reg(EBX)},
			Want: `Add_rm64_r64: operand 1: EBX is not a valid "r64" register`,
		},
		{
			Name: "implied one",
			Code: Rol_rm8_1,
			Ops:  []Operand{Reg(AL), Imm(2)},
			Want: "Rol_rm8_1: operand 1: got immediate 0x2, want 1",
		},
		{
			Name: "immediate8 range",
			Code: Add_AL_imm8,
			Ops:  []Operand{Reg(AL), Imm(300)},
			Want: "Add_AL_imm8: operand 1: immediate 0x12c does not fit in Immediate8",
		},
		{
			Name: "immediate8 negative range",
			Code: Add_AL_imm8,
			Ops:  []Operand{Reg(AL), Imm(-129)},
			Want: "Add_AL_imm8: operand 1: immediate -0x81 does not fit in Immediate8",
		},
		{
			Name: "immediate16 range",
			Code: Add_AX_imm16,
			Ops:  []Operand{Reg(AX), Imm(0x12345)},
			Want: "Add_AX_imm16: operand 1: immediate 0x12345 does not fit in Immediate16",
		},
		{
			Name: "immediate32 range",
			Code: Add_EAX_imm32,
			Ops:  []Operand{Reg(EAX), Imm(0x100000001)},
			Want: "Add_EAX_imm32: operand 1: immediate 0x100000001 does not fit in Immediate32",
		},
		{
			Name: "immediate8to32 range",
			Code: Add_rm32_imm8,
			Ops:  []Operand{Reg(EAX), Imm(0x80)},
			Want: "Add_rm32_imm8: operand 1: immediate 0x80 does not fit in Immediate8to32",
		},
		{
			Name: "immediate8to32 wide",
			Code: Add_rm32_imm8,
			Ops:  []Operand{Reg(EAX), Imm(0x100000001)},
			Want: "Add_rm32_imm8: operand 1: immediate 0x100000001 does not fit in Immediate8to32",
		},
		{
			Name: "immediate8to16 range",
			Code: Add_rm16_imm8,
			Ops:  []Operand{Reg(AX), Imm(-129)},
			Want: "Add_rm16_imm8: operand 1: immediate -0x81 does not fit in Immediate8to16",
		},
		{
			Name: "immediate8to64 range",
			Code: Add_rm64_imm8,
			Ops:  []Operand{Reg(RAX), Imm(128)},
			Want: "Add_rm64_imm8: operand 1: immediate 0x80 does not fit in Immediate8to64",
		},
		{
			Name: "immediate32to64 range",
			Code: Add_RAX_imm32,
			Ops:  []Operand{Reg(RAX), Imm(0x80000000)},
			Want: "Add_RAX_imm32: operand 1: immediate 0x80000000 does not fit in Immediate32to64",
		},
		{
			Name: "fixed register",
			Code: Add_AL_imm8,
			Ops:  []Operand{Reg(BL), Imm(2)},
			Want: "Add_AL_imm8: operand 0: got BL, want AL",
		},
		{
			Name: "broadcast",
			Code: VEX_Vaddps_xmm_xmm_xmmm128,
			Ops:  []Operand{Reg(XMM0), Reg(XMM1), Mem(Memory{Base: RAX, Broadcast: true})},
			Want: "VEX_Vaddps_xmm_xmm_xmmm128: operand 2: VEX_Vaddps_xmm_xmm_xmmm128 does not support broadcast",
		},
		{
			Name: "scale",
			Code: Add_rm64_r64,
			Ops:  []Operand{Mem(Memory{Base: RAX, Index: RBX, Scale: 3}), Reg(RCX)},
			Want: "Add_rm64_r64: operand 0: invalid index scale 3",
		},
		{
			Name: "vsib index class",
			Code: VEX_Vpgatherdd_xmm_vm32x_xmm,
			Ops:  []Operand{Reg(XMM1), Mem(Memory{Base: RAX, Index: YMM2}), Reg(XMM3)},
			Want: `VEX_Vpgatherdd_xmm_vm32x_xmm: operand 1: "vm32x" cannot be indexed by YMM2`,
		},
		{
			Name: "vector index",
			Code: Add_rm64_r64,
			Ops:  []Operand{Mem(Memory{Base: RAX, Index: XMM1}), Reg(RCX)},
			Want: "Add_rm64_r64: operand 0: XMM1 can only index gathers and scatters",
		},
		{
			Name: "xlat index",
			Code: Xlat_m8,
			Ops:  []Operand{Mem(Memory{Base: RBX, Index: BL})},
			Want: "Xlat_m8: operand 0: XLAT memory must be indexed by AL",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			_, err := NewInstruction(test.Code, test.Ops...)
			if err == nil {
				t.Fatalf("NewInstruction(): got nil error, want %q", test.Want)
			}

			if got := err.Error(); got != test.Want {
				t.Fatalf("NewInstruction():\nGot:  %s\nWant: %s", got, test.Want)
			}
		})
	}
}

func TestNewStringInstruction(t *testing.T) {
	inst, err := NewStringInstruction(Movsb_m8_m8, 64, RegisterNone, RepPrefixRepe)
	if err != nil {
		t.Fatal(err)
	}

	got, err := EncodeBytes(64, &inst, 0)
	if err != nil {
		t.Fatal(err)
	}

	if want := []byte{0xf3, 0xa4}; !bytes.Equal(got, want) {
		t.Fatalf("EncodeBytes(%s): got %x, want %x", &inst, got, want)
	}

	// A 32-bit address size needs 67.
	inst, err = NewStringInstruction(Movsb_m8_m8, 32, FS, RepPrefixNone)
	if err != nil {
		t.Fatal(err)
	}

	got, err = EncodeBytes(64, &inst, 0)
	if err != nil {
		t.Fatal(err)
	}

	if want := []byte{0x64, 0x67, 0xa4}; !bytes.Equal(got, want) {
		t.Fatalf("EncodeBytes(%s): got %x, want %x", &inst, got, want)
	}

	if _, err := NewStringInstruction(Add_rm64_r64, 64, RegisterNone, RepPrefixNone); err == nil {
		t.Fatal("NewStringInstruction(Add_rm64_r64): got nil error")
	}
}

func TestEncodeDeclare(t *testing.T) {
	tests := []struct {
		Name string
		Inst func() (Instruction, error)
		Want string
	}{
		{
			Name: "bytes",
			Inst: func() (Instruction, error) { return NewDeclareByte([]byte{1, 2, 3}) },
			Want: "010203",
		},
		{
			Name: "words",
			Inst: func() (Instruction, error) { return NewDeclareWord([]uint16{0x1234, 0x5678}) },
			Want: "34127856",
		},
		{
			Name: "dwords",
			Inst: func() (Instruction, error) { return NewDeclareDword([]uint32{0xdeadbeef}) },
			Want: "efbeadde",
		},
		{
			Name: "qwords",
			Inst: func() (Instruction, error) { return NewDeclareQword([]uint64{1, 2}) },
			Want: "01000000000000000200000000000000",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			inst, err := test.Inst()
			if err != nil {
				t.Fatal(err)
			}

			got, err := EncodeBytes(32, &inst, 0)
			if err != nil {
				t.Fatal(err)
			}

			if hex.EncodeToString(got) != test.Want {
				t.Fatalf("EncodeBytes(%s): got %x, want %s", &inst, got, test.Want)
			}
		})
	}

	if _, err := NewDeclareQword(make([]uint64, 3)); err == nil {
		t.Fatal("NewDeclareQword(3 values): got nil error")
	}

	if _, err := NewDeclareByte(nil); err == nil {
		t.Fatal("NewDeclareByte(nil): got nil error")
	}
}

func TestConstantOffsets(t *testing.T) {
	tests := []struct {
		Name string
		Code Code
		Ops  []Operand
		Want ConstantOffsets
	}{
		{
			Name: "displacement",
			Code: Add_rm64_r64,
			Ops:  []Operand{Mem(Memory{Base: RAX, Index: RBX, Scale: 4, Displacement: 0x10}), Reg(RCX)},
			Want: ConstantOffsets{DisplacementOffset: 4, DisplacementSize: 1},
		},
		{
			Name: "immediate",
			Code: Mov_r64_imm64,
			Ops:  []Operand{Reg(RAX), Uimm(1)},
			Want: ConstantOffsets{ImmediateOffset: 2, ImmediateSize: 8},
		},
		{
			Name: "two immediates",
			Code: Enterq_imm16_imm8,
			Ops:  []Operand{Imm(16), Imm(1)},
			Want: ConstantOffsets{ImmediateOffset: 1, ImmediateSize: 2, ImmediateOffset2: 3, ImmediateSize2: 1},
		},
		{
			Name: "branch",
			Code: Call_rel32_64,
			Ops:  []Operand{Branch(0)},
			Want: ConstantOffsets{BranchOffset: 1, BranchSize: 4},
		},
		{
			Name: "rip",
			Code: Lea_r64_m,
			Ops:  []Operand{Reg(RAX), Mem(Memory{Base: RIP, Displacement: 0x10})},
			Want: ConstantOffsets{DisplacementOffset: 3, DisplacementSize: 4},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			inst := mustInstruction(t, test.Code, test.Ops...)
			var buf bytes.Buffer
			e := NewEncoder(64, &buf)
			if _, err := e.Encode(&inst, 0); err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(test.Want, e.ConstantOffsets()); diff != "" {
				t.Fatalf("ConstantOffsets(): (-want, +got)\n%s", diff)
			}
		})
	}
}

func TestEncodeBlock(t *testing.T) {
	// jmp over the nop, then lea rax, [rip+0x10].
	code := []byte{0xeb, 0x01, 0x90, 0x48, 0x8d, 0x05, 0x10, 0x00, 0x00, 0x00}
	d := NewDecoder(64, bytes.NewReader(code), DecoderNone)
	d.SetIP(0x1000)
	insts := d.DecodeAll()
	if len(insts) != 3 {
		t.Fatalf("DecodeAll(): got %d instructions, want 3", len(insts))
	}

	got, err := EncodeBlock(64, insts, 0x5000)
	if err != nil {
		t.Fatal(err)
	}

	// The branch moves with the block, and the
	// lea still refers to 0x101a.
	want := []byte{0xeb, 0x01, 0x90, 0x48, 0x8d, 0x05, 0x10, 0xc0, 0xff, 0xff}
	if !bytes.Equal(got, want) {
		t.Fatalf("EncodeBlock():\nGot:  %x\nWant: %x", got, want)
	}

	d = NewDecoder(64, bytes.NewReader(got), DecoderNone)
	d.SetIP(0x5000)
	moved := d.DecodeAll()
	if target := moved[0].NearBranchTarget(); target != 0x5003 {
		t.Errorf("moved jmp targets %#x, want 0x5003", target)
	}

	if addr := moved[2].IPRelativeMemoryAddress(); addr != 0x101a {
		t.Errorf("moved lea refers to %#x, want 0x101a", addr)
	}
}

func TestNewEncoderPanics(t *testing.T) {
	tests := []struct {
		Name    string
		Bitness int
		W       *bytes.Buffer
		Want    string
	}{
		{"bitness", 8, new(bytes.Buffer), "bitness"},
		{"nil writer", 64, nil, "nil"},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("NewEncoder(): did not panic")
				}

				if msg, _ := r.(string); !strings.Contains(msg, test.Want) {
					t.Fatalf("NewEncoder(): got panic %v, want %q", r, test.Want)
				}
			}()

			if test.W == nil {
				NewEncoder(test.Bitness, nil)
			} else {
				NewEncoder(test.Bitness, test.W)
			}
		})
	}
}
