// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInfoTableShape(t *testing.T) {
	data := infoData().data
	if len(data) != infoWordsPerCode*int(NumberOfCodeValues) {
		t.Fatalf("got %d info words, want %d", len(data), infoWordsPerCode*int(NumberOfCodeValues))
	}

	for c := Code(0); c < NumberOfCodeValues; c++ {
		if got := Code(data[infoWordsPerCode*int(c)] & infoCodeMask); got != c {
			t.Errorf("info word for %s names %s", c, got)
		}
	}
}

func TestCodeProperties(t *testing.T) {
	type props struct {
		Mnemonic    Mnemonic
		Encoding    EncodingKind
		Flow        FlowControl
		Condition   ConditionCode
		Privileged  bool
		Stack       bool
		SaveRestore bool
		Modes       []CodeSize
	}

	tests := []struct {
		Code Code
		Want props
	}{
		{
			Code: Add_rm64_r64,
			Want: props{Mnemonic: MnemonicAdd, Modes: []CodeSize{CodeSize64}},
		},
		{
			Code: Push_r64,
			Want: props{Mnemonic: MnemonicPush, Stack: true, Modes: []CodeSize{CodeSize64}},
		},
		{
			Code: Jne_rel8_64,
			Want: props{Mnemonic: MnemonicJne, Flow: FlowControlConditionalBranch, Condition: ConditionCodeNE, Modes: []CodeSize{CodeSize64}},
		},
		{
			Code: Call_rel32_64,
			Want: props{Mnemonic: MnemonicCall, Flow: FlowControlCall, Stack: true, Modes: []CodeSize{CodeSize64}},
		},
		{
			Code: Retnq,
			Want: props{Mnemonic: MnemonicRet, Flow: FlowControlReturn, Stack: true, Modes: []CodeSize{CodeSize64}},
		},
		{
			Code: Jmp_rm64,
			Want: props{Mnemonic: MnemonicJmp, Flow: FlowControlIndirectBranch, Modes: []CodeSize{CodeSize64}},
		},
		{
			Code: Int3,
			Want: props{Mnemonic: MnemonicInt3, Flow: FlowControlInterrupt, Modes: []CodeSize{CodeSize16, CodeSize32, CodeSize64}},
		},
		{
			Code: Hlt,
			Want: props{Mnemonic: MnemonicHlt, Privileged: true, Modes: []CodeSize{CodeSize16, CodeSize32, CodeSize64}},
		},
		{
			Code: Fxsave_m512byte,
			Want: props{Mnemonic: MnemonicFxsave, SaveRestore: true, Modes: []CodeSize{CodeSize16, CodeSize32, CodeSize64}},
		},
		{
			Code: VEX_Vaddps_xmm_xmm_xmmm128,
			Want: props{Mnemonic: MnemonicVaddps, Encoding: EncodingKindVEX, Modes: []CodeSize{CodeSize16, CodeSize32, CodeSize64}},
		},
		{
			Code: EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er,
			Want: props{Mnemonic: MnemonicVaddps, Encoding: EncodingKindEVEX, Modes: []CodeSize{CodeSize16, CodeSize32, CodeSize64}},
		},
	}

	for _, test := range tests {
		t.Run(test.Code.String(), func(t *testing.T) {
			c := test.Code
			got := props{
				Mnemonic:    c.Mnemonic(),
				Encoding:    c.Encoding(),
				Flow:        c.FlowControl(),
				Condition:   c.ConditionCode(),
				Privileged:  c.IsPrivileged(),
				Stack:       c.IsStackInstruction(),
				SaveRestore: c.IsSaveRestoreInstruction(),
				Modes:       c.Modes(),
			}

			if diff := cmp.Diff(test.Want, got); diff != "" {
				t.Fatalf("(-want, +got)\n%s", diff)
			}
		})
	}
}

func TestCodesFor(t *testing.T) {
	for _, c := range CodesFor(MnemonicVaddps) {
		if c.Mnemonic() != MnemonicVaddps {
			t.Errorf("CodesFor(Vaddps) includes %s", c)
		}
	}

	found := false
	for _, c := range CodesFor(MnemonicAdd) {
		found = found || c == Add_rm64_r64
	}

	if !found {
		t.Error("CodesFor(Add) does not include Add_rm64_r64")
	}
}

func TestOpCode(t *testing.T) {
	got := Add_rm64_r64.OpCode()
	want := &OpCodeInfo{
		Code:        Add_rm64_r64,
		Mnemonic:    MnemonicAdd,
		Encoding:    EncodingKindLegacy,
		Syntax:      "REX.W 01 /r",
		Operands:    []string{"rm64", "r64"},
		Modes:       []CodeSize{CodeSize64},
		MemorySize:  MemorySizeUInt64,
		CanLock:     true,
		CanXacquire: true,
		CanXrelease: true,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("OpCode(): (-want, +got)\n%s", diff)
	}
}

func TestMatchMachineCode(t *testing.T) {
	tests := []struct {
		Name string
		Code Code
		Data []byte
		Want string
	}{
		{
			Name: "add",
			Code: Add_rm64_r64,
			Data: []byte{0x48, 0x01, 0x4c, 0x98, 0x10},
		},
		{
			Name: "add with segment",
			Code: Add_rm64_r64,
			Data: []byte{0x64, 0x48, 0x01, 0x08},
		},
		{
			Name: "add without rex",
			Code: Add_rm64_r64,
			Data: []byte{0x01, 0x4c, 0x98, 0x10},
			Want: "01 4c 98 10 is not Add_rm64_r64: missing REX prefix",
		},
		{
			Name: "push modified opcode",
			Code: Push_r64,
			Data: []byte{0x41, 0x54},
		},
		{
			Name: "vex",
			Code: VEX_Vaddps_xmm_xmm_xmmm128,
			Data: []byte{0xc5, 0xf0, 0x58, 0xc2},
		},
		{
			Name: "wrong opcode",
			Code: Syscall,
			Data: []byte{0x0f, 0x07},
			Want: "0f 07 is not Syscall: wrong opcode",
		},
		{
			Name: "pseudo-instruction",
			Code: INVALID,
			Data: []byte{0x90},
			Want: "INVALID has no machine code",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			err := test.Code.MatchMachineCode(test.Data)
			switch {
			case err == nil && test.Want != "":
				t.Fatalf("MatchMachineCode(): unexpected success, want %q", test.Want)
			case err != nil && err.Error() != test.Want:
				t.Fatalf("MatchMachineCode(): got error %q, want %q", err, test.Want)
			}
		})
	}
}

func TestCodeRangePanics(t *testing.T) {
	tests := []struct {
		Name string
		Fn   func(c Code)
	}{
		{"Encoding", func(c Code) { c.Encoding() }},
		{"FlowControl", func(c Code) { c.FlowControl() }},
		{"CpuidFeatures", func(c Code) { c.CpuidFeatures() }},
		{"IsPrivileged", func(c Code) { c.IsPrivileged() }},
		{"IsStackInstruction", func(c Code) { c.IsStackInstruction() }},
		{"IsSaveRestoreInstruction", func(c Code) { c.IsSaveRestoreInstruction() }},
		{"Mnemonic", func(c Code) { c.Mnemonic() }},
		{"RflagsRead", func(c Code) { c.RflagsRead() }},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s(NumberOfCodeValues): did not panic", test.Name)
				}
			}()

			test.Fn(NumberOfCodeValues)
		})
	}
}
