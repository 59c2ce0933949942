// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMergeAccess(t *testing.T) {
	tests := []struct {
		A, B OpAccess
		Want OpAccess
	}{
		{OpAccessRead, OpAccessRead, OpAccessRead},
		{OpAccessRead, OpAccessNone, OpAccessRead},
		{OpAccessNone, OpAccessWrite, OpAccessWrite},
		{OpAccessRead, OpAccessWrite, OpAccessReadWrite},
		{OpAccessWrite, OpAccessRead, OpAccessReadWrite},
		{OpAccessRead, OpAccessCondWrite, OpAccessReadCondWrite},
		{OpAccessCondRead, OpAccessWrite, OpAccessReadWrite},
		{OpAccessCondRead, OpAccessCondWrite, OpAccessReadCondWrite},
		{OpAccessCondRead, OpAccessRead, OpAccessRead},
		{OpAccessCondWrite, OpAccessWrite, OpAccessWrite},
		{OpAccessReadCondWrite, OpAccessWrite, OpAccessReadWrite},
	}

	for _, test := range tests {
		if got := mergeAccess(test.A, test.B); got != test.Want {
			t.Errorf("mergeAccess(%s, %s): got %s, want %s", test.A, test.B, got, test.Want)
		}
	}
}

func TestMergeRegisters(t *testing.T) {
	tests := []struct {
		Name string
		Regs []UsedRegister
		Want []UsedRegister
	}{
		{
			Name: "distinct",
			Regs: []UsedRegister{{RAX, OpAccessRead}, {RBX, OpAccessWrite}},
			Want: []UsedRegister{{RAX, OpAccessRead}, {RBX, OpAccessWrite}},
		},
		{
			Name: "duplicate",
			Regs: []UsedRegister{{RCX, OpAccessRead}, {RCX, OpAccessWrite}},
			Want: []UsedRegister{{RCX, OpAccessReadWrite}},
		},
		{
			Name: "byte pair",
			Regs: []UsedRegister{{AL, OpAccessRead}, {AH, OpAccessWrite}},
			Want: []UsedRegister{{AX, OpAccessReadWrite}},
		},
		{
			Name: "wider first",
			Regs: []UsedRegister{{EAX, OpAccessWrite}, {AX, OpAccessRead}},
			Want: []UsedRegister{{EAX, OpAccessReadWrite}},
		},
		{
			Name: "vector",
			Regs: []UsedRegister{{XMM0, OpAccessRead}, {ZMM0, OpAccessCondWrite}},
			Want: []UsedRegister{{ZMM0, OpAccessReadCondWrite}},
		},
		{
			Name: "order",
			Regs: []UsedRegister{{RSI, OpAccessRead}, {RDI, OpAccessRead}, {SI, OpAccessWrite}},
			Want: []UsedRegister{{RSI, OpAccessReadWrite}, {RDI, OpAccessRead}},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got := mergeRegisters(append([]UsedRegister(nil), test.Regs...))
			if diff := cmp.Diff(test.Want, got); diff != "" {
				t.Fatalf("mergeRegisters(): (-want, +got)\n%s", diff)
			}
		})
	}
}

func TestRflagsPartition(t *testing.T) {
	for c := Code(0); c < NumberOfCodeValues; c++ {
		written := c.RflagsWritten()
		cleared := c.RflagsCleared()
		set := c.RflagsSet()
		undefined := c.RflagsUndefined()
		if written&cleared != 0 || written&set != 0 || written&undefined != 0 ||
			cleared&set != 0 || cleared&undefined != 0 || set&undefined != 0 {
			t.Errorf("%s: overlapping flags: written %s, cleared %s, set %s, undefined %s", c, written, cleared, set, undefined)
		}

		if got, want := c.RflagsModified(), written|cleared|set|undefined; got != want {
			t.Errorf("%s: RflagsModified(): got %s, want %s", c, got, want)
		}
	}
}

func TestInfoAddressSize(t *testing.T) {
	tests := []struct {
		Name    string
		Bitness int
		Code    []byte
		Want    []int
	}{
		{
			Name:    "64-bit",
			Bitness: 64,
			Code:    []byte{0x48, 0x01, 0x4c, 0x98, 0x10}, // add [rax+rbx*4+0x10], rcx
			Want:    []int{64},
		},
		{
			Name:    "32-bit override",
			Bitness: 64,
			Code:    []byte{0x67, 0x8b, 0x00}, // mov eax, [eax]
			Want:    []int{32},
		},
		{
			Name:    "16-bit",
			Bitness: 16,
			Code:    []byte{0x8b, 0x07}, // mov ax, [bx]
			Want:    []int{16},
		},
		{
			Name:    "movs",
			Bitness: 32,
			Code:    []byte{0x66, 0x67, 0xa5}, // movsw with 16-bit addresses
			Want:    []int{16, 16},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			inst := NewDecoder(test.Bitness, bytes.NewReader(test.Code), DecoderNone).Decode()
			info := inst.Info(0)
			var got []int
			for _, m := range info.UsedMemory() {
				got = append(got, m.AddressSize)
			}

			if diff := cmp.Diff(test.Want, got); diff != "" {
				t.Fatalf("%s: UsedMemory(): (-want, +got)\n%s", &inst, diff)
			}
		})
	}
}

func TestInfoSegmentRegisters(t *testing.T) {
	tests := []struct {
		Name    string
		Bitness int
		Code    []byte
		Want    []UsedRegister
	}{
		{
			Name:    "64-bit default",
			Bitness: 64,
			Code:    []byte{0x8b, 0x00}, // mov eax, [rax]
		},
		{
			Name:    "64-bit ds override",
			Bitness: 64,
			Code:    []byte{0x3e, 0x8b, 0x00}, // mov eax, ds:[rax]
		},
		{
			Name:    "64-bit ss override",
			Bitness: 64,
			Code:    []byte{0x36, 0x8b, 0x00}, // mov eax, ss:[rax]
		},
		{
			Name:    "64-bit fs override",
			Bitness: 64,
			Code:    []byte{0x64, 0x8b, 0x00}, // mov eax, fs:[rax]
			Want:    []UsedRegister{{FS, OpAccessRead}},
		},
		{
			Name:    "32-bit default",
			Bitness: 32,
			Code:    []byte{0x8b, 0x00}, // mov eax, [eax]
			Want:    []UsedRegister{{DS, OpAccessRead}},
		},
		{
			Name:    "32-bit es override",
			Bitness: 32,
			Code:    []byte{0x26, 0x8b, 0x00}, // mov eax, es:[eax]
			Want:    []UsedRegister{{ES, OpAccessRead}},
		},
		{
			Name:    "lea",
			Bitness: 32,
			Code:    []byte{0x8d, 0x00}, // lea eax, [eax]
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			inst := NewDecoder(test.Bitness, bytes.NewReader(test.Code), DecoderNone).Decode()
			info := inst.Info(0)
			var got []UsedRegister
			for _, r := range info.UsedRegisters() {
				if r.Register.IsSegmentRegister() {
					got = append(got, r)
				}
			}

			if diff := cmp.Diff(test.Want, got); diff != "" {
				t.Fatalf("%s: UsedRegisters(): (-want, +got)\n%s", &inst, diff)
			}
		})
	}
}

func TestInfoFactoryReuse(t *testing.T) {
	decode := func(b ...byte) Instruction {
		return NewDecoder(64, bytes.NewReader(b), DecoderNone).Decode()
	}

	push := decode(0x53)            // push rbx
	add := decode(0x48, 0x01, 0xd8) // add rax, rbx
	want := push.Info(0)
	addInfo := add.Info(0)

	f := NewInfoFactory()
	got := f.Info(&push, 0)
	f.Info(&add, 0)

	// The second call reuses the first result.
	if diff := cmp.Diff(addInfo.UsedRegisters(), got.UsedRegisters()); diff != "" {
		t.Fatalf("InfoFactory.Info(): (-want, +got)\n%s", diff)
	}

	if diff := cmp.Diff(want.UsedRegisters(), f.Info(&push, 0).UsedRegisters()); diff != "" {
		t.Fatalf("InfoFactory.Info(): (-want, +got)\n%s", diff)
	}
}

func TestOpAccessPanics(t *testing.T) {
	var info InstructionInfo
	defer func() {
		if recover() == nil {
			t.Fatal("OpAccess(MaxOpCount): did not panic")
		}
	}()

	info.OpAccess(MaxOpCount)
}
