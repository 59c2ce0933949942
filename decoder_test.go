// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeModes(t *testing.T) {
	tests := []struct {
		Name    string
		Bitness int
		Code    []byte
		Want    Code
		Err     DecoderError
		Len     int
	}{
		{
			Name:    "push es 16",
			Bitness: 16,
			Code:    []byte{0x06},
			Want:    Pushw_ES,
			Len:     1,
		},
		{
			Name:    "push es 32",
			Bitness: 32,
			Code:    []byte{0x06},
			Want:    Pushd_ES,
			Len:     1,
		},
		{
			Name:    "push es 64",
			Bitness: 64,
			Code:    []byte{0x06},
			Want:    INVALID,
			Err:     DecoderErrorInvalidInstruction,
			Len:     1,
		},
		{
			Name:    "pop cs without option",
			Bitness: 16,
			Code:    []byte{0x0f},
			Want:    INVALID,
			Err:     DecoderErrorNoMoreBytes,
			Len:     1,
		},
		{
			Name:    "lone wait",
			Bitness: 32,
			Code:    []byte{0x9b},
			Want:    Wait,
			Len:     1,
		},
		{
			Name:    "wait before nop",
			Bitness: 32,
			Code:    []byte{0x9b, 0x90},
			Want:    Wait,
			Len:     1,
		},
		{
			Name:    "vex gather",
			Bitness: 64,
			Code:    []byte{0xc4, 0xe2, 0x61, 0x90, 0x4c, 0x90, 0x10},
			Want:    VEX_Vpgatherdd_xmm_vm32x_xmm,
			Len:     7,
		},
		{
			Name:    "vex gather destination is index",
			Bitness: 64,
			Code:    []byte{0xc4, 0xe2, 0x61, 0x90, 0x54, 0x90, 0x10},
			Want:    INVALID,
			Err:     DecoderErrorInvalidInstruction,
		},
		{
			Name:    "vex gather mask is destination",
			Bitness: 64,
			Code:    []byte{0xc4, 0xe2, 0x71, 0x90, 0x4c, 0x90, 0x10},
			Want:    INVALID,
			Err:     DecoderErrorInvalidInstruction,
		},
		{
			Name:    "vex gather without sib",
			Bitness: 64,
			Code:    []byte{0xc4, 0xe2, 0x61, 0x90, 0x48, 0x10},
			Want:    INVALID,
			Err:     DecoderErrorInvalidInstruction,
		},
		{
			Name:    "vex gather 16-bit addressing",
			Bitness: 32,
			Code:    []byte{0x67, 0xc4, 0xe2, 0x61, 0x90, 0x4c, 0x90, 0x10},
			Want:    INVALID,
			Err:     DecoderErrorInvalidInstruction,
		},
		{
			Name:    "evex gather",
			Bitness: 64,
			Code:    []byte{0x62, 0xf2, 0x7d, 0x09, 0x90, 0x4c, 0x90, 0x04},
			Want:    EVEX_Vpgatherdd_xmm_k1_vm32x,
			Len:     8,
		},
		{
			Name:    "evex gather high index",
			Bitness: 64,
			Code:    []byte{0x62, 0xf2, 0x7d, 0x01, 0x90, 0x4c, 0x90, 0x04},
			Want:    EVEX_Vpgatherdd_xmm_k1_vm32x,
			Len:     8,
		},
		{
			Name:    "evex gather with k0",
			Bitness: 64,
			Code:    []byte{0x62, 0xf2, 0x7d, 0x08, 0x90, 0x4c, 0x90, 0x04},
			Want:    INVALID,
			Err:     DecoderErrorInvalidInstruction,
		},
		{
			Name:    "evex scatter",
			Bitness: 32,
			Code:    []byte{0x62, 0xf2, 0x7d, 0x09, 0xa0, 0x4c, 0x90, 0x04},
			Want:    EVEX_Vpscatterdd_vm32x_k1_xmm,
			Len:     8,
		},
		{
			Name:    "too long",
			Bitness: 64,
			Code:    bytes.Repeat([]byte{0x66}, 16),
			Want:    INVALID,
			Err:     DecoderErrorInvalidInstruction,
			Len:     15,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			d := NewDecoder(test.Bitness, bytes.NewReader(test.Code), DecoderNone)
			inst := d.Decode()
			if inst.Code() != test.Want {
				t.Errorf("Decode(%x): got %s, want %s", test.Code, inst.Code(), test.Want)
			}

			if err := d.LastError(); err != test.Err {
				t.Errorf("Decode(%x): got error %s, want %s", test.Code, err, test.Err)
			}

			if test.Len != 0 && inst.Len() != test.Len {
				t.Errorf("Decode(%x): got length %d, want %d", test.Code, inst.Len(), test.Len)
			}

			if test.Len != 0 && d.Position() != test.Len {
				t.Errorf("Decode(%x): consumed %d bytes, want %d", test.Code, d.Position(), test.Len)
			}
		})
	}
}

func TestDecodeAll(t *testing.T) {
	code := []byte{
		0x55,             // push rbp
		0x48, 0x89, 0xe5, // mov rbp, rsp
		0x06,             // invalid
		0xc3,             // ret
		0x48, 0x8b,       // truncated
	}

	d := NewDecoder(64, bytes.NewReader(code), DecoderNone)
	d.SetIP(0x4000)
	insts := d.DecodeAll()

	type result struct {
		Code Code
		IP   uint64
		Len  int
	}

	var got []result
	for _, inst := range insts {
		got = append(got, result{inst.Code(), inst.IP(), inst.Len()})
	}

	want := []result{
		{Push_r64, 0x4000, 1},
		{Mov_rm64_r64, 0x4001, 3},
		{INVALID, 0x4004, 1},
		{Retnq, 0x4005, 1},
		{INVALID, 0x4006, 2},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("DecodeAll(): (-want, +got)\n%s", diff)
	}

	if d.IP() != 0x4008 {
		t.Errorf("IP(): got %#x, want 0x4008", d.IP())
	}

	if d.Position() != len(code) {
		t.Errorf("Position(): got %d, want %d", d.Position(), len(code))
	}

	if d.LastError() != DecoderErrorNoMoreBytes {
		t.Errorf("LastError(): got %s, want %s", d.LastError(), DecoderErrorNoMoreBytes)
	}

	if d.CanDecode() {
		t.Error("CanDecode(): got true at the end of the input")
	}

	// Decoding past the end keeps failing.
	inst := d.Decode()
	if inst.Code() != INVALID || d.LastError() != DecoderErrorNoMoreBytes {
		t.Errorf("Decode() past the end: got %s, %s", inst.Code(), d.LastError())
	}

	if err := d.Err(); err != nil {
		t.Errorf("Err(): got %v, want nil", err)
	}
}

type errReader struct {
	data []byte
	err  error
}

func (r *errReader) ReadByte() (byte, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}

	b := r.data[0]
	r.data = r.data[1:]

	return b, nil
}

func TestDecodeReaderError(t *testing.T) {
	broken := errors.New("broken")
	d := NewDecoder(64, &errReader{data: []byte{0x90, 0x48}, err: broken}, DecoderNone)
	if inst := d.Decode(); inst.Code() == INVALID {
		t.Fatalf("Decode(): got INVALID, want a nop")
	}

	if inst := d.Decode(); inst.Code() != INVALID {
		t.Fatalf("Decode(): got %s, want INVALID", inst.Code())
	}

	if !errors.Is(d.Err(), broken) {
		t.Fatalf("Err(): got %v, want %v", d.Err(), broken)
	}

	d = NewDecoder(64, &errReader{err: io.EOF}, DecoderNone)
	d.Decode()
	if err := d.Err(); err != nil {
		t.Fatalf("Err(): got %v at EOF, want nil", err)
	}
}

func TestDecodeBranchTarget(t *testing.T) {
	tests := []struct {
		Name    string
		Bitness int
		IP      uint64
		Code    []byte
		Want    uint64
	}{
		{"forward", 64, 0x1000, []byte{0xeb, 0x10}, 0x1012},
		{"backward", 64, 0x1000, []byte{0xeb, 0xfe}, 0x1000},
		{"wrap 16", 16, 0xfffe, []byte{0xe8, 0x10, 0x00}, 0x0011},
		{"wrap 32", 32, 0xfffffff0, []byte{0xe9, 0x20, 0x00, 0x00, 0x00}, 0x15},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			d := NewDecoder(test.Bitness, bytes.NewReader(test.Code), DecoderNone)
			d.SetIP(test.IP)
			inst := d.Decode()
			if got := inst.NearBranchTarget(); got != test.Want {
				t.Fatalf("%s: NearBranchTarget(): got %#x, want %#x", &inst, got, test.Want)
			}
		})
	}
}

func TestInstructionEqual(t *testing.T) {
	d := NewDecoder(64, bytes.NewReader([]byte{0x48, 0x8b, 0x44, 0x88, 0x10}), DecoderNone)
	d.SetIP(0x1000)
	decoded := d.Decode() // mov rax, [rax+rcx*4+0x10]
	mem := Memory{Base: RAX, Index: RCX, Scale: 4, Displacement: 0x10}
	built := mustInstruction(t, Mov_r64_rm64, Reg(RAX), Mem(mem))
	if decoded.Equal(&built) {
		t.Errorf("%s: Equal(): got true without a displacement size", &decoded)
	}

	mem.DisplSize = 1
	built = mustInstruction(t, Mov_r64_rm64, Reg(RAX), Mem(mem))
	if !decoded.Equal(&built) {
		t.Errorf("%s: Equal(%s): got false with a displacement size", &decoded, &built)
	}

	if decoded.EqualAllBits(&built) {
		t.Errorf("%s: EqualAllBits(): got true for instructions at different addresses", &decoded)
	}

	moved := decoded
	moved.SetIP(0x2000)
	if !decoded.Equal(&moved) || decoded.EqualAllBits(&moved) {
		t.Errorf("%s: moving the instruction changed Equal or kept EqualAllBits", &decoded)
	}
}

func TestNewDecoderPanics(t *testing.T) {
	tests := []struct {
		Name string
		Fn   func()
	}{
		{"bitness", func() { NewDecoder(8, bytes.NewReader(nil), DecoderNone) }},
		{"nil reader", func() { NewDecoder(64, nil, DecoderNone) }},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("NewDecoder(): did not panic")
				}
			}()

			test.Fn()
		})
	}
}
