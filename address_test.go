// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"bytes"
	"testing"
)

func TestVirtualAddress(t *testing.T) {
	tests := []struct {
		Name    string
		Bitness int
		IP      uint64
		Code    []byte
		Op      int
		Regs    map[Register]uint64
		Want    uint64
		OK      bool
	}{
		{
			Name:    "movsw source",
			Bitness: 16,
			Code:    []byte{0xa5},
			Op:      1,
			Regs: map[Register]uint64{
				SI: 0x123456789abce5d1,
				DS: 0x7654321001234567,
			},
			Want: 0x7654321001242b38,
			OK:   true,
		},
		{
			Name:    "movsw destination",
			Bitness: 16,
			Code:    []byte{0xa5},
			Op:      0,
			Regs: map[Register]uint64{
				DI: 0x10,
				ES: 0x20000,
			},
			Want: 0x20010,
			OK:   true,
		},
		{
			Name:    "base and index",
			Bitness: 64,
			Code:    []byte{0x48, 0x01, 0x4c, 0x98, 0x10}, // add [rax+rbx*4+0x10], rcx
			Op:      0,
			Regs: map[Register]uint64{
				RAX: 0x1000,
				RBX: 0x10,
				DS:  0,
			},
			Want: 0x1050,
			OK:   true,
		},
		{
			Name:    "32-bit wrap",
			Bitness: 32,
			Code:    []byte{0x8b, 0x40, 0xff}, // mov eax, [eax-1]
			Op:      1,
			Regs: map[Register]uint64{
				EAX: 0,
				DS:  0,
			},
			Want: 0xffffffff,
			OK:   true,
		},
		{
			Name:    "segment override",
			Bitness: 64,
			Code:    []byte{0x64, 0x48, 0x8b, 0x04, 0x25, 0x28, 0x00, 0x00, 0x00}, // mov rax, fs:[0x28]
			Op:      1,
			Regs: map[Register]uint64{
				FS: 0x7000_0000,
			},
			Want: 0x7000_0028,
			OK:   true,
		},
		{
			Name:    "rip relative",
			Bitness: 64,
			IP:      0x1000,
			Code:    []byte{0x48, 0x8d, 0x05, 0x10, 0x00, 0x00, 0x00}, // lea rax, [rip+0x10]
			Op:      1,
			Regs: map[Register]uint64{
				DS: 0,
			},
			Want: 0x1017,
			OK:   true,
		},
		{
			Name:    "missing register",
			Bitness: 64,
			Code:    []byte{0x48, 0x01, 0x4c, 0x98, 0x10},
			Op:      0,
			Regs: map[Register]uint64{
				RAX: 0x1000,
			},
		},
		{
			Name:    "not memory",
			Bitness: 64,
			Code:    []byte{0x48, 0x01, 0x4c, 0x98, 0x10},
			Op:      1,
			Regs: map[Register]uint64{
				RCX: 1,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			d := NewDecoder(test.Bitness, bytes.NewReader(test.Code), DecoderNone)
			d.SetIP(test.IP)
			inst := d.Decode()
			fn := func(reg Register, element, size int) (uint64, bool) {
				v, ok := test.Regs[reg]
				return v, ok
			}

			got, ok := inst.VirtualAddress(test.Op, 0, fn)
			if ok != test.OK {
				t.Fatalf("%s: VirtualAddress(%d): got ok %v, want %v", &inst, test.Op, ok, test.OK)
			}

			if got != test.Want {
				t.Fatalf("%s: VirtualAddress(%d): got %#x, want %#x", &inst, test.Op, got, test.Want)
			}
		})
	}
}

func TestVirtualAddressVSIB(t *testing.T) {
	// vpgatherdd xmm1, [rax+xmm2*4+0x10], xmm3
	code := []byte{0xc4, 0xe2, 0x61, 0x90, 0x4c, 0x90, 0x10}
	inst := NewDecoder(64, bytes.NewReader(code), DecoderNone).Decode()
	if inst.Code() != VEX_Vpgatherdd_xmm_vm32x_xmm {
		t.Fatalf("Decode(%x): got %s", code, inst.Code())
	}

	indexes := []uint64{8, 0xffff_fff0, 0x8000_0000, 0}
	fn := func(reg Register, element, size int) (uint64, bool) {
		switch reg {
		case DS:
			return 0, true
		case RAX:
			return 0x1000, element == 0 && size == 0
		case XMM2:
			return indexes[element], size == 4
		}

		return 0, false
	}

	want := []uint64{0x1030, 0xfd0, 0xffff_fffe_0000_1010, 0x1010}
	for element, w := range want {
		got, ok := inst.VirtualAddress(1, element, fn)
		if !ok {
			t.Fatalf("%s: VirtualAddress(1, %d): got ok false", &inst, element)
		}

		if got != w {
			t.Errorf("%s: VirtualAddress(1, %d): got %#x, want %#x", &inst, element, got, w)
		}
	}
}
