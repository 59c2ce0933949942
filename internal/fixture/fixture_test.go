// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package fixture

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	const input = `# Comment.

4801D8, Add_rm64_r64, Legacy, X64, fw=oszapc op0=rw op1=r rw=RAX r=RBX
53, Push_r64, Legacy, X64, op0=r r=RBX rw=RSP wm=SS|RSP|None|1|-8|UInt64 stack=-8
8D0510000000, Lea_r64_m, Legacy, X64, ip=0x1000 nm=DS|None|None|1|0x1017|Unknown
0F, Popw_CS, Legacy, INTEL8086, decopt=PopCS
`

	got, err := Parse(strings.NewReader(input), "test.txt", 64)
	if err != nil {
		t.Fatal(err)
	}

	want := []*Case{
		{
			File:      "test.txt",
			Line:      3,
			Bitness:   64,
			Text:      "4801D8, Add_rm64_r64, Legacy, X64, fw=oszapc op0=rw op1=r rw=RAX r=RBX",
			Bytes:     []byte{0x48, 0x01, 0xd8},
			Code:      "Add_rm64_r64",
			Encoding:  "Legacy",
			Cpuid:     []string{"X64"},
			Written:   "oszapc",
			OpAccess:  []string{"ReadWrite", "Read"},
			Registers: []Register{{"RAX", "ReadWrite"}, {"RBX", "Read"}},
		},
		{
			File:      "test.txt",
			Line:      4,
			Bitness:   64,
			Text:      "53, Push_r64, Legacy, X64, op0=r r=RBX rw=RSP wm=SS|RSP|None|1|-8|UInt64 stack=-8",
			Bytes:     []byte{0x53},
			Code:      "Push_r64",
			Encoding:  "Legacy",
			Cpuid:     []string{"X64"},
			OpAccess:  []string{"Read"},
			Registers: []Register{{"RBX", "Read"}, {"RSP", "ReadWrite"}},
			Memory: []Memory{
				{Segment: "SS", Base: "RSP", Index: "None", Scale: 1, Displacement: 0xfffffffffffffff8, Size: "UInt64", Access: "Write"},
			},
			Stack:    -8,
			HasStack: true,
		},
		{
			File:     "test.txt",
			Line:     5,
			Bitness:  64,
			Text:     "8D0510000000, Lea_r64_m, Legacy, X64, ip=0x1000 nm=DS|None|None|1|0x1017|Unknown",
			Bytes:    []byte{0x8d, 0x05, 0x10, 0, 0, 0},
			Code:     "Lea_r64_m",
			Encoding: "Legacy",
			Cpuid:    []string{"X64"},
			IP:       0x1000,
			Memory: []Memory{
				{Segment: "DS", Base: "None", Index: "None", Scale: 1, Displacement: 0x1017, Size: "Unknown", Access: "NoMemAccess"},
			},
		},
		{
			File:           "test.txt",
			Line:           6,
			Bitness:        64,
			Text:           "0F, Popw_CS, Legacy, INTEL8086, decopt=PopCS",
			Bytes:          []byte{0x0f},
			Code:           "Popw_CS",
			Encoding:       "Legacy",
			Cpuid:          []string{"INTEL8086"},
			DecoderOptions: []string{"PopCS"},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Parse(): (-want, +got)\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		Name  string
		Input string
		Want  string
	}{
		{
			Name:  "too few fields",
			Input: "90, Nopd",
			Want:  "test.txt:1: got 2 fields, want 3 to 5",
		},
		{
			Name:  "bad hex",
			Input: "9G, Nopd, Legacy",
			Want:  `test.txt:1: invalid bytes "9G": encoding/hex: invalid byte: U+0047 'G'`,
		},
		{
			Name:  "missing equals",
			Input: "90, Nopd, Legacy, INTEL8086, op0",
			Want:  `test.txt:1: invalid setting "op0": missing '='`,
		},
		{
			Name:  "bad access",
			Input: "90, Nopd, Legacy, INTEL8086, op0=x",
			Want:  `test.txt:1: invalid setting "op0=x": unknown access "x"`,
		},
		{
			Name:  "unknown key",
			Input: "90, Nopd, Legacy, INTEL8086, foo=1",
			Want:  `test.txt:1: unknown setting "foo"`,
		},
		{
			Name:  "short memory",
			Input: "90, Nopd, Legacy, INTEL8086, rm=DS|RAX",
			Want:  `test.txt:1: invalid setting "rm=DS|RAX": got 2 memory fields, want 6`,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(test.Input), "test.txt", 32)
			if err == nil {
				t.Fatalf("Parse(): got nil error, want %q", test.Want)
			}

			if got := err.Error(); got != test.Want {
				t.Fatalf("Parse():\nGot:  %s\nWant: %s", got, test.Want)
			}
		})
	}
}

func TestParseBitness(t *testing.T) {
	_, err := Parse(strings.NewReader(""), "test.txt", 8)
	if err == nil {
		t.Fatal("Parse(): got nil error for 8-bit mode")
	}
}
