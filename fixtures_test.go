// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/arch/x86/x86asm"

	"firefly-os.dev/x86/internal/fixture"
)

func loadFixtures(t *testing.T) []*fixture.Case {
	t.Helper()
	var cases []*fixture.Case
	for _, bitness := range []int{16, 32, 64} {
		name := filepath.Join("testdata", fmt.Sprintf("decoder%d.txt", bitness))
		got, err := fixture.ParseFile(name, bitness)
		if err != nil {
			t.Fatal(err)
		}

		cases = append(cases, got...)
	}

	return cases
}

func fixtureOptions(t *testing.T, c *fixture.Case) DecoderOptions {
	t.Helper()
	var options DecoderOptions
	for _, name := range c.DecoderOptions {
		opt, err := ParseDecoderOption(name)
		if err != nil {
			t.Fatalf("%s: %v", c, err)
		}

		options |= opt
	}

	return options
}

func decodeFixture(t *testing.T, c *fixture.Case, data []byte) (Instruction, *Decoder) {
	t.Helper()
	d := NewDecoder(c.Bitness, bytes.NewReader(data), fixtureOptions(t, c))
	d.SetIP(c.IP)
	inst := d.Decode()

	return inst, d
}

func TestDecodeFixtures(t *testing.T) {
	for _, c := range loadFixtures(t) {
		t.Run(fmt.Sprintf("%d/%x", c.Bitness, c.Bytes), func(t *testing.T) {
			want, err := ParseCode(c.Code)
			if err != nil {
				t.Fatalf("%s: %v", c, err)
			}

			inst, d := decodeFixture(t, c, c.Bytes)
			if err := d.LastError(); err != DecoderErrorNone {
				t.Fatalf("%s: Decode(): got error %s", c, err)
			}

			if inst.Code() != want {
				t.Fatalf("%s: Decode(): got %s, want %s", c, inst.Code(), want)
			}

			if inst.Len() != len(c.Bytes) {
				t.Errorf("%s: Len(): got %d, want %d", c, inst.Len(), len(c.Bytes))
			}

			if d.Position() != len(c.Bytes) {
				t.Errorf("%s: Position(): got %d, want %d", c, d.Position(), len(c.Bytes))
			}

			if got := inst.CodeSize().Bits(); got != c.Bitness {
				t.Errorf("%s: CodeSize(): got %d, want %d", c, got, c.Bitness)
			}

			if got := inst.Encoding().String(); got != c.Encoding {
				t.Errorf("%s: Encoding(): got %s, want %s", c, got, c.Encoding)
			}

			var cpuid []string
			for _, f := range inst.Code().CpuidFeatures() {
				cpuid = append(cpuid, f.String())
			}

			if diff := cmp.Diff(c.Cpuid, cpuid, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("%s: CpuidFeatures(): (-want, +got)\n%s", c, diff)
			}

			if c.HasStack {
				if got := inst.StackPointerIncrement(); got != c.Stack {
					t.Errorf("%s: StackPointerIncrement(): got %d, want %d", c, got, c.Stack)
				}
			}

			checkFixtureFlags(t, c, &inst)
			checkFixtureInfo(t, c, &inst)
		})
	}
}

func checkFixtureFlags(t *testing.T, c *fixture.Case, inst *Instruction) {
	t.Helper()
	info := inst.Info(InfoNoMemoryUsage | InfoNoRegisterUsage)
	flags := []struct {
		Name string
		Want string
		Got  RflagsBits
	}{
		{"RflagsRead", c.Read, info.RflagsRead()},
		{"RflagsWritten", c.Written, info.RflagsWritten()},
		{"RflagsCleared", c.Cleared, info.RflagsCleared()},
		{"RflagsSet", c.Set, info.RflagsSet()},
		{"RflagsUndefined", c.Undefined, info.RflagsUndefined()},
	}

	for _, f := range flags {
		want, err := ParseRflags(f.Want)
		if err != nil {
			t.Fatalf("%s: %v", c, err)
		}

		if f.Got != want {
			t.Errorf("%s: %s(): got %s, want %s", c, f.Name, f.Got, want)
		}
	}
}

func checkFixtureInfo(t *testing.T, c *fixture.Case, inst *Instruction) {
	t.Helper()
	if c.OpAccess == nil && c.Registers == nil && c.Memory == nil {
		return
	}

	info := inst.Info(0)
	var access []string
	for i := 0; i < inst.OpCount(); i++ {
		access = append(access, info.OpAccess(i).String())
	}

	if diff := cmp.Diff(c.OpAccess, access, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("%s: OpAccess(): (-want, +got)\n%s", c, diff)
	}

	var regs []fixture.Register
	for _, r := range info.UsedRegisters() {
		regs = append(regs, fixture.Register{Name: r.Register.String(), Access: r.Access.String()})
	}

	if diff := cmp.Diff(c.Registers, regs, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("%s: UsedRegisters(): (-want, +got)\n%s", c, diff)
	}

	var mems []fixture.Memory
	for _, m := range info.UsedMemory() {
		mems = append(mems, fixture.Memory{
			Segment:      m.Segment.String(),
			Base:         m.Base.String(),
			Index:        m.Index.String(),
			Scale:        m.Scale,
			Displacement: m.Displacement,
			Size:         m.Size.String(),
			Access:       m.Access.String(),
		})
	}

	if diff := cmp.Diff(c.Memory, mems, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("%s: UsedMemory(): (-want, +got)\n%s", c, diff)
	}
}

func TestEncodeFixtures(t *testing.T) {
	for _, c := range loadFixtures(t) {
		t.Run(fmt.Sprintf("%d/%x", c.Bitness, c.Bytes), func(t *testing.T) {
			inst, d := decodeFixture(t, c, c.Bytes)
			if err := d.LastError(); err != DecoderErrorNone {
				t.Fatalf("%s: Decode(): got error %s", c, err)
			}

			got, err := EncodeBytes(c.Bitness, &inst, c.IP)
			if err != nil {
				t.Fatalf("%s: EncodeBytes(%s): %v", c, &inst, err)
			}

			if !bytes.Equal(got, c.Bytes) {
				t.Fatalf("%s: EncodeBytes(%s):\nGot:  %x\nWant: %x", c, &inst, got, c.Bytes)
			}

			// Decoding the result gives the same
			// instruction.
			again, _ := decodeFixture(t, c, got)
			if !again.EqualAllBits(&inst) {
				t.Fatalf("%s: re-decoded %s, want %s", c, &again, &inst)
			}
		})
	}
}

func TestTruncatedFixtures(t *testing.T) {
	for _, c := range loadFixtures(t) {
		t.Run(fmt.Sprintf("%d/%x", c.Bitness, c.Bytes), func(t *testing.T) {
			short := c.Bytes[:len(c.Bytes)-1]
			inst, d := decodeFixture(t, c, short)
			if inst.Code() != INVALID {
				t.Errorf("%s: Decode(%x): got %s, want INVALID", c, short, inst.Code())
			}

			if err := d.LastError(); err != DecoderErrorNoMoreBytes {
				t.Errorf("%s: Decode(%x): got error %s, want %s", c, short, err, DecoderErrorNoMoreBytes)
			}

			if d.Position() != len(short) {
				t.Errorf("%s: Position(): got %d, want %d", c, d.Position(), len(short))
			}
		})
	}
}

func TestInfoOptionFixtures(t *testing.T) {
	strip := cmp.AllowUnexported(InstructionInfo{})
	for _, c := range loadFixtures(t) {
		t.Run(fmt.Sprintf("%d/%x", c.Bitness, c.Bytes), func(t *testing.T) {
			inst, _ := decodeFixture(t, c, c.Bytes)
			full := inst.Info(0)
			tests := []struct {
				Options   InfoOptions
				Registers []UsedRegister
				Memory    []UsedMemory
			}{
				{InfoNoMemoryUsage, full.UsedRegisters(), nil},
				{InfoNoRegisterUsage, nil, full.UsedMemory()},
				{InfoNoMemoryUsage | InfoNoRegisterUsage, nil, nil},
			}

			for _, test := range tests {
				got := inst.Info(test.Options)
				want := full
				want.registers = test.Registers
				want.memory = test.Memory
				if diff := cmp.Diff(want, got, strip, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("%s: Info(%d): (-want, +got)\n%s", c, test.Options, diff)
				}
			}

			f := NewInfoFactory()
			if diff := cmp.Diff(full, *f.Info(&inst, 0), strip, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("%s: InfoFactory.Info(): (-want, +got)\n%s", c, diff)
			}

			// The factory's second result does not
			// depend on the first.
			if diff := cmp.Diff(full, *f.Info(&inst, 0), strip, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("%s: second InfoFactory.Info(): (-want, +got)\n%s", c, diff)
			}
		})
	}
}

// TestX86asmLength checks the decoded length of
// each legacy fixture against an
// independent decoder.
func TestX86asmLength(t *testing.T) {
	for _, c := range loadFixtures(t) {
		if c.Encoding != "Legacy" || c.DecoderOptions != nil {
			continue
		}

		// x86asm decodes a leading 9B as WAIT.
		if c.Bytes[0] == 0x9b && len(c.Bytes) > 1 {
			continue
		}

		ref, err := x86asm.Decode(c.Bytes, c.Bitness)
		if err != nil || ref.Op == 0 {
			// x86asm does not know every
			// instruction. After a prefix it
			// returns the prefix alone.
			continue
		}

		inst, _ := decodeFixture(t, c, c.Bytes)
		if inst.Len() != ref.Len {
			t.Errorf("%s: %x: got length %d, x86asm gives %d (%s)", c, c.Bytes, inst.Len(), ref.Len, ref)
		}
	}
}

// notDecoded lists the codes the decoder never
// returns, so they have no fixtures.
var notDecoded = map[Code]bool{
	INVALID:      true,
	DeclareByte:  true,
	DeclareWord:  true,
	DeclareDword: true,
	DeclareQword: true,
	Zero_bytes:   true,
}

// TestFixtureCoverage checks that every code has
// a fixture in each mode in which it can be
// decoded.
func TestFixtureCoverage(t *testing.T) {
	type key struct {
		code    Code
		bitness int
	}

	seen := make(map[key]bool)
	for _, c := range loadFixtures(t) {
		code, err := ParseCode(c.Code)
		if err != nil {
			t.Fatalf("%s: %v", c, err)
		}

		if notDecoded[code] {
			t.Errorf("%s: %s has a fixture but is listed as never decoded", c, code)
		}

		if !code.def().modes.has(c.Bitness) {
			t.Errorf("%s: %s cannot be decoded in %d-bit mode", c, code, c.Bitness)
		}

		seen[key{code, c.Bitness}] = true
	}

	for code := Code(0); code < NumberOfCodeValues; code++ {
		if notDecoded[code] {
			continue
		}

		for _, bitness := range []int{16, 32, 64} {
			if code.def().modes.has(bitness) && !seen[key{code, bitness}] {
				t.Errorf("%s: no %d-bit fixture", code, bitness)
			}
		}
	}
}
