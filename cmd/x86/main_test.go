// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
	"rsc.io/diff"

	"firefly-os.dev/x86"
)

// writeFile creates a file in a temporary
// directory and returns its path.
func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, data, 0644)
	if err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}

	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "x86.toml", []byte("bitness = 32\nip = 0x1000\noptions = [\"AMD\", \"knc\"]\n"))
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	want := &Config{Bitness: 32, IP: 0x1000, Options: []string{"AMD", "knc"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("LoadConfig(): (-want, +got)\n%s", diff)
	}

	path = writeFile(t, "x86.toml", []byte("bitness = 32\nmode = \"long\"\n"))
	_, err = LoadConfig(path)
	if err == nil {
		t.Fatal("LoadConfig(): unexpected success with an unknown key")
	}

	if want := "failed to parse " + path + ": unknown key \"mode\""; err.Error() != want {
		t.Fatalf("LoadConfig(): got error %q, want %q", err, want)
	}

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("LoadConfig(): got error %v, want fs.ErrNotExist", err)
	}
}

func TestSettings(t *testing.T) {
	config := writeFile(t, "x86.toml", []byte("bitness = 32\nip = 0x1000\noptions = [\"AMD\"]\n"))
	tests := []struct {
		Name    string
		Args    []string
		Bitness int
		IP      uint64
		Options x86.DecoderOptions
	}{
		{
			Name:    "defaults",
			Args:    nil,
			Bitness: 64,
		},
		{
			Name:    "config",
			Args:    []string{"-config", config},
			Bitness: 32,
			IP:      0x1000,
			Options: x86.DecoderAMD,
		},
		{
			Name:    "flags override config",
			Args:    []string{"-config", config, "-bitness", "16", "-ip", "0x7c00", "-options", "popcs,KNC"},
			Bitness: 16,
			IP:      0x7c00,
			Options: x86.DecoderPopCS | x86.DecoderKNC,
		},
		{
			Name:    "empty options",
			Args:    []string{"-config", config, "-options", ""},
			Bitness: 32,
			IP:      0x1000,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			flags := flag.NewFlagSet("test", flag.ContinueOnError)
			s := addSettings(flags)
			if err := flags.Parse(test.Args); err != nil {
				t.Fatal(err)
			}

			if err := s.load(flags); err != nil {
				t.Fatal(err)
			}

			if s.bitness != test.Bitness {
				t.Errorf("bitness: got %d, want %d", s.bitness, test.Bitness)
			}

			if s.ip != test.IP {
				t.Errorf("ip: got %#x, want %#x", s.ip, test.IP)
			}

			if s.decoderOptions != test.Options {
				t.Errorf("options: got %s, want %s", s.decoderOptions, test.Options)
			}
		})
	}
}

func TestSettingsErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.toml")
	tests := []struct {
		Name string
		Args []string
		Want string
	}{
		{
			Name: "missing config",
			Args: []string{"-config", missing},
			Want: "failed to read " + missing,
		},
		{
			Name: "bad bitness",
			Args: []string{"-bitness", "8"},
			Want: "invalid bitness 8: must be 16, 32 or 64",
		},
		{
			Name: "bad option",
			Args: []string{"-options", "AMD,Fast"},
			Want: "unknown decoder option \"Fast\"",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			flags := flag.NewFlagSet("test", flag.ContinueOnError)
			s := addSettings(flags)
			if err := flags.Parse(test.Args); err != nil {
				t.Fatal(err)
			}

			err := s.load(flags)
			if err == nil {
				t.Fatal("load(): unexpected success")
			}

			if !strings.HasPrefix(err.Error(), test.Want) {
				t.Fatalf("load(): got error %q, want %q", err, test.Want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	got, err := parseHex([]string{"55", "48 89e5", "c3"})
	if err != nil {
		t.Fatal(err)
	}

	want := []byte{0x55, 0x48, 0x89, 0xe5, 0xc3}
	if !bytes.Equal(got, want) {
		t.Fatalf("parseHex(): got %x, want %x", got, want)
	}

	for _, args := range [][]string{nil, {"5"}, {"zz"}} {
		if _, err := parseHex(args); err == nil {
			t.Errorf("parseHex(%q): unexpected success", args)
		}
	}
}

func TestParseOperand(t *testing.T) {
	tests := []struct {
		In   string
		Want string
	}{
		{"rax", "RAX"},
		{"XMM31", "XMM31"},
		{"k1", "K1"},
		{"16", "immediate 0x10"},
		{"-5", "immediate 0xfffffffffffffffb"},
		{"0xffffffffffffffff", "immediate 0xffffffffffffffff"},
		{"@0x401000", "branch 0x401000"},
		{"0x10:0x2000", "far 0x10:0x2000"},
		{"[rax]", "memory"},
		{"fs:[0x28]", "memory"},
	}

	for _, test := range tests {
		got, err := parseOperand(test.In)
		if err != nil {
			t.Errorf("parseOperand(%q): %v", test.In, err)
			continue
		}

		if got.String() != test.Want {
			t.Errorf("parseOperand(%q): got %s, want %s", test.In, got, test.Want)
		}
	}

	for _, in := range []string{"", "bogus", "@target", "0x10:x", "[rax"} {
		if _, err := parseOperand(in); err == nil {
			t.Errorf("parseOperand(%q): unexpected success", in)
		}
	}
}

func TestParseMemory(t *testing.T) {
	tests := []struct {
		In   string
		Want x86.Memory
	}{
		{
			In:   "[rax]",
			Want: x86.Memory{Base: x86.RAX},
		},
		{
			In:   "fs:[rax+rbx*4+0x10]",
			Want: x86.Memory{Segment: x86.FS, Base: x86.RAX, Index: x86.RBX, Scale: 4, Displacement: 0x10},
		},
		{
			In:   "[rbp-8]",
			Want: x86.Memory{Base: x86.RBP, Displacement: -8},
		},
		{
			In:   "[ r8 + r9 ]",
			Want: x86.Memory{Base: x86.R8, Index: x86.R9},
		},
		{
			In:   "[rcx*8+0x1000]",
			Want: x86.Memory{Index: x86.RCX, Scale: 8, Displacement: 0x1000},
		},
		{
			In:   "[rax]{1to16}",
			Want: x86.Memory{Base: x86.RAX, Broadcast: true},
		},
		{
			In:   "[0x10-0x18]",
			Want: x86.Memory{Displacement: -8},
		},
	}

	for _, test := range tests {
		t.Run(test.In, func(t *testing.T) {
			got, err := parseMemory(test.In)
			if err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(test.Want, got); diff != "" {
				t.Fatalf("parseMemory(): (-want, +got)\n%s", diff)
			}
		})
	}
}

func TestParseMemoryErrors(t *testing.T) {
	tests := []struct {
		In   string
		Want string
	}{
		{"[]", `invalid memory operand "[]": empty address`},
		{"rax", `invalid memory operand "rax"`},
		{"xx:[rax]", `invalid memory operand "xx:[rax]": bad segment "xx"`},
		{"rax:[rax]", `invalid memory operand "rax:[rax]": bad segment "rax"`},
		{"[rax]{k1}", `invalid memory operand "[rax]{k1}": unexpected "{k1}"`},
		{"[rax-rbx]", `invalid memory operand "[rax-rbx]": cannot subtract rbx`},
		{"[rax*2+rbx*4]", `invalid memory operand "[rax*2+rbx*4]": two index registers`},
		{"[rax+rbx+rcx]", `invalid memory operand "[rax+rbx+rcx]": too many registers`},
		{"[rax*x]", `invalid memory operand "[rax*x]": bad scale "x"`},
	}

	for _, test := range tests {
		t.Run(test.In, func(t *testing.T) {
			_, err := parseMemory(test.In)
			if err == nil {
				t.Fatal("parseMemory(): unexpected success")
			}

			if err.Error() != test.Want {
				t.Fatalf("parseMemory(): got error %q, want %q", err, test.Want)
			}
		})
	}
}

// emptyConfig returns a config file with no
// settings, so the tests do not depend on the
// working directory.
func emptyConfig(t *testing.T) string {
	return writeFile(t, "x86.toml", nil)
}

func TestCommands(t *testing.T) {
	config := emptyConfig(t)
	tests := []struct {
		Name string
		Func func(ctx context.Context, w io.Writer, args []string) error
		Args []string
		Want string
	}{
		{
			Name: "decode",
			Func: decodeMain,
			Args: []string{"-config", config, "-ip", "0x401000", "55", "4889e5", "06", "c3"},
			Want: "" +
				"0000000000401000  55                             Push RBP\n" +
				"0000000000401001  4889e5                         Mov RBP, RSP\n" +
				"0000000000401004  06                             (bad: InvalidInstruction)\n" +
				"0000000000401005  c3                             Ret\n",
		},
		{
			Name: "decode 16-bit",
			Func: decodeMain,
			Args: []string{"-config", config, "-bitness", "16", "-ip", "0x7c00", "06", "0f"},
			Want: "" +
				"7c00  06                             Push ES\n" +
				"7c01  0f                             (bad: NoMoreBytes)\n",
		},
		{
			Name: "encode",
			Func: encodeMain,
			Args: []string{"-config", config, "Add_rm64_r64", "[rax+rbx*4+0x10]", "rcx"},
			Want: "48014c9810\n",
		},
		{
			Name: "encode offsets",
			Func: encodeMain,
			Args: []string{"-config", config, "-offsets", "Add_rm64_r64", "[rax+rbx*4+0x10]", "rcx"},
			Want: "" +
				"48014c9810\n" +
				"displacement: 1 bytes at offset 4\n",
		},
		{
			Name: "encode branch",
			Func: encodeMain,
			Args: []string{"-config", config, "-ip", "0x1000", "-offsets", "call_rel32_64", "@0x2000"},
			Want: "" +
				"e8fb0f0000\n" +
				"branch:       4 bytes at offset 1\n",
		},
		{
			Name: "encode vex3",
			Func: encodeMain,
			Args: []string{"-config", config, "-vex3", "VEX_Vaddps_xmm_xmm_xmmm128", "xmm0", "xmm1", "xmm2"},
			Want: "c4e17058c2\n",
		},
		{
			Name: "encode masked",
			Func: encodeMain,
			Args: []string{"-config", config, "-mask", "k1", "-z", "EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er", "zmm0", "zmm1", "zmm2"},
			Want: "62f174c958c2\n",
		},
		{
			Name: "info",
			Func: infoMain,
			Args: []string{"-config", config, "-ip", "0x401000", "4801d8"},
			Want: "" +
				"0000000000401000  4801d8                         Add RAX, RBX\n" +
				"\tcode:      Add_rm64_r64 (Legacy)\n" +
				"\tflow:      Next\n" +
				"\tcpuid:     X64\n" +
				"\toperands:  ReadWrite Read\n" +
				"\tregister:  RAX ReadWrite\n" +
				"\tregister:  RBX Read\n" +
				"\tflags written:  OF|SF|ZF|AF|CF|PF\n",
		},
		{
			Name: "tables",
			Func: tablesMain,
			Args: []string{"add_rm64_r64"},
			Want: "" +
				"Add_rm64_r64:\n" +
				"\tencoding: Legacy REX.W 01 /r\n" +
				"\toperands: rm64, r64\n" +
				"\tmodes:    64\n" +
				"\tmemory:   UInt64\n" +
				"\tallows:   lock, xacquire, xrelease\n" +
				"\tcpuid:    X64\n",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			var buf bytes.Buffer
			err := test.Func(context.Background(), &buf, test.Args)
			if err != nil {
				t.Fatal(err)
			}

			if got := buf.String(); got != test.Want {
				t.Fatalf("%s:\n%s", test.Name, diff.Format(got, test.Want))
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	config := emptyConfig(t)
	tests := []struct {
		Name string
		Func func(ctx context.Context, w io.Writer, args []string) error
		Args []string
		Want string
	}{
		{
			Name: "decode bad hex",
			Func: decodeMain,
			Args: []string{"zz"},
			Want: "invalid machine code: encoding/hex: invalid byte: U+007A 'z'",
		},
		{
			Name: "encode unknown code",
			Func: encodeMain,
			Args: []string{"Frobnicate", "rax"},
			Want: `unknown code "Frobnicate"`,
		},
		{
			Name: "encode bad mask",
			Func: encodeMain,
			Args: []string{"-mask", "rax", "EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er", "zmm0", "zmm1", "zmm2"},
			Want: "RAX is not an opmask register",
		},
		{
			Name: "encode bad operand",
			Func: encodeMain,
			Args: []string{"Push_r64", "bogus"},
			Want: `invalid operand "bogus": not a register or number`,
		},
		{
			Name: "info invalid",
			Func: infoMain,
			Args: []string{"-ip", "0x10", "9006"},
			Want: "invalid instruction at 0x11: InvalidInstruction",
		},
		{
			Name: "info format",
			Func: infoMain,
			Args: []string{"-format", "json", "90"},
			Want: `unknown format "json"`,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			var buf bytes.Buffer
			args := append([]string{"-config", config}, test.Args...)
			err := test.Func(context.Background(), &buf, args)
			if err == nil {
				t.Fatalf("unexpected success:\n%s", buf.String())
			}

			if err.Error() != test.Want {
				t.Fatalf("got error %q, want %q", err, test.Want)
			}
		})
	}
}

func TestTablesUnknown(t *testing.T) {
	var buf bytes.Buffer
	err := tablesMain(context.Background(), &buf, []string{"frobnicate"})
	if err == nil || err.Error() != `no instruction data found for "frobnicate"` {
		t.Fatalf("tablesMain(): got error %v", err)
	}
}

func TestTablesBlob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.bin")
	var buf bytes.Buffer
	err := tablesMain(context.Background(), &buf, []string{"-blob", path})
	if err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want, err := x86.DecodeTableBlob()
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(got, want) {
		t.Fatalf("tablesMain(): wrote %d bytes, want %d", len(got), len(want))
	}

	if buf.Len() != 0 {
		t.Fatalf("tablesMain(): unexpected output:\n%s", buf.String())
	}
}

func TestInfoYAML(t *testing.T) {
	var buf bytes.Buffer
	args := []string{"-config", emptyConfig(t), "-format", "yaml", "-ip", "0x401000", "4801d8", "c3"}
	err := infoMain(context.Background(), &buf, args)
	if err != nil {
		t.Fatal(err)
	}

	var got []*InstructionReport
	err = yaml.Unmarshal(buf.Bytes(), &got)
	if err != nil {
		t.Fatalf("failed to parse YAML: %v\n%s", err, buf.String())
	}

	if len(got) != 2 {
		t.Fatalf("got %d reports, want 2:\n%s", len(got), buf.String())
	}

	want := &InstructionReport{
		Address:     0x401000,
		Bytes:       "4801d8",
		Instruction: "Add RAX, RBX",
		Code:        "Add_rm64_r64",
		Encoding:    "Legacy",
		Flow:        "Next",
		Cpuid:       []string{"X64"},
		Operands:    []string{"ReadWrite", "Read"},
		Registers: []RegisterReport{
			{Register: "RAX", Access: "ReadWrite"},
			{Register: "RBX", Access: "Read"},
		},
		Flags: FlagsReport{Written: "OF|SF|ZF|AF|CF|PF"},
	}

	if diff := cmp.Diff(want, got[0]); diff != "" {
		t.Fatalf("infoMain(): (-want, +got)\n%s", diff)
	}

	ret := got[1]
	if ret.Address != 0x401003 || ret.Flow != "Return" || ret.Code != "Retnq" {
		t.Fatalf("infoMain(): got %s %s at %#x, want Retnq Return at 0x401003", ret.Code, ret.Flow, ret.Address)
	}

	if len(ret.Memory) != 1 || ret.Memory[0].Segment != "SS" || ret.Memory[0].Base != "RSP" || ret.Memory[0].Access != "Read" {
		t.Fatalf("infoMain(): got memory %+v, want a read from SS:[RSP]", ret.Memory)
	}
}

func TestVerify(t *testing.T) {
	good := writeFile(t, "good.bin", []byte{
		0x55,                   // push rbp
		0x48, 0x89, 0xe5,       // mov rbp, rsp
		0x06,                   // (invalid)
		0x48, 0x01, 0xd8,       // add rax, rbx
		0x0f, 0x05,             // syscall
		0xc5, 0xf0, 0x58, 0xc2, // vaddps xmm0, xmm1, xmm2
		0xc3,                   // ret
	})

	var buf bytes.Buffer
	args := []string{"-config", emptyConfig(t), "-j", "2", good}
	err := verifyMain(context.Background(), &buf, args)
	if err != nil {
		t.Fatalf("verifyMain(): %v\n%s", err, buf.String())
	}

	want := good + ": 7 instructions, 1 invalid, 5 compared with x86asm, 0 problems\n"
	if got := buf.String(); got != want {
		t.Fatalf("verifyMain():\n%s", diff.Format(got, want))
	}
}

func TestVerifyReencoding(t *testing.T) {
	// The redundant 0x66 on a byte operation is
	// dropped when re-encoding.
	code := []byte{0x66, 0x00, 0xc0}
	got, err := verify(context.Background(), "test", code, 64, 0, x86.DecoderNone)
	if err != nil {
		t.Fatal(err)
	}

	want := &verifyResult{
		Name:         "test",
		Instructions: 1,
		Compared:     1,
		Problems:     []string{"0x0: 6600c0: Add AL, AL re-encodes as 00c0"},
		NumProblems:  1,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("verify(): (-want, +got)\n%s", diff)
	}
}

func TestVerifyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := verify(ctx, "test", []byte{0x90}, 64, 0, x86.DecoderNone)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("verify(): got error %v, want context.Canceled", err)
	}
}
