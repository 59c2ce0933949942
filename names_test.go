// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"firefly-os.dev/x86/internal/optable"
)

func TestParseNames(t *testing.T) {
	codes := []struct {
		Name string
		Want Code
	}{
		{"Add_rm64_r64", Add_rm64_r64},
		{"add_rm64_r64", Add_rm64_r64},
		{"VEX_VADDPS_XMM_XMM_XMMM128", VEX_Vaddps_xmm_xmm_xmmm128},
		{"INVALID", INVALID},
	}

	for _, test := range codes {
		got, err := ParseCode(test.Name)
		if err != nil {
			t.Errorf("ParseCode(%q): %v", test.Name, err)
		} else if got != test.Want {
			t.Errorf("ParseCode(%q): got %s, want %s", test.Name, got, test.Want)
		}
	}

	mnemonics := []struct {
		Name string
		Want Mnemonic
	}{
		{"Add", MnemonicAdd},
		{"PUSH", MnemonicPush},
		{"ret", MnemonicRet},
	}

	for _, test := range mnemonics {
		got, err := ParseMnemonic(test.Name)
		if err != nil {
			t.Errorf("ParseMnemonic(%q): %v", test.Name, err)
		} else if got != test.Want {
			t.Errorf("ParseMnemonic(%q): got %s, want %s", test.Name, got, test.Want)
		}
	}

	registers := []struct {
		Name string
		Want Register
	}{
		{"rax", RAX},
		{"R8D", R8D},
		{"xmm31", XMM31},
		{"Fs", FS},
		{"k1", K1},
	}

	for _, test := range registers {
		got, err := ParseRegister(test.Name)
		if err != nil {
			t.Errorf("ParseRegister(%q): %v", test.Name, err)
		} else if got != test.Want {
			t.Errorf("ParseRegister(%q): got %s, want %s", test.Name, got, test.Want)
		}
	}
}

func TestParseNamesErrors(t *testing.T) {
	if _, err := ParseCode("Add_r64"); err == nil || err.Error() != `unknown code "Add_r64"` {
		t.Errorf("ParseCode(): got error %v", err)
	}

	if _, err := ParseMnemonic("Frob"); err == nil || err.Error() != `unknown mnemonic "Frob"` {
		t.Errorf("ParseMnemonic(): got error %v", err)
	}

	// RegisterNone has no name to parse.
	for _, name := range []string{"None", "", "r16"} {
		if _, err := ParseRegister(name); err == nil {
			t.Errorf("ParseRegister(%q): unexpected success", name)
		}
	}
}

func TestParseNamesRoundTrip(t *testing.T) {
	for c := Code(0); c < NumberOfCodeValues; c++ {
		got, err := ParseCode(c.String())
		if err != nil || got != c {
			t.Fatalf("ParseCode(%q): got %s, %v", c.String(), got, err)
		}
	}

	for r := Register(1); r < NumberOfRegisters; r++ {
		got, err := ParseRegister(r.String())
		if err != nil || got != r {
			t.Fatalf("ParseRegister(%q): got %s, %v", r.String(), got, err)
		}
	}
}

func TestDecodeTableStats(t *testing.T) {
	stats, err := DecodeTableStats()
	if err != nil {
		t.Fatal(err)
	}

	if stats.Roots == 0 || stats.Nodes == 0 || stats.Terminals == 0 {
		t.Fatalf("DecodeTableStats(): got empty tables: %+v", stats)
	}

	if stats.Codes == 0 || stats.Codes > int(NumberOfCodeValues) {
		t.Fatalf("DecodeTableStats(): got %d codes, want 1-%d", stats.Codes, NumberOfCodeValues)
	}

	blob, err := DecodeTableBlob()
	if err != nil {
		t.Fatal(err)
	}

	if len(blob) != stats.BlobSize {
		t.Fatalf("DecodeTableBlob(): got %d bytes, want %d", len(blob), stats.BlobSize)
	}

	again, err := DecodeTableBlob()
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(blob, again) {
		t.Fatal("DecodeTableBlob(): output is not deterministic")
	}

	tbl, err := optable.Unmarshal(blob)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(decodeTable().Stats(), tbl.Stats()); diff != "" {
		t.Fatalf("Unmarshal(DecodeTableBlob()).Stats(): (-want, +got)\n%s", diff)
	}
}

func TestBuildTableExclude(t *testing.T) {
	vex := func(c Code) bool { return c.Encoding() == EncodingKindVEX }
	got, err := buildTable(vex)
	if err != nil {
		t.Fatal(err)
	}

	full := decodeTable()
	values := got.Values()
	for v := range values {
		if vex(Code(v)) {
			t.Errorf("buildTable(): excluded %s is reachable", Code(v))
		}
	}

	if len(values) >= len(full.Values()) {
		t.Errorf("buildTable(): got %d codes, want fewer than %d", len(values), len(full.Values()))
	}

	if got.Stats().Nodes >= full.Stats().Nodes {
		t.Errorf("buildTable(): got %d nodes, want fewer than %d", got.Stats().Nodes, full.Stats().Nodes)
	}
}
