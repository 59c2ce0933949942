// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package optable

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// keys holds the field values used
// to walk a table in tests.
type keys struct {
	Opcode  int
	Option  uint32 // Bit set of options.
	Prefix  int
	Reg     int
	Mod     int
	OpSize  int
	W       int
	Invalid bool // Whether the lookup should fail.
}

func (k keys) key(field Field, param uint8) int {
	switch field {
	case FieldOpcode:
		return k.Opcode
	case FieldOption:
		return int(k.Option>>param) & 1
	case FieldMandatoryPrefix:
		return k.Prefix
	case FieldModRMReg:
		return k.Reg
	case FieldModRMMod:
		return k.Mod
	case FieldOperandSize:
		return k.OpSize
	case FieldW:
		return k.W
	default:
		return 0
	}
}

func testBuilder(t *testing.T) *Builder {
	t.Helper()
	b := NewBuilder(1)
	add := func(opcode byte, value uint32, steps ...Step) {
		t.Helper()
		if err := b.Add(0, opcode, value, steps...); err != nil {
			t.Fatalf("Add(%#x, %d): %v", opcode, value, err)
		}
	}

	add(0x01, 10)
	add(0x02, 20, On(FieldMandatoryPrefix, PrefixNone))
	add(0x02, 21, On(FieldMandatoryPrefix, Prefix66))
	add(0x03, 30, On(FieldModRMReg, 0))
	add(0x03, 31, On(FieldModRMReg, 1), On(FieldModRMMod, ModRegister))
	add(0x05, 50, Option(3, true))
	add(0x05, 51, On(FieldMandatoryPrefix, PrefixNone))
	add(0x90, 40, On(FieldOperandSize, Size32))
	add(0x90, 41, On(FieldMandatoryPrefix, PrefixF3))

	return b
}

func TestLookup(t *testing.T) {
	table, err := testBuilder(t).Build(nil)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		Name string
		Keys keys
		Want uint32
	}{
		{
			Name: "plain opcode",
			Keys: keys{Opcode: 0x01},
			Want: 10,
		},
		{
			Name: "unused opcode",
			Keys: keys{Opcode: 0x04, Invalid: true},
		},
		{
			Name: "no prefix",
			Keys: keys{Opcode: 0x02, Prefix: PrefixNone},
			Want: 20,
		},
		{
			Name: "mandatory prefix",
			Keys: keys{Opcode: 0x02, Prefix: Prefix66},
			Want: 21,
		},
		{
			Name: "unexpected prefix",
			Keys: keys{Opcode: 0x02, Prefix: PrefixF2, Invalid: true},
		},
		{
			Name: "group memory",
			Keys: keys{Opcode: 0x03, Reg: 0, Mod: ModMemory},
			Want: 30,
		},
		{
			Name: "group register",
			Keys: keys{Opcode: 0x03, Reg: 1, Mod: ModRegister},
			Want: 31,
		},
		{
			Name: "group register only",
			Keys: keys{Opcode: 0x03, Reg: 1, Mod: ModMemory, Invalid: true},
		},
		{
			Name: "group unused",
			Keys: keys{Opcode: 0x03, Reg: 7, Invalid: true},
		},
		{
			Name: "operand size",
			Keys: keys{Opcode: 0x90, Prefix: PrefixNone, OpSize: Size32},
			Want: 40,
		},
		{
			Name: "earlier field wins",
			Keys: keys{Opcode: 0x90, Prefix: PrefixF3, OpSize: Size32},
			Want: 41,
		},
		{
			Name: "prefix ignores size",
			Keys: keys{Opcode: 0x90, Prefix: PrefixF3, OpSize: Size16},
			Want: 41,
		},
		{
			Name: "missing size",
			Keys: keys{Opcode: 0x90, Prefix: PrefixNone, OpSize: Size16, Invalid: true},
		},
		{
			Name: "option off",
			Keys: keys{Opcode: 0x05, Prefix: PrefixNone},
			Want: 51,
		},
		{
			Name: "option off bad prefix",
			Keys: keys{Opcode: 0x05, Prefix: Prefix66, Invalid: true},
		},
		{
			Name: "option on",
			Keys: keys{Opcode: 0x05, Option: 1 << 3, Prefix: Prefix66},
			Want: 50,
		},
		{
			Name: "option overrides",
			Keys: keys{Opcode: 0x05, Option: 1 << 3, Prefix: PrefixNone},
			Want: 50,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got, ok := table.Lookup(0, test.Keys.key)
			if ok == test.Keys.Invalid {
				t.Fatalf("Lookup(): got ok=%v, want %v", ok, !test.Keys.Invalid)
			}

			if ok && got != test.Want {
				t.Fatalf("Lookup(): got %d, want %d", got, test.Want)
			}
		})
	}
}

func TestSharedSubtrees(t *testing.T) {
	b := NewBuilder(1)
	for _, op := range []byte{0x10, 0x11} {
		if err := b.Add(0, op, 60, On(FieldW, 1)); err != nil {
			t.Fatal(err)
		}
	}

	if err := b.Add(0, 0x12, 60); err != nil {
		t.Fatal(err)
	}

	table, err := b.Build(nil)
	if err != nil {
		t.Fatal(err)
	}

	root := table.Node(table.Root(0))
	if a, b := table.Child(root, 0x10), table.Child(root, 0x11); a != b {
		t.Errorf("identical subtrees stored twice: %d and %d", a, b)
	}

	want := Stats{
		Roots:     1,
		Nodes:     4,
		Terminals: 1,
		Arrays:    2,
		Children:  2 + 256,
	}

	if diff := cmp.Diff(want, table.Stats()); diff != "" {
		t.Errorf("Stats(): (-want, +got)\n%s", diff)
	}

	// Excluding the only value leaves
	// nothing but the opcode node.
	table, err = b.Build(func(value uint32) bool { return value == 60 })
	if err != nil {
		t.Fatal(err)
	}

	want = Stats{
		Roots:    1,
		Nodes:    2,
		Arrays:   1,
		Children: 256,
	}

	if diff := cmp.Diff(want, table.Stats()); diff != "" {
		t.Errorf("Stats() after exclusion: (-want, +got)\n%s", diff)
	}
}

func TestExclude(t *testing.T) {
	table, err := testBuilder(t).Build(func(value uint32) bool { return value == 41 || value == 50 })
	if err != nil {
		t.Fatal(err)
	}

	// The wildcard entries are still
	// reachable without the excluded ones.
	got, ok := table.Lookup(0, keys{Opcode: 0x90, Prefix: PrefixF3, OpSize: Size32}.key)
	if !ok || got != 40 {
		t.Errorf("Lookup(F3 90): got %d, %v, want 40", got, ok)
	}

	got, ok = table.Lookup(0, keys{Opcode: 0x05, Option: 1 << 3, Prefix: PrefixNone}.key)
	if !ok || got != 51 {
		t.Errorf("Lookup(05): got %d, %v, want 51", got, ok)
	}

	if table.Values()[41] {
		t.Errorf("excluded value 41 still present")
	}
}

func TestBuilderErrors(t *testing.T) {
	b := NewBuilder(1)
	if err := b.Add(0, 0x00, 1, On(FieldOperandSize, Size16), On(FieldMandatoryPrefix, PrefixNone)); err == nil {
		t.Errorf("Add(): unexpected success with steps out of order")
	}

	if err := b.Add(0, 0x00, 1, On(FieldMode64, 3)); err == nil {
		t.Errorf("Add(): unexpected success with key out of range")
	}

	if err := b.Add(1, 0x00, 1); err == nil {
		t.Errorf("Add(): unexpected success with invalid root")
	}

	if err := b.Add(0, 0x00, 1, On(FieldW, 0)); err != nil {
		t.Fatal(err)
	}

	if err := b.Add(0, 0x00, 2, On(FieldW, 0, 1)); err != nil {
		t.Fatal(err)
	}

	// The second path accepts every key, so
	// it is less specific and loses.
	table, err := b.Build(nil)
	if err != nil {
		t.Fatal(err)
	}

	if got, _ := table.Lookup(0, keys{W: 0}.key); got != 1 {
		t.Errorf("Lookup(W0): got %d, want 1", got)
	}

	if got, _ := table.Lookup(0, keys{W: 1}.key); got != 2 {
		t.Errorf("Lookup(W1): got %d, want 2", got)
	}

	if err := b.Add(0, 0x00, 3, On(FieldW, 0)); err != nil {
		t.Fatal(err)
	}

	_, err = b.Build(nil)
	if !errors.Is(err, ErrAmbiguous) {
		t.Errorf("Build(): got error %v, want %v", err, ErrAmbiguous)
	}
}

func TestBlob(t *testing.T) {
	table, err := testBuilder(t).Build(nil)
	if err != nil {
		t.Fatal(err)
	}

	data, err := table.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	got, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(table, got); diff != "" {
		t.Fatalf("Unmarshal(): (-want, +got)\n%s", diff)
	}

	if _, err := Unmarshal(data[:len(data)-1]); err == nil {
		t.Errorf("Unmarshal(): unexpected success with truncated data")
	}

	bad := append([]byte(nil), data...)
	bad[0] = 'X'
	if _, err := Unmarshal(bad); err == nil {
		t.Errorf("Unmarshal(): unexpected success with bad magic")
	}

	// The roots section length follows the
	// magic and version.
	long := append([]byte(nil), data...)
	long[len(blobMagic)+1] = 0xff
	if _, err := Unmarshal(long); !errors.Is(err, errBadBlob) {
		t.Errorf("Unmarshal(): got error %v with oversized section, want %v", err, errBadBlob)
	}

	if _, err := Unmarshal(append(data, 0)); !errors.Is(err, errBadBlob) {
		t.Errorf("Unmarshal(): got error %v with trailing data, want %v", err, errBadBlob)
	}

	// A child that refers back to its
	// parent would make walks loop.
	loop := &Table{
		Roots:    []uint32{1},
		Nodes:    []Node{{Kind: KindInvalid}, {Kind: KindArray, Field: FieldOpcode}},
		Children: make([]uint32, 256),
	}

	if err := loop.validate(); err != nil {
		t.Fatalf("validate(): %v", err)
	}

	loop.Children[5] = 1
	data, err = loop.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Unmarshal(data); err == nil {
		t.Errorf("Unmarshal(): unexpected success with a looping child")
	}
}
