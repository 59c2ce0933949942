// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package optable builds and stores the decision
// trees used to map machine code to instruction
// codes.
//
// Each tree starts with a 256-way dispatch on an
// opcode byte. Below that, nodes dispatch on one
// field of the instruction (a mandatory prefix,
// ModR/M.reg, the operand size, and so on) until
// a terminal node names the value, or an invalid
// node rejects the encoding. Identical subtrees
// are stored once.
package optable

import (
	"fmt"
)

// Kind identifies the variant of a node.
type Kind uint8

const (
	KindInvalid  Kind = iota // No instruction.
	KindTerminal             // A single value.
	KindGroup                // An 8-way dispatch on ModR/M.reg.
	KindArray                // A dispatch on any other field.
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindTerminal:
		return "terminal"
	case KindGroup:
		return "group"
	case KindArray:
		return "array"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Field identifies what a dispatch node selects
// on. The fields are listed in the order in which
// they are tested along a path.
type Field uint8

const (
	FieldOpcode          Field = iota // The opcode byte (256 keys).
	FieldOption                       // A decoder option, numbered by the node's parameter (off, on).
	FieldPrefixOpcode                 // Whether the opcode follows an fwait (no, yes).
	FieldMode64                       // Whether the CPU is in 64-bit mode (no, yes).
	FieldMandatoryPrefix              // The mandatory prefix (none, 66, F3, F2).
	FieldModRMReg                     // ModR/M.reg (0-7).
	FieldModRMMod                     // Whether ModR/M.mod names a register (memory, register).
	FieldModRMRM                      // ModR/M.r/m (0-7).
	FieldRexB                         // REX.B (0, 1).
	FieldW                            // REX.W or the vector prefix's W (0, 1).
	FieldL                            // The vector length (128, 256, 512, reserved).
	FieldOperandSize                  // The operand size (16, 32, 64).
	FieldAddressSize                  // The address size (16, 32, 64).
	numFields
)

var fieldNames = [numFields]string{
	FieldOpcode:          "opcode",
	FieldOption:          "option",
	FieldPrefixOpcode:    "fwait",
	FieldMode64:          "mode64",
	FieldMandatoryPrefix: "prefix",
	FieldModRMReg:        "reg",
	FieldModRMMod:        "mod",
	FieldModRMRM:         "rm",
	FieldRexB:            "rex.b",
	FieldW:               "w",
	FieldL:               "l",
	FieldOperandSize:     "osize",
	FieldAddressSize:     "asize",
}

var fieldWidths = [numFields]int{
	FieldOpcode:          256,
	FieldOption:          2,
	FieldPrefixOpcode:    2,
	FieldMode64:          2,
	FieldMandatoryPrefix: 4,
	FieldModRMReg:        8,
	FieldModRMMod:        2,
	FieldModRMRM:         8,
	FieldRexB:            2,
	FieldW:               2,
	FieldL:               4,
	FieldOperandSize:     3,
	FieldAddressSize:     3,
}

func (f Field) String() string {
	if f < numFields {
		return fieldNames[f]
	}

	return fmt.Sprintf("Field(%d)", f)
}

// Width returns the number of keys the
// field can take.
func (f Field) Width() int {
	if f < numFields {
		return fieldWidths[f]
	}

	return 0
}

// Keys for the fields with named values.
const (
	PrefixNone = 0
	Prefix66   = 1
	PrefixF3   = 2
	PrefixF2   = 3

	ModMemory   = 0
	ModRegister = 1

	L128 = 0
	L256 = 1
	L512 = 2

	Size16 = 0
	Size32 = 1
	Size64 = 2
)

// Node is one node of a table.
//
// For terminal nodes, Value holds the terminal's
// value. For dispatch nodes, Value holds the index
// into the table's children of the node's first
// child.
type Node struct {
	Kind  Kind
	Field Field
	Param uint8
	Value uint32
}

// Invalid is the index of the shared invalid
// node in every table.
const Invalid = 0

// Table is a flattened set of decision trees.
type Table struct {
	Roots    []uint32 // The index of each tree's opcode node.
	Nodes    []Node
	Children []uint32
}

// Root returns the index of the opcode
// dispatch node for the given tree.
func (t *Table) Root(root int) uint32 {
	return t.Roots[root]
}

// Node returns the node with the given index.
func (t *Table) Node(idx uint32) Node {
	return t.Nodes[idx]
}

// Child returns the index of the child of
// dispatch node n for the given key.
func (t *Table) Child(n Node, key int) uint32 {
	return t.Children[int(n.Value)+key]
}

// Lookup walks the given tree, calling key to
// select each dispatch node's child. The opcode
// node is selected with FieldOpcode.
//
// If key returns a negative number, the walk
// stops and Lookup reports false.
func (t *Table) Lookup(root int, key func(field Field, param uint8) int) (value uint32, ok bool) {
	idx := t.Roots[root]
	for {
		n := t.Nodes[idx]
		switch n.Kind {
		case KindInvalid:
			return 0, false
		case KindTerminal:
			return n.Value, true
		}

		k := key(n.Field, n.Param)
		if k < 0 || k >= n.Field.Width() {
			return 0, false
		}

		idx = t.Child(n, k)
	}
}

// Stats summarises a table's size.
type Stats struct {
	Roots     int
	Nodes     int
	Terminals int
	Groups    int
	Arrays    int
	Children  int
}

// Stats returns the number of nodes of each kind.
func (t *Table) Stats() Stats {
	s := Stats{
		Roots:    len(t.Roots),
		Nodes:    len(t.Nodes),
		Children: len(t.Children),
	}

	for _, n := range t.Nodes {
		switch n.Kind {
		case KindTerminal:
			s.Terminals++
		case KindGroup:
			s.Groups++
		case KindArray:
			s.Arrays++
		}
	}

	return s
}

// Values returns the set of terminal values
// reachable in the table.
func (t *Table) Values() map[uint32]bool {
	values := make(map[uint32]bool)
	for _, n := range t.Nodes {
		if n.Kind == KindTerminal {
			values[n.Value] = true
		}
	}

	return values
}
