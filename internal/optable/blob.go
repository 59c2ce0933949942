// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package optable

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
)

// blobMagic identifies a serialised table.
const blobMagic = "x86optab"

// blobVersion is incremented whenever the
// serialised form changes.
const blobVersion = 1

// MarshalBinary serialises the table.
//
// The form is:
//
//	magic [8]byte
//	version uint8
//	roots uint32 length-prefixed list of uint32
//	nodes uint32 length-prefixed list of (kind uint8, field uint8, param uint8, value uint32)
//	children uint32 length-prefixed list of uint32
func (t *Table) MarshalBinary() ([]byte, error) {
	var b cryptobyte.Builder
	b.AddBytes([]byte(blobMagic))
	b.AddUint8(blobVersion)
	b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) {
		for _, root := range t.Roots {
			b.AddUint32(root)
		}
	})
	b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) {
		for _, n := range t.Nodes {
			b.AddUint8(uint8(n.Kind))
			b.AddUint8(uint8(n.Field))
			b.AddUint8(n.Param)
			b.AddUint32(n.Value)
		}
	})
	b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) {
		for _, child := range t.Children {
			b.AddUint32(child)
		}
	})

	return b.Bytes()
}

var errBadBlob = errors.New("malformed opcode table")

// Unmarshal parses a table serialised with
// MarshalBinary, checking that every index
// it contains is in range.
func Unmarshal(data []byte) (*Table, error) {
	s := cryptobyte.String(data)
	var magic []byte
	var version uint8
	if !s.ReadBytes(&magic, len(blobMagic)) || string(magic) != blobMagic {
		return nil, fmt.Errorf("%w: bad magic", errBadBlob)
	}

	if !s.ReadUint8(&version) || version != blobVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", errBadBlob, version)
	}

	var roots, nodes, children cryptobyte.String
	if !readSection(&s, &roots) ||
		!readSection(&s, &nodes) ||
		!readSection(&s, &children) ||
		!s.Empty() {
		return nil, fmt.Errorf("%w: bad sections", errBadBlob)
	}

	t := new(Table)
	for !roots.Empty() {
		var root uint32
		if !roots.ReadUint32(&root) {
			return nil, fmt.Errorf("%w: truncated root", errBadBlob)
		}

		t.Roots = append(t.Roots, root)
	}

	for !nodes.Empty() {
		var kind, field, param uint8
		var value uint32
		if !nodes.ReadUint8(&kind) || !nodes.ReadUint8(&field) || !nodes.ReadUint8(&param) || !nodes.ReadUint32(&value) {
			return nil, fmt.Errorf("%w: truncated node %d", errBadBlob, len(t.Nodes))
		}

		t.Nodes = append(t.Nodes, Node{Kind: Kind(kind), Field: Field(field), Param: param, Value: value})
	}

	for !children.Empty() {
		var child uint32
		if !children.ReadUint32(&child) {
			return nil, fmt.Errorf("%w: truncated child", errBadBlob)
		}

		t.Children = append(t.Children, child)
	}

	if err := t.validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// readSection reads a section with a uint32
// length prefix into out.
func readSection(s *cryptobyte.String, out *cryptobyte.String) bool {
	var n uint32
	var data []byte
	if !s.ReadUint32(&n) || !s.ReadBytes(&data, int(n)) {
		return false
	}

	*out = cryptobyte.String(data)
	return true
}

// validate checks that every index in t
// is in range.
func (t *Table) validate() error {
	if len(t.Nodes) == 0 || t.Nodes[Invalid].Kind != KindInvalid {
		return fmt.Errorf("%w: missing invalid node", errBadBlob)
	}

	for i, root := range t.Roots {
		if int(root) >= len(t.Nodes) || t.Nodes[root].Kind != KindArray || t.Nodes[root].Field != FieldOpcode {
			return fmt.Errorf("%w: root %d is not an opcode node", errBadBlob, i)
		}
	}

	for i, n := range t.Nodes {
		switch n.Kind {
		case KindInvalid, KindTerminal:
		case KindGroup, KindArray:
			if n.Field >= numFields {
				return fmt.Errorf("%w: node %d has invalid field %d", errBadBlob, i, n.Field)
			}

			end := int(n.Value) + n.Field.Width()
			if end > len(t.Children) {
				return fmt.Errorf("%w: node %d children out of range", errBadBlob, i)
			}

			for _, child := range t.Children[n.Value:end] {
				// Children always precede their
				// parents, so walks terminate.
				if int(child) >= i {
					return fmt.Errorf("%w: node %d has child %d out of order", errBadBlob, i, child)
				}
			}
		default:
			return fmt.Errorf("%w: node %d has invalid kind %d", errBadBlob, i, n.Kind)
		}
	}

	return nil
}
