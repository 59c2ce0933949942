// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package optable

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/crypto/cryptobyte"
)

// Step constrains one field along the path to
// a value. Keys is a bit set of the accepted
// keys. A field that is not mentioned in a
// path accepts every key.
type Step struct {
	Field Field
	Param uint8
	Keys  uint16
}

// On returns a step accepting the given keys.
func On(field Field, keys ...int) Step {
	s := Step{Field: field}
	for _, k := range keys {
		s.Keys |= 1 << k
	}

	return s
}

// Option returns a step that requires the
// numbered decoder option to be set or clear.
func Option(param uint8, on bool) Step {
	key := 0
	if on {
		key = 1
	}

	return Step{Field: FieldOption, Param: param, Keys: 1 << key}
}

// level identifies one dispatch position.
type level struct {
	field Field
	param uint8
}

func (l level) less(m level) bool {
	if l.field != m.field {
		return l.field < m.field
	}

	return l.param < m.param
}

func (s Step) level() level { return level{s.Field, s.Param} }

// full returns whether the step accepts
// every key of its field.
func (s Step) full() bool {
	return s.Keys == 1<<s.Field.Width()-1
}

type entry struct {
	steps []Step
	value uint32
	rank  []level // The levels constrained by the entry, in order.
}

// outranks returns whether e takes precedence
// over f when both reach the same terminal.
// The entry constrained at the earlier level
// wins, then the more constrained entry.
func (e *entry) outranks(f *entry) bool {
	for i := 0; i < len(e.rank) && i < len(f.rank); i++ {
		if e.rank[i] != f.rank[i] {
			return e.rank[i].less(f.rank[i])
		}
	}

	return len(e.rank) > len(f.rank)
}

func (e *entry) sameRank(f *entry) bool {
	return slices.Equal(e.rank, f.rank)
}

// Builder collects the paths to each value
// and produces a Table.
type Builder struct {
	roots [][256][]*entry
}

// NewBuilder returns a builder for the
// given number of trees.
func NewBuilder(roots int) *Builder {
	return &Builder{roots: make([][256][]*entry, roots)}
}

// Add records that value is reached in the
// given tree from the opcode byte by the
// given steps, which must be in field order.
func (b *Builder) Add(root int, opcode byte, value uint32, steps ...Step) error {
	if root < 0 || root >= len(b.roots) {
		return fmt.Errorf("invalid root %d", root)
	}

	e := &entry{value: value}
	for i, s := range steps {
		if s.Field == FieldOpcode || s.Field >= numFields {
			return fmt.Errorf("value %d: invalid field %s", value, s.Field)
		}

		if s.Keys == 0 || s.Keys>>s.Field.Width() != 0 {
			return fmt.Errorf("value %d: invalid keys %#b for field %s", value, s.Keys, s.Field)
		}

		if i > 0 && !steps[i-1].level().less(s.level()) {
			return fmt.Errorf("value %d: step %s must come after %s", value, s.Field, steps[i-1].Field)
		}

		if !s.full() {
			e.steps = append(e.steps, s)
			e.rank = append(e.rank, s.level())
		}
	}

	b.roots[root][opcode] = append(b.roots[root][opcode], e)

	return nil
}

// ErrAmbiguous indicates that two values could
// be reached by the same path.
var ErrAmbiguous = errors.New("ambiguous path")

// Build produces the table. Values for which
// exclude returns true are left out, along with
// any part of a tree that only they could reach.
func (b *Builder) Build(exclude func(value uint32) bool) (*Table, error) {
	tb := &tableBuilder{
		t:    &Table{},
		memo: make(map[string]uint32),
	}

	// The invalid node is always first.
	tb.intern(Node{Kind: KindInvalid}, nil)

	for root := range b.roots {
		children := make([]uint32, 256)
		for op := range children {
			var cursors []cursor
			for _, e := range b.roots[root][op] {
				if exclude != nil && exclude(e.value) {
					continue
				}

				cursors = append(cursors, cursor{e: e})
			}

			idx, err := tb.build(cursors)
			if err != nil {
				return nil, fmt.Errorf("tree %d, opcode %02x: %w", root, op, err)
			}

			children[op] = idx
		}

		tb.t.Roots = append(tb.t.Roots, tb.intern(Node{Kind: KindArray, Field: FieldOpcode}, children))
	}

	return tb.t, nil
}

// cursor tracks how much of an entry's path
// has been consumed.
type cursor struct {
	e   *entry
	pos int
}

func (c cursor) next() (Step, bool) {
	if c.pos < len(c.e.steps) {
		return c.e.steps[c.pos], true
	}

	return Step{}, false
}

type tableBuilder struct {
	t    *Table
	memo map[string]uint32
}

// intern adds the node, returning the index
// of any identical node already present.
func (tb *tableBuilder) intern(n Node, children []uint32) uint32 {
	var b cryptobyte.Builder
	b.AddUint8(uint8(n.Kind))
	b.AddUint8(uint8(n.Field))
	b.AddUint8(n.Param)
	if n.Kind == KindTerminal {
		b.AddUint32(n.Value)
	}
	for _, child := range children {
		b.AddUint32(child)
	}

	key := string(b.BytesOrPanic())
	if idx, ok := tb.memo[key]; ok {
		return idx
	}

	if n.Kind == KindGroup || n.Kind == KindArray {
		n.Value = uint32(len(tb.t.Children))
		tb.t.Children = append(tb.t.Children, children...)
	}

	idx := uint32(len(tb.t.Nodes))
	tb.t.Nodes = append(tb.t.Nodes, n)
	tb.memo[key] = idx

	return idx
}

func (tb *tableBuilder) build(cursors []cursor) (uint32, error) {
	// Find the earliest level any
	// remaining path constrains.
	var lvl level
	found := false
	for _, c := range cursors {
		if s, ok := c.next(); ok && (!found || s.level().less(lvl)) {
			lvl = s.level()
			found = true
		}
	}

	if !found {
		return tb.leaf(cursors)
	}

	width := lvl.field.Width()
	children := make([]uint32, width)
	for k := range children {
		var sub []cursor
		for _, c := range cursors {
			s, ok := c.next()
			switch {
			case !ok || s.level() != lvl:
				sub = append(sub, c)
			case s.Keys&(1<<k) != 0:
				sub = append(sub, cursor{e: c.e, pos: c.pos + 1})
			}
		}

		idx, err := tb.build(sub)
		if err != nil {
			return 0, fmt.Errorf("%s=%d: %w", lvl.field, k, err)
		}

		children[k] = idx
	}

	// A dispatch whose children are all
	// the same is redundant.
	same := true
	for _, idx := range children[1:] {
		if idx != children[0] {
			same = false
			break
		}
	}

	if same {
		return children[0], nil
	}

	kind := KindArray
	if lvl.field == FieldModRMReg {
		kind = KindGroup
	}

	return tb.intern(Node{Kind: kind, Field: lvl.field, Param: lvl.param}, children), nil
}

// leaf resolves the entries that share a
// complete path.
func (tb *tableBuilder) leaf(cursors []cursor) (uint32, error) {
	if len(cursors) == 0 {
		return Invalid, nil
	}

	best := cursors[0].e
	for _, c := range cursors[1:] {
		if c.e.outranks(best) {
			best = c.e
		}
	}

	for _, c := range cursors {
		if c.e != best && c.e.value != best.value && c.e.sameRank(best) {
			return 0, fmt.Errorf("%w: values %d and %d", ErrAmbiguous, best.value, c.e.value)
		}
	}

	return tb.intern(Node{Kind: KindTerminal, Value: best.value}, nil), nil
}
