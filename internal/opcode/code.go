// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package opcode contains the machine-code level
// building blocks of x86 instructions: legacy
// prefixes, the REX, VEX, XOP, EVEX and MVEX
// prefixes, ModR/M and SIB bytes, and the textual
// encoding syntax used by the instruction tables.
package opcode

import (
	"fmt"
	"io"
	"strings"
)

// MaxInstructionLength is the architectural limit
// on the length of a single instruction.
const MaxInstructionLength = 15

// Code provides helper functionality
// for assembling machine code.
//
// The fields are written in the order
// they are declared.
type Code struct {
	PrefixOpcodes   [5]byte    // Any opcodes used as prefixes (eg fwait). Unused opcodes are zero.
	Prefixes        [14]Prefix // Any legacy prefix bytes. Unused prefixes are zero.
	REX             REX        // Any REX prefix.
	VEX             VEX        // Any VEX prefix.
	XOP             bool       // Whether the VEX prefix is emitted with the XOP escape.
	Force3ByteVEX   bool       // Whether the 2-byte VEX form is forbidden.
	EVEX            EVEX       // Any EVEX prefix.
	MVEX            MVEX       // Any MVEX prefix.
	Opcode          [3]byte    // The opcode bytes.
	OpcodeLen       int        // The number of bytes of opcode.
	ModRM           ModRM      // Any ModR/M byte.
	UseModRM        bool       // Encode the ModR/M byte, even if zero.
	SIB             SIB        // Any Scale/Index/Base byte.
	UseSIB          bool       // Encode the SIB byte, even if zero.
	Displacement    [8]byte    // Any memory address displacement.
	DisplacementLen int        // The number of bytes of address displacement.
	CodeOffset      [8]byte    // Any code offset applied to the instruction pointer.
	CodeOffsetLen   int        // The number of bytes of code offset to use.
	Immediate       [8]byte    // Any immediate integer literals.
	ImmediateLen    int        // The number of immediate bytes to use.
}

// prefixOpcodesLen returns the number of
// prefix opcode bytes.
func (c *Code) prefixOpcodesLen() int {
	for i, b := range c.PrefixOpcodes {
		if b == 0 {
			return i
		}
	}

	return len(c.PrefixOpcodes)
}

// prefixesLen returns the number of legacy
// prefix bytes.
func (c *Code) prefixesLen() int {
	for i, b := range c.Prefixes {
		if b == 0 {
			return i
		}
	}

	return len(c.Prefixes)
}

// AddPrefix appends a legacy prefix byte.
func (c *Code) AddPrefix(prefix Prefix) {
	for i, p := range c.Prefixes {
		if p == 0 {
			c.Prefixes[i] = prefix
			return
		}
	}
}

// HasPrefix returns whether the legacy
// prefix has already been added.
func (c *Code) HasPrefix(prefix Prefix) bool {
	for _, p := range c.Prefixes[:c.prefixesLen()] {
		if p == prefix {
			return true
		}
	}

	return false
}

// AddPrefixOpcode appends a prefix opcode
// byte, such as fwait.
func (c *Code) AddPrefixOpcode(b byte) {
	for i, p := range c.PrefixOpcodes {
		if p == 0 {
			c.PrefixOpcodes[i] = b
			return
		}
	}
}

// AddDisplacement appends the low size
// bytes of v to the displacement.
func (c *Code) AddDisplacement(v uint64, size int) {
	c.DisplacementLen += putLittleEndian(c.Displacement[c.DisplacementLen:], v, size)
}

// AddCodeOffset appends the low size
// bytes of v to the code offset.
func (c *Code) AddCodeOffset(v uint64, size int) {
	c.CodeOffsetLen += putLittleEndian(c.CodeOffset[c.CodeOffsetLen:], v, size)
}

// AddImmediate appends the low size
// bytes of v to the immediate.
func (c *Code) AddImmediate(v uint64, size int) {
	c.ImmediateLen += putLittleEndian(c.Immediate[c.ImmediateLen:], v, size)
}

func putLittleEndian(b []byte, v uint64, size int) int {
	for i := 0; i < size; i++ {
		b[i] = byte(v >> (8 * i))
	}

	return size
}

// vexLen returns the number of bytes
// used by any VEX or XOP prefix.
func (c *Code) vexLen() int {
	switch {
	case !c.VEX.On():
		return 0
	case !c.XOP && !c.Force3ByteVEX && c.VEX.Can2Byte():
		return 2
	default:
		return 3
	}
}

// Len returns c's length as a number of
// bytes.
func (c *Code) Len() int {
	var n int
	n += c.prefixOpcodesLen()
	n += c.prefixesLen()
	if c.REX != 0 {
		n++
	}
	n += c.vexLen()
	if c.EVEX.On() {
		n += 4
	}
	if c.MVEX.On() {
		n += 4
	}
	n += c.OpcodeLen
	if c.UseModRM {
		n++
	}
	if c.UseSIB {
		n++
	}
	n += c.DisplacementLen
	n += c.CodeOffsetLen
	n += c.ImmediateLen
	return n
}

// DisplacementOffset returns the offset of
// the displacement within the machine code.
func (c *Code) DisplacementOffset() int {
	return c.Len() - c.ImmediateLen - c.CodeOffsetLen - c.DisplacementLen
}

// ImmediateOffset returns the offset of
// the immediate within the machine code.
func (c *Code) ImmediateOffset() int {
	return c.Len() - c.ImmediateLen
}

// Bytes returns the machine code.
func (c *Code) Bytes() []byte {
	b := make([]byte, 0, c.Len())
	b = append(b, c.PrefixOpcodes[:c.prefixOpcodesLen()]...)
	for _, p := range c.Prefixes[:c.prefixesLen()] {
		b = append(b, byte(p))
	}
	if c.REX != 0 {
		b = append(b, byte(c.REX))
	}
	switch c.vexLen() {
	case 2:
		prefix, p0 := c.VEX.Encode2Byte()
		b = append(b, prefix, p0)
	case 3:
		prefix, p0, p1 := c.VEX.Encode3Byte()
		if c.XOP {
			prefix = XOPEscape
		}
		b = append(b, prefix, p0, p1)
	}
	if c.EVEX.On() {
		prefix, p0, p1, p2 := c.EVEX.Encode()
		b = append(b, prefix, p0, p1, p2)
	}
	if c.MVEX.On() {
		prefix, p0, p1, p2 := c.MVEX.Encode()
		b = append(b, prefix, p0, p1, p2)
	}
	b = append(b, c.Opcode[:c.OpcodeLen]...)
	if c.UseModRM {
		b = append(b, byte(c.ModRM))
	}
	if c.UseSIB {
		b = append(b, byte(c.SIB))
	}
	b = append(b, c.Displacement[:c.DisplacementLen]...)
	b = append(b, c.CodeOffset[:c.CodeOffsetLen]...)
	b = append(b, c.Immediate[:c.ImmediateLen]...)

	return b
}

// EncodeTo writes the machine code to w,
// returning the number of bytes written.
func (c *Code) EncodeTo(w io.ByteWriter) (n int, err error) {
	for _, b := range c.Bytes() {
		if err := w.WriteByte(b); err != nil {
			return n, err
		}

		n++
	}

	return n, nil
}

// String returns a textual description
// of the machine code.
func (c *Code) String() string {
	var parts []string
	if l := c.prefixOpcodesLen(); l > 0 {
		parts = append(parts, fmt.Sprintf("PrefixOpcodes: [% x]", c.PrefixOpcodes[:l]))
	}
	if l := c.prefixesLen(); l > 0 {
		parts = append(parts, fmt.Sprintf("Prefixes: [% x]", c.Prefixes[:l]))
	}
	if c.REX != 0 {
		parts = append(parts, "REX: "+c.REX.String())
	}
	if c.VEX.On() {
		name := "VEX: "
		if c.XOP {
			name = "XOP: "
		}
		parts = append(parts, name+c.VEX.String())
	}
	if c.EVEX.On() {
		parts = append(parts, "EVEX: "+c.EVEX.String())
	}
	if c.MVEX.On() {
		parts = append(parts, "MVEX: "+c.MVEX.String())
	}
	if c.OpcodeLen > 0 {
		parts = append(parts, fmt.Sprintf("Opcode: [% x]", c.Opcode[:c.OpcodeLen]))
	}
	if c.UseModRM {
		parts = append(parts, "ModR/M: "+c.ModRM.String())
	}
	if c.UseSIB {
		parts = append(parts, "SIB: "+c.SIB.String())
	}
	if c.DisplacementLen > 0 {
		parts = append(parts, fmt.Sprintf("Displacement: [% x]", c.Displacement[:c.DisplacementLen]))
	}
	if c.CodeOffsetLen > 0 {
		parts = append(parts, fmt.Sprintf("CodeOffset: [% x]", c.CodeOffset[:c.CodeOffsetLen]))
	}
	if c.ImmediateLen > 0 {
		parts = append(parts, fmt.Sprintf("Immediate: [% x]", c.Immediate[:c.ImmediateLen]))
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// Prefix represents a legacy x86 prefix.
type Prefix byte

const (
	PrefixLock        Prefix = 0xf0
	PrefixRepeatNot   Prefix = 0xf2
	PrefixRepeat      Prefix = 0xf3
	PrefixCS          Prefix = 0x2e
	PrefixSS          Prefix = 0x36
	PrefixDS          Prefix = 0x3e
	PrefixES          Prefix = 0x26
	PrefixFS          Prefix = 0x64
	PrefixGS          Prefix = 0x65
	PrefixOperandSize Prefix = 0x66
	PrefixAddressSize Prefix = 0x67
)

// Escape bytes.
const (
	TwoByteEscape  = 0x0f
	Map0F38Escape  = 0x38
	Map0F3AEscape  = 0x3a
	FwaitOpcode    = 0x9b
	VEX2Escape     = 0xc5
	VEX3Escape     = 0xc4
	XOPEscape      = 0x8f
	EVEXEscape     = 0x62
	MVEXEscape     = 0x62
	REXPrefixFirst = 0x40
	REXPrefixLast  = 0x4f
)

// IsLegacyPrefix returns whether b is one of
// the eleven legacy prefix bytes.
func IsLegacyPrefix(b byte) bool {
	switch Prefix(b) {
	case PrefixLock, PrefixRepeatNot, PrefixRepeat,
		PrefixCS, PrefixSS, PrefixDS, PrefixES, PrefixFS, PrefixGS,
		PrefixOperandSize, PrefixAddressSize:
		return true
	}

	return false
}

func (p Prefix) String() string {
	switch p {
	case PrefixLock:
		return "lock"
	case PrefixRepeatNot:
		return "repnz/repne"
	case PrefixRepeat:
		return "rep/repe/repz"
	case PrefixCS:
		return "cs"
	case PrefixSS:
		return "ss"
	case PrefixDS:
		return "ds"
	case PrefixES:
		return "es"
	case PrefixFS:
		return "fs"
	case PrefixGS:
		return "gs"
	case PrefixOperandSize:
		return "data16/data32"
	case PrefixAddressSize:
		return "addr16/addr32"
	default:
		return fmt.Sprintf("Prefix(%#02x)", byte(p))
	}
}
