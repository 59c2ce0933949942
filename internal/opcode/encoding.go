// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package opcode

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the family of prefix that
// introduces an instruction's opcode.
type Kind uint8

const (
	KindLegacy Kind = iota
	KindVEX
	KindEVEX
	KindXOP
	KindMVEX
)

func (k Kind) String() string {
	switch k {
	case KindLegacy:
		return "Legacy"
	case KindVEX:
		return "VEX"
	case KindEVEX:
		return "EVEX"
	case KindXOP:
		return "XOP"
	case KindMVEX:
		return "MVEX"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Legacy opcode maps.
const (
	Map1Byte = 0
	Map0F    = 1
	Map0F38  = 2
	Map0F3A  = 3
)

// Encoding includes the textual description of
// an x86 instruction's encoding, in the style of
// the Intel manuals, plus a structured
// representation of the same information.
//
// Beyond the Intel syntax, the following tags are
// understood:
//
//   - o16, o32, o64: the instruction has the given
//     operand size.
//   - a16, a32, a64: the instruction has the given
//     address size.
//   - d64: the operand size defaults to 64 bits in
//     64-bit mode.
//   - f64: the operand size is forced to 64 bits in
//     64-bit mode, ignoring any 66 prefix.
//   - WIG32: VEX.W is ignored outside 64-bit mode.
type Encoding struct {
	// The textual representation.
	Syntax string

	// Legacy prefixes.
	PrefixOpcodes     []byte   // Any opcodes that must prefix the instruction (such as fwait).
	NoVEXPrefixes     bool     // Whether non-mandatory prefixes 66, F2, and F3 are forbidden.
	NoRepPrefixes     bool     // Whether non-mandatory prefixes F2 and F3 are forbidden.
	MandatoryPrefixes []Prefix // Any mandatory prefixes that precede the opcode.

	// Sizes.
	OperandSize uint8 // Any fixed operand size in bits.
	AddressSize uint8 // Any fixed address size in bits.
	Default64   bool  // Whether the operand size defaults to 64 bits in 64-bit mode.
	Force64     bool  // Whether the operand size is always 64 bits in 64-bit mode.

	// REX prefixes.
	REX   bool // Whether a REX prefix is always required.
	REX_R bool // Whether a REX prefix is always required with REX.R set.
	REX_W bool // Whether a REX prefix is always required with REX.W set.

	// VEX, XOP, EVEX and MVEX prefixes.
	VEX       bool  // Whether a VEX prefix is always required.
	XOP       bool  // Whether an XOP prefix is always required.
	EVEX      bool  // Whether an EVEX prefix is always required.
	MVEX      bool  // Whether an MVEX prefix is always required.
	VEX_L     bool  // Any VEX.L value.
	EVEX_Lp   bool  // Any EVEX.L' value.
	VEX_LIG   bool  // Whether to ignore VEX.L (and EVEX.L').
	VEXpp     uint8 // Any VEX.pp value that should be included (2 bits).
	VEXm_mmmm uint8 // Any VEX.m_mmmm value that should be included (5 bits).
	VEX_W     bool  // Any VEX.W value.
	VEX_WIG   bool  // Whether to ignore VEX.W.
	VEX_WIG32 bool  // Whether to ignore VEX.W outside 64-bit mode.
	VEXis4    bool  // Whether a register is expected in the 4-bit immediate.

	// Opcode data.
	Opcode           []byte // One or more opcode bytes.
	RegisterModifier int    // The opcode byte index where the register is encoded without a ModR/M byte, plus one. Zero for no modifier.
	StackIndex       int    // The opcode byte index where the FPU stack index is encoded, plus one. Zero for no index.

	// Code offset after the opcode.
	CodeOffset bool // Whether a code offset is expected.

	// ModR/M byte.
	ModRM    bool  // Whether a ModR/M byte is always required.
	ModRMmod uint8 // Any fixed value used as the ModR/M byte's mod field, plus one. Zero for no value. Five for any value except 0b11.
	ModRMreg uint8 // Any fixed value used as the ModR/M byte's reg field, plus one. Zero for no value.
	ModRMrm  uint8 // Any fixed value used as the ModR/M byte's r/m field, plus one. Zero for no value.

	// Vector SIB.
	VSIB bool // Whether the instruction uses the Vector SIB.

	// Immediates.
	ImpliedImmediate []byte // An immediate value implied by the encoding string.
}

// Kind returns the prefix family that
// introduces the opcode.
func (e *Encoding) Kind() Kind {
	switch {
	case e.EVEX:
		return KindEVEX
	case e.MVEX:
		return KindMVEX
	case e.XOP:
		return KindXOP
	case e.VEX:
		return KindVEX
	default:
		return KindLegacy
	}
}

// Map returns the opcode map. For legacy
// encodings this is one of Map1Byte, Map0F,
// Map0F38 or Map0F3A. For the other families
// it is the prefix's map field.
func (e *Encoding) Map() uint8 {
	if e.Kind() != KindLegacy {
		return e.VEXm_mmmm
	}

	switch {
	case len(e.Opcode) >= 2 && e.Opcode[0] == TwoByteEscape && e.Opcode[1] == Map0F38Escape:
		return Map0F38
	case len(e.Opcode) >= 2 && e.Opcode[0] == TwoByteEscape && e.Opcode[1] == Map0F3AEscape:
		return Map0F3A
	case len(e.Opcode) >= 2 && e.Opcode[0] == TwoByteEscape:
		return Map0F
	default:
		return Map1Byte
	}
}

// mapPrefixLen returns the number of opcode
// bytes that select the map.
func (e *Encoding) mapPrefixLen() int {
	if e.Kind() != KindLegacy {
		return 0
	}

	switch e.Map() {
	case Map0F:
		return 1
	case Map0F38, Map0F3A:
		return 2
	default:
		return 0
	}
}

// OpcodeByte returns the opcode byte that
// follows any map escape bytes. For register
// modifier forms, this is the base value.
func (e *Encoding) OpcodeByte() byte {
	return e.Opcode[e.mapPrefixLen()]
}

// OpcodeByteIndex returns the index within
// Opcode of the byte returned by OpcodeByte.
func (e *Encoding) OpcodeByteIndex() int {
	return e.mapPrefixLen()
}

// FixedModRM returns any ModR/M byte that is
// written as part of the opcode, such as the D0
// in "0F 01 D0". For FPU stack forms, such as
// "D8 C0+i", the r/m field of the result is
// zero.
func (e *Encoding) FixedModRM() (modrm ModRM, ok bool) {
	idx := e.mapPrefixLen() + 1
	if idx >= len(e.Opcode) {
		return 0, false
	}

	return ModRM(e.Opcode[idx]), true
}

// HasMandatoryPrefix returns whether the
// given prefix is mandatory.
func (e *Encoding) HasMandatoryPrefix(prefix Prefix) bool {
	for _, p := range e.MandatoryPrefixes {
		if p == prefix {
			return true
		}
	}

	return false
}

// VectorSize returns the instruction's vector size,
// if any.
func (e *Encoding) VectorSize() int {
	switch e.Kind() {
	case KindLegacy:
		return 0
	case KindMVEX:
		return 512
	}

	L := e.VEX_L
	Lp := e.EVEX_Lp
	switch {
	case !L && !Lp:
		return 128
	case L && !Lp:
		return 256
	case !L && Lp:
		return 512
	default:
		panic(fmt.Sprintf("invalid VEX encoding: L: %v, L': %v", L, Lp))
	}
}

// MachineCodeMatch indicates whether a machine code
// sequence matched an instruction encoding, according
// to Encoding.MatchesMachineCode.
type MachineCodeMatch uint8

const (
	Match MachineCodeMatch = iota
	MismatchNoMachineCode
	MismatchNoOpcode
	MismatchNoPrefixOpcode
	MismatchForbiddenVEXPrefix
	MismatchForbiddenRepPrefix
	MismatchMissingMandatoryPrefix
	MismatchMissingREXPrefix
	MismatchMissingREX_R
	MismatchMissingREX_W
	MismatchMissingVEXPrefix
	MismatchTruncatedVEXPrefix
	MismatchUnexpected2ByteVEXPrefix
	MismatchMissingVEXm_mmmm
	MismatchMissingVEX_W
	MismatchMissingVEX_L
	MismatchMissingVEXpp
	MismatchMissingEVEXPrefix
	MismatchTruncatedEVEXPrefix
	MismatchWrongOpcode
	MismatchWrongModifiedOpcode
	MismatchMissingModRM
	MismatchWrongModRMreg
	MismatchMissingImpliedImmediate
	MismatchWrongImpliedImmediate
)

func (m MachineCodeMatch) String() string {
	switch m {
	case Match:
		return "match"
	case MismatchNoMachineCode:
		return "no machine code"
	case MismatchNoOpcode:
		return "no opcode"
	case MismatchNoPrefixOpcode:
		return "no prefix opcode"
	case MismatchForbiddenVEXPrefix:
		return "forbidden VEX prefix"
	case MismatchForbiddenRepPrefix:
		return "forbidden rep prefix"
	case MismatchMissingMandatoryPrefix:
		return "missing mandatory prefix"
	case MismatchMissingREXPrefix:
		return "missing REX prefix"
	case MismatchMissingREX_R:
		return "missing REX.R"
	case MismatchMissingREX_W:
		return "missing REX.W"
	case MismatchMissingVEXPrefix:
		return "missing VEX prefix"
	case MismatchTruncatedVEXPrefix:
		return "truncated VEX prefix"
	case MismatchUnexpected2ByteVEXPrefix:
		return "unexpected 2-byte VEX prefix"
	case MismatchMissingVEXm_mmmm:
		return "missing VEX.m_mmmm"
	case MismatchMissingVEX_W:
		return "missing VEX.W"
	case MismatchMissingVEX_L:
		return "missing VEX.L"
	case MismatchMissingVEXpp:
		return "missing VEX.pp"
	case MismatchMissingEVEXPrefix:
		return "missing EVEX prefix"
	case MismatchTruncatedEVEXPrefix:
		return "truncated EVEX prefix"
	case MismatchWrongOpcode:
		return "wrong opcode"
	case MismatchWrongModifiedOpcode:
		return "wrong modified opcode"
	case MismatchMissingModRM:
		return "missing Mod/RM byte"
	case MismatchWrongModRMreg:
		return "wrong ModR/M.reg"
	case MismatchMissingImpliedImmediate:
		return "missing implied immediate"
	case MismatchWrongImpliedImmediate:
		return "wrong implied immediate"
	default:
		return fmt.Sprintf("MachineCodeMatch(%d)", m)
	}
}

// MatchesMachineCode indicates whether the given
// machine code could be produced by encoding this
// instruction. This is not a perfect process, as
// it only uses the prefixes and opcodes, so missing
// or incorrect operands will not be identified.
func (e *Encoding) MatchesMachineCode(code []byte) MachineCodeMatch {
	// We must have at least some machine code.
	if len(code) == 0 {
		return MismatchNoMachineCode
	}

	// Make sure that we have any mandatory
	// prefix opcodes.
	var ok bool
	code, ok = bytes.CutPrefix(code, e.PrefixOpcodes)
	if !ok {
		return MismatchNoPrefixOpcode
	}

	// Next, we isolate the prefixes and check
	// them against the encoding.
	var prefixes []Prefix
	for len(code) > 0 && IsLegacyPrefix(code[0]) {
		prefixes = append(prefixes, Prefix(code[0]))
		code = code[1:]
	}

	// Check we don't have any forbidden prefixes.
	vex := e.Kind() != KindLegacy
	for _, prefix := range prefixes {
		switch prefix {
		case PrefixOperandSize, PrefixRepeatNot, PrefixRepeat:
			if vex || (e.NoVEXPrefixes && !e.HasMandatoryPrefix(prefix)) {
				return MismatchForbiddenVEXPrefix
			}
		}

		switch prefix {
		case PrefixRepeatNot, PrefixRepeat:
			if e.NoRepPrefixes && !e.HasMandatoryPrefix(prefix) {
				return MismatchForbiddenRepPrefix
			}
		}
	}

	// Check we have all the mandatory prefixes.
	for _, want := range e.MandatoryPrefixes {
		ok = false
		for _, got := range prefixes {
			if got == want {
				ok = true
				break
			}
		}

		if !ok {
			return MismatchMissingMandatoryPrefix
		}
	}

	if len(code) == 0 {
		return MismatchNoOpcode
	}

	// Check for any mandatory REX prefix.
	if e.REX || e.REX_R || e.REX_W {
		rex := REX(code[0])
		code = code[1:]
		if rex>>4 != 0b0100 {
			// Not a REX prefix.
			return MismatchMissingREXPrefix
		}

		if e.REX_R && !rex.R() {
			// REX.R unset.
			return MismatchMissingREX_R
		}

		if e.REX_W && !rex.W() {
			// REX.W unset.
			return MismatchMissingREX_W
		}
	} else if !vex && code[0]>>4 == 4 && e.Opcode[0]>>4 != 4 {
		// Looks like this is an optional REX prefix.
		code = code[1:]
	}

	if len(code) == 0 {
		return MismatchNoOpcode
	}

	switch e.Kind() {
	case KindEVEX, KindMVEX:
		if code[0] != EVEXEscape {
			return MismatchMissingEVEXPrefix
		}

		if len(code) < 5 {
			return MismatchTruncatedEVEXPrefix
		}

		p := EVEX(code[1:4])
		code = code[4:]
		mmmm := p[0] & 0b1111
		if e.EVEX {
			mmmm = p.MMM()
		}

		if mmmm != e.VEXm_mmmm {
			return MismatchMissingVEXm_mmmm
		}

		if !e.VEX_WIG && p.W() != e.VEX_W {
			return MismatchMissingVEX_W
		}

		// Embedded rounding reuses L'L, so
		// only the MVEX-free EVEX form can be
		// checked, and only without EVEX.b.
		if e.EVEX && !e.VEX_LIG && !p.Br() && (p.L() != e.VEX_L || p.Lp() != e.EVEX_Lp) {
			return MismatchMissingVEX_L
		}

		if p.PP() != e.VEXpp {
			return MismatchMissingVEXpp
		}
	case KindVEX, KindXOP:
		var prefixLength int
		switch {
		case e.XOP && code[0] == XOPEscape:
			prefixLength = 3
		case !e.XOP && code[0] == VEX3Escape:
			prefixLength = 3
		case !e.XOP && code[0] == VEX2Escape:
			prefixLength = 2
		default:
			return MismatchMissingVEXPrefix
		}

		if len(code) <= prefixLength {
			// Not enough space for a VEX prefix and at least one opcode byte.
			return MismatchTruncatedVEXPrefix
		}

		vex := code[:prefixLength]
		code = code[prefixLength:]
		if prefixLength == 2 && ((e.VEX_W && !e.VEX_WIG) || e.VEXm_mmmm != 0b0_0001) {
			// This isn't allowed to use a 2-byte
			// VEX prefix.
			return MismatchUnexpected2ByteVEXPrefix
		}

		// In a 3-byte prefix, we can
		// check m_mmmm and W.
		if prefixLength == 3 && vex[1]&0b1_1111 != e.VEXm_mmmm {
			return MismatchMissingVEXm_mmmm
		}
		if prefixLength == 3 && !e.VEX_WIG && !e.VEX_WIG32 && ((vex[2]>>7)&1 == 1) != e.VEX_W {
			return MismatchMissingVEX_W
		}

		// The last byte always includes
		// L and pp.
		last := vex[prefixLength-1]
		if !e.VEX_LIG && ((last>>2)&1 == 1) != e.VEX_L {
			return MismatchMissingVEX_L
		}
		if last&0b11 != e.VEXpp {
			return MismatchMissingVEXpp
		}
	}

	// Finally, we check the opcode, which
	// may have a modifier.
	if len(code) < len(e.Opcode) {
		return MismatchNoOpcode
	}

	opcode := code[:len(e.Opcode)]
	code = code[len(e.Opcode):]
	switch {
	case e.RegisterModifier != 0:
		// Any opcode bytes before the
		// modifier should still be the
		// same.
		idx := e.RegisterModifier - 1
		if !bytes.Equal(opcode[:idx], e.Opcode[:idx]) {
			return MismatchWrongOpcode
		}

		// The modified opcode byte can
		// be up to 7 more than the base.
		if opcode[idx] < e.Opcode[idx] || e.Opcode[idx]+7 < opcode[idx] {
			return MismatchWrongModifiedOpcode
		}
	case e.StackIndex != 0:
		// Any opcode bytes before the
		// modifier should still be the
		// same.
		idx := e.StackIndex - 1
		if !bytes.Equal(opcode[:idx], e.Opcode[:idx]) {
			return MismatchWrongOpcode
		}

		// The modified opcode byte can
		// be up to 7 more than the base.
		if opcode[idx] < e.Opcode[idx] || e.Opcode[idx]+7 < opcode[idx] {
			return MismatchWrongModifiedOpcode
		}
	default:
		// Plain opcode.
		if !bytes.Equal(opcode, e.Opcode) {
			return MismatchWrongOpcode
		}
	}

	// Check whether we still have space
	// for any mandatory ModR/M byte.
	_, fixed := e.FixedModRM()
	if e.ModRM && !fixed && len(code) == 0 {
		return MismatchMissingModRM
	}

	// Check that any fixed ModR/M.reg
	// field is present.
	if e.ModRMreg != 0 && !fixed {
		modrm := ModRM(code[0])
		if modrm.Reg() != e.ModRMreg-1 {
			return MismatchWrongModRMreg
		}
	}

	// Check any implied immediate value.
	if len(e.ImpliedImmediate) > len(code) {
		return MismatchMissingImpliedImmediate
	}
	if len(e.ImpliedImmediate) > 0 && !bytes.HasSuffix(code, e.ImpliedImmediate) {
		return MismatchWrongImpliedImmediate
	}

	return Match
}

// ParseEncoding processes the textual description
// of an x86 instruction's encoding, producing
// a structured representation of the same
// information.
func ParseEncoding(s string) (*Encoding, error) {
	// From the Intel x86 manuals, Volume 2A, section
	// 3.1.1.1:
	//
	// - NP: Indicates the use of 66/F2/F3 prefixes (beyond those already part of the instructions opcode) are not
	//   allowed with the instruction.
	// - NFx: Indicates the use of F2/F3 prefixes (beyond those already part of the instructions opcode) are not
	//   allowed with the instruction.
	// - REX.W: Indicates the use of a REX prefix that affects operand size or instruction semantics.
	// - /digit: A digit between 0 and 7 indicates that the ModR/M byte of the instruction uses only the r/m (register
	//   or memory) operand. The reg field contains the digit that provides an extension to the instruction's opcode.
	// - /r: Indicates that the ModR/M byte of the instruction contains a register operand and an r/m operand.
	// - cb, cw, cd, cp, co, ct: A code offset following the opcode.
	// - ib, iw, id, io: An immediate operand following the opcode, ModR/M bytes or scale-indexing bytes.
	// - +rb, +rw, +rd, +ro: The lower 3 bits of the opcode byte encode a register operand.
	// - +i: A number used in floating-point instructions when one of the operands is ST(i) from the FPU register stack.

	e := &Encoding{
		Syntax: s,
	}

	// Start with any prefixes and size tags.
	parts := strings.Fields(s)
prefixes:
	for i, clause := range parts {
		switch clause {
		case "NP":
			e.NoVEXPrefixes = true
		case "NFx":
			e.NoRepPrefixes = true
		case "REX":
			e.REX = true
		case "REX.R":
			e.REX = true
			e.REX_R = true
		case "REX.W":
			e.REX = true
			e.REX_W = true
			e.OperandSize = 64
		case "o16":
			e.OperandSize = 16
		case "o32":
			e.OperandSize = 32
		case "o64":
			e.OperandSize = 64
		case "a16":
			e.AddressSize = 16
		case "a32":
			e.AddressSize = 32
		case "a64":
			e.AddressSize = 64
		case "d64":
			e.Default64 = true
		case "f64":
			e.Force64 = true
		case "F0": // LOCK.
			e.MandatoryPrefixes = append(e.MandatoryPrefixes, PrefixLock)
		case "F2": // REPNE/REPNZ or BND.
			e.MandatoryPrefixes = append(e.MandatoryPrefixes, PrefixRepeatNot)
		case "F3": // REP or REPE/REPZ.
			e.MandatoryPrefixes = append(e.MandatoryPrefixes, PrefixRepeat)
		case "66": // operand size.
			e.MandatoryPrefixes = append(e.MandatoryPrefixes, PrefixOperandSize)
		case "67": // address size.
			e.MandatoryPrefixes = append(e.MandatoryPrefixes, PrefixAddressSize)
		case "9B": // Prefix opcode: fwait.
			if len(parts[i:]) > 1 {
				e.PrefixOpcodes = append(e.PrefixOpcodes, FwaitOpcode)
				continue
			}

			// If it's not a prefix opcode, we
			// stop here.
			fallthrough
		default:
			parts = parts[i:]
			break prefixes
		}
	}

	// Some specialised instructions
	// hard-code an immediate value
	// that is used in the more general
	// instruction form to select the
	// special form. This is represented
	// in the encoding as a hex value
	// after /r, in place of ib.
	//
	// To ensure that we put it in the
	// immediate field and not the
	// opcode, we track whether we've
	// seen /r yet.
	seenSlashR := false

	// Parse the remaining encoding
	// to identify the different fields.
	for _, clause := range parts {
		// See section 3.1.1.1.
		switch {
		case strings.HasSuffix(clause, "+rb"), strings.HasSuffix(clause, "+rw"), strings.HasSuffix(clause, "+rd"), strings.HasSuffix(clause, "+ro"):
			opcode, _, _ := strings.Cut(clause, "+")
			b, err := strconv.ParseUint(opcode, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid opcode register modifier clause %q: %v", clause, err)
			}

			e.Opcode = append(e.Opcode, byte(b))
			e.RegisterModifier = len(e.Opcode)
			continue
		case strings.HasSuffix(clause, "+i"):
			opcode := strings.TrimSuffix(clause, "+i")
			b, err := strconv.ParseUint(opcode, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid FPU stack index clause %q: %v", clause, err)
			}

			e.Opcode = append(e.Opcode, byte(b))
			e.StackIndex = len(e.Opcode)
			continue
		case strings.HasPrefix(clause, "EVEX."), strings.HasPrefix(clause, "MVEX."),
			strings.HasPrefix(clause, "VEX."), strings.HasPrefix(clause, "XOP."):
			if err := e.parseVectorClause(clause); err != nil {
				return nil, err
			}

			continue
		}

		// Handle fixed ModR/M clauses, as they're complex.
		if strings.Contains(clause, ":") {
			if err := e.parseModRMClause(clause); err != nil {
				return nil, err
			}

			continue
		}

		switch clause {
		// Unused syntax.
		case "+":
		case "WIG32":
			e.VEX_WIG32 = true
		// Opcode extensions.
		case "/0", "/1", "/2", "/3", "/4", "/5", "/6", "/7":
			digit := byte(clause[1] - '0')
			e.ModRMreg = digit + 1
			e.ModRM = true
		// R/M operand.
		case "/r":
			// Make sure we always include the
			// ModR/M byte, even if zero.
			e.ModRM = true
			seenSlashR = true
		// Code offset.
		case "cb", "cw", "cd", "cp", "co", "ct":
			if e.CodeOffset {
				return nil, fmt.Errorf("invalid encoding clause: unexpected second code offset clause %q", clause)
			}

			e.CodeOffset = true
		// Immediate values.
		case "ib", "iw", "id", "io":
			// Nothing to do here, as
			// the information is also
			// in the operands.
		case "/is4":
			if e.VEXis4 {
				return nil, fmt.Errorf("invalid encoding clause: unexpected second %q clause", clause)
			}

			e.VEXis4 = true
		case "/vsib":
			e.VSIB = true
		default:
			b, err := strconv.ParseUint(clause, 16, 8)
			if err != nil || len(clause) != 2 {
				return nil, fmt.Errorf("bad encoding syntax %q: failed to handle encoding clause %q", s, clause)
			}

			if seenSlashR {
				e.ImpliedImmediate = append(e.ImpliedImmediate, byte(b))
			} else {
				e.Opcode = append(e.Opcode, byte(b))
			}
		}
	}

	if len(e.Opcode) == 0 {
		return nil, fmt.Errorf("bad encoding syntax %q: no opcode", s)
	}

	if e.OpcodeByteIndex() >= len(e.Opcode) {
		return nil, fmt.Errorf("bad encoding syntax %q: no opcode after the map escape", s)
	}

	if _, ok := e.FixedModRM(); ok {
		e.ModRM = true
	}

	return e, nil
}

// parseVectorClause handles the dotted VEX,
// XOP, EVEX and MVEX clauses.
func (e *Encoding) parseVectorClause(clause string) error {
	parts := strings.Split(clause, ".")
	name := parts[0]
	switch name {
	case "VEX":
		e.VEX = true
	case "XOP":
		e.XOP = true
	case "EVEX":
		e.EVEX = true
	case "MVEX":
		e.MVEX = true
	}

	for _, part := range parts[1:] {
		switch part {
		case "NDS", "NDD", "DDS":
			// The NDS/NDD/DDS terms can be ignored,
			// as their information is also encoded
			// in the operand details.
		case "128", "L0", "LZ":
			e.VEX_L = false
			e.EVEX_Lp = false
		case "LIG", "LLIG":
			e.VEX_L = false
			e.EVEX_Lp = false
			e.VEX_LIG = true
		case "256", "L1":
			e.VEX_L = true
			e.EVEX_Lp = false
		case "512":
			if name != "EVEX" && name != "MVEX" {
				return fmt.Errorf("invalid encoding clause %s: 512-bit vectors need EVEX or MVEX", clause)
			}

			e.VEX_L = false
			e.EVEX_Lp = true
		case "NP":
			e.VEXpp = 0b00
		case "66":
			e.VEXpp = 0b01
		case "F3":
			e.VEXpp = 0b10
		case "F2":
			e.VEXpp = 0b11
		case "0F":
			e.VEXm_mmmm = 0b0_0001
		case "0F38":
			e.VEXm_mmmm = 0b0_0010
		case "0F3A":
			e.VEXm_mmmm = 0b0_0011
		case "MAP5":
			e.VEXm_mmmm = 0b0_0101
		case "MAP6":
			e.VEXm_mmmm = 0b0_0110
		case "08":
			e.VEXm_mmmm = 0b0_1000
		case "09":
			e.VEXm_mmmm = 0b0_1001
		case "0A":
			e.VEXm_mmmm = 0b0_1010
		case "WIG":
			e.VEX_WIG = true
			e.VEX_W = false
		case "W0":
			e.VEX_W = false
		case "W1":
			e.VEX_W = true
		default:
			return fmt.Errorf("invalid encoding clause %s: bad %s clause %q", clause, name, part)
		}
	}

	// Check mandatory fields.
	if e.VEXm_mmmm == 0 {
		return fmt.Errorf("invalid encoding clause %s: missing %s map", clause, name)
	}

	if name == "XOP" && e.VEXm_mmmm < 0b0_1000 {
		return fmt.Errorf("invalid encoding clause %s: XOP map must be at least 08", clause)
	}

	if name != "XOP" && e.VEXm_mmmm >= 0b0_1000 {
		return fmt.Errorf("invalid encoding clause %s: map %02X needs XOP", clause, e.VEXm_mmmm)
	}

	return nil
}

// parseModRMClause handles clauses such as
// "11:rrr:bbb" and "!(11):001:bbb".
func (e *Encoding) parseModRMClause(clause string) error {
	fields := strings.Split(clause, ":")
	if len(fields) != 3 {
		return fmt.Errorf("invalid encoding clause %s: failed to parse ModR/M fields", clause)
	}

	switch fields[0] {
	case "11":
		e.ModRMmod = 0b11 + 1
	case "!(11)":
		e.ModRMmod = 5 // Any value except 0b11.
	default:
		return fmt.Errorf("invalid encoding clause %s: invalid ModR/M.mod field %q", clause, fields[0])
	}

	field := func(s, wildcard, name string) (uint8, error) {
		if s == wildcard {
			return 0, nil
		}

		n, err := strconv.ParseUint(s, 2, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid encoding clause %s: invalid ModR/M.%s field %q: %v", clause, name, s, err)
		}

		if n > 0b111 {
			return 0, fmt.Errorf("invalid encoding clause %s: invalid ModR/M.%s field %q: exceeds bounds", clause, name, s)
		}

		return uint8(n) + 1, nil
	}

	var err error
	e.ModRMreg, err = field(fields[1], "rrr", "reg")
	if err != nil {
		return err
	}

	e.ModRMrm, err = field(fields[2], "bbb", "r/m")
	if err != nil {
		return err
	}

	e.ModRM = true

	return nil
}
