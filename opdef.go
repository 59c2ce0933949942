// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"strings"
	"sync"

	"firefly-os.dev/x86/internal/opcode"
)

// modeGroup lists the modes in which an
// instruction can be decoded.
type modeGroup uint8

const (
	modesNone   modeGroup = iota // Never decoded.
	modesAny                     // 16, 32 and 64-bit modes.
	modesLegacy                  // 16 and 32-bit modes.
	modesLong                    // 64-bit mode.
)

func (g modeGroup) has(bitness int) bool {
	switch g {
	case modesAny:
		return true
	case modesLegacy:
		return bitness != 64
	case modesLong:
		return bitness == 64
	}

	return false
}

// defFlags records the prefixes an instruction
// accepts and other properties of its encoding.
type defFlags uint32

const (
	flagLock        defFlags = 1 << iota // Accepts LOCK with a memory destination.
	flagXacquire                         // Accepts XACQUIRE (F2) with LOCK.
	flagXrelease                         // Accepts XRELEASE (F3) with LOCK.
	flagHLENoLock                        // Accepts XRELEASE without LOCK.
	flagRep                              // Accepts REP/REPE.
	flagRepne                            // Accepts REPNE.
	flagBnd                              // Accepts BND (F2).
	flagProtected                        // Only valid in protected mode.
	flagPrivileged                       // Only valid at CPL 0.
	flagSaveRestore                      // Saves or restores processor state.
	flagEnter                            // ENTER, with its nesting level.
	flagAMD64                            // Decoded in 64-bit mode only with DecoderAMD.
	flagWIgnored                         // REX.W does not change the operand size.
	flagModReg                           // ModR/M.r/m always names a register.
	flagMPX                              // An MPX instruction.
	flagReservedNop                      // Also reachable with DecoderForceReservedNop.
	flagOpmask                           // Accepts an opmask register.
	flagZeroing                          // Accepts zeroing-masking.
	flagRounding                         // Accepts embedded rounding.
	flagSAE                              // Accepts suppress-all-exceptions.
	flagBroadcast                        // Accepts a broadcast memory operand.
)

// memConv selects the MVEX conversions an
// instruction's SSS field can name.
type memConv uint8

const (
	convNone  memConv = iota
	convFloat         // Float loads.
	convInt           // Integer loads.
	convStore         // Stores.
)

// opcodeDef is the static description of one
// Code.
type opcodeDef struct {
	mnemonic     Mnemonic
	encoding     string // Intel syntax, as parsed by opcode.ParseEncoding.
	modes        modeGroup
	operands     string // Operand tokens, see operandTokens.
	access       string // One access token per operand, see accessTokens.
	memory       MemorySize
	broadcast    MemorySize
	tuple        opcode.TupleType
	conv         memConv
	flags        defFlags
	options      DecoderOptions // Options that must be set.
	notOptions   DecoderOptions // Options that must be clear.
	notOptions64 DecoderOptions // Options that must be clear in 64-bit mode.
	cpuid        []CpuidFeature
	flow         FlowControl
	cc           ConditionCode
	rflags       string // See parseRflagsInfo.
	implied      string // See parseImplied.
	stack        int8
}

// operandLoc identifies where an operand is
// encoded.
type operandLoc uint8

const (
	locNone      operandLoc = iota
	locReg                  // ModR/M.reg.
	locRM                   // ModR/M.r/m, register or memory.
	locRMReg                // ModR/M.r/m, register only.
	locMem                  // ModR/M.r/m, memory only.
	locVVVV                 // The vector prefix's vvvv field.
	locIs4                  // Bits 7:4 of an immediate byte.
	locOpcodeReg            // The low 3 bits of the opcode byte.
	locSTi                  // The low 3 bits of the fixed ModR/M byte.
	locFixed                // Implied by the opcode.
	locImm                  // An immediate.
	locBranch               // A relative branch target.
	locXbegin               // XBEGIN's relative target.
	locFar                  // A far pointer.
	locMoffs                // A memory offset.
	locSrcSI                // [seg:rSI].
	locDstDI                // [ES:rDI].
	locSegDI                // [seg:rDI].
	locXlat                 // [seg:rBX+AL].
)

// operandDef describes one operand slot.
type operandDef struct {
	token string
	loc   operandLoc
	class registerKind // For register operands.
	fixed Register     // For locFixed.
	kind  OpKind       // For immediates and branches.
	size  uint8        // Encoded bytes, for immediates and branches.
	vsib  uint8        // Index element bytes, for VSIB memory. The index class is in class.
}

func (o *operandDef) isMemoryCapable() bool {
	switch o.loc {
	case locRM, locMem, locMoffs, locSrcSI, locDstDI, locSegDI, locXlat:
		return true
	}

	return false
}

func (o *operandDef) isRegister() bool {
	switch o.loc {
	case locReg, locRM, locRMReg, locVVVV, locIs4, locOpcodeReg, locSTi, locFixed:
		return true
	}

	return false
}

var operandTokens = map[string]operandDef{
	// ModR/M.reg.
	"r8":   {loc: locReg, class: regGPR8},
	"r16":  {loc: locReg, class: regGPR16},
	"r32":  {loc: locReg, class: regGPR32},
	"r64":  {loc: locReg, class: regGPR64},
	"mm":   {loc: locReg, class: regMM},
	"xmm":  {loc: locReg, class: regXMM},
	"ymm":  {loc: locReg, class: regYMM},
	"zmm":  {loc: locReg, class: regZMM},
	"kr":   {loc: locReg, class: regK},
	"bnd":  {loc: locReg, class: regBND},
	"sreg": {loc: locReg, class: regSegment},
	"cr":   {loc: locReg, class: regCR},
	"dr":   {loc: locReg, class: regDR},
	"tr":   {loc: locReg, class: regTR},

	// ModR/M.r/m.
	"rm8":  {loc: locRM, class: regGPR8},
	"rm16": {loc: locRM, class: regGPR16},
	"rm32": {loc: locRM, class: regGPR32},
	"rm64": {loc: locRM, class: regGPR64},
	"mmm":  {loc: locRM, class: regMM},
	"xmmm": {loc: locRM, class: regXMM},
	"ymmm": {loc: locRM, class: regYMM},
	"zmmm": {loc: locRM, class: regZMM},
	"km":   {loc: locRM, class: regK},
	"bndm": {loc: locRM, class: regBND},
	"rr16": {loc: locRMReg, class: regGPR16},
	"rr32": {loc: locRMReg, class: regGPR32},
	"rr64": {loc: locRMReg, class: regGPR64},
	"rmm":  {loc: locRMReg, class: regMM},
	"rxmm": {loc: locRMReg, class: regXMM},
	"rk":   {loc: locRMReg, class: regK},
	"m":    {loc: locMem},
	"sti":  {loc: locSTi, class: regST},

	// VSIB memory, indexed by a vector register.
	"vm32x": {loc: locMem, class: regXMM, vsib: 4},
	"vm32y": {loc: locMem, class: regYMM, vsib: 4},
	"vm32z": {loc: locMem, class: regZMM, vsib: 4},
	"vm64x": {loc: locMem, class: regXMM, vsib: 8},
	"vm64y": {loc: locMem, class: regYMM, vsib: 8},
	"vm64z": {loc: locMem, class: regZMM, vsib: 8},

	// Vector prefix registers.
	"v32":  {loc: locVVVV, class: regGPR32},
	"v64":  {loc: locVVVV, class: regGPR64},
	"vxmm": {loc: locVVVV, class: regXMM},
	"vymm": {loc: locVVVV, class: regYMM},
	"vzmm": {loc: locVVVV, class: regZMM},
	"vk":   {loc: locVVVV, class: regK},
	"is4x": {loc: locIs4, class: regXMM},
	"is4y": {loc: locIs4, class: regYMM},

	// Opcode registers.
	"o8":  {loc: locOpcodeReg, class: regGPR8},
	"o16": {loc: locOpcodeReg, class: regGPR16},
	"o32": {loc: locOpcodeReg, class: regGPR32},
	"o64": {loc: locOpcodeReg, class: regGPR64},

	// Fixed registers.
	"AL":   {loc: locFixed, fixed: AL},
	"AX":   {loc: locFixed, fixed: AX},
	"EAX":  {loc: locFixed, fixed: EAX},
	"RAX":  {loc: locFixed, fixed: RAX},
	"CL":   {loc: locFixed, fixed: CL},
	"DX":   {loc: locFixed, fixed: DX},
	"CS":   {loc: locFixed, fixed: CS},
	"DS":   {loc: locFixed, fixed: DS},
	"ES":   {loc: locFixed, fixed: ES},
	"SS":   {loc: locFixed, fixed: SS},
	"FS":   {loc: locFixed, fixed: FS},
	"GS":   {loc: locFixed, fixed: GS},
	"ST0":  {loc: locFixed, fixed: ST0},
	"XMM0": {loc: locFixed, fixed: XMM0},

	// Immediates.
	"ib":   {loc: locImm, kind: OpKindImmediate8, size: 1},
	"iw":   {loc: locImm, kind: OpKindImmediate16, size: 2},
	"id":   {loc: locImm, kind: OpKindImmediate32, size: 4},
	"io":   {loc: locImm, kind: OpKindImmediate64, size: 8},
	"ib16": {loc: locImm, kind: OpKindImmediate8to16, size: 1},
	"ib32": {loc: locImm, kind: OpKindImmediate8to32, size: 1},
	"ib64": {loc: locImm, kind: OpKindImmediate8to64, size: 1},
	"id64": {loc: locImm, kind: OpKindImmediate32to64, size: 4},
	"ib2":  {loc: locImm, kind: OpKindImmediate8_2nd, size: 1},
	"one":  {loc: locImm, kind: OpKindImmediate8, size: 0},

	// Branches.
	"rel8_16":  {loc: locBranch, kind: OpKindNearBranch16, size: 1},
	"rel8_32":  {loc: locBranch, kind: OpKindNearBranch32, size: 1},
	"rel8_64":  {loc: locBranch, kind: OpKindNearBranch64, size: 1},
	"rel16":    {loc: locBranch, kind: OpKindNearBranch16, size: 2},
	"rel32_32": {loc: locBranch, kind: OpKindNearBranch32, size: 4},
	"rel32_64": {loc: locBranch, kind: OpKindNearBranch64, size: 4},
	"xrel16":   {loc: locXbegin, size: 2},
	"xrel32":   {loc: locXbegin, size: 4},
	"ptr16":    {loc: locFar, kind: OpKindFarBranch16, size: 2},
	"ptr32":    {loc: locFar, kind: OpKindFarBranch32, size: 4},

	// Implicit memory.
	"moffs": {loc: locMoffs},
	"srcsi": {loc: locSrcSI},
	"dstdi": {loc: locDstDI},
	"segdi": {loc: locSegDI},
	"xlat":  {loc: locXlat},
}

var accessTokens = map[string]OpAccess{
	"n":   OpAccessNone,
	"r":   OpAccessRead,
	"cr":  OpAccessCondRead,
	"w":   OpAccessWrite,
	"cw":  OpAccessCondWrite,
	"rw":  OpAccessReadWrite,
	"rcw": OpAccessReadCondWrite,
	"nm":  OpAccessNoMemAccess,
}

// impliedKind identifies an implied effect.
type impliedKind uint8

const (
	impliedRegister   impliedKind = iota // A register that is not an operand.
	impliedStack                         // The stack pointer.
	impliedPush                          // A write below the stack pointer.
	impliedPop                           // A read at the stack pointer.
	impliedVzeroupper                    // Clears the upper halves of YMM0-15.
	impliedVzeroall                      // Clears YMM0-15.
)

// impliedEffect is a register or memory access
// that no operand describes.
type impliedEffect struct {
	kind   impliedKind
	access OpAccess
	reg    Register
	memory MemorySize
}

// parseImplied parses the implied effects of
// an opcode definition. Each effect is one of:
//
//   - access:register, such as "rw:ECX"
//   - access:sp, for the stack pointer
//   - push:size or pop:size, for stack memory
//   - vzeroupper or vzeroall
func parseImplied(s string) ([]impliedEffect, error) {
	var effects []impliedEffect
	for _, field := range strings.Fields(s) {
		switch field {
		case "vzeroupper":
			effects = append(effects, impliedEffect{kind: impliedVzeroupper})
			continue
		case "vzeroall":
			effects = append(effects, impliedEffect{kind: impliedVzeroall})
			continue
		}

		key, value, ok := strings.Cut(field, ":")
		if !ok {
			return nil, fmt.Errorf("invalid implied effect %q", field)
		}

		switch key {
		case "push", "pop":
			size, ok := memorySizeNames[value]
			if !ok {
				return nil, fmt.Errorf("invalid implied effect %q: unknown memory size", field)
			}

			kind := impliedPush
			access := OpAccessWrite
			if key == "pop" {
				kind = impliedPop
				access = OpAccessRead
			}

			effects = append(effects, impliedEffect{kind: kind, access: access, memory: size})
			continue
		}

		access, ok := accessTokens[key]
		if !ok {
			return nil, fmt.Errorf("invalid implied effect %q: unknown access", field)
		}

		if value == "sp" {
			effects = append(effects, impliedEffect{kind: impliedStack, access: access})
			continue
		}

		reg, ok := registerNames[value]
		if !ok {
			return nil, fmt.Errorf("invalid implied effect %q: unknown register", field)
		}

		effects = append(effects, impliedEffect{kind: impliedRegister, access: access, reg: reg})
	}

	return effects, nil
}

// memorySizeNames maps the names used in
// opcode definitions to memory sizes.
var memorySizeNames = func() map[string]MemorySize {
	m := make(map[string]MemorySize, NumberOfMemorySizes)
	for size := MemorySize(0); size < NumberOfMemorySizes; size++ {
		m[size.String()] = size
	}

	return m
}()

// registerNames maps register names to
// registers.
var registerNames = func() map[string]Register {
	m := make(map[string]Register, NumberOfRegisters)
	for reg := Register(1); reg < NumberOfRegisters; reg++ {
		m[reg.String()] = reg
	}

	return m
}()

// codeInfo is the parsed form of an opcodeDef.
type codeInfo struct {
	enc     *opcode.Encoding // Nil for pseudo-instructions.
	ops     []operandDef
	access  []OpAccess
	rflags  rflagsInfo
	implied []impliedEffect
	memOp   int // The index of the ModR/M memory operand, or -1.
}

// vsib returns the VSIB memory operand, or nil.
func (c *codeInfo) vsib() *operandDef {
	if c.memOp < 0 || c.ops[c.memOp].vsib == 0 {
		return nil
	}

	return &c.ops[c.memOp]
}

func (c *codeInfo) kind() EncodingKind {
	if c.enc == nil {
		return EncodingKindLegacy
	}

	switch c.enc.Kind() {
	case opcode.KindVEX:
		return EncodingKindVEX
	case opcode.KindEVEX:
		return EncodingKindEVEX
	case opcode.KindXOP:
		return EncodingKindXOP
	case opcode.KindMVEX:
		return EncodingKindMVEX
	}

	return EncodingKindLegacy
}

// parseDef parses the textual parts of an
// opcode definition.
func parseDef(def *opcodeDef) (codeInfo, error) {
	info := codeInfo{memOp: -1}
	if def.encoding != "" {
		enc, err := opcode.ParseEncoding(def.encoding)
		if err != nil {
			return codeInfo{}, err
		}

		info.enc = enc
	}

	ops := strings.Fields(def.operands)
	access := strings.Fields(def.access)
	if len(ops) != len(access) {
		return codeInfo{}, fmt.Errorf("got %d operands and %d access kinds", len(ops), len(access))
	}

	if len(ops) > MaxOpCount {
		return codeInfo{}, fmt.Errorf("got %d operands, want at most %d", len(ops), MaxOpCount)
	}

	for i, tok := range ops {
		op, ok := operandTokens[tok]
		if !ok {
			return codeInfo{}, fmt.Errorf("unknown operand %q", tok)
		}

		acc, ok := accessTokens[access[i]]
		if !ok {
			return codeInfo{}, fmt.Errorf("unknown access %q", access[i])
		}

		op.token = tok
		switch op.loc {
		case locRM, locMem:
			if info.memOp >= 0 {
				return codeInfo{}, fmt.Errorf("operand %d: second ModR/M memory operand", i)
			}

			info.memOp = i
		}

		if op.loc == locMem && (op.vsib != 0) != (info.enc != nil && info.enc.VSIB) {
			return codeInfo{}, fmt.Errorf("operand %d: %q does not match the encoding's /vsib", i, tok)
		}

		info.ops = append(info.ops, op)
		info.access = append(info.access, acc)
	}

	var err error
	info.rflags, err = parseRflagsInfo(def.rflags)
	if err != nil {
		return codeInfo{}, err
	}

	info.implied, err = parseImplied(def.implied)
	if err != nil {
		return codeInfo{}, err
	}

	return info, nil
}

// codeInfos returns the parsed definitions,
// indexed by Code.
var codeInfos = sync.OnceValue(func() *[NumberOfCodeValues]codeInfo {
	var infos [NumberOfCodeValues]codeInfo
	for code := range opcodeDefs {
		info, err := parseDef(&opcodeDefs[code])
		if err != nil {
			panic(fmt.Sprintf("x86: bad definition of %s: %v", Code(code), err))
		}

		infos[code] = info
	}

	return &infos
})

func (c Code) def() *opcodeDef {
	if c >= NumberOfCodeValues {
		panic(fmt.Sprintf("x86: invalid code %d", c))
	}

	return &opcodeDefs[c]
}

func (c Code) info() *codeInfo {
	c.def() // Check the range.
	return &codeInfos()[c]
}
