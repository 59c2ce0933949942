// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"encoding/binary"
	"fmt"
	"math"
)

type operandArg uint8

const (
	argNone operandArg = iota
	argReg
	argImm
	argMem
	argBranch
	argFar
)

// Operand is an explicit operand passed to
// NewInstruction. Use Reg, Imm, Mem, Branch or
// Far to make one.
type Operand struct {
	arg      operandArg
	reg      Register
	imm      uint64
	mem      Memory
	selector uint16
}

// Memory describes a memory operand.
type Memory struct {
	Segment      Register // Any segment override.
	Base         Register
	Index        Register
	Scale        int // 1, 2, 4 or 8. Zero means 1.
	Displacement int64
	DisplSize    int  // Any preferred displacement size in bytes.
	Broadcast    bool // An EVEX broadcast.
}

// Reg returns a register operand.
func Reg(r Register) Operand { return Operand{arg: argReg, reg: r} }

// Imm returns an immediate operand.
func Imm(v int64) Operand { return Operand{arg: argImm, imm: uint64(v)} }

// Uimm returns an unsigned immediate operand.
func Uimm(v uint64) Operand { return Operand{arg: argImm, imm: v} }

// Mem returns a memory operand.
func Mem(m Memory) Operand { return Operand{arg: argMem, mem: m} }

// Branch returns a near branch operand with the
// given absolute target.
func Branch(target uint64) Operand { return Operand{arg: argBranch, imm: target} }

// Far returns a far pointer operand.
func Far(selector uint16, offset uint32) Operand {
	return Operand{arg: argFar, imm: uint64(offset), selector: selector}
}

func (o Operand) String() string {
	switch o.arg {
	case argReg:
		return o.reg.String()
	case argImm:
		return fmt.Sprintf("immediate %#x", o.imm)
	case argMem:
		return "memory"
	case argBranch:
		return fmt.Sprintf("branch %#x", o.imm)
	case argFar:
		return fmt.Sprintf("far %#x:%#x", o.selector, o.imm)
	}

	return "no operand"
}

// NewInstruction returns an instruction with
// the given code and operands. Every operand
// must be given, including fixed registers such
// as AL in ADD AL, imm8 and the 1 in ROL r/m8, 1.
func NewInstruction(code Code, ops ...Operand) (Instruction, error) {
	info := code.info()
	if code.def().encoding == "" {
		return Instruction{}, fmt.Errorf("%s cannot be created with NewInstruction", code)
	}

	if len(ops) != len(info.ops) {
		return Instruction{}, fmt.Errorf("%s: got %d operands, want %d", code, len(ops), len(info.ops))
	}

	inst := Instruction{code: code}
	for i, o := range ops {
		if err := inst.setOperand(i, &info.ops[i], o); err != nil {
			return Instruction{}, fmt.Errorf("%s: operand %d: %v", code, i, err)
		}
	}

	return inst, nil
}

func (inst *Instruction) setOperand(i int, def *operandDef, o Operand) error {
	switch def.loc {
	case locReg, locRMReg, locVVVV, locIs4, locOpcodeReg, locSTi, locFixed:
		return inst.setRegOperand(i, def, o)
	case locRM:
		if o.arg == argReg {
			return inst.setRegOperand(i, def, o)
		}

		fallthrough
	case locMem, locMoffs:
		if o.arg != argMem {
			return fmt.Errorf("got %s, want memory", o)
		}

		if def.loc == locMoffs && (o.mem.Base != RegisterNone || o.mem.Index != RegisterNone) {
			return fmt.Errorf("memory offsets cannot use a base or index register")
		}

		switch index := o.mem.Index; {
		case def.vsib != 0:
			if index == RegisterNone || index.info().kind != def.class {
				return fmt.Errorf("%q cannot be indexed by %s", def.token, index)
			}
		case index != RegisterNone && index.IsVectorRegister():
			return fmt.Errorf("%s can only index gathers and scatters", index)
		}

		return inst.setMemory(i, OpKindMemory, o.mem)
	case locSrcSI, locDstDI, locSegDI, locXlat:
		if o.arg != argMem {
			return fmt.Errorf("got %s, want memory", o)
		}

		kind, err := impliedMemoryKind(def.loc, o.mem)
		if err != nil {
			return err
		}

		return inst.setMemory(i, kind, o.mem)
	case locImm:
		if o.arg != argImm {
			return fmt.Errorf("got %s, want an immediate", o)
		}

		if def.size == 0 && o.imm != 1 {
			return fmt.Errorf("got immediate %#x, want 1", o.imm)
		}

		if v := int64(o.imm); !immediateFits(def.kind, v) {
			return fmt.Errorf("immediate %#x does not fit in %s", v, def.kind)
		}

		inst.opKinds[i] = def.kind
		inst.SetImmediate(i, o.imm)
	case locBranch, locXbegin:
		if o.arg != argBranch {
			return fmt.Errorf("got %s, want a branch target", o)
		}

		kind := def.kind
		if def.loc == locXbegin {
			kind = OpKindNearBranch64
			if o.imm <= 0xffffffff {
				kind = OpKindNearBranch32
			}
		}

		inst.opKinds[i] = kind
		inst.nearBranch = o.imm
	case locFar:
		if o.arg != argFar {
			return fmt.Errorf("got %s, want a far pointer", o)
		}

		if def.kind == OpKindFarBranch16 && o.imm > 0xffff {
			return fmt.Errorf("offset %#x does not fit in 16 bits", o.imm)
		}

		inst.opKinds[i] = def.kind
		inst.nearBranch = o.imm
		inst.farSelector = o.selector
	default:
		return fmt.Errorf("unexpected operand %q", def.token)
	}

	return nil
}

// immediateFits returns whether v can be held
// by an immediate of the given kind. Unextended
// immediates accept either the signed or the
// unsigned range.
func immediateFits(kind OpKind, v int64) bool {
	switch kind {
	case OpKindImmediate8, OpKindImmediate8_2nd:
		return v >= math.MinInt8 && v <= math.MaxUint8
	case OpKindImmediate16:
		return v >= math.MinInt16 && v <= math.MaxUint16
	case OpKindImmediate32:
		return v >= math.MinInt32 && v <= math.MaxUint32
	case OpKindImmediate8to16, OpKindImmediate8to32, OpKindImmediate8to64:
		return v >= math.MinInt8 && v <= math.MaxInt8
	case OpKindImmediate32to64:
		return v >= math.MinInt32 && v <= math.MaxInt32
	}

	return true
}

func (inst *Instruction) setRegOperand(i int, def *operandDef, o Operand) error {
	if o.arg != argReg {
		return fmt.Errorf("got %s, want a register", o)
	}

	switch {
	case def.loc == locFixed:
		if o.reg != def.fixed {
			return fmt.Errorf("got %s, want %s", o.reg, def.fixed)
		}
	case o.reg == RegisterNone || o.reg.info().kind != def.class:
		return fmt.Errorf("%s is not a valid %q register", o.reg, def.token)
	}

	inst.opKinds[i] = OpKindRegister
	inst.regs[i] = o.reg

	return nil
}

// impliedMemoryKind returns the operand kind for
// a string or XLAT operand, checking that the
// memory operand uses the implied registers.
func impliedMemoryKind(loc operandLoc, m Memory) (OpKind, error) {
	var kind16 OpKind
	var want [3]Register
	switch loc {
	case locSrcSI:
		kind16, want = OpKindMemorySegSI, [3]Register{SI, ESI, RSI}
	case locDstDI:
		kind16, want = OpKindMemoryESDI, [3]Register{DI, EDI, RDI}
	case locSegDI:
		kind16, want = OpKindMemorySegDI, [3]Register{DI, EDI, RDI}
	case locXlat:
		kind16, want = OpKindMemory, [3]Register{BX, EBX, RBX}
	}

	for j, base := range want {
		if m.Base != base {
			continue
		}

		if loc == locXlat {
			if m.Index != AL {
				return 0, fmt.Errorf("XLAT memory must be indexed by AL")
			}

			return OpKindMemory, nil
		}

		if m.Index != RegisterNone || m.Displacement != 0 {
			return 0, fmt.Errorf("string memory operands cannot have an index or displacement")
		}

		return kind16 + OpKind(j), nil
	}

	return 0, fmt.Errorf("memory must be based on %s, %s or %s", want[0], want[1], want[2])
}

func (inst *Instruction) setMemory(i int, kind OpKind, m Memory) error {
	if m.Segment != RegisterNone && !m.Segment.IsSegmentRegister() {
		return fmt.Errorf("%s is not a segment register", m.Segment)
	}

	if kind == OpKindMemoryESDI || kind == OpKindMemoryESEDI || kind == OpKindMemoryESRDI {
		if m.Segment != RegisterNone && m.Segment != ES {
			return fmt.Errorf("ES:rDI cannot be overridden with %s", m.Segment)
		}

		m.Segment = RegisterNone
	}

	scale := m.Scale
	if scale == 0 {
		scale = 1
	}

	switch scale {
	case 1, 2, 4, 8:
	default:
		return fmt.Errorf("invalid index scale %d", m.Scale)
	}

	switch m.DisplSize {
	case 0, 1, 2, 4, 8:
	default:
		return fmt.Errorf("invalid displacement size %d", m.DisplSize)
	}

	if m.Broadcast && inst.code.def().flags&flagBroadcast == 0 {
		return fmt.Errorf("%s does not support broadcast", inst.code)
	}

	inst.opKinds[i] = kind
	inst.memBase = m.Base
	inst.memIndex = m.Index
	inst.memScale = uint8(scale)
	inst.memDispl = uint64(m.Displacement)
	inst.memDisplSize = uint8(m.DisplSize)
	inst.segPrefix = m.Segment
	inst.setFlag(instBroadcast, m.Broadcast)

	return nil
}

// NewStringInstruction returns a string
// instruction, such as MOVSB or INSD, using the
// given address size, segment override and
// repeat prefix.
func NewStringInstruction(code Code, addressSize int, segment Register, rep RepPrefixKind) (Instruction, error) {
	var j int
	switch addressSize {
	case 16:
		j = 0
	case 32:
		j = 1
	case 64:
		j = 2
	default:
		return Instruction{}, fmt.Errorf("invalid address size %d", addressSize)
	}

	info := code.info()
	ops := make([]Operand, len(info.ops))
	for i, op := range info.ops {
		switch op.loc {
		case locSrcSI:
			ops[i] = Mem(Memory{Segment: segment, Base: [...]Register{SI, ESI, RSI}[j]})
		case locSegDI:
			ops[i] = Mem(Memory{Segment: segment, Base: [...]Register{DI, EDI, RDI}[j]})
		case locDstDI:
			ops[i] = Mem(Memory{Base: [...]Register{DI, EDI, RDI}[j]})
		case locFixed:
			ops[i] = Reg(op.fixed)
		default:
			return Instruction{}, fmt.Errorf("%s is not a string instruction", code)
		}
	}

	inst, err := NewInstruction(code, ops...)
	if err != nil {
		return Instruction{}, err
	}

	if !inst.IsStringInstruction() {
		return Instruction{}, fmt.Errorf("%s is not a string instruction", code)
	}

	// The override applies to the source.
	inst.segPrefix = segment
	inst.SetRepPrefix(rep)

	return inst, nil
}

func newDeclare(code Code, n, size int, put func(b []byte)) (Instruction, error) {
	if n == 0 || n*size > 16 {
		return Instruction{}, fmt.Errorf("%s: got %d elements, want 1 to %d", code, n, 16/size)
	}

	inst := Instruction{code: code, declareCount: uint8(n)}
	put(inst.data[:])

	return inst, nil
}

// NewDeclareByte returns a pseudo-instruction
// that emits 1 to 16 bytes.
func NewDeclareByte(data []byte) (Instruction, error) {
	return newDeclare(DeclareByte, len(data), 1, func(b []byte) { copy(b, data) })
}

// NewDeclareWord returns a pseudo-instruction
// that emits 1 to 8 little-endian words.
func NewDeclareWord(data []uint16) (Instruction, error) {
	return newDeclare(DeclareWord, len(data), 2, func(b []byte) {
		for i, v := range data {
			binary.LittleEndian.PutUint16(b[2*i:], v)
		}
	})
}

// NewDeclareDword returns a pseudo-instruction
// that emits 1 to 4 little-endian doublewords.
func NewDeclareDword(data []uint32) (Instruction, error) {
	return newDeclare(DeclareDword, len(data), 4, func(b []byte) {
		for i, v := range data {
			binary.LittleEndian.PutUint32(b[4*i:], v)
		}
	})
}

// NewDeclareQword returns a pseudo-instruction
// that emits 1 or 2 little-endian quadwords.
func NewDeclareQword(data []uint64) (Instruction, error) {
	return newDeclare(DeclareQword, len(data), 8, func(b []byte) {
		for i, v := range data {
			binary.LittleEndian.PutUint64(b[8*i:], v)
		}
	})
}
