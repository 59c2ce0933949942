// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"strings"
)

// instFlags holds an instruction's prefixes
// and vector prefix fields.
type instFlags uint16

const (
	instLock          instFlags = 1 << iota // LOCK prefix.
	instRepe                                // REP/REPE prefix.
	instRepne                               // REPNE prefix.
	instZeroing                             // EVEX.z.
	instBroadcast                           // EVEX.b with a memory operand.
	instSAE                                 // Suppress all exceptions.
	instEvictionHint                        // MVEX.E with a memory operand.
)

// Instruction is a decoded or constructed x86
// instruction. Instructions are plain values,
// can be compared with ==, and are safe to
// copy.
type Instruction struct {
	ip           uint64
	memDispl     uint64
	immediate    uint64
	nearBranch   uint64
	code         Code
	regs         [MaxOpCount]Register
	opKinds      [MaxOpCount]OpKind
	memBase      Register
	memIndex     Register
	segPrefix    Register
	memScale     uint8
	memDisplSize uint8
	imm2         uint8
	farSelector  uint16
	length       uint8
	codeSize     CodeSize
	opmask       Register
	flags        instFlags
	rounding     RoundingControl
	mvexConv     MvexRegMemConv
	declareCount uint8
	data         [16]byte
}

// Equal reports whether two instructions are
// the same, ignoring their IP, length and code
// size.
//
// The displacement size is compared, so a decoded
// instruction with an 8-bit displacement is not
// equal to one built without a DisplSize of 1,
// even though both encode the same way.
func (inst *Instruction) Equal(other *Instruction) bool {
	a, b := *inst, *other
	a.ip, b.ip = 0, 0
	a.length, b.length = 0, 0
	a.codeSize, b.codeSize = 0, 0

	return a == b
}

// EqualAllBits reports whether two instructions
// are identical in every field.
func (inst *Instruction) EqualAllBits(other *Instruction) bool {
	return *inst == *other
}

func checkOp(op int) {
	if op < 0 || op >= MaxOpCount {
		panic(fmt.Sprintf("x86: invalid operand index %d", op))
	}
}

// Code returns the instruction's code.
func (inst *Instruction) Code() Code { return inst.code }

// SetCode sets the instruction's code.
func (inst *Instruction) SetCode(code Code) {
	code.def() // Check the range.
	inst.code = code
}

// Mnemonic returns the instruction's mnemonic.
func (inst *Instruction) Mnemonic() Mnemonic { return inst.code.Mnemonic() }

// IsInvalid returns whether the code is INVALID.
func (inst *Instruction) IsInvalid() bool { return inst.code == INVALID }

// IP returns the address of the instruction.
func (inst *Instruction) IP() uint64 { return inst.ip }

// SetIP sets the address of the instruction.
func (inst *Instruction) SetIP(ip uint64) { inst.ip = ip }

// NextIP returns the address of the following
// instruction.
func (inst *Instruction) NextIP() uint64 { return inst.ip + uint64(inst.length) }

// Len returns the length of the instruction in
// bytes, or zero if it was not decoded.
func (inst *Instruction) Len() int { return int(inst.length) }

// SetLen sets the length of the instruction.
func (inst *Instruction) SetLen(n int) {
	if n < 0 || n > 15 {
		panic(fmt.Sprintf("x86: invalid instruction length %d", n))
	}

	inst.length = uint8(n)
}

// CodeSize returns the mode the instruction was
// decoded in.
func (inst *Instruction) CodeSize() CodeSize { return inst.codeSize }

// SetCodeSize sets the mode the instruction was
// decoded in.
func (inst *Instruction) SetCodeSize(size CodeSize) { inst.codeSize = size }

// OpCount returns the number of operands.
func (inst *Instruction) OpCount() int { return inst.code.OpCount() }

// OpKind returns the kind of an operand.
func (inst *Instruction) OpKind(op int) OpKind {
	checkOp(op)
	return inst.opKinds[op]
}

// SetOpKind sets the kind of an operand.
func (inst *Instruction) SetOpKind(op int, kind OpKind) {
	checkOp(op)
	inst.opKinds[op] = kind
}

// OpRegister returns the register of a register
// operand, or RegisterNone.
func (inst *Instruction) OpRegister(op int) Register {
	checkOp(op)
	return inst.regs[op]
}

// SetOpRegister sets the register of an operand.
func (inst *Instruction) SetOpRegister(op int, reg Register) {
	checkOp(op)
	inst.regs[op] = reg
}

// HasOpKind returns whether any operand has
// the given kind.
func (inst *Instruction) HasOpKind(kind OpKind) bool {
	for i := 0; i < inst.OpCount(); i++ {
		if inst.opKinds[i] == kind {
			return true
		}
	}

	return false
}

// memoryOp returns the index of the first
// memory operand, or -1.
func (inst *Instruction) memoryOp() int {
	for i := 0; i < inst.OpCount(); i++ {
		if inst.opKinds[i].IsMemory() {
			return i
		}
	}

	return -1
}

// Immediate returns the value of an immediate
// operand, extended to 64 bits as the
// operand's kind describes.
func (inst *Instruction) Immediate(op int) uint64 {
	switch kind := inst.OpKind(op); kind {
	case OpKindImmediate8:
		return uint64(uint8(inst.immediate))
	case OpKindImmediate8_2nd:
		return uint64(inst.imm2)
	case OpKindImmediate16:
		return uint64(uint16(inst.immediate))
	case OpKindImmediate32:
		return uint64(uint32(inst.immediate))
	case OpKindImmediate64, OpKindImmediate8to64, OpKindImmediate32to64:
		return inst.immediate
	case OpKindImmediate8to16:
		return uint64(int64(int16(inst.immediate)))
	case OpKindImmediate8to32:
		return uint64(int64(int32(inst.immediate)))
	default:
		panic(fmt.Sprintf("x86: operand %d is %s, not an immediate", op, kind))
	}
}

// SetImmediate sets the value of an immediate
// operand.
func (inst *Instruction) SetImmediate(op int, v uint64) {
	switch kind := inst.OpKind(op); kind {
	case OpKindImmediate8:
		inst.immediate = uint64(uint8(v))
	case OpKindImmediate8_2nd:
		inst.imm2 = uint8(v)
	case OpKindImmediate16, OpKindImmediate8to16:
		inst.immediate = uint64(uint16(v))
	case OpKindImmediate32, OpKindImmediate8to32:
		inst.immediate = uint64(uint32(v))
	case OpKindImmediate64, OpKindImmediate8to64, OpKindImmediate32to64:
		inst.immediate = v
	default:
		panic(fmt.Sprintf("x86: operand %d is %s, not an immediate", op, kind))
	}
}

// NearBranchTarget returns the target of a near
// branch operand, or zero if there is none.
func (inst *Instruction) NearBranchTarget() uint64 {
	for i := 0; i < inst.OpCount(); i++ {
		switch inst.opKinds[i] {
		case OpKindNearBranch16:
			return uint64(uint16(inst.nearBranch))
		case OpKindNearBranch32:
			return uint64(uint32(inst.nearBranch))
		case OpKindNearBranch64:
			return inst.nearBranch
		}
	}

	return 0
}

// SetNearBranchTarget sets the target of the
// instruction's near branch operand.
func (inst *Instruction) SetNearBranchTarget(target uint64) {
	inst.nearBranch = target
}

// FarBranchSelector returns the segment selector
// of a far branch operand.
func (inst *Instruction) FarBranchSelector() uint16 { return inst.farSelector }

// FarBranchOffset returns the offset of a far
// branch operand.
func (inst *Instruction) FarBranchOffset() uint32 { return uint32(inst.nearBranch) }

// MemoryBase returns the base register of the
// memory operand, or RegisterNone.
func (inst *Instruction) MemoryBase() Register { return inst.memBase }

// SetMemoryBase sets the base register.
func (inst *Instruction) SetMemoryBase(reg Register) { inst.memBase = reg }

// MemoryIndex returns the index register of the
// memory operand, or RegisterNone.
func (inst *Instruction) MemoryIndex() Register { return inst.memIndex }

// SetMemoryIndex sets the index register.
func (inst *Instruction) SetMemoryIndex(reg Register) { inst.memIndex = reg }

// MemoryIndexScale returns the index scale: 1,
// 2, 4 or 8.
func (inst *Instruction) MemoryIndexScale() int {
	if inst.memScale == 0 {
		return 1
	}

	return int(inst.memScale)
}

// SetMemoryIndexScale sets the index scale.
func (inst *Instruction) SetMemoryIndexScale(scale int) {
	switch scale {
	case 1, 2, 4, 8:
		inst.memScale = uint8(scale)
	default:
		panic(fmt.Sprintf("x86: invalid index scale %d", scale))
	}
}

// MemoryDisplacement64 returns the displacement
// of the memory operand. For IP-relative
// operands this is relative to NextIP.
func (inst *Instruction) MemoryDisplacement64() uint64 { return inst.memDispl }

// MemoryDisplacement32 returns the low 32 bits
// of the displacement.
func (inst *Instruction) MemoryDisplacement32() uint32 { return uint32(inst.memDispl) }

// SetMemoryDisplacement64 sets the displacement.
func (inst *Instruction) SetMemoryDisplacement64(displ uint64) { inst.memDispl = displ }

// MemoryDisplSize returns the size in bytes of
// the encoded displacement, or zero if there
// was none. Displacements using 64-bit
// addressing report 8 bytes.
func (inst *Instruction) MemoryDisplSize() int { return int(inst.memDisplSize) }

// SetMemoryDisplSize sets the displacement size
// hint used by the encoder.
func (inst *Instruction) SetMemoryDisplSize(size int) {
	switch size {
	case 0, 1, 2, 4, 8:
		inst.memDisplSize = uint8(size)
	default:
		panic(fmt.Sprintf("x86: invalid displacement size %d", size))
	}
}

// SegmentPrefix returns the segment override
// prefix, or RegisterNone.
func (inst *Instruction) SegmentPrefix() Register { return inst.segPrefix }

// SetSegmentPrefix sets the segment override.
func (inst *Instruction) SetSegmentPrefix(seg Register) {
	if seg != RegisterNone && !seg.IsSegmentRegister() {
		panic(fmt.Sprintf("x86: %s is not a segment register", seg))
	}

	inst.segPrefix = seg
}

// HasSegmentPrefix returns whether there is a
// segment override.
func (inst *Instruction) HasSegmentPrefix() bool { return inst.segPrefix != RegisterNone }

// MemorySegment returns the segment used by the
// memory operand: the override if present,
// otherwise the default for the operand.
func (inst *Instruction) MemorySegment() Register {
	op := inst.memoryOp()
	if op < 0 {
		return RegisterNone
	}

	switch inst.opKinds[op] {
	case OpKindMemoryESDI, OpKindMemoryESEDI, OpKindMemoryESRDI:
		return ES
	}

	if inst.segPrefix != RegisterNone {
		return inst.segPrefix
	}

	switch inst.memBase {
	case BP, EBP, RBP, SP, ESP, RSP:
		return SS
	}

	return DS
}

// IsIPRelativeMemoryOperand returns whether the
// memory operand is relative to RIP or EIP.
func (inst *Instruction) IsIPRelativeMemoryOperand() bool {
	return inst.memBase == RIP || inst.memBase == EIP
}

// IPRelativeMemoryAddress returns the address an
// IP-relative memory operand refers to.
func (inst *Instruction) IPRelativeMemoryAddress() uint64 {
	addr := inst.NextIP() + inst.memDispl
	if inst.memBase == EIP {
		return uint64(uint32(addr))
	}

	return addr
}

// MemorySize returns the size of the memory
// the instruction accesses through its memory
// operand, taking broadcasts and MVEX
// conversions into account.
func (inst *Instruction) MemorySize() MemorySize {
	def := inst.code.def()
	if inst.memoryOp() < 0 {
		return MemorySizeUnknown
	}

	if inst.flags&instBroadcast != 0 {
		return def.broadcast
	}

	if inst.code.Encoding() == EncodingKindMVEX {
		return mvexMemorySize(def.memory, inst.mvexConv)
	}

	return def.memory
}

// HasLockPrefix returns whether the instruction
// has a LOCK prefix.
func (inst *Instruction) HasLockPrefix() bool { return inst.flags&instLock != 0 }

// SetLockPrefix sets or clears the LOCK prefix.
func (inst *Instruction) SetLockPrefix(on bool) { inst.setFlag(instLock, on) }

// HasRepPrefix returns whether the instruction
// has a REP or REPE prefix.
func (inst *Instruction) HasRepPrefix() bool { return inst.flags&instRepe != 0 }

// HasRepnePrefix returns whether the instruction
// has a REPNE prefix.
func (inst *Instruction) HasRepnePrefix() bool { return inst.flags&instRepne != 0 }

// RepPrefix returns the repeat prefix.
func (inst *Instruction) RepPrefix() RepPrefixKind {
	switch {
	case inst.flags&instRepe != 0:
		return RepPrefixRepe
	case inst.flags&instRepne != 0:
		return RepPrefixRepne
	}

	return RepPrefixNone
}

// SetRepPrefix sets the repeat prefix.
func (inst *Instruction) SetRepPrefix(kind RepPrefixKind) {
	inst.flags &^= instRepe | instRepne
	switch kind {
	case RepPrefixRepe:
		inst.flags |= instRepe
	case RepPrefixRepne:
		inst.flags |= instRepne
	}
}

// HasXacquirePrefix returns whether the F2
// prefix acts as XACQUIRE.
func (inst *Instruction) HasXacquirePrefix() bool {
	def := inst.code.def()
	return inst.HasRepnePrefix() && inst.HasLockPrefix() && def.flags&flagXacquire != 0
}

// HasXreleasePrefix returns whether the F3
// prefix acts as XRELEASE.
func (inst *Instruction) HasXreleasePrefix() bool {
	def := inst.code.def()
	if !inst.HasRepPrefix() || inst.memoryOp() != 0 {
		return false
	}

	return inst.HasLockPrefix() && def.flags&flagXrelease != 0 || def.flags&flagHLENoLock != 0
}

// HasBndPrefix returns whether the F2 prefix
// acts as BND.
func (inst *Instruction) HasBndPrefix() bool {
	return inst.HasRepnePrefix() && inst.code.def().flags&flagBnd != 0
}

func (inst *Instruction) setFlag(f instFlags, on bool) {
	if on {
		inst.flags |= f
	} else {
		inst.flags &^= f
	}
}

// OpMask returns the opmask register, or
// RegisterNone.
func (inst *Instruction) OpMask() Register { return inst.opmask }

// HasOpMask returns whether an opmask register
// other than K0 is used.
func (inst *Instruction) HasOpMask() bool { return inst.opmask != RegisterNone }

// SetOpMask sets the opmask register.
func (inst *Instruction) SetOpMask(k Register) {
	if k == K0 {
		k = RegisterNone
	}

	if k != RegisterNone && !k.IsK() {
		panic(fmt.Sprintf("x86: %s is not an opmask register", k))
	}

	inst.opmask = k
}

// ZeroingMasking returns whether masked
// elements are zeroed.
func (inst *Instruction) ZeroingMasking() bool { return inst.flags&instZeroing != 0 }

// MergingMasking returns whether masked
// elements keep their values.
func (inst *Instruction) MergingMasking() bool { return inst.flags&instZeroing == 0 }

// SetZeroingMasking sets zeroing-masking.
func (inst *Instruction) SetZeroingMasking(on bool) { inst.setFlag(instZeroing, on) }

// RoundingControl returns any static rounding.
func (inst *Instruction) RoundingControl() RoundingControl { return inst.rounding }

// SetRoundingControl sets the static rounding.
func (inst *Instruction) SetRoundingControl(r RoundingControl) { inst.rounding = r }

// SuppressAllExceptions returns whether
// floating-point exceptions are suppressed.
func (inst *Instruction) SuppressAllExceptions() bool { return inst.flags&instSAE != 0 }

// SetSuppressAllExceptions sets {sae}.
func (inst *Instruction) SetSuppressAllExceptions(on bool) { inst.setFlag(instSAE, on) }

// IsBroadcast returns whether the memory
// operand is a broadcast.
func (inst *Instruction) IsBroadcast() bool { return inst.flags&instBroadcast != 0 }

// SetBroadcast sets the broadcast flag.
func (inst *Instruction) SetBroadcast(on bool) { inst.setFlag(instBroadcast, on) }

// IsMvexEvictionHint returns whether the MVEX
// eviction hint is set.
func (inst *Instruction) IsMvexEvictionHint() bool { return inst.flags&instEvictionHint != 0 }

// SetMvexEvictionHint sets the eviction hint.
func (inst *Instruction) SetMvexEvictionHint(on bool) { inst.setFlag(instEvictionHint, on) }

// MvexRegMemConv returns the MVEX register
// swizzle or memory conversion.
func (inst *Instruction) MvexRegMemConv() MvexRegMemConv { return inst.mvexConv }

// SetMvexRegMemConv sets the MVEX register
// swizzle or memory conversion.
func (inst *Instruction) SetMvexRegMemConv(c MvexRegMemConv) { inst.mvexConv = c }

// Encoding returns the instruction's encoding
// family.
func (inst *Instruction) Encoding() EncodingKind { return inst.code.Encoding() }

// FlowControl returns the instruction's effect
// on the instruction pointer.
func (inst *Instruction) FlowControl() FlowControl { return inst.code.FlowControl() }

// ConditionCode returns the condition tested by
// a Jcc, SETcc or CMOVcc instruction.
func (inst *Instruction) ConditionCode() ConditionCode { return inst.code.ConditionCode() }

// IsStringInstruction returns whether the
// instruction addresses memory through rSI or
// rDI.
func (inst *Instruction) IsStringInstruction() bool {
	for i := 0; i < inst.OpCount(); i++ {
		if inst.opKinds[i].isStringMemory() {
			return true
		}
	}

	return false
}

// StackPointerIncrement returns the amount the
// instruction adds to the stack pointer. It is
// negative for pushes.
func (inst *Instruction) StackPointerIncrement() int {
	def := inst.code.def()
	switch {
	case def.flags&flagEnter != 0:
		size := 2
		switch inst.code {
		case Enterd_imm16_imm8:
			size = 4
		case Enterq_imm16_imm8:
			size = 8
		}

		level := int(inst.imm2 & 0x1f)
		return -(size*(1+level) + int(uint16(inst.immediate)))
	case def.flow == FlowControlReturn && inst.OpCount() == 1 && inst.opKinds[0] == OpKindImmediate16:
		return int(def.stack) + int(uint16(inst.immediate))
	}

	return int(def.stack)
}

// DeclareDataLen returns the number of elements
// declared by a DeclareByte, DeclareWord,
// DeclareDword or DeclareQword instruction.
func (inst *Instruction) DeclareDataLen() int { return int(inst.declareCount) }

// DeclareData returns the raw bytes declared by
// a data pseudo-instruction.
func (inst *Instruction) DeclareData() []byte {
	size := declareElementSize(inst.code)
	return append([]byte(nil), inst.data[:int(inst.declareCount)*size]...)
}

func declareElementSize(code Code) int {
	switch code {
	case DeclareByte:
		return 1
	case DeclareWord:
		return 2
	case DeclareDword:
		return 4
	case DeclareQword:
		return 8
	}

	return 0
}

// String returns a debugging representation of
// the instruction. It is not assembly syntax.
func (inst *Instruction) String() string {
	var b strings.Builder
	b.WriteString(inst.code.Mnemonic().String())
	if n := declareElementSize(inst.code); n > 0 {
		fmt.Fprintf(&b, " % x", inst.DeclareData())
		return b.String()
	}

	for i := 0; i < inst.OpCount(); i++ {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(", ")
		}

		kind := inst.opKinds[i]
		switch {
		case kind == OpKindRegister:
			b.WriteString(inst.regs[i].String())
		case kind.IsImmediate():
			fmt.Fprintf(&b, "%#x", inst.Immediate(i))
		case kind.IsNearBranch():
			fmt.Fprintf(&b, "%#x", inst.NearBranchTarget())
		case kind == OpKindFarBranch16 || kind == OpKindFarBranch32:
			fmt.Fprintf(&b, "%#x:%#x", inst.farSelector, inst.FarBranchOffset())
		case kind.IsMemory():
			inst.writeMemory(&b, kind)
		}
	}

	return b.String()
}

func (inst *Instruction) writeMemory(b *strings.Builder, kind OpKind) {
	if size := inst.MemorySize(); size != MemorySizeUnknown {
		b.WriteString(size.String())
		b.WriteByte(' ')
	}

	if inst.segPrefix != RegisterNone {
		b.WriteString(inst.segPrefix.String())
		b.WriteByte(':')
	}

	if kind != OpKindMemory {
		b.WriteString(strings.TrimPrefix(kind.String(), "Memory"))
		return
	}

	b.WriteByte('[')
	sep := ""
	if inst.memBase != RegisterNone {
		b.WriteString(inst.memBase.String())
		sep = "+"
	}

	if inst.memIndex != RegisterNone {
		b.WriteString(sep)
		b.WriteString(inst.memIndex.String())
		if inst.memScale > 1 {
			fmt.Fprintf(b, "*%d", inst.memScale)
		}

		sep = "+"
	}

	if inst.memDispl != 0 || sep == "" {
		displ := int64(inst.memDispl)
		switch {
		case sep == "":
			fmt.Fprintf(b, "%#x", inst.memDispl)
		case displ < 0:
			fmt.Fprintf(b, "-%#x", uint64(-displ))
		default:
			fmt.Fprintf(b, "+%#x", displ)
		}
	}

	b.WriteByte(']')
}
