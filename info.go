// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
)

// UsedRegister is a register accessed by an
// instruction.
type UsedRegister struct {
	Register Register
	Access   OpAccess
}

func (r UsedRegister) String() string {
	return fmt.Sprintf("%s:%s", r.Register, r.Access)
}

// UsedMemory is a memory location accessed by
// an instruction. IP-relative locations have no
// base and an absolute displacement.
type UsedMemory struct {
	Segment      Register
	Base         Register
	Index        Register
	Scale        int
	Displacement uint64
	Size         MemorySize
	Access       OpAccess
	AddressSize  int // In bits.
}

func (m UsedMemory) String() string {
	return fmt.Sprintf("[%s:%s+%s*%d+%#x;%s;%s]", m.Segment, m.Base, m.Index, m.Scale, m.Displacement, m.Size, m.Access)
}

// InstructionInfo describes the registers and
// memory an instruction accesses.
type InstructionInfo struct {
	code      Code
	registers []UsedRegister
	memory    []UsedMemory
	opAccess  [MaxOpCount]OpAccess
}

// UsedRegisters returns the registers accessed.
// Registers that alias one another are merged
// into a single entry.
func (info *InstructionInfo) UsedRegisters() []UsedRegister { return info.registers }

// UsedMemory returns the memory locations
// accessed.
func (info *InstructionInfo) UsedMemory() []UsedMemory { return info.memory }

// OpAccess returns how operand op is accessed.
func (info *InstructionInfo) OpAccess(op int) OpAccess {
	checkOp(op)
	return info.opAccess[op]
}

// FlowControl returns the instruction's effect
// on the instruction pointer.
func (info *InstructionInfo) FlowControl() FlowControl { return info.code.FlowControl() }

// CpuidFeatures returns the CPUID features the
// instruction needs. The result must not be
// modified.
func (info *InstructionInfo) CpuidFeatures() []CpuidFeature { return info.code.CpuidFeatures() }

// RflagsRead returns the flags the instruction
// reads.
func (info *InstructionInfo) RflagsRead() RflagsBits { return info.code.RflagsRead() }

// RflagsWritten returns the flags the
// instruction sets to a computed value.
func (info *InstructionInfo) RflagsWritten() RflagsBits { return info.code.RflagsWritten() }

// RflagsCleared returns the flags the
// instruction always clears.
func (info *InstructionInfo) RflagsCleared() RflagsBits { return info.code.RflagsCleared() }

// RflagsSet returns the flags the instruction
// always sets.
func (info *InstructionInfo) RflagsSet() RflagsBits { return info.code.RflagsSet() }

// RflagsUndefined returns the flags the
// instruction leaves undefined.
func (info *InstructionInfo) RflagsUndefined() RflagsBits { return info.code.RflagsUndefined() }

// RflagsModified returns every flag the
// instruction may change.
func (info *InstructionInfo) RflagsModified() RflagsBits { return info.code.RflagsModified() }

// Info returns the registers and memory used by
// the instruction. Use an InfoFactory to avoid
// allocating for each instruction.
func (inst *Instruction) Info(options InfoOptions) InstructionInfo {
	var info InstructionInfo
	info.compute(inst, options)

	return info
}

// InfoFactory computes instruction info,
// reusing its buffers between calls.
type InfoFactory struct {
	info InstructionInfo
}

// NewInfoFactory returns a new info factory.
func NewInfoFactory() *InfoFactory {
	return &InfoFactory{
		info: InstructionInfo{
			registers: make([]UsedRegister, 0, 16),
			memory:    make([]UsedMemory, 0, 4),
		},
	}
}

// Info returns the registers and memory used by
// inst. The result is only valid until the next
// call to Info.
func (f *InfoFactory) Info(inst *Instruction, options InfoOptions) *InstructionInfo {
	f.info.registers = f.info.registers[:0]
	f.info.memory = f.info.memory[:0]
	f.info.compute(inst, options)

	return &f.info
}

// infoBuilder holds the state used while
// computing an InstructionInfo.
type infoBuilder struct {
	info     *InstructionInfo
	inst     *Instruction
	options  InfoOptions
	bitness  int
	rep      bool // A repeated string instruction.
	countReg Register
}

func (info *InstructionInfo) compute(inst *Instruction, options InfoOptions) {
	info.code = inst.code
	info.opAccess = [MaxOpCount]OpAccess{}
	b := infoBuilder{
		info:    info,
		inst:    inst,
		options: options,
		bitness: inst.bitness(),
	}

	access := inst.code.operandAccess()
	n := inst.OpCount()
	for i := 0; i < n && i < len(access); i++ {
		info.opAccess[i] = b.maskedAccess(i, access[i])
	}

	if inst.HasOpMask() {
		// Gathers and scatters clear the mask
		// as elements complete.
		acc := OpAccessRead
		if inst.code.info().vsib() != nil {
			acc = OpAccessReadWrite
		}

		b.addRegister(inst.opmask, acc)
	}

	for i := 0; i < n; i++ {
		b.operand(i)
	}

	for _, eff := range inst.code.info().implied {
		b.implied(eff)
	}

	if b.rep {
		b.addRegister(b.countReg, OpAccessReadCondWrite)
	}

	if options&InfoNoRegisterUsage == 0 {
		info.registers = mergeRegisters(info.registers)
	}
}

// maskedAccess adjusts an operand's static
// access for opmask and repeat prefixes.
func (b *infoBuilder) maskedAccess(op int, access OpAccess) OpAccess {
	inst := b.inst
	kind := inst.opKinds[op]
	if kind.isStringMemory() && (inst.HasRepPrefix() || inst.HasRepnePrefix()) && inst.code.def().flags&(flagRep|flagRepne) != 0 {
		switch access {
		case OpAccessRead:
			return OpAccessCondRead
		case OpAccessWrite:
			return OpAccessCondWrite
		}

		return access
	}

	if !inst.HasOpMask() {
		return access
	}

	switch {
	case kind.IsMemory() && access == OpAccessWrite:
		return OpAccessCondWrite
	case kind.IsMemory() && access == OpAccessRead:
		return OpAccessCondRead
	case kind == OpKindRegister && access == OpAccessWrite && inst.MergingMasking():
		return OpAccessReadWrite
	}

	return access
}

func (b *infoBuilder) addRegister(reg Register, access OpAccess) {
	if reg == RegisterNone || b.options&InfoNoRegisterUsage != 0 {
		return
	}

	b.info.registers = append(b.info.registers, UsedRegister{Register: reg, Access: access})
}

func (b *infoBuilder) addMemory(m UsedMemory) {
	if b.options&InfoNoMemoryUsage != 0 {
		return
	}

	b.info.memory = append(b.info.memory, m)
}

// segmentUsed returns whether the segment
// register is read when forming an address.
func (b *infoBuilder) segmentUsed(seg Register) bool {
	if b.bitness != 64 {
		return true
	}

	return seg == FS || seg == GS
}

func (b *infoBuilder) operand(op int) {
	inst := b.inst
	access := b.info.opAccess[op]
	switch kind := inst.opKinds[op]; {
	case kind == OpKindRegister:
		b.addRegister(inst.regs[op], access)
	case kind.isStringMemory():
		b.stringOperand(op, kind, access)
	case kind == OpKindMemory:
		b.memoryOperand(op, access)
	}
}

func (b *infoBuilder) stringOperand(op int, kind OpKind, access OpAccess) {
	inst := b.inst
	reg := inst.stringRegister(kind)
	asize := inst.addressSize(op)
	seg := inst.segmentOf(op)
	if inst.code.def().flags&(flagRep|flagRepne) != 0 && (inst.HasRepPrefix() || inst.HasRepnePrefix()) {
		b.rep = true
		b.countReg = gpr(asize/8, 1, false)
		b.addRegister(reg, OpAccessReadCondWrite)
	} else {
		b.addRegister(reg, OpAccessReadWrite)
	}

	if b.segmentUsed(seg) {
		b.addRegister(seg, OpAccessRead)
	}

	b.addMemory(UsedMemory{
		Segment:     seg,
		Base:        reg,
		Scale:       1,
		Size:        inst.MemorySize(),
		Access:      access,
		AddressSize: asize,
	})
}

func (b *infoBuilder) memoryOperand(op int, access OpAccess) {
	inst := b.inst
	seg := inst.MemorySegment()
	m := UsedMemory{
		Segment:      seg,
		Base:         inst.memBase,
		Index:        inst.memIndex,
		Scale:        inst.MemoryIndexScale(),
		Displacement: inst.memDispl,
		Size:         inst.MemorySize(),
		Access:       access,
		AddressSize:  inst.addressSize(op),
	}

	if inst.IsIPRelativeMemoryOperand() {
		m.Base = RegisterNone
		m.Displacement = inst.IPRelativeMemoryAddress()
	} else {
		b.addRegister(inst.memBase, OpAccessRead)
		b.addRegister(inst.memIndex, OpAccessRead)
	}

	if access != OpAccessNoMemAccess && b.segmentUsed(seg) {
		b.addRegister(seg, OpAccessRead)
	}

	b.addMemory(m)
}

func (b *infoBuilder) implied(eff impliedEffect) {
	sp := stackPointer(b.bitness)
	switch eff.kind {
	case impliedRegister:
		b.addRegister(eff.reg, eff.access)
	case impliedStack:
		b.addRegister(sp, eff.access)
	case impliedPush, impliedPop:
		m := UsedMemory{
			Segment:     SS,
			Base:        sp,
			Scale:       1,
			Size:        eff.memory,
			Access:      OpAccessRead,
			AddressSize: b.bitness,
		}

		if eff.kind == impliedPush {
			m.Displacement = uint64(-int64(eff.memory.Size()))
			m.Access = OpAccessWrite
		}

		if b.bitness != 64 {
			b.addRegister(SS, OpAccessRead)
		}

		b.addMemory(m)
	case impliedVzeroupper, impliedVzeroall:
		n := 8
		if b.bitness == 64 {
			n = 16
		}

		access := OpAccessReadWrite
		if eff.kind == impliedVzeroall {
			access = OpAccessWrite
		}

		for i := 0; i < n; i++ {
			b.addRegister(ZMM0+Register(i), access)
		}
	}
}

// mergeAccess combines two accesses to the same
// register.
func mergeAccess(a, b OpAccess) OpAccess {
	if a == b || b == OpAccessNone {
		return a
	}

	if a == OpAccessNone {
		return b
	}

	read := max(readLevel(a), readLevel(b))
	write := max(writeLevel(a), writeLevel(b))
	switch {
	case read == 2 && write == 2:
		return OpAccessReadWrite
	case read == 2 && write == 1:
		return OpAccessReadCondWrite
	case read == 2:
		return OpAccessRead
	case read == 1 && write == 0:
		return OpAccessCondRead
	case read == 1 && write == 2:
		return OpAccessReadWrite
	case read == 1:
		return OpAccessReadCondWrite
	case write == 2:
		return OpAccessWrite
	case write == 1:
		return OpAccessCondWrite
	}

	return a
}

// readLevel returns 2 for a read, 1 for a
// conditional read and 0 otherwise.
func readLevel(a OpAccess) int {
	switch a {
	case OpAccessRead, OpAccessReadWrite, OpAccessReadCondWrite:
		return 2
	case OpAccessCondRead:
		return 1
	}

	return 0
}

// writeLevel returns 2 for a write, 1 for a
// conditional write and 0 otherwise.
func writeLevel(a OpAccess) int {
	switch a {
	case OpAccessWrite, OpAccessReadWrite:
		return 2
	case OpAccessCondWrite, OpAccessReadCondWrite:
		return 1
	}

	return 0
}

// mergeRegisters merges registers that alias.
// Where several registers of one family are
// used, the widest is kept, and an 8-bit pair
// such as AL and AH becomes the 16-bit register.
// The order of first use is kept.
func mergeRegisters(regs []UsedRegister) []UsedRegister {
	out := regs[:0]
	for _, r := range regs {
		merged := false
		for j := range out {
			if !sameFamily(out[j].Register, r.Register) {
				continue
			}

			out[j].Register = widerRegister(out[j].Register, r.Register)
			out[j].Access = mergeAccess(out[j].Access, r.Access)
			merged = true
			break
		}

		if !merged {
			out = append(out, r)
		}
	}

	return out
}

func sameFamily(a, b Register) bool {
	if a == b {
		return true
	}

	ai, bi := a.info(), b.info()
	if ai.kind == regNone || bi.kind == regNone {
		return false
	}

	return ai.family == bi.family && a.FullRegister() == b.FullRegister()
}

func widerRegister(a, b Register) Register {
	if a == b {
		return a
	}

	ai, bi := a.info(), b.info()
	switch {
	case ai.rank > bi.rank:
		return a
	case bi.rank > ai.rank:
		return b
	case a.IsGPR8():
		// AL and AH.
		return a.resize(2)
	}

	return a
}
