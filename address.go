// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// RegisterValueFunc returns the value of a
// register. For segment registers it returns the
// segment's base address. The element index and
// size are those of the element being addressed,
// or zero for scalar operands. For the vector
// index of a gather or scatter, fn returns the
// index element, which is 4 or 8 bytes.
type RegisterValueFunc func(reg Register, elementIndex, elementSize int) (uint64, bool)

// VirtualAddress computes the linear address
// referenced by the memory operand op, using fn
// to read registers. It reports false if op is
// not a memory operand or fn could not provide a
// register's value.
func (inst *Instruction) VirtualAddress(op, element int, fn RegisterValueFunc) (uint64, bool) {
	checkOp(op)
	kind := inst.opKinds[op]
	if !kind.IsMemory() {
		return 0, false
	}

	mask := addressMask(inst.addressSize(op))
	elemSize := 0
	if element != 0 {
		elemSize = inst.MemorySize().ElementSize()
	}

	var offset uint64
	switch {
	case kind.isStringMemory():
		v, ok := registerValue(fn, inst.stringRegister(kind), element, elemSize)
		if !ok {
			return 0, false
		}

		offset = v & mask
	case inst.IsIPRelativeMemoryOperand():
		offset = inst.IPRelativeMemoryAddress()
	default:
		offset = inst.memDispl
		vsib := inst.code.info().vsib()
		if inst.memBase != RegisterNone {
			e, size := element, elemSize
			if vsib != nil {
				e, size = 0, 0
			}

			v, ok := registerValue(fn, inst.memBase, e, size)
			if !ok {
				return 0, false
			}

			offset += v
		}

		if inst.memIndex != RegisterNone {
			var v uint64
			var ok bool
			if vsib != nil {
				v, ok = vsibIndex(fn, inst.memIndex, element, int(vsib.vsib))
			} else {
				v, ok = registerValue(fn, inst.memIndex, element, elemSize)
			}

			if !ok {
				return 0, false
			}

			offset += v * uint64(inst.MemoryIndexScale())
		}

		offset &= mask
	}

	seg := inst.segmentOf(op)
	if seg == RegisterNone {
		return offset, true
	}

	base, ok := fn(seg, 0, 0)
	if !ok {
		return 0, false
	}

	return base + offset, true
}

// registerValue reads reg through fn and
// truncates the value to the register's width.
func registerValue(fn RegisterValueFunc, reg Register, element, elemSize int) (uint64, bool) {
	v, ok := fn(reg, element, elemSize)
	if !ok {
		return 0, false
	}

	if size := reg.Size(); size < 8 {
		v &= 1<<(8*size) - 1
	}

	return v, true
}

// vsibIndex reads one element of a vector index
// and sign-extends it.
func vsibIndex(fn RegisterValueFunc, reg Register, element, size int) (uint64, bool) {
	v, ok := fn(reg, element, size)
	if !ok {
		return 0, false
	}

	if size == 4 {
		return uint64(int64(int32(v))), true
	}

	return v, true
}

func addressMask(asize int) uint64 {
	switch asize {
	case 16:
		return 0xffff
	case 32:
		return 0xffff_ffff
	}

	return ^uint64(0)
}

// stringRegister returns rSI or rDI for a string
// operand kind.
func (inst *Instruction) stringRegister(kind OpKind) Register {
	size := 2 << ((kind - OpKindMemorySegSI) % 3)
	switch kind {
	case OpKindMemorySegSI, OpKindMemorySegESI, OpKindMemorySegRSI:
		return gpr(size, 6, false)
	}

	return gpr(size, 7, false)
}

// addressSize returns the address size in bits
// used by the memory operand op.
func (inst *Instruction) addressSize(op int) int {
	kind := inst.opKinds[op]
	if kind.isStringMemory() {
		return 16 << ((kind - OpKindMemorySegSI) % 3)
	}

	switch inst.memBase {
	case RIP:
		return 64
	case EIP:
		return 32
	}

	for _, reg := range [...]Register{inst.memBase, inst.memIndex} {
		switch {
		case reg.IsGPR16():
			return 16
		case reg.IsGPR32():
			return 32
		case reg.IsGPR64():
			return 64
		}
	}

	if ops := inst.code.info().ops; op < len(ops) && ops[op].loc == locMoffs || inst.memBase == RegisterNone {
		switch inst.memDisplSize {
		case 2:
			return 16
		case 4:
			return 32
		case 8:
			return 64
		}
	}

	return inst.bitness()
}

// bitness returns the instruction's code size
// in bits. For instructions that were not
// decoded it is inferred from the modes in which
// the code is valid.
func (inst *Instruction) bitness() int {
	if bits := inst.codeSize.Bits(); bits != 0 {
		return bits
	}

	if inst.code.def().modes == modesLong {
		return 64
	}

	return 32
}

// segmentOf returns the segment used by the
// memory operand op.
func (inst *Instruction) segmentOf(op int) Register {
	switch inst.opKinds[op] {
	case OpKindMemoryESDI, OpKindMemoryESEDI, OpKindMemoryESRDI:
		return ES
	case OpKindMemory:
		return inst.MemorySegment()
	}

	if inst.segPrefix != RegisterNone {
		return inst.segPrefix
	}

	return DS
}
