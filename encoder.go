// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"math/bits"

	"firefly-os.dev/x86/internal/opcode"
)

// Encoder writes the machine code for
// instructions to a byte sink.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	w       io.ByteWriter
	bitness int
	options EncoderOptions
	offsets ConstantOffsets
}

// NewEncoder returns an encoder for the given
// mode: 16, 32 or 64 bits.
func NewEncoder(bitness int, w io.ByteWriter) *Encoder {
	switch bitness {
	case 16, 32, 64:
	default:
		panic(fmt.Sprintf("x86: invalid bitness %d", bitness))
	}

	if w == nil {
		panic("x86: NewEncoder called with a nil writer")
	}

	return &Encoder{w: w, bitness: bitness}
}

// Bitness returns the encoder's mode.
func (e *Encoder) Bitness() int { return e.bitness }

// Options returns the encoder's options.
func (e *Encoder) Options() EncoderOptions { return e.options }

// SetOptions replaces the encoder's options.
func (e *Encoder) SetOptions(options EncoderOptions) { e.options = options }

// ConstantOffsets describes where the constant
// parts of the last encoded instruction are. A
// zero size means the part is absent.
type ConstantOffsets struct {
	DisplacementOffset int
	DisplacementSize   int
	ImmediateOffset    int
	ImmediateSize      int
	ImmediateOffset2   int // ENTER's second immediate.
	ImmediateSize2     int
	BranchOffset       int // Relative branch or far pointer.
	BranchSize         int
}

// ConstantOffsets returns the layout of the
// most recently encoded instruction.
func (e *Encoder) ConstantOffsets() ConstantOffsets { return e.offsets }

// EncodeError describes an instruction that
// has no encoding.
type EncodeError struct {
	Code    Code
	Bitness int
	Reason  string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("x86: cannot encode %s in %d-bit mode: %s", e.Code, e.Bitness, e.Reason)
}

// Encode writes the machine code for inst,
// which will be located at ip, and returns the
// number of bytes written. Failures to find an
// encoding are returned as an *EncodeError,
// and nothing is written.
func (e *Encoder) Encode(inst *Instruction, ip uint64) (int, error) {
	e.offsets = ConstantOffsets{}
	if size := declareElementSize(inst.code); size > 0 {
		data := inst.data[:int(inst.declareCount)*size]
		for i, b := range data {
			if err := e.w.WriteByte(b); err != nil {
				return i, fmt.Errorf("x86: writing %s: %w", inst.code, err)
			}
		}

		return len(data), nil
	}

	if inst.code == Zero_bytes {
		return 0, nil
	}

	s := encodeState{e: e, inst: inst, ip: ip}
	if err := s.encode(); err != nil {
		return 0, err
	}

	n, err := s.code.EncodeTo(e.w)
	if err != nil {
		return n, fmt.Errorf("x86: writing %s: %w", inst.code, err)
	}

	e.offsets = s.offsets()

	return n, nil
}

// EncodeBytes returns the machine code for a
// single instruction at ip.
func EncodeBytes(bitness int, inst *Instruction, ip uint64) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := NewEncoder(bitness, &buf).Encode(inst, ip); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// EncodeBlock encodes a sequence of decoded
// instructions so that it starts at ip. Near
// branches that target an instruction in the
// block are moved with it, and IP-relative
// memory operands keep their absolute address.
func EncodeBlock(bitness int, insts []Instruction, ip uint64) ([]byte, error) {
	var buf bytes.Buffer
	enc := NewEncoder(bitness, &buf)

	// Lay out the block. Branch lengths are fixed
	// by the code, so a branch to itself gives the
	// final length.
	moved := make(map[uint64]uint64, len(insts))
	addrs := make([]uint64, len(insts)+1)
	addrs[0] = ip
	for i := range insts {
		inst := insts[i]
		if _, ok := moved[inst.ip]; !ok {
			moved[inst.ip] = addrs[i]
		}

		if inst.hasNearBranch() {
			inst.nearBranch = addrs[i]
		}

		n, err := enc.Encode(&inst, addrs[i])
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}

		addrs[i+1] = addrs[i] + uint64(n)
	}

	buf.Reset()
	for i := range insts {
		inst := insts[i]
		if inst.hasNearBranch() {
			if target, ok := moved[inst.NearBranchTarget()]; ok {
				inst.nearBranch = target
			}
		}

		if inst.IsIPRelativeMemoryOperand() {
			inst.memDispl = inst.IPRelativeMemoryAddress() - addrs[i+1]
			if inst.memBase == EIP {
				inst.memDispl = uint64(int64(int32(inst.memDispl)))
			}
		}

		if _, err := enc.Encode(&inst, addrs[i]); err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
	}

	return buf.Bytes(), nil
}

// hasNearBranch returns whether any operand is
// a near branch.
func (inst *Instruction) hasNearBranch() bool {
	for i := 0; i < inst.OpCount(); i++ {
		if inst.opKinds[i].IsNearBranch() {
			return true
		}
	}

	return false
}

// encodeState holds the work in progress for
// one call to Encode.
type encodeState struct {
	e    *Encoder
	inst *Instruction
	ip   uint64
	def  *opcodeDef
	info *codeInfo
	enc  *opcode.Encoding
	kind opcode.Kind
	long bool

	asize int
	code  opcode.Code

	rexReg  bool // SPL, BPL, SIL or DIL is used.
	highReg bool // AH, CH, DH or BH is used.

	immSizes   [2]int
	branchSize int
	branchKind OpKind
}

func (s *encodeState) errorf(format string, v ...any) error {
	return &EncodeError{Code: s.inst.code, Bitness: s.e.bitness, Reason: fmt.Sprintf(format, v...)}
}

func (s *encodeState) encode() error {
	inst := s.inst
	s.def = inst.code.def()
	s.info = inst.code.info()
	s.enc = s.info.enc
	if s.enc == nil || inst.code == INVALID {
		return s.errorf("not an instruction")
	}

	if !s.def.modes.has(s.e.bitness) {
		return s.errorf("not available in this mode")
	}

	s.long = s.e.bitness == 64
	s.kind = s.enc.Kind()
	if err := s.addressSize(); err != nil {
		return err
	}

	if err := s.prefixes(); err != nil {
		return err
	}

	s.vectorPrefix()

	c := &s.code
	enc := s.enc
	c.OpcodeLen = copy(c.Opcode[:], enc.Opcode)
	if enc.ModRMreg != 0 {
		c.ModRM.SetReg(enc.ModRMreg - 1)
	}

	if enc.ModRMrm != 0 {
		c.ModRM.SetRM(enc.ModRMrm - 1)
	}

	if enc.ModRMmod == opcode.ModRegister+1 {
		c.ModRM.SetMod(opcode.ModRegister)
	}

	// A fixed ModR/M byte is part of the opcode.
	_, fixed := enc.FixedModRM()
	c.UseModRM = enc.ModRM && !fixed

	if err := s.operands(); err != nil {
		return err
	}

	if err := s.vectorFields(); err != nil {
		return err
	}

	if err := s.rex(); err != nil {
		return err
	}

	if err := s.branch(); err != nil {
		return err
	}

	if n := c.Len(); n > opcode.MaxInstructionLength {
		return s.errorf("instruction would be %d bytes long", n)
	}

	return nil
}

// addressSize determines the address size from
// the memory operands.
func (s *encodeState) addressSize() error {
	inst := s.inst
	s.asize = s.e.bitness
	fixed := int(s.enc.AddressSize)
	if fixed != 0 {
		s.asize = fixed
	}

	for i := range s.info.ops {
		size := 0
		switch kind := inst.opKinds[i]; {
		case kind.isStringMemory():
			size = 16 << ((kind - OpKindMemorySegSI) % 3)
		case kind == OpKindMemory:
			var err error
			size, err = s.memoryAddressSize(&s.info.ops[i])
			if err != nil {
				return err
			}
		default:
			continue
		}

		if fixed != 0 && size != fixed {
			return s.errorf("operand %d uses %d-bit addressing, want %d-bit", i, size, fixed)
		}

		s.asize = size
	}

	switch {
	case s.long && s.asize == 16:
		return s.errorf("16-bit addressing is not available")
	case !s.long && s.asize == 64:
		return s.errorf("64-bit addressing is not available")
	}

	return nil
}

func (s *encodeState) memoryAddressSize(op *operandDef) (int, error) {
	inst := s.inst
	if op.loc == locMoffs {
		switch inst.memDisplSize {
		case 2:
			return 16, nil
		case 4:
			return 32, nil
		case 8:
			return 64, nil
		}

		return s.e.bitness, nil
	}

	// A VSIB index is a vector register, so only
	// the base gives the address size.
	reg := inst.memBase
	if reg == RegisterNone && op.vsib == 0 {
		reg = inst.memIndex
	}

	switch {
	case reg == RIP:
		return 64, nil
	case reg == EIP:
		return 32, nil
	case reg == RegisterNone:
		switch inst.memDisplSize {
		case 2:
			return 16, nil
		case 4:
			return 32, nil
		case 8:
			return 64, nil
		}

		return s.e.bitness, nil
	case reg.IsGPR16():
		return 16, nil
	case reg.IsGPR32():
		return 32, nil
	case reg.IsGPR64():
		return 64, nil
	}

	return 0, s.errorf("%s cannot be used to address memory", reg)
}

// prefixes adds the legacy prefixes, in the
// order seg, 67, 66, F0, F2/F3, then any
// mandatory prefixes.
func (s *encodeState) prefixes() error {
	c := &s.code
	inst := s.inst
	enc := s.enc
	for _, b := range enc.PrefixOpcodes {
		c.AddPrefixOpcode(b)
	}

	if seg := inst.segPrefix; seg != RegisterNone {
		p, ok := segmentPrefixes[seg]
		if !ok {
			return s.errorf("%s is not a segment register", seg)
		}

		c.AddPrefix(opcode.Prefix(p))
	}

	if s.asize != s.e.bitness {
		c.AddPrefix(opcode.PrefixAddressSize)
	}

	legacy := s.kind == opcode.KindLegacy
	if legacy {
		switch {
		case enc.OperandSize == 16 && s.e.bitness != 16,
			enc.OperandSize == 32 && s.e.bitness == 16:
			c.AddPrefix(opcode.PrefixOperandSize)
		}
	}

	if inst.HasLockPrefix() {
		if !legacy {
			return s.errorf("LOCK cannot be used with a %s prefix", s.kind)
		}

		c.AddPrefix(opcode.PrefixLock)
	}

	if rep := inst.RepPrefix(); rep != RepPrefixNone {
		if !legacy {
			return s.errorf("REP cannot be used with a %s prefix", s.kind)
		}

		p := opcode.PrefixRepeat
		if rep == RepPrefixRepne {
			p = opcode.PrefixRepeatNot
		}

		if !c.HasPrefix(p) {
			c.AddPrefix(p)
		}
	}

	if legacy {
		for _, p := range enc.MandatoryPrefixes {
			if !c.HasPrefix(p) {
				c.AddPrefix(p)
			}
		}
	}

	return nil
}

// evexLL returns the vector length field for
// the encoding.
func evexLL(enc *opcode.Encoding) byte {
	switch {
	case enc.EVEX_Lp:
		return 2
	case enc.VEX_L:
		return 1
	}

	return 0
}

// vectorPrefix sets up the fixed fields of any
// VEX, XOP, EVEX or MVEX prefix.
func (s *encodeState) vectorPrefix() {
	c := &s.code
	enc := s.enc
	w := enc.VEX_W && !enc.VEX_WIG
	switch s.kind {
	case opcode.KindVEX, opcode.KindXOP:
		c.VEX.Default()
		c.VEX.SetM_MMMM(enc.VEXm_mmmm)
		c.VEX.SetW(w)
		c.VEX.SetL(enc.VEX_L)
		c.VEX.SetPP(enc.VEXpp)
		c.XOP = s.kind == opcode.KindXOP
		c.Force3ByteVEX = s.e.options&EncoderPreventVEX2 != 0
	case opcode.KindEVEX:
		c.EVEX.Default()
		c.EVEX.SetOn(true)
		c.EVEX.SetMMM(enc.VEXm_mmmm)
		c.EVEX.SetW(w)
		c.EVEX.SetPP(enc.VEXpp)
		c.EVEX.SetLL(evexLL(enc))
	case opcode.KindMVEX:
		c.MVEX.Default()
		c.MVEX.SetMMMM(enc.VEXm_mmmm)
		c.MVEX.SetW(w)
		c.MVEX.SetPP(enc.VEXpp)
	}
}

// The prefix fields that extend register
// numbers. The VEX family stores them
// inverted.

func (s *encodeState) setR(n int) {
	c := &s.code
	switch s.kind {
	case opcode.KindLegacy:
		if n&8 != 0 {
			c.REX.SetR(true)
		}
	case opcode.KindVEX, opcode.KindXOP:
		c.VEX.SetR(n&8 == 0)
	case opcode.KindEVEX:
		c.EVEX.SetR(n&8 == 0)
		c.EVEX.SetRp(n&16 == 0)
	case opcode.KindMVEX:
		c.MVEX.SetR(n&8 == 0)
		c.MVEX.SetRp(n&16 == 0)
	}
}

func (s *encodeState) setX(n int) {
	c := &s.code
	switch s.kind {
	case opcode.KindLegacy:
		if n&8 != 0 {
			c.REX.SetX(true)
		}
	case opcode.KindVEX, opcode.KindXOP:
		c.VEX.SetX(n&8 == 0)
	case opcode.KindEVEX:
		c.EVEX.SetX(n&8 == 0)
	case opcode.KindMVEX:
		c.MVEX.SetX(n&8 == 0)
	}
}

// setB sets the extension of a base or r/m
// register. EVEX and MVEX use X for bit 4 of
// an r/m register.
func (s *encodeState) setB(n int, rm bool) {
	c := &s.code
	switch s.kind {
	case opcode.KindLegacy:
		if n&8 != 0 {
			c.REX.SetB(true)
		}
	case opcode.KindVEX, opcode.KindXOP:
		c.VEX.SetB(n&8 == 0)
	case opcode.KindEVEX:
		c.EVEX.SetB(n&8 == 0)
		if rm {
			c.EVEX.SetX(n&16 == 0)
		}
	case opcode.KindMVEX:
		c.MVEX.SetB(n&8 == 0)
		if rm {
			c.MVEX.SetX(n&16 == 0)
		}
	}
}

// setVSIBHigh sets bit 4 of a VSIB index, which
// EVEX and MVEX keep in V'.
func (s *encodeState) setVSIBHigh(n int) {
	c := &s.code
	switch s.kind {
	case opcode.KindEVEX:
		c.EVEX.SetVp(n&16 == 0)
	case opcode.KindMVEX:
		c.MVEX.SetVp(n&16 == 0)
	}
}

func (s *encodeState) setV(n int) {
	c := &s.code
	vvvv := ^byte(n) & 0xf
	switch s.kind {
	case opcode.KindVEX, opcode.KindXOP:
		c.VEX.SetVVVV(vvvv)
	case opcode.KindEVEX:
		c.EVEX.SetVVVV(vvvv)
		c.EVEX.SetVp(n&16 == 0)
	case opcode.KindMVEX:
		c.MVEX.SetVVVV(vvvv)
		c.MVEX.SetVp(n&16 == 0)
	}
}

// register checks a register operand and
// returns its number.
func (s *encodeState) register(i int, op *operandDef) (int, error) {
	inst := s.inst
	reg := inst.regs[i]
	if inst.opKinds[i] != OpKindRegister || reg == RegisterNone || reg.info().kind != op.class {
		return 0, s.errorf("operand %d: %s is not a valid %q register", i, reg, op.token)
	}

	n := reg.Number()
	switch {
	case reg.isHighByte():
		s.highReg = true
	case reg.IsGPR8() && reg.needsREX():
		s.rexReg = true
	}

	switch {
	case n >= 16 && s.kind != opcode.KindEVEX && s.kind != opcode.KindMVEX:
		return 0, s.errorf("operand %d: %s needs an EVEX prefix", i, reg)
	case op.class == regDR && n >= 8:
		return 0, s.errorf("operand %d: %s cannot be encoded", i, reg)
	case (n >= 8 || s.rexReg) && !s.long:
		return 0, s.errorf("operand %d: %s needs 64-bit mode", i, reg)
	}

	return n, nil
}

// operands encodes each operand.
func (s *encodeState) operands() error {
	inst := s.inst
	c := &s.code
	enc := s.enc
	for i := range s.info.ops {
		op := &s.info.ops[i]
		switch op.loc {
		case locReg:
			n, err := s.register(i, op)
			if err != nil {
				return err
			}

			c.ModRM.SetReg(byte(n))
			s.setR(n)
		case locRM, locRMReg, locMem:
			if inst.opKinds[i] == OpKindRegister && op.loc != locMem {
				n, err := s.register(i, op)
				if err != nil {
					return err
				}

				c.ModRM.SetMod(opcode.ModRegister)
				c.ModRM.SetRM(byte(n))
				s.setB(n, true)
				continue
			}

			if op.loc == locRMReg || inst.opKinds[i] != OpKindMemory {
				return s.errorf("operand %d: got %s for %q", i, inst.opKinds[i], op.token)
			}

			if err := s.memory(); err != nil {
				return err
			}
		case locVVVV:
			n, err := s.register(i, op)
			if err != nil {
				return err
			}

			s.setV(n)
		case locIs4:
			n, err := s.register(i, op)
			if err != nil {
				return err
			}

			s.addImmediate(uint64(n<<4), 1)
		case locOpcodeReg:
			n, err := s.register(i, op)
			if err != nil {
				return err
			}

			c.Opcode[enc.RegisterModifier-1] += byte(n & 7)
			s.setB(n, false)
		case locSTi:
			reg := inst.regs[i]
			if inst.opKinds[i] != OpKindRegister || !reg.IsST() {
				return s.errorf("operand %d: %s is not an FPU stack register", i, reg)
			}

			c.Opcode[enc.StackIndex-1] += byte(reg - ST0)
		case locFixed:
			if inst.opKinds[i] != OpKindRegister || inst.regs[i] != op.fixed {
				return s.errorf("operand %d: got %s, want %s", i, inst.regs[i], op.fixed)
			}
		case locImm:
			if err := s.immediate(i, op); err != nil {
				return err
			}
		case locBranch, locXbegin:
			kind := inst.opKinds[i]
			if !kind.IsNearBranch() || (op.loc == locBranch && kind != op.kind) {
				return s.errorf("operand %d: got %s, want a near branch", i, kind)
			}

			s.branchKind = kind
			s.branchSize = int(op.size)
			c.AddCodeOffset(0, s.branchSize)
		case locFar:
			if inst.opKinds[i] != op.kind {
				return s.errorf("operand %d: got %s, want %s", i, inst.opKinds[i], op.kind)
			}

			if op.size == 2 && inst.nearBranch > math.MaxUint16 {
				return s.errorf("far offset %#x does not fit in 16 bits", inst.nearBranch)
			}

			c.AddCodeOffset(inst.nearBranch, int(op.size))
			c.AddCodeOffset(uint64(inst.farSelector), 2)
		case locMoffs:
			if inst.opKinds[i] != OpKindMemory || inst.memBase != RegisterNone || inst.memIndex != RegisterNone {
				return s.errorf("operand %d: want a memory offset", i)
			}

			size := s.asize / 8
			if size < 8 && inst.memDispl>>(8*size) != 0 {
				return s.errorf("offset %#x does not fit in %d bits", inst.memDispl, s.asize)
			}

			c.AddDisplacement(inst.memDispl, size)
		case locSrcSI, locDstDI, locSegDI:
			base := OpKindMemorySegSI
			switch op.loc {
			case locDstDI:
				base = OpKindMemoryESDI
			case locSegDI:
				base = OpKindMemorySegDI
			}

			if want := stringKind(base, s.asize); inst.opKinds[i] != want {
				return s.errorf("operand %d: got %s, want %s", i, inst.opKinds[i], want)
			}
		case locXlat:
			if inst.opKinds[i] != OpKindMemory || inst.memBase != gpr(s.asize/8, 3, false) || inst.memIndex != AL {
				return s.errorf("operand %d: XLAT memory must be [rBX+AL]", i)
			}
		}
	}

	return nil
}

func (s *encodeState) addImmediate(v uint64, size int) {
	s.code.AddImmediate(v, size)
	if s.immSizes[0] == 0 {
		s.immSizes[0] = size
	} else {
		s.immSizes[1] = size
	}
}

func (s *encodeState) immediate(i int, op *operandDef) error {
	inst := s.inst
	if inst.opKinds[i] != op.kind {
		return s.errorf("operand %d: got %s, want %s", i, inst.opKinds[i], op.kind)
	}

	v := inst.Immediate(i)
	if op.size == 0 {
		if v != 1 {
			return s.errorf("operand %d: got %#x, want 1", i, v)
		}

		return nil
	}

	switch op.kind {
	case OpKindImmediate8to16, OpKindImmediate8to32, OpKindImmediate8to64:
		if int64(v) != int64(int8(v)) {
			return s.errorf("immediate %#x does not fit in a signed byte", v)
		}
	case OpKindImmediate32to64:
		if int64(v) != int64(int32(v)) {
			return s.errorf("immediate %#x does not fit in a signed doubleword", v)
		}
	}

	s.addImmediate(v, int(op.size))

	return nil
}

// fits returns whether v is a signed integer
// of the given size in bytes.
func fits(v int64, size int) bool {
	switch size {
	case 1:
		return v == int64(int8(v))
	case 2:
		return v == int64(int16(v))
	case 4:
		return v == int64(int32(v))
	}

	return true
}

// displN returns the disp8 scale factor.
func (s *encodeState) displN() int64 {
	inst := s.inst
	def := s.def
	switch s.kind {
	case opcode.KindEVEX:
		vsize := 128 << evexLL(s.enc)
		elem := def.memory.ElementSize() * 8
		bcst := inst.IsBroadcast()
		if bcst {
			elem = def.broadcast.Size() * 8
		}

		n, err := opcode.DisplacementCompression(def.tuple, vsize, s.enc.VEX_W && !s.enc.VEX_WIG, bcst, elem)
		if err != nil {
			return 1
		}

		return n
	case opcode.KindMVEX:
		return int64(max(mvexMemorySize(def.memory, inst.mvexConv).Size(), 1))
	}

	return 1
}

// displSize picks the displacement size: the
// smallest that can hold d, but no smaller
// than the instruction's recorded size.
func (s *encodeState) displSize(d int64, needed bool, wide int, n int64) int {
	hint := int(s.inst.memDisplSize)
	switch {
	case d == 0 && !needed && hint == 0:
		return 0
	case d%n == 0 && fits(d/n, 1) && hint <= 1:
		return 1
	}

	return wide
}

func (s *encodeState) addDisplacement(d int64, size int, n int64) {
	switch size {
	case 1:
		s.code.AddDisplacement(uint64(d/n), 1)
	case 2, 4:
		s.code.AddDisplacement(uint64(d), size)
	}
}

// memory encodes the ModR/M memory operand.
func (s *encodeState) memory() error {
	inst := s.inst
	c := &s.code
	scale := inst.memScale
	if scale == 0 {
		scale = 1
	}

	if scale&(scale-1) != 0 || scale > 8 {
		return s.errorf("invalid index scale %d", scale)
	}

	switch {
	case inst.memBase == RIP || inst.memBase == EIP:
		if inst.memIndex != RegisterNone {
			return s.errorf("IP-relative memory cannot be indexed")
		}

		d := int64(inst.memDispl)
		if !fits(d, 4) {
			return s.errorf("displacement %#x does not fit in 32 bits", inst.memDispl)
		}

		c.ModRM.SetMod(opcode.ModDereferenceRegister)
		c.ModRM.SetRM(opcode.RMDisplacementOnly32)
		c.AddDisplacement(uint64(d), 4)

		return nil
	case s.asize == 16:
		if s.info.vsib() != nil {
			return s.errorf("gathers and scatters cannot use 16-bit addressing")
		}

		if scale != 1 {
			return s.errorf("16-bit addressing cannot scale the index")
		}

		return s.memory16()
	}

	size := s.asize / 8
	base, index := inst.memBase, inst.memIndex
	vsib := s.info.vsib()
	if base != RegisterNone && !(base.IsGPR() && base.Size() == size) {
		return s.errorf("%s cannot be a base with %d-bit addressing", base, s.asize)
	}

	switch {
	case vsib != nil:
		if index == RegisterNone || index.info().kind != vsib.class {
			return s.errorf("%s cannot be the index of %q", index, vsib.token)
		}

		if index.Number() >= 16 && s.kind != opcode.KindEVEX && s.kind != opcode.KindMVEX {
			return s.errorf("%s needs an EVEX prefix", index)
		}
	case index != RegisterNone && (!(index.IsGPR() && index.Size() == size) || index.Number() == 4):
		return s.errorf("%s cannot be an index with %d-bit addressing", index, s.asize)
	}

	for _, reg := range []Register{base, index} {
		if reg != RegisterNone && reg.Number() >= 8 && !s.long {
			return s.errorf("%s needs 64-bit mode", reg)
		}
	}

	d := int64(inst.memDispl)
	switch {
	case s.asize == 32 && (fits(d, 4) || inst.memDispl <= math.MaxUint32):
		d = int64(int32(d))
	case !fits(d, 4):
		return s.errorf("displacement %#x does not fit in 32 bits", inst.memDispl)
	}

	sib := opcode.SIB(0)
	sib.SetScale(byte(bits.TrailingZeros8(scale)))
	sib.SetIndex(opcode.RMSIB)
	if index != RegisterNone {
		sib.SetIndex(byte(index.Number()))
		s.setX(index.Number())
		if vsib != nil {
			s.setVSIBHigh(index.Number())
		}
	}

	if base == RegisterNone {
		c.ModRM.SetMod(opcode.ModDereferenceRegister)
		if index == RegisterNone && scale == 1 && !s.long && vsib == nil {
			c.ModRM.SetRM(opcode.RMDisplacementOnly32)
		} else {
			c.ModRM.SetRM(opcode.RMSIB)
			sib.SetBase(opcode.RMDisplacementOnly32)
			c.SIB = sib
			c.UseSIB = true
		}

		c.AddDisplacement(uint64(d), 4)

		return nil
	}

	bn := base.Number()
	n := s.displN()
	dsize := s.displSize(d, bn&7 == 5, 4, n)
	switch dsize {
	case 0:
		c.ModRM.SetMod(opcode.ModDereferenceRegister)
	case 1:
		c.ModRM.SetMod(opcode.ModSmallDisplacedRegister)
	default:
		c.ModRM.SetMod(opcode.ModLargeDisplacedRegister)
	}

	if index != RegisterNone || bn&7 == 4 || scale != 1 || vsib != nil {
		c.ModRM.SetRM(opcode.RMSIB)
		sib.SetBase(byte(bn))
		c.SIB = sib
		c.UseSIB = true
	} else {
		c.ModRM.SetRM(byte(bn))
	}

	s.setB(bn, false)
	s.addDisplacement(d, dsize, n)

	return nil
}

// memory16 encodes a memory operand with
// 16-bit addressing.
func (s *encodeState) memory16() error {
	inst := s.inst
	c := &s.code
	base, index := inst.memBase, inst.memIndex
	if v := int64(inst.memDispl); v < math.MinInt16 || v > math.MaxUint16 {
		return s.errorf("displacement %#x does not fit in 16 bits", inst.memDispl)
	}

	d := int64(int16(inst.memDispl))
	if base == RegisterNone && index == RegisterNone {
		c.ModRM.SetMod(opcode.ModDereferenceRegister)
		c.ModRM.SetRM(opcode.RMDisplacementOnly16)
		c.AddDisplacement(uint64(d), 2)

		return nil
	}

	rm := -1
	for r := range base16 {
		if (base16[r] == base && index16[r] == index) || (base16[r] == index && index16[r] == base) {
			rm = r
			break
		}
	}

	if rm < 0 {
		return s.errorf("[%s+%s] cannot be encoded with 16-bit addressing", base, index)
	}

	n := s.displN()
	dsize := s.displSize(d, rm == opcode.RMDisplacementOnly16, 2, n)
	c.ModRM.SetMod(byte(min(dsize, 2)))
	c.ModRM.SetRM(byte(rm))
	s.addDisplacement(d, dsize, n)

	return nil
}

// vectorFields sets the masking, broadcast,
// rounding and conversion fields.
func (s *encodeState) vectorFields() error {
	inst := s.inst
	def := s.def
	c := &s.code
	memory := s.info.memOp >= 0 && inst.opKinds[s.info.memOp] == OpKindMemory
	masked := inst.opmask != RegisterNone
	if masked && (!inst.opmask.IsK() || inst.opmask == K0) {
		return s.errorf("%s cannot be an opmask", inst.opmask)
	}

	if masked && def.flags&flagOpmask == 0 {
		return s.errorf("opmask registers are not supported")
	}

	if s.info.vsib() != nil && memory {
		if s.kind == opcode.KindEVEX && !masked {
			return s.errorf("gathers and scatters need an opmask other than k0")
		}

		if !vsibRegistersDistinct(inst, s.info) {
			return s.errorf("the destination, index and mask registers must differ")
		}
	}

	switch {
	case inst.ZeroingMasking() && def.flags&flagZeroing == 0:
		return s.errorf("zeroing-masking is not supported")
	case inst.ZeroingMasking() && memory && s.info.memOp == 0:
		return s.errorf("zeroing-masking cannot be used with a memory destination")
	}

	switch s.kind {
	case opcode.KindEVEX:
		if masked {
			c.EVEX.SetAAA(byte(inst.opmask - K0))
		}

		c.EVEX.SetZ(inst.ZeroingMasking())
		switch {
		case inst.IsBroadcast():
			if !memory || def.flags&flagBroadcast == 0 {
				return s.errorf("broadcast is not supported")
			}

			c.EVEX.SetBr(true)
		case inst.rounding != RoundingControlNone:
			if memory || def.flags&flagRounding == 0 {
				return s.errorf("embedded rounding is not supported")
			}

			c.EVEX.SetBr(true)
			c.EVEX.SetLL(byte(inst.rounding - RoundingControlRoundToNearest))
		case inst.SuppressAllExceptions():
			if memory || def.flags&flagSAE == 0 {
				return s.errorf("suppress-all-exceptions is not supported")
			}

			c.EVEX.SetBr(true)
		}

		if inst.mvexConv != MvexRegMemConvNone || inst.IsMvexEvictionHint() {
			return s.errorf("MVEX fields need an MVEX prefix")
		}
	case opcode.KindMVEX:
		if masked {
			c.MVEX.SetKKK(byte(inst.opmask - K0))
		}

		if inst.IsBroadcast() {
			return s.errorf("MVEX broadcasts are memory conversions")
		}

		sss, e, err := s.mvexSSS(memory)
		if err != nil {
			return err
		}

		c.MVEX.SetSSS(sss)
		c.MVEX.SetE(e)
	default:
		switch {
		case masked, inst.ZeroingMasking(), inst.IsBroadcast(), inst.rounding != RoundingControlNone,
			inst.SuppressAllExceptions(), inst.mvexConv != MvexRegMemConvNone, inst.IsMvexEvictionHint():
			return s.errorf("vector fields need an EVEX or MVEX prefix")
		}
	}

	return nil
}

// mvexSSS returns the MVEX SSS and E fields.
func (s *encodeState) mvexSSS(memory bool) (sss byte, e bool, err error) {
	inst := s.inst
	def := s.def
	conv := inst.mvexConv
	if memory {
		switch {
		case inst.rounding != RoundingControlNone || inst.SuppressAllExceptions():
			return 0, false, s.errorf("rounding needs a register operand")
		case conv >= MvexRegMemConvMemConvNone:
			sss = byte(conv - MvexRegMemConvMemConvNone)
		case conv != MvexRegMemConvNone:
			return 0, false, s.errorf("%s needs a register operand", conv)
		}

		if !mvexConvValid(def, sss) {
			return 0, false, s.errorf("%s is not supported", conv)
		}

		return sss, inst.IsMvexEvictionHint(), nil
	}

	if inst.IsMvexEvictionHint() {
		return 0, false, s.errorf("eviction hints need a memory operand")
	}

	switch {
	case inst.rounding != RoundingControlNone:
		if def.flags&flagRounding == 0 {
			return 0, false, s.errorf("embedded rounding is not supported")
		}

		sss = byte(inst.rounding - RoundingControlRoundToNearest)
		if inst.SuppressAllExceptions() {
			sss |= 4
		}

		return sss, true, nil
	case inst.SuppressAllExceptions():
		if def.flags&(flagSAE|flagRounding) == 0 {
			return 0, false, s.errorf("suppress-all-exceptions is not supported")
		}

		return 4, true, nil
	case conv == MvexRegMemConvNone:
		return 0, false, nil
	case conv <= MvexRegMemConvRegSwizzleDddd:
		return byte(conv - MvexRegMemConvRegSwizzleNone), false, nil
	}

	return 0, false, s.errorf("%s needs a memory operand", conv)
}

// rex adds any REX prefix.
func (s *encodeState) rex() error {
	c := &s.code
	enc := s.enc
	if s.kind != opcode.KindLegacy {
		return nil
	}

	if s.long {
		if enc.REX_W || (enc.OperandSize == 64 && !enc.Default64 && !enc.Force64) {
			c.REX.SetW(true)
		}

		if enc.REX_R {
			c.REX.SetR(true)
		}

		if c.REX != 0 || enc.REX || s.rexReg {
			c.REX.SetOn()
		}
	}

	if c.REX != 0 && !s.long {
		return s.errorf("REX prefixes need 64-bit mode")
	}

	if s.highReg && c.REX != 0 {
		return s.errorf("AH, CH, DH and BH cannot be used with a REX prefix")
	}

	return nil
}

// branch fills in any relative branch, now
// that the length is known.
func (s *encodeState) branch() error {
	if s.branchSize == 0 {
		return nil
	}

	c := &s.code
	next := s.ip + uint64(c.Len())
	target := s.inst.nearBranch
	var rel int64
	switch s.branchKind {
	case OpKindNearBranch16:
		rel = int64(int16(uint16(target) - uint16(next)))
	case OpKindNearBranch32:
		rel = int64(int32(uint32(target) - uint32(next)))
	default:
		rel = int64(target - next)
	}

	if !fits(rel, s.branchSize) {
		return s.errorf("branch target %#x is out of range", target)
	}

	c.CodeOffsetLen = 0
	c.AddCodeOffset(uint64(rel), s.branchSize)

	return nil
}

// offsets returns the layout of the encoded
// instruction.
func (s *encodeState) offsets() ConstantOffsets {
	c := &s.code
	var o ConstantOffsets
	if c.DisplacementLen > 0 {
		o.DisplacementOffset = c.DisplacementOffset()
		o.DisplacementSize = c.DisplacementLen
	}

	if c.CodeOffsetLen > 0 {
		o.BranchOffset = c.DisplacementOffset() + c.DisplacementLen
		o.BranchSize = c.CodeOffsetLen
	}

	if s.immSizes[0] > 0 {
		o.ImmediateOffset = c.ImmediateOffset()
		o.ImmediateSize = s.immSizes[0]
	}

	if s.immSizes[1] > 0 {
		o.ImmediateOffset2 = o.ImmediateOffset + o.ImmediateSize
		o.ImmediateSize2 = s.immSizes[1]
	}

	return o
}
