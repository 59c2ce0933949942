// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"errors"
	"fmt"
	"io"

	"firefly-os.dev/x86/internal/opcode"
	"firefly-os.dev/x86/internal/optable"
)

// Decoder decodes a stream of machine code into
// instructions.
//
// The decoder reads bytes as it needs them, so
// decoding can stop at any instruction boundary
// without consuming bytes from the following
// instruction.
type Decoder struct {
	r       io.ByteReader
	bitness int
	options DecoderOptions
	table   *optable.Table

	ip      uint64
	pos     int
	buf     []byte // Bytes read from r but not yet consumed.
	srcErr  error  // Any error returned by r.
	lastErr DecoderError
}

// NewDecoder returns a decoder for the given
// mode: 16, 32 or 64 bits.
func NewDecoder(bitness int, r io.ByteReader, options DecoderOptions) *Decoder {
	switch bitness {
	case 16, 32, 64:
	default:
		panic(fmt.Sprintf("x86: invalid bitness %d", bitness))
	}

	if r == nil {
		panic("x86: NewDecoder called with a nil reader")
	}

	return &Decoder{
		r:       r,
		bitness: bitness,
		options: options,
		table:   decodeTable(),
	}
}

// Bitness returns the decoder's mode.
func (d *Decoder) Bitness() int { return d.bitness }

// Options returns the decoder's options.
func (d *Decoder) Options() DecoderOptions { return d.options }

// IP returns the address of the next
// instruction.
func (d *Decoder) IP() uint64 { return d.ip }

// SetIP sets the address of the next
// instruction.
func (d *Decoder) SetIP(ip uint64) { d.ip = ip }

// Position returns the number of bytes
// consumed so far.
func (d *Decoder) Position() int { return d.pos }

// LastError returns the result of the most
// recent call to Decode.
func (d *Decoder) LastError() DecoderError { return d.lastErr }

// Err returns any error other than io.EOF
// returned by the underlying reader.
func (d *Decoder) Err() error {
	if d.srcErr == nil || errors.Is(d.srcErr, io.EOF) {
		return nil
	}

	return d.srcErr
}

// fill ensures at least n unconsumed bytes are
// buffered, returning false if the input ends
// first.
func (d *Decoder) fill(n int) bool {
	for len(d.buf) < n {
		if d.srcErr != nil {
			return false
		}

		b, err := d.r.ReadByte()
		if err != nil {
			d.srcErr = err
			return false
		}

		d.buf = append(d.buf, b)
	}

	return true
}

// consume advances past n buffered bytes.
func (d *Decoder) consume(n int) {
	d.buf = d.buf[:copy(d.buf, d.buf[n:])]
	d.pos += n
	d.ip += uint64(n)
}

// CanDecode returns whether any input remains.
func (d *Decoder) CanDecode() bool {
	return d.fill(1)
}

// DecodeAll decodes instructions until the
// input is exhausted. An instruction truncated
// by the end of the input is returned as an
// INVALID instruction, as Decode does.
func (d *Decoder) DecodeAll() []Instruction {
	var insts []Instruction
	for d.CanDecode() {
		insts = append(insts, d.Decode())
	}

	return insts
}

// Decode decodes the next instruction.
//
// If the bytes do not form a valid instruction,
// Decode returns an INVALID instruction and
// LastError reports why. If the input ends
// before the instruction is complete, every
// remaining byte is consumed and LastError
// returns DecoderErrorNoMoreBytes.
func (d *Decoder) Decode() Instruction {
	if !d.fill(1) {
		d.lastErr = DecoderErrorNoMoreBytes
		return Instruction{ip: d.ip, codeSize: codeSizeOf(d.bitness)}
	}

	// A leading 9B is FWAIT, unless it is the
	// prefix opcode of an instruction such as
	// FSTENV.
	if d.buf[0] == opcode.FwaitOpcode {
		s := d.newState()
		s.fwait = 1
		s.n = 1
		s.decode()
		switch {
		case s.found && len(s.info.enc.PrefixOpcodes) > 0:
			return s.finish()
		case !s.found && s.eof && s.opKnown && fwaitOpcodes()[s.op]:
			return s.finish()
		}

		s = d.newState()
		s.n = 1
		s.setCode(Wait)
		return s.finish()
	}

	s := d.newState()
	s.decode()
	return s.finish()
}

func (d *Decoder) newState() *decodeState {
	s := &decodeState{
		d:     d,
		long:  d.bitness == 64,
		osize: d.bitness,
		asize: d.bitness,
	}

	s.inst.ip = d.ip
	s.inst.codeSize = codeSizeOf(d.bitness)

	return s
}

// decodeState holds the work in progress for
// one instruction.
type decodeState struct {
	d    *Decoder
	inst Instruction
	n    int // Bytes of d.buf used.
	long bool

	// Failures.
	eof     bool
	tooLong bool
	invalid bool

	// Legacy prefixes.
	fwait   int
	has66   bool
	has67   bool
	lock    bool
	lastRep byte
	seg     Register
	segFSGS bool
	rex     opcode.REX
	hasRex  bool

	// The opcode.
	kind    opcode.Kind
	root    int
	op      byte
	opKnown bool
	found   bool
	code    Code
	info    *codeInfo
	def     *opcodeDef

	// Sizes, in bits.
	osize int
	asize int

	// Vector prefix fields, decoded.
	mandatory int
	w         bool
	l         int
	r, x, b   bool
	rp        bool
	vvvv      int
	aaa       int
	z         bool
	bcst      bool
	ll        byte
	evictE    bool
	sss       byte

	modrm    opcode.ModRM
	hasModRM bool
	is4      int // The is4 byte, or -1.

	rel      uint64 // Relative branch displacement.
	relKind  OpKind
	hasRel   bool
	displN   int64 // disp8 scale.
	vvvvUsed bool
}

func (s *decodeState) failed() bool {
	return s.eof || s.tooLong
}

// read returns the next byte. At the end of the
// input, or past the length limit, it returns
// zero and records the failure.
func (s *decodeState) read() byte {
	if s.failed() {
		return 0
	}

	if s.n >= opcode.MaxInstructionLength {
		s.tooLong = true
		return 0
	}

	if !s.d.fill(s.n + 1) {
		s.eof = true
		return 0
	}

	b := s.d.buf[s.n]
	s.n++

	return b
}

// readN reads a little-endian value of n bytes.
func (s *decodeState) readN(n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		v |= uint64(s.read()) << (8 * i)
	}

	return v
}

func (s *decodeState) readModRM() bool {
	if !s.hasModRM {
		b := s.read()
		if s.failed() {
			return false
		}

		s.modrm = opcode.ModRM(b)
		s.hasModRM = true
	}

	return true
}

func (s *decodeState) setCode(code Code) {
	s.code = code
	s.info = code.info()
	s.def = code.def()
	s.found = true
	s.inst.code = code
}

// finish commits the bytes used and returns the
// instruction.
func (s *decodeState) finish() Instruction {
	d := s.d
	switch {
	case s.eof:
		// Consume everything that was available.
		d.lastErr = DecoderErrorNoMoreBytes
		n := len(d.buf)
		d.consume(n)
		return Instruction{ip: s.inst.ip, codeSize: s.inst.codeSize, length: uint8(n)}
	case s.tooLong || s.invalid || !s.found:
		d.lastErr = DecoderErrorInvalidInstruction
		n := max(s.n, 1)
		d.consume(n)
		return Instruction{ip: s.inst.ip, codeSize: s.inst.codeSize, length: uint8(n)}
	}

	d.lastErr = DecoderErrorNone
	s.inst.length = uint8(s.n)
	if s.hasRel {
		target := s.inst.NextIP() + s.rel
		switch s.relKind {
		case OpKindNearBranch16:
			target = uint64(uint16(target))
		case OpKindNearBranch32:
			target = uint64(uint32(target))
		}

		s.inst.nearBranch = target
	}

	d.consume(s.n)

	return s.inst
}

// decode decodes the instruction. On return,
// either s.found is set or a failure has been
// recorded.
func (s *decodeState) decode() {
	if !s.prefixes() {
		return
	}

	if !s.escape() || s.found {
		return
	}

	v, ok := s.d.table.Lookup(s.root, s.key)
	if !ok {
		if !s.failed() {
			s.invalid = true
		}

		return
	}

	s.setCode(Code(v))
	s.operands()
	if s.failed() || s.invalid {
		return
	}

	s.check()
}

// prefixes reads the legacy and REX prefixes,
// then the first opcode byte.
func (s *decodeState) prefixes() bool {
	for {
		b := s.read()
		if s.failed() {
			return false
		}

		if s.long && b&0xf0 == 0x40 {
			s.rex = opcode.REX(b)
			s.hasRex = true
			continue
		}

		switch b {
		case 0x26, 0x2e, 0x36, 0x3e:
			if !s.long || !s.segFSGS {
				s.seg = [...]Register{ES, CS, SS, DS}[(b>>3)&3]
			}
		case 0x64:
			s.seg, s.segFSGS = FS, true
		case 0x65:
			s.seg, s.segFSGS = GS, true
		case 0x66:
			s.has66 = true
		case 0x67:
			s.has67 = true
		case 0xf0:
			s.lock = true
		case 0xf2, 0xf3:
			s.lastRep = b
		default:
			s.op = b
			s.opKnown = true
			s.setSizes()
			return true
		}

		// REX is ignored unless it is the
		// last prefix.
		s.rex = 0
		s.hasRex = false
	}
}

func (s *decodeState) setSizes() {
	switch {
	case s.long:
		switch {
		case s.rex.W():
			s.osize = 64
		case s.has66:
			s.osize = 16
		default:
			s.osize = 32
		}

		s.asize = 64
		if s.has67 {
			s.asize = 32
		}
	default:
		if s.has66 {
			s.osize = 48 - s.osize
		}

		if s.has67 {
			s.asize = 48 - s.asize
		}
	}

	switch s.lastRep {
	case 0xf3:
		s.mandatory = optable.PrefixF3
	case 0xf2:
		s.mandatory = optable.PrefixF2
	default:
		if s.has66 {
			s.mandatory = optable.Prefix66
		}
	}

	s.r = s.rex.R()
	s.x = s.rex.X()
	s.b = s.rex.B()
	s.is4 = -1
}

// escape handles the map escapes and the
// vector prefixes, leaving s.op as the opcode
// byte within its map.
func (s *decodeState) escape() bool {
	s.kind = opcode.KindLegacy
	s.root = rootLegacy
	switch s.op {
	case opcode.TwoByteEscape:
		if !s.long && s.d.options.has(DecoderPopCS) {
			s.setCode(Popw_CS)
			s.inst.regs[0] = CS
			return true
		}

		b := s.read()
		switch b {
		case opcode.Map0F38Escape:
			s.root = rootLegacy + opcode.Map0F38
			s.op = s.read()
		case opcode.Map0F3AEscape:
			s.root = rootLegacy + opcode.Map0F3A
			s.op = s.read()
		default:
			s.root = rootLegacy + opcode.Map0F
			s.op = b
		}

		return !s.failed()
	case opcode.VEX2Escape, opcode.VEX3Escape, opcode.EVEXEscape, opcode.XOPEscape:
		next := s.read()
		if s.failed() {
			return false
		}

		legacy := false
		switch {
		case s.op == opcode.XOPEscape:
			legacy = next&0x1f < 8
		case !s.long:
			// LES, LDS and BOUND, unless the
			// ModR/M would name a register.
			legacy = next&0xc0 != 0xc0
		}

		if legacy {
			s.n--
			return true
		}

		if s.has66 || s.lastRep != 0 || s.hasRex || s.lock {
			s.invalid = true
		}

		return s.vector(next)
	}

	return true
}

// vector decodes a VEX, XOP, EVEX or MVEX prefix
// whose first payload byte is p0, then reads the
// opcode byte.
func (s *decodeState) vector(p0 byte) bool {
	switch s.op {
	case opcode.VEX2Escape, opcode.VEX3Escape, opcode.XOPEscape:
		var v opcode.VEX
		if s.op == opcode.VEX2Escape {
			v = opcode.DecodeVEX2(p0)
		} else {
			v = opcode.DecodeVEX3(p0, s.read())
		}

		s.kind = opcode.KindVEX
		if s.op == opcode.XOPEscape {
			s.kind = opcode.KindXOP
		}

		s.r, s.x, s.b = !v.R(), !v.X(), !v.B()
		s.w = v.W()
		s.l = optable.L128
		if v.L() {
			s.l = optable.L256
		}

		s.mandatory = int(v.PP())
		s.vvvv = int(^v.VVVV() & 0xf)
		s.root = rootOf(s.kind, v.M_MMMM())
	default:
		p1 := s.read()
		p2 := s.read()
		if s.failed() {
			return false
		}

		if p1&0x04 != 0 {
			e := opcode.EVEX{p0, p1, p2}
			s.kind = opcode.KindEVEX
			s.r, s.x, s.b, s.rp = !e.R(), !e.X(), !e.B(), !e.Rp()
			s.w = e.W()
			s.mandatory = int(e.PP())
			s.vvvv = int(^e.VVVV()&0xf) | int(b2k(!e.Vp()))<<4
			s.aaa = int(e.AAA())
			s.z = e.Z()
			s.bcst = e.Br()
			s.ll = e.LL()
			s.l = int(s.ll)
			s.root = rootOf(s.kind, e.MMM())
			if e.Reserved() {
				s.invalid = true
			}
		} else {
			m := opcode.MVEX{p0, p1, p2}
			s.kind = opcode.KindMVEX
			s.r, s.x, s.b, s.rp = !m.R(), !m.X(), !m.B(), !m.Rp()
			s.w = m.W()
			s.mandatory = int(m.PP())
			s.vvvv = int(^m.VVVV()&0xf) | int(b2k(!m.Vp()))<<4
			s.aaa = int(m.KKK())
			s.evictE = m.E()
			s.sss = m.SSS()
			s.root = rootOf(s.kind, m.MMMM())
			if !s.long || !s.d.options.has(DecoderKNC) {
				s.invalid = true
			}
		}
	}

	if !s.long {
		s.r, s.x, s.b, s.rp = false, false, false, false
		s.vvvv &= 7
	}

	s.op = s.read()
	if s.failed() {
		return false
	}

	if s.root < 0 {
		s.invalid = true
	}

	return !s.invalid
}

// key supplies the dispatch keys for the
// decode tree.
func (s *decodeState) key(field optable.Field, param uint8) int {
	switch field {
	case optable.FieldOpcode:
		return int(s.op)
	case optable.FieldOption:
		return b2k(s.d.options&(1<<param) != 0)
	case optable.FieldPrefixOpcode:
		return s.fwait
	case optable.FieldMode64:
		return b2k(s.long)
	case optable.FieldMandatoryPrefix:
		return s.mandatory
	case optable.FieldModRMReg, optable.FieldModRMMod, optable.FieldModRMRM:
		if !s.readModRM() {
			return -1
		}

		switch field {
		case optable.FieldModRMReg:
			return int(s.modrm.Reg())
		case optable.FieldModRMMod:
			return b2k(s.modrm.IsRegister())
		default:
			return int(s.modrm.RM())
		}
	case optable.FieldRexB:
		return b2k(s.rex.B())
	case optable.FieldW:
		return b2k(s.w)
	case optable.FieldL:
		// With a register operand, EVEX.b turns
		// L'L into the rounding mode and the
		// vector length is 512 bits.
		if s.kind == opcode.KindEVEX && s.bcst {
			if !s.readModRM() {
				return -1
			}

			if s.modrm.IsRegister() {
				return optable.L512
			}
		}

		return s.l
	case optable.FieldOperandSize:
		return sizeKey(s.osize)
	case optable.FieldAddressSize:
		return sizeKey(s.asize)
	}

	return -1
}

// memoryForm returns whether the ModR/M r/m
// field names memory for this code.
func (s *decodeState) memoryForm() bool {
	return s.info.memOp >= 0 && !s.modrm.IsRegister() && s.def.flags&flagModReg == 0
}

// operands reads the rest of the instruction
// and fills in the operands.
func (s *decodeState) operands() {
	enc := s.info.enc
	if enc.ModRM && !s.readModRM() {
		return
	}

	inst := &s.inst
	s.prepareVector()
	if s.invalid {
		return
	}

	// The SIB byte and displacement come
	// before any immediate.
	if s.hasModRM && s.memoryForm() {
		s.readMemory()
		if s.failed() {
			return
		}
	}

	for i := range s.info.ops {
		op := &s.info.ops[i]
		switch op.loc {
		case locReg:
			s.setRegister(i, op.class, int(s.modrm.Reg()), s.r, s.rp)
		case locRM, locMem, locRMReg:
			if s.memoryForm() {
				inst.opKinds[i] = OpKindMemory
				continue
			}

			if op.loc == locMem {
				s.invalid = true
				return
			}

			ext4 := s.kind == opcode.KindEVEX || s.kind == opcode.KindMVEX
			s.setRegister(i, op.class, int(s.modrm.RM()), s.b, ext4 && s.x)
		case locVVVV:
			s.vvvvUsed = true
			n := s.vvvv
			if op.class == regK {
				n &= 7
			}

			s.setRegisterNumber(i, op.class, n)
		case locIs4:
			if s.is4 < 0 {
				s.is4 = int(s.read())
			}

			n := s.is4 >> 4
			if !s.long {
				n &= 7
			}

			s.setRegisterNumber(i, op.class, n)
		case locOpcodeReg:
			s.setRegister(i, op.class, int(s.op&7), s.b, false)
		case locSTi:
			inst.regs[i] = ST0 + Register(s.modrm.RM())
		case locFixed:
			inst.regs[i] = op.fixed
		case locImm:
			s.readImmediate(i, op)
		case locBranch, locXbegin:
			kind := op.kind
			if op.loc == locXbegin {
				kind = OpKindNearBranch32
				if s.long {
					kind = OpKindNearBranch64
				}
			}

			inst.opKinds[i] = kind
			s.relKind = kind
			s.hasRel = true
			switch op.size {
			case 1:
				s.rel = uint64(int64(int8(s.read())))
			case 2:
				s.rel = uint64(int64(int16(s.readN(2))))
			default:
				s.rel = uint64(int64(int32(s.readN(4))))
			}
		case locFar:
			inst.opKinds[i] = op.kind
			inst.nearBranch = s.readN(int(op.size))
			inst.farSelector = uint16(s.readN(2))
		case locMoffs:
			inst.opKinds[i] = OpKindMemory
			inst.memScale = 1
			inst.memDisplSize = uint8(s.asize / 8)
			inst.memDispl = s.readN(s.asize / 8)
		case locSrcSI:
			inst.opKinds[i] = stringKind(OpKindMemorySegSI, s.asize)
			inst.memScale = 1
		case locDstDI:
			inst.opKinds[i] = stringKind(OpKindMemoryESDI, s.asize)
			inst.memScale = 1
		case locSegDI:
			inst.opKinds[i] = stringKind(OpKindMemorySegDI, s.asize)
			inst.memScale = 1
		case locXlat:
			inst.opKinds[i] = OpKindMemory
			inst.memBase = gpr(s.asize/8, 3, false)
			inst.memIndex = AL
			inst.memScale = 1
		}

		if s.invalid || s.failed() {
			return
		}
	}
}

// stringKind returns the string operand kind
// for the address size, given the 16-bit kind.
func stringKind(kind16 OpKind, asize int) OpKind {
	switch asize {
	case 32:
		return kind16 + 1
	case 64:
		return kind16 + 2
	}

	return kind16
}

func (s *decodeState) setRegister(i int, class registerKind, base int, ext3, ext4 bool) {
	n := base
	switch class {
	case regGPR8, regGPR16, regGPR32, regGPR64, regCR, regDR, regBND:
		n |= int(b2k(ext3)) << 3
	case regXMM, regYMM, regZMM:
		n |= int(b2k(ext3))<<3 | int(b2k(ext4))<<4
	}

	s.setRegisterNumber(i, class, n)
}

func (s *decodeState) setRegisterNumber(i int, class registerKind, n int) {
	if class == regDR && n >= 8 {
		s.invalid = true
		return
	}

	reg, ok := registerOf(class, n, s.hasRex)
	if !ok {
		s.invalid = true
		return
	}

	s.inst.regs[i] = reg
}

func (s *decodeState) readImmediate(i int, op *operandDef) {
	inst := &s.inst
	inst.opKinds[i] = op.kind
	switch op.kind {
	case OpKindImmediate8:
		if op.size == 0 {
			inst.immediate = 1
		} else {
			inst.immediate = uint64(s.read())
		}
	case OpKindImmediate8_2nd:
		inst.imm2 = s.read()
	case OpKindImmediate16:
		inst.immediate = s.readN(2)
	case OpKindImmediate32:
		inst.immediate = s.readN(4)
	case OpKindImmediate64:
		inst.immediate = s.readN(8)
	case OpKindImmediate8to16:
		inst.immediate = uint64(uint16(int16(int8(s.read()))))
	case OpKindImmediate8to32:
		inst.immediate = uint64(uint32(int32(int8(s.read()))))
	case OpKindImmediate8to64:
		inst.immediate = uint64(int64(int8(s.read())))
	case OpKindImmediate32to64:
		inst.immediate = uint64(int64(int32(s.readN(4))))
	}
}

// Registers for each 16-bit r/m encoding.
var (
	base16  = [8]Register{BX, BX, BP, BP, SI, DI, BP, BX}
	index16 = [8]Register{SI, DI, SI, DI, RegisterNone, RegisterNone, RegisterNone, RegisterNone}
)

// readMemory decodes a ModR/M memory operand,
// reading any SIB byte and displacement.
func (s *decodeState) readMemory() {
	inst := &s.inst
	mod, rm := s.modrm.Mod(), s.modrm.RM()
	inst.memScale = 1

	displSize := 0
	vsib := s.info.vsib()
	if vsib != nil && (s.asize == 16 || rm != 4) {
		s.invalid = true
		return
	}

	if s.asize == 16 {
		switch {
		case mod == 0 && rm == 6:
			displSize = 2
		default:
			inst.memBase = base16[rm]
			inst.memIndex = index16[rm]
			displSize = [4]int{0, 1, 2}[mod]
		}

		s.readDisplacement(displSize, displSize)
		return
	}

	size := s.asize / 8
	switch {
	case rm == 4:
		sib := opcode.SIB(s.read())
		inst.memScale = 1 << sib.Scale()
		index := int(sib.Index()) | b2k(s.x)<<3
		switch {
		case vsib != nil:
			// EVEX.V' extends the index, not vvvv.
			index |= s.vvvv & 16
			s.vvvv &^= 16
			reg, ok := registerOf(vsib.class, index, false)
			if !ok {
				s.invalid = true
				return
			}

			inst.memIndex = reg
		case index != 4:
			inst.memIndex = gpr(size, index, true)
		}

		if sib.Base() == 5 && mod == 0 {
			displSize = 4
		} else {
			inst.memBase = gpr(size, int(sib.Base())|b2k(s.b)<<3, true)
		}
	case mod == 0 && rm == 5:
		displSize = 4
		if s.long {
			inst.memBase = RIP
			if s.asize == 32 {
				inst.memBase = EIP
			}
		}
	default:
		inst.memBase = gpr(size, int(rm)|b2k(s.b)<<3, true)
	}

	switch mod {
	case 1:
		displSize = 1
	case 2:
		displSize = 4
	}

	recorded := displSize
	if displSize == 4 && (s.asize == 64 || inst.memBase == RIP) {
		recorded = 8
	}

	s.readDisplacement(displSize, recorded)
}

func (s *decodeState) readDisplacement(size, recorded int) {
	inst := &s.inst
	inst.memDisplSize = uint8(recorded)
	switch size {
	case 1:
		n := s.displN
		if n == 0 {
			n = 1
		}

		inst.memDispl = uint64(int64(int8(s.read())) * n)
	case 2:
		inst.memDispl = uint64(int64(int16(s.readN(2))))
	case 4:
		inst.memDispl = uint64(int64(int32(s.readN(4))))
	}
}

// prepareVector applies the EVEX and MVEX
// fields that affect the memory operand, and
// records the masking state.
func (s *decodeState) prepareVector() {
	inst := &s.inst
	def := s.def
	memory := s.hasModRM && s.memoryForm()
	switch s.kind {
	case opcode.KindEVEX:
		if s.aaa != 0 {
			inst.opmask = K0 + Register(s.aaa)
		}

		inst.setFlag(instZeroing, s.z)
		if s.bcst {
			switch {
			case memory:
				inst.flags |= instBroadcast
			case def.flags&flagRounding != 0:
				inst.rounding = RoundingControl(s.ll) + RoundingControlRoundToNearest
			default:
				inst.flags |= instSAE
			}
		}

		if memory {
			vsize := 128 << min(int(s.ll), 2)
			elem := def.memory.ElementSize() * 8
			if s.bcst {
				elem = def.broadcast.Size() * 8
			}

			n, err := opcode.DisplacementCompression(def.tuple, vsize, s.w, s.bcst, elem)
			if err != nil {
				n = 1
			}

			s.displN = n
		}
	case opcode.KindMVEX:
		if s.aaa != 0 {
			inst.opmask = K0 + Register(s.aaa)
		}

		switch {
		case memory:
			inst.setFlag(instEvictionHint, s.evictE)
			if !mvexConvValid(def, s.sss) {
				s.invalid = true
				return
			}

			if s.sss != 0 {
				inst.mvexConv = MvexRegMemConvMemConvNone + MvexRegMemConv(s.sss)
			}

			s.displN = int64(max(mvexMemorySize(def.memory, inst.mvexConv).Size(), 1))
		case s.evictE:
			switch {
			case def.flags&flagRounding != 0:
				inst.rounding = RoundingControl(s.sss&3) + RoundingControlRoundToNearest
				inst.setFlag(instSAE, s.sss&4 != 0)
			case def.flags&flagSAE != 0:
				inst.setFlag(instSAE, s.sss&4 != 0)
			default:
				s.invalid = true
			}
		case s.sss != 0:
			inst.mvexConv = MvexRegMemConvRegSwizzleNone + MvexRegMemConv(s.sss)
		}
	}
}

// mvexConvValid returns whether an MVEX memory
// conversion is defined for the instruction.
func mvexConvValid(def *opcodeDef, sss byte) bool {
	integer := !def.memory.ElementType().isFloat()
	switch def.conv {
	case convNone:
		return sss == 0
	case convInt:
		return sss != 3
	case convStore:
		return sss != 1 && sss != 2 && !(integer && sss == 3)
	}

	return true
}

// check applies the legality checks that
// depend on the decoded operands.
func (s *decodeState) check() {
	inst := &s.inst
	def := s.def
	enc := s.info.enc

	// Prefixes recorded on the instruction.
	inst.segPrefix = s.seg
	inst.setFlag(instLock, s.lock)
	if s.kind == opcode.KindLegacy && !enc.HasMandatoryPrefix(opcode.PrefixRepeat) && !enc.HasMandatoryPrefix(opcode.PrefixRepeatNot) {
		switch s.lastRep {
		case 0xf3:
			inst.flags |= instRepe
		case 0xf2:
			inst.flags |= instRepne
		}
	}

	// MOV cannot load CS.
	switch s.code {
	case Mov_Sreg_rm16, Mov_Sreg_r32m16, Mov_Sreg_r64m16:
		if inst.regs[0] == CS {
			s.invalid = true
			return
		}
	}

	// EVEX gathers and scatters need a mask
	// other than k0.
	vsib := s.info.vsib() != nil
	if vsib && s.kind == opcode.KindEVEX && s.aaa == 0 {
		s.invalid = true
		return
	}

	if s.d.options.has(DecoderNoInvalidCheck) {
		return
	}

	if vsib && !vsibRegistersDistinct(inst, s.info) {
		s.invalid = true
		return
	}

	memDest := s.info.memOp == 0 && inst.opKinds[0] == OpKindMemory
	if s.lock && (def.flags&flagLock == 0 || !memDest) {
		s.invalid = true
		return
	}

	switch s.kind {
	case opcode.KindEVEX, opcode.KindMVEX:
		switch {
		case s.aaa != 0 && def.flags&flagOpmask == 0:
			s.invalid = true
		case s.z && (def.flags&flagZeroing == 0 || memDest):
			s.invalid = true
		case s.kind == opcode.KindEVEX && s.bcst && inst.flags&instBroadcast != 0 && def.flags&flagBroadcast == 0:
			s.invalid = true
		case s.kind == opcode.KindEVEX && s.bcst && inst.flags&instBroadcast == 0 && def.flags&(flagRounding|flagSAE) == 0:
			s.invalid = true
		case !s.vvvvUsed && s.vvvv != 0:
			s.invalid = true
		}
	case opcode.KindVEX, opcode.KindXOP:
		if !s.vvvvUsed && s.vvvv != 0 {
			s.invalid = true
		}
	}
}

// vsibRegistersDistinct returns whether a
// gather's destination, index and VEX mask are
// different registers.
func vsibRegistersDistinct(inst *Instruction, info *codeInfo) bool {
	if info.memOp == 0 {
		return true // Scatter.
	}

	dest := inst.regs[0].Number()
	index := inst.memIndex.Number()
	if dest == index {
		return false
	}

	if info.kind() == EncodingKindVEX {
		mask := inst.regs[2].Number()
		return mask != dest && mask != index
	}

	return true
}
