// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"slices"

	"firefly-os.dev/x86/internal/opcode"
)

// word returns one of the packed info words for
// the code.
func (c Code) word(i int) uint32 {
	c.def() // Check the range.
	return infoData().data[infoWordsPerCode*int(c)+i]
}

// Mnemonic returns the code's mnemonic.
func (c Code) Mnemonic() Mnemonic { return c.def().mnemonic }

// Encoding returns the code's encoding family.
func (c Code) Encoding() EncodingKind {
	return EncodingKind(c.word(0) >> infoKindShift & infoKindMask)
}

// FlowControl returns the code's effect on the
// instruction pointer.
func (c Code) FlowControl() FlowControl {
	return FlowControl(c.word(0) >> infoFlowShift & infoFlowMask)
}

// ConditionCode returns the condition tested by
// the code, if any.
func (c Code) ConditionCode() ConditionCode { return c.def().cc }

// CpuidFeatures returns the CPUID features
// needed to execute the code. The result must
// not be modified.
func (c Code) CpuidFeatures() []CpuidFeature {
	return infoData().cpuidSets[c.word(1)>>infoCpuidShift&infoCpuidMask]
}

// IsPrivileged returns whether the code can only
// be executed at CPL 0.
func (c Code) IsPrivileged() bool { return c.word(0)&infoPrivileged != 0 }

// IsProtectedMode returns whether the code can
// only be executed in protected mode.
func (c Code) IsProtectedMode() bool { return c.word(0)&infoProtected != 0 }

// IsStackInstruction returns whether the code
// reads or writes the stack pointer.
func (c Code) IsStackInstruction() bool { return c.word(0)&infoStack != 0 }

// IsSaveRestoreInstruction returns whether the
// code saves or restores many registers, like
// FXSAVE and XRSTOR.
func (c Code) IsSaveRestoreInstruction() bool { return c.word(0)&infoSaveRestore != 0 }

// IsJccShortOrNear returns whether the code is a
// conditional near branch.
func (c Code) IsJccShortOrNear() bool {
	return c.FlowControl() == FlowControlConditionalBranch && c.ConditionCode() != ConditionCodeNone &&
		c.OpCount() == 1 && c.info().ops[0].loc == locBranch
}

// OpCount returns the number of operands.
func (c Code) OpCount() int { return len(c.info().ops) }

// Modes returns the code sizes in which the
// code can be decoded.
func (c Code) Modes() []CodeSize {
	var modes []CodeSize
	for _, size := range []CodeSize{CodeSize16, CodeSize32, CodeSize64} {
		if c.def().modes.has(size.Bits()) {
			modes = append(modes, size)
		}
	}

	return modes
}

// operandAccess returns the static access
// pattern for the operands.
func (c Code) operandAccess() []OpAccess {
	return infoData().access[c.word(1)&infoAccessMask]
}

func (c Code) rflags() rflagsInfo {
	return infoData().rflags[c.word(1)>>infoRflagsShift&infoRflagsMask]
}

// RflagsRead returns the flags the code reads.
func (c Code) RflagsRead() RflagsBits { return c.rflags().read }

// RflagsWritten returns the flags the code sets
// to a computed value.
func (c Code) RflagsWritten() RflagsBits { return c.rflags().written }

// RflagsCleared returns the flags the code
// always clears.
func (c Code) RflagsCleared() RflagsBits { return c.rflags().cleared }

// RflagsSet returns the flags the code always
// sets.
func (c Code) RflagsSet() RflagsBits { return c.rflags().set }

// RflagsUndefined returns the flags the code
// leaves undefined.
func (c Code) RflagsUndefined() RflagsBits { return c.rflags().undefined }

// RflagsModified returns every flag the code
// writes, clears, sets or leaves undefined.
func (c Code) RflagsModified() RflagsBits { return c.rflags().modified() }

// OpCodeInfo describes how a code is encoded.
type OpCodeInfo struct {
	Code         Code
	Mnemonic     Mnemonic
	Encoding     EncodingKind
	Syntax       string   // Intel-style encoding, such as "o32 01 /r".
	Operands     []string // Operand tokens, in order.
	Modes        []CodeSize
	MemorySize   MemorySize
	Broadcast    MemorySize
	Tuple        opcode.TupleType
	CanLock      bool
	CanRep       bool
	CanRepne     bool
	CanBnd       bool
	CanXacquire  bool
	CanXrelease  bool
	CanOpmask    bool
	CanZeroing   bool
	CanBroadcast bool
	CanRounding  bool
	CanSAE       bool
	Options      DecoderOptions // Options that must be set to decode it.
}

// OpCode returns the code's encoding details.
func (c Code) OpCode() *OpCodeInfo {
	def := c.def()
	info := c.info()
	oc := &OpCodeInfo{
		Code:         c,
		Mnemonic:     def.mnemonic,
		Encoding:     c.Encoding(),
		Syntax:       def.encoding,
		Modes:        c.Modes(),
		MemorySize:   def.memory,
		Broadcast:    def.broadcast,
		Tuple:        def.tuple,
		CanLock:      def.flags&flagLock != 0,
		CanRep:       def.flags&flagRep != 0,
		CanRepne:     def.flags&flagRepne != 0,
		CanBnd:       def.flags&flagBnd != 0,
		CanXacquire:  def.flags&flagXacquire != 0,
		CanXrelease:  def.flags&(flagXrelease|flagHLENoLock) != 0,
		CanOpmask:    def.flags&flagOpmask != 0,
		CanZeroing:   def.flags&flagZeroing != 0,
		CanBroadcast: def.flags&flagBroadcast != 0,
		CanRounding:  def.flags&flagRounding != 0,
		CanSAE:       def.flags&flagSAE != 0,
		Options:      def.options,
	}

	for _, op := range info.ops {
		oc.Operands = append(oc.Operands, op.token)
	}

	return oc
}

// MatchMachineCode checks that data holds the
// prefixes, escape bytes and opcode that c is
// encoded with. Operands are not checked.
func (c Code) MatchMachineCode(data []byte) error {
	enc := c.info().enc
	if enc == nil {
		return fmt.Errorf("%s has no machine code", c)
	}

	if m := enc.MatchesMachineCode(data); m != opcode.Match {
		return fmt.Errorf("% x is not %s: %s", data, c, m)
	}

	return nil
}

// CodesFor returns the codes with the given
// mnemonic, in Code order.
func CodesFor(m Mnemonic) []Code {
	var codes []Code
	for c := Code(0); c < NumberOfCodeValues; c++ {
		if c.def().mnemonic == m {
			codes = append(codes, c)
		}
	}

	return slices.Clip(codes)
}
