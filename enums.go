// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
)

// MaxOpCount is the maximum number of operands
// an instruction can have.
const MaxOpCount = 5

// OpKind describes how an operand's value is
// stored in an Instruction.
type OpKind uint8

const (
	OpKindRegister OpKind = iota
	OpKindNearBranch16
	OpKindNearBranch32
	OpKindNearBranch64
	OpKindFarBranch16
	OpKindFarBranch32
	OpKindImmediate8
	OpKindImmediate8_2nd
	OpKindImmediate16
	OpKindImmediate32
	OpKindImmediate64
	OpKindImmediate8to16
	OpKindImmediate8to32
	OpKindImmediate8to64
	OpKindImmediate32to64
	OpKindMemorySegSI
	OpKindMemorySegESI
	OpKindMemorySegRSI
	OpKindMemorySegDI
	OpKindMemorySegEDI
	OpKindMemorySegRDI
	OpKindMemoryESDI
	OpKindMemoryESEDI
	OpKindMemoryESRDI
	OpKindMemory
	numOpKinds
)

var opKindNames = [numOpKinds]string{
	OpKindRegister:        "Register",
	OpKindNearBranch16:    "NearBranch16",
	OpKindNearBranch32:    "NearBranch32",
	OpKindNearBranch64:    "NearBranch64",
	OpKindFarBranch16:     "FarBranch16",
	OpKindFarBranch32:     "FarBranch32",
	OpKindImmediate8:      "Immediate8",
	OpKindImmediate8_2nd:  "Immediate8_2nd",
	OpKindImmediate16:     "Immediate16",
	OpKindImmediate32:     "Immediate32",
	OpKindImmediate64:     "Immediate64",
	OpKindImmediate8to16:  "Immediate8to16",
	OpKindImmediate8to32:  "Immediate8to32",
	OpKindImmediate8to64:  "Immediate8to64",
	OpKindImmediate32to64: "Immediate32to64",
	OpKindMemorySegSI:     "MemorySegSI",
	OpKindMemorySegESI:    "MemorySegESI",
	OpKindMemorySegRSI:    "MemorySegRSI",
	OpKindMemorySegDI:     "MemorySegDI",
	OpKindMemorySegEDI:    "MemorySegEDI",
	OpKindMemorySegRDI:    "MemorySegRDI",
	OpKindMemoryESDI:      "MemoryESDI",
	OpKindMemoryESEDI:     "MemoryESEDI",
	OpKindMemoryESRDI:     "MemoryESRDI",
	OpKindMemory:          "Memory",
}

func (k OpKind) String() string {
	if k < numOpKinds {
		return opKindNames[k]
	}

	return fmt.Sprintf("OpKind(%d)", k)
}

// IsImmediate returns whether the operand is
// an immediate value.
func (k OpKind) IsImmediate() bool {
	return OpKindImmediate8 <= k && k <= OpKindImmediate32to64
}

// IsNearBranch returns whether the operand is
// a near branch target.
func (k OpKind) IsNearBranch() bool {
	return OpKindNearBranch16 <= k && k <= OpKindNearBranch64
}

// IsMemory returns whether the operand refers
// to memory, including the string operation
// forms.
func (k OpKind) IsMemory() bool {
	return OpKindMemorySegSI <= k && k <= OpKindMemory
}

// isStringMemory returns whether the operand
// is one of the implicit rSI/rDI forms.
func (k OpKind) isStringMemory() bool {
	return OpKindMemorySegSI <= k && k <= OpKindMemoryESRDI
}

// OpAccess describes how an instruction uses
// an operand.
type OpAccess uint8

const (
	OpAccessNone          OpAccess = iota // Not used.
	OpAccessRead                          // Read.
	OpAccessCondRead                      // Possibly read.
	OpAccessWrite                         // Written.
	OpAccessCondWrite                     // Possibly written.
	OpAccessReadWrite                     // Read and written.
	OpAccessReadCondWrite                 // Read and possibly written.
	OpAccessNoMemAccess                   // A memory operand whose address is computed but not accessed.
	numOpAccesses
)

var opAccessNames = [numOpAccesses]string{
	OpAccessNone:          "None",
	OpAccessRead:          "Read",
	OpAccessCondRead:      "CondRead",
	OpAccessWrite:         "Write",
	OpAccessCondWrite:     "CondWrite",
	OpAccessReadWrite:     "ReadWrite",
	OpAccessReadCondWrite: "ReadCondWrite",
	OpAccessNoMemAccess:   "NoMemAccess",
}

func (a OpAccess) String() string {
	if a < numOpAccesses {
		return opAccessNames[a]
	}

	return fmt.Sprintf("OpAccess(%d)", a)
}

// reads returns whether the access may read
// the operand.
func (a OpAccess) reads() bool {
	switch a {
	case OpAccessRead, OpAccessCondRead, OpAccessReadWrite, OpAccessReadCondWrite:
		return true
	}

	return false
}

// writes returns whether the access may write
// the operand.
func (a OpAccess) writes() bool {
	switch a {
	case OpAccessWrite, OpAccessCondWrite, OpAccessReadWrite, OpAccessReadCondWrite:
		return true
	}

	return false
}

// FlowControl classifies the effect an
// instruction has on the instruction pointer.
type FlowControl uint8

const (
	FlowControlNext FlowControl = iota
	FlowControlUnconditionalBranch
	FlowControlIndirectBranch
	FlowControlConditionalBranch
	FlowControlReturn
	FlowControlCall
	FlowControlIndirectCall
	FlowControlInterrupt
	FlowControlXbeginXabortXend
	FlowControlException
	numFlowControls
)

var flowControlNames = [numFlowControls]string{
	FlowControlNext:                "Next",
	FlowControlUnconditionalBranch: "UnconditionalBranch",
	FlowControlIndirectBranch:      "IndirectBranch",
	FlowControlConditionalBranch:   "ConditionalBranch",
	FlowControlReturn:              "Return",
	FlowControlCall:                "Call",
	FlowControlIndirectCall:        "IndirectCall",
	FlowControlInterrupt:           "Interrupt",
	FlowControlXbeginXabortXend:    "XbeginXabortXend",
	FlowControlException:           "Exception",
}

func (f FlowControl) String() string {
	if f < numFlowControls {
		return flowControlNames[f]
	}

	return fmt.Sprintf("FlowControl(%d)", f)
}

// ConditionCode is the condition tested by a
// Jcc, SETcc or CMOVcc instruction.
type ConditionCode uint8

const (
	ConditionCodeNone ConditionCode = iota
	ConditionCodeO
	ConditionCodeNO
	ConditionCodeB
	ConditionCodeAE
	ConditionCodeE
	ConditionCodeNE
	ConditionCodeBE
	ConditionCodeA
	ConditionCodeS
	ConditionCodeNS
	ConditionCodeP
	ConditionCodeNP
	ConditionCodeL
	ConditionCodeGE
	ConditionCodeLE
	ConditionCodeG
	numConditionCodes
)

var conditionCodeNames = [numConditionCodes]string{
	"none", "o", "no", "b", "ae", "e", "ne", "be", "a",
	"s", "ns", "p", "np", "l", "ge", "le", "g",
}

func (c ConditionCode) String() string {
	if c < numConditionCodes {
		return conditionCodeNames[c]
	}

	return fmt.Sprintf("ConditionCode(%d)", c)
}

// Negate returns the opposite condition.
func (c ConditionCode) Negate() ConditionCode {
	if c == ConditionCodeNone || c >= numConditionCodes {
		return c
	}

	// The conditions come in pairs, with the
	// negated form second.
	return ((c - 1) ^ 1) + 1
}

// EncodingKind identifies an instruction's
// encoding family.
type EncodingKind uint8

const (
	EncodingKindLegacy EncodingKind = iota
	EncodingKindVEX
	EncodingKindEVEX
	EncodingKindXOP
	EncodingKindMVEX
	numEncodingKinds
)

var encodingKindNames = [numEncodingKinds]string{
	EncodingKindLegacy: "Legacy",
	EncodingKindVEX:    "VEX",
	EncodingKindEVEX:   "EVEX",
	EncodingKindXOP:    "XOP",
	EncodingKindMVEX:   "MVEX",
}

func (k EncodingKind) String() string {
	if k < numEncodingKinds {
		return encodingKindNames[k]
	}

	return fmt.Sprintf("EncodingKind(%d)", k)
}

// CodeSize records the mode an instruction
// was decoded in.
type CodeSize uint8

const (
	CodeSizeUnknown CodeSize = iota
	CodeSize16
	CodeSize32
	CodeSize64
)

func (s CodeSize) String() string {
	switch s {
	case CodeSizeUnknown:
		return "Unknown"
	case CodeSize16:
		return "16"
	case CodeSize32:
		return "32"
	case CodeSize64:
		return "64"
	default:
		return fmt.Sprintf("CodeSize(%d)", s)
	}
}

// Bits returns the code size in bits, or
// zero if it is unknown.
func (s CodeSize) Bits() int {
	switch s {
	case CodeSize16:
		return 16
	case CodeSize32:
		return 32
	case CodeSize64:
		return 64
	}

	return 0
}

func codeSizeOf(bitness int) CodeSize {
	switch bitness {
	case 16:
		return CodeSize16
	case 32:
		return CodeSize32
	case 64:
		return CodeSize64
	}

	return CodeSizeUnknown
}

// DecoderError describes why the last call to
// Decoder.Decode failed.
type DecoderError uint8

const (
	DecoderErrorNone DecoderError = iota
	DecoderErrorInvalidInstruction
	DecoderErrorNoMoreBytes
)

func (e DecoderError) String() string {
	switch e {
	case DecoderErrorNone:
		return "None"
	case DecoderErrorInvalidInstruction:
		return "InvalidInstruction"
	case DecoderErrorNoMoreBytes:
		return "NoMoreBytes"
	default:
		return fmt.Sprintf("DecoderError(%d)", e)
	}
}

// RoundingControl is the static rounding mode
// of an EVEX or MVEX instruction.
type RoundingControl uint8

const (
	RoundingControlNone RoundingControl = iota
	RoundingControlRoundToNearest
	RoundingControlRoundDown
	RoundingControlRoundUp
	RoundingControlRoundTowardZero
)

func (r RoundingControl) String() string {
	switch r {
	case RoundingControlNone:
		return "None"
	case RoundingControlRoundToNearest:
		return "RoundToNearest"
	case RoundingControlRoundDown:
		return "RoundDown"
	case RoundingControlRoundUp:
		return "RoundUp"
	case RoundingControlRoundTowardZero:
		return "RoundTowardZero"
	default:
		return fmt.Sprintf("RoundingControl(%d)", r)
	}
}

// MvexRegMemConv is the register swizzle or
// memory conversion selected by an MVEX
// instruction's SSS field.
type MvexRegMemConv uint8

const (
	MvexRegMemConvNone MvexRegMemConv = iota
	MvexRegMemConvRegSwizzleNone
	MvexRegMemConvRegSwizzleCdab
	MvexRegMemConvRegSwizzleBadc
	MvexRegMemConvRegSwizzleDacb
	MvexRegMemConvRegSwizzleAaaa
	MvexRegMemConvRegSwizzleBbbb
	MvexRegMemConvRegSwizzleCccc
	MvexRegMemConvRegSwizzleDddd
	MvexRegMemConvMemConvNone
	MvexRegMemConvMemConvBroadcast1
	MvexRegMemConvMemConvBroadcast4
	MvexRegMemConvMemConvFloat16
	MvexRegMemConvMemConvUint8
	MvexRegMemConvMemConvSint8
	MvexRegMemConvMemConvUint16
	MvexRegMemConvMemConvSint16
	numMvexRegMemConvs
)

var mvexRegMemConvNames = [numMvexRegMemConvs]string{
	"None",
	"RegSwizzleNone", "RegSwizzleCdab", "RegSwizzleBadc", "RegSwizzleDacb",
	"RegSwizzleAaaa", "RegSwizzleBbbb", "RegSwizzleCccc", "RegSwizzleDddd",
	"MemConvNone", "MemConvBroadcast1", "MemConvBroadcast4", "MemConvFloat16",
	"MemConvUint8", "MemConvSint8", "MemConvUint16", "MemConvSint16",
}

func (c MvexRegMemConv) String() string {
	if c < numMvexRegMemConvs {
		return mvexRegMemConvNames[c]
	}

	return fmt.Sprintf("MvexRegMemConv(%d)", c)
}

// RepPrefixKind identifies a repeat prefix.
type RepPrefixKind uint8

const (
	RepPrefixNone RepPrefixKind = iota
	RepPrefixRepe
	RepPrefixRepne
)
