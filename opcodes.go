// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"firefly-os.dev/x86/internal/opcode"
)

// opcodeDefs describes every instruction, in Code
// order. Operands, access, rflags and implied
// effects use the notation parsed in opdef.go.
var opcodeDefs = [NumberOfCodeValues]opcodeDef{
	INVALID: {mnemonic: MnemonicINVALID},
	DeclareByte: {mnemonic: MnemonicDb},
	DeclareWord: {mnemonic: MnemonicDw},
	DeclareDword: {mnemonic: MnemonicDd},
	DeclareQword: {mnemonic: MnemonicDq},
	Zero_bytes: {mnemonic: MnemonicZero_bytes},
	Add_rm8_r8: {mnemonic: MnemonicAdd, encoding: "00 /r", modes: modesAny, operands: "rm8 r8", access: "rw r", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Add_rm16_r16: {mnemonic: MnemonicAdd, encoding: "o16 01 /r", modes: modesAny, operands: "rm16 r16", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Add_rm32_r32: {mnemonic: MnemonicAdd, encoding: "o32 01 /r", modes: modesAny, operands: "rm32 r32", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszapc"},
	Add_rm64_r64: {mnemonic: MnemonicAdd, encoding: "REX.W 01 /r", modes: modesLong, operands: "rm64 r64", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszapc"},
	Add_r8_rm8: {mnemonic: MnemonicAdd, encoding: "02 /r", modes: modesAny, operands: "r8 rm8", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Add_r16_rm16: {mnemonic: MnemonicAdd, encoding: "o16 03 /r", modes: modesAny, operands: "r16 rm16", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Add_r32_rm32: {mnemonic: MnemonicAdd, encoding: "o32 03 /r", modes: modesAny, operands: "r32 rm32", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszapc"},
	Add_r64_rm64: {mnemonic: MnemonicAdd, encoding: "REX.W 03 /r", modes: modesLong, operands: "r64 rm64", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszapc"},
	Add_AL_imm8: {mnemonic: MnemonicAdd, encoding: "04 ib", modes: modesAny, operands: "AL ib", access: "rw r", cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Add_AX_imm16: {mnemonic: MnemonicAdd, encoding: "o16 05 iw", modes: modesAny, operands: "AX iw", access: "rw r", cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Add_EAX_imm32: {mnemonic: MnemonicAdd, encoding: "o32 05 id", modes: modesAny, operands: "EAX id", access: "rw r", cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszapc"},
	Add_RAX_imm32: {mnemonic: MnemonicAdd, encoding: "REX.W 05 id", modes: modesLong, operands: "RAX id64", access: "rw r", cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszapc"},
	Or_rm8_r8: {mnemonic: MnemonicOr, encoding: "08 /r", modes: modesAny, operands: "rm8 r8", access: "rw r", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Or_rm16_r16: {mnemonic: MnemonicOr, encoding: "o16 09 /r", modes: modesAny, operands: "rm16 r16", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Or_rm32_r32: {mnemonic: MnemonicOr, encoding: "o32 09 /r", modes: modesAny, operands: "rm32 r32", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szp c=oc u=a"},
	Or_rm64_r64: {mnemonic: MnemonicOr, encoding: "REX.W 09 /r", modes: modesLong, operands: "rm64 r64", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szp c=oc u=a"},
	Or_r8_rm8: {mnemonic: MnemonicOr, encoding: "0A /r", modes: modesAny, operands: "r8 rm8", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Or_r16_rm16: {mnemonic: MnemonicOr, encoding: "o16 0B /r", modes: modesAny, operands: "r16 rm16", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Or_r32_rm32: {mnemonic: MnemonicOr, encoding: "o32 0B /r", modes: modesAny, operands: "r32 rm32", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szp c=oc u=a"},
	Or_r64_rm64: {mnemonic: MnemonicOr, encoding: "REX.W 0B /r", modes: modesLong, operands: "r64 rm64", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szp c=oc u=a"},
	Or_AL_imm8: {mnemonic: MnemonicOr, encoding: "0C ib", modes: modesAny, operands: "AL ib", access: "rw r", cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Or_AX_imm16: {mnemonic: MnemonicOr, encoding: "o16 0D iw", modes: modesAny, operands: "AX iw", access: "rw r", cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Or_EAX_imm32: {mnemonic: MnemonicOr, encoding: "o32 0D id", modes: modesAny, operands: "EAX id", access: "rw r", cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szp c=oc u=a"},
	Or_RAX_imm32: {mnemonic: MnemonicOr, encoding: "REX.W 0D id", modes: modesLong, operands: "RAX id64", access: "rw r", cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szp c=oc u=a"},
	Adc_rm8_r8: {mnemonic: MnemonicAdc, encoding: "10 /r", modes: modesAny, operands: "rm8 r8", access: "rw r", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=oszapc"},
	Adc_rm16_r16: {mnemonic: MnemonicAdc, encoding: "o16 11 /r", modes: modesAny, operands: "rm16 r16", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=oszapc"},
	Adc_rm32_r32: {mnemonic: MnemonicAdc, encoding: "o32 11 /r", modes: modesAny, operands: "rm32 r32", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "r=c w=oszapc"},
	Adc_rm64_r64: {mnemonic: MnemonicAdc, encoding: "REX.W 11 /r", modes: modesLong, operands: "rm64 r64", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "r=c w=oszapc"},
	Adc_r8_rm8: {mnemonic: MnemonicAdc, encoding: "12 /r", modes: modesAny, operands: "r8 rm8", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=oszapc"},
	Adc_r16_rm16: {mnemonic: MnemonicAdc, encoding: "o16 13 /r", modes: modesAny, operands: "r16 rm16", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=oszapc"},
	Adc_r32_rm32: {mnemonic: MnemonicAdc, encoding: "o32 13 /r", modes: modesAny, operands: "r32 rm32", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "r=c w=oszapc"},
	Adc_r64_rm64: {mnemonic: MnemonicAdc, encoding: "REX.W 13 /r", modes: modesLong, operands: "r64 rm64", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "r=c w=oszapc"},
	Adc_AL_imm8: {mnemonic: MnemonicAdc, encoding: "14 ib", modes: modesAny, operands: "AL ib", access: "rw r", cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=oszapc"},
	Adc_AX_imm16: {mnemonic: MnemonicAdc, encoding: "o16 15 iw", modes: modesAny, operands: "AX iw", access: "rw r", cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=oszapc"},
	Adc_EAX_imm32: {mnemonic: MnemonicAdc, encoding: "o32 15 id", modes: modesAny, operands: "EAX id", access: "rw r", cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "r=c w=oszapc"},
	Adc_RAX_imm32: {mnemonic: MnemonicAdc, encoding: "REX.W 15 id", modes: modesLong, operands: "RAX id64", access: "rw r", cpuid: []CpuidFeature{CpuidX64}, rflags: "r=c w=oszapc"},
	Sbb_rm8_r8: {mnemonic: MnemonicSbb, encoding: "18 /r", modes: modesAny, operands: "rm8 r8", access: "rw r", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=oszapc"},
	Sbb_rm16_r16: {mnemonic: MnemonicSbb, encoding: "o16 19 /r", modes: modesAny, operands: "rm16 r16", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=oszapc"},
	Sbb_rm32_r32: {mnemonic: MnemonicSbb, encoding: "o32 19 /r", modes: modesAny, operands: "rm32 r32", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "r=c w=oszapc"},
	Sbb_rm64_r64: {mnemonic: MnemonicSbb, encoding: "REX.W 19 /r", modes: modesLong, operands: "rm64 r64", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "r=c w=oszapc"},
	Sbb_r8_rm8: {mnemonic: MnemonicSbb, encoding: "1A /r", modes: modesAny, operands: "r8 rm8", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=oszapc"},
	Sbb_r16_rm16: {mnemonic: MnemonicSbb, encoding: "o16 1B /r", modes: modesAny, operands: "r16 rm16", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=oszapc"},
	Sbb_r32_rm32: {mnemonic: MnemonicSbb, encoding: "o32 1B /r", modes: modesAny, operands: "r32 rm32", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "r=c w=oszapc"},
	Sbb_r64_rm64: {mnemonic: MnemonicSbb, encoding: "REX.W 1B /r", modes: modesLong, operands: "r64 rm64", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "r=c w=oszapc"},
	Sbb_AL_imm8: {mnemonic: MnemonicSbb, encoding: "1C ib", modes: modesAny, operands: "AL ib", access: "rw r", cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=oszapc"},
	Sbb_AX_imm16: {mnemonic: MnemonicSbb, encoding: "o16 1D iw", modes: modesAny, operands: "AX iw", access: "rw r", cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=oszapc"},
	Sbb_EAX_imm32: {mnemonic: MnemonicSbb, encoding: "o32 1D id", modes: modesAny, operands: "EAX id", access: "rw r", cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "r=c w=oszapc"},
	Sbb_RAX_imm32: {mnemonic: MnemonicSbb, encoding: "REX.W 1D id", modes: modesLong, operands: "RAX id64", access: "rw r", cpuid: []CpuidFeature{CpuidX64}, rflags: "r=c w=oszapc"},
	And_rm8_r8: {mnemonic: MnemonicAnd, encoding: "20 /r", modes: modesAny, operands: "rm8 r8", access: "rw r", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	And_rm16_r16: {mnemonic: MnemonicAnd, encoding: "o16 21 /r", modes: modesAny, operands: "rm16 r16", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	And_rm32_r32: {mnemonic: MnemonicAnd, encoding: "o32 21 /r", modes: modesAny, operands: "rm32 r32", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szp c=oc u=a"},
	And_rm64_r64: {mnemonic: MnemonicAnd, encoding: "REX.W 21 /r", modes: modesLong, operands: "rm64 r64", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szp c=oc u=a"},
	And_r8_rm8: {mnemonic: MnemonicAnd, encoding: "22 /r", modes: modesAny, operands: "r8 rm8", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	And_r16_rm16: {mnemonic: MnemonicAnd, encoding: "o16 23 /r", modes: modesAny, operands: "r16 rm16", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	And_r32_rm32: {mnemonic: MnemonicAnd, encoding: "o32 23 /r", modes: modesAny, operands: "r32 rm32", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szp c=oc u=a"},
	And_r64_rm64: {mnemonic: MnemonicAnd, encoding: "REX.W 23 /r", modes: modesLong, operands: "r64 rm64", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szp c=oc u=a"},
	And_AL_imm8: {mnemonic: MnemonicAnd, encoding: "24 ib", modes: modesAny, operands: "AL ib", access: "rw r", cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	And_AX_imm16: {mnemonic: MnemonicAnd, encoding: "o16 25 iw", modes: modesAny, operands: "AX iw", access: "rw r", cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	And_EAX_imm32: {mnemonic: MnemonicAnd, encoding: "o32 25 id", modes: modesAny, operands: "EAX id", access: "rw r", cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szp c=oc u=a"},
	And_RAX_imm32: {mnemonic: MnemonicAnd, encoding: "REX.W 25 id", modes: modesLong, operands: "RAX id64", access: "rw r", cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szp c=oc u=a"},
	Sub_rm8_r8: {mnemonic: MnemonicSub, encoding: "28 /r", modes: modesAny, operands: "rm8 r8", access: "rw r", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Sub_rm16_r16: {mnemonic: MnemonicSub, encoding: "o16 29 /r", modes: modesAny, operands: "rm16 r16", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Sub_rm32_r32: {mnemonic: MnemonicSub, encoding: "o32 29 /r", modes: modesAny, operands: "rm32 r32", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszapc"},
	Sub_rm64_r64: {mnemonic: MnemonicSub, encoding: "REX.W 29 /r", modes: modesLong, operands: "rm64 r64", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszapc"},
	Sub_r8_rm8: {mnemonic: MnemonicSub, encoding: "2A /r", modes: modesAny, operands: "r8 rm8", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Sub_r16_rm16: {mnemonic: MnemonicSub, encoding: "o16 2B /r", modes: modesAny, operands: "r16 rm16", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Sub_r32_rm32: {mnemonic: MnemonicSub, encoding: "o32 2B /r", modes: modesAny, operands: "r32 rm32", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszapc"},
	Sub_r64_rm64: {mnemonic: MnemonicSub, encoding: "REX.W 2B /r", modes: modesLong, operands: "r64 rm64", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszapc"},
	Sub_AL_imm8: {mnemonic: MnemonicSub, encoding: "2C ib", modes: modesAny, operands: "AL ib", access: "rw r", cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Sub_AX_imm16: {mnemonic: MnemonicSub, encoding: "o16 2D iw", modes: modesAny, operands: "AX iw", access: "rw r", cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Sub_EAX_imm32: {mnemonic: MnemonicSub, encoding: "o32 2D id", modes: modesAny, operands: "EAX id", access: "rw r", cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszapc"},
	Sub_RAX_imm32: {mnemonic: MnemonicSub, encoding: "REX.W 2D id", modes: modesLong, operands: "RAX id64", access: "rw r", cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszapc"},
	Xor_rm8_r8: {mnemonic: MnemonicXor, encoding: "30 /r", modes: modesAny, operands: "rm8 r8", access: "rw r", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Xor_rm16_r16: {mnemonic: MnemonicXor, encoding: "o16 31 /r", modes: modesAny, operands: "rm16 r16", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Xor_rm32_r32: {mnemonic: MnemonicXor, encoding: "o32 31 /r", modes: modesAny, operands: "rm32 r32", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szp c=oc u=a"},
	Xor_rm64_r64: {mnemonic: MnemonicXor, encoding: "REX.W 31 /r", modes: modesLong, operands: "rm64 r64", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szp c=oc u=a"},
	Xor_r8_rm8: {mnemonic: MnemonicXor, encoding: "32 /r", modes: modesAny, operands: "r8 rm8", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Xor_r16_rm16: {mnemonic: MnemonicXor, encoding: "o16 33 /r", modes: modesAny, operands: "r16 rm16", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Xor_r32_rm32: {mnemonic: MnemonicXor, encoding: "o32 33 /r", modes: modesAny, operands: "r32 rm32", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szp c=oc u=a"},
	Xor_r64_rm64: {mnemonic: MnemonicXor, encoding: "REX.W 33 /r", modes: modesLong, operands: "r64 rm64", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szp c=oc u=a"},
	Xor_AL_imm8: {mnemonic: MnemonicXor, encoding: "34 ib", modes: modesAny, operands: "AL ib", access: "rw r", cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Xor_AX_imm16: {mnemonic: MnemonicXor, encoding: "o16 35 iw", modes: modesAny, operands: "AX iw", access: "rw r", cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Xor_EAX_imm32: {mnemonic: MnemonicXor, encoding: "o32 35 id", modes: modesAny, operands: "EAX id", access: "rw r", cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szp c=oc u=a"},
	Xor_RAX_imm32: {mnemonic: MnemonicXor, encoding: "REX.W 35 id", modes: modesLong, operands: "RAX id64", access: "rw r", cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szp c=oc u=a"},
	Cmp_rm8_r8: {mnemonic: MnemonicCmp, encoding: "38 /r", modes: modesAny, operands: "rm8 r8", access: "r r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Cmp_rm16_r16: {mnemonic: MnemonicCmp, encoding: "o16 39 /r", modes: modesAny, operands: "rm16 r16", access: "r r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Cmp_rm32_r32: {mnemonic: MnemonicCmp, encoding: "o32 39 /r", modes: modesAny, operands: "rm32 r32", access: "r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszapc"},
	Cmp_rm64_r64: {mnemonic: MnemonicCmp, encoding: "REX.W 39 /r", modes: modesLong, operands: "rm64 r64", access: "r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszapc"},
	Cmp_r8_rm8: {mnemonic: MnemonicCmp, encoding: "3A /r", modes: modesAny, operands: "r8 rm8", access: "r r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Cmp_r16_rm16: {mnemonic: MnemonicCmp, encoding: "o16 3B /r", modes: modesAny, operands: "r16 rm16", access: "r r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Cmp_r32_rm32: {mnemonic: MnemonicCmp, encoding: "o32 3B /r", modes: modesAny, operands: "r32 rm32", access: "r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszapc"},
	Cmp_r64_rm64: {mnemonic: MnemonicCmp, encoding: "REX.W 3B /r", modes: modesLong, operands: "r64 rm64", access: "r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszapc"},
	Cmp_AL_imm8: {mnemonic: MnemonicCmp, encoding: "3C ib", modes: modesAny, operands: "AL ib", access: "r r", cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Cmp_AX_imm16: {mnemonic: MnemonicCmp, encoding: "o16 3D iw", modes: modesAny, operands: "AX iw", access: "r r", cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Cmp_EAX_imm32: {mnemonic: MnemonicCmp, encoding: "o32 3D id", modes: modesAny, operands: "EAX id", access: "r r", cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszapc"},
	Cmp_RAX_imm32: {mnemonic: MnemonicCmp, encoding: "REX.W 3D id", modes: modesLong, operands: "RAX id64", access: "r r", cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszapc"},
	Add_rm8_imm8: {mnemonic: MnemonicAdd, encoding: "80 /0 ib", modes: modesAny, operands: "rm8 ib", access: "rw r", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Add_rm16_imm16: {mnemonic: MnemonicAdd, encoding: "o16 81 /0 iw", modes: modesAny, operands: "rm16 iw", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Add_rm32_imm32: {mnemonic: MnemonicAdd, encoding: "o32 81 /0 id", modes: modesAny, operands: "rm32 id", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszapc"},
	Add_rm64_imm32: {mnemonic: MnemonicAdd, encoding: "REX.W 81 /0 id", modes: modesLong, operands: "rm64 id64", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszapc"},
	Add_rm8_imm8_82: {mnemonic: MnemonicAdd, encoding: "82 /0 ib", modes: modesLegacy, operands: "rm8 ib", access: "rw r", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Add_rm16_imm8: {mnemonic: MnemonicAdd, encoding: "o16 83 /0 ib", modes: modesAny, operands: "rm16 ib16", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Add_rm32_imm8: {mnemonic: MnemonicAdd, encoding: "o32 83 /0 ib", modes: modesAny, operands: "rm32 ib32", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszapc"},
	Add_rm64_imm8: {mnemonic: MnemonicAdd, encoding: "REX.W 83 /0 ib", modes: modesLong, operands: "rm64 ib64", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszapc"},
	Or_rm8_imm8: {mnemonic: MnemonicOr, encoding: "80 /1 ib", modes: modesAny, operands: "rm8 ib", access: "rw r", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Or_rm16_imm16: {mnemonic: MnemonicOr, encoding: "o16 81 /1 iw", modes: modesAny, operands: "rm16 iw", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Or_rm32_imm32: {mnemonic: MnemonicOr, encoding: "o32 81 /1 id", modes: modesAny, operands: "rm32 id", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szp c=oc u=a"},
	Or_rm64_imm32: {mnemonic: MnemonicOr, encoding: "REX.W 81 /1 id", modes: modesLong, operands: "rm64 id64", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szp c=oc u=a"},
	Or_rm8_imm8_82: {mnemonic: MnemonicOr, encoding: "82 /1 ib", modes: modesLegacy, operands: "rm8 ib", access: "rw r", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Or_rm16_imm8: {mnemonic: MnemonicOr, encoding: "o16 83 /1 ib", modes: modesAny, operands: "rm16 ib16", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Or_rm32_imm8: {mnemonic: MnemonicOr, encoding: "o32 83 /1 ib", modes: modesAny, operands: "rm32 ib32", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szp c=oc u=a"},
	Or_rm64_imm8: {mnemonic: MnemonicOr, encoding: "REX.W 83 /1 ib", modes: modesLong, operands: "rm64 ib64", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szp c=oc u=a"},
	Adc_rm8_imm8: {mnemonic: MnemonicAdc, encoding: "80 /2 ib", modes: modesAny, operands: "rm8 ib", access: "rw r", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=oszapc"},
	Adc_rm16_imm16: {mnemonic: MnemonicAdc, encoding: "o16 81 /2 iw", modes: modesAny, operands: "rm16 iw", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=oszapc"},
	Adc_rm32_imm32: {mnemonic: MnemonicAdc, encoding: "o32 81 /2 id", modes: modesAny, operands: "rm32 id", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "r=c w=oszapc"},
	Adc_rm64_imm32: {mnemonic: MnemonicAdc, encoding: "REX.W 81 /2 id", modes: modesLong, operands: "rm64 id64", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "r=c w=oszapc"},
	Adc_rm8_imm8_82: {mnemonic: MnemonicAdc, encoding: "82 /2 ib", modes: modesLegacy, operands: "rm8 ib", access: "rw r", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=oszapc"},
	Adc_rm16_imm8: {mnemonic: MnemonicAdc, encoding: "o16 83 /2 ib", modes: modesAny, operands: "rm16 ib16", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=oszapc"},
	Adc_rm32_imm8: {mnemonic: MnemonicAdc, encoding: "o32 83 /2 ib", modes: modesAny, operands: "rm32 ib32", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "r=c w=oszapc"},
	Adc_rm64_imm8: {mnemonic: MnemonicAdc, encoding: "REX.W 83 /2 ib", modes: modesLong, operands: "rm64 ib64", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "r=c w=oszapc"},
	Sbb_rm8_imm8: {mnemonic: MnemonicSbb, encoding: "80 /3 ib", modes: modesAny, operands: "rm8 ib", access: "rw r", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=oszapc"},
	Sbb_rm16_imm16: {mnemonic: MnemonicSbb, encoding: "o16 81 /3 iw", modes: modesAny, operands: "rm16 iw", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=oszapc"},
	Sbb_rm32_imm32: {mnemonic: MnemonicSbb, encoding: "o32 81 /3 id", modes: modesAny, operands: "rm32 id", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "r=c w=oszapc"},
	Sbb_rm64_imm32: {mnemonic: MnemonicSbb, encoding: "REX.W 81 /3 id", modes: modesLong, operands: "rm64 id64", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "r=c w=oszapc"},
	Sbb_rm8_imm8_82: {mnemonic: MnemonicSbb, encoding: "82 /3 ib", modes: modesLegacy, operands: "rm8 ib", access: "rw r", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=oszapc"},
	Sbb_rm16_imm8: {mnemonic: MnemonicSbb, encoding: "o16 83 /3 ib", modes: modesAny, operands: "rm16 ib16", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=oszapc"},
	Sbb_rm32_imm8: {mnemonic: MnemonicSbb, encoding: "o32 83 /3 ib", modes: modesAny, operands: "rm32 ib32", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "r=c w=oszapc"},
	Sbb_rm64_imm8: {mnemonic: MnemonicSbb, encoding: "REX.W 83 /3 ib", modes: modesLong, operands: "rm64 ib64", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "r=c w=oszapc"},
	And_rm8_imm8: {mnemonic: MnemonicAnd, encoding: "80 /4 ib", modes: modesAny, operands: "rm8 ib", access: "rw r", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	And_rm16_imm16: {mnemonic: MnemonicAnd, encoding: "o16 81 /4 iw", modes: modesAny, operands: "rm16 iw", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	And_rm32_imm32: {mnemonic: MnemonicAnd, encoding: "o32 81 /4 id", modes: modesAny, operands: "rm32 id", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szp c=oc u=a"},
	And_rm64_imm32: {mnemonic: MnemonicAnd, encoding: "REX.W 81 /4 id", modes: modesLong, operands: "rm64 id64", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szp c=oc u=a"},
	And_rm8_imm8_82: {mnemonic: MnemonicAnd, encoding: "82 /4 ib", modes: modesLegacy, operands: "rm8 ib", access: "rw r", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	And_rm16_imm8: {mnemonic: MnemonicAnd, encoding: "o16 83 /4 ib", modes: modesAny, operands: "rm16 ib16", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	And_rm32_imm8: {mnemonic: MnemonicAnd, encoding: "o32 83 /4 ib", modes: modesAny, operands: "rm32 ib32", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szp c=oc u=a"},
	And_rm64_imm8: {mnemonic: MnemonicAnd, encoding: "REX.W 83 /4 ib", modes: modesLong, operands: "rm64 ib64", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szp c=oc u=a"},
	Sub_rm8_imm8: {mnemonic: MnemonicSub, encoding: "80 /5 ib", modes: modesAny, operands: "rm8 ib", access: "rw r", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Sub_rm16_imm16: {mnemonic: MnemonicSub, encoding: "o16 81 /5 iw", modes: modesAny, operands: "rm16 iw", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Sub_rm32_imm32: {mnemonic: MnemonicSub, encoding: "o32 81 /5 id", modes: modesAny, operands: "rm32 id", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszapc"},
	Sub_rm64_imm32: {mnemonic: MnemonicSub, encoding: "REX.W 81 /5 id", modes: modesLong, operands: "rm64 id64", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszapc"},
	Sub_rm8_imm8_82: {mnemonic: MnemonicSub, encoding: "82 /5 ib", modes: modesLegacy, operands: "rm8 ib", access: "rw r", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Sub_rm16_imm8: {mnemonic: MnemonicSub, encoding: "o16 83 /5 ib", modes: modesAny, operands: "rm16 ib16", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Sub_rm32_imm8: {mnemonic: MnemonicSub, encoding: "o32 83 /5 ib", modes: modesAny, operands: "rm32 ib32", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszapc"},
	Sub_rm64_imm8: {mnemonic: MnemonicSub, encoding: "REX.W 83 /5 ib", modes: modesLong, operands: "rm64 ib64", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszapc"},
	Xor_rm8_imm8: {mnemonic: MnemonicXor, encoding: "80 /6 ib", modes: modesAny, operands: "rm8 ib", access: "rw r", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Xor_rm16_imm16: {mnemonic: MnemonicXor, encoding: "o16 81 /6 iw", modes: modesAny, operands: "rm16 iw", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Xor_rm32_imm32: {mnemonic: MnemonicXor, encoding: "o32 81 /6 id", modes: modesAny, operands: "rm32 id", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szp c=oc u=a"},
	Xor_rm64_imm32: {mnemonic: MnemonicXor, encoding: "REX.W 81 /6 id", modes: modesLong, operands: "rm64 id64", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szp c=oc u=a"},
	Xor_rm8_imm8_82: {mnemonic: MnemonicXor, encoding: "82 /6 ib", modes: modesLegacy, operands: "rm8 ib", access: "rw r", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Xor_rm16_imm8: {mnemonic: MnemonicXor, encoding: "o16 83 /6 ib", modes: modesAny, operands: "rm16 ib16", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Xor_rm32_imm8: {mnemonic: MnemonicXor, encoding: "o32 83 /6 ib", modes: modesAny, operands: "rm32 ib32", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szp c=oc u=a"},
	Xor_rm64_imm8: {mnemonic: MnemonicXor, encoding: "REX.W 83 /6 ib", modes: modesLong, operands: "rm64 ib64", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szp c=oc u=a"},
	Cmp_rm8_imm8: {mnemonic: MnemonicCmp, encoding: "80 /7 ib", modes: modesAny, operands: "rm8 ib", access: "r r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Cmp_rm16_imm16: {mnemonic: MnemonicCmp, encoding: "o16 81 /7 iw", modes: modesAny, operands: "rm16 iw", access: "r r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Cmp_rm32_imm32: {mnemonic: MnemonicCmp, encoding: "o32 81 /7 id", modes: modesAny, operands: "rm32 id", access: "r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszapc"},
	Cmp_rm64_imm32: {mnemonic: MnemonicCmp, encoding: "REX.W 81 /7 id", modes: modesLong, operands: "rm64 id64", access: "r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszapc"},
	Cmp_rm8_imm8_82: {mnemonic: MnemonicCmp, encoding: "82 /7 ib", modes: modesLegacy, operands: "rm8 ib", access: "r r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Cmp_rm16_imm8: {mnemonic: MnemonicCmp, encoding: "o16 83 /7 ib", modes: modesAny, operands: "rm16 ib16", access: "r r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Cmp_rm32_imm8: {mnemonic: MnemonicCmp, encoding: "o32 83 /7 ib", modes: modesAny, operands: "rm32 ib32", access: "r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszapc"},
	Cmp_rm64_imm8: {mnemonic: MnemonicCmp, encoding: "REX.W 83 /7 ib", modes: modesLong, operands: "rm64 ib64", access: "r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszapc"},
	Pushw_ES: {mnemonic: MnemonicPush, encoding: "o16 06", modes: modesLegacy, operands: "ES", access: "r", cpuid: []CpuidFeature{CpuidINTEL8086}, implied: "rw:sp push:UInt16", stack: -2},
	Pushd_ES: {mnemonic: MnemonicPush, encoding: "o32 06", modes: modesLegacy, operands: "ES", access: "r", cpuid: []CpuidFeature{CpuidINTEL386}, implied: "rw:sp push:UInt32", stack: -4},
	Popw_ES: {mnemonic: MnemonicPop, encoding: "o16 07", modes: modesLegacy, operands: "ES", access: "w", cpuid: []CpuidFeature{CpuidINTEL8086}, implied: "rw:sp pop:UInt16", stack: 2},
	Popd_ES: {mnemonic: MnemonicPop, encoding: "o32 07", modes: modesLegacy, operands: "ES", access: "w", cpuid: []CpuidFeature{CpuidINTEL386}, implied: "rw:sp pop:UInt32", stack: 4},
	Pushw_CS: {mnemonic: MnemonicPush, encoding: "o16 0E", modes: modesLegacy, operands: "CS", access: "r", cpuid: []CpuidFeature{CpuidINTEL8086}, implied: "rw:sp push:UInt16", stack: -2},
	Pushd_CS: {mnemonic: MnemonicPush, encoding: "o32 0E", modes: modesLegacy, operands: "CS", access: "r", cpuid: []CpuidFeature{CpuidINTEL386}, implied: "rw:sp push:UInt32", stack: -4},
	Pushw_SS: {mnemonic: MnemonicPush, encoding: "o16 16", modes: modesLegacy, operands: "SS", access: "r", cpuid: []CpuidFeature{CpuidINTEL8086}, implied: "rw:sp push:UInt16", stack: -2},
	Pushd_SS: {mnemonic: MnemonicPush, encoding: "o32 16", modes: modesLegacy, operands: "SS", access: "r", cpuid: []CpuidFeature{CpuidINTEL386}, implied: "rw:sp push:UInt32", stack: -4},
	Popw_SS: {mnemonic: MnemonicPop, encoding: "o16 17", modes: modesLegacy, operands: "SS", access: "w", cpuid: []CpuidFeature{CpuidINTEL8086}, implied: "rw:sp pop:UInt16", stack: 2},
	Popd_SS: {mnemonic: MnemonicPop, encoding: "o32 17", modes: modesLegacy, operands: "SS", access: "w", cpuid: []CpuidFeature{CpuidINTEL386}, implied: "rw:sp pop:UInt32", stack: 4},
	Pushw_DS: {mnemonic: MnemonicPush, encoding: "o16 1E", modes: modesLegacy, operands: "DS", access: "r", cpuid: []CpuidFeature{CpuidINTEL8086}, implied: "rw:sp push:UInt16", stack: -2},
	Pushd_DS: {mnemonic: MnemonicPush, encoding: "o32 1E", modes: modesLegacy, operands: "DS", access: "r", cpuid: []CpuidFeature{CpuidINTEL386}, implied: "rw:sp push:UInt32", stack: -4},
	Popw_DS: {mnemonic: MnemonicPop, encoding: "o16 1F", modes: modesLegacy, operands: "DS", access: "w", cpuid: []CpuidFeature{CpuidINTEL8086}, implied: "rw:sp pop:UInt16", stack: 2},
	Popd_DS: {mnemonic: MnemonicPop, encoding: "o32 1F", modes: modesLegacy, operands: "DS", access: "w", cpuid: []CpuidFeature{CpuidINTEL386}, implied: "rw:sp pop:UInt32", stack: 4},
	Popw_CS: {mnemonic: MnemonicPop, encoding: "0F", modes: modesLegacy, operands: "CS", access: "w", options: DecoderPopCS, cpuid: []CpuidFeature{CpuidINTEL8086_ONLY}, implied: "rw:sp pop:UInt16", stack: 2},
	Daa: {mnemonic: MnemonicDaa, encoding: "27", modes: modesLegacy, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=ac w=szapc u=o", implied: "rw:AL"},
	Das: {mnemonic: MnemonicDas, encoding: "2F", modes: modesLegacy, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=ac w=szapc u=o", implied: "rw:AL"},
	Aaa: {mnemonic: MnemonicAaa, encoding: "37", modes: modesLegacy, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=a w=ac u=oszp", implied: "rw:AX"},
	Aas: {mnemonic: MnemonicAas, encoding: "3F", modes: modesLegacy, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=a w=ac u=oszp", implied: "rw:AX"},
	Inc_r16: {mnemonic: MnemonicInc, encoding: "o16 40+rw", modes: modesLegacy, operands: "o16", access: "rw", cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszap"},
	Inc_r32: {mnemonic: MnemonicInc, encoding: "o32 40+rd", modes: modesLegacy, operands: "o32", access: "rw", cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszap"},
	Dec_r16: {mnemonic: MnemonicDec, encoding: "o16 48+rw", modes: modesLegacy, operands: "o16", access: "rw", cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszap"},
	Dec_r32: {mnemonic: MnemonicDec, encoding: "o32 48+rd", modes: modesLegacy, operands: "o32", access: "rw", cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszap"},
	Push_r16: {mnemonic: MnemonicPush, encoding: "o16 50+rw", modes: modesAny, operands: "o16", access: "r", cpuid: []CpuidFeature{CpuidINTEL8086}, implied: "rw:sp push:UInt16", stack: -2},
	Push_r32: {mnemonic: MnemonicPush, encoding: "o32 50+rd", modes: modesLegacy, operands: "o32", access: "r", cpuid: []CpuidFeature{CpuidINTEL386}, implied: "rw:sp push:UInt32", stack: -4},
	Push_r64: {mnemonic: MnemonicPush, encoding: "d64 o64 50+ro", modes: modesLong, operands: "o64", access: "r", cpuid: []CpuidFeature{CpuidX64}, implied: "rw:sp push:UInt64", stack: -8},
	Pop_r16: {mnemonic: MnemonicPop, encoding: "o16 58+rw", modes: modesAny, operands: "o16", access: "w", cpuid: []CpuidFeature{CpuidINTEL8086}, implied: "rw:sp pop:UInt16", stack: 2},
	Pop_r32: {mnemonic: MnemonicPop, encoding: "o32 58+rd", modes: modesLegacy, operands: "o32", access: "w", cpuid: []CpuidFeature{CpuidINTEL386}, implied: "rw:sp pop:UInt32", stack: 4},
	Pop_r64: {mnemonic: MnemonicPop, encoding: "d64 o64 58+ro", modes: modesLong, operands: "o64", access: "w", cpuid: []CpuidFeature{CpuidX64}, implied: "rw:sp pop:UInt64", stack: 8},
	Pushaw: {mnemonic: MnemonicPushaw, encoding: "o16 60", modes: modesLegacy, cpuid: []CpuidFeature{CpuidINTEL186}, implied: "rw:sp r:AX r:CX r:DX r:BX r:BP r:SI r:DI", stack: -16},
	Pushad: {mnemonic: MnemonicPushad, encoding: "o32 60", modes: modesLegacy, cpuid: []CpuidFeature{CpuidINTEL386}, implied: "rw:sp r:EAX r:ECX r:EDX r:EBX r:EBP r:ESI r:EDI", stack: -32},
	Popaw: {mnemonic: MnemonicPopaw, encoding: "o16 61", modes: modesLegacy, cpuid: []CpuidFeature{CpuidINTEL186}, implied: "rw:sp w:AX w:CX w:DX w:BX w:BP w:SI w:DI", stack: 16},
	Popad: {mnemonic: MnemonicPopad, encoding: "o32 61", modes: modesLegacy, cpuid: []CpuidFeature{CpuidINTEL386}, implied: "rw:sp w:EAX w:ECX w:EDX w:EBX w:EBP w:ESI w:EDI", stack: 32},
	Bound_r16_m1616: {mnemonic: MnemonicBound, encoding: "o16 62 /r", modes: modesLegacy, operands: "r16 m", access: "r r", memory: MemorySizeBound16_WordWord, cpuid: []CpuidFeature{CpuidINTEL186}, flow: FlowControlException},
	Bound_r32_m3232: {mnemonic: MnemonicBound, encoding: "o32 62 /r", modes: modesLegacy, operands: "r32 m", access: "r r", memory: MemorySizeBound32_DwordDword, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlException},
	Arpl_rm16_r16: {mnemonic: MnemonicArpl, encoding: "63 /r", modes: modesLegacy, operands: "rm16 r16", access: "rw r", memory: MemorySizeUInt16, flags: flagProtected, cpuid: []CpuidFeature{CpuidINTEL286}, rflags: "w=z"},
	Movsxd_r16_rm16: {mnemonic: MnemonicMovsxd, encoding: "o16 63 /r", modes: modesLong, operands: "r16 rm16", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidX64}},
	Movsxd_r32_rm32: {mnemonic: MnemonicMovsxd, encoding: "o32 63 /r", modes: modesLong, operands: "r32 rm32", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidX64}},
	Movsxd_r64_rm32: {mnemonic: MnemonicMovsxd, encoding: "REX.W 63 /r", modes: modesLong, operands: "r64 rm32", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidX64}},
	Push_imm16: {mnemonic: MnemonicPush, encoding: "o16 68 iw", modes: modesAny, operands: "iw", access: "r", cpuid: []CpuidFeature{CpuidINTEL186}, implied: "rw:sp push:UInt16", stack: -2},
	Pushd_imm32: {mnemonic: MnemonicPush, encoding: "o32 68 id", modes: modesLegacy, operands: "id", access: "r", cpuid: []CpuidFeature{CpuidINTEL386}, implied: "rw:sp push:UInt32", stack: -4},
	Pushq_imm32: {mnemonic: MnemonicPush, encoding: "d64 o64 68 id", modes: modesLong, operands: "id64", access: "r", cpuid: []CpuidFeature{CpuidX64}, implied: "rw:sp push:UInt64", stack: -8},
	Imul_r16_rm16_imm16: {mnemonic: MnemonicImul, encoding: "o16 69 /r iw", modes: modesAny, operands: "r16 rm16 iw", access: "w r r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL186}, rflags: "w=oc u=szap"},
	Imul_r32_rm32_imm32: {mnemonic: MnemonicImul, encoding: "o32 69 /r id", modes: modesAny, operands: "r32 rm32 id", access: "w r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oc u=szap"},
	Imul_r64_rm64_imm32: {mnemonic: MnemonicImul, encoding: "REX.W 69 /r id", modes: modesLong, operands: "r64 rm64 id64", access: "w r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oc u=szap"},
	Pushw_imm8: {mnemonic: MnemonicPush, encoding: "o16 6A ib", modes: modesAny, operands: "ib16", access: "r", cpuid: []CpuidFeature{CpuidINTEL186}, implied: "rw:sp push:UInt16", stack: -2},
	Pushd_imm8: {mnemonic: MnemonicPush, encoding: "o32 6A ib", modes: modesLegacy, operands: "ib32", access: "r", cpuid: []CpuidFeature{CpuidINTEL386}, implied: "rw:sp push:UInt32", stack: -4},
	Pushq_imm8: {mnemonic: MnemonicPush, encoding: "d64 o64 6A ib", modes: modesLong, operands: "ib64", access: "r", cpuid: []CpuidFeature{CpuidX64}, implied: "rw:sp push:UInt64", stack: -8},
	Imul_r16_rm16_imm8: {mnemonic: MnemonicImul, encoding: "o16 6B /r ib", modes: modesAny, operands: "r16 rm16 ib16", access: "w r r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL186}, rflags: "w=oc u=szap"},
	Imul_r32_rm32_imm8: {mnemonic: MnemonicImul, encoding: "o32 6B /r ib", modes: modesAny, operands: "r32 rm32 ib32", access: "w r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oc u=szap"},
	Imul_r64_rm64_imm8: {mnemonic: MnemonicImul, encoding: "REX.W 6B /r ib", modes: modesLong, operands: "r64 rm64 ib64", access: "w r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oc u=szap"},
	Insb_m8_DX: {mnemonic: MnemonicInsb, encoding: "6C", modes: modesAny, operands: "dstdi DX", access: "w r", memory: MemorySizeUInt8, flags: flagRep, cpuid: []CpuidFeature{CpuidINTEL186}, rflags: "r=d"},
	Insw_m16_DX: {mnemonic: MnemonicInsw, encoding: "o16 6D", modes: modesAny, operands: "dstdi DX", access: "w r", memory: MemorySizeUInt16, flags: flagRep, cpuid: []CpuidFeature{CpuidINTEL186}, rflags: "r=d"},
	Insd_m32_DX: {mnemonic: MnemonicInsd, encoding: "o32 6D", modes: modesAny, operands: "dstdi DX", access: "w r", memory: MemorySizeUInt32, flags: flagRep | flagWIgnored, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "r=d"},
	Outsb_DX_m8: {mnemonic: MnemonicOutsb, encoding: "6E", modes: modesAny, operands: "DX srcsi", access: "r r", memory: MemorySizeUInt8, flags: flagRep, cpuid: []CpuidFeature{CpuidINTEL186}, rflags: "r=d"},
	Outsw_DX_m16: {mnemonic: MnemonicOutsw, encoding: "o16 6F", modes: modesAny, operands: "DX srcsi", access: "r r", memory: MemorySizeUInt16, flags: flagRep, cpuid: []CpuidFeature{CpuidINTEL186}, rflags: "r=d"},
	Outsd_DX_m32: {mnemonic: MnemonicOutsd, encoding: "o32 6F", modes: modesAny, operands: "DX srcsi", access: "r r", memory: MemorySizeUInt32, flags: flagRep | flagWIgnored, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "r=d"},
	Jo_rel8_16: {mnemonic: MnemonicJo, encoding: "o16 70 cb", modes: modesAny, operands: "rel8_16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlConditionalBranch, cc: ConditionCodeO, rflags: "r=o"},
	Jo_rel8_32: {mnemonic: MnemonicJo, encoding: "o32 70 cb", modes: modesLegacy, operands: "rel8_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeO, rflags: "r=o"},
	Jo_rel8_64: {mnemonic: MnemonicJo, encoding: "f64 o64 70 cb", modes: modesLong, operands: "rel8_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeO, rflags: "r=o"},
	Jno_rel8_16: {mnemonic: MnemonicJno, encoding: "o16 71 cb", modes: modesAny, operands: "rel8_16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlConditionalBranch, cc: ConditionCodeNO, rflags: "r=o"},
	Jno_rel8_32: {mnemonic: MnemonicJno, encoding: "o32 71 cb", modes: modesLegacy, operands: "rel8_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeNO, rflags: "r=o"},
	Jno_rel8_64: {mnemonic: MnemonicJno, encoding: "f64 o64 71 cb", modes: modesLong, operands: "rel8_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeNO, rflags: "r=o"},
	Jb_rel8_16: {mnemonic: MnemonicJb, encoding: "o16 72 cb", modes: modesAny, operands: "rel8_16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlConditionalBranch, cc: ConditionCodeB, rflags: "r=c"},
	Jb_rel8_32: {mnemonic: MnemonicJb, encoding: "o32 72 cb", modes: modesLegacy, operands: "rel8_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeB, rflags: "r=c"},
	Jb_rel8_64: {mnemonic: MnemonicJb, encoding: "f64 o64 72 cb", modes: modesLong, operands: "rel8_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeB, rflags: "r=c"},
	Jae_rel8_16: {mnemonic: MnemonicJae, encoding: "o16 73 cb", modes: modesAny, operands: "rel8_16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlConditionalBranch, cc: ConditionCodeAE, rflags: "r=c"},
	Jae_rel8_32: {mnemonic: MnemonicJae, encoding: "o32 73 cb", modes: modesLegacy, operands: "rel8_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeAE, rflags: "r=c"},
	Jae_rel8_64: {mnemonic: MnemonicJae, encoding: "f64 o64 73 cb", modes: modesLong, operands: "rel8_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeAE, rflags: "r=c"},
	Je_rel8_16: {mnemonic: MnemonicJe, encoding: "o16 74 cb", modes: modesAny, operands: "rel8_16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlConditionalBranch, cc: ConditionCodeE, rflags: "r=z"},
	Je_rel8_32: {mnemonic: MnemonicJe, encoding: "o32 74 cb", modes: modesLegacy, operands: "rel8_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeE, rflags: "r=z"},
	Je_rel8_64: {mnemonic: MnemonicJe, encoding: "f64 o64 74 cb", modes: modesLong, operands: "rel8_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeE, rflags: "r=z"},
	Jne_rel8_16: {mnemonic: MnemonicJne, encoding: "o16 75 cb", modes: modesAny, operands: "rel8_16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlConditionalBranch, cc: ConditionCodeNE, rflags: "r=z"},
	Jne_rel8_32: {mnemonic: MnemonicJne, encoding: "o32 75 cb", modes: modesLegacy, operands: "rel8_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeNE, rflags: "r=z"},
	Jne_rel8_64: {mnemonic: MnemonicJne, encoding: "f64 o64 75 cb", modes: modesLong, operands: "rel8_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeNE, rflags: "r=z"},
	Jbe_rel8_16: {mnemonic: MnemonicJbe, encoding: "o16 76 cb", modes: modesAny, operands: "rel8_16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlConditionalBranch, cc: ConditionCodeBE, rflags: "r=cz"},
	Jbe_rel8_32: {mnemonic: MnemonicJbe, encoding: "o32 76 cb", modes: modesLegacy, operands: "rel8_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeBE, rflags: "r=cz"},
	Jbe_rel8_64: {mnemonic: MnemonicJbe, encoding: "f64 o64 76 cb", modes: modesLong, operands: "rel8_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeBE, rflags: "r=cz"},
	Ja_rel8_16: {mnemonic: MnemonicJa, encoding: "o16 77 cb", modes: modesAny, operands: "rel8_16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlConditionalBranch, cc: ConditionCodeA, rflags: "r=cz"},
	Ja_rel8_32: {mnemonic: MnemonicJa, encoding: "o32 77 cb", modes: modesLegacy, operands: "rel8_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeA, rflags: "r=cz"},
	Ja_rel8_64: {mnemonic: MnemonicJa, encoding: "f64 o64 77 cb", modes: modesLong, operands: "rel8_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeA, rflags: "r=cz"},
	Js_rel8_16: {mnemonic: MnemonicJs, encoding: "o16 78 cb", modes: modesAny, operands: "rel8_16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlConditionalBranch, cc: ConditionCodeS, rflags: "r=s"},
	Js_rel8_32: {mnemonic: MnemonicJs, encoding: "o32 78 cb", modes: modesLegacy, operands: "rel8_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeS, rflags: "r=s"},
	Js_rel8_64: {mnemonic: MnemonicJs, encoding: "f64 o64 78 cb", modes: modesLong, operands: "rel8_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeS, rflags: "r=s"},
	Jns_rel8_16: {mnemonic: MnemonicJns, encoding: "o16 79 cb", modes: modesAny, operands: "rel8_16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlConditionalBranch, cc: ConditionCodeNS, rflags: "r=s"},
	Jns_rel8_32: {mnemonic: MnemonicJns, encoding: "o32 79 cb", modes: modesLegacy, operands: "rel8_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeNS, rflags: "r=s"},
	Jns_rel8_64: {mnemonic: MnemonicJns, encoding: "f64 o64 79 cb", modes: modesLong, operands: "rel8_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeNS, rflags: "r=s"},
	Jp_rel8_16: {mnemonic: MnemonicJp, encoding: "o16 7A cb", modes: modesAny, operands: "rel8_16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlConditionalBranch, cc: ConditionCodeP, rflags: "r=p"},
	Jp_rel8_32: {mnemonic: MnemonicJp, encoding: "o32 7A cb", modes: modesLegacy, operands: "rel8_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeP, rflags: "r=p"},
	Jp_rel8_64: {mnemonic: MnemonicJp, encoding: "f64 o64 7A cb", modes: modesLong, operands: "rel8_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeP, rflags: "r=p"},
	Jnp_rel8_16: {mnemonic: MnemonicJnp, encoding: "o16 7B cb", modes: modesAny, operands: "rel8_16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlConditionalBranch, cc: ConditionCodeNP, rflags: "r=p"},
	Jnp_rel8_32: {mnemonic: MnemonicJnp, encoding: "o32 7B cb", modes: modesLegacy, operands: "rel8_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeNP, rflags: "r=p"},
	Jnp_rel8_64: {mnemonic: MnemonicJnp, encoding: "f64 o64 7B cb", modes: modesLong, operands: "rel8_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeNP, rflags: "r=p"},
	Jl_rel8_16: {mnemonic: MnemonicJl, encoding: "o16 7C cb", modes: modesAny, operands: "rel8_16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlConditionalBranch, cc: ConditionCodeL, rflags: "r=so"},
	Jl_rel8_32: {mnemonic: MnemonicJl, encoding: "o32 7C cb", modes: modesLegacy, operands: "rel8_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeL, rflags: "r=so"},
	Jl_rel8_64: {mnemonic: MnemonicJl, encoding: "f64 o64 7C cb", modes: modesLong, operands: "rel8_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeL, rflags: "r=so"},
	Jge_rel8_16: {mnemonic: MnemonicJge, encoding: "o16 7D cb", modes: modesAny, operands: "rel8_16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlConditionalBranch, cc: ConditionCodeGE, rflags: "r=so"},
	Jge_rel8_32: {mnemonic: MnemonicJge, encoding: "o32 7D cb", modes: modesLegacy, operands: "rel8_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeGE, rflags: "r=so"},
	Jge_rel8_64: {mnemonic: MnemonicJge, encoding: "f64 o64 7D cb", modes: modesLong, operands: "rel8_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeGE, rflags: "r=so"},
	Jle_rel8_16: {mnemonic: MnemonicJle, encoding: "o16 7E cb", modes: modesAny, operands: "rel8_16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlConditionalBranch, cc: ConditionCodeLE, rflags: "r=szo"},
	Jle_rel8_32: {mnemonic: MnemonicJle, encoding: "o32 7E cb", modes: modesLegacy, operands: "rel8_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeLE, rflags: "r=szo"},
	Jle_rel8_64: {mnemonic: MnemonicJle, encoding: "f64 o64 7E cb", modes: modesLong, operands: "rel8_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeLE, rflags: "r=szo"},
	Jg_rel8_16: {mnemonic: MnemonicJg, encoding: "o16 7F cb", modes: modesAny, operands: "rel8_16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlConditionalBranch, cc: ConditionCodeG, rflags: "r=szo"},
	Jg_rel8_32: {mnemonic: MnemonicJg, encoding: "o32 7F cb", modes: modesLegacy, operands: "rel8_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeG, rflags: "r=szo"},
	Jg_rel8_64: {mnemonic: MnemonicJg, encoding: "f64 o64 7F cb", modes: modesLong, operands: "rel8_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeG, rflags: "r=szo"},
	Test_rm8_r8: {mnemonic: MnemonicTest, encoding: "84 /r", modes: modesAny, operands: "rm8 r8", access: "r r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Test_rm16_r16: {mnemonic: MnemonicTest, encoding: "o16 85 /r", modes: modesAny, operands: "rm16 r16", access: "r r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Test_rm32_r32: {mnemonic: MnemonicTest, encoding: "o32 85 /r", modes: modesAny, operands: "rm32 r32", access: "r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szp c=oc u=a"},
	Test_rm64_r64: {mnemonic: MnemonicTest, encoding: "REX.W 85 /r", modes: modesLong, operands: "rm64 r64", access: "r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szp c=oc u=a"},
	Xchg_rm8_r8: {mnemonic: MnemonicXchg, encoding: "86 /r", modes: modesAny, operands: "rm8 r8", access: "rw rw", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease | flagHLENoLock, cpuid: []CpuidFeature{CpuidINTEL8086}},
	Xchg_rm16_r16: {mnemonic: MnemonicXchg, encoding: "o16 87 /r", modes: modesAny, operands: "rm16 r16", access: "rw rw", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease | flagHLENoLock, cpuid: []CpuidFeature{CpuidINTEL8086}},
	Xchg_rm32_r32: {mnemonic: MnemonicXchg, encoding: "o32 87 /r", modes: modesAny, operands: "rm32 r32", access: "rw rw", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease | flagHLENoLock, cpuid: []CpuidFeature{CpuidINTEL386}},
	Xchg_rm64_r64: {mnemonic: MnemonicXchg, encoding: "REX.W 87 /r", modes: modesLong, operands: "rm64 r64", access: "rw rw", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease | flagHLENoLock, cpuid: []CpuidFeature{CpuidX64}},
	Mov_rm8_r8: {mnemonic: MnemonicMov, encoding: "88 /r", modes: modesAny, operands: "rm8 r8", access: "w r", memory: MemorySizeUInt8, flags: flagXrelease | flagHLENoLock, cpuid: []CpuidFeature{CpuidINTEL8086}},
	Mov_rm16_r16: {mnemonic: MnemonicMov, encoding: "o16 89 /r", modes: modesAny, operands: "rm16 r16", access: "w r", memory: MemorySizeUInt16, flags: flagXrelease | flagHLENoLock, cpuid: []CpuidFeature{CpuidINTEL8086}},
	Mov_rm32_r32: {mnemonic: MnemonicMov, encoding: "o32 89 /r", modes: modesAny, operands: "rm32 r32", access: "w r", memory: MemorySizeUInt32, flags: flagXrelease | flagHLENoLock, cpuid: []CpuidFeature{CpuidINTEL386}},
	Mov_rm64_r64: {mnemonic: MnemonicMov, encoding: "REX.W 89 /r", modes: modesLong, operands: "rm64 r64", access: "w r", memory: MemorySizeUInt64, flags: flagXrelease | flagHLENoLock, cpuid: []CpuidFeature{CpuidX64}},
	Mov_r8_rm8: {mnemonic: MnemonicMov, encoding: "8A /r", modes: modesAny, operands: "r8 rm8", access: "w r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}},
	Mov_r16_rm16: {mnemonic: MnemonicMov, encoding: "o16 8B /r", modes: modesAny, operands: "r16 rm16", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}},
	Mov_r32_rm32: {mnemonic: MnemonicMov, encoding: "o32 8B /r", modes: modesAny, operands: "r32 rm32", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}},
	Mov_r64_rm64: {mnemonic: MnemonicMov, encoding: "REX.W 8B /r", modes: modesLong, operands: "r64 rm64", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}},
	Mov_rm16_Sreg: {mnemonic: MnemonicMov, encoding: "o16 8C /r", modes: modesAny, operands: "rm16 sreg", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}},
	Mov_r32m16_Sreg: {mnemonic: MnemonicMov, encoding: "o32 8C /r", modes: modesAny, operands: "rm32 sreg", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL386}},
	Mov_r64m16_Sreg: {mnemonic: MnemonicMov, encoding: "REX.W 8C /r", modes: modesLong, operands: "rm64 sreg", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidX64}},
	Lea_r16_m: {mnemonic: MnemonicLea, encoding: "o16 8D /r", modes: modesAny, operands: "r16 m", access: "w nm", cpuid: []CpuidFeature{CpuidINTEL8086}},
	Lea_r32_m: {mnemonic: MnemonicLea, encoding: "o32 8D /r", modes: modesAny, operands: "r32 m", access: "w nm", cpuid: []CpuidFeature{CpuidINTEL386}},
	Lea_r64_m: {mnemonic: MnemonicLea, encoding: "REX.W 8D /r", modes: modesLong, operands: "r64 m", access: "w nm", cpuid: []CpuidFeature{CpuidX64}},
	Mov_Sreg_rm16: {mnemonic: MnemonicMov, encoding: "o16 8E /r", modes: modesAny, operands: "sreg rm16", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}},
	Mov_Sreg_r32m16: {mnemonic: MnemonicMov, encoding: "o32 8E /r", modes: modesAny, operands: "sreg rm32", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL386}},
	Mov_Sreg_r64m16: {mnemonic: MnemonicMov, encoding: "REX.W 8E /r", modes: modesLong, operands: "sreg rm64", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidX64}},
	Pop_rm16: {mnemonic: MnemonicPop, encoding: "o16 8F /0", modes: modesAny, operands: "rm16", access: "w", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, implied: "rw:sp pop:UInt16", stack: 2},
	Pop_rm32: {mnemonic: MnemonicPop, encoding: "o32 8F /0", modes: modesLegacy, operands: "rm32", access: "w", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, implied: "rw:sp pop:UInt32", stack: 4},
	Pop_rm64: {mnemonic: MnemonicPop, encoding: "d64 o64 8F /0", modes: modesLong, operands: "rm64", access: "w", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, implied: "rw:sp pop:UInt64", stack: 8},
	Xchg_r16_AX: {mnemonic: MnemonicXchg, encoding: "o16 90+rw", modes: modesAny, operands: "o16 AX", access: "rw rw", cpuid: []CpuidFeature{CpuidINTEL8086}},
	Xchg_r32_EAX: {mnemonic: MnemonicXchg, encoding: "o32 90+rd", modes: modesAny, operands: "o32 EAX", access: "rw rw", cpuid: []CpuidFeature{CpuidINTEL386}},
	Xchg_r64_RAX: {mnemonic: MnemonicXchg, encoding: "REX.W 90+ro", modes: modesLong, operands: "o64 RAX", access: "rw rw", cpuid: []CpuidFeature{CpuidX64}},
	Nopw: {mnemonic: MnemonicNop, encoding: "o16 90", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL8086}},
	Nopd: {mnemonic: MnemonicNop, encoding: "o32 90", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL8086}},
	Nopq: {mnemonic: MnemonicNop, encoding: "REX.W 90", modes: modesLong, cpuid: []CpuidFeature{CpuidX64}},
	Pause: {mnemonic: MnemonicPause, encoding: "F3 90", modes: modesAny, notOptions: DecoderNoPause, cpuid: []CpuidFeature{CpuidPAUSE}},
	Cbw: {mnemonic: MnemonicCbw, encoding: "o16 98", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL8086}, implied: "r:AL w:AX"},
	Cwde: {mnemonic: MnemonicCwde, encoding: "o32 98", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL386}, implied: "r:AX w:EAX"},
	Cdqe: {mnemonic: MnemonicCdqe, encoding: "REX.W 98", modes: modesLong, cpuid: []CpuidFeature{CpuidX64}, implied: "r:EAX w:RAX"},
	Cwd: {mnemonic: MnemonicCwd, encoding: "o16 99", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL8086}, implied: "r:AX w:DX"},
	Cdq: {mnemonic: MnemonicCdq, encoding: "o32 99", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL386}, implied: "r:EAX w:EDX"},
	Cqo: {mnemonic: MnemonicCqo, encoding: "REX.W 99", modes: modesLong, cpuid: []CpuidFeature{CpuidX64}, implied: "r:RAX w:RDX"},
	Call_ptr1616: {mnemonic: MnemonicCall, encoding: "o16 9A cd", modes: modesLegacy, operands: "ptr16", access: "r", cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlCall, implied: "rw:sp", stack: -4},
	Call_ptr1632: {mnemonic: MnemonicCall, encoding: "o32 9A cp", modes: modesLegacy, operands: "ptr32", access: "r", cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlCall, implied: "rw:sp", stack: -8},
	Wait: {mnemonic: MnemonicWait, encoding: "9B", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL8086}},
	Pushfw: {mnemonic: MnemonicPushf, encoding: "o16 9C", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=oszapcdiA", implied: "rw:sp push:UInt16", stack: -2},
	Pushfd: {mnemonic: MnemonicPushfd, encoding: "o32 9C", modes: modesLegacy, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "r=oszapcdiA", implied: "rw:sp push:UInt32", stack: -4},
	Pushfq: {mnemonic: MnemonicPushfq, encoding: "d64 o64 9C", modes: modesLong, cpuid: []CpuidFeature{CpuidX64}, rflags: "r=oszapcdiA", implied: "rw:sp push:UInt64", stack: -8},
	Popfw: {mnemonic: MnemonicPopf, encoding: "o16 9D", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapcdiA", implied: "rw:sp pop:UInt16", stack: 2},
	Popfd: {mnemonic: MnemonicPopfd, encoding: "o32 9D", modes: modesLegacy, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszapcdiA", implied: "rw:sp pop:UInt32", stack: 4},
	Popfq: {mnemonic: MnemonicPopfq, encoding: "d64 o64 9D", modes: modesLong, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszapcdiA", implied: "rw:sp pop:UInt64", stack: 8},
	Sahf: {mnemonic: MnemonicSahf, encoding: "9E", modes: modesAny, notOptions64: DecoderNoLahfSahf64, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szapc", implied: "r:AH"},
	Lahf: {mnemonic: MnemonicLahf, encoding: "9F", modes: modesAny, notOptions64: DecoderNoLahfSahf64, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=szapc", implied: "w:AH"},
	Mov_AL_moffs8: {mnemonic: MnemonicMov, encoding: "A0", modes: modesAny, operands: "AL moffs", access: "w r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}},
	Mov_AX_moffs16: {mnemonic: MnemonicMov, encoding: "o16 A1", modes: modesAny, operands: "AX moffs", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}},
	Mov_EAX_moffs32: {mnemonic: MnemonicMov, encoding: "o32 A1", modes: modesAny, operands: "EAX moffs", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}},
	Mov_RAX_moffs64: {mnemonic: MnemonicMov, encoding: "REX.W A1", modes: modesLong, operands: "RAX moffs", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}},
	Mov_moffs8_AL: {mnemonic: MnemonicMov, encoding: "A2", modes: modesAny, operands: "moffs AL", access: "w r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}},
	Mov_moffs16_AX: {mnemonic: MnemonicMov, encoding: "o16 A3", modes: modesAny, operands: "moffs AX", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}},
	Mov_moffs32_EAX: {mnemonic: MnemonicMov, encoding: "o32 A3", modes: modesAny, operands: "moffs EAX", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}},
	Mov_moffs64_RAX: {mnemonic: MnemonicMov, encoding: "REX.W A3", modes: modesLong, operands: "moffs RAX", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}},
	Movsb_m8_m8: {mnemonic: MnemonicMovsb, encoding: "A4", modes: modesAny, operands: "dstdi srcsi", access: "w r", memory: MemorySizeUInt8, flags: flagRep, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=d"},
	Movsw_m16_m16: {mnemonic: MnemonicMovsw, encoding: "o16 A5", modes: modesAny, operands: "dstdi srcsi", access: "w r", memory: MemorySizeUInt16, flags: flagRep, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=d"},
	Movsd_m32_m32: {mnemonic: MnemonicMovsd, encoding: "o32 A5", modes: modesAny, operands: "dstdi srcsi", access: "w r", memory: MemorySizeUInt32, flags: flagRep, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "r=d"},
	Movsq_m64_m64: {mnemonic: MnemonicMovsq, encoding: "REX.W A5", modes: modesLong, operands: "dstdi srcsi", access: "w r", memory: MemorySizeUInt64, flags: flagRep, cpuid: []CpuidFeature{CpuidX64}, rflags: "r=d"},
	Cmpsb_m8_m8: {mnemonic: MnemonicCmpsb, encoding: "A6", modes: modesAny, operands: "srcsi dstdi", access: "r r", memory: MemorySizeUInt8, flags: flagRep | flagRepne, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=d w=oszapc"},
	Cmpsw_m16_m16: {mnemonic: MnemonicCmpsw, encoding: "o16 A7", modes: modesAny, operands: "srcsi dstdi", access: "r r", memory: MemorySizeUInt16, flags: flagRep | flagRepne, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=d w=oszapc"},
	Cmpsd_m32_m32: {mnemonic: MnemonicCmpsd, encoding: "o32 A7", modes: modesAny, operands: "srcsi dstdi", access: "r r", memory: MemorySizeUInt32, flags: flagRep | flagRepne, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "r=d w=oszapc"},
	Cmpsq_m64_m64: {mnemonic: MnemonicCmpsq, encoding: "REX.W A7", modes: modesLong, operands: "srcsi dstdi", access: "r r", memory: MemorySizeUInt64, flags: flagRep | flagRepne, cpuid: []CpuidFeature{CpuidX64}, rflags: "r=d w=oszapc"},
	Test_AL_imm8: {mnemonic: MnemonicTest, encoding: "A8 ib", modes: modesAny, operands: "AL ib", access: "r r", cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Test_AX_imm16: {mnemonic: MnemonicTest, encoding: "o16 A9 iw", modes: modesAny, operands: "AX iw", access: "r r", cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Test_EAX_imm32: {mnemonic: MnemonicTest, encoding: "o32 A9 id", modes: modesAny, operands: "EAX id", access: "r r", cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szp c=oc u=a"},
	Test_RAX_imm32: {mnemonic: MnemonicTest, encoding: "REX.W A9 id", modes: modesLong, operands: "RAX id64", access: "r r", cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szp c=oc u=a"},
	Stosb_m8_AL: {mnemonic: MnemonicStosb, encoding: "AA", modes: modesAny, operands: "dstdi AL", access: "w r", memory: MemorySizeUInt8, flags: flagRep, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=d"},
	Stosw_m16_AX: {mnemonic: MnemonicStosw, encoding: "o16 AB", modes: modesAny, operands: "dstdi AX", access: "w r", memory: MemorySizeUInt16, flags: flagRep, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=d"},
	Stosd_m32_EAX: {mnemonic: MnemonicStosd, encoding: "o32 AB", modes: modesAny, operands: "dstdi EAX", access: "w r", memory: MemorySizeUInt32, flags: flagRep, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "r=d"},
	Stosq_m64_RAX: {mnemonic: MnemonicStosq, encoding: "REX.W AB", modes: modesLong, operands: "dstdi RAX", access: "w r", memory: MemorySizeUInt64, flags: flagRep, cpuid: []CpuidFeature{CpuidX64}, rflags: "r=d"},
	Lodsb_AL_m8: {mnemonic: MnemonicLodsb, encoding: "AC", modes: modesAny, operands: "AL srcsi", access: "w r", memory: MemorySizeUInt8, flags: flagRep, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=d"},
	Lodsw_AX_m16: {mnemonic: MnemonicLodsw, encoding: "o16 AD", modes: modesAny, operands: "AX srcsi", access: "w r", memory: MemorySizeUInt16, flags: flagRep, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=d"},
	Lodsd_EAX_m32: {mnemonic: MnemonicLodsd, encoding: "o32 AD", modes: modesAny, operands: "EAX srcsi", access: "w r", memory: MemorySizeUInt32, flags: flagRep, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "r=d"},
	Lodsq_RAX_m64: {mnemonic: MnemonicLodsq, encoding: "REX.W AD", modes: modesLong, operands: "RAX srcsi", access: "w r", memory: MemorySizeUInt64, flags: flagRep, cpuid: []CpuidFeature{CpuidX64}, rflags: "r=d"},
	Scasb_AL_m8: {mnemonic: MnemonicScasb, encoding: "AE", modes: modesAny, operands: "AL dstdi", access: "r r", memory: MemorySizeUInt8, flags: flagRep | flagRepne, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=d w=oszapc"},
	Scasw_AX_m16: {mnemonic: MnemonicScasw, encoding: "o16 AF", modes: modesAny, operands: "AX dstdi", access: "r r", memory: MemorySizeUInt16, flags: flagRep | flagRepne, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=d w=oszapc"},
	Scasd_EAX_m32: {mnemonic: MnemonicScasd, encoding: "o32 AF", modes: modesAny, operands: "EAX dstdi", access: "r r", memory: MemorySizeUInt32, flags: flagRep | flagRepne, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "r=d w=oszapc"},
	Scasq_RAX_m64: {mnemonic: MnemonicScasq, encoding: "REX.W AF", modes: modesLong, operands: "RAX dstdi", access: "r r", memory: MemorySizeUInt64, flags: flagRep | flagRepne, cpuid: []CpuidFeature{CpuidX64}, rflags: "r=d w=oszapc"},
	Mov_r8_imm8: {mnemonic: MnemonicMov, encoding: "B0+rb ib", modes: modesAny, operands: "o8 ib", access: "w r", cpuid: []CpuidFeature{CpuidINTEL8086}},
	Mov_r16_imm16: {mnemonic: MnemonicMov, encoding: "o16 B8+rw iw", modes: modesAny, operands: "o16 iw", access: "w r", cpuid: []CpuidFeature{CpuidINTEL8086}},
	Mov_r32_imm32: {mnemonic: MnemonicMov, encoding: "o32 B8+rd id", modes: modesAny, operands: "o32 id", access: "w r", cpuid: []CpuidFeature{CpuidINTEL386}},
	Mov_r64_imm64: {mnemonic: MnemonicMov, encoding: "REX.W B8+ro io", modes: modesLong, operands: "o64 io", access: "w r", cpuid: []CpuidFeature{CpuidX64}},
	Rol_rm8_imm8: {mnemonic: MnemonicRol, encoding: "C0 /0 ib", modes: modesAny, operands: "rm8 ib", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL186}, rflags: "w=c u=o"},
	Rol_rm16_imm8: {mnemonic: MnemonicRol, encoding: "o16 C1 /0 ib", modes: modesAny, operands: "rm16 ib", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL186}, rflags: "w=c u=o"},
	Rol_rm32_imm8: {mnemonic: MnemonicRol, encoding: "o32 C1 /0 ib", modes: modesAny, operands: "rm32 ib", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=c u=o"},
	Rol_rm64_imm8: {mnemonic: MnemonicRol, encoding: "REX.W C1 /0 ib", modes: modesLong, operands: "rm64 ib", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=c u=o"},
	Rol_rm8_1: {mnemonic: MnemonicRol, encoding: "D0 /0", modes: modesAny, operands: "rm8 one", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oc"},
	Rol_rm16_1: {mnemonic: MnemonicRol, encoding: "o16 D1 /0", modes: modesAny, operands: "rm16 one", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oc"},
	Rol_rm32_1: {mnemonic: MnemonicRol, encoding: "o32 D1 /0", modes: modesAny, operands: "rm32 one", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oc"},
	Rol_rm64_1: {mnemonic: MnemonicRol, encoding: "REX.W D1 /0", modes: modesLong, operands: "rm64 one", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oc"},
	Rol_rm8_CL: {mnemonic: MnemonicRol, encoding: "D2 /0", modes: modesAny, operands: "rm8 CL", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=c u=o"},
	Rol_rm16_CL: {mnemonic: MnemonicRol, encoding: "o16 D3 /0", modes: modesAny, operands: "rm16 CL", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=c u=o"},
	Rol_rm32_CL: {mnemonic: MnemonicRol, encoding: "o32 D3 /0", modes: modesAny, operands: "rm32 CL", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=c u=o"},
	Rol_rm64_CL: {mnemonic: MnemonicRol, encoding: "REX.W D3 /0", modes: modesLong, operands: "rm64 CL", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=c u=o"},
	Ror_rm8_imm8: {mnemonic: MnemonicRor, encoding: "C0 /1 ib", modes: modesAny, operands: "rm8 ib", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL186}, rflags: "w=c u=o"},
	Ror_rm16_imm8: {mnemonic: MnemonicRor, encoding: "o16 C1 /1 ib", modes: modesAny, operands: "rm16 ib", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL186}, rflags: "w=c u=o"},
	Ror_rm32_imm8: {mnemonic: MnemonicRor, encoding: "o32 C1 /1 ib", modes: modesAny, operands: "rm32 ib", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=c u=o"},
	Ror_rm64_imm8: {mnemonic: MnemonicRor, encoding: "REX.W C1 /1 ib", modes: modesLong, operands: "rm64 ib", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=c u=o"},
	Ror_rm8_1: {mnemonic: MnemonicRor, encoding: "D0 /1", modes: modesAny, operands: "rm8 one", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oc"},
	Ror_rm16_1: {mnemonic: MnemonicRor, encoding: "o16 D1 /1", modes: modesAny, operands: "rm16 one", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oc"},
	Ror_rm32_1: {mnemonic: MnemonicRor, encoding: "o32 D1 /1", modes: modesAny, operands: "rm32 one", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oc"},
	Ror_rm64_1: {mnemonic: MnemonicRor, encoding: "REX.W D1 /1", modes: modesLong, operands: "rm64 one", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oc"},
	Ror_rm8_CL: {mnemonic: MnemonicRor, encoding: "D2 /1", modes: modesAny, operands: "rm8 CL", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=c u=o"},
	Ror_rm16_CL: {mnemonic: MnemonicRor, encoding: "o16 D3 /1", modes: modesAny, operands: "rm16 CL", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=c u=o"},
	Ror_rm32_CL: {mnemonic: MnemonicRor, encoding: "o32 D3 /1", modes: modesAny, operands: "rm32 CL", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=c u=o"},
	Ror_rm64_CL: {mnemonic: MnemonicRor, encoding: "REX.W D3 /1", modes: modesLong, operands: "rm64 CL", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=c u=o"},
	Rcl_rm8_imm8: {mnemonic: MnemonicRcl, encoding: "C0 /2 ib", modes: modesAny, operands: "rm8 ib", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL186}, rflags: "r=c w=c u=o"},
	Rcl_rm16_imm8: {mnemonic: MnemonicRcl, encoding: "o16 C1 /2 ib", modes: modesAny, operands: "rm16 ib", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL186}, rflags: "r=c w=c u=o"},
	Rcl_rm32_imm8: {mnemonic: MnemonicRcl, encoding: "o32 C1 /2 ib", modes: modesAny, operands: "rm32 ib", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "r=c w=c u=o"},
	Rcl_rm64_imm8: {mnemonic: MnemonicRcl, encoding: "REX.W C1 /2 ib", modes: modesLong, operands: "rm64 ib", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "r=c w=c u=o"},
	Rcl_rm8_1: {mnemonic: MnemonicRcl, encoding: "D0 /2", modes: modesAny, operands: "rm8 one", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=oc"},
	Rcl_rm16_1: {mnemonic: MnemonicRcl, encoding: "o16 D1 /2", modes: modesAny, operands: "rm16 one", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=oc"},
	Rcl_rm32_1: {mnemonic: MnemonicRcl, encoding: "o32 D1 /2", modes: modesAny, operands: "rm32 one", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "r=c w=oc"},
	Rcl_rm64_1: {mnemonic: MnemonicRcl, encoding: "REX.W D1 /2", modes: modesLong, operands: "rm64 one", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "r=c w=oc"},
	Rcl_rm8_CL: {mnemonic: MnemonicRcl, encoding: "D2 /2", modes: modesAny, operands: "rm8 CL", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=c u=o"},
	Rcl_rm16_CL: {mnemonic: MnemonicRcl, encoding: "o16 D3 /2", modes: modesAny, operands: "rm16 CL", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=c u=o"},
	Rcl_rm32_CL: {mnemonic: MnemonicRcl, encoding: "o32 D3 /2", modes: modesAny, operands: "rm32 CL", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "r=c w=c u=o"},
	Rcl_rm64_CL: {mnemonic: MnemonicRcl, encoding: "REX.W D3 /2", modes: modesLong, operands: "rm64 CL", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "r=c w=c u=o"},
	Rcr_rm8_imm8: {mnemonic: MnemonicRcr, encoding: "C0 /3 ib", modes: modesAny, operands: "rm8 ib", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL186}, rflags: "r=c w=c u=o"},
	Rcr_rm16_imm8: {mnemonic: MnemonicRcr, encoding: "o16 C1 /3 ib", modes: modesAny, operands: "rm16 ib", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL186}, rflags: "r=c w=c u=o"},
	Rcr_rm32_imm8: {mnemonic: MnemonicRcr, encoding: "o32 C1 /3 ib", modes: modesAny, operands: "rm32 ib", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "r=c w=c u=o"},
	Rcr_rm64_imm8: {mnemonic: MnemonicRcr, encoding: "REX.W C1 /3 ib", modes: modesLong, operands: "rm64 ib", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "r=c w=c u=o"},
	Rcr_rm8_1: {mnemonic: MnemonicRcr, encoding: "D0 /3", modes: modesAny, operands: "rm8 one", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=oc"},
	Rcr_rm16_1: {mnemonic: MnemonicRcr, encoding: "o16 D1 /3", modes: modesAny, operands: "rm16 one", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=oc"},
	Rcr_rm32_1: {mnemonic: MnemonicRcr, encoding: "o32 D1 /3", modes: modesAny, operands: "rm32 one", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "r=c w=oc"},
	Rcr_rm64_1: {mnemonic: MnemonicRcr, encoding: "REX.W D1 /3", modes: modesLong, operands: "rm64 one", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "r=c w=oc"},
	Rcr_rm8_CL: {mnemonic: MnemonicRcr, encoding: "D2 /3", modes: modesAny, operands: "rm8 CL", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=c u=o"},
	Rcr_rm16_CL: {mnemonic: MnemonicRcr, encoding: "o16 D3 /3", modes: modesAny, operands: "rm16 CL", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=c u=o"},
	Rcr_rm32_CL: {mnemonic: MnemonicRcr, encoding: "o32 D3 /3", modes: modesAny, operands: "rm32 CL", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "r=c w=c u=o"},
	Rcr_rm64_CL: {mnemonic: MnemonicRcr, encoding: "REX.W D3 /3", modes: modesLong, operands: "rm64 CL", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "r=c w=c u=o"},
	Shl_rm8_imm8: {mnemonic: MnemonicShl, encoding: "C0 /4 ib", modes: modesAny, operands: "rm8 ib", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL186}, rflags: "w=szpc u=oa"},
	Shl_rm16_imm8: {mnemonic: MnemonicShl, encoding: "o16 C1 /4 ib", modes: modesAny, operands: "rm16 ib", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL186}, rflags: "w=szpc u=oa"},
	Shl_rm32_imm8: {mnemonic: MnemonicShl, encoding: "o32 C1 /4 ib", modes: modesAny, operands: "rm32 ib", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szpc u=oa"},
	Shl_rm64_imm8: {mnemonic: MnemonicShl, encoding: "REX.W C1 /4 ib", modes: modesLong, operands: "rm64 ib", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szpc u=oa"},
	Shl_rm8_1: {mnemonic: MnemonicShl, encoding: "D0 /4", modes: modesAny, operands: "rm8 one", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszpc u=a"},
	Shl_rm16_1: {mnemonic: MnemonicShl, encoding: "o16 D1 /4", modes: modesAny, operands: "rm16 one", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszpc u=a"},
	Shl_rm32_1: {mnemonic: MnemonicShl, encoding: "o32 D1 /4", modes: modesAny, operands: "rm32 one", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszpc u=a"},
	Shl_rm64_1: {mnemonic: MnemonicShl, encoding: "REX.W D1 /4", modes: modesLong, operands: "rm64 one", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszpc u=a"},
	Shl_rm8_CL: {mnemonic: MnemonicShl, encoding: "D2 /4", modes: modesAny, operands: "rm8 CL", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szpc u=oa"},
	Shl_rm16_CL: {mnemonic: MnemonicShl, encoding: "o16 D3 /4", modes: modesAny, operands: "rm16 CL", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szpc u=oa"},
	Shl_rm32_CL: {mnemonic: MnemonicShl, encoding: "o32 D3 /4", modes: modesAny, operands: "rm32 CL", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szpc u=oa"},
	Shl_rm64_CL: {mnemonic: MnemonicShl, encoding: "REX.W D3 /4", modes: modesLong, operands: "rm64 CL", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szpc u=oa"},
	Shr_rm8_imm8: {mnemonic: MnemonicShr, encoding: "C0 /5 ib", modes: modesAny, operands: "rm8 ib", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL186}, rflags: "w=szpc u=oa"},
	Shr_rm16_imm8: {mnemonic: MnemonicShr, encoding: "o16 C1 /5 ib", modes: modesAny, operands: "rm16 ib", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL186}, rflags: "w=szpc u=oa"},
	Shr_rm32_imm8: {mnemonic: MnemonicShr, encoding: "o32 C1 /5 ib", modes: modesAny, operands: "rm32 ib", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szpc u=oa"},
	Shr_rm64_imm8: {mnemonic: MnemonicShr, encoding: "REX.W C1 /5 ib", modes: modesLong, operands: "rm64 ib", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szpc u=oa"},
	Shr_rm8_1: {mnemonic: MnemonicShr, encoding: "D0 /5", modes: modesAny, operands: "rm8 one", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszpc u=a"},
	Shr_rm16_1: {mnemonic: MnemonicShr, encoding: "o16 D1 /5", modes: modesAny, operands: "rm16 one", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszpc u=a"},
	Shr_rm32_1: {mnemonic: MnemonicShr, encoding: "o32 D1 /5", modes: modesAny, operands: "rm32 one", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszpc u=a"},
	Shr_rm64_1: {mnemonic: MnemonicShr, encoding: "REX.W D1 /5", modes: modesLong, operands: "rm64 one", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszpc u=a"},
	Shr_rm8_CL: {mnemonic: MnemonicShr, encoding: "D2 /5", modes: modesAny, operands: "rm8 CL", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szpc u=oa"},
	Shr_rm16_CL: {mnemonic: MnemonicShr, encoding: "o16 D3 /5", modes: modesAny, operands: "rm16 CL", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szpc u=oa"},
	Shr_rm32_CL: {mnemonic: MnemonicShr, encoding: "o32 D3 /5", modes: modesAny, operands: "rm32 CL", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szpc u=oa"},
	Shr_rm64_CL: {mnemonic: MnemonicShr, encoding: "REX.W D3 /5", modes: modesLong, operands: "rm64 CL", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szpc u=oa"},
	Sal_rm8_imm8: {mnemonic: MnemonicSal, encoding: "C0 /6 ib", modes: modesAny, operands: "rm8 ib", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL186}, rflags: "w=szpc u=oa"},
	Sal_rm16_imm8: {mnemonic: MnemonicSal, encoding: "o16 C1 /6 ib", modes: modesAny, operands: "rm16 ib", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL186}, rflags: "w=szpc u=oa"},
	Sal_rm32_imm8: {mnemonic: MnemonicSal, encoding: "o32 C1 /6 ib", modes: modesAny, operands: "rm32 ib", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szpc u=oa"},
	Sal_rm64_imm8: {mnemonic: MnemonicSal, encoding: "REX.W C1 /6 ib", modes: modesLong, operands: "rm64 ib", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szpc u=oa"},
	Sal_rm8_1: {mnemonic: MnemonicSal, encoding: "D0 /6", modes: modesAny, operands: "rm8 one", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszpc u=a"},
	Sal_rm16_1: {mnemonic: MnemonicSal, encoding: "o16 D1 /6", modes: modesAny, operands: "rm16 one", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszpc u=a"},
	Sal_rm32_1: {mnemonic: MnemonicSal, encoding: "o32 D1 /6", modes: modesAny, operands: "rm32 one", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszpc u=a"},
	Sal_rm64_1: {mnemonic: MnemonicSal, encoding: "REX.W D1 /6", modes: modesLong, operands: "rm64 one", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszpc u=a"},
	Sal_rm8_CL: {mnemonic: MnemonicSal, encoding: "D2 /6", modes: modesAny, operands: "rm8 CL", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szpc u=oa"},
	Sal_rm16_CL: {mnemonic: MnemonicSal, encoding: "o16 D3 /6", modes: modesAny, operands: "rm16 CL", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szpc u=oa"},
	Sal_rm32_CL: {mnemonic: MnemonicSal, encoding: "o32 D3 /6", modes: modesAny, operands: "rm32 CL", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szpc u=oa"},
	Sal_rm64_CL: {mnemonic: MnemonicSal, encoding: "REX.W D3 /6", modes: modesLong, operands: "rm64 CL", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szpc u=oa"},
	Sar_rm8_imm8: {mnemonic: MnemonicSar, encoding: "C0 /7 ib", modes: modesAny, operands: "rm8 ib", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL186}, rflags: "w=szpc u=oa"},
	Sar_rm16_imm8: {mnemonic: MnemonicSar, encoding: "o16 C1 /7 ib", modes: modesAny, operands: "rm16 ib", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL186}, rflags: "w=szpc u=oa"},
	Sar_rm32_imm8: {mnemonic: MnemonicSar, encoding: "o32 C1 /7 ib", modes: modesAny, operands: "rm32 ib", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szpc u=oa"},
	Sar_rm64_imm8: {mnemonic: MnemonicSar, encoding: "REX.W C1 /7 ib", modes: modesLong, operands: "rm64 ib", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szpc u=oa"},
	Sar_rm8_1: {mnemonic: MnemonicSar, encoding: "D0 /7", modes: modesAny, operands: "rm8 one", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszpc u=a"},
	Sar_rm16_1: {mnemonic: MnemonicSar, encoding: "o16 D1 /7", modes: modesAny, operands: "rm16 one", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszpc u=a"},
	Sar_rm32_1: {mnemonic: MnemonicSar, encoding: "o32 D1 /7", modes: modesAny, operands: "rm32 one", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszpc u=a"},
	Sar_rm64_1: {mnemonic: MnemonicSar, encoding: "REX.W D1 /7", modes: modesLong, operands: "rm64 one", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszpc u=a"},
	Sar_rm8_CL: {mnemonic: MnemonicSar, encoding: "D2 /7", modes: modesAny, operands: "rm8 CL", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szpc u=oa"},
	Sar_rm16_CL: {mnemonic: MnemonicSar, encoding: "o16 D3 /7", modes: modesAny, operands: "rm16 CL", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szpc u=oa"},
	Sar_rm32_CL: {mnemonic: MnemonicSar, encoding: "o32 D3 /7", modes: modesAny, operands: "rm32 CL", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szpc u=oa"},
	Sar_rm64_CL: {mnemonic: MnemonicSar, encoding: "REX.W D3 /7", modes: modesLong, operands: "rm64 CL", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szpc u=oa"},
	Retnw_imm16: {mnemonic: MnemonicRet, encoding: "o16 C2 iw", modes: modesAny, operands: "iw", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlReturn, implied: "rw:sp pop:UInt16", stack: 2},
	Retnd_imm16: {mnemonic: MnemonicRet, encoding: "o32 C2 iw", modes: modesLegacy, operands: "iw", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlReturn, implied: "rw:sp pop:UInt32", stack: 4},
	Retnq_imm16: {mnemonic: MnemonicRet, encoding: "f64 o64 C2 iw", modes: modesLong, operands: "iw", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlReturn, implied: "rw:sp pop:UInt64", stack: 8},
	Retnw: {mnemonic: MnemonicRet, encoding: "o16 C3", modes: modesAny, flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlReturn, implied: "rw:sp pop:UInt16", stack: 2},
	Retnd: {mnemonic: MnemonicRet, encoding: "o32 C3", modes: modesLegacy, flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlReturn, implied: "rw:sp pop:UInt32", stack: 4},
	Retnq: {mnemonic: MnemonicRet, encoding: "f64 o64 C3", modes: modesLong, flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlReturn, implied: "rw:sp pop:UInt64", stack: 8},
	Les_r16_m1616: {mnemonic: MnemonicLes, encoding: "o16 C4 /r", modes: modesLegacy, operands: "r16 m", access: "w r", memory: MemorySizeSegPtr16, cpuid: []CpuidFeature{CpuidINTEL8086}},
	Les_r32_m1632: {mnemonic: MnemonicLes, encoding: "o32 C4 /r", modes: modesLegacy, operands: "r32 m", access: "w r", memory: MemorySizeSegPtr32, cpuid: []CpuidFeature{CpuidINTEL386}},
	Lds_r16_m1616: {mnemonic: MnemonicLds, encoding: "o16 C5 /r", modes: modesLegacy, operands: "r16 m", access: "w r", memory: MemorySizeSegPtr16, cpuid: []CpuidFeature{CpuidINTEL8086}},
	Lds_r32_m1632: {mnemonic: MnemonicLds, encoding: "o32 C5 /r", modes: modesLegacy, operands: "r32 m", access: "w r", memory: MemorySizeSegPtr32, cpuid: []CpuidFeature{CpuidINTEL386}},
	Mov_rm8_imm8: {mnemonic: MnemonicMov, encoding: "C6 /0 ib", modes: modesAny, operands: "rm8 ib", access: "w r", memory: MemorySizeUInt8, flags: flagXrelease | flagHLENoLock, cpuid: []CpuidFeature{CpuidINTEL8086}},
	Xabort_imm8: {mnemonic: MnemonicXabort, encoding: "C6 F8 ib", modes: modesAny, operands: "ib", access: "r", cpuid: []CpuidFeature{CpuidRTM}, implied: "rcw:EAX"},
	Mov_rm16_imm16: {mnemonic: MnemonicMov, encoding: "o16 C7 /0 iw", modes: modesAny, operands: "rm16 iw", access: "w r", memory: MemorySizeUInt16, flags: flagXrelease | flagHLENoLock, cpuid: []CpuidFeature{CpuidINTEL8086}},
	Mov_rm32_imm32: {mnemonic: MnemonicMov, encoding: "o32 C7 /0 id", modes: modesAny, operands: "rm32 id", access: "w r", memory: MemorySizeUInt32, flags: flagXrelease | flagHLENoLock, cpuid: []CpuidFeature{CpuidINTEL386}},
	Mov_rm64_imm32: {mnemonic: MnemonicMov, encoding: "REX.W C7 /0 id", modes: modesLong, operands: "rm64 id64", access: "w r", memory: MemorySizeUInt64, flags: flagXrelease | flagHLENoLock, cpuid: []CpuidFeature{CpuidX64}},
	Xbegin_rel16: {mnemonic: MnemonicXbegin, encoding: "o16 C7 F8 cw", modes: modesAny, operands: "xrel16", access: "r", cpuid: []CpuidFeature{CpuidRTM}, flow: FlowControlXbeginXabortXend, implied: "cw:EAX"},
	Xbegin_rel32: {mnemonic: MnemonicXbegin, encoding: "o32 C7 F8 cd", modes: modesAny, operands: "xrel32", access: "r", flags: flagWIgnored, cpuid: []CpuidFeature{CpuidRTM}, flow: FlowControlXbeginXabortXend, implied: "cw:EAX"},
	Enterw_imm16_imm8: {mnemonic: MnemonicEnter, encoding: "o16 C8 iw ib", modes: modesAny, operands: "iw ib2", access: "r r", flags: flagEnter, cpuid: []CpuidFeature{CpuidINTEL186}, implied: "rw:sp rw:BP"},
	Enterd_imm16_imm8: {mnemonic: MnemonicEnter, encoding: "o32 C8 iw ib", modes: modesLegacy, operands: "iw ib2", access: "r r", flags: flagEnter, cpuid: []CpuidFeature{CpuidINTEL386}, implied: "rw:sp rw:EBP"},
	Enterq_imm16_imm8: {mnemonic: MnemonicEnter, encoding: "d64 o64 C8 iw ib", modes: modesLong, operands: "iw ib2", access: "r r", flags: flagEnter, cpuid: []CpuidFeature{CpuidX64}, implied: "rw:sp rw:RBP"},
	Leavew: {mnemonic: MnemonicLeave, encoding: "o16 C9", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL186}, implied: "w:sp rw:BP pop:UInt16"},
	Leaved: {mnemonic: MnemonicLeave, encoding: "o32 C9", modes: modesLegacy, cpuid: []CpuidFeature{CpuidINTEL386}, implied: "w:sp rw:EBP pop:UInt32"},
	Leaveq: {mnemonic: MnemonicLeave, encoding: "d64 o64 C9", modes: modesLong, cpuid: []CpuidFeature{CpuidX64}, implied: "w:sp rw:RBP pop:UInt64"},
	Retfw_imm16: {mnemonic: MnemonicRetf, encoding: "o16 CA iw", modes: modesAny, operands: "iw", access: "r", cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlReturn, implied: "rw:sp", stack: 4},
	Retfd_imm16: {mnemonic: MnemonicRetf, encoding: "o32 CA iw", modes: modesAny, operands: "iw", access: "r", cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlReturn, implied: "rw:sp", stack: 8},
	Retfq_imm16: {mnemonic: MnemonicRetf, encoding: "REX.W CA iw", modes: modesLong, operands: "iw", access: "r", cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlReturn, implied: "rw:sp", stack: 16},
	Retfw: {mnemonic: MnemonicRetf, encoding: "o16 CB", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlReturn, implied: "rw:sp", stack: 4},
	Retfd: {mnemonic: MnemonicRetf, encoding: "o32 CB", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlReturn, implied: "rw:sp", stack: 8},
	Retfq: {mnemonic: MnemonicRetf, encoding: "REX.W CB", modes: modesLong, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlReturn, implied: "rw:sp", stack: 16},
	Int3: {mnemonic: MnemonicInt3, encoding: "CC", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlInterrupt, rflags: "c=iA"},
	Int_imm8: {mnemonic: MnemonicInt, encoding: "CD ib", modes: modesAny, operands: "ib", access: "r", cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlInterrupt, rflags: "c=iA"},
	Into: {mnemonic: MnemonicInto, encoding: "CE", modes: modesLegacy, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlInterrupt, rflags: "r=o"},
	Iretw: {mnemonic: MnemonicIret, encoding: "o16 CF", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlReturn, rflags: "w=oszapcdiA", implied: "rw:sp", stack: 6},
	Iretd: {mnemonic: MnemonicIretd, encoding: "o32 CF", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlReturn, rflags: "w=oszapcdiA", implied: "rw:sp", stack: 12},
	Iretq: {mnemonic: MnemonicIretq, encoding: "REX.W CF", modes: modesLong, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlReturn, rflags: "w=oszapcdiA", implied: "rw:sp", stack: 40},
	Aam_imm8: {mnemonic: MnemonicAam, encoding: "D4 ib", modes: modesLegacy, operands: "ib", access: "r", cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp u=oac", implied: "rw:AX"},
	Aad_imm8: {mnemonic: MnemonicAad, encoding: "D5 ib", modes: modesLegacy, operands: "ib", access: "r", cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp u=oac", implied: "rw:AX"},
	Salc: {mnemonic: MnemonicSalc, encoding: "D6", modes: modesLegacy, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c", implied: "w:AL"},
	Xlat_m8: {mnemonic: MnemonicXlatb, encoding: "D7", modes: modesAny, operands: "xlat", access: "r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, implied: "rw:AL"},
	Loopne_rel8_16_CX: {mnemonic: MnemonicLoopne, encoding: "o16 a16 E0 cb", modes: modesLegacy, operands: "rel8_16", access: "r", flags: flagAMD64, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlConditionalBranch, rflags: "r=z", implied: "rw:CX"},
	Loopne_rel8_32_CX: {mnemonic: MnemonicLoopne, encoding: "o32 a16 E0 cb", modes: modesLegacy, operands: "rel8_32", access: "r", cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, rflags: "r=z", implied: "rw:CX"},
	Loopne_rel8_16_ECX: {mnemonic: MnemonicLoopne, encoding: "o16 a32 E0 cb", modes: modesAny, operands: "rel8_16", access: "r", flags: flagAMD64, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, rflags: "r=z", implied: "rw:ECX"},
	Loopne_rel8_32_ECX: {mnemonic: MnemonicLoopne, encoding: "o32 a32 E0 cb", modes: modesLegacy, operands: "rel8_32", access: "r", cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, rflags: "r=z", implied: "rw:ECX"},
	Loopne_rel8_64_ECX: {mnemonic: MnemonicLoopne, encoding: "f64 o64 a32 E0 cb", modes: modesLong, operands: "rel8_64", access: "r", cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, rflags: "r=z", implied: "rw:ECX"},
	Loopne_rel8_16_RCX: {mnemonic: MnemonicLoopne, encoding: "o16 a64 E0 cb", modes: modesLong, operands: "rel8_16", access: "r", flags: flagAMD64, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, rflags: "r=z", implied: "rw:RCX"},
	Loopne_rel8_64_RCX: {mnemonic: MnemonicLoopne, encoding: "f64 o64 a64 E0 cb", modes: modesLong, operands: "rel8_64", access: "r", cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, rflags: "r=z", implied: "rw:RCX"},
	Loope_rel8_16_CX: {mnemonic: MnemonicLoope, encoding: "o16 a16 E1 cb", modes: modesLegacy, operands: "rel8_16", access: "r", flags: flagAMD64, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlConditionalBranch, rflags: "r=z", implied: "rw:CX"},
	Loope_rel8_32_CX: {mnemonic: MnemonicLoope, encoding: "o32 a16 E1 cb", modes: modesLegacy, operands: "rel8_32", access: "r", cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, rflags: "r=z", implied: "rw:CX"},
	Loope_rel8_16_ECX: {mnemonic: MnemonicLoope, encoding: "o16 a32 E1 cb", modes: modesAny, operands: "rel8_16", access: "r", flags: flagAMD64, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, rflags: "r=z", implied: "rw:ECX"},
	Loope_rel8_32_ECX: {mnemonic: MnemonicLoope, encoding: "o32 a32 E1 cb", modes: modesLegacy, operands: "rel8_32", access: "r", cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, rflags: "r=z", implied: "rw:ECX"},
	Loope_rel8_64_ECX: {mnemonic: MnemonicLoope, encoding: "f64 o64 a32 E1 cb", modes: modesLong, operands: "rel8_64", access: "r", cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, rflags: "r=z", implied: "rw:ECX"},
	Loope_rel8_16_RCX: {mnemonic: MnemonicLoope, encoding: "o16 a64 E1 cb", modes: modesLong, operands: "rel8_16", access: "r", flags: flagAMD64, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, rflags: "r=z", implied: "rw:RCX"},
	Loope_rel8_64_RCX: {mnemonic: MnemonicLoope, encoding: "f64 o64 a64 E1 cb", modes: modesLong, operands: "rel8_64", access: "r", cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, rflags: "r=z", implied: "rw:RCX"},
	Loop_rel8_16_CX: {mnemonic: MnemonicLoop, encoding: "o16 a16 E2 cb", modes: modesLegacy, operands: "rel8_16", access: "r", flags: flagAMD64, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlConditionalBranch, implied: "rw:CX"},
	Loop_rel8_32_CX: {mnemonic: MnemonicLoop, encoding: "o32 a16 E2 cb", modes: modesLegacy, operands: "rel8_32", access: "r", cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, implied: "rw:CX"},
	Loop_rel8_16_ECX: {mnemonic: MnemonicLoop, encoding: "o16 a32 E2 cb", modes: modesAny, operands: "rel8_16", access: "r", flags: flagAMD64, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, implied: "rw:ECX"},
	Loop_rel8_32_ECX: {mnemonic: MnemonicLoop, encoding: "o32 a32 E2 cb", modes: modesLegacy, operands: "rel8_32", access: "r", cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, implied: "rw:ECX"},
	Loop_rel8_64_ECX: {mnemonic: MnemonicLoop, encoding: "f64 o64 a32 E2 cb", modes: modesLong, operands: "rel8_64", access: "r", cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, implied: "rw:ECX"},
	Loop_rel8_16_RCX: {mnemonic: MnemonicLoop, encoding: "o16 a64 E2 cb", modes: modesLong, operands: "rel8_16", access: "r", flags: flagAMD64, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, implied: "rw:RCX"},
	Loop_rel8_64_RCX: {mnemonic: MnemonicLoop, encoding: "f64 o64 a64 E2 cb", modes: modesLong, operands: "rel8_64", access: "r", cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, implied: "rw:RCX"},
	Jcxz_rel8_16: {mnemonic: MnemonicJcxz, encoding: "o16 a16 E3 cb", modes: modesLegacy, operands: "rel8_16", access: "r", flags: flagAMD64, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlConditionalBranch, implied: "r:CX"},
	Jcxz_rel8_32: {mnemonic: MnemonicJcxz, encoding: "o32 a16 E3 cb", modes: modesLegacy, operands: "rel8_32", access: "r", cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, implied: "r:CX"},
	Jecxz_rel8_16: {mnemonic: MnemonicJecxz, encoding: "o16 a32 E3 cb", modes: modesAny, operands: "rel8_16", access: "r", flags: flagAMD64, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, implied: "r:ECX"},
	Jecxz_rel8_32: {mnemonic: MnemonicJecxz, encoding: "o32 a32 E3 cb", modes: modesLegacy, operands: "rel8_32", access: "r", cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, implied: "r:ECX"},
	Jecxz_rel8_64: {mnemonic: MnemonicJecxz, encoding: "f64 o64 a32 E3 cb", modes: modesLong, operands: "rel8_64", access: "r", cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, implied: "r:ECX"},
	Jrcxz_rel8_16: {mnemonic: MnemonicJrcxz, encoding: "o16 a64 E3 cb", modes: modesLong, operands: "rel8_16", access: "r", flags: flagAMD64, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, implied: "r:RCX"},
	Jrcxz_rel8_64: {mnemonic: MnemonicJrcxz, encoding: "f64 o64 a64 E3 cb", modes: modesLong, operands: "rel8_64", access: "r", cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, implied: "r:RCX"},
	In_AL_imm8: {mnemonic: MnemonicIn, encoding: "E4 ib", modes: modesAny, operands: "AL ib", access: "w r", cpuid: []CpuidFeature{CpuidINTEL8086}},
	In_AX_imm8: {mnemonic: MnemonicIn, encoding: "o16 E5 ib", modes: modesAny, operands: "AX ib", access: "w r", cpuid: []CpuidFeature{CpuidINTEL8086}},
	In_EAX_imm8: {mnemonic: MnemonicIn, encoding: "o32 E5 ib", modes: modesAny, operands: "EAX ib", access: "w r", flags: flagWIgnored, cpuid: []CpuidFeature{CpuidINTEL386}},
	Out_imm8_AL: {mnemonic: MnemonicOut, encoding: "E6 ib", modes: modesAny, operands: "ib AL", access: "r r", cpuid: []CpuidFeature{CpuidINTEL8086}},
	Out_imm8_AX: {mnemonic: MnemonicOut, encoding: "o16 E7 ib", modes: modesAny, operands: "ib AX", access: "r r", cpuid: []CpuidFeature{CpuidINTEL8086}},
	Out_imm8_EAX: {mnemonic: MnemonicOut, encoding: "o32 E7 ib", modes: modesAny, operands: "ib EAX", access: "r r", flags: flagWIgnored, cpuid: []CpuidFeature{CpuidINTEL386}},
	Call_rel16: {mnemonic: MnemonicCall, encoding: "o16 E8 cw", modes: modesAny, operands: "rel16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlCall, implied: "rw:sp push:UInt16", stack: -2},
	Call_rel32_32: {mnemonic: MnemonicCall, encoding: "o32 E8 cd", modes: modesLegacy, operands: "rel32_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlCall, implied: "rw:sp push:UInt32", stack: -4},
	Call_rel32_64: {mnemonic: MnemonicCall, encoding: "f64 o64 E8 cd", modes: modesLong, operands: "rel32_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlCall, implied: "rw:sp push:UInt64", stack: -8},
	Jmp_rel16: {mnemonic: MnemonicJmp, encoding: "o16 E9 cw", modes: modesAny, operands: "rel16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlUnconditionalBranch},
	Jmp_rel32_32: {mnemonic: MnemonicJmp, encoding: "o32 E9 cd", modes: modesLegacy, operands: "rel32_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlUnconditionalBranch},
	Jmp_rel32_64: {mnemonic: MnemonicJmp, encoding: "f64 o64 E9 cd", modes: modesLong, operands: "rel32_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlUnconditionalBranch},
	Jmp_ptr1616: {mnemonic: MnemonicJmp, encoding: "o16 EA cd", modes: modesLegacy, operands: "ptr16", access: "r", cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlUnconditionalBranch},
	Jmp_ptr1632: {mnemonic: MnemonicJmp, encoding: "o32 EA cp", modes: modesLegacy, operands: "ptr32", access: "r", cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlUnconditionalBranch},
	Jmp_rel8_16: {mnemonic: MnemonicJmp, encoding: "o16 EB cb", modes: modesAny, operands: "rel8_16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlUnconditionalBranch},
	Jmp_rel8_32: {mnemonic: MnemonicJmp, encoding: "o32 EB cb", modes: modesLegacy, operands: "rel8_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlUnconditionalBranch},
	Jmp_rel8_64: {mnemonic: MnemonicJmp, encoding: "f64 o64 EB cb", modes: modesLong, operands: "rel8_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlUnconditionalBranch},
	In_AL_DX: {mnemonic: MnemonicIn, encoding: "EC", modes: modesAny, operands: "AL DX", access: "w r", cpuid: []CpuidFeature{CpuidINTEL8086}},
	In_AX_DX: {mnemonic: MnemonicIn, encoding: "o16 ED", modes: modesAny, operands: "AX DX", access: "w r", cpuid: []CpuidFeature{CpuidINTEL8086}},
	In_EAX_DX: {mnemonic: MnemonicIn, encoding: "o32 ED", modes: modesAny, operands: "EAX DX", access: "w r", flags: flagWIgnored, cpuid: []CpuidFeature{CpuidINTEL386}},
	Out_DX_AL: {mnemonic: MnemonicOut, encoding: "EE", modes: modesAny, operands: "DX AL", access: "r r", cpuid: []CpuidFeature{CpuidINTEL8086}},
	Out_DX_AX: {mnemonic: MnemonicOut, encoding: "o16 EF", modes: modesAny, operands: "DX AX", access: "r r", cpuid: []CpuidFeature{CpuidINTEL8086}},
	Out_DX_EAX: {mnemonic: MnemonicOut, encoding: "o32 EF", modes: modesAny, operands: "DX EAX", access: "r r", flags: flagWIgnored, cpuid: []CpuidFeature{CpuidINTEL386}},
	Int1: {mnemonic: MnemonicInt1, encoding: "F1", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlInterrupt, rflags: "c=iA"},
	Hlt: {mnemonic: MnemonicHlt, encoding: "F4", modes: modesAny, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidINTEL8086}},
	Cmc: {mnemonic: MnemonicCmc, encoding: "F5", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "r=c w=c"},
	Test_rm8_imm8: {mnemonic: MnemonicTest, encoding: "F6 /0 ib", modes: modesAny, operands: "rm8 ib", access: "r r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Test_rm8_imm8_F6r1: {mnemonic: MnemonicTest, encoding: "F6 /1 ib", modes: modesAny, operands: "rm8 ib", access: "r r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Test_rm16_imm16: {mnemonic: MnemonicTest, encoding: "o16 F7 /0 iw", modes: modesAny, operands: "rm16 iw", access: "r r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=szp c=oc u=a"},
	Test_rm32_imm32: {mnemonic: MnemonicTest, encoding: "o32 F7 /0 id", modes: modesAny, operands: "rm32 id", access: "r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szp c=oc u=a"},
	Test_rm64_imm32: {mnemonic: MnemonicTest, encoding: "REX.W F7 /0 id", modes: modesLong, operands: "rm64 id64", access: "r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szp c=oc u=a"},
	Not_rm8: {mnemonic: MnemonicNot, encoding: "F6 /2", modes: modesAny, operands: "rm8", access: "rw", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}},
	Not_rm16: {mnemonic: MnemonicNot, encoding: "o16 F7 /2", modes: modesAny, operands: "rm16", access: "rw", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}},
	Not_rm32: {mnemonic: MnemonicNot, encoding: "o32 F7 /2", modes: modesAny, operands: "rm32", access: "rw", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}},
	Not_rm64: {mnemonic: MnemonicNot, encoding: "REX.W F7 /2", modes: modesLong, operands: "rm64", access: "rw", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}},
	Neg_rm8: {mnemonic: MnemonicNeg, encoding: "F6 /3", modes: modesAny, operands: "rm8", access: "rw", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Neg_rm16: {mnemonic: MnemonicNeg, encoding: "o16 F7 /3", modes: modesAny, operands: "rm16", access: "rw", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszapc"},
	Neg_rm32: {mnemonic: MnemonicNeg, encoding: "o32 F7 /3", modes: modesAny, operands: "rm32", access: "rw", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszapc"},
	Neg_rm64: {mnemonic: MnemonicNeg, encoding: "REX.W F7 /3", modes: modesLong, operands: "rm64", access: "rw", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszapc"},
	Mul_rm8: {mnemonic: MnemonicMul, encoding: "F6 /4", modes: modesAny, operands: "rm8", access: "r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oc u=szap", implied: "rw:AX r:AL"},
	Mul_rm16: {mnemonic: MnemonicMul, encoding: "o16 F7 /4", modes: modesAny, operands: "rm16", access: "r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oc u=szap", implied: "rw:AX w:DX"},
	Mul_rm32: {mnemonic: MnemonicMul, encoding: "o32 F7 /4", modes: modesAny, operands: "rm32", access: "r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oc u=szap", implied: "rw:EAX w:EDX"},
	Mul_rm64: {mnemonic: MnemonicMul, encoding: "REX.W F7 /4", modes: modesLong, operands: "rm64", access: "r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oc u=szap", implied: "rw:RAX w:RDX"},
	Imul_rm8: {mnemonic: MnemonicImul, encoding: "F6 /5", modes: modesAny, operands: "rm8", access: "r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oc u=szap", implied: "rw:AX r:AL"},
	Imul_rm16: {mnemonic: MnemonicImul, encoding: "o16 F7 /5", modes: modesAny, operands: "rm16", access: "r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oc u=szap", implied: "rw:AX w:DX"},
	Imul_rm32: {mnemonic: MnemonicImul, encoding: "o32 F7 /5", modes: modesAny, operands: "rm32", access: "r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oc u=szap", implied: "rw:EAX w:EDX"},
	Imul_rm64: {mnemonic: MnemonicImul, encoding: "REX.W F7 /5", modes: modesLong, operands: "rm64", access: "r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oc u=szap", implied: "rw:RAX w:RDX"},
	Div_rm8: {mnemonic: MnemonicDiv, encoding: "F6 /6", modes: modesAny, operands: "rm8", access: "r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "u=oszapc", implied: "rw:AX"},
	Div_rm16: {mnemonic: MnemonicDiv, encoding: "o16 F7 /6", modes: modesAny, operands: "rm16", access: "r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "u=oszapc", implied: "rw:AX rw:DX"},
	Div_rm32: {mnemonic: MnemonicDiv, encoding: "o32 F7 /6", modes: modesAny, operands: "rm32", access: "r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "u=oszapc", implied: "rw:EAX rw:EDX"},
	Div_rm64: {mnemonic: MnemonicDiv, encoding: "REX.W F7 /6", modes: modesLong, operands: "rm64", access: "r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "u=oszapc", implied: "rw:RAX rw:RDX"},
	Idiv_rm8: {mnemonic: MnemonicIdiv, encoding: "F6 /7", modes: modesAny, operands: "rm8", access: "r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "u=oszapc", implied: "rw:AX"},
	Idiv_rm16: {mnemonic: MnemonicIdiv, encoding: "o16 F7 /7", modes: modesAny, operands: "rm16", access: "r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "u=oszapc", implied: "rw:AX rw:DX"},
	Idiv_rm32: {mnemonic: MnemonicIdiv, encoding: "o32 F7 /7", modes: modesAny, operands: "rm32", access: "r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "u=oszapc", implied: "rw:EAX rw:EDX"},
	Idiv_rm64: {mnemonic: MnemonicIdiv, encoding: "REX.W F7 /7", modes: modesLong, operands: "rm64", access: "r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "u=oszapc", implied: "rw:RAX rw:RDX"},
	Clc: {mnemonic: MnemonicClc, encoding: "F8", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "c=c"},
	Stc: {mnemonic: MnemonicStc, encoding: "F9", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "s=c"},
	Cli: {mnemonic: MnemonicCli, encoding: "FA", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "c=i"},
	Sti: {mnemonic: MnemonicSti, encoding: "FB", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "s=i"},
	Cld: {mnemonic: MnemonicCld, encoding: "FC", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "c=d"},
	Std: {mnemonic: MnemonicStd, encoding: "FD", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "s=d"},
	Inc_rm8: {mnemonic: MnemonicInc, encoding: "FE /0", modes: modesAny, operands: "rm8", access: "rw", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszap"},
	Dec_rm8: {mnemonic: MnemonicDec, encoding: "FE /1", modes: modesAny, operands: "rm8", access: "rw", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszap"},
	Inc_rm16: {mnemonic: MnemonicInc, encoding: "o16 FF /0", modes: modesAny, operands: "rm16", access: "rw", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszap"},
	Inc_rm32: {mnemonic: MnemonicInc, encoding: "o32 FF /0", modes: modesAny, operands: "rm32", access: "rw", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszap"},
	Inc_rm64: {mnemonic: MnemonicInc, encoding: "REX.W FF /0", modes: modesLong, operands: "rm64", access: "rw", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszap"},
	Dec_rm16: {mnemonic: MnemonicDec, encoding: "o16 FF /1", modes: modesAny, operands: "rm16", access: "rw", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL8086}, rflags: "w=oszap"},
	Dec_rm32: {mnemonic: MnemonicDec, encoding: "o32 FF /1", modes: modesAny, operands: "rm32", access: "rw", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oszap"},
	Dec_rm64: {mnemonic: MnemonicDec, encoding: "REX.W FF /1", modes: modesLong, operands: "rm64", access: "rw", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszap"},
	Call_rm16: {mnemonic: MnemonicCall, encoding: "o16 FF /2", modes: modesAny, operands: "rm16", access: "r", memory: MemorySizeUInt16, flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlIndirectCall, implied: "rw:sp push:UInt16", stack: -2},
	Call_rm32: {mnemonic: MnemonicCall, encoding: "o32 FF /2", modes: modesLegacy, operands: "rm32", access: "r", memory: MemorySizeUInt32, flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlIndirectCall, implied: "rw:sp push:UInt32", stack: -4},
	Call_rm64: {mnemonic: MnemonicCall, encoding: "f64 o64 FF /2", modes: modesLong, operands: "rm64", access: "r", memory: MemorySizeUInt64, flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlIndirectCall, implied: "rw:sp push:UInt64", stack: -8},
	Call_m1616: {mnemonic: MnemonicCall, encoding: "o16 FF /3", modes: modesAny, operands: "m", access: "r", memory: MemorySizeSegPtr16, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlIndirectCall, implied: "rw:sp", stack: -4},
	Call_m1632: {mnemonic: MnemonicCall, encoding: "o32 FF /3", modes: modesAny, operands: "m", access: "r", memory: MemorySizeSegPtr32, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlIndirectCall, implied: "rw:sp", stack: -8},
	Call_m1664: {mnemonic: MnemonicCall, encoding: "REX.W FF /3", modes: modesLong, operands: "m", access: "r", memory: MemorySizeSegPtr64, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlIndirectCall, implied: "rw:sp", stack: -16},
	Jmp_rm16: {mnemonic: MnemonicJmp, encoding: "o16 FF /4", modes: modesAny, operands: "rm16", access: "r", memory: MemorySizeUInt16, flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlIndirectBranch},
	Jmp_rm32: {mnemonic: MnemonicJmp, encoding: "o32 FF /4", modes: modesLegacy, operands: "rm32", access: "r", memory: MemorySizeUInt32, flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlIndirectBranch},
	Jmp_rm64: {mnemonic: MnemonicJmp, encoding: "f64 o64 FF /4", modes: modesLong, operands: "rm64", access: "r", memory: MemorySizeUInt64, flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlIndirectBranch},
	Jmp_m1616: {mnemonic: MnemonicJmp, encoding: "o16 FF /5", modes: modesAny, operands: "m", access: "r", memory: MemorySizeSegPtr16, cpuid: []CpuidFeature{CpuidINTEL8086}, flow: FlowControlIndirectBranch},
	Jmp_m1632: {mnemonic: MnemonicJmp, encoding: "o32 FF /5", modes: modesAny, operands: "m", access: "r", memory: MemorySizeSegPtr32, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlIndirectBranch},
	Jmp_m1664: {mnemonic: MnemonicJmp, encoding: "REX.W FF /5", modes: modesLong, operands: "m", access: "r", memory: MemorySizeSegPtr64, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlIndirectBranch},
	Push_rm16: {mnemonic: MnemonicPush, encoding: "o16 FF /6", modes: modesAny, operands: "rm16", access: "r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL8086}, implied: "rw:sp push:UInt16", stack: -2},
	Push_rm32: {mnemonic: MnemonicPush, encoding: "o32 FF /6", modes: modesLegacy, operands: "rm32", access: "r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, implied: "rw:sp push:UInt32", stack: -4},
	Push_rm64: {mnemonic: MnemonicPush, encoding: "d64 o64 FF /6", modes: modesLong, operands: "rm64", access: "r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, implied: "rw:sp push:UInt64", stack: -8},
	Fadd_m32fp: {mnemonic: MnemonicFadd, encoding: "D8 /0", modes: modesAny, operands: "ST0 m", access: "rw r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fadd_st0_sti: {mnemonic: MnemonicFadd, encoding: "D8 C0+i", modes: modesAny, operands: "ST0 sti", access: "rw r", cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fadd_m64fp: {mnemonic: MnemonicFadd, encoding: "DC /0", modes: modesAny, operands: "ST0 m", access: "rw r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fiadd_m32int: {mnemonic: MnemonicFiadd, encoding: "DA /0", modes: modesAny, operands: "ST0 m", access: "rw r", memory: MemorySizeInt32, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fiadd_m16int: {mnemonic: MnemonicFiadd, encoding: "DE /0", modes: modesAny, operands: "ST0 m", access: "rw r", memory: MemorySizeInt16, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fmul_m32fp: {mnemonic: MnemonicFmul, encoding: "D8 /1", modes: modesAny, operands: "ST0 m", access: "rw r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fmul_st0_sti: {mnemonic: MnemonicFmul, encoding: "D8 C8+i", modes: modesAny, operands: "ST0 sti", access: "rw r", cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fmul_m64fp: {mnemonic: MnemonicFmul, encoding: "DC /1", modes: modesAny, operands: "ST0 m", access: "rw r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fimul_m32int: {mnemonic: MnemonicFimul, encoding: "DA /1", modes: modesAny, operands: "ST0 m", access: "rw r", memory: MemorySizeInt32, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fimul_m16int: {mnemonic: MnemonicFimul, encoding: "DE /1", modes: modesAny, operands: "ST0 m", access: "rw r", memory: MemorySizeInt16, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fcom_m32fp: {mnemonic: MnemonicFcom, encoding: "D8 /2", modes: modesAny, operands: "ST0 m", access: "r r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=0123"},
	Fcom_st0_sti: {mnemonic: MnemonicFcom, encoding: "D8 D0+i", modes: modesAny, operands: "ST0 sti", access: "r r", cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=0123"},
	Fcom_m64fp: {mnemonic: MnemonicFcom, encoding: "DC /2", modes: modesAny, operands: "ST0 m", access: "r r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=0123"},
	Ficom_m32int: {mnemonic: MnemonicFicom, encoding: "DA /2", modes: modesAny, operands: "ST0 m", access: "r r", memory: MemorySizeInt32, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=0123"},
	Ficom_m16int: {mnemonic: MnemonicFicom, encoding: "DE /2", modes: modesAny, operands: "ST0 m", access: "r r", memory: MemorySizeInt16, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=0123"},
	Fcomp_m32fp: {mnemonic: MnemonicFcomp, encoding: "D8 /3", modes: modesAny, operands: "ST0 m", access: "r r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=0123"},
	Fcomp_st0_sti: {mnemonic: MnemonicFcomp, encoding: "D8 D8+i", modes: modesAny, operands: "ST0 sti", access: "r r", cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=0123"},
	Fcomp_m64fp: {mnemonic: MnemonicFcomp, encoding: "DC /3", modes: modesAny, operands: "ST0 m", access: "r r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=0123"},
	Ficomp_m32int: {mnemonic: MnemonicFicomp, encoding: "DA /3", modes: modesAny, operands: "ST0 m", access: "r r", memory: MemorySizeInt32, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=0123"},
	Ficomp_m16int: {mnemonic: MnemonicFicomp, encoding: "DE /3", modes: modesAny, operands: "ST0 m", access: "r r", memory: MemorySizeInt16, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=0123"},
	Fsub_m32fp: {mnemonic: MnemonicFsub, encoding: "D8 /4", modes: modesAny, operands: "ST0 m", access: "rw r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fsub_st0_sti: {mnemonic: MnemonicFsub, encoding: "D8 E0+i", modes: modesAny, operands: "ST0 sti", access: "rw r", cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fsub_m64fp: {mnemonic: MnemonicFsub, encoding: "DC /4", modes: modesAny, operands: "ST0 m", access: "rw r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fisub_m32int: {mnemonic: MnemonicFisub, encoding: "DA /4", modes: modesAny, operands: "ST0 m", access: "rw r", memory: MemorySizeInt32, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fisub_m16int: {mnemonic: MnemonicFisub, encoding: "DE /4", modes: modesAny, operands: "ST0 m", access: "rw r", memory: MemorySizeInt16, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fsubr_m32fp: {mnemonic: MnemonicFsubr, encoding: "D8 /5", modes: modesAny, operands: "ST0 m", access: "rw r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fsubr_st0_sti: {mnemonic: MnemonicFsubr, encoding: "D8 E8+i", modes: modesAny, operands: "ST0 sti", access: "rw r", cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fsubr_m64fp: {mnemonic: MnemonicFsubr, encoding: "DC /5", modes: modesAny, operands: "ST0 m", access: "rw r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fisubr_m32int: {mnemonic: MnemonicFisubr, encoding: "DA /5", modes: modesAny, operands: "ST0 m", access: "rw r", memory: MemorySizeInt32, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fisubr_m16int: {mnemonic: MnemonicFisubr, encoding: "DE /5", modes: modesAny, operands: "ST0 m", access: "rw r", memory: MemorySizeInt16, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fdiv_m32fp: {mnemonic: MnemonicFdiv, encoding: "D8 /6", modes: modesAny, operands: "ST0 m", access: "rw r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fdiv_st0_sti: {mnemonic: MnemonicFdiv, encoding: "D8 F0+i", modes: modesAny, operands: "ST0 sti", access: "rw r", cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fdiv_m64fp: {mnemonic: MnemonicFdiv, encoding: "DC /6", modes: modesAny, operands: "ST0 m", access: "rw r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fidiv_m32int: {mnemonic: MnemonicFidiv, encoding: "DA /6", modes: modesAny, operands: "ST0 m", access: "rw r", memory: MemorySizeInt32, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fidiv_m16int: {mnemonic: MnemonicFidiv, encoding: "DE /6", modes: modesAny, operands: "ST0 m", access: "rw r", memory: MemorySizeInt16, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fdivr_m32fp: {mnemonic: MnemonicFdivr, encoding: "D8 /7", modes: modesAny, operands: "ST0 m", access: "rw r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fdivr_st0_sti: {mnemonic: MnemonicFdivr, encoding: "D8 F8+i", modes: modesAny, operands: "ST0 sti", access: "rw r", cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fdivr_m64fp: {mnemonic: MnemonicFdivr, encoding: "DC /7", modes: modesAny, operands: "ST0 m", access: "rw r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fidivr_m32int: {mnemonic: MnemonicFidivr, encoding: "DA /7", modes: modesAny, operands: "ST0 m", access: "rw r", memory: MemorySizeInt32, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fidivr_m16int: {mnemonic: MnemonicFidivr, encoding: "DE /7", modes: modesAny, operands: "ST0 m", access: "rw r", memory: MemorySizeInt16, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fadd_sti_st0: {mnemonic: MnemonicFadd, encoding: "DC C0+i", modes: modesAny, operands: "sti ST0", access: "rw r", cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Faddp_sti_st0: {mnemonic: MnemonicFaddp, encoding: "DE C0+i", modes: modesAny, operands: "sti ST0", access: "rw r", cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fmul_sti_st0: {mnemonic: MnemonicFmul, encoding: "DC C8+i", modes: modesAny, operands: "sti ST0", access: "rw r", cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fmulp_sti_st0: {mnemonic: MnemonicFmulp, encoding: "DE C8+i", modes: modesAny, operands: "sti ST0", access: "rw r", cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fsubr_sti_st0: {mnemonic: MnemonicFsubr, encoding: "DC E0+i", modes: modesAny, operands: "sti ST0", access: "rw r", cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fsubrp_sti_st0: {mnemonic: MnemonicFsubrp, encoding: "DE E0+i", modes: modesAny, operands: "sti ST0", access: "rw r", cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fsub_sti_st0: {mnemonic: MnemonicFsub, encoding: "DC E8+i", modes: modesAny, operands: "sti ST0", access: "rw r", cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fsubp_sti_st0: {mnemonic: MnemonicFsubp, encoding: "DE E8+i", modes: modesAny, operands: "sti ST0", access: "rw r", cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fdivr_sti_st0: {mnemonic: MnemonicFdivr, encoding: "DC F0+i", modes: modesAny, operands: "sti ST0", access: "rw r", cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fdivrp_sti_st0: {mnemonic: MnemonicFdivrp, encoding: "DE F0+i", modes: modesAny, operands: "sti ST0", access: "rw r", cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fdiv_sti_st0: {mnemonic: MnemonicFdiv, encoding: "DC F8+i", modes: modesAny, operands: "sti ST0", access: "rw r", cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fdivp_sti_st0: {mnemonic: MnemonicFdivp, encoding: "DE F8+i", modes: modesAny, operands: "sti ST0", access: "rw r", cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fcompp: {mnemonic: MnemonicFcompp, encoding: "DE D9", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=0123", implied: "r:ST0 r:ST1"},
	Fld_m32fp: {mnemonic: MnemonicFld, encoding: "D9 /0", modes: modesAny, operands: "ST0 m", access: "w r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fst_m32fp: {mnemonic: MnemonicFst, encoding: "D9 /2", modes: modesAny, operands: "m ST0", access: "w r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fstp_m32fp: {mnemonic: MnemonicFstp, encoding: "D9 /3", modes: modesAny, operands: "m ST0", access: "w r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fldenv_m14byte: {mnemonic: MnemonicFldenv, encoding: "o16 D9 /4", modes: modesAny, operands: "m", access: "r", memory: MemorySizeFpuEnv14, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=0123"},
	Fldenv_m28byte: {mnemonic: MnemonicFldenv, encoding: "o32 D9 /4", modes: modesAny, operands: "m", access: "r", memory: MemorySizeFpuEnv28, flags: flagWIgnored, cpuid: []CpuidFeature{CpuidFPU387}, rflags: "w=0123"},
	Fldcw_m2byte: {mnemonic: MnemonicFldcw, encoding: "D9 /5", modes: modesAny, operands: "m", access: "r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidFPU}, rflags: "u=0123"},
	Fnstenv_m14byte: {mnemonic: MnemonicFnstenv, encoding: "o16 D9 /6", modes: modesAny, operands: "m", access: "w", memory: MemorySizeFpuEnv14, cpuid: []CpuidFeature{CpuidFPU}, rflags: "u=0123"},
	Fstenv_m14byte: {mnemonic: MnemonicFstenv, encoding: "9B o16 D9 /6", modes: modesAny, operands: "m", access: "w", memory: MemorySizeFpuEnv14, cpuid: []CpuidFeature{CpuidFPU}, rflags: "u=0123"},
	Fnstenv_m28byte: {mnemonic: MnemonicFnstenv, encoding: "o32 D9 /6", modes: modesAny, operands: "m", access: "w", memory: MemorySizeFpuEnv28, flags: flagWIgnored, cpuid: []CpuidFeature{CpuidFPU387}, rflags: "u=0123"},
	Fstenv_m28byte: {mnemonic: MnemonicFstenv, encoding: "9B o32 D9 /6", modes: modesAny, operands: "m", access: "w", memory: MemorySizeFpuEnv28, flags: flagWIgnored, cpuid: []CpuidFeature{CpuidFPU387}, rflags: "u=0123"},
	Fnstcw_m2byte: {mnemonic: MnemonicFnstcw, encoding: "D9 /7", modes: modesAny, operands: "m", access: "w", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidFPU}, rflags: "u=0123"},
	Fstcw_m2byte: {mnemonic: MnemonicFstcw, encoding: "9B D9 /7", modes: modesAny, operands: "m", access: "w", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidFPU}, rflags: "u=0123"},
	Fld_sti: {mnemonic: MnemonicFld, encoding: "D9 C0+i", modes: modesAny, operands: "ST0 sti", access: "w r", cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fxch_st0_sti: {mnemonic: MnemonicFxch, encoding: "D9 C8+i", modes: modesAny, operands: "ST0 sti", access: "rw rw", cpuid: []CpuidFeature{CpuidFPU}, rflags: "c=1 u=023"},
	Fnop: {mnemonic: MnemonicFnop, encoding: "D9 D0", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "u=0123"},
	Fchs: {mnemonic: MnemonicFchs, encoding: "D9 E0", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "c=1 u=023", implied: "rw:ST0"},
	Fabs: {mnemonic: MnemonicFabs, encoding: "D9 E1", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "c=1 u=023", implied: "rw:ST0"},
	Ftst: {mnemonic: MnemonicFtst, encoding: "D9 E4", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=0123", implied: "rw:ST0"},
	Fxam: {mnemonic: MnemonicFxam, encoding: "D9 E5", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=0123", implied: "rw:ST0"},
	Fld1: {mnemonic: MnemonicFld1, encoding: "D9 E8", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023", implied: "rw:ST0"},
	Fldl2t: {mnemonic: MnemonicFldl2t, encoding: "D9 E9", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023", implied: "rw:ST0"},
	Fldl2e: {mnemonic: MnemonicFldl2e, encoding: "D9 EA", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023", implied: "rw:ST0"},
	Fldpi: {mnemonic: MnemonicFldpi, encoding: "D9 EB", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023", implied: "rw:ST0"},
	Fldlg2: {mnemonic: MnemonicFldlg2, encoding: "D9 EC", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023", implied: "rw:ST0"},
	Fldln2: {mnemonic: MnemonicFldln2, encoding: "D9 ED", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023", implied: "rw:ST0"},
	Fldz: {mnemonic: MnemonicFldz, encoding: "D9 EE", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023", implied: "rw:ST0"},
	F2xm1: {mnemonic: MnemonicF2xm1, encoding: "D9 F0", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023", implied: "rw:ST0"},
	Fyl2x: {mnemonic: MnemonicFyl2x, encoding: "D9 F1", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023", implied: "rw:ST0"},
	Fptan: {mnemonic: MnemonicFptan, encoding: "D9 F2", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=12 u=03", implied: "rw:ST0"},
	Fpatan: {mnemonic: MnemonicFpatan, encoding: "D9 F3", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023", implied: "rw:ST0"},
	Fxtract: {mnemonic: MnemonicFxtract, encoding: "D9 F4", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023", implied: "rw:ST0"},
	Fprem1: {mnemonic: MnemonicFprem1, encoding: "D9 F5", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU387}, rflags: "w=0123", implied: "rw:ST0"},
	Fdecstp: {mnemonic: MnemonicFdecstp, encoding: "D9 F6", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "c=1 u=023", implied: "rw:ST0"},
	Fincstp: {mnemonic: MnemonicFincstp, encoding: "D9 F7", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "c=1 u=023", implied: "rw:ST0"},
	Fprem: {mnemonic: MnemonicFprem, encoding: "D9 F8", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=0123", implied: "rw:ST0"},
	Fyl2xp1: {mnemonic: MnemonicFyl2xp1, encoding: "D9 F9", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023", implied: "rw:ST0"},
	Fsqrt: {mnemonic: MnemonicFsqrt, encoding: "D9 FA", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023", implied: "rw:ST0"},
	Fsincos: {mnemonic: MnemonicFsincos, encoding: "D9 FB", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU387}, rflags: "w=12 u=03", implied: "rw:ST0"},
	Frndint: {mnemonic: MnemonicFrndint, encoding: "D9 FC", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023", implied: "rw:ST0"},
	Fscale: {mnemonic: MnemonicFscale, encoding: "D9 FD", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023", implied: "rw:ST0"},
	Fsin: {mnemonic: MnemonicFsin, encoding: "D9 FE", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU387}, rflags: "w=12 u=03", implied: "rw:ST0"},
	Fcos: {mnemonic: MnemonicFcos, encoding: "D9 FF", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU387}, rflags: "w=12 u=03", implied: "rw:ST0"},
	Fcmovb_st0_sti: {mnemonic: MnemonicFcmovb, encoding: "DA C0+i", modes: modesAny, operands: "ST0 sti", access: "cw r", cpuid: []CpuidFeature{CpuidFPU, CpuidCMOV}, rflags: "r=c w=1 u=023"},
	Fcmove_st0_sti: {mnemonic: MnemonicFcmove, encoding: "DA C8+i", modes: modesAny, operands: "ST0 sti", access: "cw r", cpuid: []CpuidFeature{CpuidFPU, CpuidCMOV}, rflags: "r=z w=1 u=023"},
	Fcmovbe_st0_sti: {mnemonic: MnemonicFcmovbe, encoding: "DA D0+i", modes: modesAny, operands: "ST0 sti", access: "cw r", cpuid: []CpuidFeature{CpuidFPU, CpuidCMOV}, rflags: "r=cz w=1 u=023"},
	Fcmovu_st0_sti: {mnemonic: MnemonicFcmovu, encoding: "DA D8+i", modes: modesAny, operands: "ST0 sti", access: "cw r", cpuid: []CpuidFeature{CpuidFPU, CpuidCMOV}, rflags: "r=p w=1 u=023"},
	Fucompp: {mnemonic: MnemonicFucompp, encoding: "DA E9", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU387}, rflags: "w=0123", implied: "r:ST0 r:ST1"},
	Fild_m32int: {mnemonic: MnemonicFild, encoding: "DB /0", modes: modesAny, operands: "ST0 m", access: "w r", memory: MemorySizeInt32, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fisttp_m32int: {mnemonic: MnemonicFisttp, encoding: "DB /1", modes: modesAny, operands: "m ST0", access: "w r", memory: MemorySizeInt32, cpuid: []CpuidFeature{CpuidFPU, CpuidSSE3}, rflags: "w=1 u=023"},
	Fist_m32int: {mnemonic: MnemonicFist, encoding: "DB /2", modes: modesAny, operands: "m ST0", access: "w r", memory: MemorySizeInt32, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fistp_m32int: {mnemonic: MnemonicFistp, encoding: "DB /3", modes: modesAny, operands: "m ST0", access: "w r", memory: MemorySizeInt32, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fld_m80fp: {mnemonic: MnemonicFld, encoding: "DB /5", modes: modesAny, operands: "ST0 m", access: "w r", memory: MemorySizeFloat80, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fstp_m80fp: {mnemonic: MnemonicFstp, encoding: "DB /7", modes: modesAny, operands: "m ST0", access: "w r", memory: MemorySizeFloat80, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fcmovnb_st0_sti: {mnemonic: MnemonicFcmovnb, encoding: "DB C0+i", modes: modesAny, operands: "ST0 sti", access: "cw r", cpuid: []CpuidFeature{CpuidFPU, CpuidCMOV}, rflags: "r=c w=1 u=023"},
	Fcmovne_st0_sti: {mnemonic: MnemonicFcmovne, encoding: "DB C8+i", modes: modesAny, operands: "ST0 sti", access: "cw r", cpuid: []CpuidFeature{CpuidFPU, CpuidCMOV}, rflags: "r=z w=1 u=023"},
	Fcmovnbe_st0_sti: {mnemonic: MnemonicFcmovnbe, encoding: "DB D0+i", modes: modesAny, operands: "ST0 sti", access: "cw r", cpuid: []CpuidFeature{CpuidFPU, CpuidCMOV}, rflags: "r=cz w=1 u=023"},
	Fcmovnu_st0_sti: {mnemonic: MnemonicFcmovnu, encoding: "DB D8+i", modes: modesAny, operands: "ST0 sti", access: "cw r", cpuid: []CpuidFeature{CpuidFPU, CpuidCMOV}, rflags: "r=p w=1 u=023"},
	Fneni: {mnemonic: MnemonicFneni, encoding: "DB E0", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL8087}, rflags: "u=0123"},
	Feni: {mnemonic: MnemonicFeni, encoding: "9B DB E0", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL8087}, rflags: "u=0123"},
	Fndisi: {mnemonic: MnemonicFndisi, encoding: "DB E1", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL8087}, rflags: "u=0123"},
	Fdisi: {mnemonic: MnemonicFdisi, encoding: "9B DB E1", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL8087}, rflags: "u=0123"},
	Fnclex: {mnemonic: MnemonicFnclex, encoding: "DB E2", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "u=0123"},
	Fclex: {mnemonic: MnemonicFclex, encoding: "9B DB E2", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "u=0123"},
	Fninit: {mnemonic: MnemonicFninit, encoding: "DB E3", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "c=0123"},
	Finit: {mnemonic: MnemonicFinit, encoding: "9B DB E3", modes: modesAny, cpuid: []CpuidFeature{CpuidFPU}, rflags: "c=0123"},
	Fnsetpm: {mnemonic: MnemonicFnsetpm, encoding: "DB E4", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL287}, rflags: "u=0123"},
	Fsetpm: {mnemonic: MnemonicFsetpm, encoding: "9B DB E4", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL287}, rflags: "u=0123"},
	Frstpm: {mnemonic: MnemonicFrstpm, encoding: "DB E5", modes: modesLegacy, options: DecoderOldFpu, cpuid: []CpuidFeature{CpuidINTEL287_XL}, rflags: "u=0123"},
	Fucomi_st0_sti: {mnemonic: MnemonicFucomi, encoding: "DB E8+i", modes: modesAny, operands: "ST0 sti", access: "r r", cpuid: []CpuidFeature{CpuidFPU, CpuidCMOV}, rflags: "w=zpc c=osa1 u=023"},
	Fcomi_st0_sti: {mnemonic: MnemonicFcomi, encoding: "DB F0+i", modes: modesAny, operands: "ST0 sti", access: "r r", cpuid: []CpuidFeature{CpuidFPU, CpuidCMOV}, rflags: "w=zpc c=osa1 u=023"},
	Fld_m64fp: {mnemonic: MnemonicFld, encoding: "DD /0", modes: modesAny, operands: "ST0 m", access: "w r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fisttp_m64int: {mnemonic: MnemonicFisttp, encoding: "DD /1", modes: modesAny, operands: "m ST0", access: "w r", memory: MemorySizeInt64, cpuid: []CpuidFeature{CpuidFPU, CpuidSSE3}, rflags: "w=1 u=023"},
	Fst_m64fp: {mnemonic: MnemonicFst, encoding: "DD /2", modes: modesAny, operands: "m ST0", access: "w r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fstp_m64fp: {mnemonic: MnemonicFstp, encoding: "DD /3", modes: modesAny, operands: "m ST0", access: "w r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Frstor_m94byte: {mnemonic: MnemonicFrstor, encoding: "o16 DD /4", modes: modesAny, operands: "m", access: "r", memory: MemorySizeFpuState94, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=0123"},
	Frstor_m108byte: {mnemonic: MnemonicFrstor, encoding: "o32 DD /4", modes: modesAny, operands: "m", access: "r", memory: MemorySizeFpuState108, flags: flagWIgnored, cpuid: []CpuidFeature{CpuidFPU387}, rflags: "w=0123"},
	Fnsave_m94byte: {mnemonic: MnemonicFnsave, encoding: "o16 DD /6", modes: modesAny, operands: "m", access: "w", memory: MemorySizeFpuState94, cpuid: []CpuidFeature{CpuidFPU}, rflags: "c=0123"},
	Fsave_m94byte: {mnemonic: MnemonicFsave, encoding: "9B o16 DD /6", modes: modesAny, operands: "m", access: "w", memory: MemorySizeFpuState94, cpuid: []CpuidFeature{CpuidFPU}, rflags: "c=0123"},
	Fnsave_m108byte: {mnemonic: MnemonicFnsave, encoding: "o32 DD /6", modes: modesAny, operands: "m", access: "w", memory: MemorySizeFpuState108, flags: flagWIgnored, cpuid: []CpuidFeature{CpuidFPU387}, rflags: "c=0123"},
	Fsave_m108byte: {mnemonic: MnemonicFsave, encoding: "9B o32 DD /6", modes: modesAny, operands: "m", access: "w", memory: MemorySizeFpuState108, flags: flagWIgnored, cpuid: []CpuidFeature{CpuidFPU387}, rflags: "c=0123"},
	Fnstsw_m2byte: {mnemonic: MnemonicFnstsw, encoding: "DD /7", modes: modesAny, operands: "m", access: "w", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidFPU}, rflags: "u=0123"},
	Fstsw_m2byte: {mnemonic: MnemonicFstsw, encoding: "9B DD /7", modes: modesAny, operands: "m", access: "w", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidFPU}, rflags: "u=0123"},
	Ffree_sti: {mnemonic: MnemonicFfree, encoding: "DD C0+i", modes: modesAny, operands: "sti", access: "n", cpuid: []CpuidFeature{CpuidFPU}, rflags: "u=0123"},
	Fst_sti: {mnemonic: MnemonicFst, encoding: "DD D0+i", modes: modesAny, operands: "sti ST0", access: "w r", cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fstp_sti: {mnemonic: MnemonicFstp, encoding: "DD D8+i", modes: modesAny, operands: "sti ST0", access: "w r", cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fucom_st0_sti: {mnemonic: MnemonicFucom, encoding: "DD E0+i", modes: modesAny, operands: "ST0 sti", access: "r r", cpuid: []CpuidFeature{CpuidFPU387}, rflags: "w=0123"},
	Fucomp_st0_sti: {mnemonic: MnemonicFucomp, encoding: "DD E8+i", modes: modesAny, operands: "ST0 sti", access: "r r", cpuid: []CpuidFeature{CpuidFPU387}, rflags: "w=0123"},
	Fild_m16int: {mnemonic: MnemonicFild, encoding: "DF /0", modes: modesAny, operands: "ST0 m", access: "w r", memory: MemorySizeInt16, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fisttp_m16int: {mnemonic: MnemonicFisttp, encoding: "DF /1", modes: modesAny, operands: "m ST0", access: "w r", memory: MemorySizeInt16, cpuid: []CpuidFeature{CpuidFPU, CpuidSSE3}, rflags: "w=1 u=023"},
	Fist_m16int: {mnemonic: MnemonicFist, encoding: "DF /2", modes: modesAny, operands: "m ST0", access: "w r", memory: MemorySizeInt16, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fistp_m16int: {mnemonic: MnemonicFistp, encoding: "DF /3", modes: modesAny, operands: "m ST0", access: "w r", memory: MemorySizeInt16, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fbld_m80bcd: {mnemonic: MnemonicFbld, encoding: "DF /4", modes: modesAny, operands: "ST0 m", access: "w r", memory: MemorySizeBcd, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fild_m64int: {mnemonic: MnemonicFild, encoding: "DF /5", modes: modesAny, operands: "ST0 m", access: "w r", memory: MemorySizeInt64, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fbstp_m80bcd: {mnemonic: MnemonicFbstp, encoding: "DF /6", modes: modesAny, operands: "m ST0", access: "w r", memory: MemorySizeBcd, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fistp_m64int: {mnemonic: MnemonicFistp, encoding: "DF /7", modes: modesAny, operands: "m ST0", access: "w r", memory: MemorySizeInt64, cpuid: []CpuidFeature{CpuidFPU}, rflags: "w=1 u=023"},
	Fnstsw_AX: {mnemonic: MnemonicFnstsw, encoding: "DF E0", modes: modesAny, operands: "AX", access: "w", cpuid: []CpuidFeature{CpuidINTEL287}, rflags: "u=0123"},
	Fstsw_AX: {mnemonic: MnemonicFstsw, encoding: "9B DF E0", modes: modesAny, operands: "AX", access: "w", cpuid: []CpuidFeature{CpuidINTEL287}, rflags: "u=0123"},
	Fucomip_st0_sti: {mnemonic: MnemonicFucomip, encoding: "DF E8+i", modes: modesAny, operands: "ST0 sti", access: "r r", cpuid: []CpuidFeature{CpuidFPU, CpuidCMOV}, rflags: "w=zpc c=osa1 u=023"},
	Fcomip_st0_sti: {mnemonic: MnemonicFcomip, encoding: "DF F0+i", modes: modesAny, operands: "ST0 sti", access: "r r", cpuid: []CpuidFeature{CpuidFPU, CpuidCMOV}, rflags: "w=zpc c=osa1 u=023"},
	Sldt_r16m16: {mnemonic: MnemonicSldt, encoding: "o16 0F 00 /0", modes: modesAny, operands: "rm16", access: "w", memory: MemorySizeUInt16, flags: flagProtected, cpuid: []CpuidFeature{CpuidINTEL286}},
	Sldt_r32m16: {mnemonic: MnemonicSldt, encoding: "o32 0F 00 /0", modes: modesAny, operands: "rm32", access: "w", memory: MemorySizeUInt16, flags: flagProtected, cpuid: []CpuidFeature{CpuidINTEL286}},
	Sldt_r64m16: {mnemonic: MnemonicSldt, encoding: "REX.W 0F 00 /0", modes: modesLong, operands: "rm64", access: "w", memory: MemorySizeUInt16, flags: flagProtected, cpuid: []CpuidFeature{CpuidX64}},
	Str_r16m16: {mnemonic: MnemonicStr, encoding: "o16 0F 00 /1", modes: modesAny, operands: "rm16", access: "w", memory: MemorySizeUInt16, flags: flagProtected, cpuid: []CpuidFeature{CpuidINTEL286}},
	Str_r32m16: {mnemonic: MnemonicStr, encoding: "o32 0F 00 /1", modes: modesAny, operands: "rm32", access: "w", memory: MemorySizeUInt16, flags: flagProtected, cpuid: []CpuidFeature{CpuidINTEL286}},
	Str_r64m16: {mnemonic: MnemonicStr, encoding: "REX.W 0F 00 /1", modes: modesLong, operands: "rm64", access: "w", memory: MemorySizeUInt16, flags: flagProtected, cpuid: []CpuidFeature{CpuidX64}},
	Lldt_r16m16: {mnemonic: MnemonicLldt, encoding: "o16 0F 00 /2", modes: modesAny, operands: "rm16", access: "r", memory: MemorySizeUInt16, flags: flagProtected | flagPrivileged, cpuid: []CpuidFeature{CpuidINTEL286}},
	Lldt_r32m16: {mnemonic: MnemonicLldt, encoding: "o32 0F 00 /2", modes: modesAny, operands: "rm32", access: "r", memory: MemorySizeUInt16, flags: flagProtected | flagPrivileged, cpuid: []CpuidFeature{CpuidINTEL286}},
	Lldt_r64m16: {mnemonic: MnemonicLldt, encoding: "REX.W 0F 00 /2", modes: modesLong, operands: "rm64", access: "r", memory: MemorySizeUInt16, flags: flagProtected | flagPrivileged, cpuid: []CpuidFeature{CpuidX64}},
	Ltr_r16m16: {mnemonic: MnemonicLtr, encoding: "o16 0F 00 /3", modes: modesAny, operands: "rm16", access: "r", memory: MemorySizeUInt16, flags: flagProtected | flagPrivileged, cpuid: []CpuidFeature{CpuidINTEL286}},
	Ltr_r32m16: {mnemonic: MnemonicLtr, encoding: "o32 0F 00 /3", modes: modesAny, operands: "rm32", access: "r", memory: MemorySizeUInt16, flags: flagProtected | flagPrivileged, cpuid: []CpuidFeature{CpuidINTEL286}},
	Ltr_r64m16: {mnemonic: MnemonicLtr, encoding: "REX.W 0F 00 /3", modes: modesLong, operands: "rm64", access: "r", memory: MemorySizeUInt16, flags: flagProtected | flagPrivileged, cpuid: []CpuidFeature{CpuidX64}},
	Verr_r16m16: {mnemonic: MnemonicVerr, encoding: "o16 0F 00 /4", modes: modesAny, operands: "rm16", access: "r", memory: MemorySizeUInt16, flags: flagProtected, cpuid: []CpuidFeature{CpuidINTEL286}, rflags: "w=z"},
	Verr_r32m16: {mnemonic: MnemonicVerr, encoding: "o32 0F 00 /4", modes: modesAny, operands: "rm32", access: "r", memory: MemorySizeUInt16, flags: flagProtected, cpuid: []CpuidFeature{CpuidINTEL286}, rflags: "w=z"},
	Verr_r64m16: {mnemonic: MnemonicVerr, encoding: "REX.W 0F 00 /4", modes: modesLong, operands: "rm64", access: "r", memory: MemorySizeUInt16, flags: flagProtected, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=z"},
	Verw_r16m16: {mnemonic: MnemonicVerw, encoding: "o16 0F 00 /5", modes: modesAny, operands: "rm16", access: "r", memory: MemorySizeUInt16, flags: flagProtected, cpuid: []CpuidFeature{CpuidINTEL286}, rflags: "w=z"},
	Verw_r32m16: {mnemonic: MnemonicVerw, encoding: "o32 0F 00 /5", modes: modesAny, operands: "rm32", access: "r", memory: MemorySizeUInt16, flags: flagProtected, cpuid: []CpuidFeature{CpuidINTEL286}, rflags: "w=z"},
	Verw_r64m16: {mnemonic: MnemonicVerw, encoding: "REX.W 0F 00 /5", modes: modesLong, operands: "rm64", access: "r", memory: MemorySizeUInt16, flags: flagProtected, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=z"},
	Jmpe_rm16: {mnemonic: MnemonicJmpe, encoding: "o16 0F 00 /6", modes: modesLegacy, operands: "rm16", access: "r", memory: MemorySizeUInt16, options: DecoderJmpe, cpuid: []CpuidFeature{CpuidIA64}, flow: FlowControlIndirectBranch},
	Jmpe_rm32: {mnemonic: MnemonicJmpe, encoding: "o32 0F 00 /6", modes: modesLegacy, operands: "rm32", access: "r", memory: MemorySizeUInt32, options: DecoderJmpe, cpuid: []CpuidFeature{CpuidIA64}, flow: FlowControlIndirectBranch},
	Sgdt_m1632_16: {mnemonic: MnemonicSgdt, encoding: "o16 0F 01 /0", modes: modesLegacy, operands: "m", access: "w", memory: MemorySizeFword6, cpuid: []CpuidFeature{CpuidINTEL286}},
	Sgdt_m1632: {mnemonic: MnemonicSgdt, encoding: "o32 0F 01 /0", modes: modesLegacy, operands: "m", access: "w", memory: MemorySizeFword6, cpuid: []CpuidFeature{CpuidINTEL386}},
	Sgdt_m1664: {mnemonic: MnemonicSgdt, encoding: "f64 o64 0F 01 /0", modes: modesLong, operands: "m", access: "w", memory: MemorySizeFword10, cpuid: []CpuidFeature{CpuidX64}},
	Sidt_m1632_16: {mnemonic: MnemonicSidt, encoding: "o16 0F 01 /1", modes: modesLegacy, operands: "m", access: "w", memory: MemorySizeFword6, cpuid: []CpuidFeature{CpuidINTEL286}},
	Sidt_m1632: {mnemonic: MnemonicSidt, encoding: "o32 0F 01 /1", modes: modesLegacy, operands: "m", access: "w", memory: MemorySizeFword6, cpuid: []CpuidFeature{CpuidINTEL386}},
	Sidt_m1664: {mnemonic: MnemonicSidt, encoding: "f64 o64 0F 01 /1", modes: modesLong, operands: "m", access: "w", memory: MemorySizeFword10, cpuid: []CpuidFeature{CpuidX64}},
	Lgdt_m1632_16: {mnemonic: MnemonicLgdt, encoding: "o16 0F 01 /2", modes: modesLegacy, operands: "m", access: "r", memory: MemorySizeFword6, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidINTEL286}},
	Lgdt_m1632: {mnemonic: MnemonicLgdt, encoding: "o32 0F 01 /2", modes: modesLegacy, operands: "m", access: "r", memory: MemorySizeFword6, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidINTEL386}},
	Lgdt_m1664: {mnemonic: MnemonicLgdt, encoding: "f64 o64 0F 01 /2", modes: modesLong, operands: "m", access: "r", memory: MemorySizeFword10, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidX64}},
	Lidt_m1632_16: {mnemonic: MnemonicLidt, encoding: "o16 0F 01 /3", modes: modesLegacy, operands: "m", access: "r", memory: MemorySizeFword6, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidINTEL286}},
	Lidt_m1632: {mnemonic: MnemonicLidt, encoding: "o32 0F 01 /3", modes: modesLegacy, operands: "m", access: "r", memory: MemorySizeFword6, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidINTEL386}},
	Lidt_m1664: {mnemonic: MnemonicLidt, encoding: "f64 o64 0F 01 /3", modes: modesLong, operands: "m", access: "r", memory: MemorySizeFword10, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidX64}},
	Smsw_r16m16: {mnemonic: MnemonicSmsw, encoding: "o16 0F 01 /4", modes: modesAny, operands: "rm16", access: "w", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL286}},
	Smsw_r32m16: {mnemonic: MnemonicSmsw, encoding: "o32 0F 01 /4", modes: modesAny, operands: "rm32", access: "w", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL286}},
	Smsw_r64m16: {mnemonic: MnemonicSmsw, encoding: "REX.W 0F 01 /4", modes: modesLong, operands: "rm64", access: "w", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidX64}},
	Lmsw_rm16: {mnemonic: MnemonicLmsw, encoding: "0F 01 /6", modes: modesAny, operands: "rm16", access: "r", memory: MemorySizeUInt16, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidINTEL286}},
	Invlpg_m: {mnemonic: MnemonicInvlpg, encoding: "0F 01 /7", modes: modesAny, operands: "m", access: "nm", flags: flagPrivileged, cpuid: []CpuidFeature{CpuidINTEL486}},
	Vmcall: {mnemonic: MnemonicVmcall, encoding: "0F 01 C1", modes: modesAny, cpuid: []CpuidFeature{CpuidVMX}},
	Vmlaunch: {mnemonic: MnemonicVmlaunch, encoding: "0F 01 C2", modes: modesAny, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidVMX}, rflags: "w=oszapc"},
	Vmresume: {mnemonic: MnemonicVmresume, encoding: "0F 01 C3", modes: modesAny, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidVMX}, rflags: "w=oszapc"},
	Vmxoff: {mnemonic: MnemonicVmxoff, encoding: "0F 01 C4", modes: modesAny, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidVMX}, rflags: "w=oszapc"},
	Monitorw: {mnemonic: MnemonicMonitor, encoding: "a16 0F 01 C8", modes: modesLegacy, cpuid: []CpuidFeature{CpuidMONITOR}, implied: "r:AX r:ECX r:EDX"},
	Monitord: {mnemonic: MnemonicMonitor, encoding: "a32 0F 01 C8", modes: modesAny, cpuid: []CpuidFeature{CpuidMONITOR}, implied: "r:EAX r:ECX r:EDX"},
	Monitorq: {mnemonic: MnemonicMonitor, encoding: "a64 0F 01 C8", modes: modesLong, cpuid: []CpuidFeature{CpuidMONITOR}, implied: "r:RAX r:ECX r:EDX"},
	Mwait: {mnemonic: MnemonicMwait, encoding: "0F 01 C9", modes: modesAny, cpuid: []CpuidFeature{CpuidMONITOR}, implied: "r:EAX r:ECX"},
	Clac: {mnemonic: MnemonicClac, encoding: "NP 0F 01 CA", modes: modesAny, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidSMAP}, rflags: "c=A"},
	Stac: {mnemonic: MnemonicStac, encoding: "NP 0F 01 CB", modes: modesAny, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidSMAP}, rflags: "s=A"},
	Xgetbv: {mnemonic: MnemonicXgetbv, encoding: "NP 0F 01 D0", modes: modesAny, cpuid: []CpuidFeature{CpuidXSAVE}, implied: "r:ECX w:EDX w:EAX"},
	Xsetbv: {mnemonic: MnemonicXsetbv, encoding: "NP 0F 01 D1", modes: modesAny, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidXSAVE}, implied: "r:ECX r:EDX r:EAX"},
	Xend: {mnemonic: MnemonicXend, encoding: "NP 0F 01 D5", modes: modesAny, cpuid: []CpuidFeature{CpuidRTM}, flow: FlowControlXbeginXabortXend},
	Xtest: {mnemonic: MnemonicXtest, encoding: "NP 0F 01 D6", modes: modesAny, cpuid: []CpuidFeature{CpuidRTM, CpuidHLE}, rflags: "w=z c=osapc"},
	Rdpkru: {mnemonic: MnemonicRdpkru, encoding: "NP 0F 01 EE", modes: modesAny, cpuid: []CpuidFeature{CpuidPKU}, implied: "r:ECX w:EDX w:EAX"},
	Wrpkru: {mnemonic: MnemonicWrpkru, encoding: "NP 0F 01 EF", modes: modesAny, cpuid: []CpuidFeature{CpuidPKU}, implied: "r:ECX r:EDX r:EAX"},
	Swapgs: {mnemonic: MnemonicSwapgs, encoding: "0F 01 F8", modes: modesLong, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidX64}},
	Rdtscp: {mnemonic: MnemonicRdtscp, encoding: "0F 01 F9", modes: modesAny, cpuid: []CpuidFeature{CpuidRDTSCP}, implied: "w:EAX w:EDX w:ECX"},
	Lar_r16_r16m16: {mnemonic: MnemonicLar, encoding: "o16 0F 02 /r", modes: modesAny, operands: "r16 rm16", access: "cw r", memory: MemorySizeUInt16, flags: flagProtected, cpuid: []CpuidFeature{CpuidINTEL286}, rflags: "w=z"},
	Lar_r32_r32m16: {mnemonic: MnemonicLar, encoding: "o32 0F 02 /r", modes: modesAny, operands: "r32 rm32", access: "cw r", memory: MemorySizeUInt16, flags: flagProtected, cpuid: []CpuidFeature{CpuidINTEL286}, rflags: "w=z"},
	Lar_r64_r64m16: {mnemonic: MnemonicLar, encoding: "REX.W 0F 02 /r", modes: modesLong, operands: "r64 rm64", access: "cw r", memory: MemorySizeUInt16, flags: flagProtected, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=z"},
	Lsl_r16_r16m16: {mnemonic: MnemonicLsl, encoding: "o16 0F 03 /r", modes: modesAny, operands: "r16 rm16", access: "cw r", memory: MemorySizeUInt16, flags: flagProtected, cpuid: []CpuidFeature{CpuidINTEL286}, rflags: "w=z"},
	Lsl_r32_r32m16: {mnemonic: MnemonicLsl, encoding: "o32 0F 03 /r", modes: modesAny, operands: "r32 rm32", access: "cw r", memory: MemorySizeUInt16, flags: flagProtected, cpuid: []CpuidFeature{CpuidINTEL286}, rflags: "w=z"},
	Lsl_r64_r64m16: {mnemonic: MnemonicLsl, encoding: "REX.W 0F 03 /r", modes: modesLong, operands: "r64 rm64", access: "cw r", memory: MemorySizeUInt16, flags: flagProtected, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=z"},
	Loadall286: {mnemonic: MnemonicLoadall, encoding: "0F 05", modes: modesLegacy, flags: flagPrivileged, options: DecoderLoadall286, cpuid: []CpuidFeature{CpuidINTEL286_ONLY}},
	Syscall: {mnemonic: MnemonicSyscall, encoding: "0F 05", modes: modesAny, cpuid: []CpuidFeature{CpuidSYSCALL}, flow: FlowControlCall, implied: "w:RCX w:R11"},
	Clts: {mnemonic: MnemonicClts, encoding: "0F 06", modes: modesAny, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidINTEL286}},
	Loadall386: {mnemonic: MnemonicLoadall, encoding: "0F 07", modes: modesLegacy, flags: flagPrivileged, options: DecoderLoadall386, cpuid: []CpuidFeature{CpuidINTEL386_ONLY}},
	Sysretd: {mnemonic: MnemonicSysret, encoding: "o32 0F 07", modes: modesAny, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidSYSCALL}, flow: FlowControlReturn, implied: "r:RCX r:R11"},
	Sysretq: {mnemonic: MnemonicSysretq, encoding: "REX.W 0F 07", modes: modesLong, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidSYSCALL}, flow: FlowControlReturn, implied: "r:RCX r:R11"},
	Invd: {mnemonic: MnemonicInvd, encoding: "0F 08", modes: modesAny, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidINTEL486}},
	Wbinvd: {mnemonic: MnemonicWbinvd, encoding: "0F 09", modes: modesAny, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidINTEL486}},
	Wbnoinvd: {mnemonic: MnemonicWbnoinvd, encoding: "F3 0F 09", modes: modesAny, flags: flagPrivileged, notOptions: DecoderNoWbnoinvd, cpuid: []CpuidFeature{CpuidWBNOINVD}},
	Cl1invmb: {mnemonic: MnemonicCl1invmb, encoding: "0F 0A", modes: modesLegacy, flags: flagPrivileged, options: DecoderCl1invmb, cpuid: []CpuidFeature{CpuidCL1INVMB}},
	Ud2: {mnemonic: MnemonicUd2, encoding: "0F 0B", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL286}, flow: FlowControlException},
	Prefetchw_m8: {mnemonic: MnemonicPrefetchw, encoding: "0F 0D /1", modes: modesAny, operands: "m", access: "nm", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidPREFETCHW}},
	Movups_xmm_xmmm128: {mnemonic: MnemonicMovups, encoding: "NP 0F 10 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Movups_xmmm128_xmm: {mnemonic: MnemonicMovups, encoding: "NP 0F 11 /r", modes: modesAny, operands: "xmmm xmm", access: "w r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Movupd_xmm_xmmm128: {mnemonic: MnemonicMovupd, encoding: "66 0F 10 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Movupd_xmmm128_xmm: {mnemonic: MnemonicMovupd, encoding: "66 0F 11 /r", modes: modesAny, operands: "xmmm xmm", access: "w r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Movss_xmm_xmmm32: {mnemonic: MnemonicMovss, encoding: "F3 0F 10 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidSSE}},
	Movss_xmmm32_xmm: {mnemonic: MnemonicMovss, encoding: "F3 0F 11 /r", modes: modesAny, operands: "xmmm xmm", access: "w r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidSSE}},
	Movsd_xmm_xmmm64: {mnemonic: MnemonicMovsd, encoding: "F2 0F 10 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidSSE2}},
	Movsd_xmmm64_xmm: {mnemonic: MnemonicMovsd, encoding: "F2 0F 11 /r", modes: modesAny, operands: "xmmm xmm", access: "w r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidSSE2}},
	Umov_rm8_r8: {mnemonic: MnemonicUmov, encoding: "0F 10 /r", modes: modesLegacy, operands: "rm8 r8", access: "w r", memory: MemorySizeUInt8, options: DecoderUmov, cpuid: []CpuidFeature{CpuidUMOV}},
	Umov_rm16_r16: {mnemonic: MnemonicUmov, encoding: "o16 0F 11 /r", modes: modesLegacy, operands: "rm16 r16", access: "w r", memory: MemorySizeUInt16, options: DecoderUmov, cpuid: []CpuidFeature{CpuidUMOV}},
	Umov_rm32_r32: {mnemonic: MnemonicUmov, encoding: "o32 0F 11 /r", modes: modesLegacy, operands: "rm32 r32", access: "w r", memory: MemorySizeUInt32, options: DecoderUmov, cpuid: []CpuidFeature{CpuidUMOV}},
	Umov_r8_rm8: {mnemonic: MnemonicUmov, encoding: "0F 12 /r", modes: modesLegacy, operands: "r8 rm8", access: "w r", memory: MemorySizeUInt8, options: DecoderUmov, cpuid: []CpuidFeature{CpuidUMOV}},
	Umov_r16_rm16: {mnemonic: MnemonicUmov, encoding: "o16 0F 13 /r", modes: modesLegacy, operands: "r16 rm16", access: "w r", memory: MemorySizeUInt16, options: DecoderUmov, cpuid: []CpuidFeature{CpuidUMOV}},
	Umov_r32_rm32: {mnemonic: MnemonicUmov, encoding: "o32 0F 13 /r", modes: modesLegacy, operands: "r32 rm32", access: "w r", memory: MemorySizeUInt32, options: DecoderUmov, cpuid: []CpuidFeature{CpuidUMOV}},
	Movlps_xmm_m64: {mnemonic: MnemonicMovlps, encoding: "NP 0F 12 /r", modes: modesAny, operands: "xmm m", access: "rw r", memory: MemorySizePacked64_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Movhlps_xmm_xmm: {mnemonic: MnemonicMovhlps, encoding: "NP 0F 12 /r", modes: modesAny, operands: "xmm rxmm", access: "rw r", cpuid: []CpuidFeature{CpuidSSE}},
	Movlps_m64_xmm: {mnemonic: MnemonicMovlps, encoding: "NP 0F 13 /r", modes: modesAny, operands: "m xmm", access: "w r", memory: MemorySizePacked64_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Movlpd_xmm_m64: {mnemonic: MnemonicMovlpd, encoding: "66 0F 12 /r", modes: modesAny, operands: "xmm m", access: "rw r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidSSE2}},
	Movlpd_m64_xmm: {mnemonic: MnemonicMovlpd, encoding: "66 0F 13 /r", modes: modesAny, operands: "m xmm", access: "w r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidSSE2}},
	Unpcklps_xmm_xmmm128: {mnemonic: MnemonicUnpcklps, encoding: "NP 0F 14 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Unpcklpd_xmm_xmmm128: {mnemonic: MnemonicUnpcklpd, encoding: "66 0F 14 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Unpckhps_xmm_xmmm128: {mnemonic: MnemonicUnpckhps, encoding: "NP 0F 15 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Unpckhpd_xmm_xmmm128: {mnemonic: MnemonicUnpckhpd, encoding: "66 0F 15 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Movhps_xmm_m64: {mnemonic: MnemonicMovhps, encoding: "NP 0F 16 /r", modes: modesAny, operands: "xmm m", access: "rw r", memory: MemorySizePacked64_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Movlhps_xmm_xmm: {mnemonic: MnemonicMovlhps, encoding: "NP 0F 16 /r", modes: modesAny, operands: "xmm rxmm", access: "rw r", cpuid: []CpuidFeature{CpuidSSE}},
	Movhps_m64_xmm: {mnemonic: MnemonicMovhps, encoding: "NP 0F 17 /r", modes: modesAny, operands: "m xmm", access: "w r", memory: MemorySizePacked64_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Movhpd_xmm_m64: {mnemonic: MnemonicMovhpd, encoding: "66 0F 16 /r", modes: modesAny, operands: "xmm m", access: "rw r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidSSE2}},
	Movhpd_m64_xmm: {mnemonic: MnemonicMovhpd, encoding: "66 0F 17 /r", modes: modesAny, operands: "m xmm", access: "w r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidSSE2}},
	Prefetchnta_m8: {mnemonic: MnemonicPrefetchnta, encoding: "0F 18 /0", modes: modesAny, operands: "m", access: "nm", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidSSE}},
	Prefetcht0_m8: {mnemonic: MnemonicPrefetcht0, encoding: "0F 18 /1", modes: modesAny, operands: "m", access: "nm", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidSSE}},
	Prefetcht1_m8: {mnemonic: MnemonicPrefetcht1, encoding: "0F 18 /2", modes: modesAny, operands: "m", access: "nm", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidSSE}},
	Prefetcht2_m8: {mnemonic: MnemonicPrefetcht2, encoding: "0F 18 /3", modes: modesAny, operands: "m", access: "nm", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidSSE}},
	Reservednop_rm16_r16_0F18: {mnemonic: MnemonicReservednop, encoding: "o16 0F 18 /r", modes: modesAny, operands: "rm16 r16", access: "n n", memory: MemorySizeUInt16, flags: flagReservedNop, cpuid: []CpuidFeature{CpuidMULTIBYTENOP}},
	Reservednop_rm32_r32_0F18: {mnemonic: MnemonicReservednop, encoding: "o32 0F 18 /r", modes: modesAny, operands: "rm32 r32", access: "n n", memory: MemorySizeUInt32, flags: flagReservedNop, cpuid: []CpuidFeature{CpuidMULTIBYTENOP}},
	Reservednop_rm64_r64_0F18: {mnemonic: MnemonicReservednop, encoding: "REX.W 0F 18 /r", modes: modesLong, operands: "rm64 r64", access: "n n", memory: MemorySizeUInt64, flags: flagReservedNop, cpuid: []CpuidFeature{CpuidMULTIBYTENOP}},
	Reservednop_rm16_r16_0F19: {mnemonic: MnemonicReservednop, encoding: "o16 0F 19 /r", modes: modesAny, operands: "rm16 r16", access: "n n", memory: MemorySizeUInt16, flags: flagReservedNop, cpuid: []CpuidFeature{CpuidMULTIBYTENOP}},
	Reservednop_rm32_r32_0F19: {mnemonic: MnemonicReservednop, encoding: "o32 0F 19 /r", modes: modesAny, operands: "rm32 r32", access: "n n", memory: MemorySizeUInt32, flags: flagReservedNop, cpuid: []CpuidFeature{CpuidMULTIBYTENOP}},
	Reservednop_rm64_r64_0F19: {mnemonic: MnemonicReservednop, encoding: "REX.W 0F 19 /r", modes: modesLong, operands: "rm64 r64", access: "n n", memory: MemorySizeUInt64, flags: flagReservedNop, cpuid: []CpuidFeature{CpuidMULTIBYTENOP}},
	Reservednop_rm16_r16_0F1A: {mnemonic: MnemonicReservednop, encoding: "o16 0F 1A /r", modes: modesAny, operands: "rm16 r16", access: "n n", memory: MemorySizeUInt16, flags: flagReservedNop, cpuid: []CpuidFeature{CpuidMULTIBYTENOP}},
	Reservednop_rm32_r32_0F1A: {mnemonic: MnemonicReservednop, encoding: "o32 0F 1A /r", modes: modesAny, operands: "rm32 r32", access: "n n", memory: MemorySizeUInt32, flags: flagReservedNop, cpuid: []CpuidFeature{CpuidMULTIBYTENOP}},
	Reservednop_rm64_r64_0F1A: {mnemonic: MnemonicReservednop, encoding: "REX.W 0F 1A /r", modes: modesLong, operands: "rm64 r64", access: "n n", memory: MemorySizeUInt64, flags: flagReservedNop, cpuid: []CpuidFeature{CpuidMULTIBYTENOP}},
	Reservednop_rm16_r16_0F1B: {mnemonic: MnemonicReservednop, encoding: "o16 0F 1B /r", modes: modesAny, operands: "rm16 r16", access: "n n", memory: MemorySizeUInt16, flags: flagReservedNop, cpuid: []CpuidFeature{CpuidMULTIBYTENOP}},
	Reservednop_rm32_r32_0F1B: {mnemonic: MnemonicReservednop, encoding: "o32 0F 1B /r", modes: modesAny, operands: "rm32 r32", access: "n n", memory: MemorySizeUInt32, flags: flagReservedNop, cpuid: []CpuidFeature{CpuidMULTIBYTENOP}},
	Reservednop_rm64_r64_0F1B: {mnemonic: MnemonicReservednop, encoding: "REX.W 0F 1B /r", modes: modesLong, operands: "rm64 r64", access: "n n", memory: MemorySizeUInt64, flags: flagReservedNop, cpuid: []CpuidFeature{CpuidMULTIBYTENOP}},
	Reservednop_rm16_r16_0F1C: {mnemonic: MnemonicReservednop, encoding: "o16 0F 1C /r", modes: modesAny, operands: "rm16 r16", access: "n n", memory: MemorySizeUInt16, flags: flagReservedNop, cpuid: []CpuidFeature{CpuidMULTIBYTENOP}},
	Reservednop_rm32_r32_0F1C: {mnemonic: MnemonicReservednop, encoding: "o32 0F 1C /r", modes: modesAny, operands: "rm32 r32", access: "n n", memory: MemorySizeUInt32, flags: flagReservedNop, cpuid: []CpuidFeature{CpuidMULTIBYTENOP}},
	Reservednop_rm64_r64_0F1C: {mnemonic: MnemonicReservednop, encoding: "REX.W 0F 1C /r", modes: modesLong, operands: "rm64 r64", access: "n n", memory: MemorySizeUInt64, flags: flagReservedNop, cpuid: []CpuidFeature{CpuidMULTIBYTENOP}},
	Reservednop_rm16_r16_0F1D: {mnemonic: MnemonicReservednop, encoding: "o16 0F 1D /r", modes: modesAny, operands: "rm16 r16", access: "n n", memory: MemorySizeUInt16, flags: flagReservedNop, cpuid: []CpuidFeature{CpuidMULTIBYTENOP}},
	Reservednop_rm32_r32_0F1D: {mnemonic: MnemonicReservednop, encoding: "o32 0F 1D /r", modes: modesAny, operands: "rm32 r32", access: "n n", memory: MemorySizeUInt32, flags: flagReservedNop, cpuid: []CpuidFeature{CpuidMULTIBYTENOP}},
	Reservednop_rm64_r64_0F1D: {mnemonic: MnemonicReservednop, encoding: "REX.W 0F 1D /r", modes: modesLong, operands: "rm64 r64", access: "n n", memory: MemorySizeUInt64, flags: flagReservedNop, cpuid: []CpuidFeature{CpuidMULTIBYTENOP}},
	Reservednop_rm16_r16_0F1E: {mnemonic: MnemonicReservednop, encoding: "o16 0F 1E /r", modes: modesAny, operands: "rm16 r16", access: "n n", memory: MemorySizeUInt16, flags: flagReservedNop, cpuid: []CpuidFeature{CpuidMULTIBYTENOP}},
	Reservednop_rm32_r32_0F1E: {mnemonic: MnemonicReservednop, encoding: "o32 0F 1E /r", modes: modesAny, operands: "rm32 r32", access: "n n", memory: MemorySizeUInt32, flags: flagReservedNop, cpuid: []CpuidFeature{CpuidMULTIBYTENOP}},
	Reservednop_rm64_r64_0F1E: {mnemonic: MnemonicReservednop, encoding: "REX.W 0F 1E /r", modes: modesLong, operands: "rm64 r64", access: "n n", memory: MemorySizeUInt64, flags: flagReservedNop, cpuid: []CpuidFeature{CpuidMULTIBYTENOP}},
	Bndcl_bnd_rm32: {mnemonic: MnemonicBndcl, encoding: "F3 0F 1A /r", modes: modesLegacy, operands: "bnd rm32", access: "r r", memory: MemorySizeUInt32, flags: flagMPX, cpuid: []CpuidFeature{CpuidMPX}},
	Bndcl_bnd_rm64: {mnemonic: MnemonicBndcl, encoding: "F3 0F 1A /r", modes: modesLong, operands: "bnd rm64", access: "r r", memory: MemorySizeUInt64, flags: flagMPX, cpuid: []CpuidFeature{CpuidMPX}},
	Bndcu_bnd_rm32: {mnemonic: MnemonicBndcu, encoding: "F2 0F 1A /r", modes: modesLegacy, operands: "bnd rm32", access: "r r", memory: MemorySizeUInt32, flags: flagMPX, cpuid: []CpuidFeature{CpuidMPX}},
	Bndcu_bnd_rm64: {mnemonic: MnemonicBndcu, encoding: "F2 0F 1A /r", modes: modesLong, operands: "bnd rm64", access: "r r", memory: MemorySizeUInt64, flags: flagMPX, cpuid: []CpuidFeature{CpuidMPX}},
	Bndcn_bnd_rm32: {mnemonic: MnemonicBndcn, encoding: "F2 0F 1B /r", modes: modesLegacy, operands: "bnd rm32", access: "r r", memory: MemorySizeUInt32, flags: flagMPX, cpuid: []CpuidFeature{CpuidMPX}},
	Bndcn_bnd_rm64: {mnemonic: MnemonicBndcn, encoding: "F2 0F 1B /r", modes: modesLong, operands: "bnd rm64", access: "r r", memory: MemorySizeUInt64, flags: flagMPX, cpuid: []CpuidFeature{CpuidMPX}},
	Bndmk_bnd_m32: {mnemonic: MnemonicBndmk, encoding: "F3 0F 1B /r", modes: modesLegacy, operands: "bnd m", access: "w nm", memory: MemorySizeUInt32, flags: flagMPX, cpuid: []CpuidFeature{CpuidMPX}},
	Bndmk_bnd_m64: {mnemonic: MnemonicBndmk, encoding: "F3 0F 1B /r", modes: modesLong, operands: "bnd m", access: "w nm", memory: MemorySizeUInt64, flags: flagMPX, cpuid: []CpuidFeature{CpuidMPX}},
	Bndmov_bnd_bndm64: {mnemonic: MnemonicBndmov, encoding: "66 0F 1A /r", modes: modesLegacy, operands: "bnd bndm", access: "w r", memory: MemorySizeBnd32, flags: flagMPX, cpuid: []CpuidFeature{CpuidMPX}},
	Bndmov_bnd_bndm128: {mnemonic: MnemonicBndmov, encoding: "66 0F 1A /r", modes: modesLong, operands: "bnd bndm", access: "w r", memory: MemorySizeBnd64, flags: flagMPX, cpuid: []CpuidFeature{CpuidMPX}},
	Bndmov_bndm64_bnd: {mnemonic: MnemonicBndmov, encoding: "66 0F 1B /r", modes: modesLegacy, operands: "bndm bnd", access: "w r", memory: MemorySizeBnd32, flags: flagMPX, cpuid: []CpuidFeature{CpuidMPX}},
	Bndmov_bndm128_bnd: {mnemonic: MnemonicBndmov, encoding: "66 0F 1B /r", modes: modesLong, operands: "bndm bnd", access: "w r", memory: MemorySizeBnd64, flags: flagMPX, cpuid: []CpuidFeature{CpuidMPX}},
	Bndldx_bnd_mib: {mnemonic: MnemonicBndldx, encoding: "NP 0F 1A /r", modes: modesAny, operands: "bnd m", access: "w r", memory: MemorySizeBnd64, flags: flagMPX, cpuid: []CpuidFeature{CpuidMPX}},
	Bndstx_mib_bnd: {mnemonic: MnemonicBndstx, encoding: "NP 0F 1B /r", modes: modesAny, operands: "m bnd", access: "w r", memory: MemorySizeBnd64, flags: flagMPX, cpuid: []CpuidFeature{CpuidMPX}},
	Endbr64: {mnemonic: MnemonicEndbr64, encoding: "F3 0F 1E FA", modes: modesAny, cpuid: []CpuidFeature{CpuidCET_IBT}},
	Endbr32: {mnemonic: MnemonicEndbr32, encoding: "F3 0F 1E FB", modes: modesAny, cpuid: []CpuidFeature{CpuidCET_IBT}},
	Nop_rm16: {mnemonic: MnemonicNop, encoding: "o16 0F 1F /0", modes: modesAny, operands: "rm16", access: "n", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidMULTIBYTENOP}},
	Nop_rm32: {mnemonic: MnemonicNop, encoding: "o32 0F 1F /0", modes: modesAny, operands: "rm32", access: "n", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidMULTIBYTENOP}},
	Nop_rm64: {mnemonic: MnemonicNop, encoding: "REX.W 0F 1F /0", modes: modesLong, operands: "rm64", access: "n", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMULTIBYTENOP}},
	Mov_r32_cr: {mnemonic: MnemonicMov, encoding: "0F 20 /r", modes: modesLegacy, operands: "rr32 cr", access: "w r", flags: flagPrivileged | flagModReg, cpuid: []CpuidFeature{CpuidINTEL386}},
	Mov_r64_cr: {mnemonic: MnemonicMov, encoding: "0F 20 /r", modes: modesLong, operands: "rr64 cr", access: "w r", flags: flagPrivileged | flagModReg, cpuid: []CpuidFeature{CpuidX64}},
	Mov_r32_dr: {mnemonic: MnemonicMov, encoding: "0F 21 /r", modes: modesLegacy, operands: "rr32 dr", access: "w r", flags: flagPrivileged | flagModReg, cpuid: []CpuidFeature{CpuidINTEL386}},
	Mov_r64_dr: {mnemonic: MnemonicMov, encoding: "0F 21 /r", modes: modesLong, operands: "rr64 dr", access: "w r", flags: flagPrivileged | flagModReg, cpuid: []CpuidFeature{CpuidX64}},
	Mov_cr_r32: {mnemonic: MnemonicMov, encoding: "0F 22 /r", modes: modesLegacy, operands: "cr rr32", access: "w r", flags: flagPrivileged | flagModReg, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "u=oszapc"},
	Mov_cr_r64: {mnemonic: MnemonicMov, encoding: "0F 22 /r", modes: modesLong, operands: "cr rr64", access: "w r", flags: flagPrivileged | flagModReg, cpuid: []CpuidFeature{CpuidX64}, rflags: "u=oszapc"},
	Mov_dr_r32: {mnemonic: MnemonicMov, encoding: "0F 23 /r", modes: modesLegacy, operands: "dr rr32", access: "w r", flags: flagPrivileged | flagModReg, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "u=oszapc"},
	Mov_dr_r64: {mnemonic: MnemonicMov, encoding: "0F 23 /r", modes: modesLong, operands: "dr rr64", access: "w r", flags: flagPrivileged | flagModReg, cpuid: []CpuidFeature{CpuidX64}, rflags: "u=oszapc"},
	Mov_r32_tr: {mnemonic: MnemonicMov, encoding: "0F 24 /r", modes: modesLegacy, operands: "rr32 tr", access: "w r", flags: flagPrivileged | flagModReg, options: DecoderMovTr, cpuid: []CpuidFeature{CpuidINTEL386_486_ONLY}},
	Mov_tr_r32: {mnemonic: MnemonicMov, encoding: "0F 26 /r", modes: modesLegacy, operands: "tr rr32", access: "w r", flags: flagPrivileged | flagModReg, options: DecoderMovTr, cpuid: []CpuidFeature{CpuidINTEL386_486_ONLY}},
	Movaps_xmm_xmmm128: {mnemonic: MnemonicMovaps, encoding: "NP 0F 28 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Movaps_xmmm128_xmm: {mnemonic: MnemonicMovaps, encoding: "NP 0F 29 /r", modes: modesAny, operands: "xmmm xmm", access: "w r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Movapd_xmm_xmmm128: {mnemonic: MnemonicMovapd, encoding: "66 0F 28 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Movapd_xmmm128_xmm: {mnemonic: MnemonicMovapd, encoding: "66 0F 29 /r", modes: modesAny, operands: "xmmm xmm", access: "w r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Cvtpi2ps_xmm_mmm64: {mnemonic: MnemonicCvtpi2ps, encoding: "NP 0F 2A /r", modes: modesAny, operands: "xmm mmm", access: "rw r", memory: MemorySizePacked64_Int32, cpuid: []CpuidFeature{CpuidSSE}},
	Cvtpi2pd_xmm_mmm64: {mnemonic: MnemonicCvtpi2pd, encoding: "66 0F 2A /r", modes: modesAny, operands: "xmm mmm", access: "w r", memory: MemorySizePacked64_Int32, cpuid: []CpuidFeature{CpuidSSE2}},
	Cvtsi2ss_xmm_rm32: {mnemonic: MnemonicCvtsi2ss, encoding: "F3 0F 2A /r", modes: modesAny, operands: "xmm rm32", access: "rw r", memory: MemorySizeInt32, cpuid: []CpuidFeature{CpuidSSE}},
	Cvtsi2ss_xmm_rm64: {mnemonic: MnemonicCvtsi2ss, encoding: "F3 REX.W 0F 2A /r", modes: modesLong, operands: "xmm rm64", access: "rw r", memory: MemorySizeInt64, cpuid: []CpuidFeature{CpuidSSE}},
	Cvtsi2sd_xmm_rm32: {mnemonic: MnemonicCvtsi2sd, encoding: "F2 0F 2A /r", modes: modesAny, operands: "xmm rm32", access: "rw r", memory: MemorySizeInt32, cpuid: []CpuidFeature{CpuidSSE2}},
	Cvtsi2sd_xmm_rm64: {mnemonic: MnemonicCvtsi2sd, encoding: "F2 REX.W 0F 2A /r", modes: modesLong, operands: "xmm rm64", access: "rw r", memory: MemorySizeInt64, cpuid: []CpuidFeature{CpuidSSE2}},
	Movntps_m128_xmm: {mnemonic: MnemonicMovntps, encoding: "NP 0F 2B /r", modes: modesAny, operands: "m xmm", access: "w r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Movntpd_m128_xmm: {mnemonic: MnemonicMovntpd, encoding: "66 0F 2B /r", modes: modesAny, operands: "m xmm", access: "w r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Cvttps2pi_mm_xmmm64: {mnemonic: MnemonicCvttps2pi, encoding: "NP 0F 2C /r", modes: modesAny, operands: "mm xmmm", access: "w r", memory: MemorySizePacked64_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Cvttpd2pi_mm_xmmm128: {mnemonic: MnemonicCvttpd2pi, encoding: "66 0F 2C /r", modes: modesAny, operands: "mm xmmm", access: "w r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Cvttss2si_r32_xmmm32: {mnemonic: MnemonicCvttss2si, encoding: "F3 0F 2C /r", modes: modesAny, operands: "r32 xmmm", access: "w r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidSSE}},
	Cvttss2si_r64_xmmm32: {mnemonic: MnemonicCvttss2si, encoding: "F3 REX.W 0F 2C /r", modes: modesLong, operands: "r64 xmmm", access: "w r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidSSE}},
	Cvttsd2si_r32_xmmm64: {mnemonic: MnemonicCvttsd2si, encoding: "F2 0F 2C /r", modes: modesAny, operands: "r32 xmmm", access: "w r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidSSE2}},
	Cvttsd2si_r64_xmmm64: {mnemonic: MnemonicCvttsd2si, encoding: "F2 REX.W 0F 2C /r", modes: modesLong, operands: "r64 xmmm", access: "w r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidSSE2}},
	Cvtps2pi_mm_xmmm64: {mnemonic: MnemonicCvtps2pi, encoding: "NP 0F 2D /r", modes: modesAny, operands: "mm xmmm", access: "w r", memory: MemorySizePacked64_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Cvtpd2pi_mm_xmmm128: {mnemonic: MnemonicCvtpd2pi, encoding: "66 0F 2D /r", modes: modesAny, operands: "mm xmmm", access: "w r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Cvtss2si_r32_xmmm32: {mnemonic: MnemonicCvtss2si, encoding: "F3 0F 2D /r", modes: modesAny, operands: "r32 xmmm", access: "w r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidSSE}},
	Cvtss2si_r64_xmmm32: {mnemonic: MnemonicCvtss2si, encoding: "F3 REX.W 0F 2D /r", modes: modesLong, operands: "r64 xmmm", access: "w r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidSSE}},
	Cvtsd2si_r32_xmmm64: {mnemonic: MnemonicCvtsd2si, encoding: "F2 0F 2D /r", modes: modesAny, operands: "r32 xmmm", access: "w r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidSSE2}},
	Cvtsd2si_r64_xmmm64: {mnemonic: MnemonicCvtsd2si, encoding: "F2 REX.W 0F 2D /r", modes: modesLong, operands: "r64 xmmm", access: "w r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidSSE2}},
	Ucomiss_xmm_xmmm32: {mnemonic: MnemonicUcomiss, encoding: "NP 0F 2E /r", modes: modesAny, operands: "xmm xmmm", access: "r r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidSSE}, rflags: "w=zpc c=osa"},
	Ucomisd_xmm_xmmm64: {mnemonic: MnemonicUcomisd, encoding: "66 0F 2E /r", modes: modesAny, operands: "xmm xmmm", access: "r r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidSSE2}, rflags: "w=zpc c=osa"},
	Comiss_xmm_xmmm32: {mnemonic: MnemonicComiss, encoding: "NP 0F 2F /r", modes: modesAny, operands: "xmm xmmm", access: "r r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidSSE}, rflags: "w=zpc c=osa"},
	Comisd_xmm_xmmm64: {mnemonic: MnemonicComisd, encoding: "66 0F 2F /r", modes: modesAny, operands: "xmm xmmm", access: "r r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidSSE2}, rflags: "w=zpc c=osa"},
	Wrmsr: {mnemonic: MnemonicWrmsr, encoding: "0F 30", modes: modesAny, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidMSR}, implied: "r:ECX r:EDX r:EAX"},
	Rdtsc: {mnemonic: MnemonicRdtsc, encoding: "0F 31", modes: modesAny, cpuid: []CpuidFeature{CpuidTSC}, implied: "w:EDX w:EAX"},
	Rdmsr: {mnemonic: MnemonicRdmsr, encoding: "0F 32", modes: modesAny, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidMSR}, implied: "r:ECX w:EDX w:EAX"},
	Rdpmc: {mnemonic: MnemonicRdpmc, encoding: "0F 33", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL686}, implied: "r:ECX w:EDX w:EAX"},
	Sysenter: {mnemonic: MnemonicSysenter, encoding: "0F 34", modes: modesAny, cpuid: []CpuidFeature{CpuidSEP}, flow: FlowControlCall, rflags: "c=iA"},
	Sysexitd: {mnemonic: MnemonicSysexit, encoding: "o32 0F 35", modes: modesAny, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidSEP}, flow: FlowControlReturn, implied: "r:ECX r:EDX"},
	Sysexitq: {mnemonic: MnemonicSysexitq, encoding: "REX.W 0F 35", modes: modesLong, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidSEP}, flow: FlowControlReturn, implied: "r:RCX r:RDX"},
	Getsec: {mnemonic: MnemonicGetsec, encoding: "NP 0F 37", modes: modesAny, cpuid: []CpuidFeature{CpuidSMX}, implied: "rw:EAX r:EBX"},
	Cmovo_r16_rm16: {mnemonic: MnemonicCmovo, encoding: "o16 0F 40 /r", modes: modesAny, operands: "r16 rm16", access: "cw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeO, rflags: "r=o"},
	Cmovo_r32_rm32: {mnemonic: MnemonicCmovo, encoding: "o32 0F 40 /r", modes: modesAny, operands: "r32 rm32", access: "cw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeO, rflags: "r=o"},
	Cmovo_r64_rm64: {mnemonic: MnemonicCmovo, encoding: "REX.W 0F 40 /r", modes: modesLong, operands: "r64 rm64", access: "cw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeO, rflags: "r=o"},
	Cmovno_r16_rm16: {mnemonic: MnemonicCmovno, encoding: "o16 0F 41 /r", modes: modesAny, operands: "r16 rm16", access: "cw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeNO, rflags: "r=o"},
	Cmovno_r32_rm32: {mnemonic: MnemonicCmovno, encoding: "o32 0F 41 /r", modes: modesAny, operands: "r32 rm32", access: "cw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeNO, rflags: "r=o"},
	Cmovno_r64_rm64: {mnemonic: MnemonicCmovno, encoding: "REX.W 0F 41 /r", modes: modesLong, operands: "r64 rm64", access: "cw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeNO, rflags: "r=o"},
	Cmovb_r16_rm16: {mnemonic: MnemonicCmovb, encoding: "o16 0F 42 /r", modes: modesAny, operands: "r16 rm16", access: "cw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeB, rflags: "r=c"},
	Cmovb_r32_rm32: {mnemonic: MnemonicCmovb, encoding: "o32 0F 42 /r", modes: modesAny, operands: "r32 rm32", access: "cw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeB, rflags: "r=c"},
	Cmovb_r64_rm64: {mnemonic: MnemonicCmovb, encoding: "REX.W 0F 42 /r", modes: modesLong, operands: "r64 rm64", access: "cw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeB, rflags: "r=c"},
	Cmovae_r16_rm16: {mnemonic: MnemonicCmovae, encoding: "o16 0F 43 /r", modes: modesAny, operands: "r16 rm16", access: "cw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeAE, rflags: "r=c"},
	Cmovae_r32_rm32: {mnemonic: MnemonicCmovae, encoding: "o32 0F 43 /r", modes: modesAny, operands: "r32 rm32", access: "cw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeAE, rflags: "r=c"},
	Cmovae_r64_rm64: {mnemonic: MnemonicCmovae, encoding: "REX.W 0F 43 /r", modes: modesLong, operands: "r64 rm64", access: "cw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeAE, rflags: "r=c"},
	Cmove_r16_rm16: {mnemonic: MnemonicCmove, encoding: "o16 0F 44 /r", modes: modesAny, operands: "r16 rm16", access: "cw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeE, rflags: "r=z"},
	Cmove_r32_rm32: {mnemonic: MnemonicCmove, encoding: "o32 0F 44 /r", modes: modesAny, operands: "r32 rm32", access: "cw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeE, rflags: "r=z"},
	Cmove_r64_rm64: {mnemonic: MnemonicCmove, encoding: "REX.W 0F 44 /r", modes: modesLong, operands: "r64 rm64", access: "cw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeE, rflags: "r=z"},
	Cmovne_r16_rm16: {mnemonic: MnemonicCmovne, encoding: "o16 0F 45 /r", modes: modesAny, operands: "r16 rm16", access: "cw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeNE, rflags: "r=z"},
	Cmovne_r32_rm32: {mnemonic: MnemonicCmovne, encoding: "o32 0F 45 /r", modes: modesAny, operands: "r32 rm32", access: "cw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeNE, rflags: "r=z"},
	Cmovne_r64_rm64: {mnemonic: MnemonicCmovne, encoding: "REX.W 0F 45 /r", modes: modesLong, operands: "r64 rm64", access: "cw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeNE, rflags: "r=z"},
	Cmovbe_r16_rm16: {mnemonic: MnemonicCmovbe, encoding: "o16 0F 46 /r", modes: modesAny, operands: "r16 rm16", access: "cw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeBE, rflags: "r=cz"},
	Cmovbe_r32_rm32: {mnemonic: MnemonicCmovbe, encoding: "o32 0F 46 /r", modes: modesAny, operands: "r32 rm32", access: "cw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeBE, rflags: "r=cz"},
	Cmovbe_r64_rm64: {mnemonic: MnemonicCmovbe, encoding: "REX.W 0F 46 /r", modes: modesLong, operands: "r64 rm64", access: "cw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeBE, rflags: "r=cz"},
	Cmova_r16_rm16: {mnemonic: MnemonicCmova, encoding: "o16 0F 47 /r", modes: modesAny, operands: "r16 rm16", access: "cw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeA, rflags: "r=cz"},
	Cmova_r32_rm32: {mnemonic: MnemonicCmova, encoding: "o32 0F 47 /r", modes: modesAny, operands: "r32 rm32", access: "cw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeA, rflags: "r=cz"},
	Cmova_r64_rm64: {mnemonic: MnemonicCmova, encoding: "REX.W 0F 47 /r", modes: modesLong, operands: "r64 rm64", access: "cw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeA, rflags: "r=cz"},
	Cmovs_r16_rm16: {mnemonic: MnemonicCmovs, encoding: "o16 0F 48 /r", modes: modesAny, operands: "r16 rm16", access: "cw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeS, rflags: "r=s"},
	Cmovs_r32_rm32: {mnemonic: MnemonicCmovs, encoding: "o32 0F 48 /r", modes: modesAny, operands: "r32 rm32", access: "cw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeS, rflags: "r=s"},
	Cmovs_r64_rm64: {mnemonic: MnemonicCmovs, encoding: "REX.W 0F 48 /r", modes: modesLong, operands: "r64 rm64", access: "cw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeS, rflags: "r=s"},
	Cmovns_r16_rm16: {mnemonic: MnemonicCmovns, encoding: "o16 0F 49 /r", modes: modesAny, operands: "r16 rm16", access: "cw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeNS, rflags: "r=s"},
	Cmovns_r32_rm32: {mnemonic: MnemonicCmovns, encoding: "o32 0F 49 /r", modes: modesAny, operands: "r32 rm32", access: "cw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeNS, rflags: "r=s"},
	Cmovns_r64_rm64: {mnemonic: MnemonicCmovns, encoding: "REX.W 0F 49 /r", modes: modesLong, operands: "r64 rm64", access: "cw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeNS, rflags: "r=s"},
	Cmovp_r16_rm16: {mnemonic: MnemonicCmovp, encoding: "o16 0F 4A /r", modes: modesAny, operands: "r16 rm16", access: "cw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeP, rflags: "r=p"},
	Cmovp_r32_rm32: {mnemonic: MnemonicCmovp, encoding: "o32 0F 4A /r", modes: modesAny, operands: "r32 rm32", access: "cw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeP, rflags: "r=p"},
	Cmovp_r64_rm64: {mnemonic: MnemonicCmovp, encoding: "REX.W 0F 4A /r", modes: modesLong, operands: "r64 rm64", access: "cw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeP, rflags: "r=p"},
	Cmovnp_r16_rm16: {mnemonic: MnemonicCmovnp, encoding: "o16 0F 4B /r", modes: modesAny, operands: "r16 rm16", access: "cw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeNP, rflags: "r=p"},
	Cmovnp_r32_rm32: {mnemonic: MnemonicCmovnp, encoding: "o32 0F 4B /r", modes: modesAny, operands: "r32 rm32", access: "cw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeNP, rflags: "r=p"},
	Cmovnp_r64_rm64: {mnemonic: MnemonicCmovnp, encoding: "REX.W 0F 4B /r", modes: modesLong, operands: "r64 rm64", access: "cw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeNP, rflags: "r=p"},
	Cmovl_r16_rm16: {mnemonic: MnemonicCmovl, encoding: "o16 0F 4C /r", modes: modesAny, operands: "r16 rm16", access: "cw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeL, rflags: "r=so"},
	Cmovl_r32_rm32: {mnemonic: MnemonicCmovl, encoding: "o32 0F 4C /r", modes: modesAny, operands: "r32 rm32", access: "cw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeL, rflags: "r=so"},
	Cmovl_r64_rm64: {mnemonic: MnemonicCmovl, encoding: "REX.W 0F 4C /r", modes: modesLong, operands: "r64 rm64", access: "cw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeL, rflags: "r=so"},
	Cmovge_r16_rm16: {mnemonic: MnemonicCmovge, encoding: "o16 0F 4D /r", modes: modesAny, operands: "r16 rm16", access: "cw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeGE, rflags: "r=so"},
	Cmovge_r32_rm32: {mnemonic: MnemonicCmovge, encoding: "o32 0F 4D /r", modes: modesAny, operands: "r32 rm32", access: "cw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeGE, rflags: "r=so"},
	Cmovge_r64_rm64: {mnemonic: MnemonicCmovge, encoding: "REX.W 0F 4D /r", modes: modesLong, operands: "r64 rm64", access: "cw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeGE, rflags: "r=so"},
	Cmovle_r16_rm16: {mnemonic: MnemonicCmovle, encoding: "o16 0F 4E /r", modes: modesAny, operands: "r16 rm16", access: "cw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeLE, rflags: "r=szo"},
	Cmovle_r32_rm32: {mnemonic: MnemonicCmovle, encoding: "o32 0F 4E /r", modes: modesAny, operands: "r32 rm32", access: "cw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeLE, rflags: "r=szo"},
	Cmovle_r64_rm64: {mnemonic: MnemonicCmovle, encoding: "REX.W 0F 4E /r", modes: modesLong, operands: "r64 rm64", access: "cw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeLE, rflags: "r=szo"},
	Cmovg_r16_rm16: {mnemonic: MnemonicCmovg, encoding: "o16 0F 4F /r", modes: modesAny, operands: "r16 rm16", access: "cw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeG, rflags: "r=szo"},
	Cmovg_r32_rm32: {mnemonic: MnemonicCmovg, encoding: "o32 0F 4F /r", modes: modesAny, operands: "r32 rm32", access: "cw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeG, rflags: "r=szo"},
	Cmovg_r64_rm64: {mnemonic: MnemonicCmovg, encoding: "REX.W 0F 4F /r", modes: modesLong, operands: "r64 rm64", access: "cw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidCMOV}, cc: ConditionCodeG, rflags: "r=szo"},
	Movmskps_r32_xmm: {mnemonic: MnemonicMovmskps, encoding: "NP 0F 50 /r", modes: modesAny, operands: "r32 rxmm", access: "w r", cpuid: []CpuidFeature{CpuidSSE}},
	Movmskps_r64_xmm: {mnemonic: MnemonicMovmskps, encoding: "NP REX.W 0F 50 /r", modes: modesLong, operands: "r64 rxmm", access: "w r", cpuid: []CpuidFeature{CpuidSSE}},
	Movmskpd_r32_xmm: {mnemonic: MnemonicMovmskpd, encoding: "66 0F 50 /r", modes: modesAny, operands: "r32 rxmm", access: "w r", cpuid: []CpuidFeature{CpuidSSE2}},
	Movmskpd_r64_xmm: {mnemonic: MnemonicMovmskpd, encoding: "66 REX.W 0F 50 /r", modes: modesLong, operands: "r64 rxmm", access: "w r", cpuid: []CpuidFeature{CpuidSSE2}},
	Sqrtps_xmm_xmmm128: {mnemonic: MnemonicSqrtps, encoding: "NP 0F 51 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Sqrtpd_xmm_xmmm128: {mnemonic: MnemonicSqrtpd, encoding: "66 0F 51 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Sqrtss_xmm_xmmm32: {mnemonic: MnemonicSqrtss, encoding: "F3 0F 51 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidSSE}},
	Sqrtsd_xmm_xmmm64: {mnemonic: MnemonicSqrtsd, encoding: "F2 0F 51 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidSSE2}},
	Rsqrtps_xmm_xmmm128: {mnemonic: MnemonicRsqrtps, encoding: "NP 0F 52 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Rsqrtss_xmm_xmmm32: {mnemonic: MnemonicRsqrtss, encoding: "F3 0F 52 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidSSE}},
	Rcpps_xmm_xmmm128: {mnemonic: MnemonicRcpps, encoding: "NP 0F 53 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Rcpss_xmm_xmmm32: {mnemonic: MnemonicRcpss, encoding: "F3 0F 53 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidSSE}},
	Andps_xmm_xmmm128: {mnemonic: MnemonicAndps, encoding: "NP 0F 54 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Andpd_xmm_xmmm128: {mnemonic: MnemonicAndpd, encoding: "66 0F 54 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Andnps_xmm_xmmm128: {mnemonic: MnemonicAndnps, encoding: "NP 0F 55 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Andnpd_xmm_xmmm128: {mnemonic: MnemonicAndnpd, encoding: "66 0F 55 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Orps_xmm_xmmm128: {mnemonic: MnemonicOrps, encoding: "NP 0F 56 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Orpd_xmm_xmmm128: {mnemonic: MnemonicOrpd, encoding: "66 0F 56 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Xorps_xmm_xmmm128: {mnemonic: MnemonicXorps, encoding: "NP 0F 57 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Xorpd_xmm_xmmm128: {mnemonic: MnemonicXorpd, encoding: "66 0F 57 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Addps_xmm_xmmm128: {mnemonic: MnemonicAddps, encoding: "NP 0F 58 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Addpd_xmm_xmmm128: {mnemonic: MnemonicAddpd, encoding: "66 0F 58 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Addss_xmm_xmmm32: {mnemonic: MnemonicAddss, encoding: "F3 0F 58 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidSSE}},
	Addsd_xmm_xmmm64: {mnemonic: MnemonicAddsd, encoding: "F2 0F 58 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidSSE2}},
	Mulps_xmm_xmmm128: {mnemonic: MnemonicMulps, encoding: "NP 0F 59 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Mulpd_xmm_xmmm128: {mnemonic: MnemonicMulpd, encoding: "66 0F 59 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Mulss_xmm_xmmm32: {mnemonic: MnemonicMulss, encoding: "F3 0F 59 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidSSE}},
	Mulsd_xmm_xmmm64: {mnemonic: MnemonicMulsd, encoding: "F2 0F 59 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidSSE2}},
	Cvtps2pd_xmm_xmmm64: {mnemonic: MnemonicCvtps2pd, encoding: "NP 0F 5A /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked64_Float32, cpuid: []CpuidFeature{CpuidSSE2}},
	Cvtpd2ps_xmm_xmmm128: {mnemonic: MnemonicCvtpd2ps, encoding: "66 0F 5A /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Cvtss2sd_xmm_xmmm32: {mnemonic: MnemonicCvtss2sd, encoding: "F3 0F 5A /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidSSE2}},
	Cvtsd2ss_xmm_xmmm64: {mnemonic: MnemonicCvtsd2ss, encoding: "F2 0F 5A /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidSSE2}},
	Cvtdq2ps_xmm_xmmm128: {mnemonic: MnemonicCvtdq2ps, encoding: "NP 0F 5B /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_Int32, cpuid: []CpuidFeature{CpuidSSE2}},
	Cvtps2dq_xmm_xmmm128: {mnemonic: MnemonicCvtps2dq, encoding: "66 0F 5B /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE2}},
	Cvttps2dq_xmm_xmmm128: {mnemonic: MnemonicCvttps2dq, encoding: "F3 0F 5B /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE2}},
	Subps_xmm_xmmm128: {mnemonic: MnemonicSubps, encoding: "NP 0F 5C /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Subpd_xmm_xmmm128: {mnemonic: MnemonicSubpd, encoding: "66 0F 5C /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Subss_xmm_xmmm32: {mnemonic: MnemonicSubss, encoding: "F3 0F 5C /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidSSE}},
	Subsd_xmm_xmmm64: {mnemonic: MnemonicSubsd, encoding: "F2 0F 5C /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidSSE2}},
	Minps_xmm_xmmm128: {mnemonic: MnemonicMinps, encoding: "NP 0F 5D /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Minpd_xmm_xmmm128: {mnemonic: MnemonicMinpd, encoding: "66 0F 5D /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Minss_xmm_xmmm32: {mnemonic: MnemonicMinss, encoding: "F3 0F 5D /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidSSE}},
	Minsd_xmm_xmmm64: {mnemonic: MnemonicMinsd, encoding: "F2 0F 5D /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidSSE2}},
	Divps_xmm_xmmm128: {mnemonic: MnemonicDivps, encoding: "NP 0F 5E /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Divpd_xmm_xmmm128: {mnemonic: MnemonicDivpd, encoding: "66 0F 5E /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Divss_xmm_xmmm32: {mnemonic: MnemonicDivss, encoding: "F3 0F 5E /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidSSE}},
	Divsd_xmm_xmmm64: {mnemonic: MnemonicDivsd, encoding: "F2 0F 5E /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidSSE2}},
	Maxps_xmm_xmmm128: {mnemonic: MnemonicMaxps, encoding: "NP 0F 5F /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Maxpd_xmm_xmmm128: {mnemonic: MnemonicMaxpd, encoding: "66 0F 5F /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Maxss_xmm_xmmm32: {mnemonic: MnemonicMaxss, encoding: "F3 0F 5F /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidSSE}},
	Maxsd_xmm_xmmm64: {mnemonic: MnemonicMaxsd, encoding: "F2 0F 5F /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidSSE2}},
	Punpcklbw_mm_mmm64: {mnemonic: MnemonicPunpcklbw, encoding: "NP 0F 60 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Punpcklbw_xmm_xmmm128: {mnemonic: MnemonicPunpcklbw, encoding: "66 0F 60 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Punpcklwd_mm_mmm64: {mnemonic: MnemonicPunpcklwd, encoding: "NP 0F 61 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Punpcklwd_xmm_xmmm128: {mnemonic: MnemonicPunpcklwd, encoding: "66 0F 61 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Punpckldq_mm_mmm64: {mnemonic: MnemonicPunpckldq, encoding: "NP 0F 62 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Punpckldq_xmm_xmmm128: {mnemonic: MnemonicPunpckldq, encoding: "66 0F 62 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Packsswb_mm_mmm64: {mnemonic: MnemonicPacksswb, encoding: "NP 0F 63 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Packsswb_xmm_xmmm128: {mnemonic: MnemonicPacksswb, encoding: "66 0F 63 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Pcmpgtb_mm_mmm64: {mnemonic: MnemonicPcmpgtb, encoding: "NP 0F 64 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Pcmpgtb_xmm_xmmm128: {mnemonic: MnemonicPcmpgtb, encoding: "66 0F 64 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Pcmpgtw_mm_mmm64: {mnemonic: MnemonicPcmpgtw, encoding: "NP 0F 65 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Pcmpgtw_xmm_xmmm128: {mnemonic: MnemonicPcmpgtw, encoding: "66 0F 65 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Pcmpgtd_mm_mmm64: {mnemonic: MnemonicPcmpgtd, encoding: "NP 0F 66 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Pcmpgtd_xmm_xmmm128: {mnemonic: MnemonicPcmpgtd, encoding: "66 0F 66 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Packuswb_mm_mmm64: {mnemonic: MnemonicPackuswb, encoding: "NP 0F 67 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Packuswb_xmm_xmmm128: {mnemonic: MnemonicPackuswb, encoding: "66 0F 67 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Punpckhbw_mm_mmm64: {mnemonic: MnemonicPunpckhbw, encoding: "NP 0F 68 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Punpckhbw_xmm_xmmm128: {mnemonic: MnemonicPunpckhbw, encoding: "66 0F 68 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Punpckhwd_mm_mmm64: {mnemonic: MnemonicPunpckhwd, encoding: "NP 0F 69 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Punpckhwd_xmm_xmmm128: {mnemonic: MnemonicPunpckhwd, encoding: "66 0F 69 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Punpckhdq_mm_mmm64: {mnemonic: MnemonicPunpckhdq, encoding: "NP 0F 6A /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Punpckhdq_xmm_xmmm128: {mnemonic: MnemonicPunpckhdq, encoding: "66 0F 6A /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Packssdw_mm_mmm64: {mnemonic: MnemonicPackssdw, encoding: "NP 0F 6B /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Packssdw_xmm_xmmm128: {mnemonic: MnemonicPackssdw, encoding: "66 0F 6B /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Punpcklqdq_xmm_xmmm128: {mnemonic: MnemonicPunpcklqdq, encoding: "66 0F 6C /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Punpckhqdq_xmm_xmmm128: {mnemonic: MnemonicPunpckhqdq, encoding: "66 0F 6D /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Movd_mm_rm32: {mnemonic: MnemonicMovd, encoding: "NP 0F 6E /r", modes: modesAny, operands: "mm rm32", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidMMX}},
	Movq_mm_rm64: {mnemonic: MnemonicMovq, encoding: "NP REX.W 0F 6E /r", modes: modesLong, operands: "mm rm64", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Movd_xmm_rm32: {mnemonic: MnemonicMovd, encoding: "66 0F 6E /r", modes: modesAny, operands: "xmm rm32", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidSSE2}},
	Movq_xmm_rm64: {mnemonic: MnemonicMovq, encoding: "66 REX.W 0F 6E /r", modes: modesLong, operands: "xmm rm64", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE2}},
	Movq_mm_mmm64: {mnemonic: MnemonicMovq, encoding: "NP 0F 6F /r", modes: modesAny, operands: "mm mmm", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Movdqa_xmm_xmmm128: {mnemonic: MnemonicMovdqa, encoding: "66 0F 6F /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Movdqu_xmm_xmmm128: {mnemonic: MnemonicMovdqu, encoding: "F3 0F 6F /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Pshufw_mm_mmm64_imm8: {mnemonic: MnemonicPshufw, encoding: "NP 0F 70 /r ib", modes: modesAny, operands: "mm mmm ib", access: "w r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE}},
	Pshufd_xmm_xmmm128_imm8: {mnemonic: MnemonicPshufd, encoding: "66 0F 70 /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "w r r", memory: MemorySizePacked128_UInt32, cpuid: []CpuidFeature{CpuidSSE2}},
	Pshufhw_xmm_xmmm128_imm8: {mnemonic: MnemonicPshufhw, encoding: "F3 0F 70 /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "w r r", memory: MemorySizePacked128_UInt16, cpuid: []CpuidFeature{CpuidSSE2}},
	Pshuflw_xmm_xmmm128_imm8: {mnemonic: MnemonicPshuflw, encoding: "F2 0F 70 /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "w r r", memory: MemorySizePacked128_UInt16, cpuid: []CpuidFeature{CpuidSSE2}},
	Psrlw_mm_imm8: {mnemonic: MnemonicPsrlw, encoding: "NP 0F 71 /2 ib", modes: modesAny, operands: "rmm ib", access: "rw r", cpuid: []CpuidFeature{CpuidMMX}},
	Psrlw_xmm_imm8: {mnemonic: MnemonicPsrlw, encoding: "66 0F 71 /2 ib", modes: modesAny, operands: "rxmm ib", access: "rw r", cpuid: []CpuidFeature{CpuidSSE2}},
	Psraw_mm_imm8: {mnemonic: MnemonicPsraw, encoding: "NP 0F 71 /4 ib", modes: modesAny, operands: "rmm ib", access: "rw r", cpuid: []CpuidFeature{CpuidMMX}},
	Psraw_xmm_imm8: {mnemonic: MnemonicPsraw, encoding: "66 0F 71 /4 ib", modes: modesAny, operands: "rxmm ib", access: "rw r", cpuid: []CpuidFeature{CpuidSSE2}},
	Psllw_mm_imm8: {mnemonic: MnemonicPsllw, encoding: "NP 0F 71 /6 ib", modes: modesAny, operands: "rmm ib", access: "rw r", cpuid: []CpuidFeature{CpuidMMX}},
	Psllw_xmm_imm8: {mnemonic: MnemonicPsllw, encoding: "66 0F 71 /6 ib", modes: modesAny, operands: "rxmm ib", access: "rw r", cpuid: []CpuidFeature{CpuidSSE2}},
	Psrld_mm_imm8: {mnemonic: MnemonicPsrld, encoding: "NP 0F 72 /2 ib", modes: modesAny, operands: "rmm ib", access: "rw r", cpuid: []CpuidFeature{CpuidMMX}},
	Psrld_xmm_imm8: {mnemonic: MnemonicPsrld, encoding: "66 0F 72 /2 ib", modes: modesAny, operands: "rxmm ib", access: "rw r", cpuid: []CpuidFeature{CpuidSSE2}},
	Psrad_mm_imm8: {mnemonic: MnemonicPsrad, encoding: "NP 0F 72 /4 ib", modes: modesAny, operands: "rmm ib", access: "rw r", cpuid: []CpuidFeature{CpuidMMX}},
	Psrad_xmm_imm8: {mnemonic: MnemonicPsrad, encoding: "66 0F 72 /4 ib", modes: modesAny, operands: "rxmm ib", access: "rw r", cpuid: []CpuidFeature{CpuidSSE2}},
	Pslld_mm_imm8: {mnemonic: MnemonicPslld, encoding: "NP 0F 72 /6 ib", modes: modesAny, operands: "rmm ib", access: "rw r", cpuid: []CpuidFeature{CpuidMMX}},
	Pslld_xmm_imm8: {mnemonic: MnemonicPslld, encoding: "66 0F 72 /6 ib", modes: modesAny, operands: "rxmm ib", access: "rw r", cpuid: []CpuidFeature{CpuidSSE2}},
	Psrlq_mm_imm8: {mnemonic: MnemonicPsrlq, encoding: "NP 0F 73 /2 ib", modes: modesAny, operands: "rmm ib", access: "rw r", cpuid: []CpuidFeature{CpuidMMX}},
	Psrlq_xmm_imm8: {mnemonic: MnemonicPsrlq, encoding: "66 0F 73 /2 ib", modes: modesAny, operands: "rxmm ib", access: "rw r", cpuid: []CpuidFeature{CpuidSSE2}},
	Psrldq_xmm_imm8: {mnemonic: MnemonicPsrldq, encoding: "66 0F 73 /3 ib", modes: modesAny, operands: "rxmm ib", access: "rw r", cpuid: []CpuidFeature{CpuidSSE2}},
	Psllq_mm_imm8: {mnemonic: MnemonicPsllq, encoding: "NP 0F 73 /6 ib", modes: modesAny, operands: "rmm ib", access: "rw r", cpuid: []CpuidFeature{CpuidMMX}},
	Psllq_xmm_imm8: {mnemonic: MnemonicPsllq, encoding: "66 0F 73 /6 ib", modes: modesAny, operands: "rxmm ib", access: "rw r", cpuid: []CpuidFeature{CpuidSSE2}},
	Pslldq_xmm_imm8: {mnemonic: MnemonicPslldq, encoding: "66 0F 73 /7 ib", modes: modesAny, operands: "rxmm ib", access: "rw r", cpuid: []CpuidFeature{CpuidSSE2}},
	Pcmpeqb_mm_mmm64: {mnemonic: MnemonicPcmpeqb, encoding: "NP 0F 74 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Pcmpeqb_xmm_xmmm128: {mnemonic: MnemonicPcmpeqb, encoding: "66 0F 74 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Pcmpeqw_mm_mmm64: {mnemonic: MnemonicPcmpeqw, encoding: "NP 0F 75 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Pcmpeqw_xmm_xmmm128: {mnemonic: MnemonicPcmpeqw, encoding: "66 0F 75 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Pcmpeqd_mm_mmm64: {mnemonic: MnemonicPcmpeqd, encoding: "NP 0F 76 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Pcmpeqd_xmm_xmmm128: {mnemonic: MnemonicPcmpeqd, encoding: "66 0F 76 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Emms: {mnemonic: MnemonicEmms, encoding: "NP 0F 77", modes: modesAny, cpuid: []CpuidFeature{CpuidMMX}},
	Movd_rm32_mm: {mnemonic: MnemonicMovd, encoding: "NP 0F 7E /r", modes: modesAny, operands: "rm32 mm", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidMMX}},
	Movq_rm64_mm: {mnemonic: MnemonicMovq, encoding: "NP REX.W 0F 7E /r", modes: modesLong, operands: "rm64 mm", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Movd_rm32_xmm: {mnemonic: MnemonicMovd, encoding: "66 0F 7E /r", modes: modesAny, operands: "rm32 xmm", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidSSE2}},
	Movq_rm64_xmm: {mnemonic: MnemonicMovq, encoding: "66 REX.W 0F 7E /r", modes: modesLong, operands: "rm64 xmm", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE2}},
	Movq_xmm_xmmm64: {mnemonic: MnemonicMovq, encoding: "F3 0F 7E /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE2}},
	Movq_mmm64_mm: {mnemonic: MnemonicMovq, encoding: "NP 0F 7F /r", modes: modesAny, operands: "mmm mm", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Movdqa_xmmm128_xmm: {mnemonic: MnemonicMovdqa, encoding: "66 0F 7F /r", modes: modesAny, operands: "xmmm xmm", access: "w r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Movdqu_xmmm128_xmm: {mnemonic: MnemonicMovdqu, encoding: "F3 0F 7F /r", modes: modesAny, operands: "xmmm xmm", access: "w r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Jo_rel16: {mnemonic: MnemonicJo, encoding: "o16 0F 80 cw", modes: modesAny, operands: "rel16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeO, rflags: "r=o"},
	Jo_rel32_32: {mnemonic: MnemonicJo, encoding: "o32 0F 80 cd", modes: modesLegacy, operands: "rel32_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeO, rflags: "r=o"},
	Jo_rel32_64: {mnemonic: MnemonicJo, encoding: "f64 o64 0F 80 cd", modes: modesLong, operands: "rel32_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeO, rflags: "r=o"},
	Jno_rel16: {mnemonic: MnemonicJno, encoding: "o16 0F 81 cw", modes: modesAny, operands: "rel16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeNO, rflags: "r=o"},
	Jno_rel32_32: {mnemonic: MnemonicJno, encoding: "o32 0F 81 cd", modes: modesLegacy, operands: "rel32_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeNO, rflags: "r=o"},
	Jno_rel32_64: {mnemonic: MnemonicJno, encoding: "f64 o64 0F 81 cd", modes: modesLong, operands: "rel32_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeNO, rflags: "r=o"},
	Jb_rel16: {mnemonic: MnemonicJb, encoding: "o16 0F 82 cw", modes: modesAny, operands: "rel16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeB, rflags: "r=c"},
	Jb_rel32_32: {mnemonic: MnemonicJb, encoding: "o32 0F 82 cd", modes: modesLegacy, operands: "rel32_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeB, rflags: "r=c"},
	Jb_rel32_64: {mnemonic: MnemonicJb, encoding: "f64 o64 0F 82 cd", modes: modesLong, operands: "rel32_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeB, rflags: "r=c"},
	Jae_rel16: {mnemonic: MnemonicJae, encoding: "o16 0F 83 cw", modes: modesAny, operands: "rel16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeAE, rflags: "r=c"},
	Jae_rel32_32: {mnemonic: MnemonicJae, encoding: "o32 0F 83 cd", modes: modesLegacy, operands: "rel32_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeAE, rflags: "r=c"},
	Jae_rel32_64: {mnemonic: MnemonicJae, encoding: "f64 o64 0F 83 cd", modes: modesLong, operands: "rel32_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeAE, rflags: "r=c"},
	Je_rel16: {mnemonic: MnemonicJe, encoding: "o16 0F 84 cw", modes: modesAny, operands: "rel16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeE, rflags: "r=z"},
	Je_rel32_32: {mnemonic: MnemonicJe, encoding: "o32 0F 84 cd", modes: modesLegacy, operands: "rel32_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeE, rflags: "r=z"},
	Je_rel32_64: {mnemonic: MnemonicJe, encoding: "f64 o64 0F 84 cd", modes: modesLong, operands: "rel32_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeE, rflags: "r=z"},
	Jne_rel16: {mnemonic: MnemonicJne, encoding: "o16 0F 85 cw", modes: modesAny, operands: "rel16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeNE, rflags: "r=z"},
	Jne_rel32_32: {mnemonic: MnemonicJne, encoding: "o32 0F 85 cd", modes: modesLegacy, operands: "rel32_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeNE, rflags: "r=z"},
	Jne_rel32_64: {mnemonic: MnemonicJne, encoding: "f64 o64 0F 85 cd", modes: modesLong, operands: "rel32_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeNE, rflags: "r=z"},
	Jbe_rel16: {mnemonic: MnemonicJbe, encoding: "o16 0F 86 cw", modes: modesAny, operands: "rel16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeBE, rflags: "r=cz"},
	Jbe_rel32_32: {mnemonic: MnemonicJbe, encoding: "o32 0F 86 cd", modes: modesLegacy, operands: "rel32_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeBE, rflags: "r=cz"},
	Jbe_rel32_64: {mnemonic: MnemonicJbe, encoding: "f64 o64 0F 86 cd", modes: modesLong, operands: "rel32_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeBE, rflags: "r=cz"},
	Ja_rel16: {mnemonic: MnemonicJa, encoding: "o16 0F 87 cw", modes: modesAny, operands: "rel16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeA, rflags: "r=cz"},
	Ja_rel32_32: {mnemonic: MnemonicJa, encoding: "o32 0F 87 cd", modes: modesLegacy, operands: "rel32_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeA, rflags: "r=cz"},
	Ja_rel32_64: {mnemonic: MnemonicJa, encoding: "f64 o64 0F 87 cd", modes: modesLong, operands: "rel32_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeA, rflags: "r=cz"},
	Js_rel16: {mnemonic: MnemonicJs, encoding: "o16 0F 88 cw", modes: modesAny, operands: "rel16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeS, rflags: "r=s"},
	Js_rel32_32: {mnemonic: MnemonicJs, encoding: "o32 0F 88 cd", modes: modesLegacy, operands: "rel32_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeS, rflags: "r=s"},
	Js_rel32_64: {mnemonic: MnemonicJs, encoding: "f64 o64 0F 88 cd", modes: modesLong, operands: "rel32_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeS, rflags: "r=s"},
	Jns_rel16: {mnemonic: MnemonicJns, encoding: "o16 0F 89 cw", modes: modesAny, operands: "rel16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeNS, rflags: "r=s"},
	Jns_rel32_32: {mnemonic: MnemonicJns, encoding: "o32 0F 89 cd", modes: modesLegacy, operands: "rel32_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeNS, rflags: "r=s"},
	Jns_rel32_64: {mnemonic: MnemonicJns, encoding: "f64 o64 0F 89 cd", modes: modesLong, operands: "rel32_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeNS, rflags: "r=s"},
	Jp_rel16: {mnemonic: MnemonicJp, encoding: "o16 0F 8A cw", modes: modesAny, operands: "rel16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeP, rflags: "r=p"},
	Jp_rel32_32: {mnemonic: MnemonicJp, encoding: "o32 0F 8A cd", modes: modesLegacy, operands: "rel32_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeP, rflags: "r=p"},
	Jp_rel32_64: {mnemonic: MnemonicJp, encoding: "f64 o64 0F 8A cd", modes: modesLong, operands: "rel32_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeP, rflags: "r=p"},
	Jnp_rel16: {mnemonic: MnemonicJnp, encoding: "o16 0F 8B cw", modes: modesAny, operands: "rel16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeNP, rflags: "r=p"},
	Jnp_rel32_32: {mnemonic: MnemonicJnp, encoding: "o32 0F 8B cd", modes: modesLegacy, operands: "rel32_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeNP, rflags: "r=p"},
	Jnp_rel32_64: {mnemonic: MnemonicJnp, encoding: "f64 o64 0F 8B cd", modes: modesLong, operands: "rel32_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeNP, rflags: "r=p"},
	Jl_rel16: {mnemonic: MnemonicJl, encoding: "o16 0F 8C cw", modes: modesAny, operands: "rel16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeL, rflags: "r=so"},
	Jl_rel32_32: {mnemonic: MnemonicJl, encoding: "o32 0F 8C cd", modes: modesLegacy, operands: "rel32_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeL, rflags: "r=so"},
	Jl_rel32_64: {mnemonic: MnemonicJl, encoding: "f64 o64 0F 8C cd", modes: modesLong, operands: "rel32_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeL, rflags: "r=so"},
	Jge_rel16: {mnemonic: MnemonicJge, encoding: "o16 0F 8D cw", modes: modesAny, operands: "rel16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeGE, rflags: "r=so"},
	Jge_rel32_32: {mnemonic: MnemonicJge, encoding: "o32 0F 8D cd", modes: modesLegacy, operands: "rel32_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeGE, rflags: "r=so"},
	Jge_rel32_64: {mnemonic: MnemonicJge, encoding: "f64 o64 0F 8D cd", modes: modesLong, operands: "rel32_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeGE, rflags: "r=so"},
	Jle_rel16: {mnemonic: MnemonicJle, encoding: "o16 0F 8E cw", modes: modesAny, operands: "rel16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeLE, rflags: "r=szo"},
	Jle_rel32_32: {mnemonic: MnemonicJle, encoding: "o32 0F 8E cd", modes: modesLegacy, operands: "rel32_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeLE, rflags: "r=szo"},
	Jle_rel32_64: {mnemonic: MnemonicJle, encoding: "f64 o64 0F 8E cd", modes: modesLong, operands: "rel32_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeLE, rflags: "r=szo"},
	Jg_rel16: {mnemonic: MnemonicJg, encoding: "o16 0F 8F cw", modes: modesAny, operands: "rel16", access: "r", flags: flagAMD64 | flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeG, rflags: "r=szo"},
	Jg_rel32_32: {mnemonic: MnemonicJg, encoding: "o32 0F 8F cd", modes: modesLegacy, operands: "rel32_32", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlConditionalBranch, cc: ConditionCodeG, rflags: "r=szo"},
	Jg_rel32_64: {mnemonic: MnemonicJg, encoding: "f64 o64 0F 8F cd", modes: modesLong, operands: "rel32_64", access: "r", flags: flagBnd, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlConditionalBranch, cc: ConditionCodeG, rflags: "r=szo"},
	Seto_rm8: {mnemonic: MnemonicSeto, encoding: "0F 90 /r", modes: modesAny, operands: "rm8", access: "w", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL386}, cc: ConditionCodeO, rflags: "r=o"},
	Setno_rm8: {mnemonic: MnemonicSetno, encoding: "0F 91 /r", modes: modesAny, operands: "rm8", access: "w", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL386}, cc: ConditionCodeNO, rflags: "r=o"},
	Setb_rm8: {mnemonic: MnemonicSetb, encoding: "0F 92 /r", modes: modesAny, operands: "rm8", access: "w", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL386}, cc: ConditionCodeB, rflags: "r=c"},
	Setae_rm8: {mnemonic: MnemonicSetae, encoding: "0F 93 /r", modes: modesAny, operands: "rm8", access: "w", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL386}, cc: ConditionCodeAE, rflags: "r=c"},
	Sete_rm8: {mnemonic: MnemonicSete, encoding: "0F 94 /r", modes: modesAny, operands: "rm8", access: "w", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL386}, cc: ConditionCodeE, rflags: "r=z"},
	Setne_rm8: {mnemonic: MnemonicSetne, encoding: "0F 95 /r", modes: modesAny, operands: "rm8", access: "w", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL386}, cc: ConditionCodeNE, rflags: "r=z"},
	Setbe_rm8: {mnemonic: MnemonicSetbe, encoding: "0F 96 /r", modes: modesAny, operands: "rm8", access: "w", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL386}, cc: ConditionCodeBE, rflags: "r=cz"},
	Seta_rm8: {mnemonic: MnemonicSeta, encoding: "0F 97 /r", modes: modesAny, operands: "rm8", access: "w", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL386}, cc: ConditionCodeA, rflags: "r=cz"},
	Sets_rm8: {mnemonic: MnemonicSets, encoding: "0F 98 /r", modes: modesAny, operands: "rm8", access: "w", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL386}, cc: ConditionCodeS, rflags: "r=s"},
	Setns_rm8: {mnemonic: MnemonicSetns, encoding: "0F 99 /r", modes: modesAny, operands: "rm8", access: "w", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL386}, cc: ConditionCodeNS, rflags: "r=s"},
	Setp_rm8: {mnemonic: MnemonicSetp, encoding: "0F 9A /r", modes: modesAny, operands: "rm8", access: "w", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL386}, cc: ConditionCodeP, rflags: "r=p"},
	Setnp_rm8: {mnemonic: MnemonicSetnp, encoding: "0F 9B /r", modes: modesAny, operands: "rm8", access: "w", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL386}, cc: ConditionCodeNP, rflags: "r=p"},
	Setl_rm8: {mnemonic: MnemonicSetl, encoding: "0F 9C /r", modes: modesAny, operands: "rm8", access: "w", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL386}, cc: ConditionCodeL, rflags: "r=so"},
	Setge_rm8: {mnemonic: MnemonicSetge, encoding: "0F 9D /r", modes: modesAny, operands: "rm8", access: "w", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL386}, cc: ConditionCodeGE, rflags: "r=so"},
	Setle_rm8: {mnemonic: MnemonicSetle, encoding: "0F 9E /r", modes: modesAny, operands: "rm8", access: "w", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL386}, cc: ConditionCodeLE, rflags: "r=szo"},
	Setg_rm8: {mnemonic: MnemonicSetg, encoding: "0F 9F /r", modes: modesAny, operands: "rm8", access: "w", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL386}, cc: ConditionCodeG, rflags: "r=szo"},
	Pushw_FS: {mnemonic: MnemonicPush, encoding: "o16 0F A0", modes: modesAny, operands: "FS", access: "r", cpuid: []CpuidFeature{CpuidINTEL386}, implied: "rw:sp push:UInt16", stack: -2},
	Pushd_FS: {mnemonic: MnemonicPush, encoding: "o32 0F A0", modes: modesLegacy, operands: "FS", access: "r", cpuid: []CpuidFeature{CpuidINTEL386}, implied: "rw:sp push:UInt32", stack: -4},
	Pushq_FS: {mnemonic: MnemonicPush, encoding: "d64 o64 0F A0", modes: modesLong, operands: "FS", access: "r", cpuid: []CpuidFeature{CpuidX64}, implied: "rw:sp push:UInt64", stack: -8},
	Popw_FS: {mnemonic: MnemonicPop, encoding: "o16 0F A1", modes: modesAny, operands: "FS", access: "w", cpuid: []CpuidFeature{CpuidINTEL386}, implied: "rw:sp pop:UInt16", stack: 2},
	Popd_FS: {mnemonic: MnemonicPop, encoding: "o32 0F A1", modes: modesLegacy, operands: "FS", access: "w", cpuid: []CpuidFeature{CpuidINTEL386}, implied: "rw:sp pop:UInt32", stack: 4},
	Popq_FS: {mnemonic: MnemonicPop, encoding: "d64 o64 0F A1", modes: modesLong, operands: "FS", access: "w", cpuid: []CpuidFeature{CpuidX64}, implied: "rw:sp pop:UInt64", stack: 8},
	Pushw_GS: {mnemonic: MnemonicPush, encoding: "o16 0F A8", modes: modesAny, operands: "GS", access: "r", cpuid: []CpuidFeature{CpuidINTEL386}, implied: "rw:sp push:UInt16", stack: -2},
	Pushd_GS: {mnemonic: MnemonicPush, encoding: "o32 0F A8", modes: modesLegacy, operands: "GS", access: "r", cpuid: []CpuidFeature{CpuidINTEL386}, implied: "rw:sp push:UInt32", stack: -4},
	Pushq_GS: {mnemonic: MnemonicPush, encoding: "d64 o64 0F A8", modes: modesLong, operands: "GS", access: "r", cpuid: []CpuidFeature{CpuidX64}, implied: "rw:sp push:UInt64", stack: -8},
	Popw_GS: {mnemonic: MnemonicPop, encoding: "o16 0F A9", modes: modesAny, operands: "GS", access: "w", cpuid: []CpuidFeature{CpuidINTEL386}, implied: "rw:sp pop:UInt16", stack: 2},
	Popd_GS: {mnemonic: MnemonicPop, encoding: "o32 0F A9", modes: modesLegacy, operands: "GS", access: "w", cpuid: []CpuidFeature{CpuidINTEL386}, implied: "rw:sp pop:UInt32", stack: 4},
	Popq_GS: {mnemonic: MnemonicPop, encoding: "d64 o64 0F A9", modes: modesLong, operands: "GS", access: "w", cpuid: []CpuidFeature{CpuidX64}, implied: "rw:sp pop:UInt64", stack: 8},
	Cpuid: {mnemonic: MnemonicCpuid, encoding: "0F A2", modes: modesAny, cpuid: []CpuidFeature{CpuidCPUID}, implied: "rw:EAX rcw:ECX w:EBX w:EDX"},
	Bt_rm16_r16: {mnemonic: MnemonicBt, encoding: "o16 0F A3 /r", modes: modesAny, operands: "rm16 r16", access: "r r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=c u=oszap"},
	Bt_rm32_r32: {mnemonic: MnemonicBt, encoding: "o32 0F A3 /r", modes: modesAny, operands: "rm32 r32", access: "r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=c u=oszap"},
	Bt_rm64_r64: {mnemonic: MnemonicBt, encoding: "REX.W 0F A3 /r", modes: modesLong, operands: "rm64 r64", access: "r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=c u=oszap"},
	Shld_rm16_r16_imm8: {mnemonic: MnemonicShld, encoding: "o16 0F A4 /r ib", modes: modesAny, operands: "rm16 r16 ib", access: "rw r r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szpc u=oa"},
	Shld_rm32_r32_imm8: {mnemonic: MnemonicShld, encoding: "o32 0F A4 /r ib", modes: modesAny, operands: "rm32 r32 ib", access: "rw r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szpc u=oa"},
	Shld_rm64_r64_imm8: {mnemonic: MnemonicShld, encoding: "REX.W 0F A4 /r ib", modes: modesLong, operands: "rm64 r64 ib", access: "rw r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szpc u=oa"},
	Shld_rm16_r16_CL: {mnemonic: MnemonicShld, encoding: "o16 0F A5 /r", modes: modesAny, operands: "rm16 r16 CL", access: "rw r r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szpc u=oa"},
	Shld_rm32_r32_CL: {mnemonic: MnemonicShld, encoding: "o32 0F A5 /r", modes: modesAny, operands: "rm32 r32 CL", access: "rw r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szpc u=oa"},
	Shld_rm64_r64_CL: {mnemonic: MnemonicShld, encoding: "REX.W 0F A5 /r", modes: modesLong, operands: "rm64 r64 CL", access: "rw r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szpc u=oa"},
	Xbts_r16_rm16: {mnemonic: MnemonicXbts, encoding: "o16 0F A6 /r", modes: modesLegacy, operands: "r16 rm16", access: "w r", memory: MemorySizeUInt16, options: DecoderXbts, cpuid: []CpuidFeature{CpuidINTEL386_A0_ONLY}, implied: "r:AX r:CL"},
	Xbts_r32_rm32: {mnemonic: MnemonicXbts, encoding: "o32 0F A6 /r", modes: modesLegacy, operands: "r32 rm32", access: "w r", memory: MemorySizeUInt32, options: DecoderXbts, cpuid: []CpuidFeature{CpuidINTEL386_A0_ONLY}, implied: "r:EAX r:CL"},
	Ibts_rm16_r16: {mnemonic: MnemonicIbts, encoding: "o16 0F A7 /r", modes: modesLegacy, operands: "rm16 r16", access: "w r", memory: MemorySizeUInt16, options: DecoderXbts, cpuid: []CpuidFeature{CpuidINTEL386_A0_ONLY}, implied: "r:AX r:CL"},
	Ibts_rm32_r32: {mnemonic: MnemonicIbts, encoding: "o32 0F A7 /r", modes: modesLegacy, operands: "rm32 r32", access: "w r", memory: MemorySizeUInt32, options: DecoderXbts, cpuid: []CpuidFeature{CpuidINTEL386_A0_ONLY}, implied: "r:EAX r:CL"},
	Cmpxchg486_rm8_r8: {mnemonic: MnemonicCmpxchg, encoding: "0F A6 /r", modes: modesLegacy, operands: "rm8 r8", access: "rcw r", memory: MemorySizeUInt8, options: DecoderCmpxchg486A, cpuid: []CpuidFeature{CpuidINTEL486_A_ONLY}, rflags: "w=oszapc", implied: "rcw:AL"},
	Cmpxchg486_rm16_r16: {mnemonic: MnemonicCmpxchg, encoding: "o16 0F A7 /r", modes: modesLegacy, operands: "rm16 r16", access: "rcw r", memory: MemorySizeUInt16, options: DecoderCmpxchg486A, cpuid: []CpuidFeature{CpuidINTEL486_A_ONLY}, rflags: "w=oszapc", implied: "rcw:AX"},
	Cmpxchg486_rm32_r32: {mnemonic: MnemonicCmpxchg, encoding: "o32 0F A7 /r", modes: modesLegacy, operands: "rm32 r32", access: "rcw r", memory: MemorySizeUInt32, options: DecoderCmpxchg486A, cpuid: []CpuidFeature{CpuidINTEL486_A_ONLY}, rflags: "w=oszapc", implied: "rcw:EAX"},
	Rsm: {mnemonic: MnemonicRsm, encoding: "0F AA", modes: modesAny, cpuid: []CpuidFeature{CpuidINTEL386}, flow: FlowControlReturn, rflags: "w=oszapcdiA"},
	Bts_rm16_r16: {mnemonic: MnemonicBts, encoding: "o16 0F AB /r", modes: modesAny, operands: "rm16 r16", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=c u=oszap"},
	Bts_rm32_r32: {mnemonic: MnemonicBts, encoding: "o32 0F AB /r", modes: modesAny, operands: "rm32 r32", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=c u=oszap"},
	Bts_rm64_r64: {mnemonic: MnemonicBts, encoding: "REX.W 0F AB /r", modes: modesLong, operands: "rm64 r64", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=c u=oszap"},
	Shrd_rm16_r16_imm8: {mnemonic: MnemonicShrd, encoding: "o16 0F AC /r ib", modes: modesAny, operands: "rm16 r16 ib", access: "rw r r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szpc u=oa"},
	Shrd_rm32_r32_imm8: {mnemonic: MnemonicShrd, encoding: "o32 0F AC /r ib", modes: modesAny, operands: "rm32 r32 ib", access: "rw r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szpc u=oa"},
	Shrd_rm64_r64_imm8: {mnemonic: MnemonicShrd, encoding: "REX.W 0F AC /r ib", modes: modesLong, operands: "rm64 r64 ib", access: "rw r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szpc u=oa"},
	Shrd_rm16_r16_CL: {mnemonic: MnemonicShrd, encoding: "o16 0F AD /r", modes: modesAny, operands: "rm16 r16 CL", access: "rw r r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szpc u=oa"},
	Shrd_rm32_r32_CL: {mnemonic: MnemonicShrd, encoding: "o32 0F AD /r", modes: modesAny, operands: "rm32 r32 CL", access: "rw r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=szpc u=oa"},
	Shrd_rm64_r64_CL: {mnemonic: MnemonicShrd, encoding: "REX.W 0F AD /r", modes: modesLong, operands: "rm64 r64 CL", access: "rw r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=szpc u=oa"},
	Fxsave_m512byte: {mnemonic: MnemonicFxsave, encoding: "NP 0F AE /0", modes: modesAny, operands: "m", access: "w", memory: MemorySizeFxsave_512Byte, flags: flagSaveRestore, cpuid: []CpuidFeature{CpuidFXSR}},
	Fxsave64_m512byte: {mnemonic: MnemonicFxsave64, encoding: "NP REX.W 0F AE /0", modes: modesLong, operands: "m", access: "w", memory: MemorySizeFxsave64_512Byte, flags: flagSaveRestore, cpuid: []CpuidFeature{CpuidFXSR}},
	Fxrstor_m512byte: {mnemonic: MnemonicFxrstor, encoding: "NP 0F AE /1", modes: modesAny, operands: "m", access: "r", memory: MemorySizeFxsave_512Byte, flags: flagSaveRestore, cpuid: []CpuidFeature{CpuidFXSR}},
	Fxrstor64_m512byte: {mnemonic: MnemonicFxrstor64, encoding: "NP REX.W 0F AE /1", modes: modesLong, operands: "m", access: "r", memory: MemorySizeFxsave64_512Byte, flags: flagSaveRestore, cpuid: []CpuidFeature{CpuidFXSR}},
	Ldmxcsr_m32: {mnemonic: MnemonicLdmxcsr, encoding: "NP 0F AE /2", modes: modesAny, operands: "m", access: "r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidSSE}},
	Stmxcsr_m32: {mnemonic: MnemonicStmxcsr, encoding: "NP 0F AE /3", modes: modesAny, operands: "m", access: "w", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidSSE}},
	Xsave_mem: {mnemonic: MnemonicXsave, encoding: "NP 0F AE /4", modes: modesAny, operands: "m", access: "w", memory: MemorySizeXsave, flags: flagSaveRestore, cpuid: []CpuidFeature{CpuidXSAVE}, implied: "r:EDX r:EAX"},
	Xsave64_mem: {mnemonic: MnemonicXsave64, encoding: "NP REX.W 0F AE /4", modes: modesLong, operands: "m", access: "w", memory: MemorySizeXsave64, flags: flagSaveRestore, cpuid: []CpuidFeature{CpuidXSAVE}, implied: "r:EDX r:EAX"},
	Xrstor_mem: {mnemonic: MnemonicXrstor, encoding: "NP 0F AE /5", modes: modesAny, operands: "m", access: "r", memory: MemorySizeXsave, flags: flagSaveRestore, cpuid: []CpuidFeature{CpuidXSAVE}, implied: "r:EDX r:EAX"},
	Xrstor64_mem: {mnemonic: MnemonicXrstor64, encoding: "NP REX.W 0F AE /5", modes: modesLong, operands: "m", access: "r", memory: MemorySizeXsave64, flags: flagSaveRestore, cpuid: []CpuidFeature{CpuidXSAVE}, implied: "r:EDX r:EAX"},
	Xsaveopt_mem: {mnemonic: MnemonicXsaveopt, encoding: "NP 0F AE /6", modes: modesAny, operands: "m", access: "w", memory: MemorySizeXsave, flags: flagSaveRestore, cpuid: []CpuidFeature{CpuidXSAVEOPT}, implied: "r:EDX r:EAX"},
	Clflush_m8: {mnemonic: MnemonicClflush, encoding: "NP 0F AE /7", modes: modesAny, operands: "m", access: "nm", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidCLFSH}},
	Lfence: {mnemonic: MnemonicLfence, encoding: "NP 0F AE E8", modes: modesAny, cpuid: []CpuidFeature{CpuidSSE2}},
	Mfence: {mnemonic: MnemonicMfence, encoding: "NP 0F AE F0", modes: modesAny, cpuid: []CpuidFeature{CpuidSSE2}},
	Sfence: {mnemonic: MnemonicSfence, encoding: "NP 0F AE F8", modes: modesAny, cpuid: []CpuidFeature{CpuidSSE}},
	Rdfsbase_r32: {mnemonic: MnemonicRdfsbase, encoding: "F3 0F AE 11:000:bbb", modes: modesLong, operands: "rr32", access: "w", cpuid: []CpuidFeature{CpuidFSGSBASE}},
	Rdfsbase_r64: {mnemonic: MnemonicRdfsbase, encoding: "F3 REX.W 0F AE 11:000:bbb", modes: modesLong, operands: "rr64", access: "w", cpuid: []CpuidFeature{CpuidFSGSBASE}},
	Rdgsbase_r32: {mnemonic: MnemonicRdgsbase, encoding: "F3 0F AE 11:001:bbb", modes: modesLong, operands: "rr32", access: "w", cpuid: []CpuidFeature{CpuidFSGSBASE}},
	Rdgsbase_r64: {mnemonic: MnemonicRdgsbase, encoding: "F3 REX.W 0F AE 11:001:bbb", modes: modesLong, operands: "rr64", access: "w", cpuid: []CpuidFeature{CpuidFSGSBASE}},
	Wrfsbase_r32: {mnemonic: MnemonicWrfsbase, encoding: "F3 0F AE 11:010:bbb", modes: modesLong, operands: "rr32", access: "r", cpuid: []CpuidFeature{CpuidFSGSBASE}},
	Wrfsbase_r64: {mnemonic: MnemonicWrfsbase, encoding: "F3 REX.W 0F AE 11:010:bbb", modes: modesLong, operands: "rr64", access: "r", cpuid: []CpuidFeature{CpuidFSGSBASE}},
	Wrgsbase_r32: {mnemonic: MnemonicWrgsbase, encoding: "F3 0F AE 11:011:bbb", modes: modesLong, operands: "rr32", access: "r", cpuid: []CpuidFeature{CpuidFSGSBASE}},
	Wrgsbase_r64: {mnemonic: MnemonicWrgsbase, encoding: "F3 REX.W 0F AE 11:011:bbb", modes: modesLong, operands: "rr64", access: "r", cpuid: []CpuidFeature{CpuidFSGSBASE}},
	Imul_r16_rm16: {mnemonic: MnemonicImul, encoding: "o16 0F AF /r", modes: modesAny, operands: "r16 rm16", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oc u=szap"},
	Imul_r32_rm32: {mnemonic: MnemonicImul, encoding: "o32 0F AF /r", modes: modesAny, operands: "r32 rm32", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=oc u=szap"},
	Imul_r64_rm64: {mnemonic: MnemonicImul, encoding: "REX.W 0F AF /r", modes: modesLong, operands: "r64 rm64", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oc u=szap"},
	Cmpxchg_rm8_r8: {mnemonic: MnemonicCmpxchg, encoding: "0F B0 /r", modes: modesAny, operands: "rm8 r8", access: "rcw r", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL486}, rflags: "w=oszapc", implied: "rcw:AL"},
	Cmpxchg_rm16_r16: {mnemonic: MnemonicCmpxchg, encoding: "o16 0F B1 /r", modes: modesAny, operands: "rm16 r16", access: "rcw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL486}, rflags: "w=oszapc", implied: "rcw:AX"},
	Cmpxchg_rm32_r32: {mnemonic: MnemonicCmpxchg, encoding: "o32 0F B1 /r", modes: modesAny, operands: "rm32 r32", access: "rcw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL486}, rflags: "w=oszapc", implied: "rcw:EAX"},
	Cmpxchg_rm64_r64: {mnemonic: MnemonicCmpxchg, encoding: "REX.W 0F B1 /r", modes: modesLong, operands: "rm64 r64", access: "rcw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszapc", implied: "rcw:RAX"},
	Lss_r16_m1616: {mnemonic: MnemonicLss, encoding: "o16 0F B2 /r", modes: modesAny, operands: "r16 m", access: "w r", memory: MemorySizeSegPtr16, cpuid: []CpuidFeature{CpuidINTEL386}},
	Lss_r32_m1632: {mnemonic: MnemonicLss, encoding: "o32 0F B2 /r", modes: modesAny, operands: "r32 m", access: "w r", memory: MemorySizeSegPtr32, cpuid: []CpuidFeature{CpuidINTEL386}},
	Lss_r64_m1664: {mnemonic: MnemonicLss, encoding: "REX.W 0F B2 /r", modes: modesLong, operands: "r64 m", access: "w r", memory: MemorySizeSegPtr64, cpuid: []CpuidFeature{CpuidX64}},
	Lfs_r16_m1616: {mnemonic: MnemonicLfs, encoding: "o16 0F B4 /r", modes: modesAny, operands: "r16 m", access: "w r", memory: MemorySizeSegPtr16, cpuid: []CpuidFeature{CpuidINTEL386}},
	Lfs_r32_m1632: {mnemonic: MnemonicLfs, encoding: "o32 0F B4 /r", modes: modesAny, operands: "r32 m", access: "w r", memory: MemorySizeSegPtr32, cpuid: []CpuidFeature{CpuidINTEL386}},
	Lfs_r64_m1664: {mnemonic: MnemonicLfs, encoding: "REX.W 0F B4 /r", modes: modesLong, operands: "r64 m", access: "w r", memory: MemorySizeSegPtr64, cpuid: []CpuidFeature{CpuidX64}},
	Lgs_r16_m1616: {mnemonic: MnemonicLgs, encoding: "o16 0F B5 /r", modes: modesAny, operands: "r16 m", access: "w r", memory: MemorySizeSegPtr16, cpuid: []CpuidFeature{CpuidINTEL386}},
	Lgs_r32_m1632: {mnemonic: MnemonicLgs, encoding: "o32 0F B5 /r", modes: modesAny, operands: "r32 m", access: "w r", memory: MemorySizeSegPtr32, cpuid: []CpuidFeature{CpuidINTEL386}},
	Lgs_r64_m1664: {mnemonic: MnemonicLgs, encoding: "REX.W 0F B5 /r", modes: modesLong, operands: "r64 m", access: "w r", memory: MemorySizeSegPtr64, cpuid: []CpuidFeature{CpuidX64}},
	Btr_rm16_r16: {mnemonic: MnemonicBtr, encoding: "o16 0F B3 /r", modes: modesAny, operands: "rm16 r16", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=c u=oszap"},
	Btr_rm32_r32: {mnemonic: MnemonicBtr, encoding: "o32 0F B3 /r", modes: modesAny, operands: "rm32 r32", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=c u=oszap"},
	Btr_rm64_r64: {mnemonic: MnemonicBtr, encoding: "REX.W 0F B3 /r", modes: modesLong, operands: "rm64 r64", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=c u=oszap"},
	Movzx_r16_rm8: {mnemonic: MnemonicMovzx, encoding: "o16 0F B6 /r", modes: modesAny, operands: "r16 rm8", access: "w r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL386}},
	Movzx_r32_rm8: {mnemonic: MnemonicMovzx, encoding: "o32 0F B6 /r", modes: modesAny, operands: "r32 rm8", access: "w r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL386}},
	Movzx_r64_rm8: {mnemonic: MnemonicMovzx, encoding: "REX.W 0F B6 /r", modes: modesLong, operands: "r64 rm8", access: "w r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidX64}},
	Movzx_r16_rm16: {mnemonic: MnemonicMovzx, encoding: "o16 0F B7 /r", modes: modesAny, operands: "r16 rm16", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL386}},
	Movzx_r32_rm16: {mnemonic: MnemonicMovzx, encoding: "o32 0F B7 /r", modes: modesAny, operands: "r32 rm16", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL386}},
	Movzx_r64_rm16: {mnemonic: MnemonicMovzx, encoding: "REX.W 0F B7 /r", modes: modesLong, operands: "r64 rm16", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidX64}},
	Popcnt_r16_rm16: {mnemonic: MnemonicPopcnt, encoding: "o16 F3 0F B8 /r", modes: modesAny, operands: "r16 rm16", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidPOPCNT}, rflags: "w=z c=osapc"},
	Popcnt_r32_rm32: {mnemonic: MnemonicPopcnt, encoding: "o32 F3 0F B8 /r", modes: modesAny, operands: "r32 rm32", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidPOPCNT}, rflags: "w=z c=osapc"},
	Popcnt_r64_rm64: {mnemonic: MnemonicPopcnt, encoding: "F3 REX.W 0F B8 /r", modes: modesLong, operands: "r64 rm64", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidPOPCNT}, rflags: "w=z c=osapc"},
	Ud1_r16_rm16: {mnemonic: MnemonicUd1, encoding: "o16 0F B9 /r", modes: modesAny, operands: "r16 rm16", access: "n n", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL286}, flow: FlowControlException},
	Ud1_r32_rm32: {mnemonic: MnemonicUd1, encoding: "o32 0F B9 /r", modes: modesAny, operands: "r32 rm32", access: "n n", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL286}, flow: FlowControlException},
	Ud1_r64_rm64: {mnemonic: MnemonicUd1, encoding: "REX.W 0F B9 /r", modes: modesLong, operands: "r64 rm64", access: "n n", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlException},
	Bt_rm16_imm8: {mnemonic: MnemonicBt, encoding: "o16 0F BA /4 ib", modes: modesAny, operands: "rm16 ib", access: "r r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=c u=oszap"},
	Bt_rm32_imm8: {mnemonic: MnemonicBt, encoding: "o32 0F BA /4 ib", modes: modesAny, operands: "rm32 ib", access: "r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=c u=oszap"},
	Bt_rm64_imm8: {mnemonic: MnemonicBt, encoding: "REX.W 0F BA /4 ib", modes: modesLong, operands: "rm64 ib", access: "r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=c u=oszap"},
	Bts_rm16_imm8: {mnemonic: MnemonicBts, encoding: "o16 0F BA /5 ib", modes: modesAny, operands: "rm16 ib", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=c u=oszap"},
	Bts_rm32_imm8: {mnemonic: MnemonicBts, encoding: "o32 0F BA /5 ib", modes: modesAny, operands: "rm32 ib", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=c u=oszap"},
	Bts_rm64_imm8: {mnemonic: MnemonicBts, encoding: "REX.W 0F BA /5 ib", modes: modesLong, operands: "rm64 ib", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=c u=oszap"},
	Btr_rm16_imm8: {mnemonic: MnemonicBtr, encoding: "o16 0F BA /6 ib", modes: modesAny, operands: "rm16 ib", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=c u=oszap"},
	Btr_rm32_imm8: {mnemonic: MnemonicBtr, encoding: "o32 0F BA /6 ib", modes: modesAny, operands: "rm32 ib", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=c u=oszap"},
	Btr_rm64_imm8: {mnemonic: MnemonicBtr, encoding: "REX.W 0F BA /6 ib", modes: modesLong, operands: "rm64 ib", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=c u=oszap"},
	Btc_rm16_imm8: {mnemonic: MnemonicBtc, encoding: "o16 0F BA /7 ib", modes: modesAny, operands: "rm16 ib", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=c u=oszap"},
	Btc_rm32_imm8: {mnemonic: MnemonicBtc, encoding: "o32 0F BA /7 ib", modes: modesAny, operands: "rm32 ib", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=c u=oszap"},
	Btc_rm64_imm8: {mnemonic: MnemonicBtc, encoding: "REX.W 0F BA /7 ib", modes: modesLong, operands: "rm64 ib", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=c u=oszap"},
	Btc_rm16_r16: {mnemonic: MnemonicBtc, encoding: "o16 0F BB /r", modes: modesAny, operands: "rm16 r16", access: "rw r", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=c u=oszap"},
	Btc_rm32_r32: {mnemonic: MnemonicBtc, encoding: "o32 0F BB /r", modes: modesAny, operands: "rm32 r32", access: "rw r", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=c u=oszap"},
	Btc_rm64_r64: {mnemonic: MnemonicBtc, encoding: "REX.W 0F BB /r", modes: modesLong, operands: "rm64 r64", access: "rw r", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=c u=oszap"},
	Bsf_r16_rm16: {mnemonic: MnemonicBsf, encoding: "o16 0F BC /r", modes: modesAny, operands: "r16 rm16", access: "cw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=z u=osapc"},
	Bsf_r32_rm32: {mnemonic: MnemonicBsf, encoding: "o32 0F BC /r", modes: modesAny, operands: "r32 rm32", access: "cw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=z u=osapc"},
	Bsf_r64_rm64: {mnemonic: MnemonicBsf, encoding: "REX.W 0F BC /r", modes: modesLong, operands: "r64 rm64", access: "cw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=z u=osapc"},
	Bsr_r16_rm16: {mnemonic: MnemonicBsr, encoding: "o16 0F BD /r", modes: modesAny, operands: "r16 rm16", access: "cw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=z u=osapc"},
	Bsr_r32_rm32: {mnemonic: MnemonicBsr, encoding: "o32 0F BD /r", modes: modesAny, operands: "r32 rm32", access: "cw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL386}, rflags: "w=z u=osapc"},
	Bsr_r64_rm64: {mnemonic: MnemonicBsr, encoding: "REX.W 0F BD /r", modes: modesLong, operands: "r64 rm64", access: "cw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=z u=osapc"},
	Tzcnt_r16_rm16: {mnemonic: MnemonicTzcnt, encoding: "o16 F3 0F BC /r", modes: modesAny, operands: "r16 rm16", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidBMI1}, rflags: "w=zc u=osap"},
	Tzcnt_r32_rm32: {mnemonic: MnemonicTzcnt, encoding: "o32 F3 0F BC /r", modes: modesAny, operands: "r32 rm32", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidBMI1}, rflags: "w=zc u=osap"},
	Tzcnt_r64_rm64: {mnemonic: MnemonicTzcnt, encoding: "F3 REX.W 0F BC /r", modes: modesLong, operands: "r64 rm64", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidBMI1}, rflags: "w=zc u=osap"},
	Lzcnt_r16_rm16: {mnemonic: MnemonicLzcnt, encoding: "o16 F3 0F BD /r", modes: modesAny, operands: "r16 rm16", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidLZCNT}, rflags: "w=zc u=osap"},
	Lzcnt_r32_rm32: {mnemonic: MnemonicLzcnt, encoding: "o32 F3 0F BD /r", modes: modesAny, operands: "r32 rm32", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidLZCNT}, rflags: "w=zc u=osap"},
	Lzcnt_r64_rm64: {mnemonic: MnemonicLzcnt, encoding: "F3 REX.W 0F BD /r", modes: modesLong, operands: "r64 rm64", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidLZCNT}, rflags: "w=zc u=osap"},
	Movsx_r16_rm8: {mnemonic: MnemonicMovsx, encoding: "o16 0F BE /r", modes: modesAny, operands: "r16 rm8", access: "w r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL386}},
	Movsx_r32_rm8: {mnemonic: MnemonicMovsx, encoding: "o32 0F BE /r", modes: modesAny, operands: "r32 rm8", access: "w r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidINTEL386}},
	Movsx_r64_rm8: {mnemonic: MnemonicMovsx, encoding: "REX.W 0F BE /r", modes: modesLong, operands: "r64 rm8", access: "w r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidX64}},
	Movsx_r16_rm16: {mnemonic: MnemonicMovsx, encoding: "o16 0F BF /r", modes: modesAny, operands: "r16 rm16", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL386}},
	Movsx_r32_rm16: {mnemonic: MnemonicMovsx, encoding: "o32 0F BF /r", modes: modesAny, operands: "r32 rm16", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL386}},
	Movsx_r64_rm16: {mnemonic: MnemonicMovsx, encoding: "REX.W 0F BF /r", modes: modesLong, operands: "r64 rm16", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidX64}},
	Xadd_rm8_r8: {mnemonic: MnemonicXadd, encoding: "0F C0 /r", modes: modesAny, operands: "rm8 r8", access: "rw rw", memory: MemorySizeUInt8, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL486}, rflags: "w=oszapc"},
	Xadd_rm16_r16: {mnemonic: MnemonicXadd, encoding: "o16 0F C1 /r", modes: modesAny, operands: "rm16 r16", access: "rw rw", memory: MemorySizeUInt16, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL486}, rflags: "w=oszapc"},
	Xadd_rm32_r32: {mnemonic: MnemonicXadd, encoding: "o32 0F C1 /r", modes: modesAny, operands: "rm32 r32", access: "rw rw", memory: MemorySizeUInt32, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidINTEL486}, rflags: "w=oszapc"},
	Xadd_rm64_r64: {mnemonic: MnemonicXadd, encoding: "REX.W 0F C1 /r", modes: modesLong, operands: "rm64 r64", access: "rw rw", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidX64}, rflags: "w=oszapc"},
	Cmpps_xmm_xmmm128_imm8: {mnemonic: MnemonicCmpps, encoding: "NP 0F C2 /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "rw r r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Cmppd_xmm_xmmm128_imm8: {mnemonic: MnemonicCmppd, encoding: "66 0F C2 /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "rw r r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Cmpss_xmm_xmmm32_imm8: {mnemonic: MnemonicCmpss, encoding: "F3 0F C2 /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "rw r r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidSSE}},
	Cmpsd_xmm_xmmm64_imm8: {mnemonic: MnemonicCmpsd, encoding: "F2 0F C2 /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "rw r r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidSSE2}},
	Movnti_m32_r32: {mnemonic: MnemonicMovnti, encoding: "NP 0F C3 /r", modes: modesAny, operands: "m r32", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidSSE2}},
	Movnti_m64_r64: {mnemonic: MnemonicMovnti, encoding: "NP REX.W 0F C3 /r", modes: modesLong, operands: "m r64", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE2}},
	Pinsrw_mm_r32m16_imm8: {mnemonic: MnemonicPinsrw, encoding: "NP 0F C4 /r ib", modes: modesAny, operands: "mm rm32 ib", access: "rw r r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidSSE}},
	Pinsrw_xmm_r32m16_imm8: {mnemonic: MnemonicPinsrw, encoding: "66 0F C4 /r ib", modes: modesAny, operands: "xmm rm32 ib", access: "rw r r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidSSE2}},
	Pextrw_r32_mm_imm8: {mnemonic: MnemonicPextrw, encoding: "NP 0F C5 /r ib", modes: modesAny, operands: "r32 rmm ib", access: "w r r", cpuid: []CpuidFeature{CpuidSSE}},
	Pextrw_r32_xmm_imm8: {mnemonic: MnemonicPextrw, encoding: "66 0F C5 /r ib", modes: modesAny, operands: "r32 rxmm ib", access: "w r r", cpuid: []CpuidFeature{CpuidSSE2}},
	Shufps_xmm_xmmm128_imm8: {mnemonic: MnemonicShufps, encoding: "NP 0F C6 /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "rw r r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE}},
	Shufpd_xmm_xmmm128_imm8: {mnemonic: MnemonicShufpd, encoding: "66 0F C6 /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "rw r r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Cmpxchg8b_m64: {mnemonic: MnemonicCmpxchg8b, encoding: "0F C7 /1", modes: modesAny, operands: "m", access: "rcw", memory: MemorySizeUInt64, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidCX8}, rflags: "w=z", implied: "rcw:EDX rcw:EAX r:ECX r:EBX"},
	Cmpxchg16b_m128: {mnemonic: MnemonicCmpxchg16b, encoding: "REX.W 0F C7 /1", modes: modesLong, operands: "m", access: "rcw", memory: MemorySizeUInt128, flags: flagLock | flagXacquire | flagXrelease, cpuid: []CpuidFeature{CpuidCMPXCHG16B}, rflags: "w=z", implied: "rcw:RDX rcw:RAX r:RCX r:RBX"},
	Vmptrld_m64: {mnemonic: MnemonicVmptrld, encoding: "NP 0F C7 /6", modes: modesAny, operands: "m", access: "r", memory: MemorySizeUInt64, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidVMX}, rflags: "w=oszapc"},
	Vmclear_m64: {mnemonic: MnemonicVmclear, encoding: "66 0F C7 /6", modes: modesAny, operands: "m", access: "rw", memory: MemorySizeUInt64, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidVMX}, rflags: "w=oszapc"},
	Vmxon_m64: {mnemonic: MnemonicVmxon, encoding: "F3 0F C7 /6", modes: modesAny, operands: "m", access: "r", memory: MemorySizeUInt64, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidVMX}, rflags: "w=oszapc"},
	Vmptrst_m64: {mnemonic: MnemonicVmptrst, encoding: "NP 0F C7 /7", modes: modesAny, operands: "m", access: "w", memory: MemorySizeUInt64, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidVMX}, rflags: "w=oszapc"},
	Rdrand_r16: {mnemonic: MnemonicRdrand, encoding: "o16 0F C7 /6", modes: modesAny, operands: "rr16", access: "w", cpuid: []CpuidFeature{CpuidRDRAND}, rflags: "w=c c=oszap"},
	Rdrand_r32: {mnemonic: MnemonicRdrand, encoding: "o32 0F C7 /6", modes: modesAny, operands: "rr32", access: "w", cpuid: []CpuidFeature{CpuidRDRAND}, rflags: "w=c c=oszap"},
	Rdrand_r64: {mnemonic: MnemonicRdrand, encoding: "REX.W 0F C7 /6", modes: modesLong, operands: "rr64", access: "w", cpuid: []CpuidFeature{CpuidRDRAND}, rflags: "w=c c=oszap"},
	Rdseed_r16: {mnemonic: MnemonicRdseed, encoding: "o16 0F C7 /7", modes: modesAny, operands: "rr16", access: "w", cpuid: []CpuidFeature{CpuidRDSEED}, rflags: "w=c c=oszap"},
	Rdseed_r32: {mnemonic: MnemonicRdseed, encoding: "o32 0F C7 /7", modes: modesAny, operands: "rr32", access: "w", cpuid: []CpuidFeature{CpuidRDSEED}, rflags: "w=c c=oszap"},
	Rdseed_r64: {mnemonic: MnemonicRdseed, encoding: "REX.W 0F C7 /7", modes: modesLong, operands: "rr64", access: "w", cpuid: []CpuidFeature{CpuidRDSEED}, rflags: "w=c c=oszap"},
	Rdpid_r32: {mnemonic: MnemonicRdpid, encoding: "F3 0F C7 /7", modes: modesLegacy, operands: "rr32", access: "w", cpuid: []CpuidFeature{CpuidRDPID}},
	Rdpid_r64: {mnemonic: MnemonicRdpid, encoding: "F3 0F C7 /7", modes: modesLong, operands: "rr64", access: "w", cpuid: []CpuidFeature{CpuidRDPID}},
	Bswap_r16: {mnemonic: MnemonicBswap, encoding: "o16 0F C8+rw", modes: modesAny, operands: "o16", access: "rw", cpuid: []CpuidFeature{CpuidINTEL486}},
	Bswap_r32: {mnemonic: MnemonicBswap, encoding: "o32 0F C8+rd", modes: modesAny, operands: "o32", access: "rw", cpuid: []CpuidFeature{CpuidINTEL486}},
	Bswap_r64: {mnemonic: MnemonicBswap, encoding: "REX.W 0F C8+ro", modes: modesLong, operands: "o64", access: "rw", cpuid: []CpuidFeature{CpuidX64}},
	Psrlw_mm_mmm64: {mnemonic: MnemonicPsrlw, encoding: "NP 0F D1 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Psrlw_xmm_xmmm128: {mnemonic: MnemonicPsrlw, encoding: "66 0F D1 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Psrld_mm_mmm64: {mnemonic: MnemonicPsrld, encoding: "NP 0F D2 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Psrld_xmm_xmmm128: {mnemonic: MnemonicPsrld, encoding: "66 0F D2 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Psrlq_mm_mmm64: {mnemonic: MnemonicPsrlq, encoding: "NP 0F D3 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Psrlq_xmm_xmmm128: {mnemonic: MnemonicPsrlq, encoding: "66 0F D3 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Paddq_mm_mmm64: {mnemonic: MnemonicPaddq, encoding: "NP 0F D4 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE2}},
	Paddq_xmm_xmmm128: {mnemonic: MnemonicPaddq, encoding: "66 0F D4 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Pmullw_mm_mmm64: {mnemonic: MnemonicPmullw, encoding: "NP 0F D5 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Pmullw_xmm_xmmm128: {mnemonic: MnemonicPmullw, encoding: "66 0F D5 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Psubusb_mm_mmm64: {mnemonic: MnemonicPsubusb, encoding: "NP 0F D8 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Psubusb_xmm_xmmm128: {mnemonic: MnemonicPsubusb, encoding: "66 0F D8 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Psubusw_mm_mmm64: {mnemonic: MnemonicPsubusw, encoding: "NP 0F D9 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Psubusw_xmm_xmmm128: {mnemonic: MnemonicPsubusw, encoding: "66 0F D9 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Pminub_mm_mmm64: {mnemonic: MnemonicPminub, encoding: "NP 0F DA /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE}},
	Pminub_xmm_xmmm128: {mnemonic: MnemonicPminub, encoding: "66 0F DA /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Pand_mm_mmm64: {mnemonic: MnemonicPand, encoding: "NP 0F DB /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Pand_xmm_xmmm128: {mnemonic: MnemonicPand, encoding: "66 0F DB /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Paddusb_mm_mmm64: {mnemonic: MnemonicPaddusb, encoding: "NP 0F DC /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Paddusb_xmm_xmmm128: {mnemonic: MnemonicPaddusb, encoding: "66 0F DC /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Paddusw_mm_mmm64: {mnemonic: MnemonicPaddusw, encoding: "NP 0F DD /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Paddusw_xmm_xmmm128: {mnemonic: MnemonicPaddusw, encoding: "66 0F DD /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Pmaxub_mm_mmm64: {mnemonic: MnemonicPmaxub, encoding: "NP 0F DE /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE}},
	Pmaxub_xmm_xmmm128: {mnemonic: MnemonicPmaxub, encoding: "66 0F DE /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Pandn_mm_mmm64: {mnemonic: MnemonicPandn, encoding: "NP 0F DF /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Pandn_xmm_xmmm128: {mnemonic: MnemonicPandn, encoding: "66 0F DF /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Pavgb_mm_mmm64: {mnemonic: MnemonicPavgb, encoding: "NP 0F E0 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE}},
	Pavgb_xmm_xmmm128: {mnemonic: MnemonicPavgb, encoding: "66 0F E0 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Psraw_mm_mmm64: {mnemonic: MnemonicPsraw, encoding: "NP 0F E1 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Psraw_xmm_xmmm128: {mnemonic: MnemonicPsraw, encoding: "66 0F E1 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Psrad_mm_mmm64: {mnemonic: MnemonicPsrad, encoding: "NP 0F E2 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Psrad_xmm_xmmm128: {mnemonic: MnemonicPsrad, encoding: "66 0F E2 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Pavgw_mm_mmm64: {mnemonic: MnemonicPavgw, encoding: "NP 0F E3 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE}},
	Pavgw_xmm_xmmm128: {mnemonic: MnemonicPavgw, encoding: "66 0F E3 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Pmulhuw_mm_mmm64: {mnemonic: MnemonicPmulhuw, encoding: "NP 0F E4 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE}},
	Pmulhuw_xmm_xmmm128: {mnemonic: MnemonicPmulhuw, encoding: "66 0F E4 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Pmulhw_mm_mmm64: {mnemonic: MnemonicPmulhw, encoding: "NP 0F E5 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Pmulhw_xmm_xmmm128: {mnemonic: MnemonicPmulhw, encoding: "66 0F E5 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Psubsb_mm_mmm64: {mnemonic: MnemonicPsubsb, encoding: "NP 0F E8 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Psubsb_xmm_xmmm128: {mnemonic: MnemonicPsubsb, encoding: "66 0F E8 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Psubsw_mm_mmm64: {mnemonic: MnemonicPsubsw, encoding: "NP 0F E9 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Psubsw_xmm_xmmm128: {mnemonic: MnemonicPsubsw, encoding: "66 0F E9 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Pminsw_mm_mmm64: {mnemonic: MnemonicPminsw, encoding: "NP 0F EA /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE}},
	Pminsw_xmm_xmmm128: {mnemonic: MnemonicPminsw, encoding: "66 0F EA /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Por_mm_mmm64: {mnemonic: MnemonicPor, encoding: "NP 0F EB /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Por_xmm_xmmm128: {mnemonic: MnemonicPor, encoding: "66 0F EB /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Paddsb_mm_mmm64: {mnemonic: MnemonicPaddsb, encoding: "NP 0F EC /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Paddsb_xmm_xmmm128: {mnemonic: MnemonicPaddsb, encoding: "66 0F EC /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Paddsw_mm_mmm64: {mnemonic: MnemonicPaddsw, encoding: "NP 0F ED /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Paddsw_xmm_xmmm128: {mnemonic: MnemonicPaddsw, encoding: "66 0F ED /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Pmaxsw_mm_mmm64: {mnemonic: MnemonicPmaxsw, encoding: "NP 0F EE /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE}},
	Pmaxsw_xmm_xmmm128: {mnemonic: MnemonicPmaxsw, encoding: "66 0F EE /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Pxor_mm_mmm64: {mnemonic: MnemonicPxor, encoding: "NP 0F EF /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Pxor_xmm_xmmm128: {mnemonic: MnemonicPxor, encoding: "66 0F EF /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Psllw_mm_mmm64: {mnemonic: MnemonicPsllw, encoding: "NP 0F F1 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Psllw_xmm_xmmm128: {mnemonic: MnemonicPsllw, encoding: "66 0F F1 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Pslld_mm_mmm64: {mnemonic: MnemonicPslld, encoding: "NP 0F F2 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Pslld_xmm_xmmm128: {mnemonic: MnemonicPslld, encoding: "66 0F F2 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Psllq_mm_mmm64: {mnemonic: MnemonicPsllq, encoding: "NP 0F F3 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Psllq_xmm_xmmm128: {mnemonic: MnemonicPsllq, encoding: "66 0F F3 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Pmuludq_mm_mmm64: {mnemonic: MnemonicPmuludq, encoding: "NP 0F F4 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE2}},
	Pmuludq_xmm_xmmm128: {mnemonic: MnemonicPmuludq, encoding: "66 0F F4 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Pmaddwd_mm_mmm64: {mnemonic: MnemonicPmaddwd, encoding: "NP 0F F5 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Pmaddwd_xmm_xmmm128: {mnemonic: MnemonicPmaddwd, encoding: "66 0F F5 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Psadbw_mm_mmm64: {mnemonic: MnemonicPsadbw, encoding: "NP 0F F6 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE}},
	Psadbw_xmm_xmmm128: {mnemonic: MnemonicPsadbw, encoding: "66 0F F6 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Psubb_mm_mmm64: {mnemonic: MnemonicPsubb, encoding: "NP 0F F8 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Psubb_xmm_xmmm128: {mnemonic: MnemonicPsubb, encoding: "66 0F F8 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Psubw_mm_mmm64: {mnemonic: MnemonicPsubw, encoding: "NP 0F F9 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Psubw_xmm_xmmm128: {mnemonic: MnemonicPsubw, encoding: "66 0F F9 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Psubd_mm_mmm64: {mnemonic: MnemonicPsubd, encoding: "NP 0F FA /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Psubd_xmm_xmmm128: {mnemonic: MnemonicPsubd, encoding: "66 0F FA /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Psubq_mm_mmm64: {mnemonic: MnemonicPsubq, encoding: "NP 0F FB /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE2}},
	Psubq_xmm_xmmm128: {mnemonic: MnemonicPsubq, encoding: "66 0F FB /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Paddb_mm_mmm64: {mnemonic: MnemonicPaddb, encoding: "NP 0F FC /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Paddb_xmm_xmmm128: {mnemonic: MnemonicPaddb, encoding: "66 0F FC /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Paddw_mm_mmm64: {mnemonic: MnemonicPaddw, encoding: "NP 0F FD /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Paddw_xmm_xmmm128: {mnemonic: MnemonicPaddw, encoding: "66 0F FD /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Paddd_mm_mmm64: {mnemonic: MnemonicPaddd, encoding: "NP 0F FE /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMMX}},
	Paddd_xmm_xmmm128: {mnemonic: MnemonicPaddd, encoding: "66 0F FE /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Movq_xmmm64_xmm: {mnemonic: MnemonicMovq, encoding: "66 0F D6 /r", modes: modesAny, operands: "xmmm xmm", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE2}},
	Pmovmskb_r32_mm: {mnemonic: MnemonicPmovmskb, encoding: "NP 0F D7 /r", modes: modesAny, operands: "r32 rmm", access: "w r", cpuid: []CpuidFeature{CpuidSSE}},
	Pmovmskb_r32_xmm: {mnemonic: MnemonicPmovmskb, encoding: "66 0F D7 /r", modes: modesAny, operands: "r32 rxmm", access: "w r", cpuid: []CpuidFeature{CpuidSSE2}},
	Cvttpd2dq_xmm_xmmm128: {mnemonic: MnemonicCvttpd2dq, encoding: "66 0F E6 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Cvtdq2pd_xmm_xmmm64: {mnemonic: MnemonicCvtdq2pd, encoding: "F3 0F E6 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked64_Int32, cpuid: []CpuidFeature{CpuidSSE2}},
	Cvtpd2dq_xmm_xmmm128: {mnemonic: MnemonicCvtpd2dq, encoding: "F2 0F E6 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE2}},
	Movntq_m64_mm: {mnemonic: MnemonicMovntq, encoding: "NP 0F E7 /r", modes: modesAny, operands: "m mm", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE}},
	Movntdq_m128_xmm: {mnemonic: MnemonicMovntdq, encoding: "66 0F E7 /r", modes: modesAny, operands: "m xmm", access: "w r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Maskmovq_rDI_mm_mm: {mnemonic: MnemonicMaskmovq, encoding: "NP 0F F7 /r", modes: modesAny, operands: "segdi mm rmm", access: "cw r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE}},
	Maskmovdqu_rDI_xmm_xmm: {mnemonic: MnemonicMaskmovdqu, encoding: "66 0F F7 /r", modes: modesAny, operands: "segdi xmm rxmm", access: "cw r r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE2}},
	Ud0_r16_rm16: {mnemonic: MnemonicUd0, encoding: "o16 0F FF /r", modes: modesAny, operands: "r16 rm16", access: "n n", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidINTEL286}, flow: FlowControlException},
	Ud0_r32_rm32: {mnemonic: MnemonicUd0, encoding: "o32 0F FF /r", modes: modesAny, operands: "r32 rm32", access: "n n", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidINTEL286}, flow: FlowControlException},
	Ud0_r64_rm64: {mnemonic: MnemonicUd0, encoding: "REX.W 0F FF /r", modes: modesLong, operands: "r64 rm64", access: "n n", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidX64}, flow: FlowControlException},
	Pshufb_mm_mmm64: {mnemonic: MnemonicPshufb, encoding: "NP 0F 38 00 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSSE3}},
	Pshufb_xmm_xmmm128: {mnemonic: MnemonicPshufb, encoding: "66 0F 38 00 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSSE3}},
	Phaddw_mm_mmm64: {mnemonic: MnemonicPhaddw, encoding: "NP 0F 38 01 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSSE3}},
	Phaddw_xmm_xmmm128: {mnemonic: MnemonicPhaddw, encoding: "66 0F 38 01 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSSE3}},
	Phaddd_mm_mmm64: {mnemonic: MnemonicPhaddd, encoding: "NP 0F 38 02 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSSE3}},
	Phaddd_xmm_xmmm128: {mnemonic: MnemonicPhaddd, encoding: "66 0F 38 02 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSSE3}},
	Phaddsw_mm_mmm64: {mnemonic: MnemonicPhaddsw, encoding: "NP 0F 38 03 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSSE3}},
	Phaddsw_xmm_xmmm128: {mnemonic: MnemonicPhaddsw, encoding: "66 0F 38 03 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSSE3}},
	Pmaddubsw_mm_mmm64: {mnemonic: MnemonicPmaddubsw, encoding: "NP 0F 38 04 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSSE3}},
	Pmaddubsw_xmm_xmmm128: {mnemonic: MnemonicPmaddubsw, encoding: "66 0F 38 04 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSSE3}},
	Phsubw_mm_mmm64: {mnemonic: MnemonicPhsubw, encoding: "NP 0F 38 05 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSSE3}},
	Phsubw_xmm_xmmm128: {mnemonic: MnemonicPhsubw, encoding: "66 0F 38 05 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSSE3}},
	Phsubd_mm_mmm64: {mnemonic: MnemonicPhsubd, encoding: "NP 0F 38 06 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSSE3}},
	Phsubd_xmm_xmmm128: {mnemonic: MnemonicPhsubd, encoding: "66 0F 38 06 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSSE3}},
	Phsubsw_mm_mmm64: {mnemonic: MnemonicPhsubsw, encoding: "NP 0F 38 07 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSSE3}},
	Phsubsw_xmm_xmmm128: {mnemonic: MnemonicPhsubsw, encoding: "66 0F 38 07 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSSE3}},
	Psignb_mm_mmm64: {mnemonic: MnemonicPsignb, encoding: "NP 0F 38 08 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSSE3}},
	Psignb_xmm_xmmm128: {mnemonic: MnemonicPsignb, encoding: "66 0F 38 08 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSSE3}},
	Psignw_mm_mmm64: {mnemonic: MnemonicPsignw, encoding: "NP 0F 38 09 /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSSE3}},
	Psignw_xmm_xmmm128: {mnemonic: MnemonicPsignw, encoding: "66 0F 38 09 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSSE3}},
	Psignd_mm_mmm64: {mnemonic: MnemonicPsignd, encoding: "NP 0F 38 0A /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSSE3}},
	Psignd_xmm_xmmm128: {mnemonic: MnemonicPsignd, encoding: "66 0F 38 0A /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSSE3}},
	Pmulhrsw_mm_mmm64: {mnemonic: MnemonicPmulhrsw, encoding: "NP 0F 38 0B /r", modes: modesAny, operands: "mm mmm", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSSE3}},
	Pmulhrsw_xmm_xmmm128: {mnemonic: MnemonicPmulhrsw, encoding: "66 0F 38 0B /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSSE3}},
	Pabsb_mm_mmm64: {mnemonic: MnemonicPabsb, encoding: "NP 0F 38 1C /r", modes: modesAny, operands: "mm mmm", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSSE3}},
	Pabsb_xmm_xmmm128: {mnemonic: MnemonicPabsb, encoding: "66 0F 38 1C /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSSE3}},
	Pabsw_mm_mmm64: {mnemonic: MnemonicPabsw, encoding: "NP 0F 38 1D /r", modes: modesAny, operands: "mm mmm", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSSE3}},
	Pabsw_xmm_xmmm128: {mnemonic: MnemonicPabsw, encoding: "66 0F 38 1D /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSSE3}},
	Pabsd_mm_mmm64: {mnemonic: MnemonicPabsd, encoding: "NP 0F 38 1E /r", modes: modesAny, operands: "mm mmm", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSSE3}},
	Pabsd_xmm_xmmm128: {mnemonic: MnemonicPabsd, encoding: "66 0F 38 1E /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSSE3}},
	Pblendvb_xmm_xmmm128: {mnemonic: MnemonicPblendvb, encoding: "66 0F 38 10 /r", modes: modesAny, operands: "xmm xmmm XMM0", access: "rw r r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Blendvps_xmm_xmmm128: {mnemonic: MnemonicBlendvps, encoding: "66 0F 38 14 /r", modes: modesAny, operands: "xmm xmmm XMM0", access: "rw r r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Blendvpd_xmm_xmmm128: {mnemonic: MnemonicBlendvpd, encoding: "66 0F 38 15 /r", modes: modesAny, operands: "xmm xmmm XMM0", access: "rw r r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Ptest_xmm_xmmm128: {mnemonic: MnemonicPtest, encoding: "66 0F 38 17 /r", modes: modesAny, operands: "xmm xmmm", access: "r r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE4_1}, rflags: "w=zc c=osap"},
	Pmovsxbw_xmm_xmmm64: {mnemonic: MnemonicPmovsxbw, encoding: "66 0F 38 20 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pmovsxbd_xmm_xmmm32: {mnemonic: MnemonicPmovsxbd, encoding: "66 0F 38 21 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pmovsxbq_xmm_xmmm16: {mnemonic: MnemonicPmovsxbq, encoding: "66 0F 38 22 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pmovsxwd_xmm_xmmm64: {mnemonic: MnemonicPmovsxwd, encoding: "66 0F 38 23 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pmovsxwq_xmm_xmmm32: {mnemonic: MnemonicPmovsxwq, encoding: "66 0F 38 24 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pmovsxdq_xmm_xmmm64: {mnemonic: MnemonicPmovsxdq, encoding: "66 0F 38 25 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pmovzxbw_xmm_xmmm64: {mnemonic: MnemonicPmovzxbw, encoding: "66 0F 38 30 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pmovzxbd_xmm_xmmm32: {mnemonic: MnemonicPmovzxbd, encoding: "66 0F 38 31 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pmovzxbq_xmm_xmmm16: {mnemonic: MnemonicPmovzxbq, encoding: "66 0F 38 32 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pmovzxwd_xmm_xmmm64: {mnemonic: MnemonicPmovzxwd, encoding: "66 0F 38 33 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pmovzxwq_xmm_xmmm32: {mnemonic: MnemonicPmovzxwq, encoding: "66 0F 38 34 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pmovzxdq_xmm_xmmm64: {mnemonic: MnemonicPmovzxdq, encoding: "66 0F 38 35 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pmuldq_xmm_xmmm128: {mnemonic: MnemonicPmuldq, encoding: "66 0F 38 28 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pcmpeqq_xmm_xmmm128: {mnemonic: MnemonicPcmpeqq, encoding: "66 0F 38 29 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Packusdw_xmm_xmmm128: {mnemonic: MnemonicPackusdw, encoding: "66 0F 38 2B /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pcmpgtq_xmm_xmmm128: {mnemonic: MnemonicPcmpgtq, encoding: "66 0F 38 37 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE4_2}},
	Pminsb_xmm_xmmm128: {mnemonic: MnemonicPminsb, encoding: "66 0F 38 38 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pminsd_xmm_xmmm128: {mnemonic: MnemonicPminsd, encoding: "66 0F 38 39 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pminuw_xmm_xmmm128: {mnemonic: MnemonicPminuw, encoding: "66 0F 38 3A /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pminud_xmm_xmmm128: {mnemonic: MnemonicPminud, encoding: "66 0F 38 3B /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pmaxsb_xmm_xmmm128: {mnemonic: MnemonicPmaxsb, encoding: "66 0F 38 3C /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pmaxsd_xmm_xmmm128: {mnemonic: MnemonicPmaxsd, encoding: "66 0F 38 3D /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pmaxuw_xmm_xmmm128: {mnemonic: MnemonicPmaxuw, encoding: "66 0F 38 3E /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pmaxud_xmm_xmmm128: {mnemonic: MnemonicPmaxud, encoding: "66 0F 38 3F /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pmulld_xmm_xmmm128: {mnemonic: MnemonicPmulld, encoding: "66 0F 38 40 /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Aesenc_xmm_xmmm128: {mnemonic: MnemonicAesenc, encoding: "66 0F 38 DC /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidAES}},
	Aesenclast_xmm_xmmm128: {mnemonic: MnemonicAesenclast, encoding: "66 0F 38 DD /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidAES}},
	Aesdec_xmm_xmmm128: {mnemonic: MnemonicAesdec, encoding: "66 0F 38 DE /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidAES}},
	Aesdeclast_xmm_xmmm128: {mnemonic: MnemonicAesdeclast, encoding: "66 0F 38 DF /r", modes: modesAny, operands: "xmm xmmm", access: "rw r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidAES}},
	Movntdqa_xmm_m128: {mnemonic: MnemonicMovntdqa, encoding: "66 0F 38 2A /r", modes: modesAny, operands: "xmm m", access: "w r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Phminposuw_xmm_xmmm128: {mnemonic: MnemonicPhminposuw, encoding: "66 0F 38 41 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_UInt16, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Aesimc_xmm_xmmm128: {mnemonic: MnemonicAesimc, encoding: "66 0F 38 DB /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidAES}},
	Invept_r32_m128: {mnemonic: MnemonicInvept, encoding: "66 0F 38 80 /r", modes: modesLegacy, operands: "r32 m", access: "r r", memory: MemorySizeUInt128, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidVMX}, rflags: "w=oszapc"},
	Invept_r64_m128: {mnemonic: MnemonicInvept, encoding: "66 0F 38 80 /r", modes: modesLong, operands: "r64 m", access: "r r", memory: MemorySizeUInt128, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidVMX}, rflags: "w=oszapc"},
	Invvpid_r32_m128: {mnemonic: MnemonicInvvpid, encoding: "66 0F 38 81 /r", modes: modesLegacy, operands: "r32 m", access: "r r", memory: MemorySizeUInt128, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidVMX}, rflags: "w=oszapc"},
	Invvpid_r64_m128: {mnemonic: MnemonicInvvpid, encoding: "66 0F 38 81 /r", modes: modesLong, operands: "r64 m", access: "r r", memory: MemorySizeUInt128, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidVMX}, rflags: "w=oszapc"},
	Invpcid_r32_m128: {mnemonic: MnemonicInvpcid, encoding: "66 0F 38 82 /r", modes: modesLegacy, operands: "r32 m", access: "r r", memory: MemorySizeUInt128, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidINVPCID}},
	Invpcid_r64_m128: {mnemonic: MnemonicInvpcid, encoding: "66 0F 38 82 /r", modes: modesLong, operands: "r64 m", access: "r r", memory: MemorySizeUInt128, flags: flagPrivileged, cpuid: []CpuidFeature{CpuidINVPCID}},
	Movbe_r16_m16: {mnemonic: MnemonicMovbe, encoding: "o16 0F 38 F0 /r", modes: modesAny, operands: "r16 m", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidMOVBE}},
	Movbe_r32_m32: {mnemonic: MnemonicMovbe, encoding: "o32 0F 38 F0 /r", modes: modesAny, operands: "r32 m", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidMOVBE}},
	Movbe_r64_m64: {mnemonic: MnemonicMovbe, encoding: "REX.W 0F 38 F0 /r", modes: modesLong, operands: "r64 m", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMOVBE}},
	Movbe_m16_r16: {mnemonic: MnemonicMovbe, encoding: "o16 0F 38 F1 /r", modes: modesAny, operands: "m r16", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidMOVBE}},
	Movbe_m32_r32: {mnemonic: MnemonicMovbe, encoding: "o32 0F 38 F1 /r", modes: modesAny, operands: "m r32", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidMOVBE}},
	Movbe_m64_r64: {mnemonic: MnemonicMovbe, encoding: "REX.W 0F 38 F1 /r", modes: modesLong, operands: "m r64", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidMOVBE}},
	Crc32_r32_rm8: {mnemonic: MnemonicCrc32, encoding: "F2 0F 38 F0 /r", modes: modesAny, operands: "r32 rm8", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidSSE4_2}},
	Crc32_r64_rm8: {mnemonic: MnemonicCrc32, encoding: "F2 REX.W 0F 38 F0 /r", modes: modesLong, operands: "r64 rm8", access: "rw r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidSSE4_2}},
	Crc32_r32_rm16: {mnemonic: MnemonicCrc32, encoding: "o16 F2 0F 38 F1 /r", modes: modesAny, operands: "r32 rm16", access: "rw r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidSSE4_2}},
	Crc32_r32_rm32: {mnemonic: MnemonicCrc32, encoding: "o32 F2 0F 38 F1 /r", modes: modesAny, operands: "r32 rm32", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidSSE4_2}},
	Crc32_r64_rm64: {mnemonic: MnemonicCrc32, encoding: "F2 REX.W 0F 38 F1 /r", modes: modesLong, operands: "r64 rm64", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE4_2}},
	Adcx_r32_rm32: {mnemonic: MnemonicAdcx, encoding: "66 0F 38 F6 /r", modes: modesAny, operands: "r32 rm32", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidADX}, rflags: "r=c w=c"},
	Adcx_r64_rm64: {mnemonic: MnemonicAdcx, encoding: "66 REX.W 0F 38 F6 /r", modes: modesLong, operands: "r64 rm64", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidADX}, rflags: "r=c w=c"},
	Adox_r32_rm32: {mnemonic: MnemonicAdox, encoding: "F3 0F 38 F6 /r", modes: modesAny, operands: "r32 rm32", access: "rw r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidADX}, rflags: "r=o w=o"},
	Adox_r64_rm64: {mnemonic: MnemonicAdox, encoding: "F3 REX.W 0F 38 F6 /r", modes: modesLong, operands: "r64 rm64", access: "rw r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidADX}, rflags: "r=o w=o"},
	Roundps_xmm_xmmm128_imm8: {mnemonic: MnemonicRoundps, encoding: "66 0F 3A 08 /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "w r r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Roundpd_xmm_xmmm128_imm8: {mnemonic: MnemonicRoundpd, encoding: "66 0F 3A 09 /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "w r r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Roundss_xmm_xmmm32_imm8: {mnemonic: MnemonicRoundss, encoding: "66 0F 3A 0A /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "rw r r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Roundsd_xmm_xmmm64_imm8: {mnemonic: MnemonicRoundsd, encoding: "66 0F 3A 0B /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "rw r r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Blendps_xmm_xmmm128_imm8: {mnemonic: MnemonicBlendps, encoding: "66 0F 3A 0C /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "rw r r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Blendpd_xmm_xmmm128_imm8: {mnemonic: MnemonicBlendpd, encoding: "66 0F 3A 0D /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "rw r r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pblendw_xmm_xmmm128_imm8: {mnemonic: MnemonicPblendw, encoding: "66 0F 3A 0E /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "rw r r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Dpps_xmm_xmmm128_imm8: {mnemonic: MnemonicDpps, encoding: "66 0F 3A 40 /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "rw r r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Dppd_xmm_xmmm128_imm8: {mnemonic: MnemonicDppd, encoding: "66 0F 3A 41 /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "rw r r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Mpsadbw_xmm_xmmm128_imm8: {mnemonic: MnemonicMpsadbw, encoding: "66 0F 3A 42 /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "rw r r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Insertps_xmm_xmmm32_imm8: {mnemonic: MnemonicInsertps, encoding: "66 0F 3A 21 /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "rw r r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Palignr_mm_mmm64_imm8: {mnemonic: MnemonicPalignr, encoding: "NP 0F 3A 0F /r ib", modes: modesAny, operands: "mm mmm ib", access: "rw r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSSE3}},
	Palignr_xmm_xmmm128_imm8: {mnemonic: MnemonicPalignr, encoding: "66 0F 3A 0F /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "rw r r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSSE3}},
	Pextrb_r32m8_xmm_imm8: {mnemonic: MnemonicPextrb, encoding: "66 0F 3A 14 /r ib", modes: modesAny, operands: "rm32 xmm ib", access: "w r r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pextrb_r64m8_xmm_imm8: {mnemonic: MnemonicPextrb, encoding: "66 REX.W 0F 3A 14 /r ib", modes: modesLong, operands: "rm64 xmm ib", access: "w r r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pextrw_r32m16_xmm_imm8: {mnemonic: MnemonicPextrw, encoding: "66 0F 3A 15 /r ib", modes: modesAny, operands: "rm32 xmm ib", access: "w r r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pextrw_r64m16_xmm_imm8: {mnemonic: MnemonicPextrw, encoding: "66 REX.W 0F 3A 15 /r ib", modes: modesLong, operands: "rm64 xmm ib", access: "w r r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pextrd_rm32_xmm_imm8: {mnemonic: MnemonicPextrd, encoding: "66 0F 3A 16 /r ib", modes: modesAny, operands: "rm32 xmm ib", access: "w r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pextrq_rm64_xmm_imm8: {mnemonic: MnemonicPextrq, encoding: "66 REX.W 0F 3A 16 /r ib", modes: modesLong, operands: "rm64 xmm ib", access: "w r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Extractps_rm32_xmm_imm8: {mnemonic: MnemonicExtractps, encoding: "66 0F 3A 17 /r ib", modes: modesAny, operands: "rm32 xmm ib", access: "w r r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Extractps_r64m32_xmm_imm8: {mnemonic: MnemonicExtractps, encoding: "66 REX.W 0F 3A 17 /r ib", modes: modesLong, operands: "rm64 xmm ib", access: "w r r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pinsrb_xmm_r32m8_imm8: {mnemonic: MnemonicPinsrb, encoding: "66 0F 3A 20 /r ib", modes: modesAny, operands: "xmm rm32 ib", access: "rw r r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pinsrb_xmm_r64m8_imm8: {mnemonic: MnemonicPinsrb, encoding: "66 REX.W 0F 3A 20 /r ib", modes: modesLong, operands: "xmm rm64 ib", access: "rw r r", memory: MemorySizeUInt8, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pinsrd_xmm_rm32_imm8: {mnemonic: MnemonicPinsrd, encoding: "66 0F 3A 22 /r ib", modes: modesAny, operands: "xmm rm32 ib", access: "rw r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pinsrq_xmm_rm64_imm8: {mnemonic: MnemonicPinsrq, encoding: "66 REX.W 0F 3A 22 /r ib", modes: modesLong, operands: "xmm rm64 ib", access: "rw r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidSSE4_1}},
	Pclmulqdq_xmm_xmmm128_imm8: {mnemonic: MnemonicPclmulqdq, encoding: "66 0F 3A 44 /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "rw r r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidPCLMULQDQ}},
	Pcmpestrm_xmm_xmmm128_imm8: {mnemonic: MnemonicPcmpestrm, encoding: "66 0F 3A 60 /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "r r r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE4_2}, rflags: "w=oszc c=pa", implied: "r:EAX r:EDX w:XMM0"},
	Pcmpestri_xmm_xmmm128_imm8: {mnemonic: MnemonicPcmpestri, encoding: "66 0F 3A 61 /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "r r r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE4_2}, rflags: "w=oszc c=pa", implied: "r:EAX r:EDX w:ECX"},
	Pcmpistrm_xmm_xmmm128_imm8: {mnemonic: MnemonicPcmpistrm, encoding: "66 0F 3A 62 /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "r r r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE4_2}, rflags: "w=oszc c=pa", implied: "w:XMM0"},
	Pcmpistri_xmm_xmmm128_imm8: {mnemonic: MnemonicPcmpistri, encoding: "66 0F 3A 63 /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "r r r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidSSE4_2}, rflags: "w=oszc c=pa", implied: "w:ECX"},
	Aeskeygenassist_xmm_xmmm128_imm8: {mnemonic: MnemonicAeskeygenassist, encoding: "66 0F 3A DF /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "w r r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidAES}},
	VEX_Vaddps_xmm_xmm_xmmm128: {mnemonic: MnemonicVaddps, encoding: "VEX.128.NP.0F.WIG 58 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vaddps_ymm_ymm_ymmm256: {mnemonic: MnemonicVaddps, encoding: "VEX.256.NP.0F.WIG 58 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vaddss_xmm_xmm_xmmm32: {mnemonic: MnemonicVaddss, encoding: "VEX.LIG.F3.0F.WIG 58 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vaddpd_xmm_xmm_xmmm128: {mnemonic: MnemonicVaddpd, encoding: "VEX.128.66.0F.WIG 58 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vaddpd_ymm_ymm_ymmm256: {mnemonic: MnemonicVaddpd, encoding: "VEX.256.66.0F.WIG 58 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vaddsd_xmm_xmm_xmmm64: {mnemonic: MnemonicVaddsd, encoding: "VEX.LIG.F2.0F.WIG 58 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmulps_xmm_xmm_xmmm128: {mnemonic: MnemonicVmulps, encoding: "VEX.128.NP.0F.WIG 59 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmulps_ymm_ymm_ymmm256: {mnemonic: MnemonicVmulps, encoding: "VEX.256.NP.0F.WIG 59 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmulss_xmm_xmm_xmmm32: {mnemonic: MnemonicVmulss, encoding: "VEX.LIG.F3.0F.WIG 59 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmulpd_xmm_xmm_xmmm128: {mnemonic: MnemonicVmulpd, encoding: "VEX.128.66.0F.WIG 59 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmulpd_ymm_ymm_ymmm256: {mnemonic: MnemonicVmulpd, encoding: "VEX.256.66.0F.WIG 59 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmulsd_xmm_xmm_xmmm64: {mnemonic: MnemonicVmulsd, encoding: "VEX.LIG.F2.0F.WIG 59 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vsubps_xmm_xmm_xmmm128: {mnemonic: MnemonicVsubps, encoding: "VEX.128.NP.0F.WIG 5C /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vsubps_ymm_ymm_ymmm256: {mnemonic: MnemonicVsubps, encoding: "VEX.256.NP.0F.WIG 5C /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vsubss_xmm_xmm_xmmm32: {mnemonic: MnemonicVsubss, encoding: "VEX.LIG.F3.0F.WIG 5C /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vsubpd_xmm_xmm_xmmm128: {mnemonic: MnemonicVsubpd, encoding: "VEX.128.66.0F.WIG 5C /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vsubpd_ymm_ymm_ymmm256: {mnemonic: MnemonicVsubpd, encoding: "VEX.256.66.0F.WIG 5C /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vsubsd_xmm_xmm_xmmm64: {mnemonic: MnemonicVsubsd, encoding: "VEX.LIG.F2.0F.WIG 5C /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vminps_xmm_xmm_xmmm128: {mnemonic: MnemonicVminps, encoding: "VEX.128.NP.0F.WIG 5D /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vminps_ymm_ymm_ymmm256: {mnemonic: MnemonicVminps, encoding: "VEX.256.NP.0F.WIG 5D /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vminss_xmm_xmm_xmmm32: {mnemonic: MnemonicVminss, encoding: "VEX.LIG.F3.0F.WIG 5D /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vminpd_xmm_xmm_xmmm128: {mnemonic: MnemonicVminpd, encoding: "VEX.128.66.0F.WIG 5D /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vminpd_ymm_ymm_ymmm256: {mnemonic: MnemonicVminpd, encoding: "VEX.256.66.0F.WIG 5D /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vminsd_xmm_xmm_xmmm64: {mnemonic: MnemonicVminsd, encoding: "VEX.LIG.F2.0F.WIG 5D /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vdivps_xmm_xmm_xmmm128: {mnemonic: MnemonicVdivps, encoding: "VEX.128.NP.0F.WIG 5E /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vdivps_ymm_ymm_ymmm256: {mnemonic: MnemonicVdivps, encoding: "VEX.256.NP.0F.WIG 5E /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vdivss_xmm_xmm_xmmm32: {mnemonic: MnemonicVdivss, encoding: "VEX.LIG.F3.0F.WIG 5E /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vdivpd_xmm_xmm_xmmm128: {mnemonic: MnemonicVdivpd, encoding: "VEX.128.66.0F.WIG 5E /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vdivpd_ymm_ymm_ymmm256: {mnemonic: MnemonicVdivpd, encoding: "VEX.256.66.0F.WIG 5E /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vdivsd_xmm_xmm_xmmm64: {mnemonic: MnemonicVdivsd, encoding: "VEX.LIG.F2.0F.WIG 5E /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmaxps_xmm_xmm_xmmm128: {mnemonic: MnemonicVmaxps, encoding: "VEX.128.NP.0F.WIG 5F /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmaxps_ymm_ymm_ymmm256: {mnemonic: MnemonicVmaxps, encoding: "VEX.256.NP.0F.WIG 5F /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmaxss_xmm_xmm_xmmm32: {mnemonic: MnemonicVmaxss, encoding: "VEX.LIG.F3.0F.WIG 5F /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmaxpd_xmm_xmm_xmmm128: {mnemonic: MnemonicVmaxpd, encoding: "VEX.128.66.0F.WIG 5F /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmaxpd_ymm_ymm_ymmm256: {mnemonic: MnemonicVmaxpd, encoding: "VEX.256.66.0F.WIG 5F /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmaxsd_xmm_xmm_xmmm64: {mnemonic: MnemonicVmaxsd, encoding: "VEX.LIG.F2.0F.WIG 5F /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vsqrtps_xmm_xmmm128: {mnemonic: MnemonicVsqrtps, encoding: "VEX.128.NP.0F.WIG 51 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vsqrtps_ymm_ymmm256: {mnemonic: MnemonicVsqrtps, encoding: "VEX.256.NP.0F.WIG 51 /r", modes: modesAny, operands: "ymm ymmm", access: "w r", memory: MemorySizePacked256_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vsqrtpd_xmm_xmmm128: {mnemonic: MnemonicVsqrtpd, encoding: "VEX.128.66.0F.WIG 51 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vsqrtpd_ymm_ymmm256: {mnemonic: MnemonicVsqrtpd, encoding: "VEX.256.66.0F.WIG 51 /r", modes: modesAny, operands: "ymm ymmm", access: "w r", memory: MemorySizePacked256_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vandps_xmm_xmm_xmmm128: {mnemonic: MnemonicVandps, encoding: "VEX.128.NP.0F.WIG 54 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vandps_ymm_ymm_ymmm256: {mnemonic: MnemonicVandps, encoding: "VEX.256.NP.0F.WIG 54 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vandpd_xmm_xmm_xmmm128: {mnemonic: MnemonicVandpd, encoding: "VEX.128.66.0F.WIG 54 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vandpd_ymm_ymm_ymmm256: {mnemonic: MnemonicVandpd, encoding: "VEX.256.66.0F.WIG 54 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vandnps_xmm_xmm_xmmm128: {mnemonic: MnemonicVandnps, encoding: "VEX.128.NP.0F.WIG 55 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vandnps_ymm_ymm_ymmm256: {mnemonic: MnemonicVandnps, encoding: "VEX.256.NP.0F.WIG 55 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vandnpd_xmm_xmm_xmmm128: {mnemonic: MnemonicVandnpd, encoding: "VEX.128.66.0F.WIG 55 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vandnpd_ymm_ymm_ymmm256: {mnemonic: MnemonicVandnpd, encoding: "VEX.256.66.0F.WIG 55 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vorps_xmm_xmm_xmmm128: {mnemonic: MnemonicVorps, encoding: "VEX.128.NP.0F.WIG 56 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vorps_ymm_ymm_ymmm256: {mnemonic: MnemonicVorps, encoding: "VEX.256.NP.0F.WIG 56 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vorpd_xmm_xmm_xmmm128: {mnemonic: MnemonicVorpd, encoding: "VEX.128.66.0F.WIG 56 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vorpd_ymm_ymm_ymmm256: {mnemonic: MnemonicVorpd, encoding: "VEX.256.66.0F.WIG 56 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vxorps_xmm_xmm_xmmm128: {mnemonic: MnemonicVxorps, encoding: "VEX.128.NP.0F.WIG 57 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vxorps_ymm_ymm_ymmm256: {mnemonic: MnemonicVxorps, encoding: "VEX.256.NP.0F.WIG 57 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vxorpd_xmm_xmm_xmmm128: {mnemonic: MnemonicVxorpd, encoding: "VEX.128.66.0F.WIG 57 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vxorpd_ymm_ymm_ymmm256: {mnemonic: MnemonicVxorpd, encoding: "VEX.256.66.0F.WIG 57 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vunpcklps_xmm_xmm_xmmm128: {mnemonic: MnemonicVunpcklps, encoding: "VEX.128.NP.0F.WIG 14 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vunpcklps_ymm_ymm_ymmm256: {mnemonic: MnemonicVunpcklps, encoding: "VEX.256.NP.0F.WIG 14 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vunpcklpd_xmm_xmm_xmmm128: {mnemonic: MnemonicVunpcklpd, encoding: "VEX.128.66.0F.WIG 14 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vunpcklpd_ymm_ymm_ymmm256: {mnemonic: MnemonicVunpcklpd, encoding: "VEX.256.66.0F.WIG 14 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vunpckhps_xmm_xmm_xmmm128: {mnemonic: MnemonicVunpckhps, encoding: "VEX.128.NP.0F.WIG 15 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vunpckhps_ymm_ymm_ymmm256: {mnemonic: MnemonicVunpckhps, encoding: "VEX.256.NP.0F.WIG 15 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vunpckhpd_xmm_xmm_xmmm128: {mnemonic: MnemonicVunpckhpd, encoding: "VEX.128.66.0F.WIG 15 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vunpckhpd_ymm_ymm_ymmm256: {mnemonic: MnemonicVunpckhpd, encoding: "VEX.256.66.0F.WIG 15 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vcmpps_xmm_xmm_xmmm128_imm8: {mnemonic: MnemonicVcmpps, encoding: "VEX.128.NP.0F.WIG C2 /r ib", modes: modesAny, operands: "xmm vxmm xmmm ib", access: "w r r r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vcmpps_ymm_ymm_ymmm256_imm8: {mnemonic: MnemonicVcmpps, encoding: "VEX.256.NP.0F.WIG C2 /r ib", modes: modesAny, operands: "ymm vymm ymmm ib", access: "w r r r", memory: MemorySizePacked256_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vcmpss_xmm_xmm_xmmm32_imm8: {mnemonic: MnemonicVcmpss, encoding: "VEX.LIG.F3.0F.WIG C2 /r ib", modes: modesAny, operands: "xmm vxmm xmmm ib", access: "w r r r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vcmppd_xmm_xmm_xmmm128_imm8: {mnemonic: MnemonicVcmppd, encoding: "VEX.128.66.0F.WIG C2 /r ib", modes: modesAny, operands: "xmm vxmm xmmm ib", access: "w r r r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vcmppd_ymm_ymm_ymmm256_imm8: {mnemonic: MnemonicVcmppd, encoding: "VEX.256.66.0F.WIG C2 /r ib", modes: modesAny, operands: "ymm vymm ymmm ib", access: "w r r r", memory: MemorySizePacked256_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vcmpsd_xmm_xmm_xmmm64_imm8: {mnemonic: MnemonicVcmpsd, encoding: "VEX.LIG.F2.0F.WIG C2 /r ib", modes: modesAny, operands: "xmm vxmm xmmm ib", access: "w r r r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vshufps_xmm_xmm_xmmm128_imm8: {mnemonic: MnemonicVshufps, encoding: "VEX.128.NP.0F.WIG C6 /r ib", modes: modesAny, operands: "xmm vxmm xmmm ib", access: "w r r r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vshufps_ymm_ymm_ymmm256_imm8: {mnemonic: MnemonicVshufps, encoding: "VEX.256.NP.0F.WIG C6 /r ib", modes: modesAny, operands: "ymm vymm ymmm ib", access: "w r r r", memory: MemorySizePacked256_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovups_xmm_xmmm128: {mnemonic: MnemonicVmovups, encoding: "VEX.128.NP.0F.WIG 10 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovups_xmmm128_xmm: {mnemonic: MnemonicVmovups, encoding: "VEX.128.NP.0F.WIG 11 /r", modes: modesAny, operands: "xmmm xmm", access: "w r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovups_ymm_ymmm256: {mnemonic: MnemonicVmovups, encoding: "VEX.256.NP.0F.WIG 10 /r", modes: modesAny, operands: "ymm ymmm", access: "w r", memory: MemorySizePacked256_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovups_ymmm256_ymm: {mnemonic: MnemonicVmovups, encoding: "VEX.256.NP.0F.WIG 11 /r", modes: modesAny, operands: "ymmm ymm", access: "w r", memory: MemorySizePacked256_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovupd_xmm_xmmm128: {mnemonic: MnemonicVmovupd, encoding: "VEX.128.66.0F.WIG 10 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovupd_xmmm128_xmm: {mnemonic: MnemonicVmovupd, encoding: "VEX.128.66.0F.WIG 11 /r", modes: modesAny, operands: "xmmm xmm", access: "w r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovupd_ymm_ymmm256: {mnemonic: MnemonicVmovupd, encoding: "VEX.256.66.0F.WIG 10 /r", modes: modesAny, operands: "ymm ymmm", access: "w r", memory: MemorySizePacked256_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovupd_ymmm256_ymm: {mnemonic: MnemonicVmovupd, encoding: "VEX.256.66.0F.WIG 11 /r", modes: modesAny, operands: "ymmm ymm", access: "w r", memory: MemorySizePacked256_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovaps_xmm_xmmm128: {mnemonic: MnemonicVmovaps, encoding: "VEX.128.NP.0F.WIG 28 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovaps_xmmm128_xmm: {mnemonic: MnemonicVmovaps, encoding: "VEX.128.NP.0F.WIG 29 /r", modes: modesAny, operands: "xmmm xmm", access: "w r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovaps_ymm_ymmm256: {mnemonic: MnemonicVmovaps, encoding: "VEX.256.NP.0F.WIG 28 /r", modes: modesAny, operands: "ymm ymmm", access: "w r", memory: MemorySizePacked256_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovaps_ymmm256_ymm: {mnemonic: MnemonicVmovaps, encoding: "VEX.256.NP.0F.WIG 29 /r", modes: modesAny, operands: "ymmm ymm", access: "w r", memory: MemorySizePacked256_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovapd_xmm_xmmm128: {mnemonic: MnemonicVmovapd, encoding: "VEX.128.66.0F.WIG 28 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovapd_xmmm128_xmm: {mnemonic: MnemonicVmovapd, encoding: "VEX.128.66.0F.WIG 29 /r", modes: modesAny, operands: "xmmm xmm", access: "w r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovapd_ymm_ymmm256: {mnemonic: MnemonicVmovapd, encoding: "VEX.256.66.0F.WIG 28 /r", modes: modesAny, operands: "ymm ymmm", access: "w r", memory: MemorySizePacked256_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovapd_ymmm256_ymm: {mnemonic: MnemonicVmovapd, encoding: "VEX.256.66.0F.WIG 29 /r", modes: modesAny, operands: "ymmm ymm", access: "w r", memory: MemorySizePacked256_Float64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovdqa_xmm_xmmm128: {mnemonic: MnemonicVmovdqa, encoding: "VEX.128.66.0F.WIG 6F /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovdqa_xmmm128_xmm: {mnemonic: MnemonicVmovdqa, encoding: "VEX.128.66.0F.WIG 7F /r", modes: modesAny, operands: "xmmm xmm", access: "w r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovdqa_ymm_ymmm256: {mnemonic: MnemonicVmovdqa, encoding: "VEX.256.66.0F.WIG 6F /r", modes: modesAny, operands: "ymm ymmm", access: "w r", memory: MemorySizeUInt256, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovdqa_ymmm256_ymm: {mnemonic: MnemonicVmovdqa, encoding: "VEX.256.66.0F.WIG 7F /r", modes: modesAny, operands: "ymmm ymm", access: "w r", memory: MemorySizeUInt256, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovdqu_xmm_xmmm128: {mnemonic: MnemonicVmovdqu, encoding: "VEX.128.F3.0F.WIG 6F /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovdqu_xmmm128_xmm: {mnemonic: MnemonicVmovdqu, encoding: "VEX.128.F3.0F.WIG 7F /r", modes: modesAny, operands: "xmmm xmm", access: "w r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovdqu_ymm_ymmm256: {mnemonic: MnemonicVmovdqu, encoding: "VEX.256.F3.0F.WIG 6F /r", modes: modesAny, operands: "ymm ymmm", access: "w r", memory: MemorySizeUInt256, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovdqu_ymmm256_ymm: {mnemonic: MnemonicVmovdqu, encoding: "VEX.256.F3.0F.WIG 7F /r", modes: modesAny, operands: "ymmm ymm", access: "w r", memory: MemorySizeUInt256, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovss_xmm_xmm_xmm: {mnemonic: MnemonicVmovss, encoding: "VEX.LIG.F3.0F.WIG 10 /r", modes: modesAny, operands: "xmm vxmm rxmm", access: "w r r", cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovss_xmm_m32: {mnemonic: MnemonicVmovss, encoding: "VEX.LIG.F3.0F.WIG 10 /r", modes: modesAny, operands: "xmm m", access: "w r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovss_xmm_xmm_xmm_0F11: {mnemonic: MnemonicVmovss, encoding: "VEX.LIG.F3.0F.WIG 11 /r", modes: modesAny, operands: "rxmm vxmm xmm", access: "w r r", cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovss_m32_xmm: {mnemonic: MnemonicVmovss, encoding: "VEX.LIG.F3.0F.WIG 11 /r", modes: modesAny, operands: "m xmm", access: "w r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovsd_xmm_xmm_xmm: {mnemonic: MnemonicVmovsd, encoding: "VEX.LIG.F2.0F.WIG 10 /r", modes: modesAny, operands: "xmm vxmm rxmm", access: "w r r", cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovsd_xmm_m64: {mnemonic: MnemonicVmovsd, encoding: "VEX.LIG.F2.0F.WIG 10 /r", modes: modesAny, operands: "xmm m", access: "w r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovsd_xmm_xmm_xmm_0F11: {mnemonic: MnemonicVmovsd, encoding: "VEX.LIG.F2.0F.WIG 11 /r", modes: modesAny, operands: "rxmm vxmm xmm", access: "w r r", cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovsd_m64_xmm: {mnemonic: MnemonicVmovsd, encoding: "VEX.LIG.F2.0F.WIG 11 /r", modes: modesAny, operands: "m xmm", access: "w r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovd_xmm_rm32: {mnemonic: MnemonicVmovd, encoding: "VEX.128.66.0F.W0 WIG32 6E /r", modes: modesAny, operands: "xmm rm32", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovq_xmm_rm64: {mnemonic: MnemonicVmovq, encoding: "VEX.128.66.0F.W1 6E /r", modes: modesLong, operands: "xmm rm64", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovd_rm32_xmm: {mnemonic: MnemonicVmovd, encoding: "VEX.128.66.0F.W0 WIG32 7E /r", modes: modesAny, operands: "rm32 xmm", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovq_rm64_xmm: {mnemonic: MnemonicVmovq, encoding: "VEX.128.66.0F.W1 7E /r", modes: modesLong, operands: "rm64 xmm", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vmovq_xmm_xmmm64: {mnemonic: MnemonicVmovq, encoding: "VEX.128.F3.0F.WIG 7E /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vpaddb_xmm_xmm_xmmm128: {mnemonic: MnemonicVpaddb, encoding: "VEX.128.66.0F.WIG FC /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Int8, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpaddb_ymm_ymm_ymmm256: {mnemonic: MnemonicVpaddb, encoding: "VEX.256.66.0F.WIG FC /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Int8, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpaddw_xmm_xmm_xmmm128: {mnemonic: MnemonicVpaddw, encoding: "VEX.128.66.0F.WIG FD /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Int16, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpaddw_ymm_ymm_ymmm256: {mnemonic: MnemonicVpaddw, encoding: "VEX.256.66.0F.WIG FD /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Int16, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpaddd_xmm_xmm_xmmm128: {mnemonic: MnemonicVpaddd, encoding: "VEX.128.66.0F.WIG FE /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Int32, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpaddd_ymm_ymm_ymmm256: {mnemonic: MnemonicVpaddd, encoding: "VEX.256.66.0F.WIG FE /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Int32, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpaddq_xmm_xmm_xmmm128: {mnemonic: MnemonicVpaddq, encoding: "VEX.128.66.0F.WIG D4 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Int64, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpaddq_ymm_ymm_ymmm256: {mnemonic: MnemonicVpaddq, encoding: "VEX.256.66.0F.WIG D4 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Int64, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpsubb_xmm_xmm_xmmm128: {mnemonic: MnemonicVpsubb, encoding: "VEX.128.66.0F.WIG F8 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Int8, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpsubb_ymm_ymm_ymmm256: {mnemonic: MnemonicVpsubb, encoding: "VEX.256.66.0F.WIG F8 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Int8, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpsubd_xmm_xmm_xmmm128: {mnemonic: MnemonicVpsubd, encoding: "VEX.128.66.0F.WIG FA /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Int32, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpsubd_ymm_ymm_ymmm256: {mnemonic: MnemonicVpsubd, encoding: "VEX.256.66.0F.WIG FA /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Int32, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpand_xmm_xmm_xmmm128: {mnemonic: MnemonicVpand, encoding: "VEX.128.66.0F.WIG DB /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_UInt64, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpand_ymm_ymm_ymmm256: {mnemonic: MnemonicVpand, encoding: "VEX.256.66.0F.WIG DB /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_UInt64, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpandn_xmm_xmm_xmmm128: {mnemonic: MnemonicVpandn, encoding: "VEX.128.66.0F.WIG DF /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_UInt64, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpandn_ymm_ymm_ymmm256: {mnemonic: MnemonicVpandn, encoding: "VEX.256.66.0F.WIG DF /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_UInt64, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpor_xmm_xmm_xmmm128: {mnemonic: MnemonicVpor, encoding: "VEX.128.66.0F.WIG EB /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_UInt64, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpor_ymm_ymm_ymmm256: {mnemonic: MnemonicVpor, encoding: "VEX.256.66.0F.WIG EB /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_UInt64, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpxor_xmm_xmm_xmmm128: {mnemonic: MnemonicVpxor, encoding: "VEX.128.66.0F.WIG EF /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_UInt64, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpxor_ymm_ymm_ymmm256: {mnemonic: MnemonicVpxor, encoding: "VEX.256.66.0F.WIG EF /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_UInt64, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpcmpeqb_xmm_xmm_xmmm128: {mnemonic: MnemonicVpcmpeqb, encoding: "VEX.128.66.0F.WIG 74 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_UInt8, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpcmpeqb_ymm_ymm_ymmm256: {mnemonic: MnemonicVpcmpeqb, encoding: "VEX.256.66.0F.WIG 74 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_UInt8, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpcmpeqd_xmm_xmm_xmmm128: {mnemonic: MnemonicVpcmpeqd, encoding: "VEX.128.66.0F.WIG 76 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_UInt32, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpcmpeqd_ymm_ymm_ymmm256: {mnemonic: MnemonicVpcmpeqd, encoding: "VEX.256.66.0F.WIG 76 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_UInt32, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpshufb_xmm_xmm_xmmm128: {mnemonic: MnemonicVpshufb, encoding: "VEX.128.66.0F38.WIG 00 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_UInt8, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpshufb_ymm_ymm_ymmm256: {mnemonic: MnemonicVpshufb, encoding: "VEX.256.66.0F38.WIG 00 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_UInt8, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpmulld_xmm_xmm_xmmm128: {mnemonic: MnemonicVpmulld, encoding: "VEX.128.66.0F38.WIG 40 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Int32, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpmulld_ymm_ymm_ymmm256: {mnemonic: MnemonicVpmulld, encoding: "VEX.256.66.0F38.WIG 40 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Int32, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpshufd_xmm_xmmm128_imm8: {mnemonic: MnemonicVpshufd, encoding: "VEX.128.66.0F.WIG 70 /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "w r r", memory: MemorySizePacked128_UInt32, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vpshufd_ymm_ymmm256_imm8: {mnemonic: MnemonicVpshufd, encoding: "VEX.256.66.0F.WIG 70 /r ib", modes: modesAny, operands: "ymm ymmm ib", access: "w r r", memory: MemorySizePacked256_UInt32, cpuid: []CpuidFeature{CpuidAVX, CpuidAVX2}},
	VEX_Vptest_xmm_xmmm128: {mnemonic: MnemonicVptest, encoding: "VEX.128.66.0F38.WIG 17 /r", modes: modesAny, operands: "xmm xmmm", access: "r r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidAVX}, rflags: "w=zc c=osap"},
	VEX_Vptest_ymm_ymmm256: {mnemonic: MnemonicVptest, encoding: "VEX.256.66.0F38.WIG 17 /r", modes: modesAny, operands: "ymm ymmm", access: "r r", memory: MemorySizeUInt256, cpuid: []CpuidFeature{CpuidAVX}, rflags: "w=zc c=osap"},
	VEX_Vzeroupper: {mnemonic: MnemonicVzeroupper, encoding: "VEX.128.0F.WIG 77", modes: modesAny, cpuid: []CpuidFeature{CpuidAVX}, implied: "vzeroupper"},
	VEX_Vzeroall: {mnemonic: MnemonicVzeroall, encoding: "VEX.256.0F.WIG 77", modes: modesAny, cpuid: []CpuidFeature{CpuidAVX}, implied: "vzeroall"},
	VEX_Vbroadcastss_xmm_m32: {mnemonic: MnemonicVbroadcastss, encoding: "VEX.128.66.0F38.W0 18 /r", modes: modesAny, operands: "xmm m", access: "w r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vbroadcastss_ymm_m32: {mnemonic: MnemonicVbroadcastss, encoding: "VEX.256.66.0F38.W0 18 /r", modes: modesAny, operands: "ymm m", access: "w r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vbroadcastss_xmm_xmm: {mnemonic: MnemonicVbroadcastss, encoding: "VEX.128.66.0F38.W0 18 /r", modes: modesAny, operands: "xmm rxmm", access: "w r", cpuid: []CpuidFeature{CpuidAVX2}},
	VEX_Vbroadcastss_ymm_xmm: {mnemonic: MnemonicVbroadcastss, encoding: "VEX.256.66.0F38.W0 18 /r", modes: modesAny, operands: "ymm rxmm", access: "w r", cpuid: []CpuidFeature{CpuidAVX2}},
	VEX_Vperm2f128_ymm_ymm_ymmm256_imm8: {mnemonic: MnemonicVperm2f128, encoding: "VEX.256.66.0F3A.W0 06 /r ib", modes: modesAny, operands: "ymm vymm ymmm ib", access: "w r r r", memory: MemorySizeUInt256, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vinsertf128_ymm_ymm_xmmm128_imm8: {mnemonic: MnemonicVinsertf128, encoding: "VEX.256.66.0F3A.W0 18 /r ib", modes: modesAny, operands: "ymm vymm xmmm ib", access: "w r r r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vextractf128_xmmm128_ymm_imm8: {mnemonic: MnemonicVextractf128, encoding: "VEX.256.66.0F3A.W0 19 /r ib", modes: modesAny, operands: "xmmm ymm ib", access: "w r r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vpermq_ymm_ymmm256_imm8: {mnemonic: MnemonicVpermq, encoding: "VEX.256.66.0F3A.W1 00 /r ib", modes: modesAny, operands: "ymm ymmm ib", access: "w r r", memory: MemorySizePacked256_UInt64, cpuid: []CpuidFeature{CpuidAVX2}},
	VEX_Vblendvps_xmm_xmm_xmmm128_xmm: {mnemonic: MnemonicVblendvps, encoding: "VEX.128.66.0F3A.W0 4A /r /is4", modes: modesAny, operands: "xmm vxmm xmmm is4x", access: "w r r r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vblendvps_ymm_ymm_ymmm256_ymm: {mnemonic: MnemonicVblendvps, encoding: "VEX.256.66.0F3A.W0 4A /r /is4", modes: modesAny, operands: "ymm vymm ymmm is4y", access: "w r r r", memory: MemorySizePacked256_Float32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vfmadd132ps_xmm_xmm_xmmm128: {mnemonic: MnemonicVfmadd132ps, encoding: "VEX.128.66.0F38.W0 98 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "rw r r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidFMA}},
	VEX_Vfmadd132ps_ymm_ymm_ymmm256: {mnemonic: MnemonicVfmadd132ps, encoding: "VEX.256.66.0F38.W0 98 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "rw r r", memory: MemorySizePacked256_Float32, cpuid: []CpuidFeature{CpuidFMA}},
	VEX_Vfmadd132pd_xmm_xmm_xmmm128: {mnemonic: MnemonicVfmadd132pd, encoding: "VEX.128.66.0F38.W1 98 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "rw r r", memory: MemorySizePacked128_Float64, cpuid: []CpuidFeature{CpuidFMA}},
	VEX_Vfmadd132pd_ymm_ymm_ymmm256: {mnemonic: MnemonicVfmadd132pd, encoding: "VEX.256.66.0F38.W1 98 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "rw r r", memory: MemorySizePacked256_Float64, cpuid: []CpuidFeature{CpuidFMA}},
	VEX_Vfmadd213ps_xmm_xmm_xmmm128: {mnemonic: MnemonicVfmadd213ps, encoding: "VEX.128.66.0F38.W0 A8 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "rw r r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidFMA}},
	VEX_Vfmadd213ps_ymm_ymm_ymmm256: {mnemonic: MnemonicVfmadd213ps, encoding: "VEX.256.66.0F38.W0 A8 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "rw r r", memory: MemorySizePacked256_Float32, cpuid: []CpuidFeature{CpuidFMA}},
	VEX_Vfmadd231ps_xmm_xmm_xmmm128: {mnemonic: MnemonicVfmadd231ps, encoding: "VEX.128.66.0F38.W0 B8 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "rw r r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidFMA}},
	VEX_Vfmadd231ps_ymm_ymm_ymmm256: {mnemonic: MnemonicVfmadd231ps, encoding: "VEX.256.66.0F38.W0 B8 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "rw r r", memory: MemorySizePacked256_Float32, cpuid: []CpuidFeature{CpuidFMA}},
	VEX_Vfmadd231ss_xmm_xmm_xmmm32: {mnemonic: MnemonicVfmadd231ss, encoding: "VEX.LIG.66.0F38.W0 B9 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "rw r r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidFMA}},
	VEX_Vfmadd231sd_xmm_xmm_xmmm64: {mnemonic: MnemonicVfmadd231sd, encoding: "VEX.LIG.66.0F38.W1 B9 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "rw r r", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidFMA}},
	VEX_Vcvtsi2ss_xmm_xmm_rm32: {mnemonic: MnemonicVcvtsi2ss, encoding: "VEX.LIG.F3.0F.W0 WIG32 2A /r", modes: modesAny, operands: "xmm vxmm rm32", access: "w r r", memory: MemorySizeInt32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vcvtsi2ss_xmm_xmm_rm64: {mnemonic: MnemonicVcvtsi2ss, encoding: "VEX.LIG.F3.0F.W1 2A /r", modes: modesLong, operands: "xmm vxmm rm64", access: "w r r", memory: MemorySizeInt64, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vcvttss2si_r32_xmmm32: {mnemonic: MnemonicVcvttss2si, encoding: "VEX.LIG.F3.0F.W0 WIG32 2C /r", modes: modesAny, operands: "r32 xmmm", access: "w r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vcvttss2si_r64_xmmm32: {mnemonic: MnemonicVcvttss2si, encoding: "VEX.LIG.F3.0F.W1 2C /r", modes: modesLong, operands: "r64 xmmm", access: "w r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vucomiss_xmm_xmmm32: {mnemonic: MnemonicVucomiss, encoding: "VEX.LIG.NP.0F.WIG 2E /r", modes: modesAny, operands: "xmm xmmm", access: "r r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidAVX}, rflags: "w=zpc c=osa"},
	VEX_Vcomiss_xmm_xmmm32: {mnemonic: MnemonicVcomiss, encoding: "VEX.LIG.NP.0F.WIG 2F /r", modes: modesAny, operands: "xmm xmmm", access: "r r", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidAVX}, rflags: "w=zpc c=osa"},
	VEX_Vldmxcsr_m32: {mnemonic: MnemonicVldmxcsr, encoding: "VEX.LZ.0F.WIG AE /2", modes: modesAny, operands: "m", access: "r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Vstmxcsr_m32: {mnemonic: MnemonicVstmxcsr, encoding: "VEX.LZ.0F.WIG AE /3", modes: modesAny, operands: "m", access: "w", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidAVX}},
	VEX_Andn_r32_r32_rm32: {mnemonic: MnemonicAndn, encoding: "VEX.LZ.0F38.W0 WIG32 F2 /r", modes: modesAny, operands: "r32 v32 rm32", access: "w r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidBMI1}, rflags: "w=sz c=oc u=ap"},
	VEX_Andn_r64_r64_rm64: {mnemonic: MnemonicAndn, encoding: "VEX.LZ.0F38.W1 F2 /r", modes: modesLong, operands: "r64 v64 rm64", access: "w r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidBMI1}, rflags: "w=sz c=oc u=ap"},
	VEX_Bextr_r32_rm32_r32: {mnemonic: MnemonicBextr, encoding: "VEX.LZ.0F38.W0 WIG32 F7 /r", modes: modesAny, operands: "r32 rm32 v32", access: "w r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidBMI1}, rflags: "w=z c=oc u=sap"},
	VEX_Bextr_r64_rm64_r64: {mnemonic: MnemonicBextr, encoding: "VEX.LZ.0F38.W1 F7 /r", modes: modesLong, operands: "r64 rm64 v64", access: "w r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidBMI1}, rflags: "w=z c=oc u=sap"},
	VEX_Blsr_r32_rm32: {mnemonic: MnemonicBlsr, encoding: "VEX.LZ.0F38.W0 WIG32 F3 /1", modes: modesAny, operands: "v32 rm32", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidBMI1}, rflags: "w=szc c=o u=ap"},
	VEX_Blsr_r64_rm64: {mnemonic: MnemonicBlsr, encoding: "VEX.LZ.0F38.W1 F3 /1", modes: modesLong, operands: "v64 rm64", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidBMI1}, rflags: "w=szc c=o u=ap"},
	VEX_Blsmsk_r32_rm32: {mnemonic: MnemonicBlsmsk, encoding: "VEX.LZ.0F38.W0 WIG32 F3 /2", modes: modesAny, operands: "v32 rm32", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidBMI1}, rflags: "w=sc c=oz u=ap"},
	VEX_Blsmsk_r64_rm64: {mnemonic: MnemonicBlsmsk, encoding: "VEX.LZ.0F38.W1 F3 /2", modes: modesLong, operands: "v64 rm64", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidBMI1}, rflags: "w=sc c=oz u=ap"},
	VEX_Blsi_r32_rm32: {mnemonic: MnemonicBlsi, encoding: "VEX.LZ.0F38.W0 WIG32 F3 /3", modes: modesAny, operands: "v32 rm32", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidBMI1}, rflags: "w=szc c=o u=ap"},
	VEX_Blsi_r64_rm64: {mnemonic: MnemonicBlsi, encoding: "VEX.LZ.0F38.W1 F3 /3", modes: modesLong, operands: "v64 rm64", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidBMI1}, rflags: "w=szc c=o u=ap"},
	VEX_Bzhi_r32_rm32_r32: {mnemonic: MnemonicBzhi, encoding: "VEX.LZ.NP.0F38.W0 WIG32 F5 /r", modes: modesAny, operands: "r32 rm32 v32", access: "w r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidBMI2}, rflags: "w=szc c=o u=ap"},
	VEX_Bzhi_r64_rm64_r64: {mnemonic: MnemonicBzhi, encoding: "VEX.LZ.NP.0F38.W1 F5 /r", modes: modesLong, operands: "r64 rm64 v64", access: "w r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidBMI2}, rflags: "w=szc c=o u=ap"},
	VEX_Pdep_r32_r32_rm32: {mnemonic: MnemonicPdep, encoding: "VEX.LZ.F2.0F38.W0 WIG32 F5 /r", modes: modesAny, operands: "r32 v32 rm32", access: "w r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidBMI2}},
	VEX_Pdep_r64_r64_rm64: {mnemonic: MnemonicPdep, encoding: "VEX.LZ.F2.0F38.W1 F5 /r", modes: modesLong, operands: "r64 v64 rm64", access: "w r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidBMI2}},
	VEX_Pext_r32_r32_rm32: {mnemonic: MnemonicPext, encoding: "VEX.LZ.F3.0F38.W0 WIG32 F5 /r", modes: modesAny, operands: "r32 v32 rm32", access: "w r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidBMI2}},
	VEX_Pext_r64_r64_rm64: {mnemonic: MnemonicPext, encoding: "VEX.LZ.F3.0F38.W1 F5 /r", modes: modesLong, operands: "r64 v64 rm64", access: "w r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidBMI2}},
	VEX_Mulx_r32_r32_rm32: {mnemonic: MnemonicMulx, encoding: "VEX.LZ.F2.0F38.W0 WIG32 F6 /r", modes: modesAny, operands: "r32 v32 rm32", access: "w w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidBMI2}, implied: "r:EDX"},
	VEX_Mulx_r64_r64_rm64: {mnemonic: MnemonicMulx, encoding: "VEX.LZ.F2.0F38.W1 F6 /r", modes: modesLong, operands: "r64 v64 rm64", access: "w w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidBMI2}, implied: "r:EDX"},
	VEX_Sarx_r32_rm32_r32: {mnemonic: MnemonicSarx, encoding: "VEX.LZ.F3.0F38.W0 WIG32 F7 /r", modes: modesAny, operands: "r32 rm32 v32", access: "w r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidBMI2}},
	VEX_Sarx_r64_rm64_r64: {mnemonic: MnemonicSarx, encoding: "VEX.LZ.F3.0F38.W1 F7 /r", modes: modesLong, operands: "r64 rm64 v64", access: "w r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidBMI2}},
	VEX_Shlx_r32_rm32_r32: {mnemonic: MnemonicShlx, encoding: "VEX.LZ.66.0F38.W0 WIG32 F7 /r", modes: modesAny, operands: "r32 rm32 v32", access: "w r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidBMI2}},
	VEX_Shlx_r64_rm64_r64: {mnemonic: MnemonicShlx, encoding: "VEX.LZ.66.0F38.W1 F7 /r", modes: modesLong, operands: "r64 rm64 v64", access: "w r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidBMI2}},
	VEX_Shrx_r32_rm32_r32: {mnemonic: MnemonicShrx, encoding: "VEX.LZ.F2.0F38.W0 WIG32 F7 /r", modes: modesAny, operands: "r32 rm32 v32", access: "w r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidBMI2}},
	VEX_Shrx_r64_rm64_r64: {mnemonic: MnemonicShrx, encoding: "VEX.LZ.F2.0F38.W1 F7 /r", modes: modesLong, operands: "r64 rm64 v64", access: "w r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidBMI2}},
	VEX_Rorx_r32_rm32_imm8: {mnemonic: MnemonicRorx, encoding: "VEX.LZ.F2.0F3A.W0 WIG32 F0 /r ib", modes: modesAny, operands: "r32 rm32 ib", access: "w r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidBMI2}},
	VEX_Rorx_r64_rm64_imm8: {mnemonic: MnemonicRorx, encoding: "VEX.LZ.F2.0F3A.W1 F0 /r ib", modes: modesLong, operands: "r64 rm64 ib", access: "w r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidBMI2}},
	VEX_Kandw_kr_kr_kr: {mnemonic: MnemonicKandw, encoding: "VEX.L1.NP.0F.W0 41 /r", modes: modesAny, operands: "kr vk rk", access: "w r r", cpuid: []CpuidFeature{CpuidAVX512F}},
	VEX_Kandb_kr_kr_kr: {mnemonic: MnemonicKandb, encoding: "VEX.L1.66.0F.W0 41 /r", modes: modesAny, operands: "kr vk rk", access: "w r r", cpuid: []CpuidFeature{CpuidAVX512DQ}},
	VEX_Kandq_kr_kr_kr: {mnemonic: MnemonicKandq, encoding: "VEX.L1.NP.0F.W1 41 /r", modes: modesAny, operands: "kr vk rk", access: "w r r", cpuid: []CpuidFeature{CpuidAVX512BW}},
	VEX_Kandd_kr_kr_kr: {mnemonic: MnemonicKandd, encoding: "VEX.L1.66.0F.W1 41 /r", modes: modesAny, operands: "kr vk rk", access: "w r r", cpuid: []CpuidFeature{CpuidAVX512BW}},
	VEX_Kandnw_kr_kr_kr: {mnemonic: MnemonicKandnw, encoding: "VEX.L1.NP.0F.W0 42 /r", modes: modesAny, operands: "kr vk rk", access: "w r r", cpuid: []CpuidFeature{CpuidAVX512F}},
	VEX_Kandnb_kr_kr_kr: {mnemonic: MnemonicKandnb, encoding: "VEX.L1.66.0F.W0 42 /r", modes: modesAny, operands: "kr vk rk", access: "w r r", cpuid: []CpuidFeature{CpuidAVX512DQ}},
	VEX_Kandnq_kr_kr_kr: {mnemonic: MnemonicKandnq, encoding: "VEX.L1.NP.0F.W1 42 /r", modes: modesAny, operands: "kr vk rk", access: "w r r", cpuid: []CpuidFeature{CpuidAVX512BW}},
	VEX_Kandnd_kr_kr_kr: {mnemonic: MnemonicKandnd, encoding: "VEX.L1.66.0F.W1 42 /r", modes: modesAny, operands: "kr vk rk", access: "w r r", cpuid: []CpuidFeature{CpuidAVX512BW}},
	VEX_Korw_kr_kr_kr: {mnemonic: MnemonicKorw, encoding: "VEX.L1.NP.0F.W0 45 /r", modes: modesAny, operands: "kr vk rk", access: "w r r", cpuid: []CpuidFeature{CpuidAVX512F}},
	VEX_Korb_kr_kr_kr: {mnemonic: MnemonicKorb, encoding: "VEX.L1.66.0F.W0 45 /r", modes: modesAny, operands: "kr vk rk", access: "w r r", cpuid: []CpuidFeature{CpuidAVX512DQ}},
	VEX_Korq_kr_kr_kr: {mnemonic: MnemonicKorq, encoding: "VEX.L1.NP.0F.W1 45 /r", modes: modesAny, operands: "kr vk rk", access: "w r r", cpuid: []CpuidFeature{CpuidAVX512BW}},
	VEX_Kord_kr_kr_kr: {mnemonic: MnemonicKord, encoding: "VEX.L1.66.0F.W1 45 /r", modes: modesAny, operands: "kr vk rk", access: "w r r", cpuid: []CpuidFeature{CpuidAVX512BW}},
	VEX_Kxnorw_kr_kr_kr: {mnemonic: MnemonicKxnorw, encoding: "VEX.L1.NP.0F.W0 46 /r", modes: modesAny, operands: "kr vk rk", access: "w r r", cpuid: []CpuidFeature{CpuidAVX512F}},
	VEX_Kxnorb_kr_kr_kr: {mnemonic: MnemonicKxnorb, encoding: "VEX.L1.66.0F.W0 46 /r", modes: modesAny, operands: "kr vk rk", access: "w r r", cpuid: []CpuidFeature{CpuidAVX512DQ}},
	VEX_Kxnorq_kr_kr_kr: {mnemonic: MnemonicKxnorq, encoding: "VEX.L1.NP.0F.W1 46 /r", modes: modesAny, operands: "kr vk rk", access: "w r r", cpuid: []CpuidFeature{CpuidAVX512BW}},
	VEX_Kxnord_kr_kr_kr: {mnemonic: MnemonicKxnord, encoding: "VEX.L1.66.0F.W1 46 /r", modes: modesAny, operands: "kr vk rk", access: "w r r", cpuid: []CpuidFeature{CpuidAVX512BW}},
	VEX_Kxorw_kr_kr_kr: {mnemonic: MnemonicKxorw, encoding: "VEX.L1.NP.0F.W0 47 /r", modes: modesAny, operands: "kr vk rk", access: "w r r", cpuid: []CpuidFeature{CpuidAVX512F}},
	VEX_Kxorb_kr_kr_kr: {mnemonic: MnemonicKxorb, encoding: "VEX.L1.66.0F.W0 47 /r", modes: modesAny, operands: "kr vk rk", access: "w r r", cpuid: []CpuidFeature{CpuidAVX512DQ}},
	VEX_Kxorq_kr_kr_kr: {mnemonic: MnemonicKxorq, encoding: "VEX.L1.NP.0F.W1 47 /r", modes: modesAny, operands: "kr vk rk", access: "w r r", cpuid: []CpuidFeature{CpuidAVX512BW}},
	VEX_Kxord_kr_kr_kr: {mnemonic: MnemonicKxord, encoding: "VEX.L1.66.0F.W1 47 /r", modes: modesAny, operands: "kr vk rk", access: "w r r", cpuid: []CpuidFeature{CpuidAVX512BW}},
	VEX_Knotw_kr_kr: {mnemonic: MnemonicKnotw, encoding: "VEX.L0.0F.W0 44 /r", modes: modesAny, operands: "kr rk", access: "w r", cpuid: []CpuidFeature{CpuidAVX512F}},
	VEX_Kortestw_kr_kr: {mnemonic: MnemonicKortestw, encoding: "VEX.L0.0F.W0 98 /r", modes: modesAny, operands: "kr rk", access: "r r", cpuid: []CpuidFeature{CpuidAVX512F}, rflags: "w=zc c=osap"},
	VEX_Kmovw_kr_km16: {mnemonic: MnemonicKmovw, encoding: "VEX.L0.0F.W0 90 /r", modes: modesAny, operands: "kr km", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidAVX512F}},
	VEX_Kmovw_m16_kr: {mnemonic: MnemonicKmovw, encoding: "VEX.L0.0F.W0 91 /r", modes: modesAny, operands: "m kr", access: "w r", memory: MemorySizeUInt16, cpuid: []CpuidFeature{CpuidAVX512F}},
	VEX_Kmovw_kr_r32: {mnemonic: MnemonicKmovw, encoding: "VEX.L0.0F.W0 92 /r", modes: modesAny, operands: "kr rr32", access: "w r", cpuid: []CpuidFeature{CpuidAVX512F}},
	VEX_Kmovw_r32_kr: {mnemonic: MnemonicKmovw, encoding: "VEX.L0.0F.W0 93 /r", modes: modesAny, operands: "r32 rk", access: "w r", cpuid: []CpuidFeature{CpuidAVX512F}},
	VEX_Kmovq_kr_km64: {mnemonic: MnemonicKmovq, encoding: "VEX.L0.0F.W1 90 /r", modes: modesAny, operands: "kr km", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidAVX512BW}},
	VEX_Kmovq_r64_kr: {mnemonic: MnemonicKmovq, encoding: "VEX.L0.F2.0F.W1 93 /r", modes: modesLong, operands: "r64 rk", access: "w r", cpuid: []CpuidFeature{CpuidAVX512BW}},
	XOP_Vpcmov_xmm_xmm_xmmm128_xmm: {mnemonic: MnemonicVpcmov, encoding: "XOP.128.08.W0 A2 /r /is4", modes: modesAny, operands: "xmm vxmm xmmm is4x", access: "w r r r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidXOP}},
	XOP_Vpcmov_ymm_ymm_ymmm256_ymm: {mnemonic: MnemonicVpcmov, encoding: "XOP.256.08.W0 A2 /r /is4", modes: modesAny, operands: "ymm vymm ymmm is4y", access: "w r r r", memory: MemorySizeUInt256, cpuid: []CpuidFeature{CpuidXOP}},
	XOP_Vpcmov_xmm_xmm_xmm_xmmm128: {mnemonic: MnemonicVpcmov, encoding: "XOP.128.08.W1 A2 /r /is4", modes: modesAny, operands: "xmm vxmm is4x xmmm", access: "w r r r", memory: MemorySizeUInt128, cpuid: []CpuidFeature{CpuidXOP}},
	XOP_Vpcmov_ymm_ymm_ymm_ymmm256: {mnemonic: MnemonicVpcmov, encoding: "XOP.256.08.W1 A2 /r /is4", modes: modesAny, operands: "ymm vymm is4y ymmm", access: "w r r r", memory: MemorySizeUInt256, cpuid: []CpuidFeature{CpuidXOP}},
	XOP_Vprotb_xmm_xmmm128_xmm: {mnemonic: MnemonicVprotb, encoding: "XOP.128.09.W0 90 /r", modes: modesAny, operands: "xmm xmmm vxmm", access: "w r r", memory: MemorySizePacked128_UInt8, cpuid: []CpuidFeature{CpuidXOP}},
	XOP_Vprotb_xmm_xmm_xmmm128: {mnemonic: MnemonicVprotb, encoding: "XOP.128.09.W1 90 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_UInt8, cpuid: []CpuidFeature{CpuidXOP}},
	XOP_Vprotb_xmm_xmmm128_imm8: {mnemonic: MnemonicVprotb, encoding: "XOP.128.08.W0 C0 /r ib", modes: modesAny, operands: "xmm xmmm ib", access: "w r r", memory: MemorySizePacked128_UInt8, cpuid: []CpuidFeature{CpuidXOP}},
	XOP_Vpcomb_xmm_xmm_xmmm128_imm8: {mnemonic: MnemonicVpcomb, encoding: "XOP.128.08.W0 CC /r ib", modes: modesAny, operands: "xmm vxmm xmmm ib", access: "w r r r", memory: MemorySizePacked128_Int8, cpuid: []CpuidFeature{CpuidXOP}},
	XOP_Vfrczps_xmm_xmmm128: {mnemonic: MnemonicVfrczps, encoding: "XOP.128.09.W0 80 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_Float32, cpuid: []CpuidFeature{CpuidXOP}},
	XOP_Vfrczps_ymm_ymmm256: {mnemonic: MnemonicVfrczps, encoding: "XOP.256.09.W0 80 /r", modes: modesAny, operands: "ymm ymmm", access: "w r", memory: MemorySizePacked256_Float32, cpuid: []CpuidFeature{CpuidXOP}},
	XOP_Vphaddbw_xmm_xmmm128: {mnemonic: MnemonicVphaddbw, encoding: "XOP.128.09.W0 C1 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_Int8, cpuid: []CpuidFeature{CpuidXOP}},
	XOP_Blcfill_r32_rm32: {mnemonic: MnemonicBlcfill, encoding: "XOP.L0.09.W0 WIG32 01 /1", modes: modesAny, operands: "v32 rm32", access: "w r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidTBM}, rflags: "w=szc c=o u=ap"},
	XOP_Blcfill_r64_rm64: {mnemonic: MnemonicBlcfill, encoding: "XOP.L0.09.W1 01 /1", modes: modesLong, operands: "v64 rm64", access: "w r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidTBM}, rflags: "w=szc c=o u=ap"},
	XOP_Bextr_r32_rm32_imm32: {mnemonic: MnemonicBextr, encoding: "XOP.L0.0A.W0 WIG32 10 /r id", modes: modesAny, operands: "r32 rm32 id", access: "w r r", memory: MemorySizeUInt32, cpuid: []CpuidFeature{CpuidTBM}, rflags: "w=z c=oc u=sap"},
	XOP_Bextr_r64_rm64_imm32: {mnemonic: MnemonicBextr, encoding: "XOP.L0.0A.W1 10 /r id", modes: modesLong, operands: "r64 rm64 id", access: "w r r", memory: MemorySizeUInt64, cpuid: []CpuidFeature{CpuidTBM}, rflags: "w=z c=oc u=sap"},
	EVEX_Vaddps_xmm_k1z_xmm_xmmm128b32: {mnemonic: MnemonicVaddps, encoding: "EVEX.128.NP.0F.W0 58 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float32, broadcast: MemorySizeBroadcast128_Float32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vaddps_ymm_k1z_ymm_ymmm256b32: {mnemonic: MnemonicVaddps, encoding: "EVEX.256.NP.0F.W0 58 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float32, broadcast: MemorySizeBroadcast256_Float32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er: {mnemonic: MnemonicVaddps, encoding: "EVEX.512.NP.0F.W0 58 /r", modes: modesAny, operands: "zmm vzmm zmmm", access: "w r r", memory: MemorySizePacked512_Float32, broadcast: MemorySizeBroadcast512_Float32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast | flagRounding, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vaddss_xmm_k1z_xmm_xmmm32_er: {mnemonic: MnemonicVaddss, encoding: "EVEX.LIG.F3.0F.W0 58 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizeFloat32, tuple: opcode.Tuple1Scalar, flags: flagOpmask | flagZeroing | flagRounding, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vaddpd_xmm_k1z_xmm_xmmm128b64: {mnemonic: MnemonicVaddpd, encoding: "EVEX.128.66.0F.W1 58 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float64, broadcast: MemorySizeBroadcast128_Float64, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vaddpd_ymm_k1z_ymm_ymmm256b64: {mnemonic: MnemonicVaddpd, encoding: "EVEX.256.66.0F.W1 58 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float64, broadcast: MemorySizeBroadcast256_Float64, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vaddpd_zmm_k1z_zmm_zmmm512b64_er: {mnemonic: MnemonicVaddpd, encoding: "EVEX.512.66.0F.W1 58 /r", modes: modesAny, operands: "zmm vzmm zmmm", access: "w r r", memory: MemorySizePacked512_Float64, broadcast: MemorySizeBroadcast512_Float64, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast | flagRounding, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vaddsd_xmm_k1z_xmm_xmmm64_er: {mnemonic: MnemonicVaddsd, encoding: "EVEX.LIG.F2.0F.W1 58 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizeFloat64, tuple: opcode.Tuple1Scalar, flags: flagOpmask | flagZeroing | flagRounding, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vmulps_xmm_k1z_xmm_xmmm128b32: {mnemonic: MnemonicVmulps, encoding: "EVEX.128.NP.0F.W0 59 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float32, broadcast: MemorySizeBroadcast128_Float32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vmulps_ymm_k1z_ymm_ymmm256b32: {mnemonic: MnemonicVmulps, encoding: "EVEX.256.NP.0F.W0 59 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float32, broadcast: MemorySizeBroadcast256_Float32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vmulps_zmm_k1z_zmm_zmmm512b32_er: {mnemonic: MnemonicVmulps, encoding: "EVEX.512.NP.0F.W0 59 /r", modes: modesAny, operands: "zmm vzmm zmmm", access: "w r r", memory: MemorySizePacked512_Float32, broadcast: MemorySizeBroadcast512_Float32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast | flagRounding, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vmulss_xmm_k1z_xmm_xmmm32_er: {mnemonic: MnemonicVmulss, encoding: "EVEX.LIG.F3.0F.W0 59 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizeFloat32, tuple: opcode.Tuple1Scalar, flags: flagOpmask | flagZeroing | flagRounding, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vmulpd_xmm_k1z_xmm_xmmm128b64: {mnemonic: MnemonicVmulpd, encoding: "EVEX.128.66.0F.W1 59 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float64, broadcast: MemorySizeBroadcast128_Float64, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vmulpd_ymm_k1z_ymm_ymmm256b64: {mnemonic: MnemonicVmulpd, encoding: "EVEX.256.66.0F.W1 59 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float64, broadcast: MemorySizeBroadcast256_Float64, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vmulpd_zmm_k1z_zmm_zmmm512b64_er: {mnemonic: MnemonicVmulpd, encoding: "EVEX.512.66.0F.W1 59 /r", modes: modesAny, operands: "zmm vzmm zmmm", access: "w r r", memory: MemorySizePacked512_Float64, broadcast: MemorySizeBroadcast512_Float64, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast | flagRounding, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vmulsd_xmm_k1z_xmm_xmmm64_er: {mnemonic: MnemonicVmulsd, encoding: "EVEX.LIG.F2.0F.W1 59 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizeFloat64, tuple: opcode.Tuple1Scalar, flags: flagOpmask | flagZeroing | flagRounding, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vsubps_xmm_k1z_xmm_xmmm128b32: {mnemonic: MnemonicVsubps, encoding: "EVEX.128.NP.0F.W0 5C /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float32, broadcast: MemorySizeBroadcast128_Float32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vsubps_ymm_k1z_ymm_ymmm256b32: {mnemonic: MnemonicVsubps, encoding: "EVEX.256.NP.0F.W0 5C /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float32, broadcast: MemorySizeBroadcast256_Float32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vsubps_zmm_k1z_zmm_zmmm512b32_er: {mnemonic: MnemonicVsubps, encoding: "EVEX.512.NP.0F.W0 5C /r", modes: modesAny, operands: "zmm vzmm zmmm", access: "w r r", memory: MemorySizePacked512_Float32, broadcast: MemorySizeBroadcast512_Float32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast | flagRounding, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vsubss_xmm_k1z_xmm_xmmm32_er: {mnemonic: MnemonicVsubss, encoding: "EVEX.LIG.F3.0F.W0 5C /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizeFloat32, tuple: opcode.Tuple1Scalar, flags: flagOpmask | flagZeroing | flagRounding, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vsubpd_xmm_k1z_xmm_xmmm128b64: {mnemonic: MnemonicVsubpd, encoding: "EVEX.128.66.0F.W1 5C /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float64, broadcast: MemorySizeBroadcast128_Float64, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vsubpd_ymm_k1z_ymm_ymmm256b64: {mnemonic: MnemonicVsubpd, encoding: "EVEX.256.66.0F.W1 5C /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float64, broadcast: MemorySizeBroadcast256_Float64, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vsubpd_zmm_k1z_zmm_zmmm512b64_er: {mnemonic: MnemonicVsubpd, encoding: "EVEX.512.66.0F.W1 5C /r", modes: modesAny, operands: "zmm vzmm zmmm", access: "w r r", memory: MemorySizePacked512_Float64, broadcast: MemorySizeBroadcast512_Float64, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast | flagRounding, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vsubsd_xmm_k1z_xmm_xmmm64_er: {mnemonic: MnemonicVsubsd, encoding: "EVEX.LIG.F2.0F.W1 5C /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizeFloat64, tuple: opcode.Tuple1Scalar, flags: flagOpmask | flagZeroing | flagRounding, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vdivps_xmm_k1z_xmm_xmmm128b32: {mnemonic: MnemonicVdivps, encoding: "EVEX.128.NP.0F.W0 5E /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float32, broadcast: MemorySizeBroadcast128_Float32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vdivps_ymm_k1z_ymm_ymmm256b32: {mnemonic: MnemonicVdivps, encoding: "EVEX.256.NP.0F.W0 5E /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float32, broadcast: MemorySizeBroadcast256_Float32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vdivps_zmm_k1z_zmm_zmmm512b32_er: {mnemonic: MnemonicVdivps, encoding: "EVEX.512.NP.0F.W0 5E /r", modes: modesAny, operands: "zmm vzmm zmmm", access: "w r r", memory: MemorySizePacked512_Float32, broadcast: MemorySizeBroadcast512_Float32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast | flagRounding, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vdivss_xmm_k1z_xmm_xmmm32_er: {mnemonic: MnemonicVdivss, encoding: "EVEX.LIG.F3.0F.W0 5E /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizeFloat32, tuple: opcode.Tuple1Scalar, flags: flagOpmask | flagZeroing | flagRounding, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vdivpd_xmm_k1z_xmm_xmmm128b64: {mnemonic: MnemonicVdivpd, encoding: "EVEX.128.66.0F.W1 5E /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float64, broadcast: MemorySizeBroadcast128_Float64, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vdivpd_ymm_k1z_ymm_ymmm256b64: {mnemonic: MnemonicVdivpd, encoding: "EVEX.256.66.0F.W1 5E /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float64, broadcast: MemorySizeBroadcast256_Float64, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vdivpd_zmm_k1z_zmm_zmmm512b64_er: {mnemonic: MnemonicVdivpd, encoding: "EVEX.512.66.0F.W1 5E /r", modes: modesAny, operands: "zmm vzmm zmmm", access: "w r r", memory: MemorySizePacked512_Float64, broadcast: MemorySizeBroadcast512_Float64, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast | flagRounding, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vdivsd_xmm_k1z_xmm_xmmm64_er: {mnemonic: MnemonicVdivsd, encoding: "EVEX.LIG.F2.0F.W1 5E /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizeFloat64, tuple: opcode.Tuple1Scalar, flags: flagOpmask | flagZeroing | flagRounding, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vmaxps_xmm_k1z_xmm_xmmm128b32: {mnemonic: MnemonicVmaxps, encoding: "EVEX.128.NP.0F.W0 5F /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float32, broadcast: MemorySizeBroadcast128_Float32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vmaxps_ymm_k1z_ymm_ymmm256b32: {mnemonic: MnemonicVmaxps, encoding: "EVEX.256.NP.0F.W0 5F /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float32, broadcast: MemorySizeBroadcast256_Float32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vmaxps_zmm_k1z_zmm_zmmm512b32_sae: {mnemonic: MnemonicVmaxps, encoding: "EVEX.512.NP.0F.W0 5F /r", modes: modesAny, operands: "zmm vzmm zmmm", access: "w r r", memory: MemorySizePacked512_Float32, broadcast: MemorySizeBroadcast512_Float32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast | flagSAE, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vmaxpd_xmm_k1z_xmm_xmmm128b64: {mnemonic: MnemonicVmaxpd, encoding: "EVEX.128.66.0F.W1 5F /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Float64, broadcast: MemorySizeBroadcast128_Float64, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vmaxpd_ymm_k1z_ymm_ymmm256b64: {mnemonic: MnemonicVmaxpd, encoding: "EVEX.256.66.0F.W1 5F /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Float64, broadcast: MemorySizeBroadcast256_Float64, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vmaxpd_zmm_k1z_zmm_zmmm512b64_sae: {mnemonic: MnemonicVmaxpd, encoding: "EVEX.512.66.0F.W1 5F /r", modes: modesAny, operands: "zmm vzmm zmmm", access: "w r r", memory: MemorySizePacked512_Float64, broadcast: MemorySizeBroadcast512_Float64, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast | flagSAE, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vpaddd_xmm_k1z_xmm_xmmm128b32: {mnemonic: MnemonicVpaddd, encoding: "EVEX.128.66.0F.W0 FE /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Int32, broadcast: MemorySizeBroadcast128_Int32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpaddd_ymm_k1z_ymm_ymmm256b32: {mnemonic: MnemonicVpaddd, encoding: "EVEX.256.66.0F.W0 FE /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Int32, broadcast: MemorySizeBroadcast256_Int32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpaddd_zmm_k1z_zmm_zmmm512b32: {mnemonic: MnemonicVpaddd, encoding: "EVEX.512.66.0F.W0 FE /r", modes: modesAny, operands: "zmm vzmm zmmm", access: "w r r", memory: MemorySizePacked512_Int32, broadcast: MemorySizeBroadcast512_Int32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vpaddq_xmm_k1z_xmm_xmmm128b64: {mnemonic: MnemonicVpaddq, encoding: "EVEX.128.66.0F.W1 D4 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Int64, broadcast: MemorySizeBroadcast128_Int64, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpaddq_ymm_k1z_ymm_ymmm256b64: {mnemonic: MnemonicVpaddq, encoding: "EVEX.256.66.0F.W1 D4 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Int64, broadcast: MemorySizeBroadcast256_Int64, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpaddq_zmm_k1z_zmm_zmmm512b64: {mnemonic: MnemonicVpaddq, encoding: "EVEX.512.66.0F.W1 D4 /r", modes: modesAny, operands: "zmm vzmm zmmm", access: "w r r", memory: MemorySizePacked512_Int64, broadcast: MemorySizeBroadcast512_Int64, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vpsubd_xmm_k1z_xmm_xmmm128b32: {mnemonic: MnemonicVpsubd, encoding: "EVEX.128.66.0F.W0 FA /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Int32, broadcast: MemorySizeBroadcast128_Int32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpsubd_ymm_k1z_ymm_ymmm256b32: {mnemonic: MnemonicVpsubd, encoding: "EVEX.256.66.0F.W0 FA /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Int32, broadcast: MemorySizeBroadcast256_Int32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpsubd_zmm_k1z_zmm_zmmm512b32: {mnemonic: MnemonicVpsubd, encoding: "EVEX.512.66.0F.W0 FA /r", modes: modesAny, operands: "zmm vzmm zmmm", access: "w r r", memory: MemorySizePacked512_Int32, broadcast: MemorySizeBroadcast512_Int32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vpandd_xmm_k1z_xmm_xmmm128b32: {mnemonic: MnemonicVpandd, encoding: "EVEX.128.66.0F.W0 DB /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_UInt32, broadcast: MemorySizeBroadcast128_UInt32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpandd_ymm_k1z_ymm_ymmm256b32: {mnemonic: MnemonicVpandd, encoding: "EVEX.256.66.0F.W0 DB /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_UInt32, broadcast: MemorySizeBroadcast256_UInt32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpandd_zmm_k1z_zmm_zmmm512b32: {mnemonic: MnemonicVpandd, encoding: "EVEX.512.66.0F.W0 DB /r", modes: modesAny, operands: "zmm vzmm zmmm", access: "w r r", memory: MemorySizePacked512_UInt32, broadcast: MemorySizeBroadcast512_UInt32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vpandq_xmm_k1z_xmm_xmmm128b64: {mnemonic: MnemonicVpandq, encoding: "EVEX.128.66.0F.W1 DB /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_UInt64, broadcast: MemorySizeBroadcast128_UInt64, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpandq_ymm_k1z_ymm_ymmm256b64: {mnemonic: MnemonicVpandq, encoding: "EVEX.256.66.0F.W1 DB /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_UInt64, broadcast: MemorySizeBroadcast256_UInt64, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpandq_zmm_k1z_zmm_zmmm512b64: {mnemonic: MnemonicVpandq, encoding: "EVEX.512.66.0F.W1 DB /r", modes: modesAny, operands: "zmm vzmm zmmm", access: "w r r", memory: MemorySizePacked512_UInt64, broadcast: MemorySizeBroadcast512_UInt64, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vpmulld_xmm_k1z_xmm_xmmm128b32: {mnemonic: MnemonicVpmulld, encoding: "EVEX.128.66.0F38.W0 40 /r", modes: modesAny, operands: "xmm vxmm xmmm", access: "w r r", memory: MemorySizePacked128_Int32, broadcast: MemorySizeBroadcast128_Int32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpmulld_ymm_k1z_ymm_ymmm256b32: {mnemonic: MnemonicVpmulld, encoding: "EVEX.256.66.0F38.W0 40 /r", modes: modesAny, operands: "ymm vymm ymmm", access: "w r r", memory: MemorySizePacked256_Int32, broadcast: MemorySizeBroadcast256_Int32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpmulld_zmm_k1z_zmm_zmmm512b32: {mnemonic: MnemonicVpmulld, encoding: "EVEX.512.66.0F38.W0 40 /r", modes: modesAny, operands: "zmm vzmm zmmm", access: "w r r", memory: MemorySizePacked512_Int32, broadcast: MemorySizeBroadcast512_Int32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vpternlogd_xmm_k1z_xmm_xmmm128b32_imm8: {mnemonic: MnemonicVpternlogd, encoding: "EVEX.128.66.0F3A.W0 25 /r ib", modes: modesAny, operands: "xmm vxmm xmmm ib", access: "rw r r r", memory: MemorySizePacked128_UInt32, broadcast: MemorySizeBroadcast128_UInt32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpcmpeqd_kr_k1_xmm_xmmm128b32: {mnemonic: MnemonicVpcmpeqd, encoding: "EVEX.128.66.0F.W0 76 /r", modes: modesAny, operands: "kr vxmm xmmm", access: "w r r", memory: MemorySizePacked128_UInt32, broadcast: MemorySizeBroadcast128_UInt32, tuple: opcode.TupleFull, flags: flagOpmask | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vcmpps_kr_k1_xmm_xmmm128b32_imm8: {mnemonic: MnemonicVcmpps, encoding: "EVEX.128.0F.W0 C2 /r ib", modes: modesAny, operands: "kr vxmm xmmm ib", access: "w r r r", memory: MemorySizePacked128_Float32, broadcast: MemorySizeBroadcast128_Float32, tuple: opcode.TupleFull, flags: flagOpmask | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vmovups_xmm_k1z_xmmm128: {mnemonic: MnemonicVmovups, encoding: "EVEX.128.NP.0F.W0 10 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_Float32, tuple: opcode.TupleFullMem, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vmovups_xmmm128_k1z_xmm: {mnemonic: MnemonicVmovups, encoding: "EVEX.128.NP.0F.W0 11 /r", modes: modesAny, operands: "xmmm xmm", access: "w r", memory: MemorySizePacked128_Float32, tuple: opcode.TupleFullMem, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vmovaps_xmm_k1z_xmmm128: {mnemonic: MnemonicVmovaps, encoding: "EVEX.128.NP.0F.W0 28 /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_Float32, tuple: opcode.TupleFullMem, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vmovaps_xmmm128_k1z_xmm: {mnemonic: MnemonicVmovaps, encoding: "EVEX.128.NP.0F.W0 29 /r", modes: modesAny, operands: "xmmm xmm", access: "w r", memory: MemorySizePacked128_Float32, tuple: opcode.TupleFullMem, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vmovdqa32_xmm_k1z_xmmm128: {mnemonic: MnemonicVmovdqa32, encoding: "EVEX.128.66.0F.W0 6F /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_UInt32, tuple: opcode.TupleFullMem, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vmovdqa32_xmmm128_k1z_xmm: {mnemonic: MnemonicVmovdqa32, encoding: "EVEX.128.66.0F.W0 7F /r", modes: modesAny, operands: "xmmm xmm", access: "w r", memory: MemorySizePacked128_UInt32, tuple: opcode.TupleFullMem, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vmovdqa64_xmm_k1z_xmmm128: {mnemonic: MnemonicVmovdqa64, encoding: "EVEX.128.66.0F.W1 6F /r", modes: modesAny, operands: "xmm xmmm", access: "w r", memory: MemorySizePacked128_UInt64, tuple: opcode.TupleFullMem, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vmovdqa64_xmmm128_k1z_xmm: {mnemonic: MnemonicVmovdqa64, encoding: "EVEX.128.66.0F.W1 7F /r", modes: modesAny, operands: "xmmm xmm", access: "w r", memory: MemorySizePacked128_UInt64, tuple: opcode.TupleFullMem, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpternlogd_ymm_k1z_ymm_ymmm256b32_imm8: {mnemonic: MnemonicVpternlogd, encoding: "EVEX.256.66.0F3A.W0 25 /r ib", modes: modesAny, operands: "ymm vymm ymmm ib", access: "rw r r r", memory: MemorySizePacked256_UInt32, broadcast: MemorySizeBroadcast256_UInt32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpcmpeqd_kr_k1_ymm_ymmm256b32: {mnemonic: MnemonicVpcmpeqd, encoding: "EVEX.256.66.0F.W0 76 /r", modes: modesAny, operands: "kr vymm ymmm", access: "w r r", memory: MemorySizePacked256_UInt32, broadcast: MemorySizeBroadcast256_UInt32, tuple: opcode.TupleFull, flags: flagOpmask | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vcmpps_kr_k1_ymm_ymmm256b32_imm8: {mnemonic: MnemonicVcmpps, encoding: "EVEX.256.0F.W0 C2 /r ib", modes: modesAny, operands: "kr vymm ymmm ib", access: "w r r r", memory: MemorySizePacked256_Float32, broadcast: MemorySizeBroadcast256_Float32, tuple: opcode.TupleFull, flags: flagOpmask | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vmovups_ymm_k1z_ymmm256: {mnemonic: MnemonicVmovups, encoding: "EVEX.256.NP.0F.W0 10 /r", modes: modesAny, operands: "ymm ymmm", access: "w r", memory: MemorySizePacked256_Float32, tuple: opcode.TupleFullMem, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vmovups_ymmm256_k1z_ymm: {mnemonic: MnemonicVmovups, encoding: "EVEX.256.NP.0F.W0 11 /r", modes: modesAny, operands: "ymmm ymm", access: "w r", memory: MemorySizePacked256_Float32, tuple: opcode.TupleFullMem, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vmovaps_ymm_k1z_ymmm256: {mnemonic: MnemonicVmovaps, encoding: "EVEX.256.NP.0F.W0 28 /r", modes: modesAny, operands: "ymm ymmm", access: "w r", memory: MemorySizePacked256_Float32, tuple: opcode.TupleFullMem, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vmovaps_ymmm256_k1z_ymm: {mnemonic: MnemonicVmovaps, encoding: "EVEX.256.NP.0F.W0 29 /r", modes: modesAny, operands: "ymmm ymm", access: "w r", memory: MemorySizePacked256_Float32, tuple: opcode.TupleFullMem, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vmovdqa32_ymm_k1z_ymmm256: {mnemonic: MnemonicVmovdqa32, encoding: "EVEX.256.66.0F.W0 6F /r", modes: modesAny, operands: "ymm ymmm", access: "w r", memory: MemorySizePacked256_UInt32, tuple: opcode.TupleFullMem, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vmovdqa32_ymmm256_k1z_ymm: {mnemonic: MnemonicVmovdqa32, encoding: "EVEX.256.66.0F.W0 7F /r", modes: modesAny, operands: "ymmm ymm", access: "w r", memory: MemorySizePacked256_UInt32, tuple: opcode.TupleFullMem, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vmovdqa64_ymm_k1z_ymmm256: {mnemonic: MnemonicVmovdqa64, encoding: "EVEX.256.66.0F.W1 6F /r", modes: modesAny, operands: "ymm ymmm", access: "w r", memory: MemorySizePacked256_UInt64, tuple: opcode.TupleFullMem, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vmovdqa64_ymmm256_k1z_ymm: {mnemonic: MnemonicVmovdqa64, encoding: "EVEX.256.66.0F.W1 7F /r", modes: modesAny, operands: "ymmm ymm", access: "w r", memory: MemorySizePacked256_UInt64, tuple: opcode.TupleFullMem, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vbroadcastss_ymm_k1z_xmmm32: {mnemonic: MnemonicVbroadcastss, encoding: "EVEX.256.66.0F38.W0 18 /r", modes: modesAny, operands: "ymm xmmm", access: "w r", memory: MemorySizeFloat32, tuple: opcode.Tuple1Scalar, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpternlogd_zmm_k1z_zmm_zmmm512b32_imm8: {mnemonic: MnemonicVpternlogd, encoding: "EVEX.512.66.0F3A.W0 25 /r ib", modes: modesAny, operands: "zmm vzmm zmmm ib", access: "rw r r r", memory: MemorySizePacked512_UInt32, broadcast: MemorySizeBroadcast512_UInt32, tuple: opcode.TupleFull, flags: flagOpmask | flagZeroing | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vpcmpeqd_kr_k1_zmm_zmmm512b32: {mnemonic: MnemonicVpcmpeqd, encoding: "EVEX.512.66.0F.W0 76 /r", modes: modesAny, operands: "kr vzmm zmmm", access: "w r r", memory: MemorySizePacked512_UInt32, broadcast: MemorySizeBroadcast512_UInt32, tuple: opcode.TupleFull, flags: flagOpmask | flagBroadcast, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vcmpps_kr_k1_zmm_zmmm512b32_imm8_sae: {mnemonic: MnemonicVcmpps, encoding: "EVEX.512.0F.W0 C2 /r ib", modes: modesAny, operands: "kr vzmm zmmm ib", access: "w r r r", memory: MemorySizePacked512_Float32, broadcast: MemorySizeBroadcast512_Float32, tuple: opcode.TupleFull, flags: flagOpmask | flagBroadcast | flagSAE, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vmovups_zmm_k1z_zmmm512: {mnemonic: MnemonicVmovups, encoding: "EVEX.512.NP.0F.W0 10 /r", modes: modesAny, operands: "zmm zmmm", access: "w r", memory: MemorySizePacked512_Float32, tuple: opcode.TupleFullMem, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vmovups_zmmm512_k1z_zmm: {mnemonic: MnemonicVmovups, encoding: "EVEX.512.NP.0F.W0 11 /r", modes: modesAny, operands: "zmmm zmm", access: "w r", memory: MemorySizePacked512_Float32, tuple: opcode.TupleFullMem, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vmovaps_zmm_k1z_zmmm512: {mnemonic: MnemonicVmovaps, encoding: "EVEX.512.NP.0F.W0 28 /r", modes: modesAny, operands: "zmm zmmm", access: "w r", memory: MemorySizePacked512_Float32, tuple: opcode.TupleFullMem, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vmovaps_zmmm512_k1z_zmm: {mnemonic: MnemonicVmovaps, encoding: "EVEX.512.NP.0F.W0 29 /r", modes: modesAny, operands: "zmmm zmm", access: "w r", memory: MemorySizePacked512_Float32, tuple: opcode.TupleFullMem, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vmovdqa32_zmm_k1z_zmmm512: {mnemonic: MnemonicVmovdqa32, encoding: "EVEX.512.66.0F.W0 6F /r", modes: modesAny, operands: "zmm zmmm", access: "w r", memory: MemorySizePacked512_UInt32, tuple: opcode.TupleFullMem, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vmovdqa32_zmmm512_k1z_zmm: {mnemonic: MnemonicVmovdqa32, encoding: "EVEX.512.66.0F.W0 7F /r", modes: modesAny, operands: "zmmm zmm", access: "w r", memory: MemorySizePacked512_UInt32, tuple: opcode.TupleFullMem, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vmovdqa64_zmm_k1z_zmmm512: {mnemonic: MnemonicVmovdqa64, encoding: "EVEX.512.66.0F.W1 6F /r", modes: modesAny, operands: "zmm zmmm", access: "w r", memory: MemorySizePacked512_UInt64, tuple: opcode.TupleFullMem, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vmovdqa64_zmmm512_k1z_zmm: {mnemonic: MnemonicVmovdqa64, encoding: "EVEX.512.66.0F.W1 7F /r", modes: modesAny, operands: "zmmm zmm", access: "w r", memory: MemorySizePacked512_UInt64, tuple: opcode.TupleFullMem, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vbroadcastss_zmm_k1z_xmmm32: {mnemonic: MnemonicVbroadcastss, encoding: "EVEX.512.66.0F38.W0 18 /r", modes: modesAny, operands: "zmm xmmm", access: "w r", memory: MemorySizeFloat32, tuple: opcode.Tuple1Scalar, flags: flagOpmask | flagZeroing, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vmovd_xmm_rm32: {mnemonic: MnemonicVmovd, encoding: "EVEX.128.66.0F.W0 6E /r", modes: modesAny, operands: "xmm rm32", access: "w r", memory: MemorySizeUInt32, tuple: opcode.Tuple1Scalar, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vmovq_xmm_rm64: {mnemonic: MnemonicVmovq, encoding: "EVEX.128.66.0F.W1 6E /r", modes: modesLong, operands: "xmm rm64", access: "w r", memory: MemorySizeUInt64, tuple: opcode.Tuple1Scalar, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vmovd_rm32_xmm: {mnemonic: MnemonicVmovd, encoding: "EVEX.128.66.0F.W0 7E /r", modes: modesAny, operands: "rm32 xmm", access: "w r", memory: MemorySizeUInt32, tuple: opcode.Tuple1Scalar, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vmovq_rm64_xmm: {mnemonic: MnemonicVmovq, encoding: "EVEX.128.66.0F.W1 7E /r", modes: modesLong, operands: "rm64 xmm", access: "w r", memory: MemorySizeUInt64, tuple: opcode.Tuple1Scalar, cpuid: []CpuidFeature{CpuidAVX512F}},
	MVEX_Vaddps_zmm_k1_zmm_zmmmt: {mnemonic: MnemonicVaddps, encoding: "MVEX.512.NP.0F.W0 58 /r", modes: modesLong, operands: "zmm vzmm zmmm", access: "w r r", memory: MemorySizePacked512_Float32, conv: convFloat, flags: flagOpmask, cpuid: []CpuidFeature{CpuidKNC}},
	MVEX_Vmulps_zmm_k1_zmm_zmmmt: {mnemonic: MnemonicVmulps, encoding: "MVEX.512.NP.0F.W0 59 /r", modes: modesLong, operands: "zmm vzmm zmmm", access: "w r r", memory: MemorySizePacked512_Float32, conv: convFloat, flags: flagOpmask, cpuid: []CpuidFeature{CpuidKNC}},
	MVEX_Vsubps_zmm_k1_zmm_zmmmt: {mnemonic: MnemonicVsubps, encoding: "MVEX.512.NP.0F.W0 5C /r", modes: modesLong, operands: "zmm vzmm zmmm", access: "w r r", memory: MemorySizePacked512_Float32, conv: convFloat, flags: flagOpmask, cpuid: []CpuidFeature{CpuidKNC}},
	MVEX_Vpaddd_zmm_k1_zmm_zmmmt: {mnemonic: MnemonicVpaddd, encoding: "MVEX.512.66.0F.W0 FE /r", modes: modesLong, operands: "zmm vzmm zmmm", access: "w r r", memory: MemorySizePacked512_Int32, conv: convInt, flags: flagOpmask, cpuid: []CpuidFeature{CpuidKNC}},
	MVEX_Vpandd_zmm_k1_zmm_zmmmt: {mnemonic: MnemonicVpandd, encoding: "MVEX.512.66.0F.W0 DB /r", modes: modesLong, operands: "zmm vzmm zmmm", access: "w r r", memory: MemorySizePacked512_Int32, conv: convInt, flags: flagOpmask, cpuid: []CpuidFeature{CpuidKNC}},
	MVEX_Vmovaps_zmm_k1_zmmmt: {mnemonic: MnemonicVmovaps, encoding: "MVEX.512.0F.W0 28 /r", modes: modesLong, operands: "zmm zmmm", access: "w r", memory: MemorySizePacked512_Float32, conv: convFloat, flags: flagOpmask, cpuid: []CpuidFeature{CpuidKNC}},
	MVEX_Vmovaps_mt_k1_zmm: {mnemonic: MnemonicVmovaps, encoding: "MVEX.512.0F.W0 29 /r", modes: modesLong, operands: "m zmm", access: "w r", memory: MemorySizePacked512_Float32, conv: convStore, flags: flagOpmask, cpuid: []CpuidFeature{CpuidKNC}},
	VEX_Vpgatherdd_xmm_vm32x_xmm: {mnemonic: MnemonicVpgatherdd, encoding: "VEX.128.66.0F38.W0 90 /r /vsib", modes: modesAny, operands: "xmm vm32x vxmm", access: "rcw cr rw", memory: MemorySizeInt32, cpuid: []CpuidFeature{CpuidAVX2}},
	VEX_Vpgatherdd_ymm_vm32y_ymm: {mnemonic: MnemonicVpgatherdd, encoding: "VEX.256.66.0F38.W0 90 /r /vsib", modes: modesAny, operands: "ymm vm32y vymm", access: "rcw cr rw", memory: MemorySizeInt32, cpuid: []CpuidFeature{CpuidAVX2}},
	VEX_Vpgatherdq_xmm_vm32x_xmm: {mnemonic: MnemonicVpgatherdq, encoding: "VEX.128.66.0F38.W1 90 /r /vsib", modes: modesAny, operands: "xmm vm32x vxmm", access: "rcw cr rw", memory: MemorySizeInt64, cpuid: []CpuidFeature{CpuidAVX2}},
	VEX_Vpgatherdq_ymm_vm32x_ymm: {mnemonic: MnemonicVpgatherdq, encoding: "VEX.256.66.0F38.W1 90 /r /vsib", modes: modesAny, operands: "ymm vm32x vymm", access: "rcw cr rw", memory: MemorySizeInt64, cpuid: []CpuidFeature{CpuidAVX2}},
	VEX_Vpgatherqd_xmm_vm64x_xmm: {mnemonic: MnemonicVpgatherqd, encoding: "VEX.128.66.0F38.W0 91 /r /vsib", modes: modesAny, operands: "xmm vm64x vxmm", access: "rcw cr rw", memory: MemorySizeInt32, cpuid: []CpuidFeature{CpuidAVX2}},
	VEX_Vpgatherqd_xmm_vm64y_xmm: {mnemonic: MnemonicVpgatherqd, encoding: "VEX.256.66.0F38.W0 91 /r /vsib", modes: modesAny, operands: "xmm vm64y vxmm", access: "rcw cr rw", memory: MemorySizeInt32, cpuid: []CpuidFeature{CpuidAVX2}},
	VEX_Vpgatherqq_xmm_vm64x_xmm: {mnemonic: MnemonicVpgatherqq, encoding: "VEX.128.66.0F38.W1 91 /r /vsib", modes: modesAny, operands: "xmm vm64x vxmm", access: "rcw cr rw", memory: MemorySizeInt64, cpuid: []CpuidFeature{CpuidAVX2}},
	VEX_Vpgatherqq_ymm_vm64y_ymm: {mnemonic: MnemonicVpgatherqq, encoding: "VEX.256.66.0F38.W1 91 /r /vsib", modes: modesAny, operands: "ymm vm64y vymm", access: "rcw cr rw", memory: MemorySizeInt64, cpuid: []CpuidFeature{CpuidAVX2}},
	VEX_Vgatherdps_xmm_vm32x_xmm: {mnemonic: MnemonicVgatherdps, encoding: "VEX.128.66.0F38.W0 92 /r /vsib", modes: modesAny, operands: "xmm vm32x vxmm", access: "rcw cr rw", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidAVX2}},
	VEX_Vgatherdps_ymm_vm32y_ymm: {mnemonic: MnemonicVgatherdps, encoding: "VEX.256.66.0F38.W0 92 /r /vsib", modes: modesAny, operands: "ymm vm32y vymm", access: "rcw cr rw", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidAVX2}},
	VEX_Vgatherdpd_xmm_vm32x_xmm: {mnemonic: MnemonicVgatherdpd, encoding: "VEX.128.66.0F38.W1 92 /r /vsib", modes: modesAny, operands: "xmm vm32x vxmm", access: "rcw cr rw", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidAVX2}},
	VEX_Vgatherdpd_ymm_vm32x_ymm: {mnemonic: MnemonicVgatherdpd, encoding: "VEX.256.66.0F38.W1 92 /r /vsib", modes: modesAny, operands: "ymm vm32x vymm", access: "rcw cr rw", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidAVX2}},
	VEX_Vgatherqps_xmm_vm64x_xmm: {mnemonic: MnemonicVgatherqps, encoding: "VEX.128.66.0F38.W0 93 /r /vsib", modes: modesAny, operands: "xmm vm64x vxmm", access: "rcw cr rw", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidAVX2}},
	VEX_Vgatherqps_xmm_vm64y_xmm: {mnemonic: MnemonicVgatherqps, encoding: "VEX.256.66.0F38.W0 93 /r /vsib", modes: modesAny, operands: "xmm vm64y vxmm", access: "rcw cr rw", memory: MemorySizeFloat32, cpuid: []CpuidFeature{CpuidAVX2}},
	VEX_Vgatherqpd_xmm_vm64x_xmm: {mnemonic: MnemonicVgatherqpd, encoding: "VEX.128.66.0F38.W1 93 /r /vsib", modes: modesAny, operands: "xmm vm64x vxmm", access: "rcw cr rw", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidAVX2}},
	VEX_Vgatherqpd_ymm_vm64y_ymm: {mnemonic: MnemonicVgatherqpd, encoding: "VEX.256.66.0F38.W1 93 /r /vsib", modes: modesAny, operands: "ymm vm64y vymm", access: "rcw cr rw", memory: MemorySizeFloat64, cpuid: []CpuidFeature{CpuidAVX2}},
	EVEX_Vpgatherdd_xmm_k1_vm32x: {mnemonic: MnemonicVpgatherdd, encoding: "EVEX.128.66.0F38.W0 90 /r /vsib", modes: modesAny, operands: "xmm vm32x", access: "rcw cr", memory: MemorySizeInt32, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpgatherdd_ymm_k1_vm32y: {mnemonic: MnemonicVpgatherdd, encoding: "EVEX.256.66.0F38.W0 90 /r /vsib", modes: modesAny, operands: "ymm vm32y", access: "rcw cr", memory: MemorySizeInt32, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpgatherdd_zmm_k1_vm32z: {mnemonic: MnemonicVpgatherdd, encoding: "EVEX.512.66.0F38.W0 90 /r /vsib", modes: modesAny, operands: "zmm vm32z", access: "rcw cr", memory: MemorySizeInt32, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vpgatherdq_xmm_k1_vm32x: {mnemonic: MnemonicVpgatherdq, encoding: "EVEX.128.66.0F38.W1 90 /r /vsib", modes: modesAny, operands: "xmm vm32x", access: "rcw cr", memory: MemorySizeInt64, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpgatherdq_ymm_k1_vm32x: {mnemonic: MnemonicVpgatherdq, encoding: "EVEX.256.66.0F38.W1 90 /r /vsib", modes: modesAny, operands: "ymm vm32x", access: "rcw cr", memory: MemorySizeInt64, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpgatherdq_zmm_k1_vm32y: {mnemonic: MnemonicVpgatherdq, encoding: "EVEX.512.66.0F38.W1 90 /r /vsib", modes: modesAny, operands: "zmm vm32y", access: "rcw cr", memory: MemorySizeInt64, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vpgatherqd_xmm_k1_vm64x: {mnemonic: MnemonicVpgatherqd, encoding: "EVEX.128.66.0F38.W0 91 /r /vsib", modes: modesAny, operands: "xmm vm64x", access: "rcw cr", memory: MemorySizeInt32, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpgatherqd_xmm_k1_vm64y: {mnemonic: MnemonicVpgatherqd, encoding: "EVEX.256.66.0F38.W0 91 /r /vsib", modes: modesAny, operands: "xmm vm64y", access: "rcw cr", memory: MemorySizeInt32, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpgatherqd_ymm_k1_vm64z: {mnemonic: MnemonicVpgatherqd, encoding: "EVEX.512.66.0F38.W0 91 /r /vsib", modes: modesAny, operands: "ymm vm64z", access: "rcw cr", memory: MemorySizeInt32, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vpgatherqq_xmm_k1_vm64x: {mnemonic: MnemonicVpgatherqq, encoding: "EVEX.128.66.0F38.W1 91 /r /vsib", modes: modesAny, operands: "xmm vm64x", access: "rcw cr", memory: MemorySizeInt64, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpgatherqq_ymm_k1_vm64y: {mnemonic: MnemonicVpgatherqq, encoding: "EVEX.256.66.0F38.W1 91 /r /vsib", modes: modesAny, operands: "ymm vm64y", access: "rcw cr", memory: MemorySizeInt64, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpgatherqq_zmm_k1_vm64z: {mnemonic: MnemonicVpgatherqq, encoding: "EVEX.512.66.0F38.W1 91 /r /vsib", modes: modesAny, operands: "zmm vm64z", access: "rcw cr", memory: MemorySizeInt64, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vgatherdps_xmm_k1_vm32x: {mnemonic: MnemonicVgatherdps, encoding: "EVEX.128.66.0F38.W0 92 /r /vsib", modes: modesAny, operands: "xmm vm32x", access: "rcw cr", memory: MemorySizeFloat32, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vgatherdps_ymm_k1_vm32y: {mnemonic: MnemonicVgatherdps, encoding: "EVEX.256.66.0F38.W0 92 /r /vsib", modes: modesAny, operands: "ymm vm32y", access: "rcw cr", memory: MemorySizeFloat32, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vgatherdps_zmm_k1_vm32z: {mnemonic: MnemonicVgatherdps, encoding: "EVEX.512.66.0F38.W0 92 /r /vsib", modes: modesAny, operands: "zmm vm32z", access: "rcw cr", memory: MemorySizeFloat32, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vgatherdpd_xmm_k1_vm32x: {mnemonic: MnemonicVgatherdpd, encoding: "EVEX.128.66.0F38.W1 92 /r /vsib", modes: modesAny, operands: "xmm vm32x", access: "rcw cr", memory: MemorySizeFloat64, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vgatherdpd_ymm_k1_vm32x: {mnemonic: MnemonicVgatherdpd, encoding: "EVEX.256.66.0F38.W1 92 /r /vsib", modes: modesAny, operands: "ymm vm32x", access: "rcw cr", memory: MemorySizeFloat64, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vgatherdpd_zmm_k1_vm32y: {mnemonic: MnemonicVgatherdpd, encoding: "EVEX.512.66.0F38.W1 92 /r /vsib", modes: modesAny, operands: "zmm vm32y", access: "rcw cr", memory: MemorySizeFloat64, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vgatherqps_xmm_k1_vm64x: {mnemonic: MnemonicVgatherqps, encoding: "EVEX.128.66.0F38.W0 93 /r /vsib", modes: modesAny, operands: "xmm vm64x", access: "rcw cr", memory: MemorySizeFloat32, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vgatherqps_xmm_k1_vm64y: {mnemonic: MnemonicVgatherqps, encoding: "EVEX.256.66.0F38.W0 93 /r /vsib", modes: modesAny, operands: "xmm vm64y", access: "rcw cr", memory: MemorySizeFloat32, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vgatherqps_ymm_k1_vm64z: {mnemonic: MnemonicVgatherqps, encoding: "EVEX.512.66.0F38.W0 93 /r /vsib", modes: modesAny, operands: "ymm vm64z", access: "rcw cr", memory: MemorySizeFloat32, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vgatherqpd_xmm_k1_vm64x: {mnemonic: MnemonicVgatherqpd, encoding: "EVEX.128.66.0F38.W1 93 /r /vsib", modes: modesAny, operands: "xmm vm64x", access: "rcw cr", memory: MemorySizeFloat64, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vgatherqpd_ymm_k1_vm64y: {mnemonic: MnemonicVgatherqpd, encoding: "EVEX.256.66.0F38.W1 93 /r /vsib", modes: modesAny, operands: "ymm vm64y", access: "rcw cr", memory: MemorySizeFloat64, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vgatherqpd_zmm_k1_vm64z: {mnemonic: MnemonicVgatherqpd, encoding: "EVEX.512.66.0F38.W1 93 /r /vsib", modes: modesAny, operands: "zmm vm64z", access: "rcw cr", memory: MemorySizeFloat64, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vpscatterdd_vm32x_k1_xmm: {mnemonic: MnemonicVpscatterdd, encoding: "EVEX.128.66.0F38.W0 A0 /r /vsib", modes: modesAny, operands: "vm32x xmm", access: "cw r", memory: MemorySizeInt32, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpscatterdd_vm32y_k1_ymm: {mnemonic: MnemonicVpscatterdd, encoding: "EVEX.256.66.0F38.W0 A0 /r /vsib", modes: modesAny, operands: "vm32y ymm", access: "cw r", memory: MemorySizeInt32, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpscatterdd_vm32z_k1_zmm: {mnemonic: MnemonicVpscatterdd, encoding: "EVEX.512.66.0F38.W0 A0 /r /vsib", modes: modesAny, operands: "vm32z zmm", access: "cw r", memory: MemorySizeInt32, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vpscatterdq_vm32x_k1_xmm: {mnemonic: MnemonicVpscatterdq, encoding: "EVEX.128.66.0F38.W1 A0 /r /vsib", modes: modesAny, operands: "vm32x xmm", access: "cw r", memory: MemorySizeInt64, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpscatterdq_vm32x_k1_ymm: {mnemonic: MnemonicVpscatterdq, encoding: "EVEX.256.66.0F38.W1 A0 /r /vsib", modes: modesAny, operands: "vm32x ymm", access: "cw r", memory: MemorySizeInt64, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpscatterdq_vm32y_k1_zmm: {mnemonic: MnemonicVpscatterdq, encoding: "EVEX.512.66.0F38.W1 A0 /r /vsib", modes: modesAny, operands: "vm32y zmm", access: "cw r", memory: MemorySizeInt64, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vpscatterqd_vm64x_k1_xmm: {mnemonic: MnemonicVpscatterqd, encoding: "EVEX.128.66.0F38.W0 A1 /r /vsib", modes: modesAny, operands: "vm64x xmm", access: "cw r", memory: MemorySizeInt32, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpscatterqd_vm64y_k1_xmm: {mnemonic: MnemonicVpscatterqd, encoding: "EVEX.256.66.0F38.W0 A1 /r /vsib", modes: modesAny, operands: "vm64y xmm", access: "cw r", memory: MemorySizeInt32, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpscatterqd_vm64z_k1_ymm: {mnemonic: MnemonicVpscatterqd, encoding: "EVEX.512.66.0F38.W0 A1 /r /vsib", modes: modesAny, operands: "vm64z ymm", access: "cw r", memory: MemorySizeInt32, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vpscatterqq_vm64x_k1_xmm: {mnemonic: MnemonicVpscatterqq, encoding: "EVEX.128.66.0F38.W1 A1 /r /vsib", modes: modesAny, operands: "vm64x xmm", access: "cw r", memory: MemorySizeInt64, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpscatterqq_vm64y_k1_ymm: {mnemonic: MnemonicVpscatterqq, encoding: "EVEX.256.66.0F38.W1 A1 /r /vsib", modes: modesAny, operands: "vm64y ymm", access: "cw r", memory: MemorySizeInt64, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vpscatterqq_vm64z_k1_zmm: {mnemonic: MnemonicVpscatterqq, encoding: "EVEX.512.66.0F38.W1 A1 /r /vsib", modes: modesAny, operands: "vm64z zmm", access: "cw r", memory: MemorySizeInt64, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vscatterdps_vm32x_k1_xmm: {mnemonic: MnemonicVscatterdps, encoding: "EVEX.128.66.0F38.W0 A2 /r /vsib", modes: modesAny, operands: "vm32x xmm", access: "cw r", memory: MemorySizeFloat32, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vscatterdps_vm32y_k1_ymm: {mnemonic: MnemonicVscatterdps, encoding: "EVEX.256.66.0F38.W0 A2 /r /vsib", modes: modesAny, operands: "vm32y ymm", access: "cw r", memory: MemorySizeFloat32, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vscatterdps_vm32z_k1_zmm: {mnemonic: MnemonicVscatterdps, encoding: "EVEX.512.66.0F38.W0 A2 /r /vsib", modes: modesAny, operands: "vm32z zmm", access: "cw r", memory: MemorySizeFloat32, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vscatterdpd_vm32x_k1_xmm: {mnemonic: MnemonicVscatterdpd, encoding: "EVEX.128.66.0F38.W1 A2 /r /vsib", modes: modesAny, operands: "vm32x xmm", access: "cw r", memory: MemorySizeFloat64, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vscatterdpd_vm32x_k1_ymm: {mnemonic: MnemonicVscatterdpd, encoding: "EVEX.256.66.0F38.W1 A2 /r /vsib", modes: modesAny, operands: "vm32x ymm", access: "cw r", memory: MemorySizeFloat64, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vscatterdpd_vm32y_k1_zmm: {mnemonic: MnemonicVscatterdpd, encoding: "EVEX.512.66.0F38.W1 A2 /r /vsib", modes: modesAny, operands: "vm32y zmm", access: "cw r", memory: MemorySizeFloat64, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vscatterqps_vm64x_k1_xmm: {mnemonic: MnemonicVscatterqps, encoding: "EVEX.128.66.0F38.W0 A3 /r /vsib", modes: modesAny, operands: "vm64x xmm", access: "cw r", memory: MemorySizeFloat32, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vscatterqps_vm64y_k1_xmm: {mnemonic: MnemonicVscatterqps, encoding: "EVEX.256.66.0F38.W0 A3 /r /vsib", modes: modesAny, operands: "vm64y xmm", access: "cw r", memory: MemorySizeFloat32, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vscatterqps_vm64z_k1_ymm: {mnemonic: MnemonicVscatterqps, encoding: "EVEX.512.66.0F38.W0 A3 /r /vsib", modes: modesAny, operands: "vm64z ymm", access: "cw r", memory: MemorySizeFloat32, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F}},
	EVEX_Vscatterqpd_vm64x_k1_xmm: {mnemonic: MnemonicVscatterqpd, encoding: "EVEX.128.66.0F38.W1 A3 /r /vsib", modes: modesAny, operands: "vm64x xmm", access: "cw r", memory: MemorySizeFloat64, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vscatterqpd_vm64y_k1_ymm: {mnemonic: MnemonicVscatterqpd, encoding: "EVEX.256.66.0F38.W1 A3 /r /vsib", modes: modesAny, operands: "vm64y ymm", access: "cw r", memory: MemorySizeFloat64, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F, CpuidAVX512VL}},
	EVEX_Vscatterqpd_vm64z_k1_zmm: {mnemonic: MnemonicVscatterqpd, encoding: "EVEX.512.66.0F38.W1 A3 /r /vsib", modes: modesAny, operands: "vm64z zmm", access: "cw r", memory: MemorySizeFloat64, tuple: opcode.Tuple1Scalar, flags: flagOpmask, cpuid: []CpuidFeature{CpuidAVX512F}},
}
