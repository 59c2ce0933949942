// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
)

// registerKind is a register's class.
type registerKind uint8

const (
	regNone registerKind = iota
	regGPR8
	regGPR16
	regGPR32
	regGPR64
	regIP
	regSegment
	regXMM
	regYMM
	regZMM
	regK
	regBND
	regCR
	regDR
	regST
	regMM
	regTR
	regTMM
)

// registerInfo describes a register.
//
// The family groups registers that alias the
// same storage (AL, AH, AX, EAX and RAX share
// family 0), and rank orders the members of a
// family by width.
type registerInfo struct {
	kind   registerKind
	number uint8  // The number used in encodings.
	size   uint16 // In bytes.
	family uint8
	rank   uint8
}

func (r Register) info() *registerInfo {
	if r >= NumberOfRegisters {
		panic(fmt.Sprintf("x86: invalid register %d", r))
	}

	return &registers[r]
}

// Number returns the register's number within
// its class, as used in encodings. AH-BH are
// numbered 4-7, like SPL-DIL.
func (r Register) Number() int {
	return int(r.info().number)
}

// Size returns the register's size in bytes.
func (r Register) Size() int {
	return int(r.info().size)
}

// IsGPR8 returns whether r is an 8-bit general
// purpose register.
func (r Register) IsGPR8() bool { return r.info().kind == regGPR8 }

// IsGPR16 returns whether r is a 16-bit general
// purpose register.
func (r Register) IsGPR16() bool { return r.info().kind == regGPR16 }

// IsGPR32 returns whether r is a 32-bit general
// purpose register.
func (r Register) IsGPR32() bool { return r.info().kind == regGPR32 }

// IsGPR64 returns whether r is a 64-bit general
// purpose register.
func (r Register) IsGPR64() bool { return r.info().kind == regGPR64 }

// IsGPR returns whether r is a general purpose
// register of any size.
func (r Register) IsGPR() bool {
	k := r.info().kind
	return regGPR8 <= k && k <= regGPR64
}

func (r Register) IsXMM() bool { return r.info().kind == regXMM }
func (r Register) IsYMM() bool { return r.info().kind == regYMM }
func (r Register) IsZMM() bool { return r.info().kind == regZMM }
func (r Register) IsK() bool   { return r.info().kind == regK }
func (r Register) IsST() bool  { return r.info().kind == regST }
func (r Register) IsMM() bool  { return r.info().kind == regMM }
func (r Register) IsCR() bool  { return r.info().kind == regCR }
func (r Register) IsDR() bool  { return r.info().kind == regDR }
func (r Register) IsTR() bool  { return r.info().kind == regTR }
func (r Register) IsBND() bool { return r.info().kind == regBND }
func (r Register) IsIP() bool  { return r.info().kind == regIP }

// IsSegmentRegister returns whether r is one of
// ES, CS, SS, DS, FS and GS.
func (r Register) IsSegmentRegister() bool { return r.info().kind == regSegment }

// IsVectorRegister returns whether r is an XMM,
// YMM or ZMM register.
func (r Register) IsVectorRegister() bool {
	k := r.info().kind
	return regXMM <= k && k <= regZMM
}

// needsREX returns whether r can only be
// encoded with a REX prefix.
func (r Register) needsREX() bool {
	switch {
	case SPL <= r && r <= R15L:
		return true
	case r.IsGPR():
		return r.Number() >= 8
	}

	return false
}

// isHighByte returns whether r is one of
// AH, CH, DH and BH.
func (r Register) isHighByte() bool {
	return AH <= r && r <= BH
}

// FullRegister returns the widest register that
// contains r. For general purpose registers this
// is the 64-bit register, and for vector registers
// it is the ZMM register.
func (r Register) FullRegister() Register {
	info := r.info()
	switch info.kind {
	case regGPR8:
		if r.isHighByte() {
			return RAX + (r - AH)
		}

		return RAX + Register(info.number)
	case regGPR16, regGPR32, regGPR64:
		return RAX + Register(info.number)
	case regIP:
		return RIP
	case regXMM, regYMM, regZMM:
		return ZMM0 + Register(info.number)
	}

	return r
}

// FullRegister32 is like FullRegister, but
// returns the 32-bit register for general
// purpose registers.
func (r Register) FullRegister32() Register {
	full := r.FullRegister()
	switch {
	case full.IsGPR64():
		return EAX + (full - RAX)
	case full == RIP:
		return EIP
	}

	return full
}

// gpr returns the general purpose register of
// the given size in bytes with the given number.
// For 8-bit registers numbers 4-7 select AH-BH
// unless rex is set.
func gpr(size int, number int, rex bool) Register {
	switch size {
	case 1:
		if number < 4 || (number < 8 && !rex) {
			return AL + Register(number)
		}

		return AL + Register(number) + 4
	case 2:
		return AX + Register(number)
	case 4:
		return EAX + Register(number)
	case 8:
		return RAX + Register(number)
	}

	panic(fmt.Sprintf("x86: invalid register size %d", size))
}

// resize returns the general purpose register
// in r's family with the given size in bytes.
func (r Register) resize(size int) Register {
	return gpr(size, int(r.FullRegister()-RAX), true)
}

// stackPointer returns the stack pointer
// register for the given code size.
func stackPointer(bitness int) Register {
	switch bitness {
	case 16:
		return SP
	case 32:
		return ESP
	}

	return RSP
}

// segmentPrefixes maps segment registers to
// their override prefix bytes.
var segmentPrefixes = map[Register]byte{
	ES: 0x26,
	CS: 0x2e,
	SS: 0x36,
	DS: 0x3e,
	FS: 0x64,
	GS: 0x65,
}

// registerClasses gives the first register and
// the number of registers in each class.
var registerClasses = [...]struct {
	first Register
	count int
}{
	regGPR16:   {AX, 16},
	regGPR32:   {EAX, 16},
	regGPR64:   {RAX, 16},
	regSegment: {ES, 6},
	regXMM:     {XMM0, 32},
	regYMM:     {YMM0, 32},
	regZMM:     {ZMM0, 32},
	regK:       {K0, 8},
	regBND:     {BND0, 4},
	regCR:      {CR0, 16},
	regDR:      {DR0, 16},
	regST:      {ST0, 8},
	regMM:      {MM0, 8},
	regTR:      {TR0, 8},
	regTMM:     {TMM0, 8},
}

// registerOf returns register number n in the
// given class, or false if there is no such
// register.
func registerOf(class registerKind, n int, rex bool) (Register, bool) {
	if class == regGPR8 {
		if n < 0 || n >= 16 {
			return RegisterNone, false
		}

		return gpr(1, n, rex), true
	}

	if int(class) >= len(registerClasses) || registerClasses[class].first == RegisterNone {
		return RegisterNone, false
	}

	c := registerClasses[class]
	if n < 0 || n >= c.count {
		return RegisterNone, false
	}

	return c.first + Register(n), true
}
