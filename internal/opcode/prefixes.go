// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package opcode

import (
	"fmt"
)

// b2i is a helper function to convert
// a boolean to an integer. The result
// is one if `b` is true and 0 otherwise.
func b2i(b bool) byte {
	if b {
		return 1
	}

	return 0
}

// VEX provides helper functionality
// for reading and writing a VEX
// prefix.
//
// We always store VEX prefixes in
// the 3-byte form but can export
// to the 2-byte form. XOP prefixes
// share the 3-byte layout.
type VEX [2]byte

// Intel x86 manuals, Volume 2A,
// Section 2.3.5, Table 2-9.
//
// 3-byte form:
//
// 	| 7  6  5  4   3  2  1  0 |
// 	+-------------------------|
// 	| 1  1  0  0   0  1  0  0 | // 0xc4 prefix (0x8f for XOP).
// 	| R  X  B  m   m  m  m  m | // P0.
// 	| W  v  v  v   v  L  p  p | // P1.
//
// 2-byte form:
//
// 	| 7  6  5  4   3  2  1  0 |
// 	+-------------------------|
// 	| 1  1  0  0   0  1  0  1 | // 0xc5 prefix.
// 	| R  v  v  v   v  L  p  p | // P0.

// P0.
func (v VEX) R() bool      { return ((v[0] >> 7) & 1) == 1 }
func (v VEX) X() bool      { return ((v[0] >> 6) & 1) == 1 }
func (v VEX) B() bool      { return ((v[0] >> 5) & 1) == 1 }
func (v VEX) M_MMMM() byte { return v[0] & 0b1_1111 }

// P1.
func (v VEX) W() bool    { return ((v[1] >> 7) & 1) == 1 }
func (v VEX) VVVV() byte { return (v[1] >> 3) & 0b1111 }
func (v VEX) L() bool    { return ((v[1] >> 2) & 1) == 1 }
func (v VEX) PP() byte   { return v[1] & 0b11 }

// P0.
func (v *VEX) SetR(b bool)      { v[0] = v[0]&0b0111_1111 | (b2i(b) << 7) }
func (v *VEX) SetX(b bool)      { v[0] = v[0]&0b1011_1111 | (b2i(b) << 6) }
func (v *VEX) SetB(b bool)      { v[0] = v[0]&0b1101_1111 | (b2i(b) << 5) }
func (v *VEX) SetM_MMMM(b byte) { v[0] = v[0]&0b1110_0000 | (b & 0b1_1111) }

// P1.
func (v *VEX) SetW(b bool)    { v[1] = v[1]&0b0111_1111 | (b2i(b) << 7) }
func (v *VEX) SetVVVV(b byte) { v[1] = v[1]&0b1000_0111 | ((b & 0b1111) << 3) }
func (v *VEX) SetL(b bool)    { v[1] = v[1]&0b1111_1011 | (b2i(b) << 2) }
func (v *VEX) SetPP(b byte)   { v[1] = v[1]&0b1111_1100 | (b & 0b11) }

func (v VEX) On() bool {
	return v.M_MMMM() != 0 // This is a reserved value so it shouldn't occur legitimately.
}

func (v *VEX) Reset() {
	v[0] = 0
	v[1] = 0
}

// Default resets the VEX prefix to its
// default state, which includes vvvv
// being set to 0b1111.
//
// If no m_mmmm field is set, the prefix
// will not count as active, according to
// VEX.On.
func (v *VEX) Default() {
	// These fields are inverted, so they
	// default to set.
	v.SetR(true)
	v.SetX(true)
	v.SetB(true)
	v.SetVVVV(0b1111)
}

func (v VEX) Can2Byte() bool {
	return v.X() && v.B() && !v.W() && v.M_MMMM() == 0b0_0001
}

func (v VEX) Encode2Byte() (b1, b2 byte) {
	// We're working on a copy, so we
	// can make changes safely. This
	// simplifies the encoding process.
	v.SetW(v.R())
	return VEX2Escape, v[1]
}

func (v VEX) Encode3Byte() (b1, b2, b3 byte) {
	return VEX3Escape, v[0], v[1]
}

// DecodeVEX2 expands the payload of a
// 2-byte VEX prefix into the 3-byte form.
func DecodeVEX2(p0 byte) VEX {
	var v VEX
	v.Default()
	v.SetR((p0>>7)&1 == 1)
	v.SetM_MMMM(0b0_0001)
	v[1] = p0 & 0b0111_1111

	return v
}

// DecodeVEX3 returns the 3-byte VEX or
// XOP prefix with the given payload.
func DecodeVEX3(p0, p1 byte) VEX {
	return VEX{p0, p1}
}

func (v VEX) String() string {
	return fmt.Sprintf("{R: %b, X: %b, B: %b, m-mmmm: %05b, W: %b, vvvv: %04b, L: %b, pp: %02b}",
		b2i(v.R()), b2i(v.X()), b2i(v.B()), v.M_MMMM(),
		b2i(v.W()), v.VVVV(), b2i(v.L()), v.PP())
}

// EVEX provides helper functionality
// for reading and writing an EVEX
// prefix.
type EVEX [3]byte

// Intel x86 manuals, Volume 2A,
// Section 2.6.1, Table 2-11.
//
// 	| 7  6  5  4   3  2  1  0 |
// 	+-------------------------|
// 	| 0  1  1  0   0  0  1  0 | // 0x62 prefix.
// 	| R  X  B  R'  0  m  m  m | // P0.
// 	| W  v  v  v   v  1  p  p | // P1.
// 	| z  L' L  b   V' a  a  a | // P2.

// P0.
func (p EVEX) R() bool   { return ((p[0] >> 7) & 1) == 1 }
func (p EVEX) X() bool   { return ((p[0] >> 6) & 1) == 1 }
func (p EVEX) B() bool   { return ((p[0] >> 5) & 1) == 1 }
func (p EVEX) Rp() bool  { return ((p[0] >> 4) & 1) == 1 }
func (p EVEX) MMM() byte { return p[0] & 0b111 }

// Reserved returns the P0 bit that
// must be zero.
func (p EVEX) Reserved() bool { return ((p[0] >> 3) & 1) == 1 }

// P1.
func (p EVEX) W() bool    { return ((p[1] >> 7) & 1) == 1 }
func (p EVEX) VVVV() byte { return (p[1] >> 3) & 0b1111 }
func (p EVEX) PP() byte   { return p[1] & 0b11 }

// P2.
func (p EVEX) Z() bool   { return ((p[2] >> 7) & 1) == 1 }
func (p EVEX) Lp() bool  { return ((p[2] >> 6) & 1) == 1 }
func (p EVEX) L() bool   { return ((p[2] >> 5) & 1) == 1 }
func (p EVEX) Br() bool  { return ((p[2] >> 4) & 1) == 1 }
func (p EVEX) Vp() bool  { return ((p[2] >> 3) & 1) == 1 }
func (p EVEX) AAA() byte { return p[2] & 0b111 }

// LL returns the combined L'L field.
func (p EVEX) LL() byte { return (p[2] >> 5) & 0b11 }

// P0.
func (p *EVEX) SetR(b bool)   { p[0] = p[0]&0b0111_1111 | (b2i(b) << 7) }
func (p *EVEX) SetX(b bool)   { p[0] = p[0]&0b1011_1111 | (b2i(b) << 6) }
func (p *EVEX) SetB(b bool)   { p[0] = p[0]&0b1101_1111 | (b2i(b) << 5) }
func (p *EVEX) SetRp(b bool)  { p[0] = p[0]&0b1110_1111 | (b2i(b) << 4) }
func (p *EVEX) SetMMM(b byte) { p[0] = p[0]&0b1111_1000 | (b & 0b111) }

// P1.
func (p *EVEX) SetW(b bool)    { p[1] = p[1]&0b0111_1111 | (b2i(b) << 7) }
func (p *EVEX) SetVVVV(b byte) { p[1] = p[1]&0b1000_0111 | ((b & 0b1111) << 3) }
func (p *EVEX) SetPP(b byte)   { p[1] = p[1]&0b1111_1100 | (b & 0b11) }

// P2.
func (p *EVEX) SetZ(b bool)   { p[2] = p[2]&0b0111_1111 | (b2i(b) << 7) }
func (p *EVEX) SetLp(b bool)  { p[2] = p[2]&0b1011_1111 | (b2i(b) << 6) }
func (p *EVEX) SetL(b bool)   { p[2] = p[2]&0b1101_1111 | (b2i(b) << 5) }
func (p *EVEX) SetLL(b byte)  { p[2] = p[2]&0b1001_1111 | ((b & 0b11) << 5) }
func (p *EVEX) SetBr(b bool)  { p[2] = p[2]&0b1110_1111 | (b2i(b) << 4) }
func (p *EVEX) SetVp(b bool)  { p[2] = p[2]&0b1111_0111 | (b2i(b) << 3) }
func (p *EVEX) SetAAA(b byte) { p[2] = p[2]&0b1111_1000 | (b & 0b111) }

func (p EVEX) On() bool      { return ((p[1] >> 2) & 1) == 1 }
func (p *EVEX) SetOn(b bool) { p[1] = p[1]&0b1111_1011 | (b2i(b) << 2) }

func (p *EVEX) Reset() {
	p[0] = 0
	p[1] = 0
	p[2] = 0
}

// Default resets the EVEX prefix to its
// default state, which includes vvvv
// being set to 0b1111.
//
// The prefix does not count as active
// until SetOn is called.
func (p *EVEX) Default() {
	// These fields are inverted, so they
	// default to set.
	p.SetR(true)
	p.SetX(true)
	p.SetB(true)
	p.SetRp(true)
	p.SetVVVV(0b1111)
	p.SetVp(true)
}

func (p EVEX) Encode() (prefix, p0, p1, p2 byte) {
	return EVEXEscape, p[0], p[1], p[2]
}

func (p EVEX) String() string {
	return fmt.Sprintf("{R: %b, X: %b, B: %b, R': %b, mm: %02b // W: %b, vvvv: %04b, pp: %02b // z: %b, L': %b, L: %b, b: %b, V': %b, aaa: %03b}",
		b2i(p.R()), b2i(p.X()), b2i(p.B()), b2i(p.Rp()), p.MMM(),
		b2i(p.W()), p.VVVV(), p.PP(),
		b2i(p.Z()), b2i(p.Lp()), b2i(p.L()), b2i(p.Br()), b2i(p.Vp()), p.AAA())
}

// MVEX provides helper functionality
// for reading and writing the MVEX
// prefix used by Knights Corner.
type MVEX [3]byte

// Knights Corner Instruction Set
// Reference Manual, Section 2.1.
//
// 	| 7  6  5  4   3  2  1  0 |
// 	+-------------------------|
// 	| 0  1  1  0   0  0  1  0 | // 0x62 prefix.
// 	| R  X  B  R'  m  m  m  m | // P0.
// 	| W  v  v  v   v  0  p  p | // P1.
// 	| E  S  S  S   V' k  k  k | // P2.

// P0.
func (p MVEX) R() bool    { return ((p[0] >> 7) & 1) == 1 }
func (p MVEX) X() bool    { return ((p[0] >> 6) & 1) == 1 }
func (p MVEX) B() bool    { return ((p[0] >> 5) & 1) == 1 }
func (p MVEX) Rp() bool   { return ((p[0] >> 4) & 1) == 1 }
func (p MVEX) MMMM() byte { return p[0] & 0b1111 }

// P1.
func (p MVEX) W() bool    { return ((p[1] >> 7) & 1) == 1 }
func (p MVEX) VVVV() byte { return (p[1] >> 3) & 0b1111 }
func (p MVEX) PP() byte   { return p[1] & 0b11 }

// P2.
func (p MVEX) E() bool   { return ((p[2] >> 7) & 1) == 1 }
func (p MVEX) SSS() byte { return (p[2] >> 4) & 0b111 }
func (p MVEX) Vp() bool  { return ((p[2] >> 3) & 1) == 1 }
func (p MVEX) KKK() byte { return p[2] & 0b111 }

func (p MVEX) On() bool { return p.MMMM() != 0 }
func (p *MVEX) Reset()  { *p = MVEX{} }

// P0.
func (p *MVEX) SetR(b bool)    { p[0] = p[0]&0b0111_1111 | (b2i(b) << 7) }
func (p *MVEX) SetX(b bool)    { p[0] = p[0]&0b1011_1111 | (b2i(b) << 6) }
func (p *MVEX) SetB(b bool)    { p[0] = p[0]&0b1101_1111 | (b2i(b) << 5) }
func (p *MVEX) SetRp(b bool)   { p[0] = p[0]&0b1110_1111 | (b2i(b) << 4) }
func (p *MVEX) SetMMMM(b byte) { p[0] = p[0]&0b1111_0000 | (b & 0b1111) }

// P1.
func (p *MVEX) SetW(b bool)    { p[1] = p[1]&0b0111_1111 | (b2i(b) << 7) }
func (p *MVEX) SetVVVV(b byte) { p[1] = p[1]&0b1000_0111 | ((b & 0b1111) << 3) }
func (p *MVEX) SetPP(b byte)   { p[1] = p[1]&0b1111_1100 | (b & 0b11) }

// P2.
func (p *MVEX) SetE(b bool)   { p[2] = p[2]&0b0111_1111 | (b2i(b) << 7) }
func (p *MVEX) SetSSS(b byte) { p[2] = p[2]&0b1000_1111 | ((b & 0b111) << 4) }
func (p *MVEX) SetVp(b bool)  { p[2] = p[2]&0b1111_0111 | (b2i(b) << 3) }
func (p *MVEX) SetKKK(b byte) { p[2] = p[2]&0b1111_1000 | (b & 0b111) }

// Default resets the MVEX prefix to its
// default state, with the inverted fields
// set. The prefix does not count as active
// until a map is selected.
func (p *MVEX) Default() {
	p.SetR(true)
	p.SetX(true)
	p.SetB(true)
	p.SetRp(true)
	p.SetVVVV(0b1111)
	p.SetVp(true)
}

func (p MVEX) Encode() (prefix, p0, p1, p2 byte) {
	return MVEXEscape, p[0], p[1], p[2]
}

func (p MVEX) String() string {
	return fmt.Sprintf("{R: %b, X: %b, B: %b, R': %b, mmmm: %04b // W: %b, vvvv: %04b, pp: %02b // E: %b, SSS: %03b, V': %b, kkk: %03b}",
		b2i(p.R()), b2i(p.X()), b2i(p.B()), b2i(p.Rp()), p.MMMM(),
		b2i(p.W()), p.VVVV(), p.PP(),
		b2i(p.E()), p.SSS(), b2i(p.Vp()), p.KKK())
}

// REX provides helper functionality
// for reading and writing a REX
// prefix byte.
type REX byte

// Intel x86 manuals, Volume 2A,
// Section 2.2.1.2, Table 2-4.
//
// 	| 7  6  5  4   3  2  1  0 |
// 	+-------------------------|
// 	| 0  1  0  0   W  R  X  B |

func (r REX) On() bool       { return ((r >> 6) & 1) == 1 }
func (r REX) W() bool        { return ((r >> 3) & 1) == 1 }
func (r REX) R() bool        { return ((r >> 2) & 1) == 1 }
func (r REX) X() bool        { return ((r >> 1) & 1) == 1 }
func (r REX) B() bool        { return ((r >> 0) & 1) == 1 }
func (r *REX) SetOn()        { *r |= (1 << 6) }
func (r *REX) SetREX(b bool) { *r |= REX(b2i(b) << 6) }
func (r *REX) SetW(b bool)   { *r = (*r & 0b11110111) | REX(b2i(b)<<3) }
func (r *REX) SetR(b bool)   { *r = (*r & 0b11111011) | REX(b2i(b)<<2) }
func (r *REX) SetX(b bool)   { *r = (*r & 0b11111101) | REX(b2i(b)<<1) }
func (r *REX) SetB(b bool)   { *r = (*r & 0b11111110) | REX(b2i(b)<<0) }

func (r REX) String() string {
	out := make([]byte, 8)
	at := func(i int, zero, one byte) byte {
		if ((r >> (7 - i)) & 1) == 1 {
			return one
		}

		return zero
	}

	out[0] = at(0, '0', '1')
	out[1] = at(1, '0', '1')
	out[2] = at(2, '0', '1')
	out[3] = at(3, '0', '1')
	out[4] = at(4, '0', 'W')
	out[5] = at(5, '0', 'R')
	out[6] = at(6, '0', 'X')
	out[7] = at(7, '0', 'B')

	return string(out)
}

// ModRM provides helper functionality
// for reading and writing a ModR/M
// byte.
type ModRM byte

const (
	// Section 2.1.5, table 2.2, Mod column.
	ModDereferenceRegister    = 0b00
	ModSmallDisplacedRegister = 0b01
	ModLargeDisplacedRegister = 0b10
	ModRegister               = 0b11

	// Section 2.1.5, table 2.2, Effective address column.
	RMSIB                = 0b100
	RMDisplacementOnly32 = 0b101
	RMDisplacementOnly16 = 0b110
)

func (m ModRM) Mod() byte      { return byte(m&0b11000000) >> 6 }
func (m ModRM) Reg() byte      { return byte(m&0b00111000) >> 3 }
func (m ModRM) RM() byte       { return byte(m&0b00000111) >> 0 }
func (m *ModRM) SetMod(b byte) { *m = (*m & 0b00111111) | ((ModRM(b) & 0b11) << 6) }
func (m *ModRM) SetReg(b byte) { *m = (*m & 0b11000111) | ((ModRM(b) & 0b111) << 3) }
func (m *ModRM) SetRM(b byte)  { *m = (*m & 0b11111000) | ((ModRM(b) & 0b111) << 0) }

// IsRegister returns whether the
// r/m field names a register.
func (m ModRM) IsRegister() bool { return m.Mod() == ModRegister }

func (m ModRM) String() string {
	return fmt.Sprintf("{Mod: %02b, Reg: %03b, R/M: %03b}", m.Mod(), m.Reg(), m.RM())
}

// SIB provides helper functionality
// for reading and writing a SIB
// byte.
type SIB byte

const (
	// Section 2.1.5, table 2.3, Index column.
	SIBNoIndex = 0b100

	// Section 2.1.5, table 2.3, Base row.
	SIBStackPointerBase = 0b100
	SIBNoBase           = 0b101
)

func (s SIB) Scale() byte      { return byte(s&0b11000000) >> 6 }
func (s SIB) Index() byte      { return byte(s&0b00111000) >> 3 }
func (s SIB) Base() byte       { return byte(s&0b00000111) >> 0 }
func (s *SIB) SetScale(b byte) { *s = (*s & 0b00111111) | ((SIB(b) & 0b11) << 6) }
func (s *SIB) SetIndex(b byte) { *s = (*s & 0b11000111) | ((SIB(b) & 0b111) << 3) }
func (s *SIB) SetBase(b byte)  { *s = (*s & 0b11111000) | ((SIB(b) & 0b111) << 0) }

func (s SIB) String() string {
	return fmt.Sprintf("{Scale: %02b, Index: %03b, Base: %03b}", s.Scale(), s.Index(), s.Base())
}
