// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// Register identifies a processor register.
//
//go:generate stringer -type=Register -linecomment
type Register uint8

const (
	RegisterNone Register = iota // None
	AL
	CL
	DL
	BL
	AH
	CH
	DH
	BH
	SPL
	BPL
	SIL
	DIL
	R8L
	R9L
	R10L
	R11L
	R12L
	R13L
	R14L
	R15L
	AX
	CX
	DX
	BX
	SP
	BP
	SI
	DI
	R8W
	R9W
	R10W
	R11W
	R12W
	R13W
	R14W
	R15W
	EAX
	ECX
	EDX
	EBX
	ESP
	EBP
	ESI
	EDI
	R8D
	R9D
	R10D
	R11D
	R12D
	R13D
	R14D
	R15D
	RAX
	RCX
	RDX
	RBX
	RSP
	RBP
	RSI
	RDI
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
	EIP
	RIP
	ES
	CS
	SS
	DS
	FS
	GS
	XMM0
	XMM1
	XMM2
	XMM3
	XMM4
	XMM5
	XMM6
	XMM7
	XMM8
	XMM9
	XMM10
	XMM11
	XMM12
	XMM13
	XMM14
	XMM15
	XMM16
	XMM17
	XMM18
	XMM19
	XMM20
	XMM21
	XMM22
	XMM23
	XMM24
	XMM25
	XMM26
	XMM27
	XMM28
	XMM29
	XMM30
	XMM31
	YMM0
	YMM1
	YMM2
	YMM3
	YMM4
	YMM5
	YMM6
	YMM7
	YMM8
	YMM9
	YMM10
	YMM11
	YMM12
	YMM13
	YMM14
	YMM15
	YMM16
	YMM17
	YMM18
	YMM19
	YMM20
	YMM21
	YMM22
	YMM23
	YMM24
	YMM25
	YMM26
	YMM27
	YMM28
	YMM29
	YMM30
	YMM31
	ZMM0
	ZMM1
	ZMM2
	ZMM3
	ZMM4
	ZMM5
	ZMM6
	ZMM7
	ZMM8
	ZMM9
	ZMM10
	ZMM11
	ZMM12
	ZMM13
	ZMM14
	ZMM15
	ZMM16
	ZMM17
	ZMM18
	ZMM19
	ZMM20
	ZMM21
	ZMM22
	ZMM23
	ZMM24
	ZMM25
	ZMM26
	ZMM27
	ZMM28
	ZMM29
	ZMM30
	ZMM31
	K0
	K1
	K2
	K3
	K4
	K5
	K6
	K7
	BND0
	BND1
	BND2
	BND3
	CR0
	CR1
	CR2
	CR3
	CR4
	CR5
	CR6
	CR7
	CR8
	CR9
	CR10
	CR11
	CR12
	CR13
	CR14
	CR15
	DR0
	DR1
	DR2
	DR3
	DR4
	DR5
	DR6
	DR7
	DR8
	DR9
	DR10
	DR11
	DR12
	DR13
	DR14
	DR15
	ST0
	ST1
	ST2
	ST3
	ST4
	ST5
	ST6
	ST7
	MM0
	MM1
	MM2
	MM3
	MM4
	MM5
	MM6
	MM7
	TR0
	TR1
	TR2
	TR3
	TR4
	TR5
	TR6
	TR7
	TMM0
	TMM1
	TMM2
	TMM3
	TMM4
	TMM5
	TMM6
	TMM7
)

// NumberOfRegisters is the number of Register values.
const NumberOfRegisters = 249

var registers = [NumberOfRegisters]registerInfo{
	AL:     {kind: regGPR8, number: 0, size: 1, family: 0, rank: 0},
	CL:     {kind: regGPR8, number: 1, size: 1, family: 1, rank: 0},
	DL:     {kind: regGPR8, number: 2, size: 1, family: 2, rank: 0},
	BL:     {kind: regGPR8, number: 3, size: 1, family: 3, rank: 0},
	AH:     {kind: regGPR8, number: 4, size: 1, family: 0, rank: 0},
	CH:     {kind: regGPR8, number: 5, size: 1, family: 1, rank: 0},
	DH:     {kind: regGPR8, number: 6, size: 1, family: 2, rank: 0},
	BH:     {kind: regGPR8, number: 7, size: 1, family: 3, rank: 0},
	SPL:    {kind: regGPR8, number: 4, size: 1, family: 4, rank: 0},
	BPL:    {kind: regGPR8, number: 5, size: 1, family: 5, rank: 0},
	SIL:    {kind: regGPR8, number: 6, size: 1, family: 6, rank: 0},
	DIL:    {kind: regGPR8, number: 7, size: 1, family: 7, rank: 0},
	R8L:    {kind: regGPR8, number: 8, size: 1, family: 8, rank: 0},
	R9L:    {kind: regGPR8, number: 9, size: 1, family: 9, rank: 0},
	R10L:   {kind: regGPR8, number: 10, size: 1, family: 10, rank: 0},
	R11L:   {kind: regGPR8, number: 11, size: 1, family: 11, rank: 0},
	R12L:   {kind: regGPR8, number: 12, size: 1, family: 12, rank: 0},
	R13L:   {kind: regGPR8, number: 13, size: 1, family: 13, rank: 0},
	R14L:   {kind: regGPR8, number: 14, size: 1, family: 14, rank: 0},
	R15L:   {kind: regGPR8, number: 15, size: 1, family: 15, rank: 0},
	AX:     {kind: regGPR16, number: 0, size: 2, family: 0, rank: 1},
	CX:     {kind: regGPR16, number: 1, size: 2, family: 1, rank: 1},
	DX:     {kind: regGPR16, number: 2, size: 2, family: 2, rank: 1},
	BX:     {kind: regGPR16, number: 3, size: 2, family: 3, rank: 1},
	SP:     {kind: regGPR16, number: 4, size: 2, family: 4, rank: 1},
	BP:     {kind: regGPR16, number: 5, size: 2, family: 5, rank: 1},
	SI:     {kind: regGPR16, number: 6, size: 2, family: 6, rank: 1},
	DI:     {kind: regGPR16, number: 7, size: 2, family: 7, rank: 1},
	R8W:    {kind: regGPR16, number: 8, size: 2, family: 8, rank: 1},
	R9W:    {kind: regGPR16, number: 9, size: 2, family: 9, rank: 1},
	R10W:   {kind: regGPR16, number: 10, size: 2, family: 10, rank: 1},
	R11W:   {kind: regGPR16, number: 11, size: 2, family: 11, rank: 1},
	R12W:   {kind: regGPR16, number: 12, size: 2, family: 12, rank: 1},
	R13W:   {kind: regGPR16, number: 13, size: 2, family: 13, rank: 1},
	R14W:   {kind: regGPR16, number: 14, size: 2, family: 14, rank: 1},
	R15W:   {kind: regGPR16, number: 15, size: 2, family: 15, rank: 1},
	EAX:    {kind: regGPR32, number: 0, size: 4, family: 0, rank: 2},
	ECX:    {kind: regGPR32, number: 1, size: 4, family: 1, rank: 2},
	EDX:    {kind: regGPR32, number: 2, size: 4, family: 2, rank: 2},
	EBX:    {kind: regGPR32, number: 3, size: 4, family: 3, rank: 2},
	ESP:    {kind: regGPR32, number: 4, size: 4, family: 4, rank: 2},
	EBP:    {kind: regGPR32, number: 5, size: 4, family: 5, rank: 2},
	ESI:    {kind: regGPR32, number: 6, size: 4, family: 6, rank: 2},
	EDI:    {kind: regGPR32, number: 7, size: 4, family: 7, rank: 2},
	R8D:    {kind: regGPR32, number: 8, size: 4, family: 8, rank: 2},
	R9D:    {kind: regGPR32, number: 9, size: 4, family: 9, rank: 2},
	R10D:   {kind: regGPR32, number: 10, size: 4, family: 10, rank: 2},
	R11D:   {kind: regGPR32, number: 11, size: 4, family: 11, rank: 2},
	R12D:   {kind: regGPR32, number: 12, size: 4, family: 12, rank: 2},
	R13D:   {kind: regGPR32, number: 13, size: 4, family: 13, rank: 2},
	R14D:   {kind: regGPR32, number: 14, size: 4, family: 14, rank: 2},
	R15D:   {kind: regGPR32, number: 15, size: 4, family: 15, rank: 2},
	RAX:    {kind: regGPR64, number: 0, size: 8, family: 0, rank: 3},
	RCX:    {kind: regGPR64, number: 1, size: 8, family: 1, rank: 3},
	RDX:    {kind: regGPR64, number: 2, size: 8, family: 2, rank: 3},
	RBX:    {kind: regGPR64, number: 3, size: 8, family: 3, rank: 3},
	RSP:    {kind: regGPR64, number: 4, size: 8, family: 4, rank: 3},
	RBP:    {kind: regGPR64, number: 5, size: 8, family: 5, rank: 3},
	RSI:    {kind: regGPR64, number: 6, size: 8, family: 6, rank: 3},
	RDI:    {kind: regGPR64, number: 7, size: 8, family: 7, rank: 3},
	R8:     {kind: regGPR64, number: 8, size: 8, family: 8, rank: 3},
	R9:     {kind: regGPR64, number: 9, size: 8, family: 9, rank: 3},
	R10:    {kind: regGPR64, number: 10, size: 8, family: 10, rank: 3},
	R11:    {kind: regGPR64, number: 11, size: 8, family: 11, rank: 3},
	R12:    {kind: regGPR64, number: 12, size: 8, family: 12, rank: 3},
	R13:    {kind: regGPR64, number: 13, size: 8, family: 13, rank: 3},
	R14:    {kind: regGPR64, number: 14, size: 8, family: 14, rank: 3},
	R15:    {kind: regGPR64, number: 15, size: 8, family: 15, rank: 3},
	EIP:    {kind: regIP, number: 0, size: 4, family: 16, rank: 2},
	RIP:    {kind: regIP, number: 0, size: 8, family: 16, rank: 3},
	ES:     {kind: regSegment, number: 0, size: 2, family: 17, rank: 0},
	CS:     {kind: regSegment, number: 1, size: 2, family: 18, rank: 0},
	SS:     {kind: regSegment, number: 2, size: 2, family: 19, rank: 0},
	DS:     {kind: regSegment, number: 3, size: 2, family: 20, rank: 0},
	FS:     {kind: regSegment, number: 4, size: 2, family: 21, rank: 0},
	GS:     {kind: regSegment, number: 5, size: 2, family: 22, rank: 0},
	XMM0:   {kind: regXMM, number: 0, size: 16, family: 32, rank: 0},
	XMM1:   {kind: regXMM, number: 1, size: 16, family: 33, rank: 0},
	XMM2:   {kind: regXMM, number: 2, size: 16, family: 34, rank: 0},
	XMM3:   {kind: regXMM, number: 3, size: 16, family: 35, rank: 0},
	XMM4:   {kind: regXMM, number: 4, size: 16, family: 36, rank: 0},
	XMM5:   {kind: regXMM, number: 5, size: 16, family: 37, rank: 0},
	XMM6:   {kind: regXMM, number: 6, size: 16, family: 38, rank: 0},
	XMM7:   {kind: regXMM, number: 7, size: 16, family: 39, rank: 0},
	XMM8:   {kind: regXMM, number: 8, size: 16, family: 40, rank: 0},
	XMM9:   {kind: regXMM, number: 9, size: 16, family: 41, rank: 0},
	XMM10:  {kind: regXMM, number: 10, size: 16, family: 42, rank: 0},
	XMM11:  {kind: regXMM, number: 11, size: 16, family: 43, rank: 0},
	XMM12:  {kind: regXMM, number: 12, size: 16, family: 44, rank: 0},
	XMM13:  {kind: regXMM, number: 13, size: 16, family: 45, rank: 0},
	XMM14:  {kind: regXMM, number: 14, size: 16, family: 46, rank: 0},
	XMM15:  {kind: regXMM, number: 15, size: 16, family: 47, rank: 0},
	XMM16:  {kind: regXMM, number: 16, size: 16, family: 48, rank: 0},
	XMM17:  {kind: regXMM, number: 17, size: 16, family: 49, rank: 0},
	XMM18:  {kind: regXMM, number: 18, size: 16, family: 50, rank: 0},
	XMM19:  {kind: regXMM, number: 19, size: 16, family: 51, rank: 0},
	XMM20:  {kind: regXMM, number: 20, size: 16, family: 52, rank: 0},
	XMM21:  {kind: regXMM, number: 21, size: 16, family: 53, rank: 0},
	XMM22:  {kind: regXMM, number: 22, size: 16, family: 54, rank: 0},
	XMM23:  {kind: regXMM, number: 23, size: 16, family: 55, rank: 0},
	XMM24:  {kind: regXMM, number: 24, size: 16, family: 56, rank: 0},
	XMM25:  {kind: regXMM, number: 25, size: 16, family: 57, rank: 0},
	XMM26:  {kind: regXMM, number: 26, size: 16, family: 58, rank: 0},
	XMM27:  {kind: regXMM, number: 27, size: 16, family: 59, rank: 0},
	XMM28:  {kind: regXMM, number: 28, size: 16, family: 60, rank: 0},
	XMM29:  {kind: regXMM, number: 29, size: 16, family: 61, rank: 0},
	XMM30:  {kind: regXMM, number: 30, size: 16, family: 62, rank: 0},
	XMM31:  {kind: regXMM, number: 31, size: 16, family: 63, rank: 0},
	YMM0:   {kind: regYMM, number: 0, size: 32, family: 32, rank: 1},
	YMM1:   {kind: regYMM, number: 1, size: 32, family: 33, rank: 1},
	YMM2:   {kind: regYMM, number: 2, size: 32, family: 34, rank: 1},
	YMM3:   {kind: regYMM, number: 3, size: 32, family: 35, rank: 1},
	YMM4:   {kind: regYMM, number: 4, size: 32, family: 36, rank: 1},
	YMM5:   {kind: regYMM, number: 5, size: 32, family: 37, rank: 1},
	YMM6:   {kind: regYMM, number: 6, size: 32, family: 38, rank: 1},
	YMM7:   {kind: regYMM, number: 7, size: 32, family: 39, rank: 1},
	YMM8:   {kind: regYMM, number: 8, size: 32, family: 40, rank: 1},
	YMM9:   {kind: regYMM, number: 9, size: 32, family: 41, rank: 1},
	YMM10:  {kind: regYMM, number: 10, size: 32, family: 42, rank: 1},
	YMM11:  {kind: regYMM, number: 11, size: 32, family: 43, rank: 1},
	YMM12:  {kind: regYMM, number: 12, size: 32, family: 44, rank: 1},
	YMM13:  {kind: regYMM, number: 13, size: 32, family: 45, rank: 1},
	YMM14:  {kind: regYMM, number: 14, size: 32, family: 46, rank: 1},
	YMM15:  {kind: regYMM, number: 15, size: 32, family: 47, rank: 1},
	YMM16:  {kind: regYMM, number: 16, size: 32, family: 48, rank: 1},
	YMM17:  {kind: regYMM, number: 17, size: 32, family: 49, rank: 1},
	YMM18:  {kind: regYMM, number: 18, size: 32, family: 50, rank: 1},
	YMM19:  {kind: regYMM, number: 19, size: 32, family: 51, rank: 1},
	YMM20:  {kind: regYMM, number: 20, size: 32, family: 52, rank: 1},
	YMM21:  {kind: regYMM, number: 21, size: 32, family: 53, rank: 1},
	YMM22:  {kind: regYMM, number: 22, size: 32, family: 54, rank: 1},
	YMM23:  {kind: regYMM, number: 23, size: 32, family: 55, rank: 1},
	YMM24:  {kind: regYMM, number: 24, size: 32, family: 56, rank: 1},
	YMM25:  {kind: regYMM, number: 25, size: 32, family: 57, rank: 1},
	YMM26:  {kind: regYMM, number: 26, size: 32, family: 58, rank: 1},
	YMM27:  {kind: regYMM, number: 27, size: 32, family: 59, rank: 1},
	YMM28:  {kind: regYMM, number: 28, size: 32, family: 60, rank: 1},
	YMM29:  {kind: regYMM, number: 29, size: 32, family: 61, rank: 1},
	YMM30:  {kind: regYMM, number: 30, size: 32, family: 62, rank: 1},
	YMM31:  {kind: regYMM, number: 31, size: 32, family: 63, rank: 1},
	ZMM0:   {kind: regZMM, number: 0, size: 64, family: 32, rank: 2},
	ZMM1:   {kind: regZMM, number: 1, size: 64, family: 33, rank: 2},
	ZMM2:   {kind: regZMM, number: 2, size: 64, family: 34, rank: 2},
	ZMM3:   {kind: regZMM, number: 3, size: 64, family: 35, rank: 2},
	ZMM4:   {kind: regZMM, number: 4, size: 64, family: 36, rank: 2},
	ZMM5:   {kind: regZMM, number: 5, size: 64, family: 37, rank: 2},
	ZMM6:   {kind: regZMM, number: 6, size: 64, family: 38, rank: 2},
	ZMM7:   {kind: regZMM, number: 7, size: 64, family: 39, rank: 2},
	ZMM8:   {kind: regZMM, number: 8, size: 64, family: 40, rank: 2},
	ZMM9:   {kind: regZMM, number: 9, size: 64, family: 41, rank: 2},
	ZMM10:  {kind: regZMM, number: 10, size: 64, family: 42, rank: 2},
	ZMM11:  {kind: regZMM, number: 11, size: 64, family: 43, rank: 2},
	ZMM12:  {kind: regZMM, number: 12, size: 64, family: 44, rank: 2},
	ZMM13:  {kind: regZMM, number: 13, size: 64, family: 45, rank: 2},
	ZMM14:  {kind: regZMM, number: 14, size: 64, family: 46, rank: 2},
	ZMM15:  {kind: regZMM, number: 15, size: 64, family: 47, rank: 2},
	ZMM16:  {kind: regZMM, number: 16, size: 64, family: 48, rank: 2},
	ZMM17:  {kind: regZMM, number: 17, size: 64, family: 49, rank: 2},
	ZMM18:  {kind: regZMM, number: 18, size: 64, family: 50, rank: 2},
	ZMM19:  {kind: regZMM, number: 19, size: 64, family: 51, rank: 2},
	ZMM20:  {kind: regZMM, number: 20, size: 64, family: 52, rank: 2},
	ZMM21:  {kind: regZMM, number: 21, size: 64, family: 53, rank: 2},
	ZMM22:  {kind: regZMM, number: 22, size: 64, family: 54, rank: 2},
	ZMM23:  {kind: regZMM, number: 23, size: 64, family: 55, rank: 2},
	ZMM24:  {kind: regZMM, number: 24, size: 64, family: 56, rank: 2},
	ZMM25:  {kind: regZMM, number: 25, size: 64, family: 57, rank: 2},
	ZMM26:  {kind: regZMM, number: 26, size: 64, family: 58, rank: 2},
	ZMM27:  {kind: regZMM, number: 27, size: 64, family: 59, rank: 2},
	ZMM28:  {kind: regZMM, number: 28, size: 64, family: 60, rank: 2},
	ZMM29:  {kind: regZMM, number: 29, size: 64, family: 61, rank: 2},
	ZMM30:  {kind: regZMM, number: 30, size: 64, family: 62, rank: 2},
	ZMM31:  {kind: regZMM, number: 31, size: 64, family: 63, rank: 2},
	K0:     {kind: regK, number: 0, size: 8, family: 64, rank: 0},
	K1:     {kind: regK, number: 1, size: 8, family: 65, rank: 0},
	K2:     {kind: regK, number: 2, size: 8, family: 66, rank: 0},
	K3:     {kind: regK, number: 3, size: 8, family: 67, rank: 0},
	K4:     {kind: regK, number: 4, size: 8, family: 68, rank: 0},
	K5:     {kind: regK, number: 5, size: 8, family: 69, rank: 0},
	K6:     {kind: regK, number: 6, size: 8, family: 70, rank: 0},
	K7:     {kind: regK, number: 7, size: 8, family: 71, rank: 0},
	BND0:   {kind: regBND, number: 0, size: 16, family: 72, rank: 0},
	BND1:   {kind: regBND, number: 1, size: 16, family: 73, rank: 0},
	BND2:   {kind: regBND, number: 2, size: 16, family: 74, rank: 0},
	BND3:   {kind: regBND, number: 3, size: 16, family: 75, rank: 0},
	CR0:    {kind: regCR, number: 0, size: 8, family: 76, rank: 0},
	CR1:    {kind: regCR, number: 1, size: 8, family: 77, rank: 0},
	CR2:    {kind: regCR, number: 2, size: 8, family: 78, rank: 0},
	CR3:    {kind: regCR, number: 3, size: 8, family: 79, rank: 0},
	CR4:    {kind: regCR, number: 4, size: 8, family: 80, rank: 0},
	CR5:    {kind: regCR, number: 5, size: 8, family: 81, rank: 0},
	CR6:    {kind: regCR, number: 6, size: 8, family: 82, rank: 0},
	CR7:    {kind: regCR, number: 7, size: 8, family: 83, rank: 0},
	CR8:    {kind: regCR, number: 8, size: 8, family: 84, rank: 0},
	CR9:    {kind: regCR, number: 9, size: 8, family: 85, rank: 0},
	CR10:   {kind: regCR, number: 10, size: 8, family: 86, rank: 0},
	CR11:   {kind: regCR, number: 11, size: 8, family: 87, rank: 0},
	CR12:   {kind: regCR, number: 12, size: 8, family: 88, rank: 0},
	CR13:   {kind: regCR, number: 13, size: 8, family: 89, rank: 0},
	CR14:   {kind: regCR, number: 14, size: 8, family: 90, rank: 0},
	CR15:   {kind: regCR, number: 15, size: 8, family: 91, rank: 0},
	DR0:    {kind: regDR, number: 0, size: 8, family: 92, rank: 0},
	DR1:    {kind: regDR, number: 1, size: 8, family: 93, rank: 0},
	DR2:    {kind: regDR, number: 2, size: 8, family: 94, rank: 0},
	DR3:    {kind: regDR, number: 3, size: 8, family: 95, rank: 0},
	DR4:    {kind: regDR, number: 4, size: 8, family: 96, rank: 0},
	DR5:    {kind: regDR, number: 5, size: 8, family: 97, rank: 0},
	DR6:    {kind: regDR, number: 6, size: 8, family: 98, rank: 0},
	DR7:    {kind: regDR, number: 7, size: 8, family: 99, rank: 0},
	DR8:    {kind: regDR, number: 8, size: 8, family: 100, rank: 0},
	DR9:    {kind: regDR, number: 9, size: 8, family: 101, rank: 0},
	DR10:   {kind: regDR, number: 10, size: 8, family: 102, rank: 0},
	DR11:   {kind: regDR, number: 11, size: 8, family: 103, rank: 0},
	DR12:   {kind: regDR, number: 12, size: 8, family: 104, rank: 0},
	DR13:   {kind: regDR, number: 13, size: 8, family: 105, rank: 0},
	DR14:   {kind: regDR, number: 14, size: 8, family: 106, rank: 0},
	DR15:   {kind: regDR, number: 15, size: 8, family: 107, rank: 0},
	ST0:    {kind: regST, number: 0, size: 10, family: 108, rank: 0},
	ST1:    {kind: regST, number: 1, size: 10, family: 109, rank: 0},
	ST2:    {kind: regST, number: 2, size: 10, family: 110, rank: 0},
	ST3:    {kind: regST, number: 3, size: 10, family: 111, rank: 0},
	ST4:    {kind: regST, number: 4, size: 10, family: 112, rank: 0},
	ST5:    {kind: regST, number: 5, size: 10, family: 113, rank: 0},
	ST6:    {kind: regST, number: 6, size: 10, family: 114, rank: 0},
	ST7:    {kind: regST, number: 7, size: 10, family: 115, rank: 0},
	MM0:    {kind: regMM, number: 0, size: 8, family: 116, rank: 0},
	MM1:    {kind: regMM, number: 1, size: 8, family: 117, rank: 0},
	MM2:    {kind: regMM, number: 2, size: 8, family: 118, rank: 0},
	MM3:    {kind: regMM, number: 3, size: 8, family: 119, rank: 0},
	MM4:    {kind: regMM, number: 4, size: 8, family: 120, rank: 0},
	MM5:    {kind: regMM, number: 5, size: 8, family: 121, rank: 0},
	MM6:    {kind: regMM, number: 6, size: 8, family: 122, rank: 0},
	MM7:    {kind: regMM, number: 7, size: 8, family: 123, rank: 0},
	TR0:    {kind: regTR, number: 0, size: 4, family: 124, rank: 0},
	TR1:    {kind: regTR, number: 1, size: 4, family: 125, rank: 0},
	TR2:    {kind: regTR, number: 2, size: 4, family: 126, rank: 0},
	TR3:    {kind: regTR, number: 3, size: 4, family: 127, rank: 0},
	TR4:    {kind: regTR, number: 4, size: 4, family: 128, rank: 0},
	TR5:    {kind: regTR, number: 5, size: 4, family: 129, rank: 0},
	TR6:    {kind: regTR, number: 6, size: 4, family: 130, rank: 0},
	TR7:    {kind: regTR, number: 7, size: 4, family: 131, rank: 0},
	TMM0:   {kind: regTMM, number: 0, size: 1024, family: 132, rank: 0},
	TMM1:   {kind: regTMM, number: 1, size: 1024, family: 133, rank: 0},
	TMM2:   {kind: regTMM, number: 2, size: 1024, family: 134, rank: 0},
	TMM3:   {kind: regTMM, number: 3, size: 1024, family: 135, rank: 0},
	TMM4:   {kind: regTMM, number: 4, size: 1024, family: 136, rank: 0},
	TMM5:   {kind: regTMM, number: 5, size: 1024, family: 137, rank: 0},
	TMM6:   {kind: regTMM, number: 6, size: 1024, family: 138, rank: 0},
	TMM7:   {kind: regTMM, number: 7, size: 1024, family: 139, rank: 0},
}
