// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package x86 decodes, encodes and describes x86
// machine code in 16, 32 and 64-bit modes.
//
// A Decoder reads instructions from an io.ByteReader,
// producing Instruction values. Each instruction
// has a Code, which identifies its mnemonic,
// operand signature and encoding. Instructions can
// also be built directly with NewInstruction.
//
// An Encoder writes instructions back out as
// machine code, choosing the shortest encoding
// that preserves the instruction's meaning. Code
// decoded and then encoded at the same address
// produces the original bytes.
//
// Instruction.Info reports the registers and
// memory an instruction reads and writes, along
// with the flags it uses and the CPU features it
// needs.
//
// All of the legacy, VEX, XOP, EVEX and MVEX
// encodings are supported. MVEX instructions are
// only decoded with DecoderKNC.
package x86
