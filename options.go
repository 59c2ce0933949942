// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"math/bits"
	"strings"
)

// DecoderOptions enables decoding of encodings
// that are disabled by default, or relaxes the
// decoder's legality checks. Options are combined
// with bitwise OR.
type DecoderOptions uint32

const (
	DecoderNoInvalidCheck   DecoderOptions = 1 << iota // Accept encodings the processor would reject.
	DecoderAMD                                         // Decode branches the way AMD processors do.
	DecoderForceReservedNop                            // Decode 0F 18-1F as reserved NOPs.
	DecoderUmov                                        // Decode UMOV.
	DecoderXbts                                        // Decode XBTS and IBTS.
	DecoderCmpxchg486A                                 // Decode 0F A6/A7 as CMPXCHG.
	DecoderOldFpu                                      // Decode FENI, FDISI and FSETPM.
	DecoderLoadall286                                  // Decode 0F 05 as LOADALL.
	DecoderLoadall386                                  // Decode 0F 07 as LOADALL.
	DecoderCl1invmb                                    // Decode CL1INVMB.
	DecoderMovTr                                       // Decode MOV to and from test registers.
	DecoderJmpe                                        // Decode JMPE.
	DecoderNoPause                                     // Decode F3 90 as NOP.
	DecoderNoWbnoinvd                                  // Decode F3 0F 09 as WBINVD.
	DecoderNoLahfSahf64                                // Reject LAHF and SAHF in 64-bit mode.
	DecoderMPX                                         // Decode MPX instructions in 16-bit addressing.
	DecoderPopCS                                       // Decode 0F as POP CS in 16-bit mode.
	DecoderKNC                                         // Decode MVEX instructions.

	numDecoderOptions = iota
)

// DecoderNone is the default set of options.
const DecoderNone DecoderOptions = 0

var decoderOptionNames = [numDecoderOptions]string{
	"NoInvalidCheck",
	"AMD",
	"ForceReservedNop",
	"Umov",
	"Xbts",
	"Cmpxchg486A",
	"OldFpu",
	"Loadall286",
	"Loadall386",
	"Cl1invmb",
	"MovTr",
	"Jmpe",
	"NoPause",
	"NoWbnoinvd",
	"NoLahfSahf64",
	"MPX",
	"PopCS",
	"KNC",
}

// has returns whether all options in o2 are set.
func (o DecoderOptions) has(o2 DecoderOptions) bool {
	return o&o2 == o2
}

// bit returns the option number of a single option.
func (o DecoderOptions) bit() uint8 {
	return uint8(bits.TrailingZeros32(uint32(o)))
}

func (o DecoderOptions) String() string {
	if o == 0 {
		return "None"
	}

	var names []string
	for i := 0; i < numDecoderOptions; i++ {
		if o&(1<<i) != 0 {
			names = append(names, decoderOptionNames[i])
		}
	}

	if extra := o &^ (1<<numDecoderOptions - 1); extra != 0 {
		names = append(names, fmt.Sprintf("%#x", uint32(extra)))
	}

	return strings.Join(names, "|")
}

// ParseDecoderOption returns the decoder option
// with the given name, as printed by String.
func ParseDecoderOption(name string) (DecoderOptions, error) {
	for i, n := range decoderOptionNames {
		if strings.EqualFold(n, name) {
			return 1 << i, nil
		}
	}

	return 0, fmt.Errorf("unknown decoder option %q", name)
}

// EncoderOptions changes the encoder's choice
// between equivalent encodings.
type EncoderOptions uint8

const (
	EncoderPreventVEX2 EncoderOptions = 1 << iota // Always use the 3-byte VEX prefix.
)

// InfoOptions limits the work done when
// computing an InstructionInfo.
type InfoOptions uint8

const (
	InfoNoMemoryUsage   InfoOptions = 1 << iota // Leave UsedMemory empty.
	InfoNoRegisterUsage                         // Leave UsedRegisters empty.
)
