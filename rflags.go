// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"strings"
)

// RflagsBits is a set of RFLAGS bits, plus the
// x87 condition code bits C0-C3.
type RflagsBits uint16

const (
	RflagsOF RflagsBits = 1 << iota
	RflagsSF
	RflagsZF
	RflagsAF
	RflagsCF
	RflagsPF
	RflagsDF
	RflagsIF
	RflagsAC
	RflagsUIF
	RflagsC0
	RflagsC1
	RflagsC2
	RflagsC3

	RflagsNone RflagsBits = 0
)

// rflagsLetters holds the letter used for each
// bit in flag sets, in bit order. UIF has no
// letter.
const rflagsLetters = "oszacpdiA-0123"

var rflagsNames = [...]string{"OF", "SF", "ZF", "AF", "CF", "PF", "DF", "IF", "AC", "UIF", "C0", "C1", "C2", "C3"}

func (r RflagsBits) String() string {
	if r == 0 {
		return "None"
	}

	var names []string
	for i, name := range rflagsNames {
		if r&(1<<i) != 0 {
			names = append(names, name)
		}
	}

	return strings.Join(names, "|")
}

// ParseRflags parses a set of flags written as
// letters: o s z a p c d i A for OF, SF, ZF, AF,
// PF, CF, DF, IF and AC, and 0-3 for C0-C3.
func ParseRflags(s string) (RflagsBits, error) {
	var r RflagsBits
	for _, c := range s {
		i := strings.IndexRune(rflagsLetters, c)
		if i < 0 || c == '-' {
			return 0, fmt.Errorf("invalid flag %q in %q", c, s)
		}

		r |= 1 << i
	}

	return r, nil
}

// rflagsInfo holds the flags an instruction
// reads and how it modifies them. The four
// modification sets are disjoint.
type rflagsInfo struct {
	read      RflagsBits
	written   RflagsBits
	cleared   RflagsBits
	set       RflagsBits
	undefined RflagsBits
}

func (r rflagsInfo) modified() RflagsBits {
	return r.written | r.cleared | r.set | r.undefined
}

// parseRflagsInfo parses the notation used in
// opcode definitions, such as "r=c w=oszapc".
// The keys are r (read), w (written), c
// (cleared), s (set) and u (undefined).
func parseRflagsInfo(s string) (rflagsInfo, error) {
	var info rflagsInfo
	for _, field := range strings.Fields(s) {
		key, letters, ok := strings.Cut(field, "=")
		if !ok {
			return rflagsInfo{}, fmt.Errorf("invalid flags clause %q", field)
		}

		bits, err := ParseRflags(letters)
		if err != nil {
			return rflagsInfo{}, err
		}

		switch key {
		case "r":
			info.read |= bits
		case "w":
			info.written |= bits
		case "c":
			info.cleared |= bits
		case "s":
			info.set |= bits
		case "u":
			info.undefined |= bits
		default:
			return rflagsInfo{}, fmt.Errorf("invalid flags key %q in %q", key, s)
		}
	}

	sets := [...]RflagsBits{info.written, info.cleared, info.set, info.undefined}
	for i := range sets {
		for j := i + 1; j < len(sets); j++ {
			if sets[i]&sets[j] != 0 {
				return rflagsInfo{}, fmt.Errorf("flags %s are modified in two ways in %q", sets[i]&sets[j], s)
			}
		}
	}

	return info, nil
}
