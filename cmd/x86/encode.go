// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"firefly-os.dev/x86"
)

// encodeMain encodes a single instruction.
func encodeMain(ctx context.Context, w io.Writer, args []string) error {
	flags := flag.NewFlagSet("encode", flag.ExitOnError)

	var help, lock, zeroing, vex3, offsets bool
	var mask string
	flags.BoolVar(&help, "h", false, "Show this message and exit.")
	flags.BoolVar(&lock, "lock", false, "Add a LOCK prefix.")
	flags.StringVar(&mask, "mask", "", "Use the named opmask register, such as k1.")
	flags.BoolVar(&zeroing, "z", false, "Use zeroing-masking.")
	flags.BoolVar(&vex3, "vex3", false, "Always use the 3-byte VEX prefix.")
	flags.BoolVar(&offsets, "offsets", false, "Print where the displacement and immediates are.")
	s := addSettings(flags)

	flags.Usage = func() {
		log.Printf("Usage:\n  %s %s [OPTIONS] CODE [OPERAND...]\n\n", program, flags.Name())
		log.Printf("Operands are registers (rax), immediates (-5, 0x10),\n")
		log.Printf("memory (fs:[rax+rbx*4+0x10], [rax]{1to16}), branch\n")
		log.Printf("targets (@0x401000) or far pointers (0x10:0x2000).\n\n")
		flags.PrintDefaults()
		os.Exit(2)
	}

	err := flags.Parse(args)
	if err != nil || help {
		flags.Usage()
	}

	if err := s.load(flags); err != nil {
		return err
	}

	words := flags.Args()
	if len(words) == 0 {
		flags.Usage()
	}

	code, err := x86.ParseCode(words[0])
	if err != nil {
		return err
	}

	var ops []x86.Operand
	for _, word := range words[1:] {
		op, err := parseOperand(word)
		if err != nil {
			return err
		}

		ops = append(ops, op)
	}

	inst, err := x86.NewInstruction(code, ops...)
	if err != nil {
		return err
	}

	inst.SetLockPrefix(lock)
	inst.SetZeroingMasking(zeroing)
	if mask != "" {
		k, err := x86.ParseRegister(mask)
		if err != nil {
			return err
		}

		if !k.IsK() {
			return fmt.Errorf("%s is not an opmask register", k)
		}

		inst.SetOpMask(k)
	}

	var buf bytes.Buffer
	e := x86.NewEncoder(s.bitness, &buf)
	if vex3 {
		e.SetOptions(x86.EncoderPreventVEX2)
	}

	if _, err := e.Encode(&inst, s.ip); err != nil {
		return err
	}

	fmt.Fprintln(w, hex.EncodeToString(buf.Bytes()))
	if offsets {
		o := e.ConstantOffsets()
		if o.DisplacementSize > 0 {
			fmt.Fprintf(w, "displacement: %d bytes at offset %d\n", o.DisplacementSize, o.DisplacementOffset)
		}

		if o.ImmediateSize > 0 {
			fmt.Fprintf(w, "immediate:    %d bytes at offset %d\n", o.ImmediateSize, o.ImmediateOffset)
		}

		if o.ImmediateSize2 > 0 {
			fmt.Fprintf(w, "immediate 2:  %d bytes at offset %d\n", o.ImmediateSize2, o.ImmediateOffset2)
		}

		if o.BranchSize > 0 {
			fmt.Fprintf(w, "branch:       %d bytes at offset %d\n", o.BranchSize, o.BranchOffset)
		}
	}

	return nil
}

// parseOperand parses an operand written on the
// command line.
func parseOperand(s string) (x86.Operand, error) {
	switch {
	case s == "":
		return x86.Operand{}, errors.New("empty operand")
	case strings.HasPrefix(s, "@"):
		target, err := strconv.ParseUint(s[1:], 0, 64)
		if err != nil {
			return x86.Operand{}, fmt.Errorf("invalid branch target %q: %v", s, err)
		}

		return x86.Branch(target), nil
	case strings.Contains(s, "["):
		m, err := parseMemory(s)
		if err != nil {
			return x86.Operand{}, err
		}

		return x86.Mem(m), nil
	case strings.Contains(s, ":"):
		sel, off, _ := strings.Cut(s, ":")
		selector, err := strconv.ParseUint(sel, 0, 16)
		if err != nil {
			return x86.Operand{}, fmt.Errorf("invalid far pointer %q: %v", s, err)
		}

		offset, err := strconv.ParseUint(off, 0, 32)
		if err != nil {
			return x86.Operand{}, fmt.Errorf("invalid far pointer %q: %v", s, err)
		}

		return x86.Far(uint16(selector), uint32(offset)), nil
	}

	if v, err := strconv.ParseInt(s, 0, 64); err == nil {
		return x86.Imm(v), nil
	}

	if v, err := strconv.ParseUint(s, 0, 64); err == nil {
		return x86.Uimm(v), nil
	}

	reg, err := x86.ParseRegister(s)
	if err != nil {
		return x86.Operand{}, fmt.Errorf("invalid operand %q: not a register or number", s)
	}

	return x86.Reg(reg), nil
}

// parseMemory parses [base+index*scale+displ],
// with an optional segment prefix and an
// optional {1toN} broadcast suffix.
func parseMemory(s string) (x86.Memory, error) {
	var m x86.Memory
	orig := s
	if seg, rest, ok := strings.Cut(s, ":"); ok && !strings.Contains(seg, "[") {
		reg, err := x86.ParseRegister(seg)
		if err != nil || !reg.IsSegmentRegister() {
			return m, fmt.Errorf("invalid memory operand %q: bad segment %q", orig, seg)
		}

		m.Segment = reg
		s = rest
	}

	if i := strings.LastIndex(s, "]"); i >= 0 && i+1 < len(s) {
		suffix := s[i+1:]
		if !strings.HasPrefix(suffix, "{1to") || !strings.HasSuffix(suffix, "}") {
			return m, fmt.Errorf("invalid memory operand %q: unexpected %q", orig, suffix)
		}

		m.Broadcast = true
		s = s[:i+1]
	}

	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return m, fmt.Errorf("invalid memory operand %q", orig)
	}

	body := strings.TrimSpace(s[1 : len(s)-1])
	if body == "" {
		return m, fmt.Errorf("invalid memory operand %q: empty address", orig)
	}

	// Split into signed terms.
	var terms []string
	start := 0
	for i := 1; i < len(body); i++ {
		if body[i] == '+' || body[i] == '-' {
			terms = append(terms, body[start:i])
			start = i
		}
	}

	terms = append(terms, body[start:])
	for _, term := range terms {
		neg := strings.HasPrefix(term, "-")
		term = strings.TrimSpace(strings.TrimLeft(term, "+-"))
		if v, err := strconv.ParseUint(term, 0, 64); err == nil {
			if neg {
				v = -v
			}

			m.Displacement += int64(v)
			continue
		}

		if neg {
			return m, fmt.Errorf("invalid memory operand %q: cannot subtract %s", orig, term)
		}

		name, scale, scaled := strings.Cut(term, "*")
		reg, err := x86.ParseRegister(strings.TrimSpace(name))
		if err != nil {
			return m, fmt.Errorf("invalid memory operand %q: %v", orig, err)
		}

		switch {
		case scaled:
			n, err := strconv.Atoi(strings.TrimSpace(scale))
			if err != nil {
				return m, fmt.Errorf("invalid memory operand %q: bad scale %q", orig, scale)
			}

			if m.Index != x86.RegisterNone {
				return m, fmt.Errorf("invalid memory operand %q: two index registers", orig)
			}

			m.Index = reg
			m.Scale = n
		case m.Base == x86.RegisterNone:
			m.Base = reg
		case m.Index == x86.RegisterNone:
			m.Index = reg
		default:
			return m, fmt.Errorf("invalid memory operand %q: too many registers", orig)
		}
	}

	return m, nil
}
