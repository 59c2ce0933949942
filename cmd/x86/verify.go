// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"golang.org/x/arch/x86/x86asm"
	"golang.org/x/sync/errgroup"

	"firefly-os.dev/x86"
)

// maxProblems is the number of problems listed
// for each file.
const maxProblems = 20

// verifyResult summarises the checks on one
// file.
type verifyResult struct {
	Name         string
	Instructions int
	Invalid      int
	Compared     int // Instructions also decoded by x86asm.
	Problems     []string
	NumProblems  int
}

func (r *verifyResult) problem(format string, v ...any) {
	r.NumProblems++
	if len(r.Problems) < maxProblems {
		r.Problems = append(r.Problems, fmt.Sprintf(format, v...))
	}
}

// verify decodes code, checking each valid
// instruction's opcode bytes, that it re-encodes
// to the same bytes, and that its length matches
// x86asm's.
func verify(ctx context.Context, name string, code []byte, bitness int, ip uint64, options x86.DecoderOptions) (*verifyResult, error) {
	r := &verifyResult{Name: name}
	d := x86.NewDecoder(bitness, bytes.NewReader(code), options)
	d.SetIP(ip)
	for d.CanDecode() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := d.Position()
		inst := d.Decode()
		data := code[start:d.Position()]
		r.Instructions++
		if d.LastError() != x86.DecoderErrorNone {
			r.Invalid++
			continue
		}

		if err := inst.Code().MatchMachineCode(data); err != nil {
			r.problem("%#x: %v", inst.IP(), err)
		}

		got, err := x86.EncodeBytes(bitness, &inst, inst.IP())
		switch {
		case err != nil:
			r.problem("%#x: %x: %s: %v", inst.IP(), data, &inst, err)
		case !bytes.Equal(got, data):
			r.problem("%#x: %x: %s re-encodes as %x", inst.IP(), data, &inst, got)
		}

		// x86asm treats a leading 9B as a separate
		// WAIT and does not decode VEX or EVEX.
		if inst.Encoding() != x86.EncodingKindLegacy || (data[0] == 0x9b && len(data) > 1) {
			continue
		}

		ref, err := x86asm.Decode(data, bitness)
		if err != nil {
			continue
		}

		r.Compared++
		if ref.Len != len(data) {
			r.problem("%#x: %x: %s is %d bytes, x86asm decodes %d bytes as %s", inst.IP(), data, &inst, len(data), ref.Len, ref)
		}
	}

	return r, nil
}

// verifyMain checks binary files of machine
// code.
func verifyMain(ctx context.Context, w io.Writer, args []string) error {
	flags := flag.NewFlagSet("verify", flag.ExitOnError)

	var help bool
	var jobs int
	flags.BoolVar(&help, "h", false, "Show this message and exit.")
	flags.IntVar(&jobs, "j", runtime.GOMAXPROCS(0), "Number of files to check at once.")
	s := addSettings(flags)

	flags.Usage = func() {
		log.Printf("Usage:\n  %s %s [OPTIONS] FILE...\n\n", program, flags.Name())
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

	names := flags.Args()
	if len(names) == 0 {
		flags.Usage()
	}

	if jobs < 1 {
		return fmt.Errorf("invalid -j %d: must be at least 1", jobs)
	}

	results := make([]*verifyResult, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			code, err := os.ReadFile(name)
			if err != nil {
				return fmt.Errorf("failed to read %s: %v", name, err)
			}

			r, err := verify(ctx, name, code, s.bitness, s.ip, s.decoderOptions)
			if err != nil {
				return fmt.Errorf("failed to verify %s: %w", name, err)
			}

			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	problems := 0
	for _, r := range results {
		fmt.Fprintf(w, "%s: %d instructions, %d invalid, %d compared with x86asm, %d problems\n",
			r.Name, r.Instructions, r.Invalid, r.Compared, r.NumProblems)
		for _, p := range r.Problems {
			fmt.Fprintf(w, "\t%s\n", p)
		}

		if r.NumProblems > len(r.Problems) {
			fmt.Fprintf(w, "\t(%d more)\n", r.NumProblems-len(r.Problems))
		}

		problems += r.NumProblems
	}

	if problems > 0 {
		return fmt.Errorf("found %d problems", problems)
	}

	return nil
}
