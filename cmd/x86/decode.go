// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"

	"firefly-os.dev/x86"
)

// decodeMain prints the instructions in some
// machine code.
func decodeMain(ctx context.Context, w io.Writer, args []string) error {
	flags := flag.NewFlagSet("decode", flag.ExitOnError)

	var help, verbose bool
	var file string
	flags.BoolVar(&help, "h", false, "Show this message and exit.")
	flags.BoolVar(&verbose, "v", false, "Dump each instruction in full.")
	flags.StringVar(&file, "file", "", "Read machine code from the named binary file.")
	s := addSettings(flags)

	flags.Usage = func() {
		log.Printf("Usage:\n  %s %s [OPTIONS] HEX...\n\n", program, flags.Name())
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

	code, err := readCode(file, flags.Args())
	if err != nil {
		return err
	}

	d := x86.NewDecoder(s.bitness, bytes.NewReader(code), s.decoderOptions)
	d.SetIP(s.ip)
	for d.CanDecode() {
		start := d.Position()
		inst := d.Decode()
		writeInstruction(w, s.bitness, &inst, code[start:d.Position()], d.LastError())
		if verbose {
			spew.Fdump(w, inst)
		}
	}

	return nil
}

// writeInstruction prints one line describing
// a decoded instruction.
func writeInstruction(w io.Writer, bitness int, inst *x86.Instruction, code []byte, derr x86.DecoderError) {
	text := inst.String()
	if derr != x86.DecoderErrorNone {
		text = fmt.Sprintf("(bad: %s)", derr)
	}

	fmt.Fprintf(w, "%0*x  %-30s %s\n", bitness/4, inst.IP(), hex.EncodeToString(code), text)
}
