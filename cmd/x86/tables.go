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
	"strings"

	"github.com/davecgh/go-spew/spew"

	"firefly-os.dev/x86"
)

// tablesMain prints information about the
// instruction tables.
func tablesMain(ctx context.Context, w io.Writer, args []string) error {
	flags := flag.NewFlagSet("tables", flag.ExitOnError)

	var help, stats, verbose bool
	var blob string
	flags.BoolVar(&help, "h", false, "Show this message and exit.")
	flags.BoolVar(&stats, "stats", false, "Print the size of the decoder's tables.")
	flags.BoolVar(&verbose, "v", false, "Dump each code's details in full.")
	flags.StringVar(&blob, "blob", "", "Write the decoder's tables to the named file.")

	flags.Usage = func() {
		log.Printf("Usage:\n  %s %s [OPTIONS] [MNEMONIC|CODE...]\n\n", program, flags.Name())
		flags.PrintDefaults()
		os.Exit(2)
	}

	err := flags.Parse(args)
	if err != nil || help {
		flags.Usage()
	}

	names := flags.Args()
	if len(names) == 0 && !stats && blob == "" {
		flags.Usage()
	}

	if stats {
		s, err := x86.DecodeTableStats()
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "roots:     %d\n", s.Roots)
		fmt.Fprintf(w, "nodes:     %d\n", s.Nodes)
		fmt.Fprintf(w, "terminals: %d\n", s.Terminals)
		fmt.Fprintf(w, "groups:    %d\n", s.Groups)
		fmt.Fprintf(w, "arrays:    %d\n", s.Arrays)
		fmt.Fprintf(w, "children:  %d\n", s.Children)
		fmt.Fprintf(w, "codes:     %d of %d\n", s.Codes, x86.NumberOfCodeValues)
		fmt.Fprintf(w, "blob:      %d bytes\n", s.BlobSize)
	}

	if blob != "" {
		data, err := x86.DecodeTableBlob()
		if err != nil {
			return err
		}

		err = os.WriteFile(blob, data, 0644)
		if err != nil {
			return fmt.Errorf("failed to write %s: %v", blob, err)
		}
	}

	var buf bytes.Buffer
	for i, name := range names {
		if i > 0 || stats {
			// Add a spacer.
			fmt.Fprintln(&buf)
		}

		codes, err := lookupCodes(name)
		if err != nil {
			return err
		}

		for _, code := range codes {
			oc := code.OpCode()
			if verbose {
				spew.Fdump(&buf, oc)
				continue
			}

			writeOpCode(&buf, oc)
		}
	}

	_, err = w.Write(buf.Bytes())
	return err
}

// lookupCodes returns the codes for a mnemonic,
// or the named code.
func lookupCodes(name string) ([]x86.Code, error) {
	if code, err := x86.ParseCode(name); err == nil {
		return []x86.Code{code}, nil
	}

	m, err := x86.ParseMnemonic(name)
	if err != nil {
		return nil, fmt.Errorf("no instruction data found for %q", name)
	}

	return x86.CodesFor(m), nil
}

func writeOpCode(w io.Writer, oc *x86.OpCodeInfo) {
	fmt.Fprintf(w, "%s:\n", oc.Code)
	fmt.Fprintf(w, "\tencoding: %s %s\n", oc.Encoding, oc.Syntax)
	if len(oc.Operands) > 0 {
		fmt.Fprintf(w, "\toperands: %s\n", strings.Join(oc.Operands, ", "))
	}

	var modes []string
	for _, mode := range oc.Modes {
		modes = append(modes, fmt.Sprint(mode.Bits()))
	}

	fmt.Fprintf(w, "\tmodes:    %s\n", strings.Join(modes, ", "))
	if oc.MemorySize != x86.MemorySizeUnknown {
		fmt.Fprintf(w, "\tmemory:   %s\n", oc.MemorySize)
	}

	if oc.Broadcast != x86.MemorySizeUnknown {
		fmt.Fprintf(w, "\tbcst:     %s\n", oc.Broadcast)
	}

	var prefixes []string
	for _, p := range []struct {
		Name string
		Ok   bool
	}{
		{"lock", oc.CanLock},
		{"rep", oc.CanRep},
		{"repne", oc.CanRepne},
		{"bnd", oc.CanBnd},
		{"xacquire", oc.CanXacquire},
		{"xrelease", oc.CanXrelease},
		{"opmask", oc.CanOpmask},
		{"zeroing", oc.CanZeroing},
		{"broadcast", oc.CanBroadcast},
		{"rounding", oc.CanRounding},
		{"sae", oc.CanSAE},
	} {
		if p.Ok {
			prefixes = append(prefixes, p.Name)
		}
	}

	if len(prefixes) > 0 {
		fmt.Fprintf(w, "\tallows:   %s\n", strings.Join(prefixes, ", "))
	}

	if oc.Options != x86.DecoderNone {
		fmt.Fprintf(w, "\tneeds:    %s\n", oc.Options)
	}

	cpuid := oc.Code.CpuidFeatures()
	if len(cpuid) > 0 {
		var names []string
		for _, c := range cpuid {
			names = append(names, c.String())
		}

		fmt.Fprintf(w, "\tcpuid:    %s\n", strings.Join(names, ", "))
	}
}
