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
	"strings"

	"gopkg.in/yaml.v3"

	"firefly-os.dev/x86"
)

// InstructionReport is the machine-readable
// description of one instruction.
type InstructionReport struct {
	Address     uint64           `yaml:"address"`
	Bytes       string           `yaml:"bytes"`
	Instruction string           `yaml:"instruction"`
	Code        string           `yaml:"code"`
	Encoding    string           `yaml:"encoding"`
	Flow        string           `yaml:"flow"`
	Cpuid       []string         `yaml:"cpuid,omitempty"`
	Operands    []string         `yaml:"operands,omitempty"`
	Registers   []RegisterReport `yaml:"registers,omitempty"`
	Memory      []MemoryReport   `yaml:"memory,omitempty"`
	Flags       FlagsReport      `yaml:"flags"`
}

type RegisterReport struct {
	Register string `yaml:"register"`
	Access   string `yaml:"access"`
}

type MemoryReport struct {
	Segment      string `yaml:"segment"`
	Base         string `yaml:"base,omitempty"`
	Index        string `yaml:"index,omitempty"`
	Scale        int    `yaml:"scale,omitempty"`
	Displacement uint64 `yaml:"displacement"`
	Size         string `yaml:"size"`
	Access       string `yaml:"access"`
	AddressSize  int    `yaml:"address_size"`
}

type FlagsReport struct {
	Read      string `yaml:"read,omitempty"`
	Written   string `yaml:"written,omitempty"`
	Cleared   string `yaml:"cleared,omitempty"`
	Set       string `yaml:"set,omitempty"`
	Undefined string `yaml:"undefined,omitempty"`
}

// flagString returns the flags' letters, or the
// empty string if none are set.
func flagString(r x86.RflagsBits) string {
	if r == 0 {
		return ""
	}

	return r.String()
}

func registerName(r x86.Register) string {
	if r == x86.RegisterNone {
		return ""
	}

	return r.String()
}

// report describes a decoded instruction.
func report(f *x86.InfoFactory, inst *x86.Instruction, code []byte) *InstructionReport {
	info := f.Info(inst, 0)
	r := &InstructionReport{
		Address:     inst.IP(),
		Bytes:       hex.EncodeToString(code),
		Instruction: inst.String(),
		Code:        inst.Code().String(),
		Encoding:    inst.Encoding().String(),
		Flow:        info.FlowControl().String(),
		Flags: FlagsReport{
			Read:      flagString(info.RflagsRead()),
			Written:   flagString(info.RflagsWritten()),
			Cleared:   flagString(info.RflagsCleared()),
			Set:       flagString(info.RflagsSet()),
			Undefined: flagString(info.RflagsUndefined()),
		},
	}

	for _, c := range info.CpuidFeatures() {
		r.Cpuid = append(r.Cpuid, c.String())
	}

	for i := 0; i < inst.OpCount(); i++ {
		r.Operands = append(r.Operands, info.OpAccess(i).String())
	}

	for _, reg := range info.UsedRegisters() {
		r.Registers = append(r.Registers, RegisterReport{
			Register: reg.Register.String(),
			Access:   reg.Access.String(),
		})
	}

	for _, m := range info.UsedMemory() {
		r.Memory = append(r.Memory, MemoryReport{
			Segment:      registerName(m.Segment),
			Base:         registerName(m.Base),
			Index:        registerName(m.Index),
			Scale:        m.Scale,
			Displacement: m.Displacement,
			Size:         m.Size.String(),
			Access:       m.Access.String(),
			AddressSize:  m.AddressSize,
		})
	}

	return r
}

// writeReport prints a report as text.
func writeReport(w io.Writer, bitness int, r *InstructionReport) {
	fmt.Fprintf(w, "%0*x  %-30s %s\n", bitness/4, r.Address, r.Bytes, r.Instruction)
	fmt.Fprintf(w, "\tcode:      %s (%s)\n", r.Code, r.Encoding)
	fmt.Fprintf(w, "\tflow:      %s\n", r.Flow)
	if len(r.Cpuid) > 0 {
		fmt.Fprintf(w, "\tcpuid:     %s\n", strings.Join(r.Cpuid, " "))
	}

	if len(r.Operands) > 0 {
		fmt.Fprintf(w, "\toperands:  %s\n", strings.Join(r.Operands, " "))
	}

	for _, reg := range r.Registers {
		fmt.Fprintf(w, "\tregister:  %s %s\n", reg.Register, reg.Access)
	}

	for _, m := range r.Memory {
		var addr []string
		if m.Base != "" {
			addr = append(addr, m.Base)
		}

		if m.Index != "" {
			addr = append(addr, fmt.Sprintf("%s*%d", m.Index, m.Scale))
		}

		if m.Displacement != 0 || len(addr) == 0 {
			addr = append(addr, fmt.Sprintf("%#x", m.Displacement))
		}

		fmt.Fprintf(w, "\tmemory:    %s %s:[%s] %s\n", m.Size, m.Segment, strings.Join(addr, "+"), m.Access)
	}

	flags := []struct {
		Name string
		Bits string
	}{
		{"read", r.Flags.Read},
		{"written", r.Flags.Written},
		{"cleared", r.Flags.Cleared},
		{"set", r.Flags.Set},
		{"undefined", r.Flags.Undefined},
	}

	for _, f := range flags {
		if f.Bits != "" {
			fmt.Fprintf(w, "\tflags %-10s%s\n", f.Name+":", f.Bits)
		}
	}
}

// infoMain describes the effects of each
// instruction in some machine code.
func infoMain(ctx context.Context, w io.Writer, args []string) error {
	flags := flag.NewFlagSet("info", flag.ExitOnError)

	var help bool
	var file, format string
	flags.BoolVar(&help, "h", false, "Show this message and exit.")
	flags.StringVar(&file, "file", "", "Read machine code from the named binary file.")
	flags.StringVar(&format, "format", "text", "Output format (text or yaml).")
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

	if format != "text" && format != "yaml" {
		return fmt.Errorf("unknown format %q", format)
	}

	if err := s.load(flags); err != nil {
		return err
	}

	code, err := readCode(file, flags.Args())
	if err != nil {
		return err
	}

	var reports []*InstructionReport
	f := x86.NewInfoFactory()
	d := x86.NewDecoder(s.bitness, bytes.NewReader(code), s.decoderOptions)
	d.SetIP(s.ip)
	for d.CanDecode() {
		start := d.Position()
		inst := d.Decode()
		if err := d.LastError(); err != x86.DecoderErrorNone {
			return fmt.Errorf("invalid instruction at %#x: %s", inst.IP(), err)
		}

		reports = append(reports, report(f, &inst, code[start:d.Position()]))
	}

	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("failed to write YAML: %v", err)
		}

		return enc.Close()
	}

	for i, r := range reports {
		if i > 0 {
			// Add a spacer.
			fmt.Fprintln(w)
		}

		writeReport(w, s.bitness, r)
	}

	return nil
}
