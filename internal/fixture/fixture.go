// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package fixture parses the text files that
// describe decoder test cases.
//
// Each non-empty line that does not start with
// '#' describes one instruction as
// comma-separated fields:
//
//	hex bytes, code, encoding, cpuid features, key=value ...
//
// CPUID features are separated by ';'. The
// final field holds space-separated settings:
//
//	fr, fw, fc, fs, fu    flags read, written, cleared, set, undefined
//	op0 to op4            operand access
//	r, cr, w, cw, rw, rcw registers, separated by ';'
//	rm, crm, wm, cwm, rwm, rcwm, nm
//	                      a memory access, as seg|base|index|scale|displ|size
//	stack                 stack pointer increment
//	decopt                decoder options, separated by ';'
//	ip                    instruction address
//
// Accesses are written as r, cr, w, cw, rw, rcw,
// nm or n, and are reported using the names
// printed by OpAccess.
package fixture

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Case is one instruction.
type Case struct {
	File    string
	Line    int
	Bitness int
	Text    string // The original line.

	Bytes    []byte
	Code     string
	Encoding string
	Cpuid    []string

	IP             uint64
	DecoderOptions []string

	// Flags.
	Read      string
	Written   string
	Cleared   string
	Set       string
	Undefined string

	OpAccess  []string // Only set if any op key is present.
	Registers []Register
	Memory    []Memory

	Stack    int
	HasStack bool
}

func (c *Case) String() string {
	return fmt.Sprintf("%s:%d", c.File, c.Line)
}

// Register is a used register.
type Register struct {
	Name   string
	Access string
}

// Memory is a used memory location.
type Memory struct {
	Segment      string
	Base         string
	Index        string
	Scale        int
	Displacement uint64
	Size         string
	Access       string
}

var accessNames = map[string]string{
	"n":   "None",
	"r":   "Read",
	"cr":  "CondRead",
	"w":   "Write",
	"cw":  "CondWrite",
	"rw":  "ReadWrite",
	"rcw": "ReadCondWrite",
	"nm":  "NoMemAccess",
}

// Access returns the OpAccess name for a short
// access name.
func Access(short string) (string, bool) {
	name, ok := accessNames[short]
	return name, ok
}

// ParseFile parses the named file.
func ParseFile(name string, bitness int) ([]*Case, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	return Parse(f, name, bitness)
}

// Parse parses fixtures from r. The name is
// used in error messages.
func Parse(r io.Reader, name string, bitness int) ([]*Case, error) {
	switch bitness {
	case 16, 32, 64:
	default:
		return nil, fmt.Errorf("%s: invalid bitness %d", name, bitness)
	}

	var cases []*Case
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		c := &Case{File: name, Line: line, Bitness: bitness, Text: text}
		if err := c.parse(text); err != nil {
			return nil, fmt.Errorf("%s:%d: %v", name, line, err)
		}

		cases = append(cases, c)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}

	return cases, nil
}

func (c *Case) parse(text string) error {
	fields := strings.Split(text, ",")
	if len(fields) < 3 || len(fields) > 5 {
		return fmt.Errorf("got %d fields, want 3 to 5", len(fields))
	}

	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	var err error
	c.Bytes, err = hex.DecodeString(strings.ReplaceAll(fields[0], " ", ""))
	if err != nil {
		return fmt.Errorf("invalid bytes %q: %v", fields[0], err)
	}

	if len(c.Bytes) == 0 {
		return fmt.Errorf("no bytes")
	}

	c.Code = fields[1]
	c.Encoding = fields[2]
	if len(fields) > 3 && fields[3] != "" {
		c.Cpuid = strings.Split(fields[3], ";")
	}

	if len(fields) > 4 {
		for _, kv := range strings.Fields(fields[4]) {
			if err := c.setting(kv); err != nil {
				return err
			}
		}
	}

	return nil
}

func (c *Case) setting(kv string) error {
	key, value, ok := strings.Cut(kv, "=")
	if !ok {
		return fmt.Errorf("invalid setting %q: missing '='", kv)
	}

	switch key {
	case "fr":
		c.Read = value
	case "fw":
		c.Written = value
	case "fc":
		c.Cleared = value
	case "fs":
		c.Set = value
	case "fu":
		c.Undefined = value
	case "op0", "op1", "op2", "op3", "op4":
		i := int(key[2] - '0')
		access, ok := Access(value)
		if !ok {
			return fmt.Errorf("invalid setting %q: unknown access %q", kv, value)
		}

		for len(c.OpAccess) <= i {
			c.OpAccess = append(c.OpAccess, "None")
		}

		c.OpAccess[i] = access
	case "r", "cr", "w", "cw", "rw", "rcw":
		access, _ := Access(key)
		for _, name := range strings.Split(value, ";") {
			if name == "" {
				return fmt.Errorf("invalid setting %q: empty register", kv)
			}

			c.Registers = append(c.Registers, Register{Name: name, Access: access})
		}
	case "rm", "crm", "wm", "cwm", "rwm", "rcwm", "nm":
		access, _ := Access(strings.TrimSuffix(key, "m"))
		if key == "nm" {
			access, _ = Access("nm")
		}

		m, err := parseMemory(value)
		if err != nil {
			return fmt.Errorf("invalid setting %q: %v", kv, err)
		}

		m.Access = access
		c.Memory = append(c.Memory, m)
	case "stack":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid setting %q: %v", kv, err)
		}

		c.Stack = n
		c.HasStack = true
	case "decopt":
		c.DecoderOptions = strings.Split(value, ";")
	case "ip":
		ip, err := strconv.ParseUint(value, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid setting %q: %v", kv, err)
		}

		c.IP = ip
	default:
		return fmt.Errorf("unknown setting %q", key)
	}

	return nil
}

// parseMemory parses seg|base|index|scale|displ|size.
func parseMemory(s string) (Memory, error) {
	parts := strings.Split(s, "|")
	if len(parts) != 6 {
		return Memory{}, fmt.Errorf("got %d memory fields, want 6", len(parts))
	}

	scale, err := strconv.Atoi(parts[3])
	if err != nil {
		return Memory{}, fmt.Errorf("invalid scale: %v", err)
	}

	displ, err := parseDisplacement(parts[4])
	if err != nil {
		return Memory{}, err
	}

	m := Memory{
		Segment:      parts[0],
		Base:         parts[1],
		Index:        parts[2],
		Scale:        scale,
		Displacement: displ,
		Size:         parts[5],
	}

	return m, nil
}

// parseDisplacement parses an unsigned value,
// or a negative value that is stored in two's
// complement.
func parseDisplacement(s string) (uint64, error) {
	if strings.HasPrefix(s, "-") {
		v, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid displacement: %v", err)
		}

		return uint64(v), nil
	}

	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid displacement: %v", err)
	}

	return v, nil
}
