// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"firefly-os.dev/x86"
)

// defaultConfig is read if it exists and no
// other config file is named.
const defaultConfig = "x86.toml"

// Config is the contents of a config file.
type Config struct {
	Bitness int      `toml:"bitness"`
	IP      uint64   `toml:"ip"`
	Options []string `toml:"options"`
}

// LoadConfig reads a config file. Unknown keys
// are an error.
func LoadConfig(name string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(name, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("failed to parse %s: unknown key %q", name, undecoded[0].String())
	}

	return &cfg, nil
}

// settings are the options shared by the
// subcommands.
type settings struct {
	config  string
	bitness int
	ip      uint64
	options string

	decoderOptions x86.DecoderOptions
}

func addSettings(flags *flag.FlagSet) *settings {
	s := &settings{bitness: 64}
	flags.StringVar(&s.config, "config", defaultConfig, "Read defaults from the named TOML file.")
	flags.IntVar(&s.bitness, "bitness", 64, "Decode in 16, 32 or 64-bit mode.")
	flags.Func("ip", "Address of the first instruction (default 0).", func(v string) error {
		ip, err := strconv.ParseUint(v, 0, 64)
		if err != nil {
			return err
		}

		s.ip = ip
		return nil
	})
	flags.StringVar(&s.options, "options", "", "Comma-separated decoder options, such as AMD,KNC.")

	return s
}

// load applies the config file to any settings
// not given as flags, then checks the result.
func (s *settings) load(flags *flag.FlagSet) error {
	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := LoadConfig(s.config)
	switch {
	case err == nil:
	case !set["config"] && errors.Is(err, fs.ErrNotExist):
		cfg = new(Config)
	default:
		return err
	}

	if !set["bitness"] && cfg.Bitness != 0 {
		s.bitness = cfg.Bitness
	}

	if !set["ip"] {
		s.ip = cfg.IP
	}

	names := cfg.Options
	if set["options"] {
		names = nil
		if s.options != "" {
			names = strings.Split(s.options, ",")
		}
	}

	switch s.bitness {
	case 16, 32, 64:
	default:
		return fmt.Errorf("invalid bitness %d: must be 16, 32 or 64", s.bitness)
	}

	s.decoderOptions = 0
	for _, name := range names {
		opt, err := x86.ParseDecoderOption(strings.TrimSpace(name))
		if err != nil {
			return err
		}

		s.decoderOptions |= opt
	}

	return nil
}

// parseHex parses machine code written as hex
// bytes. Spaces between bytes are optional.
func parseHex(args []string) ([]byte, error) {
	s := strings.Join(strings.Fields(strings.Join(args, " ")), "")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid machine code: %v", err)
	}

	if len(data) == 0 {
		return nil, errors.New("no machine code")
	}

	return data, nil
}

// readCode returns the machine code named by the
// arguments, or the contents of file if it is
// set.
func readCode(file string, args []string) ([]byte, error) {
	if file == "" {
		return parseHex(args)
	}

	if len(args) != 0 {
		return nil, errors.New("machine code cannot be given as both a file and arguments")
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", file, err)
	}

	return data, nil
}
