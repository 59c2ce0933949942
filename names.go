// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"strings"
	"sync"
)

// foldedNames maps the lower-case form of each
// value's name to the value.
func foldedNames[T ~uint8 | ~uint16](n T, first T, name func(T) string) map[string]T {
	m := make(map[string]T, int(n))
	for v := first; v < n; v++ {
		m[strings.ToLower(name(v))] = v
	}

	return m
}

var (
	codesByName = sync.OnceValue(func() map[string]Code {
		return foldedNames(NumberOfCodeValues, 0, Code.String)
	})

	mnemonicsByName = sync.OnceValue(func() map[string]Mnemonic {
		return foldedNames(NumberOfMnemonics, 0, Mnemonic.String)
	})

	registersByName = sync.OnceValue(func() map[string]Register {
		return foldedNames(NumberOfRegisters, 1, Register.String)
	})
)

// ParseCode returns the code with the given
// name, such as "Add_rm64_r64". Case is ignored.
func ParseCode(name string) (Code, error) {
	c, ok := codesByName()[strings.ToLower(name)]
	if !ok {
		return INVALID, fmt.Errorf("unknown code %q", name)
	}

	return c, nil
}

// ParseMnemonic returns the mnemonic with the
// given name, such as "Vaddps". Case is ignored.
func ParseMnemonic(name string) (Mnemonic, error) {
	m, ok := mnemonicsByName()[strings.ToLower(name)]
	if !ok {
		return MnemonicINVALID, fmt.Errorf("unknown mnemonic %q", name)
	}

	return m, nil
}

// ParseRegister returns the register with the
// given name, such as "rax" or "XMM12". Case is
// ignored.
func ParseRegister(name string) (Register, error) {
	r, ok := registersByName()[strings.ToLower(name)]
	if !ok {
		return RegisterNone, fmt.Errorf("unknown register %q", name)
	}

	return r, nil
}
