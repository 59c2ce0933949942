// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
	"slices"
	"sync"

	"firefly-os.dev/x86/internal/opcode"
	"firefly-os.dev/x86/internal/optable"
)

// The decode trees, one per opcode map.
const (
	rootLegacy = 0  // Maps 1-byte, 0F, 0F38 and 0F3A.
	rootVEX    = 4  // Maps 0F, 0F38 and 0F3A.
	rootEVEX   = 7  // Maps 0F, 0F38 and 0F3A.
	rootXOP    = 10 // Maps 08, 09 and 0A.
	rootMVEX   = 13 // Maps 0F, 0F38 and 0F3A.
	numRoots   = 16
)

// rootOf returns the tree for an encoding's
// opcode map, or -1 if the map has no tree.
func rootOf(kind opcode.Kind, m uint8) int {
	var base, first, last int
	switch kind {
	case opcode.KindLegacy:
		base, first, last = rootLegacy, 0, 3
	case opcode.KindVEX:
		base, first, last = rootVEX, 1, 3
	case opcode.KindEVEX:
		base, first, last = rootEVEX, 1, 3
	case opcode.KindXOP:
		base, first, last = rootXOP, 8, 10
	case opcode.KindMVEX:
		base, first, last = rootMVEX, 1, 3
	default:
		return -1
	}

	if int(m) < first || last < int(m) {
		return -1
	}

	return base + int(m) - first
}

func b2k(b bool) int {
	if b {
		return 1
	}

	return 0
}

// Dispatch keys for the operand and address
// size fields.
func sizeKey(bits int) int {
	switch bits {
	case 16:
		return optable.Size16
	case 32:
		return optable.Size32
	default:
		return optable.Size64
	}
}

// sortSteps puts steps in dispatch order.
func sortSteps(steps []optable.Step) {
	slices.SortStableFunc(steps, func(a, b optable.Step) int {
		if a.Field != b.Field {
			return int(a.Field) - int(b.Field)
		}

		return int(a.Param) - int(b.Param)
	})
}

// optionSteps returns the decoder option steps
// on the paths to a definition.
func optionSteps(def *opcodeDef, long bool) []optable.Step {
	var steps []optable.Step
	for i := 0; i < numDecoderOptions; i++ {
		o := DecoderOptions(1) << i
		switch {
		case def.options&o != 0:
			steps = append(steps, optable.Option(uint8(i), true))
		case def.notOptions&o != 0:
			steps = append(steps, optable.Option(uint8(i), false))
		case long && def.notOptions64&o != 0:
			steps = append(steps, optable.Option(uint8(i), false))
		case long && o == DecoderAMD && def.flags&flagAMD64 != 0:
			steps = append(steps, optable.Option(uint8(i), true))
		}
	}

	return steps
}

// withOption returns a copy of the option steps
// that also requires the given option.
func withOption(opts []optable.Step, o DecoderOptions) []optable.Step {
	out := append(slices.Clip(opts), optable.Option(o.bit(), true))
	sortSteps(out)

	return out
}

// defPaths returns the step lists that lead to
// a definition in the decode tree, in either
// the 16/32-bit modes or the 64-bit mode.
func defPaths(def *opcodeDef, info *codeInfo, long bool) [][]optable.Step {
	enc := info.enc
	kind := enc.Kind()
	opts := optionSteps(def, long)

	var rest []optable.Step
	if len(enc.PrefixOpcodes) > 0 {
		rest = append(rest, optable.On(optable.FieldPrefixOpcode, 1))
	}

	rest = append(rest, optable.On(optable.FieldMode64, b2k(long)))

	// Mandatory prefix.
	if kind != opcode.KindLegacy {
		rest = append(rest, optable.On(optable.FieldMandatoryPrefix, int(enc.VEXpp)))
	} else {
		key := -1
		for _, p := range enc.MandatoryPrefixes {
			switch p {
			case opcode.PrefixOperandSize:
				key = optable.Prefix66
			case opcode.PrefixRepeat:
				key = optable.PrefixF3
			case opcode.PrefixRepeatNot:
				key = optable.PrefixF2
			}
		}

		switch {
		case key >= 0:
			rest = append(rest, optable.On(optable.FieldMandatoryPrefix, key))
		case enc.NoVEXPrefixes:
			rest = append(rest, optable.On(optable.FieldMandatoryPrefix, optable.PrefixNone))
		case enc.NoRepPrefixes:
			rest = append(rest, optable.On(optable.FieldMandatoryPrefix, optable.PrefixNone, optable.Prefix66))
		}
	}

	// ModR/M.
	fixedRM := -1
	if modrm, ok := enc.FixedModRM(); ok {
		rest = append(rest, optable.On(optable.FieldModRMReg, int(modrm.Reg())))
		rest = append(rest, optable.On(optable.FieldModRMMod, b2k(modrm.IsRegister())))
		if enc.StackIndex != enc.OpcodeByteIndex()+2 {
			fixedRM = int(modrm.RM())
		}
	} else {
		if enc.ModRMreg != 0 {
			rest = append(rest, optable.On(optable.FieldModRMReg, int(enc.ModRMreg-1)))
		}

		mod := -1
		switch {
		case enc.ModRMmod == 4:
			mod = optable.ModRegister
		case enc.ModRMmod == 5:
			mod = optable.ModMemory
		case info.hasLoc(locMem):
			mod = optable.ModMemory
		case info.hasLoc(locRMReg) && def.flags&flagModReg == 0:
			mod = optable.ModRegister
		}

		if mod >= 0 {
			rest = append(rest, optable.On(optable.FieldModRMMod, mod))
		}

		if enc.ModRMrm != 0 {
			fixedRM = int(enc.ModRMrm - 1)
		}
	}

	if fixedRM >= 0 {
		rest = append(rest, optable.On(optable.FieldModRMRM, fixedRM))
	}

	if kind != opcode.KindLegacy {
		if !enc.VEX_WIG && !(enc.VEX_WIG32 && !long) {
			rest = append(rest, optable.On(optable.FieldW, b2k(enc.VEX_W)))
		}

		if kind != opcode.KindMVEX && !enc.VEX_LIG {
			l := optable.L128
			switch {
			case enc.EVEX_Lp:
				l = optable.L512
			case enc.VEX_L:
				l = optable.L256
			}

			rest = append(rest, optable.On(optable.FieldL, l))
		}
	} else {
		switch enc.OperandSize {
		case 16:
			rest = append(rest, optable.On(optable.FieldOperandSize, optable.Size16))
		case 32:
			if long && (def.flags&flagWIgnored != 0 || enc.Default64) {
				rest = append(rest, optable.On(optable.FieldOperandSize, optable.Size32, optable.Size64))
			} else {
				rest = append(rest, optable.On(optable.FieldOperandSize, optable.Size32))
			}
		case 64:
			switch {
			case enc.Force64:
			case enc.Default64:
				rest = append(rest, optable.On(optable.FieldOperandSize, optable.Size32, optable.Size64))
			default:
				rest = append(rest, optable.On(optable.FieldOperandSize, optable.Size64))
			}
		}
	}

	switch {
	case enc.AddressSize != 0:
		rest = append(rest, optable.On(optable.FieldAddressSize, sizeKey(int(enc.AddressSize))))
	case def.flags&flagMPX != 0:
		rest = append(rest, optable.On(optable.FieldAddressSize, optable.Size32, optable.Size64))
	}

	paths := [][]optable.Step{append(slices.Clip(opts), rest...)}
	if def.flags&flagMPX != 0 && !long {
		// MPX instructions are also decoded with
		// 16-bit addressing, if asked.
		path := withOption(opts, DecoderMPX)
		for _, s := range rest {
			if s.Field != optable.FieldAddressSize {
				path = append(path, s)
			}
		}

		paths = append(paths, append(path, optable.On(optable.FieldAddressSize, optable.Size16)))
	}

	if def.flags&flagReservedNop != 0 {
		paths = append(paths, append(withOption(opts, DecoderForceReservedNop), rest...))
	}

	return paths
}

// hasLoc returns whether any operand is
// encoded at loc.
func (c *codeInfo) hasLoc(loc operandLoc) bool {
	for _, op := range c.ops {
		if op.loc == loc {
			return true
		}
	}

	return false
}

// slot is an opcode byte a definition occupies,
// plus any extra steps to reach it.
type slot struct {
	opcode byte
	extra  []optable.Step
}

func defSlots(info *codeInfo, long bool) []slot {
	enc := info.enc
	base := enc.OpcodeByte()
	if enc.RegisterModifier == 0 || enc.RegisterModifier != enc.OpcodeByteIndex()+1 {
		return []slot{{opcode: base}}
	}

	slots := make([]slot, 8)
	for i := range slots {
		slots[i].opcode = base + byte(i)
	}

	// 90 is NOP unless REX.B selects R8.
	if enc.Kind() == opcode.KindLegacy && enc.Map() == opcode.Map1Byte && base == 0x90 {
		if !long {
			return slots[1:]
		}

		slots[0].extra = []optable.Step{optable.On(optable.FieldRexB, 1)}
	}

	return slots
}

// decodable returns whether the decode tree
// includes the code. Popw_CS is handled by the
// decoder directly, as 0F is otherwise a map
// escape.
func decodable(code Code) bool {
	return code.info().enc != nil && code != Popw_CS && code.def().modes != modesNone
}

// buildTable builds the decode trees for every
// decodable Code except those excluded.
func buildTable(exclude func(Code) bool) (*optable.Table, error) {
	b := optable.NewBuilder(numRoots)
	for code := Code(0); code < NumberOfCodeValues; code++ {
		if !decodable(code) {
			continue
		}

		def := code.def()
		info := code.info()
		root := rootOf(info.enc.Kind(), info.enc.Map())
		if root < 0 {
			return nil, fmt.Errorf("%s: no decode tree for %s", code, info.enc.Syntax)
		}

		for _, long := range []bool{false, true} {
			if !def.modes.has(64) && long || !def.modes.has(32) && !long {
				continue
			}

			for _, s := range defSlots(info, long) {
				for _, path := range defPaths(def, info, long) {
					steps := append(slices.Clip(path), s.extra...)
					sortSteps(steps)
					if err := b.Add(root, s.opcode, uint32(code), steps...); err != nil {
						return nil, fmt.Errorf("%s: %v", code, err)
					}
				}
			}
		}
	}

	var skip func(uint32) bool
	if exclude != nil {
		skip = func(v uint32) bool { return exclude(Code(v)) }
	}

	return b.Build(skip)
}

// decodeTable returns the decode trees for
// every decodable Code.
var decodeTable = sync.OnceValue(func() *optable.Table {
	t, err := buildTable(nil)
	if err != nil {
		panic("x86: failed to build decode table: " + err.Error())
	}

	return t
})

// TableStats summarises the decoder's tables.
type TableStats struct {
	Roots     int // Dispatch trees, one per opcode map and encoding.
	Nodes     int // Distinct nodes after sharing.
	Terminals int
	Groups    int
	Arrays    int
	Children  int
	Codes     int // Codes reachable by decoding.
	BlobSize  int // Size of the serialised tables.
}

// DecodeTableStats returns the size of the
// decoder's tables.
func DecodeTableStats() (TableStats, error) {
	t := decodeTable()
	blob, err := t.MarshalBinary()
	if err != nil {
		return TableStats{}, err
	}

	s := t.Stats()
	stats := TableStats{
		Roots:     s.Roots,
		Nodes:     s.Nodes,
		Terminals: s.Terminals,
		Groups:    s.Groups,
		Arrays:    s.Arrays,
		Children:  s.Children,
		Codes:     len(t.Values()),
		BlobSize:  len(blob),
	}

	return stats, nil
}

// DecodeTableBlob returns the decoder's tables
// in their serialised form.
func DecodeTableBlob() ([]byte, error) {
	return decodeTable().MarshalBinary()
}

// fwaitOpcodes records the opcode bytes that
// can follow a 9B prefix opcode.
var fwaitOpcodes = sync.OnceValue(func() *[256]bool {
	var ops [256]bool
	for code := Code(0); code < NumberOfCodeValues; code++ {
		if enc := code.info().enc; enc != nil && len(enc.PrefixOpcodes) > 0 {
			ops[enc.Opcode[0]] = true
		}
	}

	return &ops
})

// Packing of the per-Code info words.
const (
	infoCodeMask       = 0xffff
	infoKindShift      = 16
	infoKindMask       = 0x7
	infoFlowShift      = 19
	infoFlowMask       = 0xf
	infoPrivileged     = 1 << 23
	infoProtected      = 1 << 24
	infoStack          = 1 << 25
	infoSaveRestore    = 1 << 26
	infoAccessMask     = 0xfff
	infoRflagsShift    = 12
	infoRflagsMask     = 0xff
	infoCpuidShift     = 20
	infoCpuidMask      = 0xff
	infoWordsPerCode   = 2
	maxAccessPatterns  = infoAccessMask + 1
	maxRflagsPatterns  = infoRflagsMask + 1
	maxCpuidSetEntries = infoCpuidMask + 1
)

// infoTables holds the packed per-Code info
// words and the shared patterns they index.
type infoTables struct {
	data      [infoWordsPerCode * NumberOfCodeValues]uint32
	access    [][]OpAccess
	rflags    []rflagsInfo
	cpuidSets [][]CpuidFeature
}

// intern returns the index of v in *list,
// appending it if necessary.
func intern[T any](list *[]T, v T, equal func(a, b T) bool) int {
	for i, w := range *list {
		if equal(v, w) {
			return i
		}
	}

	*list = append(*list, v)

	return len(*list) - 1
}

var infoData = sync.OnceValue(func() *infoTables {
	t := new(infoTables)
	for code := Code(0); code < NumberOfCodeValues; code++ {
		def := code.def()
		info := code.info()

		word0 := uint32(code)
		word0 |= uint32(info.kind()) << infoKindShift
		word0 |= uint32(def.flow) << infoFlowShift
		if def.flags&flagPrivileged != 0 {
			word0 |= infoPrivileged
		}
		if def.flags&flagProtected != 0 {
			word0 |= infoProtected
		}
		for _, eff := range info.implied {
			if eff.kind == impliedStack {
				word0 |= infoStack
			}
		}
		if def.flags&flagSaveRestore != 0 {
			word0 |= infoSaveRestore
		}

		access := intern(&t.access, info.access, slices.Equal[[]OpAccess])
		rflags := intern(&t.rflags, info.rflags, func(a, b rflagsInfo) bool { return a == b })
		cpuid := intern(&t.cpuidSets, def.cpuid, slices.Equal[[]CpuidFeature])
		if access >= maxAccessPatterns || rflags >= maxRflagsPatterns || cpuid >= maxCpuidSetEntries {
			panic("x86: too many distinct instruction info patterns")
		}

		word1 := uint32(access) | uint32(rflags)<<infoRflagsShift | uint32(cpuid)<<infoCpuidShift

		t.data[infoWordsPerCode*int(code)] = word0
		t.data[infoWordsPerCode*int(code)+1] = word1
	}

	return t
})
