// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package opcode

import (
	"fmt"
)

// TupleType contains an EVEX instruction
// tuple kind, as defined in Intel x86,
// Volume 2A, Section 2.6.5.
type TupleType uint8

const (
	TupleNone TupleType = iota
	TupleFull
	TupleHalf
	TupleFullMem
	Tuple1Scalar
	Tuple1Fixed
	Tuple2
	Tuple4
	Tuple8
	TupleHalfMem
	TupleQuarterMem
	TupleEighthMem
	TupleMem128
	TupleMOVDDUP
)

func (t TupleType) String() string {
	switch t {
	case TupleNone:
		return "None"
	case TupleFull:
		return "Full"
	case TupleHalf:
		return "Half"
	case TupleFullMem:
		return "Full Mem"
	case Tuple1Scalar:
		return "Tuple1 Scalar"
	case Tuple1Fixed:
		return "Tuple1 Fixed"
	case Tuple2:
		return "Tuple2"
	case Tuple4:
		return "Tuple4"
	case Tuple8:
		return "Tuple8"
	case TupleHalfMem:
		return "Half Mem"
	case TupleQuarterMem:
		return "Quarter Mem"
	case TupleEighthMem:
		return "Eighth Mem"
	case TupleMem128:
		return "Mem128"
	case TupleMOVDDUP:
		return "MOVDDUP"
	default:
		return fmt.Sprintf("TupleType(%d)", t)
	}
}

// DisplacementCompression returns the
// value N by which an EVEX instruction's
// 8-bit displacement is scaled, as
// described in Intel x86 manuals,
// Volume 2A, Section 2.7.5.
//
// vectorSize is the operation's vector
// length in bits, w is EVEX.W, dataSize is
// the element size in bits used by the
// scalar tuple types.
func DisplacementCompression(tuple TupleType, vectorSize int, w, broadcast bool, dataSize int) (n int64, err error) {
	var inputSize int64
	if w {
		inputSize = 64
	} else {
		inputSize = 32
	}

	vsize := int64(vectorSize)
	switch tuple {
	case TupleNone:
		return 1, nil
	case TupleFull:
		if broadcast {
			return inputSize / 8, nil
		}

		return vsize / 8, nil
	case TupleHalf:
		if broadcast {
			return inputSize / 8, nil
		}

		return vsize / 16, nil
	case TupleFullMem:
		return vsize / 8, nil
	case Tuple1Scalar:
		if dataSize == 0 {
			return 1, fmt.Errorf("tuple type %s has no data size", tuple)
		}

		return int64(dataSize) / 8, nil
	case Tuple1Fixed:
		return inputSize / 8, nil
	case Tuple2:
		return inputSize / 4, nil
	case Tuple4:
		return inputSize / 2, nil
	case Tuple8:
		return inputSize / 1, nil
	case TupleHalfMem:
		return vsize / 16, nil
	case TupleQuarterMem:
		return vsize / 32, nil
	case TupleEighthMem:
		return vsize / 64, nil
	case TupleMem128:
		return 16, nil
	case TupleMOVDDUP:
		switch vectorSize {
		case 128:
			return 8, nil
		case 256:
			return 32, nil
		case 512:
			return 64, nil
		}

		return 1, fmt.Errorf("tuple type %s has invalid vector size %d", tuple, vectorSize)
	default:
		return 1, fmt.Errorf("unknown tuple type: %s", tuple)
	}
}
