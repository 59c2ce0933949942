// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

import (
	"fmt"
)

// memorySizeInfo describes a MemorySize.
//
// For scalars, element is the memory size
// itself. For packed and broadcast sizes, it is
// the size of one element. The size of a
// broadcast is the size of the element that is
// read.
type memorySizeInfo struct {
	size      uint16
	element   MemorySize
	broadcast bool
	packed    bool
}

func (m MemorySize) info() *memorySizeInfo {
	if m >= NumberOfMemorySizes {
		panic(fmt.Sprintf("x86: invalid memory size %d", m))
	}

	return &memorySizes[m]
}

// Size returns the number of bytes accessed,
// or zero if this is unknown or variable.
func (m MemorySize) Size() int {
	return int(m.info().size)
}

// ElementType returns the memory size of one
// element. For scalars this is m.
func (m MemorySize) ElementType() MemorySize {
	return m.info().element
}

// ElementSize returns the size in bytes of one
// element.
func (m MemorySize) ElementSize() int {
	return m.ElementType().Size()
}

// IsBroadcast returns whether m is a single
// element broadcast to every lane.
func (m MemorySize) IsBroadcast() bool {
	return m.info().broadcast
}

// IsPacked returns whether m holds more than
// one element.
func (m MemorySize) IsPacked() bool {
	return m.info().packed
}

// IsSigned returns whether the elements are
// signed integers or floating-point values.
func (m MemorySize) IsSigned() bool {
	e := m.ElementType()
	return MemorySizeInt8 <= e && e <= MemorySizeFloat80
}

// packedOf returns the packed memory size with
// the given total size in bytes and the given
// element type, or MemorySizeUnknown.
func packedOf(size int, element MemorySize) MemorySize {
	for m := MemorySize(0); m < NumberOfMemorySizes; m++ {
		info := &memorySizes[m]
		if info.packed && int(info.size) == size && info.element == element {
			return m
		}
	}

	return MemorySizeUnknown
}

// broadcastOf returns the broadcast memory size
// for a vector of the given size in bytes and
// the given element type, or MemorySizeUnknown.
func broadcastOf(vectorSize int, element MemorySize) MemorySize {
	for m := MemorySize(0); m < NumberOfMemorySizes; m++ {
		info := &memorySizes[m]
		if info.broadcast && info.element == element && memorySizeVector(m) == vectorSize {
			return m
		}
	}

	return MemorySizeUnknown
}

// memorySizeVector returns the vector size in
// bytes named by a broadcast memory size.
func memorySizeVector(m MemorySize) int {
	switch {
	case MemorySizeBroadcast128_UInt32 <= m && m <= MemorySizeBroadcast128_Float64:
		return 16
	case MemorySizeBroadcast256_UInt32 <= m && m <= MemorySizeBroadcast256_Float64:
		return 32
	case MemorySizeBroadcast512_UInt32 <= m && m <= MemorySizeBroadcast512_Float64:
		return 64
	}

	return 0
}

// mvexMemorySize returns the memory accessed by
// an MVEX instruction whose full operand is m,
// after the given memory conversion.
func mvexMemorySize(m MemorySize, conv MvexRegMemConv) MemorySize {
	elem := m.ElementType()
	switch conv {
	case MvexRegMemConvMemConvBroadcast1:
		return broadcastOf(64, elem)
	case MvexRegMemConvMemConvBroadcast4:
		return packedOf(4*elem.Size(), elem)
	case MvexRegMemConvMemConvFloat16:
		return MemorySizePacked256_Float16
	case MvexRegMemConvMemConvUint8:
		return MemorySizePacked128_UInt8
	case MvexRegMemConvMemConvSint8:
		return MemorySizePacked128_Int8
	case MvexRegMemConvMemConvUint16:
		return MemorySizePacked256_UInt16
	case MvexRegMemConvMemConvSint16:
		return MemorySizePacked256_Int16
	}

	return m
}

func (m MemorySize) isFloat() bool {
	return MemorySizeFloat16 <= m && m <= MemorySizeFloat80
}
