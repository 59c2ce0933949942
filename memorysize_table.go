// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// MemorySize classifies the data a memory operand
// refers to.
//
//go:generate stringer -type=MemorySize -trimprefix=MemorySize
type MemorySize uint8

const (
	MemorySizeUnknown MemorySize = iota
	MemorySizeUInt8
	MemorySizeUInt16
	MemorySizeUInt32
	MemorySizeUInt64
	MemorySizeUInt128
	MemorySizeUInt256
	MemorySizeUInt512
	MemorySizeInt8
	MemorySizeInt16
	MemorySizeInt32
	MemorySizeInt64
	MemorySizeFloat16
	MemorySizeFloat32
	MemorySizeFloat64
	MemorySizeFloat80
	MemorySizeBcd
	MemorySizeSegPtr16
	MemorySizeSegPtr32
	MemorySizeSegPtr64
	MemorySizeFword6
	MemorySizeFword10
	MemorySizeBound16_WordWord
	MemorySizeBound32_DwordDword
	MemorySizeBnd32
	MemorySizeBnd64
	MemorySizeFpuEnv14
	MemorySizeFpuEnv28
	MemorySizeFpuState94
	MemorySizeFpuState108
	MemorySizeFxsave_512Byte
	MemorySizeFxsave64_512Byte
	MemorySizeXsave
	MemorySizeXsave64
	MemorySizePacked64_Int32
	MemorySizePacked64_Float32
	MemorySizePacked128_UInt8
	MemorySizePacked128_Int8
	MemorySizePacked128_UInt16
	MemorySizePacked128_Int16
	MemorySizePacked128_UInt32
	MemorySizePacked128_Int32
	MemorySizePacked128_UInt64
	MemorySizePacked128_Int64
	MemorySizePacked128_Float16
	MemorySizePacked128_Float32
	MemorySizePacked128_Float64
	MemorySizePacked256_UInt8
	MemorySizePacked256_Int8
	MemorySizePacked256_UInt16
	MemorySizePacked256_Int16
	MemorySizePacked256_UInt32
	MemorySizePacked256_Int32
	MemorySizePacked256_UInt64
	MemorySizePacked256_Int64
	MemorySizePacked256_Float16
	MemorySizePacked256_Float32
	MemorySizePacked256_Float64
	MemorySizePacked512_UInt8
	MemorySizePacked512_Int8
	MemorySizePacked512_UInt16
	MemorySizePacked512_Int16
	MemorySizePacked512_UInt32
	MemorySizePacked512_Int32
	MemorySizePacked512_UInt64
	MemorySizePacked512_Int64
	MemorySizePacked512_Float16
	MemorySizePacked512_Float32
	MemorySizePacked512_Float64
	MemorySizeBroadcast128_UInt32
	MemorySizeBroadcast128_Int32
	MemorySizeBroadcast128_Float32
	MemorySizeBroadcast128_UInt64
	MemorySizeBroadcast128_Int64
	MemorySizeBroadcast128_Float64
	MemorySizeBroadcast256_UInt32
	MemorySizeBroadcast256_Int32
	MemorySizeBroadcast256_Float32
	MemorySizeBroadcast256_UInt64
	MemorySizeBroadcast256_Int64
	MemorySizeBroadcast256_Float64
	MemorySizeBroadcast512_UInt32
	MemorySizeBroadcast512_Int32
	MemorySizeBroadcast512_Float32
	MemorySizeBroadcast512_UInt64
	MemorySizeBroadcast512_Int64
	MemorySizeBroadcast512_Float64
)

// NumberOfMemorySizes is the number of MemorySize values.
const NumberOfMemorySizes = 87

var memorySizes = [NumberOfMemorySizes]memorySizeInfo{
	MemorySizeUnknown:              {size: 0, element: MemorySizeUnknown},
	MemorySizeUInt8:                {size: 1, element: MemorySizeUInt8},
	MemorySizeUInt16:               {size: 2, element: MemorySizeUInt16},
	MemorySizeUInt32:               {size: 4, element: MemorySizeUInt32},
	MemorySizeUInt64:               {size: 8, element: MemorySizeUInt64},
	MemorySizeUInt128:              {size: 16, element: MemorySizeUInt128},
	MemorySizeUInt256:              {size: 32, element: MemorySizeUInt256},
	MemorySizeUInt512:              {size: 64, element: MemorySizeUInt512},
	MemorySizeInt8:                 {size: 1, element: MemorySizeInt8},
	MemorySizeInt16:                {size: 2, element: MemorySizeInt16},
	MemorySizeInt32:                {size: 4, element: MemorySizeInt32},
	MemorySizeInt64:                {size: 8, element: MemorySizeInt64},
	MemorySizeFloat16:              {size: 2, element: MemorySizeFloat16},
	MemorySizeFloat32:              {size: 4, element: MemorySizeFloat32},
	MemorySizeFloat64:              {size: 8, element: MemorySizeFloat64},
	MemorySizeFloat80:              {size: 10, element: MemorySizeFloat80},
	MemorySizeBcd:                  {size: 10, element: MemorySizeBcd},
	MemorySizeSegPtr16:             {size: 4, element: MemorySizeSegPtr16},
	MemorySizeSegPtr32:             {size: 6, element: MemorySizeSegPtr32},
	MemorySizeSegPtr64:             {size: 10, element: MemorySizeSegPtr64},
	MemorySizeFword6:               {size: 6, element: MemorySizeFword6},
	MemorySizeFword10:              {size: 10, element: MemorySizeFword10},
	MemorySizeBound16_WordWord:     {size: 4, element: MemorySizeBound16_WordWord},
	MemorySizeBound32_DwordDword:   {size: 8, element: MemorySizeBound32_DwordDword},
	MemorySizeBnd32:                {size: 8, element: MemorySizeBnd32},
	MemorySizeBnd64:                {size: 16, element: MemorySizeBnd64},
	MemorySizeFpuEnv14:             {size: 14, element: MemorySizeFpuEnv14},
	MemorySizeFpuEnv28:             {size: 28, element: MemorySizeFpuEnv28},
	MemorySizeFpuState94:           {size: 94, element: MemorySizeFpuState94},
	MemorySizeFpuState108:          {size: 108, element: MemorySizeFpuState108},
	MemorySizeFxsave_512Byte:       {size: 512, element: MemorySizeFxsave_512Byte},
	MemorySizeFxsave64_512Byte:     {size: 512, element: MemorySizeFxsave64_512Byte},
	MemorySizeXsave:                {size: 0, element: MemorySizeXsave},
	MemorySizeXsave64:              {size: 0, element: MemorySizeXsave64},
	MemorySizePacked64_Int32:       {size: 8, element: MemorySizeInt32, packed: true},
	MemorySizePacked64_Float32:     {size: 8, element: MemorySizeFloat32, packed: true},
	MemorySizePacked128_UInt8:      {size: 16, element: MemorySizeUInt8, packed: true},
	MemorySizePacked128_Int8:       {size: 16, element: MemorySizeInt8, packed: true},
	MemorySizePacked128_UInt16:     {size: 16, element: MemorySizeUInt16, packed: true},
	MemorySizePacked128_Int16:      {size: 16, element: MemorySizeInt16, packed: true},
	MemorySizePacked128_UInt32:     {size: 16, element: MemorySizeUInt32, packed: true},
	MemorySizePacked128_Int32:      {size: 16, element: MemorySizeInt32, packed: true},
	MemorySizePacked128_UInt64:     {size: 16, element: MemorySizeUInt64, packed: true},
	MemorySizePacked128_Int64:      {size: 16, element: MemorySizeInt64, packed: true},
	MemorySizePacked128_Float16:    {size: 16, element: MemorySizeFloat16, packed: true},
	MemorySizePacked128_Float32:    {size: 16, element: MemorySizeFloat32, packed: true},
	MemorySizePacked128_Float64:    {size: 16, element: MemorySizeFloat64, packed: true},
	MemorySizePacked256_UInt8:      {size: 32, element: MemorySizeUInt8, packed: true},
	MemorySizePacked256_Int8:       {size: 32, element: MemorySizeInt8, packed: true},
	MemorySizePacked256_UInt16:     {size: 32, element: MemorySizeUInt16, packed: true},
	MemorySizePacked256_Int16:      {size: 32, element: MemorySizeInt16, packed: true},
	MemorySizePacked256_UInt32:     {size: 32, element: MemorySizeUInt32, packed: true},
	MemorySizePacked256_Int32:      {size: 32, element: MemorySizeInt32, packed: true},
	MemorySizePacked256_UInt64:     {size: 32, element: MemorySizeUInt64, packed: true},
	MemorySizePacked256_Int64:      {size: 32, element: MemorySizeInt64, packed: true},
	MemorySizePacked256_Float16:    {size: 32, element: MemorySizeFloat16, packed: true},
	MemorySizePacked256_Float32:    {size: 32, element: MemorySizeFloat32, packed: true},
	MemorySizePacked256_Float64:    {size: 32, element: MemorySizeFloat64, packed: true},
	MemorySizePacked512_UInt8:      {size: 64, element: MemorySizeUInt8, packed: true},
	MemorySizePacked512_Int8:       {size: 64, element: MemorySizeInt8, packed: true},
	MemorySizePacked512_UInt16:     {size: 64, element: MemorySizeUInt16, packed: true},
	MemorySizePacked512_Int16:      {size: 64, element: MemorySizeInt16, packed: true},
	MemorySizePacked512_UInt32:     {size: 64, element: MemorySizeUInt32, packed: true},
	MemorySizePacked512_Int32:      {size: 64, element: MemorySizeInt32, packed: true},
	MemorySizePacked512_UInt64:     {size: 64, element: MemorySizeUInt64, packed: true},
	MemorySizePacked512_Int64:      {size: 64, element: MemorySizeInt64, packed: true},
	MemorySizePacked512_Float16:    {size: 64, element: MemorySizeFloat16, packed: true},
	MemorySizePacked512_Float32:    {size: 64, element: MemorySizeFloat32, packed: true},
	MemorySizePacked512_Float64:    {size: 64, element: MemorySizeFloat64, packed: true},
	MemorySizeBroadcast128_UInt32:  {size: 4, element: MemorySizeUInt32, broadcast: true},
	MemorySizeBroadcast128_Int32:   {size: 4, element: MemorySizeInt32, broadcast: true},
	MemorySizeBroadcast128_Float32: {size: 4, element: MemorySizeFloat32, broadcast: true},
	MemorySizeBroadcast128_UInt64:  {size: 8, element: MemorySizeUInt64, broadcast: true},
	MemorySizeBroadcast128_Int64:   {size: 8, element: MemorySizeInt64, broadcast: true},
	MemorySizeBroadcast128_Float64: {size: 8, element: MemorySizeFloat64, broadcast: true},
	MemorySizeBroadcast256_UInt32:  {size: 4, element: MemorySizeUInt32, broadcast: true},
	MemorySizeBroadcast256_Int32:   {size: 4, element: MemorySizeInt32, broadcast: true},
	MemorySizeBroadcast256_Float32: {size: 4, element: MemorySizeFloat32, broadcast: true},
	MemorySizeBroadcast256_UInt64:  {size: 8, element: MemorySizeUInt64, broadcast: true},
	MemorySizeBroadcast256_Int64:   {size: 8, element: MemorySizeInt64, broadcast: true},
	MemorySizeBroadcast256_Float64: {size: 8, element: MemorySizeFloat64, broadcast: true},
	MemorySizeBroadcast512_UInt32:  {size: 4, element: MemorySizeUInt32, broadcast: true},
	MemorySizeBroadcast512_Int32:   {size: 4, element: MemorySizeInt32, broadcast: true},
	MemorySizeBroadcast512_Float32: {size: 4, element: MemorySizeFloat32, broadcast: true},
	MemorySizeBroadcast512_UInt64:  {size: 8, element: MemorySizeUInt64, broadcast: true},
	MemorySizeBroadcast512_Int64:   {size: 8, element: MemorySizeInt64, broadcast: true},
	MemorySizeBroadcast512_Float64: {size: 8, element: MemorySizeFloat64, broadcast: true},
}
