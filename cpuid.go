// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// CpuidFeature names a processor capability that
// must be present for an instruction to be legal.
//
//go:generate stringer -type=CpuidFeature -trimprefix=Cpuid
type CpuidFeature uint8

const (
	CpuidINTEL8086 CpuidFeature = iota
	CpuidADX
	CpuidAES
	CpuidAVX
	CpuidAVX2
	CpuidAVX512BW
	CpuidAVX512DQ
	CpuidAVX512F
	CpuidAVX512VL
	CpuidBMI1
	CpuidBMI2
	CpuidCET_IBT
	CpuidCL1INVMB
	CpuidCLFSH
	CpuidCMOV
	CpuidCMPXCHG16B
	CpuidCPUID
	CpuidCX8
	CpuidFMA
	CpuidFPU
	CpuidFPU387
	CpuidFSGSBASE
	CpuidFXSR
	CpuidHLE
	CpuidIA64
	CpuidINTEL186
	CpuidINTEL286
	CpuidINTEL286_ONLY
	CpuidINTEL287
	CpuidINTEL287_XL
	CpuidINTEL386
	CpuidINTEL386_486_ONLY
	CpuidINTEL386_A0_ONLY
	CpuidINTEL386_ONLY
	CpuidINTEL486
	CpuidINTEL486_A_ONLY
	CpuidINTEL686
	CpuidINTEL8086_ONLY
	CpuidINTEL8087
	CpuidINVPCID
	CpuidKNC
	CpuidLZCNT
	CpuidMMX
	CpuidMONITOR
	CpuidMOVBE
	CpuidMPX
	CpuidMSR
	CpuidMULTIBYTENOP
	CpuidPAUSE
	CpuidPCLMULQDQ
	CpuidPKU
	CpuidPOPCNT
	CpuidPREFETCHW
	CpuidRDPID
	CpuidRDRAND
	CpuidRDSEED
	CpuidRDTSCP
	CpuidRTM
	CpuidSEP
	CpuidSMAP
	CpuidSMX
	CpuidSSE
	CpuidSSE2
	CpuidSSE3
	CpuidSSE4_1
	CpuidSSE4_2
	CpuidSSSE3
	CpuidSYSCALL
	CpuidTBM
	CpuidTSC
	CpuidUMOV
	CpuidVMX
	CpuidWBNOINVD
	CpuidX64
	CpuidXOP
	CpuidXSAVE
	CpuidXSAVEOPT
)

// NumberOfCpuidFeatures is the number of CpuidFeature values.
const NumberOfCpuidFeatures = 77
