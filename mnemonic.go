// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// Mnemonic names the operation an instruction
// performs, shared by all of its forms.
//
//go:generate stringer -type=Mnemonic -trimprefix=Mnemonic
type Mnemonic uint16

const (
	MnemonicINVALID Mnemonic = iota
	MnemonicDb
	MnemonicDw
	MnemonicDd
	MnemonicDq
	MnemonicZero_bytes
	MnemonicAdd
	MnemonicOr
	MnemonicAdc
	MnemonicSbb
	MnemonicAnd
	MnemonicSub
	MnemonicXor
	MnemonicCmp
	MnemonicPush
	MnemonicPop
	MnemonicDaa
	MnemonicDas
	MnemonicAaa
	MnemonicAas
	MnemonicInc
	MnemonicDec
	MnemonicPushaw
	MnemonicPushad
	MnemonicPopaw
	MnemonicPopad
	MnemonicBound
	MnemonicArpl
	MnemonicMovsxd
	MnemonicImul
	MnemonicInsb
	MnemonicInsw
	MnemonicInsd
	MnemonicOutsb
	MnemonicOutsw
	MnemonicOutsd
	MnemonicJo
	MnemonicJno
	MnemonicJb
	MnemonicJae
	MnemonicJe
	MnemonicJne
	MnemonicJbe
	MnemonicJa
	MnemonicJs
	MnemonicJns
	MnemonicJp
	MnemonicJnp
	MnemonicJl
	MnemonicJge
	MnemonicJle
	MnemonicJg
	MnemonicTest
	MnemonicXchg
	MnemonicMov
	MnemonicLea
	MnemonicNop
	MnemonicPause
	MnemonicCbw
	MnemonicCwde
	MnemonicCdqe
	MnemonicCwd
	MnemonicCdq
	MnemonicCqo
	MnemonicCall
	MnemonicWait
	MnemonicPushf
	MnemonicPushfd
	MnemonicPushfq
	MnemonicPopf
	MnemonicPopfd
	MnemonicPopfq
	MnemonicSahf
	MnemonicLahf
	MnemonicMovsb
	MnemonicMovsw
	MnemonicMovsd
	MnemonicMovsq
	MnemonicCmpsb
	MnemonicCmpsw
	MnemonicCmpsd
	MnemonicCmpsq
	MnemonicStosb
	MnemonicStosw
	MnemonicStosd
	MnemonicStosq
	MnemonicLodsb
	MnemonicLodsw
	MnemonicLodsd
	MnemonicLodsq
	MnemonicScasb
	MnemonicScasw
	MnemonicScasd
	MnemonicScasq
	MnemonicRol
	MnemonicRor
	MnemonicRcl
	MnemonicRcr
	MnemonicShl
	MnemonicShr
	MnemonicSal
	MnemonicSar
	MnemonicRet
	MnemonicLes
	MnemonicLds
	MnemonicXabort
	MnemonicXbegin
	MnemonicEnter
	MnemonicLeave
	MnemonicRetf
	MnemonicInt3
	MnemonicInt
	MnemonicInto
	MnemonicIret
	MnemonicIretd
	MnemonicIretq
	MnemonicAam
	MnemonicAad
	MnemonicSalc
	MnemonicXlatb
	MnemonicLoopne
	MnemonicLoope
	MnemonicLoop
	MnemonicJcxz
	MnemonicJecxz
	MnemonicJrcxz
	MnemonicIn
	MnemonicOut
	MnemonicJmp
	MnemonicInt1
	MnemonicHlt
	MnemonicCmc
	MnemonicNot
	MnemonicNeg
	MnemonicMul
	MnemonicDiv
	MnemonicIdiv
	MnemonicClc
	MnemonicStc
	MnemonicCli
	MnemonicSti
	MnemonicCld
	MnemonicStd
	MnemonicFadd
	MnemonicFiadd
	MnemonicFmul
	MnemonicFimul
	MnemonicFcom
	MnemonicFicom
	MnemonicFcomp
	MnemonicFicomp
	MnemonicFsub
	MnemonicFisub
	MnemonicFsubr
	MnemonicFisubr
	MnemonicFdiv
	MnemonicFidiv
	MnemonicFdivr
	MnemonicFidivr
	MnemonicFaddp
	MnemonicFmulp
	MnemonicFsubrp
	MnemonicFsubp
	MnemonicFdivrp
	MnemonicFdivp
	MnemonicFcompp
	MnemonicFld
	MnemonicFst
	MnemonicFstp
	MnemonicFldenv
	MnemonicFldcw
	MnemonicFnstenv
	MnemonicFstenv
	MnemonicFnstcw
	MnemonicFstcw
	MnemonicFxch
	MnemonicFnop
	MnemonicFchs
	MnemonicFabs
	MnemonicFtst
	MnemonicFxam
	MnemonicFld1
	MnemonicFldl2t
	MnemonicFldl2e
	MnemonicFldpi
	MnemonicFldlg2
	MnemonicFldln2
	MnemonicFldz
	MnemonicF2xm1
	MnemonicFyl2x
	MnemonicFptan
	MnemonicFpatan
	MnemonicFxtract
	MnemonicFprem1
	MnemonicFdecstp
	MnemonicFincstp
	MnemonicFprem
	MnemonicFyl2xp1
	MnemonicFsqrt
	MnemonicFsincos
	MnemonicFrndint
	MnemonicFscale
	MnemonicFsin
	MnemonicFcos
	MnemonicFcmovb
	MnemonicFcmove
	MnemonicFcmovbe
	MnemonicFcmovu
	MnemonicFucompp
	MnemonicFild
	MnemonicFisttp
	MnemonicFist
	MnemonicFistp
	MnemonicFcmovnb
	MnemonicFcmovne
	MnemonicFcmovnbe
	MnemonicFcmovnu
	MnemonicFneni
	MnemonicFeni
	MnemonicFndisi
	MnemonicFdisi
	MnemonicFnclex
	MnemonicFclex
	MnemonicFninit
	MnemonicFinit
	MnemonicFnsetpm
	MnemonicFsetpm
	MnemonicFrstpm
	MnemonicFucomi
	MnemonicFcomi
	MnemonicFrstor
	MnemonicFnsave
	MnemonicFsave
	MnemonicFnstsw
	MnemonicFstsw
	MnemonicFfree
	MnemonicFucom
	MnemonicFucomp
	MnemonicFbld
	MnemonicFbstp
	MnemonicFucomip
	MnemonicFcomip
	MnemonicSldt
	MnemonicStr
	MnemonicLldt
	MnemonicLtr
	MnemonicVerr
	MnemonicVerw
	MnemonicJmpe
	MnemonicSgdt
	MnemonicSidt
	MnemonicLgdt
	MnemonicLidt
	MnemonicSmsw
	MnemonicLmsw
	MnemonicInvlpg
	MnemonicVmcall
	MnemonicVmlaunch
	MnemonicVmresume
	MnemonicVmxoff
	MnemonicMonitor
	MnemonicMwait
	MnemonicClac
	MnemonicStac
	MnemonicXgetbv
	MnemonicXsetbv
	MnemonicXend
	MnemonicXtest
	MnemonicRdpkru
	MnemonicWrpkru
	MnemonicSwapgs
	MnemonicRdtscp
	MnemonicLar
	MnemonicLsl
	MnemonicLoadall
	MnemonicSyscall
	MnemonicClts
	MnemonicSysret
	MnemonicSysretq
	MnemonicInvd
	MnemonicWbinvd
	MnemonicWbnoinvd
	MnemonicCl1invmb
	MnemonicUd2
	MnemonicPrefetchw
	MnemonicMovups
	MnemonicMovupd
	MnemonicMovss
	MnemonicUmov
	MnemonicMovlps
	MnemonicMovhlps
	MnemonicMovlpd
	MnemonicUnpcklps
	MnemonicUnpcklpd
	MnemonicUnpckhps
	MnemonicUnpckhpd
	MnemonicMovhps
	MnemonicMovlhps
	MnemonicMovhpd
	MnemonicPrefetchnta
	MnemonicPrefetcht0
	MnemonicPrefetcht1
	MnemonicPrefetcht2
	MnemonicReservednop
	MnemonicBndcl
	MnemonicBndcu
	MnemonicBndcn
	MnemonicBndmk
	MnemonicBndmov
	MnemonicBndldx
	MnemonicBndstx
	MnemonicEndbr64
	MnemonicEndbr32
	MnemonicMovaps
	MnemonicMovapd
	MnemonicCvtpi2ps
	MnemonicCvtpi2pd
	MnemonicCvtsi2ss
	MnemonicCvtsi2sd
	MnemonicMovntps
	MnemonicMovntpd
	MnemonicCvttps2pi
	MnemonicCvttpd2pi
	MnemonicCvttss2si
	MnemonicCvttsd2si
	MnemonicCvtps2pi
	MnemonicCvtpd2pi
	MnemonicCvtss2si
	MnemonicCvtsd2si
	MnemonicUcomiss
	MnemonicUcomisd
	MnemonicComiss
	MnemonicComisd
	MnemonicWrmsr
	MnemonicRdtsc
	MnemonicRdmsr
	MnemonicRdpmc
	MnemonicSysenter
	MnemonicSysexit
	MnemonicSysexitq
	MnemonicGetsec
	MnemonicCmovo
	MnemonicCmovno
	MnemonicCmovb
	MnemonicCmovae
	MnemonicCmove
	MnemonicCmovne
	MnemonicCmovbe
	MnemonicCmova
	MnemonicCmovs
	MnemonicCmovns
	MnemonicCmovp
	MnemonicCmovnp
	MnemonicCmovl
	MnemonicCmovge
	MnemonicCmovle
	MnemonicCmovg
	MnemonicMovmskps
	MnemonicMovmskpd
	MnemonicSqrtps
	MnemonicSqrtpd
	MnemonicSqrtss
	MnemonicSqrtsd
	MnemonicRsqrtps
	MnemonicRsqrtss
	MnemonicRcpps
	MnemonicRcpss
	MnemonicAndps
	MnemonicAndpd
	MnemonicAndnps
	MnemonicAndnpd
	MnemonicOrps
	MnemonicOrpd
	MnemonicXorps
	MnemonicXorpd
	MnemonicAddps
	MnemonicAddpd
	MnemonicAddss
	MnemonicAddsd
	MnemonicMulps
	MnemonicMulpd
	MnemonicMulss
	MnemonicMulsd
	MnemonicCvtps2pd
	MnemonicCvtpd2ps
	MnemonicCvtss2sd
	MnemonicCvtsd2ss
	MnemonicCvtdq2ps
	MnemonicCvtps2dq
	MnemonicCvttps2dq
	MnemonicSubps
	MnemonicSubpd
	MnemonicSubss
	MnemonicSubsd
	MnemonicMinps
	MnemonicMinpd
	MnemonicMinss
	MnemonicMinsd
	MnemonicDivps
	MnemonicDivpd
	MnemonicDivss
	MnemonicDivsd
	MnemonicMaxps
	MnemonicMaxpd
	MnemonicMaxss
	MnemonicMaxsd
	MnemonicPunpcklbw
	MnemonicPunpcklwd
	MnemonicPunpckldq
	MnemonicPacksswb
	MnemonicPcmpgtb
	MnemonicPcmpgtw
	MnemonicPcmpgtd
	MnemonicPackuswb
	MnemonicPunpckhbw
	MnemonicPunpckhwd
	MnemonicPunpckhdq
	MnemonicPackssdw
	MnemonicPunpcklqdq
	MnemonicPunpckhqdq
	MnemonicMovd
	MnemonicMovq
	MnemonicMovdqa
	MnemonicMovdqu
	MnemonicPshufw
	MnemonicPshufd
	MnemonicPshufhw
	MnemonicPshuflw
	MnemonicPsrlw
	MnemonicPsraw
	MnemonicPsllw
	MnemonicPsrld
	MnemonicPsrad
	MnemonicPslld
	MnemonicPsrlq
	MnemonicPsrldq
	MnemonicPsllq
	MnemonicPslldq
	MnemonicPcmpeqb
	MnemonicPcmpeqw
	MnemonicPcmpeqd
	MnemonicEmms
	MnemonicSeto
	MnemonicSetno
	MnemonicSetb
	MnemonicSetae
	MnemonicSete
	MnemonicSetne
	MnemonicSetbe
	MnemonicSeta
	MnemonicSets
	MnemonicSetns
	MnemonicSetp
	MnemonicSetnp
	MnemonicSetl
	MnemonicSetge
	MnemonicSetle
	MnemonicSetg
	MnemonicCpuid
	MnemonicBt
	MnemonicShld
	MnemonicXbts
	MnemonicIbts
	MnemonicCmpxchg
	MnemonicRsm
	MnemonicBts
	MnemonicShrd
	MnemonicFxsave
	MnemonicFxsave64
	MnemonicFxrstor
	MnemonicFxrstor64
	MnemonicLdmxcsr
	MnemonicStmxcsr
	MnemonicXsave
	MnemonicXsave64
	MnemonicXrstor
	MnemonicXrstor64
	MnemonicXsaveopt
	MnemonicClflush
	MnemonicLfence
	MnemonicMfence
	MnemonicSfence
	MnemonicRdfsbase
	MnemonicRdgsbase
	MnemonicWrfsbase
	MnemonicWrgsbase
	MnemonicLss
	MnemonicLfs
	MnemonicLgs
	MnemonicBtr
	MnemonicMovzx
	MnemonicPopcnt
	MnemonicUd1
	MnemonicBtc
	MnemonicBsf
	MnemonicBsr
	MnemonicTzcnt
	MnemonicLzcnt
	MnemonicMovsx
	MnemonicXadd
	MnemonicCmpps
	MnemonicCmppd
	MnemonicCmpss
	MnemonicMovnti
	MnemonicPinsrw
	MnemonicPextrw
	MnemonicShufps
	MnemonicShufpd
	MnemonicCmpxchg8b
	MnemonicCmpxchg16b
	MnemonicVmptrld
	MnemonicVmclear
	MnemonicVmxon
	MnemonicVmptrst
	MnemonicRdrand
	MnemonicRdseed
	MnemonicRdpid
	MnemonicBswap
	MnemonicPaddq
	MnemonicPmullw
	MnemonicPsubusb
	MnemonicPsubusw
	MnemonicPminub
	MnemonicPand
	MnemonicPaddusb
	MnemonicPaddusw
	MnemonicPmaxub
	MnemonicPandn
	MnemonicPavgb
	MnemonicPavgw
	MnemonicPmulhuw
	MnemonicPmulhw
	MnemonicPsubsb
	MnemonicPsubsw
	MnemonicPminsw
	MnemonicPor
	MnemonicPaddsb
	MnemonicPaddsw
	MnemonicPmaxsw
	MnemonicPxor
	MnemonicPmuludq
	MnemonicPmaddwd
	MnemonicPsadbw
	MnemonicPsubb
	MnemonicPsubw
	MnemonicPsubd
	MnemonicPsubq
	MnemonicPaddb
	MnemonicPaddw
	MnemonicPaddd
	MnemonicPmovmskb
	MnemonicCvttpd2dq
	MnemonicCvtdq2pd
	MnemonicCvtpd2dq
	MnemonicMovntq
	MnemonicMovntdq
	MnemonicMaskmovq
	MnemonicMaskmovdqu
	MnemonicUd0
	MnemonicPshufb
	MnemonicPhaddw
	MnemonicPhaddd
	MnemonicPhaddsw
	MnemonicPmaddubsw
	MnemonicPhsubw
	MnemonicPhsubd
	MnemonicPhsubsw
	MnemonicPsignb
	MnemonicPsignw
	MnemonicPsignd
	MnemonicPmulhrsw
	MnemonicPabsb
	MnemonicPabsw
	MnemonicPabsd
	MnemonicPblendvb
	MnemonicBlendvps
	MnemonicBlendvpd
	MnemonicPtest
	MnemonicPmovsxbw
	MnemonicPmovsxbd
	MnemonicPmovsxbq
	MnemonicPmovsxwd
	MnemonicPmovsxwq
	MnemonicPmovsxdq
	MnemonicPmovzxbw
	MnemonicPmovzxbd
	MnemonicPmovzxbq
	MnemonicPmovzxwd
	MnemonicPmovzxwq
	MnemonicPmovzxdq
	MnemonicPmuldq
	MnemonicPcmpeqq
	MnemonicPackusdw
	MnemonicPcmpgtq
	MnemonicPminsb
	MnemonicPminsd
	MnemonicPminuw
	MnemonicPminud
	MnemonicPmaxsb
	MnemonicPmaxsd
	MnemonicPmaxuw
	MnemonicPmaxud
	MnemonicPmulld
	MnemonicAesenc
	MnemonicAesenclast
	MnemonicAesdec
	MnemonicAesdeclast
	MnemonicMovntdqa
	MnemonicPhminposuw
	MnemonicAesimc
	MnemonicInvept
	MnemonicInvvpid
	MnemonicInvpcid
	MnemonicMovbe
	MnemonicCrc32
	MnemonicAdcx
	MnemonicAdox
	MnemonicRoundps
	MnemonicRoundpd
	MnemonicRoundss
	MnemonicRoundsd
	MnemonicBlendps
	MnemonicBlendpd
	MnemonicPblendw
	MnemonicDpps
	MnemonicDppd
	MnemonicMpsadbw
	MnemonicInsertps
	MnemonicPalignr
	MnemonicPextrb
	MnemonicPextrd
	MnemonicPextrq
	MnemonicExtractps
	MnemonicPinsrb
	MnemonicPinsrd
	MnemonicPinsrq
	MnemonicPclmulqdq
	MnemonicPcmpestrm
	MnemonicPcmpestri
	MnemonicPcmpistrm
	MnemonicPcmpistri
	MnemonicAeskeygenassist
	MnemonicVaddps
	MnemonicVaddss
	MnemonicVaddpd
	MnemonicVaddsd
	MnemonicVmulps
	MnemonicVmulss
	MnemonicVmulpd
	MnemonicVmulsd
	MnemonicVsubps
	MnemonicVsubss
	MnemonicVsubpd
	MnemonicVsubsd
	MnemonicVminps
	MnemonicVminss
	MnemonicVminpd
	MnemonicVminsd
	MnemonicVdivps
	MnemonicVdivss
	MnemonicVdivpd
	MnemonicVdivsd
	MnemonicVmaxps
	MnemonicVmaxss
	MnemonicVmaxpd
	MnemonicVmaxsd
	MnemonicVsqrtps
	MnemonicVsqrtpd
	MnemonicVandps
	MnemonicVandpd
	MnemonicVandnps
	MnemonicVandnpd
	MnemonicVorps
	MnemonicVorpd
	MnemonicVxorps
	MnemonicVxorpd
	MnemonicVunpcklps
	MnemonicVunpcklpd
	MnemonicVunpckhps
	MnemonicVunpckhpd
	MnemonicVcmpps
	MnemonicVcmpss
	MnemonicVcmppd
	MnemonicVcmpsd
	MnemonicVshufps
	MnemonicVmovups
	MnemonicVmovupd
	MnemonicVmovaps
	MnemonicVmovapd
	MnemonicVmovdqa
	MnemonicVmovdqu
	MnemonicVmovss
	MnemonicVmovsd
	MnemonicVmovd
	MnemonicVmovq
	MnemonicVpaddb
	MnemonicVpaddw
	MnemonicVpaddd
	MnemonicVpaddq
	MnemonicVpsubb
	MnemonicVpsubd
	MnemonicVpand
	MnemonicVpandn
	MnemonicVpor
	MnemonicVpxor
	MnemonicVpcmpeqb
	MnemonicVpcmpeqd
	MnemonicVpshufb
	MnemonicVpmulld
	MnemonicVpshufd
	MnemonicVptest
	MnemonicVzeroupper
	MnemonicVzeroall
	MnemonicVbroadcastss
	MnemonicVperm2f128
	MnemonicVinsertf128
	MnemonicVextractf128
	MnemonicVpermq
	MnemonicVblendvps
	MnemonicVfmadd132ps
	MnemonicVfmadd132pd
	MnemonicVfmadd213ps
	MnemonicVfmadd231ps
	MnemonicVfmadd231ss
	MnemonicVfmadd231sd
	MnemonicVcvtsi2ss
	MnemonicVcvttss2si
	MnemonicVucomiss
	MnemonicVcomiss
	MnemonicVldmxcsr
	MnemonicVstmxcsr
	MnemonicAndn
	MnemonicBextr
	MnemonicBlsr
	MnemonicBlsmsk
	MnemonicBlsi
	MnemonicBzhi
	MnemonicPdep
	MnemonicPext
	MnemonicMulx
	MnemonicSarx
	MnemonicShlx
	MnemonicShrx
	MnemonicRorx
	MnemonicKandw
	MnemonicKandb
	MnemonicKandq
	MnemonicKandd
	MnemonicKandnw
	MnemonicKandnb
	MnemonicKandnq
	MnemonicKandnd
	MnemonicKorw
	MnemonicKorb
	MnemonicKorq
	MnemonicKord
	MnemonicKxnorw
	MnemonicKxnorb
	MnemonicKxnorq
	MnemonicKxnord
	MnemonicKxorw
	MnemonicKxorb
	MnemonicKxorq
	MnemonicKxord
	MnemonicKnotw
	MnemonicKortestw
	MnemonicKmovw
	MnemonicKmovq
	MnemonicVpcmov
	MnemonicVprotb
	MnemonicVpcomb
	MnemonicVfrczps
	MnemonicVphaddbw
	MnemonicBlcfill
	MnemonicVpandd
	MnemonicVpandq
	MnemonicVpternlogd
	MnemonicVmovdqa32
	MnemonicVmovdqa64
	MnemonicVpgatherdd
	MnemonicVpgatherdq
	MnemonicVpgatherqd
	MnemonicVpgatherqq
	MnemonicVgatherdps
	MnemonicVgatherdpd
	MnemonicVgatherqps
	MnemonicVgatherqpd
	MnemonicVpscatterdd
	MnemonicVpscatterdq
	MnemonicVpscatterqd
	MnemonicVpscatterqq
	MnemonicVscatterdps
	MnemonicVscatterdpd
	MnemonicVscatterqps
	MnemonicVscatterqpd
)

// NumberOfMnemonics is the number of Mnemonic values.
const NumberOfMnemonics = 795
