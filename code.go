// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package x86

// Code identifies an instruction: one mnemonic with
// one operand signature in one encoding family.
// The values are contiguous, starting at INVALID.
//
//go:generate stringer -type=Code
type Code uint16

const (
	INVALID Code = iota
	DeclareByte
	DeclareWord
	DeclareDword
	DeclareQword
	Zero_bytes
	Add_rm8_r8
	Add_rm16_r16
	Add_rm32_r32
	Add_rm64_r64
	Add_r8_rm8
	Add_r16_rm16
	Add_r32_rm32
	Add_r64_rm64
	Add_AL_imm8
	Add_AX_imm16
	Add_EAX_imm32
	Add_RAX_imm32
	Or_rm8_r8
	Or_rm16_r16
	Or_rm32_r32
	Or_rm64_r64
	Or_r8_rm8
	Or_r16_rm16
	Or_r32_rm32
	Or_r64_rm64
	Or_AL_imm8
	Or_AX_imm16
	Or_EAX_imm32
	Or_RAX_imm32
	Adc_rm8_r8
	Adc_rm16_r16
	Adc_rm32_r32
	Adc_rm64_r64
	Adc_r8_rm8
	Adc_r16_rm16
	Adc_r32_rm32
	Adc_r64_rm64
	Adc_AL_imm8
	Adc_AX_imm16
	Adc_EAX_imm32
	Adc_RAX_imm32
	Sbb_rm8_r8
	Sbb_rm16_r16
	Sbb_rm32_r32
	Sbb_rm64_r64
	Sbb_r8_rm8
	Sbb_r16_rm16
	Sbb_r32_rm32
	Sbb_r64_rm64
	Sbb_AL_imm8
	Sbb_AX_imm16
	Sbb_EAX_imm32
	Sbb_RAX_imm32
	And_rm8_r8
	And_rm16_r16
	And_rm32_r32
	And_rm64_r64
	And_r8_rm8
	And_r16_rm16
	And_r32_rm32
	And_r64_rm64
	And_AL_imm8
	And_AX_imm16
	And_EAX_imm32
	And_RAX_imm32
	Sub_rm8_r8
	Sub_rm16_r16
	Sub_rm32_r32
	Sub_rm64_r64
	Sub_r8_rm8
	Sub_r16_rm16
	Sub_r32_rm32
	Sub_r64_rm64
	Sub_AL_imm8
	Sub_AX_imm16
	Sub_EAX_imm32
	Sub_RAX_imm32
	Xor_rm8_r8
	Xor_rm16_r16
	Xor_rm32_r32
	Xor_rm64_r64
	Xor_r8_rm8
	Xor_r16_rm16
	Xor_r32_rm32
	Xor_r64_rm64
	Xor_AL_imm8
	Xor_AX_imm16
	Xor_EAX_imm32
	Xor_RAX_imm32
	Cmp_rm8_r8
	Cmp_rm16_r16
	Cmp_rm32_r32
	Cmp_rm64_r64
	Cmp_r8_rm8
	Cmp_r16_rm16
	Cmp_r32_rm32
	Cmp_r64_rm64
	Cmp_AL_imm8
	Cmp_AX_imm16
	Cmp_EAX_imm32
	Cmp_RAX_imm32
	Add_rm8_imm8
	Add_rm16_imm16
	Add_rm32_imm32
	Add_rm64_imm32
	Add_rm8_imm8_82
	Add_rm16_imm8
	Add_rm32_imm8
	Add_rm64_imm8
	Or_rm8_imm8
	Or_rm16_imm16
	Or_rm32_imm32
	Or_rm64_imm32
	Or_rm8_imm8_82
	Or_rm16_imm8
	Or_rm32_imm8
	Or_rm64_imm8
	Adc_rm8_imm8
	Adc_rm16_imm16
	Adc_rm32_imm32
	Adc_rm64_imm32
	Adc_rm8_imm8_82
	Adc_rm16_imm8
	Adc_rm32_imm8
	Adc_rm64_imm8
	Sbb_rm8_imm8
	Sbb_rm16_imm16
	Sbb_rm32_imm32
	Sbb_rm64_imm32
	Sbb_rm8_imm8_82
	Sbb_rm16_imm8
	Sbb_rm32_imm8
	Sbb_rm64_imm8
	And_rm8_imm8
	And_rm16_imm16
	And_rm32_imm32
	And_rm64_imm32
	And_rm8_imm8_82
	And_rm16_imm8
	And_rm32_imm8
	And_rm64_imm8
	Sub_rm8_imm8
	Sub_rm16_imm16
	Sub_rm32_imm32
	Sub_rm64_imm32
	Sub_rm8_imm8_82
	Sub_rm16_imm8
	Sub_rm32_imm8
	Sub_rm64_imm8
	Xor_rm8_imm8
	Xor_rm16_imm16
	Xor_rm32_imm32
	Xor_rm64_imm32
	Xor_rm8_imm8_82
	Xor_rm16_imm8
	Xor_rm32_imm8
	Xor_rm64_imm8
	Cmp_rm8_imm8
	Cmp_rm16_imm16
	Cmp_rm32_imm32
	Cmp_rm64_imm32
	Cmp_rm8_imm8_82
	Cmp_rm16_imm8
	Cmp_rm32_imm8
	Cmp_rm64_imm8
	Pushw_ES
	Pushd_ES
	Popw_ES
	Popd_ES
	Pushw_CS
	Pushd_CS
	Pushw_SS
	Pushd_SS
	Popw_SS
	Popd_SS
	Pushw_DS
	Pushd_DS
	Popw_DS
	Popd_DS
	Popw_CS
	Daa
	Das
	Aaa
	Aas
	Inc_r16
	Inc_r32
	Dec_r16
	Dec_r32
	Push_r16
	Push_r32
	Push_r64
	Pop_r16
	Pop_r32
	Pop_r64
	Pushaw
	Pushad
	Popaw
	Popad
	Bound_r16_m1616
	Bound_r32_m3232
	Arpl_rm16_r16
	Movsxd_r16_rm16
	Movsxd_r32_rm32
	Movsxd_r64_rm32
	Push_imm16
	Pushd_imm32
	Pushq_imm32
	Imul_r16_rm16_imm16
	Imul_r32_rm32_imm32
	Imul_r64_rm64_imm32
	Pushw_imm8
	Pushd_imm8
	Pushq_imm8
	Imul_r16_rm16_imm8
	Imul_r32_rm32_imm8
	Imul_r64_rm64_imm8
	Insb_m8_DX
	Insw_m16_DX
	Insd_m32_DX
	Outsb_DX_m8
	Outsw_DX_m16
	Outsd_DX_m32
	Jo_rel8_16
	Jo_rel8_32
	Jo_rel8_64
	Jno_rel8_16
	Jno_rel8_32
	Jno_rel8_64
	Jb_rel8_16
	Jb_rel8_32
	Jb_rel8_64
	Jae_rel8_16
	Jae_rel8_32
	Jae_rel8_64
	Je_rel8_16
	Je_rel8_32
	Je_rel8_64
	Jne_rel8_16
	Jne_rel8_32
	Jne_rel8_64
	Jbe_rel8_16
	Jbe_rel8_32
	Jbe_rel8_64
	Ja_rel8_16
	Ja_rel8_32
	Ja_rel8_64
	Js_rel8_16
	Js_rel8_32
	Js_rel8_64
	Jns_rel8_16
	Jns_rel8_32
	Jns_rel8_64
	Jp_rel8_16
	Jp_rel8_32
	Jp_rel8_64
	Jnp_rel8_16
	Jnp_rel8_32
	Jnp_rel8_64
	Jl_rel8_16
	Jl_rel8_32
	Jl_rel8_64
	Jge_rel8_16
	Jge_rel8_32
	Jge_rel8_64
	Jle_rel8_16
	Jle_rel8_32
	Jle_rel8_64
	Jg_rel8_16
	Jg_rel8_32
	Jg_rel8_64
	Test_rm8_r8
	Test_rm16_r16
	Test_rm32_r32
	Test_rm64_r64
	Xchg_rm8_r8
	Xchg_rm16_r16
	Xchg_rm32_r32
	Xchg_rm64_r64
	Mov_rm8_r8
	Mov_rm16_r16
	Mov_rm32_r32
	Mov_rm64_r64
	Mov_r8_rm8
	Mov_r16_rm16
	Mov_r32_rm32
	Mov_r64_rm64
	Mov_rm16_Sreg
	Mov_r32m16_Sreg
	Mov_r64m16_Sreg
	Lea_r16_m
	Lea_r32_m
	Lea_r64_m
	Mov_Sreg_rm16
	Mov_Sreg_r32m16
	Mov_Sreg_r64m16
	Pop_rm16
	Pop_rm32
	Pop_rm64
	Xchg_r16_AX
	Xchg_r32_EAX
	Xchg_r64_RAX
	Nopw
	Nopd
	Nopq
	Pause
	Cbw
	Cwde
	Cdqe
	Cwd
	Cdq
	Cqo
	Call_ptr1616
	Call_ptr1632
	Wait
	Pushfw
	Pushfd
	Pushfq
	Popfw
	Popfd
	Popfq
	Sahf
	Lahf
	Mov_AL_moffs8
	Mov_AX_moffs16
	Mov_EAX_moffs32
	Mov_RAX_moffs64
	Mov_moffs8_AL
	Mov_moffs16_AX
	Mov_moffs32_EAX
	Mov_moffs64_RAX
	Movsb_m8_m8
	Movsw_m16_m16
	Movsd_m32_m32
	Movsq_m64_m64
	Cmpsb_m8_m8
	Cmpsw_m16_m16
	Cmpsd_m32_m32
	Cmpsq_m64_m64
	Test_AL_imm8
	Test_AX_imm16
	Test_EAX_imm32
	Test_RAX_imm32
	Stosb_m8_AL
	Stosw_m16_AX
	Stosd_m32_EAX
	Stosq_m64_RAX
	Lodsb_AL_m8
	Lodsw_AX_m16
	Lodsd_EAX_m32
	Lodsq_RAX_m64
	Scasb_AL_m8
	Scasw_AX_m16
	Scasd_EAX_m32
	Scasq_RAX_m64
	Mov_r8_imm8
	Mov_r16_imm16
	Mov_r32_imm32
	Mov_r64_imm64
	Rol_rm8_imm8
	Rol_rm16_imm8
	Rol_rm32_imm8
	Rol_rm64_imm8
	Rol_rm8_1
	Rol_rm16_1
	Rol_rm32_1
	Rol_rm64_1
	Rol_rm8_CL
	Rol_rm16_CL
	Rol_rm32_CL
	Rol_rm64_CL
	Ror_rm8_imm8
	Ror_rm16_imm8
	Ror_rm32_imm8
	Ror_rm64_imm8
	Ror_rm8_1
	Ror_rm16_1
	Ror_rm32_1
	Ror_rm64_1
	Ror_rm8_CL
	Ror_rm16_CL
	Ror_rm32_CL
	Ror_rm64_CL
	Rcl_rm8_imm8
	Rcl_rm16_imm8
	Rcl_rm32_imm8
	Rcl_rm64_imm8
	Rcl_rm8_1
	Rcl_rm16_1
	Rcl_rm32_1
	Rcl_rm64_1
	Rcl_rm8_CL
	Rcl_rm16_CL
	Rcl_rm32_CL
	Rcl_rm64_CL
	Rcr_rm8_imm8
	Rcr_rm16_imm8
	Rcr_rm32_imm8
	Rcr_rm64_imm8
	Rcr_rm8_1
	Rcr_rm16_1
	Rcr_rm32_1
	Rcr_rm64_1
	Rcr_rm8_CL
	Rcr_rm16_CL
	Rcr_rm32_CL
	Rcr_rm64_CL
	Shl_rm8_imm8
	Shl_rm16_imm8
	Shl_rm32_imm8
	Shl_rm64_imm8
	Shl_rm8_1
	Shl_rm16_1
	Shl_rm32_1
	Shl_rm64_1
	Shl_rm8_CL
	Shl_rm16_CL
	Shl_rm32_CL
	Shl_rm64_CL
	Shr_rm8_imm8
	Shr_rm16_imm8
	Shr_rm32_imm8
	Shr_rm64_imm8
	Shr_rm8_1
	Shr_rm16_1
	Shr_rm32_1
	Shr_rm64_1
	Shr_rm8_CL
	Shr_rm16_CL
	Shr_rm32_CL
	Shr_rm64_CL
	Sal_rm8_imm8
	Sal_rm16_imm8
	Sal_rm32_imm8
	Sal_rm64_imm8
	Sal_rm8_1
	Sal_rm16_1
	Sal_rm32_1
	Sal_rm64_1
	Sal_rm8_CL
	Sal_rm16_CL
	Sal_rm32_CL
	Sal_rm64_CL
	Sar_rm8_imm8
	Sar_rm16_imm8
	Sar_rm32_imm8
	Sar_rm64_imm8
	Sar_rm8_1
	Sar_rm16_1
	Sar_rm32_1
	Sar_rm64_1
	Sar_rm8_CL
	Sar_rm16_CL
	Sar_rm32_CL
	Sar_rm64_CL
	Retnw_imm16
	Retnd_imm16
	Retnq_imm16
	Retnw
	Retnd
	Retnq
	Les_r16_m1616
	Les_r32_m1632
	Lds_r16_m1616
	Lds_r32_m1632
	Mov_rm8_imm8
	Xabort_imm8
	Mov_rm16_imm16
	Mov_rm32_imm32
	Mov_rm64_imm32
	Xbegin_rel16
	Xbegin_rel32
	Enterw_imm16_imm8
	Enterd_imm16_imm8
	Enterq_imm16_imm8
	Leavew
	Leaved
	Leaveq
	Retfw_imm16
	Retfd_imm16
	Retfq_imm16
	Retfw
	Retfd
	Retfq
	Int3
	Int_imm8
	Into
	Iretw
	Iretd
	Iretq
	Aam_imm8
	Aad_imm8
	Salc
	Xlat_m8
	Loopne_rel8_16_CX
	Loopne_rel8_32_CX
	Loopne_rel8_16_ECX
	Loopne_rel8_32_ECX
	Loopne_rel8_64_ECX
	Loopne_rel8_16_RCX
	Loopne_rel8_64_RCX
	Loope_rel8_16_CX
	Loope_rel8_32_CX
	Loope_rel8_16_ECX
	Loope_rel8_32_ECX
	Loope_rel8_64_ECX
	Loope_rel8_16_RCX
	Loope_rel8_64_RCX
	Loop_rel8_16_CX
	Loop_rel8_32_CX
	Loop_rel8_16_ECX
	Loop_rel8_32_ECX
	Loop_rel8_64_ECX
	Loop_rel8_16_RCX
	Loop_rel8_64_RCX
	Jcxz_rel8_16
	Jcxz_rel8_32
	Jecxz_rel8_16
	Jecxz_rel8_32
	Jecxz_rel8_64
	Jrcxz_rel8_16
	Jrcxz_rel8_64
	In_AL_imm8
	In_AX_imm8
	In_EAX_imm8
	Out_imm8_AL
	Out_imm8_AX
	Out_imm8_EAX
	Call_rel16
	Call_rel32_32
	Call_rel32_64
	Jmp_rel16
	Jmp_rel32_32
	Jmp_rel32_64
	Jmp_ptr1616
	Jmp_ptr1632
	Jmp_rel8_16
	Jmp_rel8_32
	Jmp_rel8_64
	In_AL_DX
	In_AX_DX
	In_EAX_DX
	Out_DX_AL
	Out_DX_AX
	Out_DX_EAX
	Int1
	Hlt
	Cmc
	Test_rm8_imm8
	Test_rm8_imm8_F6r1
	Test_rm16_imm16
	Test_rm32_imm32
	Test_rm64_imm32
	Not_rm8
	Not_rm16
	Not_rm32
	Not_rm64
	Neg_rm8
	Neg_rm16
	Neg_rm32
	Neg_rm64
	Mul_rm8
	Mul_rm16
	Mul_rm32
	Mul_rm64
	Imul_rm8
	Imul_rm16
	Imul_rm32
	Imul_rm64
	Div_rm8
	Div_rm16
	Div_rm32
	Div_rm64
	Idiv_rm8
	Idiv_rm16
	Idiv_rm32
	Idiv_rm64
	Clc
	Stc
	Cli
	Sti
	Cld
	Std
	Inc_rm8
	Dec_rm8
	Inc_rm16
	Inc_rm32
	Inc_rm64
	Dec_rm16
	Dec_rm32
	Dec_rm64
	Call_rm16
	Call_rm32
	Call_rm64
	Call_m1616
	Call_m1632
	Call_m1664
	Jmp_rm16
	Jmp_rm32
	Jmp_rm64
	Jmp_m1616
	Jmp_m1632
	Jmp_m1664
	Push_rm16
	Push_rm32
	Push_rm64
	Fadd_m32fp
	Fadd_st0_sti
	Fadd_m64fp
	Fiadd_m32int
	Fiadd_m16int
	Fmul_m32fp
	Fmul_st0_sti
	Fmul_m64fp
	Fimul_m32int
	Fimul_m16int
	Fcom_m32fp
	Fcom_st0_sti
	Fcom_m64fp
	Ficom_m32int
	Ficom_m16int
	Fcomp_m32fp
	Fcomp_st0_sti
	Fcomp_m64fp
	Ficomp_m32int
	Ficomp_m16int
	Fsub_m32fp
	Fsub_st0_sti
	Fsub_m64fp
	Fisub_m32int
	Fisub_m16int
	Fsubr_m32fp
	Fsubr_st0_sti
	Fsubr_m64fp
	Fisubr_m32int
	Fisubr_m16int
	Fdiv_m32fp
	Fdiv_st0_sti
	Fdiv_m64fp
	Fidiv_m32int
	Fidiv_m16int
	Fdivr_m32fp
	Fdivr_st0_sti
	Fdivr_m64fp
	Fidivr_m32int
	Fidivr_m16int
	Fadd_sti_st0
	Faddp_sti_st0
	Fmul_sti_st0
	Fmulp_sti_st0
	Fsubr_sti_st0
	Fsubrp_sti_st0
	Fsub_sti_st0
	Fsubp_sti_st0
	Fdivr_sti_st0
	Fdivrp_sti_st0
	Fdiv_sti_st0
	Fdivp_sti_st0
	Fcompp
	Fld_m32fp
	Fst_m32fp
	Fstp_m32fp
	Fldenv_m14byte
	Fldenv_m28byte
	Fldcw_m2byte
	Fnstenv_m14byte
	Fstenv_m14byte
	Fnstenv_m28byte
	Fstenv_m28byte
	Fnstcw_m2byte
	Fstcw_m2byte
	Fld_sti
	Fxch_st0_sti
	Fnop
	Fchs
	Fabs
	Ftst
	Fxam
	Fld1
	Fldl2t
	Fldl2e
	Fldpi
	Fldlg2
	Fldln2
	Fldz
	F2xm1
	Fyl2x
	Fptan
	Fpatan
	Fxtract
	Fprem1
	Fdecstp
	Fincstp
	Fprem
	Fyl2xp1
	Fsqrt
	Fsincos
	Frndint
	Fscale
	Fsin
	Fcos
	Fcmovb_st0_sti
	Fcmove_st0_sti
	Fcmovbe_st0_sti
	Fcmovu_st0_sti
	Fucompp
	Fild_m32int
	Fisttp_m32int
	Fist_m32int
	Fistp_m32int
	Fld_m80fp
	Fstp_m80fp
	Fcmovnb_st0_sti
	Fcmovne_st0_sti
	Fcmovnbe_st0_sti
	Fcmovnu_st0_sti
	Fneni
	Feni
	Fndisi
	Fdisi
	Fnclex
	Fclex
	Fninit
	Finit
	Fnsetpm
	Fsetpm
	Frstpm
	Fucomi_st0_sti
	Fcomi_st0_sti
	Fld_m64fp
	Fisttp_m64int
	Fst_m64fp
	Fstp_m64fp
	Frstor_m94byte
	Frstor_m108byte
	Fnsave_m94byte
	Fsave_m94byte
	Fnsave_m108byte
	Fsave_m108byte
	Fnstsw_m2byte
	Fstsw_m2byte
	Ffree_sti
	Fst_sti
	Fstp_sti
	Fucom_st0_sti
	Fucomp_st0_sti
	Fild_m16int
	Fisttp_m16int
	Fist_m16int
	Fistp_m16int
	Fbld_m80bcd
	Fild_m64int
	Fbstp_m80bcd
	Fistp_m64int
	Fnstsw_AX
	Fstsw_AX
	Fucomip_st0_sti
	Fcomip_st0_sti
	Sldt_r16m16
	Sldt_r32m16
	Sldt_r64m16
	Str_r16m16
	Str_r32m16
	Str_r64m16
	Lldt_r16m16
	Lldt_r32m16
	Lldt_r64m16
	Ltr_r16m16
	Ltr_r32m16
	Ltr_r64m16
	Verr_r16m16
	Verr_r32m16
	Verr_r64m16
	Verw_r16m16
	Verw_r32m16
	Verw_r64m16
	Jmpe_rm16
	Jmpe_rm32
	Sgdt_m1632_16
	Sgdt_m1632
	Sgdt_m1664
	Sidt_m1632_16
	Sidt_m1632
	Sidt_m1664
	Lgdt_m1632_16
	Lgdt_m1632
	Lgdt_m1664
	Lidt_m1632_16
	Lidt_m1632
	Lidt_m1664
	Smsw_r16m16
	Smsw_r32m16
	Smsw_r64m16
	Lmsw_rm16
	Invlpg_m
	Vmcall
	Vmlaunch
	Vmresume
	Vmxoff
	Monitorw
	Monitord
	Monitorq
	Mwait
	Clac
	Stac
	Xgetbv
	Xsetbv
	Xend
	Xtest
	Rdpkru
	Wrpkru
	Swapgs
	Rdtscp
	Lar_r16_r16m16
	Lar_r32_r32m16
	Lar_r64_r64m16
	Lsl_r16_r16m16
	Lsl_r32_r32m16
	Lsl_r64_r64m16
	Loadall286
	Syscall
	Clts
	Loadall386
	Sysretd
	Sysretq
	Invd
	Wbinvd
	Wbnoinvd
	Cl1invmb
	Ud2
	Prefetchw_m8
	Movups_xmm_xmmm128
	Movups_xmmm128_xmm
	Movupd_xmm_xmmm128
	Movupd_xmmm128_xmm
	Movss_xmm_xmmm32
	Movss_xmmm32_xmm
	Movsd_xmm_xmmm64
	Movsd_xmmm64_xmm
	Umov_rm8_r8
	Umov_rm16_r16
	Umov_rm32_r32
	Umov_r8_rm8
	Umov_r16_rm16
	Umov_r32_rm32
	Movlps_xmm_m64
	Movhlps_xmm_xmm
	Movlps_m64_xmm
	Movlpd_xmm_m64
	Movlpd_m64_xmm
	Unpcklps_xmm_xmmm128
	Unpcklpd_xmm_xmmm128
	Unpckhps_xmm_xmmm128
	Unpckhpd_xmm_xmmm128
	Movhps_xmm_m64
	Movlhps_xmm_xmm
	Movhps_m64_xmm
	Movhpd_xmm_m64
	Movhpd_m64_xmm
	Prefetchnta_m8
	Prefetcht0_m8
	Prefetcht1_m8
	Prefetcht2_m8
	Reservednop_rm16_r16_0F18
	Reservednop_rm32_r32_0F18
	Reservednop_rm64_r64_0F18
	Reservednop_rm16_r16_0F19
	Reservednop_rm32_r32_0F19
	Reservednop_rm64_r64_0F19
	Reservednop_rm16_r16_0F1A
	Reservednop_rm32_r32_0F1A
	Reservednop_rm64_r64_0F1A
	Reservednop_rm16_r16_0F1B
	Reservednop_rm32_r32_0F1B
	Reservednop_rm64_r64_0F1B
	Reservednop_rm16_r16_0F1C
	Reservednop_rm32_r32_0F1C
	Reservednop_rm64_r64_0F1C
	Reservednop_rm16_r16_0F1D
	Reservednop_rm32_r32_0F1D
	Reservednop_rm64_r64_0F1D
	Reservednop_rm16_r16_0F1E
	Reservednop_rm32_r32_0F1E
	Reservednop_rm64_r64_0F1E
	Bndcl_bnd_rm32
	Bndcl_bnd_rm64
	Bndcu_bnd_rm32
	Bndcu_bnd_rm64
	Bndcn_bnd_rm32
	Bndcn_bnd_rm64
	Bndmk_bnd_m32
	Bndmk_bnd_m64
	Bndmov_bnd_bndm64
	Bndmov_bnd_bndm128
	Bndmov_bndm64_bnd
	Bndmov_bndm128_bnd
	Bndldx_bnd_mib
	Bndstx_mib_bnd
	Endbr64
	Endbr32
	Nop_rm16
	Nop_rm32
	Nop_rm64
	Mov_r32_cr
	Mov_r64_cr
	Mov_r32_dr
	Mov_r64_dr
	Mov_cr_r32
	Mov_cr_r64
	Mov_dr_r32
	Mov_dr_r64
	Mov_r32_tr
	Mov_tr_r32
	Movaps_xmm_xmmm128
	Movaps_xmmm128_xmm
	Movapd_xmm_xmmm128
	Movapd_xmmm128_xmm
	Cvtpi2ps_xmm_mmm64
	Cvtpi2pd_xmm_mmm64
	Cvtsi2ss_xmm_rm32
	Cvtsi2ss_xmm_rm64
	Cvtsi2sd_xmm_rm32
	Cvtsi2sd_xmm_rm64
	Movntps_m128_xmm
	Movntpd_m128_xmm
	Cvttps2pi_mm_xmmm64
	Cvttpd2pi_mm_xmmm128
	Cvttss2si_r32_xmmm32
	Cvttss2si_r64_xmmm32
	Cvttsd2si_r32_xmmm64
	Cvttsd2si_r64_xmmm64
	Cvtps2pi_mm_xmmm64
	Cvtpd2pi_mm_xmmm128
	Cvtss2si_r32_xmmm32
	Cvtss2si_r64_xmmm32
	Cvtsd2si_r32_xmmm64
	Cvtsd2si_r64_xmmm64
	Ucomiss_xmm_xmmm32
	Ucomisd_xmm_xmmm64
	Comiss_xmm_xmmm32
	Comisd_xmm_xmmm64
	Wrmsr
	Rdtsc
	Rdmsr
	Rdpmc
	Sysenter
	Sysexitd
	Sysexitq
	Getsec
	Cmovo_r16_rm16
	Cmovo_r32_rm32
	Cmovo_r64_rm64
	Cmovno_r16_rm16
	Cmovno_r32_rm32
	Cmovno_r64_rm64
	Cmovb_r16_rm16
	Cmovb_r32_rm32
	Cmovb_r64_rm64
	Cmovae_r16_rm16
	Cmovae_r32_rm32
	Cmovae_r64_rm64
	Cmove_r16_rm16
	Cmove_r32_rm32
	Cmove_r64_rm64
	Cmovne_r16_rm16
	Cmovne_r32_rm32
	Cmovne_r64_rm64
	Cmovbe_r16_rm16
	Cmovbe_r32_rm32
	Cmovbe_r64_rm64
	Cmova_r16_rm16
	Cmova_r32_rm32
	Cmova_r64_rm64
	Cmovs_r16_rm16
	Cmovs_r32_rm32
	Cmovs_r64_rm64
	Cmovns_r16_rm16
	Cmovns_r32_rm32
	Cmovns_r64_rm64
	Cmovp_r16_rm16
	Cmovp_r32_rm32
	Cmovp_r64_rm64
	Cmovnp_r16_rm16
	Cmovnp_r32_rm32
	Cmovnp_r64_rm64
	Cmovl_r16_rm16
	Cmovl_r32_rm32
	Cmovl_r64_rm64
	Cmovge_r16_rm16
	Cmovge_r32_rm32
	Cmovge_r64_rm64
	Cmovle_r16_rm16
	Cmovle_r32_rm32
	Cmovle_r64_rm64
	Cmovg_r16_rm16
	Cmovg_r32_rm32
	Cmovg_r64_rm64
	Movmskps_r32_xmm
	Movmskps_r64_xmm
	Movmskpd_r32_xmm
	Movmskpd_r64_xmm
	Sqrtps_xmm_xmmm128
	Sqrtpd_xmm_xmmm128
	Sqrtss_xmm_xmmm32
	Sqrtsd_xmm_xmmm64
	Rsqrtps_xmm_xmmm128
	Rsqrtss_xmm_xmmm32
	Rcpps_xmm_xmmm128
	Rcpss_xmm_xmmm32
	Andps_xmm_xmmm128
	Andpd_xmm_xmmm128
	Andnps_xmm_xmmm128
	Andnpd_xmm_xmmm128
	Orps_xmm_xmmm128
	Orpd_xmm_xmmm128
	Xorps_xmm_xmmm128
	Xorpd_xmm_xmmm128
	Addps_xmm_xmmm128
	Addpd_xmm_xmmm128
	Addss_xmm_xmmm32
	Addsd_xmm_xmmm64
	Mulps_xmm_xmmm128
	Mulpd_xmm_xmmm128
	Mulss_xmm_xmmm32
	Mulsd_xmm_xmmm64
	Cvtps2pd_xmm_xmmm64
	Cvtpd2ps_xmm_xmmm128
	Cvtss2sd_xmm_xmmm32
	Cvtsd2ss_xmm_xmmm64
	Cvtdq2ps_xmm_xmmm128
	Cvtps2dq_xmm_xmmm128
	Cvttps2dq_xmm_xmmm128
	Subps_xmm_xmmm128
	Subpd_xmm_xmmm128
	Subss_xmm_xmmm32
	Subsd_xmm_xmmm64
	Minps_xmm_xmmm128
	Minpd_xmm_xmmm128
	Minss_xmm_xmmm32
	Minsd_xmm_xmmm64
	Divps_xmm_xmmm128
	Divpd_xmm_xmmm128
	Divss_xmm_xmmm32
	Divsd_xmm_xmmm64
	Maxps_xmm_xmmm128
	Maxpd_xmm_xmmm128
	Maxss_xmm_xmmm32
	Maxsd_xmm_xmmm64
	Punpcklbw_mm_mmm64
	Punpcklbw_xmm_xmmm128
	Punpcklwd_mm_mmm64
	Punpcklwd_xmm_xmmm128
	Punpckldq_mm_mmm64
	Punpckldq_xmm_xmmm128
	Packsswb_mm_mmm64
	Packsswb_xmm_xmmm128
	Pcmpgtb_mm_mmm64
	Pcmpgtb_xmm_xmmm128
	Pcmpgtw_mm_mmm64
	Pcmpgtw_xmm_xmmm128
	Pcmpgtd_mm_mmm64
	Pcmpgtd_xmm_xmmm128
	Packuswb_mm_mmm64
	Packuswb_xmm_xmmm128
	Punpckhbw_mm_mmm64
	Punpckhbw_xmm_xmmm128
	Punpckhwd_mm_mmm64
	Punpckhwd_xmm_xmmm128
	Punpckhdq_mm_mmm64
	Punpckhdq_xmm_xmmm128
	Packssdw_mm_mmm64
	Packssdw_xmm_xmmm128
	Punpcklqdq_xmm_xmmm128
	Punpckhqdq_xmm_xmmm128
	Movd_mm_rm32
	Movq_mm_rm64
	Movd_xmm_rm32
	Movq_xmm_rm64
	Movq_mm_mmm64
	Movdqa_xmm_xmmm128
	Movdqu_xmm_xmmm128
	Pshufw_mm_mmm64_imm8
	Pshufd_xmm_xmmm128_imm8
	Pshufhw_xmm_xmmm128_imm8
	Pshuflw_xmm_xmmm128_imm8
	Psrlw_mm_imm8
	Psrlw_xmm_imm8
	Psraw_mm_imm8
	Psraw_xmm_imm8
	Psllw_mm_imm8
	Psllw_xmm_imm8
	Psrld_mm_imm8
	Psrld_xmm_imm8
	Psrad_mm_imm8
	Psrad_xmm_imm8
	Pslld_mm_imm8
	Pslld_xmm_imm8
	Psrlq_mm_imm8
	Psrlq_xmm_imm8
	Psrldq_xmm_imm8
	Psllq_mm_imm8
	Psllq_xmm_imm8
	Pslldq_xmm_imm8
	Pcmpeqb_mm_mmm64
	Pcmpeqb_xmm_xmmm128
	Pcmpeqw_mm_mmm64
	Pcmpeqw_xmm_xmmm128
	Pcmpeqd_mm_mmm64
	Pcmpeqd_xmm_xmmm128
	Emms
	Movd_rm32_mm
	Movq_rm64_mm
	Movd_rm32_xmm
	Movq_rm64_xmm
	Movq_xmm_xmmm64
	Movq_mmm64_mm
	Movdqa_xmmm128_xmm
	Movdqu_xmmm128_xmm
	Jo_rel16
	Jo_rel32_32
	Jo_rel32_64
	Jno_rel16
	Jno_rel32_32
	Jno_rel32_64
	Jb_rel16
	Jb_rel32_32
	Jb_rel32_64
	Jae_rel16
	Jae_rel32_32
	Jae_rel32_64
	Je_rel16
	Je_rel32_32
	Je_rel32_64
	Jne_rel16
	Jne_rel32_32
	Jne_rel32_64
	Jbe_rel16
	Jbe_rel32_32
	Jbe_rel32_64
	Ja_rel16
	Ja_rel32_32
	Ja_rel32_64
	Js_rel16
	Js_rel32_32
	Js_rel32_64
	Jns_rel16
	Jns_rel32_32
	Jns_rel32_64
	Jp_rel16
	Jp_rel32_32
	Jp_rel32_64
	Jnp_rel16
	Jnp_rel32_32
	Jnp_rel32_64
	Jl_rel16
	Jl_rel32_32
	Jl_rel32_64
	Jge_rel16
	Jge_rel32_32
	Jge_rel32_64
	Jle_rel16
	Jle_rel32_32
	Jle_rel32_64
	Jg_rel16
	Jg_rel32_32
	Jg_rel32_64
	Seto_rm8
	Setno_rm8
	Setb_rm8
	Setae_rm8
	Sete_rm8
	Setne_rm8
	Setbe_rm8
	Seta_rm8
	Sets_rm8
	Setns_rm8
	Setp_rm8
	Setnp_rm8
	Setl_rm8
	Setge_rm8
	Setle_rm8
	Setg_rm8
	Pushw_FS
	Pushd_FS
	Pushq_FS
	Popw_FS
	Popd_FS
	Popq_FS
	Pushw_GS
	Pushd_GS
	Pushq_GS
	Popw_GS
	Popd_GS
	Popq_GS
	Cpuid
	Bt_rm16_r16
	Bt_rm32_r32
	Bt_rm64_r64
	Shld_rm16_r16_imm8
	Shld_rm32_r32_imm8
	Shld_rm64_r64_imm8
	Shld_rm16_r16_CL
	Shld_rm32_r32_CL
	Shld_rm64_r64_CL
	Xbts_r16_rm16
	Xbts_r32_rm32
	Ibts_rm16_r16
	Ibts_rm32_r32
	Cmpxchg486_rm8_r8
	Cmpxchg486_rm16_r16
	Cmpxchg486_rm32_r32
	Rsm
	Bts_rm16_r16
	Bts_rm32_r32
	Bts_rm64_r64
	Shrd_rm16_r16_imm8
	Shrd_rm32_r32_imm8
	Shrd_rm64_r64_imm8
	Shrd_rm16_r16_CL
	Shrd_rm32_r32_CL
	Shrd_rm64_r64_CL
	Fxsave_m512byte
	Fxsave64_m512byte
	Fxrstor_m512byte
	Fxrstor64_m512byte
	Ldmxcsr_m32
	Stmxcsr_m32
	Xsave_mem
	Xsave64_mem
	Xrstor_mem
	Xrstor64_mem
	Xsaveopt_mem
	Clflush_m8
	Lfence
	Mfence
	Sfence
	Rdfsbase_r32
	Rdfsbase_r64
	Rdgsbase_r32
	Rdgsbase_r64
	Wrfsbase_r32
	Wrfsbase_r64
	Wrgsbase_r32
	Wrgsbase_r64
	Imul_r16_rm16
	Imul_r32_rm32
	Imul_r64_rm64
	Cmpxchg_rm8_r8
	Cmpxchg_rm16_r16
	Cmpxchg_rm32_r32
	Cmpxchg_rm64_r64
	Lss_r16_m1616
	Lss_r32_m1632
	Lss_r64_m1664
	Lfs_r16_m1616
	Lfs_r32_m1632
	Lfs_r64_m1664
	Lgs_r16_m1616
	Lgs_r32_m1632
	Lgs_r64_m1664
	Btr_rm16_r16
	Btr_rm32_r32
	Btr_rm64_r64
	Movzx_r16_rm8
	Movzx_r32_rm8
	Movzx_r64_rm8
	Movzx_r16_rm16
	Movzx_r32_rm16
	Movzx_r64_rm16
	Popcnt_r16_rm16
	Popcnt_r32_rm32
	Popcnt_r64_rm64
	Ud1_r16_rm16
	Ud1_r32_rm32
	Ud1_r64_rm64
	Bt_rm16_imm8
	Bt_rm32_imm8
	Bt_rm64_imm8
	Bts_rm16_imm8
	Bts_rm32_imm8
	Bts_rm64_imm8
	Btr_rm16_imm8
	Btr_rm32_imm8
	Btr_rm64_imm8
	Btc_rm16_imm8
	Btc_rm32_imm8
	Btc_rm64_imm8
	Btc_rm16_r16
	Btc_rm32_r32
	Btc_rm64_r64
	Bsf_r16_rm16
	Bsf_r32_rm32
	Bsf_r64_rm64
	Bsr_r16_rm16
	Bsr_r32_rm32
	Bsr_r64_rm64
	Tzcnt_r16_rm16
	Tzcnt_r32_rm32
	Tzcnt_r64_rm64
	Lzcnt_r16_rm16
	Lzcnt_r32_rm32
	Lzcnt_r64_rm64
	Movsx_r16_rm8
	Movsx_r32_rm8
	Movsx_r64_rm8
	Movsx_r16_rm16
	Movsx_r32_rm16
	Movsx_r64_rm16
	Xadd_rm8_r8
	Xadd_rm16_r16
	Xadd_rm32_r32
	Xadd_rm64_r64
	Cmpps_xmm_xmmm128_imm8
	Cmppd_xmm_xmmm128_imm8
	Cmpss_xmm_xmmm32_imm8
	Cmpsd_xmm_xmmm64_imm8
	Movnti_m32_r32
	Movnti_m64_r64
	Pinsrw_mm_r32m16_imm8
	Pinsrw_xmm_r32m16_imm8
	Pextrw_r32_mm_imm8
	Pextrw_r32_xmm_imm8
	Shufps_xmm_xmmm128_imm8
	Shufpd_xmm_xmmm128_imm8
	Cmpxchg8b_m64
	Cmpxchg16b_m128
	Vmptrld_m64
	Vmclear_m64
	Vmxon_m64
	Vmptrst_m64
	Rdrand_r16
	Rdrand_r32
	Rdrand_r64
	Rdseed_r16
	Rdseed_r32
	Rdseed_r64
	Rdpid_r32
	Rdpid_r64
	Bswap_r16
	Bswap_r32
	Bswap_r64
	Psrlw_mm_mmm64
	Psrlw_xmm_xmmm128
	Psrld_mm_mmm64
	Psrld_xmm_xmmm128
	Psrlq_mm_mmm64
	Psrlq_xmm_xmmm128
	Paddq_mm_mmm64
	Paddq_xmm_xmmm128
	Pmullw_mm_mmm64
	Pmullw_xmm_xmmm128
	Psubusb_mm_mmm64
	Psubusb_xmm_xmmm128
	Psubusw_mm_mmm64
	Psubusw_xmm_xmmm128
	Pminub_mm_mmm64
	Pminub_xmm_xmmm128
	Pand_mm_mmm64
	Pand_xmm_xmmm128
	Paddusb_mm_mmm64
	Paddusb_xmm_xmmm128
	Paddusw_mm_mmm64
	Paddusw_xmm_xmmm128
	Pmaxub_mm_mmm64
	Pmaxub_xmm_xmmm128
	Pandn_mm_mmm64
	Pandn_xmm_xmmm128
	Pavgb_mm_mmm64
	Pavgb_xmm_xmmm128
	Psraw_mm_mmm64
	Psraw_xmm_xmmm128
	Psrad_mm_mmm64
	Psrad_xmm_xmmm128
	Pavgw_mm_mmm64
	Pavgw_xmm_xmmm128
	Pmulhuw_mm_mmm64
	Pmulhuw_xmm_xmmm128
	Pmulhw_mm_mmm64
	Pmulhw_xmm_xmmm128
	Psubsb_mm_mmm64
	Psubsb_xmm_xmmm128
	Psubsw_mm_mmm64
	Psubsw_xmm_xmmm128
	Pminsw_mm_mmm64
	Pminsw_xmm_xmmm128
	Por_mm_mmm64
	Por_xmm_xmmm128
	Paddsb_mm_mmm64
	Paddsb_xmm_xmmm128
	Paddsw_mm_mmm64
	Paddsw_xmm_xmmm128
	Pmaxsw_mm_mmm64
	Pmaxsw_xmm_xmmm128
	Pxor_mm_mmm64
	Pxor_xmm_xmmm128
	Psllw_mm_mmm64
	Psllw_xmm_xmmm128
	Pslld_mm_mmm64
	Pslld_xmm_xmmm128
	Psllq_mm_mmm64
	Psllq_xmm_xmmm128
	Pmuludq_mm_mmm64
	Pmuludq_xmm_xmmm128
	Pmaddwd_mm_mmm64
	Pmaddwd_xmm_xmmm128
	Psadbw_mm_mmm64
	Psadbw_xmm_xmmm128
	Psubb_mm_mmm64
	Psubb_xmm_xmmm128
	Psubw_mm_mmm64
	Psubw_xmm_xmmm128
	Psubd_mm_mmm64
	Psubd_xmm_xmmm128
	Psubq_mm_mmm64
	Psubq_xmm_xmmm128
	Paddb_mm_mmm64
	Paddb_xmm_xmmm128
	Paddw_mm_mmm64
	Paddw_xmm_xmmm128
	Paddd_mm_mmm64
	Paddd_xmm_xmmm128
	Movq_xmmm64_xmm
	Pmovmskb_r32_mm
	Pmovmskb_r32_xmm
	Cvttpd2dq_xmm_xmmm128
	Cvtdq2pd_xmm_xmmm64
	Cvtpd2dq_xmm_xmmm128
	Movntq_m64_mm
	Movntdq_m128_xmm
	Maskmovq_rDI_mm_mm
	Maskmovdqu_rDI_xmm_xmm
	Ud0_r16_rm16
	Ud0_r32_rm32
	Ud0_r64_rm64
	Pshufb_mm_mmm64
	Pshufb_xmm_xmmm128
	Phaddw_mm_mmm64
	Phaddw_xmm_xmmm128
	Phaddd_mm_mmm64
	Phaddd_xmm_xmmm128
	Phaddsw_mm_mmm64
	Phaddsw_xmm_xmmm128
	Pmaddubsw_mm_mmm64
	Pmaddubsw_xmm_xmmm128
	Phsubw_mm_mmm64
	Phsubw_xmm_xmmm128
	Phsubd_mm_mmm64
	Phsubd_xmm_xmmm128
	Phsubsw_mm_mmm64
	Phsubsw_xmm_xmmm128
	Psignb_mm_mmm64
	Psignb_xmm_xmmm128
	Psignw_mm_mmm64
	Psignw_xmm_xmmm128
	Psignd_mm_mmm64
	Psignd_xmm_xmmm128
	Pmulhrsw_mm_mmm64
	Pmulhrsw_xmm_xmmm128
	Pabsb_mm_mmm64
	Pabsb_xmm_xmmm128
	Pabsw_mm_mmm64
	Pabsw_xmm_xmmm128
	Pabsd_mm_mmm64
	Pabsd_xmm_xmmm128
	Pblendvb_xmm_xmmm128
	Blendvps_xmm_xmmm128
	Blendvpd_xmm_xmmm128
	Ptest_xmm_xmmm128
	Pmovsxbw_xmm_xmmm64
	Pmovsxbd_xmm_xmmm32
	Pmovsxbq_xmm_xmmm16
	Pmovsxwd_xmm_xmmm64
	Pmovsxwq_xmm_xmmm32
	Pmovsxdq_xmm_xmmm64
	Pmovzxbw_xmm_xmmm64
	Pmovzxbd_xmm_xmmm32
	Pmovzxbq_xmm_xmmm16
	Pmovzxwd_xmm_xmmm64
	Pmovzxwq_xmm_xmmm32
	Pmovzxdq_xmm_xmmm64
	Pmuldq_xmm_xmmm128
	Pcmpeqq_xmm_xmmm128
	Packusdw_xmm_xmmm128
	Pcmpgtq_xmm_xmmm128
	Pminsb_xmm_xmmm128
	Pminsd_xmm_xmmm128
	Pminuw_xmm_xmmm128
	Pminud_xmm_xmmm128
	Pmaxsb_xmm_xmmm128
	Pmaxsd_xmm_xmmm128
	Pmaxuw_xmm_xmmm128
	Pmaxud_xmm_xmmm128
	Pmulld_xmm_xmmm128
	Aesenc_xmm_xmmm128
	Aesenclast_xmm_xmmm128
	Aesdec_xmm_xmmm128
	Aesdeclast_xmm_xmmm128
	Movntdqa_xmm_m128
	Phminposuw_xmm_xmmm128
	Aesimc_xmm_xmmm128
	Invept_r32_m128
	Invept_r64_m128
	Invvpid_r32_m128
	Invvpid_r64_m128
	Invpcid_r32_m128
	Invpcid_r64_m128
	Movbe_r16_m16
	Movbe_r32_m32
	Movbe_r64_m64
	Movbe_m16_r16
	Movbe_m32_r32
	Movbe_m64_r64
	Crc32_r32_rm8
	Crc32_r64_rm8
	Crc32_r32_rm16
	Crc32_r32_rm32
	Crc32_r64_rm64
	Adcx_r32_rm32
	Adcx_r64_rm64
	Adox_r32_rm32
	Adox_r64_rm64
	Roundps_xmm_xmmm128_imm8
	Roundpd_xmm_xmmm128_imm8
	Roundss_xmm_xmmm32_imm8
	Roundsd_xmm_xmmm64_imm8
	Blendps_xmm_xmmm128_imm8
	Blendpd_xmm_xmmm128_imm8
	Pblendw_xmm_xmmm128_imm8
	Dpps_xmm_xmmm128_imm8
	Dppd_xmm_xmmm128_imm8
	Mpsadbw_xmm_xmmm128_imm8
	Insertps_xmm_xmmm32_imm8
	Palignr_mm_mmm64_imm8
	Palignr_xmm_xmmm128_imm8
	Pextrb_r32m8_xmm_imm8
	Pextrb_r64m8_xmm_imm8
	Pextrw_r32m16_xmm_imm8
	Pextrw_r64m16_xmm_imm8
	Pextrd_rm32_xmm_imm8
	Pextrq_rm64_xmm_imm8
	Extractps_rm32_xmm_imm8
	Extractps_r64m32_xmm_imm8
	Pinsrb_xmm_r32m8_imm8
	Pinsrb_xmm_r64m8_imm8
	Pinsrd_xmm_rm32_imm8
	Pinsrq_xmm_rm64_imm8
	Pclmulqdq_xmm_xmmm128_imm8
	Pcmpestrm_xmm_xmmm128_imm8
	Pcmpestri_xmm_xmmm128_imm8
	Pcmpistrm_xmm_xmmm128_imm8
	Pcmpistri_xmm_xmmm128_imm8
	Aeskeygenassist_xmm_xmmm128_imm8
	VEX_Vaddps_xmm_xmm_xmmm128
	VEX_Vaddps_ymm_ymm_ymmm256
	VEX_Vaddss_xmm_xmm_xmmm32
	VEX_Vaddpd_xmm_xmm_xmmm128
	VEX_Vaddpd_ymm_ymm_ymmm256
	VEX_Vaddsd_xmm_xmm_xmmm64
	VEX_Vmulps_xmm_xmm_xmmm128
	VEX_Vmulps_ymm_ymm_ymmm256
	VEX_Vmulss_xmm_xmm_xmmm32
	VEX_Vmulpd_xmm_xmm_xmmm128
	VEX_Vmulpd_ymm_ymm_ymmm256
	VEX_Vmulsd_xmm_xmm_xmmm64
	VEX_Vsubps_xmm_xmm_xmmm128
	VEX_Vsubps_ymm_ymm_ymmm256
	VEX_Vsubss_xmm_xmm_xmmm32
	VEX_Vsubpd_xmm_xmm_xmmm128
	VEX_Vsubpd_ymm_ymm_ymmm256
	VEX_Vsubsd_xmm_xmm_xmmm64
	VEX_Vminps_xmm_xmm_xmmm128
	VEX_Vminps_ymm_ymm_ymmm256
	VEX_Vminss_xmm_xmm_xmmm32
	VEX_Vminpd_xmm_xmm_xmmm128
	VEX_Vminpd_ymm_ymm_ymmm256
	VEX_Vminsd_xmm_xmm_xmmm64
	VEX_Vdivps_xmm_xmm_xmmm128
	VEX_Vdivps_ymm_ymm_ymmm256
	VEX_Vdivss_xmm_xmm_xmmm32
	VEX_Vdivpd_xmm_xmm_xmmm128
	VEX_Vdivpd_ymm_ymm_ymmm256
	VEX_Vdivsd_xmm_xmm_xmmm64
	VEX_Vmaxps_xmm_xmm_xmmm128
	VEX_Vmaxps_ymm_ymm_ymmm256
	VEX_Vmaxss_xmm_xmm_xmmm32
	VEX_Vmaxpd_xmm_xmm_xmmm128
	VEX_Vmaxpd_ymm_ymm_ymmm256
	VEX_Vmaxsd_xmm_xmm_xmmm64
	VEX_Vsqrtps_xmm_xmmm128
	VEX_Vsqrtps_ymm_ymmm256
	VEX_Vsqrtpd_xmm_xmmm128
	VEX_Vsqrtpd_ymm_ymmm256
	VEX_Vandps_xmm_xmm_xmmm128
	VEX_Vandps_ymm_ymm_ymmm256
	VEX_Vandpd_xmm_xmm_xmmm128
	VEX_Vandpd_ymm_ymm_ymmm256
	VEX_Vandnps_xmm_xmm_xmmm128
	VEX_Vandnps_ymm_ymm_ymmm256
	VEX_Vandnpd_xmm_xmm_xmmm128
	VEX_Vandnpd_ymm_ymm_ymmm256
	VEX_Vorps_xmm_xmm_xmmm128
	VEX_Vorps_ymm_ymm_ymmm256
	VEX_Vorpd_xmm_xmm_xmmm128
	VEX_Vorpd_ymm_ymm_ymmm256
	VEX_Vxorps_xmm_xmm_xmmm128
	VEX_Vxorps_ymm_ymm_ymmm256
	VEX_Vxorpd_xmm_xmm_xmmm128
	VEX_Vxorpd_ymm_ymm_ymmm256
	VEX_Vunpcklps_xmm_xmm_xmmm128
	VEX_Vunpcklps_ymm_ymm_ymmm256
	VEX_Vunpcklpd_xmm_xmm_xmmm128
	VEX_Vunpcklpd_ymm_ymm_ymmm256
	VEX_Vunpckhps_xmm_xmm_xmmm128
	VEX_Vunpckhps_ymm_ymm_ymmm256
	VEX_Vunpckhpd_xmm_xmm_xmmm128
	VEX_Vunpckhpd_ymm_ymm_ymmm256
	VEX_Vcmpps_xmm_xmm_xmmm128_imm8
	VEX_Vcmpps_ymm_ymm_ymmm256_imm8
	VEX_Vcmpss_xmm_xmm_xmmm32_imm8
	VEX_Vcmppd_xmm_xmm_xmmm128_imm8
	VEX_Vcmppd_ymm_ymm_ymmm256_imm8
	VEX_Vcmpsd_xmm_xmm_xmmm64_imm8
	VEX_Vshufps_xmm_xmm_xmmm128_imm8
	VEX_Vshufps_ymm_ymm_ymmm256_imm8
	VEX_Vmovups_xmm_xmmm128
	VEX_Vmovups_xmmm128_xmm
	VEX_Vmovups_ymm_ymmm256
	VEX_Vmovups_ymmm256_ymm
	VEX_Vmovupd_xmm_xmmm128
	VEX_Vmovupd_xmmm128_xmm
	VEX_Vmovupd_ymm_ymmm256
	VEX_Vmovupd_ymmm256_ymm
	VEX_Vmovaps_xmm_xmmm128
	VEX_Vmovaps_xmmm128_xmm
	VEX_Vmovaps_ymm_ymmm256
	VEX_Vmovaps_ymmm256_ymm
	VEX_Vmovapd_xmm_xmmm128
	VEX_Vmovapd_xmmm128_xmm
	VEX_Vmovapd_ymm_ymmm256
	VEX_Vmovapd_ymmm256_ymm
	VEX_Vmovdqa_xmm_xmmm128
	VEX_Vmovdqa_xmmm128_xmm
	VEX_Vmovdqa_ymm_ymmm256
	VEX_Vmovdqa_ymmm256_ymm
	VEX_Vmovdqu_xmm_xmmm128
	VEX_Vmovdqu_xmmm128_xmm
	VEX_Vmovdqu_ymm_ymmm256
	VEX_Vmovdqu_ymmm256_ymm
	VEX_Vmovss_xmm_xmm_xmm
	VEX_Vmovss_xmm_m32
	VEX_Vmovss_xmm_xmm_xmm_0F11
	VEX_Vmovss_m32_xmm
	VEX_Vmovsd_xmm_xmm_xmm
	VEX_Vmovsd_xmm_m64
	VEX_Vmovsd_xmm_xmm_xmm_0F11
	VEX_Vmovsd_m64_xmm
	VEX_Vmovd_xmm_rm32
	VEX_Vmovq_xmm_rm64
	VEX_Vmovd_rm32_xmm
	VEX_Vmovq_rm64_xmm
	VEX_Vmovq_xmm_xmmm64
	VEX_Vpaddb_xmm_xmm_xmmm128
	VEX_Vpaddb_ymm_ymm_ymmm256
	VEX_Vpaddw_xmm_xmm_xmmm128
	VEX_Vpaddw_ymm_ymm_ymmm256
	VEX_Vpaddd_xmm_xmm_xmmm128
	VEX_Vpaddd_ymm_ymm_ymmm256
	VEX_Vpaddq_xmm_xmm_xmmm128
	VEX_Vpaddq_ymm_ymm_ymmm256
	VEX_Vpsubb_xmm_xmm_xmmm128
	VEX_Vpsubb_ymm_ymm_ymmm256
	VEX_Vpsubd_xmm_xmm_xmmm128
	VEX_Vpsubd_ymm_ymm_ymmm256
	VEX_Vpand_xmm_xmm_xmmm128
	VEX_Vpand_ymm_ymm_ymmm256
	VEX_Vpandn_xmm_xmm_xmmm128
	VEX_Vpandn_ymm_ymm_ymmm256
	VEX_Vpor_xmm_xmm_xmmm128
	VEX_Vpor_ymm_ymm_ymmm256
	VEX_Vpxor_xmm_xmm_xmmm128
	VEX_Vpxor_ymm_ymm_ymmm256
	VEX_Vpcmpeqb_xmm_xmm_xmmm128
	VEX_Vpcmpeqb_ymm_ymm_ymmm256
	VEX_Vpcmpeqd_xmm_xmm_xmmm128
	VEX_Vpcmpeqd_ymm_ymm_ymmm256
	VEX_Vpshufb_xmm_xmm_xmmm128
	VEX_Vpshufb_ymm_ymm_ymmm256
	VEX_Vpmulld_xmm_xmm_xmmm128
	VEX_Vpmulld_ymm_ymm_ymmm256
	VEX_Vpshufd_xmm_xmmm128_imm8
	VEX_Vpshufd_ymm_ymmm256_imm8
	VEX_Vptest_xmm_xmmm128
	VEX_Vptest_ymm_ymmm256
	VEX_Vzeroupper
	VEX_Vzeroall
	VEX_Vbroadcastss_xmm_m32
	VEX_Vbroadcastss_ymm_m32
	VEX_Vbroadcastss_xmm_xmm
	VEX_Vbroadcastss_ymm_xmm
	VEX_Vperm2f128_ymm_ymm_ymmm256_imm8
	VEX_Vinsertf128_ymm_ymm_xmmm128_imm8
	VEX_Vextractf128_xmmm128_ymm_imm8
	VEX_Vpermq_ymm_ymmm256_imm8
	VEX_Vblendvps_xmm_xmm_xmmm128_xmm
	VEX_Vblendvps_ymm_ymm_ymmm256_ymm
	VEX_Vfmadd132ps_xmm_xmm_xmmm128
	VEX_Vfmadd132ps_ymm_ymm_ymmm256
	VEX_Vfmadd132pd_xmm_xmm_xmmm128
	VEX_Vfmadd132pd_ymm_ymm_ymmm256
	VEX_Vfmadd213ps_xmm_xmm_xmmm128
	VEX_Vfmadd213ps_ymm_ymm_ymmm256
	VEX_Vfmadd231ps_xmm_xmm_xmmm128
	VEX_Vfmadd231ps_ymm_ymm_ymmm256
	VEX_Vfmadd231ss_xmm_xmm_xmmm32
	VEX_Vfmadd231sd_xmm_xmm_xmmm64
	VEX_Vcvtsi2ss_xmm_xmm_rm32
	VEX_Vcvtsi2ss_xmm_xmm_rm64
	VEX_Vcvttss2si_r32_xmmm32
	VEX_Vcvttss2si_r64_xmmm32
	VEX_Vucomiss_xmm_xmmm32
	VEX_Vcomiss_xmm_xmmm32
	VEX_Vldmxcsr_m32
	VEX_Vstmxcsr_m32
	VEX_Andn_r32_r32_rm32
	VEX_Andn_r64_r64_rm64
	VEX_Bextr_r32_rm32_r32
	VEX_Bextr_r64_rm64_r64
	VEX_Blsr_r32_rm32
	VEX_Blsr_r64_rm64
	VEX_Blsmsk_r32_rm32
	VEX_Blsmsk_r64_rm64
	VEX_Blsi_r32_rm32
	VEX_Blsi_r64_rm64
	VEX_Bzhi_r32_rm32_r32
	VEX_Bzhi_r64_rm64_r64
	VEX_Pdep_r32_r32_rm32
	VEX_Pdep_r64_r64_rm64
	VEX_Pext_r32_r32_rm32
	VEX_Pext_r64_r64_rm64
	VEX_Mulx_r32_r32_rm32
	VEX_Mulx_r64_r64_rm64
	VEX_Sarx_r32_rm32_r32
	VEX_Sarx_r64_rm64_r64
	VEX_Shlx_r32_rm32_r32
	VEX_Shlx_r64_rm64_r64
	VEX_Shrx_r32_rm32_r32
	VEX_Shrx_r64_rm64_r64
	VEX_Rorx_r32_rm32_imm8
	VEX_Rorx_r64_rm64_imm8
	VEX_Kandw_kr_kr_kr
	VEX_Kandb_kr_kr_kr
	VEX_Kandq_kr_kr_kr
	VEX_Kandd_kr_kr_kr
	VEX_Kandnw_kr_kr_kr
	VEX_Kandnb_kr_kr_kr
	VEX_Kandnq_kr_kr_kr
	VEX_Kandnd_kr_kr_kr
	VEX_Korw_kr_kr_kr
	VEX_Korb_kr_kr_kr
	VEX_Korq_kr_kr_kr
	VEX_Kord_kr_kr_kr
	VEX_Kxnorw_kr_kr_kr
	VEX_Kxnorb_kr_kr_kr
	VEX_Kxnorq_kr_kr_kr
	VEX_Kxnord_kr_kr_kr
	VEX_Kxorw_kr_kr_kr
	VEX_Kxorb_kr_kr_kr
	VEX_Kxorq_kr_kr_kr
	VEX_Kxord_kr_kr_kr
	VEX_Knotw_kr_kr
	VEX_Kortestw_kr_kr
	VEX_Kmovw_kr_km16
	VEX_Kmovw_m16_kr
	VEX_Kmovw_kr_r32
	VEX_Kmovw_r32_kr
	VEX_Kmovq_kr_km64
	VEX_Kmovq_r64_kr
	XOP_Vpcmov_xmm_xmm_xmmm128_xmm
	XOP_Vpcmov_ymm_ymm_ymmm256_ymm
	XOP_Vpcmov_xmm_xmm_xmm_xmmm128
	XOP_Vpcmov_ymm_ymm_ymm_ymmm256
	XOP_Vprotb_xmm_xmmm128_xmm
	XOP_Vprotb_xmm_xmm_xmmm128
	XOP_Vprotb_xmm_xmmm128_imm8
	XOP_Vpcomb_xmm_xmm_xmmm128_imm8
	XOP_Vfrczps_xmm_xmmm128
	XOP_Vfrczps_ymm_ymmm256
	XOP_Vphaddbw_xmm_xmmm128
	XOP_Blcfill_r32_rm32
	XOP_Blcfill_r64_rm64
	XOP_Bextr_r32_rm32_imm32
	XOP_Bextr_r64_rm64_imm32
	EVEX_Vaddps_xmm_k1z_xmm_xmmm128b32
	EVEX_Vaddps_ymm_k1z_ymm_ymmm256b32
	EVEX_Vaddps_zmm_k1z_zmm_zmmm512b32_er
	EVEX_Vaddss_xmm_k1z_xmm_xmmm32_er
	EVEX_Vaddpd_xmm_k1z_xmm_xmmm128b64
	EVEX_Vaddpd_ymm_k1z_ymm_ymmm256b64
	EVEX_Vaddpd_zmm_k1z_zmm_zmmm512b64_er
	EVEX_Vaddsd_xmm_k1z_xmm_xmmm64_er
	EVEX_Vmulps_xmm_k1z_xmm_xmmm128b32
	EVEX_Vmulps_ymm_k1z_ymm_ymmm256b32
	EVEX_Vmulps_zmm_k1z_zmm_zmmm512b32_er
	EVEX_Vmulss_xmm_k1z_xmm_xmmm32_er
	EVEX_Vmulpd_xmm_k1z_xmm_xmmm128b64
	EVEX_Vmulpd_ymm_k1z_ymm_ymmm256b64
	EVEX_Vmulpd_zmm_k1z_zmm_zmmm512b64_er
	EVEX_Vmulsd_xmm_k1z_xmm_xmmm64_er
	EVEX_Vsubps_xmm_k1z_xmm_xmmm128b32
	EVEX_Vsubps_ymm_k1z_ymm_ymmm256b32
	EVEX_Vsubps_zmm_k1z_zmm_zmmm512b32_er
	EVEX_Vsubss_xmm_k1z_xmm_xmmm32_er
	EVEX_Vsubpd_xmm_k1z_xmm_xmmm128b64
	EVEX_Vsubpd_ymm_k1z_ymm_ymmm256b64
	EVEX_Vsubpd_zmm_k1z_zmm_zmmm512b64_er
	EVEX_Vsubsd_xmm_k1z_xmm_xmmm64_er
	EVEX_Vdivps_xmm_k1z_xmm_xmmm128b32
	EVEX_Vdivps_ymm_k1z_ymm_ymmm256b32
	EVEX_Vdivps_zmm_k1z_zmm_zmmm512b32_er
	EVEX_Vdivss_xmm_k1z_xmm_xmmm32_er
	EVEX_Vdivpd_xmm_k1z_xmm_xmmm128b64
	EVEX_Vdivpd_ymm_k1z_ymm_ymmm256b64
	EVEX_Vdivpd_zmm_k1z_zmm_zmmm512b64_er
	EVEX_Vdivsd_xmm_k1z_xmm_xmmm64_er
	EVEX_Vmaxps_xmm_k1z_xmm_xmmm128b32
	EVEX_Vmaxps_ymm_k1z_ymm_ymmm256b32
	EVEX_Vmaxps_zmm_k1z_zmm_zmmm512b32_sae
	EVEX_Vmaxpd_xmm_k1z_xmm_xmmm128b64
	EVEX_Vmaxpd_ymm_k1z_ymm_ymmm256b64
	EVEX_Vmaxpd_zmm_k1z_zmm_zmmm512b64_sae
	EVEX_Vpaddd_xmm_k1z_xmm_xmmm128b32
	EVEX_Vpaddd_ymm_k1z_ymm_ymmm256b32
	EVEX_Vpaddd_zmm_k1z_zmm_zmmm512b32
	EVEX_Vpaddq_xmm_k1z_xmm_xmmm128b64
	EVEX_Vpaddq_ymm_k1z_ymm_ymmm256b64
	EVEX_Vpaddq_zmm_k1z_zmm_zmmm512b64
	EVEX_Vpsubd_xmm_k1z_xmm_xmmm128b32
	EVEX_Vpsubd_ymm_k1z_ymm_ymmm256b32
	EVEX_Vpsubd_zmm_k1z_zmm_zmmm512b32
	EVEX_Vpandd_xmm_k1z_xmm_xmmm128b32
	EVEX_Vpandd_ymm_k1z_ymm_ymmm256b32
	EVEX_Vpandd_zmm_k1z_zmm_zmmm512b32
	EVEX_Vpandq_xmm_k1z_xmm_xmmm128b64
	EVEX_Vpandq_ymm_k1z_ymm_ymmm256b64
	EVEX_Vpandq_zmm_k1z_zmm_zmmm512b64
	EVEX_Vpmulld_xmm_k1z_xmm_xmmm128b32
	EVEX_Vpmulld_ymm_k1z_ymm_ymmm256b32
	EVEX_Vpmulld_zmm_k1z_zmm_zmmm512b32
	EVEX_Vpternlogd_xmm_k1z_xmm_xmmm128b32_imm8
	EVEX_Vpcmpeqd_kr_k1_xmm_xmmm128b32
	EVEX_Vcmpps_kr_k1_xmm_xmmm128b32_imm8
	EVEX_Vmovups_xmm_k1z_xmmm128
	EVEX_Vmovups_xmmm128_k1z_xmm
	EVEX_Vmovaps_xmm_k1z_xmmm128
	EVEX_Vmovaps_xmmm128_k1z_xmm
	EVEX_Vmovdqa32_xmm_k1z_xmmm128
	EVEX_Vmovdqa32_xmmm128_k1z_xmm
	EVEX_Vmovdqa64_xmm_k1z_xmmm128
	EVEX_Vmovdqa64_xmmm128_k1z_xmm
	EVEX_Vpternlogd_ymm_k1z_ymm_ymmm256b32_imm8
	EVEX_Vpcmpeqd_kr_k1_ymm_ymmm256b32
	EVEX_Vcmpps_kr_k1_ymm_ymmm256b32_imm8
	EVEX_Vmovups_ymm_k1z_ymmm256
	EVEX_Vmovups_ymmm256_k1z_ymm
	EVEX_Vmovaps_ymm_k1z_ymmm256
	EVEX_Vmovaps_ymmm256_k1z_ymm
	EVEX_Vmovdqa32_ymm_k1z_ymmm256
	EVEX_Vmovdqa32_ymmm256_k1z_ymm
	EVEX_Vmovdqa64_ymm_k1z_ymmm256
	EVEX_Vmovdqa64_ymmm256_k1z_ymm
	EVEX_Vbroadcastss_ymm_k1z_xmmm32
	EVEX_Vpternlogd_zmm_k1z_zmm_zmmm512b32_imm8
	EVEX_Vpcmpeqd_kr_k1_zmm_zmmm512b32
	EVEX_Vcmpps_kr_k1_zmm_zmmm512b32_imm8_sae
	EVEX_Vmovups_zmm_k1z_zmmm512
	EVEX_Vmovups_zmmm512_k1z_zmm
	EVEX_Vmovaps_zmm_k1z_zmmm512
	EVEX_Vmovaps_zmmm512_k1z_zmm
	EVEX_Vmovdqa32_zmm_k1z_zmmm512
	EVEX_Vmovdqa32_zmmm512_k1z_zmm
	EVEX_Vmovdqa64_zmm_k1z_zmmm512
	EVEX_Vmovdqa64_zmmm512_k1z_zmm
	EVEX_Vbroadcastss_zmm_k1z_xmmm32
	EVEX_Vmovd_xmm_rm32
	EVEX_Vmovq_xmm_rm64
	EVEX_Vmovd_rm32_xmm
	EVEX_Vmovq_rm64_xmm
	MVEX_Vaddps_zmm_k1_zmm_zmmmt
	MVEX_Vmulps_zmm_k1_zmm_zmmmt
	MVEX_Vsubps_zmm_k1_zmm_zmmmt
	MVEX_Vpaddd_zmm_k1_zmm_zmmmt
	MVEX_Vpandd_zmm_k1_zmm_zmmmt
	MVEX_Vmovaps_zmm_k1_zmmmt
	MVEX_Vmovaps_mt_k1_zmm
	VEX_Vpgatherdd_xmm_vm32x_xmm
	VEX_Vpgatherdd_ymm_vm32y_ymm
	VEX_Vpgatherdq_xmm_vm32x_xmm
	VEX_Vpgatherdq_ymm_vm32x_ymm
	VEX_Vpgatherqd_xmm_vm64x_xmm
	VEX_Vpgatherqd_xmm_vm64y_xmm
	VEX_Vpgatherqq_xmm_vm64x_xmm
	VEX_Vpgatherqq_ymm_vm64y_ymm
	VEX_Vgatherdps_xmm_vm32x_xmm
	VEX_Vgatherdps_ymm_vm32y_ymm
	VEX_Vgatherdpd_xmm_vm32x_xmm
	VEX_Vgatherdpd_ymm_vm32x_ymm
	VEX_Vgatherqps_xmm_vm64x_xmm
	VEX_Vgatherqps_xmm_vm64y_xmm
	VEX_Vgatherqpd_xmm_vm64x_xmm
	VEX_Vgatherqpd_ymm_vm64y_ymm
	EVEX_Vpgatherdd_xmm_k1_vm32x
	EVEX_Vpgatherdd_ymm_k1_vm32y
	EVEX_Vpgatherdd_zmm_k1_vm32z
	EVEX_Vpgatherdq_xmm_k1_vm32x
	EVEX_Vpgatherdq_ymm_k1_vm32x
	EVEX_Vpgatherdq_zmm_k1_vm32y
	EVEX_Vpgatherqd_xmm_k1_vm64x
	EVEX_Vpgatherqd_xmm_k1_vm64y
	EVEX_Vpgatherqd_ymm_k1_vm64z
	EVEX_Vpgatherqq_xmm_k1_vm64x
	EVEX_Vpgatherqq_ymm_k1_vm64y
	EVEX_Vpgatherqq_zmm_k1_vm64z
	EVEX_Vgatherdps_xmm_k1_vm32x
	EVEX_Vgatherdps_ymm_k1_vm32y
	EVEX_Vgatherdps_zmm_k1_vm32z
	EVEX_Vgatherdpd_xmm_k1_vm32x
	EVEX_Vgatherdpd_ymm_k1_vm32x
	EVEX_Vgatherdpd_zmm_k1_vm32y
	EVEX_Vgatherqps_xmm_k1_vm64x
	EVEX_Vgatherqps_xmm_k1_vm64y
	EVEX_Vgatherqps_ymm_k1_vm64z
	EVEX_Vgatherqpd_xmm_k1_vm64x
	EVEX_Vgatherqpd_ymm_k1_vm64y
	EVEX_Vgatherqpd_zmm_k1_vm64z
	EVEX_Vpscatterdd_vm32x_k1_xmm
	EVEX_Vpscatterdd_vm32y_k1_ymm
	EVEX_Vpscatterdd_vm32z_k1_zmm
	EVEX_Vpscatterdq_vm32x_k1_xmm
	EVEX_Vpscatterdq_vm32x_k1_ymm
	EVEX_Vpscatterdq_vm32y_k1_zmm
	EVEX_Vpscatterqd_vm64x_k1_xmm
	EVEX_Vpscatterqd_vm64y_k1_xmm
	EVEX_Vpscatterqd_vm64z_k1_ymm
	EVEX_Vpscatterqq_vm64x_k1_xmm
	EVEX_Vpscatterqq_vm64y_k1_ymm
	EVEX_Vpscatterqq_vm64z_k1_zmm
	EVEX_Vscatterdps_vm32x_k1_xmm
	EVEX_Vscatterdps_vm32y_k1_ymm
	EVEX_Vscatterdps_vm32z_k1_zmm
	EVEX_Vscatterdpd_vm32x_k1_xmm
	EVEX_Vscatterdpd_vm32x_k1_ymm
	EVEX_Vscatterdpd_vm32y_k1_zmm
	EVEX_Vscatterqps_vm64x_k1_xmm
	EVEX_Vscatterqps_vm64y_k1_xmm
	EVEX_Vscatterqps_vm64z_k1_ymm
	EVEX_Vscatterqpd_vm64x_k1_xmm
	EVEX_Vscatterqpd_vm64y_k1_ymm
	EVEX_Vscatterqpd_vm64z_k1_zmm
)

// NumberOfCodeValues is the number of Code values.
const NumberOfCodeValues = 1958
