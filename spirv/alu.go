package spirv

import "github.com/gogpu/spvgen/ir"

// aluOpcodes maps ALU ops that lower to a single core instruction.
var aluOpcodes = map[ir.ALUOp]OpCode{
	ir.OpFNeg:       OpFNegate,
	ir.OpFDdx:       OpDPdx,
	ir.OpFDdy:       OpDPdy,
	ir.OpFDdxFine:   OpDPdxFine,
	ir.OpFDdyFine:   OpDPdyFine,
	ir.OpFDdxCoarse: OpDPdxCoarse,
	ir.OpFDdyCoarse: OpDPdyCoarse,

	ir.OpINeg:        OpSNegate,
	ir.OpBitfieldRev: OpBitReverse,
	ir.OpBitCount:    OpBitCount,

	ir.OpF2I: OpConvertFToS,
	ir.OpF2U: OpConvertFToU,
	ir.OpI2F: OpConvertSToF,
	ir.OpU2F: OpConvertUToF,

	ir.OpFAdd: OpFAdd,
	ir.OpFSub: OpFSub,
	ir.OpFMul: OpFMul,
	ir.OpFDiv: OpFDiv,
	ir.OpFMod: OpFMod,
	ir.OpFRem: OpFRem,
	ir.OpFLt:  OpFOrdLessThan,
	ir.OpFGe:  OpFOrdGreaterThanEqual,
	ir.OpFEq:  OpFOrdEqual,
	ir.OpFNeu: OpFUnordNotEqual,

	ir.OpIAdd: OpIAdd,
	ir.OpISub: OpISub,
	ir.OpIMul: OpIMul,
	ir.OpIDiv: OpSDiv,
	ir.OpUDiv: OpUDiv,
	ir.OpUMod: OpUMod,
	ir.OpIRem: OpSRem,
	ir.OpIMod: OpSMod,
	ir.OpIShl: OpShiftLeftLogical,
	ir.OpIShr: OpShiftRightArithmetic,
	ir.OpUShr: OpShiftRightLogical,
	ir.OpILt:  OpSLessThan,
	ir.OpIGe:  OpSGreaterThanEqual,
	ir.OpULt:  OpULessThan,
	ir.OpUGe:  OpUGreaterThanEqual,

	ir.OpBitfieldInsert:   OpBitFieldInsert,
	ir.OpIBitfieldExtract: OpBitFieldSExtract,
	ir.OpUBitfieldExtract: OpBitFieldUExtract,
}

// aluGLSL maps ALU ops that lower to a GLSL.std.450 instruction.
var aluGLSL = map[ir.ALUOp]uint32{
	ir.OpFAbs:       GLSLstd450FAbs,
	ir.OpFSign:      GLSLstd450FSign,
	ir.OpFFloor:     GLSLstd450Floor,
	ir.OpFCeil:      GLSLstd450Ceil,
	ir.OpFTrunc:     GLSLstd450Trunc,
	ir.OpFRoundEven: GLSLstd450RoundEven,
	ir.OpFFract:     GLSLstd450Fract,
	ir.OpFSqrt:      GLSLstd450Sqrt,
	ir.OpFRsq:       GLSLstd450InverseSqrt,
	ir.OpFExp2:      GLSLstd450Exp2,
	ir.OpFLog2:      GLSLstd450Log2,
	ir.OpFSin:       GLSLstd450Sin,
	ir.OpFCos:       GLSLstd450Cos,

	ir.OpIAbs:           GLSLstd450SAbs,
	ir.OpISign:          GLSLstd450SSign,
	ir.OpUFindMSB:       GLSLstd450FindUMsb,
	ir.OpIFindMSB:       GLSLstd450FindSMsb,
	ir.OpFindLSB:        GLSLstd450FindILsb,
	ir.OpPackHalf2x16:   GLSLstd450PackHalf2x16,
	ir.OpUnpackHalf2x16: GLSLstd450UnpackHalf2x16,

	ir.OpFMin:  GLSLstd450FMin,
	ir.OpFMax:  GLSLstd450FMax,
	ir.OpFPow:  GLSLstd450Pow,
	ir.OpLdexp: GLSLstd450Ldexp,
	ir.OpIMin:  GLSLstd450SMin,
	ir.OpIMax:  GLSLstd450SMax,
	ir.OpUMin:  GLSLstd450UMin,
	ir.OpUMax:  GLSLstd450UMax,

	ir.OpFFma: GLSLstd450Fma,
	ir.OpFLrp: GLSLstd450FMix,
}

// logicalOps are the bool forms of bitwise and integer compare ops.
var logicalOps = map[ir.ALUOp]OpCode{
	ir.OpINot: OpLogicalNot,
	ir.OpIAnd: OpLogicalAnd,
	ir.OpIOr:  OpLogicalOr,
	ir.OpIXor: OpLogicalNotEqual,
	ir.OpIEq:  OpLogicalEqual,
	ir.OpINe:  OpLogicalNotEqual,
}

var bitwiseOps = map[ir.ALUOp]OpCode{
	ir.OpINot: OpNot,
	ir.OpIAnd: OpBitwiseAnd,
	ir.OpIOr:  OpBitwiseOr,
	ir.OpIXor: OpBitwiseXor,
	ir.OpIEq:  OpIEqual,
	ir.OpINe:  OpINotEqual,
}

// aluSrc returns v swizzled to n components and reinterpreted as kind.
func (s *session) aluSrc(v value, swizzle []uint32, n uint8, kind ir.BaseType) value {
	identity := len(swizzle) == 0
	if !identity {
		if len(swizzle) < int(n) {
			panic(malformedf("swizzle of %d components for a %d-component operand", len(swizzle), n))
		}
		swizzle = swizzle[:n]
		identity = v.comps == n
		for i, c := range swizzle {
			if c >= uint32(v.comps) {
				panic(malformedf("swizzle component %d of a %d-component value", c, v.comps))
			}
			if c != uint32(i) {
				identity = false
			}
		}
	} else {
		swizzle = make([]uint32, n)
		for i := range swizzle {
			swizzle[i] = uint32(min(i, int(v.comps)-1))
		}
	}

	if !identity || v.comps != n {
		out := value{bits: v.bits, comps: n, kind: v.kind}
		scalar := s.typeOf(v.kind, v.bits, 1)
		switch {
		case v.comps == 1:
			parts := make([]uint32, n)
			for i := range parts {
				parts[i] = v.id
			}
			out.id = v.id
			if n > 1 {
				out.id = s.m.AddCompositeConstruct(s.valueType(out), parts...)
			}
		case n == 1:
			out.id = s.m.AddCompositeExtract(scalar, v.id, swizzle[0])
		default:
			out.id = s.m.AddVectorShuffle(s.valueType(out), v.id, v.id, swizzle)
		}
		v = out
	}
	return s.as(v, kind)
}

func (s *session) emitALU(a *ir.ALU) {
	info, ok := a.Op.Info()
	if !ok {
		panic(unsupportedf("alu op %q", a.Op))
	}
	if len(a.Srcs) != info.NumInputs() {
		panic(malformedf("%s with %d sources, want %d", a.Op, len(a.Srcs), info.NumInputs()))
	}
	destComps := max(a.Dest.Components, 1)
	srcs := make([]value, len(a.Srcs))
	for i, src := range a.Srcs {
		n := info.InputSizes[i]
		if n == 0 {
			n = destComps
		}
		v := s.src(src.Src())
		kind := info.InputKinds[i]
		if a.Op == ir.OpMov {
			kind = v.kind
		}
		srcs[i] = s.aluSrc(v, src.Swizzle, n, kind)
	}

	kind := info.OutputKind
	if a.Dest.BitSize == 1 {
		kind = ir.BaseBool
	}
	resultType := s.typeOf(kind, a.Dest.BitSize, destComps)
	ids := make([]uint32, len(srcs))
	for i := range srcs {
		ids[i] = srcs[i].id
	}

	var result uint32
	switch a.Op {
	case ir.OpMov:
		s.def(a.Dest, srcs[0].id, srcs[0].kind)
		return
	case ir.OpVec2, ir.OpVec3, ir.OpVec4:
		result = s.m.AddCompositeConstruct(resultType, ids...)

	case ir.OpFRcp:
		one := s.splat(s.types.ConstScalar(ir.BaseFloat, a.Dest.BitSize, floatOne(a.Dest.BitSize)), resultType, destComps)
		result = s.m.AddBinaryOp(OpFDiv, resultType, one, ids[0])
	case ir.OpFSat:
		zero := s.splat(s.types.ConstScalar(ir.BaseFloat, a.Dest.BitSize, 0), resultType, destComps)
		one := s.splat(s.types.ConstScalar(ir.BaseFloat, a.Dest.BitSize, floatOne(a.Dest.BitSize)), resultType, destComps)
		result = s.extInst(resultType, GLSLstd450FClamp, ids[0], zero, one)

	case ir.OpF2F, ir.OpI2I, ir.OpU2U:
		if srcs[0].bits == a.Dest.BitSize {
			s.def(a.Dest, srcs[0].id, kind)
			return
		}
		op := map[ir.ALUOp]OpCode{ir.OpF2F: OpFConvert, ir.OpI2I: OpSConvert, ir.OpU2U: OpUConvert}[a.Op]
		result = s.m.AddUnaryOp(op, resultType, ids[0])
	case ir.OpB2F, ir.OpB2I:
		one := uint64(1)
		if kind == ir.BaseFloat {
			one = floatOne(a.Dest.BitSize)
		}
		result = s.m.AddSelect(resultType, ids[0],
			s.splat(s.types.ConstScalar(kind, a.Dest.BitSize, one), resultType, destComps),
			s.splat(s.types.ConstScalar(kind, a.Dest.BitSize, 0), resultType, destComps))
	case ir.OpF2B, ir.OpI2B:
		srcType := s.valueType(srcs[0])
		zero := s.splat(s.types.ConstScalar(srcs[0].kind, srcs[0].bits, 0), srcType, destComps)
		op := OpFOrdNotEqual
		if a.Op == ir.OpI2B {
			op = OpINotEqual
		}
		result = s.m.AddBinaryOp(op, resultType, ids[0], zero)
	case ir.OpPack64_2x32, ir.OpUnpack64_2x32:
		result = s.m.AddUnaryOp(OpBitcast, resultType, ids[0])
	case ir.OpFDot2, ir.OpFDot3, ir.OpFDot4:
		result = s.m.AddBinaryOp(OpDot, resultType, ids[0], ids[1])

	case ir.OpINot, ir.OpIAnd, ir.OpIOr, ir.OpIXor, ir.OpIEq, ir.OpINe:
		op := bitwiseOps[a.Op]
		if srcs[0].kind == ir.BaseBool {
			op = logicalOps[a.Op]
		}
		result = s.m.AddOp(op, resultType, ids...)

	case ir.OpBCSel:
		if srcs[1].kind == ir.BaseBool {
			kind = ir.BaseBool
			resultType = s.valueType(srcs[1])
		}
		result = s.m.AddSelect(resultType, ids[0], ids[1], ids[2])

	default:
		if op, ok := aluOpcodes[a.Op]; ok {
			switch op {
			case OpDPdxFine, OpDPdyFine, OpDPdxCoarse, OpDPdyCoarse:
				s.capability(CapabilityDerivativeControl)
			}
			result = s.m.AddOp(op, resultType, ids...)
			break
		}
		inst, ok := aluGLSL[a.Op]
		if !ok {
			panic(unsupportedf("alu op %q", a.Op))
		}
		result = s.extInst(resultType, inst, ids...)
	}

	if a.Exact {
		s.m.AddDecorate(result, DecorationNoContraction)
	}
	s.def(a.Dest, result, kind)
}

// floatOne returns the bit pattern of 1.0 at the given width.
func floatOne(bits uint8) uint64 {
	switch bits {
	case 16:
		return 0x3c00
	case 64:
		return 0x3ff0000000000000
	}
	return 0x3f800000
}
