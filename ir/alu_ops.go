package ir

// ALUOp names an ALU operation. Conversion ops are width-generic: the
// source and destination bit sizes decide the exact conversion.
type ALUOp string

const (
	OpMov  ALUOp = "mov"
	OpVec2 ALUOp = "vec2"
	OpVec3 ALUOp = "vec3"
	OpVec4 ALUOp = "vec4"

	OpFNeg       ALUOp = "fneg"
	OpFAbs       ALUOp = "fabs"
	OpFSign      ALUOp = "fsign"
	OpFFloor     ALUOp = "ffloor"
	OpFCeil      ALUOp = "fceil"
	OpFTrunc     ALUOp = "ftrunc"
	OpFRoundEven ALUOp = "fround_even"
	OpFFract     ALUOp = "ffract"
	OpFSqrt      ALUOp = "fsqrt"
	OpFRsq       ALUOp = "frsq"
	OpFRcp       ALUOp = "frcp"
	OpFExp2      ALUOp = "fexp2"
	OpFLog2      ALUOp = "flog2"
	OpFSin       ALUOp = "fsin"
	OpFCos       ALUOp = "fcos"
	OpFSat       ALUOp = "fsat"
	OpFDdx       ALUOp = "fddx"
	OpFDdy       ALUOp = "fddy"
	OpFDdxFine   ALUOp = "fddx_fine"
	OpFDdyFine   ALUOp = "fddy_fine"
	OpFDdxCoarse ALUOp = "fddx_coarse"
	OpFDdyCoarse ALUOp = "fddy_coarse"

	OpINeg           ALUOp = "ineg"
	OpIAbs           ALUOp = "iabs"
	OpISign          ALUOp = "isign"
	OpINot           ALUOp = "inot"
	OpBitfieldRev    ALUOp = "bitfield_reverse"
	OpBitCount       ALUOp = "bit_count"
	OpUFindMSB       ALUOp = "ufind_msb"
	OpIFindMSB       ALUOp = "ifind_msb"
	OpFindLSB        ALUOp = "find_lsb"
	OpPackHalf2x16   ALUOp = "pack_half_2x16"
	OpUnpackHalf2x16 ALUOp = "unpack_half_2x16"
	OpPack64_2x32    ALUOp = "pack_64_2x32"
	OpUnpack64_2x32  ALUOp = "unpack_64_2x32"

	OpF2I ALUOp = "f2i"
	OpF2U ALUOp = "f2u"
	OpI2F ALUOp = "i2f"
	OpU2F ALUOp = "u2f"
	OpF2F ALUOp = "f2f"
	OpI2I ALUOp = "i2i"
	OpU2U ALUOp = "u2u"
	OpB2F ALUOp = "b2f"
	OpB2I ALUOp = "b2i"
	OpF2B ALUOp = "f2b"
	OpI2B ALUOp = "i2b"

	OpFAdd  ALUOp = "fadd"
	OpFSub  ALUOp = "fsub"
	OpFMul  ALUOp = "fmul"
	OpFDiv  ALUOp = "fdiv"
	OpFMod  ALUOp = "fmod"
	OpFRem  ALUOp = "frem"
	OpFMin  ALUOp = "fmin"
	OpFMax  ALUOp = "fmax"
	OpFPow  ALUOp = "fpow"
	OpFLt   ALUOp = "flt"
	OpFGe   ALUOp = "fge"
	OpFEq   ALUOp = "feq"
	OpFNeu  ALUOp = "fneu"
	OpFDot2 ALUOp = "fdot2"
	OpFDot3 ALUOp = "fdot3"
	OpFDot4 ALUOp = "fdot4"
	OpLdexp ALUOp = "ldexp"

	OpIAdd ALUOp = "iadd"
	OpISub ALUOp = "isub"
	OpIMul ALUOp = "imul"
	OpIDiv ALUOp = "idiv"
	OpUDiv ALUOp = "udiv"
	OpUMod ALUOp = "umod"
	OpIRem ALUOp = "irem"
	OpIMod ALUOp = "imod"
	OpIShl ALUOp = "ishl"
	OpIShr ALUOp = "ishr"
	OpUShr ALUOp = "ushr"
	OpIAnd ALUOp = "iand"
	OpIOr  ALUOp = "ior"
	OpIXor ALUOp = "ixor"
	OpILt  ALUOp = "ilt"
	OpIGe  ALUOp = "ige"
	OpIEq  ALUOp = "ieq"
	OpINe  ALUOp = "ine"
	OpULt  ALUOp = "ult"
	OpUGe  ALUOp = "uge"
	OpIMin ALUOp = "imin"
	OpIMax ALUOp = "imax"
	OpUMin ALUOp = "umin"
	OpUMax ALUOp = "umax"

	OpFFma             ALUOp = "ffma"
	OpFLrp             ALUOp = "flrp"
	OpBCSel            ALUOp = "bcsel"
	OpBitfieldInsert   ALUOp = "bitfield_insert"
	OpIBitfieldExtract ALUOp = "ibitfield_extract"
	OpUBitfieldExtract ALUOp = "ubitfield_extract"
)

// ALUInfo describes the operand and result interpretation of an ALU op.
// A zero input or output size means the op is applied per component.
type ALUInfo struct {
	InputKinds []BaseType
	InputSizes []uint8
	OutputKind BaseType
	OutputSize uint8
}

// NumInputs returns the number of operands the op takes.
func (i ALUInfo) NumInputs() int { return len(i.InputKinds) }

// Info returns the operand description of op.
func (op ALUOp) Info() (ALUInfo, bool) {
	info, ok := aluInfos[op]
	return info, ok
}

func unop(in, out BaseType) ALUInfo {
	return ALUInfo{InputKinds: []BaseType{in}, InputSizes: []uint8{0}, OutputKind: out}
}

func binop(in, out BaseType) ALUInfo {
	return ALUInfo{InputKinds: []BaseType{in, in}, InputSizes: []uint8{0, 0}, OutputKind: out}
}

func triop(a, b, c, out BaseType) ALUInfo {
	return ALUInfo{InputKinds: []BaseType{a, b, c}, InputSizes: []uint8{0, 0, 0}, OutputKind: out}
}

// bitfieldExtract takes a scalar offset and bit count.
func bitfieldExtract(kind BaseType) ALUInfo {
	return ALUInfo{InputKinds: []BaseType{kind, BaseInt, BaseInt}, InputSizes: []uint8{0, 1, 1}, OutputKind: kind}
}

func vecop(n int) ALUInfo {
	info := ALUInfo{OutputKind: BaseUint, OutputSize: uint8(n)}
	for range n {
		info.InputKinds = append(info.InputKinds, BaseUint)
		info.InputSizes = append(info.InputSizes, 1)
	}
	return info
}

func dotop(n uint8) ALUInfo {
	return ALUInfo{
		InputKinds: []BaseType{BaseFloat, BaseFloat},
		InputSizes: []uint8{n, n},
		OutputKind: BaseFloat,
		OutputSize: 1,
	}
}

var aluInfos = map[ALUOp]ALUInfo{
	OpMov:  unop(BaseUint, BaseUint),
	OpVec2: vecop(2),
	OpVec3: vecop(3),
	OpVec4: vecop(4),

	OpFNeg:       unop(BaseFloat, BaseFloat),
	OpFAbs:       unop(BaseFloat, BaseFloat),
	OpFSign:      unop(BaseFloat, BaseFloat),
	OpFFloor:     unop(BaseFloat, BaseFloat),
	OpFCeil:      unop(BaseFloat, BaseFloat),
	OpFTrunc:     unop(BaseFloat, BaseFloat),
	OpFRoundEven: unop(BaseFloat, BaseFloat),
	OpFFract:     unop(BaseFloat, BaseFloat),
	OpFSqrt:      unop(BaseFloat, BaseFloat),
	OpFRsq:       unop(BaseFloat, BaseFloat),
	OpFRcp:       unop(BaseFloat, BaseFloat),
	OpFExp2:      unop(BaseFloat, BaseFloat),
	OpFLog2:      unop(BaseFloat, BaseFloat),
	OpFSin:       unop(BaseFloat, BaseFloat),
	OpFCos:       unop(BaseFloat, BaseFloat),
	OpFSat:       unop(BaseFloat, BaseFloat),
	OpFDdx:       unop(BaseFloat, BaseFloat),
	OpFDdy:       unop(BaseFloat, BaseFloat),
	OpFDdxFine:   unop(BaseFloat, BaseFloat),
	OpFDdyFine:   unop(BaseFloat, BaseFloat),
	OpFDdxCoarse: unop(BaseFloat, BaseFloat),
	OpFDdyCoarse: unop(BaseFloat, BaseFloat),

	OpINeg:        unop(BaseInt, BaseInt),
	OpIAbs:        unop(BaseInt, BaseInt),
	OpISign:       unop(BaseInt, BaseInt),
	OpINot:        unop(BaseUint, BaseUint),
	OpBitfieldRev: unop(BaseUint, BaseUint),
	OpBitCount:    unop(BaseUint, BaseUint),
	OpUFindMSB:    unop(BaseUint, BaseInt),
	OpIFindMSB:    unop(BaseInt, BaseInt),
	OpFindLSB:     unop(BaseInt, BaseInt),
	OpPackHalf2x16: {
		InputKinds: []BaseType{BaseFloat}, InputSizes: []uint8{2},
		OutputKind: BaseUint, OutputSize: 1,
	},
	OpUnpackHalf2x16: {
		InputKinds: []BaseType{BaseUint}, InputSizes: []uint8{1},
		OutputKind: BaseFloat, OutputSize: 2,
	},
	OpPack64_2x32: {
		InputKinds: []BaseType{BaseUint}, InputSizes: []uint8{2},
		OutputKind: BaseUint, OutputSize: 1,
	},
	OpUnpack64_2x32: {
		InputKinds: []BaseType{BaseUint}, InputSizes: []uint8{1},
		OutputKind: BaseUint, OutputSize: 2,
	},

	OpF2I: unop(BaseFloat, BaseInt),
	OpF2U: unop(BaseFloat, BaseUint),
	OpI2F: unop(BaseInt, BaseFloat),
	OpU2F: unop(BaseUint, BaseFloat),
	OpF2F: unop(BaseFloat, BaseFloat),
	OpI2I: unop(BaseInt, BaseInt),
	OpU2U: unop(BaseUint, BaseUint),
	OpB2F: unop(BaseBool, BaseFloat),
	OpB2I: unop(BaseBool, BaseInt),
	OpF2B: unop(BaseFloat, BaseBool),
	OpI2B: unop(BaseInt, BaseBool),

	OpFAdd:  binop(BaseFloat, BaseFloat),
	OpFSub:  binop(BaseFloat, BaseFloat),
	OpFMul:  binop(BaseFloat, BaseFloat),
	OpFDiv:  binop(BaseFloat, BaseFloat),
	OpFMod:  binop(BaseFloat, BaseFloat),
	OpFRem:  binop(BaseFloat, BaseFloat),
	OpFMin:  binop(BaseFloat, BaseFloat),
	OpFMax:  binop(BaseFloat, BaseFloat),
	OpFPow:  binop(BaseFloat, BaseFloat),
	OpFLt:   binop(BaseFloat, BaseBool),
	OpFGe:   binop(BaseFloat, BaseBool),
	OpFEq:   binop(BaseFloat, BaseBool),
	OpFNeu:  binop(BaseFloat, BaseBool),
	OpFDot2: dotop(2),
	OpFDot3: dotop(3),
	OpFDot4: dotop(4),
	OpLdexp: {
		InputKinds: []BaseType{BaseFloat, BaseInt}, InputSizes: []uint8{0, 0},
		OutputKind: BaseFloat,
	},

	OpIAdd: binop(BaseInt, BaseInt),
	OpISub: binop(BaseInt, BaseInt),
	OpIMul: binop(BaseInt, BaseInt),
	OpIDiv: binop(BaseInt, BaseInt),
	OpUDiv: binop(BaseUint, BaseUint),
	OpUMod: binop(BaseUint, BaseUint),
	OpIRem: binop(BaseInt, BaseInt),
	OpIMod: binop(BaseInt, BaseInt),
	OpIShl: {
		InputKinds: []BaseType{BaseInt, BaseUint}, InputSizes: []uint8{0, 0},
		OutputKind: BaseInt,
	},
	OpIShr: {
		InputKinds: []BaseType{BaseInt, BaseUint}, InputSizes: []uint8{0, 0},
		OutputKind: BaseInt,
	},
	OpUShr: binop(BaseUint, BaseUint),
	OpIAnd: binop(BaseUint, BaseUint),
	OpIOr:  binop(BaseUint, BaseUint),
	OpIXor: binop(BaseUint, BaseUint),
	OpILt:  binop(BaseInt, BaseBool),
	OpIGe:  binop(BaseInt, BaseBool),
	OpIEq:  binop(BaseInt, BaseBool),
	OpINe:  binop(BaseInt, BaseBool),
	OpULt:  binop(BaseUint, BaseBool),
	OpUGe:  binop(BaseUint, BaseBool),
	OpIMin: binop(BaseInt, BaseInt),
	OpIMax: binop(BaseInt, BaseInt),
	OpUMin: binop(BaseUint, BaseUint),
	OpUMax: binop(BaseUint, BaseUint),

	OpFFma:             triop(BaseFloat, BaseFloat, BaseFloat, BaseFloat),
	OpFLrp:             triop(BaseFloat, BaseFloat, BaseFloat, BaseFloat),
	OpBCSel:            triop(BaseBool, BaseUint, BaseUint, BaseUint),
	OpBitfieldInsert:   {InputKinds: []BaseType{BaseUint, BaseUint, BaseInt, BaseInt}, InputSizes: []uint8{0, 0, 1, 1}, OutputKind: BaseUint},
	OpIBitfieldExtract: bitfieldExtract(BaseInt),
	OpUBitfieldExtract: bitfieldExtract(BaseUint),
}
