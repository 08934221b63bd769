package spirv

// OpCode represents a SPIR-V opcode.
type OpCode uint16

// Module-level and debug opcodes
const (
	OpNop           OpCode = 0
	OpUndef         OpCode = 1
	OpSource        OpCode = 3
	OpName          OpCode = 5
	OpMemberName    OpCode = 6
	OpString        OpCode = 7
	OpExtension     OpCode = 10
	OpExtInstImport OpCode = 11
	OpExtInst       OpCode = 12
	OpMemoryModel   OpCode = 14
	OpEntryPoint    OpCode = 15
	OpExecutionMode OpCode = 16
	OpCapability    OpCode = 17
)

// Type opcodes
const (
	OpTypeVoid         OpCode = 19
	OpTypeBool         OpCode = 20
	OpTypeInt          OpCode = 21
	OpTypeFloat        OpCode = 22
	OpTypeVector       OpCode = 23
	OpTypeMatrix       OpCode = 24
	OpTypeImage        OpCode = 25
	OpTypeSampler      OpCode = 26
	OpTypeSampledImage OpCode = 27
	OpTypeArray        OpCode = 28
	OpTypeRuntimeArray OpCode = 29
	OpTypeStruct       OpCode = 30
	OpTypePointer      OpCode = 32
	OpTypeFunction     OpCode = 33
)

// Constant opcodes
const (
	OpConstantTrue          OpCode = 41
	OpConstantFalse         OpCode = 42
	OpConstant              OpCode = 43
	OpConstantComposite     OpCode = 44
	OpConstantNull          OpCode = 46
	OpSpecConstant          OpCode = 50
	OpSpecConstantComposite OpCode = 51
)

// Function, memory and annotation opcodes
const (
	OpFunction          OpCode = 54
	OpFunctionParameter OpCode = 55
	OpFunctionEnd       OpCode = 56
	OpVariable          OpCode = 59
	OpImageTexelPointer OpCode = 60
	OpLoad              OpCode = 61
	OpStore             OpCode = 62
	OpAccessChain       OpCode = 65
	OpArrayLength       OpCode = 68
	OpDecorate          OpCode = 71
	OpMemberDecorate    OpCode = 72
)

// Composite opcodes
const (
	OpVectorExtractDynamic OpCode = 77
	OpVectorShuffle        OpCode = 79
	OpCompositeConstruct   OpCode = 80
	OpCompositeExtract     OpCode = 81
	OpCompositeInsert      OpCode = 82
)

// Image instruction opcodes
const (
	OpSampledImage                OpCode = 86
	OpImageSampleImplicitLod      OpCode = 87
	OpImageSampleExplicitLod      OpCode = 88
	OpImageSampleDrefImplicitLod  OpCode = 89
	OpImageSampleDrefExplicitLod  OpCode = 90
	OpImageSampleProjImplicitLod  OpCode = 91
	OpImageSampleProjExplicitLod  OpCode = 92
	OpImageSampleProjDrefImplicit OpCode = 93
	OpImageSampleProjDrefExplicit OpCode = 94
	OpImageFetch                  OpCode = 95
	OpImageGather                 OpCode = 96
	OpImageDrefGather             OpCode = 97
	OpImageRead                   OpCode = 98
	OpImageWrite                  OpCode = 99
	OpImage                       OpCode = 100
	OpImageQuerySizeLod           OpCode = 103
	OpImageQuerySize              OpCode = 104
	OpImageQueryLod               OpCode = 105
	OpImageQueryLevels            OpCode = 106
	OpImageQuerySamples           OpCode = 107
)

// Conversion opcodes
const (
	OpConvertFToU OpCode = 109
	OpConvertFToS OpCode = 110
	OpConvertSToF OpCode = 111
	OpConvertUToF OpCode = 112
	OpUConvert    OpCode = 113
	OpSConvert    OpCode = 114
	OpFConvert    OpCode = 115
	OpBitcast     OpCode = 124
)

// Arithmetic opcodes
const (
	OpSNegate OpCode = 126
	OpFNegate OpCode = 127
	OpIAdd    OpCode = 128
	OpFAdd    OpCode = 129
	OpISub    OpCode = 130
	OpFSub    OpCode = 131
	OpIMul    OpCode = 132
	OpFMul    OpCode = 133
	OpUDiv    OpCode = 134
	OpSDiv    OpCode = 135
	OpFDiv    OpCode = 136
	OpUMod    OpCode = 137
	OpSRem    OpCode = 138
	OpSMod    OpCode = 139
	OpFRem    OpCode = 140
	OpFMod    OpCode = 141
	OpDot     OpCode = 148
)

// Relational and logical opcodes
const (
	OpLogicalEqual          OpCode = 164
	OpLogicalNotEqual       OpCode = 165
	OpLogicalOr             OpCode = 166
	OpLogicalAnd            OpCode = 167
	OpLogicalNot            OpCode = 168
	OpSelect                OpCode = 169
	OpIEqual                OpCode = 170
	OpINotEqual             OpCode = 171
	OpUGreaterThan          OpCode = 172
	OpSGreaterThan          OpCode = 173
	OpUGreaterThanEqual     OpCode = 174
	OpSGreaterThanEqual     OpCode = 175
	OpULessThan             OpCode = 176
	OpSLessThan             OpCode = 177
	OpULessThanEqual        OpCode = 178
	OpSLessThanEqual        OpCode = 179
	OpFOrdEqual             OpCode = 180
	OpFUnordEqual           OpCode = 181
	OpFOrdNotEqual          OpCode = 182
	OpFUnordNotEqual        OpCode = 183
	OpFOrdLessThan          OpCode = 184
	OpFUnordLessThan        OpCode = 185
	OpFOrdGreaterThan       OpCode = 186
	OpFOrdLessThanEqual     OpCode = 188
	OpFOrdGreaterThanEqual  OpCode = 190
)

// Bit opcodes
const (
	OpShiftRightLogical    OpCode = 194
	OpShiftRightArithmetic OpCode = 195
	OpShiftLeftLogical     OpCode = 196
	OpBitwiseOr            OpCode = 197
	OpBitwiseXor           OpCode = 198
	OpBitwiseAnd           OpCode = 199
	OpNot                  OpCode = 200
	OpBitFieldInsert       OpCode = 201
	OpBitFieldSExtract     OpCode = 202
	OpBitFieldUExtract     OpCode = 203
	OpBitReverse           OpCode = 204
	OpBitCount             OpCode = 205
)

// Derivative opcodes
const (
	OpDPdx       OpCode = 207
	OpDPdy       OpCode = 208
	OpDPdxFine   OpCode = 210
	OpDPdyFine   OpCode = 211
	OpDPdxCoarse OpCode = 213
	OpDPdyCoarse OpCode = 214
)

// Primitive, barrier and atomic opcodes
const (
	OpEmitVertex            OpCode = 218
	OpEndPrimitive          OpCode = 219
	OpEmitStreamVertex      OpCode = 220
	OpEndStreamPrimitive    OpCode = 221
	OpControlBarrier        OpCode = 224
	OpMemoryBarrier         OpCode = 225
	OpAtomicLoad            OpCode = 227
	OpAtomicStore           OpCode = 228
	OpAtomicExchange        OpCode = 229
	OpAtomicCompareExchange OpCode = 230
	OpAtomicIAdd            OpCode = 234
	OpAtomicSMin            OpCode = 236
	OpAtomicUMin            OpCode = 237
	OpAtomicSMax            OpCode = 238
	OpAtomicUMax            OpCode = 239
	OpAtomicAnd             OpCode = 240
	OpAtomicOr              OpCode = 241
	OpAtomicXor             OpCode = 242
)

// Control flow opcodes
const (
	OpLoopMerge         OpCode = 246
	OpSelectionMerge    OpCode = 247
	OpLabel             OpCode = 248
	OpBranch            OpCode = 249
	OpBranchConditional OpCode = 250
	OpKill              OpCode = 252
	OpReturn            OpCode = 253
	OpReturnValue       OpCode = 254
	OpUnreachable       OpCode = 255
)

// Subgroup and extension opcodes
const (
	OpGroupNonUniformAll          OpCode = 334
	OpGroupNonUniformAny          OpCode = 335
	OpGroupNonUniformAllEqual     OpCode = 336
	OpSubgroupBallotKHR           OpCode = 4421
	OpSubgroupFirstInvocationKHR  OpCode = 4422
	OpSubgroupReadInvocationKHR   OpCode = 4432
	OpReadClockKHR                OpCode = 5056
	OpBeginInvocationInterlockEXT OpCode = 5364
	OpEndInvocationInterlockEXT   OpCode = 5365
)

// IsTerminator reports whether op ends a block.
func (op OpCode) IsTerminator() bool {
	switch op {
	case OpBranch, OpBranchConditional, OpKill, OpReturn, OpReturnValue, OpUnreachable:
		return true
	}
	return false
}
