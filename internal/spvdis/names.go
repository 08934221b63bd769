package spvdis

import "github.com/gogpu/spvgen/spirv"

var opcodeNames = map[spirv.OpCode]string{
	spirv.OpNop:                         "OpNop",
	spirv.OpUndef:                       "OpUndef",
	spirv.OpSource:                      "OpSource",
	spirv.OpName:                        "OpName",
	spirv.OpMemberName:                  "OpMemberName",
	spirv.OpString:                      "OpString",
	spirv.OpExtension:                   "OpExtension",
	spirv.OpExtInstImport:               "OpExtInstImport",
	spirv.OpExtInst:                     "OpExtInst",
	spirv.OpMemoryModel:                 "OpMemoryModel",
	spirv.OpEntryPoint:                  "OpEntryPoint",
	spirv.OpExecutionMode:               "OpExecutionMode",
	spirv.OpCapability:                  "OpCapability",
	spirv.OpTypeVoid:                    "OpTypeVoid",
	spirv.OpTypeBool:                    "OpTypeBool",
	spirv.OpTypeInt:                     "OpTypeInt",
	spirv.OpTypeFloat:                   "OpTypeFloat",
	spirv.OpTypeVector:                  "OpTypeVector",
	spirv.OpTypeMatrix:                  "OpTypeMatrix",
	spirv.OpTypeImage:                   "OpTypeImage",
	spirv.OpTypeSampler:                 "OpTypeSampler",
	spirv.OpTypeSampledImage:            "OpTypeSampledImage",
	spirv.OpTypeArray:                   "OpTypeArray",
	spirv.OpTypeRuntimeArray:            "OpTypeRuntimeArray",
	spirv.OpTypeStruct:                  "OpTypeStruct",
	spirv.OpTypePointer:                 "OpTypePointer",
	spirv.OpTypeFunction:                "OpTypeFunction",
	spirv.OpConstantTrue:                "OpConstantTrue",
	spirv.OpConstantFalse:               "OpConstantFalse",
	spirv.OpConstant:                    "OpConstant",
	spirv.OpConstantComposite:           "OpConstantComposite",
	spirv.OpConstantNull:                "OpConstantNull",
	spirv.OpSpecConstant:                "OpSpecConstant",
	spirv.OpSpecConstantComposite:       "OpSpecConstantComposite",
	spirv.OpFunction:                    "OpFunction",
	spirv.OpFunctionParameter:           "OpFunctionParameter",
	spirv.OpFunctionEnd:                 "OpFunctionEnd",
	spirv.OpVariable:                    "OpVariable",
	spirv.OpImageTexelPointer:           "OpImageTexelPointer",
	spirv.OpLoad:                        "OpLoad",
	spirv.OpStore:                       "OpStore",
	spirv.OpAccessChain:                 "OpAccessChain",
	spirv.OpArrayLength:                 "OpArrayLength",
	spirv.OpDecorate:                    "OpDecorate",
	spirv.OpMemberDecorate:              "OpMemberDecorate",
	spirv.OpVectorExtractDynamic:        "OpVectorExtractDynamic",
	spirv.OpVectorShuffle:               "OpVectorShuffle",
	spirv.OpCompositeConstruct:          "OpCompositeConstruct",
	spirv.OpCompositeExtract:            "OpCompositeExtract",
	spirv.OpCompositeInsert:             "OpCompositeInsert",
	spirv.OpSampledImage:                "OpSampledImage",
	spirv.OpImageSampleImplicitLod:      "OpImageSampleImplicitLod",
	spirv.OpImageSampleExplicitLod:      "OpImageSampleExplicitLod",
	spirv.OpImageSampleDrefImplicitLod:  "OpImageSampleDrefImplicitLod",
	spirv.OpImageSampleDrefExplicitLod:  "OpImageSampleDrefExplicitLod",
	spirv.OpImageSampleProjImplicitLod:  "OpImageSampleProjImplicitLod",
	spirv.OpImageSampleProjExplicitLod:  "OpImageSampleProjExplicitLod",
	spirv.OpImageSampleProjDrefImplicit: "OpImageSampleProjDrefImplicitLod",
	spirv.OpImageSampleProjDrefExplicit: "OpImageSampleProjDrefExplicitLod",
	spirv.OpImageFetch:                  "OpImageFetch",
	spirv.OpImageGather:                 "OpImageGather",
	spirv.OpImageDrefGather:             "OpImageDrefGather",
	spirv.OpImageRead:                   "OpImageRead",
	spirv.OpImageWrite:                  "OpImageWrite",
	spirv.OpImage:                       "OpImage",
	spirv.OpImageQuerySizeLod:           "OpImageQuerySizeLod",
	spirv.OpImageQuerySize:              "OpImageQuerySize",
	spirv.OpImageQueryLod:               "OpImageQueryLod",
	spirv.OpImageQueryLevels:            "OpImageQueryLevels",
	spirv.OpImageQuerySamples:           "OpImageQuerySamples",
	spirv.OpConvertFToU:                 "OpConvertFToU",
	spirv.OpConvertFToS:                 "OpConvertFToS",
	spirv.OpConvertSToF:                 "OpConvertSToF",
	spirv.OpConvertUToF:                 "OpConvertUToF",
	spirv.OpUConvert:                    "OpUConvert",
	spirv.OpSConvert:                    "OpSConvert",
	spirv.OpFConvert:                    "OpFConvert",
	spirv.OpBitcast:                     "OpBitcast",
	spirv.OpSNegate:                     "OpSNegate",
	spirv.OpFNegate:                     "OpFNegate",
	spirv.OpIAdd:                        "OpIAdd",
	spirv.OpFAdd:                        "OpFAdd",
	spirv.OpISub:                        "OpISub",
	spirv.OpFSub:                        "OpFSub",
	spirv.OpIMul:                        "OpIMul",
	spirv.OpFMul:                        "OpFMul",
	spirv.OpUDiv:                        "OpUDiv",
	spirv.OpSDiv:                        "OpSDiv",
	spirv.OpFDiv:                        "OpFDiv",
	spirv.OpUMod:                        "OpUMod",
	spirv.OpSRem:                        "OpSRem",
	spirv.OpSMod:                        "OpSMod",
	spirv.OpFRem:                        "OpFRem",
	spirv.OpFMod:                        "OpFMod",
	spirv.OpDot:                         "OpDot",
	spirv.OpLogicalEqual:                "OpLogicalEqual",
	spirv.OpLogicalNotEqual:             "OpLogicalNotEqual",
	spirv.OpLogicalOr:                   "OpLogicalOr",
	spirv.OpLogicalAnd:                  "OpLogicalAnd",
	spirv.OpLogicalNot:                  "OpLogicalNot",
	spirv.OpSelect:                      "OpSelect",
	spirv.OpIEqual:                      "OpIEqual",
	spirv.OpINotEqual:                   "OpINotEqual",
	spirv.OpUGreaterThan:                "OpUGreaterThan",
	spirv.OpSGreaterThan:                "OpSGreaterThan",
	spirv.OpUGreaterThanEqual:           "OpUGreaterThanEqual",
	spirv.OpSGreaterThanEqual:           "OpSGreaterThanEqual",
	spirv.OpULessThan:                   "OpULessThan",
	spirv.OpSLessThan:                   "OpSLessThan",
	spirv.OpULessThanEqual:              "OpULessThanEqual",
	spirv.OpSLessThanEqual:              "OpSLessThanEqual",
	spirv.OpFOrdEqual:                   "OpFOrdEqual",
	spirv.OpFUnordEqual:                 "OpFUnordEqual",
	spirv.OpFOrdNotEqual:                "OpFOrdNotEqual",
	spirv.OpFUnordNotEqual:              "OpFUnordNotEqual",
	spirv.OpFOrdLessThan:                "OpFOrdLessThan",
	spirv.OpFUnordLessThan:              "OpFUnordLessThan",
	spirv.OpFOrdGreaterThan:             "OpFOrdGreaterThan",
	spirv.OpFOrdLessThanEqual:           "OpFOrdLessThanEqual",
	spirv.OpFOrdGreaterThanEqual:        "OpFOrdGreaterThanEqual",
	spirv.OpShiftRightLogical:           "OpShiftRightLogical",
	spirv.OpShiftRightArithmetic:        "OpShiftRightArithmetic",
	spirv.OpShiftLeftLogical:            "OpShiftLeftLogical",
	spirv.OpBitwiseOr:                   "OpBitwiseOr",
	spirv.OpBitwiseXor:                  "OpBitwiseXor",
	spirv.OpBitwiseAnd:                  "OpBitwiseAnd",
	spirv.OpNot:                         "OpNot",
	spirv.OpBitFieldInsert:              "OpBitFieldInsert",
	spirv.OpBitFieldSExtract:            "OpBitFieldSExtract",
	spirv.OpBitFieldUExtract:            "OpBitFieldUExtract",
	spirv.OpBitReverse:                  "OpBitReverse",
	spirv.OpBitCount:                    "OpBitCount",
	spirv.OpDPdx:                        "OpDPdx",
	spirv.OpDPdy:                        "OpDPdy",
	spirv.OpDPdxFine:                    "OpDPdxFine",
	spirv.OpDPdyFine:                    "OpDPdyFine",
	spirv.OpDPdxCoarse:                  "OpDPdxCoarse",
	spirv.OpDPdyCoarse:                  "OpDPdyCoarse",
	spirv.OpEmitVertex:                  "OpEmitVertex",
	spirv.OpEndPrimitive:                "OpEndPrimitive",
	spirv.OpEmitStreamVertex:            "OpEmitStreamVertex",
	spirv.OpEndStreamPrimitive:          "OpEndStreamPrimitive",
	spirv.OpControlBarrier:              "OpControlBarrier",
	spirv.OpMemoryBarrier:               "OpMemoryBarrier",
	spirv.OpAtomicLoad:                  "OpAtomicLoad",
	spirv.OpAtomicStore:                 "OpAtomicStore",
	spirv.OpAtomicExchange:              "OpAtomicExchange",
	spirv.OpAtomicCompareExchange:       "OpAtomicCompareExchange",
	spirv.OpAtomicIAdd:                  "OpAtomicIAdd",
	spirv.OpAtomicSMin:                  "OpAtomicSMin",
	spirv.OpAtomicUMin:                  "OpAtomicUMin",
	spirv.OpAtomicSMax:                  "OpAtomicSMax",
	spirv.OpAtomicUMax:                  "OpAtomicUMax",
	spirv.OpAtomicAnd:                   "OpAtomicAnd",
	spirv.OpAtomicOr:                    "OpAtomicOr",
	spirv.OpAtomicXor:                   "OpAtomicXor",
	spirv.OpLoopMerge:                   "OpLoopMerge",
	spirv.OpSelectionMerge:              "OpSelectionMerge",
	spirv.OpLabel:                       "OpLabel",
	spirv.OpBranch:                      "OpBranch",
	spirv.OpBranchConditional:           "OpBranchConditional",
	spirv.OpKill:                        "OpKill",
	spirv.OpReturn:                      "OpReturn",
	spirv.OpReturnValue:                 "OpReturnValue",
	spirv.OpUnreachable:                 "OpUnreachable",
	spirv.OpGroupNonUniformAll:          "OpGroupNonUniformAll",
	spirv.OpGroupNonUniformAny:          "OpGroupNonUniformAny",
	spirv.OpGroupNonUniformAllEqual:     "OpGroupNonUniformAllEqual",
	spirv.OpSubgroupBallotKHR:           "OpSubgroupBallotKHR",
	spirv.OpSubgroupFirstInvocationKHR:  "OpSubgroupFirstInvocationKHR",
	spirv.OpSubgroupReadInvocationKHR:   "OpSubgroupReadInvocationKHR",
	spirv.OpReadClockKHR:                "OpReadClockKHR",
	spirv.OpBeginInvocationInterlockEXT: "OpBeginInvocationInterlockEXT",
	spirv.OpEndInvocationInterlockEXT:   "OpEndInvocationInterlockEXT",
}

var capabilityNames = map[spirv.Capability]string{
	spirv.CapabilityMatrix:                             "Matrix",
	spirv.CapabilityShader:                             "Shader",
	spirv.CapabilityGeometry:                           "Geometry",
	spirv.CapabilityTessellation:                       "Tessellation",
	spirv.CapabilityAddresses:                          "Addresses",
	spirv.CapabilityFloat16:                            "Float16",
	spirv.CapabilityFloat64:                            "Float64",
	spirv.CapabilityInt64:                              "Int64",
	spirv.CapabilityInt16:                              "Int16",
	spirv.CapabilityTessellationPointSize:              "TessellationPointSize",
	spirv.CapabilityGeometryPointSize:                  "GeometryPointSize",
	spirv.CapabilityImageGatherExtended:                "ImageGatherExtended",
	spirv.CapabilityImageCubeArray:                     "ImageCubeArray",
	spirv.CapabilitySampleRateShading:                  "SampleRateShading",
	spirv.CapabilityInt8:                               "Int8",
	spirv.CapabilityInputAttachment:                    "InputAttachment",
	spirv.CapabilitySampled1D:                          "Sampled1D",
	spirv.CapabilityImage1D:                            "Image1D",
	spirv.CapabilitySampledBuffer:                      "SampledBuffer",
	spirv.CapabilityImageBuffer:                        "ImageBuffer",
	spirv.CapabilityImageMSArray:                       "ImageMSArray",
	spirv.CapabilityStorageImageExtendedFormats:        "StorageImageExtendedFormats",
	spirv.CapabilityImageQuery:                         "ImageQuery",
	spirv.CapabilityDerivativeControl:                  "DerivativeControl",
	spirv.CapabilityInterpolationFunction:              "InterpolationFunction",
	spirv.CapabilityTransformFeedback:                  "TransformFeedback",
	spirv.CapabilityGeometryStreams:                    "GeometryStreams",
	spirv.CapabilityStorageImageReadWithoutFormat:      "StorageImageReadWithoutFormat",
	spirv.CapabilityStorageImageWriteWithoutFormat:     "StorageImageWriteWithoutFormat",
	spirv.CapabilityMultiViewport:                      "MultiViewport",
	spirv.CapabilityGroupNonUniform:                    "GroupNonUniform",
	spirv.CapabilityGroupNonUniformVote:                "GroupNonUniformVote",
	spirv.CapabilityShaderLayer:                        "ShaderLayer",
	spirv.CapabilityShaderViewportIndex:                "ShaderViewportIndex",
	spirv.CapabilitySubgroupBallotKHR:                  "SubgroupBallotKHR",
	spirv.CapabilityDrawParameters:                     "DrawParameters",
	spirv.CapabilityStorageBuffer16BitAccess:           "StorageBuffer16BitAccess",
	spirv.CapabilityUniformAndStorageBuffer16BitAccess: "UniformAndStorageBuffer16BitAccess",
	spirv.CapabilityStoragePushConstant16:              "StoragePushConstant16",
	spirv.CapabilitySampleMaskPostDepthCoverage:        "SampleMaskPostDepthCoverage",
	spirv.CapabilityStorageBuffer8BitAccess:            "StorageBuffer8BitAccess",
	spirv.CapabilityUniformAndStorageBuffer8BitAccess:  "UniformAndStorageBuffer8BitAccess",
	spirv.CapabilityStoragePushConstant8:               "StoragePushConstant8",
	spirv.CapabilityStencilExportEXT:                   "StencilExportEXT",
	spirv.CapabilityShaderClockKHR:                     "ShaderClockKHR",
	spirv.CapabilityShaderViewportIndexLayerEXT:        "ShaderViewportIndexLayerEXT",
	spirv.CapabilityFragmentShaderSampleInterlockEXT:   "FragmentShaderSampleInterlockEXT",
	spirv.CapabilityFragmentShaderPixelInterlockEXT:    "FragmentShaderPixelInterlockEXT",
}

var executionModelNames = map[spirv.ExecutionModel]string{
	spirv.ExecutionModelVertex:                 "Vertex",
	spirv.ExecutionModelTessellationControl:    "TessellationControl",
	spirv.ExecutionModelTessellationEvaluation: "TessellationEvaluation",
	spirv.ExecutionModelGeometry:               "Geometry",
	spirv.ExecutionModelFragment:               "Fragment",
	spirv.ExecutionModelGLCompute:              "GLCompute",
}

var executionModeNames = map[spirv.ExecutionMode]string{
	spirv.ExecutionModeInvocations:              "Invocations",
	spirv.ExecutionModeSpacingEqual:             "SpacingEqual",
	spirv.ExecutionModeSpacingFractionalEven:    "SpacingFractionalEven",
	spirv.ExecutionModeSpacingFractionalOdd:     "SpacingFractionalOdd",
	spirv.ExecutionModeVertexOrderCw:            "VertexOrderCw",
	spirv.ExecutionModeVertexOrderCcw:           "VertexOrderCcw",
	spirv.ExecutionModeOriginUpperLeft:          "OriginUpperLeft",
	spirv.ExecutionModeEarlyFragmentTests:       "EarlyFragmentTests",
	spirv.ExecutionModePointMode:                "PointMode",
	spirv.ExecutionModeXfb:                      "Xfb",
	spirv.ExecutionModeDepthReplacing:           "DepthReplacing",
	spirv.ExecutionModeDepthGreater:             "DepthGreater",
	spirv.ExecutionModeDepthLess:                "DepthLess",
	spirv.ExecutionModeDepthUnchanged:           "DepthUnchanged",
	spirv.ExecutionModeLocalSize:                "LocalSize",
	spirv.ExecutionModeInputPoints:              "InputPoints",
	spirv.ExecutionModeInputLines:               "InputLines",
	spirv.ExecutionModeInputLinesAdjacency:      "InputLinesAdjacency",
	spirv.ExecutionModeTriangles:                "Triangles",
	spirv.ExecutionModeInputTrianglesAdjacency:  "InputTrianglesAdjacency",
	spirv.ExecutionModeQuads:                    "Quads",
	spirv.ExecutionModeIsolines:                 "Isolines",
	spirv.ExecutionModeOutputVertices:           "OutputVertices",
	spirv.ExecutionModeOutputPoints:             "OutputPoints",
	spirv.ExecutionModeOutputLineStrip:          "OutputLineStrip",
	spirv.ExecutionModeOutputTriangleStrip:      "OutputTriangleStrip",
	spirv.ExecutionModePostDepthCoverage:        "PostDepthCoverage",
	spirv.ExecutionModeStencilRefReplacingEXT:   "StencilRefReplacingEXT",
	spirv.ExecutionModePixelInterlockOrdered:    "PixelInterlockOrdered",
	spirv.ExecutionModePixelInterlockUnordered:  "PixelInterlockUnordered",
	spirv.ExecutionModeSampleInterlockOrdered:   "SampleInterlockOrdered",
	spirv.ExecutionModeSampleInterlockUnordered: "SampleInterlockUnordered",
}

var storageClassNames = map[spirv.StorageClass]string{
	spirv.StorageClassUniformConstant: "UniformConstant",
	spirv.StorageClassInput:           "Input",
	spirv.StorageClassUniform:         "Uniform",
	spirv.StorageClassOutput:          "Output",
	spirv.StorageClassWorkgroup:       "Workgroup",
	spirv.StorageClassPrivate:         "Private",
	spirv.StorageClassFunction:        "Function",
	spirv.StorageClassPushConstant:    "PushConstant",
	spirv.StorageClassImage:           "Image",
	spirv.StorageClassStorageBuffer:   "StorageBuffer",
}

var dimNames = map[spirv.Dim]string{
	spirv.Dim1D:          "1D",
	spirv.Dim2D:          "2D",
	spirv.Dim3D:          "3D",
	spirv.DimCube:        "Cube",
	spirv.DimRect:        "Rect",
	spirv.DimBuffer:      "Buffer",
	spirv.DimSubpassData: "SubpassData",
}

var decorationNames = map[spirv.Decoration]string{
	spirv.DecorationRelaxedPrecision:     "RelaxedPrecision",
	spirv.DecorationSpecID:               "SpecId",
	spirv.DecorationBlock:                "Block",
	spirv.DecorationColMajor:             "ColMajor",
	spirv.DecorationArrayStride:          "ArrayStride",
	spirv.DecorationMatrixStride:         "MatrixStride",
	spirv.DecorationBuiltIn:              "BuiltIn",
	spirv.DecorationNoPerspective:        "NoPerspective",
	spirv.DecorationFlat:                 "Flat",
	spirv.DecorationPatch:                "Patch",
	spirv.DecorationCentroid:             "Centroid",
	spirv.DecorationSample:               "Sample",
	spirv.DecorationRestrict:             "Restrict",
	spirv.DecorationCoherent:             "Coherent",
	spirv.DecorationNonWritable:          "NonWritable",
	spirv.DecorationNonReadable:          "NonReadable",
	spirv.DecorationStream:               "Stream",
	spirv.DecorationLocation:             "Location",
	spirv.DecorationComponent:            "Component",
	spirv.DecorationIndex:                "Index",
	spirv.DecorationBinding:              "Binding",
	spirv.DecorationDescriptorSet:        "DescriptorSet",
	spirv.DecorationOffset:               "Offset",
	spirv.DecorationXfbBuffer:            "XfbBuffer",
	spirv.DecorationXfbStride:            "XfbStride",
	spirv.DecorationNoContraction:        "NoContraction",
	spirv.DecorationInputAttachmentIndex: "InputAttachmentIndex",
}

var builtinNames = map[spirv.BuiltIn]string{
	spirv.BuiltInPosition:                  "Position",
	spirv.BuiltInPointSize:                 "PointSize",
	spirv.BuiltInClipDistance:              "ClipDistance",
	spirv.BuiltInCullDistance:              "CullDistance",
	spirv.BuiltInPrimitiveID:               "PrimitiveID",
	spirv.BuiltInInvocationID:              "InvocationID",
	spirv.BuiltInLayer:                     "Layer",
	spirv.BuiltInViewportIndex:             "ViewportIndex",
	spirv.BuiltInTessLevelOuter:            "TessLevelOuter",
	spirv.BuiltInTessLevelInner:            "TessLevelInner",
	spirv.BuiltInTessCoord:                 "TessCoord",
	spirv.BuiltInPatchVertices:             "PatchVertices",
	spirv.BuiltInFragCoord:                 "FragCoord",
	spirv.BuiltInPointCoord:                "PointCoord",
	spirv.BuiltInFrontFacing:               "FrontFacing",
	spirv.BuiltInSampleID:                  "SampleID",
	spirv.BuiltInSamplePosition:            "SamplePosition",
	spirv.BuiltInSampleMask:                "SampleMask",
	spirv.BuiltInFragDepth:                 "FragDepth",
	spirv.BuiltInHelperInvocation:          "HelperInvocation",
	spirv.BuiltInNumWorkgroups:             "NumWorkgroups",
	spirv.BuiltInWorkgroupSize:             "WorkgroupSize",
	spirv.BuiltInWorkgroupID:               "WorkgroupID",
	spirv.BuiltInLocalInvocationID:         "LocalInvocationID",
	spirv.BuiltInGlobalInvocationID:        "GlobalInvocationID",
	spirv.BuiltInLocalInvocationIndex:      "LocalInvocationIndex",
	spirv.BuiltInSubgroupSize:              "SubgroupSize",
	spirv.BuiltInSubgroupID:                "SubgroupID",
	spirv.BuiltInSubgroupLocalInvocationID: "SubgroupLocalInvocationID",
	spirv.BuiltInVertexIndex:               "VertexIndex",
	spirv.BuiltInInstanceIndex:             "InstanceIndex",
	spirv.BuiltInSubgroupEqMask:            "SubgroupEqMask",
	spirv.BuiltInSubgroupGeMask:            "SubgroupGeMask",
	spirv.BuiltInSubgroupGtMask:            "SubgroupGtMask",
	spirv.BuiltInSubgroupLeMask:            "SubgroupLeMask",
	spirv.BuiltInSubgroupLtMask:            "SubgroupLtMask",
	spirv.BuiltInBaseVertex:                "BaseVertex",
	spirv.BuiltInBaseInstance:              "BaseInstance",
	spirv.BuiltInDrawIndex:                 "DrawIndex",
	spirv.BuiltInFragStencilRefEXT:         "FragStencilRefEXT",
}

var addressingModelNames = map[spirv.AddressingModel]string{
	spirv.AddressingModelLogical:    "Logical",
	spirv.AddressingModelPhysical32: "Physical32",
	spirv.AddressingModelPhysical64: "Physical64",
}

var memoryModelNames = map[spirv.MemoryModel]string{
	spirv.MemoryModelGLSL450: "GLSL450",
}
