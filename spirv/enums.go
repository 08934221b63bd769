package spirv

// Capability represents a SPIR-V capability.
type Capability uint32

const (
	CapabilityMatrix                             Capability = 0
	CapabilityShader                             Capability = 1
	CapabilityGeometry                           Capability = 2
	CapabilityTessellation                       Capability = 3
	CapabilityAddresses                          Capability = 4
	CapabilityFloat16                            Capability = 9
	CapabilityFloat64                            Capability = 10
	CapabilityInt64                              Capability = 11
	CapabilityInt16                              Capability = 22
	CapabilityTessellationPointSize              Capability = 23
	CapabilityGeometryPointSize                  Capability = 24
	CapabilityImageGatherExtended                Capability = 25
	CapabilityImageCubeArray                     Capability = 34
	CapabilitySampleRateShading                  Capability = 35
	CapabilityInt8                               Capability = 39
	CapabilityInputAttachment                    Capability = 40
	CapabilitySampled1D                          Capability = 43
	CapabilityImage1D                            Capability = 44
	CapabilitySampledBuffer                      Capability = 46
	CapabilityImageBuffer                        Capability = 47
	CapabilityImageMSArray                       Capability = 48
	CapabilityStorageImageExtendedFormats        Capability = 49
	CapabilityImageQuery                         Capability = 50
	CapabilityDerivativeControl                  Capability = 51
	CapabilityInterpolationFunction              Capability = 52
	CapabilityTransformFeedback                  Capability = 53
	CapabilityGeometryStreams                    Capability = 54
	CapabilityStorageImageReadWithoutFormat      Capability = 55
	CapabilityStorageImageWriteWithoutFormat     Capability = 56
	CapabilityMultiViewport                      Capability = 57
	CapabilityGroupNonUniform                    Capability = 61
	CapabilityGroupNonUniformVote                Capability = 62
	CapabilityShaderLayer                        Capability = 69
	CapabilityShaderViewportIndex                Capability = 70
	CapabilitySubgroupBallotKHR                  Capability = 4423
	CapabilityDrawParameters                     Capability = 4427
	CapabilityStorageBuffer16BitAccess           Capability = 4433
	CapabilityUniformAndStorageBuffer16BitAccess Capability = 4434
	CapabilityStoragePushConstant16              Capability = 4435
	CapabilitySampleMaskPostDepthCoverage        Capability = 4447
	CapabilityStorageBuffer8BitAccess            Capability = 4448
	CapabilityUniformAndStorageBuffer8BitAccess  Capability = 4449
	CapabilityStoragePushConstant8               Capability = 4450
	CapabilityStencilExportEXT                   Capability = 5013
	CapabilityShaderClockKHR                     Capability = 5055
	CapabilityShaderViewportIndexLayerEXT        Capability = 5254
	CapabilityFragmentShaderSampleInterlockEXT   Capability = 5363
	CapabilityFragmentShaderPixelInterlockEXT    Capability = 5378
)

// ExecutionModel is the pipeline stage an entry point runs in.
type ExecutionModel uint32

const (
	ExecutionModelVertex                 ExecutionModel = 0
	ExecutionModelTessellationControl    ExecutionModel = 1
	ExecutionModelTessellationEvaluation ExecutionModel = 2
	ExecutionModelGeometry               ExecutionModel = 3
	ExecutionModelFragment               ExecutionModel = 4
	ExecutionModelGLCompute              ExecutionModel = 5
)

// AddressingModel is the module addressing model.
type AddressingModel uint32

const (
	AddressingModelLogical    AddressingModel = 0
	AddressingModelPhysical32 AddressingModel = 1
	AddressingModelPhysical64 AddressingModel = 2
)

// MemoryModel is the module memory model.
type MemoryModel uint32

const (
	MemoryModelGLSL450 MemoryModel = 1
)

// ExecutionMode is a per-entry-point execution mode.
type ExecutionMode uint32

const (
	ExecutionModeInvocations              ExecutionMode = 0
	ExecutionModeSpacingEqual             ExecutionMode = 1
	ExecutionModeSpacingFractionalEven    ExecutionMode = 2
	ExecutionModeSpacingFractionalOdd     ExecutionMode = 3
	ExecutionModeVertexOrderCw            ExecutionMode = 4
	ExecutionModeVertexOrderCcw           ExecutionMode = 5
	ExecutionModeOriginUpperLeft          ExecutionMode = 7
	ExecutionModeEarlyFragmentTests       ExecutionMode = 9
	ExecutionModePointMode                ExecutionMode = 10
	ExecutionModeXfb                      ExecutionMode = 11
	ExecutionModeDepthReplacing           ExecutionMode = 12
	ExecutionModeDepthGreater             ExecutionMode = 14
	ExecutionModeDepthLess                ExecutionMode = 15
	ExecutionModeDepthUnchanged           ExecutionMode = 16
	ExecutionModeLocalSize                ExecutionMode = 17
	ExecutionModeInputPoints              ExecutionMode = 19
	ExecutionModeInputLines               ExecutionMode = 20
	ExecutionModeInputLinesAdjacency      ExecutionMode = 21
	ExecutionModeTriangles                ExecutionMode = 22
	ExecutionModeInputTrianglesAdjacency  ExecutionMode = 23
	ExecutionModeQuads                    ExecutionMode = 24
	ExecutionModeIsolines                 ExecutionMode = 25
	ExecutionModeOutputVertices           ExecutionMode = 26
	ExecutionModeOutputPoints             ExecutionMode = 27
	ExecutionModeOutputLineStrip          ExecutionMode = 28
	ExecutionModeOutputTriangleStrip      ExecutionMode = 29
	ExecutionModePostDepthCoverage        ExecutionMode = 4446
	ExecutionModeStencilRefReplacingEXT   ExecutionMode = 5027
	ExecutionModePixelInterlockOrdered    ExecutionMode = 5366
	ExecutionModePixelInterlockUnordered  ExecutionMode = 5367
	ExecutionModeSampleInterlockOrdered   ExecutionMode = 5368
	ExecutionModeSampleInterlockUnordered ExecutionMode = 5369
)

// StorageClass is the storage class of a pointer or variable.
type StorageClass uint32

const (
	StorageClassUniformConstant StorageClass = 0
	StorageClassInput           StorageClass = 1
	StorageClassUniform         StorageClass = 2
	StorageClassOutput          StorageClass = 3
	StorageClassWorkgroup       StorageClass = 4
	StorageClassPrivate         StorageClass = 6
	StorageClassFunction        StorageClass = 7
	StorageClassPushConstant    StorageClass = 9
	StorageClassImage           StorageClass = 11
	StorageClassStorageBuffer   StorageClass = 12
)

// Dim is the dimensionality operand of OpTypeImage.
type Dim uint32

const (
	Dim1D          Dim = 0
	Dim2D          Dim = 1
	Dim3D          Dim = 2
	DimCube        Dim = 3
	DimRect        Dim = 4
	DimBuffer      Dim = 5
	DimSubpassData Dim = 6
)

// Decoration represents a SPIR-V decoration.
type Decoration uint32

const (
	DecorationRelaxedPrecision     Decoration = 0
	DecorationSpecID               Decoration = 1
	DecorationBlock                Decoration = 2
	DecorationColMajor             Decoration = 5
	DecorationArrayStride          Decoration = 6
	DecorationMatrixStride         Decoration = 7
	DecorationBuiltIn              Decoration = 11
	DecorationNoPerspective        Decoration = 13
	DecorationFlat                 Decoration = 14
	DecorationPatch                Decoration = 15
	DecorationCentroid             Decoration = 16
	DecorationSample               Decoration = 17
	DecorationRestrict             Decoration = 19
	DecorationCoherent             Decoration = 23
	DecorationNonWritable          Decoration = 24
	DecorationNonReadable          Decoration = 25
	DecorationStream               Decoration = 29
	DecorationLocation             Decoration = 30
	DecorationComponent            Decoration = 31
	DecorationIndex                Decoration = 32
	DecorationBinding              Decoration = 33
	DecorationDescriptorSet        Decoration = 34
	DecorationOffset               Decoration = 35
	DecorationXfbBuffer            Decoration = 36
	DecorationXfbStride            Decoration = 37
	DecorationNoContraction        Decoration = 42
	DecorationInputAttachmentIndex Decoration = 43
)

// BuiltIn is the operand of a BuiltIn decoration.
type BuiltIn uint32

const (
	BuiltInPosition                  BuiltIn = 0
	BuiltInPointSize                 BuiltIn = 1
	BuiltInClipDistance              BuiltIn = 3
	BuiltInCullDistance              BuiltIn = 4
	BuiltInPrimitiveID               BuiltIn = 7
	BuiltInInvocationID              BuiltIn = 8
	BuiltInLayer                     BuiltIn = 9
	BuiltInViewportIndex             BuiltIn = 10
	BuiltInTessLevelOuter            BuiltIn = 11
	BuiltInTessLevelInner            BuiltIn = 12
	BuiltInTessCoord                 BuiltIn = 13
	BuiltInPatchVertices             BuiltIn = 14
	BuiltInFragCoord                 BuiltIn = 15
	BuiltInPointCoord                BuiltIn = 16
	BuiltInFrontFacing               BuiltIn = 17
	BuiltInSampleID                  BuiltIn = 18
	BuiltInSamplePosition            BuiltIn = 19
	BuiltInSampleMask                BuiltIn = 20
	BuiltInFragDepth                 BuiltIn = 22
	BuiltInHelperInvocation          BuiltIn = 23
	BuiltInNumWorkgroups             BuiltIn = 24
	BuiltInWorkgroupSize             BuiltIn = 25
	BuiltInWorkgroupID               BuiltIn = 26
	BuiltInLocalInvocationID         BuiltIn = 27
	BuiltInGlobalInvocationID        BuiltIn = 28
	BuiltInLocalInvocationIndex      BuiltIn = 29
	BuiltInSubgroupSize              BuiltIn = 36
	BuiltInSubgroupID                BuiltIn = 40
	BuiltInSubgroupLocalInvocationID BuiltIn = 41
	BuiltInVertexIndex               BuiltIn = 42
	BuiltInInstanceIndex             BuiltIn = 43
	BuiltInSubgroupEqMask            BuiltIn = 4416
	BuiltInSubgroupGeMask            BuiltIn = 4417
	BuiltInSubgroupGtMask            BuiltIn = 4418
	BuiltInSubgroupLeMask            BuiltIn = 4419
	BuiltInSubgroupLtMask            BuiltIn = 4420
	BuiltInBaseVertex                BuiltIn = 4424
	BuiltInBaseInstance              BuiltIn = 4425
	BuiltInDrawIndex                 BuiltIn = 4426
	BuiltInFragStencilRefEXT         BuiltIn = 5014
)

// Scope is a memory or execution scope operand.
type Scope uint32

const (
	ScopeDevice    Scope = 1
	ScopeWorkgroup Scope = 2
	ScopeSubgroup  Scope = 3
)

// MemorySemantics is a bit mask of memory ordering and storage classes.
type MemorySemantics uint32

const (
	MemorySemanticsNone            MemorySemantics = 0
	MemorySemanticsAcquire         MemorySemantics = 0x2
	MemorySemanticsRelease         MemorySemantics = 0x4
	MemorySemanticsAcquireRelease  MemorySemantics = 0x8
	MemorySemanticsUniformMemory   MemorySemantics = 0x40
	MemorySemanticsWorkgroupMemory MemorySemantics = 0x100
	MemorySemanticsImageMemory     MemorySemantics = 0x800
	MemorySemanticsOutputMemory    MemorySemantics = 0x1000
)

// ImageOperands is the optional operand mask of image instructions.
type ImageOperands uint32

const (
	ImageOperandsBias        ImageOperands = 0x1
	ImageOperandsLod         ImageOperands = 0x2
	ImageOperandsGrad        ImageOperands = 0x4
	ImageOperandsConstOffset ImageOperands = 0x8
	ImageOperandsOffset      ImageOperands = 0x10
	ImageOperandsSample      ImageOperands = 0x40
)

// FunctionControl is the control mask of OpFunction.
type FunctionControl uint32

const (
	FunctionControlNone FunctionControl = 0
)

// SelectionControl is the control mask of OpSelectionMerge.
type SelectionControl uint32

const (
	SelectionControlNone SelectionControl = 0
)

// LoopControl is the control mask of OpLoopMerge.
type LoopControl uint32

const (
	LoopControlNone LoopControl = 0
)

// GLSL.std.450 extended instruction numbers.
const (
	GLSLstd450RoundEven             uint32 = 2
	GLSLstd450Trunc                 uint32 = 3
	GLSLstd450FAbs                  uint32 = 4
	GLSLstd450SAbs                  uint32 = 5
	GLSLstd450FSign                 uint32 = 6
	GLSLstd450SSign                 uint32 = 7
	GLSLstd450Floor                 uint32 = 8
	GLSLstd450Ceil                  uint32 = 9
	GLSLstd450Fract                 uint32 = 10
	GLSLstd450Sin                   uint32 = 13
	GLSLstd450Cos                   uint32 = 14
	GLSLstd450Pow                   uint32 = 26
	GLSLstd450Exp2                  uint32 = 29
	GLSLstd450Log2                  uint32 = 30
	GLSLstd450Sqrt                  uint32 = 31
	GLSLstd450InverseSqrt           uint32 = 32
	GLSLstd450FMin                  uint32 = 37
	GLSLstd450UMin                  uint32 = 38
	GLSLstd450SMin                  uint32 = 39
	GLSLstd450FMax                  uint32 = 40
	GLSLstd450UMax                  uint32 = 41
	GLSLstd450SMax                  uint32 = 42
	GLSLstd450FClamp                uint32 = 43
	GLSLstd450FMix                  uint32 = 46
	GLSLstd450Fma                   uint32 = 50
	GLSLstd450Ldexp                 uint32 = 53
	GLSLstd450PackHalf2x16          uint32 = 58
	GLSLstd450UnpackHalf2x16        uint32 = 62
	GLSLstd450FindILsb              uint32 = 73
	GLSLstd450FindSMsb              uint32 = 74
	GLSLstd450FindUMsb              uint32 = 75
	GLSLstd450InterpolateAtCentroid uint32 = 76
	GLSLstd450InterpolateAtSample   uint32 = 77
	GLSLstd450InterpolateAtOffset   uint32 = 78
)
