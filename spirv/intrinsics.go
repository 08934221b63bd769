package spirv

import "github.com/gogpu/spvgen/ir"

// barrier is the scope and semantics pair of a memory barrier.
type barrier struct {
	scope     Scope
	semantics MemorySemantics
}

var memoryBarriers = map[ir.IntrinsicOp]barrier{
	ir.IntrMemoryBarrierTCSPatch: {ScopeWorkgroup, MemorySemanticsOutputMemory | MemorySemanticsRelease},
	ir.IntrMemoryBarrier: {ScopeWorkgroup,
		MemorySemanticsImageMemory | MemorySemanticsUniformMemory | MemorySemanticsAcquireRelease},
	ir.IntrMemoryBarrierImage:  {ScopeDevice, MemorySemanticsImageMemory | MemorySemanticsAcquireRelease},
	ir.IntrGroupMemoryBarrier:  {ScopeWorkgroup, MemorySemanticsWorkgroupMemory | MemorySemanticsAcquireRelease},
	ir.IntrMemoryBarrierShared: {ScopeWorkgroup, MemorySemanticsWorkgroupMemory | MemorySemanticsAcquireRelease},
	ir.IntrMemoryBarrierBuffer: {ScopeDevice, MemorySemanticsUniformMemory | MemorySemanticsAcquireRelease},
}

func (s *session) intrDest(intr *ir.Intrinsic) *ir.Dest {
	if intr.Dest == nil {
		panic(malformedf("%s without a destination", intr.Op))
	}
	return intr.Dest
}

func (s *session) intrSrc(intr *ir.Intrinsic, i int) ir.Src {
	if i >= len(intr.Srcs) {
		panic(malformedf("%s has %d sources, want at least %d", intr.Op, len(intr.Srcs), i+1))
	}
	return intr.Srcs[i]
}

func (s *session) emitIntrinsic(intr *ir.Intrinsic) {
	if sv, ok := sysvals[intr.Op]; ok {
		s.emitSysval(intr, sv)
		return
	}
	if b, ok := memoryBarriers[intr.Op]; ok {
		s.m.AddMemoryBarrier(s.uintConst(uint32(b.scope)), s.uintConst(uint32(b.semantics)))
		return
	}

	switch intr.Op {
	case ir.IntrLoadDeref:
		s.emitLoadDeref(intr)
	case ir.IntrStoreDeref:
		s.emitStoreDeref(intr)
	case ir.IntrInterpAtCentroid, ir.IntrInterpAtSample, ir.IntrInterpAtOffset:
		s.emitInterpolate(intr)

	case ir.IntrLoadUBO:
		s.emitLoadBuffer(intr, false)
	case ir.IntrLoadSSBO:
		s.emitLoadBuffer(intr, true)
	case ir.IntrStoreSSBO:
		s.emitStoreSSBO(intr)
	case ir.IntrGetSSBOSize:
		s.emitSSBOSize(intr)
	case ir.IntrLoadShared:
		s.emitLoadShared(intr)
	case ir.IntrStoreShared:
		s.emitStoreShared(intr)
	case ir.IntrLoadPushConstant:
		s.emitLoadPushConstant(intr)
	case ir.IntrSSBOAtomic, ir.IntrSharedAtomic:
		s.emitMemoryAtomic(intr)

	case ir.IntrImageLoad:
		s.emitImageLoad(intr)
	case ir.IntrImageStore:
		s.emitImageStore(intr)
	case ir.IntrImageSize:
		s.emitImageSize(intr)
	case ir.IntrImageSamples:
		s.emitImageSamples(intr)
	case ir.IntrImageAtomic:
		s.emitImageAtomic(intr)

	case ir.IntrLoadWorkgroupSize:
		s.def(*s.intrDest(intr), s.workgroupSizeID(), ir.BaseUint)

	case ir.IntrDiscard:
		s.emitDiscard()
	case ir.IntrEmitVertex:
		s.emitVertex(intr)
	case ir.IntrEndPrimitive:
		if intr.Stream != 0 {
			s.m.AddOpVoid(OpEndStreamPrimitive, s.uintConst(intr.Stream))
		} else {
			s.m.AddOpVoid(OpEndPrimitive)
		}
	case ir.IntrControlBarrier:
		s.m.AddControlBarrier(s.uintConst(uint32(ScopeWorkgroup)), s.uintConst(uint32(ScopeWorkgroup)),
			s.uintConst(uint32(MemorySemanticsWorkgroupMemory|MemorySemanticsAcquire)))
	case ir.IntrBeginInvocationInterlock:
		s.m.AddOpVoid(OpBeginInvocationInterlockEXT)
	case ir.IntrEndInvocationInterlock:
		s.m.AddOpVoid(OpEndInvocationInterlockEXT)

	case ir.IntrShaderClock:
		s.emitShaderClock(intr)
	case ir.IntrBallot, ir.IntrReadFirstInvocation, ir.IntrReadInvocation:
		s.emitSubgroup(intr)
	case ir.IntrVoteAll, ir.IntrVoteAny, ir.IntrVoteIEq, ir.IntrVoteFEq:
		s.emitVote(intr)

	default:
		panic(unsupportedf("intrinsic %s", intr.Op))
	}
}

// emitVertex captures transform feedback outputs, then emits the vertex.
func (s *session) emitVertex(intr *ir.Intrinsic) {
	if s.stage() == ir.StageGeometry {
		s.emitXfbOutputs()
	}
	if intr.Stream != 0 {
		s.m.AddOpVoid(OpEmitStreamVertex, s.uintConst(intr.Stream))
	} else {
		s.m.AddOpVoid(OpEmitVertex)
	}
}

// varKind returns the value interpretation of a variable's scalar type.
func varKind(t *ir.Type) ir.BaseType {
	bare := t.WithoutArray()
	if bare.Base == ir.BaseStruct || bare.Base == ir.BaseImage {
		panic(unsupportedf("%s value access through a deref", bare.Base))
	}
	return bare.Base
}

// toKind converts v to the representation of a variable of kind: bools
// compare against zero, everything else is reinterpreted.
func (s *session) toKind(v value, kind ir.BaseType) value {
	if kind != ir.BaseBool || v.kind == ir.BaseBool {
		return s.as(v, kind)
	}
	v = s.as(v, ir.BaseUint)
	uvec := s.valueType(v)
	id := s.m.AddBinaryOp(OpINotEqual, s.types.BVec(v.comps), v.id,
		s.splat(s.types.ConstUint(v.bits, 0), uvec, v.comps))
	return value{id: id, bits: 1, comps: v.comps, kind: ir.BaseBool}
}

func (s *session) emitLoadDeref(intr *ir.Intrinsic) {
	dest := s.intrDest(intr)
	p := s.pointer(s.intrSrc(intr, 0))
	if p.typ.Base == ir.BaseArray || p.typ.Base == ir.BaseStruct || p.typ.IsMatrix() {
		panic(unsupportedf("load of an aggregate through a deref"))
	}
	kind := varKind(&p.typ)
	typeID := s.typeIn(p.class, p.typ)
	result := s.m.AddLoad(typeID, p.id)
	if kind == ir.BaseBool && dest.BitSize != 1 {
		comps := p.typ.NumComponents()
		uvec := s.types.UVec(dest.BitSize, comps)
		result = s.m.AddSelect(uvec, result, s.splat(s.types.ConstUint(dest.BitSize, 1), uvec, comps),
			s.splat(s.types.ConstUint(dest.BitSize, 0), uvec, comps))
		kind = ir.BaseUint
	}
	s.def(*dest, result, kind)
}

func (s *session) emitStoreDeref(intr *ir.Intrinsic) {
	p := s.pointer(s.intrSrc(intr, 0))
	v := s.src(s.intrSrc(intr, 1))
	v = s.toKind(v, varKind(&p.typ))

	if s.sampleMaskType != 0 && s.isSampleMaskOutput(p) {
		// The value is wrapped into the one-element SampleMask array.
		id := s.m.AddCompositeConstruct(s.sampleMaskType, v.id)
		s.m.AddStore(p.id, id)
		return
	}

	full := uint8(1)<<v.comps - 1
	mask := intr.WriteMask
	if mask == 0 || mask&full == full || v.comps == 1 {
		s.m.AddStore(p.id, v.id)
		return
	}

	// Partial writes store each selected component through its own
	// access chain.
	elem := s.typeOf(v.kind, v.bits, 1)
	elemPtr := s.types.Pointer(p.class, elem)
	for i := range v.comps {
		if mask&(1<<i) == 0 {
			continue
		}
		chain := s.m.AddAccessChain(elemPtr, p.id, s.uintConst(uint32(i)))
		comp := s.m.AddCompositeExtract(elem, v.id, uint32(i))
		s.m.AddStore(chain, comp)
	}
}

func (s *session) isSampleMaskOutput(p pointer) bool {
	v := s.varAt(p.v)
	return v.Mode == ir.ModeOutput && v.Builtin == ir.BuiltinSampleMask && p.id == s.vars[p.v]
}

func (s *session) emitInterpolate(intr *ir.Intrinsic) {
	dest := s.intrDest(intr)
	p := s.pointer(s.intrSrc(intr, 0))
	s.capability(CapabilityInterpolationFunction)
	typeID := s.types.TypeFor(p.typ)

	var result uint32
	switch intr.Op {
	case ir.IntrInterpAtCentroid:
		result = s.extInst(typeID, GLSLstd450InterpolateAtCentroid, p.id)
	case ir.IntrInterpAtSample:
		sample := s.srcAs(s.intrSrc(intr, 1), ir.BaseInt)
		result = s.extInst(typeID, GLSLstd450InterpolateAtSample, p.id, sample.id)
	default:
		offset := s.srcAs(s.intrSrc(intr, 1), ir.BaseFloat)
		result = s.extInst(typeID, GLSLstd450InterpolateAtOffset, p.id, offset.id)
	}
	s.def(*dest, result, varKind(&p.typ))
}

func (s *session) emitShaderClock(intr *ir.Intrinsic) {
	dest := s.intrDest(intr)
	s.extension("SPV_KHR_shader_clock", CapabilityShaderClockKHR)
	scope := ScopeSubgroup
	if intr.Scope == ir.ScopeDevice {
		scope = ScopeDevice
	}
	result := s.m.AddOp(OpReadClockKHR, s.typeOf(ir.BaseUint, dest.BitSize, max(dest.Components, 1)),
		s.uintConst(uint32(scope)))
	s.def(*dest, result, ir.BaseUint)
}

// emitSubgroup lowers ballot and invocation reads to the KHR ballot
// extension.
func (s *session) emitSubgroup(intr *ir.Intrinsic) {
	dest := s.intrDest(intr)
	s.extension("SPV_KHR_shader_ballot", CapabilitySubgroupBallotKHR)
	v := s.src(s.intrSrc(intr, 0))

	var result uint32
	kind := v.kind
	switch intr.Op {
	case ir.IntrBallot:
		kind = ir.BaseUint
		result = s.m.AddOp(OpSubgroupBallotKHR, s.typeOf(ir.BaseUint, dest.BitSize, max(dest.Components, 1)), v.id)
	case ir.IntrReadFirstInvocation:
		result = s.m.AddOp(OpSubgroupFirstInvocationKHR, s.valueType(v), v.id)
	default:
		index := s.srcAs(s.intrSrc(intr, 1), ir.BaseUint)
		result = s.m.AddOp(OpSubgroupReadInvocationKHR, s.valueType(v), v.id, index.id)
	}
	s.def(*dest, result, kind)
}

func (s *session) emitVote(intr *ir.Intrinsic) {
	dest := s.intrDest(intr)
	s.capability(CapabilityGroupNonUniformVote)
	scope := s.uintConst(uint32(ScopeSubgroup))
	bool1 := s.types.Bool()

	var result uint32
	switch intr.Op {
	case ir.IntrVoteAll:
		v := s.src(s.intrSrc(intr, 0))
		result = s.m.AddOp(OpGroupNonUniformAll, bool1, scope, v.id)
	case ir.IntrVoteAny:
		v := s.src(s.intrSrc(intr, 0))
		result = s.m.AddOp(OpGroupNonUniformAny, bool1, scope, v.id)
	case ir.IntrVoteIEq:
		v := s.srcAs(s.intrSrc(intr, 0), ir.BaseUint)
		result = s.m.AddOp(OpGroupNonUniformAllEqual, bool1, scope, v.id)
	default:
		v := s.srcAs(s.intrSrc(intr, 0), ir.BaseFloat)
		result = s.m.AddOp(OpGroupNonUniformAllEqual, bool1, scope, v.id)
	}
	s.def(*dest, result, ir.BaseBool)
}
