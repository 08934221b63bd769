package spirv

import "github.com/gogpu/spvgen/ir"

// sysval describes how a system-value intrinsic reads its builtin.
type sysval struct {
	builtin BuiltIn
	name    string
	kind    ir.BaseType
}

var sysvals = map[ir.IntrinsicOp]sysval{
	ir.IntrLoadFrontFace:            {BuiltInFrontFacing, "gl_FrontFacing", ir.BaseBool},
	ir.IntrLoadBaseInstance:         {BuiltInBaseInstance, "gl_BaseInstance", ir.BaseUint},
	ir.IntrLoadInstanceID:           {BuiltInInstanceIndex, "gl_InstanceId", ir.BaseUint},
	ir.IntrLoadBaseVertex:           {BuiltInBaseVertex, "gl_BaseVertex", ir.BaseUint},
	ir.IntrLoadDrawID:               {BuiltInDrawIndex, "gl_DrawID", ir.BaseUint},
	ir.IntrLoadVertexID:             {BuiltInVertexIndex, "gl_VertexID", ir.BaseUint},
	ir.IntrLoadPrimitiveID:          {BuiltInPrimitiveID, "gl_PrimitiveID", ir.BaseUint},
	ir.IntrLoadInvocationID:         {BuiltInInvocationID, "gl_InvocationID", ir.BaseUint},
	ir.IntrLoadSampleID:             {BuiltInSampleID, "gl_SampleID", ir.BaseUint},
	ir.IntrLoadSamplePos:            {BuiltInSamplePosition, "gl_SamplePosition", ir.BaseFloat},
	ir.IntrLoadSampleMaskIn:         {BuiltInSampleMask, "gl_SampleMaskIn", ir.BaseUint},
	ir.IntrLoadHelperInvocation:     {BuiltInHelperInvocation, "gl_HelperInvocation", ir.BaseBool},
	ir.IntrLoadPatchVerticesIn:      {BuiltInPatchVertices, "gl_PatchVerticesIn", ir.BaseInt},
	ir.IntrLoadTessCoord:            {BuiltInTessCoord, "gl_TessCoord", ir.BaseFloat},
	ir.IntrLoadWorkgroupID:          {BuiltInWorkgroupID, "gl_WorkGroupID", ir.BaseUint},
	ir.IntrLoadNumWorkgroups:        {BuiltInNumWorkgroups, "gl_NumWorkGroups", ir.BaseUint},
	ir.IntrLoadLocalInvocationID:    {BuiltInLocalInvocationID, "gl_LocalInvocationID", ir.BaseUint},
	ir.IntrLoadGlobalInvocationID:   {BuiltInGlobalInvocationID, "gl_GlobalInvocationID", ir.BaseUint},
	ir.IntrLoadLocalInvocationIndex: {BuiltInLocalInvocationIndex, "gl_LocalInvocationIndex", ir.BaseUint},
	ir.IntrLoadSubgroupID:           {BuiltInSubgroupID, "gl_SubgroupID", ir.BaseUint},
	ir.IntrLoadSubgroupInvocation:   {BuiltInSubgroupLocalInvocationID, "gl_SubgroupInvocationID", ir.BaseUint},
	ir.IntrLoadSubgroupSize:         {BuiltInSubgroupSize, "gl_SubgroupSize", ir.BaseUint},
	ir.IntrLoadSubgroupEqMask:       {BuiltInSubgroupEqMask, "gl_SubgroupEqMask", ir.BaseUint},
	ir.IntrLoadSubgroupGeMask:       {BuiltInSubgroupGeMask, "gl_SubgroupGeMask", ir.BaseUint},
	ir.IntrLoadSubgroupGtMask:       {BuiltInSubgroupGtMask, "gl_SubgroupGtMask", ir.BaseUint},
	ir.IntrLoadSubgroupLeMask:       {BuiltInSubgroupLeMask, "gl_SubgroupLeMask", ir.BaseUint},
	ir.IntrLoadSubgroupLtMask:       {BuiltInSubgroupLtMask, "gl_SubgroupLtMask", ir.BaseUint},
}

// builtinBinding is a builtin Input variable and the shape of the value
// it was declared with.
type builtinBinding struct {
	id    uint32
	shape value
}

// builtinVar returns the Input variable decorated with builtin b,
// creating it with the given shape on first use. Later requests get the
// first shape back whatever they ask for. Every builtin variable is part
// of the entry point interface.
func (s *session) builtinVar(b BuiltIn, shape value, name string) builtinBinding {
	if bb, ok := s.builtins[b]; ok {
		return bb
	}
	typeID := s.valueType(shape)
	if b == BuiltInSampleMask {
		typeID = s.types.Array(typeID, 1, 0)
	}
	id := s.m.AddVariable(s.types.Pointer(StorageClassInput, typeID), StorageClassInput)
	s.name(id, name)
	s.m.AddDecorate(id, DecorationBuiltIn, uint32(b))
	s.iface = append(s.iface, id)
	bb := builtinBinding{id: id, shape: shape}
	s.builtins[b] = bb
	s.log.Debug("bound builtin", "builtin", uint32(b), "name", name, "id", id)
	return bb
}

// builtinFeatures requests what reading builtin b needs beyond Shader.
func (s *session) builtinFeatures(b BuiltIn) {
	switch b {
	case BuiltInBaseVertex, BuiltInBaseInstance, BuiltInDrawIndex:
		s.extension("SPV_KHR_shader_draw_parameters", CapabilityDrawParameters)
	case BuiltInSubgroupSize, BuiltInSubgroupLocalInvocationID,
		BuiltInSubgroupEqMask, BuiltInSubgroupGeMask, BuiltInSubgroupGtMask,
		BuiltInSubgroupLeMask, BuiltInSubgroupLtMask:
		s.extension("SPV_KHR_shader_ballot", CapabilitySubgroupBallotKHR)
	case BuiltInSubgroupID:
		s.capability(CapabilityGroupNonUniform)
	case BuiltInSampleID, BuiltInSamplePosition:
		s.capability(CapabilitySampleRateShading)
	}
}

// emitSysval loads a system value. A variable is typed after the width
// and component count of its first read, and later reads of another
// shape are converted; sample mask input is an array of one word.
func (s *session) emitSysval(intr *ir.Intrinsic, sv sysval) {
	dest := s.intrDest(intr)
	s.builtinFeatures(sv.builtin)

	comps := max(dest.Components, 1)
	bits := dest.BitSize
	kind := sv.kind
	if kind == ir.BaseBool {
		bits = 1
	}
	want := value{bits: bits, comps: comps, kind: kind}
	bb := s.builtinVar(sv.builtin, want, sv.name)
	typeID := s.valueType(bb.shape)
	ptr := bb.id
	if sv.builtin == BuiltInSampleMask {
		ptr = s.m.AddAccessChain(s.types.Pointer(StorageClassInput, typeID), bb.id, s.uintConst(0))
	}
	loaded := bb.shape
	loaded.id = s.m.AddLoad(typeID, ptr)
	result := s.reshape(loaded, want).id
	if kind == ir.BaseBool && dest.BitSize != 1 {
		// A bool builtin read into a wider destination becomes 0 or 1.
		uvec := s.types.UVec(dest.BitSize, comps)
		result = s.m.AddSelect(uvec, result, s.splat(s.types.ConstUint(dest.BitSize, 1), uvec, comps),
			s.splat(s.types.ConstUint(dest.BitSize, 0), uvec, comps))
		kind = ir.BaseUint
	}
	s.def(*dest, result, kind)
}

// reshape converts v to the width and component count of want. Bools
// only change their component count.
func (s *session) reshape(v, want value) value {
	v = s.resize(v, want.comps)
	if v.bits == want.bits || v.kind == ir.BaseBool {
		return v
	}
	op := OpUConvert
	switch v.kind {
	case ir.BaseFloat:
		op = OpFConvert
	case ir.BaseInt:
		op = OpSConvert
	}
	out := value{bits: want.bits, comps: v.comps, kind: v.kind}
	out.id = s.m.AddUnaryOp(op, s.valueType(out), v.id)
	return out
}

// splat returns a constant vector of n copies of the scalar constant c,
// or c itself when n is 1.
func (s *session) splat(c, vecType uint32, n uint8) uint32 {
	if n == 1 {
		return c
	}
	parts := make([]uint32, n)
	for i := range parts {
		parts[i] = c
	}
	return s.types.ConstComposite(vecType, parts...)
}

// workgroupSizeID returns the workgroup size as a uvec3: a constant for
// a fixed size, otherwise the WorkgroupSize spec-constant composite over
// three spec constants with ids 0, 1 and 2.
func (s *session) workgroupSizeID() uint32 {
	if s.workgroupSize != 0 {
		return s.workgroupSize
	}
	size := s.shader.Info.Compute.WorkgroupSize
	uvec3 := s.types.UVec(32, 3)
	if size != [3]uint32{} {
		s.workgroupSize = s.types.ConstComposite(uvec3,
			s.uintConst(size[0]), s.uintConst(size[1]), s.uintConst(size[2]))
		return s.workgroupSize
	}
	word := s.types.UVec(32, 1)
	var parts [3]uint32
	for i, name := range []string{"x", "y", "z"} {
		parts[i] = s.m.AddConstant(OpSpecConstant, word, 1)
		s.m.AddDecorate(parts[i], DecorationSpecID, uint32(i))
		s.m.AddName(parts[i], name)
	}
	s.workgroupSize = s.m.AddConstant(OpSpecConstantComposite, uvec3, parts[:]...)
	s.m.AddDecorate(s.workgroupSize, DecorationBuiltIn, uint32(BuiltInWorkgroupSize))
	s.m.AddName(s.workgroupSize, "gl_LocalGroupSize")
	return s.workgroupSize
}
