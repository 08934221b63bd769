package spirv

import "github.com/gogpu/spvgen/ir"

// texSources holds the emitted operands of a texture instruction. Zero
// ids are absent operands.
type texSources struct {
	coord       value
	projector   uint32
	bias        uint32
	lod         uint32
	dref        uint32
	dx, dy      uint32
	constOffset uint32
	offset      uint32
	sample      uint32
	unitOffset  uint32
	handle      *pointer
}

func (s *session) texSources(t *ir.Tex) texSources {
	var ts texSources
	fetch := t.Op == ir.TexFetch || t.Op == ir.TexFetchMS
	for _, src := range t.Srcs {
		switch src.Kind {
		case ir.TexSrcCoord:
			kind := ir.BaseFloat
			if fetch {
				kind = ir.BaseInt
			}
			ts.coord = s.srcAs(src.Src(), kind)
		case ir.TexSrcProjector:
			ts.projector = s.srcAs(src.Src(), ir.BaseFloat).id
		case ir.TexSrcBias:
			ts.bias = s.srcAs(src.Src(), ir.BaseFloat).id
		case ir.TexSrcComparator:
			ts.dref = s.srcAs(src.Src(), ir.BaseFloat).id
		case ir.TexSrcDdx:
			ts.dx = s.srcAs(src.Src(), ir.BaseFloat).id
		case ir.TexSrcDdy:
			ts.dy = s.srcAs(src.Src(), ir.BaseFloat).id
		case ir.TexSrcOffset:
			if c, ok := s.constant(src.Src()); ok {
				ts.constOffset = s.types.ConstValue(ir.BaseInt, 32, c)
			} else {
				ts.offset = s.srcAs(src.Src(), ir.BaseInt).id
			}
		case ir.TexSrcLod:
			kind := ir.BaseFloat
			if fetch || t.Op == ir.TexSize {
				kind = ir.BaseInt
			}
			ts.lod = s.srcAs(src.Src(), kind).id
		case ir.TexSrcMSIndex:
			ts.sample = s.srcAs(src.Src(), ir.BaseInt).id
		case ir.TexSrcTextureOffset:
			ts.unitOffset = s.srcAs(src.Src(), ir.BaseUint).id
		case ir.TexSrcTextureHandle:
			p := s.pointer(src.Src())
			ts.handle = &p
		case ir.TexSrcSamplerOffset, ir.TexSrcSamplerHandle:
			// Samplers are combined with their textures.
		default:
			panic(malformedf("unknown texture source %q", src.Kind))
		}
	}
	return ts
}

// sampledImage loads the combined image-sampler a texture instruction
// reads, and returns it with its OpTypeImage and descriptor.
func (s *session) sampledImage(t *ir.Tex, ts *texSources) (load, imageType uint32, img *ir.ImageType) {
	if ts.handle != nil {
		p := *ts.handle
		img = s.imageOf(p)
		imageType = s.imageTypes[p.v]
		return s.m.AddLoad(s.types.SampledImage(imageType), p.id), imageType, img
	}

	index, unit := s.samplerFor(t.TextureIndex)
	v := s.varAt(index)
	id := s.variable(index)
	img = v.Type.WithoutArray().Image
	imageType = s.imageTypes[index]
	sampled := s.types.SampledImage(imageType)
	ptr := id
	if v.Type.Base == ir.BaseArray {
		elem := s.uintConst(unit)
		if ts.unitOffset != 0 {
			elem = s.m.AddBinaryOp(OpIAdd, s.types.UVec(32, 1), ts.unitOffset, elem)
		}
		ptr = s.m.AddAccessChain(s.types.Pointer(StorageClassUniformConstant, sampled), id, elem)
	}
	return s.m.AddLoad(sampled, ptr), imageType, img
}

// lodAllowed reports whether an explicit level of detail may be passed
// for the image shape.
func lodAllowed(img *ir.ImageType) bool {
	switch img.Dim {
	case ir.Dim1D, ir.Dim2D, ir.Dim3D, ir.DimCube:
		return !img.Multisample
	}
	return false
}

// imageOperands builds the optional operand mask and ids in bit order.
func imageOperands(ts *texSources) []uint32 {
	var mask ImageOperands
	var ids []uint32
	if ts.bias != 0 {
		mask |= ImageOperandsBias
		ids = append(ids, ts.bias)
	}
	if ts.lod != 0 {
		mask |= ImageOperandsLod
		ids = append(ids, ts.lod)
	}
	if ts.dx != 0 && ts.dy != 0 {
		mask |= ImageOperandsGrad
		ids = append(ids, ts.dx, ts.dy)
	}
	if ts.constOffset != 0 {
		mask |= ImageOperandsConstOffset
		ids = append(ids, ts.constOffset)
	}
	if ts.offset != 0 {
		mask |= ImageOperandsOffset
		ids = append(ids, ts.offset)
	}
	if ts.sample != 0 {
		mask |= ImageOperandsSample
		ids = append(ids, ts.sample)
	}
	if mask == 0 {
		return nil
	}
	return append([]uint32{uint32(mask)}, ids...)
}

func (s *session) emitTex(t *ir.Tex) {
	ts := s.texSources(t)
	load, imageType, img := s.sampledImage(t, &ts)
	comps := max(t.Dest.Components, 1)

	if !lodAllowed(img) {
		ts.lod = 0
	}
	if t.Op == ir.TexSample && s.stage() != ir.StageFragment && ts.lod == 0 {
		// Implicit derivatives only exist in fragment shaders.
		ts.lod = s.types.ConstFloat32(0)
	}

	switch t.Op {
	case ir.TexSize:
		s.capability(CapabilityImageQuery)
		image := s.m.AddOp(OpImage, imageType, load)
		uvec := s.types.UVec(32, comps)
		var result uint32
		switch {
		case ts.lod != 0:
			result = s.m.AddOp(OpImageQuerySizeLod, uvec, image, ts.lod)
		case lodAllowed(img):
			result = s.m.AddOp(OpImageQuerySizeLod, uvec, image, s.uintConst(0))
		default:
			result = s.m.AddOp(OpImageQuerySize, uvec, image)
		}
		s.def(t.Dest, result, ir.BaseUint)
		return
	case ir.TexQueryLevels, ir.TexTextureSamples:
		s.capability(CapabilityImageQuery)
		image := s.m.AddOp(OpImage, imageType, load)
		op := OpImageQueryLevels
		if t.Op == ir.TexTextureSamples {
			op = OpImageQuerySamples
		}
		s.def(t.Dest, s.m.AddOp(op, s.types.UVec(32, 1), image), ir.BaseUint)
		return
	}

	if ts.coord.id == 0 {
		panic(malformedf("%s without a coordinate", t.Op))
	}
	coord := ts.coord.id
	if ts.projector != 0 {
		coord = s.projectCoord(ts.coord, ts.projector)
	}

	if t.Op == ir.TexQueryLod {
		s.capability(CapabilityImageQuery)
		result := s.m.AddOp(OpImageQueryLod, s.types.FVec(32, comps), load, coord)
		s.def(t.Dest, result, ir.BaseFloat)
		return
	}

	kind := t.DestType
	if !kind.IsNumeric() {
		panic(malformedf("texture result type %s", kind))
	}
	actual := s.typeOf(kind, 32, comps)
	if ts.dref != 0 && t.Op != ir.TexGather {
		actual = s.types.Float(32)
	}
	if ts.offset != 0 {
		s.capability(CapabilityImageGatherExtended)
	}

	var result uint32
	switch t.Op {
	case ir.TexFetch, ir.TexFetchMS:
		image := s.m.AddOp(OpImage, imageType, load)
		ops := append([]uint32{image, coord}, imageOperands(&ts)...)
		result = s.m.AddOp(OpImageFetch, actual, ops...)
	case ir.TexGather:
		if ts.constOffset != 0 {
			s.capability(CapabilityImageGatherExtended)
		}
		actual = s.typeOf(kind, 32, 4)
		if ts.dref != 0 {
			ops := append([]uint32{load, coord, ts.dref}, imageOperands(&ts)...)
			result = s.m.AddOp(OpImageDrefGather, actual, ops...)
		} else {
			ops := append([]uint32{load, coord, s.uintConst(uint32(t.Component))}, imageOperands(&ts)...)
			result = s.m.AddOp(OpImageGather, actual, ops...)
		}
		comps = 4
	default:
		ops := []uint32{load, coord}
		if ts.dref != 0 {
			ops = append(ops, ts.dref)
		}
		ops = append(ops, imageOperands(&ts)...)
		result = s.m.AddOp(sampleOpcode(&ts), actual, ops...)
	}
	s.m.AddDecorate(result, DecorationRelaxedPrecision)

	if ts.dref != 0 && t.Op != ir.TexGather && comps > 1 {
		parts := make([]uint32, comps)
		for i := range parts {
			parts[i] = result
		}
		result = s.m.AddCompositeConstruct(s.types.FVec(32, comps), parts...)
	}
	if bits := t.Dest.BitSize; bits != 32 {
		op := OpFConvert
		switch kind {
		case ir.BaseInt:
			op = OpSConvert
		case ir.BaseUint:
			op = OpUConvert
		}
		result = s.m.AddUnaryOp(op, s.typeOf(kind, bits, comps), result)
	}
	s.def(t.Dest, result, kind)
}

// sampleOpcode picks the sample instruction from the present operands.
func sampleOpcode(ts *texSources) OpCode {
	explicit := ts.lod != 0 || (ts.dx != 0 && ts.dy != 0)
	switch {
	case ts.projector != 0 && ts.dref != 0:
		if explicit {
			return OpImageSampleProjDrefExplicit
		}
		return OpImageSampleProjDrefImplicit
	case ts.projector != 0:
		if explicit {
			return OpImageSampleProjExplicitLod
		}
		return OpImageSampleProjImplicitLod
	case ts.dref != 0:
		if explicit {
			return OpImageSampleDrefExplicitLod
		}
		return OpImageSampleDrefImplicitLod
	case explicit:
		return OpImageSampleExplicitLod
	}
	return OpImageSampleImplicitLod
}

// projectCoord appends the projector to the coordinate.
func (s *session) projectCoord(coord value, projector uint32) uint32 {
	scalar := s.types.Float(32)
	parts := make([]uint32, 0, coord.comps+1)
	if coord.comps == 1 {
		parts = append(parts, coord.id)
	} else {
		for i := range coord.comps {
			parts = append(parts, s.m.AddCompositeExtract(scalar, coord.id, uint32(i)))
		}
	}
	parts = append(parts, projector)
	return s.m.AddCompositeConstruct(s.types.FVec(32, coord.comps+1), parts...)
}
