package spirv

import "github.com/gogpu/spvgen/ir"

// imageOf returns the image descriptor behind an image deref.
func (s *session) imageOf(p pointer) *ir.ImageType {
	img := p.typ.WithoutArray().Image
	if img == nil {
		img = s.varAt(p.v).Type.WithoutArray().Image
	}
	if img == nil {
		panic(malformedf("image access through a non-image deref"))
	}
	return img
}

// loadImage loads the image handle behind p.
func (s *session) loadImage(p pointer) uint32 {
	return s.m.AddLoad(s.pointeeType(p.v, ir.ImageOf(*s.imageOf(p))), p.id)
}

// resize truncates or zero-pads v to n components.
func (s *session) resize(v value, n uint8) value {
	switch {
	case v.comps == n:
		return v
	case v.comps > n:
		out := value{bits: v.bits, comps: n, kind: v.kind}
		if n == 1 {
			out.id = s.m.AddCompositeExtract(s.valueType(out), v.id, 0)
			return out
		}
		indices := make([]uint32, n)
		for i := range indices {
			indices[i] = uint32(i)
		}
		out.id = s.m.AddVectorShuffle(s.valueType(out), v.id, v.id, indices)
		return out
	}
	out := value{bits: v.bits, comps: n, kind: v.kind}
	parts := make([]uint32, 0, n)
	if v.comps == 1 {
		parts = append(parts, v.id)
	} else {
		scalar := s.typeOf(v.kind, v.bits, 1)
		for i := range v.comps {
			parts = append(parts, s.m.AddCompositeExtract(scalar, v.id, uint32(i)))
		}
	}
	zero := s.types.ConstScalar(v.kind, v.bits, 0)
	for len(parts) < int(n) {
		parts = append(parts, zero)
	}
	out.id = s.m.AddCompositeConstruct(s.valueType(out), parts...)
	return out
}

// imageCoord returns the integer texel coordinate sized for img.
func (s *session) imageCoord(src ir.Src, img *ir.ImageType) uint32 {
	return s.resize(s.srcAs(src, ir.BaseInt), img.CoordComponents()).id
}

func (s *session) emitImageLoad(intr *ir.Intrinsic) {
	dest := s.intrDest(intr)
	p := s.pointer(s.intrSrc(intr, 0))
	img := s.imageOf(p)
	handle := s.loadImage(p)
	coord := s.imageCoord(s.intrSrc(intr, 1), img)
	if dest.BitSize != 32 {
		panic(unsupportedf("%d-bit image load", dest.BitSize))
	}

	resultType := s.typeOf(img.Result, 32, max(dest.Components, 1))
	var result uint32
	if img.Multisample {
		sample := s.srcAs(s.intrSrc(intr, 2), ir.BaseInt).id
		result = s.m.AddOp(OpImageRead, resultType, handle, coord, uint32(ImageOperandsSample), sample)
	} else {
		result = s.m.AddOp(OpImageRead, resultType, handle, coord)
	}
	s.def(*dest, result, img.Result)
}

func (s *session) emitImageStore(intr *ir.Intrinsic) {
	p := s.pointer(s.intrSrc(intr, 0))
	img := s.imageOf(p)
	handle := s.loadImage(p)
	coord := s.imageCoord(s.intrSrc(intr, 1), img)
	texel := s.srcAs(s.intrSrc(intr, 3), img.Result)
	if img.Multisample {
		sample := s.srcAs(s.intrSrc(intr, 2), ir.BaseInt).id
		s.m.AddOpVoid(OpImageWrite, handle, coord, texel.id, uint32(ImageOperandsSample), sample)
		return
	}
	s.m.AddOpVoid(OpImageWrite, handle, coord, texel.id)
}

func (s *session) emitImageSize(intr *ir.Intrinsic) {
	dest := s.intrDest(intr)
	p := s.pointer(s.intrSrc(intr, 0))
	s.capability(CapabilityImageQuery)
	handle := s.loadImage(p)
	result := s.m.AddOp(OpImageQuerySize, s.types.UVec(32, max(dest.Components, 1)), handle)
	s.def(*dest, result, ir.BaseUint)
}

func (s *session) emitImageSamples(intr *ir.Intrinsic) {
	dest := s.intrDest(intr)
	p := s.pointer(s.intrSrc(intr, 0))
	s.capability(CapabilityImageQuery)
	handle := s.loadImage(p)
	s.def(*dest, s.m.AddOp(OpImageQuerySamples, s.types.UVec(32, 1), handle), ir.BaseUint)
}
