package spirv

import (
	"fmt"

	"github.com/gogpu/spvgen/ir"
)

// xfbTarget is the dedicated output variable of one captured range.
type xfbTarget struct {
	out ir.XfbOutput
	id  uint32
}

// declareXfbOutputs declares one float vector Output per capture,
// placed after the last location the shader's own outputs use.
func (s *session) declareXfbOutputs() {
	so := s.opts.StreamOutput
	if so == nil || len(so.Outputs) == 0 {
		return
	}
	switch s.stage() {
	case ir.StageVertex, ir.StageTessEval, ir.StageGeometry:
	default:
		panic(malformedf("transform feedback in a %s shader", s.stage()))
	}

	first := uint32(0)
	for i := range s.shader.Variables {
		v := &s.shader.Variables[i]
		if v.Mode == ir.ModeOutput && v.Builtin == ir.BuiltinNone {
			first = max(first, v.Location+1)
		}
	}

	for i, o := range so.Outputs {
		v := s.varAt(o.Register)
		if v.Mode != ir.ModeOutput {
			panic(malformedf("transform feedback captures %s variable %q", v.Mode, v.Name))
		}
		if o.NumComponents == 0 || o.NumComponents > 4 || int(o.StartComponent)+int(o.NumComponents) > int(xfbWidth(v)) {
			panic(malformedf("transform feedback range %d+%d of %q", o.StartComponent, o.NumComponents, v.Name))
		}
		id := s.emitVar(s.types.FVec(32, o.NumComponents), StorageClassOutput, fmt.Sprintf("xfb%d", i))
		s.m.AddDecorate(id, DecorationOffset, o.DstOffset*4)
		s.m.AddDecorate(id, DecorationXfbBuffer, o.Buffer)
		s.m.AddDecorate(id, DecorationXfbStride, o.Stride*4)
		if o.Stream != 0 {
			s.m.AddDecorate(id, DecorationStream, o.Stream)
		}
		s.m.AddDecorate(id, DecorationLocation, first+uint32(i))
		if o.StartComponent != 0 {
			s.m.AddDecorate(id, DecorationComponent, uint32(o.StartComponent))
		}
		s.xfb = append(s.xfb, xfbTarget{out: o, id: id})
		s.log.Debug("declared xfb output", "register", o.Register, "buffer", o.Buffer, "id", id)
	}
}

// xfbWidth is the number of capturable components of an output.
func xfbWidth(v *ir.Variable) uint8 {
	if v.Type.Base == ir.BaseArray {
		return uint8(min(v.Type.Length, 255))
	}
	return v.Type.NumComponents()
}

// emitXfbOutputs copies the current value of each captured output into
// its dedicated variable.
func (s *session) emitXfbOutputs() {
	for _, t := range s.xfb {
		o := t.out
		v := s.varAt(o.Register)
		id := s.variable(o.Register)
		typeID := s.types.TypeFor(v.Type)
		loaded := s.m.AddLoad(typeID, id)

		var result uint32
		if v.Type.Base == ir.BaseArray {
			elem := *v.Type.Elem
			elemType := s.types.TypeFor(elem)
			parts := make([]uint32, o.NumComponents)
			for i := range parts {
				parts[i] = s.m.AddCompositeExtract(elemType, loaded, uint32(o.StartComponent)+uint32(i))
			}
			result = s.xfbValue(parts, elem.Base, o.NumComponents)
		} else {
			out := value{id: loaded, bits: 32, comps: v.Type.NumComponents(), kind: v.Type.Base}
			switch {
			case o.NumComponents == out.comps:
			case o.NumComponents == 1:
				out.id = s.m.AddCompositeExtract(s.typeOf(out.kind, 32, 1), loaded, uint32(o.StartComponent))
				out.comps = 1
			default:
				indices := make([]uint32, o.NumComponents)
				for i := range indices {
					indices[i] = uint32(o.StartComponent) + uint32(i)
				}
				out.comps = o.NumComponents
				out.id = s.m.AddVectorShuffle(s.valueType(out), loaded, loaded, indices)
			}
			result = s.as(out, ir.BaseFloat).id
		}
		s.m.AddStore(t.id, result)
	}
}

// xfbValue assembles extracted array elements into a float vector.
func (s *session) xfbValue(parts []uint32, kind ir.BaseType, n uint8) uint32 {
	v := value{id: parts[0], bits: 32, comps: n, kind: kind}
	if n > 1 {
		v.id = s.m.AddCompositeConstruct(s.typeOf(kind, 32, n), parts...)
	}
	return s.as(v, ir.BaseFloat).id
}
