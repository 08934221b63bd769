package spirv

import "github.com/gogpu/spvgen/ir"

// writesBuiltin reports whether the shader has an output decorated
// with b.
func (s *session) writesBuiltin(b ir.Builtin) bool {
	for i := range s.shader.Variables {
		v := &s.shader.Variables[i]
		if v.Mode == ir.ModeOutput && v.Builtin == b {
			return true
		}
	}
	return false
}

// stageCapabilities requests the capabilities implied by the stage and
// the builtins it writes.
func (s *session) stageCapabilities() {
	pointSize := s.writesBuiltin(ir.BuiltinPointSize)
	switch s.stage() {
	case ir.StageGeometry:
		s.capability(CapabilityGeometry)
		if s.shader.Info.Geometry.ActiveStreamMask&^1 != 0 {
			s.capability(CapabilityGeometryStreams)
		}
		if pointSize {
			s.capability(CapabilityGeometryPointSize)
		}
		if s.writesBuiltin(ir.BuiltinViewportIndex) {
			s.capability(CapabilityMultiViewport)
		}
	case ir.StageTessCtrl, ir.StageTessEval:
		s.capability(CapabilityTessellation)
		if pointSize {
			s.capability(CapabilityTessellationPointSize)
		}
	case ir.StageFragment:
		if s.writesBuiltin(ir.BuiltinStencilRef) {
			s.extension("SPV_EXT_shader_stencil_export", CapabilityStencilExportEXT)
		}
		if s.shader.Info.Fragment.UsesSampleShading {
			s.capability(CapabilitySampleRateShading)
		}
	}

	if s.stage() == ir.StageVertex || s.stage() == ir.StageTessEval {
		layer := s.writesBuiltin(ir.BuiltinLayer)
		viewport := s.writesBuiltin(ir.BuiltinViewportIndex)
		switch {
		case !layer && !viewport:
		case s.opts.Version.AtLeast(Version1_5):
			if layer {
				s.capability(CapabilityShaderLayer)
			}
			if viewport {
				s.capability(CapabilityShaderViewportIndex)
			}
		default:
			s.extension("SPV_EXT_shader_viewport_index_layer", CapabilityShaderViewportIndexLayerEXT)
		}
	}
}

// addressingModel is Logical except for compute shaders with a declared
// pointer size.
func (s *session) addressingModel() AddressingModel {
	if s.stage() != ir.StageCompute {
		return AddressingModelLogical
	}
	switch s.shader.Info.Compute.PtrSize {
	case 32:
		s.capability(CapabilityAddresses)
		return AddressingModelPhysical32
	case 64:
		s.capability(CapabilityAddresses)
		return AddressingModelPhysical64
	}
	return AddressingModelLogical
}

func (s *session) executionModes(fn uint32) {
	if len(s.xfb) > 0 || s.hasXfbDecorations() {
		s.capability(CapabilityTransformFeedback)
		s.m.AddExecutionMode(fn, ExecutionModeXfb)
	}

	switch s.stage() {
	case ir.StageFragment:
		s.fragmentModes(fn)
	case ir.StageTessCtrl:
		s.m.AddExecutionMode(fn, ExecutionModeOutputVertices, s.shader.Info.Tess.VerticesOut)
	case ir.StageTessEval:
		s.tessEvalModes(fn)
	case ir.StageGeometry:
		s.geometryModes(fn)
	case ir.StageCompute:
		size := s.shader.Info.Compute.WorkgroupSize
		if size != [3]uint32{} {
			s.m.AddExecutionMode(fn, ExecutionModeLocalSize, size[0], size[1], size[2])
		} else {
			s.workgroupSizeID()
		}
	}
}

func (s *session) hasXfbDecorations() bool {
	for i := range s.shader.Variables {
		if s.shader.Variables[i].Xfb != nil {
			return true
		}
	}
	return false
}

var depthLayoutModes = map[ir.DepthLayout]ExecutionMode{
	ir.DepthLayoutGreater:   ExecutionModeDepthGreater,
	ir.DepthLayoutLess:      ExecutionModeDepthLess,
	ir.DepthLayoutUnchanged: ExecutionModeDepthUnchanged,
}

func (s *session) fragmentModes(fn uint32) {
	info := s.shader.Info.Fragment
	s.m.AddExecutionMode(fn, ExecutionModeOriginUpperLeft)
	if s.writesBuiltin(ir.BuiltinFragDepth) {
		s.m.AddExecutionMode(fn, ExecutionModeDepthReplacing)
		if mode, ok := depthLayoutModes[info.DepthLayout]; ok {
			s.m.AddExecutionMode(fn, mode)
		}
	}
	if s.writesBuiltin(ir.BuiltinStencilRef) {
		s.m.AddExecutionMode(fn, ExecutionModeStencilRefReplacingEXT)
	}
	if info.EarlyFragmentTests {
		s.m.AddExecutionMode(fn, ExecutionModeEarlyFragmentTests)
	}
	if info.PostDepthCoverage {
		s.extension("SPV_KHR_post_depth_coverage", CapabilitySampleMaskPostDepthCoverage)
		s.m.AddExecutionMode(fn, ExecutionModePostDepthCoverage)
	}

	interlocks := []struct {
		on   bool
		mode ExecutionMode
		cap  Capability
	}{
		{info.PixelInterlockOrdered, ExecutionModePixelInterlockOrdered, CapabilityFragmentShaderPixelInterlockEXT},
		{info.PixelInterlockUnordered, ExecutionModePixelInterlockUnordered, CapabilityFragmentShaderPixelInterlockEXT},
		{info.SampleInterlockOrdered, ExecutionModeSampleInterlockOrdered, CapabilityFragmentShaderSampleInterlockEXT},
		{info.SampleInterlockUnordered, ExecutionModeSampleInterlockUnordered, CapabilityFragmentShaderSampleInterlockEXT},
	}
	for _, il := range interlocks {
		if il.on {
			s.extension("SPV_EXT_fragment_shader_interlock", il.cap)
			s.m.AddExecutionMode(fn, il.mode)
		}
	}
}

func (s *session) tessEvalModes(fn uint32) {
	info := s.shader.Info.Tess
	switch info.Primitive {
	case ir.PrimitiveTriangles:
		s.m.AddExecutionMode(fn, ExecutionModeTriangles)
	case ir.PrimitiveQuads:
		s.m.AddExecutionMode(fn, ExecutionModeQuads)
	case ir.PrimitiveIsolines:
		s.m.AddExecutionMode(fn, ExecutionModeIsolines)
	default:
		panic(malformedf("tessellation primitive %s", info.Primitive))
	}
	if info.CCW {
		s.m.AddExecutionMode(fn, ExecutionModeVertexOrderCcw)
	} else {
		s.m.AddExecutionMode(fn, ExecutionModeVertexOrderCw)
	}
	switch info.Spacing {
	case ir.SpacingEqual:
		s.m.AddExecutionMode(fn, ExecutionModeSpacingEqual)
	case ir.SpacingFractionalOdd:
		s.m.AddExecutionMode(fn, ExecutionModeSpacingFractionalOdd)
	case ir.SpacingFractionalEven:
		s.m.AddExecutionMode(fn, ExecutionModeSpacingFractionalEven)
	}
	if info.PointMode {
		s.m.AddExecutionMode(fn, ExecutionModePointMode)
	}
}

var geometryInputModes = map[ir.Primitive]ExecutionMode{
	ir.PrimitivePoints:                 ExecutionModeInputPoints,
	ir.PrimitiveLines:                  ExecutionModeInputLines,
	ir.PrimitiveLineLoop:               ExecutionModeInputLines,
	ir.PrimitiveLineStrip:              ExecutionModeInputLines,
	ir.PrimitiveLinesAdjacency:         ExecutionModeInputLinesAdjacency,
	ir.PrimitiveLineStripAdjacency:     ExecutionModeInputLinesAdjacency,
	ir.PrimitiveTriangles:              ExecutionModeTriangles,
	ir.PrimitiveTriangleStrip:          ExecutionModeTriangles,
	ir.PrimitiveTriangleFan:            ExecutionModeTriangles,
	ir.PrimitiveTrianglesAdjacency:     ExecutionModeInputTrianglesAdjacency,
	ir.PrimitiveTriangleStripAdjacency: ExecutionModeInputTrianglesAdjacency,
}

var geometryOutputModes = map[ir.Primitive]ExecutionMode{
	ir.PrimitivePoints:        ExecutionModeOutputPoints,
	ir.PrimitiveLineStrip:     ExecutionModeOutputLineStrip,
	ir.PrimitiveTriangleStrip: ExecutionModeOutputTriangleStrip,
}

func (s *session) geometryModes(fn uint32) {
	info := s.shader.Info.Geometry
	in, ok := geometryInputModes[info.InputPrimitive]
	if !ok {
		panic(malformedf("geometry input primitive %s", info.InputPrimitive))
	}
	out, ok := geometryOutputModes[info.OutputPrimitive]
	if !ok {
		panic(malformedf("geometry output primitive %s", info.OutputPrimitive))
	}
	s.m.AddExecutionMode(fn, in)
	s.m.AddExecutionMode(fn, ExecutionModeInvocations, max(info.Invocations, 1))
	s.m.AddExecutionMode(fn, out)
	s.m.AddExecutionMode(fn, ExecutionModeOutputVertices, info.VerticesOut)
}
