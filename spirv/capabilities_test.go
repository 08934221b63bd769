package spirv

import (
	"testing"

	"github.com/gogpu/spvgen/ir"
)

func TestCapabilities_NoOptionalFeatures(t *testing.T) {
	shaders := map[string]*ir.Shader{
		"fragment": passthrough(),
		"compute":  computeBuilder().Shader(),
		"loop":     counterLoop(),
	}
	for name, shader := range shaders {
		t.Run(name, func(t *testing.T) {
			data := compileShader(t, shader, DefaultOptions())
			caps := extractCapabilities(data)
			if len(caps) != 1 || !caps[uint32(CapabilityShader)] {
				t.Errorf("capabilities = %v, want only Shader", caps)
			}
			if n := countOpcode(decodeSPIRVInstructions(data), OpExtension); n != 0 {
				t.Errorf("%d extensions declared", n)
			}
		})
	}
}

func TestCapabilities_ImageAtomicExact(t *testing.T) {
	b := computeBuilder()
	img := b.AddVariable(ir.Variable{
		Name: "counters", Mode: ir.ModeImage,
		Type: ir.ImageOf(ir.ImageType{Dim: ir.Dim1D, Result: ir.BaseUint, Format: ir.FormatR32ui}),
	})
	b.Atomic(ir.IntrImageAtomic, ir.AtomicAdd, 32,
		b.DerefVar(img), b.ConstUint32(3), b.Undef(32, 1), b.ConstUint32(1))

	data := compileShader(t, b.Shader(), DefaultOptions())
	caps := extractCapabilities(data)
	want := map[uint32]bool{uint32(CapabilityShader): true, uint32(CapabilityImage1D): true}
	if len(caps) != len(want) {
		t.Errorf("capabilities = %v, want Shader and Image1D", caps)
	}
	for c := range want {
		if !caps[c] {
			t.Errorf("missing capability %d", c)
		}
	}

	instrs := decodeSPIRVInstructions(data)
	if n := countOpcode(instrs, OpImageTexelPointer); n != 1 {
		t.Errorf("OpImageTexelPointer count = %d, want 1", n)
	}
	if n := countOpcode(instrs, OpAtomicIAdd); n != 1 {
		t.Errorf("OpAtomicIAdd count = %d, want 1", n)
	}
}

func TestCapabilities_Requested(t *testing.T) {
	tests := []struct {
		name   string
		shader func() *ir.Shader
		want   []Capability
	}{
		{
			name: "storage image without format",
			shader: func() *ir.Shader {
				b := computeBuilder()
				b.AddVariable(ir.Variable{Name: "img", Mode: ir.ModeImage,
					Type: ir.ImageOf(ir.ImageType{Dim: ir.Dim2D, Result: ir.BaseFloat})})
				return b.Shader()
			},
			want: []Capability{CapabilityStorageImageReadWithoutFormat, CapabilityStorageImageWriteWithoutFormat},
		},
		{
			name: "extended storage format",
			shader: func() *ir.Shader {
				b := computeBuilder()
				b.AddVariable(ir.Variable{Name: "img", Mode: ir.ModeImage,
					Type: ir.ImageOf(ir.ImageType{Dim: ir.Dim2D, Result: ir.BaseFloat, Format: ir.FormatRg16f})})
				return b.Shader()
			},
			want: []Capability{CapabilityStorageImageExtendedFormats},
		},
		{
			name: "sampled buffer and cube array",
			shader: func() *ir.Shader {
				b := ir.NewBuilder(ir.StageFragment)
				b.AddVariable(ir.Variable{Name: "texels", Mode: ir.ModeUniform,
					Type: ir.ImageOf(ir.ImageType{Dim: ir.DimBuffer, Result: ir.BaseFloat, Sampler: true})})
				b.AddVariable(ir.Variable{Name: "env", Mode: ir.ModeUniform, DriverLocation: 1,
					Type: ir.ImageOf(ir.ImageType{Dim: ir.DimCube, Arrayed: true, Result: ir.BaseFloat, Sampler: true})})
				return b.Shader()
			},
			want: []Capability{CapabilitySampledBuffer, CapabilityImageCubeArray},
		},
		{
			name: "geometry streams and point size",
			shader: func() *ir.Shader {
				b := ir.NewBuilder(ir.StageGeometry)
				info := &b.Info().Geometry
				info.InputPrimitive = ir.PrimitivePoints
				info.OutputPrimitive = ir.PrimitivePoints
				info.VerticesOut = 1
				info.ActiveStreamMask = 0b11
				b.AddVariable(ir.Variable{Name: "psize", Mode: ir.ModeOutput,
					Type: ir.Scalar(ir.BaseFloat, 32), Builtin: ir.BuiltinPointSize})
				return b.Shader()
			},
			want: []Capability{CapabilityGeometry, CapabilityGeometryStreams, CapabilityGeometryPointSize},
		},
		{
			name: "fragment stencil export",
			shader: func() *ir.Shader {
				b := ir.NewBuilder(ir.StageFragment)
				b.AddVariable(ir.Variable{Name: "ref", Mode: ir.ModeOutput,
					Type: ir.Scalar(ir.BaseInt, 32), Builtin: ir.BuiltinStencilRef})
				return b.Shader()
			},
			want: []Capability{CapabilityStencilExportEXT},
		},
		{
			name: "sample rate shading",
			shader: func() *ir.Shader {
				b := ir.NewBuilder(ir.StageFragment)
				b.AddVariable(ir.Variable{Name: "v", Mode: ir.ModeInput, Type: vec4(), Sample: true})
				return b.Shader()
			},
			want: []Capability{CapabilitySampleRateShading},
		},
		{
			name: "subgroup ballot",
			shader: func() *ir.Shader {
				b := computeBuilder()
				b.Intrinsic(ir.IntrLoadSubgroupSize, 32, 1)
				return b.Shader()
			},
			want: []Capability{CapabilitySubgroupBallotKHR},
		},
		{
			name: "physical addressing",
			shader: func() *ir.Shader {
				b := computeBuilder()
				b.Info().Compute.PtrSize = 64
				return b.Shader()
			},
			want: []Capability{CapabilityAddresses},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := compileShader(t, tt.shader(), DefaultOptions())
			caps := extractCapabilities(data)
			if len(caps) != len(tt.want)+1 {
				t.Errorf("capabilities = %v, want Shader plus %v", caps, tt.want)
			}
			assertCapability(t, data, CapabilityShader)
			for _, c := range tt.want {
				assertCapability(t, data, c)
			}
		})
	}
}

func TestCapabilities_LayerViewportByVersion(t *testing.T) {
	build := func() *ir.Shader {
		b := ir.NewBuilder(ir.StageVertex)
		layer := b.AddVariable(ir.Variable{Name: "layer", Mode: ir.ModeOutput,
			Type: ir.Scalar(ir.BaseInt, 32), Builtin: ir.BuiltinLayer})
		b.StoreVar(layer, b.ConstUint32(1))
		return b.Shader()
	}

	old := compileShader(t, build(), DefaultOptions())
	assertCapability(t, old, CapabilityShaderViewportIndexLayerEXT)
	assertNoCapability(t, old, CapabilityShaderLayer)

	opts := DefaultOptions()
	opts.Version = Version1_5
	current := compileShader(t, build(), opts)
	assertCapability(t, current, CapabilityShaderLayer)
	assertNoCapability(t, current, CapabilityShaderViewportIndexLayerEXT)
	if n := countOpcode(decodeSPIRVInstructions(current), OpExtension); n != 0 {
		t.Errorf("SPIR-V 1.5 declared %d extensions", n)
	}
}

func TestCapabilities_DeclaredOnce(t *testing.T) {
	b := computeBuilder()
	b.Intrinsic(ir.IntrLoadSubgroupSize, 32, 1)
	b.Intrinsic(ir.IntrLoadSubgroupInvocation, 32, 1)
	b.Intrinsic(ir.IntrLoadSubgroupEqMask, 32, 4)

	instrs := decodeSPIRVInstructions(compileShader(t, b.Shader(), DefaultOptions()))
	if n := countOpcode(instrs, OpCapability); n != 2 {
		t.Errorf("OpCapability count = %d, want 2", n)
	}
	if n := countOpcode(instrs, OpExtension); n != 1 {
		t.Errorf("OpExtension count = %d, want 1", n)
	}
}
