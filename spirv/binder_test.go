package spirv

import (
	"slices"
	"testing"

	"github.com/gogpu/spvgen/ir"
)

// entryInterface returns the interface ids listed on the entry point.
func entryInterface(t *testing.T, instrs []spirvInstruction) []uint32 {
	t.Helper()
	eps := findOpcode(instrs, OpEntryPoint)
	if len(eps) != 1 {
		t.Fatalf("OpEntryPoint count = %d, want 1", len(eps))
	}
	words := eps[0].words[3:]
	// Skip the nul-terminated name.
	for i, w := range words {
		if w>>24 == 0 {
			return words[i+1:]
		}
	}
	t.Fatal("unterminated entry point name")
	return nil
}

// variables returns the OpVariable result ids by storage class.
func variables(instrs []spirvInstruction) map[StorageClass][]uint32 {
	out := make(map[StorageClass][]uint32)
	for _, inst := range findOpcode(instrs, OpVariable) {
		class := StorageClass(inst.words[3])
		out[class] = append(out[class], inst.words[2])
	}
	return out
}

func computeBuilder() *ir.Builder {
	b := ir.NewBuilder(ir.StageCompute)
	b.Info().Compute.WorkgroupSize = [3]uint32{8, 8, 1}
	return b
}

func TestBinder_BuiltinRequestedTwice(t *testing.T) {
	b := ir.NewBuilder(ir.StageVertex)
	out := b.AddVariable(ir.Variable{Name: "id", Mode: ir.ModeOutput, Type: ir.Vector(ir.BaseUint, 32, 2)})
	first := b.Intrinsic(ir.IntrLoadVertexID, 32, 1)
	second := b.Intrinsic(ir.IntrLoadVertexID, 32, 1)
	b.StoreVar(out, b.ALU(ir.OpVec2, 32, 2, first, second))

	instrs := decodeSPIRVInstructions(compileShader(t, b.Shader(), DefaultOptions()))
	var builtinVars []uint32
	for _, inst := range findOpcode(instrs, OpDecorate) {
		if Decoration(inst.words[2]) == DecorationBuiltIn && BuiltIn(inst.words[3]) == BuiltInVertexIndex {
			builtinVars = append(builtinVars, inst.words[1])
		}
	}
	if len(builtinVars) != 1 {
		t.Fatalf("VertexIndex variables = %v, want exactly one", builtinVars)
	}

	loads := findOpcode(instrs, OpLoad)
	if len(loads) != 2 {
		t.Fatalf("OpLoad count = %d, want 2", len(loads))
	}
	for _, l := range loads {
		if l.words[3] != builtinVars[0] {
			t.Errorf("load reads %%%d, want the builtin %%%d", l.words[3], builtinVars[0])
		}
	}
	if !slices.Contains(entryInterface(t, instrs), builtinVars[0]) {
		t.Error("builtin variable missing from the entry point interface")
	}
}

func TestBinder_BuiltinReadInTwoShapes(t *testing.T) {
	b := computeBuilder()
	b.Intrinsic(ir.IntrLoadLocalInvocationID, 32, 3)
	b.Intrinsic(ir.IntrLoadLocalInvocationID, 32, 2)

	instrs := decodeSPIRVInstructions(compileShader(t, b.Shader(), DefaultOptions()))
	var builtinVars []uint32
	for _, inst := range findOpcode(instrs, OpDecorate) {
		if Decoration(inst.words[2]) == DecorationBuiltIn && BuiltIn(inst.words[3]) == BuiltInLocalInvocationID {
			builtinVars = append(builtinVars, inst.words[1])
		}
	}
	if len(builtinVars) != 1 {
		t.Fatalf("LocalInvocationId variables = %v, want exactly one", builtinVars)
	}
	loads := findOpcode(instrs, OpLoad)
	if len(loads) != 2 {
		t.Fatalf("OpLoad count = %d, want 2", len(loads))
	}
	for _, l := range loads {
		typ, ok := definition(instrs, l.words[1])
		if !ok || typ.opcode != OpTypeVector || typ.words[3] != 3 {
			t.Errorf("load result type = %v, want the declared uvec3", typ.words)
		}
	}
	if n := countOpcode(instrs, OpVectorShuffle); n != 1 {
		t.Errorf("OpVectorShuffle count = %d, want 1 narrowing to uvec2", n)
	}
}

func TestBinder_SampleMaskInputHasNoStride(t *testing.T) {
	b := ir.NewBuilder(ir.StageFragment)
	b.Intrinsic(ir.IntrLoadSampleMaskIn, 32, 1)

	instrs := decodeSPIRVInstructions(compileShader(t, b.Shader(), DefaultOptions()))
	arrays := findOpcode(instrs, OpTypeArray)
	if len(arrays) != 1 {
		t.Fatalf("OpTypeArray count = %d, want 1", len(arrays))
	}
	if _, ok := decorations(instrs, arrays[0].words[1])[DecorationArrayStride]; ok {
		t.Error("Input sample mask array decorated with ArrayStride")
	}
}

func TestBinder_BoolBuiltinIntoWiderDest(t *testing.T) {
	b := ir.NewBuilder(ir.StageFragment)
	out := b.AddVariable(ir.Variable{Name: "face", Mode: ir.ModeOutput, Type: ir.Scalar(ir.BaseUint, 32)})
	b.StoreVar(out, b.Intrinsic(ir.IntrLoadFrontFace, 32, 1))

	instrs := decodeSPIRVInstructions(compileShader(t, b.Shader(), DefaultOptions()))
	if n := countOpcode(instrs, OpTypeBool); n != 1 {
		t.Errorf("OpTypeBool count = %d, want 1", n)
	}
	if n := countOpcode(instrs, OpSelect); n != 1 {
		t.Errorf("OpSelect count = %d, want 1", n)
	}
}

func TestBinder_DrawParametersExtension(t *testing.T) {
	b := ir.NewBuilder(ir.StageVertex)
	out := b.AddVariable(ir.Variable{Name: "base", Mode: ir.ModeOutput, Type: ir.Scalar(ir.BaseUint, 32)})
	b.StoreVar(out, b.Intrinsic(ir.IntrLoadBaseVertex, 32, 1))

	data := compileShader(t, b.Shader(), DefaultOptions())
	assertCapability(t, data, CapabilityDrawParameters)
	exts := findOpcode(decodeSPIRVInstructions(data), OpExtension)
	if len(exts) != 1 || decodeString(exts[0].words[1:]) != "SPV_KHR_shader_draw_parameters" {
		t.Errorf("extensions = %v, want SPV_KHR_shader_draw_parameters", exts)
	}
}

func TestBinder_InterfaceByVersion(t *testing.T) {
	build := func() *ir.Shader {
		b := ir.NewBuilder(ir.StageFragment)
		out := b.AddVariable(ir.Variable{Name: "color", Mode: ir.ModeOutput, Type: vec4()})
		b.AddVariable(ir.Variable{
			Name: "params", Mode: ir.ModeUBO, Type: ir.ArrayOf(ir.Scalar(ir.BaseUint, 32), 4),
			Binding: 1, DriverLocation: 0,
		})
		b.StoreVar(out, b.Intrinsic(ir.IntrLoadUBO, 32, 4, b.ConstUint32(0), b.ConstUint32(0)))
		return b.Shader()
	}

	tests := []struct {
		version Version
		want    int
	}{
		{Version1_3, 1},
		{Version1_4, 2},
	}
	for _, tt := range tests {
		opts := DefaultOptions()
		opts.Version = tt.version
		instrs := decodeSPIRVInstructions(compileShader(t, build(), opts))
		if got := len(entryInterface(t, instrs)); got != tt.want {
			t.Errorf("SPIR-V %s: %d interface ids, want %d", tt.version, got, tt.want)
		}
	}
}

func TestBinder_VaryingDecorations(t *testing.T) {
	b := ir.NewBuilder(ir.StageFragment)
	flat := b.AddVariable(ir.Variable{Name: "flat", Mode: ir.ModeInput, Type: vec4(), Location: 2, Interp: ir.InterpFlat})
	centroid := b.AddVariable(ir.Variable{Name: "cent", Mode: ir.ModeInput, Type: vec4(), Location: 3, Centroid: true, Component: 1})
	out := b.AddVariable(ir.Variable{Name: "color", Mode: ir.ModeOutput, Type: vec4(), Location: 1, Index: 1})
	b.StoreVar(out, b.ALU(ir.OpFAdd, 32, 4, b.LoadVar(flat), b.LoadVar(centroid)))
	shader := b.Shader()

	opts := DefaultOptions()
	opts.Debug = true
	instrs := decodeSPIRVInstructions(compileShader(t, shader, opts))
	ids := namedIDs(instrs)

	check := func(name string, want map[Decoration][]uint32) {
		t.Helper()
		got := decorations(instrs, ids[name])
		if len(got) != len(want) {
			t.Errorf("%s decorations = %v, want %v", name, got, want)
			return
		}
		for d, operands := range want {
			if !slices.Equal(got[d], operands) {
				t.Errorf("%s decoration %d = %v, want %v", name, d, got[d], operands)
			}
		}
	}
	check("flat", map[Decoration][]uint32{DecorationLocation: {2}, DecorationFlat: {}})
	check("cent", map[Decoration][]uint32{DecorationLocation: {3}, DecorationCentroid: {}, DecorationComponent: {1}})
	check("color", map[Decoration][]uint32{DecorationLocation: {1}, DecorationIndex: {1}})
}

// namedIDs maps OpName strings to their targets.
func namedIDs(instrs []spirvInstruction) map[string]uint32 {
	out := make(map[string]uint32)
	for _, inst := range findOpcode(instrs, OpName) {
		out[decodeString(inst.words[2:])] = inst.words[1]
	}
	return out
}

func TestBinder_SampleMaskOutputIsArray(t *testing.T) {
	b := ir.NewBuilder(ir.StageFragment)
	mask := b.AddVariable(ir.Variable{Name: "mask", Mode: ir.ModeOutput, Type: ir.Scalar(ir.BaseUint, 32), Builtin: ir.BuiltinSampleMask})
	b.StoreVar(mask, b.ConstUint32(0xf))

	instrs := decodeSPIRVInstructions(compileShader(t, b.Shader(), DefaultOptions()))
	if n := countOpcode(instrs, OpTypeArray); n != 1 {
		t.Errorf("OpTypeArray count = %d, want 1", n)
	}
	if n := countOpcode(instrs, OpCompositeConstruct); n != 1 {
		t.Errorf("OpCompositeConstruct count = %d, want 1", n)
	}
}

func TestBinder_StorageImageDecorations(t *testing.T) {
	b := computeBuilder()
	img := ir.ImageType{Dim: ir.Dim2D, Result: ir.BaseFloat, Format: ir.FormatRgba8}
	b.AddVariable(ir.Variable{
		Name: "img", Mode: ir.ModeImage, Type: ir.ImageOf(img),
		DescriptorSet: 2, Binding: 5, Access: ir.AccessCoherent | ir.AccessNonReadable,
	})

	opts := DefaultOptions()
	opts.Debug = true
	data := compileShader(t, b.Shader(), opts)
	instrs := decodeSPIRVInstructions(data)
	got := decorations(instrs, namedIDs(instrs)["img"])
	for _, d := range []Decoration{DecorationCoherent, DecorationNonReadable, DecorationDescriptorSet, DecorationBinding} {
		if _, ok := got[d]; !ok {
			t.Errorf("missing decoration %d", d)
		}
	}
	if !slices.Equal(got[DecorationDescriptorSet], []uint32{2}) || !slices.Equal(got[DecorationBinding], []uint32{5}) {
		t.Errorf("set/binding = %v/%v, want 2/5", got[DecorationDescriptorSet], got[DecorationBinding])
	}
	if _, ok := got[DecorationNonWritable]; ok {
		t.Error("unexpected NonWritable")
	}
	if caps := extractCapabilities(data); len(caps) != 1 {
		t.Errorf("capabilities = %v, want Shader only", caps)
	}
}

func TestBinder_SamplerArrayAndBindless(t *testing.T) {
	b := ir.NewBuilder(ir.StageFragment)
	img := ir.ImageType{Dim: ir.Dim2D, Result: ir.BaseFloat, Sampler: true}
	b.AddVariable(ir.Variable{Name: "textures", Mode: ir.ModeUniform, Type: ir.ArrayOf(ir.ImageOf(img), 4), Binding: 0})
	b.AddVariable(ir.Variable{Name: "bindless", Mode: ir.ModeUniform, Type: ir.ArrayOf(ir.ImageOf(img), 4), Bindless: true})

	opts := DefaultOptions()
	opts.Debug = true
	instrs := decodeSPIRVInstructions(compileShader(t, b.Shader(), opts))
	ids := namedIDs(instrs)

	if n := countOpcode(instrs, OpTypeArray); n != 1 {
		t.Errorf("OpTypeArray count = %d, want 1 for the bound array only", n)
	}
	if d := decorations(instrs, ids["bindless"]); len(d) != 0 {
		t.Errorf("bindless variable decorated with %v", d)
	}
	if d := decorations(instrs, ids["textures"]); len(d) != 2 {
		t.Errorf("bound sampler array decorations = %v, want set and binding", d)
	}
}

func TestBinder_SSBORuntimeTail(t *testing.T) {
	b := computeBuilder()
	b.AddVariable(ir.Variable{
		Name: "data", Mode: ir.ModeSSBO, Binding: 3, DriverLocation: 0,
		Type: ir.StructOf(
			ir.Field{Name: "count", Type: ir.Scalar(ir.BaseUint, 32)},
			ir.Field{Name: "pad", Type: ir.Scalar(ir.BaseUint, 32)},
			ir.Field{Name: "items", Type: ir.ArrayOf(ir.Vector(ir.BaseFloat, 32, 4), 0)},
		),
	})
	size := b.Intrinsic(ir.IntrGetSSBOSize, 32, 1, b.ConstUint32(0))
	b.IntrinsicVoid(ir.IntrStoreSSBO, size, b.ConstUint32(0), b.ConstUint32(0))

	instrs := decodeSPIRVInstructions(compileShader(t, b.Shader(), DefaultOptions()))
	lengths := findOpcode(instrs, OpArrayLength)
	if len(lengths) != 1 {
		t.Fatalf("OpArrayLength count = %d, want 1", len(lengths))
	}
	if member := lengths[0].words[4]; member != 1 {
		t.Errorf("OpArrayLength member = %d, want the runtime tail 1", member)
	}
	if n := countOpcode(instrs, OpTypeRuntimeArray); n != 1 {
		t.Errorf("OpTypeRuntimeArray count = %d, want 1", n)
	}
	// One block view shared by the size query and the store.
	if n := len(variables(instrs)[StorageClassStorageBuffer]); n != 1 {
		t.Errorf("storage buffer variables = %d, want 1", n)
	}
	if n := countOpcode(instrs, OpIMul); n != 1 {
		t.Errorf("OpIMul count = %d, want 1", n)
	}
}

func TestBinder_BufferViewPerWidth(t *testing.T) {
	b := computeBuilder()
	b.AddVariable(ir.Variable{Name: "data", Mode: ir.ModeSSBO, DriverLocation: 0, Type: ir.ArrayOf(ir.Scalar(ir.BaseUint, 32), 0)})
	v := b.Intrinsic(ir.IntrLoadSSBO, 32, 1, b.ConstUint32(0), b.ConstUint32(4))
	b.IntrinsicVoid(ir.IntrStoreSSBO, b.ALU(ir.OpU2U, 16, 1, v), b.ConstUint32(0), b.ConstUint32(0))

	data := compileShader(t, b.Shader(), DefaultOptions())
	instrs := decodeSPIRVInstructions(data)
	if n := len(variables(instrs)[StorageClassStorageBuffer]); n != 2 {
		t.Errorf("storage buffer variables = %d, want a 32-bit and a 16-bit view", n)
	}
	assertCapability(t, data, CapabilityStorageBuffer16BitAccess)
	assertCapability(t, data, CapabilityInt16)
}

func TestBinder_CoherentSSBOUsesAtomics(t *testing.T) {
	b := computeBuilder()
	b.AddVariable(ir.Variable{
		Name: "data", Mode: ir.ModeSSBO, DriverLocation: 0, Access: ir.AccessCoherent,
		Type: ir.ArrayOf(ir.Scalar(ir.BaseUint, 32), 16),
	})
	v := b.Intrinsic(ir.IntrLoadSSBO, 32, 2, b.ConstUint32(0), b.ConstUint32(8))
	b.IntrinsicVoid(ir.IntrStoreSSBO, v, b.ConstUint32(0), b.ConstUint32(0))

	instrs := decodeSPIRVInstructions(compileShader(t, b.Shader(), DefaultOptions()))
	if n := countOpcode(instrs, OpAtomicLoad); n != 2 {
		t.Errorf("OpAtomicLoad count = %d, want 2", n)
	}
	if n := countOpcode(instrs, OpAtomicStore); n != 2 {
		t.Errorf("OpAtomicStore count = %d, want 2", n)
	}
	if n := countOpcode(instrs, OpLoad) + countOpcode(instrs, OpStore); n != 0 {
		t.Errorf("coherent buffer accessed with %d plain loads and stores", n)
	}
}

func TestBinder_PushConstants(t *testing.T) {
	b := ir.NewBuilder(ir.StageVertex)
	out := b.AddVariable(ir.Variable{Name: "pos", Mode: ir.ModeOutput, Type: vec4(), Builtin: ir.BuiltinPosition})
	b.AddVariable(ir.Variable{
		Name: "pc", Mode: ir.ModePushConst,
		Type: ir.StructOf(
			ir.Field{Name: "scale", Type: vec4()},
			ir.Field{Name: "weights", Type: ir.ArrayOf(ir.Scalar(ir.BaseFloat, 32), 8)},
		),
	})
	scale := b.Intrinsic(ir.IntrLoadPushConstant, 32, 4, b.ConstUint32(0), b.ConstUint32(0))
	weights := b.Intrinsic(ir.IntrLoadPushConstant, 32, 4, b.ConstUint32(1), b.ConstUint32(8))
	b.StoreVar(out, b.ALU(ir.OpFMul, 32, 4, scale, weights))

	instrs := decodeSPIRVInstructions(compileShader(t, b.Shader(), DefaultOptions()))
	if n := len(variables(instrs)[StorageClassPushConstant]); n != 1 {
		t.Fatalf("push constant variables = %d, want 1", n)
	}
	// One chain for the vector member, four for the array elements.
	if n := countOpcode(instrs, OpAccessChain); n != 5 {
		t.Errorf("OpAccessChain count = %d, want 5", n)
	}
	if n := countOpcode(instrs, OpMemberDecorate); n != 2 {
		t.Errorf("OpMemberDecorate count = %d, want 2 offsets", n)
	}
}

// memberDecorations returns the member decorations of struct id, keyed
// by member index.
func memberDecorations(instrs []spirvInstruction, id uint32) map[uint32]map[Decoration][]uint32 {
	out := make(map[uint32]map[Decoration][]uint32)
	for _, inst := range findOpcode(instrs, OpMemberDecorate) {
		if inst.words[1] != id {
			continue
		}
		m := inst.words[2]
		if out[m] == nil {
			out[m] = make(map[Decoration][]uint32)
		}
		out[m][Decoration(inst.words[3])] = inst.words[4:]
	}
	return out
}

func TestBinder_PushConstantExplicitLayout(t *testing.T) {
	b := ir.NewBuilder(ir.StageVertex)
	b.AddVariable(ir.Variable{Name: "clip", Mode: ir.ModeOutput, Location: 1, Type: ir.ArrayOf(ir.Scalar(ir.BaseFloat, 32), 2)})
	light := ir.StructOf(
		ir.Field{Name: "intensity", Type: ir.Scalar(ir.BaseFloat, 32)},
		ir.Field{Name: "dir", Type: ir.Vector(ir.BaseFloat, 32, 3)},
	)
	b.AddVariable(ir.Variable{
		Name: "pc", Mode: ir.ModePushConst,
		Type: ir.StructOf(
			ir.Field{Name: "mvp", Type: ir.Matrix(32, 4, 4)},
			ir.Field{Name: "tints", Type: ir.ArrayOf(vec4(), 2)},
			ir.Field{Name: "lights", Type: ir.ArrayOf(light, 2)},
		),
	})

	instrs := decodeSPIRVInstructions(compileShader(t, b.Shader(), DefaultOptions()))
	pcs := variables(instrs)[StorageClassPushConstant]
	if len(pcs) != 1 {
		t.Fatalf("push constant variables = %d, want 1", len(pcs))
	}
	v, _ := definition(instrs, pcs[0])
	ptr, _ := definition(instrs, v.words[1])
	block, ok := definition(instrs, ptr.words[3])
	if !ok || block.opcode != OpTypeStruct {
		t.Fatalf("push constant pointee = %v, want a struct", block.words)
	}

	members := memberDecorations(instrs, block.words[1])
	for i, want := range []uint32{0, 64, 96} {
		if got := members[uint32(i)][DecorationOffset]; !slices.Equal(got, []uint32{want}) {
			t.Errorf("member %d Offset = %v, want %d", i, got, want)
		}
	}
	if _, ok := members[0][DecorationColMajor]; !ok {
		t.Error("matrix member is not ColMajor")
	}
	if got := members[0][DecorationMatrixStride]; !slices.Equal(got, []uint32{16}) {
		t.Errorf("matrix member MatrixStride = %v, want 16", got)
	}

	tints := block.words[3]
	if got := decorations(instrs, tints)[DecorationArrayStride]; !slices.Equal(got, []uint32{16}) {
		t.Errorf("vec4 array ArrayStride = %v, want 16", got)
	}
	lights := block.words[4]
	if got := decorations(instrs, lights)[DecorationArrayStride]; !slices.Equal(got, []uint32{32}) {
		t.Errorf("struct array ArrayStride = %v, want 32", got)
	}
	elem, _ := definition(instrs, lights)
	inner := memberDecorations(instrs, elem.words[2])
	if got := inner[1][DecorationOffset]; !slices.Equal(got, []uint32{16}) {
		t.Errorf("nested vec3 Offset = %v, want 16", got)
	}

	outs := variables(instrs)[StorageClassOutput]
	if len(outs) != 1 {
		t.Fatalf("output variables = %d, want 1", len(outs))
	}
	ov, _ := definition(instrs, outs[0])
	optr, _ := definition(instrs, ov.words[1])
	if _, ok := decorations(instrs, optr.words[3])[DecorationArrayStride]; ok {
		t.Error("Output array decorated with ArrayStride")
	}
}

func TestBinder_SharedMemory(t *testing.T) {
	b := computeBuilder()
	b.Info().Compute.SharedSize = 64
	v := b.Intrinsic(ir.IntrLoadShared, 64, 1, b.ConstUint32(8))
	b.IntrinsicVoid(ir.IntrStoreShared, v, b.ConstUint32(16))

	data := compileShader(t, b.Shader(), DefaultOptions())
	instrs := decodeSPIRVInstructions(data)
	if n := len(variables(instrs)[StorageClassWorkgroup]); n != 1 {
		t.Errorf("workgroup variables = %d, want 1", n)
	}
	// 64-bit values move as two 32-bit words each way.
	if n := countOpcode(instrs, OpLoad); n != 2 {
		t.Errorf("OpLoad count = %d, want 2", n)
	}
	if n := countOpcode(instrs, OpStore); n != 2 {
		t.Errorf("OpStore count = %d, want 2", n)
	}
	assertCapability(t, data, CapabilityInt64)
}

func TestBinder_Errors(t *testing.T) {
	tests := []struct {
		name   string
		shader func() *ir.Shader
		want   ErrorKind
	}{
		{
			name: "missing buffer",
			shader: func() *ir.Shader {
				b := computeBuilder()
				b.Intrinsic(ir.IntrLoadUBO, 32, 1, b.ConstUint32(3), b.ConstUint32(0))
				return b.Shader()
			},
			want: ErrMalformedIR,
		},
		{
			name: "dynamic block index",
			shader: func() *ir.Shader {
				b := computeBuilder()
				b.AddVariable(ir.Variable{Name: "u", Mode: ir.ModeUBO, Type: ir.ArrayOf(ir.Scalar(ir.BaseUint, 32), 4)})
				idx := b.Intrinsic(ir.IntrLoadLocalInvocationIndex, 32, 1)
				b.Intrinsic(ir.IntrLoadUBO, 32, 1, idx, b.ConstUint32(0))
				return b.Shader()
			},
			want: ErrUnsupported,
		},
		{
			name: "8-bit shared access",
			shader: func() *ir.Shader {
				b := computeBuilder()
				b.Info().Compute.SharedSize = 16
				b.Intrinsic(ir.IntrLoadShared, 8, 1, b.ConstUint32(0))
				return b.Shader()
			},
			want: ErrUnsupported,
		},
		{
			name: "push constant vector array",
			shader: func() *ir.Shader {
				b := computeBuilder()
				b.AddVariable(ir.Variable{Name: "pc", Mode: ir.ModePushConst, Type: ir.StructOf(
					ir.Field{Name: "v", Type: ir.ArrayOf(vec4(), 2)},
				)})
				b.Intrinsic(ir.IntrLoadPushConstant, 32, 4, b.ConstUint32(0), b.ConstUint32(0))
				return b.Shader()
			},
			want: ErrUnsupported,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compileError(t, tt.shader(), DefaultOptions()); got != tt.want {
				t.Errorf("error kind = %s, want %s", got, tt.want)
			}
		})
	}
}
