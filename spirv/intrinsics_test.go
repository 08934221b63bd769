package spirv

import (
	"testing"

	"github.com/gogpu/spvgen/ir"
)

// constValues maps each 32-bit OpConstant id to its value.
func constValues(instrs []spirvInstruction) map[uint32]uint32 {
	out := make(map[uint32]uint32)
	for _, c := range findOpcode(instrs, OpConstant) {
		if len(c.words) == 4 {
			out[c.words[2]] = c.words[3]
		}
	}
	return out
}

// lastIntrinsic returns the final intrinsic of the entry's last block.
func lastIntrinsic(t *testing.T, shader *ir.Shader) *ir.Intrinsic {
	t.Helper()
	body := shader.Entry.Body
	if len(body) == 0 || body[len(body)-1].Block == nil {
		t.Fatal("entry does not end in a block")
	}
	instrs := body[len(body)-1].Block.Instrs
	for i := len(instrs) - 1; i >= 0; i-- {
		if instrs[i].Intrinsic != nil {
			return instrs[i].Intrinsic
		}
	}
	t.Fatal("no intrinsic in the last block")
	return nil
}

func TestIntrinsics_Vote(t *testing.T) {
	b := computeBuilder()
	cond := b.ConstBool(true)
	b.Intrinsic(ir.IntrVoteAll, 1, 1, cond)
	b.Intrinsic(ir.IntrVoteAny, 1, 1, cond)
	b.Intrinsic(ir.IntrVoteIEq, 1, 1, b.ConstUint32(7))
	b.Intrinsic(ir.IntrVoteFEq, 1, 1, b.ConstFloat32(1))

	data := compileShader(t, b.Shader(), DefaultOptions())
	instrs := decodeSPIRVInstructions(data)
	assertCapability(t, data, CapabilityGroupNonUniformVote)
	if countOpcode(instrs, OpGroupNonUniformAll) != 1 || countOpcode(instrs, OpGroupNonUniformAny) != 1 {
		t.Error("missing all or any vote")
	}
	equal := findOpcode(instrs, OpGroupNonUniformAllEqual)
	if len(equal) != 2 {
		t.Fatalf("OpGroupNonUniformAllEqual count = %d, want 2", len(equal))
	}
	consts := constValues(instrs)
	for _, v := range equal {
		if scope := consts[v.words[3]]; scope != uint32(ScopeSubgroup) {
			t.Errorf("vote scope = %d, want Subgroup", scope)
		}
	}
}

func TestIntrinsics_Subgroup(t *testing.T) {
	b := computeBuilder()
	b.Intrinsic(ir.IntrBallot, 32, 4, b.ConstBool(true))
	v := b.ConstFloat32(2)
	b.Intrinsic(ir.IntrReadFirstInvocation, 32, 1, v)
	b.Intrinsic(ir.IntrReadInvocation, 32, 1, v, b.ConstUint32(5))

	data := compileShader(t, b.Shader(), DefaultOptions())
	instrs := decodeSPIRVInstructions(data)
	assertCapability(t, data, CapabilitySubgroupBallotKHR)
	for _, op := range []OpCode{OpSubgroupBallotKHR, OpSubgroupFirstInvocationKHR, OpSubgroupReadInvocationKHR} {
		if n := countOpcode(instrs, op); n != 1 {
			t.Errorf("opcode %d count = %d, want 1", op, n)
		}
	}
	exts := findOpcode(instrs, OpExtension)
	if len(exts) != 1 || decodeString(exts[0].words[1:]) != "SPV_KHR_shader_ballot" {
		t.Errorf("extensions = %d, want SPV_KHR_shader_ballot once", len(exts))
	}
}

func TestIntrinsics_ShaderClock(t *testing.T) {
	tests := []struct {
		scope ir.Scope
		want  Scope
	}{
		{"", ScopeSubgroup},
		{ir.ScopeSubgroup, ScopeSubgroup},
		{ir.ScopeDevice, ScopeDevice},
	}
	for _, tt := range tests {
		t.Run(string(tt.scope), func(t *testing.T) {
			b := computeBuilder()
			b.Intrinsic(ir.IntrShaderClock, 32, 2)
			shader := b.Shader()
			lastIntrinsic(t, shader).Scope = tt.scope

			data := compileShader(t, shader, DefaultOptions())
			instrs := decodeSPIRVInstructions(data)
			assertCapability(t, data, CapabilityShaderClockKHR)
			clock := findOpcode(instrs, OpReadClockKHR)
			if len(clock) != 1 {
				t.Fatalf("OpReadClockKHR count = %d, want 1", len(clock))
			}
			if got := constValues(instrs)[clock[0].words[3]]; got != uint32(tt.want) {
				t.Errorf("clock scope = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIntrinsics_Interpolate(t *testing.T) {
	tests := []struct {
		op   ir.IntrinsicOp
		want uint32
		arg  func(b *ir.Builder) []ir.Src
	}{
		{ir.IntrInterpAtCentroid, GLSLstd450InterpolateAtCentroid, nil},
		{ir.IntrInterpAtSample, GLSLstd450InterpolateAtSample,
			func(b *ir.Builder) []ir.Src { return []ir.Src{b.ConstUint32(1)} }},
		{ir.IntrInterpAtOffset, GLSLstd450InterpolateAtOffset,
			func(b *ir.Builder) []ir.Src { return []ir.Src{b.ConstFloat32(0.25, -0.25)} }},
	}
	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			b := ir.NewBuilder(ir.StageFragment)
			in := b.AddVariable(ir.Variable{Name: "v", Mode: ir.ModeInput, Type: vec4()})
			srcs := []ir.Src{b.DerefVar(in)}
			if tt.arg != nil {
				srcs = append(srcs, tt.arg(b)...)
			}
			b.Intrinsic(tt.op, 32, 4, srcs...)

			data := compileShader(t, b.Shader(), DefaultOptions())
			assertCapability(t, data, CapabilityInterpolationFunction)
			ext := findOpcode(decodeSPIRVInstructions(data), OpExtInst)
			if len(ext) != 1 || ext[0].words[4] != tt.want {
				t.Errorf("OpExtInst = %v, want instruction %d", ext, tt.want)
			}
		})
	}
}

// storageImage adds a 2D rgba32f storage image.
func storageImage(b *ir.Builder, ms bool) uint32 {
	return b.AddVariable(ir.Variable{Name: "img", Mode: ir.ModeImage,
		Type: ir.ImageOf(ir.ImageType{Dim: ir.Dim2D, Multisample: ms, Result: ir.BaseFloat, Format: ir.FormatRgba32f})})
}

func TestIntrinsics_ImageLoadStore(t *testing.T) {
	b := computeBuilder()
	img := storageImage(b, false)
	coord := b.Const(32, 1, 2, 0, 0)
	texel := b.Intrinsic(ir.IntrImageLoad, 32, 4, b.DerefVar(img), coord, b.Undef(32, 1))
	b.IntrinsicVoid(ir.IntrImageStore, b.DerefVar(img), coord, b.Undef(32, 1), texel)

	instrs := decodeSPIRVInstructions(compileShader(t, b.Shader(), DefaultOptions()))
	read := sampleInstr(t, instrs, OpImageRead)
	if len(read.words) != 5 {
		t.Errorf("OpImageRead has %d words, want 5 without operands", len(read.words))
	}
	write := sampleInstr(t, instrs, OpImageWrite)
	if len(write.words) != 4 {
		t.Errorf("OpImageWrite has %d words, want 4 without operands", len(write.words))
	}
	// The 4-component coordinate narrows to the 2D image's two.
	for _, shuffle := range findOpcode(instrs, OpVectorShuffle) {
		if n := len(shuffle.words[5:]); n != 2 {
			t.Errorf("coordinate shuffle keeps %d components, want 2", n)
		}
	}
	if n := countOpcode(instrs, OpVectorShuffle); n != 2 {
		t.Errorf("OpVectorShuffle count = %d, want 2", n)
	}
}

func TestIntrinsics_MultisampleImageLoad(t *testing.T) {
	b := computeBuilder()
	img := storageImage(b, true)
	b.Intrinsic(ir.IntrImageLoad, 32, 4, b.DerefVar(img), b.Const(32, 1, 2), b.ConstUint32(3))

	instrs := decodeSPIRVInstructions(compileShader(t, b.Shader(), DefaultOptions()))
	read := sampleInstr(t, instrs, OpImageRead)
	if len(read.words) != 7 || ImageOperands(read.words[5]) != ImageOperandsSample {
		t.Errorf("OpImageRead words %v, want a Sample operand", read.words)
	}
}

func TestIntrinsics_MemoryAtomics(t *testing.T) {
	b := computeBuilder()
	b.Info().Compute.SharedSize = 16
	b.AddVariable(ir.Variable{Name: "data", Mode: ir.ModeSSBO, DriverLocation: 0,
		Type: ir.ArrayOf(ir.Scalar(ir.BaseUint, 32), 0)})
	b.Atomic(ir.IntrSharedAtomic, ir.AtomicCompSwap, 32, b.ConstUint32(4), b.ConstUint32(1), b.ConstUint32(0))
	b.Atomic(ir.IntrSSBOAtomic, ir.AtomicIMin, 32, b.ConstUint32(0), b.ConstUint32(8), b.ConstUint32(2))

	instrs := decodeSPIRVInstructions(compileShader(t, b.Shader(), DefaultOptions()))
	cas := sampleInstr(t, instrs, OpAtomicCompareExchange)
	if len(cas.words) != 9 {
		t.Errorf("OpAtomicCompareExchange has %d words, want 9", len(cas.words))
	}
	consts := constValues(instrs)
	if scope := consts[cas.words[4]]; scope != uint32(ScopeDevice) {
		t.Errorf("atomic scope = %d, want Device", scope)
	}
	if sem := consts[cas.words[5]]; sem != uint32(MemorySemanticsNone) {
		t.Errorf("atomic semantics = %#x, want relaxed", sem)
	}
	sampleInstr(t, instrs, OpAtomicSMin)
}

func TestIntrinsics_ImageAtomicKinds(t *testing.T) {
	floatImage := func(op ir.AtomicOp) *ir.Shader {
		b := computeBuilder()
		img := b.AddVariable(ir.Variable{Name: "img", Mode: ir.ModeImage,
			Type: ir.ImageOf(ir.ImageType{Dim: ir.Dim2D, Result: ir.BaseFloat, Format: ir.FormatR32f})})
		b.Atomic(ir.IntrImageAtomic, op, 32, b.DerefVar(img), b.Const(32, 0, 0), b.Undef(32, 1), b.ConstFloat32(1))
		return b.Shader()
	}

	instrs := decodeSPIRVInstructions(compileShader(t, floatImage(ir.AtomicExchange), DefaultOptions()))
	xchg := sampleInstr(t, instrs, OpAtomicExchange)
	if typ, _ := definition(instrs, xchg.words[1]); typ.opcode != OpTypeFloat {
		t.Errorf("float exchange result is opcode %d, want OpTypeFloat", typ.opcode)
	}

	if got := compileError(t, floatImage(ir.AtomicAdd), DefaultOptions()); got != ErrUnsupported {
		t.Errorf("float image add: error kind = %s, want Unsupported", got)
	}
}

func TestIntrinsics_Unsupported(t *testing.T) {
	tests := []struct {
		name   string
		shader func() *ir.Shader
	}{
		{"16-bit image load", func() *ir.Shader {
			b := computeBuilder()
			img := storageImage(b, false)
			b.Intrinsic(ir.IntrImageLoad, 16, 4, b.DerefVar(img), b.Const(32, 0, 0), b.Undef(32, 1))
			return b.Shader()
		}},
		{"64-bit atomic", func() *ir.Shader {
			b := computeBuilder()
			b.Info().Compute.SharedSize = 16
			b.Atomic(ir.IntrSharedAtomic, ir.AtomicAdd, 64, b.ConstUint32(0), b.Const(64, 1))
			return b.Shader()
		}},
		{"vector atomic", func() *ir.Shader {
			b := computeBuilder()
			b.Info().Compute.SharedSize = 16
			b.Atomic(ir.IntrSharedAtomic, ir.AtomicAdd, 32, b.ConstUint32(0), b.ConstUint32(1, 2))
			return b.Shader()
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compileError(t, tt.shader(), DefaultOptions()); got != ErrUnsupported {
				t.Errorf("error kind = %s, want Unsupported", got)
			}
		})
	}
}
