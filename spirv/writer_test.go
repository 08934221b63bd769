package spirv

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestModuleBuilder_MinimalModule(t *testing.T) {
	builder := NewModuleBuilder(Version1_3)

	// Add basic capability
	builder.AddCapability(CapabilityShader)

	// Set memory model (required)
	builder.SetMemoryModel(AddressingModelLogical, MemoryModelGLSL450)

	// Build the module
	data := builder.Build()

	// Verify header (5 words = 20 bytes)
	if len(data) < 20 {
		t.Fatalf("Module too small: got %d bytes, want at least 20", len(data))
	}

	// Check magic number
	magic := binary.LittleEndian.Uint32(data[0:4])
	if magic != MagicNumber {
		t.Errorf("Invalid magic number: got 0x%08X, want 0x%08X", magic, MagicNumber)
	}

	// Check version
	version := binary.LittleEndian.Uint32(data[4:8])
	expectedVersion := uint32(1<<16 | 3<<8) // Version 1.3
	if version != expectedVersion {
		t.Errorf("Invalid version: got 0x%08X, want 0x%08X", version, expectedVersion)
	}

	// Check generator
	generator := binary.LittleEndian.Uint32(data[8:12])
	if generator != GeneratorID {
		t.Errorf("Invalid generator: got 0x%08X, want 0x%08X", generator, GeneratorID)
	}

	// Check bound (should be > 0)
	bound := binary.LittleEndian.Uint32(data[12:16])
	if bound == 0 {
		t.Error("Bound should be > 0")
	}

	// Check schema (reserved, must be 0)
	schema := binary.LittleEndian.Uint32(data[16:20])
	if schema != 0 {
		t.Errorf("Schema should be 0, got %d", schema)
	}
}

func TestModuleBuilder_WithTypes(t *testing.T) {
	builder := NewModuleBuilder(Version1_3)

	builder.AddCapability(CapabilityShader)
	builder.SetMemoryModel(AddressingModelLogical, MemoryModelGLSL450)

	// Add some types
	voidType := builder.AddType(OpTypeVoid)
	floatType := builder.AddType(OpTypeFloat, 32)
	intType := builder.AddType(OpTypeInt, 32, 1)
	vec4Type := builder.AddType(OpTypeVector, floatType, 4)

	// Build
	data := builder.Build()

	if len(data) < 20 {
		t.Fatalf("Module too small: %d bytes", len(data))
	}

	if voidType != 1 || floatType != 2 || intType != 3 || vec4Type != 4 {
		t.Errorf("type ids = %d %d %d %d, want 1 2 3 4", voidType, floatType, intType, vec4Type)
	}
	if bound := binary.LittleEndian.Uint32(data[12:16]); bound != 5 {
		t.Errorf("bound = %d, want 5", bound)
	}
	// vec4 is the last instruction: OpTypeVector %4 %2 4
	got := moduleWords(data)[len(moduleWords(data))-4:]
	want := []uint32{4<<16 | uint32(OpTypeVector), vec4Type, floatType, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("OpTypeVector words = %v, want %v", got, want)
		}
	}
}

func TestModuleBuilder_WithEntryPoint(t *testing.T) {
	builder := NewModuleBuilder(Version1_3)

	builder.AddCapability(CapabilityShader)
	builder.SetMemoryModel(AddressingModelLogical, MemoryModelGLSL450)

	// Create function types
	voidType := builder.AddType(OpTypeVoid)
	funcType := builder.AddType(OpTypeFunction, voidType)

	// Create function
	funcID := builder.AddFunction(funcType, voidType, FunctionControlNone)
	labelID := builder.AllocID()
	builder.AddLabel(labelID)
	builder.AddReturn()
	builder.AddFunctionEnd()

	// Add entry point
	builder.AddEntryPoint(ExecutionModelFragment, funcID, "main", nil)
	builder.AddExecutionMode(funcID, ExecutionModeOriginUpperLeft)

	// Build
	data := builder.Build()

	if len(data) < 20 {
		t.Fatalf("Module too small: %d bytes", len(data))
	}

	instrs := decodeSPIRVInstructions(data)
	entries := findOpcode(instrs, OpEntryPoint)
	if len(entries) != 1 || entries[0].words[2] != funcID {
		t.Fatalf("entry points = %v, want one naming %%%d", entries, funcID)
	}
	if name := decodeString(entries[0].words[3:]); name != "main" {
		t.Errorf("entry point name = %q, want main", name)
	}
	labels := findOpcode(instrs, OpLabel)
	if len(labels) != 1 || labels[0].words[1] != labelID {
		t.Errorf("labels = %v, want one defining %%%d", labels, labelID)
	}
	// Sections are ordered regardless of the order they were added in.
	if entry, fn := indexOf(instrs, OpEntryPoint), indexOf(instrs, OpFunction); entry > fn {
		t.Errorf("OpEntryPoint at %d after OpFunction at %d", entry, fn)
	}
}

func TestInstructionBuilder_String(t *testing.T) {
	builder := NewInstructionBuilder()
	builder.AddString("hello")

	inst := builder.Build(OpName)
	encoded := inst.Encode()

	// First word is opcode
	opcodeWord := encoded[0]
	wordCount := opcodeWord >> 16
	opcode := OpCode(opcodeWord & 0xFFFF)

	if opcode != OpName {
		t.Errorf("Wrong opcode: got %d, want %d", opcode, OpName)
	}

	// "hello\0" pads to two words, plus the opcode word.
	if wordCount != 3 || len(encoded) != 3 {
		t.Errorf("word count = %d (%d encoded), want 3", wordCount, len(encoded))
	}
	if encoded[1] != 0x6c6c6568 || encoded[2] != 0x0000006f {
		t.Errorf("string words = %#x %#x", encoded[1], encoded[2])
	}
}

func TestModuleBuilder_Float32Constant(t *testing.T) {
	builder := NewModuleBuilder(Version1_3)

	floatType := builder.AddType(OpTypeFloat, 32)
	constID := builder.AddConstant(OpConstant, floatType, math.Float32bits(3.14159))

	data := builder.Build()

	w := moduleWords(data)
	last := w[len(w)-4:]
	if last[0] != 4<<16|uint32(OpConstant) || last[1] != floatType || last[2] != constID {
		t.Fatalf("OpConstant words = %v", last)
	}
	if got := math.Float32frombits(last[3]); got != 3.14159 {
		t.Errorf("constant = %v, want 3.14159", got)
	}
}

func TestModuleBuilder_IDAllocation(t *testing.T) {
	builder := NewModuleBuilder(Version1_3)

	id1 := builder.AllocID()
	id2 := builder.AllocID()
	id3 := builder.AllocID()

	if id1 >= id2 || id2 >= id3 {
		t.Error("IDs should be strictly increasing")
	}

	if id1 == 0 || id2 == 0 || id3 == 0 {
		t.Error("IDs should never be 0")
	}
	if builder.Bound() != id3+1 {
		t.Errorf("bound = %d, want %d", builder.Bound(), id3+1)
	}
}

func TestModuleBuilder_CapabilitiesDeduplicated(t *testing.T) {
	builder := NewModuleBuilder(Version1_3)
	builder.AddCapability(CapabilityShader)
	builder.AddCapability(CapabilityImage1D)
	builder.AddCapability(CapabilityShader)
	builder.AddExtension("SPV_KHR_shader_ballot")
	builder.AddExtension("SPV_KHR_shader_ballot")

	instrs := decodeSPIRVInstructions(builder.Build())
	if n := countOpcode(instrs, OpCapability); n != 2 {
		t.Errorf("OpCapability count = %d, want 2", n)
	}
	if n := countOpcode(instrs, OpExtension); n != 1 {
		t.Errorf("OpExtension count = %d, want 1", n)
	}
	caps := builder.Capabilities()
	if len(caps) != 2 || caps[0] != CapabilityShader || caps[1] != CapabilityImage1D {
		t.Errorf("Capabilities() = %v, want [Shader Image1D] in request order", caps)
	}
}

func TestModuleBuilder_SectionOrder(t *testing.T) {
	builder := NewModuleBuilder(Version1_3)

	// Emit out of order; Build must lay sections out in the logical order.
	voidType := builder.AddType(OpTypeVoid)
	funcType := builder.AddType(OpTypeFunction, voidType)
	funcID := builder.AddFunction(funcType, voidType, FunctionControlNone)
	builder.AddLabel(builder.AllocID())
	builder.AddReturn()
	builder.AddFunctionEnd()
	builder.AddDecorate(funcID, DecorationNoContraction)
	builder.AddName(funcID, "main")
	builder.AddEntryPoint(ExecutionModelGLCompute, funcID, "main", nil)
	builder.AddExecutionMode(funcID, ExecutionModeLocalSize, 1, 1, 1)
	builder.SetMemoryModel(AddressingModelLogical, MemoryModelGLSL450)
	builder.AddCapability(CapabilityShader)

	want := []OpCode{
		OpCapability, OpMemoryModel, OpEntryPoint, OpExecutionMode, OpName,
		OpDecorate, OpTypeVoid, OpTypeFunction, OpFunction, OpLabel, OpReturn, OpFunctionEnd,
	}
	instrs := decodeSPIRVInstructions(builder.Build())
	if len(instrs) != len(want) {
		t.Fatalf("got %d instructions, want %d", len(instrs), len(want))
	}
	for i, inst := range instrs {
		if inst.opcode != want[i] {
			t.Errorf("instruction %d: got opcode %d, want %d", i, inst.opcode, want[i])
		}
	}
}

func TestModuleBuilder_InstructionWordCount(t *testing.T) {
	builder := NewModuleBuilder(Version1_0)
	floatType := builder.AddType(OpTypeFloat, 32)
	builder.AddType(OpTypeVector, floatType, 4)

	for _, inst := range decodeSPIRVInstructions(builder.Build()) {
		if inst.wordCount != len(inst.words) {
			t.Errorf("opcode %d: header word count %d, decoded %d words", inst.opcode, inst.wordCount, len(inst.words))
		}
		if got := inst.words[0]; got != uint32(inst.wordCount)<<16|uint32(inst.opcode) {
			t.Errorf("opcode %d: first word 0x%08X", inst.opcode, got)
		}
	}
}

// moduleWords reinterprets a module as little-endian words.
func moduleWords(data []byte) []uint32 {
	out := make([]uint32, len(data)/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return out
}

func indexOf(instrs []spirvInstruction, op OpCode) int {
	for i, inst := range instrs {
		if inst.opcode == op {
			return i
		}
	}
	return -1
}

func TestDefinition_SkipsResultlessOperands(t *testing.T) {
	builder := NewModuleBuilder(Version1_3)
	builder.AddCapability(CapabilityShader)
	builder.SetMemoryModel(AddressingModelLogical, MemoryModelGLSL450)
	uint32Type := builder.AddType(OpTypeInt, 32, 0)
	for builder.Bound() < uint32(ExecutionModeLocalSize) {
		builder.AllocID()
	}
	c := builder.AddConstant(OpConstant, uint32Type, 0)
	if c != uint32(ExecutionModeLocalSize) {
		t.Fatalf("constant id = %d, want %d", c, ExecutionModeLocalSize)
	}
	fn := builder.AllocID()
	builder.AddEntryPoint(ExecutionModelGLCompute, fn, "main", nil)
	builder.AddExecutionMode(fn, ExecutionModeLocalSize, 1, 1, 1)

	inst, ok := definition(decodeSPIRVInstructions(builder.Build()), c)
	if !ok || inst.opcode != OpConstant {
		t.Errorf("definition(%d) = opcode %d, want OpConstant", c, inst.opcode)
	}
}
