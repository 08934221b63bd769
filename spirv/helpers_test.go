package spirv

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/gogpu/spvgen/ir"
)

// spirvInstruction is one decoded instruction. words includes the
// leading word-count/opcode word.
type spirvInstruction struct {
	offset    int
	opcode    OpCode
	wordCount int
	words     []uint32
}

// decodeSPIRVInstructions parses a SPIR-V binary into instructions,
// skipping the 5-word header. Returns nil on a truncated stream.
func decodeSPIRVInstructions(data []byte) []spirvInstruction {
	if len(data) < 20 || len(data)%4 != 0 {
		return nil
	}
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}

	var instrs []spirvInstruction
	offset := 5
	for offset < len(words) {
		wc := int(words[offset] >> 16)
		if wc == 0 || offset+wc > len(words) {
			return nil
		}
		instrs = append(instrs, spirvInstruction{
			offset:    offset,
			opcode:    OpCode(words[offset] & 0xFFFF),
			wordCount: wc,
			words:     words[offset : offset+wc],
		})
		offset += wc
	}
	return instrs
}

// headerBound returns the id bound from the module header.
func headerBound(data []byte) uint32 {
	return binary.LittleEndian.Uint32(data[12:16])
}

// extractCapabilities returns the set of declared capabilities.
func extractCapabilities(data []byte) map[uint32]bool {
	caps := make(map[uint32]bool)
	for _, inst := range decodeSPIRVInstructions(data) {
		if inst.opcode == OpCapability {
			caps[inst.words[1]] = true
		}
	}
	return caps
}

func assertCapability(t *testing.T, data []byte, c Capability) {
	t.Helper()
	if !extractCapabilities(data)[uint32(c)] {
		t.Errorf("missing capability %d", c)
	}
}

func assertNoCapability(t *testing.T, data []byte, c Capability) {
	t.Helper()
	if extractCapabilities(data)[uint32(c)] {
		t.Errorf("unexpected capability %d", c)
	}
}

func countOpcode(instrs []spirvInstruction, opcode OpCode) int {
	count := 0
	for _, inst := range instrs {
		if inst.opcode == opcode {
			count++
		}
	}
	return count
}

// findOpcode returns every instruction with the given opcode.
func findOpcode(instrs []spirvInstruction, opcode OpCode) []spirvInstruction {
	var out []spirvInstruction
	for _, inst := range instrs {
		if inst.opcode == opcode {
			out = append(out, inst)
		}
	}
	return out
}

// decorations returns the OpDecorate instructions targeting id, keyed by
// decoration, with the decoration's literal operands as values.
func decorations(instrs []spirvInstruction, id uint32) map[Decoration][]uint32 {
	out := make(map[Decoration][]uint32)
	for _, inst := range instrs {
		if inst.opcode == OpDecorate && inst.words[1] == id {
			out[Decoration(inst.words[2])] = inst.words[3:]
		}
	}
	return out
}

// noResultOps are the emitted opcodes that define no id.
var noResultOps = map[OpCode]bool{
	OpNop: true, OpSource: true, OpName: true, OpMemberName: true,
	OpExtension: true, OpMemoryModel: true, OpEntryPoint: true, OpExecutionMode: true,
	OpCapability: true, OpDecorate: true, OpMemberDecorate: true, OpFunctionEnd: true,
	OpStore: true, OpImageWrite: true, OpAtomicStore: true,
	OpEmitVertex: true, OpEndPrimitive: true, OpEmitStreamVertex: true, OpEndStreamPrimitive: true,
	OpControlBarrier: true, OpMemoryBarrier: true,
	OpLoopMerge: true, OpSelectionMerge: true, OpBranch: true, OpBranchConditional: true,
	OpKill: true, OpReturn: true, OpReturnValue: true, OpUnreachable: true,
	OpBeginInvocationInterlockEXT: true, OpEndInvocationInterlockEXT: true,
}

// definition returns the instruction whose result id is id. Types,
// labels, OpString and OpExtInstImport carry the result in word 1,
// every other defining instruction in word 2.
func definition(instrs []spirvInstruction, id uint32) (spirvInstruction, bool) {
	for _, inst := range instrs {
		switch {
		case noResultOps[inst.opcode]:
		case inst.opcode >= OpTypeVoid && inst.opcode <= OpTypeFunction,
			inst.opcode == OpLabel, inst.opcode == OpString, inst.opcode == OpExtInstImport:
			if inst.wordCount > 1 && inst.words[1] == id {
				return inst, true
			}
		default:
			if inst.wordCount > 2 && inst.words[2] == id {
				return inst, true
			}
		}
	}
	return spirvInstruction{}, false
}

// decodeString decodes a nul-terminated literal string.
func decodeString(words []uint32) string {
	var b []byte
	for _, w := range words {
		for i := 0; i < 4; i++ {
			c := byte(w >> (8 * i))
			if c == 0 {
				return string(b)
			}
			b = append(b, c)
		}
	}
	return string(b)
}

// compileShader validates and compiles a shader, failing the test on
// any error.
func compileShader(t *testing.T, shader *ir.Shader, options Options) []byte {
	t.Helper()
	errs, err := ir.Validate(shader)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(errs) > 0 {
		t.Fatalf("Validate: %v", errs)
	}
	data, err := NewBackend(options).Compile(shader)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if instrs := decodeSPIRVInstructions(data); instrs == nil {
		t.Fatalf("Compile produced an undecodable module of %d bytes", len(data))
	}
	return data
}

// compileError compiles a shader that must fail and returns the error
// kind.
func compileError(t *testing.T, shader *ir.Shader, options Options) ErrorKind {
	t.Helper()
	data, err := NewBackend(options).Compile(shader)
	if err == nil {
		t.Fatalf("Compile succeeded with %d bytes, want an error", len(data))
	}
	if data != nil {
		t.Errorf("Compile returned %d bytes alongside an error", len(data))
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("Compile error %T is not *Error: %v", err, err)
	}
	return e.Kind
}

func vec4() ir.Type { return ir.Vector(ir.BaseFloat, 32, 4) }

// passthrough builds a fragment shader that writes a + b to its only
// output.
func passthrough() *ir.Shader {
	b := ir.NewBuilder(ir.StageFragment)
	in0 := b.AddVariable(ir.Variable{Name: "a", Mode: ir.ModeInput, Type: vec4(), Location: 0})
	in1 := b.AddVariable(ir.Variable{Name: "b", Mode: ir.ModeInput, Type: vec4(), Location: 1})
	out := b.AddVariable(ir.Variable{Name: "color", Mode: ir.ModeOutput, Type: vec4(), Location: 0})
	sum := b.ALU(ir.OpFAdd, 32, 4, b.LoadVar(in0), b.LoadVar(in1))
	b.StoreVar(out, sum)
	return b.Shader()
}
