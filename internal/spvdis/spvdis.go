// Package spvdis renders SPIR-V binaries as .spvasm style text.
package spvdis

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/spvgen/spirv"
)

var (
	// ErrTooSmall is returned for inputs shorter than the module header.
	ErrTooSmall = errors.New("spvdis: binary too small")
	// ErrBadMagic is returned when the first word is not the SPIR-V magic number.
	ErrBadMagic = errors.New("spvdis: invalid magic number")
	// ErrTruncated is returned when an instruction runs past the end of the input.
	ErrTruncated = errors.New("spvdis: truncated instruction")
)

const headerWords = 5

// Header is the five-word module header.
type Header struct {
	Version   spirv.Version
	Generator uint32
	Bound     uint32
	Schema    uint32
}

// Inst is one decoded instruction.
type Inst struct {
	// Offset is the byte offset of the instruction in the binary.
	Offset   int
	Opcode   spirv.OpCode
	Name     string
	Operands []uint32
}

// Decode splits a little-endian SPIR-V binary into its header and
// instructions.
func Decode(data []byte) (Header, []Inst, error) {
	if len(data) < headerWords*4 {
		return Header{}, nil, ErrTooSmall
	}
	if len(data)%4 != 0 {
		return Header{}, nil, fmt.Errorf("%w: length %d is not a multiple of 4", ErrTruncated, len(data))
	}
	word := func(i int) uint32 { return binary.LittleEndian.Uint32(data[i*4:]) }
	if word(0) != spirv.MagicNumber {
		return Header{}, nil, fmt.Errorf("%w: 0x%08x", ErrBadMagic, word(0))
	}
	version := word(1)
	hdr := Header{
		Version:   spirv.Version{Major: uint8(version >> 16), Minor: uint8(version >> 8)},
		Generator: word(2),
		Bound:     word(3),
		Schema:    word(4),
	}

	total := len(data) / 4
	var insts []Inst
	for i := headerWords; i < total; {
		w := word(i)
		count := int(w >> 16)
		op := spirv.OpCode(w & 0xFFFF)
		if count == 0 || i+count > total {
			return hdr, insts, fmt.Errorf("%w: %s at byte %d has word count %d", ErrTruncated, opName(op), i*4, count)
		}
		operands := make([]uint32, count-1)
		for j := range operands {
			operands[j] = word(i + 1 + j)
		}
		insts = append(insts, Inst{Offset: i * 4, Opcode: op, Name: opName(op), Operands: operands})
		i += count
	}
	return hdr, insts, nil
}

// Instructions returns the instructions of a binary without its header.
func Instructions(data []byte) ([]Inst, error) {
	_, insts, err := Decode(data)
	return insts, err
}

// Disassemble renders a binary as text.
func Disassemble(data []byte) (string, error) {
	var sb strings.Builder
	if err := Fprint(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Fprint writes the disassembly of data to w.
func Fprint(w io.Writer, data []byte) error {
	hdr, insts, err := Decode(data)
	if err != nil {
		return err
	}
	p := &printer{w: w}
	p.printf("; SPIR-V\n")
	p.printf("; Version: %s\n", hdr.Version)
	p.printf("; Generator: 0x%08x\n", hdr.Generator)
	p.printf("; Bound: %d\n", hdr.Bound)
	p.printf("; Schema: %d\n", hdr.Schema)
	for _, inst := range insts {
		p.inst(inst)
	}
	return p.err
}

func opName(op spirv.OpCode) string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Op%d", op)
}

func lookup[K ~uint32](table map[K]string, v uint32) string {
	if name, ok := table[K(v)]; ok {
		return name
	}
	return fmt.Sprintf("%d", v)
}

func id(v uint32) string {
	return fmt.Sprintf("%%%d", v)
}

// readString decodes a nul-terminated literal string and reports how
// many words it occupied.
func readString(words []uint32) (string, int) {
	var sb strings.Builder
	for i, w := range words {
		for b := 0; b < 4; b++ {
			c := byte(w >> (8 * b))
			if c == 0 {
				return sb.String(), i + 1
			}
			sb.WriteByte(c)
		}
	}
	return sb.String(), len(words)
}

// noResult lists the opcodes that produce no value.
var noResult = map[spirv.OpCode]bool{
	spirv.OpNop:                         true,
	spirv.OpStore:                       true,
	spirv.OpImageWrite:                  true,
	spirv.OpEmitVertex:                  true,
	spirv.OpEndPrimitive:                true,
	spirv.OpEmitStreamVertex:            true,
	spirv.OpEndStreamPrimitive:          true,
	spirv.OpControlBarrier:              true,
	spirv.OpMemoryBarrier:               true,
	spirv.OpAtomicStore:                 true,
	spirv.OpLoopMerge:                   true,
	spirv.OpSelectionMerge:              true,
	spirv.OpBranch:                      true,
	spirv.OpBranchConditional:           true,
	spirv.OpKill:                        true,
	spirv.OpReturn:                      true,
	spirv.OpReturnValue:                 true,
	spirv.OpUnreachable:                 true,
	spirv.OpFunctionEnd:                 true,
	spirv.OpBeginInvocationInterlockEXT: true,
	spirv.OpEndInvocationInterlockEXT:   true,
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// stmt prints an instruction without a result id.
func (p *printer) stmt(name string, rest ...string) {
	p.printf("               %s\n", strings.Join(append([]string{name}, rest...), " "))
}

// def prints an instruction defining result.
func (p *printer) def(result uint32, name string, rest ...string) {
	p.printf("%14s = %s\n", id(result), strings.Join(append([]string{name}, rest...), " "))
}

func ids(ops []uint32) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = id(op)
	}
	return out
}

func literals(ops []uint32) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = fmt.Sprintf("%d", op)
	}
	return out
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}

func (p *printer) inst(inst Inst) {
	name, ops := inst.Name, inst.Operands
	arity := func(n int) bool {
		if len(ops) < n {
			p.stmt(name, ids(ops)...)
			return false
		}
		return true
	}

	switch inst.Opcode {
	case spirv.OpCapability:
		if arity(1) {
			p.stmt(name, lookup(capabilityNames, ops[0]))
		}

	case spirv.OpExtension:
		s, _ := readString(ops)
		p.stmt(name, quote(s))

	case spirv.OpExtInstImport:
		if arity(1) {
			s, _ := readString(ops[1:])
			p.def(ops[0], name, quote(s))
		}

	case spirv.OpExtInst:
		if arity(4) {
			p.def(ops[1], name, append([]string{id(ops[0]), id(ops[2]), fmt.Sprintf("%d", ops[3])}, ids(ops[4:])...)...)
		}

	case spirv.OpMemoryModel:
		if arity(2) {
			p.stmt(name, lookup(addressingModelNames, ops[0]), lookup(memoryModelNames, ops[1]))
		}

	case spirv.OpEntryPoint:
		if arity(2) {
			s, n := readString(ops[2:])
			rest := append([]string{lookup(executionModelNames, ops[0]), id(ops[1]), quote(s)}, ids(ops[2+n:])...)
			p.stmt(name, rest...)
		}

	case spirv.OpExecutionMode:
		if arity(2) {
			p.stmt(name, append([]string{id(ops[0]), lookup(executionModeNames, ops[1])}, literals(ops[2:])...)...)
		}

	case spirv.OpSource:
		p.stmt(name, literals(ops)...)

	case spirv.OpName:
		if arity(1) {
			s, _ := readString(ops[1:])
			p.stmt(name, id(ops[0]), quote(s))
		}

	case spirv.OpMemberName:
		if arity(2) {
			s, _ := readString(ops[2:])
			p.stmt(name, id(ops[0]), fmt.Sprintf("%d", ops[1]), quote(s))
		}

	case spirv.OpDecorate:
		if arity(2) {
			p.stmt(name, append([]string{id(ops[0])}, decoration(ops[1:])...)...)
		}

	case spirv.OpMemberDecorate:
		if arity(3) {
			p.stmt(name, append([]string{id(ops[0]), fmt.Sprintf("%d", ops[1])}, decoration(ops[2:])...)...)
		}

	case spirv.OpTypeVoid, spirv.OpTypeBool, spirv.OpTypeSampler, spirv.OpLabel:
		if arity(1) {
			p.def(ops[0], name)
		}

	case spirv.OpTypeInt, spirv.OpTypeFloat:
		if arity(1) {
			p.def(ops[0], name, literals(ops[1:])...)
		}

	case spirv.OpTypeVector, spirv.OpTypeMatrix:
		if arity(3) {
			p.def(ops[0], name, id(ops[1]), fmt.Sprintf("%d", ops[2]))
		}

	case spirv.OpTypeImage:
		if arity(8) {
			rest := []string{id(ops[1]), lookup(dimNames, ops[2])}
			rest = append(rest, literals(ops[3:7])...)
			rest = append(rest, imageFormat(ops[7]))
			rest = append(rest, literals(ops[8:])...)
			p.def(ops[0], name, rest...)
		}

	case spirv.OpTypeSampledImage, spirv.OpTypeRuntimeArray, spirv.OpTypeArray,
		spirv.OpTypeStruct, spirv.OpTypeFunction:
		if arity(1) {
			p.def(ops[0], name, ids(ops[1:])...)
		}

	case spirv.OpTypePointer:
		if arity(3) {
			p.def(ops[0], name, lookup(storageClassNames, ops[1]), id(ops[2]))
		}

	case spirv.OpConstant, spirv.OpSpecConstant:
		if arity(2) {
			p.def(ops[1], name, append([]string{id(ops[0])}, literals(ops[2:])...)...)
		}

	case spirv.OpVariable:
		if arity(3) {
			p.def(ops[1], name, append([]string{id(ops[0]), lookup(storageClassNames, ops[2])}, ids(ops[3:])...)...)
		}

	case spirv.OpFunction:
		if arity(4) {
			p.def(ops[1], name, id(ops[0]), control(ops[2]), id(ops[3]))
		}

	case spirv.OpCompositeExtract, spirv.OpCompositeInsert:
		// Trailing operands are literal indices.
		fixed := 3
		if inst.Opcode == spirv.OpCompositeInsert {
			fixed = 4
		}
		if arity(fixed) {
			p.def(ops[1], name, append(append([]string{id(ops[0])}, ids(ops[2:fixed])...), literals(ops[fixed:])...)...)
		}

	case spirv.OpVectorShuffle:
		if arity(4) {
			p.def(ops[1], name, append([]string{id(ops[0]), id(ops[2]), id(ops[3])}, literals(ops[4:])...)...)
		}

	case spirv.OpLoopMerge:
		if arity(3) {
			p.stmt(name, id(ops[0]), id(ops[1]), control(ops[2]))
		}

	case spirv.OpSelectionMerge:
		if arity(2) {
			p.stmt(name, id(ops[0]), control(ops[1]))
		}

	case spirv.OpEmitStreamVertex, spirv.OpEndStreamPrimitive:
		p.stmt(name, ids(ops)...)

	default:
		if noResult[inst.Opcode] || len(ops) < 2 {
			p.stmt(name, ids(ops)...)
			return
		}
		p.def(ops[1], name, append([]string{id(ops[0])}, ids(ops[2:])...)...)
	}
}

// decoration renders a decoration and its literal operands.
func decoration(ops []uint32) []string {
	dec := spirv.Decoration(ops[0])
	out := []string{lookup(decorationNames, ops[0])}
	if dec == spirv.DecorationBuiltIn && len(ops) > 1 {
		return append(out, lookup(builtinNames, ops[1]))
	}
	return append(out, literals(ops[1:])...)
}

func imageFormat(v uint32) string {
	switch v {
	case 0:
		return "Unknown"
	case 1:
		return "Rgba32f"
	case 2:
		return "Rgba16f"
	case 3:
		return "R32f"
	case 4:
		return "Rgba8"
	case 21:
		return "Rgba32i"
	case 24:
		return "R32i"
	case 30:
		return "Rgba32ui"
	case 33:
		return "R32ui"
	}
	return fmt.Sprintf("%d", v)
}

// control renders a function, loop or selection control mask.
func control(v uint32) string {
	if v == 0 {
		return "None"
	}
	return fmt.Sprintf("0x%x", v)
}
