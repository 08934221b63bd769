package spirv

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"fortio.org/safecast"

	"github.com/gogpu/spvgen/ir"
)

// instKey identifies a type or constant instruction by its opcode and
// operand words, excluding the result id.
type instKey struct {
	op    OpCode
	words string
}

func makeInstKey(op OpCode, words ...uint32) instKey {
	var sb strings.Builder
	sb.Grow(len(words) * 4)
	var buf [4]byte
	for _, w := range words {
		binary.LittleEndian.PutUint32(buf[:], w)
		sb.Write(buf[:])
	}
	return instKey{op: op, words: sb.String()}
}

// aggregateKind distinguishes the aggregate shapes held in the
// aggregate table.
type aggregateKind uint8

const (
	aggregateArray aggregateKind = iota
	aggregateRuntimeArray
	aggregateStruct
)

// aggregateKey is the identity of an array or struct type, including
// the layout decorations attached to it.
type aggregateKey struct {
	kind    aggregateKind
	elem    uint32
	length  uint32
	stride  uint32
	members string
	offsets string
	matrix  string
	block   bool
}

// Interner hands out ids for types and constants. A structurally equal
// request always returns the id of the first request and emits nothing.
type Interner struct {
	module *ModuleBuilder

	types      map[instKey]uint32
	constants  map[instKey]uint32
	aggregates map[aggregateKey]uint32
	undefs     map[uint32]uint32
}

// NewInterner creates an interner that emits into module.
func NewInterner(module *ModuleBuilder) *Interner {
	return &Interner{
		module:     module,
		types:      make(map[instKey]uint32),
		constants:  make(map[instKey]uint32),
		aggregates: make(map[aggregateKey]uint32),
		undefs:     make(map[uint32]uint32),
	}
}

func (in *Interner) typeID(op OpCode, operands ...uint32) uint32 {
	key := makeInstKey(op, operands...)
	if id, ok := in.types[key]; ok {
		return id
	}
	id := in.module.AddType(op, operands...)
	in.types[key] = id
	return id
}

// Void returns OpTypeVoid.
func (in *Interner) Void() uint32 { return in.typeID(OpTypeVoid) }

// Bool returns OpTypeBool.
func (in *Interner) Bool() uint32 { return in.typeID(OpTypeBool) }

// Int returns an integer type of the given width and signedness. Widths
// other than 32 request the matching capability.
func (in *Interner) Int(bits uint8, signed bool) uint32 {
	switch bits {
	case 8:
		in.module.AddCapability(CapabilityInt8)
	case 16:
		in.module.AddCapability(CapabilityInt16)
	case 32:
	case 64:
		in.module.AddCapability(CapabilityInt64)
	default:
		panic(unsupportedf("%d-bit integers", bits))
	}
	sign := uint32(0)
	if signed {
		sign = 1
	}
	return in.typeID(OpTypeInt, uint32(bits), sign)
}

// Float returns a float type of the given width.
func (in *Interner) Float(bits uint8) uint32 {
	switch bits {
	case 16:
		in.module.AddCapability(CapabilityFloat16)
	case 32:
	case 64:
		in.module.AddCapability(CapabilityFloat64)
	default:
		panic(unsupportedf("%d-bit floats", bits))
	}
	return in.typeID(OpTypeFloat, uint32(bits))
}

// Vector returns a vector of n components, or the component type itself
// when n is 1.
func (in *Interner) Vector(component uint32, n uint8) uint32 {
	if n == 1 {
		return component
	}
	if n < 2 || n > 4 {
		panic(unsupportedf("%d-component vectors", n))
	}
	return in.typeID(OpTypeVector, component, uint32(n))
}

// UVec returns a uint scalar or vector type.
func (in *Interner) UVec(bits, n uint8) uint32 { return in.Vector(in.Int(bits, false), n) }

// IVec returns an int scalar or vector type.
func (in *Interner) IVec(bits, n uint8) uint32 { return in.Vector(in.Int(bits, true), n) }

// FVec returns a float scalar or vector type.
func (in *Interner) FVec(bits, n uint8) uint32 { return in.Vector(in.Float(bits), n) }

// BVec returns a bool scalar or vector type.
func (in *Interner) BVec(n uint8) uint32 { return in.Vector(in.Bool(), n) }

// Value returns the scalar or vector type for a value of the given kind.
// One-bit values are always bool.
func (in *Interner) Value(kind ir.BaseType, bits, n uint8) uint32 {
	if bits == 1 || kind == ir.BaseBool {
		return in.BVec(n)
	}
	switch kind {
	case ir.BaseInt:
		return in.IVec(bits, n)
	case ir.BaseUint:
		return in.UVec(bits, n)
	case ir.BaseFloat:
		return in.FVec(bits, n)
	}
	panic(internalErrorf("value of %s kind", kind))
}

// Matrix returns a matrix of columns column vectors.
func (in *Interner) Matrix(column uint32, columns uint8) uint32 {
	return in.typeID(OpTypeMatrix, column, uint32(columns))
}

// Pointer returns a pointer type.
func (in *Interner) Pointer(storageClass StorageClass, pointee uint32) uint32 {
	return in.typeID(OpTypePointer, uint32(storageClass), pointee)
}

// Function returns a function type.
func (in *Interner) Function(ret uint32, params ...uint32) uint32 {
	return in.typeID(OpTypeFunction, append([]uint32{ret}, params...)...)
}

// ImageDesc is the operand set of OpTypeImage.
type ImageDesc struct {
	SampledType uint32
	Dim         Dim
	Depth       bool
	Arrayed     bool
	MS          bool
	// Sampled is 1 for images used with a sampler and 2 for storage
	// images.
	Sampled uint32
	Format  ir.Format
}

// Image returns OpTypeImage.
func (in *Interner) Image(d ImageDesc) uint32 {
	return in.typeID(OpTypeImage, d.SampledType, uint32(d.Dim),
		boolWord(d.Depth), boolWord(d.Arrayed), boolWord(d.MS), d.Sampled, uint32(d.Format))
}

// SampledImage returns OpTypeSampledImage over image.
func (in *Interner) SampledImage(image uint32) uint32 {
	return in.typeID(OpTypeSampledImage, image)
}

// Sampler returns OpTypeSampler.
func (in *Interner) Sampler() uint32 { return in.typeID(OpTypeSampler) }

// Array returns a sized array type. A non-zero stride is part of the
// type's identity and decorated once, when the type is created.
func (in *Interner) Array(elem, length, stride uint32) uint32 {
	key := aggregateKey{kind: aggregateArray, elem: elem, length: length, stride: stride}
	if id, ok := in.aggregates[key]; ok {
		return id
	}
	id := in.module.AddType(OpTypeArray, elem, in.ConstUint(32, uint64(length)))
	if stride != 0 {
		in.module.AddDecorate(id, DecorationArrayStride, stride)
	}
	in.aggregates[key] = id
	return id
}

// RuntimeArray returns an unsized array type.
func (in *Interner) RuntimeArray(elem, stride uint32) uint32 {
	key := aggregateKey{kind: aggregateRuntimeArray, elem: elem, stride: stride}
	if id, ok := in.aggregates[key]; ok {
		return id
	}
	id := in.module.AddType(OpTypeRuntimeArray, elem)
	if stride != 0 {
		in.module.AddDecorate(id, DecorationArrayStride, stride)
	}
	in.aggregates[key] = id
	return id
}

// Struct returns a struct type. offsets, when non-nil, holds one member
// Offset per member. block adds the Block decoration.
func (in *Interner) Struct(members, offsets []uint32, block bool) uint32 {
	return in.LayoutStruct(members, offsets, nil, block)
}

// LayoutStruct is Struct with matrix layout. A non-zero entry in
// matrixStrides marks a column-major matrix member with that stride.
func (in *Interner) LayoutStruct(members, offsets, matrixStrides []uint32, block bool) uint32 {
	if offsets != nil && len(offsets) != len(members) {
		panic(internalErrorf("struct with %d members and %d offsets", len(members), len(offsets)))
	}
	if matrixStrides != nil && len(matrixStrides) != len(members) {
		panic(internalErrorf("struct with %d members and %d matrix strides", len(members), len(matrixStrides)))
	}
	key := aggregateKey{
		kind:    aggregateStruct,
		members: makeInstKey(OpTypeStruct, members...).words,
		block:   block,
	}
	if offsets != nil {
		key.offsets = "o" + makeInstKey(OpTypeStruct, offsets...).words
	}
	if matrixStrides != nil {
		key.matrix = "m" + makeInstKey(OpTypeStruct, matrixStrides...).words
	}
	if id, ok := in.aggregates[key]; ok {
		return id
	}
	id := in.module.AddType(OpTypeStruct, members...)
	if block {
		in.module.AddDecorate(id, DecorationBlock)
	}
	for i, off := range offsets {
		in.module.AddMemberDecorate(id, uint32(i), DecorationOffset, off)
	}
	for i, stride := range matrixStrides {
		if stride != 0 {
			in.module.AddMemberDecorate(id, uint32(i), DecorationColMajor)
			in.module.AddMemberDecorate(id, uint32(i), DecorationMatrixStride, stride)
		}
	}
	in.aggregates[key] = id
	return id
}

// TypeFor maps an IR type descriptor to a type id with no layout
// decorations, for Input, Output, Function and Private storage.
func (in *Interner) TypeFor(t ir.Type) uint32 {
	return in.typeFor(t, false)
}

// LayoutTypeFor maps an IR type descriptor to a type id carrying an
// explicit layout, for PushConstant, Uniform and StorageBuffer storage.
// Arrays get their ArrayStride and struct members their Offset, at the
// natural alignment unless given explicitly. Matrix members are
// column-major.
func (in *Interner) LayoutTypeFor(t ir.Type) uint32 {
	return in.typeFor(t, true)
}

func (in *Interner) typeFor(t ir.Type, explicit bool) uint32 {
	switch t.Base {
	case ir.BaseBool, ir.BaseInt, ir.BaseUint, ir.BaseFloat:
		if t.IsMatrix() {
			column := in.Value(t.Base, t.BitSize(), t.NumComponents())
			return in.Matrix(column, t.Columns)
		}
		return in.Value(t.Base, t.BitSize(), t.NumComponents())
	case ir.BaseArray:
		if t.Elem == nil {
			panic(malformedf("array type without an element type"))
		}
		elem := in.typeFor(*t.Elem, explicit)
		var stride uint32
		if explicit {
			stride = t.ArrayStride()
		}
		if t.IsRuntimeArray() {
			return in.RuntimeArray(elem, stride)
		}
		return in.Array(elem, t.Length, stride)
	case ir.BaseStruct:
		members := make([]uint32, len(t.Fields))
		for i := range t.Fields {
			members[i] = in.typeFor(t.Fields[i].Type, explicit)
		}
		if !explicit {
			return in.Struct(members, nil, false)
		}
		return in.LayoutStruct(members, t.FieldOffsets(), matrixStrides(t.Fields), false)
	case ir.BaseImage:
		panic(malformedf("image type outside of an image variable"))
	}
	panic(malformedf("unknown base type %d", t.Base))
}

// matrixStrides returns the column stride of each matrix field, looking
// through arrays, or nil when no field is a matrix.
func matrixStrides(fields []ir.Field) []uint32 {
	var strides []uint32
	for i := range fields {
		t := fields[i].Type.WithoutArray()
		if !t.IsMatrix() {
			continue
		}
		if strides == nil {
			strides = make([]uint32, len(fields))
		}
		strides[i] = t.MatrixStride()
	}
	return strides
}

func (in *Interner) constant(op OpCode, typeID uint32, operands ...uint32) uint32 {
	key := makeInstKey(op, append([]uint32{typeID}, operands...)...)
	if id, ok := in.constants[key]; ok {
		return id
	}
	id := in.module.AddConstant(op, typeID, operands...)
	in.constants[key] = id
	return id
}

// ConstBool returns OpConstantTrue or OpConstantFalse.
func (in *Interner) ConstBool(v bool) uint32 {
	if v {
		return in.constant(OpConstantTrue, in.Bool())
	}
	return in.constant(OpConstantFalse, in.Bool())
}

// ConstUint returns an unsigned integer constant.
func (in *Interner) ConstUint(bits uint8, v uint64) uint32 {
	return in.constant(OpConstant, in.Int(bits, false), literalWords(bits, v, false)...)
}

// ConstInt returns a signed integer constant from its raw bits.
func (in *Interner) ConstInt(bits uint8, v uint64) uint32 {
	return in.constant(OpConstant, in.Int(bits, true), literalWords(bits, v, true)...)
}

// ConstFloat returns a float constant from its raw bits.
func (in *Interner) ConstFloat(bits uint8, raw uint64) uint32 {
	return in.constant(OpConstant, in.Float(bits), literalWords(bits, raw, false)...)
}

// ConstFloat32 returns a 32-bit float constant.
func (in *Interner) ConstFloat32(f float32) uint32 {
	return in.ConstFloat(32, uint64(math.Float32bits(f)))
}

// ConstScalar returns a scalar constant of the given kind from raw bits.
func (in *Interner) ConstScalar(kind ir.BaseType, bits uint8, raw uint64) uint32 {
	if bits == 1 || kind == ir.BaseBool {
		return in.ConstBool(raw != 0)
	}
	switch kind {
	case ir.BaseInt:
		return in.ConstInt(bits, raw)
	case ir.BaseFloat:
		return in.ConstFloat(bits, raw)
	}
	return in.ConstUint(bits, raw)
}

// ConstComposite returns OpConstantComposite.
func (in *Interner) ConstComposite(typeID uint32, parts ...uint32) uint32 {
	return in.constant(OpConstantComposite, typeID, parts...)
}

// ConstValue returns a scalar or vector constant of the given kind with
// one raw value per component.
func (in *Interner) ConstValue(kind ir.BaseType, bits uint8, raw []uint64) uint32 {
	if len(raw) == 1 {
		return in.ConstScalar(kind, bits, raw[0])
	}
	n, err := safecast.Conv[uint8](len(raw))
	if err != nil {
		panic(malformedf("constant with %d components", len(raw)))
	}
	parts := make([]uint32, len(raw))
	for i, v := range raw {
		parts[i] = in.ConstScalar(kind, bits, v)
	}
	return in.ConstComposite(in.Value(kind, bits, n), parts...)
}

// Null returns OpConstantNull of typeID.
func (in *Interner) Null(typeID uint32) uint32 {
	return in.constant(OpConstantNull, typeID)
}

// Undef returns an OpUndef of typeID, declared at module scope.
func (in *Interner) Undef(typeID uint32) uint32 {
	if id, ok := in.undefs[typeID]; ok {
		return id
	}
	id := in.module.AddConstant(OpUndef, typeID)
	in.undefs[typeID] = id
	return id
}

// literalWords encodes a numeric literal. Literals narrower than a word
// are zero- or sign-extended; 64-bit literals take two words, low first.
func literalWords(bits uint8, v uint64, signed bool) []uint32 {
	if bits == 64 {
		return []uint32{uint32(v), uint32(v >> 32)}
	}
	if bits < 32 {
		mask := uint64(1)<<bits - 1
		v &= mask
		if signed && v&(uint64(1)<<(bits-1)) != 0 {
			v |= ^mask
		}
	}
	return []uint32{uint32(v)}
}

func boolWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// String reports the cache sizes, for debugging.
func (in *Interner) String() string {
	return fmt.Sprintf("interner(%d types, %d aggregates, %d constants)",
		len(in.types), len(in.aggregates), len(in.constants))
}
