package ir

// BaseType is the base kind of a type descriptor. The scalar kinds
// double as the interpretation an operation applies to its typeless
// operands.
type BaseType uint8

const (
	BaseBool BaseType = iota
	BaseInt
	BaseUint
	BaseFloat
	BaseArray
	BaseStruct
	BaseImage
)

var baseTypeNames = []string{"bool", "int", "uint", "float", "array", "struct", "image"}

func (b BaseType) String() string { return enumString(b, baseTypeNames) }
func (b BaseType) MarshalText() ([]byte, error) { return marshalEnum(b, baseTypeNames) }
func (b *BaseType) UnmarshalText(text []byte) error {
	return unmarshalEnum(b, text, baseTypeNames, "base type")
}

// IsNumeric reports whether b is an int, uint or float kind.
func (b BaseType) IsNumeric() bool {
	return b == BaseInt || b == BaseUint || b == BaseFloat
}

// Type is a structural type descriptor.
//
// Scalars and vectors use Bits and Components; matrices additionally set
// Columns (Components is then the row count). Arrays carry Elem, Length
// (zero for runtime-sized) and an optional explicit Stride. Structs carry
// Fields with optional explicit offsets.
type Type struct {
	Base       BaseType   `yaml:"base"`
	Bits       uint8      `yaml:"bits,omitempty"`
	Components uint8      `yaml:"components,omitempty"`
	Columns    uint8      `yaml:"columns,omitempty"`
	Elem       *Type      `yaml:"elem,omitempty"`
	Length     uint32     `yaml:"length,omitempty"`
	Stride     uint32     `yaml:"stride,omitempty"`
	Fields     []Field    `yaml:"fields,omitempty"`
	Image      *ImageType `yaml:"image,omitempty"`
}

// Field is one struct member.
type Field struct {
	Name   string  `yaml:"name,omitempty"`
	Type   Type    `yaml:"type"`
	Offset *uint32 `yaml:"offset,omitempty"`
}

// Scalar returns a scalar type.
func Scalar(base BaseType, bits uint8) Type {
	return Type{Base: base, Bits: bits, Components: 1}
}

// Vector returns a vector type with n components.
func Vector(base BaseType, bits, n uint8) Type {
	return Type{Base: base, Bits: bits, Components: n}
}

// Matrix returns a float matrix with the given column and row counts.
func Matrix(bits, columns, rows uint8) Type {
	return Type{Base: BaseFloat, Bits: bits, Components: rows, Columns: columns}
}

// ArrayOf returns an array of elem. A zero length is a runtime array.
func ArrayOf(elem Type, length uint32) Type {
	return Type{Base: BaseArray, Elem: &elem, Length: length}
}

// StructOf returns a struct type.
func StructOf(fields ...Field) Type {
	return Type{Base: BaseStruct, Fields: fields}
}

// ImageOf returns an image or combined image-sampler type.
func ImageOf(img ImageType) Type {
	return Type{Base: BaseImage, Image: &img}
}

// BitSize returns the scalar bit width; numeric types default to 32.
func (t *Type) BitSize() uint8 {
	if t.Base == BaseBool {
		return 1
	}
	if t.Bits == 0 {
		return 32
	}
	return t.Bits
}

// NumComponents returns the vector width, 1 for scalars.
func (t *Type) NumComponents() uint8 {
	if t.Components == 0 {
		return 1
	}
	return t.Components
}

// IsScalar reports whether t is a bool or numeric scalar.
func (t *Type) IsScalar() bool {
	return (t.Base == BaseBool || t.Base.IsNumeric()) && t.NumComponents() == 1 && t.Columns == 0
}

// IsVector reports whether t is a vector with more than one component.
func (t *Type) IsVector() bool {
	return (t.Base == BaseBool || t.Base.IsNumeric()) && t.NumComponents() > 1 && t.Columns == 0
}

// IsMatrix reports whether t is a matrix.
func (t *Type) IsMatrix() bool {
	return t.Base == BaseFloat && t.Columns > 1
}

// IsRuntimeArray reports whether t is an unsized array.
func (t *Type) IsRuntimeArray() bool {
	return t.Base == BaseArray && t.Length == 0
}

// WithoutArray strips all array levels.
func (t *Type) WithoutArray() *Type {
	for t.Base == BaseArray && t.Elem != nil {
		t = t.Elem
	}
	return t
}

// ArrayElements returns the flattened element count of an array
// of arrays, or 1 for non-arrays.
func (t *Type) ArrayElements() uint32 {
	n := uint32(1)
	for t.Base == BaseArray && t.Elem != nil {
		n *= t.Length
		t = t.Elem
	}
	return n
}

// Align returns the natural (std430) alignment of t in bytes.
func (t *Type) Align() uint32 {
	switch t.Base {
	case BaseArray:
		return t.Elem.Align()
	case BaseStruct:
		a := uint32(1)
		for i := range t.Fields {
			a = max(a, t.Fields[i].Type.Align())
		}
		return a
	case BaseImage:
		return 8
	}
	s := scalarBytes(t.BitSize())
	switch t.NumComponents() {
	case 1:
		return s
	case 2:
		return 2 * s
	default:
		return 4 * s
	}
}

// Size returns the natural (std430) size of t in bytes. Runtime arrays
// contribute zero.
func (t *Type) Size() uint32 {
	switch t.Base {
	case BaseArray:
		return t.Length * t.ArrayStride()
	case BaseStruct:
		offsets := t.FieldOffsets()
		if len(offsets) == 0 {
			return 0
		}
		last := len(t.Fields) - 1
		end := offsets[last] + t.Fields[last].Type.Size()
		return alignUp(end, t.Align())
	case BaseImage:
		return 8
	}
	if t.IsMatrix() {
		column := Vector(t.Base, t.Bits, t.Components)
		return uint32(t.Columns) * alignUp(column.Size(), column.Align())
	}
	return scalarBytes(t.BitSize()) * uint32(t.NumComponents())
}

// ArrayStride returns the explicit stride, or the natural one.
func (t *Type) ArrayStride() uint32 {
	if t.Stride != 0 {
		return t.Stride
	}
	return alignUp(t.Elem.Size(), t.Elem.Align())
}

// MatrixStride returns the byte stride between matrix columns.
func (t *Type) MatrixStride() uint32 {
	column := Vector(t.Base, t.Bits, t.Components)
	return alignUp(column.Size(), column.Align())
}

// FieldOffsets returns each field's explicit offset, falling back to
// natural alignment after the previous field.
func (t *Type) FieldOffsets() []uint32 {
	offsets := make([]uint32, len(t.Fields))
	next := uint32(0)
	for i := range t.Fields {
		f := &t.Fields[i]
		if f.Offset != nil {
			offsets[i] = *f.Offset
		} else {
			offsets[i] = alignUp(next, f.Type.Align())
		}
		next = offsets[i] + f.Type.Size()
	}
	return offsets
}

func scalarBytes(bits uint8) uint32 {
	if bits < 8 {
		return 4
	}
	return uint32(bits) / 8
}

func alignUp(v, a uint32) uint32 {
	if a == 0 {
		return v
	}
	return (v + a - 1) / a * a
}

// ImageType describes an image or a combined image-sampler.
type ImageType struct {
	Dim         Dim      `yaml:"dim"`
	Arrayed     bool     `yaml:"arrayed,omitempty"`
	Multisample bool     `yaml:"multisample,omitempty"`
	Shadow      bool     `yaml:"shadow,omitempty"`
	Sampler     bool     `yaml:"sampler,omitempty"`
	Result      BaseType `yaml:"result"`
	Format      Format   `yaml:"format,omitempty"`
}

// CoordComponents returns the number of coordinate components used to
// address the image, including the array layer.
func (i *ImageType) CoordComponents() uint8 {
	var n uint8
	switch i.Dim {
	case Dim1D, DimBuffer:
		n = 1
	case Dim2D, DimRect, DimSubpass:
		n = 2
	case Dim3D, DimCube:
		n = 3
	}
	if i.Arrayed {
		n++
	}
	return n
}

// Dim is an image dimensionality.
type Dim uint8

const (
	Dim1D Dim = iota
	Dim2D
	Dim3D
	DimCube
	DimRect
	DimBuffer
	DimSubpass
)

var dimNames = []string{"1d", "2d", "3d", "cube", "rect", "buffer", "subpass"}

func (d Dim) String() string { return enumString(d, dimNames) }
func (d Dim) MarshalText() ([]byte, error) { return marshalEnum(d, dimNames) }
func (d *Dim) UnmarshalText(text []byte) error { return unmarshalEnum(d, text, dimNames, "dim") }

// Format is a storage image format. Values follow the SPIR-V
// ImageFormat enumeration.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatRgba32f
	FormatRgba16f
	FormatR32f
	FormatRgba8
	FormatRgba8Snorm
	FormatRg32f
	FormatRg16f
	FormatR11fG11fB10f
	FormatR16f
	FormatRgba16
	FormatRgb10A2
	FormatRg16
	FormatRg8
	FormatR16
	FormatR8
	FormatRgba16Snorm
	FormatRg16Snorm
	FormatRg8Snorm
	FormatR16Snorm
	FormatR8Snorm
	FormatRgba32i
	FormatRgba16i
	FormatRgba8i
	FormatR32i
	FormatRg32i
	FormatRg16i
	FormatRg8i
	FormatR16i
	FormatR8i
	FormatRgba32ui
	FormatRgba16ui
	FormatRgba8ui
	FormatR32ui
	FormatRgb10a2ui
	FormatRg32ui
	FormatRg16ui
	FormatRg8ui
	FormatR16ui
	FormatR8ui
)

var formatNames = []string{
	"unknown", "rgba32f", "rgba16f", "r32f", "rgba8", "rgba8_snorm", "rg32f", "rg16f",
	"r11f_g11f_b10f", "r16f", "rgba16", "rgb10_a2", "rg16", "rg8", "r16", "r8",
	"rgba16_snorm", "rg16_snorm", "rg8_snorm", "r16_snorm", "r8_snorm",
	"rgba32i", "rgba16i", "rgba8i", "r32i", "rg32i", "rg16i", "rg8i", "r16i", "r8i",
	"rgba32ui", "rgba16ui", "rgba8ui", "r32ui", "rgb10a2ui", "rg32ui", "rg16ui",
	"rg8ui", "r16ui", "r8ui",
}

func (f Format) String() string { return enumString(f, formatNames) }
func (f Format) MarshalText() ([]byte, error) { return marshalEnum(f, formatNames) }
func (f *Format) UnmarshalText(text []byte) error {
	return unmarshalEnum(f, text, formatNames, "format")
}

// IsExtended reports whether f is outside the basic storage format set
// that every shader-capable device supports.
func (f Format) IsExtended() bool {
	switch f {
	case FormatUnknown,
		FormatRgba32f, FormatRgba16f, FormatR32f, FormatRgba8, FormatRgba8Snorm,
		FormatRgba32i, FormatRgba16i, FormatRgba8i, FormatR32i,
		FormatRgba32ui, FormatRgba16ui, FormatRgba8ui, FormatR32ui:
		return false
	}
	return true
}
