package ir

// Mode is the storage mode of a module-scope variable.
type Mode uint8

const (
	ModeInput Mode = iota
	ModeOutput
	ModeUniform
	ModeUBO
	ModeSSBO
	ModeShared
	ModePushConst
	ModeImage
	ModeSampler
)

var modeNames = []string{
	"input", "output", "uniform", "ubo", "ssbo", "shared", "push_const", "image", "sampler",
}

func (m Mode) String() string { return enumString(m, modeNames) }
func (m Mode) MarshalText() ([]byte, error) { return marshalEnum(m, modeNames) }
func (m *Mode) UnmarshalText(text []byte) error { return unmarshalEnum(m, text, modeNames, "mode") }

// IsOpaque reports whether variables of this mode hold images or samplers.
func (m Mode) IsOpaque() bool {
	return m == ModeUniform || m == ModeImage || m == ModeSampler
}

// Builtin is a fixed pipeline semantic bound to an input or output.
type Builtin uint8

const (
	BuiltinNone Builtin = iota
	BuiltinPosition
	BuiltinPointSize
	BuiltinClipDistance
	BuiltinCullDistance
	BuiltinLayer
	BuiltinViewportIndex
	BuiltinPrimitiveID
	BuiltinFragCoord
	BuiltinPointCoord
	BuiltinFrontFacing
	BuiltinFragDepth
	BuiltinSampleMask
	BuiltinStencilRef
	BuiltinTessLevelOuter
	BuiltinTessLevelInner
)

var builtinNames = []string{
	"", "position", "point_size", "clip_distance", "cull_distance", "layer",
	"viewport_index", "primitive_id", "frag_coord", "point_coord", "front_facing",
	"frag_depth", "sample_mask", "stencil_ref", "tess_level_outer", "tess_level_inner",
}

func (b Builtin) String() string { return enumString(b, builtinNames) }
func (b Builtin) MarshalText() ([]byte, error) { return marshalEnum(b, builtinNames) }
func (b *Builtin) UnmarshalText(text []byte) error {
	return unmarshalEnum(b, text, builtinNames, "builtin")
}

// Interp is an interpolation qualifier.
type Interp uint8

const (
	InterpSmooth Interp = iota
	InterpFlat
	InterpNoPerspective
)

var interpNames = []string{"smooth", "flat", "noperspective"}

func (i Interp) String() string { return enumString(i, interpNames) }
func (i Interp) MarshalText() ([]byte, error) { return marshalEnum(i, interpNames) }
func (i *Interp) UnmarshalText(text []byte) error {
	return unmarshalEnum(i, text, interpNames, "interpolation")
}

// Access is a bit set of memory access qualifiers.
type Access uint8

const (
	AccessCoherent Access = 1 << iota
	AccessRestrict
	AccessNonReadable
	AccessNonWritable
)

// Variable is a module-scope variable.
type Variable struct {
	Name string `yaml:"name,omitempty"`
	Mode Mode   `yaml:"mode"`
	Type Type   `yaml:"type"`

	// Location is the varying or fragment output location.
	Location uint32  `yaml:"location,omitempty"`
	Builtin  Builtin `yaml:"builtin,omitempty"`
	// Component is the first component within the location.
	Component uint8 `yaml:"component,omitempty"`
	// Index selects the dual-source blend input for fragment outputs
	// and the input attachment index for subpass images.
	Index uint32 `yaml:"index,omitempty"`

	Binding       uint32 `yaml:"binding,omitempty"`
	DescriptorSet uint32 `yaml:"descriptor_set,omitempty"`
	// DriverLocation is the block index for buffers and the first
	// texture unit for samplers and images.
	DriverLocation uint32 `yaml:"driver_location,omitempty"`

	Interp   Interp `yaml:"interp,omitempty"`
	Patch    bool   `yaml:"patch,omitempty"`
	Centroid bool   `yaml:"centroid,omitempty"`
	Sample   bool   `yaml:"sample,omitempty"`

	Access   Access `yaml:"access,omitempty"`
	Bindless bool   `yaml:"bindless,omitempty"`

	Xfb *XfbDecoration `yaml:"xfb,omitempty"`
}

// XfbDecoration is an explicit transform feedback placement declared on
// an output variable. Offsets and strides are in bytes.
type XfbDecoration struct {
	Buffer uint32 `yaml:"buffer"`
	Stride uint32 `yaml:"stride"`
	Offset uint32 `yaml:"offset"`
	Stream uint32 `yaml:"stream,omitempty"`
}
