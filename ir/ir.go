package ir

// Shader is one shader stage in IR form.
type Shader struct {
	Name      string     `yaml:"name,omitempty"`
	Stage     Stage      `yaml:"stage"`
	Info      Info       `yaml:"info,omitempty"`
	Variables []Variable `yaml:"variables,omitempty"`
	Entry     Function   `yaml:"entry"`
}

// Stage represents a shader stage.
type Stage uint8

const (
	StageVertex Stage = iota
	StageTessCtrl
	StageTessEval
	StageGeometry
	StageFragment
	StageCompute
)

var stageNames = []string{"vertex", "tess_ctrl", "tess_eval", "geometry", "fragment", "compute"}

func (s Stage) String() string { return enumString(s, stageNames) }
func (s Stage) MarshalText() ([]byte, error) { return marshalEnum(s, stageNames) }
func (s *Stage) UnmarshalText(text []byte) error { return unmarshalEnum(s, text, stageNames, "stage") }

// Info holds per-stage metadata gathered upstream.
type Info struct {
	Fragment FragmentInfo `yaml:"fragment,omitempty"`
	Geometry GeometryInfo `yaml:"geometry,omitempty"`
	Tess     TessInfo     `yaml:"tess,omitempty"`
	Compute  ComputeInfo  `yaml:"compute,omitempty"`
}

// FragmentInfo holds fragment stage metadata.
type FragmentInfo struct {
	DepthLayout              DepthLayout `yaml:"depth_layout,omitempty"`
	EarlyFragmentTests       bool        `yaml:"early_fragment_tests,omitempty"`
	PostDepthCoverage        bool        `yaml:"post_depth_coverage,omitempty"`
	UsesSampleShading        bool        `yaml:"uses_sample_shading,omitempty"`
	PixelInterlockOrdered    bool        `yaml:"pixel_interlock_ordered,omitempty"`
	PixelInterlockUnordered  bool        `yaml:"pixel_interlock_unordered,omitempty"`
	SampleInterlockOrdered   bool        `yaml:"sample_interlock_ordered,omitempty"`
	SampleInterlockUnordered bool        `yaml:"sample_interlock_unordered,omitempty"`
}

// GeometryInfo holds geometry stage metadata.
type GeometryInfo struct {
	InputPrimitive   Primitive `yaml:"input_primitive,omitempty"`
	OutputPrimitive  Primitive `yaml:"output_primitive,omitempty"`
	Invocations      uint32    `yaml:"invocations,omitempty"`
	VerticesOut      uint32    `yaml:"vertices_out,omitempty"`
	ActiveStreamMask uint8     `yaml:"active_stream_mask,omitempty"`
}

// TessInfo holds tessellation stage metadata.
type TessInfo struct {
	VerticesOut uint32    `yaml:"vertices_out,omitempty"`
	Primitive   Primitive `yaml:"primitive,omitempty"`
	CCW         bool      `yaml:"ccw,omitempty"`
	Spacing     Spacing   `yaml:"spacing,omitempty"`
	PointMode   bool      `yaml:"point_mode,omitempty"`
}

// ComputeInfo holds compute stage metadata.
//
// A zero WorkgroupSize means the size is supplied at pipeline creation
// through specialization constants.
type ComputeInfo struct {
	WorkgroupSize [3]uint32 `yaml:"workgroup_size,omitempty"`
	SharedSize    uint32    `yaml:"shared_size,omitempty"`
	PtrSize       uint8     `yaml:"ptr_size,omitempty"`
}

// DepthLayout is the fragment depth write layout.
type DepthLayout uint8

const (
	DepthLayoutNone DepthLayout = iota
	DepthLayoutAny
	DepthLayoutGreater
	DepthLayoutLess
	DepthLayoutUnchanged
)

var depthLayoutNames = []string{"none", "any", "greater", "less", "unchanged"}

func (d DepthLayout) String() string { return enumString(d, depthLayoutNames) }
func (d DepthLayout) MarshalText() ([]byte, error) { return marshalEnum(d, depthLayoutNames) }
func (d *DepthLayout) UnmarshalText(text []byte) error {
	return unmarshalEnum(d, text, depthLayoutNames, "depth layout")
}

// Primitive is an input or output primitive topology.
type Primitive uint8

const (
	PrimitivePoints Primitive = iota
	PrimitiveLines
	PrimitiveLineLoop
	PrimitiveLineStrip
	PrimitiveTriangles
	PrimitiveTriangleStrip
	PrimitiveTriangleFan
	PrimitiveQuads
	PrimitiveQuadStrip
	PrimitiveLinesAdjacency
	PrimitiveLineStripAdjacency
	PrimitiveTrianglesAdjacency
	PrimitiveTriangleStripAdjacency
	PrimitiveIsolines
	PrimitivePolygon
)

var primitiveNames = []string{
	"points", "lines", "line_loop", "line_strip", "triangles", "triangle_strip",
	"triangle_fan", "quads", "quad_strip", "lines_adjacency", "line_strip_adjacency",
	"triangles_adjacency", "triangle_strip_adjacency", "isolines", "polygon",
}

func (p Primitive) String() string { return enumString(p, primitiveNames) }
func (p Primitive) MarshalText() ([]byte, error) { return marshalEnum(p, primitiveNames) }
func (p *Primitive) UnmarshalText(text []byte) error {
	return unmarshalEnum(p, text, primitiveNames, "primitive")
}

// Spacing is the tessellation spacing mode.
type Spacing uint8

const (
	SpacingEqual Spacing = iota
	SpacingFractionalOdd
	SpacingFractionalEven
)

var spacingNames = []string{"equal", "fractional_odd", "fractional_even"}

func (s Spacing) String() string { return enumString(s, spacingNames) }
func (s Spacing) MarshalText() ([]byte, error) { return marshalEnum(s, spacingNames) }
func (s *Spacing) UnmarshalText(text []byte) error {
	return unmarshalEnum(s, text, spacingNames, "spacing")
}

// Function is the shader entry function.
type Function struct {
	Body      []Node     `yaml:"body"`
	NumSSA    uint32     `yaml:"num_ssa"`
	Registers []Register `yaml:"registers,omitempty"`
}

// Register is a mutable, non-SSA value.
type Register struct {
	BitSize    uint8 `yaml:"bits"`
	Components uint8 `yaml:"components"`
}
