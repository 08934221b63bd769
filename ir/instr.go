package ir

// Src references an SSA value or, when Reg is set, a register.
type Src struct {
	Index uint32 `yaml:"index"`
	Reg   bool   `yaml:"reg,omitempty"`
}

// SSA returns a source referencing SSA value i.
func SSA(i uint32) Src { return Src{Index: i} }

// Dest is the value an instruction defines. SSA values carry only a bit
// size and component count; the bits are reinterpreted per use.
type Dest struct {
	Index      uint32 `yaml:"index"`
	Reg        bool   `yaml:"reg,omitempty"`
	BitSize    uint8  `yaml:"bits"`
	Components uint8  `yaml:"components"`
}

// Src returns a source that reads this destination.
func (d Dest) Src() Src { return Src{Index: d.Index, Reg: d.Reg} }

// Instr is one IR instruction. Exactly one field is set.
type Instr struct {
	ALU       *ALU       `yaml:"alu,omitempty"`
	Intrinsic *Intrinsic `yaml:"intrinsic,omitempty"`
	LoadConst *LoadConst `yaml:"load_const,omitempty"`
	Undef     *Undef     `yaml:"undef,omitempty"`
	Tex       *Tex       `yaml:"tex,omitempty"`
	Jump      *Jump      `yaml:"jump,omitempty"`
	Deref     *Deref     `yaml:"deref,omitempty"`
}

// Dest returns the destination defined by the instruction, if any.
func (i *Instr) Dest() *Dest {
	switch {
	case i.ALU != nil:
		return &i.ALU.Dest
	case i.Intrinsic != nil:
		return i.Intrinsic.Dest
	case i.LoadConst != nil:
		return &i.LoadConst.Dest
	case i.Undef != nil:
		return &i.Undef.Dest
	case i.Tex != nil:
		return &i.Tex.Dest
	case i.Deref != nil:
		return &i.Deref.Dest
	}
	return nil
}

// ALU is an arithmetic or logic operation.
type ALU struct {
	Op    ALUOp    `yaml:"op"`
	Dest  Dest     `yaml:"dest"`
	Srcs  []ALUSrc `yaml:"srcs"`
	Exact bool     `yaml:"exact,omitempty"`
}

// ALUSrc is an ALU operand with an optional swizzle. A nil swizzle is
// the identity.
type ALUSrc struct {
	Index   uint32   `yaml:"index"`
	Reg     bool     `yaml:"reg,omitempty"`
	Swizzle []uint32 `yaml:"swizzle,omitempty"`
}

// Src returns the referenced value without the swizzle.
func (s ALUSrc) Src() Src { return Src{Index: s.Index, Reg: s.Reg} }

// LoadConst defines a constant. Values holds one raw bit pattern per
// component.
type LoadConst struct {
	Dest   Dest     `yaml:"dest"`
	Values []uint64 `yaml:"values"`
}

// Undef defines an undefined value.
type Undef struct {
	Dest Dest `yaml:"dest"`
}

// JumpKind is the kind of a structured jump.
type JumpKind string

const (
	JumpBreak    JumpKind = "break"
	JumpContinue JumpKind = "continue"
)

// Jump is a break or continue out of the innermost loop.
type Jump struct {
	Kind JumpKind `yaml:"kind"`
}

// DerefKind is the kind of a deref step.
type DerefKind string

const (
	DerefVar    DerefKind = "var"
	DerefArray  DerefKind = "array"
	DerefStruct DerefKind = "struct"
)

// Deref produces a pointer to a variable or to part of one. Var names the
// root variable for every kind; Type is the pointee type after this step.
type Deref struct {
	Kind   DerefKind `yaml:"kind"`
	Dest   Dest      `yaml:"dest"`
	Var    uint32    `yaml:"var"`
	Parent Src       `yaml:"parent,omitempty"`
	Index  Src       `yaml:"array_index,omitempty"`
	Field  uint32    `yaml:"field,omitempty"`
	Type   Type      `yaml:"type"`
}

// AtomicOp is the operation of an atomic intrinsic.
type AtomicOp string

const (
	AtomicAdd      AtomicOp = "add"
	AtomicIMin     AtomicOp = "imin"
	AtomicUMin     AtomicOp = "umin"
	AtomicIMax     AtomicOp = "imax"
	AtomicUMax     AtomicOp = "umax"
	AtomicAnd      AtomicOp = "and"
	AtomicOr       AtomicOp = "or"
	AtomicXor      AtomicOp = "xor"
	AtomicExchange AtomicOp = "exchange"
	AtomicCompSwap AtomicOp = "comp_swap"
)

// Scope is a memory or execution scope for intrinsics that take one.
type Scope string

const (
	ScopeDevice    Scope = "device"
	ScopeWorkgroup Scope = "workgroup"
	ScopeSubgroup  Scope = "subgroup"
)

// Intrinsic is a system-value read, memory access, barrier or other
// operation with fixed semantics. Source layouts per op are documented
// next to the IntrinsicOp constants.
type Intrinsic struct {
	Op        IntrinsicOp `yaml:"op"`
	Dest      *Dest       `yaml:"dest,omitempty"`
	Srcs      []Src       `yaml:"srcs,omitempty"`
	WriteMask uint8       `yaml:"write_mask,omitempty"`
	Access    Access      `yaml:"access,omitempty"`
	Atomic    AtomicOp    `yaml:"atomic,omitempty"`
	Stream    uint32      `yaml:"stream,omitempty"`
	Scope     Scope       `yaml:"scope,omitempty"`
}

// TexOp is a texture operation.
type TexOp string

const (
	TexSample         TexOp = "tex"
	TexSampleBias     TexOp = "txb"
	TexSampleLod      TexOp = "txl"
	TexSampleGrad     TexOp = "txd"
	TexFetch          TexOp = "txf"
	TexFetchMS        TexOp = "txf_ms"
	TexSize           TexOp = "txs"
	TexQueryLod       TexOp = "lod"
	TexGather         TexOp = "tg4"
	TexTextureSamples TexOp = "texture_samples"
	TexQueryLevels    TexOp = "query_levels"
)

// TexSrcKind identifies the role of a texture operand.
type TexSrcKind string

const (
	TexSrcCoord         TexSrcKind = "coord"
	TexSrcProjector     TexSrcKind = "projector"
	TexSrcOffset        TexSrcKind = "offset"
	TexSrcBias          TexSrcKind = "bias"
	TexSrcLod           TexSrcKind = "lod"
	TexSrcMSIndex       TexSrcKind = "ms_index"
	TexSrcComparator    TexSrcKind = "comparator"
	TexSrcDdx           TexSrcKind = "ddx"
	TexSrcDdy           TexSrcKind = "ddy"
	TexSrcTextureOffset TexSrcKind = "texture_offset"
	TexSrcSamplerOffset TexSrcKind = "sampler_offset"
	TexSrcTextureHandle TexSrcKind = "texture_handle"
	TexSrcSamplerHandle TexSrcKind = "sampler_handle"
)

// TexSrc is one texture operand.
type TexSrc struct {
	Kind  TexSrcKind `yaml:"kind"`
	Index uint32     `yaml:"index"`
	Reg   bool       `yaml:"reg,omitempty"`
}

// Src returns the referenced value.
func (s TexSrc) Src() Src { return Src{Index: s.Index, Reg: s.Reg} }

// Tex is a texture sample, fetch, gather or query.
type Tex struct {
	Op           TexOp    `yaml:"op"`
	Dest         Dest     `yaml:"dest"`
	DestType     BaseType `yaml:"dest_type"`
	Dim          Dim      `yaml:"dim"`
	IsArray      bool     `yaml:"is_array,omitempty"`
	IsShadow     bool     `yaml:"is_shadow,omitempty"`
	TextureIndex uint32   `yaml:"texture_index"`
	Component    uint8    `yaml:"component,omitempty"`
	Srcs         []TexSrc `yaml:"srcs,omitempty"`
}

// Src returns the operand of the given kind.
func (t *Tex) Src(kind TexSrcKind) (TexSrc, bool) {
	for _, s := range t.Srcs {
		if s.Kind == kind {
			return s, true
		}
	}
	return TexSrc{}, false
}
