package ir

import "math"

// Builder constructs shaders programmatically. It allocates SSA indices
// and block indices, and opens blocks so that the structural rules
// checked by Validate always hold.
type Builder struct {
	shader    *Shader
	lists     []*[]Node
	nextBlock uint32
	derefVar  map[uint32]uint32
}

// NewBuilder returns a builder for a shader of the given stage.
func NewBuilder(stage Stage) *Builder {
	b := &Builder{
		shader:   &Shader{Stage: stage},
		derefVar: make(map[uint32]uint32),
	}
	b.lists = []*[]Node{&b.shader.Entry.Body}
	return b
}

// Shader finishes and returns the shader. The builder must not be used
// afterwards.
func (b *Builder) Shader() *Shader {
	b.block()
	return b.shader
}

// Info returns the stage metadata for editing.
func (b *Builder) Info() *Info { return &b.shader.Info }

// AddVariable declares a module-scope variable and returns its index.
func (b *Builder) AddVariable(v Variable) uint32 {
	b.shader.Variables = append(b.shader.Variables, v)
	return uint32(len(b.shader.Variables) - 1)
}

// AddRegister declares a register and returns a source naming it.
func (b *Builder) AddRegister(bits, components uint8) Src {
	regs := &b.shader.Entry.Registers
	*regs = append(*regs, Register{BitSize: bits, Components: components})
	return Src{Index: uint32(len(*regs) - 1), Reg: true}
}

func (b *Builder) dest(bits, components uint8) Dest {
	d := Dest{Index: b.shader.Entry.NumSSA, BitSize: bits, Components: components}
	b.shader.Entry.NumSSA++
	return d
}

// block returns the open block of the current list, starting one if the
// list is empty or ends in an if or loop.
func (b *Builder) block() *Block {
	list := b.lists[len(b.lists)-1]
	if n := len(*list); n > 0 && (*list)[n-1].Block != nil {
		return (*list)[n-1].Block
	}
	blk := &Block{Index: b.nextBlock}
	b.nextBlock++
	*list = append(*list, Node{Block: blk})
	return blk
}

func (b *Builder) emit(in Instr) {
	blk := b.block()
	blk.Instrs = append(blk.Instrs, in)
}

// Const defines a constant from raw bit patterns, one per component.
func (b *Builder) Const(bits uint8, values ...uint64) Src {
	d := b.dest(bits, uint8(len(values)))
	b.emit(Instr{LoadConst: &LoadConst{Dest: d, Values: values}})
	return d.Src()
}

// ConstFloat32 defines a 32-bit float constant.
func (b *Builder) ConstFloat32(values ...float32) Src {
	raw := make([]uint64, len(values))
	for i, f := range values {
		raw[i] = uint64(math.Float32bits(f))
	}
	return b.Const(32, raw...)
}

// ConstUint32 defines a 32-bit integer constant.
func (b *Builder) ConstUint32(values ...uint32) Src {
	raw := make([]uint64, len(values))
	for i, v := range values {
		raw[i] = uint64(v)
	}
	return b.Const(32, raw...)
}

// ConstBool defines a 1-bit constant.
func (b *Builder) ConstBool(v bool) Src {
	if v {
		return b.Const(1, 1)
	}
	return b.Const(1, 0)
}

// Undef defines an undefined value.
func (b *Builder) Undef(bits, components uint8) Src {
	d := b.dest(bits, components)
	b.emit(Instr{Undef: &Undef{Dest: d}})
	return d.Src()
}

// ALU emits an ALU op with identity swizzles.
func (b *Builder) ALU(op ALUOp, bits, components uint8, srcs ...Src) Src {
	alu := make([]ALUSrc, len(srcs))
	for i, s := range srcs {
		alu[i] = ALUSrc{Index: s.Index, Reg: s.Reg}
	}
	return b.ALUSwizzle(op, bits, components, alu...)
}

// ALUSwizzle emits an ALU op with explicit operand swizzles.
func (b *Builder) ALUSwizzle(op ALUOp, bits, components uint8, srcs ...ALUSrc) Src {
	d := b.dest(bits, components)
	b.emit(Instr{ALU: &ALU{Op: op, Dest: d, Srcs: srcs}})
	return d.Src()
}

// StoreReg moves value into a register.
func (b *Builder) StoreReg(reg, value Src) {
	r := b.shader.Entry.Registers[reg.Index]
	d := Dest{Index: reg.Index, Reg: true, BitSize: r.BitSize, Components: r.Components}
	b.emit(Instr{ALU: &ALU{Op: OpMov, Dest: d, Srcs: []ALUSrc{{Index: value.Index, Reg: value.Reg}}}})
}

// DerefVar returns a pointer to variable v.
func (b *Builder) DerefVar(v uint32) Src {
	d := b.dest(32, 1)
	b.emit(Instr{Deref: &Deref{Kind: DerefVar, Dest: d, Var: v, Type: b.shader.Variables[v].Type}})
	b.derefVar[d.Index] = v
	return d.Src()
}

// DerefArray indexes an array pointer. elem is the element type.
func (b *Builder) DerefArray(parent, index Src, elem Type) Src {
	v := b.derefVar[parent.Index]
	d := b.dest(32, 1)
	b.emit(Instr{Deref: &Deref{Kind: DerefArray, Dest: d, Var: v, Parent: parent, Index: index, Type: elem}})
	b.derefVar[d.Index] = v
	return d.Src()
}

// DerefStruct selects a struct member. t is the member type.
func (b *Builder) DerefStruct(parent Src, field uint32, t Type) Src {
	v := b.derefVar[parent.Index]
	d := b.dest(32, 1)
	b.emit(Instr{Deref: &Deref{Kind: DerefStruct, Dest: d, Var: v, Parent: parent, Field: field, Type: t}})
	b.derefVar[d.Index] = v
	return d.Src()
}

// Load reads through a deref.
func (b *Builder) Load(deref Src, bits, components uint8) Src {
	return b.Intrinsic(IntrLoadDeref, bits, components, deref)
}

// Store writes the components of value selected by writeMask through a
// deref.
func (b *Builder) Store(deref, value Src, writeMask uint8) {
	intr := b.IntrinsicVoid(IntrStoreDeref, deref, value)
	intr.WriteMask = writeMask
}

// LoadVar reads a whole scalar or vector variable.
func (b *Builder) LoadVar(v uint32) Src {
	t := b.shader.Variables[v].Type
	return b.Load(b.DerefVar(v), t.BitSize(), t.NumComponents())
}

// StoreVar writes every component of a scalar or vector variable.
func (b *Builder) StoreVar(v uint32, value Src) {
	t := b.shader.Variables[v].Type
	b.Store(b.DerefVar(v), value, uint8(1<<t.NumComponents()-1))
}

// Intrinsic emits an intrinsic that defines a value.
func (b *Builder) Intrinsic(op IntrinsicOp, bits, components uint8, srcs ...Src) Src {
	d := b.dest(bits, components)
	b.emit(Instr{Intrinsic: &Intrinsic{Op: op, Dest: &d, Srcs: srcs}})
	return d.Src()
}

// IntrinsicVoid emits an intrinsic without a result. The returned
// intrinsic may be edited to set its write mask, stream or scope.
func (b *Builder) IntrinsicVoid(op IntrinsicOp, srcs ...Src) *Intrinsic {
	intr := &Intrinsic{Op: op, Srcs: srcs}
	b.emit(Instr{Intrinsic: intr})
	return intr
}

// Atomic emits an atomic intrinsic.
func (b *Builder) Atomic(op IntrinsicOp, aop AtomicOp, bits uint8, srcs ...Src) Src {
	d := b.dest(bits, 1)
	b.emit(Instr{Intrinsic: &Intrinsic{Op: op, Atomic: aop, Dest: &d, Srcs: srcs}})
	return d.Src()
}

// Tex emits a texture instruction. The destination index is assigned by
// the builder; its size comes from t.Dest.
func (b *Builder) Tex(t Tex) Src {
	t.Dest = b.dest(t.Dest.BitSize, t.Dest.Components)
	b.emit(Instr{Tex: &t})
	return t.Dest.Src()
}

// Discard kills the invocation.
func (b *Builder) Discard() { b.IntrinsicVoid(IntrDiscard) }

// Break leaves the innermost loop.
func (b *Builder) Break() { b.emit(Instr{Jump: &Jump{Kind: JumpBreak}}) }

// Continue jumps to the next iteration of the innermost loop.
func (b *Builder) Continue() { b.emit(Instr{Jump: &Jump{Kind: JumpContinue}}) }

// If emits a selection. els may be nil.
func (b *Builder) If(cond Src, then, els func()) {
	b.block()
	node := &If{Condition: cond}
	b.appendNode(Node{If: node})
	b.nested(&node.Then, then)
	if els != nil {
		b.nested(&node.Else, els)
	}
	b.block()
}

// Loop emits a loop; body must contain a break.
func (b *Builder) Loop(body func()) {
	b.block()
	node := &Loop{}
	b.appendNode(Node{Loop: node})
	b.nested(&node.Body, body)
	b.block()
}

func (b *Builder) appendNode(n Node) {
	list := b.lists[len(b.lists)-1]
	*list = append(*list, n)
}

func (b *Builder) nested(list *[]Node, fn func()) {
	b.lists = append(b.lists, list)
	b.block()
	fn()
	b.lists = b.lists[:len(b.lists)-1]
}
