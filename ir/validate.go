package ir

import (
	"fmt"
	"strings"
)

// ValidationError represents a validation error.
type ValidationError struct {
	Message string
	// Optional context
	Block int
	SSA   *uint32
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Block >= 0 {
		if e.SSA != nil {
			return fmt.Sprintf("block %d, ssa %d: %s", e.Block, *e.SSA, e.Message)
		}
		return fmt.Sprintf("block %d: %s", e.Block, e.Message)
	}
	return e.Message
}

// ValidationErrors collects every problem found in one shader.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("ir: %d validation error(s): %s", len(e), strings.Join(msgs, "; "))
}

// Validator validates IR shaders.
type Validator struct {
	shader *Shader
	errors []ValidationError

	block     int
	loopDepth int
	defined   []bool
	blocks    map[uint32]bool
}

// Validate checks the shader for the structural guarantees the backend
// relies on. Returns validation errors if any, or nil if the shader is
// valid.
func Validate(shader *Shader) ([]ValidationError, error) {
	if shader == nil {
		return nil, fmt.Errorf("shader is nil")
	}

	v := &Validator{
		shader:  shader,
		block:   -1,
		defined: make([]bool, shader.Entry.NumSSA),
		blocks:  make(map[uint32]bool),
	}

	v.validateVariables()
	v.validateRegisters()
	v.validateList(shader.Entry.Body, "function body")

	if len(v.errors) > 0 {
		return v.errors, nil
	}
	return nil, nil
}

func (v *Validator) validateVariables() {
	for i := range v.shader.Variables {
		vr := &v.shader.Variables[i]
		bare := vr.Type.WithoutArray()
		switch vr.Mode {
		case ModeUniform, ModeImage, ModeSampler:
			if bare.Base != BaseImage || bare.Image == nil {
				v.addError(fmt.Sprintf("variable %d (%s): %s variable needs an image type", i, vr.Name, vr.Mode))
			}
		case ModePushConst:
			if vr.Type.Base != BaseStruct {
				v.addError(fmt.Sprintf("variable %d (%s): push constants must be a struct", i, vr.Name))
			}
		case ModeInput, ModeOutput:
			if bare.Base == BaseImage || bare.Base == BaseStruct {
				v.addError(fmt.Sprintf("variable %d (%s): %s variable has type %s", i, vr.Name, vr.Mode, bare.Base))
			}
		}
	}
}

func (v *Validator) validateRegisters() {
	for i, r := range v.shader.Entry.Registers {
		if !validBitSize(r.BitSize) {
			v.addError(fmt.Sprintf("register %d: bit size %d is not 1, 8, 16, 32 or 64", i, r.BitSize))
		}
		if r.Components == 0 || r.Components > 16 {
			v.addError(fmt.Sprintf("register %d: component count %d out of range", i, r.Components))
		}
	}
}

func validBitSize(bits uint8) bool {
	switch bits {
	case 1, 8, 16, 32, 64:
		return true
	}
	return false
}

func (v *Validator) validateList(list []Node, what string) {
	if len(list) == 0 {
		return
	}
	if list[0].Block == nil {
		v.addError(fmt.Sprintf("%s does not start with a block", what))
	}
	for i := range list {
		n := &list[i]
		set := 0
		for _, p := range []bool{n.Block != nil, n.If != nil, n.Loop != nil} {
			if p {
				set++
			}
		}
		if set != 1 {
			v.addError(fmt.Sprintf("%s: node %d sets %d kinds", what, i, set))
			continue
		}
		if (n.If != nil || n.Loop != nil) && (i+1 >= len(list) || list[i+1].Block == nil) {
			v.addError(fmt.Sprintf("%s: node %d is not followed by a block", what, i))
		}
		switch {
		case n.Block != nil:
			v.validateBlock(n.Block)
		case n.If != nil:
			v.useSrc(n.If.Condition)
			v.validateList(n.If.Then, "then list")
			v.validateList(n.If.Else, "else list")
		case n.Loop != nil:
			v.loopDepth++
			v.validateList(n.Loop.Body, "loop body")
			v.loopDepth--
		}
	}
}

func (v *Validator) validateBlock(b *Block) {
	if v.blocks[b.Index] {
		v.addError(fmt.Sprintf("duplicate block index %d", b.Index))
	}
	v.blocks[b.Index] = true
	v.block = int(b.Index)
	defer func() { v.block = -1 }()

	for i := range b.Instrs {
		in := &b.Instrs[i]
		v.validateInstr(in)
		if in.Jump != nil && i != len(b.Instrs)-1 {
			v.addErrorInBlock("jump is not the last instruction")
		}
	}
}

func (v *Validator) validateInstr(in *Instr) {
	switch {
	case in.ALU != nil:
		v.validateALU(in.ALU)
	case in.Intrinsic != nil:
		v.validateIntrinsic(in.Intrinsic)
	case in.LoadConst != nil:
		if len(in.LoadConst.Values) != int(in.LoadConst.Dest.Components) {
			v.addErrorInBlock(fmt.Sprintf("load_const has %d values for %d components",
				len(in.LoadConst.Values), in.LoadConst.Dest.Components))
		}
	case in.Tex != nil:
		for _, s := range in.Tex.Srcs {
			v.useSrc(s.Src())
		}
		if _, ok := in.Tex.Src(TexSrcCoord); !ok && texNeedsCoord(in.Tex.Op) {
			v.addErrorInBlock(fmt.Sprintf("tex %s has no coordinate", in.Tex.Op))
		}
	case in.Jump != nil:
		if v.loopDepth == 0 {
			v.addErrorInBlock(fmt.Sprintf("%s outside of a loop", in.Jump.Kind))
		}
	case in.Deref != nil:
		d := in.Deref
		if int(d.Var) >= len(v.shader.Variables) {
			v.addErrorInBlock(fmt.Sprintf("deref of variable %d does not exist", d.Var))
		}
		switch d.Kind {
		case DerefVar:
		case DerefArray:
			v.useSrc(d.Parent)
			v.useSrc(d.Index)
		case DerefStruct:
			v.useSrc(d.Parent)
		default:
			v.addErrorInBlock(fmt.Sprintf("unknown deref kind %q", d.Kind))
		}
	case in.Undef == nil:
		v.addErrorInBlock("empty instruction")
		return
	}
	if d := in.Dest(); d != nil {
		v.define(*d)
	}
}

func texNeedsCoord(op TexOp) bool {
	switch op {
	case TexSize, TexTextureSamples, TexQueryLevels:
		return false
	}
	return true
}

func (v *Validator) validateALU(alu *ALU) {
	info, ok := alu.Op.Info()
	if !ok {
		v.addErrorInBlock(fmt.Sprintf("unknown alu op %q", alu.Op))
		return
	}
	if len(alu.Srcs) != info.NumInputs() {
		v.addErrorInBlock(fmt.Sprintf("%s takes %d sources, got %d", alu.Op, info.NumInputs(), len(alu.Srcs)))
		return
	}
	for i, s := range alu.Srcs {
		v.useSrc(s.Src())
		want := int(info.InputSizes[i])
		if want == 0 {
			want = int(alu.Dest.Components)
		}
		if s.Swizzle != nil && len(s.Swizzle) < want {
			v.addErrorInBlock(fmt.Sprintf("%s source %d swizzle has %d of %d components", alu.Op, i, len(s.Swizzle), want))
		}
	}
}

func (v *Validator) validateIntrinsic(intr *Intrinsic) {
	info, ok := intr.Op.Info()
	if !ok {
		v.addErrorInBlock(fmt.Sprintf("unknown intrinsic %q", intr.Op))
		return
	}
	n := len(intr.Srcs)
	if n != info.NumSrcs && !(intr.Op.IsAtomic() && n == info.NumSrcs+1) {
		v.addErrorInBlock(fmt.Sprintf("%s takes %d sources, got %d", intr.Op, info.NumSrcs, n))
	}
	if info.HasDest != (intr.Dest != nil) {
		v.addErrorInBlock(fmt.Sprintf("%s destination mismatch", intr.Op))
	}
	if intr.Op.IsAtomic() && intr.Atomic == "" {
		v.addErrorInBlock(fmt.Sprintf("%s has no atomic op", intr.Op))
	}
	for _, s := range intr.Srcs {
		v.useSrc(s)
	}
}

func (v *Validator) define(d Dest) {
	if !validBitSize(d.BitSize) {
		v.addErrorInBlock(fmt.Sprintf("destination bit size %d is invalid", d.BitSize))
	}
	if d.Reg {
		if int(d.Index) >= len(v.shader.Entry.Registers) {
			v.addErrorInBlock(fmt.Sprintf("register %d does not exist", d.Index))
		}
		return
	}
	if d.Index >= uint32(len(v.defined)) {
		v.addErrorInSSA(d.Index, "ssa index out of range")
		return
	}
	if v.defined[d.Index] {
		v.addErrorInSSA(d.Index, "ssa value defined twice")
	}
	v.defined[d.Index] = true
}

// useSrc checks that s refers to a defined value.
func (v *Validator) useSrc(s Src) {
	if s.Reg {
		if int(s.Index) >= len(v.shader.Entry.Registers) {
			v.addErrorInBlock(fmt.Sprintf("register %d does not exist", s.Index))
		}
		return
	}
	if s.Index >= uint32(len(v.defined)) || !v.defined[s.Index] {
		v.addErrorInSSA(s.Index, "ssa value used before definition")
	}
}

func (v *Validator) addError(msg string) {
	v.errors = append(v.errors, ValidationError{
		Message: msg,
		Block:   -1,
	})
}

func (v *Validator) addErrorInBlock(msg string) {
	v.errors = append(v.errors, ValidationError{
		Message: msg,
		Block:   v.block,
	})
}

func (v *Validator) addErrorInSSA(index uint32, msg string) {
	v.errors = append(v.errors, ValidationError{
		Message: msg,
		Block:   v.block,
		SSA:     &index,
	})
}
