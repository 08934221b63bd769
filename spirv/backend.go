package spirv

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/gogpu/spvgen/ir"
)

// Backend translates IR shaders to SPIR-V.
//
// A Backend only holds options. Every Compile call runs in a private
// session, so independent shaders may be compiled concurrently through
// the same Backend.
type Backend struct {
	options Options
}

// NewBackend creates a new SPIR-V backend.
func NewBackend(options Options) *Backend {
	return &Backend{options: options}
}

// Compile translates one shader stage to a SPIR-V binary.
//
// Unsupported constructs and malformed IR are reported as *Error; no
// partial module is returned.
func (b *Backend) Compile(shader *ir.Shader) (out []byte, err error) {
	if shader == nil {
		return nil, malformedf("nil shader")
	}
	s := newSession(shader, b.options)
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			s.log.Debug("compile failed", "error", e)
			out, err = nil, e
		}
	}()
	return s.compile(), nil
}

// value is an emitted SSA value or register read. kind is the
// interpretation of the id's SPIR-V type; one-bit values are always
// bool.
type value struct {
	id    uint32
	bits  uint8
	comps uint8
	kind  ir.BaseType
}

// pointer is the result of a deref.
type pointer struct {
	id    uint32
	class StorageClass
	typ   ir.Type
	v     uint32
}

type bufferKey struct {
	ssbo  bool
	block uint32
	bits  uint8
}

// session is the state of one compilation.
type session struct {
	shader *ir.Shader
	opts   Options
	log    *slog.Logger

	m     *ModuleBuilder
	types *Interner

	glsl  uint32
	iface []uint32

	values []value
	consts map[uint32][]uint64
	ptrs   map[uint32]pointer
	regs   []uint32

	vars           map[uint32]uint32
	imageTypes     map[uint32]uint32
	buffers        map[bufferKey]uint32
	builtins       map[BuiltIn]builtinBinding
	shared         uint32
	sampleMaskType uint32
	workgroupSize  uint32

	labels    map[uint32]uint32
	blockOpen bool
	loopBreak uint32
	loopCont  uint32

	xfb []xfbTarget
}

func newSession(shader *ir.Shader, opts Options) *session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := NewModuleBuilder(opts.Version)
	return &session{
		shader:     shader,
		opts:       opts,
		log:        logger.With("session", uuid.NewString(), "stage", shader.Stage.String()),
		m:          m,
		types:      NewInterner(m),
		values:     make([]value, shader.Entry.NumSSA),
		consts:     make(map[uint32][]uint64),
		ptrs:       make(map[uint32]pointer),
		vars:       make(map[uint32]uint32),
		imageTypes: make(map[uint32]uint32),
		buffers:    make(map[bufferKey]uint32),
		builtins:   make(map[BuiltIn]builtinBinding),
		labels:     make(map[uint32]uint32),
	}
}

func (s *session) compile() []byte {
	s.log.Debug("compiling shader", "name", s.shader.Name, "version", s.opts.Version.String())

	// 1. Capabilities every module and this stage need
	s.capability(CapabilityShader)
	s.m.AddSource(0, 0)
	s.stageCapabilities()

	// 2. Module-scope variables
	s.declareVariables()
	s.declareXfbOutputs()

	// 3. Entry function
	void := s.types.Void()
	fn := s.m.AddFunction(s.types.Function(void), void, FunctionControlNone)
	s.m.AddName(fn, "main")
	s.emitFunctionBody()
	if s.stage() == ir.StageVertex || s.stage() == ir.StageTessEval {
		s.emitXfbOutputs()
	}
	s.m.AddReturn()
	s.m.AddFunctionEnd()

	// 4. Memory model, execution modes and the entry point
	s.m.SetMemoryModel(s.addressingModel(), MemoryModelGLSL450)
	s.executionModes(fn)
	s.m.AddEntryPoint(executionModel(s.stage()), fn, "main", s.iface)

	words := s.m.Build()
	s.log.Debug("compiled shader", "words", len(words)/4, "bound", s.m.Bound(),
		"capabilities", len(s.m.Capabilities()))
	return words
}

func (s *session) stage() ir.Stage { return s.shader.Stage }

// capability requests c, logging the first request.
func (s *session) capability(c Capability) {
	if !s.m.HasCapability(c) {
		s.log.Debug("capability", "id", uint32(c))
	}
	s.m.AddCapability(c)
}

// extension requests an extension with the capability it enables.
func (s *session) extension(name string, c Capability) {
	s.m.AddExtension(name)
	s.capability(c)
}

// name emits OpName when debug names are enabled.
func (s *session) name(id uint32, name string) {
	if s.opts.Debug && name != "" {
		s.m.AddName(id, name)
	}
}

// addInterface records a global variable on the entry point. Before
// SPIR-V 1.4 only Input and Output variables are listed.
func (s *session) addInterface(id uint32, class StorageClass) {
	if class == StorageClassInput || class == StorageClassOutput || s.opts.Version.AtLeast(Version1_4) {
		s.iface = append(s.iface, id)
	}
}

func (s *session) glslExt() uint32 {
	if s.glsl == 0 {
		s.glsl = s.m.AddExtInstImport("GLSL.std.450")
	}
	return s.glsl
}

func (s *session) extInst(resultType, inst uint32, operands ...uint32) uint32 {
	return s.m.AddExtInst(resultType, s.glslExt(), inst, operands...)
}

func (s *session) typeOf(kind ir.BaseType, bits, comps uint8) uint32 {
	return s.types.Value(kind, bits, comps)
}

func (s *session) valueType(v value) uint32 {
	return s.typeOf(v.kind, v.bits, v.comps)
}

// as reinterprets v as kind. One-bit values are bool and never change.
func (s *session) as(v value, kind ir.BaseType) value {
	if v.bits == 1 || v.kind == kind {
		return v
	}
	if kind == ir.BaseBool {
		panic(malformedf("%d-bit value used as bool", v.bits))
	}
	out := value{bits: v.bits, comps: v.comps, kind: kind}
	out.id = s.m.AddUnaryOp(OpBitcast, s.valueType(out), v.id)
	return out
}

// src returns the value of an SSA value or the current value of a
// register.
func (s *session) src(src ir.Src) value {
	if src.Reg {
		return s.loadReg(src.Index)
	}
	if src.Index >= uint32(len(s.values)) || s.values[src.Index].id == 0 {
		panic(malformedf("ssa %d used before definition", src.Index))
	}
	return s.values[src.Index]
}

// srcAs fetches src and reinterprets it as kind.
func (s *session) srcAs(src ir.Src, kind ir.BaseType) value {
	return s.as(s.src(src), kind)
}

// def records the value of dest: SSA values are remembered, registers
// are stored as uint vectors.
func (s *session) def(dest ir.Dest, id uint32, kind ir.BaseType) {
	if dest.BitSize == 1 {
		kind = ir.BaseBool
	}
	v := value{id: id, bits: dest.BitSize, comps: dest.Components, kind: kind}
	if v.comps == 0 {
		v.comps = 1
	}
	if dest.Reg {
		s.storeReg(dest.Index, v)
		return
	}
	if dest.Index >= uint32(len(s.values)) {
		panic(malformedf("ssa %d out of range", dest.Index))
	}
	s.values[dest.Index] = v
}

func (s *session) register(index uint32) ir.Register {
	regs := s.shader.Entry.Registers
	if index >= uint32(len(regs)) {
		panic(malformedf("register %d out of range", index))
	}
	return regs[index]
}

func (s *session) regType(r ir.Register) uint32 {
	if r.BitSize == 1 {
		return s.types.BVec(r.Components)
	}
	return s.types.UVec(r.BitSize, r.Components)
}

func (s *session) loadReg(index uint32) value {
	r := s.register(index)
	kind := ir.BaseUint
	if r.BitSize == 1 {
		kind = ir.BaseBool
	}
	id := s.m.AddLoad(s.regType(r), s.regs[index])
	return value{id: id, bits: r.BitSize, comps: r.Components, kind: kind}
}

func (s *session) storeReg(index uint32, v value) {
	s.register(index)
	v = s.as(v, ir.BaseUint)
	s.m.AddStore(s.regs[index], v.id)
}

// constant returns the raw component values of src when it is a
// constant SSA value.
func (s *session) constant(src ir.Src) ([]uint64, bool) {
	if src.Reg {
		return nil, false
	}
	c, ok := s.consts[src.Index]
	return c, ok
}

func (s *session) constUint(src ir.Src, what string) uint32 {
	c, ok := s.constant(src)
	if !ok || len(c) != 1 {
		panic(unsupportedf("non-constant %s", what))
	}
	return uint32(c[0])
}

func (s *session) uintConst(v uint32) uint32 {
	return s.types.ConstUint(32, uint64(v))
}

func (s *session) intConst(v int32) uint32 {
	return s.types.ConstInt(32, uint64(uint32(v)))
}

func (s *session) emitLoadConst(lc *ir.LoadConst) {
	bits := lc.Dest.BitSize
	kind := ir.BaseUint
	if bits == 1 {
		kind = ir.BaseBool
	}
	if len(lc.Values) == 0 || len(lc.Values) != int(max(lc.Dest.Components, 1)) {
		panic(malformedf("constant with %d values for %d components", len(lc.Values), lc.Dest.Components))
	}
	id := s.types.ConstValue(kind, bits, lc.Values)
	if !lc.Dest.Reg {
		s.consts[lc.Dest.Index] = lc.Values
	}
	s.def(lc.Dest, id, kind)
}

func (s *session) emitUndef(u *ir.Undef) {
	kind := ir.BaseUint
	if u.Dest.BitSize == 1 {
		kind = ir.BaseBool
	}
	s.def(u.Dest, s.types.Undef(s.typeOf(kind, u.Dest.BitSize, max(u.Dest.Components, 1))), kind)
}

func (s *session) emitInstr(in *ir.Instr) {
	switch {
	case in.ALU != nil:
		s.emitALU(in.ALU)
	case in.Intrinsic != nil:
		s.emitIntrinsic(in.Intrinsic)
	case in.LoadConst != nil:
		s.emitLoadConst(in.LoadConst)
	case in.Undef != nil:
		s.emitUndef(in.Undef)
	case in.Tex != nil:
		s.emitTex(in.Tex)
	case in.Jump != nil:
		s.emitJump(in.Jump)
	case in.Deref != nil:
		s.emitDeref(in.Deref)
	default:
		panic(malformedf("empty instruction"))
	}
}

func executionModel(stage ir.Stage) ExecutionModel {
	switch stage {
	case ir.StageVertex:
		return ExecutionModelVertex
	case ir.StageTessCtrl:
		return ExecutionModelTessellationControl
	case ir.StageTessEval:
		return ExecutionModelTessellationEvaluation
	case ir.StageGeometry:
		return ExecutionModelGeometry
	case ir.StageFragment:
		return ExecutionModelFragment
	case ir.StageCompute:
		return ExecutionModelGLCompute
	}
	panic(malformedf("unknown stage %d", stage))
}
