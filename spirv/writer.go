package spirv

import (
	"encoding/binary"
	"fmt"

	"fortio.org/safecast"
)

// Instruction represents a SPIR-V instruction.
type Instruction struct {
	Opcode OpCode
	Words  []uint32 // result type ID, result ID, operands
}

// InstructionBuilder builds SPIR-V instructions.
type InstructionBuilder struct {
	words []uint32
}

// NewInstructionBuilder creates a new instruction builder.
func NewInstructionBuilder() *InstructionBuilder {
	return &InstructionBuilder{
		words: make([]uint32, 0, 8),
	}
}

// AddWord adds a word to the instruction.
func (b *InstructionBuilder) AddWord(word uint32) {
	b.words = append(b.words, word)
}

// AddWords adds several words to the instruction.
func (b *InstructionBuilder) AddWords(words ...uint32) {
	b.words = append(b.words, words...)
}

// AddString adds a null-terminated UTF-8 string padded to a word boundary.
func (b *InstructionBuilder) AddString(s string) {
	bytes := []byte(s)
	bytes = append(bytes, 0)
	for len(bytes)%4 != 0 {
		bytes = append(bytes, 0)
	}

	for i := 0; i < len(bytes); i += 4 {
		word := uint32(bytes[i]) |
			uint32(bytes[i+1])<<8 |
			uint32(bytes[i+2])<<16 |
			uint32(bytes[i+3])<<24
		b.words = append(b.words, word)
	}
}

// Build builds the instruction with the given opcode.
func (b *InstructionBuilder) Build(opcode OpCode) Instruction {
	return Instruction{
		Opcode: opcode,
		Words:  b.words,
	}
}

// Encode encodes the instruction to binary.
func (i Instruction) Encode() []uint32 {
	wordCount := instructionWords(len(i.Words) + 1) // +1 for opcode word
	result := make([]uint32, 0, wordCount)
	result = append(result, (wordCount<<16)|uint32(i.Opcode))
	result = append(result, i.Words...)
	return result
}

func instructionWords(n int) uint32 {
	count, err := safecast.Conv[uint32](n)
	if err != nil || count > 0xFFFF {
		panic(internalErrorf("instruction of %d words exceeds the encodable size", n))
	}
	return count
}

// ModuleBuilder builds complete SPIR-V modules.
//
// Instructions are appended to their logical-layout section in call order
// and never reordered. Capabilities and extensions are deduplicated and
// kept in first-request order.
type ModuleBuilder struct {
	// Header
	version   Version
	generator uint32
	bound     uint32 // max ID + 1
	schema    uint32

	// Sections in logical layout order
	capabilities   []Instruction
	extensions     []Instruction
	extInstImports []Instruction
	memoryModel    *Instruction
	entryPoints    []Instruction
	executionModes []Instruction
	debugStrings   []Instruction // OpString, OpSource
	debugNames     []Instruction // OpName, OpMemberName
	annotations    []Instruction // OpDecorate, OpMemberDecorate
	types          []Instruction // OpType*, OpConstant*, OpUndef
	globalVars     []Instruction // OpVariable (global)
	functions      []Instruction // OpFunction...OpFunctionEnd

	capabilitySet map[Capability]struct{}
	capabilityLog []Capability
	extensionSet  map[string]struct{}

	// ID allocation
	nextID uint32
}

// NewModuleBuilder creates a new SPIR-V module builder.
func NewModuleBuilder(version Version) *ModuleBuilder {
	return &ModuleBuilder{
		version:       version,
		generator:     GeneratorID,
		schema:        0,
		capabilitySet: make(map[Capability]struct{}),
		extensionSet:  make(map[string]struct{}),
		nextID:        1,
	}
}

// Version returns the target version.
func (b *ModuleBuilder) Version() Version {
	return b.version
}

// AllocID allocates a new SPIR-V ID.
func (b *ModuleBuilder) AllocID() uint32 {
	id := b.nextID
	b.nextID++
	return id
}

// Bound returns the current id bound.
func (b *ModuleBuilder) Bound() uint32 {
	return b.nextID
}

// AddCapability requests a capability. Repeated requests are ignored.
func (b *ModuleBuilder) AddCapability(capability Capability) {
	if _, ok := b.capabilitySet[capability]; ok {
		return
	}
	b.capabilitySet[capability] = struct{}{}
	b.capabilityLog = append(b.capabilityLog, capability)
	builder := NewInstructionBuilder()
	builder.AddWord(uint32(capability))
	b.capabilities = append(b.capabilities, builder.Build(OpCapability))
}

// HasCapability reports whether capability was requested.
func (b *ModuleBuilder) HasCapability(capability Capability) bool {
	_, ok := b.capabilitySet[capability]
	return ok
}

// Capabilities returns the requested capabilities in request order.
func (b *ModuleBuilder) Capabilities() []Capability {
	return append([]Capability(nil), b.capabilityLog...)
}

// AddExtension requests an extension. Repeated requests are ignored.
func (b *ModuleBuilder) AddExtension(name string) {
	if _, ok := b.extensionSet[name]; ok {
		return
	}
	b.extensionSet[name] = struct{}{}
	builder := NewInstructionBuilder()
	builder.AddString(name)
	b.extensions = append(b.extensions, builder.Build(OpExtension))
}

// AddExtInstImport adds OpExtInstImport and returns the set id.
func (b *ModuleBuilder) AddExtInstImport(name string) uint32 {
	id := b.AllocID()
	builder := NewInstructionBuilder()
	builder.AddWord(id)
	builder.AddString(name)
	b.extInstImports = append(b.extInstImports, builder.Build(OpExtInstImport))
	return id
}

// SetMemoryModel sets the memory model.
func (b *ModuleBuilder) SetMemoryModel(addressing AddressingModel, memory MemoryModel) {
	builder := NewInstructionBuilder()
	builder.AddWord(uint32(addressing))
	builder.AddWord(uint32(memory))
	inst := builder.Build(OpMemoryModel)
	b.memoryModel = &inst
}

// AddEntryPoint adds an entry point.
func (b *ModuleBuilder) AddEntryPoint(execModel ExecutionModel, funcID uint32, name string, interfaces []uint32) {
	builder := NewInstructionBuilder()
	builder.AddWord(uint32(execModel))
	builder.AddWord(funcID)
	builder.AddString(name)
	builder.AddWords(interfaces...)
	b.entryPoints = append(b.entryPoints, builder.Build(OpEntryPoint))
}

// AddExecutionMode adds an execution mode.
func (b *ModuleBuilder) AddExecutionMode(entryPoint uint32, mode ExecutionMode, params ...uint32) {
	builder := NewInstructionBuilder()
	builder.AddWord(entryPoint)
	builder.AddWord(uint32(mode))
	builder.AddWords(params...)
	b.executionModes = append(b.executionModes, builder.Build(OpExecutionMode))
}

// AddSource adds OpSource for the given language and version.
func (b *ModuleBuilder) AddSource(language, version uint32) {
	builder := NewInstructionBuilder()
	builder.AddWord(language)
	builder.AddWord(version)
	b.debugStrings = append(b.debugStrings, builder.Build(OpSource))
}

// AddName adds a debug name.
func (b *ModuleBuilder) AddName(id uint32, name string) {
	builder := NewInstructionBuilder()
	builder.AddWord(id)
	builder.AddString(name)
	b.debugNames = append(b.debugNames, builder.Build(OpName))
}

// AddMemberName adds a debug name for a struct member.
func (b *ModuleBuilder) AddMemberName(structID, member uint32, name string) {
	builder := NewInstructionBuilder()
	builder.AddWord(structID)
	builder.AddWord(member)
	builder.AddString(name)
	b.debugNames = append(b.debugNames, builder.Build(OpMemberName))
}

// AddDecorate adds a decoration.
func (b *ModuleBuilder) AddDecorate(id uint32, decoration Decoration, params ...uint32) {
	builder := NewInstructionBuilder()
	builder.AddWord(id)
	builder.AddWord(uint32(decoration))
	builder.AddWords(params...)
	b.annotations = append(b.annotations, builder.Build(OpDecorate))
}

// AddMemberDecorate adds a member decoration.
func (b *ModuleBuilder) AddMemberDecorate(structID, member uint32, decoration Decoration, params ...uint32) {
	builder := NewInstructionBuilder()
	builder.AddWord(structID)
	builder.AddWord(member)
	builder.AddWord(uint32(decoration))
	builder.AddWords(params...)
	b.annotations = append(b.annotations, builder.Build(OpMemberDecorate))
}

// AddType adds a type declaration with a fresh result id. operands
// follow the result id.
func (b *ModuleBuilder) AddType(opcode OpCode, operands ...uint32) uint32 {
	id := b.AllocID()
	builder := NewInstructionBuilder()
	builder.AddWord(id)
	builder.AddWords(operands...)
	b.types = append(b.types, builder.Build(opcode))
	return id
}

// AddConstant adds a constant-family instruction (OpConstant,
// OpConstantComposite, OpSpecConstant, ...) of the given type.
func (b *ModuleBuilder) AddConstant(opcode OpCode, typeID uint32, operands ...uint32) uint32 {
	id := b.AllocID()
	builder := NewInstructionBuilder()
	builder.AddWord(typeID)
	builder.AddWord(id)
	builder.AddWords(operands...)
	b.types = append(b.types, builder.Build(opcode))
	return id
}

// AddVariable adds a module-scope variable.
func (b *ModuleBuilder) AddVariable(pointerType uint32, storageClass StorageClass) uint32 {
	id := b.AllocID()
	builder := NewInstructionBuilder()
	builder.AddWord(pointerType)
	builder.AddWord(id)
	builder.AddWord(uint32(storageClass))
	b.globalVars = append(b.globalVars, builder.Build(OpVariable))
	return id
}

// AddLocalVariable adds a Function-storage variable at the current
// position of the function body. It must be called from the first block.
func (b *ModuleBuilder) AddLocalVariable(pointerType uint32) uint32 {
	id := b.AllocID()
	builder := NewInstructionBuilder()
	builder.AddWord(pointerType)
	builder.AddWord(id)
	builder.AddWord(uint32(StorageClassFunction))
	b.functions = append(b.functions, builder.Build(OpVariable))
	return id
}

// AddFunction begins a function definition.
func (b *ModuleBuilder) AddFunction(funcType uint32, returnType uint32, control FunctionControl) uint32 {
	id := b.AllocID()
	builder := NewInstructionBuilder()
	builder.AddWord(returnType)
	builder.AddWord(id)
	builder.AddWord(uint32(control))
	builder.AddWord(funcType)
	b.functions = append(b.functions, builder.Build(OpFunction))
	return id
}

// AddLabel adds OpLabel with a previously allocated id.
func (b *ModuleBuilder) AddLabel(id uint32) {
	builder := NewInstructionBuilder()
	builder.AddWord(id)
	b.functions = append(b.functions, builder.Build(OpLabel))
}

// AddReturn adds OpReturn.
func (b *ModuleBuilder) AddReturn() {
	b.functions = append(b.functions, NewInstructionBuilder().Build(OpReturn))
}

// AddFunctionEnd adds OpFunctionEnd.
func (b *ModuleBuilder) AddFunctionEnd() {
	b.functions = append(b.functions, NewInstructionBuilder().Build(OpFunctionEnd))
}

// AddOp adds a function-body instruction that defines a result.
func (b *ModuleBuilder) AddOp(opcode OpCode, resultType uint32, operands ...uint32) uint32 {
	id := b.AllocID()
	builder := NewInstructionBuilder()
	builder.AddWord(resultType)
	builder.AddWord(id)
	builder.AddWords(operands...)
	b.functions = append(b.functions, builder.Build(opcode))
	return id
}

// AddOpVoid adds a function-body instruction without a result.
func (b *ModuleBuilder) AddOpVoid(opcode OpCode, operands ...uint32) {
	builder := NewInstructionBuilder()
	builder.AddWords(operands...)
	b.functions = append(b.functions, builder.Build(opcode))
}

// AddBinaryOp adds a binary operation.
func (b *ModuleBuilder) AddBinaryOp(opcode OpCode, resultType uint32, left uint32, right uint32) uint32 {
	return b.AddOp(opcode, resultType, left, right)
}

// AddUnaryOp adds a unary operation.
func (b *ModuleBuilder) AddUnaryOp(opcode OpCode, resultType uint32, operand uint32) uint32 {
	return b.AddOp(opcode, resultType, operand)
}

// AddLoad adds OpLoad.
func (b *ModuleBuilder) AddLoad(resultType uint32, pointer uint32) uint32 {
	return b.AddOp(OpLoad, resultType, pointer)
}

// AddStore adds OpStore.
func (b *ModuleBuilder) AddStore(pointer uint32, value uint32) {
	b.AddOpVoid(OpStore, pointer, value)
}

// AddAccessChain adds OpAccessChain.
func (b *ModuleBuilder) AddAccessChain(resultType uint32, base uint32, indices ...uint32) uint32 {
	return b.AddOp(OpAccessChain, resultType, append([]uint32{base}, indices...)...)
}

// AddCompositeConstruct adds OpCompositeConstruct.
func (b *ModuleBuilder) AddCompositeConstruct(resultType uint32, constituents ...uint32) uint32 {
	return b.AddOp(OpCompositeConstruct, resultType, constituents...)
}

// AddCompositeExtract adds OpCompositeExtract.
func (b *ModuleBuilder) AddCompositeExtract(resultType uint32, composite uint32, indices ...uint32) uint32 {
	return b.AddOp(OpCompositeExtract, resultType, append([]uint32{composite}, indices...)...)
}

// AddCompositeInsert adds OpCompositeInsert.
func (b *ModuleBuilder) AddCompositeInsert(resultType uint32, object, composite uint32, indices ...uint32) uint32 {
	return b.AddOp(OpCompositeInsert, resultType, append([]uint32{object, composite}, indices...)...)
}

// AddVectorShuffle adds OpVectorShuffle.
func (b *ModuleBuilder) AddVectorShuffle(resultType uint32, vec1 uint32, vec2 uint32, components []uint32) uint32 {
	return b.AddOp(OpVectorShuffle, resultType, append([]uint32{vec1, vec2}, components...)...)
}

// AddSelect adds OpSelect.
func (b *ModuleBuilder) AddSelect(resultType uint32, condition uint32, accept uint32, reject uint32) uint32 {
	return b.AddOp(OpSelect, resultType, condition, accept, reject)
}

// AddSelectionMerge adds OpSelectionMerge.
func (b *ModuleBuilder) AddSelectionMerge(mergeLabel uint32, control SelectionControl) {
	b.AddOpVoid(OpSelectionMerge, mergeLabel, uint32(control))
}

// AddLoopMerge adds OpLoopMerge.
func (b *ModuleBuilder) AddLoopMerge(mergeLabel uint32, continueLabel uint32, control LoopControl) {
	b.AddOpVoid(OpLoopMerge, mergeLabel, continueLabel, uint32(control))
}

// AddBranch adds OpBranch.
func (b *ModuleBuilder) AddBranch(target uint32) {
	b.AddOpVoid(OpBranch, target)
}

// AddBranchConditional adds OpBranchConditional.
func (b *ModuleBuilder) AddBranchConditional(condition uint32, trueLabel uint32, falseLabel uint32) {
	b.AddOpVoid(OpBranchConditional, condition, trueLabel, falseLabel)
}

// AddKill adds OpKill (fragment shader discard).
func (b *ModuleBuilder) AddKill() {
	b.AddOpVoid(OpKill)
}

// AddExtInst adds OpExtInst (extended instruction).
func (b *ModuleBuilder) AddExtInst(resultType uint32, extSet uint32, instruction uint32, operands ...uint32) uint32 {
	return b.AddOp(OpExtInst, resultType, append([]uint32{extSet, instruction}, operands...)...)
}

// AddMemoryBarrier adds OpMemoryBarrier with constant operand ids.
func (b *ModuleBuilder) AddMemoryBarrier(scope, semantics uint32) {
	b.AddOpVoid(OpMemoryBarrier, scope, semantics)
}

// AddControlBarrier adds OpControlBarrier with constant operand ids.
func (b *ModuleBuilder) AddControlBarrier(execution, memory, semantics uint32) {
	b.AddOpVoid(OpControlBarrier, execution, memory, semantics)
}

// Build generates the final SPIR-V binary.
func (b *ModuleBuilder) Build() []byte {
	// Update bound to max ID
	b.bound = b.nextID

	sections := [][]Instruction{
		b.capabilities,
		b.extensions,
		b.extInstImports,
		nil, // memory model
		b.entryPoints,
		b.executionModes,
		b.debugStrings,
		b.debugNames,
		b.annotations,
		b.types,
		b.globalVars,
		b.functions,
	}
	if b.memoryModel != nil {
		sections[3] = []Instruction{*b.memoryModel}
	}

	totalWords := 5 // header
	for _, section := range sections {
		totalWords += countWords(section)
	}

	buffer := make([]byte, totalWords*4)
	offset := 0

	for _, word := range []uint32{MagicNumber, versionToWord(b.version), b.generator, b.bound, b.schema} {
		binary.LittleEndian.PutUint32(buffer[offset:], word)
		offset += 4
	}
	for _, section := range sections {
		offset = writeInstructions(buffer, offset, section)
	}

	return buffer
}

// String summarizes the section sizes, for debugging.
func (b *ModuleBuilder) String() string {
	return fmt.Sprintf("module(v%s, bound %d, %d caps, %d types, %d globals, %d body instructions)",
		b.version, b.nextID, len(b.capabilities), len(b.types), len(b.globalVars), len(b.functions))
}

// countWords counts total words in instructions.
func countWords(instructions []Instruction) int {
	count := 0
	for _, inst := range instructions {
		count += len(inst.Words) + 1
	}
	return count
}

// writeInstructions writes instructions to buffer.
func writeInstructions(buffer []byte, offset int, instructions []Instruction) int {
	for _, inst := range instructions {
		offset = writeInstruction(buffer, offset, inst)
	}
	return offset
}

// writeInstruction writes a single instruction to buffer.
func writeInstruction(buffer []byte, offset int, inst Instruction) int {
	words := inst.Encode()
	for _, word := range words {
		binary.LittleEndian.PutUint32(buffer[offset:], word)
		offset += 4
	}
	return offset
}

// versionToWord converts Version to SPIR-V word format.
func versionToWord(v Version) uint32 {
	return (uint32(v.Major) << 16) | (uint32(v.Minor) << 8)
}
