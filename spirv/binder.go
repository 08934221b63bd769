package spirv

import "github.com/gogpu/spvgen/ir"

// varyingBuiltins maps fixed-function varyings and fragment outputs to
// their SPIR-V builtins.
var varyingBuiltins = map[ir.Builtin]BuiltIn{
	ir.BuiltinPosition:       BuiltInPosition,
	ir.BuiltinPointSize:      BuiltInPointSize,
	ir.BuiltinClipDistance:   BuiltInClipDistance,
	ir.BuiltinCullDistance:   BuiltInCullDistance,
	ir.BuiltinLayer:          BuiltInLayer,
	ir.BuiltinViewportIndex:  BuiltInViewportIndex,
	ir.BuiltinPrimitiveID:    BuiltInPrimitiveID,
	ir.BuiltinFragCoord:      BuiltInFragCoord,
	ir.BuiltinPointCoord:     BuiltInPointCoord,
	ir.BuiltinFrontFacing:    BuiltInFrontFacing,
	ir.BuiltinFragDepth:      BuiltInFragDepth,
	ir.BuiltinSampleMask:     BuiltInSampleMask,
	ir.BuiltinStencilRef:     BuiltInFragStencilRefEXT,
	ir.BuiltinTessLevelOuter: BuiltInTessLevelOuter,
	ir.BuiltinTessLevelInner: BuiltInTessLevelInner,
}

func (s *session) varAt(index uint32) *ir.Variable {
	if index >= uint32(len(s.shader.Variables)) {
		panic(malformedf("variable %d out of range", index))
	}
	return &s.shader.Variables[index]
}

// declareVariables binds every input, output, opaque and push-constant
// variable up front so they appear on the entry point even when unused.
// Buffers, shared memory and system values are bound on first use.
func (s *session) declareVariables() {
	for i := range s.shader.Variables {
		switch s.shader.Variables[i].Mode {
		case ir.ModeInput, ir.ModeOutput, ir.ModeUniform, ir.ModeImage, ir.ModeSampler, ir.ModePushConst:
			s.variable(uint32(i))
		}
	}
}

// variable returns the id of a module-scope variable, binding it on
// first use.
func (s *session) variable(index uint32) uint32 {
	if id, ok := s.vars[index]; ok {
		return id
	}
	v := s.varAt(index)
	var id uint32
	switch v.Mode {
	case ir.ModeInput:
		id = s.bindInput(v)
	case ir.ModeOutput:
		id = s.bindOutput(v)
	case ir.ModeUniform, ir.ModeImage, ir.ModeSampler:
		id = s.bindImage(index, v)
	case ir.ModePushConst:
		id = s.bindPushConst(v)
	case ir.ModeUBO, ir.ModeSSBO:
		panic(malformedf("buffer variable %q accessed through a deref", v.Name))
	case ir.ModeShared:
		panic(unsupportedf("shared variable %q accessed through a deref", v.Name))
	default:
		panic(malformedf("variable %q has unknown mode %d", v.Name, v.Mode))
	}
	s.vars[index] = id
	s.log.Debug("bound variable", "index", index, "name", v.Name, "mode", v.Mode.String(), "id", id)
	return id
}

func (s *session) storageClass(v *ir.Variable) StorageClass {
	switch v.Mode {
	case ir.ModeInput:
		return StorageClassInput
	case ir.ModeOutput:
		return StorageClassOutput
	case ir.ModeUniform, ir.ModeImage, ir.ModeSampler:
		return StorageClassUniformConstant
	case ir.ModeUBO:
		return StorageClassUniform
	case ir.ModeSSBO:
		return StorageClassStorageBuffer
	case ir.ModeShared:
		return StorageClassWorkgroup
	case ir.ModePushConst:
		return StorageClassPushConstant
	}
	panic(malformedf("variable %q has unknown mode %d", v.Name, v.Mode))
}

// hasExplicitLayout reports whether types in class carry Offset,
// ArrayStride and MatrixStride decorations.
func hasExplicitLayout(class StorageClass) bool {
	switch class {
	case StorageClassPushConstant, StorageClassUniform, StorageClassStorageBuffer:
		return true
	}
	return false
}

// typeIn returns the type id of t as declared in storage class class.
func (s *session) typeIn(class StorageClass, t ir.Type) uint32 {
	if hasExplicitLayout(class) {
		return s.types.LayoutTypeFor(t)
	}
	return s.types.TypeFor(t)
}

func (s *session) emitVar(typeID uint32, class StorageClass, name string) uint32 {
	id := s.m.AddVariable(s.types.Pointer(class, typeID), class)
	s.name(id, name)
	s.addInterface(id, class)
	return id
}

func (s *session) decorateBuiltin(id uint32, b ir.Builtin) {
	builtin, ok := varyingBuiltins[b]
	if !ok {
		panic(malformedf("unknown builtin %d", b))
	}
	s.m.AddDecorate(id, DecorationBuiltIn, uint32(builtin))
}

func (s *session) decorateInterp(id uint32, v *ir.Variable) {
	switch v.Interp {
	case ir.InterpFlat:
		s.m.AddDecorate(id, DecorationFlat)
	case ir.InterpNoPerspective:
		s.m.AddDecorate(id, DecorationNoPerspective)
	}
}

func (s *session) bindInput(v *ir.Variable) uint32 {
	id := s.emitVar(s.types.TypeFor(v.Type), StorageClassInput, v.Name)
	if v.Builtin != ir.BuiltinNone {
		s.decorateBuiltin(id, v.Builtin)
	} else {
		s.m.AddDecorate(id, DecorationLocation, v.Location)
	}
	if s.stage() == ir.StageFragment {
		if v.Centroid {
			s.m.AddDecorate(id, DecorationCentroid)
		} else if v.Sample {
			s.m.AddDecorate(id, DecorationSample)
			s.capability(CapabilitySampleRateShading)
		}
	}
	if v.Component != 0 {
		s.m.AddDecorate(id, DecorationComponent, uint32(v.Component))
	}
	if v.Patch {
		s.m.AddDecorate(id, DecorationPatch)
	}
	s.decorateInterp(id, v)
	return id
}

func (s *session) bindOutput(v *ir.Variable) uint32 {
	typeID := s.types.TypeFor(v.Type)
	fragment := s.stage() == ir.StageFragment
	if fragment && v.Builtin == ir.BuiltinSampleMask {
		// SampleMask is always an array.
		typeID = s.types.Array(typeID, 1, 0)
		s.sampleMaskType = typeID
	}
	id := s.emitVar(typeID, StorageClassOutput, v.Name)

	switch {
	case v.Builtin != ir.BuiltinNone:
		s.decorateBuiltin(id, v.Builtin)
	case fragment:
		s.m.AddDecorate(id, DecorationLocation, v.Location)
		s.m.AddDecorate(id, DecorationIndex, v.Index)
	default:
		s.m.AddDecorate(id, DecorationLocation, v.Location)
	}
	if fragment && v.Sample {
		s.m.AddDecorate(id, DecorationSample)
		s.capability(CapabilitySampleRateShading)
	}
	if v.Component != 0 {
		s.m.AddDecorate(id, DecorationComponent, uint32(v.Component))
	}
	s.decorateInterp(id, v)
	if v.Patch {
		s.m.AddDecorate(id, DecorationPatch)
	}
	if x := v.Xfb; x != nil {
		s.m.AddDecorate(id, DecorationOffset, x.Offset)
		s.m.AddDecorate(id, DecorationXfbBuffer, x.Buffer)
		s.m.AddDecorate(id, DecorationXfbStride, x.Stride)
		if x.Stream != 0 {
			s.m.AddDecorate(id, DecorationStream, x.Stream)
		}
	}
	return id
}

func (s *session) bindPushConst(v *ir.Variable) uint32 {
	if v.Type.Base != ir.BaseStruct {
		panic(malformedf("push constant %q is not a struct", v.Name))
	}
	members := make([]uint32, len(v.Type.Fields))
	for i := range v.Type.Fields {
		members[i] = s.types.LayoutTypeFor(v.Type.Fields[i].Type)
	}
	st := s.types.LayoutStruct(members, v.Type.FieldOffsets(), matrixStrides(v.Type.Fields), true)
	return s.emitVar(st, StorageClassPushConstant, v.Name)
}

// pushConst returns the push-constant variable.
func (s *session) pushConst() (uint32, *ir.Variable) {
	for i := range s.shader.Variables {
		if s.shader.Variables[i].Mode == ir.ModePushConst {
			return s.variable(uint32(i)), &s.shader.Variables[i]
		}
	}
	panic(malformedf("push constant load without a push constant variable"))
}

// decorateAccess attaches memory qualifiers to a storage image.
func (s *session) decorateAccess(id uint32, access ir.Access) {
	if access&ir.AccessCoherent != 0 {
		s.m.AddDecorate(id, DecorationCoherent)
	}
	if access&ir.AccessRestrict != 0 {
		s.m.AddDecorate(id, DecorationRestrict)
	}
	if access&ir.AccessNonReadable != 0 {
		s.m.AddDecorate(id, DecorationNonReadable)
	}
	if access&ir.AccessNonWritable != 0 {
		s.m.AddDecorate(id, DecorationNonWritable)
	}
}

func isSampler(v *ir.Variable) bool {
	img := v.Type.WithoutArray().Image
	return v.Mode == ir.ModeSampler || (img != nil && img.Sampler)
}

func imageDim(d ir.Dim) Dim {
	switch d {
	case ir.Dim1D:
		return Dim1D
	case ir.Dim2D, ir.DimRect:
		return Dim2D
	case ir.Dim3D:
		return Dim3D
	case ir.DimCube:
		return DimCube
	case ir.DimBuffer:
		return DimBuffer
	case ir.DimSubpass:
		return DimSubpassData
	}
	panic(malformedf("unknown image dim %d", d))
}

// bareImageType returns OpTypeImage for an opaque variable and requests
// the capabilities its shape and format need.
func (s *session) bareImageType(v *ir.Variable) uint32 {
	img := v.Type.WithoutArray().Image
	if img == nil {
		panic(malformedf("opaque variable %q without an image type", v.Name))
	}
	sampler := isSampler(v)

	switch {
	case img.Dim == ir.DimSubpass:
		s.capability(CapabilityInputAttachment)
	case !sampler && img.Format == ir.FormatUnknown:
		if v.Access&ir.AccessNonWritable == 0 {
			s.capability(CapabilityStorageImageWriteWithoutFormat)
		}
		if v.Access&ir.AccessNonReadable == 0 {
			s.capability(CapabilityStorageImageReadWithoutFormat)
		}
	}
	switch img.Dim {
	case ir.Dim1D:
		if sampler {
			s.capability(CapabilitySampled1D)
		} else {
			s.capability(CapabilityImage1D)
		}
	case ir.DimBuffer:
		if sampler {
			s.capability(CapabilitySampledBuffer)
		} else {
			s.capability(CapabilityImageBuffer)
		}
	case ir.DimCube:
		if img.Arrayed {
			s.capability(CapabilityImageCubeArray)
		}
	}
	if !sampler && img.Multisample && img.Arrayed {
		s.capability(CapabilityImageMSArray)
	}
	if !sampler && img.Format.IsExtended() {
		s.capability(CapabilityStorageImageExtendedFormats)
	}

	result := img.Result
	if !result.IsNumeric() {
		panic(malformedf("image %q has a %s result", v.Name, result))
	}
	desc := ImageDesc{
		SampledType: s.typeOf(result, 32, 1),
		Dim:         imageDim(img.Dim),
		Arrayed:     img.Arrayed,
		MS:          img.Multisample,
		Sampled:     2,
	}
	if sampler {
		desc.Sampled = 1
	} else {
		desc.Format = img.Format
	}
	return s.types.Image(desc)
}

// bindImage declares a sampler or storage image. Arrays of bindings
// become arrays of handles. Bindless variables are never arrays and
// carry no descriptor decorations.
func (s *session) bindImage(index uint32, v *ir.Variable) uint32 {
	image := s.bareImageType(v)
	s.imageTypes[index] = image
	typeID := image
	if isSampler(v) {
		typeID = s.types.SampledImage(image)
	}
	if !v.Bindless && v.Type.Base == ir.BaseArray {
		typeID = s.types.Array(typeID, v.Type.ArrayElements(), 0)
	}
	id := s.emitVar(typeID, StorageClassUniformConstant, v.Name)
	if v.Type.WithoutArray().Image.Dim == ir.DimSubpass {
		s.m.AddDecorate(id, DecorationInputAttachmentIndex, v.Index)
	}
	if v.Bindless {
		return id
	}
	if !isSampler(v) {
		s.decorateAccess(id, v.Access)
	}
	s.m.AddDecorate(id, DecorationDescriptorSet, v.DescriptorSet)
	s.m.AddDecorate(id, DecorationBinding, v.Binding)
	return id
}

// samplerFor resolves a flat texture unit to the sampler variable that
// covers it and the index into that variable's binding array.
func (s *session) samplerFor(unit uint32) (uint32, uint32) {
	for i := range s.shader.Variables {
		v := &s.shader.Variables[i]
		if !v.Mode.IsOpaque() || v.Bindless || !isSampler(v) {
			continue
		}
		n := v.Type.ArrayElements()
		if unit >= v.DriverLocation && unit < v.DriverLocation+n {
			return uint32(i), unit - v.DriverLocation
		}
	}
	panic(malformedf("no sampler bound to texture unit %d", unit))
}

// bufferVar returns the variable that views uniform or storage block
// block as an array of bits-wide words. Each block has one such view
// per access width.
func (s *session) bufferVar(ssbo bool, block uint32, bits uint8) (uint32, *ir.Variable) {
	mode := ir.ModeUBO
	if ssbo {
		mode = ir.ModeSSBO
	}
	var v *ir.Variable
	for i := range s.shader.Variables {
		if c := &s.shader.Variables[i]; c.Mode == mode && c.DriverLocation == block {
			v = c
			break
		}
	}
	if v == nil {
		panic(malformedf("no %s bound to block %d", mode, block))
	}
	key := bufferKey{ssbo: ssbo, block: block, bits: bits}
	if id, ok := s.buffers[key]; ok {
		return id, v
	}
	id := s.bindBuffer(v, ssbo, bits)
	s.buffers[key] = id
	s.log.Debug("bound buffer", "name", v.Name, "block", block, "bits", bits, "id", id)
	return id, v
}

// bufferFields returns the block's members; a bare array is a block of
// one member.
func bufferFields(v *ir.Variable) ([]ir.Field, []uint32) {
	if v.Type.Base == ir.BaseStruct {
		return v.Type.Fields, v.Type.FieldOffsets()
	}
	return []ir.Field{{Name: v.Name, Type: v.Type}}, []uint32{0}
}

// runtimeTail reports whether an SSBO keeps its trailing runtime array
// as a separate member, and returns that member's offset.
func runtimeTail(v *ir.Variable, ssbo bool) (bool, uint32) {
	fields, offsets := bufferFields(v)
	last := len(fields) - 1
	if ssbo && len(fields) > 1 && fields[last].Type.IsRuntimeArray() {
		return true, offsets[last]
	}
	return false, 0
}

func (s *session) bindBuffer(v *ir.Variable, ssbo bool, bits uint8) uint32 {
	class := StorageClassUniform
	if ssbo {
		class = StorageClassStorageBuffer
		s.m.AddExtension("SPV_KHR_storage_buffer_storage_class")
	}
	s.storageWidth(class, bits)

	fields, _ := bufferFields(v)
	last := fields[len(fields)-1]
	tail, tailOffset := runtimeTail(v, ssbo)

	wordBytes := uint32(bits) / 8
	fixed := v.Type.Size()
	if tail {
		fixed = tailOffset
	}
	word := s.types.UVec(bits, 1)
	var data uint32
	if n := fixed / wordBytes; n == 0 || (len(fields) == 1 && last.Type.IsRuntimeArray()) {
		data = s.types.RuntimeArray(word, wordBytes)
	} else {
		data = s.types.Array(word, n, wordBytes)
	}
	members := []uint32{data}
	offsets := []uint32{0}
	if tail {
		tailBits := bits
		if last.Type.WithoutArray().BitSize() == 64 {
			tailBits = 64
		}
		members = append(members, s.types.RuntimeArray(s.types.UVec(tailBits, 1), last.Type.ArrayStride()))
		offsets = append(offsets, tailOffset)
	}
	st := s.types.Struct(members, offsets, true)
	s.name(st, "struct_"+v.Name)

	id := s.emitVar(st, class, v.Name)
	s.m.AddDecorate(id, DecorationDescriptorSet, v.DescriptorSet)
	s.m.AddDecorate(id, DecorationBinding, v.Binding)
	return id
}

// storageWidth requests the capability for 8- and 16-bit access to
// block storage.
func (s *session) storageWidth(class StorageClass, bits uint8) {
	switch bits {
	case 8:
		if !s.opts.Version.AtLeast(Version1_5) {
			s.m.AddExtension("SPV_KHR_8bit_storage")
		}
		switch class {
		case StorageClassStorageBuffer:
			s.capability(CapabilityStorageBuffer8BitAccess)
		case StorageClassPushConstant:
			s.capability(CapabilityStoragePushConstant8)
		default:
			s.capability(CapabilityUniformAndStorageBuffer8BitAccess)
		}
	case 16:
		if !s.opts.Version.AtLeast(Version1_3) {
			s.m.AddExtension("SPV_KHR_16bit_storage")
		}
		switch class {
		case StorageClassStorageBuffer:
			s.capability(CapabilityStorageBuffer16BitAccess)
		case StorageClassPushConstant:
			s.capability(CapabilityStoragePushConstant16)
		default:
			s.capability(CapabilityUniformAndStorageBuffer16BitAccess)
		}
	}
}

// sharedVar returns the workgroup memory array, declared on first use.
func (s *session) sharedVar() uint32 {
	if s.shared != 0 {
		return s.shared
	}
	size := s.shader.Info.Compute.SharedSize
	if size < 4 {
		panic(malformedf("shared memory access with a shared size of %d bytes", size))
	}
	arr := s.types.Array(s.types.UVec(32, 1), size/4, 4)
	s.shared = s.emitVar(arr, StorageClassWorkgroup, "shared")
	s.log.Debug("bound shared memory", "bytes", size, "id", s.shared)
	return s.shared
}

// emitDeref records the pointer a deref produces.
func (s *session) emitDeref(d *ir.Deref) {
	if d.Dest.Reg {
		panic(malformedf("deref into a register"))
	}
	var p pointer
	switch d.Kind {
	case ir.DerefVar:
		v := s.varAt(d.Var)
		p = pointer{id: s.variable(d.Var), class: s.storageClass(v), typ: v.Type, v: d.Var}
	case ir.DerefArray, ir.DerefStruct:
		parent := s.pointer(d.Parent)
		var index uint32
		if d.Kind == ir.DerefArray {
			index = s.srcAs(d.Index, ir.BaseUint).id
		} else {
			index = s.uintConst(d.Field)
		}
		elem := s.pointeeType(parent.v, d.Type)
		id := s.m.AddAccessChain(s.types.Pointer(parent.class, elem), parent.id, index)
		p = pointer{id: id, class: parent.class, typ: d.Type, v: parent.v}
	default:
		panic(malformedf("unknown deref kind %q", d.Kind))
	}
	s.ptrs[d.Dest.Index] = p
}

// pointeeType returns the SPIR-V type behind a pointer into variable v.
func (s *session) pointeeType(v uint32, t ir.Type) uint32 {
	if t.Base != ir.BaseImage {
		return s.typeIn(s.storageClass(s.varAt(v)), t)
	}
	image, ok := s.imageTypes[v]
	if !ok {
		panic(internalErrorf("image type of variable %d not bound", v))
	}
	if isSampler(s.varAt(v)) {
		return s.types.SampledImage(image)
	}
	return image
}

func (s *session) pointer(src ir.Src) pointer {
	if !src.Reg {
		if p, ok := s.ptrs[src.Index]; ok {
			return p
		}
	}
	panic(malformedf("ssa %d is not a deref", src.Index))
}
