package spirv

import (
	"math/bits"

	"github.com/gogpu/spvgen/ir"
)

// words is a view of block memory as an array of equally sized uints.
// prefix holds the access-chain indices that lead to the array.
type words struct {
	base     uint32
	class    StorageClass
	prefix   []uint32
	bits     uint8
	coherent bool
}

func (w words) pointer(s *session, index uint32) uint32 {
	ptr := s.types.Pointer(w.class, s.types.UVec(w.bits, 1))
	indices := append(append([]uint32(nil), w.prefix...), index)
	return s.m.AddAccessChain(ptr, w.base, indices...)
}

func (w words) load(s *session, index uint32) uint32 {
	ptr := w.pointer(s, index)
	word := s.types.UVec(w.bits, 1)
	if w.coherent {
		return s.m.AddOp(OpAtomicLoad, word, ptr,
			s.uintConst(uint32(ScopeWorkgroup)), s.uintConst(uint32(MemorySemanticsNone)))
	}
	return s.m.AddLoad(word, ptr)
}

func (w words) store(s *session, index, value uint32) {
	ptr := w.pointer(s, index)
	if w.coherent {
		s.m.AddOpVoid(OpAtomicStore, ptr,
			s.uintConst(uint32(ScopeWorkgroup)), s.uintConst(uint32(MemorySemanticsNone)), value)
		return
	}
	s.m.AddStore(ptr, value)
}

// elementIndex returns the index of element k after a byte offset into
// an array of size-byte elements. Constant offsets fold.
func (s *session) elementIndex(offset ir.Src, size, k uint32) uint32 {
	if c, ok := s.constant(offset); ok && len(c) == 1 {
		return s.uintConst(uint32(c[0])/size + k)
	}
	word := s.types.UVec(32, 1)
	base := s.srcAs(offset, ir.BaseUint).id
	switch {
	case size == 1:
	case size&(size-1) == 0:
		base = s.m.AddBinaryOp(OpShiftRightLogical, word, base, s.uintConst(uint32(bits.TrailingZeros32(size))))
	default:
		base = s.m.AddBinaryOp(OpUDiv, word, base, s.uintConst(size))
	}
	if k == 0 {
		return base
	}
	return s.m.AddBinaryOp(OpIAdd, word, base, s.uintConst(k))
}

// accessBits returns the word width used to access a value of the given
// bit size. Bools live in 32-bit words; 64-bit values span two.
func accessBits(valueBits uint8) (uint8, uint32) {
	switch valueBits {
	case 1:
		return 32, 1
	case 64:
		return 32, 2
	}
	return valueBits, 1
}

// loadWords reads comps values of valueBits each, starting at offset.
func (s *session) loadWords(w words, offset ir.Src, valueBits, comps uint8) value {
	_, per := accessBits(valueBits)
	size := uint32(w.bits) / 8
	parts := make([]uint32, comps)
	for i := range parts {
		if per == 1 {
			parts[i] = w.load(s, s.elementIndex(offset, size, uint32(i)))
			continue
		}
		lo := w.load(s, s.elementIndex(offset, size, uint32(i)*2))
		hi := w.load(s, s.elementIndex(offset, size, uint32(i)*2+1))
		pair := s.m.AddCompositeConstruct(s.types.UVec(32, 2), lo, hi)
		parts[i] = s.m.AddUnaryOp(OpBitcast, s.types.UVec(64, 1), pair)
	}

	bits := w.bits
	if valueBits == 64 {
		bits = 64
	}
	v := value{id: parts[0], bits: bits, comps: comps, kind: ir.BaseUint}
	if comps > 1 {
		v.id = s.m.AddCompositeConstruct(s.types.UVec(bits, comps), parts...)
	}
	if valueBits == 1 {
		v.id = s.m.AddBinaryOp(OpINotEqual, s.types.BVec(comps), v.id,
			s.splat(s.uintConst(0), s.types.UVec(32, comps), comps))
		v.bits, v.kind = 1, ir.BaseBool
	}
	return v
}

// storeWords writes the components of v selected by mask.
func (s *session) storeWords(w words, offset ir.Src, v value, mask uint8) {
	if v.bits == 1 {
		uvec := s.types.UVec(32, v.comps)
		v.id = s.m.AddSelect(uvec, v.id, s.splat(s.uintConst(1), uvec, v.comps), s.splat(s.uintConst(0), uvec, v.comps))
		v.bits, v.kind = 32, ir.BaseUint
	}
	v = s.as(v, ir.BaseUint)
	if mask == 0 {
		mask = 0xff
	}
	size := uint32(w.bits) / 8
	scalar := s.types.UVec(v.bits, 1)
	for i := range v.comps {
		if mask&(1<<i) == 0 {
			continue
		}
		comp := v.id
		if v.comps > 1 {
			comp = s.m.AddCompositeExtract(scalar, v.id, uint32(i))
		}
		if v.bits != 64 {
			w.store(s, s.elementIndex(offset, size, uint32(i)), comp)
			continue
		}
		uvec2 := s.types.UVec(32, 2)
		pair := s.m.AddUnaryOp(OpBitcast, uvec2, comp)
		word := s.types.UVec(32, 1)
		w.store(s, s.elementIndex(offset, size, uint32(i)*2), s.m.AddCompositeExtract(word, pair, 0))
		w.store(s, s.elementIndex(offset, size, uint32(i)*2+1), s.m.AddCompositeExtract(word, pair, 1))
	}
}

func (s *session) bufferWords(ssbo bool, block uint32, bits uint8) words {
	id, v := s.bufferVar(ssbo, block, bits)
	class := StorageClassUniform
	if ssbo {
		class = StorageClassStorageBuffer
	}
	return words{
		base:     id,
		class:    class,
		prefix:   []uint32{s.uintConst(0)},
		bits:     bits,
		coherent: ssbo && v.Access&ir.AccessCoherent != 0,
	}
}

func (s *session) emitLoadBuffer(intr *ir.Intrinsic, ssbo bool) {
	dest := s.intrDest(intr)
	block := s.constUint(s.intrSrc(intr, 0), "buffer block index")
	bits, _ := accessBits(dest.BitSize)
	w := s.bufferWords(ssbo, block, bits)
	v := s.loadWords(w, s.intrSrc(intr, 1), dest.BitSize, max(dest.Components, 1))
	s.def(*dest, v.id, v.kind)
}

func (s *session) emitStoreSSBO(intr *ir.Intrinsic) {
	v := s.src(s.intrSrc(intr, 0))
	block := s.constUint(s.intrSrc(intr, 1), "buffer block index")
	bits, _ := accessBits(v.bits)
	w := s.bufferWords(true, block, bits)
	s.storeWords(w, s.intrSrc(intr, 2), v, intr.WriteMask)
}

// emitSSBOSize computes the byte size of a storage block: the runtime
// tail's length times its stride plus the fixed part.
func (s *session) emitSSBOSize(intr *ir.Intrinsic) {
	dest := s.intrDest(intr)
	block := s.constUint(s.intrSrc(intr, 0), "buffer block index")
	id, v := s.bufferVar(true, block, 32)
	word := s.types.UVec(32, 1)

	var result uint32
	fields, _ := bufferFields(v)
	switch tail, offset := runtimeTail(v, true); {
	case tail:
		n := s.m.AddOp(OpArrayLength, word, id, 1)
		stride := fields[len(fields)-1].Type.ArrayStride()
		result = s.m.AddBinaryOp(OpIMul, word, n, s.uintConst(stride))
		result = s.m.AddBinaryOp(OpIAdd, word, result, s.uintConst(offset))
	case len(fields) == 1 && fields[0].Type.IsRuntimeArray():
		n := s.m.AddOp(OpArrayLength, word, id, 0)
		result = s.m.AddBinaryOp(OpIMul, word, n, s.uintConst(4))
	default:
		result = s.uintConst(v.Type.Size())
	}
	s.def(*dest, result, ir.BaseUint)
}

func (s *session) sharedWords(valueBits uint8) words {
	if valueBits != 32 && valueBits != 64 {
		panic(unsupportedf("%d-bit shared memory access", valueBits))
	}
	return words{base: s.sharedVar(), class: StorageClassWorkgroup, bits: 32}
}

func (s *session) emitLoadShared(intr *ir.Intrinsic) {
	dest := s.intrDest(intr)
	w := s.sharedWords(dest.BitSize)
	v := s.loadWords(w, s.intrSrc(intr, 0), dest.BitSize, max(dest.Components, 1))
	s.def(*dest, v.id, v.kind)
}

func (s *session) emitStoreShared(intr *ir.Intrinsic) {
	v := s.src(s.intrSrc(intr, 0))
	w := s.sharedWords(v.bits)
	s.storeWords(w, s.intrSrc(intr, 1), v, intr.WriteMask)
}

// emitLoadPushConstant reads one member of the push-constant block.
// Array members are indexed by the byte offset; other members are
// loaded whole.
func (s *session) emitLoadPushConstant(intr *ir.Intrinsic) {
	dest := s.intrDest(intr)
	id, v := s.pushConst()
	member := s.constUint(s.intrSrc(intr, 0), "push constant member")
	if member >= uint32(len(v.Type.Fields)) {
		panic(malformedf("push constant member %d out of range", member))
	}
	field := v.Type.Fields[member]
	memberID := s.uintConst(member)

	if field.Type.Base != ir.BaseArray {
		t := field.Type
		if bits := t.BitSize(); bits < 32 {
			s.storageWidth(StorageClassPushConstant, bits)
		}
		typeID := s.types.LayoutTypeFor(t)
		ptr := s.m.AddAccessChain(s.types.Pointer(StorageClassPushConstant, typeID), id, memberID)
		s.def(*dest, s.m.AddLoad(typeID, ptr), varKind(&t))
		return
	}

	elem := field.Type.Elem
	if !elem.IsScalar() {
		panic(unsupportedf("push constant array of %s vectors", elem.Base))
	}
	if bits := elem.BitSize(); bits < 32 {
		s.storageWidth(StorageClassPushConstant, bits)
	}
	elemID := s.types.LayoutTypeFor(*elem)
	ptr := s.types.Pointer(StorageClassPushConstant, elemID)
	stride := field.Type.ArrayStride()
	comps := max(dest.Components, 1)
	parts := make([]uint32, comps)
	for i := range parts {
		chain := s.m.AddAccessChain(ptr, id, memberID, s.elementIndex(s.intrSrc(intr, 1), stride, uint32(i)))
		parts[i] = s.m.AddLoad(elemID, chain)
	}
	result := parts[0]
	if comps > 1 {
		result = s.m.AddCompositeConstruct(s.typeOf(elem.Base, elem.BitSize(), comps), parts...)
	}
	s.def(*dest, result, varKind(elem))
}
