package spirv

import "github.com/gogpu/spvgen/ir"

var atomicOps = map[ir.AtomicOp]OpCode{
	ir.AtomicAdd:      OpAtomicIAdd,
	ir.AtomicIMin:     OpAtomicSMin,
	ir.AtomicUMin:     OpAtomicUMin,
	ir.AtomicIMax:     OpAtomicSMax,
	ir.AtomicUMax:     OpAtomicUMax,
	ir.AtomicAnd:      OpAtomicAnd,
	ir.AtomicOr:       OpAtomicOr,
	ir.AtomicXor:      OpAtomicXor,
	ir.AtomicExchange: OpAtomicExchange,
	ir.AtomicCompSwap: OpAtomicCompareExchange,
}

// atomicKind is the value interpretation an atomic op applies to its data.
func atomicKind(op ir.AtomicOp) ir.BaseType {
	if op == ir.AtomicIMin || op == ir.AtomicIMax {
		return ir.BaseInt
	}
	return ir.BaseUint
}

// emitAtomic emits an atomic read-modify-write on ptr with Device scope
// and relaxed semantics. data holds the value, then the comparator for
// compare-and-swap.
func (s *session) emitAtomic(op ir.AtomicOp, resultType, ptr uint32, data []value, kind ir.BaseType) uint32 {
	opcode, ok := atomicOps[op]
	if !ok {
		panic(unsupportedf("atomic %q", op))
	}
	scope := s.uintConst(uint32(ScopeDevice))
	semantics := s.uintConst(uint32(MemorySemanticsNone))
	value := s.as(data[0], kind).id
	if opcode != OpAtomicCompareExchange {
		return s.m.AddOp(opcode, resultType, ptr, scope, semantics, value)
	}
	if len(data) < 2 {
		panic(malformedf("compare-and-swap without a comparator"))
	}
	compare := s.as(data[1], kind).id
	return s.m.AddOp(opcode, resultType, ptr, scope, semantics, semantics, value, compare)
}

// atomicData returns the data sources starting at first: one value, or
// value and comparator for compare-and-swap.
func (s *session) atomicData(intr *ir.Intrinsic, first int) []value {
	data := []value{s.src(s.intrSrc(intr, first))}
	if intr.Atomic == ir.AtomicCompSwap {
		data = append(data, s.src(s.intrSrc(intr, first+1)))
	}
	if data[0].bits != 32 || data[0].comps != 1 {
		panic(unsupportedf("%d-bit %d-component atomic", data[0].bits, data[0].comps))
	}
	return data
}

// emitMemoryAtomic handles storage buffer and shared memory atomics.
// Both address 32-bit uint words.
func (s *session) emitMemoryAtomic(intr *ir.Intrinsic) {
	dest := s.intrDest(intr)
	var (
		w      words
		offset ir.Src
		data   []value
	)
	if intr.Op == ir.IntrSSBOAtomic {
		block := s.constUint(s.intrSrc(intr, 0), "buffer block index")
		w = s.bufferWords(true, block, 32)
		offset = s.intrSrc(intr, 1)
		data = s.atomicData(intr, 2)
	} else {
		w = s.sharedWords(32)
		offset = s.intrSrc(intr, 0)
		data = s.atomicData(intr, 1)
	}
	ptr := w.pointer(s, s.elementIndex(offset, 4, 0))
	result := s.emitAtomic(intr.Atomic, s.types.UVec(32, 1), ptr, data, ir.BaseUint)
	s.def(*dest, result, ir.BaseUint)
}

// emitImageAtomic addresses one texel with OpImageTexelPointer. The
// pointer's type is the image's scalar result type.
func (s *session) emitImageAtomic(intr *ir.Intrinsic) {
	dest := s.intrDest(intr)
	p := s.pointer(s.intrSrc(intr, 0))
	img := s.imageOf(p)
	coord := s.imageCoord(s.intrSrc(intr, 1), img)
	sample := s.uintConst(0)
	if img.Multisample {
		sample = s.srcAs(s.intrSrc(intr, 2), ir.BaseUint).id
	}
	data := s.atomicData(intr, 3)

	kind := img.Result
	if kind == ir.BaseFloat {
		if intr.Atomic != ir.AtomicExchange {
			panic(unsupportedf("float image atomic %q", intr.Atomic))
		}
	} else {
		kind = atomicKind(intr.Atomic)
		if img.Result == ir.BaseInt || img.Result == ir.BaseUint {
			kind = img.Result
		}
	}
	scalar := s.typeOf(kind, 32, 1)
	ptr := s.m.AddOp(OpImageTexelPointer, s.types.Pointer(StorageClassImage, scalar), p.id, coord, sample)
	s.def(*dest, s.emitAtomic(intr.Atomic, scalar, ptr, data, kind), kind)
}
