package spirv

import "github.com/gogpu/spvgen/ir"

// label returns the label id of an IR block, allocating it on first use.
func (s *session) label(block uint32) uint32 {
	if id, ok := s.labels[block]; ok {
		return id
	}
	id := s.m.AllocID()
	s.labels[block] = id
	return id
}

// startBlock opens a new block. An open block falls through to it.
func (s *session) startBlock(label uint32) {
	if s.blockOpen {
		s.branch(label)
	}
	s.m.AddLabel(label)
	s.blockOpen = true
}

func (s *session) branch(label uint32) {
	if !s.blockOpen {
		panic(internalErrorf("branch to %%%d outside of a block", label))
	}
	s.m.AddBranch(label)
	s.blockOpen = false
}

func (s *session) branchConditional(cond, then, els uint32) {
	if !s.blockOpen {
		panic(internalErrorf("conditional branch outside of a block"))
	}
	s.m.AddBranchConditional(cond, then, els)
	s.blockOpen = false
}

// emitFunctionBody emits the register declarations and the structured
// body of the entry function. The function's first block is left open.
func (s *session) emitFunctionBody() {
	regs := s.shader.Entry.Registers
	if len(regs) > 0 {
		s.startBlock(s.m.AllocID())
		s.regs = make([]uint32, len(regs))
		for i, r := range regs {
			s.regs[i] = s.m.AddLocalVariable(s.types.Pointer(StorageClassFunction, s.regType(r)))
		}
	}
	if len(s.shader.Entry.Body) == 0 {
		s.startBlock(s.m.AllocID())
		return
	}
	s.emitList(s.shader.Entry.Body)
	if !s.blockOpen {
		panic(malformedf("function body ends in a jump"))
	}
}

func (s *session) emitList(list []ir.Node) {
	for i := range list {
		n := &list[i]
		switch {
		case n.Block != nil:
			s.emitBlock(n.Block)
		case n.If != nil:
			s.emitIf(n.If)
		case n.Loop != nil:
			s.emitLoop(n.Loop)
		default:
			panic(malformedf("empty control-flow node"))
		}
	}
}

func (s *session) emitBlock(b *ir.Block) {
	s.startBlock(s.label(b.Index))
	for i := range b.Instrs {
		if !s.blockOpen {
			panic(malformedf("block %d: instruction after a jump", b.Index))
		}
		s.emitInstr(&b.Instrs[i])
	}
}

func (s *session) firstLabel(list []ir.Node, what string) uint32 {
	first := ir.FirstBlock(list)
	if first == nil {
		panic(malformedf("%s does not start with a block", what))
	}
	return s.label(first.Index)
}

func (s *session) emitIf(n *ir.If) {
	cond := s.src(n.Condition)
	if cond.kind != ir.BaseBool || cond.comps != 1 {
		panic(malformedf("if condition is not a 1-bit scalar"))
	}

	header := s.m.AllocID()
	then := s.firstLabel(n.Then, "then list")
	endif := s.m.AllocID()
	els := endif
	if len(n.Else) > 0 {
		els = s.firstLabel(n.Else, "else list")
	}

	s.startBlock(header)
	s.m.AddSelectionMerge(endif, SelectionControlNone)
	s.branchConditional(cond.id, then, els)

	s.emitList(n.Then)
	if len(n.Else) > 0 {
		if s.blockOpen {
			s.branch(endif)
		}
		s.emitList(n.Else)
	}
	s.startBlock(endif)
}

func (s *session) emitLoop(n *ir.Loop) {
	header := s.m.AllocID()
	begin := s.firstLabel(n.Body, "loop body")
	brk := s.m.AllocID()
	cont := s.m.AllocID()

	s.startBlock(header)
	s.m.AddLoopMerge(brk, cont, LoopControlNone)
	s.branch(begin)

	savedBreak, savedCont := s.loopBreak, s.loopCont
	s.loopBreak, s.loopCont = brk, cont
	s.emitList(n.Body)
	s.loopBreak, s.loopCont = savedBreak, savedCont

	if s.blockOpen {
		s.branch(cont)
	}
	s.startBlock(cont)
	s.branch(header)
	s.startBlock(brk)
}

func (s *session) emitJump(j *ir.Jump) {
	if s.loopBreak == 0 {
		panic(malformedf("%s outside of a loop", j.Kind))
	}
	switch j.Kind {
	case ir.JumpBreak:
		s.branch(s.loopBreak)
	case ir.JumpContinue:
		s.branch(s.loopCont)
	default:
		panic(malformedf("unknown jump %q", j.Kind))
	}
}

// emitDiscard kills the invocation and opens an unreachable block for
// whatever follows in the IR block.
func (s *session) emitDiscard() {
	if !s.blockOpen {
		panic(internalErrorf("discard outside of a block"))
	}
	s.m.AddKill()
	s.m.AddLabel(s.m.AllocID())
}
