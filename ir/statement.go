package ir

// Node is one entry of a structured control-flow list. Exactly one field
// is set.
//
// A function body is a list of nodes. Every non-empty list starts with a
// Block, and an If or Loop is always followed by a Block in the list
// that contains it, so control can be rejoined after the construct.
type Node struct {
	Block *Block `yaml:"block,omitempty"`
	If    *If    `yaml:"if,omitempty"`
	Loop  *Loop  `yaml:"loop,omitempty"`
}

// Block is a straight-line sequence of instructions.
// Index is unique within the function and names the block's label.
type Block struct {
	Index  uint32  `yaml:"index"`
	Instrs []Instr `yaml:"instrs,omitempty"`
}

// If executes Then when Condition is true and Else otherwise.
// Condition must be a 1-bit scalar. Values produced inside the arms
// reach code after the If only through registers.
type If struct {
	Condition Src    `yaml:"condition"`
	Then      []Node `yaml:"then"`
	Else      []Node `yaml:"else,omitempty"`
}

// Loop executes Body until a break jump leaves it.
// The IR has no loop condition: exits are explicit Jump instructions.
type Loop struct {
	Body []Node `yaml:"body"`
}

// FirstBlock returns the block that starts the list, or nil.
func FirstBlock(list []Node) *Block {
	if len(list) == 0 {
		return nil
	}
	return list[0].Block
}

// Walk calls fn for every block in list in program order, descending
// into if arms and loop bodies.
func Walk(list []Node, fn func(*Block)) {
	for i := range list {
		n := &list[i]
		switch {
		case n.Block != nil:
			fn(n.Block)
		case n.If != nil:
			Walk(n.If.Then, fn)
			Walk(n.If.Else, fn)
		case n.Loop != nil:
			Walk(n.Loop.Body, fn)
		}
	}
}
