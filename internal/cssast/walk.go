package cssast

// Walk visits node and its children depth-first, calling enter before and
// leave after visiting each child. It understands every node type this
// package defines; anything else is a leaf.
func Walk(node any, enter, leave func(any)) {
	if enter != nil {
		enter(node)
	}
	switch v := node.(type) {
	case *Stylesheet:
		for _, c := range v.Children {
			Walk(c, enter, leave)
		}
	case *Rule:
		Walk(v.Prelude, enter, leave)
		Walk(v.Block, enter, leave)
	case *AtRule:
		if v.Block != nil {
			Walk(v.Block, enter, leave)
		}
	case *SelectorList:
		for i := range v.Children {
			Walk(&v.Children[i], enter, leave)
		}
	case *Selector:
		for i := range v.Parts {
			Walk(&v.Parts[i], enter, leave)
		}
	case *DeclarationList:
		for i := range v.Children {
			Walk(&v.Children[i], enter, leave)
		}
	}
	if leave != nil {
		leave(node)
	}
}
