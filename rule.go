package cascade

// Rule pairs a selector chain with a style declaration.
type Rule struct {
	chain       *SelectorChain
	declaration Declaration
}

// NewRule creates a rule. The rule takes ownership of chain and decl;
// clients should not modify them afterwards.
func NewRule(chain *SelectorChain, decl Declaration) *Rule {
	if chain == nil {
		chain = NewSelectorChain()
	}
	return &Rule{chain: chain, declaration: decl}
}

// Chain returns the selector chain of the rule.
func (r *Rule) Chain() *SelectorChain {
	return r.chain
}

// Declaration returns the style declaration of the rule.
func (r *Rule) Declaration() Declaration {
	return r.declaration
}

// ComparePriority compares the priority of two rules, which is the priority
// of their selector chains. Returns -1, 0 or 1.
func (r *Rule) ComparePriority(other *Rule) int {
	return r.chain.ComparePriority(other.chain)
}

func (r *Rule) String() string {
	if r.declaration == nil {
		return r.chain.String() + " { }"
	}
	return r.chain.String() + " { " + r.declaration.String() + " }"
}
