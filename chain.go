package cascade

import (
	"fmt"
	"strings"
)

// SelectorChain is a chain of selectors, representing the style hierarchy of
// a node in a tree document as defined by its ancestors. Index 0 holds the
// selector of the root-most ancestor, the last index holds the selector of
// the node itself.
//
// Methods which modify a chain return the chain itself, allowing for
//
//	chain := NewSelectorChain().AddSelector(NewSelector(".a")).AddSelector(NewSelector(".b"))
type SelectorChain struct {
	selectors []Selector
}

// NewSelectorChain creates a chain from a list of selectors, root-most first.
func NewSelectorChain(selectors ...Selector) *SelectorChain {
	chain := &SelectorChain{}
	chain.selectors = append(chain.selectors, selectors...)
	return chain
}

// ParseSelectorChain creates a chain from a space-separated list of
// selectors, e.g. ".diagram .polygon.selected".
func ParseSelectorChain(s string) *SelectorChain {
	chain := &SelectorChain{}
	for _, sel := range strings.Fields(s) {
		chain.AddSelector(NewSelector(sel))
	}
	return chain
}

// Len returns the number of selectors in the chain. A nil chain is empty.
func (chain *SelectorChain) Len() int {
	if chain == nil {
		return 0
	}
	return len(chain.selectors)
}

// Selector returns the selector at index i. If i is out of range, an error
// wrapping ErrIndexOutOfRange is returned.
func (chain *SelectorChain) Selector(i int) (Selector, error) {
	if i < 0 || i >= chain.Len() {
		return Selector{}, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, chain.Len())
	}
	return chain.selectors[i], nil
}

// AddSelector appends a selector to the end of the chain.
func (chain *SelectorChain) AddSelector(sel Selector) *SelectorChain {
	chain.selectors = append(chain.selectors, sel)
	return chain
}

// AddSelectorToFront inserts a selector in front of the chain.
func (chain *SelectorChain) AddSelectorToFront(sel Selector) *SelectorChain {
	selectors := make([]Selector, 0, len(chain.selectors)+1)
	selectors = append(selectors, sel)
	chain.selectors = append(selectors, chain.selectors...)
	return chain
}

// DropSelectors removes the last n selectors from the chain. n ≤ 0 leaves
// the chain unchanged, n ≥ Len() empties it.
func (chain *SelectorChain) DropSelectors(n int) *SelectorChain {
	if n <= 0 {
		return chain
	}
	if n > len(chain.selectors) {
		n = len(chain.selectors)
	}
	chain.selectors = chain.selectors[:len(chain.selectors)-n]
	return chain
}

// Clone returns a copy of chain. Changes to either chain will not be visible
// in the other one.
func (chain *SelectorChain) Clone() *SelectorChain {
	c := &SelectorChain{}
	if chain != nil {
		c.selectors = make([]Selector, len(chain.selectors))
		copy(c.selectors, chain.selectors)
	}
	return c
}

// MatchFromEnd checks if rule applies to the node described by chain.
//
// The last selectors of both chains must match, i.e. a rule never applies to
// an ancestor only. The remaining selectors of rule then have to match
// selectors of chain in the same order, from the end towards the front,
// possibly skipping selectors of chain in between.
// Empty chains never match.
func (chain *SelectorChain) MatchFromEnd(rule *SelectorChain) bool {
	n, m := chain.Len(), rule.Len()
	if n == 0 || m == 0 {
		return false
	}
	if !chain.selectors[n-1].Match(rule.selectors[m-1]) {
		return false
	}
	j := m - 1
	for i := n - 1; i >= 0; i-- {
		if chain.selectors[i].Match(rule.selectors[j]) {
			j--
			if j < 0 {
				return true
			}
		}
	}
	return false
}

// ComparePriority compares the priority of two chains. Longer chains have
// higher priority. For chains of equal length, selectors are compared
// pairwise from the end of the chains; the first difference decides.
// Returns -1, 0 or 1.
func (chain *SelectorChain) ComparePriority(other *SelectorChain) int {
	n, m := chain.Len(), other.Len()
	if n != m {
		return sign(n - m)
	}
	for i := n - 1; i >= 0; i-- {
		if p := chain.selectors[i].ComparePriority(other.selectors[i]); p != 0 {
			return p
		}
	}
	return 0
}

func (chain *SelectorChain) String() string {
	if chain == nil {
		return ""
	}
	s := make([]string, len(chain.selectors))
	for i, sel := range chain.selectors {
		s[i] = sel.String()
	}
	return strings.Join(s, " ")
}
