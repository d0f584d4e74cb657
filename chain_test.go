package cascade_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/cascade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainLength(t *testing.T) {
	if l := cascade.NewSelectorChain().Len(); l != 0 {
		t.Errorf("expected new chain to be empty, has length %d", l)
	}
	chain := cascade.ParseSelectorChain(".a .b.c .d")
	if chain.Len() != 3 {
		t.Errorf("expected length 3, is %d", chain.Len())
	}
	if chain.String() != ".a .b.c .d" {
		t.Errorf("expected chain to print as '.a .b.c .d', is %q", chain)
	}
}

func TestChainClone(t *testing.T) {
	chain := cascade.ParseSelectorChain(".a .b")
	clone := chain.Clone()
	assert.Equal(t, 2, clone.Len())
	chain.AddSelector(cascade.NewSelector(".c"))
	chain.DropSelectors(3)
	assert.Equal(t, 0, chain.Len())
	assert.Equal(t, 2, clone.Len(), "clone must keep selectors when original changes")
	clone.AddSelectorToFront(cascade.NewSelector(".x"))
	assert.Equal(t, 0, chain.Len())
	assert.Equal(t, ".x .a .b", clone.String())
}

func TestChainAddAndDrop(t *testing.T) {
	first, newSel := cascade.NewSelector(".a"), cascade.NewSelector(".n")
	chain := cascade.NewSelectorChain(first, cascade.NewSelector(".b"))
	chain.AddSelector(newSel)
	last, err := chain.Selector(chain.Len() - 1)
	require.NoError(t, err)
	assert.Equal(t, newSel, last)

	chain.AddSelectorToFront(newSel)
	assert.Equal(t, 4, chain.Len())
	front, err := chain.Selector(0)
	require.NoError(t, err)
	assert.Equal(t, newSel, front)

	chain.DropSelectors(0)
	assert.Equal(t, 4, chain.Len(), "dropping 0 selectors should keep length")
	chain.DropSelectors(-1)
	assert.Equal(t, 4, chain.Len(), "dropping negative count should keep length")
	chain.DropSelectors(3)
	assert.Equal(t, 1, chain.Len())
	front, err = chain.Selector(0)
	require.NoError(t, err)
	assert.Equal(t, newSel, front)
}

func TestChainIndexOutOfRange(t *testing.T) {
	chain := cascade.ParseSelectorChain(".a .b")
	if _, err := chain.Selector(1); err != nil {
		t.Errorf("expected index 1 to be valid, got %v", err)
	}
	for _, i := range []int{-1, 2, 100} {
		_, err := chain.Selector(i)
		if !errors.Is(err, cascade.ErrIndexOutOfRange) {
			t.Errorf("expected index %d to be out of range, got %v", i, err)
		}
	}
}

func TestChainMatchFromEnd(t *testing.T) {
	tests := []struct {
		chain, rule string
		match       bool
	}{
		{".a .b .c", ".a .b .c", true},          // chains are equal
		{".a.x .b.y .c.z", ".a .b .c", true},    // selectors are subsets
		{".a .b .c", ".a .c", true},             // rule skips an ancestor
		{".x .a .y .b .z .c", ".a .b .c", true}, // skipping several ancestors
		{".a .b .c", ".a .b", false},            // end is different
		{".a .b .c", ".x .c", false},            // end matches, rest does not
		{".b .a .c", ".a .b .c", false},         // ancestors in wrong order
		{".c", ".a .c", false},                  // rule longer than chain
		{"", ".a", false},                       // empty chain
		{".a", "", false},                       // empty rule
		{".a.b", ".b", true},                    // single selectors
		{".a .b", ".b .b", false},               // one selector cannot match twice
		{".b .a .b", ".b .b", true},             // but repeated ancestors can
	}
	for _, tt := range tests {
		chain, rule := cascade.ParseSelectorChain(tt.chain), cascade.ParseSelectorChain(tt.rule)
		if got := chain.MatchFromEnd(rule); got != tt.match {
			t.Errorf("expected (%s).MatchFromEnd(%s) to be %v, is %v", tt.chain, tt.rule, tt.match, got)
		}
	}
}

func TestChainPriority(t *testing.T) {
	tests := []struct {
		a, b     string
		priority int
	}{
		{".a .b .c", ".a .b", 1},   // first chain is longer
		{".a", ".a .b", -1},        // first chain is shorter
		{".a .b.c", ".a .b", 1},    // equal length, first has longer selectors
		{".a.x .b", ".a .b.c", -1}, // last selector decides first
		{".a .b", ".c.d .e", -1},   // equal length, second has longer selector
		{".a.b .c", ".d.e .f", 0},  // everything equal
		{"", "", 0},                // empty chains
	}
	for _, tt := range tests {
		a, b := cascade.ParseSelectorChain(tt.a), cascade.ParseSelectorChain(tt.b)
		if p := a.ComparePriority(b); p != tt.priority {
			t.Errorf("expected priority of (%s) vs (%s) to be %d, is %d", tt.a, tt.b, tt.priority, p)
		}
	}
}
