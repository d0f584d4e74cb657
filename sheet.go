package cascade

import (
	tp "github.com/xlab/treeprint"
)

// StyleSheet is a list of style rules, sorted in descending order by
// priority. Rules are never removed from a style sheet.
//
// A style sheet is written to during construction (parsing, AddRule) only.
// Once published, it may be read concurrently, e.g. by CalculateStyle.
type StyleSheet struct {
	rules []*Rule
}

// NewStyleSheet creates an empty style sheet.
func NewStyleSheet() *StyleSheet {
	return &StyleSheet{}
}

// ParseStyleSheet creates a style sheet from the text of a style sheet.
// See StyleSheet.ParseFromString.
func ParseStyleSheet(text string, factory DeclarationFactory) (*StyleSheet, error) {
	sheet := NewStyleSheet()
	if err := sheet.ParseFromString(text, factory); err != nil {
		return nil, err
	}
	return sheet, nil
}

// AddRule adds a rule, keeping the list sorted. If two rules have equal
// priority, the rule added last is placed in front of the other one.
//
// Sorting must be stable, therefore this is an insertion sort: the
// insertion point is the first position holding a rule with priority less
// than or equal to the new rule's priority.
func (sheet *StyleSheet) AddRule(rule *Rule) {
	if rule == nil {
		return
	}
	i := 0
	for i < len(sheet.rules) && rule.ComparePriority(sheet.rules[i]) < 0 {
		i++
	}
	sheet.rules = append(sheet.rules, nil)
	copy(sheet.rules[i+1:], sheet.rules[i:])
	sheet.rules[i] = rule
	tracer().Debugf("style sheet: rule %s inserted at position %d", rule.chain, i)
}

// AppendRules adds all rules from another style sheet, as if they had been
// declared after the rules of sheet. Rules of equal priority keep their
// relative order.
func (sheet *StyleSheet) AppendRules(other *StyleSheet) {
	if other == nil || other == sheet {
		return
	}
	for i := len(other.rules) - 1; i >= 0; i-- {
		sheet.AddRule(other.rules[i])
	}
}

// ForEach calls f for every rule, from highest to lowest priority.
func (sheet *StyleSheet) ForEach(f func(*Rule)) {
	if sheet == nil {
		return
	}
	for _, r := range sheet.rules {
		f(r)
	}
}

// Rules returns the rules of the style sheet in priority order.
// The returned slice is a copy.
func (sheet *StyleSheet) Rules() []*Rule {
	if sheet == nil {
		return nil
	}
	rules := make([]*Rule, len(sheet.rules))
	copy(rules, sheet.rules)
	return rules
}

// Len returns the number of rules.
func (sheet *StyleSheet) Len() int {
	if sheet == nil {
		return 0
	}
	return len(sheet.rules)
}

// IsEmpty checks if this style sheet contains any rules.
func (sheet *StyleSheet) IsEmpty() bool {
	return sheet.Len() == 0
}

// Dump returns a tree representation of the style sheet, for debugging.
func (sheet *StyleSheet) Dump() string {
	printer := tp.NewWithRoot("StyleSheet")
	for i, r := range sheet.Rules() {
		branch := printer.AddMetaBranch(i, r.chain.String())
		if r.declaration != nil {
			branch.AddNode(r.declaration.String())
		}
	}
	return printer.String()
}
