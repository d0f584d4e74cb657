package cascade

import "strings"

// Selector is an unordered set of class names, e.g. ".polygon.selected".
// The zero value is an empty selector. Selectors are values: operations
// which add classes return a new selector and leave the receiver unchanged.
type Selector struct {
	classes []string
}

// NewSelector creates a selector from a string of period-prefixed class
// names, e.g. ".controlPoint.selected". Strings not starting with a period
// result in an empty selector.
func NewSelector(s string) Selector {
	if !strings.HasPrefix(s, ".") {
		return Selector{}
	}
	parts := strings.Split(s[1:], ".")
	classes := make([]string, 0, len(parts))
	for _, c := range parts {
		if c != "" {
			classes = append(classes, c)
		}
	}
	return Selector{classes: classes}
}

// SelectorOf creates a selector from a list of plain class names.
func SelectorOf(classes ...string) Selector {
	sel := Selector{}
	for _, c := range classes {
		sel = sel.With(c)
	}
	return sel
}

// With returns a copy of s with an additional class name.
func (s Selector) With(class string) Selector {
	if class == "" {
		return s
	}
	classes := make([]string, len(s.classes), len(s.classes)+1)
	copy(classes, s.classes)
	return Selector{classes: append(classes, class)}
}

// Len returns the number of class names of s.
func (s Selector) Len() int {
	return len(s.classes)
}

// IsEmpty is true if s does not contain any class name.
func (s Selector) IsEmpty() bool {
	return len(s.classes) == 0
}

// Classes returns a copy of the class names of s.
func (s Selector) Classes() []string {
	classes := make([]string, len(s.classes))
	copy(classes, s.classes)
	return classes
}

// Has is a predicate: does s contain class name c?
func (s Selector) Has(c string) bool {
	for _, class := range s.classes {
		if class == c {
			return true
		}
	}
	return false
}

// Match returns true if rule falls into the pool of selectors described by s:
// every class of rule has to be contained in s, while s may carry
// additional classes. Order does not matter. An empty rule never matches.
func (s Selector) Match(rule Selector) bool {
	if len(rule.classes) == 0 {
		return false
	}
	for _, c := range rule.classes {
		if !s.Has(c) {
			return false
		}
	}
	return true
}

// ComparePriority compares the specificity of two selectors. Selectors with
// more class names are more specific. Returns -1, 0 or 1.
func (s Selector) ComparePriority(other Selector) int {
	return sign(len(s.classes) - len(other.classes))
}

func (s Selector) String() string {
	if len(s.classes) == 0 {
		return ""
	}
	return "." + strings.Join(s.classes, ".")
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
