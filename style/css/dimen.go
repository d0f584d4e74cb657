package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	flags   uint32
}

/*
type DimenT
	= Unset
	| Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage Percent
*/

// Unset is the zero value of DimenT.
func Unset() DimenT {
	return DimenT{flags: dimenNone}
}

func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n percent.Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// IsUnset is true for the zero value.
func (d DimenT) IsUnset() bool {
	return d.flags == dimenNone
}

func (d DimenT) String() string {
	switch {
	case d.flags == dimenNone:
		return "unset"
	case d.flags&relativeMask == dimenPercent:
		return fmt.Sprintf("%v%%", d.percent)
	}
	switch d.flags & kindMask {
	case dimenAbsolute:
		return fmt.Sprintf("%v", d.d)
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	}
	return "?"
}

// ParseDimen converts the textual form of a CSS dimension. Recognized are
// the keywords "auto", "inherit" and "initial", lengths in points (e.g.
// "10pt", "0.5pt"), percentages ("80%") and the unit-less "0".
func ParseDimen(s string) (DimenT, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	case "0":
		return JustDimen(0), nil
	}
	if num, ok := cutSuffix(s, "%"); ok {
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return Unset(), fmt.Errorf("not a percentage: %q", s)
		}
		return Percentage(percent.FromInt(int(math.Round(n)))), nil
	}
	if num, ok := cutSuffix(s, "pt"); ok {
		x, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return Unset(), fmt.Errorf("not a length: %q", s)
		}
		return JustDimen(dimen.DU(math.Round(x * float64(dimen.PT)))), nil
	}
	return Unset(), fmt.Errorf("not a dimension: %q", s)
}

func cutSuffix(s, suffix string) (string, bool) {
	if !strings.HasSuffix(s, suffix) || len(s) == len(suffix) {
		return s, false
	}
	return s[:len(s)-len(suffix)], true
}

// ---------------------------------------------------------------------------

func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

type Matcher struct {
	dimen DimenT
}

func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags&relativeMask > 0) || (d.flags&relativeMask > 0):
		if m.dimen.flags&relativeMask == d.flags&relativeMask {
			return m
		}
		return nil
	case (m.dimen.flags & kindMask) == (d.flags & kindMask):
		return m
	}
	return nil
}

func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.flags&relativeMask == dimenPercent {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type DimenPatterns[T any] struct {
	Auto    T
	Inherit T
	Initial T
	Just    T
	Percent T
	Default T
}

func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

type MatchExpr[T any] struct {
	dimen DimenT
}

func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch {
	case m.dimen.flags&relativeMask == dimenPercent:
		return patterns.Percent
	case m.dimen.flags&kindMask == dimenAuto:
		return patterns.Auto
	case m.dimen.flags&kindMask == dimenAbsolute:
		return patterns.Just
	case m.dimen.flags&kindMask == dimenInitial:
		return patterns.Initial
	case m.dimen.flags&kindMask == dimenInherit:
		return patterns.Inherit
	}
	return patterns.Default
}

func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

func (m *MatchExpr[T]) Const(x T) T {
	return x
}
