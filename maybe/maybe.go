/*
Package maybe implements optional values.

Style declarations hold a fixed set of attributes, any of which may be
unset. A Maybe[T] is either Just(x) for a set attribute, or Nothing for
an unset one. Nothing is distinct from every value of T, including T's
zero value.

The zero value of Maybe[T] is Nothing.

Values are taken apart by matching:

	var fill string
	switch m := style.Fill.Match(); m {
	case m.Just(&fill):
	    …
	case m.Nothing():
	    …
	}

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package maybe

import "fmt"

// Maybe is an optional value of type T.
type Maybe[T any] struct {
	value T
	just  bool
}

// Just creates a Maybe holding x.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, just: true}
}

// Nothing creates an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsNothing is true if m does not hold a value.
func (m Maybe[T]) IsNothing() bool {
	return !m.just
}

// WithDefault returns the value of m, or def if m is Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

// Or returns m if it holds a value, other otherwise.
func (m Maybe[T]) Or(other Maybe[T]) Maybe[T] {
	if m.just {
		return m
	}
	return other
}

// Map applies f to the value of m, if any.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.just {
		return Just(f(m.value))
	}
	return m
}

func (m Maybe[T]) String() string {
	if m.just {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// AndThen chains a computation which may fail onto x.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if x.just {
		return f(x.value)
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher for m, to be used in a switch statement.
func (m Maybe[T]) Match() *Matcher[T] {
	return &Matcher[T]{m: m}
}

// Matcher takes apart a Maybe. Every case method returns the matcher itself
// if the case applies, nil otherwise.
type Matcher[T any] struct {
	m Maybe[T]
}

// Just matches if the Maybe holds a value, and stores the value in v.
// v may be nil.
func (mm *Matcher[T]) Just(v *T) *Matcher[T] {
	if mm.m.just {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

// Nothing matches if the Maybe is empty.
func (mm *Matcher[T]) Nothing() *Matcher[T] {
	if !mm.m.just {
		return mm
	}
	return nil
}
