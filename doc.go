/*
Package cascade computes the effective style of a nested element from a
cascade of class-selector rules.

Elements are described by the classes of their ancestors, starting at the
root: an element with class "b", nested inside an element with class "a",
is described by the selector chain

	.a .b

A style sheet is a list of rules, each pairing a selector chain with a
declaration of style attributes. Style sheets are written in a small
nested-block syntax:

	.polygon {
	    fill: green;
	    .selected.active {
	        stroke: red;
	    }
	}

Nesting is flattened at parse time: the inner rule above is stored with
chain ".polygon .selected.active". The rules of a sheet are kept sorted
by priority: longer chains first, then selectors with more classes,
and among rules of equal priority the one declared last comes first.

Resolving a style (see CalculateStyle) walks the element's chain and all
of its front-anchored prefixes against the sorted rules. A rule matches a
(sub-)chain if its last selector matches the last selector of the chain and
its other selectors match ancestors in order, possibly skipping unrelated
ones. Declarations are merged with fill-if-unset semantics, so the first
match for an attribute wins.

Declarations are not interpreted by this package. Clients plug in their
own payload types by implementing interface Declaration and handing a
DeclarationFactory to the parser and the resolver; package style offers
two ready-made payloads.

# Concurrency

Style sheets are built single-threaded (parsing, AddRule) and are read-only
thereafter. CalculateStyle does not mutate the sheet or the chain and may be
called concurrently on a sheet no one writes to.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cascade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade'.
func tracer() tracing.Trace {
	return tracing.Select("cascade")
}
