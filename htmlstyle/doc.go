/*
Package htmlstyle applies cascade style sheets to the elements of an HTML
document.

The class attributes of an element and of its ancestors form the element's
selector chain, root first. Elements without a class contribute an empty
selector, which never matches a rule, so rules for an ancestor still apply
to them via the cascade's subchain matching.

An element's inline "style" attribute is its element style and outranks
every rule of the style sheet.

Elements may be selected with regular CSS selectors, as implemented by
github.com/andybalholm/cascadia:

	styler := htmlstyle.NewStyler(sheet, style.ShapeStyleFactory)
	nodes, err := styler.Select(doc, "svg polygon")

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package htmlstyle

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.html'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.html")
}
