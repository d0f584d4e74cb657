/*
Package cssimport converts regular CSS text into cascade style sheets.

Parsing is done by github.com/aymerick/douceur. Of the CSS rules found, only
those are converted which cascade is able to express: class selectors,
possibly compound (".a.b"), combined with the descendant combinator
(".diagram .polygon.selected"). Grouped selectors (".a, .b") result in one
rule per selector.

Everything else is skipped: element, id and attribute selectors, pseudo
classes, other combinators and at-rules like @media. Skipped parts are
reported as errors, combined with go.uber.org/multierr, but do not prevent
the conversion of the rest of the CSS:

	sheet, err := cssimport.Import(text, style.ShapeStyleFactory)
	for _, e := range multierr.Errors(err) {
	    log.Println(e)
	}

Function ExtractStyleElements finds CSS embedded in <style> elements of an
HTML document.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssimport

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascade.import'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.import")
}
