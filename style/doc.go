/*
Package style provides style declarations to plug into package cascade.

Two payload types implement cascade.Declaration:

ShapeStyle holds the attributes for drawing shapes: fill, stroke,
stroke-width and opacity. Colours are checked on parsing, widths and
opacities are converted to numbers.

PropertyMap holds box-model properties (margins, padding, borders,
dimensions, display, colours and text properties). As CSS defines a whole
lot of properties, they are segmented into property groups. Compound
shortcuts like "padding: 3pt 5pt" are split into their individual
properties on parsing.

Both types use fill-if-unset semantics for ComplementWith and ignore
declarations of a different type.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cascade.style'
func tracer() tracing.Trace {
	return tracing.Select("cascade.style")
}
