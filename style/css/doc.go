/*
Package css provides typed values for CSS style properties.

Style properties arrive as text. This package shields clients from the
cumbersome handling of textual dimensions: DimenT is an option type for
lengths, percentages and the CSS keywords auto, inherit and initial, and is
taken apart by matching:

	d, _ := css.ParseDimen("10pt")
	var du dimen.DU
	switch m := d.Match(); m {
	case m.Just(&du):
	    …
	case m.IsKind(css.Auto()):
	    …
	}

# Status

Only point lengths and percentages are supported. Font- and
viewport-relative units will follow.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package css
