/*
Package pathdata normalizes SVG path-data strings of outline stroke fonts.

Outline-format path data may concatenate command letters and numbers
without separators ("M123 0L361 714"). CleanPath re-inserts separators;
ScalePath converts cleaned path data from glyph space into line space,
i.e. it scales coordinates and flips the Y axis, which outline sources
author upside-down relative to the target rendering space.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pathdata

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'hershey.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("hershey.fonts")
}
