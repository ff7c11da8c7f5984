/*
Package cascade resolves which presets of a stylesheet apply to a styled target.

Overview

Resolution works similar to the CSS cascade, but on object–component graphs
instead of DOM nodes. A Context is built once per root stylesheet:

    ctx := cascade.Build(rootSheet)

Building flattens the parent graph of the root sheet (each sheet once, parents
first) and indexes every preset by the normalized selector of its rule and by the
preset's target type. Every index entry is assigned a specificity

    specificity = rule priority + 10 × #tokens(selector) + 100 × sheet priority

Given the style name of an object and one of its components, Resolve expands
the style name into selector variants, looks up every variant for the component's
type, filters out presets which cannot be applied to the component, and returns the
surviving matches sorted by ascending specificity. Applying them in this order lets
more specific presets overwrite properties set by less specific ones.

Collaborators supply the component-specific operations through interface
Capability; the cascade never inspects components itself.

Contexts are immutable after construction and hold no cross-call state. Build a
new one whenever the sheet graph may have changed.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cascade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'presets.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("presets.cascade")
}
