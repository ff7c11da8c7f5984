/*
Package presets implements cascading preset stylesheets for trees of styled objects.

Overview

Objects in a scene carry a style name such as "button.primary". Stylesheets hold
rules which map selectors to presets, i.e. stored property modifications for a
single component type. Applying a style to an object resolves every preset whose
selector is a subset of the object's style tokens and applies them in order of
ascending specificity, much like CSS classes.

The work is split into sub-packages:

  - selector: normalization of style names and expansion into selector variants
  - style: presets, rules, stylesheets and tags
  - style/douceuradapter: reading stylesheets from CSS-like text
  - cascade: the index of a stylesheet graph, specificity and resolution
  - scene: the object graph, nested stylesheet roots and selection operations
  - scene/scenedbg: debug dumps

This package holds configuration shared by all of them.

Configuration

Options are read from a schuko.Configuration. Tracing is configured with
ConfigureTracing; all packages trace to keys "presets.<package>".

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package presets

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'presets'.
func tracer() tracing.Trace {
	return tracing.Select("presets")
}
