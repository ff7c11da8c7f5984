/*
Package style holds the data model for preset stylesheets.

Status

The model mirrors what an editor persists; this package does not define a
persistence format (but see sub-package douceuradapter for a text format).

Overview

A Preset is a stored bundle of property modifications for exactly one target type
(the fully qualified type name of a component). Each preset carries an exclusion
mask of root properties which are never written when the preset is applied.

A Rule associates a selector with an ordered list of presets and a priority.
A Sheet is an ordered list of rules, plus a list of parent sheets and a sheet
priority. Parent links form a directed graph; cycles and diamonds are legal and
every traversal in this package visits each sheet at most once.

A Tag is what objects carry: the raw, dot-separated style name.

Clients build sheets with the constructors and methods of this package. The cascade
engine (package cascade) never mutates them.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'presets.style'.
func tracer() tracing.Trace {
	return tracing.Select("presets.style")
}
