/*
Package selector implements style selectors: normalized sets of name tokens.

Overview

A style name is a free-form string of dot-separated tokens, e.g. "button.primary".
Tokens are whitespace-trimmed, case-sensitive and order-insensitive. A selector is
the canonical form of such a name: its distinct tokens, sorted in ordinal order and
re-joined by ".". Thus

    Normalize("primary.button") == Normalize(" button . primary") == "button.primary"

Objects carry a style name, rules carry a selector. To let a rule for "primary"
match an object named "button.primary", the object's name is expanded into every
subset of its tokens (selector variants). For k tokens there are 2^k variants,
including the empty one. Expansion is exponential, therefore the number of tokens
is bounded (DefaultTokenLimit).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'presets.selector'.
func tracer() tracing.Trace {
	return tracing.Select("presets.selector")
}
