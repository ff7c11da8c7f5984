/*
Package scene provides a styled object graph and applies preset stylesheets to it.

Overview

A scene is a tree of Objects. Every object may carry

  - a style tag (the object's raw style name),
  - a stylesheet root (the root sheet for the object and its subtree), and
  - a list of components, which are the targets presets are applied to.

Stylesheet roots nest. The cascade for an object is the one of the nearest
root, found by walking up the tree. A subtree below a different root is styled
exclusively by that root; cascades of nested roots are never merged with the
cascades of their ancestors.

Type Bag is a simple property-bag component, and BagCapability applies presets to
bags. Clients with other component types supply their own cascade.Capability,
per root.

Operations on a selection of objects (Apply, ApplyRecursive, Analyze, Refresh,
Clipboard.Paste) mirror the menu commands of a style editor; they are synchronous
and must not run concurrently on the same objects.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scene

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'presets.scene'.
func tracer() tracing.Trace {
	return tracing.Select("presets.scene")
}
