package scene

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/presets/cascade"
	"github.com/npillmayer/presets/style"
	"go.uber.org/multierr"
)

// ErrNoRoot is returned if no stylesheet root can be found for an object.
var ErrNoRoot = errors.New("no stylesheet root found")

// Styler applies the cascade of one stylesheet root to objects.
// It is cheap to create and should be discarded after use.
type Styler struct {
	root *Root
	ctx  *cascade.Context
	opts []cascade.Option
}

// NewStyler builds a cascade context for root.
func NewStyler(root *Root, opts ...cascade.Option) *Styler {
	var sheet *style.Sheet
	if root != nil {
		sheet = root.Sheet
	}
	return &Styler{root: root, ctx: cascade.Build(sheet, opts...), opts: opts}
}

// StylerFor creates a styler for the nearest stylesheet root of obj.
func StylerFor(obj *Object, opts ...cascade.Option) (*Styler, error) {
	if obj == nil {
		return nil, fmt.Errorf("%w for nil object", ErrNoRoot)
	}
	root, _, ok := obj.NearestRoot()
	if !ok {
		return nil, fmt.Errorf("%w for object %s", ErrNoRoot, obj.Name)
	}
	return NewStyler(root, opts...), nil
}

// Root returns the stylesheet root of s.
func (s *Styler) Root() *Root {
	return s.root
}

// Context returns the cascade context of s.
func (s *Styler) Context() *cascade.Context {
	return s.ctx
}

func (s *Styler) capability() cascade.Capability {
	if s.root == nil {
		return BagCapability{}
	}
	return s.root.capability()
}

// ApplyComponent resolves the style of obj for one of its components and, unless
// dry is set, applies the matches to it. Matches are returned in application order.
func (s *Styler) ApplyComponent(obj *Object, c Component, dry bool) ([]cascade.Match, error) {
	return s.ctx.Apply(obj.Tag, c, s.capability(), dry)
}

// ApplyObject resolves the style of obj for each of its components and, unless
// dry is set, applies the matches. Components without matches are not included in
// the result.
func (s *Styler) ApplyObject(obj *Object, dry bool) (map[Component][]cascade.Match, error) {
	result := make(map[Component][]cascade.Match)
	if obj.Tag.IsBlank() {
		return result, nil
	}
	var err error
	for _, c := range obj.Components() {
		matches, e := s.ApplyComponent(obj, c, dry)
		err = multierr.Append(err, e)
		if len(matches) > 0 {
			result[c] = matches
		}
	}
	return result, err
}

// ApplyRecursive applies the cascade to obj and its subtree, depth-first, children
// in order. Tagged objects get presets applied to all of their components before
// their children are visited.
//
// An object declaring a stylesheet root different from the root of s starts a
// nested cascade. With includeNested unset, its whole subtree is skipped. Otherwise a
// fresh styler for the nested root takes over for the subtree; the cascade of s
// does not contribute to it.
func (s *Styler) ApplyRecursive(obj *Object, includeNested bool) error {
	if obj == nil {
		return nil
	}
	if obj.Root != nil && obj.Root != s.root {
		if !includeNested {
			tracer().Debugf("skipping nested root at %s", obj.Name)
			return nil
		}
		tracer().Debugf("entering nested root at %s", obj.Name)
		return NewStyler(obj.Root, s.opts...).ApplyRecursive(obj, includeNested)
	}
	_, err := s.ApplyObject(obj, false)
	for _, ch := range obj.Children() {
		err = multierr.Append(err, s.ApplyRecursive(ch, includeNested))
	}
	return err
}
