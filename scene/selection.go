package scene

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/presets/cascade"
	"go.uber.org/multierr"
)

// Selection bundles the options for operations on a selection of objects.
// The zero value is ready to use.
type Selection struct {
	Options []cascade.Option // options for every cascade context built
}

// stylers caches one styler per stylesheet root.
type stylers struct {
	opts  []cascade.Option
	cache map[*Root]*Styler
}

func (sel Selection) stylers() *stylers {
	return &stylers{opts: sel.Options, cache: make(map[*Root]*Styler)}
}

// forObject returns the styler for the nearest root of obj. Objects without a
// root are reported as a trace message, nil objects are ignored.
func (st *stylers) forObject(obj *Object) (*Styler, bool) {
	if obj == nil {
		return nil, false
	}
	root, _, ok := obj.NearestRoot()
	if !ok {
		tracer().Errorf("no stylesheet root found in parents of object %s", obj.Name)
		return nil, false
	}
	s, ok := st.cache[root]
	if !ok {
		s = NewStyler(root, st.opts...)
		st.cache[root] = s
	}
	return s, true
}

// Apply applies the cascade of their nearest roots to each of the objects, without
// descending into children. One cascade context is built per distinct root.
// Objects without a root and nil objects are skipped.
func (sel Selection) Apply(objs ...*Object) error {
	st := sel.stylers()
	var err error
	for _, obj := range objs {
		if s, ok := st.forObject(obj); ok {
			_, e := s.ApplyObject(obj, false)
			err = multierr.Append(err, e)
		}
	}
	return err
}

// ApplyRecursive applies the cascade of their nearest roots to each of the objects
// and their subtrees, including subtrees of nested roots. Objects without a root and
// nil objects are skipped.
func (sel Selection) ApplyRecursive(objs ...*Object) error {
	var err error
	for _, obj := range objs {
		if obj == nil {
			continue
		}
		s, e := StylerFor(obj, sel.Options...)
		if e != nil {
			tracer().Errorf("%v", e)
			continue
		}
		err = multierr.Append(err, s.ApplyRecursive(obj, true))
	}
	return err
}

// ApplyComponent applies the style of obj to a single one of its components.
func (sel Selection) ApplyComponent(obj *Object, c Component) ([]cascade.Match, error) {
	s, err := StylerFor(obj, sel.Options...)
	if err != nil {
		return nil, err
	}
	return s.ApplyComponent(obj, c, false)
}

// Analyze resolves the style of each of the objects for all of their components,
// without applying anything. Components without matches are omitted.
func (sel Selection) Analyze(objs ...*Object) (map[Component][]cascade.Match, error) {
	st := sel.stylers()
	result := make(map[Component][]cascade.Match)
	var err error
	for _, obj := range objs {
		if obj == nil || obj.Tag.IsBlank() {
			continue
		}
		s, ok := st.forObject(obj)
		if !ok {
			continue
		}
		matches, e := s.ApplyObject(obj, true)
		err = multierr.Append(err, e)
		for c, m := range matches {
			result[c] = m
		}
	}
	return result, err
}

// AutoApplyRoots returns the objects in the subtrees of objs which declare a root
// with AutoApply set and have no ancestor declaring such a root. Nil objects are
// ignored.
func AutoApplyRoots(objs ...*Object) []*Object {
	var roots []*Object
	seen := make(map[*Object]bool)
	for _, obj := range objs {
		if obj == nil {
			continue
		}
		obj.Walk(func(o *Object) error {
			if seen[o] || o.Root == nil || !o.Root.AutoApply {
				return nil
			}
			for p := o.Parent(); p != nil; p = p.Parent() {
				if p.Root != nil && p.Root.AutoApply {
					return nil
				}
			}
			seen[o] = true
			roots = append(roots, o)
			return nil
		})
	}
	return roots
}

// Refresh re-applies the cascade recursively below every auto-apply root found by
// AutoApplyRoots(objs...).
func (sel Selection) Refresh(objs ...*Object) error {
	return sel.ApplyRecursive(AutoApplyRoots(objs...)...)
}

// --- Package level shortcuts -----------------------------------------------

// Apply is a shortcut for Selection{}.Apply(objs...).
func Apply(objs ...*Object) error {
	return Selection{}.Apply(objs...)
}

// ApplyRecursive is a shortcut for Selection{}.ApplyRecursive(objs...).
func ApplyRecursive(objs ...*Object) error {
	return Selection{}.ApplyRecursive(objs...)
}

// Analyze is a shortcut for Selection{}.Analyze(objs...).
func Analyze(objs ...*Object) (map[Component][]cascade.Match, error) {
	return Selection{}.Analyze(objs...)
}

// Refresh is a shortcut for Selection{}.Refresh(objs...).
func Refresh(objs ...*Object) error {
	return Selection{}.Refresh(objs...)
}
