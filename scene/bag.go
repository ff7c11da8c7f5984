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
	"sort"

	"github.com/npillmayer/presets/cascade"
	"github.com/npillmayer/presets/style"
)

// ErrNotABag is returned by BagCapability for targets which are not of type *Bag.
var ErrNotABag = errors.New("target is not a property bag")

// Bag is a component holding a flat map of property paths to values.
type Bag struct {
	Type     string
	props    map[string]style.Property
	revision int
}

// NewBag creates an empty property bag of a given type.
func NewBag(typeName string) *Bag {
	return &Bag{Type: typeName, props: make(map[string]style.Property)}
}

// TypeName is part of interface cascade.Target.
func (b *Bag) TypeName() string {
	return b.Type
}

func (b *Bag) String() string {
	return fmt.Sprintf("Bag(%s #props=%d rev=%d)", b.Type, len(b.props), b.revision)
}

// Set sets a property value. It returns b to allow for chaining.
func (b *Bag) Set(path string, value style.Property) *Bag {
	if b.props == nil {
		b.props = make(map[string]style.Property)
	}
	b.props[path] = value
	return b
}

// Get returns a property value.
func (b *Bag) Get(path string) (style.Property, bool) {
	p, ok := b.props[path]
	return p, ok
}

// Paths returns all property paths of b in sorted order.
func (b *Bag) Paths() []string {
	paths := make([]string, 0, len(b.props))
	for k := range b.props {
		paths = append(paths, k)
	}
	sort.Strings(paths)
	return paths
}

// Revision counts the presets which have been applied to b.
func (b *Bag) Revision() int {
	return b.revision
}

// Capture creates a preset from the current properties of b, for b's type.
// Modifications are ordered by path and the exclusion mask is empty.
func (b *Bag) Capture() *style.Preset {
	p := style.NewPreset(b.Type)
	for _, path := range b.Paths() {
		p.Modifications = append(p.Modifications, style.Modification{Path: path, Value: b.props[path]})
	}
	return p
}

// BagCapability is the default capability: it applies presets to Bags of the
// preset's target type.
type BagCapability struct{}

// CanApply is part of interface cascade.Capability.
func (BagCapability) CanApply(p *style.Preset, t cascade.Target) bool {
	b, ok := t.(*Bag)
	return ok && b.Type == p.TargetType
}

// Apply is part of interface cascade.Capability.
func (BagCapability) Apply(origin *style.Sheet, p *style.Preset, t cascade.Target) error {
	b, ok := t.(*Bag)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotABag, t.TypeName())
	}
	for _, m := range p.Effective() {
		b.Set(m.Path, m.Value)
	}
	b.revision++
	return nil
}

var _ cascade.Capability = BagCapability{}
var _ Component = &Bag{}
