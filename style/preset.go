package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
)

// Preset is a named bundle of property modifications, scoped to a single
// target type. Excluded holds root properties which must not be written when
// the preset is applied.
type Preset struct {
	Name          string         // display name; defaults to the target type
	TargetType    string         // fully qualified type name of the target
	Modifications []Modification // stored modifications, in capture order
	Excluded      []string       // exclusion mask of root properties
}

// NewPreset creates a preset for a target type, with an empty exclusion mask.
func NewPreset(targetType string, mods ...Modification) *Preset {
	return &Preset{
		Name:          targetType,
		TargetType:    targetType,
		Modifications: mods,
	}
}

func (p *Preset) String() string {
	return fmt.Sprintf("Preset(%s #mod=%d #excl=%d)", p.Name, len(p.Modifications), len(p.Excluded))
}

// Set stores a modification for path, overwriting an existing one.
// It returns the preset to allow for chaining.
func (p *Preset) Set(path string, value Property) *Preset {
	for i := range p.Modifications {
		if p.Modifications[i].Path == path {
			p.Modifications[i].Value = value
			return p
		}
	}
	p.Modifications = append(p.Modifications, Modification{Path: path, Value: value})
	return p
}

// Value returns the stored value for path, regardless of the exclusion mask.
func (p *Preset) Value(path string) (Property, bool) {
	for _, m := range p.Modifications {
		if m.Path == path {
			return m.Value, true
		}
	}
	return NullProperty, false
}

// RootProperties returns the distinct root properties of all stored modifications,
// in order of first appearance.
func (p *Preset) RootProperties() []string {
	seen := make(map[string]bool, len(p.Modifications))
	roots := make([]string, 0, len(p.Modifications))
	for _, m := range p.Modifications {
		r := RootProperty(m.Path)
		if !seen[r] {
			seen[r] = true
			roots = append(roots, r)
		}
	}
	return roots
}

// IsExcluded is a predicate: is the root property of path in the exclusion mask?
func (p *Preset) IsExcluded(path string) bool {
	root := RootProperty(path)
	for _, x := range p.Excluded {
		if x == root {
			return true
		}
	}
	return false
}

// Effective returns the modifications which survive the exclusion mask.
func (p *Preset) Effective() []Modification {
	mods := make([]Modification, 0, len(p.Modifications))
	for _, m := range p.Modifications {
		if !p.IsExcluded(m.Path) {
			mods = append(mods, m)
		}
	}
	return mods
}

// Exclude adds root properties to the exclusion mask.
func (p *Preset) Exclude(roots ...string) {
	for _, r := range roots {
		r = RootProperty(r)
		if r != "" && !p.IsExcluded(r) {
			p.Excluded = append(p.Excluded, r)
		}
	}
}

// Include removes root properties from the exclusion mask.
func (p *Preset) Include(roots ...string) {
	drop := make(map[string]bool, len(roots))
	for _, r := range roots {
		drop[RootProperty(r)] = true
	}
	kept := p.Excluded[:0]
	for _, x := range p.Excluded {
		if !drop[x] {
			kept = append(kept, x)
		}
	}
	p.Excluded = kept
}

// ExcludeAll excludes every root property of the stored modifications. Entries
// already present in the mask are kept. The resulting mask is sorted.
func (p *Preset) ExcludeAll() {
	p.Exclude(p.RootProperties()...)
	sort.Strings(p.Excluded)
}

// IncludeAll clears the exclusion mask.
func (p *Preset) IncludeAll() {
	p.Excluded = nil
}

// Clone returns a deep copy of p.
func (p *Preset) Clone() *Preset {
	c := *p
	c.Modifications = append([]Modification(nil), p.Modifications...)
	c.Excluded = append([]string(nil), p.Excluded...)
	return &c
}
