package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
)

// Priorities of rules and sheets are restricted to [MinPriority…MaxPriority].
const (
	MinPriority = -100
	MaxPriority = 100
)

// ErrPriorityRange is flagged for priorities outside of [MinPriority…MaxPriority].
var ErrPriorityRange = errors.New("priority out of range")

// Rule associates a raw selector with an ordered list of presets.
// Rules with a blank selector never match.
type Rule struct {
	Selector string
	Priority int
	Presets  []*Preset
}

// NewRule creates a rule for a selector. Nil presets are dropped.
func NewRule(selector string, priority int, presets ...*Preset) *Rule {
	r := &Rule{Selector: selector, Priority: priority}
	for _, p := range presets {
		if p != nil {
			r.Presets = append(r.Presets, p)
		}
	}
	return r
}

func (r *Rule) String() string {
	return fmt.Sprintf("Rule(%q prio=%d #presets=%d)", r.Selector, r.Priority, len(r.Presets))
}

// Put stores a preset with r. This is the operation an editor performs when a
// component is dropped onto a rule:
//
// If r already holds a preset for the same target type, it is replaced by p and p
// inherits the old exclusion mask. Otherwise p is appended with all of its properties
// excluded; designers include the properties they want to style one by one.
//
// Nil entries of r.Presets are removed on the way. Put returns true if a preset
// has been replaced.
func (r *Rule) Put(p *Preset) bool {
	if p == nil {
		return false
	}
	presets := r.Presets[:0]
	for _, q := range r.Presets {
		if q != nil {
			presets = append(presets, q)
		}
	}
	r.Presets = presets
	for i, q := range r.Presets {
		if q.TargetType == p.TargetType {
			p.Excluded = append([]string(nil), q.Excluded...)
			r.Presets[i] = p
			tracer().Debugf("rule %q: replaced preset for %s", r.Selector, p.TargetType)
			return true
		}
	}
	p.ExcludeAll()
	r.Presets = append(r.Presets, p)
	return false
}

// PresetFor returns the first preset of r for a target type.
func (r *Rule) PresetFor(targetType string) (*Preset, bool) {
	for _, p := range r.Presets {
		if p != nil && p.TargetType == targetType {
			return p, true
		}
	}
	return nil, false
}

// Validate checks the priority range of r.
func (r *Rule) Validate() error {
	if r.Priority < MinPriority || r.Priority > MaxPriority {
		return fmt.Errorf("rule %q: %w: %d", r.Selector, ErrPriorityRange, r.Priority)
	}
	return nil
}
