package cascade

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
	"strings"

	"github.com/npillmayer/presets/selector"
	"github.com/npillmayer/presets/style"
	"go.uber.org/multierr"
)

// ErrNoCapability is returned if presets should be applied without a Capability.
var ErrNoCapability = errors.New("no capability to apply presets")

// Target is a styled component. Its type name is matched against the target
// type of presets.
type Target interface {
	TypeName() string
}

// Capability is supplied by collaborators and encapsulates everything the cascade
// needs to know about concrete components.
type Capability interface {
	// CanApply is a predicate: can the stored properties of p be applied to t?
	CanApply(p *style.Preset, t Target) bool
	// Apply writes the effective modifications of p to t. origin is the sheet
	// the preset has been found in.
	Apply(origin *style.Sheet, p *style.Preset, t Target) error
}

// Recorder may optionally be implemented by a Capability. Record is called once
// before the first preset is applied to a target, Dirty once after the last one.
// Neither is called in dry mode or if no preset matches.
type Recorder interface {
	Record(t Target)
	Dirty(t Target)
}

// Match is a resolved preset for a target. Selector is the selector variant of the
// style name which matched.
type Match struct {
	Entry
}

func (m Match) String() string {
	return m.Entry.String()
}

// Resolve computes the matches of a style tag for a target, in application order.
//
// The tag's name is expanded into selector variants; every non-blank variant is
// looked up for the target's type name, and entries whose preset fails
// the capability's CanApply are dropped. Survivors are stably sorted by ascending specificity,
// i.e. entries of equal specificity keep their encounter order. A nil capability
// accepts every preset.
//
// A nil or blank tag yields no matches. The only error condition is a style name
// with more tokens than the context's token limit.
func (ctx *Context) Resolve(tag *style.Tag, t Target, capab Capability) ([]Match, error) {
	if tag.IsBlank() || t == nil {
		return nil, nil
	}
	variants, err := selector.ExpandVariantsLimit(tag.Name, 0, ctx.tokenLimit)
	if err != nil {
		return nil, err
	}
	typeName := t.TypeName()
	var matches []Match
	for _, v := range variants {
		if strings.TrimSpace(v) == "" {
			continue
		}
		types, ok := ctx.index[selector.Selector(v)]
		if !ok {
			continue
		}
		for _, entry := range types[typeName] {
			if capab != nil && !capab.CanApply(entry.Preset, t) {
				tracer().Debugf("preset %s not applicable to %s", entry.Preset.Name, typeName)
				continue
			}
			matches = append(matches, Match{Entry: entry})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Specificity < matches[j].Specificity
	})
	tracer().P("tag", tag.Name).Debugf("%d matches for %s", len(matches), typeName)
	return matches, nil
}

// Apply resolves the matches of a style tag for a target and applies them in
// order: later matches overwrite properties set by earlier ones. With dry set,
// selection and ordering are identical but nothing is applied.
//
// Failing applications do not stop the pass; all errors are reported together.
// The matches are returned in any case.
func (ctx *Context) Apply(tag *style.Tag, t Target, capab Capability, dry bool) ([]Match, error) {
	matches, err := ctx.Resolve(tag, t, capab)
	if err != nil || dry || len(matches) == 0 {
		return matches, err
	}
	if capab == nil {
		return matches, ErrNoCapability
	}
	return matches, ApplyMatches(matches, t, capab)
}

// ApplyMatches applies a list of resolved matches to a target, in list order.
func ApplyMatches(matches []Match, t Target, capab Capability) error {
	if len(matches) == 0 {
		return nil
	}
	if capab == nil {
		return ErrNoCapability
	}
	rec, recording := capab.(Recorder)
	if recording {
		rec.Record(t)
	}
	var err error
	for _, m := range matches {
		if e := capab.Apply(m.Sheet, m.Preset, t); e != nil {
			tracer().Errorf("applying preset %s to %s: %v", m.Preset.Name, t.TypeName(), e)
			err = multierr.Append(err, fmt.Errorf("preset %s of sheet %s: %w", m.Preset.Name,
				m.Sheet.Name, e))
		}
	}
	if recording {
		rec.Dirty(t)
	}
	return err
}
