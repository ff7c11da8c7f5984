package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Sheet is an ordered collection of rules. Sheets inherit rules from their parent
// sheets. Parent links may form cycles; nil parents are ignored.
type Sheet struct {
	Name     string
	Parents  []*Sheet
	Priority int
	Rules    []*Rule
}

// NewSheet creates an empty stylesheet.
func NewSheet(name string) *Sheet {
	return &Sheet{Name: name}
}

func (s *Sheet) String() string {
	return fmt.Sprintf("Sheet(%s prio=%d #rules=%d #parents=%d)", s.Name, s.Priority,
		len(s.Rules), len(s.Parents))
}

// AddRule creates a new rule, appends it to s and returns it.
func (s *Sheet) AddRule(selector string, priority int, presets ...*Preset) *Rule {
	r := NewRule(selector, priority, presets...)
	s.Rules = append(s.Rules, r)
	return r
}

// AddParent appends parent sheets. It returns s to allow for chaining.
func (s *Sheet) AddParent(parents ...*Sheet) *Sheet {
	s.Parents = append(s.Parents, parents...)
	return s
}

// Flatten returns all sheets reachable from s via parent links, each sheet exactly
// once. Traversal is depth-first and parents are listed before the sheet
// referencing them; s itself is the last entry. A nil sheet flattens to nothing.
func (s *Sheet) Flatten() []*Sheet {
	if s == nil {
		return nil
	}
	visited := make(map[*Sheet]bool)
	var sheets []*Sheet
	var flatten func(*Sheet)
	flatten = func(sheet *Sheet) {
		visited[sheet] = true // mark before descending: guards cycles
		for _, parent := range sheet.Parents {
			if parent == nil {
				tracer().Debugf("sheet %s: skipping nil parent", sheet.Name)
				continue
			}
			if visited[parent] {
				continue
			}
			flatten(parent)
		}
		sheets = append(sheets, sheet)
	}
	flatten(s)
	return sheets
}

// CollectSelectors returns the raw selectors of all rules reachable from s.
// Rules of s come first, followed by the rules of its parents (depth-first).
// Every sheet is visited once.
func (s *Sheet) CollectSelectors() []string {
	var results []string
	visited := make(map[*Sheet]bool)
	var collect func(*Sheet)
	collect = func(sheet *Sheet) {
		if sheet == nil || visited[sheet] {
			return
		}
		visited[sheet] = true
		for _, r := range sheet.Rules {
			if r != nil {
				results = append(results, r.Selector)
			}
		}
		for _, parent := range sheet.Parents {
			collect(parent)
		}
	}
	collect(s)
	return results
}

// SuggestTokens returns the tokens used by selectors reachable from s, excluding the
// tokens already present in the style name current. Tokens are distinct and listed
// in order of first appearance. Editors use this to offer completions for a style name.
func (s *Sheet) SuggestTokens(current string) []string {
	present := make(map[string]bool)
	for _, t := range strings.Split(current, ".") {
		present[strings.TrimSpace(t)] = true
	}
	var suggestions []string
	for _, sel := range s.CollectSelectors() {
		for _, t := range strings.Split(sel, ".") {
			t = strings.TrimSpace(t)
			if t == "" || present[t] {
				continue
			}
			present[t] = true
			suggestions = append(suggestions, t)
		}
	}
	return suggestions
}

// Validate checks priorities of all sheets reachable from s and of their rules.
// All violations are reported.
func (s *Sheet) Validate() error {
	var err error
	for _, sheet := range s.Flatten() {
		if sheet.Priority < MinPriority || sheet.Priority > MaxPriority {
			err = multierr.Append(err, fmt.Errorf("sheet %s: %w: %d", sheet.Name,
				ErrPriorityRange, sheet.Priority))
		}
		for _, r := range sheet.Rules {
			if r == nil {
				continue
			}
			if e := r.Validate(); e != nil {
				err = multierr.Append(err, fmt.Errorf("sheet %s: %w", sheet.Name, e))
			}
		}
	}
	return err
}
