/*
Package douceuradapter reads preset stylesheets from CSS-like text.

Stylesheet text is parsed with github.com/aymerick/douceur. Its structure is:

    @import "base";
    @priority 2;

    button.primary Image {
        color: #3366ff;
        border.width: 2;
        -preset-priority: 1;
        -preset-exclude: border, size;
    }

@import adds a parent sheet, found by a Resolver. @priority sets the sheet priority.
The prelude of a rule is "<selector> <target type>". Property paths may be dotted.
Declarations -preset-priority and -preset-exclude set the rule priority and the
exclusion mask of the preset; every other declaration is a property modification.

A rule prelude may list several comma-separated "<selector> <target type>" pairs.
Blocks with the same selector and priority end up in the same style.Rule; blocks
for an already present target type add to the existing preset.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/presets/selector"
	"github.com/npillmayer/presets/style"
	"github.com/npillmayer/schuko/tracing"
	"go.uber.org/multierr"
)

// tracer traces with key 'presets.style'.
func tracer() tracing.Trace {
	return tracing.Select("presets.style")
}

// Errors flagged while reading stylesheets.
var (
	ErrPrelude    = errors.New("malformed rule prelude")
	ErrNoResolver = errors.New("cannot import stylesheet without a resolver")
)

// Declarations with special meaning. All other declarations are property
// modifications.
const (
	PriorityProperty = "-preset-priority"
	ExcludeProperty  = "-preset-exclude"
)

// Resolver finds a parent stylesheet by name, for @import rules.
type Resolver func(name string) (*style.Sheet, error)

// Parse reads a stylesheet from text. resolve may be nil for sheets without
// @import rules.
//
// Parse does not stop at the first malformed rule; all errors are reported
// together, together with the sheet built from the well-formed rules.
func Parse(name string, text string, resolve Resolver) (*style.Sheet, error) {
	stylesheet, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("stylesheet %s: %w", name, err)
	}
	b := builder{sheet: style.NewSheet(name), rules: make(map[ruleKey]*style.Rule)}
	for _, r := range stylesheet.Rules {
		switch r.Kind {
		case css.AtRule:
			err = multierr.Append(err, b.atRule(r, resolve))
		case css.QualifiedRule:
			err = multierr.Append(err, b.qualifiedRule(r))
		}
	}
	tracer().Debugf("stylesheet %s: %d rules, %d parents", name, len(b.sheet.Rules),
		len(b.sheet.Parents))
	return b.sheet, err
}

type ruleKey struct {
	sel  selector.Selector
	prio int
}

type builder struct {
	sheet *style.Sheet
	rules map[ruleKey]*style.Rule
}

func (b *builder) atRule(r *css.Rule, resolve Resolver) error {
	switch r.Name {
	case "@priority":
		prio, err := strconv.Atoi(strings.TrimSpace(r.Prelude))
		if err != nil {
			return fmt.Errorf("%w: @priority %q", ErrPrelude, r.Prelude)
		}
		b.sheet.Priority = prio
	case "@import":
		parentName := unquote(r.Prelude)
		if parentName == "" {
			return fmt.Errorf("%w: @import without a name", ErrPrelude)
		}
		if resolve == nil {
			return fmt.Errorf("%w: %s", ErrNoResolver, parentName)
		}
		parent, err := resolve(parentName)
		if err != nil {
			return fmt.Errorf("import %s: %w", parentName, err)
		}
		b.sheet.AddParent(parent)
	default:
		tracer().Infof("stylesheet %s: ignoring %s", b.sheet.Name, r.Name)
	}
	return nil
}

func (b *builder) qualifiedRule(r *css.Rule) error {
	prio, excluded, mods, err := declarations(r.Declarations)
	for _, prelude := range r.Selectors {
		rawSel, targetType, ok := splitPrelude(prelude)
		if !ok {
			err = multierr.Append(err, fmt.Errorf("%w: %q", ErrPrelude, prelude))
			continue
		}
		sel, _, e := selector.Normalize(rawSel)
		if e != nil {
			err = multierr.Append(err, fmt.Errorf("%w: %q: %v", ErrPrelude, prelude, e))
			continue
		}
		key := ruleKey{sel: sel, prio: prio}
		rule, found := b.rules[key]
		if !found {
			rule = b.sheet.AddRule(rawSel, prio)
			b.rules[key] = rule
		}
		preset, found := rule.PresetFor(targetType)
		if !found {
			preset = style.NewPreset(targetType)
			rule.Presets = append(rule.Presets, preset)
		}
		for _, m := range mods {
			preset.Set(m.Path, m.Value)
		}
		preset.Exclude(excluded...)
	}
	return err
}

// splitPrelude splits "<selector> <target type>" at the last run of white space.
func splitPrelude(prelude string) (string, string, bool) {
	prelude = strings.TrimSpace(prelude)
	i := strings.LastIndexAny(prelude, " \t\r\n")
	if i < 0 {
		return "", "", false
	}
	sel, typ := strings.TrimSpace(prelude[:i]), prelude[i+1:]
	return sel, typ, sel != "" && typ != ""
}

func declarations(decls []*css.Declaration) (prio int, excluded []string,
	mods []style.Modification, err error) {
	//
	for _, d := range decls {
		switch d.Property {
		case PriorityProperty:
			p, e := strconv.Atoi(d.Value)
			if e != nil {
				err = multierr.Append(err, fmt.Errorf("%s: not a number: %q", PriorityProperty, d.Value))
				continue
			}
			prio = p
		case ExcludeProperty:
			for _, x := range strings.Split(d.Value, ",") {
				if x = strings.TrimSpace(x); x != "" {
					excluded = append(excluded, x)
				}
			}
		default:
			if d.Important {
				tracer().Debugf("'!important' has no meaning for presets: %s", d.Property)
			}
			mods = append(mods, style.Modification{
				Path:  d.Property,
				Value: style.Property(unquote(d.Value)),
			})
		}
	}
	return
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
