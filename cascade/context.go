package cascade

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/presets/selector"
	"github.com/npillmayer/presets/style"
)

// Entry is an indexed preset, together with its origin and specificity.
type Entry struct {
	Sheet       *style.Sheet
	Rule        *style.Rule
	Preset      *style.Preset
	Selector    selector.Selector // normalized selector of Rule
	Specificity int
}

func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s ⇒ %s (spec=%d)", e.Sheet.Name, e.Selector, e.Preset.Name, e.Specificity)
}

// byType maps target type names to index entries.
type byType map[string][]Entry

// Context is the resolution engine for one root stylesheet. It indexes presets by
// normalized selector and target type. Entry lists are kept in flattening order
// and are sorted by specificity at match time only.
type Context struct {
	root       *style.Sheet
	sheets     []*style.Sheet
	index      map[selector.Selector]byType
	size       int
	tokenLimit int
}

// Option configures a Context.
type Option func(*Context)

// TokenLimit sets the maximum number of tokens of a style name the context will expand
// into variants. n ≤ 0 selects selector.DefaultTokenLimit, and n is never larger
// than selector.MaxTokenLimit.
func TokenLimit(n int) Option {
	return func(ctx *Context) {
		ctx.tokenLimit = selector.ClampTokenLimit(n)
	}
}

// Build creates a context for a root stylesheet. The parent graph of root is
// flattened with each sheet visited once; nil parents are skipped. Rules with a
// blank selector and nil presets are ignored. A nil root results in an empty context.
func Build(root *style.Sheet, opts ...Option) *Context {
	ctx := &Context{
		root:       root,
		index:      make(map[selector.Selector]byType),
		tokenLimit: selector.DefaultTokenLimit,
	}
	for _, opt := range opts {
		opt(ctx)
	}
	ctx.sheets = root.Flatten()
	for _, sheet := range ctx.sheets {
		for _, rule := range sheet.Rules {
			if rule == nil {
				continue
			}
			sel, n, err := selector.Normalize(rule.Selector)
			if err != nil {
				tracer().Debugf("sheet %s: skipping rule with empty selector", sheet.Name)
				continue
			}
			spec := Specificity(rule.Priority, n, sheet.Priority)
			types := ctx.index[sel]
			if types == nil {
				types = make(byType)
				ctx.index[sel] = types
			}
			for _, preset := range rule.Presets {
				if preset == nil {
					continue
				}
				types[preset.TargetType] = append(types[preset.TargetType], Entry{
					Sheet:       sheet,
					Rule:        rule,
					Preset:      preset,
					Selector:    sel,
					Specificity: spec,
				})
				ctx.size++
			}
		}
	}
	tracer().P("root", sheetName(root)).Debugf("cascade context: %d sheets, %d selectors, %d entries",
		len(ctx.sheets), len(ctx.index), ctx.size)
	return ctx
}

func sheetName(s *style.Sheet) string {
	if s == nil {
		return "<nil>"
	}
	return s.Name
}

// Root returns the root stylesheet the context has been built for.
func (ctx *Context) Root() *style.Sheet {
	return ctx.root
}

// Sheets returns the flattened stylesheets, parents before children.
func (ctx *Context) Sheets() []*style.Sheet {
	return ctx.sheets
}

// Len returns the number of index entries.
func (ctx *Context) Len() int {
	return ctx.size
}

// TokenLimitValue returns the token limit in effect for variant expansion.
func (ctx *Context) TokenLimitValue() int {
	return ctx.tokenLimit
}

// Selectors returns all indexed selectors in sorted order.
func (ctx *Context) Selectors() []selector.Selector {
	sels := make([]selector.Selector, 0, len(ctx.index))
	for sel := range ctx.index {
		sels = append(sels, sel)
	}
	sort.Slice(sels, func(i, j int) bool { return sels[i] < sels[j] })
	return sels
}

// TargetTypes returns the target type names indexed for a selector, in sorted order.
func (ctx *Context) TargetTypes(sel selector.Selector) []string {
	types := ctx.index[sel]
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the index entries for a selector and a target type, in flattening
// order. sel may be un-normalized; it is normalized before lookup.
func (ctx *Context) Lookup(sel string, typeName string) []Entry {
	if strings.TrimSpace(sel) == "" {
		return nil
	}
	norm, _, err := selector.Normalize(sel)
	if err != nil {
		return nil
	}
	types, ok := ctx.index[norm]
	if !ok {
		return nil
	}
	return types[typeName]
}
