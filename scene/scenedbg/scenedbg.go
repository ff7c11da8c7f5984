/*
Package scenedbg implements helpers to debug cascade contexts and scene trees.

All helpers return multi-line strings suitable for t.Logf or terminal output.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scenedbg

import (
	"fmt"
	"strings"

	"github.com/npillmayer/presets/cascade"
	"github.com/npillmayer/presets/scene"
	"github.com/npillmayer/presets/style"
	tp "github.com/xlab/treeprint"
)

// IndexString renders the index of a cascade context: one branch per selector,
// one sub-branch per target type, and the entries in flattening order.
func IndexString(ctx *cascade.Context) string {
	root := "<nil>"
	if ctx.Root() != nil {
		root = ctx.Root().Name
	}
	p := tp.NewWithRoot(fmt.Sprintf("Cascade(root=%s #sheets=%d #entries=%d)",
		root, len(ctx.Sheets()), ctx.Len()))
	for _, sel := range ctx.Selectors() {
		sb := p.AddBranch(sel.String())
		for _, typ := range ctx.TargetTypes(sel) {
			tb := sb.AddBranch(typ)
			for _, e := range ctx.Lookup(sel.String(), typ) {
				tb.AddMetaNode(e.Specificity, fmt.Sprintf("%s %s", e.Sheet.Name, presetString(e.Preset)))
			}
		}
	}
	return p.String()
}

// TreeString renders an object and its subtree, including tags, stylesheet roots
// and components.
func TreeString(obj *scene.Object) string {
	p := tp.New()
	ppo(p, obj)
	return p.String()
}

func ppo(p tp.Tree, obj *scene.Object) {
	if obj == nil {
		return
	}
	if obj.ChildCount() == 0 {
		p.AddNode(objectString(obj))
		return
	}
	branch := p.AddBranch(objectString(obj))
	for _, ch := range obj.Children() {
		ppo(branch, ch)
	}
}

func objectString(obj *scene.Object) string {
	var b strings.Builder
	b.WriteString(obj.Name)
	if !obj.Tag.IsBlank() {
		fmt.Fprintf(&b, " %q", obj.StyleName())
	}
	if obj.Root != nil && obj.Root.Sheet != nil {
		fmt.Fprintf(&b, " root=%s", obj.Root.Sheet.Name)
		if obj.Root.AutoApply {
			b.WriteString("(auto)")
		}
	}
	if cs := obj.Components(); len(cs) > 0 {
		names := make([]string, len(cs))
		for i, c := range cs {
			names[i] = c.TypeName()
		}
		fmt.Fprintf(&b, " [%s]", strings.Join(names, ","))
	}
	return b.String()
}

// MatchesString renders a list of matches in application order.
func MatchesString(matches []cascade.Match) string {
	p := tp.NewWithRoot(fmt.Sprintf("Matches(#%d)", len(matches)))
	for i, m := range matches {
		b := p.AddMetaBranch(i+1, fmt.Sprintf("%s from %s (spec=%d)", m.Selector, m.Sheet.Name,
			m.Specificity))
		for _, mod := range m.Preset.Effective() {
			b.AddNode(mod.String())
		}
	}
	return p.String()
}

func presetString(p *style.Preset) string {
	if len(p.Excluded) == 0 {
		return p.Name
	}
	return fmt.Sprintf("%s -%s", p.Name, strings.Join(p.Excluded, ","))
}
