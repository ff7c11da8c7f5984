package scene

import (
	"errors"
	"testing"

	"github.com/npillmayer/presets/cascade"
	"github.com/npillmayer/presets/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	canvas, ok, panel, cancel *Object
	okBag, cancelBag          *Bag
}

func color(value string) style.Modification {
	return style.Modification{Path: "color", Value: style.Property(value)}
}

// canvas (root ui)
//  +-- ok "primary.button"
//  +-- panel (root inner)
//       +-- cancel "button"
func buildScene() *fixture {
	ui := style.NewSheet("ui")
	ui.AddRule("button", 0, style.NewPreset("Image", color("gray")))
	ui.AddRule("button.primary", 0, style.NewPreset("Image", color("blue")))
	inner := style.NewSheet("inner")
	inner.AddRule("button", 0, style.NewPreset("Image", color("green")))

	f := &fixture{
		canvas:    NewObject("canvas"),
		ok:        NewObject("ok"),
		panel:     NewObject("panel"),
		cancel:    NewObject("cancel"),
		okBag:     NewBag("Image"),
		cancelBag: NewBag("Image"),
	}
	f.canvas.Root = NewRoot(ui)
	f.panel.Root = NewRoot(inner)
	f.ok.SetStyleName("primary.button")
	f.ok.AddComponent(f.okBag, NewBag("Text"))
	f.cancel.SetStyleName("button")
	f.cancel.AddComponent(f.cancelBag)
	f.canvas.AddChild(f.ok).AddChild(f.panel)
	f.panel.AddChild(f.cancel)
	return f
}

func colorOf(b *Bag) string {
	c, _ := b.Get("color")
	return c.String()
}

func TestTreeStructure(t *testing.T) {
	f := buildScene()
	assert.Equal(t, 2, f.canvas.ChildCount())
	assert.Same(t, f.canvas, f.panel.Parent())
	ch, ok := f.canvas.Child(1)
	require.True(t, ok)
	assert.Same(t, f.panel, ch)
	_, ok = f.canvas.Child(2)
	assert.False(t, ok)
	//
	f.panel.AddChild(f.ok) // re-parenting isolates from canvas
	assert.Equal(t, 1, f.canvas.ChildCount())
	assert.Same(t, f.panel, f.ok.Parent())
}

func TestWalkOrder(t *testing.T) {
	f := buildScene()
	var names []string
	err := f.canvas.Walk(func(o *Object) error {
		names = append(names, o.Name)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"canvas", "ok", "panel", "cancel"}, names)
	stop := errors.New("stop")
	names = names[:0]
	err = f.canvas.Walk(func(o *Object) error {
		names = append(names, o.Name)
		if o == f.ok {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"canvas", "ok"}, names)
}

func TestNearestRoot(t *testing.T) {
	f := buildScene()
	r, decl, ok := f.ok.NearestRoot()
	require.True(t, ok)
	assert.Same(t, f.canvas.Root, r)
	assert.Same(t, f.canvas, decl)
	r, decl, _ = f.cancel.NearestRoot()
	assert.Same(t, f.panel.Root, r)
	assert.Same(t, f.panel, decl)
	_, _, ok = NewObject("loose").NearestRoot()
	assert.False(t, ok)
	_, err := StylerFor(NewObject("loose"))
	assert.ErrorIs(t, err, ErrNoRoot)
}

func TestStyleName(t *testing.T) {
	o := NewObject("o")
	assert.Equal(t, "", o.StyleName())
	o.SetStyleName("a.b")
	assert.Equal(t, "a.b", o.StyleName())
	o.SetStyleName("  ")
	assert.Nil(t, o.Tag)
}

func TestApplyRecursiveSkipsNested(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "presets.scene")
	defer teardown()
	//
	f := buildScene()
	s := NewStyler(f.canvas.Root)
	require.NoError(t, s.ApplyRecursive(f.canvas, false))
	assert.Equal(t, "blue", colorOf(f.okBag), "button.primary is more specific than button")
	assert.Equal(t, 2, f.okBag.Revision())
	assert.Equal(t, 0, f.cancelBag.Revision(), "nested root must be skipped")
}

func TestApplyRecursiveIncludesNested(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "presets.scene")
	defer teardown()
	//
	f := buildScene()
	require.NoError(t, ApplyRecursive(f.canvas))
	assert.Equal(t, "blue", colorOf(f.okBag))
	assert.Equal(t, "green", colorOf(f.cancelBag))
	assert.Equal(t, 1, f.cancelBag.Revision(), "outer cascade must not contribute to nested root")
}

func TestApplyFromInside(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "presets.scene")
	defer teardown()
	//
	f := buildScene()
	require.NoError(t, Apply(f.cancel, f.ok, NewObject("loose")))
	assert.Equal(t, "green", colorOf(f.cancelBag))
	assert.Equal(t, "blue", colorOf(f.okBag))
}

func TestApplyIsNotRecursive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "presets.scene")
	defer teardown()
	//
	f := buildScene()
	require.NoError(t, Apply(f.canvas))
	assert.Equal(t, 0, f.okBag.Revision())
}

func TestAnalyze(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "presets.scene")
	defer teardown()
	//
	f := buildScene()
	result, err := Analyze(f.ok, f.cancel)
	require.NoError(t, err)
	assert.Len(t, result, 2, "the Text bag of ok has no matches")
	require.Len(t, result[f.okBag], 2)
	assert.Equal(t, "button", result[f.okBag][0].Selector.String())
	assert.Equal(t, "button.primary", result[f.okBag][1].Selector.String())
	assert.Len(t, result[f.cancelBag], 1)
	assert.Equal(t, 0, f.okBag.Revision(), "analyzing must not apply")
	assert.Empty(t, f.okBag.Paths())
}

func TestApplyComponent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "presets.scene")
	defer teardown()
	//
	f := buildScene()
	c, ok := f.ok.ComponentOf("Image")
	require.True(t, ok)
	matches, err := Selection{}.ApplyComponent(f.ok, c)
	require.NoError(t, err)
	assert.Len(t, matches, 2)
	assert.Equal(t, "blue", colorOf(f.okBag))
}

type countingCapability struct {
	BagCapability
	records, dirties int
	fail             bool
}

func (cc *countingCapability) Apply(origin *style.Sheet, p *style.Preset, t cascade.Target) error {
	if cc.fail {
		return errors.New("refused")
	}
	return cc.BagCapability.Apply(origin, p, t)
}

func (cc *countingCapability) Record(t cascade.Target) { cc.records++ }
func (cc *countingCapability) Dirty(t cascade.Target)  { cc.dirties++ }

func TestRootCapability(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "presets.scene")
	defer teardown()
	//
	f := buildScene()
	cc := &countingCapability{}
	f.canvas.Root.Capability = cc
	require.NoError(t, ApplyRecursive(f.canvas))
	assert.Equal(t, 1, cc.records, "only the Image bag of ok is styled under canvas")
	assert.Equal(t, 1, cc.dirties)
	assert.Equal(t, "green", colorOf(f.cancelBag), "nested root uses its own capability")
}

func TestApplyCollectsErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "presets.scene")
	defer teardown()
	//
	f := buildScene()
	f.canvas.Root.Capability = &countingCapability{fail: true}
	err := ApplyRecursive(f.canvas)
	assert.Error(t, err)
	assert.Equal(t, "green", colorOf(f.cancelBag), "failures must not stop the pass")
}

func TestClipboard(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "presets.scene")
	defer teardown()
	//
	f := buildScene()
	cb := &Clipboard{}
	assert.True(t, cb.IsEmpty())
	assert.NoError(t, cb.Paste(f.ok), "pasting an empty clipboard is a no-op")
	assert.False(t, cb.Copy(f.panel), "panel is untagged")
	require.True(t, cb.Copy(f.ok))
	name, ok := cb.Content()
	assert.True(t, ok)
	assert.Equal(t, "primary.button", name)
	//
	extra := NewObject("extra")
	bag := NewBag("Image")
	extra.AddComponent(bag)
	f.canvas.AddChild(extra)
	require.NoError(t, cb.Paste(extra))
	assert.Equal(t, "primary.button", extra.StyleName())
	assert.Equal(t, "blue", colorOf(bag))
	cb.Clear()
	assert.True(t, cb.IsEmpty())
}

func TestRefresh(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "presets.scene")
	defer teardown()
	//
	f := buildScene()
	f.canvas.Root.AutoApply = true
	f.panel.Root.AutoApply = true
	roots := AutoApplyRoots(f.canvas)
	require.Len(t, roots, 1, "panel has an auto-applying ancestor")
	assert.Same(t, f.canvas, roots[0])
	require.NoError(t, Refresh(f.canvas))
	assert.Equal(t, "blue", colorOf(f.okBag))
	assert.Equal(t, "green", colorOf(f.cancelBag))
	assert.Equal(t, 1, f.cancelBag.Revision())
	//
	f.canvas.Root.AutoApply = false
	roots = AutoApplyRoots(f.canvas)
	require.Len(t, roots, 1)
	assert.Same(t, f.panel, roots[0])
}

func TestCapture(t *testing.T) {
	b := NewBag("Image").Set("size", "12").Set("color", "red")
	p := b.Capture()
	assert.Equal(t, "Image", p.TargetType)
	assert.Equal(t, []style.Modification{color("red"), {Path: "size", Value: "12"}}, p.Modifications)
	assert.Empty(t, p.Excluded)
	assert.False(t, BagCapability{}.CanApply(p, NewBag("Text")))
	assert.ErrorIs(t, BagCapability{}.Apply(nil, p, fakeTarget("Image")), ErrNotABag)
}

type fakeTarget string

func (f fakeTarget) TypeName() string { return string(f) }

func TestSelectionSkipsNilObjects(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "presets.scene")
	defer teardown()
	//
	f := buildScene()
	assert.NoError(t, Apply(nil))
	assert.NoError(t, Apply(nil, f.ok))
	assert.Equal(t, "blue", colorOf(f.okBag))
	assert.NoError(t, ApplyRecursive(nil, f.panel))
	assert.Equal(t, "green", colorOf(f.cancelBag))
	result, err := Analyze(nil, f.ok)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	f.canvas.Root.AutoApply = true
	assert.Equal(t, []*Object{f.canvas}, AutoApplyRoots(nil, f.canvas))
	assert.NoError(t, Refresh(nil))
	_, err = StylerFor(nil)
	assert.ErrorIs(t, err, ErrNoRoot)
	_, err = Selection{}.ApplyComponent(nil, f.okBag)
	assert.ErrorIs(t, err, ErrNoRoot)
	cb := &Clipboard{}
	require.True(t, cb.Copy(f.ok))
	assert.NoError(t, cb.Paste(nil, f.cancel))
	assert.Equal(t, "primary.button", f.cancel.StyleName())
}
