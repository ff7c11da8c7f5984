package scenedbg

import (
	"testing"

	"github.com/npillmayer/presets/cascade"
	"github.com/npillmayer/presets/scene"
	"github.com/npillmayer/presets/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumps(t *testing.T) {
	base := style.NewSheet("base")
	p := style.NewPreset("Image").Set("color", "red").Set("size", "4")
	p.Exclude("size")
	base.AddRule("button", 0, p)
	ui := style.NewSheet("ui").AddParent(base)
	ui.AddRule("button.primary", 1, style.NewPreset("Image").Set("color", "blue"))
	ctx := cascade.Build(ui)
	idx := IndexString(ctx)
	t.Logf("\n%s", idx)
	assert.Contains(t, idx, "Cascade(root=ui #sheets=2 #entries=2)")
	assert.Contains(t, idx, "button.primary")
	assert.Contains(t, idx, "Image -size")

	canvas := scene.NewObject("canvas")
	canvas.Root = scene.NewRoot(ui)
	ok := scene.NewObject("ok")
	ok.SetStyleName("primary.button")
	bag := scene.NewBag("Image")
	ok.AddComponent(bag)
	canvas.AddChild(ok)
	tree := TreeString(canvas)
	t.Logf("\n%s", tree)
	assert.Contains(t, tree, "canvas root=ui")
	assert.Contains(t, tree, `ok "primary.button" [Image]`)

	matches, err := ctx.Resolve(ok.Tag, bag, scene.BagCapability{})
	require.NoError(t, err)
	m := MatchesString(matches)
	t.Logf("\n%s", m)
	assert.Contains(t, m, "Matches(#2)")
	assert.Contains(t, m, "color=blue")
	assert.NotContains(t, m, "size=4")
}
