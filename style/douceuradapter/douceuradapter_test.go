package douceuradapter

import (
	"errors"
	"testing"

	"github.com/npillmayer/presets/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

var base = `
button Image {
    color: gray;
}
`

var ui = `
@import "base";
@priority 2;

button.primary Image {
    color: #3366ff;
    border.width: 2;
    label: "OK";
    -preset-exclude: border, size;
}
primary.button Image, button.primary Text {
    font: serif;
}
button Image {
    -preset-priority: -1;
    color: black;
}
`

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "presets.style")
	defer teardown()
	//
	baseSheet, err := Parse("base", base, nil)
	require.NoError(t, err)
	resolve := func(name string) (*style.Sheet, error) {
		if name == "base" {
			return baseSheet, nil
		}
		return nil, errors.New("unknown sheet " + name)
	}
	sheet, err := Parse("ui", ui, resolve)
	require.NoError(t, err)
	assert.Equal(t, 2, sheet.Priority)
	require.Len(t, sheet.Parents, 1)
	assert.Same(t, baseSheet, sheet.Parents[0])
	require.Len(t, sheet.Rules, 2, "blocks for the same selector and priority share a rule")
	//
	r := sheet.Rules[0]
	assert.Equal(t, "button.primary", r.Selector)
	assert.Equal(t, 0, r.Priority)
	require.Len(t, r.Presets, 2)
	img, ok := r.PresetFor("Image")
	require.True(t, ok)
	v, _ := img.Value("color")
	assert.Equal(t, style.Property("#3366ff"), v)
	v, _ = img.Value("border.width")
	assert.Equal(t, style.Property("2"), v)
	v, _ = img.Value("label")
	assert.Equal(t, style.Property("OK"), v)
	v, _ = img.Value("font")
	assert.Equal(t, style.Property("serif"), v)
	assert.True(t, img.IsExcluded("border.width"))
	assert.True(t, img.IsExcluded("size"))
	txt, ok := r.PresetFor("Text")
	require.True(t, ok)
	assert.Len(t, txt.Modifications, 1)
	//
	r = sheet.Rules[1]
	assert.Equal(t, "button", r.Selector)
	assert.Equal(t, -1, r.Priority)
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "presets.style")
	defer teardown()
	//
	text := `
@import "base";
@priority high;
button { color: red; }
button Image { color: red; }
`
	sheet, err := Parse("broken", text, nil)
	require.Error(t, err)
	require.NotNil(t, sheet)
	assert.Len(t, multierr.Errors(err), 3)
	assert.ErrorIs(t, err, ErrNoResolver)
	assert.ErrorIs(t, err, ErrPrelude)
	assert.Len(t, sheet.Rules, 1, "well-formed rules are kept")
}

func TestUnquote(t *testing.T) {
	assert.Equal(t, "a b", unquote(` "a b" `))
	assert.Equal(t, "x", unquote(`'x'`))
	assert.Equal(t, `"x`, unquote(`"x`))
}
