package presets

import (
	"testing"

	"github.com/npillmayer/presets/selector"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/stretchr/testify/assert"
)

func TestLoadOptions(t *testing.T) {
	opts := LoadOptions(nil)
	assert.Equal(t, selector.DefaultTokenLimit, opts.TokenLimit)
	//
	conf := testconfig.Conf{}
	assert.Equal(t, selector.DefaultTokenLimit, LoadOptions(conf).TokenLimit)
	conf.Set(KeyTokenLimit, "5")
	assert.Equal(t, 5, LoadOptions(conf).TokenLimit)
	conf.Set(KeyTokenLimit, "-1")
	assert.Equal(t, selector.DefaultTokenLimit, LoadOptions(conf).TokenLimit)
	conf.Set(KeyTokenLimit, "100000")
	assert.Equal(t, selector.MaxTokenLimit, LoadOptions(conf).TokenLimit)
	conf.Set(KeyTokenLimit, "many")
	assert.Equal(t, selector.DefaultTokenLimit, LoadOptions(conf).TokenLimit)
}

func TestCascadeOptions(t *testing.T) {
	opts := Options{TokenLimit: 3}
	assert.Len(t, opts.CascadeOptions(), 1)
	assert.Len(t, opts.Selection().Options, 1)
}

func TestConfigureTracing(t *testing.T) {
	assert.Error(t, ConfigureTracing(nil))
	conf := testconfig.Conf{}
	conf.Set("tracing.adapter", "go")
	conf.Set("tracelevel.root", "Info")
	assert.NoError(t, ConfigureTracing(conf))
	assert.Equal(t, tracing.LevelInfo, trace2go.Root().GetTraceLevel())
	tracer().Infof("tracing configured")
}
