package presets

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/presets/cascade"
	"github.com/npillmayer/presets/scene"
	"github.com/npillmayer/presets/selector"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// Configuration keys.
const (
	KeyTokenLimit  = "presets.tokenlimit"
	KeyTracePrefix = "tracelevel" // root level is read from "tracelevel.root"
)

// Options configure resolution of styles.
type Options struct {
	TokenLimit int // maximum number of tokens of a style name
}

// DefaultOptions returns the options used if nothing is configured.
func DefaultOptions() Options {
	return Options{TokenLimit: selector.DefaultTokenLimit}
}

// LoadOptions reads options from a configuration. Missing or non-positive values
// are replaced by defaults; a token limit above selector.MaxTokenLimit is capped.
func LoadOptions(conf schuko.Configuration) Options {
	opts := DefaultOptions()
	if conf == nil {
		return opts
	}
	if conf.IsSet(KeyTokenLimit) {
		if n := conf.GetInt(KeyTokenLimit); n > selector.MaxTokenLimit {
			tracer().Infof("%s=%d exceeds maximum, using %d", KeyTokenLimit, n, selector.MaxTokenLimit)
			opts.TokenLimit = selector.MaxTokenLimit
		} else if n > 0 {
			opts.TokenLimit = n
		} else {
			tracer().Infof("ignoring %s=%q, using %d", KeyTokenLimit,
				conf.GetString(KeyTokenLimit), opts.TokenLimit)
		}
	}
	return opts
}

// CascadeOptions converts opts into options for building cascade contexts.
func (opts Options) CascadeOptions() []cascade.Option {
	return []cascade.Option{cascade.TokenLimit(opts.TokenLimit)}
}

// Selection returns a scene selection configured with opts.
func (opts Options) Selection() scene.Selection {
	return scene.Selection{Options: opts.CascadeOptions()}
}

// ConfigureTracing sets up tracing from a configuration: it makes the Go log
// adapter available as "go", configures the root tracer from keys "tracing.adapter"
// and "tracelevel.root", and installs the trace2go selector for all packages.
func ConfigureTracing(conf schuko.Configuration) error {
	if conf == nil {
		return fmt.Errorf("cannot configure tracing without configuration")
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, KeyTracePrefix, trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
