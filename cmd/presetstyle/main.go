/*
Command presetstyle inspects preset stylesheets.

Stylesheets are read from CSS-like text files (see package
style/douceuradapter). Imported sheets are searched for in the directory of
the importing file, with extension ".css" if the import names none.

Usage:

    presetstyle [--config FILE] [--trace LEVEL] [--token-limit N] COMMAND …

Commands:

    variants TAG…                       list the selector variants of style names
    index FILE…                         print the cascade index of stylesheets
    resolve --tag TAG --type TYPE FILE… print the presets a component would get
    lint FILE…                          check stylesheets for errors

Configuration is read from a NestedText file "presetstyle.nt" at the usual
configuration locations, or from the file given with --config. Flags override
configured values.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/knadh/koanf/providers/file"
	"github.com/npillmayer/presets"
	"github.com/npillmayer/presets/selector"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	cli "github.com/urfave/cli/v3"
)

// tracer traces with key 'presets.cli'.
func tracer() tracing.Trace {
	return tracing.Select("presets.cli")
}

type appKey struct{}

// app holds what the commands share.
type app struct {
	conf *koanfadapter.KConf
	opts presets.Options
}

func appFromContext(ctx context.Context) *app {
	if a, ok := ctx.Value(appKey{}).(*app); ok {
		return a
	}
	return &app{opts: presets.DefaultOptions()}
}

// setup loads the configuration and configures tracing, after the command line
// has been parsed.
func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	conf := koanfadapter.New(nil, "presetstyle", []string{".nt"})
	conf.InitDefaults()
	if path := cmd.String("config"); path != "" {
		if err := conf.Koanf().Load(file.Provider(path), koanfadapter.Parser()); err != nil {
			return ctx, fmt.Errorf("unable to load configuration %s: %w", path, err)
		}
	}
	if !conf.IsSet("tracelevel.root") {
		conf.Set("tracelevel.root", "Error")
	}
	if cmd.IsSet("trace") {
		conf.Set("tracelevel.root", cmd.String("trace"))
	}
	if cmd.IsSet("token-limit") {
		conf.Set(presets.KeyTokenLimit, cmd.Int("token-limit"))
	}
	if err := presets.ConfigureTracing(conf); err != nil {
		return ctx, fmt.Errorf("unable to configure tracing: %w", err)
	}
	a := &app{conf: conf, opts: presets.LoadOptions(conf)}
	tracer().Debugf("token limit is %d", a.opts.TokenLimit)
	return context.WithValue(ctx, appKey{}, a), nil
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:            "presetstyle",
		Usage:           "inspect cascading preset stylesheets",
		HideHelpCommand: true,
		Before:          setup,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (NestedText)"},
			&cli.StringFlag{Name: "trace", Aliases: []string{"t"}, Usage: "trace `LEVEL` (Error, Info, Debug)"},
			&cli.IntFlag{Name: "token-limit", Usage: fmt.Sprintf("maximum number of tokens of a style name (at most %d)", selector.MaxTokenLimit)},
		},
		Commands: []*cli.Command{
			{
				Name:      "variants",
				Usage:     "List the selector variants of style names",
				ArgsUsage: "TAG…",
				Action:    runVariants,
			},
			{
				Name:      "index",
				Usage:     "Print the cascade index of stylesheets",
				ArgsUsage: "FILE…",
				Action:    runIndex,
			},
			{
				Name:      "resolve",
				Usage:     "Print the presets a component would get, in application order",
				ArgsUsage: "FILE…",
				Action:    runResolve,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "tag", Required: true, Usage: "style `NAME` of the object"},
					&cli.StringFlag{Name: "type", Required: true, Usage: "`TYPE` name of the component"},
				},
			},
			{
				Name:      "lint",
				Usage:     "Check stylesheets for errors",
				ArgsUsage: "FILE…",
				Action:    runLint,
			},
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "presetstyle: %v\n", err)
		os.Exit(1)
	}
}
