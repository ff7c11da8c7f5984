package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/presets/cascade"
	"github.com/npillmayer/presets/scene/scenedbg"
	"github.com/npillmayer/presets/selector"
	"github.com/npillmayer/presets/style"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
)

var errNoArgs = errors.New("missing arguments")

func runVariants(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return fmt.Errorf("%w: no style names given", errNoArgs)
	}
	a := appFromContext(ctx)
	w := cmd.Root().Writer
	for _, tag := range cmd.Args().Slice() {
		variants, err := selector.ExpandVariantsLimit(tag, 0, a.opts.TokenLimit)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%q: %d variants\n", tag, len(variants))
		for i, v := range variants {
			if v == "" {
				v = "(empty)"
			}
			fmt.Fprintf(w, "  %3d  %s\n", i, v)
		}
	}
	return nil
}

func runIndex(ctx context.Context, cmd *cli.Command) error {
	sheets, err := loadArgs(cmd)
	if err != nil {
		return err
	}
	a := appFromContext(ctx)
	for _, sheet := range sheets {
		c := cascade.Build(sheet, a.opts.CascadeOptions()...)
		fmt.Fprintln(cmd.Root().Writer, scenedbg.IndexString(c))
	}
	return nil
}

func runResolve(ctx context.Context, cmd *cli.Command) error {
	sheets, err := loadArgs(cmd)
	if err != nil {
		return err
	}
	a := appFromContext(ctx)
	tag := style.NewTag(cmd.String("tag"))
	target := typeName(cmd.String("type"))
	for _, sheet := range sheets {
		c := cascade.Build(sheet, a.opts.CascadeOptions()...)
		matches, err := c.Resolve(tag, target, nil)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.Root().Writer, "%s: %s for %s\n%s\n", sheet.Name, tag, target,
			scenedbg.MatchesString(matches))
	}
	return nil
}

func runLint(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return fmt.Errorf("%w: no stylesheet files given", errNoArgs)
	}
	w := cmd.Root().Writer
	sheets, err := newLoader().loadAll(cmd.Args().Slice())
	for _, sheet := range sheets {
		err = multierr.Append(err, sheet.Validate())
	}
	errs := multierr.Errors(err)
	for _, e := range errs {
		fmt.Fprintf(w, "%v\n", e)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d problems found", len(errs))
	}
	fmt.Fprintf(w, "%s: ok\n", strings.Join(cmd.Args().Slice(), ", "))
	return nil
}

func loadArgs(cmd *cli.Command) ([]*style.Sheet, error) {
	if cmd.NArg() == 0 {
		return nil, fmt.Errorf("%w: no stylesheet files given", errNoArgs)
	}
	return newLoader().loadAll(cmd.Args().Slice())
}

// typeName is a component type without any properties, for resolving only.
type typeName string

func (t typeName) TypeName() string { return string(t) }

func (t typeName) String() string { return string(t) }
