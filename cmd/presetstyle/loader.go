package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/presets/style"
	"github.com/npillmayer/presets/style/douceuradapter"
	"go.uber.org/multierr"
)

// ErrImportCycle is returned if stylesheet files import each other.
var ErrImportCycle = errors.New("import cycle")

// loader reads stylesheet files and the files they import. Each file is read
// once; imports are resolved relative to the importing file.
type loader struct {
	sheets  map[string]*style.Sheet // by absolute path
	loading map[string]bool
}

func newLoader() *loader {
	return &loader{
		sheets:  make(map[string]*style.Sheet),
		loading: make(map[string]bool),
	}
}

// load reads a stylesheet file. Parse errors are returned together with the
// sheet built from the well-formed parts of the file.
func (l *loader) load(path string) (*style.Sheet, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if sheet, ok := l.sheets[abs]; ok {
		return sheet, nil
	}
	if l.loading[abs] {
		return nil, fmt.Errorf("%w at %s", ErrImportCycle, path)
	}
	l.loading[abs] = true
	defer delete(l.loading, abs)
	text, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	name := sheetName(abs)
	tracer().Debugf("loading stylesheet %s from %s", name, abs)
	sheet, err := douceuradapter.Parse(name, string(text), l.resolverFor(abs))
	if sheet != nil {
		l.sheets[abs] = sheet
	}
	if err != nil {
		err = fmt.Errorf("%s: %w", path, err)
	}
	return sheet, err
}

func (l *loader) resolverFor(abs string) douceuradapter.Resolver {
	dir := filepath.Dir(abs)
	return func(name string) (*style.Sheet, error) {
		path := name
		if filepath.Ext(path) == "" {
			path += ".css"
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		return l.load(path)
	}
}

// loadAll reads a list of stylesheet files and collects all errors.
func (l *loader) loadAll(paths []string) ([]*style.Sheet, error) {
	var sheets []*style.Sheet
	var err error
	for _, path := range paths {
		sheet, e := l.load(path)
		err = multierr.Append(err, e)
		if sheet != nil {
			sheets = append(sheets, sheet)
		}
	}
	return sheets, err
}

func sheetName(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
