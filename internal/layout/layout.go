// Package layout holds the keyboard layouts that kanake compiles into
// Karabiner-Elements documents.
package layout

import (
	"errors"
	"fmt"
	"sort"

	"github.com/peterjc/kana-chording-ke/internal/karabiner"
	"github.com/peterjc/kana-chording-ke/internal/preview"
	"go.uber.org/zap"
)

// ErrTableMismatch reports layout tables that disagree with each other.
var ErrTableMismatch = errors.New("layout tables do not match")

// Generator compiles one layout into a document.
type Generator interface {
	// Name is the subcommand name, e.g. "handsdown".
	Name() string
	// OutputName is the fixed file name written in the output directory.
	OutputName() string
	// Title is the document title shown by Karabiner-Elements.
	Title() string
	// Validate checks the static tables. A failure aborts the run.
	Validate() error
	// Build produces the document from validated tables.
	Build() (*karabiner.Document, error)
	// Summary describes what Build produced for the user.
	Summary(doc *karabiner.Document) string
	// Grids returns the tables for previewing.
	Grids() []preview.Grid
}

// Options are the tunables shared by all generators.
type Options struct {
	Metadata karabiner.Metadata

	ChordThreshold      int // flick chord window, ms
	ComboThreshold      int // two key combos, ms
	LargeComboThreshold int // three or more key combos, ms
	TapHoldDelay        int // tap-hold delayed action and held-down threshold, ms

	Logger *zap.Logger
}

// DefaultMetadata is the attribution written into every document.
func DefaultMetadata() karabiner.Metadata {
	return karabiner.Metadata{
		Maintainers: []string{"peterjc"},
		Author:      "Peter J. A. Cock",
		Homepage:    "https://github.com/peterjc/kana-chording-ke",
		Repo:        "https://github.com/peterjc/kana-chording-ke",
	}
}

// DefaultOptions returns the options the published documents use.
func DefaultOptions() Options {
	return Options{
		Metadata:            DefaultMetadata(),
		ChordThreshold:      100,
		ComboThreshold:      50,
		LargeComboThreshold: 100,
		TapHoldDelay:        150,
		Logger:              zap.NewNop(),
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// All returns every layout generator in a fixed order.
func All(opts Options) []Generator {
	return []Generator{
		NewFlick(opts),
		NewHandsDown(opts),
		NewStickney(opts),
	}
}

// Names lists the generator names.
func Names() []string {
	var names []string
	for _, g := range All(DefaultOptions()) {
		names = append(names, g.Name())
	}
	sort.Strings(names)
	return names
}

// Lookup returns the generator called name.
func Lookup(name string, opts Options) (Generator, error) {
	for _, g := range All(opts) {
		if g.Name() == name {
			return g, nil
		}
	}
	return nil, fmt.Errorf("unknown layout %q (have %v)", name, Names())
}
