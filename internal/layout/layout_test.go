package layout

import (
	"bytes"
	"testing"

	"github.com/peterjc/kana-chording-ke/internal/karabiner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func build(t *testing.T, g Generator) *karabiner.Document {
	t.Helper()
	require.NoError(t, g.Validate())
	doc, err := g.Build()
	require.NoError(t, err)
	return doc
}

func TestNamesAndLookup(t *testing.T) {
	assert.Equal(t, []string{"flick", "handsdown", "stickney"}, Names())

	g, err := Lookup("stickney", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "new-stickney-in-macos.json", g.OutputName())

	_, err = Lookup("dvorak", DefaultOptions())
	assert.ErrorContains(t, err, "unknown layout")
}

func TestAllDocumentsValidate(t *testing.T) {
	for _, g := range All(DefaultOptions()) {
		t.Run(g.Name(), func(t *testing.T) {
			doc := build(t, g)
			assert.Equal(t, g.Title(), doc.Title)
			assert.Equal(t, "Peter J. A. Cock", doc.Author)
			require.NoError(t, karabiner.Validate(doc))
		})
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	for _, g := range All(DefaultOptions()) {
		t.Run(g.Name(), func(t *testing.T) {
			first, err := karabiner.Marshal(build(t, g))
			require.NoError(t, err)
			second, err := karabiner.Marshal(build(t, g))
			require.NoError(t, err)
			assert.True(t, bytes.Equal(first, second))
		})
	}
}

func TestGridsAreRectangularPerRow(t *testing.T) {
	for _, g := range All(DefaultOptions()) {
		grids := g.Grids()
		require.NotEmpty(t, grids, g.Name())
		for _, grid := range grids {
			assert.NotEmpty(t, grid.Title)
			assert.NotEmpty(t, grid.Rows)
		}
	}
}

func TestFlick(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	opts := DefaultOptions()
	opts.Logger = zap.New(core)

	f := NewFlick(opts)
	doc := build(t, f)

	assert.Len(t, doc.Rules, 83)
	assert.Equal(t, "83 romaji mode sub-rules", f.Summary(doc))
	assert.Equal(t, 83, logs.FilterMessage("chord").Len())
	assert.Equal(t, "cursor-chording-flick-input.json", f.OutputName())

	grid := f.Grids()[0]
	assert.Len(t, grid.Rows, 1+19)
	assert.Equal(t, []string{"row", "none", "left_arrow", "up_arrow", "right_arrow", "down_arrow", "note"}, grid.Rows[0])
	assert.Equal(t, []string{"s", "sa", "shi", "su", "se", "so", ""}, grid.Rows[5])
	assert.Equal(t, "small tsu", grid.Rows[8][6])
}

func TestFlickChordThreshold(t *testing.T) {
	opts := DefaultOptions()
	opts.ChordThreshold = 80

	doc := build(t, NewFlick(opts))
	for _, r := range doc.Rules {
		assert.Equal(t, 80, r.Manipulators[0].Parameters[karabiner.ParamSimultaneousThreshold])
	}
}
