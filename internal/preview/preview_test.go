package preview

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func sampleGrid() Grid {
	return Grid{
		Title: "New Stickney",
		Rows: [][]string{
			{"け", "く", "す"},
			{"は", "", "international1"},
		},
	}
}

func TestLinesAlignDoubleWidthCells(t *testing.T) {
	lines := Grid{Rows: [][]string{{"け", "a"}, {"ab", "く"}}}.Lines()
	require.Len(t, lines, 2)

	assert.Equal(t, "け a", lines[0])
	assert.Equal(t, "ab く", lines[1])
	assert.Equal(t, runewidth.StringWidth("ab "), runewidth.StringWidth("け "))
}

func TestLinesShowBlankCells(t *testing.T) {
	lines := sampleGrid().Lines()
	assert.Contains(t, lines[1], Blank)
	assert.Equal(t, 14, sampleGrid().CellWidth())
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, sampleGrid(), Grid{Title: "Second", Rows: [][]string{{"a"}}}))

	out := buf.String()
	assert.Contains(t, out, "New Stickney")
	assert.Contains(t, out, "international1")
	assert.Contains(t, out, "Second")
	assert.Equal(t, 6, strings.Count(out, "\n"))
}

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, sampleGrid(), PNGOptions{Face: basicfont.Face7x13}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)

	bounds := img.Bounds()
	lineHeight := 13
	assert.Equal(t, 3*(lineHeight+12)+1, bounds.Dy())
	assert.Greater(t, bounds.Dx(), 3*len("international1")*7)
}

func TestRenderPNGEmptyGrid(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, RenderPNG(&buf, Grid{Title: "empty"}, PNGOptions{Face: basicfont.Face7x13}))
}
