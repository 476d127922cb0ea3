// Package preview draws layout tables as aligned text grids or PNG images.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Grid is a titled table of cells, one slice per keyboard row. Rows may
// have different lengths.
type Grid struct {
	Title string
	Rows  [][]string
}

// Blank is shown for cells with nothing to draw.
const Blank = "・"

var (
	gridTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	gridCellStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f1faee"))
)

// CellWidth returns the widest cell in the grid, in terminal columns.
func (g Grid) CellWidth() int {
	width := 1
	for _, row := range g.Rows {
		for _, cell := range row {
			if w := runewidth.StringWidth(cell); w > width {
				width = w
			}
		}
	}
	return width
}

// Lines renders the rows, padding every cell to the same display width so
// double-width kana line up with ASCII key names.
func (g Grid) Lines() []string {
	width := g.CellWidth()
	lines := make([]string, len(g.Rows))
	for i, row := range g.Rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			if cell == "" {
				cell = Blank
			}
			cells[j] = runewidth.FillRight(cell, width)
		}
		lines[i] = strings.TrimRight(strings.Join(cells, " "), " ")
	}
	return lines
}

// RenderText writes each grid with its title.
func RenderText(w io.Writer, grids ...Grid) error {
	for i, g := range grids {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, gridTitleStyle.Render(g.Title)); err != nil {
			return err
		}
		for _, line := range g.Lines() {
			if _, err := fmt.Fprintln(w, gridCellStyle.Render(line)); err != nil {
				return err
			}
		}
	}
	return nil
}
