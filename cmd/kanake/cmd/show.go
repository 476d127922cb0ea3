package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterjc/kana-chording-ke/internal/layout"
	"github.com/peterjc/kana-chording-ke/internal/preview"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var showCmd = &cobra.Command{
	Use:   "show <layout>",
	Short: "Print a layout's key tables",
	Long: `Print the key tables of a layout as aligned grids, or draw them as
PNG images with --png.

Examples:
  kanake show stickney
  kanake show handsdown --png images`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: layout.Names(),
	RunE:      runShow,
}

var showPNG string

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showPNG, "png", "", "directory to write one PNG per table to")
}

func runShow(cmd *cobra.Command, args []string) error {
	g, err := layout.Lookup(args[0], layout.DefaultOptions())
	if err != nil {
		return err
	}
	grids := g.Grids()

	if showPNG == "" {
		return preview.RenderText(cmd.OutOrStdout(), grids...)
	}

	if err := os.MkdirAll(showPNG, 0755); err != nil {
		return fmt.Errorf("creating png directory: %w", err)
	}
	for i, grid := range grids {
		path := filepath.Join(showPNG, fmt.Sprintf("%s-%d.png", g.Name(), i+1))
		if err := writePNG(path, grid); err != nil {
			return err
		}
		logger.Info("wrote image", zap.String("path", path), zap.String("table", grid.Title))
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	}
	return nil
}

func writePNG(path string, grid preview.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := preview.RenderPNG(f, grid, preview.PNGOptions{}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
