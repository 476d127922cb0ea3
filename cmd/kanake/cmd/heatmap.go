package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterjc/kana-chording-ke/internal/frequency"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Count romaji letters for a keyboard heatmap",
	Long: `Combine kana usage counts with a kana to romaji table and write the
number of times each letter would be typed in romaji input, in the
JSON format read by the keyboard heatmap viewer at
https://lucmazon.github.io/heatmap/

Examples:
  kanake heatmap
  kanake heatmap --usage data/usage.tsv --romaji data/romaji.tsv`,
	Args: cobra.NoArgs,
	RunE: runHeatmap,
}

var (
	heatmapUsage  string
	heatmapRomaji string
)

func init() {
	rootCmd.AddCommand(heatmapCmd)
	heatmapCmd.Flags().StringVar(&heatmapUsage, "usage", frequency.KanaUsageFile, "kana usage TSV (katakana, count)")
	heatmapCmd.Flags().StringVar(&heatmapRomaji, "romaji", frequency.RomajiFile, "romaji TSV (katakana, hiragana, romaji)")
}

func runHeatmap(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	h, err := frequency.Build(heatmapUsage, heatmapRomaji)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	out := filepath.Join(cfg.OutputDir, frequency.HeatmapFile)
	if err := h.WriteFile(out); err != nil {
		return err
	}

	letters := h.Letters()
	if len(letters) > 5 {
		letters = letters[:5]
	}
	logger.Info("wrote heatmap",
		zap.String("path", out),
		zap.Int("letters", len(h.Count)),
		zap.Strings("most_used", letters))
	fmt.Fprintf(cmd.ErrOrStderr(), "Generated counts for %d letters in %s\n", len(h.Count), out)
	return nil
}
