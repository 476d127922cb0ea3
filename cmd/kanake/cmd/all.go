package cmd

import (
	"github.com/peterjc/kana-chording-ke/internal/karabiner"
	"github.com/peterjc/kana-chording-ke/internal/layout"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Generate every layout",
	Long: `Generate every layout document. The layouts are built and checked
together; nothing is written unless all of them succeed.

Examples:
  kanake all
  kanake all --output-dir build`,
	Args: cobra.NoArgs,
	RunE: runAll,
}

// generators lists the layouts built by all.
var generators = layout.All

func init() {
	rootCmd.AddCommand(allCmd)
	allCmd.Flags().BoolVar(&generateCheck, "check", false, "validate and report without writing")
}

func runAll(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	gens := generators(cfg.Options(logger))
	docs := make([]*karabiner.Document, len(gens))

	var eg errgroup.Group
	for i, g := range gens {
		eg.Go(func() error {
			doc, err := buildLayout(g)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for i, g := range gens {
		if err := writeLayout(cmd, cfg, g, docs[i]); err != nil {
			return err
		}
	}
	return nil
}
