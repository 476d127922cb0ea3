package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterjc/kana-chording-ke/internal/clipboard"
	"github.com/peterjc/kana-chording-ke/internal/config"
	"github.com/peterjc/kana-chording-ke/internal/karabiner"
	"github.com/peterjc/kana-chording-ke/internal/layout"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	generateCheck     bool
	generateClipboard bool
)

// layoutHelp is the long help of each layout subcommand.
var layoutHelp = map[string]string{
	"flick": `Write kana chording rules: in Japanese input, press a letter together
with a cursor key to send the romaji of that kana row and vowel, like
flick input on a phone. Left, up, right and down give i, u, e and o;
the letter alone gives a.

Every chord is its own rule and starts disabled, so enable the ones
you want in Karabiner-Elements.`,
	"handsdown": `Write Hands Down Promethium rules for a JIS MacBook keyboard in
non-Japanese input mode, with combos for brackets and punctuation,
tap-hold letters on the shift keys, and a globe/fn navigation layer.`,
	"stickney": `Write New Stickney rules for macOS kana input mode on a JIS keyboard.
ANSI and ISO virtual keyboards get alternative keys where the JIS key
is missing or moved.`,
}

func init() {
	for _, g := range layout.All(layout.DefaultOptions()) {
		rootCmd.AddCommand(newLayoutCmd(g.Name(), g.Title()))
	}
}

func newLayoutCmd(name, title string) *cobra.Command {
	c := &cobra.Command{
		Use:   name,
		Short: title,
		Long:  layoutHelp[name],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd, name)
		},
	}
	c.Flags().BoolVar(&generateCheck, "check", false, "validate and report without writing")
	c.Flags().BoolVar(&generateClipboard, "clipboard", false, "copy the install command to the clipboard")
	return c
}

// runLayout generates, validates and writes one layout document.
func runLayout(cmd *cobra.Command, name string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	g, err := layout.Lookup(name, cfg.Options(logger))
	if err != nil {
		return err
	}
	doc, err := buildLayout(g)
	if err != nil {
		return err
	}
	return writeLayout(cmd, cfg, g, doc)
}

// buildLayout checks the tables, builds the document and validates it
// against the schema.
func buildLayout(g layout.Generator) (*karabiner.Document, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%s tables: %w", g.Name(), err)
	}

	doc, err := g.Build()
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", g.Name(), err)
	}
	if err := karabiner.Validate(doc); err != nil {
		return nil, fmt.Errorf("%s document: %w", g.Name(), err)
	}
	return doc, nil
}

// writeLayout writes doc to the output directory and tells the user how
// to install it. With --check it only reports.
func writeLayout(cmd *cobra.Command, cfg *config.Config, g layout.Generator, doc *karabiner.Document) error {
	name := g.Name()
	out := filepath.Join(cfg.OutputDir, g.OutputName())
	if generateCheck {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s OK, not writing %s\n", name, g.Summary(doc), out)
		return nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := karabiner.WriteFile(out, doc); err != nil {
		return err
	}
	logger.Info("wrote document",
		zap.String("layout", name),
		zap.String("path", out),
		zap.Int("rules", len(doc.Rules)),
		zap.Int("manipulators", doc.ManipulatorCount()))

	inst := karabiner.Instructions{
		Title:   doc.Title,
		Output:  out,
		Summary: g.Summary(doc),
		Rules:   len(doc.Rules),
	}
	if err := inst.Render(cmd.ErrOrStderr()); err != nil {
		return err
	}

	if generateClipboard {
		if err := clipboard.Write(inst.CopyCommand()); err != nil {
			logger.Warn("could not copy install command", zap.Error(err))
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), "\nCopied the cp command to the clipboard.")
		}
	}
	return nil
}
