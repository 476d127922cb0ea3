package cmd

import (
	"fmt"
	"os"

	"github.com/peterjc/kana-chording-ke/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default kanake configuration",
	Long: `Write the default configuration to ./kanake.yaml (or the --config path).

The file sets the metadata written into every document, the chord and
combo timings, and the output directory. Edit it and rerun the
generators; fields you delete keep their defaults.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = config.DefaultFile
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n\n", path)
	fmt.Fprintln(cmd.OutOrStdout(), "Next steps:")
	fmt.Fprintln(cmd.OutOrStdout(), "  1. Edit the timings or metadata if you like")
	fmt.Fprintln(cmd.OutOrStdout(), "  2. Run 'kanake all' to generate every layout")
	return nil
}
