package cmd

import (
	"fmt"

	"github.com/peterjc/kana-chording-ke/internal/karabiner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var installCmd = &cobra.Command{
	Use:   "install <file>...",
	Short: "Copy generated documents into Karabiner-Elements",
	Long: `Copy generated documents into the Karabiner-Elements complex
modifications directory, ~/.config/karabiner/assets/complex_modifications
unless --assets-dir is given. Each file is checked first; Karabiner-Elements
silently skips files it cannot read.

Examples:
  kanake install new-stickney-in-macos.json
  kanake install *.json --assets-dir /tmp/assets`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInstall,
}

var installAssetsDir string

func init() {
	rootCmd.AddCommand(installCmd)
	installCmd.Flags().StringVar(&installAssetsDir, "assets-dir", "", "Karabiner-Elements assets directory")
}

func runInstall(cmd *cobra.Command, args []string) error {
	dir := installAssetsDir
	if dir == "" {
		var err error
		if dir, err = karabiner.DefaultAssetsDir(); err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
	}

	for _, src := range args {
		dst, err := karabiner.Install(src, dir)
		if err != nil {
			return err
		}
		logger.Info("installed", zap.String("path", dst))
		fmt.Fprintf(cmd.OutOrStdout(), "Installed %s\n", dst)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "\nOpen 'Karabiner Elements', select 'Complex Modifications' and click 'Add predefined rule'.")
	return nil
}
