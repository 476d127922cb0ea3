// Package cmd contains all CLI commands for the kanake tool.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterjc/kana-chording-ke/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile string
	verbose bool
	logger  = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kanake",
	Short: "Compile keyboard layouts into Karabiner-Elements rules",
	Long: `kanake writes Karabiner-Elements "complex modifications" files for
typing Japanese and English on a Mac:

  - flick:     kana chording, a letter plus a cursor key sends romaji
  - handsdown: Hands Down Promethium on a JIS MacBook
  - stickney:  the New Stickney kana layout in macOS kana input mode

Each generator writes one JSON file to the output directory and prints
how to install it.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if viper.GetBool("verbose") {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, YAML or TOML (default is ./"+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every generated mapping")
	rootCmd.PersistentFlags().String("output-dir", "", "directory to write documents to (default from config, else .)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("output_dir", rootCmd.PersistentFlags().Lookup("output-dir"))
}

// initConfig reads ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("KANAKE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// intOverrides are the viper keys that may replace config file timings,
// e.g. KANAKE_CHORD_THRESHOLD_MS.
var intOverrides = map[string]func(*config.Config, int){
	"chord.threshold_ms":                 func(c *config.Config, v int) { c.Chord.ThresholdMilliseconds = v },
	"handsdown.combo_threshold_ms":       func(c *config.Config, v int) { c.HandsDown.ComboThreshold = v },
	"handsdown.large_combo_threshold_ms": func(c *config.Config, v int) { c.HandsDown.LargeComboThreshold = v },
	"handsdown.tap_hold_delay_ms":        func(c *config.Config, v int) { c.HandsDown.TapHoldDelay = v },
}

// loadConfig returns the config file named by --config, else ./kanake.yaml
// if present, else the defaults, with flag and environment overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()

	path := cfgFile
	if path == "" {
		if _, err := os.Stat(config.DefaultFile); err == nil {
			path = config.DefaultFile
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		logger.Debug("loaded config", zap.String("path", path))
	}

	if dir := viper.GetString("output_dir"); dir != "" {
		cfg.OutputDir = dir
	}
	for key, set := range intOverrides {
		if viper.IsSet(key) {
			set(cfg, viper.GetInt(key))
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Join(errors.New("invalid configuration"), err)
	}
	return cfg, nil
}
