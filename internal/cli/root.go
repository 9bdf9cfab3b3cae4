package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tessro/dialogcoach/internal/config"
	"github.com/tessro/dialogcoach/internal/logging"
	"github.com/tessro/dialogcoach/internal/paths"
)

// Global flag values.
var (
	baseDir    string
	configPath string
	rosterPath string
	logLevel   string
	seed       uint64
)

var (
	// cfg is the loaded config file, nil when there is none.
	cfg        *config.Config
	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "dialogcoach",
	Short: "Dialog coach roster manager",
	Long: "dialogcoach shows a dialog coach's employees, their meeting cadence and the employees " +
		"still waiting for one. Without a subcommand it starts the interactive roster screen.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCleanup != nil {
			logCleanup()
			logCleanup = nil
		}
	},
	RunE: runTUI,
}

// setup applies --dir, loads the config file and starts logging.
func setup(cmd *cobra.Command, args []string) error {
	// Set DIALOGCOACH_DIR if --dir is provided.
	// This allows all path helpers to use the override.
	if baseDir != "" {
		if err := os.Setenv(paths.EnvDir, baseDir); err != nil {
			return err
		}
	}

	var err error
	if configPath != "" {
		cfg, err = config.LoadFromPath(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := cfg.GetLogLevel()
	if logLevel != "" {
		if err := config.ValidateLogLevel(logLevel); err != nil {
			return err
		}
		level = logLevel
	}

	if logCleanup != nil {
		logCleanup()
	}
	logCleanup, err = logging.Setup("", logging.ParseLevel(level))
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	slog.Debug("cli: starting", "command", cmd.CommandPath(), "config_loaded", cfg != nil)
	return nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&baseDir, "dir", "", "base directory for dialogcoach data (overrides ~/.dialogcoach)")
	flags.StringVar(&configPath, "config", "", "config file (default ~/.config/dialogcoach/config.toml)")
	flags.StringVar(&rosterPath, "roster", "", "roster file (.toml or .yaml); overrides the config")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.Uint64Var(&seed, "seed", 0, "seed for synthetic demo employees (0 uses the config, then the clock)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
