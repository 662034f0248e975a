package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/mapstorm/internal/config"
	"github.com/dshills/mapstorm/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:           "mapstorm",
	Short:         "mapstorm edits tile maps from the command line",
	Long:          `mapstorm inspects tile map documents and applies Lua edit scripts to them with full undo history.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a mapstorm.toml settings file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides the config)")
}

// settings loads the configuration and the logger for a command.
func settings(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel())
	return cfg, logger, nil
}
