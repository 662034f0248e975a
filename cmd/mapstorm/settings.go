package main

import (
	"errors"
	"fmt"
	"io"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/mapstorm/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Print the effective settings",
	Long: `Prints the settings after defaults, the --config file and MAPSTORM_
environment variables are merged. With --watch the file is watched and
the settings are printed again after every change until interrupted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := settings(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printSettings(out, cfg)

		watch, _ := cmd.Flags().GetBool("watch")
		if !watch {
			return nil
		}
		if cfg.Path == "" {
			return errors.New("--watch needs a --config file")
		}

		var mu sync.Mutex
		w, err := config.Watch(cfg.Path, func(cfg *config.Config, err error) {
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				fmt.Fprintf(out, "reload failed: %v\n", err)
				return
			}
			printSettings(out, cfg)
		}, config.WithLogger(logger))
		if err != nil {
			return err
		}
		defer w.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		mu.Lock()
		fmt.Fprintf(out, "watching %s\n", w.Path())
		mu.Unlock()

		<-ctx.Done()
		return nil
	},
}

func init() {
	settingsCmd.Flags().Bool("watch", false, "Print the settings again whenever the config file changes")
	rootCmd.AddCommand(settingsCmd)
}

func printSettings(w io.Writer, cfg *config.Config) {
	source := cfg.Path
	if source == "" {
		source = "(defaults)"
	}
	fmt.Fprintf(w, "# %s\n", source)
	fmt.Fprintf(w, "history.max_entries = %d\n", cfg.History.MaxEntries)
	fmt.Fprintf(w, "logging.level = %s\n", cfg.Logging.Level)
	fmt.Fprintf(w, "tools.default = %s\n", cfg.Tools.Default)
	fmt.Fprintf(w, "script.instruction_limit = %d\n", cfg.Script.InstructionLimit)
}
