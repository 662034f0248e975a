package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/mapstorm/internal/engine"
	"github.com/dshills/mapstorm/internal/mapfile"
	"github.com/dshills/mapstorm/internal/script"
)

var runCmd = &cobra.Command{
	Use:   "run <map.yaml> <script.lua>",
	Short: "Apply a Lua edit script to a map",
	Long: `Loads the map, runs the script against it and saves the result.
The map is overwritten unless --output names another file.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScript(cmd, args[0], args[1])
	},
}

func init() {
	runCmd.Flags().StringP("output", "o", "", "Write the edited map here instead of overwriting the input")
	rootCmd.AddCommand(runCmd)
}

func runScript(cmd *cobra.Command, mapPath, scriptPath string) error {
	cfg, logger, err := settings(cmd)
	if err != nil {
		return err
	}

	m, err := mapfile.Load(mapPath)
	if err != nil {
		return err
	}

	e := engine.New(m,
		engine.WithMaxUndoEntries(cfg.History.MaxEntries),
		engine.WithLogger(logger),
	)
	state := script.NewState(e,
		script.WithInstructionLimit(int64(cfg.Script.InstructionLimit)),
		script.WithLogger(logger),
	)
	defer state.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := state.RunFile(ctx, scriptPath); err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		out = mapPath
	}
	if err := mapfile.Save(out, e.Map()); err != nil {
		return err
	}

	logger.Info("script applied", "script", scriptPath, "map", out, "edits", e.History().UndoCount())
	fmt.Fprintf(cmd.OutOrStdout(), "applied %s: %d edits, saved %s\n", scriptPath, e.History().UndoCount(), out)
	return nil
}
