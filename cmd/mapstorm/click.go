package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dshills/mapstorm/internal/engine"
	"github.com/dshills/mapstorm/internal/event"
	"github.com/dshills/mapstorm/internal/mapfile"
	"github.com/dshills/mapstorm/internal/tools"
)

var clickCmd = &cobra.Command{
	Use:   "click <map.yaml> <x> <y>",
	Short: "Apply a map tool to one tile",
	Long: `Clicks a map tool on the tile at (x, y) and saves the map.
The tool defaults to tools.default from the config. The select tool only
prints the hovered item.`,
	Args: cobra.ExactArgs(3),
	RunE: runClick,
}

func init() {
	clickCmd.Flags().String("tool", "", "Tool to use: add, select or delete")
	clickCmd.Flags().Bool("alt", false, "Use the alternative tool behaviour")
	clickCmd.Flags().String("prefab", "", "Type path the add tool places")
	clickCmd.Flags().StringP("output", "o", "", "Write the edited map here instead of overwriting the input")
	rootCmd.AddCommand(clickCmd)
}

func runClick(cmd *cobra.Command, args []string) error {
	cfg, logger, err := settings(cmd)
	if err != nil {
		return err
	}

	x, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	y, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("y: %w", err)
	}

	m, err := mapfile.Load(args[0])
	if err != nil {
		return err
	}

	bus := event.NewBus(event.WithLogger(logger))
	if _, err := bus.Subscribe(event.TopicAll, func(ev event.Event) {
		logger.Debug("event", "topic", string(ev.Topic))
	}); err != nil {
		return err
	}

	e := engine.New(m,
		engine.WithMaxUndoEntries(cfg.History.MaxEntries),
		engine.WithLogger(logger),
		engine.WithBus(bus),
	)
	c := tools.NewController(tools.WithBus(bus), tools.WithLogger(logger))

	name, _ := cmd.Flags().GetString("tool")
	if name == "" {
		name = cfg.Tools.Default
	}
	if err := c.SetSelected(name); err != nil {
		return err
	}
	if prefab, _ := cmd.Flags().GetString("prefab"); prefab != "" {
		c.SetPrefab(prefab, nil)
	}
	alt, _ := cmd.Flags().GetBool("alt")
	c.SetAltBehaviour(alt)

	eff := c.Click(e, x, y)
	out := cmd.OutOrStdout()

	if c.IsSelected(tools.NameSelect) {
		item := e.ActiveInstance()
		if item == nil {
			fmt.Fprintf(out, "nothing at (%d,%d)\n", x, y)
			return nil
		}
		fmt.Fprintf(out, "%s %s %s\n", item.ID, item.Type, item.Name())
		return nil
	}

	if eff.None() {
		fmt.Fprintf(out, "%s: nothing changed at (%d,%d)\n", name, x, y)
		return nil
	}

	dst, _ := cmd.Flags().GetString("output")
	if dst == "" {
		dst = args[0]
	}
	if err := mapfile.Save(dst, e.Map()); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s at (%d,%d), saved %s\n", name, x, y, dst)
	return nil
}
