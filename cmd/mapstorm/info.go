package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/mapstorm/internal/engine/grid"
	"github.com/dshills/mapstorm/internal/mapfile"
)

var infoCmd = &cobra.Command{
	Use:   "info <map.yaml>",
	Short: "Print the size and item counts of a map",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := mapfile.Load(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		used := 0
		for _, tile := range m.Tiles() {
			if !tile.IsEmpty() {
				used++
			}
		}
		fmt.Fprintf(out, "size:  %dx%d\n", m.Width(), m.Height())
		fmt.Fprintf(out, "tiles: %d used of %d\n", used, m.Width()*m.Height())

		counts := m.CountByKind()
		for _, kind := range []grid.Kind{grid.KindArea, grid.KindTurf, grid.KindObj, grid.KindMob} {
			fmt.Fprintf(out, "%-6s %d\n", kind.String()+":", counts[kind])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
