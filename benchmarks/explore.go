package benchmarks

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/optrl/smdp/explorer"
	"github.com/optrl/smdp/grid"
	"github.com/optrl/smdp/strategies"
	"github.com/optrl/smdp/types"
)

// ExploreCommand serves a grid engine over HTTP for interactive
// macro-step driving.
func ExploreCommand() *cobra.Command {
	var addr string
	var height int
	var width int
	var grids int
	var maxOptions int

	cmd := &cobra.Command{
		Use: "explore",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := types.NewEngine(types.EngineConfig{
				Environment:  grid.NewGridEnvironment(height, width, grids),
				Options:      types.DynamicOptions(strategies.RandomVarLen(1, 4, 12, seed)),
				Duration:     strategies.RandomOptionDuration(1, 8, seed),
				Availability: grid.Availability,
				Precheck:     true,
				Mode:         types.IndexMode,
				MaxOptions:   maxOptions,
				Seed:         seed,
			})
			if err != nil {
				return err
			}
			if _, err := engine.Reset(seed); err != nil {
				return err
			}

			server := explorer.NewServer(addr, engine)
			fmt.Printf("explorer listening on %s\n", addr)
			return server.Start()
		},
	}
	cmd.PersistentFlags().StringVar(&addr, "addr", "127.0.0.1:7070", "Address to serve on")
	cmd.PersistentFlags().IntVar(&height, "height", 5, "Height of each grid")
	cmd.PersistentFlags().IntVar(&width, "width", 5, "Width of each grid")
	cmd.PersistentFlags().IntVar(&grids, "grids", 2, "Number of grids")
	cmd.PersistentFlags().IntVar(&maxOptions, "max-options", 8, "Catalog cap for the index interface")
	return cmd
}
