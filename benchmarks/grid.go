package benchmarks

import (
	"github.com/spf13/cobra"

	"github.com/optrl/smdp/grid"
	"github.com/optrl/smdp/strategies"
	"github.com/optrl/smdp/tracestore"
	"github.com/optrl/smdp/types"
)

// gridCatalog is the fixed set of macro movements used by the static
// grid experiment.
func gridCatalog() []types.Option {
	return []types.Option{
		types.MustSeqOption([]interface{}{grid.Up, grid.Up, grid.Right, grid.Right}, "up-up-right-right"),
		types.MustSeqOption([]interface{}{grid.Right, grid.Right, grid.Up, grid.Up}, "right-right-up-up"),
		types.MustSeqOption([]interface{}{grid.Up, grid.Right}, "up-right"),
		types.MustSeqOption([]interface{}{grid.Next}, "next-grid"),
		types.MustSeqOption([]interface{}{grid.Nothing}, "wait"),
	}
}

func traceStore(redisAddr, saveFile string) (types.TraceStore, error) {
	if redisAddr != "" {
		return tracestore.NewRedisStore(redisAddr), nil
	}
	return tracestore.NewFileStore(saveFile + "/traces")
}

// GridOptions compares policies on the grid environment with a static
// option catalog and per-action durations.
func GridOptions(episodes, horizon, runs int, saveFile string, seed int64, height, width, grids int, redisAddr string) error {
	engine := func() (*types.Engine, error) {
		return types.NewEngine(types.EngineConfig{
			Environment:  grid.NewGridEnvironment(height, width, grids),
			Options:      types.StaticOptions(gridCatalog()...),
			Duration:     strategies.ConstantActionDuration(1),
			Availability: grid.Availability,
			Mode:         types.IndexMode,
			Seed:         seed,
		})
	}

	store, err := traceStore(redisAddr, saveFile)
	if err != nil {
		return err
	}

	c := types.NewComparison(types.EpisodeRewardAnalyzer(), types.LinePlotter("Macro reward", saveFile, "grid_reward"))
	c.AddExperiment(types.NewExperiment("Random", types.NewRandomPolicy(), engine))
	c.AddExperiment(types.NewExperiment("Softmax", types.NewSoftmaxPolicy(0.1, 0.99), engine))

	return c.Run(&types.ExperimentRunConfig{
		Episodes: episodes,
		Horizon:  horizon,
		Seed:     seed,
		Store:    store,
	}, runs)
}

func GridOptionsCommand() *cobra.Command {
	var height int
	var width int
	var grids int
	var redisAddr string

	cmd := &cobra.Command{
		Use: "grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			return GridOptions(episodes, horizon, runs, saveFile, seed, height, width, grids, redisAddr)
		},
	}
	cmd.PersistentFlags().IntVar(&height, "height", 5, "Height of each grid")
	cmd.PersistentFlags().IntVar(&width, "width", 5, "Width of each grid")
	cmd.PersistentFlags().IntVar(&grids, "grids", 2, "Number of grids")
	cmd.PersistentFlags().StringVar(&redisAddr, "redis", "", "Record traces to this redis address instead of files")
	return cmd
}

// GridRandomOptions compares policies on the grid environment with a
// dynamic catalog of randomly generated options, validated against the
// availability mask and capped to exercise truncation.
func GridRandomOptions(episodes, horizon, runs int, saveFile string, seed int64, height, width, grids, maxOptions int, redisAddr string) error {
	engine := func() (*types.Engine, error) {
		return types.NewEngine(types.EngineConfig{
			Environment:  grid.NewGridEnvironment(height, width, grids),
			Options:      types.DynamicOptions(strategies.RandomVarLen(1, 4, 12, seed)),
			Duration:     strategies.RandomOptionDuration(1, 8, seed),
			Availability: grid.Availability,
			Precheck:     true,
			Mode:         types.IndexMode,
			MaxOptions:   maxOptions,
			Seed:         seed,
		})
	}

	store, err := traceStore(redisAddr, saveFile)
	if err != nil {
		return err
	}

	c := types.NewComparison(types.ExecutedTicksAnalyzer(), types.LinePlotter("Executed ticks", saveFile, "grid_ticks"))
	c.AddExperiment(types.NewExperiment("Random", types.NewRandomPolicy(), engine))
	c.AddExperiment(types.NewExperiment("Softmax", types.NewSoftmaxPolicy(0.1, 0.99), engine))

	return c.Run(&types.ExperimentRunConfig{
		Episodes: episodes,
		Horizon:  horizon,
		Seed:     seed,
		Store:    store,
	}, runs)
}

func GridRandomOptionsCommand() *cobra.Command {
	var height int
	var width int
	var grids int
	var maxOptions int
	var redisAddr string

	cmd := &cobra.Command{
		Use: "grid-random",
		RunE: func(cmd *cobra.Command, args []string) error {
			return GridRandomOptions(episodes, horizon, runs, saveFile, seed, height, width, grids, maxOptions, redisAddr)
		},
	}
	cmd.PersistentFlags().IntVar(&height, "height", 5, "Height of each grid")
	cmd.PersistentFlags().IntVar(&width, "width", 5, "Width of each grid")
	cmd.PersistentFlags().IntVar(&grids, "grids", 2, "Number of grids")
	cmd.PersistentFlags().IntVar(&maxOptions, "max-options", 8, "Catalog cap for the index interface")
	cmd.PersistentFlags().StringVar(&redisAddr, "redis", "", "Record traces to this redis address instead of files")
	return cmd
}
