package benchmarks

import "github.com/spf13/cobra"

var (
	episodes int
	horizon  int
	saveFile string
	runs     int
	seed     int64
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{Use: "smdp"}
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", 1000, "Number of episodes to run")
	rootCommand.PersistentFlags().IntVar(&horizon, "horizon", 50, "Macro-step horizon of each episode")
	rootCommand.PersistentFlags().StringVarP(&saveFile, "save", "s", "results", "Save the result data in the specified folder")
	rootCommand.PersistentFlags().IntVar(&runs, "runs", 1, "Number of experiment runs")
	rootCommand.PersistentFlags().Int64Var(&seed, "seed", -1, "Random seed, negative for unseeded")
	// adding the subcommands here
	rootCommand.AddCommand(GridOptionsCommand())
	rootCommand.AddCommand(GridRandomOptionsCommand())
	rootCommand.AddCommand(ExploreCommand())
	return rootCommand
}
