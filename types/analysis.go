package types

import (
	"fmt"
	"os"
	"path"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// EpisodeRewardAnalyzer collects the total macro reward of each episode.
func EpisodeRewardAnalyzer() Analyzer {
	return func(run int, name string, traces []*Trace) DataSet {
		rewards := make([]float64, len(traces))
		for i, trace := range traces {
			rewards[i] = trace.TotalReward()
		}
		return rewards
	}
}

// ExecutedTicksAnalyzer collects the executed duration of each episode.
func ExecutedTicksAnalyzer() Analyzer {
	return func(run int, name string, traces []*Trace) DataSet {
		ticks := make([]float64, len(traces))
		for i, trace := range traces {
			ticks[i] = float64(trace.TotalExecutedTicks())
		}
		return ticks
	}
}

// LinePlotter plots one line per experiment over episodes and saves the
// comparison plot under plotPath.
func LinePlotter(yLabel, plotPath, suffix string) Comparator {
	if _, err := os.Stat(plotPath); err != nil {
		os.MkdirAll(plotPath, os.ModePerm)
	}
	return func(run int, names []string, datasets []DataSet) {
		p := plot.New()
		p.Title.Text = "Comparison"
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = yLabel
		for i := 0; i < len(names); i++ {
			values := datasets[i].([]float64)
			points := make(plotter.XYs, len(values))
			for j, v := range values {
				points[j] = plotter.XY{
					X: float64(j),
					Y: v,
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)
			if len(values) > 0 {
				fmt.Printf("Final %s: %.2f for experiment: %s\n", yLabel, values[len(values)-1], names[i])
			}
		}
		p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, strconv.Itoa(run)+"_"+suffix+".png"))
	}
}
