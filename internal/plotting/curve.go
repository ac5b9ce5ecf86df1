package plotting

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"harcli/internal/quality"
)

// SaveLearningCurve renders the sweep results as a two-line plot (train and
// cv accuracy against the complexity limit) and saves it as a PNG.
func SaveLearningCurve(points []quality.SweepPoint, outputPath string) error {
	if len(points) == 0 {
		return fmt.Errorf("no sweep points to plot")
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	trainPts := make(plotter.XYs, len(points))
	cvPts := make(plotter.XYs, len(points))
	for i, pt := range points {
		trainPts[i].X = float64(pt.Limit)
		trainPts[i].Y = pt.TrainAccuracy
		cvPts[i].X = float64(pt.Limit)
		cvPts[i].Y = pt.CVAccuracy
	}

	p := plot.New()
	p.Title.Text = "Random forest learning curve"
	p.X.Label.Text = "Complexity limit"
	p.Y.Label.Text = "Accuracy"
	p.Y.Max = 1.0
	p.Legend.Top = false

	if err := plotutil.AddLinePoints(p,
		"Train", trainPts,
		"Cross-validation", cvPts,
	); err != nil {
		return fmt.Errorf("add learning curve lines: %w", err)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, outputPath); err != nil {
		return fmt.Errorf("save learning curve plot: %w", err)
	}

	return nil
}
