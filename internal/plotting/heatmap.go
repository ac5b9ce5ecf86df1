package plotting

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// corrGrid adapts a symmetric correlation matrix to plotter.GridXYZ
type corrGrid struct {
	m *mat.SymDense
}

func (g corrGrid) Dims() (int, int) {
	n, _ := g.m.Dims()
	return n, n
}

func (g corrGrid) Z(c, r int) float64 { return g.m.At(r, c) }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }

// SaveCorrelationHeatmap renders the predictor correlation matrix as a
// heatmap PNG. Cell values span [-1, 1] regardless of the observed range so
// runs are visually comparable.
func SaveCorrelationHeatmap(corr *mat.SymDense, outputPath string) error {
	if corr == nil {
		return fmt.Errorf("no correlation matrix to plot")
	}
	if n, _ := corr.Dims(); n == 0 {
		return fmt.Errorf("empty correlation matrix")
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Diverging blue-white-red map centered on zero, so negative and
	// positive correlation read as opposite hues.
	colors := moreland.SmoothBlueRed()
	colors.SetMin(-1)
	colors.SetMax(1)

	hm := plotter.NewHeatMap(corrGrid{m: corr}, colors.Palette(255))
	hm.Min = -1
	hm.Max = 1

	p := plot.New()
	p.Title.Text = "Predictor correlation matrix"
	p.X.Label.Text = "Predictor index"
	p.Y.Label.Text = "Predictor index"
	p.Add(hm)

	if err := p.Save(7*vg.Inch, 7*vg.Inch, outputPath); err != nil {
		return fmt.Errorf("save correlation heatmap: %w", err)
	}

	return nil
}
