package plotting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"harcli/internal/quality"
)

func TestSaveLearningCurve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plots", "learning_curve.png")

	points := []quality.SweepPoint{
		{Limit: 100, TrainAccuracy: 0.95, CVAccuracy: 0.93},
		{Limit: 200, TrainAccuracy: 0.97, CVAccuracy: 0.95},
		{Limit: 300, TrainAccuracy: 0.99, CVAccuracy: 0.96},
	}

	require.NoError(t, SaveLearningCurve(points, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSaveLearningCurveEmpty(t *testing.T) {
	err := SaveLearningCurve(nil, filepath.Join(t.TempDir(), "curve.png"))
	assert.Error(t, err)
}

func TestSaveCorrelationHeatmap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plots", "correlation.png")

	corr := mat.NewSymDense(3, []float64{
		1.0, 0.8, -0.4,
		0.8, 1.0, 0.1,
		-0.4, 0.1, 1.0,
	})

	require.NoError(t, SaveCorrelationHeatmap(corr, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSaveCorrelationHeatmapNil(t *testing.T) {
	err := SaveCorrelationHeatmap(nil, filepath.Join(t.TempDir(), "corr.png"))
	assert.Error(t, err)
}

func TestCorrGridRoundTrip(t *testing.T) {
	corr := mat.NewSymDense(2, []float64{1.0, 0.5, 0.5, 1.0})
	g := corrGrid{m: corr}

	c, r := g.Dims()
	assert.Equal(t, 2, c)
	assert.Equal(t, 2, r)
	assert.Equal(t, 0.5, g.Z(0, 1))
	assert.Equal(t, 1.0, g.X(1))
	assert.Equal(t, 1.0, g.Y(1))
}
