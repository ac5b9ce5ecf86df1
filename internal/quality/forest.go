package quality

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/ensemble"
)

// Trainer fits random-forest classifiers with a fixed ensemble size
type Trainer struct {
	trees         int
	splitFeatures int
	logger        *slog.Logger
}

// NewTrainer creates a trainer. splitFeatures is the number of candidate
// predictors considered at each split; 0 selects the usual sqrt of the
// predictor count at fit time.
func NewTrainer(trees, splitFeatures int, logger *slog.Logger) *Trainer {
	if logger == nil {
		logger = slog.Default()
	}

	return &Trainer{
		trees:         trees,
		splitFeatures: splitFeatures,
		logger:        logger,
	}
}

// Model is a fitted random-forest classifier. It is not mutated after
// fitting; it is consumed only for prediction and importance queries.
type Model struct {
	forest *ensemble.RandomForest
}

// Fit grows the forest on the given training instances. A fitting failure is
// fatal to the run; there is no retry.
func (t *Trainer) Fit(train base.FixedDataGrid) (*Model, error) {
	predictors := len(base.NonClassAttributes(train))
	if predictors == 0 {
		return nil, fmt.Errorf("training data has no predictor attributes")
	}

	splitFeatures := t.splitFeatures
	if splitFeatures <= 0 {
		splitFeatures = int(math.Sqrt(float64(predictors)))
		if splitFeatures < 1 {
			splitFeatures = 1
		}
	}
	if splitFeatures > predictors {
		splitFeatures = predictors
	}

	start := time.Now()
	t.logger.Debug("fitting random forest",
		slog.Int("trees", t.trees),
		slog.Int("split_features", splitFeatures),
		slog.Int("rows", numRows(train)))

	forest := ensemble.NewRandomForest(t.trees, splitFeatures)
	if err := forest.Fit(train); err != nil {
		return nil, fmt.Errorf("fit random forest: %w", err)
	}

	t.logger.Debug("fitted random forest",
		slog.Duration("elapsed", time.Since(start)))

	return &Model{forest: forest}, nil
}

// Predict returns predicted labels for the given instances
func (m *Model) Predict(grid base.FixedDataGrid) (base.FixedDataGrid, error) {
	predictions, err := m.forest.Predict(grid)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	return predictions, nil
}
