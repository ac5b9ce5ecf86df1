package quality

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sort"

	"github.com/sjwhitworth/golearn/base"
)

// PermutationImportance scores each predictor by the accuracy lost when its
// values are shuffled across the cv partition, the ensemble algorithm's
// standard importance measure. The cv instances are restored after each
// predictor. Scores are returned ranked descending, ties broken by name.
func (m *Model) PermutationImportance(cv *base.DenseInstances, seed int64, logger *slog.Logger) ([]FeatureImportance, error) {
	if logger == nil {
		logger = slog.Default()
	}

	baseline, err := m.Accuracy(cv)
	if err != nil {
		return nil, fmt.Errorf("baseline accuracy: %w", err)
	}

	attrs := base.NonClassAttributes(cv)
	specs := base.ResolveAttributes(cv, attrs)
	rows := numRows(cv)
	rng := rand.New(rand.NewSource(seed))

	scores := make([]FeatureImportance, 0, len(specs))
	for i, spec := range specs {
		original := make([][]byte, rows)
		for r := 0; r < rows; r++ {
			// Get returns a view into storage; keep a copy.
			original[r] = append([]byte(nil), cv.Get(spec, r)...)
		}

		perm := rng.Perm(rows)
		for r := 0; r < rows; r++ {
			cv.Set(spec, r, original[perm[r]])
		}

		permuted, err := m.Accuracy(cv)

		// Restore before error handling so the caller always gets the cv
		// partition back intact.
		for r := 0; r < rows; r++ {
			cv.Set(spec, r, original[r])
		}
		if err != nil {
			return nil, fmt.Errorf("permuted accuracy for %s: %w", attrs[i].GetName(), err)
		}

		scores = append(scores, FeatureImportance{
			Feature: attrs[i].GetName(),
			Score:   baseline - permuted,
		})
	}

	sort.SliceStable(scores, func(a, b int) bool {
		if scores[a].Score == scores[b].Score {
			return scores[a].Feature < scores[b].Feature
		}
		return scores[a].Score > scores[b].Score
	})

	logger.Info("computed permutation importance",
		slog.Int("predictors", len(scores)),
		slog.Float64("baseline_accuracy", baseline))

	return scores, nil
}
