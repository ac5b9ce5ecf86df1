package dataset

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sort"

	"github.com/go-gota/gota/dataframe"
)

// Partitions holds the three disjoint subsets of a cleaned dataset. Their
// union is the cleaned dataset and each preserves the label distribution
// proportionally, subject to rounding.
type Partitions struct {
	Train dataframe.DataFrame
	CV    dataframe.DataFrame
	Test  dataframe.DataFrame
}

// Split performs a stratified three-way split on labelColumn: trainProportion
// of each stratum goes to the training set and the remainder is divided
// evenly between test and cross-validation, any odd row going to
// cross-validation. The split is deterministic for a fixed seed.
func Split(df dataframe.DataFrame, labelColumn string, trainProportion float64, seed int64) (Partitions, error) {
	if trainProportion <= 0 || trainProportion >= 1 {
		return Partitions{}, fmt.Errorf("train proportion %.2f outside (0, 1)", trainProportion)
	}
	if err := RequireColumns(df, labelColumn); err != nil {
		return Partitions{}, err
	}

	labels := df.Col(labelColumn).Records()

	byLabel := make(map[string][]int)
	for i, label := range labels {
		byLabel[label] = append(byLabel[label], i)
	}

	// Strata are visited in sorted label order so the only randomness is the
	// seeded shuffle within each stratum.
	strata := make([]string, 0, len(byLabel))
	for label := range byLabel {
		strata = append(strata, label)
	}
	sort.Strings(strata)

	rng := rand.New(rand.NewSource(seed))

	var trainIdx, cvIdx, testIdx []int
	for _, label := range strata {
		indices := byLabel[label]
		rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})

		nTrain := int(math.Round(trainProportion * float64(len(indices))))
		rest := indices[nTrain:]
		nTest := len(rest) / 2

		trainIdx = append(trainIdx, indices[:nTrain]...)
		testIdx = append(testIdx, rest[:nTest]...)
		cvIdx = append(cvIdx, rest[nTest:]...)
	}

	// Restore row order within each partition for stable artifacts.
	sort.Ints(trainIdx)
	sort.Ints(cvIdx)
	sort.Ints(testIdx)

	parts := Partitions{
		Train: df.Subset(trainIdx),
		CV:    df.Subset(cvIdx),
		Test:  df.Subset(testIdx),
	}
	for _, sub := range []dataframe.DataFrame{parts.Train, parts.CV, parts.Test} {
		if sub.Err != nil {
			return Partitions{}, fmt.Errorf("subset partition rows: %w", sub.Err)
		}
	}

	slog.Info("partitioned dataset",
		slog.Int("train_rows", parts.Train.Nrow()),
		slog.Int("cv_rows", parts.CV.Nrow()),
		slog.Int("test_rows", parts.Test.Nrow()),
		slog.Int("strata", len(strata)))

	return parts, nil
}
