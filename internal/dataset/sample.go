package dataset

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/go-gota/gota/dataframe"
)

// StratifiedSample returns a stratified subsample of df with exactly n rows
// (or df itself when n >= the row count). Stratum quotas are apportioned by
// largest remainder so the sample never exceeds n; every stratum keeps at
// least one row when n allows. Deterministic for a fixed seed.
func StratifiedSample(df dataframe.DataFrame, labelColumn string, n int, seed int64) (dataframe.DataFrame, error) {
	if n <= 0 {
		return dataframe.DataFrame{}, fmt.Errorf("sample size %d must be positive", n)
	}
	if n >= df.Nrow() {
		return df, nil
	}
	if err := RequireColumns(df, labelColumn); err != nil {
		return dataframe.DataFrame{}, err
	}

	labels := df.Col(labelColumn).Records()
	byLabel := make(map[string][]int)
	for i, label := range labels {
		byLabel[label] = append(byLabel[label], i)
	}

	strata := make([]string, 0, len(byLabel))
	for label := range byLabel {
		strata = append(strata, label)
	}
	sort.Strings(strata)

	total := float64(df.Nrow())
	quotas := make([]int, len(strata))
	remainders := make([]float64, len(strata))
	assigned := 0

	for i, label := range strata {
		exact := float64(len(byLabel[label])) * float64(n) / total
		quotas[i] = int(exact)
		remainders[i] = exact - float64(quotas[i])
		if quotas[i] == 0 && n >= len(strata) {
			quotas[i] = 1
			remainders[i] = 0
		}
		assigned += quotas[i]
	}

	// Distribute the leftover rows by largest remainder, stable on ties.
	order := make([]int, len(strata))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})
	for _, i := range order {
		if assigned >= n {
			break
		}
		if quotas[i] < len(byLabel[strata[i]]) {
			quotas[i]++
			assigned++
		}
	}

	// Forced minimum quotas can overshoot n when strata are tiny; shrink the
	// largest quotas until the cap holds.
	for assigned > n {
		largest := 0
		for i := range quotas {
			if quotas[i] > quotas[largest] {
				largest = i
			}
		}
		if quotas[largest] <= 1 {
			break
		}
		quotas[largest]--
		assigned--
	}

	rng := rand.New(rand.NewSource(seed))
	var sampleIdx []int
	for i, label := range strata {
		indices := byLabel[label]
		rng.Shuffle(len(indices), func(a, b int) {
			indices[a], indices[b] = indices[b], indices[a]
		})
		if quotas[i] > len(indices) {
			quotas[i] = len(indices)
		}
		sampleIdx = append(sampleIdx, indices[:quotas[i]]...)
	}
	sort.Ints(sampleIdx)

	sample := df.Subset(sampleIdx)
	if sample.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("subset sample rows: %w", sample.Err)
	}

	return sample, nil
}
