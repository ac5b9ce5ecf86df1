package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cleanedCSV builds a cleaned-shape table: numeric predictors plus label.
// row_id tracks original row identity so tests can check disjointness.
func cleanedCSV(rows, predictors int) string {
	var b strings.Builder

	b.WriteString("row_id")
	for p := 0; p < predictors; p++ {
		fmt.Fprintf(&b, ",sensor_%02d", p)
	}
	b.WriteString(",classe\n")

	classes := []string{"A", "B", "C", "D", "E"}
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&b, "%d", i)
		for p := 0; p < predictors; p++ {
			fmt.Fprintf(&b, ",%.3f", float64(i*predictors+p)*0.01)
		}
		fmt.Fprintf(&b, ",%s\n", classes[i%len(classes)])
	}

	return b.String()
}

func rowIDs(t *testing.T, df dataframe.DataFrame) map[int]bool {
	t.Helper()
	ids := make(map[int]bool, df.Nrow())
	for _, rec := range df.Col("row_id").Records() {
		id, err := strconv.Atoi(rec)
		require.NoError(t, err)
		require.False(t, ids[id], "duplicate row %d inside a partition", id)
		ids[id] = true
	}
	return ids
}

func labelCounts(df dataframe.DataFrame) map[string]int {
	counts := make(map[string]int)
	for _, label := range df.Col("classe").Records() {
		counts[label]++
	}
	return counts
}

func TestSplitPartitionsAreDisjointAndComplete(t *testing.T) {
	df := parseCSV(t, cleanedCSV(250, 4))

	parts, err := Split(df, "classe", 0.6, 42)
	require.NoError(t, err)

	train := rowIDs(t, parts.Train)
	cv := rowIDs(t, parts.CV)
	test := rowIDs(t, parts.Test)

	assert.Equal(t, df.Nrow(), len(train)+len(cv)+len(test))

	for id := range train {
		assert.False(t, cv[id], "row %d in both train and cv", id)
		assert.False(t, test[id], "row %d in both train and test", id)
	}
	for id := range cv {
		assert.False(t, test[id], "row %d in both cv and test", id)
	}
}

func TestSplitIsDeterministicForFixedSeed(t *testing.T) {
	df := parseCSV(t, cleanedCSV(250, 4))

	first, err := Split(df, "classe", 0.6, 42)
	require.NoError(t, err)
	second, err := Split(df, "classe", 0.6, 42)
	require.NoError(t, err)

	assert.Equal(t, rowIDs(t, first.Train), rowIDs(t, second.Train))
	assert.Equal(t, rowIDs(t, first.CV), rowIDs(t, second.CV))
	assert.Equal(t, rowIDs(t, first.Test), rowIDs(t, second.Test))
}

func TestSplitPreservesLabelProportions(t *testing.T) {
	df := parseCSV(t, cleanedCSV(500, 3))
	inputCounts := labelCounts(df)

	parts, err := Split(df, "classe", 0.6, 7)
	require.NoError(t, err)

	tolerance := 1
	for name, part := range map[string]dataframe.DataFrame{
		"train": parts.Train,
		"cv":    parts.CV,
		"test":  parts.Test,
	} {
		counts := labelCounts(part)
		share := float64(part.Nrow()) / float64(df.Nrow())
		for label, total := range inputCounts {
			expected := int(share * float64(total))
			assert.InDelta(t, expected, counts[label], float64(tolerance),
				"label %s proportion off in %s partition", label, name)
		}
	}
}

// The 100-row scenario: 60 numeric columns, 5 balanced classes, fixed
// metadata columns, full clean-then-split run.
func TestSplitEndToEndScenario(t *testing.T) {
	raw := parseCSV(t, rawScenarioCSV(t))
	cleaner := NewCleaner(testOptions, nil)

	cleaned, err := cleaner.Clean(raw)
	require.NoError(t, err)
	require.Equal(t, 100, cleaned.Nrow())

	parts, err := Split(cleaned, "classe", 0.6, 1234)
	require.NoError(t, err)

	assert.InDelta(t, 60, parts.Train.Nrow(), 1)
	assert.InDelta(t, 20, parts.CV.Nrow(), 1)
	assert.InDelta(t, 20, parts.Test.Nrow(), 1)

	for name, part := range map[string]dataframe.DataFrame{
		"train": parts.Train,
		"cv":    parts.CV,
		"test":  parts.Test,
	} {
		counts := labelCounts(part)
		for _, label := range []string{"A", "B", "C", "D", "E"} {
			assert.Greater(t, counts[label], 0, "class %s absent from %s partition", label, name)
		}
	}
}

// rawScenarioCSV builds 100 rows with the fixed metadata columns, 60 numeric
// sensor columns, and 5 balanced classes. No window-summary rows, so cleaning
// removes columns only.
func rawScenarioCSV(t *testing.T) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("X,user_name,raw_timestamp_part_1,raw_timestamp_part_2,cvtd_timestamp,new_window,num_window")
	for p := 0; p < 60; p++ {
		fmt.Fprintf(&b, ",sensor_%02d", p)
	}
	b.WriteString(",classe\n")

	classes := []string{"A", "B", "C", "D", "E"}
	for i := 0; i < 100; i++ {
		fmt.Fprintf(&b, "%d,jeremy,%d,%d,05/12/2011 14:23,no,%d",
			i+1, 1323095002+i, 648500+i, i/25+1)
		for p := 0; p < 60; p++ {
			fmt.Fprintf(&b, ",%.3f", float64((i*31+p*17)%97)*0.1)
		}
		fmt.Fprintf(&b, ",%s\n", classes[i%len(classes)])
	}

	return b.String()
}

func TestSplitRejectsBadProportion(t *testing.T) {
	df := parseCSV(t, cleanedCSV(50, 2))

	for _, p := range []float64{0, 1, -0.5, 1.5} {
		_, err := Split(df, "classe", p, 42)
		assert.Error(t, err, "proportion %v accepted", p)
	}
}

func TestSplitRejectsMissingLabel(t *testing.T) {
	df := parseCSV(t, cleanedCSV(50, 2))

	_, err := Split(df, "label", 0.6, 42)
	assert.Error(t, err)
}
