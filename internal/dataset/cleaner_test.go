package dataset

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harcli/internal/shared/testutil"
)

var testOptions = CleanerOptions{
	LabelColumn:     "classe",
	WindowColumn:    "new_window",
	WindowFlagValue: "yes",
	MetadataColumns: []string{
		"X", "user_name",
		"raw_timestamp_part_1", "raw_timestamp_part_2", "cvtd_timestamp",
		"new_window", "num_window",
	},
}

// rawSensorCSV builds a small raw table in the shape of the sensor export:
// seven metadata columns, two usable numeric predictors, one column that is
// only populated on window-summary rows, one column that is always empty, one
// non-numeric column, and the label. Every fifth row is a window summary.
func rawSensorCSV(rows int) string {
	var b strings.Builder
	b.WriteString("X,user_name,raw_timestamp_part_1,raw_timestamp_part_2,cvtd_timestamp,new_window,num_window,roll_belt,pitch_belt,kurtosis_roll_belt,max_roll_belt,sensor_note,classe\n")

	classes := []string{"A", "B", "C", "D", "E"}
	for i := 0; i < rows; i++ {
		window := "no"
		kurtosis := "NA"
		if i%5 == 4 {
			window = "yes"
			kurtosis = "1.5"
		}
		fmt.Fprintf(&b, "%d,carlitos,%d,%d,02/12/2011 13:32,%s,%d,%.2f,%.2f,%s,,calibrated,%s\n",
			i+1, 1323084231+i, 788290+i, window, i/5+1,
			float64(i)*0.1, float64(i)*-0.2, kurtosis, classes[i%5])
	}

	return b.String()
}

func parseCSV(t *testing.T, content string) dataframe.DataFrame {
	t.Helper()
	df := dataframe.ReadCSV(strings.NewReader(content),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(defaultMissingTokens),
	)
	require.NoError(t, df.Err)
	return df
}

func TestCleanRemovesWindowSummaryRows(t *testing.T) {
	df := parseCSV(t, rawSensorCSV(50))
	cleaner := NewCleaner(testOptions, nil)

	cleaned, err := cleaner.Clean(df)
	require.NoError(t, err)

	// 10 of the 50 rows are window summaries
	assert.Equal(t, 40, cleaned.Nrow())
}

func TestCleanRemovesMetadataColumns(t *testing.T) {
	df := parseCSV(t, rawSensorCSV(50))
	cleaner := NewCleaner(testOptions, nil)

	cleaned, err := cleaner.Clean(df)
	require.NoError(t, err)

	names := cleaned.Names()
	for _, meta := range testOptions.MetadataColumns {
		assert.NotContains(t, names, meta)
	}
}

func TestCleanDropsUnnamedRowIndexColumn(t *testing.T) {
	// The real export leaves the row-index header empty, so the column only
	// carries the X name the loader assigns. Clean must still drop it: a
	// surviving row index would act as a fully informative predictor.
	raw := "," + strings.TrimPrefix(rawSensorCSV(50), "X,")
	path := writeTempCSV(t, raw)

	df, err := Load(path, nil, "classe")
	require.NoError(t, err)

	cleaner := NewCleaner(testOptions, nil)
	cleaned, err := cleaner.Clean(df)
	require.NoError(t, err)

	predictors := cleaner.PredictorColumns(cleaned)
	assert.Equal(t, []string{"roll_belt", "pitch_belt"}, predictors)
	assert.NotContains(t, predictors, "X")
	assert.NotContains(t, predictors, "X0")
}

func TestCleanRemovesColumnsWithMissingValues(t *testing.T) {
	df := parseCSV(t, rawSensorCSV(50))
	cleaner := NewCleaner(testOptions, nil)

	cleaned, err := cleaner.Clean(df)
	require.NoError(t, err)

	names := cleaned.Names()
	assert.NotContains(t, names, "kurtosis_roll_belt", "column populated only on summary rows must go")
	assert.NotContains(t, names, "max_roll_belt", "column empty for all rows must go")

	for _, name := range names {
		assert.False(t, cleaned.Col(name).HasNaN(), "column %s still has missing values", name)
	}
}

func TestCleanRemovesNonNumericPredictors(t *testing.T) {
	df := parseCSV(t, rawSensorCSV(50))
	cleaner := NewCleaner(testOptions, nil)

	cleaned, err := cleaner.Clean(df)
	require.NoError(t, err)

	assert.NotContains(t, cleaned.Names(), "sensor_note")
}

func TestCleanKeepsLabelLast(t *testing.T) {
	df := parseCSV(t, rawSensorCSV(50))
	cleaner := NewCleaner(testOptions, nil)

	cleaned, err := cleaner.Clean(df)
	require.NoError(t, err)

	names := cleaned.Names()
	require.NotEmpty(t, names)
	assert.Equal(t, "classe", names[len(names)-1])
	assert.Equal(t, []string{"roll_belt", "pitch_belt"}, names[:len(names)-1])
	assert.Equal(t, []string{"roll_belt", "pitch_belt"}, cleaner.PredictorColumns(cleaned))
}

func TestCleanIsIdempotent(t *testing.T) {
	df := parseCSV(t, rawSensorCSV(50))
	cleaner := NewCleaner(testOptions, nil)

	once, err := cleaner.Clean(df)
	require.NoError(t, err)

	twice, err := cleaner.Clean(once)
	require.NoError(t, err)

	assert.Equal(t, once.Nrow(), twice.Nrow())
	assert.Equal(t, once.Names(), twice.Names())
	assert.Equal(t, once.Records(), twice.Records())
}

func TestCleanLogsColumnCounts(t *testing.T) {
	logger, handler := testutil.NewBufferedLogger(t)
	df := parseCSV(t, rawSensorCSV(50))
	cleaner := NewCleaner(testOptions, logger)

	_, err := cleaner.Clean(df)
	require.NoError(t, err)

	assert.True(t, handler.ContainsMessage("cleaned dataset"))
	predictors, ok := handler.AttrValue("predictors")
	require.True(t, ok)
	assert.EqualValues(t, 2, predictors)
}

func TestCleanFailsWithoutLabelColumn(t *testing.T) {
	df := parseCSV(t, "a,b\n1,2\n3,4\n")
	cleaner := NewCleaner(testOptions, nil)

	_, err := cleaner.Clean(df)
	assert.Error(t, err)
}

func TestCleanFailsWhenNothingSurvives(t *testing.T) {
	// Only metadata and the label: no predictors can survive.
	df := parseCSV(t, "X,user_name,classe\n1,carlitos,A\n2,pedro,B\n")
	cleaner := NewCleaner(testOptions, nil)

	_, err := cleaner.Clean(df)
	assert.Error(t, err)
}
