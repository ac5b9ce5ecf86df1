package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gota/gota/dataframe"
)

// defaultMissingTokens are the cell values treated as missing when no
// explicit token list is configured. "#DIV/0!" appears in the derived
// window-summary columns of the sensor export.
var defaultMissingTokens = []string{"", "NA", "NaN", "#DIV/0!"}

// rowIndexColumn names the dataset's first column when its header cell is
// empty. R's write.csv leaves the row-name column unnamed; gota would invent
// a name (X0) that the metadata configuration cannot anticipate, so the
// loader pins it to the conventional X before anything downstream sees it.
const rowIndexColumn = "X"

// Load reads the sensor CSV at path into a DataFrame. Cells matching one of
// missingTokens are parsed as missing values. An empty header on the first
// column is renamed to X (the row index). requiredColumns must all be
// present in the header.
func Load(path string, missingTokens []string, requiredColumns ...string) (dataframe.DataFrame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open dataset: %w", err)
	}

	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("read dataset header: %w", err)
	}

	if len(missingTokens) == 0 {
		missingTokens = defaultMissingTokens
	} else {
		// The empty cell is always missing, whatever is configured.
		missingTokens = append([]string{""}, missingTokens...)
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(missingTokens),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("parse dataset %s: %w", path, df.Err)
	}

	if df.Nrow() == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("dataset %s contains no rows", path)
	}

	if header[0] == "" {
		names := df.Names()
		names[0] = rowIndexColumn
		if err := df.SetNames(names...); err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("rename row-index column: %w", err)
		}
	}

	if err := RequireColumns(df, requiredColumns...); err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("dataset %s: %w", path, err)
	}

	slog.Info("loaded dataset",
		slog.String("path", path),
		slog.Int("rows", df.Nrow()),
		slog.Int("columns", df.Ncol()))

	return df, nil
}

// RequireColumns returns an error naming the first column missing from df
func RequireColumns(df dataframe.DataFrame, columns ...string) error {
	present := make(map[string]bool, df.Ncol())
	for _, name := range df.Names() {
		present[name] = true
	}

	for _, col := range columns {
		if !present[col] {
			return fmt.Errorf("required column %q not found", col)
		}
	}

	return nil
}
