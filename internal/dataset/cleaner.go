package dataset

import (
	"fmt"
	"log/slog"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// CleanerOptions configures which rows and columns Clean removes
type CleanerOptions struct {
	// LabelColumn is the outcome label; always kept, always last in the output.
	LabelColumn string

	// WindowColumn and WindowFlagValue identify window-summary rows. Rows
	// where WindowColumn equals WindowFlagValue are removed.
	WindowColumn    string
	WindowFlagValue string

	// MetadataColumns are identifier and timestamp columns that are not
	// usable as raw predictors and are always removed.
	MetadataColumns []string
}

// Cleaner reduces a raw sensor table to numeric predictors plus the label
type Cleaner struct {
	opts   CleanerOptions
	logger *slog.Logger
}

// NewCleaner creates a cleaner for the given schema options
func NewCleaner(opts CleanerOptions, logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}

	return &Cleaner{
		opts:   opts,
		logger: logger,
	}
}

// Clean removes window-summary rows, the configured metadata columns, every
// column containing a missing value anywhere (which covers columns that are
// empty for all rows), and any remaining non-numeric predictor column. The
// returned frame holds the predictors in their original order with the label
// column last.
//
// Clean is idempotent: columns already removed are skipped, and a frame with
// no window column has no rows to filter.
func (c *Cleaner) Clean(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if err := RequireColumns(df, c.opts.LabelColumn); err != nil {
		return dataframe.DataFrame{}, err
	}

	rowsBefore := df.Nrow()

	// Drop window-summary rows. The column is absent when cleaning an
	// already-cleaned frame.
	if hasColumn(df, c.opts.WindowColumn) {
		df = df.Filter(dataframe.F{
			Colname:    c.opts.WindowColumn,
			Comparator: series.Neq,
			Comparando: c.opts.WindowFlagValue,
		})
		if df.Err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("filter window-summary rows: %w", df.Err)
		}
	}

	metadata := make(map[string]bool, len(c.opts.MetadataColumns))
	for _, name := range c.opts.MetadataColumns {
		metadata[name] = true
	}

	var kept []string
	droppedMissing := 0
	droppedNonNumeric := 0

	for _, name := range df.Names() {
		if name == c.opts.LabelColumn || metadata[name] {
			continue
		}

		col := df.Col(name)
		if col.HasNaN() {
			droppedMissing++
			continue
		}
		if t := col.Type(); t != series.Float && t != series.Int {
			droppedNonNumeric++
			continue
		}

		kept = append(kept, name)
	}

	if len(kept) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("no predictor columns survived cleaning")
	}

	out := df.Select(append(kept, c.opts.LabelColumn))
	if out.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("select cleaned columns: %w", out.Err)
	}

	c.logger.Info("cleaned dataset",
		slog.Int("rows_removed", rowsBefore-out.Nrow()),
		slog.Int("predictors", len(kept)),
		slog.Int("columns_dropped_missing", droppedMissing),
		slog.Int("columns_dropped_non_numeric", droppedNonNumeric))

	return out, nil
}

// PredictorColumns returns the predictor names of a cleaned frame, in order
func (c *Cleaner) PredictorColumns(df dataframe.DataFrame) []string {
	var predictors []string
	for _, name := range df.Names() {
		if name != c.opts.LabelColumn {
			predictors = append(predictors, name)
		}
	}
	return predictors
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}
