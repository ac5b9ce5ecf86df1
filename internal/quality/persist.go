package quality

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"harcli/internal/exporter"
)

// SaveLearningCurveCSV saves the sweep results to a CSV report
func SaveLearningCurveCSV(points []SweepPoint, outputPath string) error {
	if len(points) == 0 {
		return fmt.Errorf("no sweep points to save")
	}

	records := make([][]string, 0, len(points))
	for _, p := range points {
		records = append(records, []string{
			strconv.Itoa(p.Limit),
			formatFloat(p.TrainAccuracy, 4),
			formatFloat(p.CVAccuracy, 4),
		})
	}

	writer := exporter.NewCSVWriter(nil)
	return writer.WriteCSV(outputPath, exporter.WriteOptions{
		Headers:   []string{"Limit", "TrainAccuracy", "CVAccuracy"},
		Records:   records,
		BOMPrefix: true,
	})
}

// SaveImportanceCSV saves the ranked variable importance to a CSV report
func SaveImportanceCSV(importance []FeatureImportance, outputPath string) error {
	if len(importance) == 0 {
		return fmt.Errorf("no importance scores to save")
	}

	records := make([][]string, 0, len(importance))
	for rank, fi := range importance {
		records = append(records, []string{
			strconv.Itoa(rank + 1),
			fi.Feature,
			formatFloat(fi.Score, 4),
		})
	}

	writer := exporter.NewCSVWriter(nil)
	return writer.WriteCSV(outputPath, exporter.WriteOptions{
		Headers:   []string{"Rank", "Feature", "Score"},
		Records:   records,
		BOMPrefix: true,
	})
}

// SaveSummaryReport writes a human-readable text summary of the run
func SaveSummaryReport(result RunResult, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create summary file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "EXERCISE QUALITY CLASSIFICATION REPORT\n")
	fmt.Fprintf(file, "======================================\n\n")
	fmt.Fprintf(file, "Run ID:       %s\n", result.RunID)
	fmt.Fprintf(file, "Generated:    %s\n\n", result.GeneratedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(file, "DATA\n")
	fmt.Fprintf(file, "  Raw rows:       %d\n", result.DatasetRows)
	fmt.Fprintf(file, "  Cleaned rows:   %d\n", result.CleanedRows)
	fmt.Fprintf(file, "  Predictors:     %d\n", result.Predictors)
	fmt.Fprintf(file, "  Train/CV/Test:  %d / %d / %d\n\n", result.TrainRows, result.CVRows, result.TestRows)

	fmt.Fprintf(file, "MODEL\n")
	fmt.Fprintf(file, "  Random forest, %d trees\n\n", result.Trees)

	fmt.Fprintf(file, "ACCURACY\n")
	fmt.Fprintf(file, "  Train:  %s%%\n", formatFloat(result.Final.TrainAccuracy*100, 2))
	fmt.Fprintf(file, "  CV:     %s%%\n", formatFloat(result.Final.CVAccuracy*100, 2))
	fmt.Fprintf(file, "  Test:   %s%%\n\n", formatFloat(result.Final.TestAccuracy*100, 2))

	if len(result.Curve) > 0 {
		fmt.Fprintf(file, "LEARNING CURVE (complexity limit vs accuracy)\n")
		for _, p := range result.Curve {
			fmt.Fprintf(file, "  %5d  train %s  cv %s\n",
				p.Limit, formatFloat(p.TrainAccuracy, 4), formatFloat(p.CVAccuracy, 4))
		}
		fmt.Fprintf(file, "\n")
	}

	if len(result.Importance) > 0 {
		top := result.Importance
		if len(top) > 20 {
			top = top[:20]
		}
		fmt.Fprintf(file, "TOP VARIABLE IMPORTANCE (cv accuracy drop when permuted)\n")
		for rank, fi := range top {
			fmt.Fprintf(file, "  %2d. %-24s %s\n", rank+1, fi.Feature, formatFloat(fi.Score, 4))
		}
	}

	return nil
}

// SaveWorkbook writes the full result set to an Excel workbook with
// Accuracy, LearningCurve, and Importance sheets.
func SaveWorkbook(result RunResult, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const accuracySheet = "Accuracy"
	if err := f.SetSheetName("Sheet1", accuracySheet); err != nil {
		return fmt.Errorf("rename accuracy sheet: %w", err)
	}

	accuracyRows := [][]any{
		{"Partition", "Accuracy"},
		{"train", result.Final.TrainAccuracy},
		{"cv", result.Final.CVAccuracy},
		{"test", result.Final.TestAccuracy},
		{},
		{"Run ID", result.RunID},
		{"Generated", result.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Trees", result.Trees},
		{"Predictors", result.Predictors},
	}
	if err := writeSheetRows(f, accuracySheet, accuracyRows); err != nil {
		return err
	}

	const curveSheet = "LearningCurve"
	if _, err := f.NewSheet(curveSheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", curveSheet, err)
	}
	curveRows := [][]any{{"Limit", "TrainAccuracy", "CVAccuracy"}}
	for _, p := range result.Curve {
		curveRows = append(curveRows, []any{p.Limit, p.TrainAccuracy, p.CVAccuracy})
	}
	if err := writeSheetRows(f, curveSheet, curveRows); err != nil {
		return err
	}

	const importanceSheet = "Importance"
	if _, err := f.NewSheet(importanceSheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", importanceSheet, err)
	}
	importanceRows := [][]any{{"Rank", "Feature", "Score"}}
	for rank, fi := range result.Importance {
		importanceRows = append(importanceRows, []any{rank + 1, fi.Feature, fi.Score})
	}
	if err := writeSheetRows(f, importanceSheet, importanceRows); err != nil {
		return err
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	return nil
}

// writeSheetRows writes rows starting at A1, one slice per row
func writeSheetRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell name for row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d of %s: %w", i+1, sheet, err)
		}
	}
	return nil
}

// formatFloat formats a float with the given number of decimal places
func formatFloat(value float64, decimals int) string {
	return strconv.FormatFloat(value, 'f', decimals, 64)
}
