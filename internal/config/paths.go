package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the output locations for a report run.
// This is the single source of truth for every file the tool writes.
type Paths struct {
	OutputDir     string
	PartitionsDir string
	ReportsDir    string
	PlotsDir      string

	// Partition artifacts (inputs to model fitting)
	CleanedCSV string
	TrainCSV   string
	CVCSV      string
	TestCSV    string

	// Report files
	LearningCurveCSV string
	ImportanceCSV    string
	SummaryTXT       string
	WorkbookXLSX     string

	// Plot files
	LearningCurvePNG string
	CorrelationPNG   string
}

// NewPaths builds the output layout rooted at outputDir.
//
// Directory structure:
//
//	<outputDir>/
//	  ├── partitions/   (cleaned + train/cv/test CSVs)
//	  ├── reports/      (learning curve, importance, summary, workbook)
//	  └── plots/        (learning curve and correlation PNGs)
func NewPaths(outputDir string) *Paths {
	partitionsDir := filepath.Join(outputDir, "partitions")
	reportsDir := filepath.Join(outputDir, "reports")
	plotsDir := filepath.Join(outputDir, "plots")

	return &Paths{
		OutputDir:     outputDir,
		PartitionsDir: partitionsDir,
		ReportsDir:    reportsDir,
		PlotsDir:      plotsDir,

		CleanedCSV: filepath.Join(partitionsDir, "cleaned.csv"),
		TrainCSV:   filepath.Join(partitionsDir, "train.csv"),
		CVCSV:      filepath.Join(partitionsDir, "cv.csv"),
		TestCSV:    filepath.Join(partitionsDir, "test.csv"),

		LearningCurveCSV: filepath.Join(reportsDir, "learning_curve.csv"),
		ImportanceCSV:    filepath.Join(reportsDir, "importance.csv"),
		SummaryTXT:       filepath.Join(reportsDir, "summary.txt"),
		WorkbookXLSX:     filepath.Join(reportsDir, "quality_report.xlsx"),

		LearningCurvePNG: filepath.Join(plotsDir, "learning_curve.png"),
		CorrelationPNG:   filepath.Join(plotsDir, "correlation.png"),
	}
}

// EnsureDirectories creates all output directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.OutputDir,
		p.PartitionsDir,
		p.ReportsDir,
		p.PlotsDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
