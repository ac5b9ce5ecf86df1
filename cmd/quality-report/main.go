package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"harcli/internal/config"
	"harcli/internal/dataset"
	"harcli/internal/exporter"
	"harcli/internal/plotting"
	"harcli/internal/quality"
)

func main() {
	configFile := flag.String("config", "", "optional YAML config file")
	inputFile := flag.String("input", "", "input dataset CSV (overrides config)")
	outputDir := flag.String("out", "", "output directory for reports (overrides config)")
	seed := flag.Int64("seed", 0, "random seed for the stratified split (overrides config)")
	trees := flag.Int("trees", 0, "ensemble size (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if *inputFile != "" {
		cfg.Data.InputFile = *inputFile
	}
	if *outputDir != "" {
		cfg.Paths.OutputDir = *outputDir
	}
	if *seed != 0 {
		cfg.Split.Seed = *seed
	}
	if *trees != 0 {
		cfg.Model.Trees = *trees
	}

	runID := uuid.New().String()
	logger := setupLogger(cfg.Logging).With(slog.String("run_id", runID))
	slog.SetDefault(logger)

	paths := config.NewPaths(cfg.Paths.OutputDir)
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create output directories", "error", err)
		os.Exit(1)
	}

	start := time.Now()
	slog.Info("Starting exercise-quality report",
		"input", cfg.Data.InputFile,
		"output", cfg.Paths.OutputDir,
		"seed", cfg.Split.Seed,
		"trees", cfg.Model.Trees)

	// Load raw dataset
	df, err := dataset.Load(cfg.Data.InputFile, cfg.Data.MissingTokens,
		cfg.Data.LabelColumn, cfg.Data.WindowColumn)
	if err != nil {
		slog.Error("Failed to load dataset", "error", err,
			"hint", "pass -input or set QR_DATA_INPUT_FILE")
		os.Exit(1)
	}
	rawRows := df.Nrow()

	// Clean: drop window-summary rows, metadata columns, incomplete columns
	cleaner := dataset.NewCleaner(dataset.CleanerOptions{
		LabelColumn:     cfg.Data.LabelColumn,
		WindowColumn:    cfg.Data.WindowColumn,
		WindowFlagValue: cfg.Data.WindowFlagValue,
		MetadataColumns: cfg.Data.MetadataColumns,
	}, logger)

	cleaned, err := cleaner.Clean(df)
	if err != nil {
		slog.Error("Failed to clean dataset", "error", err)
		os.Exit(1)
	}
	predictors := cleaner.PredictorColumns(cleaned)

	// Stratified 60/20/20 split
	parts, err := dataset.Split(cleaned, cfg.Data.LabelColumn,
		cfg.Split.TrainProportion, cfg.Split.Seed)
	if err != nil {
		slog.Error("Failed to partition dataset", "error", err)
		os.Exit(1)
	}

	// Write partition artifacts; the model-fitting stage reads them back
	writer := exporter.NewCSVWriter(logger)
	if err := writer.WriteDataFrame(paths.CleanedCSV, cleaned); err != nil {
		slog.Error("Failed to write cleaned dataset", "error", err)
		os.Exit(1)
	}
	if err := writer.WriteDataFrame(paths.TrainCSV, parts.Train); err != nil {
		slog.Error("Failed to write train partition", "error", err)
		os.Exit(1)
	}
	if err := writer.WriteDataFrame(paths.CVCSV, parts.CV); err != nil {
		slog.Error("Failed to write cv partition", "error", err)
		os.Exit(1)
	}
	if err := writer.WriteDataFrame(paths.TestCSV, parts.Test); err != nil {
		slog.Error("Failed to write test partition", "error", err)
		os.Exit(1)
	}

	instances, err := quality.LoadInstances(paths.TrainCSV, paths.CVCSV, paths.TestCSV)
	if err != nil {
		slog.Error("Failed to load partition instances", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	trainer := quality.NewTrainer(cfg.Model.Trees, cfg.Model.SplitFeatures, logger)

	// Learning curve over increasing complexity limits
	slog.Info("Building learning curve",
		"start", cfg.Model.SweepStart,
		"end", cfg.Model.SweepEnd,
		"step", cfg.Model.SweepStep)
	curve, err := trainer.LearningCurve(ctx, parts.Train, cfg.Data.LabelColumn, instances,
		quality.SweepConfig{
			Start:   cfg.Model.SweepStart,
			End:     cfg.Model.SweepEnd,
			Step:    cfg.Model.SweepStep,
			Seed:    cfg.Split.Seed,
			WorkDir: filepath.Join(paths.PartitionsDir, "sweep"),
		})
	if err != nil {
		slog.Error("Failed to build learning curve", "error", err)
		os.Exit(1)
	}

	// Final unrestricted fit and three-way evaluation
	slog.Info("Fitting final model", "trees", cfg.Model.Trees)
	model, err := trainer.Fit(instances.Train)
	if err != nil {
		slog.Error("Failed to fit final model", "error", err)
		os.Exit(1)
	}

	eval, err := model.Evaluate(instances)
	if err != nil {
		slog.Error("Failed to evaluate final model", "error", err)
		os.Exit(1)
	}
	slog.Info("Evaluated final model",
		"train_accuracy", eval.TrainAccuracy,
		"cv_accuracy", eval.CVAccuracy,
		"test_accuracy", eval.TestAccuracy)

	importance, err := model.PermutationImportance(instances.CV, cfg.Split.Seed, logger)
	if err != nil {
		slog.Error("Failed to compute variable importance", "error", err)
		os.Exit(1)
	}

	corr, err := quality.CorrelationMatrix(parts.Train, predictors)
	if err != nil {
		slog.Error("Failed to compute correlation matrix", "error", err)
		os.Exit(1)
	}

	result := quality.RunResult{
		RunID:       runID,
		GeneratedAt: time.Now(),
		DatasetRows: rawRows,
		CleanedRows: cleaned.Nrow(),
		Predictors:  len(predictors),
		TrainRows:   parts.Train.Nrow(),
		CVRows:      parts.CV.Nrow(),
		TestRows:    parts.Test.Nrow(),
		Trees:       cfg.Model.Trees,
		Curve:       curve,
		Final:       eval,
		Importance:  importance,
	}

	// Persist reports
	if err := quality.SaveLearningCurveCSV(curve, paths.LearningCurveCSV); err != nil {
		slog.Error("Failed to save learning curve CSV", "error", err)
		os.Exit(1)
	}
	if err := quality.SaveImportanceCSV(importance, paths.ImportanceCSV); err != nil {
		slog.Error("Failed to save importance CSV", "error", err)
		os.Exit(1)
	}
	if err := quality.SaveSummaryReport(result, paths.SummaryTXT); err != nil {
		slog.Error("Failed to save summary report", "error", err)
		os.Exit(1)
	}
	if err := quality.SaveWorkbook(result, paths.WorkbookXLSX); err != nil {
		slog.Error("Failed to save report workbook", "error", err)
		os.Exit(1)
	}

	// Render plots
	if err := plotting.SaveLearningCurve(curve, paths.LearningCurvePNG); err != nil {
		slog.Error("Failed to render learning curve plot", "error", err)
		os.Exit(1)
	}
	if err := plotting.SaveCorrelationHeatmap(corr, paths.CorrelationPNG); err != nil {
		slog.Error("Failed to render correlation heatmap", "error", err)
		os.Exit(1)
	}

	slog.Info("Report generated successfully",
		"summary", paths.SummaryTXT,
		"workbook", paths.WorkbookXLSX,
		"elapsed", time.Since(start))

	printSummary(result, cfg.Model.TopImportance)
}

// setupLogger builds the process logger from the logging configuration
func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

// printSummary renders the end-of-run console tables
func printSummary(result quality.RunResult, topN int) {
	reporter := exporter.NewConsoleReporter(os.Stdout)

	reporter.PrintTable("=== ACCURACY ===",
		[]string{"Partition", "Rows", "Accuracy"},
		[][]string{
			{"train", strconv.Itoa(result.TrainRows), formatPercent(result.Final.TrainAccuracy)},
			{"cv", strconv.Itoa(result.CVRows), formatPercent(result.Final.CVAccuracy)},
			{"test", strconv.Itoa(result.TestRows), formatPercent(result.Final.TestAccuracy)},
		})

	top := result.Importance
	if len(top) > topN {
		top = top[:topN]
	}
	rows := make([][]string, 0, len(top))
	for rank, fi := range top {
		rows = append(rows, []string{
			strconv.Itoa(rank + 1),
			fi.Feature,
			fmt.Sprintf("%.4f", fi.Score),
		})
	}
	reporter.PrintTable(fmt.Sprintf("=== TOP %d VARIABLE IMPORTANCE ===", len(top)),
		[]string{"Rank", "Feature", "Score"}, rows)
	reporter.PrintNote("score: cv accuracy drop when the predictor is permuted (%d predictors total)",
		len(result.Importance))
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}
