package quality

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/sjwhitworth/golearn/base"

	"harcli/internal/dataset"
	"harcli/internal/exporter"
)

// SweepConfig controls the learning-curve sweep over complexity limits
type SweepConfig struct {
	// Start, End, Step define the inclusive complexity-limit sequence.
	Start int
	End   int
	Step  int

	// Seed drives the stratified subsampling that realises each limit.
	Seed int64

	// WorkDir receives the capped training subsample artifacts.
	WorkDir string
}

// LearningCurve fits one forest per complexity limit and records accuracy on
// the full train and cv partitions.
//
// golearn exposes no terminal-node cap, so each limit is realised by growing
// the forest on a stratified subsample of the training partition with exactly
// limit rows: a tree grown from n rows has at most n terminal nodes, so the
// cap holds. Limits at or above the training size fit on the full partition.
func (t *Trainer) LearningCurve(ctx context.Context, train dataframe.DataFrame, labelColumn string, parts *PartitionInstances, cfg SweepConfig) ([]SweepPoint, error) {
	if cfg.Step <= 0 || cfg.End < cfg.Start {
		return nil, fmt.Errorf("invalid sweep range %d..%d step %d", cfg.Start, cfg.End, cfg.Step)
	}

	writer := exporter.NewCSVWriter(t.logger)

	var points []SweepPoint
	for limit := cfg.Start; limit <= cfg.End; limit += cfg.Step {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("sweep cancelled at limit %d: %w", limit, ctx.Err())
		default:
		}

		capped, err := t.cappedTrainingSet(train, labelColumn, parts.Train, limit, cfg, writer)
		if err != nil {
			return nil, fmt.Errorf("limit %d: %w", limit, err)
		}

		model, err := t.Fit(capped)
		if err != nil {
			return nil, fmt.Errorf("limit %d: %w", limit, err)
		}

		trainAcc, err := model.Accuracy(parts.Train)
		if err != nil {
			return nil, fmt.Errorf("limit %d train accuracy: %w", limit, err)
		}
		cvAcc, err := model.Accuracy(parts.CV)
		if err != nil {
			return nil, fmt.Errorf("limit %d cv accuracy: %w", limit, err)
		}

		t.logger.Info("sweep point",
			slog.Int("limit", limit),
			slog.Float64("train_accuracy", trainAcc),
			slog.Float64("cv_accuracy", cvAcc))

		points = append(points, SweepPoint{
			Limit:         limit,
			TrainAccuracy: trainAcc,
			CVAccuracy:    cvAcc,
		})
	}

	return points, nil
}

// cappedTrainingSet returns instances for fitting at the given limit,
// subsampling and re-parsing against the training schema when the limit is
// below the full partition size.
func (t *Trainer) cappedTrainingSet(train dataframe.DataFrame, labelColumn string, full *base.DenseInstances, limit int, cfg SweepConfig, writer *exporter.CSVWriter) (base.FixedDataGrid, error) {
	if limit >= train.Nrow() {
		return full, nil
	}

	sample, err := dataset.StratifiedSample(train, labelColumn, limit, cfg.Seed+int64(limit))
	if err != nil {
		return nil, fmt.Errorf("subsample training partition: %w", err)
	}

	path := filepath.Join(cfg.WorkDir, fmt.Sprintf("train_limit_%04d.csv", limit))
	if err := writer.WriteDataFrame(path, sample); err != nil {
		return nil, err
	}

	capped, err := base.ParseCSVToTemplatedInstances(path, true, full)
	if err != nil {
		return nil, fmt.Errorf("parse capped training set: %w", err)
	}

	return capped, nil
}
