package quality

import (
	"fmt"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/evaluation"
)

// Accuracy predicts labels for grid and returns the fraction of correct
// predictions against the grid's true labels.
func (m *Model) Accuracy(grid base.FixedDataGrid) (float64, error) {
	predictions, err := m.Predict(grid)
	if err != nil {
		return 0, err
	}

	confusion, err := evaluation.GetConfusionMatrix(grid, predictions)
	if err != nil {
		return 0, fmt.Errorf("confusion matrix: %w", err)
	}

	return evaluation.GetAccuracy(confusion), nil
}

// Evaluate computes accuracy on all three partitions
func (m *Model) Evaluate(parts *PartitionInstances) (Evaluation, error) {
	var eval Evaluation
	var err error

	if eval.TrainAccuracy, err = m.Accuracy(parts.Train); err != nil {
		return Evaluation{}, fmt.Errorf("train accuracy: %w", err)
	}
	if eval.CVAccuracy, err = m.Accuracy(parts.CV); err != nil {
		return Evaluation{}, fmt.Errorf("cv accuracy: %w", err)
	}
	if eval.TestAccuracy, err = m.Accuracy(parts.Test); err != nil {
		return Evaluation{}, fmt.Errorf("test accuracy: %w", err)
	}

	return eval, nil
}
