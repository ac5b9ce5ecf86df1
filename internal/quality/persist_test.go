package quality

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleResult() RunResult {
	return RunResult{
		RunID:       "3e3ab9ac-1f6e-4f3a-8a62-0f14f2f2a001",
		GeneratedAt: time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC),
		DatasetRows: 19622,
		CleanedRows: 19216,
		Predictors:  52,
		TrainRows:   11532,
		CVRows:      3842,
		TestRows:    3842,
		Trees:       500,
		Curve: []SweepPoint{
			{Limit: 100, TrainAccuracy: 0.9512, CVAccuracy: 0.9377},
			{Limit: 200, TrainAccuracy: 0.9801, CVAccuracy: 0.9535},
		},
		Final: Evaluation{TrainAccuracy: 0.9987, CVAccuracy: 0.9921, TestAccuracy: 0.9908},
		Importance: []FeatureImportance{
			{Feature: "roll_belt", Score: 0.1421},
			{Feature: "yaw_belt", Score: 0.0977},
			{Feature: "pitch_forearm", Score: 0.0765},
		},
	}
}

func TestSaveLearningCurveCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "learning_curve.csv")

	require.NoError(t, SaveLearningCurveCSV(sampleResult().Curve, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Limit,TrainAccuracy,CVAccuracy")
	assert.Contains(t, string(data), "100,0.9512,0.9377")
	assert.Contains(t, string(data), "200,0.9801,0.9535")
}

func TestSaveLearningCurveCSVEmpty(t *testing.T) {
	err := SaveLearningCurveCSV(nil, filepath.Join(t.TempDir(), "curve.csv"))
	assert.Error(t, err)
}

func TestSaveImportanceCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "importance.csv")

	require.NoError(t, SaveImportanceCSV(sampleResult().Importance, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Rank,Feature,Score")
	assert.Contains(t, string(data), "1,roll_belt,0.1421")
	assert.Contains(t, string(data), "3,pitch_forearm,0.0765")
}

func TestSaveSummaryReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.txt")
	result := sampleResult()

	require.NoError(t, SaveSummaryReport(result, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, result.RunID)
	assert.Contains(t, text, "Train:  99.87%")
	assert.Contains(t, text, "CV:     99.21%")
	assert.Contains(t, text, "Test:   99.08%")
	assert.Contains(t, text, "roll_belt")
	assert.Contains(t, text, "11532 / 3842 / 3842")
}

func TestSaveWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quality_report.xlsx")
	result := sampleResult()

	require.NoError(t, SaveWorkbook(result, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Accuracy")
	assert.Contains(t, sheets, "LearningCurve")
	assert.Contains(t, sheets, "Importance")

	partition, err := f.GetCellValue("Accuracy", "A2")
	require.NoError(t, err)
	assert.Equal(t, "train", partition)

	limit, err := f.GetCellValue("LearningCurve", "A2")
	require.NoError(t, err)
	assert.Equal(t, "100", limit)

	feature, err := f.GetCellValue("Importance", "B2")
	require.NoError(t, err)
	assert.Equal(t, "roll_belt", feature)
}
