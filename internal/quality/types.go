package quality

import (
	"time"
)

// SweepPoint is one step of the learning curve: the complexity limit applied
// to each tree and the resulting accuracy on the train and cv partitions.
type SweepPoint struct {
	Limit         int     `json:"limit"`
	TrainAccuracy float64 `json:"train_accuracy"`
	CVAccuracy    float64 `json:"cv_accuracy"`
}

// Evaluation holds the final model's accuracy on all three partitions
type Evaluation struct {
	TrainAccuracy float64 `json:"train_accuracy"`
	CVAccuracy    float64 `json:"cv_accuracy"`
	TestAccuracy  float64 `json:"test_accuracy"`
}

// FeatureImportance is a ranked importance score for one predictor. Score is
// the cv accuracy drop observed when the predictor's values are permuted.
type FeatureImportance struct {
	Feature string  `json:"feature"`
	Score   float64 `json:"score"`
}

// RunResult aggregates everything a single analysis run produces, for the
// persistence layer and the console summary.
type RunResult struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	DatasetRows int `json:"dataset_rows"`
	CleanedRows int `json:"cleaned_rows"`
	Predictors  int `json:"predictors"`
	TrainRows   int `json:"train_rows"`
	CVRows      int `json:"cv_rows"`
	TestRows    int `json:"test_rows"`

	Trees int `json:"trees"`

	Curve      []SweepPoint        `json:"curve"`
	Final      Evaluation          `json:"final"`
	Importance []FeatureImportance `json:"importance"`
}
