package quality

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"harcli/internal/dataset"
)

// CorrelationMatrix computes the pairwise Pearson correlation of the named
// predictor columns over df, in the given predictor order.
func CorrelationMatrix(df dataframe.DataFrame, predictors []string) (*mat.SymDense, error) {
	if len(predictors) == 0 {
		return nil, fmt.Errorf("no predictors to correlate")
	}
	if err := dataset.RequireColumns(df, predictors...); err != nil {
		return nil, err
	}

	rows := df.Nrow()
	data := mat.NewDense(rows, len(predictors), nil)
	for j, name := range predictors {
		values := df.Col(name).Float()
		if len(values) != rows {
			return nil, fmt.Errorf("column %s has %d values, want %d", name, len(values), rows)
		}
		for i, v := range values {
			data.Set(i, j, v)
		}
	}

	corr := mat.NewSymDense(len(predictors), nil)
	stat.CorrelationMatrix(corr, data, nil)

	return corr, nil
}
