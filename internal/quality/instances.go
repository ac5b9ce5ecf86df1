package quality

import (
	"fmt"

	"github.com/sjwhitworth/golearn/base"
)

// PartitionInstances holds the three partitions as golearn instances. CV and
// Test are parsed against the Train schema so attribute order and class
// values line up across all three.
type PartitionInstances struct {
	Train *base.DenseInstances
	CV    *base.DenseInstances
	Test  *base.DenseInstances
}

// LoadInstances parses the partition CSV artifacts into golearn instances
func LoadInstances(trainPath, cvPath, testPath string) (*PartitionInstances, error) {
	train, err := base.ParseCSVToInstances(trainPath, true)
	if err != nil {
		return nil, fmt.Errorf("parse train partition: %w", err)
	}

	cv, err := base.ParseCSVToTemplatedInstances(cvPath, true, train)
	if err != nil {
		return nil, fmt.Errorf("parse cv partition: %w", err)
	}

	test, err := base.ParseCSVToTemplatedInstances(testPath, true, train)
	if err != nil {
		return nil, fmt.Errorf("parse test partition: %w", err)
	}

	return &PartitionInstances{Train: train, CV: cv, Test: test}, nil
}

// numRows returns the row count of a data grid
func numRows(grid base.FixedDataGrid) int {
	_, rows := grid.Size()
	return rows
}
