// Package quality implements the model-fitting and reporting half of the
// exercise-quality analysis: random-forest classification of the five
// performance classes, the complexity-limit learning curve, permutation-based
// variable importance, and the predictor correlation matrix.
//
// Random-forest induction and prediction are delegated to golearn; nothing in
// this package grows trees. The pieces fit together as follows:
//
//   - types.go:       result structures shared by the sweep, the final fit,
//     and the persistence layer
//   - instances.go:   bridges partition CSV artifacts into golearn instances,
//     keyed to the training schema
//   - forest.go:      Trainer/Model wrappers around golearn's random forest
//   - evaluate.go:    accuracy via the golearn confusion matrix
//   - sweep.go:       the learning curve over increasing complexity limits
//   - importance.go:  permutation importance over the cv partition
//   - correlation.go: predictor correlation matrix (gonum)
//   - persist.go:     CSV, text, and Excel report output
package quality
