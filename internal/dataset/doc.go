// Package dataset implements the deterministic data-preparation stages of the
// exercise-quality report: loading the raw sensor CSV, cleaning it down to
// numeric predictors plus the quality label, and producing a stratified
// train/cv/test split.
//
// The package operates on gota DataFrames throughout. Cleaning is idempotent:
// applying Clean to its own output removes no further rows or columns.
//
// One documented assumption carried over from the source material: rows whose
// window flag is set are aggregate window summaries and are fully removable,
// and every column that survives cleaning holds raw sensor values. The
// missing-value rule is the only check backing this; it is not otherwise
// verified.
package dataset
