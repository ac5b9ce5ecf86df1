// Package plotting renders the report's two diagnostic plots as PNG files:
// the learning curve (accuracy vs complexity limit) and the predictor
// correlation heatmap.
package plotting
