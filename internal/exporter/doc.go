// Package exporter writes the report tool's file artifacts.
//
// CSVWriter is the core CSV writing facility, with optional UTF-8 BOM for
// Excel compatibility and directory creation on demand. Partition artifacts
// (cleaned dataset, train/cv/test splits) are written without a BOM because
// they are re-read by the model-fitting stage.
//
// ConsoleReporter renders the end-of-run accuracy and importance tables to
// the terminal.
package exporter
