package exporter

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// ConsoleReporter renders report tables to a terminal
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a reporter writing to out
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

// PrintTable renders a titled table with the given headers and rows
func (r *ConsoleReporter) PrintTable(title string, headers []string, rows [][]string) {
	fmt.Fprintln(r.out)
	color.New(color.FgCyan, color.Bold).Fprintln(r.out, title)

	table := tablewriter.NewWriter(r.out)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.AppendBulk(rows)
	table.Render()
}

// PrintNote renders a single dimmed remark under a table
func (r *ConsoleReporter) PrintNote(format string, args ...any) {
	color.New(color.Faint).Fprintf(r.out, format+"\n", args...)
}
