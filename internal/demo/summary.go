package demo

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderSummary writes report as a table of step, operation and result.
// Fancy borders are used only when terminalWidth is positive.
func RenderSummary(w io.Writer, report *Report, terminalWidth int) {
	if terminalWidth <= 0 {
		text.DisableColors()
	}

	outputTable := NewTable(w, terminalWidth)
	outputTable.AppendHeader(table.Row{"Structure", "Operation", "Result"})

	for _, p := range report.Trie.Searches {
		outputTable.AppendRow(table.Row{"trie", fmt.Sprintf("search(%q)", p.Query), p.Result})
	}
	for _, p := range report.Trie.Prefixes {
		outputTable.AppendRow(table.Row{"trie", fmt.Sprintf("starts_with(%q)", p.Query), p.Result})
	}
	outputTable.AppendSeparator()

	outputTable.AppendRow(table.Row{"heap", "get_min()", report.Heap.Min})
	outputTable.AppendRow(table.Row{"heap", "extract_min()", optional(report.Heap.Extracted, report.Heap.ExtractOK)})
	outputTable.AppendRow(table.Row{"heap", "get_min() after", optional(report.Heap.MinAfter, report.Heap.MinAfterOK)})
	outputTable.AppendSeparator()

	for _, l := range report.Table.Lookups {
		outputTable.AppendRow(table.Row{"hashtable", fmt.Sprintf("search(%q)", l.Key), optional(l.Value, l.Found)})
	}
	for _, d := range report.Table.Deletions {
		outputTable.AppendRow(table.Row{"hashtable", fmt.Sprintf("delete(%q)", d.Key), d.Deleted})
		outputTable.AppendRow(table.Row{"hashtable", fmt.Sprintf("search(%q) after delete", d.Key), d.FoundAfter})
	}

	outputTable.Render()
}

// NewTable returns a table writer mirrored to w, styled for a terminal
// when terminalWidth is positive.
func NewTable(w io.Writer, terminalWidth int) table.Writer {
	outputTable := table.NewWriter()
	outputTable.SetOutputMirror(w)

	if terminalWidth > 0 {
		outputTable.SetStyle(table.StyleRounded)
		outputTable.SetAllowedRowLength(terminalWidth)
	}
	outputTable.Style().Options.DoNotColorBordersAndSeparators = true

	return outputTable
}

// optional renders v, or "none" when ok is false.
func optional(v any, ok bool) any {
	if !ok {
		return "none"
	}
	return v
}
