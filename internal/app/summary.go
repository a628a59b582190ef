package app

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderSummary writes a table describing res to w.
func RenderSummary(w io.Writer, res Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	style := table.StyleLight
	style.Format.Footer = text.FormatDefault
	t.SetStyle(style)
	t.SetTitle(fmt.Sprintf("Report %s", res.ReportPath))

	t.AppendHeader(table.Row{"#", "Section", "Lines", "Status"})
	for i, s := range res.Sections {
		status := string(s.Status)
		if s.Err != nil {
			status = fmt.Sprintf("%s: %v", s.Status, s.Err)
		}
		t.AppendRow(table.Row{i + 1, s.Name, s.Lines, status})
	}

	t.AppendFooter(table.Row{"", "countries", res.Valid, fmt.Sprintf("run %s", res.RunID)})
	t.Render()

	for _, e := range []struct {
		what string
		err  error
	}{
		{"input", res.LoadErr},
		{"prepare", res.PrepareErr},
		{"publish", res.PublishErr},
	} {
		if e.err != nil {
			_, _ = fmt.Fprintf(w, "%s: %v\n", e.what, e.err)
		}
	}
}
