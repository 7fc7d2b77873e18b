package view

import (
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/kaytu-io/racecount/pkg/harness"
	"github.com/kaytu-io/racecount/pkg/style"
	"github.com/kaytu-io/racecount/pkg/utils"
)

var underline = color.New(color.Underline)

func commentString(r harness.Result) string {
	if r.RaceDetected() {
		return style.RaceStyle.Render(Comment(r))
	}
	return style.OKStyle.Render(Comment(r))
}

// RenderPretty writes the report as a go-pretty table with a colored
// comment column and the race summary underneath.
func RenderPretty(w io.Writer, results []harness.Result) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Format.Header = text.FormatDefault

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignRight},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignRight},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignRight},
		{Number: 5, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	t.AppendHeader(table.Row{
		underline.Sprint("Test"),
		underline.Sprint("Final Counter"),
		underline.Sprint("Lost Updates"),
		underline.Sprint("Time (s)"),
		underline.Sprint("Comment"),
	})
	for _, r := range Order(results) {
		t.AppendRow(table.Row{
			r.Name,
			utils.FormatCount(r.FinalCounter),
			utils.FormatCount(utils.LostUpdates(r.FinalCounter, r.Expected)),
			utils.FormatSeconds(r.Seconds()),
			commentString(r),
		})
	}
	t.Render()

	if summary := Summary(results); summary != "" {
		_, err := io.WriteString(w, "\n"+style.HelpStyle.Render(summary)+"\n")
		return err
	}
	return nil
}
