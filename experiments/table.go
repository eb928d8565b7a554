package experiments

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Render prints the summaries as a table, highlighting the matchup with the best average.
func (r *Report) Render(w io.Writer) {
	best := Best(r.Summaries)
	highlight := color.New(color.FgGreen, color.Bold).SprintFunc()

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(r.Name)
	t.SetCaption("run %s", r.ID)
	t.AppendHeader(table.Row{"#", "Matchup", "Games", "Average", "Max", "Failure rate", "Turns"})
	for i, s := range r.Summaries {
		name := s.Matchup
		if i == best {
			name = highlight(name)
		}
		t.AppendRow(table.Row{
			s.ID,
			name,
			s.Games,
			fmt.Sprintf("%.2f", s.Average),
			s.Max,
			fmt.Sprintf("%.1f%%", 100*s.FailureRate),
			fmt.Sprintf("%.1f", s.AverageTurns),
		})
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})
	t.Render()
}
