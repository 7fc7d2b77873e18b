package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/evertras/bubble-table/table"
	"github.com/kaytu-io/racecount/controller"
	"github.com/kaytu-io/racecount/pkg/harness"
	"github.com/kaytu-io/racecount/pkg/style"
	"github.com/kaytu-io/racecount/pkg/utils"
	"github.com/muesli/reflow/wordwrap"
)

const (
	columnKeyTest    = "test"
	columnKeyCounter = "counter"
	columnKeyTime    = "time"
	columnKeyComment = "comment"

	defaultWidth = 80
)

// RunsChangedMsg asks for a redraw after a strategy starts or finishes.
type RunsChangedMsg struct{}

// RunsDoneMsg is sent to the program once every strategy has run.
type RunsDoneMsg struct {
	Results []harness.Result
	Err     error
}

// InteractiveView shows a spinner while the strategies run and the
// results table once they are done.
type InteractiveView struct {
	runs    *controller.Runs
	total   int
	spinner spinner.Model
	width   int

	done    bool
	results []harness.Result
	err     error
}

func NewInteractiveView(runs *controller.Runs, total int) InteractiveView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = style.RunningStyle
	return InteractiveView{
		runs:    runs,
		total:   total,
		spinner: s,
		width:   defaultWidth,
	}
}

func (m InteractiveView) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m InteractiveView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			if !m.done {
				m.err = fmt.Errorf("[InteractiveView] quit before all strategies finished: %w", context.Canceled)
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
	case RunsChangedMsg:
		return m, nil
	case RunsDoneMsg:
		m.done = true
		m.results = msg.Results
		m.err = msg.Err
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Done reports whether every strategy finished before the view closed.
func (m InteractiveView) Done() bool {
	return m.done
}

func (m InteractiveView) Err() error {
	return m.err
}

func (m InteractiveView) Results() []harness.Result {
	return m.results
}

func (m InteractiveView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	if !m.done {
		running := m.runs.RunningRuns()
		current := "starting"
		if len(running) > 0 {
			current = strings.Join(running, ", ")
		}
		b.WriteString(fmt.Sprintf(" %s running %s (%d/%d finished)\n", m.spinner.View(), current, m.runs.FinishedCount(), m.total))
		b.WriteString(style.HelpStyle.Render(" q: quit") + "\n")
		return b.String()
	}

	if m.err != nil {
		b.WriteString(style.ErrorStyle.Render(wordwrap.String(" error: "+m.err.Error(), m.width)) + "\n")
	}
	if len(m.results) > 0 {
		b.WriteString(m.resultsTable().View() + "\n\n")
		if summary := Summary(m.results); summary != "" {
			b.WriteString(wordwrap.String(summary, m.width) + "\n")
		}
	}
	b.WriteString(style.HelpStyle.Render(" q: quit") + "\n")
	return b.String()
}

func (m InteractiveView) resultsTable() table.Model {
	columns := []table.Column{
		table.NewColumn(columnKeyTest, "Test", 12),
		table.NewColumn(columnKeyCounter, "Final Counter", 20),
		table.NewColumn(columnKeyTime, "Time (s)", 15),
		table.NewColumn(columnKeyComment, "Comment", 15),
	}
	var rows []table.Row
	for _, r := range Order(m.results) {
		rows = append(rows, table.NewRow(table.RowData{
			columnKeyTest:    r.Name,
			columnKeyCounter: utils.FormatCount(r.FinalCounter),
			columnKeyTime:    utils.FormatSeconds(r.Seconds()),
			columnKeyComment: commentString(r),
		}))
	}
	return table.New(columns).WithRows(rows).WithBaseStyle(style.Base)
}
