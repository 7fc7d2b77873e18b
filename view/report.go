package view

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/kaytu-io/racecount/pkg/counter"
	"github.com/kaytu-io/racecount/pkg/harness"
	"github.com/kaytu-io/racecount/pkg/utils"
)

const (
	CommentOK           = "OK"
	CommentRaceDetected = "Race Detected"
)

type Output string

const (
	OutputTable       Output = "table"
	OutputPretty      Output = "pretty"
	OutputCsv         Output = "csv"
	OutputJson        Output = "json"
	OutputInteractive Output = "interactive"
)

var Outputs = []Output{OutputTable, OutputPretty, OutputCsv, OutputJson, OutputInteractive}

func ParseOutput(s string) (Output, error) {
	for _, o := range Outputs {
		if string(o) == s {
			return o, nil
		}
	}
	var names []string
	for _, o := range Outputs {
		names = append(names, string(o))
	}
	return "", fmt.Errorf("output mode not recognized\npossible values: %s. default value: table", strings.Join(names, ", "))
}

func Comment(r harness.Result) string {
	if r.RaceDetected() {
		return CommentRaceDetected
	}
	return CommentOK
}

// Order returns a copy of results in report order: race, mutex, atomic.
func Order(results []harness.Result) []harness.Result {
	ordered := make([]harness.Result, len(results))
	copy(ordered, results)
	sort.SliceStable(ordered, func(i, j int) bool {
		return counter.Rank(ordered[i].Name) < counter.Rank(ordered[j].Name)
	})
	return ordered
}

// Summary is a one-line human reading of the race row.
func Summary(results []harness.Result) string {
	for _, r := range results {
		if r.Name != counter.RaceName {
			continue
		}
		lost := utils.LostUpdates(r.FinalCounter, r.Expected)
		if lost == 0 {
			return fmt.Sprintf("The unsynchronized counter reached %d this time; lost updates are likely but not guaranteed on every run.", r.Expected)
		}
		return fmt.Sprintf("The unsynchronized counter lost %d of %d increments to concurrent read-modify-write.", lost, r.Expected)
	}
	return ""
}

// RenderTable writes the fixed-width report.
func RenderTable(w io.Writer, results []harness.Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s%-20s%-15s%s\n", "Test", "Final Counter", "Time (s)", "Comment")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	for _, r := range Order(results) {
		fmt.Fprintf(&b, "%-12s%-20d%-15s%s\n", r.Name, r.FinalCounter, utils.FormatSeconds(r.Seconds()), Comment(r))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Render writes results in any non-interactive output mode.
func Render(w io.Writer, output Output, results []harness.Result) error {
	switch output {
	case OutputTable:
		return RenderTable(w, results)
	case OutputPretty:
		return RenderPretty(w, results)
	case OutputCsv:
		return RenderCsv(w, results)
	case OutputJson:
		return RenderJson(w, results)
	default:
		return fmt.Errorf("[Render] output %s cannot be rendered to a writer", output)
	}
}
