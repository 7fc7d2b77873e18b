package view

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/kaytu-io/racecount/pkg/harness"
	"github.com/kaytu-io/racecount/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expected = 2_000_000

func sampleResults() []harness.Result {
	return []harness.Result{
		{Name: "race", FinalCounter: 1_234_567, Expected: expected, Elapsed: 12340 * time.Microsecond},
		{Name: "mutex", FinalCounter: expected, Expected: expected, Elapsed: 1500 * time.Millisecond},
		{Name: "atomic", FinalCounter: expected, Expected: expected, Elapsed: 250 * time.Millisecond},
	}
}

func TestComment(t *testing.T) {
	assert.Equal(t, CommentRaceDetected, Comment(harness.Result{Name: "race", FinalCounter: 10, Expected: 20}))
	assert.Equal(t, CommentOK, Comment(harness.Result{Name: "race", FinalCounter: 20, Expected: 20}))
	// Only the race row is ever flagged.
	assert.Equal(t, CommentOK, Comment(harness.Result{Name: "mutex", FinalCounter: 10, Expected: 20}))
	assert.Equal(t, CommentOK, Comment(harness.Result{Name: "atomic", FinalCounter: 10, Expected: 20}))
}

func TestOrder(t *testing.T) {
	in := sampleResults()
	shuffled := []harness.Result{in[2], in[0], in[1]}
	ordered := Order(shuffled)

	var names []string
	for _, r := range ordered {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"race", "mutex", "atomic"}, names)
	assert.Equal(t, "atomic", shuffled[0].Name, "input must not be reordered in place")
}

func TestParseOutput(t *testing.T) {
	o, err := ParseOutput("json")
	require.NoError(t, err)
	assert.Equal(t, OutputJson, o)

	_, err = ParseOutput("xml")
	assert.Error(t, err)
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, sampleResults()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Test        Final Counter       Time (s)       Comment", lines[0])
	assert.Equal(t, strings.Repeat("-", 60), lines[1])
	assert.Equal(t, "race        1234567             0.01234        Race Detected", lines[2])
	assert.Equal(t, "mutex       2000000             1.50000        OK", lines[3])
	assert.Equal(t, "atomic      2000000             0.25000        OK", lines[4])
}

func TestRenderTableOrdersRows(t *testing.T) {
	in := sampleResults()
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, []harness.Result{in[1], in[2], in[0]}))

	lines := strings.Split(buf.String(), "\n")
	assert.True(t, strings.HasPrefix(lines[2], "race "))
	assert.True(t, strings.HasPrefix(lines[3], "mutex "))
	assert.True(t, strings.HasPrefix(lines[4], "atomic "))
}

func TestRenderCsv(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, OutputCsv, sampleResults()))
	assert.Equal(t, "Test,Final-Counter,Expected,Time-Seconds,Comment\n"+
		"race,1234567,2000000,0.01234,Race Detected\n"+
		"mutex,2000000,2000000,1.50000,OK\n"+
		"atomic,2000000,2000000,0.25000,OK\n", buf.String())
}

func TestRenderJson(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, OutputJson, sampleResults()))

	var out struct {
		Items []resultJson `json:"items"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.Items, 3)
	assert.Equal(t, "race", out.Items[0].Name)
	assert.Equal(t, CommentRaceDetected, out.Items[0].Comment)
	assert.Equal(t, int64(expected), out.Items[1].FinalCounter)
	assert.InDelta(t, 1.5, out.Items[1].TimeSeconds, 1e-9)
}

func TestRenderPretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, OutputPretty, sampleResults()))
	plain := style.Strip(buf.String())
	assert.Contains(t, plain, "Race Detected")
	assert.Contains(t, plain, "765433")
	assert.Contains(t, plain, "lost 765433 of 2000000 increments")
}

func TestRenderRejectsInteractive(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Render(&buf, OutputInteractive, sampleResults()))
}

func TestSummaryWithoutLostUpdates(t *testing.T) {
	s := Summary([]harness.Result{{Name: "race", FinalCounter: expected, Expected: expected}})
	assert.Contains(t, s, "not guaranteed")
	assert.Equal(t, "", Summary([]harness.Result{{Name: "mutex"}}))
}
