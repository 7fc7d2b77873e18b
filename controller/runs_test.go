package controller

import (
	"sync"
	"testing"

	"github.com/kaytu-io/racecount/pkg/harness"
	"github.com/stretchr/testify/assert"
)

func TestRunsTracksState(t *testing.T) {
	runs := NewRuns()
	changes := 0
	runs.SetOnChange(func() { changes++ })

	runs.Started("mutex")
	assert.Equal(t, []string{"mutex"}, runs.RunningRuns())
	assert.Equal(t, 0, runs.FinishedCount())

	runs.Finished(harness.Result{Name: "mutex", FinalCounter: 10, Expected: 10})
	assert.Empty(t, runs.RunningRuns())
	assert.Equal(t, 1, runs.FinishedCount())
	assert.Equal(t, 2, changes)
}

func TestRunsItemsInReportOrder(t *testing.T) {
	runs := NewRuns()
	var wg sync.WaitGroup
	for _, name := range []string{"atomic", "race", "mutex"} {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			runs.Finished(harness.Result{Name: name})
		}(name)
	}
	wg.Wait()

	var names []string
	for _, r := range runs.Items() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"race", "mutex", "atomic"}, names)
}
