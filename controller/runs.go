package controller

import (
	"sort"
	"time"

	"github.com/kaytu-io/racecount/pkg/counter"
	"github.com/kaytu-io/racecount/pkg/harness"
	"github.com/kaytu-io/racecount/pkg/utils"
)

// Runs tracks which strategies are running and which have finished. It is
// fed by harness.RunAll and read by the views from other goroutines.
type Runs struct {
	running  utils.ConcurrentMap[string, time.Time]
	finished utils.ConcurrentMap[string, harness.Result]

	onChange func()
}

func NewRuns() *Runs {
	return &Runs{
		running:  utils.NewConcurrentMap[string, time.Time](),
		finished: utils.NewConcurrentMap[string, harness.Result](),
	}
}

func (m *Runs) SetOnChange(f func()) {
	m.onChange = f
}

func (m *Runs) Started(name string) {
	m.running.Set(name, time.Now())
	m.changed()
}

func (m *Runs) Finished(result harness.Result) {
	m.running.Delete(result.Name)
	m.finished.Set(result.Name, result)
	m.changed()
}

func (m *Runs) changed() {
	if m.onChange != nil {
		m.onChange()
	}
}

func (m *Runs) RunningRuns() []string {
	var res []string
	m.running.Range(func(key string, value time.Time) bool {
		res = append(res, key)
		return true
	})
	sortByRank(res)
	return res
}

// Items returns finished results in report order.
func (m *Runs) Items() []harness.Result {
	var res []harness.Result
	m.finished.Range(func(key string, value harness.Result) bool {
		res = append(res, value)
		return true
	})
	sort.SliceStable(res, func(i, j int) bool {
		return counter.Rank(res[i].Name) < counter.Rank(res[j].Name)
	})
	return res
}

func (m *Runs) FinishedCount() int {
	return m.finished.Len()
}

func sortByRank(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return counter.Rank(names[i]) < counter.Rank(names[j])
	})
}
