package harness

import (
	"time"

	"github.com/kaytu-io/racecount/pkg/counter"
)

type Result struct {
	Name         string
	FinalCounter int64
	Expected     int64
	Elapsed      time.Duration
}

func (r Result) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// RaceDetected reports lost updates. Only the race strategy is judged;
// the synchronized ones are expected to always match.
func (r Result) RaceDetected() bool {
	return r.Name == counter.RaceName && r.FinalCounter != r.Expected
}
