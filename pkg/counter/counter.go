package counter

import (
	"fmt"
)

const (
	RaceName   = "race"
	MutexName  = "mutex"
	AtomicName = "atomic"
)

var ErrUnknownStrategy = fmt.Errorf("unknown strategy")

// Counter is a shared integer incremented by several workers at once.
type Counter interface {
	Increment()
	Value() int64
}

// Strategy names one way of incrementing a shared counter. New returns a
// fresh counter, so every run starts from zero.
type Strategy struct {
	Name string
	New  func() Counter
}

var (
	Race   = Strategy{Name: RaceName, New: func() Counter { return &RaceCounter{} }}
	Mutex  = Strategy{Name: MutexName, New: func() Counter { return &MutexCounter{} }}
	Atomic = Strategy{Name: AtomicName, New: func() Counter { return &AtomicCounter{} }}
)

// All returns the strategies in report order.
func All() []Strategy {
	return []Strategy{Race, Mutex, Atomic}
}

func Names() []string {
	var names []string
	for _, s := range All() {
		names = append(names, s.Name)
	}
	return names
}

func Lookup(name string) (Strategy, error) {
	for _, s := range All() {
		if s.Name == name {
			return s, nil
		}
	}
	return Strategy{}, fmt.Errorf("[Lookup] %s: %w", name, ErrUnknownStrategy)
}

// Rank is the position of name in report order, or len(All()) if unknown.
func Rank(name string) int {
	for idx, s := range All() {
		if s.Name == name {
			return idx
		}
	}
	return len(All())
}

// IncrementN is the worker body: n sequential increments on c.
func IncrementN(c Counter, n int) {
	for i := 0; i < n; i++ {
		c.Increment()
	}
}
