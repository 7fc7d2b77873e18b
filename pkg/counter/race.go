package counter

// RaceCounter has no synchronization at all. Increment is a plain
// read-modify-write, so concurrent callers lose updates.
type RaceCounter struct {
	counter int64
}

func (m *RaceCounter) Increment() {
	m.counter++
}

func (m *RaceCounter) Value() int64 {
	return m.counter
}
