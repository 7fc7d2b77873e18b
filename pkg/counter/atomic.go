package counter

import "sync/atomic"

type AtomicCounter struct {
	counter atomic.Int64
}

func (m *AtomicCounter) Increment() {
	m.counter.Add(1)
}

func (m *AtomicCounter) Value() int64 {
	return m.counter.Load()
}
