package counter

import "sync"

// MutexCounter holds the lock for a single increment only.
type MutexCounter struct {
	counter int64
	mutex   sync.RWMutex
}

func (m *MutexCounter) Value() int64 {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.counter
}

func (m *MutexCounter) Increment() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.counter++
}
