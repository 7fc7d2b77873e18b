package harness

import (
	"fmt"
	"time"
)

const (
	DefaultIncrements = 1_000_000
	// Workers is fixed: every strategy runs on exactly two goroutines.
	Workers = 2
)

var ErrInvalidConfig = fmt.Errorf("invalid config")

type Config struct {
	Increments int
	Workers    int
	// Timeout of zero means wait for the workers however long they take.
	Timeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Increments: DefaultIncrements,
		Workers:    Workers,
	}
}

// Expected is the final value a synchronized counter must reach.
func (c Config) Expected() int64 {
	return int64(c.Workers) * int64(c.Increments)
}

func (c Config) Validate() error {
	if c.Increments <= 0 {
		return fmt.Errorf("[Validate] increments must be positive, got %d: %w", c.Increments, ErrInvalidConfig)
	}
	if c.Workers != Workers {
		return fmt.Errorf("[Validate] workers must be %d, got %d: %w", Workers, c.Workers, ErrInvalidConfig)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("[Validate] timeout must not be negative, got %s: %w", c.Timeout, ErrInvalidConfig)
	}
	return nil
}
