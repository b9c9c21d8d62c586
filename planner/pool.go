package planner

import (
	"fmt"

	"github.com/panjf2000/ants/v2"
)

// PoolConfig sizes the path pricing pool.
type PoolConfig struct {
	MaxWorkers int
}

// NewPool creates a blocking ants pool: Submit waits for a free worker, so
// enumeration never runs far ahead of pricing.
func NewPool(cfg PoolConfig) (*ants.Pool, error) {
	pool, err := ants.NewPool(cfg.MaxWorkers)
	if err != nil {
		return nil, fmt.Errorf("planner: create pool of %d workers: %w", cfg.MaxWorkers, err)
	}

	return pool, nil
}
