// Package resource bounds the concurrency and throughput of batch encoding.
package resource

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MaxConcurrent is the maximum number of encode operations in flight.
	// If 0, concurrency is not limited.
	MaxConcurrent int64

	// OpsPerSecond is the maximum rate of encode operation starts.
	// If 0, unlimited.
	OpsPerSecond float64
}

// Controller manages encode concurrency and pacing. A nil Controller is
// valid and enforces nothing.
type Controller struct {
	cfg Config

	slots    *semaphore.Weighted // nil if unlimited
	limiter  *rate.Limiter       // nil if unlimited
	inFlight atomic.Int64
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	if cfg.MaxConcurrent > 0 {
		c.slots = semaphore.NewWeighted(cfg.MaxConcurrent)
	}

	if cfg.OpsPerSecond > 0 {
		burst := int(cfg.OpsPerSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.OpsPerSecond), burst)
	}

	return c
}

// Acquire reserves an operation slot, waiting for both a free slot and the
// configured rate. Blocks until available or ctx is canceled.
func (c *Controller) Acquire(ctx context.Context) error {
	if c == nil {
		return nil
	}

	if c.slots != nil {
		if err := c.slots.Acquire(ctx, 1); err != nil {
			return err
		}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			if c.slots != nil {
				c.slots.Release(1)
			}
			return err
		}
	}

	c.inFlight.Add(1)
	return nil
}

// TryAcquire reserves an operation slot without blocking.
// Returns true if acquired, false if a limit would be exceeded.
func (c *Controller) TryAcquire() bool {
	if c == nil {
		return true
	}

	if c.slots != nil && !c.slots.TryAcquire(1) {
		return false
	}

	if c.limiter != nil && !c.limiter.Allow() {
		if c.slots != nil {
			c.slots.Release(1)
		}
		return false
	}

	c.inFlight.Add(1)
	return true
}

// Release returns a previously acquired slot.
func (c *Controller) Release() {
	if c == nil {
		return
	}

	if c.slots != nil {
		c.slots.Release(1)
	}

	c.inFlight.Add(-1)
}

// InFlight returns the number of operations currently holding a slot.
func (c *Controller) InFlight() int64 {
	if c == nil {
		return 0
	}

	return c.inFlight.Load()
}

// MaxConcurrent returns the configured concurrency limit, 0 if unlimited.
func (c *Controller) MaxConcurrent() int64 {
	if c == nil {
		return 0
	}

	return c.cfg.MaxConcurrent
}
