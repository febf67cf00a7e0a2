// Package boundedloop runs a step function until it signals completion,
// bounding the number of steps so a broken invariant surfaces as an error
// instead of an infinite loop.
package boundedloop

import "fmt"

// ErrExceeded is returned when fn has not signalled done after maxSteps calls.
var ErrExceeded = fmt.Errorf("bounded loop exceeded its step limit")

// config holds loop parameters.
type config struct {
	maxSteps int
}

// Option configures loop behavior.
type Option func(*config)

// WithMaxSteps sets the maximum number of steps (default 100).
func WithMaxSteps(n int) Option {
	return func(c *config) { c.maxSteps = n }
}

// Run calls fn repeatedly until it returns done=true, an error, or the step
// limit is reached. fn receives the 1-indexed step number. If the limit is
// reached without fn signalling done, Run returns ErrExceeded.
func Run(fn func(step int) (done bool, err error), opts ...Option) error {
	cfg := config{maxSteps: 100}
	for _, o := range opts {
		o(&cfg)
	}

	for step := 1; step <= cfg.maxSteps; step++ {
		done, err := fn(step)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	return ErrExceeded
}
