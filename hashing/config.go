package hashing

import "fmt"

// Config is a validated (algorithm, cost) pair. It is an immutable value and
// safe to share between goroutines.
type Config struct {
	algorithm Algorithm
	cost      int
}

// Configure validates algorithm and cost. A cost outside [MinCost, MaxCost]
// is rejected, never clamped, before any entropy is consumed.
func Configure(algorithm Algorithm, cost int) (Config, error) {
	if !algorithm.Valid() {
		return Config{}, fmt.Errorf("%w: %w: %q", ErrInvalidOption, ErrUnknownAlgorithm, string(algorithm))
	}
	if cost < MinCost || cost > MaxCost {
		return Config{}, fmt.Errorf("%w: %w: bcrypt cost %d must be in [%d, %d]",
			ErrInvalidOption, ErrInvalidCost, cost, MinCost, MaxCost)
	}
	return Config{algorithm: algorithm, cost: cost}, nil
}

// Algorithm returns the configured revision.
func (c Config) Algorithm() Algorithm { return c.algorithm }

// Cost returns the configured work factor.
func (c Config) Cost() int { return c.cost }

// IsZero reports whether c was not produced by [Configure].
func (c Config) IsZero() bool { return c.algorithm == "" }

func (c Config) String() string {
	return fmt.Sprintf("%s%02d", c.algorithm.Tag(), c.cost)
}
