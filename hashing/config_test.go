package hashing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-bcrypt-compat/hashing"
)

func TestConfigure(t *testing.T) {
	for _, alg := range hashing.Algorithms {
		for _, cost := range []int{hashing.MinCost, hashing.DefaultCost, hashing.MaxCost} {
			cfg, err := hashing.Configure(alg, cost)
			require.NoError(t, err)
			assert.Equal(t, alg, cfg.Algorithm())
			assert.Equal(t, cost, cfg.Cost())
			assert.False(t, cfg.IsZero())
		}
	}
}

func TestConfigure_RejectsOutOfRangeCost(t *testing.T) {
	for _, cost := range []int{-1, 0, 3, 32, 100} {
		cfg, err := hashing.Configure(hashing.Algorithm2b, cost)
		assert.ErrorIs(t, err, hashing.ErrInvalidOption, "cost %d", cost)
		assert.ErrorIs(t, err, hashing.ErrInvalidCost, "cost %d", cost)
		assert.True(t, cfg.IsZero())
	}
}

func TestConfigure_RejectsUnknownAlgorithm(t *testing.T) {
	_, err := hashing.Configure("2c", 10)
	assert.ErrorIs(t, err, hashing.ErrInvalidOption)
	assert.ErrorIs(t, err, hashing.ErrUnknownAlgorithm)
	assert.NotErrorIs(t, err, hashing.ErrInvalidCost)
}

func TestConfig_String(t *testing.T) {
	cfg, err := hashing.Configure(hashing.Algorithm2y, 5)
	require.NoError(t, err)
	assert.Equal(t, "$2y$05", cfg.String())
}
