package hashing_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-bcrypt-compat/hashing"
	"github.com/hasbyte1/go-bcrypt-compat/hashing/radix64"
)

// testCost is the minimum bcrypt work factor. Used in unit tests only so the
// suite runs quickly.
const testCost = hashing.MinCost

// fixedEntropy returns the same bytes on every call, for reproducible hashes.
type fixedEntropy []byte

func (f fixedEntropy) Bytes(n int) ([]byte, error) {
	if len(f) < n {
		return nil, errors.New("fixed entropy exhausted")
	}
	out := make([]byte, n)
	copy(out, f)
	return out, nil
}

// shortEntropy returns fewer bytes than requested without an error.
type shortEntropy struct{}

func (shortEntropy) Bytes(n int) ([]byte, error) { return make([]byte, n/2), nil }

// failingEntropy always fails.
type failingEntropy struct{}

func (failingEntropy) Bytes(int) ([]byte, error) { return nil, errors.New("device closed") }

// countingEngine records calls and delegates to the default engine.
type countingEngine struct {
	calls     int
	saltField string
}

func (c *countingEngine) Derive(message []byte, saltField string) ([]byte, error) {
	c.calls++
	c.saltField = saltField
	return hashing.DefaultEngine().Derive(message, saltField)
}

// brokenEngine returns a fixed digest and error.
type brokenEngine struct {
	digest []byte
	err    error
}

func (b brokenEngine) Derive([]byte, string) ([]byte, error) { return b.digest, b.err }

func saltEntropy(tb testing.TB, encoded string) fixedEntropy {
	tb.Helper()
	raw, err := radix64.Decode(encoded)
	require.NoError(tb, err)
	require.Len(tb, raw, hashing.RawSaltLength)
	return fixedEntropy(raw)
}

func newTestHasher(tb testing.TB, alg hashing.Algorithm) *hashing.BcryptHasher {
	tb.Helper()
	h, err := hashing.NewBcryptHasher(hashing.BcryptOptions{Algorithm: alg, Cost: testCost})
	require.NoError(tb, err)
	return h
}
