package hashing_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-bcrypt-compat/hashing"
)

func newCountingValidator(t *testing.T) (*hashing.Validator, *countingEngine) {
	t.Helper()
	engine := &countingEngine{}
	v, err := hashing.NewValidator(engine, nil)
	require.NoError(t, err)
	return v, engine
}

func TestNewValidator_NilEngine(t *testing.T) {
	v, err := hashing.NewValidator(nil, nil)
	assert.ErrorIs(t, err, hashing.ErrNilEngine)
	assert.Nil(t, v)
}

func TestValidator_MalformedNeverDerives(t *testing.T) {
	inputs := map[string]string{
		"empty":           "",
		"short":           "$2a$05$CCCCCCCCCCCCCCCCCCCCC.",
		"unknown prefix":  "$1$" + strings.Repeat("a", 57),
		"unknown tag":     "$2x$05$CCCCCCCCCCCCCCCCCCCCC.E5YPO9kmyuRGyh0XouQYb4YMJKvyOeW",
		"salt alphabet":   "$2a$05$CCCCCCCCCC#CCCCCCCCCC.E5YPO9kmyuRGyh0XouQYb4YMJKvyOeW",
		"cost range":      "$2a$40$CCCCCCCCCCCCCCCCCCCCC.E5YPO9kmyuRGyh0XouQYb4YMJKvyOeW",
		"trailing gap":    sampleHash + "\n",
		"argon2 encoding": "$argon2id$v=19$m=65536,t=3,p=2$c2FsdHNhbHQ$aGFzaGhhc2g",
	}
	for name, stored := range inputs {
		t.Run(name, func(t *testing.T) {
			v, engine := newCountingValidator(t)
			assert.False(t, v.Validate("U*U", stored))
			assert.Zero(t, engine.calls, "malformed input must be rejected before derivation")
		})
	}
}

func TestValidator_2yRoutedThrough2b(t *testing.T) {
	v, engine := newCountingValidator(t)
	stored := "$2y$" + sampleHash[hashing.TagLength:]

	assert.True(t, v.Validate("U*U", stored))
	assert.Equal(t, 1, engine.calls)
	assert.Equal(t, "$2b$05$CCCCCCCCCCCCCCCCCCCCC.", engine.saltField)
}

func TestValidator_2aPassedThrough(t *testing.T) {
	v, engine := newCountingValidator(t)
	assert.True(t, v.Validate("U*U", sampleHash))
	assert.Equal(t, sampleHash[:hashing.SaltFieldLength], engine.saltField)
}

func TestValidator_EngineFailureIsFalse(t *testing.T) {
	for name, engine := range map[string]brokenEngine{
		"error":          {err: errors.New("boom")},
		"bad checksum":   {digest: []byte("!")},
		"error + digest": {digest: []byte(sampleHash[hashing.SaltFieldLength:]), err: errors.New("boom")},
	} {
		t.Run(name, func(t *testing.T) {
			v, err := hashing.NewValidator(engine, nil)
			require.NoError(t, err)
			assert.False(t, v.Validate("U*U", sampleHash))
		})
	}
}

func TestValidator_LogsRejectionsWithoutSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	v, err := hashing.NewValidator(hashing.DefaultEngine(), logger)
	require.NoError(t, err)

	assert.False(t, v.Validate("top-secret", "$2a$99$"+sampleHash[7:]))
	assert.Contains(t, buf.String(), "component=bcrypt")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.NotContains(t, buf.String(), "top-secret")

	// A wrong password is not an anomaly and is not logged.
	buf.Reset()
	assert.False(t, v.Validate("top-secret", sampleHash))
	assert.Empty(t, buf.String())
}

func TestValidate_PackageLevelDefault(t *testing.T) {
	assert.True(t, hashing.Validate("U*U", sampleHash))
	assert.False(t, hashing.Validate("U*V", sampleHash))
	assert.False(t, hashing.Validate("U*U", ""))
}

func TestValidator_Concurrent(t *testing.T) {
	v, err := hashing.NewValidator(hashing.DefaultEngine(), nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]bool, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pw := "U*U"
			if i%2 == 1 {
				pw = "wrong"
			}
			results[i] = v.Validate(pw, sampleHash)
		}(i)
	}
	wg.Wait()

	for i, ok := range results {
		assert.Equal(t, i%2 == 0, ok, "goroutine %d", i)
	}
}

// The elapsed time for a wrong password must not depend on how many leading
// checksum characters happen to match.
func TestValidator_TimingIndependentOfMismatchPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("timing sample skipped in -short mode")
	}
	const rounds = 20
	h := newTestHasher(t, hashing.Algorithm2b)
	hash, err := h.Hash("timing")
	require.NoError(t, err)

	flip := func(i int) string {
		b := []byte(hash)
		if b[i] == 'a' {
			b[i] = 'b'
		} else {
			b[i] = 'a'
		}
		return string(b)
	}
	early, late := flip(hashing.SaltFieldLength), flip(hashing.HashLength-2)

	measure := func(stored string) time.Duration {
		var best time.Duration
		for i := range rounds {
			start := time.Now()
			h.Validate("timing", stored)
			if d := time.Since(start); i == 0 || d < best {
				best = d
			}
		}
		return best
	}
	e, l := measure(early), measure(late)
	ratio := float64(max(e, l)) / float64(min(e, l))
	assert.Less(t, ratio, 3.0, "early=%v late=%v", e, l)
}
