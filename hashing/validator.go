package hashing

import (
	"crypto/subtle"
	"fmt"
	"log/slog"

	"github.com/hasbyte1/go-bcrypt-compat/hashing/eksblowfish"
	"github.com/hasbyte1/go-bcrypt-compat/hashing/radix64"
)

// Engine is the key-derivation primitive behind a hash. Derive returns the
// 31-character encoded checksum for message; the cost factor travels inside
// saltField. Implementations must be safe for concurrent use.
type Engine interface {
	Derive(message []byte, saltField string) ([]byte, error)
}

// DefaultEngine returns the engine used when none is configured.
func DefaultEngine() Engine { return eksblowfish.New() }

// Validator checks candidate passwords against stored hash strings.
//
// A Validator holds no mutable state and is safe for concurrent use.
type Validator struct {
	engine Engine
	logger *slog.Logger
}

// NewValidator returns a Validator deriving digests with engine. A nil logger
// discards output.
func NewValidator(engine Engine, logger *slog.Logger) (*Validator, error) {
	if engine == nil {
		return nil, ErrNilEngine
	}
	return &Validator{engine: engine, logger: componentLogger(logger)}, nil
}

var defaultValidator = &Validator{engine: DefaultEngine(), logger: componentLogger(nil)}

// Validate reports whether message matches stored using the default engine.
// See [Validator.Validate].
func Validate(message, stored string) bool {
	return defaultValidator.Validate(message, stored)
}

// Validate reports whether message matches stored.
//
// It never fails: a malformed stored hash, an engine failure and a wrong
// password all yield false, and the result does not say which occurred.
// Malformed input is rejected before any key derivation is attempted.
func (v *Validator) Validate(message, stored string) bool {
	rec, err := ParseRecord(stored)
	if err != nil {
		v.logger.Debug("stored hash rejected", slog.String("reason", err.Error()))
		return false
	}

	candidate, err := v.rehash(rec, []byte(message))
	if err != nil {
		v.logger.Warn("digest derivation failed during validation", slog.Any("error", err))
		return false
	}
	return constantTimeEqual(candidate, stored)
}

// rehash derives a checksum for message under rec's salt field and returns
// the formatted hash string, carrying rec's original version tag.
func (v *Validator) rehash(rec Record, message []byte) (string, error) {
	originalTag, engineSalt := Normalize(rec.SaltField())

	digest, err := v.engine.Derive(message, engineSalt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDerivationFailed, err)
	}
	defer clear(digest)
	if len(digest) != ChecksumFieldLength || !radix64.Valid(string(digest)) {
		return "", fmt.Errorf("%w: engine returned %d-byte checksum", ErrDerivationFailed, len(digest))
	}

	return originalTag + rec.withChecksum(string(digest)).String()[TagLength:], nil
}

// constantTimeEqual compares a and b in time that depends only on the longer
// length, never on the position of the first differing byte. Inputs are
// padded to at least [HashLength] so equal-shaped hashes always take the
// same path.
func constantTimeEqual(a, b string) bool {
	n := max(len(a), len(b), HashLength)
	x := make([]byte, n)
	y := make([]byte, n)
	copy(x, a)
	copy(y, b)
	same := subtle.ConstantTimeCompare(x, y)
	sameLen := subtle.ConstantTimeEq(int32(len(a)), int32(len(b)))
	return same&sameLen == 1
}

func componentLogger(l *slog.Logger) *slog.Logger {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	return l.With(slog.String("component", "bcrypt"))
}
