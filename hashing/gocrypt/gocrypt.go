// Package gocrypt adapts the go-crypt bcrypt primitive to the digest engine
// contract used by package hashing.
//
// go-crypt emits its own modular crypt string; only the trailing checksum is
// kept, so the version tag and salt text of the record being validated are
// never rewritten by this engine.
package gocrypt

import (
	"errors"
	"fmt"

	"github.com/go-crypt/x/bcrypt"

	"github.com/hasbyte1/go-bcrypt-compat/hashing/radix64"
)

const (
	saltFieldLen = 29
	checksumLen  = 31
	rawSaltLen   = 16
	maxKeyLen    = 72
)

// ErrMalformedSaltField is returned when the salt field is not of the form
// $2x$NN$<22 chars> with x one of a, b or y.
var ErrMalformedSaltField = errors.New("gocrypt: malformed salt field")

// Engine derives checksums through github.com/go-crypt/x/bcrypt, which covers
// the full cost range. It is safe for concurrent use.
type Engine struct{}

// New returns an Engine.
func New() *Engine { return &Engine{} }

// Derive returns the 31-character encoded checksum for message under saltField.
func (e *Engine) Derive(message []byte, saltField string) ([]byte, error) {
	cost, salt, err := parseSaltField(saltField)
	if err != nil {
		return nil, err
	}
	defer clear(salt)

	// go-crypt refuses passwords past the key schedule limit instead of
	// truncating them.
	password := message[:min(len(message), maxKeyLen)]
	hashed, err := bcrypt.GenerateFromPasswordSalt(password, salt, cost)
	if err != nil {
		return nil, fmt.Errorf("gocrypt: derive at cost %d: %w", cost, err)
	}
	if len(hashed) < saltFieldLen+checksumLen {
		return nil, fmt.Errorf("gocrypt: unexpected digest length %d", len(hashed))
	}
	checksum := make([]byte, checksumLen)
	copy(checksum, hashed[len(hashed)-checksumLen:])
	clear(hashed)
	return checksum, nil
}

func parseSaltField(s string) (int, []byte, error) {
	if len(s) != saltFieldLen || s[0] != '$' || s[1] != '2' || s[3] != '$' || s[6] != '$' {
		return 0, nil, ErrMalformedSaltField
	}
	switch s[2] {
	case 'a', 'b', 'y':
	default:
		return 0, nil, ErrMalformedSaltField
	}
	if s[4] < '0' || s[4] > '9' || s[5] < '0' || s[5] > '9' {
		return 0, nil, ErrMalformedSaltField
	}
	cost := int(s[4]-'0')*10 + int(s[5]-'0')

	salt, err := radix64.Decode(s[7:])
	if err != nil || len(salt) != rawSaltLen {
		return 0, nil, ErrMalformedSaltField
	}
	return cost, salt, nil
}
