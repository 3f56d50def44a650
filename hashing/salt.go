package hashing

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-bcrypt-compat/hashing/radix64"
)

// EncodeSalt encodes exactly [RawSaltLength] bytes into the 22-character
// bcrypt salt. Only 128 of the 132 bits the characters can carry are used.
func EncodeSalt(raw []byte) (string, error) {
	if len(raw) != RawSaltLength {
		return "", fmt.Errorf("%w: raw salt must be %d bytes, got %d",
			ErrMalformedSalt, RawSaltLength, len(raw))
	}
	return radix64.Encode(raw), nil
}

// GenerateSaltField draws a fresh salt from src and returns the 29-character
// salt field for cfg, e.g. "$2b$05$J/dtt5ybYUTCJ/dtt5ybYO".
//
// The raw entropy is zeroed once encoded and never reused.
func GenerateSaltField(src EntropySource, cfg Config) (string, error) {
	if cfg.IsZero() {
		return "", fmt.Errorf("%w: unconfigured hashing config", ErrInvalidOption)
	}
	raw, err := src.Bytes(RawSaltLength)
	if err != nil {
		if !errors.Is(err, ErrEntropyUnavailable) {
			err = fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
		}
		return "", err
	}
	defer clear(raw)
	if len(raw) != RawSaltLength {
		return "", fmt.Errorf("%w: wanted %d bytes, got %d", ErrEntropyUnavailable, RawSaltLength, len(raw))
	}

	salt, err := EncodeSalt(raw)
	if err != nil {
		return "", err
	}
	return saltField(cfg.algorithm, cfg.cost, salt), nil
}

// saltField assembles tag, two-digit cost and encoded salt.
func saltField(a Algorithm, cost int, encodedSalt string) string {
	return fmt.Sprintf("%s%02d$%s", a.Tag(), cost, encodedSalt)
}
