// Package radix64 implements the base-64 variant used by bcrypt hash strings.
//
// The alphabet is "./A-Za-z0-9", which orders symbols differently from RFC 4648,
// and the output is never padded. A 16-byte salt encodes to 22 characters and
// a 23-byte digest to 31 characters; the unused low bits of the final
// character are ignored on decode.
package radix64

import (
	"encoding/base64"
	"fmt"
)

// Alphabet is the ordered bcrypt encoding alphabet.
const Alphabet = "./ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var encoding = base64.NewEncoding(Alphabet).WithPadding(base64.NoPadding)

// EncodedLen returns the length in characters of the encoding of n bytes.
func EncodedLen(n int) int { return encoding.EncodedLen(n) }

// Encode returns the bcrypt base-64 encoding of src.
func Encode(src []byte) string {
	return encoding.EncodeToString(src)
}

// Decode decodes s, which must consist solely of alphabet characters.
func Decode(s string) ([]byte, error) {
	b, err := encoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("radix64: %w", err)
	}
	return b, nil
}

// Valid reports whether every byte of s belongs to [Alphabet].
func Valid(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isAlphabet(s[i]) {
			return false
		}
	}
	return true
}

func isAlphabet(c byte) bool {
	switch {
	case c == '.' || c == '/':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	return false
}
