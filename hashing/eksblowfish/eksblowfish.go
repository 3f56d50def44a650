// Package eksblowfish derives bcrypt checksums with the expensive key setup
// ("eksblowfish") driven over golang.org/x/crypto/blowfish.
//
// The engine follows the OpenBSD lineage: it understands the $2a$ and $2b$
// version tags only. Salt fields tagged $2y$ must be normalised to $2b$ by
// the caller before derivation.
package eksblowfish

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/blowfish"

	"github.com/hasbyte1/go-bcrypt-compat/hashing/radix64"
)

const (
	// MinCost and MaxCost bound the logarithmic work factor.
	MinCost = 4
	MaxCost = 31

	// maxKeyLen is the number of password bytes the key schedule consumes.
	maxKeyLen = 72

	saltFieldLen = 29
	rawSaltLen   = 16
	digestLen    = 23
)

// magic is encrypted 64 times per block to produce the digest.
var magic = []byte("OrpheanBeholderScryDoubt")

var (
	// ErrMalformedSaltField is returned when the salt field is not of the
	// form $2x$NN$<22 chars>.
	ErrMalformedSaltField = errors.New("eksblowfish: malformed salt field")

	// ErrUnsupportedVersion is returned for version tags other than 2a and 2b.
	ErrUnsupportedVersion = errors.New("eksblowfish: unsupported version tag")

	// ErrInvalidCost is returned when the embedded cost is outside [MinCost, MaxCost].
	ErrInvalidCost = errors.New("eksblowfish: cost out of range")
)

// Engine computes bcrypt checksums. The zero value is ready to use and safe
// for concurrent use.
type Engine struct{}

// New returns an Engine.
func New() *Engine { return &Engine{} }

// Derive returns the 31-character encoded checksum for message under
// saltField, e.g. "$2b$10$N9qo8uLOickgx2ZMRZoMye". Bytes of message past the
// 72nd are ignored.
func (e *Engine) Derive(message []byte, saltField string) ([]byte, error) {
	cost, salt, err := parseSaltField(saltField)
	if err != nil {
		return nil, err
	}
	defer clear(salt)

	key := make([]byte, 0, maxKeyLen+1)
	key = append(key, message[:min(len(message), maxKeyLen)]...)
	key = append(key, 0)
	defer clear(key)

	c, err := setup(key, salt, cost)
	if err != nil {
		return nil, err
	}

	block := make([]byte, len(magic))
	copy(block, magic)
	defer clear(block)
	for i := 0; i < len(block); i += blowfish.BlockSize {
		for j := 0; j < 64; j++ {
			c.Encrypt(block[i:i+blowfish.BlockSize], block[i:i+blowfish.BlockSize])
		}
	}

	return []byte(radix64.Encode(block[:digestLen])), nil
}

func setup(key, salt []byte, cost int) (*blowfish.Cipher, error) {
	c, err := blowfish.NewSaltedCipher(key, salt)
	if err != nil {
		return nil, fmt.Errorf("eksblowfish: %w", err)
	}
	rounds := uint64(1) << uint(cost)
	for i := uint64(0); i < rounds; i++ {
		blowfish.ExpandKey(key, c)
		blowfish.ExpandKey(salt, c)
	}
	return c, nil
}

func parseSaltField(s string) (int, []byte, error) {
	if len(s) != saltFieldLen || s[0] != '$' || s[1] != '2' || s[3] != '$' || s[6] != '$' {
		return 0, nil, ErrMalformedSaltField
	}
	if s[2] != 'a' && s[2] != 'b' {
		return 0, nil, fmt.Errorf("%w: $2%c$", ErrUnsupportedVersion, s[2])
	}
	if !isDigit(s[4]) || !isDigit(s[5]) {
		return 0, nil, ErrMalformedSaltField
	}
	cost := int(s[4]-'0')*10 + int(s[5]-'0')
	if cost < MinCost || cost > MaxCost {
		return 0, nil, fmt.Errorf("%w: %d", ErrInvalidCost, cost)
	}
	salt, err := radix64.Decode(s[7:])
	if err != nil || len(salt) != rawSaltLen {
		return 0, nil, ErrMalformedSaltField
	}
	return cost, salt, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
