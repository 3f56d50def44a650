package hashing

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Structural constants of the modified-crypt bcrypt format. They hold for
// every [Algorithm]:
//
//	$2b$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW
//	\__/\_/\____________________/\_____________________________/
//	tag cost       salt                     checksum
const (
	// TagLength is the length of a version tag such as "$2b$".
	TagLength = 4

	// EncodedSaltLength is the length of the encoded 16-byte salt.
	EncodedSaltLength = 22

	// RawSaltLength is the number of entropy bytes behind an encoded salt.
	RawSaltLength = 16

	// SaltFieldLength is tag + two cost digits + "$" + encoded salt.
	SaltFieldLength = TagLength + 2 + 1 + EncodedSaltLength

	// ChecksumFieldLength is the length of the encoded digest that trails the
	// salt field.
	ChecksumFieldLength = 31

	// HashLength is the total length of a well-formed hash string.
	HashLength = SaltFieldLength + ChecksumFieldLength
)

const (
	// MinCost is the lowest accepted work factor.
	MinCost = bcrypt.MinCost

	// MaxCost is the highest accepted work factor.
	MaxCost = bcrypt.MaxCost

	// DefaultCost is the recommended work factor. At cost 12, hashing takes
	// roughly 250 ms on a modern server CPU.
	DefaultCost = 12
)

// Algorithm identifies a bcrypt format revision by its version tag.
type Algorithm string

const (
	// Algorithm2a is the legacy revision.
	Algorithm2a Algorithm = "2a"

	// Algorithm2y originates in crypt_blowfish. For ASCII input it is
	// byte-for-byte identical to 2b under a different name.
	Algorithm2y Algorithm = "2y"

	// Algorithm2b is the current revision and the default.
	Algorithm2b Algorithm = "2b"
)

// Algorithms lists every supported revision.
var Algorithms = []Algorithm{Algorithm2a, Algorithm2y, Algorithm2b}

// Tag returns the four-character version tag, e.g. "$2b$".
func (a Algorithm) Tag() string { return "$" + string(a) + "$" }

// Valid reports whether a is a supported revision.
func (a Algorithm) Valid() bool {
	switch a {
	case Algorithm2a, Algorithm2y, Algorithm2b:
		return true
	}
	return false
}

// String implements [fmt.Stringer].
func (a Algorithm) String() string { return string(a) }

// MarshalText implements [encoding.TextMarshaler].
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
	}
	return []byte(a), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. Both "2b" and "$2b$"
// are accepted.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAlgorithm converts "2b" or "$2b$" (and likewise for 2a and 2y) to an
// [Algorithm]. Tags are case-sensitive, as on the wire.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := s
	if len(s) == TagLength && s[0] == '$' && s[TagLength-1] == '$' {
		name = s[1 : TagLength-1]
	}
	a := Algorithm(name)
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
	return a, nil
}
