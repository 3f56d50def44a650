package hashing

import "strings"

// EngineName identifies a registered digest engine.
// Using a named string type prevents accidental confusion with plain strings.
type EngineName string

const (
	// EngineEksblowfish selects the x/crypto/blowfish based engine.
	EngineEksblowfish EngineName = "eksblowfish"
	// EngineGoCrypt selects the go-crypt based engine.
	EngineGoCrypt EngineName = "go-crypt"
)

// Hasher is the core interface satisfied by bcrypt hashers.
//
// All implementations must be safe for concurrent use by multiple goroutines.
type Hasher interface {
	// Hash hashes a plaintext password and returns the encoded hash string.
	// A fresh salt is generated for every call, so two calls with the same
	// password produce different outputs.
	Hash(password string) (string, error)

	// Validate reports whether password matches the previously encoded hash.
	// Malformed hashes yield false rather than an error.
	//
	// Comparison is performed in constant time to prevent timing attacks.
	Validate(password, hash string) bool

	// NeedsRehash returns true when the hash was produced with a version tag
	// or cost different from the hasher's current configuration.
	NeedsRehash(hash string) (bool, error)

	// Info parses an encoded hash string without verifying it.
	Info(hash string) (Record, error)
}

// DetectAlgorithm inspects a hash string and returns the bcrypt revision
// named by its prefix. It does not verify the rest of the hash.
//
// The second return value is false when the prefix is not recognised.
func DetectAlgorithm(hash string) (Algorithm, bool) {
	switch {
	case strings.HasPrefix(hash, "$2a$"):
		return Algorithm2a, true
	case strings.HasPrefix(hash, "$2b$"):
		return Algorithm2b, true
	case strings.HasPrefix(hash, "$2y$"):
		return Algorithm2y, true
	default:
		return "", false
	}
}
