package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := hashing.ParseRecord(stored)
//	if errors.Is(err, hashing.ErrInvalidHash) {
//	    // hash string is malformed
//	}
var (
	// ErrInvalidOption is returned when a constructor is called with a
	// parameter value that falls outside the allowed range.
	ErrInvalidOption = errors.New("hashing: invalid option value")

	// ErrInvalidCost is returned when a cost factor lies outside
	// [MinCost, MaxCost]. Configuration errors also match ErrInvalidOption.
	ErrInvalidCost = errors.New("hashing: cost out of range")

	// ErrUnknownAlgorithm is returned when a version tag is not one of
	// $2a$, $2y$ or $2b$.
	ErrUnknownAlgorithm = errors.New("hashing: unknown bcrypt version tag")

	// ErrInvalidHash is matched by every error produced while parsing a
	// stored hash string.
	ErrInvalidHash = errors.New("hashing: invalid or unrecognised hash string")

	// ErrMalformedSalt is returned when the salt field of a hash string is
	// truncated or contains characters outside the bcrypt alphabet.
	ErrMalformedSalt = errors.New("hashing: malformed salt field")

	// ErrMalformedChecksum is returned when the checksum field is truncated,
	// overlaps the salt field, or contains characters outside the alphabet.
	ErrMalformedChecksum = errors.New("hashing: malformed checksum field")

	// ErrEntropyUnavailable is returned when the entropy source cannot supply
	// the requested number of bytes.
	ErrEntropyUnavailable = errors.New("hashing: entropy unavailable")

	// ErrDerivationFailed is returned when the digest engine fails or returns
	// a digest that is not a well-formed checksum.
	ErrDerivationFailed = errors.New("hashing: digest derivation failed")

	// ErrEngineNotFound is returned by [Manager.Hasher] or indirectly by
	// [Manager.Make] / [Manager.Check] when the requested engine has not been
	// registered.
	ErrEngineNotFound = errors.New("hashing: engine not found")

	// ErrEmptyEngineName is returned by [Manager.RegisterEngine] when the
	// supplied engine name is an empty string.
	ErrEmptyEngineName = errors.New("hashing: engine name must not be empty")

	// ErrNilHasher is returned by [Manager.RegisterEngine] when a nil [Hasher]
	// is supplied.
	ErrNilHasher = errors.New("hashing: hasher must not be nil")

	// ErrNilEngine is returned by [NewValidator] when no engine is supplied.
	ErrNilEngine = errors.New("hashing: engine must not be nil")
)

// parseError ties a specific parse failure to [ErrInvalidHash] so that callers
// may match either.
type parseError struct {
	kind   error
	detail string
}

func (e *parseError) Error() string {
	if e.detail == "" {
		return e.kind.Error()
	}
	return e.kind.Error() + ": " + e.detail
}

func (e *parseError) Is(target error) bool {
	return target == ErrInvalidHash
}

func (e *parseError) Unwrap() error { return e.kind }
