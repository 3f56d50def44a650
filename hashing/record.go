package hashing

import (
	"strconv"

	"github.com/hasbyte1/go-bcrypt-compat/hashing/radix64"
)

// Record is the parsed form of a bcrypt hash string. It is a value type and
// never mutated after construction.
type Record struct {
	Algorithm Algorithm
	Cost      int
	Salt      string // 22 characters
	Checksum  string // 31 characters
}

// ParseRecord splits a hash string into its fields. Each step is a hard gate:
//
//  1. the first four characters must be a known version tag
//     ([ErrUnknownAlgorithm]);
//  2. the salt field must be complete and well formed ([ErrMalformedSalt],
//     [ErrInvalidCost]);
//  3. the trailing checksum must be exactly [ChecksumFieldLength] alphabet
//     characters that neither overlap the salt field nor leave a gap after it
//     ([ErrMalformedChecksum]).
//
// Every returned error also matches [ErrInvalidHash].
func ParseRecord(s string) (Record, error) {
	alg, ok := DetectAlgorithm(s)
	if !ok {
		return Record{}, &parseError{kind: ErrUnknownAlgorithm}
	}

	if len(s) < SaltFieldLength {
		return Record{}, &parseError{kind: ErrMalformedSalt, detail: "truncated"}
	}
	field := s[:SaltFieldLength]
	if !isDigit(field[4]) || !isDigit(field[5]) || field[6] != '$' {
		return Record{}, &parseError{kind: ErrMalformedSalt, detail: "cost must be two digits followed by '$'"}
	}
	cost, _ := strconv.Atoi(field[4:6])
	if cost < MinCost || cost > MaxCost {
		return Record{}, &parseError{kind: ErrInvalidCost, detail: strconv.Itoa(cost)}
	}
	salt := field[TagLength+3:]
	if !radix64.Valid(salt) {
		return Record{}, &parseError{kind: ErrMalformedSalt, detail: "salt outside bcrypt alphabet"}
	}

	if len(s) < ChecksumFieldLength {
		return Record{}, &parseError{kind: ErrMalformedChecksum, detail: "truncated"}
	}
	checksumStart := len(s) - ChecksumFieldLength
	switch {
	case checksumStart < SaltFieldLength:
		return Record{}, &parseError{kind: ErrMalformedChecksum, detail: "checksum overlaps salt field"}
	case checksumStart > SaltFieldLength:
		return Record{}, &parseError{kind: ErrMalformedChecksum, detail: "unexpected bytes between salt and checksum"}
	}
	checksum := s[checksumStart:]
	if !radix64.Valid(checksum) {
		return Record{}, &parseError{kind: ErrMalformedChecksum, detail: "checksum outside bcrypt alphabet"}
	}

	return Record{Algorithm: alg, Cost: cost, Salt: salt, Checksum: checksum}, nil
}

// SaltField returns the 29-character prefix that, together with the
// password, fully determines the checksum.
func (r Record) SaltField() string {
	return saltField(r.Algorithm, r.Cost, r.Salt)
}

// String formats r as a hash string. It is the exact inverse of [ParseRecord].
func (r Record) String() string {
	return r.SaltField() + r.Checksum
}

// withChecksum returns a copy of r carrying checksum.
func (r Record) withChecksum(checksum string) Record {
	r.Checksum = checksum
	return r
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
