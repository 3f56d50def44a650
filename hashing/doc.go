// Package hashing provides a bcrypt modified-crypt codec and validator that
// accepts hashes from both the OpenBSD and the crypt_blowfish lineages.
//
// # Architecture
//
// The central abstraction is the [Hasher] interface, implemented by
// [BcryptHasher]. A BcryptHasher combines a validated [Config], an
// [EntropySource] for salts, and a digest [Engine]. Two engines ship with
// this module:
//
//   - eksblowfish: the expensive key setup driven over
//     golang.org/x/crypto/blowfish. Understands $2a$ and $2b$ only. Default.
//   - gocrypt: an adapter over github.com/go-crypt/x/bcrypt.
//
// Both are reached through the same codec and validator; neither duplicates
// the parsing or comparison logic.
//
// The [Manager] is a named engine registry and dispatcher. Register one
// [Hasher] per engine, designate a default, then delegate all hashing
// operations through the Manager.
//
// # Quick start
//
//	h, err := hashing.NewBcryptHasher(hashing.DefaultBcryptOptions())
//	if err != nil { log.Fatal(err) }
//
//	hash, _ := h.Hash("my-secret-password")
//	ok := h.Validate("my-secret-password", hash) // true
//
// # Hash format
//
//	$<tag>$<cost>$<salt><checksum>
//
// tag is 2a, 2y or 2b; cost is two decimal digits in [04, 31]; salt is 22 and
// checksum 31 characters over "./A-Za-z0-9". Every hash is 60 characters.
//
// # Version tags
//
// 2y and 2b are the same algorithm under different names. Engines are only
// required to understand 2b, so [Normalize] rewrites a 2y salt field to 2b
// before derivation and the original tag is restored on output.
//
// # Validation
//
// [Validator.Validate] never fails. A malformed stored hash, an engine error
// and a wrong password all yield false. Hash strings are compared with
// crypto/subtle so the running time does not depend on where the first
// differing byte is.
package hashing
