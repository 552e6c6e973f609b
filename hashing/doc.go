// Package hashing stores and verifies passwords with salted, iterated
// PBKDF2-HMAC-SHA256.
//
// # Record format
//
// [HashPassword] returns the standard base64 encoding of a 49-byte record:
//
//	[marker 0x00][salt:16][digest:32]
//
// The salt is fresh random data per call; the digest is PBKDF2 over the
// password bytes and the salt with [Iterations] rounds of HMAC-SHA256.  Store
// the string as an opaque value (e.g. a text column).
//
// # Quick start
//
//	stored, err := hashing.HashPassword([]byte("my-secret-password"))
//	if err != nil { log.Fatal(err) }
//
//	ok, _ := hashing.VerifyHashedPassword(stored, []byte("my-secret-password")) // true
//
// [PBKDF2Hasher] exposes the same operations behind the string-based [Hasher]
// interface for dependency injection.
//
// # Verification semantics
//
//   - A nil password is a caller bug and returns [ErrInvalidArgument].
//   - An empty, undecodable, wrongly sized or foreign-marker record returns
//     false with no error.  To the caller a corrupt record and a wrong
//     password are both an authentication denial.
//   - Digests are compared with [crypto/subtle.ConstantTimeCompare].
//
// # Parameters are not stored
//
// The iteration count is a compile-time constant and is not part of the
// record.  Only the marker byte identifies the format; a future parameter set
// must use a new marker value so old records stay verifiable.
package hashing
