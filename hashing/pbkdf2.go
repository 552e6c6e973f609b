package hashing

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// ──────────────────────────────────────────────────────────────────────────────
// Options
// ──────────────────────────────────────────────────────────────────────────────

// PBKDF2Options configures a [PBKDF2Hasher].
//
// The derivation parameters are fixed constants ([SaltSize], [DigestSize],
// [Iterations]); only the entropy source is configurable.
type PBKDF2Options struct {
	// Rand is the source of salt bytes.  It must be a cryptographically
	// secure generator that is safe for concurrent use.
	// Default: crypto/rand.Reader.
	Rand io.Reader
}

// DefaultPBKDF2Options returns PBKDF2Options backed by crypto/rand.
func DefaultPBKDF2Options() PBKDF2Options {
	return PBKDF2Options{Rand: rand.Reader}
}

// ──────────────────────────────────────────────────────────────────────────────
// PBKDF2Hasher
// ──────────────────────────────────────────────────────────────────────────────

// PBKDF2Hasher hashes passwords with PBKDF2-HMAC-SHA256 and stores them as a
// base64-encoded 49-byte record:
//
//	[marker 0x00][salt:16][digest:32]
//
// # Thread safety
//
// PBKDF2Hasher is immutable after construction and safe for concurrent use.
type PBKDF2Hasher struct {
	rand io.Reader
}

// NewPBKDF2Hasher constructs a PBKDF2Hasher.  A nil opts.Rand falls back to
// crypto/rand.Reader.
func NewPBKDF2Hasher(opts PBKDF2Options) *PBKDF2Hasher {
	r := opts.Rand
	if r == nil {
		r = rand.Reader
	}
	return &PBKDF2Hasher{rand: r}
}

// HashPassword derives a salted digest from password and returns the encoded
// record.  A nil password returns [ErrInvalidArgument]; an empty one is hashed.
//
// A failure of the entropy source is returned as an error and no record is
// produced.
func (h *PBKDF2Hasher) HashPassword(password []byte) (string, error) {
	if password == nil {
		return "", ErrInvalidArgument
	}
	salt, err := h.randomSalt()
	if err != nil {
		return "", err
	}
	return encodeRecord(salt, derive(password, salt)), nil
}

// VerifyHashedPassword reports whether password matches hashedPassword.
//
// An empty hashedPassword is treated as an absent record and yields false.
// A nil password returns [ErrInvalidArgument].  Records with invalid base64,
// the wrong length, or an unknown marker byte yield false without an error.
func (h *PBKDF2Hasher) VerifyHashedPassword(hashedPassword string, password []byte) (bool, error) {
	if hashedPassword == "" {
		return false, nil
	}
	if password == nil {
		return false, ErrInvalidArgument
	}
	rec, err := decodeRecord(hashedPassword)
	if err != nil {
		return false, nil
	}
	return digestsEqual(rec.digest, derive(password, rec.salt)), nil
}

// Make hashes password and returns the encoded record.
func (h *PBKDF2Hasher) Make(password string) (string, error) {
	return h.HashPassword([]byte(password))
}

// Check verifies password against hash.  A malformed hash returns
// (false, nil).
func (h *PBKDF2Hasher) Check(password, hash string) (bool, error) {
	return h.VerifyHashedPassword(hash, []byte(password))
}

// Info decodes hash and returns its parameters.  The iteration count is not
// stored in the record; the reported value is the package constant.
//
// Returned [HashInfo].Params:
//   - "marker"     → byte
//   - "iterations" → int
//   - "salt_len"   → int
//   - "key_len"    → int
func (h *PBKDF2Hasher) Info(hash string) (HashInfo, error) {
	rec, err := decodeRecord(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return HashInfo{
		Scheme: SchemePBKDF2SHA256,
		Params: map[string]any{
			"marker":     byte(rec.format),
			"iterations": Iterations,
			"salt_len":   len(rec.salt),
			"key_len":    len(rec.digest),
		},
	}, nil
}

func (h *PBKDF2Hasher) randomSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return nil, fmt.Errorf("hashing: pbkdf2: failed to generate salt: %w", err)
	}
	return salt, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Package-level helpers
// ──────────────────────────────────────────────────────────────────────────────

var defaultHasher = NewPBKDF2Hasher(DefaultPBKDF2Options())

// HashPassword hashes password with the default [PBKDF2Hasher].
func HashPassword(password []byte) (string, error) {
	return defaultHasher.HashPassword(password)
}

// VerifyHashedPassword checks password against hashedPassword with the
// default [PBKDF2Hasher].
func VerifyHashedPassword(hashedPassword string, password []byte) (bool, error) {
	return defaultHasher.VerifyHashedPassword(hashedPassword, password)
}

func derive(password, salt []byte) []byte {
	return pbkdf2.Key(password, salt, Iterations, DigestSize, sha256.New)
}

// digestsEqual compares every byte of a and b regardless of where they
// differ.  subtle.ConstantTimeCompare returns 0 immediately only when the
// lengths differ, which is public information here.
func digestsEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

var _ Hasher = (*PBKDF2Hasher)(nil)
