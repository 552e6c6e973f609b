package hashing

// Scheme identifies the stored-record format produced by this package.
type Scheme string

// SchemePBKDF2SHA256 is the only scheme this package produces and verifies.
const SchemePBKDF2SHA256 Scheme = "pbkdf2-sha256"

const (
	// SaltSize is the length of the random salt in bytes.
	SaltSize = 0x10

	// DigestSize is the length of the derived digest in bytes.
	DigestSize = 0x20

	// Iterations is the PBKDF2 iteration count.
	//
	// It is shared by the hash and verify paths and is not encoded in the
	// stored record: changing it makes every previously stored record fail
	// verification.
	Iterations = 1000

	// RecordMarker is the leading byte of every record this package produces.
	RecordMarker byte = 0x00

	// RecordSize is the decoded length of a stored record:
	// marker (1) + salt (SaltSize) + digest (DigestSize) = 49 bytes.
	RecordSize = 1 + SaltSize + DigestSize
)

// Hasher is the interface satisfied by [PBKDF2Hasher].
//
// Callers that store or check passwords should depend on Hasher rather than
// the concrete type so that tests can substitute a fake.
//
// Implementations must be safe for concurrent use by multiple goroutines.
type Hasher interface {
	// Make hashes a plaintext password and returns the encoded record.
	// A fresh salt is generated for every call, so two calls with the same
	// password produce different outputs.
	Make(password string) (string, error)

	// Check reports whether password matches the encoded record.
	// A malformed or foreign record is a mismatch, not an error.
	//
	// Comparison is performed in constant time.
	Check(password, hash string) (bool, error)

	// Info decodes a record without verifying it.
	Info(hash string) (HashInfo, error)
}

// HashInfo carries metadata parsed from an encoded record.
type HashInfo struct {
	// Scheme is the format that produced the record.
	Scheme Scheme

	// Params holds the record parameters:
	//   "marker"     → byte
	//   "iterations" → int
	//   "salt_len"   → int
	//   "key_len"    → int
	Params map[string]any
}
