package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	info, err := hasher.Info(stored)
//	if errors.Is(err, hashing.ErrInvalidHash) {
//	    // stored value is not a record of this scheme
//	}
var (
	// ErrInvalidArgument is returned when a required password argument is
	// absent (a nil slice).  It signals a caller bug and is not retryable.
	ErrInvalidArgument = errors.New("hashing: password must not be nil")

	// ErrInvalidHash is returned by [PBKDF2Hasher.Info] when a stored value
	// has invalid base64, the wrong length, or an unsupported marker byte.
	//
	// Verification never returns it: a malformed record simply fails to match.
	ErrInvalidHash = errors.New("hashing: invalid or unrecognised hash string")
)
