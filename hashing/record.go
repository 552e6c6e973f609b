package hashing

import (
	"encoding/base64"
	"fmt"
)

// recordFormat is the value of the leading marker byte.  Each format owns the
// layout of the remaining bytes.
type recordFormat byte

const formatPBKDF2SHA256 recordFormat = recordFormat(RecordMarker)

// Byte offsets inside a decoded record.
const (
	saltOffset   = 1
	digestOffset = saltOffset + SaltSize
)

// record is a decoded stored record.
type record struct {
	format recordFormat
	salt   []byte
	digest []byte
}

// encodeRecord lays out a stored record and returns its base64 form:
//
//	[0x00][salt:16][digest:32]
func encodeRecord(salt, digest []byte) string {
	buf := make([]byte, RecordSize)
	buf[0] = byte(formatPBKDF2SHA256)
	copy(buf[saltOffset:digestOffset], salt)
	copy(buf[digestOffset:], digest)
	return base64.StdEncoding.EncodeToString(buf)
}

// decodeRecord parses the base64 form of a stored record.  Every failure wraps
// [ErrInvalidHash].
func decodeRecord(encoded string) (record, error) {
	buf, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return record{}, fmt.Errorf("%w: invalid base64: %v", ErrInvalidHash, err)
	}
	if len(buf) != RecordSize {
		return record{}, fmt.Errorf("%w: expected %d bytes, got %d",
			ErrInvalidHash, RecordSize, len(buf))
	}

	switch f := recordFormat(buf[0]); f {
	case formatPBKDF2SHA256:
		return record{
			format: f,
			salt:   buf[saltOffset:digestOffset],
			digest: buf[digestOffset:],
		}, nil
	default:
		return record{}, fmt.Errorf("%w: unsupported marker byte 0x%02x", ErrInvalidHash, byte(f))
	}
}

// IsRecord reports whether hash is a structurally valid record of this scheme.
// It does not verify any password.
func IsRecord(hash string) bool {
	_, err := decodeRecord(hash)
	return err == nil
}
