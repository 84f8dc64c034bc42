package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// hashKey returns prefix:sha256(parts) with parts NUL-separated, so
// ("1", "23") and ("12", "3") never share a key.
func hashKey(prefix string, parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return prefix + ":" + hex.EncodeToString(h.Sum(nil))
}

// joinInts formats p as comma-separated decimals.
func joinInts(p []int) string {
	buf := make([]byte, 0, len(p)*3)
	for i, v := range p {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}
	return string(buf)
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Keyer derives cache keys for codec results.
type Keyer interface {
	// DecodeKey is the key for the permutation decoded from code at length.
	DecodeKey(length int, code string) string

	// EncodeKey is the key for the code of permutation p.
	EncodeKey(p []int) string
}

// DefaultKeyer hashes the request parameters into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// DecodeKey returns "decode:<sha256>".
func (DefaultKeyer) DecodeKey(length int, code string) string {
	return hashKey("decode", strconv.Itoa(length), code)
}

// EncodeKey returns "encode:<sha256>".
func (DefaultKeyer) EncodeKey(p []int) string {
	return hashKey("encode", joinInts(p))
}
