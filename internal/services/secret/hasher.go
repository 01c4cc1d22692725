// Package secret provides one-way hashing for passwords and refresh
// tokens so neither is recoverable from the store alone.
package secret

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt work factor used for all digests
const HashCost = 10

// Hasher hashes and compares secrets using bcrypt. The same hasher
// covers login passwords and refresh tokens; bcrypt's salt makes two
// hashes of the same input differ, and comparison is constant-time.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the standard work factor
func NewHasher() *Hasher {
	return &Hasher{cost: HashCost}
}

// Hash returns a salted one-way digest of the plaintext
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword(normalize(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Compare reports whether the plaintext matches the digest
func (h *Hasher) Compare(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), normalize(plaintext)) == nil
}

// normalize pre-digests the input with SHA-256. bcrypt rejects inputs
// over 72 bytes and signed refresh tokens are well past that limit.
func normalize(plaintext string) []byte {
	sum := sha256.Sum256([]byte(plaintext))
	return []byte(base64.RawURLEncoding.EncodeToString(sum[:]))
}
