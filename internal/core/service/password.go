package service

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost keeps a single verification in the low tens of
// milliseconds on current hardware.
const DefaultBcryptCost = 10

// BcryptHasher implements ports.PasswordHasher on top of bcrypt. The salt is
// generated per call and embedded in the digest encoding.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given work factor. Out-of-range
// costs fall back to DefaultBcryptCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the digest. Comparison is
// constant-time inside bcrypt.
func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
