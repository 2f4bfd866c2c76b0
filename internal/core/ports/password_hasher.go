package ports

// PasswordHasher produces and verifies salted one-way password digests.
// Hash generates a fresh salt per call and embeds it in the digest encoding,
// so no separate salt storage exists. Verify recomputes with the embedded
// salt and compares in constant time.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
