package ports

// TokenService issues and verifies signed, time-bounded bearer tokens.
// Tokens are stateless: validity is determined by signature and expiry alone,
// never by server-side session state. Rotating the signing secret invalidates
// every outstanding token.
type TokenService interface {
	// Issue returns a signed token whose subject is the given user id.
	Issue(userID string) (string, error)
	// Verify validates signature and expiry and returns the embedded user id.
	// Any failure (tampering, expiry, malformed input) yields
	// domain.ErrNotAuthorized.
	Verify(token string) (string, error)
}
