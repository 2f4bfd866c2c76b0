package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/goaltracker/goal-tracker-api/internal/core/domain"
)

// DefaultTokenTTL is the fixed validity window for issued tokens.
const DefaultTokenTTL = 30 * 24 * time.Hour

// JWTTokenService implements ports.TokenService with HS256-signed JWTs.
// Claims: {id, iat, exp}. The secret is injected at construction and
// read-only afterwards; rotating it invalidates all outstanding tokens, which
// is the only kill-switch since there is no revocation list.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTTokenService(secret string, ttl time.Duration) *JWTTokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTTokenService{secret: []byte(secret), ttl: ttl}
}

func (s *JWTTokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify validates signature and expiry and returns the embedded subject.
// exp is strict: a token whose expiry equals the current instant is already
// expired. Every failure mode collapses into ErrNotAuthorized so callers
// cannot leak which check failed.
func (s *JWTTokenService) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrNotAuthorized
	}

	id, _ := claims["id"].(string)
	if id == "" {
		return "", domain.ErrNotAuthorized
	}
	return id, nil
}
