package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/goaltracker/goal-tracker-api/internal/core/domain"
)

// signToken builds an HS256 token with arbitrary claims, bypassing Issue so
// tests can control iat/exp directly.
func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestJWTTokenService_IssueVerifyRoundTrip(t *testing.T) {
	svc := NewJWTTokenService("secret", time.Hour)

	token, err := svc.Issue("user_1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	id, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if id != "user_1" {
		t.Fatalf("expected subject user_1, got %q", id)
	}
}

func TestJWTTokenService_ClaimsShape(t *testing.T) {
	svc := NewJWTTokenService("secret", 30*24*time.Hour)

	token, err := svc.Issue("user_1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		t.Fatalf("missing iat claim")
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("missing exp claim")
	}
	if got := time.Duration(exp-iat) * time.Second; got != 30*24*time.Hour {
		t.Fatalf("expected 30d validity window, got %v", got)
	}
}

func TestJWTTokenService_ExpiredToken(t *testing.T) {
	svc := NewJWTTokenService("secret", time.Hour)

	now := time.Now()
	expired := signToken(t, "secret", jwt.MapClaims{
		"id":  "user_1",
		"iat": now.Add(-2 * time.Hour).Unix(),
		"exp": now.Add(-1 * time.Second).Unix(),
	})

	if _, err := svc.Verify(expired); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized for expired token, got %v", err)
	}
}

func TestJWTTokenService_NotYetExpiredToken(t *testing.T) {
	svc := NewJWTTokenService("secret", time.Hour)

	now := time.Now()
	fresh := signToken(t, "secret", jwt.MapClaims{
		"id":  "user_1",
		"iat": now.Add(-time.Hour).Unix(),
		"exp": now.Add(5 * time.Second).Unix(),
	})

	id, err := svc.Verify(fresh)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if id != "user_1" {
		t.Fatalf("unexpected subject: %q", id)
	}
}

func TestJWTTokenService_TamperedToken(t *testing.T) {
	svc := NewJWTTokenService("secret", time.Hour)

	token, err := svc.Issue("user_1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Flip one byte of the signature segment.
	parts := strings.Split(token, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := svc.Verify(tampered); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized for tampered token, got %v", err)
	}
}

func TestJWTTokenService_WrongSecret(t *testing.T) {
	issuer := NewJWTTokenService("secret-a", time.Hour)
	verifier := NewJWTTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("user_1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized across secrets, got %v", err)
	}
}

func TestJWTTokenService_MissingSubject(t *testing.T) {
	svc := NewJWTTokenService("secret", time.Hour)

	token := signToken(t, "secret", jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized for missing subject, got %v", err)
	}
}

func TestJWTTokenService_RejectsUnexpectedAlgorithm(t *testing.T) {
	svc := NewJWTTokenService("secret", time.Hour)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":  "user_1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(unsigned); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized for alg=none, got %v", err)
	}
}
