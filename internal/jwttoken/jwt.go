package jwttoken

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"motorvault/internal/platform/config"
	dErrors "motorvault/pkg/domain-errors"
)

// Claims represents the JWT claims carried by every access token. Both login
// paths produce this exact shape; nothing downstream can tell how a token was
// obtained.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Service issues and verifies signed bearer tokens. It is stateless: the
// client holds the only copy of the token and expiry is the sole termination
// mechanism.
type Service struct {
	signingKey []byte
	ttl        time.Duration
}

// New builds a token service from immutable startup configuration. The
// algorithm is pinned to HS256 by config validation.
func New(cfg config.JWTConfig) *Service {
	return &Service{
		signingKey: []byte(cfg.SigningKey),
		ttl:        cfg.TTL,
	}
}

// Issue encodes the identity claims plus an expiry of now + ttl. A ttl of
// zero uses the configured default.
func (s *Service) Issue(userID, email string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = s.ttl
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})

	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not sign token")
	}
	return signed, nil
}

// Verify parses and validates a token, returning the original claim set.
// Expiry surfaces as CodeTokenExpired; any signature, structure, or algorithm
// mismatch surfaces as CodeTokenInvalid so a downgraded or cross-signed token
// never passes.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeTokenExpired, "token has expired")
		}
		return nil, dErrors.New(dErrors.CodeTokenInvalid, "invalid token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeTokenInvalid, "invalid token claims")
	}
	return claims, nil
}
