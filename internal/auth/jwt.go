// Package auth issues and verifies access tokens and serves the login,
// register and logout endpoints.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Token verification failures
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// JWTManager signs and verifies HS256 access tokens.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewJWTManager creates a new instance of JWTManager. An empty secret is
// rejected.
func NewJWTManager(secret, issuer string, ttl time.Duration) (*JWTManager, error) {
	if secret == "" {
		return nil, errors.New("SECRET_KEY is empty")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &JWTManager{secret: []byte(secret), issuer: issuer, ttl: ttl}, nil
}

// Issuer returns the issuer stamped on every token.
func (m *JWTManager) Issuer() string {
	return m.issuer
}

// Generate signs an access token for the user.
func (m *JWTManager) Generate(userID uuid.UUID) (string, error) {
	return m.GenerateWithDuration(userID, m.ttl)
}

// GenerateWithDuration signs an access token valid for d. A negative d
// yields an already expired token.
func (m *JWTManager) GenerateWithDuration(userID uuid.UUID, d time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    m.issuer,
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(d)),
		IssuedAt:  jwt.NewNumericDate(now),
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("Failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies signature, algorithm, expiry and issuer of encoded.
// The returned error wraps ErrTokenExpired or ErrTokenInvalid.
func (m *JWTManager) Validate(encoded string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(encoded, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	if !claims.VerifyIssuer(m.issuer, true) {
		return nil, fmt.Errorf("%w: unexpected issuer %q", ErrTokenInvalid, claims.Issuer)
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, fmt.Errorf("%w: bad subject", ErrTokenInvalid)
	}
	return claims, nil
}
