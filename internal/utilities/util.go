// Package utilities contain utility code that use across the package
package utilities

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// ErrorResponse type for swagger docs
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse type for swagger docs
type MessageResponse struct {
	Message string `json:"message"`
}

// ClaimsKey is the gin context key holding the verified token claims.
const ClaimsKey = "claims"

// ExtractClaims returns the claims stored by the auth middleware.
func ExtractClaims(c *gin.Context) (*jwt.RegisteredClaims, error) {
	claims, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	realClaims, okCast := claims.(*jwt.RegisteredClaims)
	if !okCast {
		return nil, errors.New("invalid token claims type")
	}
	return realClaims, nil
}

// ExtractUserID returns the id of the authenticated user.
func ExtractUserID(c *gin.Context) (uuid.UUID, error) {
	claims, err := ExtractClaims(c)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.New("invalid token subject")
	}
	return id, nil
}
