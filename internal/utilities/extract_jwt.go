package utilities

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

// BearerSchema is the required prefix of the Authorization header.
const BearerSchema = "Bearer "

// ErrMissingBearer is returned when the Authorization header does not carry
// a bearer token.
var ErrMissingBearer = errors.New("Token missing or malformed")

// ExtractBearerToken returns the token of an "Authorization: Bearer <token>"
// header. The scheme is case sensitive and the token must not be blank.
func ExtractBearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")

	if !strings.HasPrefix(authHeader, BearerSchema) {
		return "", ErrMissingBearer
	}

	token := strings.TrimSpace(authHeader[len(BearerSchema):])
	if token == "" {
		return "", ErrMissingBearer
	}
	return token, nil
}
