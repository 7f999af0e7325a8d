// Package middleware contain utilities middleware code
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/auth"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/utilities"
)

// Messages returned by RequireAuth
const (
	MsgTokenMissing = "Token missing or malformed"
	MsgTokenExpired = "Token expired, please reauthenticate"
	MsgTokenInvalid = "Invalid token"
)

// RequireAuth validates the Bearer token of the Authorization header and
// stores its claims under the "claims" key. It does not touch the database.
func RequireAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := utilities.ExtractBearerToken(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: MsgTokenMissing,
			})
			return
		}

		claims, err := jwtManager.Validate(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
					Error: MsgTokenExpired,
				})
				return
			}

			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: MsgTokenInvalid,
			})
			return
		}

		ctx.Set(utilities.ClaimsKey, claims)
		ctx.Next()
	}
}
