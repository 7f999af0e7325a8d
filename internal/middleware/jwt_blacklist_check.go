package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/auth"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/logging"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/utilities"
)

// JwtBlacklistCheck is a middleware that checks if the JWT token is blacklisted.
// It runs after RequireAuth.
func JwtBlacklistCheck(bl auth.JwtBlacklistStore, log *logging.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := utilities.ExtractBearerToken(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: MsgTokenMissing,
			})
			return
		}

		isBlacklisted, err := bl.IsBlacklisted(ctx.Request.Context(), tokenString)
		if err != nil {
			log.Error("blacklist lookup failed", "err", err)
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: "Failed to validate token",
			})
			return
		}

		if isBlacklisted {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: "Token has been revoked",
			})
			return
		}

		ctx.Next()
	}
}
