package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/logging"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/utilities"
)

// LogoutController handles user logout by blacklisting JWT tokens
type LogoutController struct {
	BlacklistStore JwtBlacklistStore
	Log            *logging.Logger
}

// NewLogoutController creates a new instance of LogoutController
func NewLogoutController(blacklistStore JwtBlacklistStore, log *logging.Logger) *LogoutController {
	if log == nil {
		log = logging.Nop()
	}
	return &LogoutController{
		BlacklistStore: blacklistStore,
		Log:            log,
	}
}

// LogoutHandler handles user logout by blacklisting the JWT token
// @Summary Revoke the presented access token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utilities.MessageResponse
// @Failure 401 {object} utilities.ErrorResponse
// @Failure 500 {object} utilities.ErrorResponse
// @Router /auth/logout [post]
func (lc *LogoutController) LogoutHandler(c *gin.Context) {
	tokenString, err := utilities.ExtractBearerToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	claims, err := utilities.ExtractClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	err = lc.BlacklistStore.AddToBlacklist(c.Request.Context(), tokenString, claims.ExpiresAt.Time)
	if err != nil {
		lc.Log.Error("failed to blacklist token", "err", err, "subject", claims.Subject)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Failed to logout"})
		return
	}

	logAuthAttempt(lc.Log, "Logout", AttemptSuccess, claims.Subject, "")
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Successfully logged out"})
}
