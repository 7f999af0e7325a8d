// Package user provides HTTP handlers for the authenticated user's profile.
package user

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/database"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/model"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/utilities"
)

// UserController handles user profile endpoints
type UserController struct {
	DB *database.DBinstanceStruct
}

// NewUserController creates a new instance of UserController
func NewUserController(db *database.DBinstanceStruct) *UserController {
	return &UserController{
		DB: db,
	}
}

// GetMe returns the profile of the token owner.
// @Summary Get my profile
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "User not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /users/me [get]
func (uc *UserController) GetMe(c *gin.Context) {
	userID, err := utilities.ExtractUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var user model.User
	if err := uc.DB.WithContext(c.Request.Context()).Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve user: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, user)
}
