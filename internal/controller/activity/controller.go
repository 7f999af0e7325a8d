// Package activity provides HTTP handlers for the job seeker's own activity:
// favorites, viewed jobs and applications.
package activity

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/database"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/model"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/utilities"
)

// ActivityController handles the per-user activity endpoints
type ActivityController struct {
	DB *database.DBinstanceStruct
}

// NewActivityController creates a new instance of ActivityController
func NewActivityController(db *database.DBinstanceStruct) *ActivityController {
	return &ActivityController{
		DB: db,
	}
}

// listOwned loads the caller's rows of dest's model, newest first, with
// their job preloaded.
func (ac *ActivityController) listOwned(c *gin.Context, dest interface{}, order string) bool {
	userID, err := utilities.ExtractUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return false
	}

	if err := ac.DB.WithContext(c.Request.Context()).
		Preload("Job").
		Where("user_id = ?", userID).
		Order(order).
		Find(dest).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch activity: ", err.Error()),
		})
		return false
	}
	return true
}

// GetFavorites returns the caller's bookmarked jobs.
// @Summary List my favorites
// @Tags Activity
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Favorite
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /favorites [get]
func (ac *ActivityController) GetFavorites(c *gin.Context) {
	favorites := []model.Favorite{}
	if ac.listOwned(c, &favorites, "created_at DESC") {
		c.JSON(http.StatusOK, favorites)
	}
}

// GetViewedJobs returns the jobs the caller opened, last viewed first.
// @Summary List my viewed jobs
// @Tags Activity
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ViewedJob
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /viewed-jobs [get]
func (ac *ActivityController) GetViewedJobs(c *gin.Context) {
	viewed := []model.ViewedJob{}
	if ac.listOwned(c, &viewed, "updated_at DESC") {
		c.JSON(http.StatusOK, viewed)
	}
}

// GetApplications returns the caller's applications.
// @Summary List my applications
// @Tags Activity
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Application
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications [get]
func (ac *ActivityController) GetApplications(c *gin.Context) {
	applications := []model.Application{}
	if ac.listOwned(c, &applications, "created_at DESC") {
		c.JSON(http.StatusOK, applications)
	}
}
