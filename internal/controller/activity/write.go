package activity

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/model"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/utilities"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// ApplicationRequest is the body of an application.
type ApplicationRequest struct {
	JobID uint    `json:"job_id" binding:"required"`
	Note  *string `json:"note"`
}

// ApplicationUpdate is the body of an application update. Absent fields are
// left untouched.
type ApplicationUpdate struct {
	Status *string `json:"status"`
	Note   *string `json:"note"`
}

func validApplicationStatus(s string) bool {
	switch s {
	case model.ApplicationStatusApplied, model.ApplicationStatusInterview,
		model.ApplicationStatusOffer, model.ApplicationStatusRejected:
		return true
	}
	return false
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func parseJobID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("job_id"), 10, 0)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid job id"})
		return 0, false
	}
	return uint(id), true
}

func (ac *ActivityController) caller(c *gin.Context) (uuid.UUID, bool) {
	userID, err := utilities.ExtractUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return uuid.Nil, false
	}
	return userID, true
}

// CreateApplication records that the caller applied to a job.
// @Summary Apply to a job
// @Tags Activity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param application body ApplicationRequest true "Application information"
// @Success 201 {object} model.Application
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 409 {object} utilities.ErrorResponse "Already applied"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications [post]
func (ac *ActivityController) CreateApplication(c *gin.Context) {
	userID, ok := ac.caller(c)
	if !ok {
		return
	}

	var req ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	application := model.Application{
		UserID: userID,
		JobID:  req.JobID,
		Status: model.ApplicationStatusApplied,
		Note:   req.Note,
	}
	if err := ac.DB.WithContext(c.Request.Context()).Create(&application).Error; err != nil {
		switch pgCode(err) {
		case pgForeignKeyViolation:
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
		case pgUniqueViolation:
			c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: "You have already applied to this job"})
		default:
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to create application: %s", err.Error()),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, application)
}

// UpdateApplication changes the status or note of one of the caller's
// applications.
// @Summary Update one of my applications
// @Tags Activity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path integer true "Application ID"
// @Param update body ApplicationUpdate true "Fields to change"
// @Success 200 {object} model.Application
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body or status"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/{id} [patch]
func (ac *ActivityController) UpdateApplication(c *gin.Context) {
	userID, ok := ac.caller(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid application id"})
		return
	}

	var req ApplicationUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}
	if req.Status != nil && !validApplicationStatus(*req.Status) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid status %q", *req.Status),
		})
		return
	}

	db := ac.DB.WithContext(c.Request.Context())
	var application model.Application
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve application: %s", err.Error()),
		})
		return
	}

	updates := map[string]interface{}{}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Note != nil {
		updates["note"] = *req.Note
	}
	if len(updates) > 0 {
		if err := db.Model(&application).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to update application: %s", err.Error()),
			})
			return
		}
		if err := db.First(&application, application.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to reload application: %s", err.Error()),
			})
			return
		}
	}

	c.JSON(http.StatusOK, application)
}

// AddFavorite bookmarks a job for the caller.
// @Summary Add a job to my favorites
// @Tags Activity
// @Produce json
// @Security BearerAuth
// @Param job_id path integer true "Job ID"
// @Success 201 {object} model.Favorite
// @Failure 400 {object} utilities.ErrorResponse "Invalid job id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 409 {object} utilities.ErrorResponse "Already in favorites"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /favorites/{job_id} [post]
func (ac *ActivityController) AddFavorite(c *gin.Context) {
	userID, ok := ac.caller(c)
	if !ok {
		return
	}
	jobID, ok := parseJobID(c)
	if !ok {
		return
	}

	favorite := model.Favorite{UserID: userID, JobID: jobID}
	if err := ac.DB.WithContext(c.Request.Context()).Create(&favorite).Error; err != nil {
		switch pgCode(err) {
		case pgForeignKeyViolation:
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
		case pgUniqueViolation:
			c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: "Job already in favorites"})
		default:
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to add favorite: %s", err.Error()),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, favorite)
}

// RemoveFavorite removes a job from the caller's favorites.
// @Summary Remove a job from my favorites
// @Tags Activity
// @Produce json
// @Security BearerAuth
// @Param job_id path integer true "Job ID"
// @Success 200 {object} utilities.MessageResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid job id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Favorite not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /favorites/{job_id} [delete]
func (ac *ActivityController) RemoveFavorite(c *gin.Context) {
	userID, ok := ac.caller(c)
	if !ok {
		return
	}
	jobID, ok := parseJobID(c)
	if !ok {
		return
	}

	result := ac.DB.WithContext(c.Request.Context()).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Delete(&model.Favorite{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to remove favorite: %s", result.Error.Error()),
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Favorite not found"})
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Favorite removed"})
}

// MarkViewed records that the caller opened a job. Viewing it again only
// moves viewed_at forward.
// @Summary Mark a job as viewed
// @Tags Activity
// @Produce json
// @Security BearerAuth
// @Param job_id path integer true "Job ID"
// @Success 200 {object} model.ViewedJob
// @Failure 400 {object} utilities.ErrorResponse "Invalid job id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /viewed-jobs/{job_id} [put]
func (ac *ActivityController) MarkViewed(c *gin.Context) {
	userID, ok := ac.caller(c)
	if !ok {
		return
	}
	jobID, ok := parseJobID(c)
	if !ok {
		return
	}

	viewed := model.ViewedJob{UserID: userID, JobID: jobID, UpdatedAt: time.Now()}
	err := ac.DB.WithContext(c.Request.Context()).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "job_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
	}).Create(&viewed).Error
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to record view: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, viewed)
}
