// Package importrun exposes the audit trail of the job imports.
package importrun

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/repository"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/utilities"
)

// ImportRunController handles import run endpoints
type ImportRunController struct {
	Jobs *repository.JobRepository
}

// NewImportRunController creates a new instance of ImportRunController
func NewImportRunController(jobs *repository.JobRepository) *ImportRunController {
	return &ImportRunController{
		Jobs: jobs,
	}
}

// GetImportRuns returns the latest import runs, newest first.
// @Summary List import runs
// @Tags Import
// @Produce json
// @Security BearerAuth
// @Param limit query integer false "Number of runs, default 50, at most 100"
// @Success 200 {array} model.ImportRun
// @Failure 400 {object} utilities.ErrorResponse "Invalid limit"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /import-runs [get]
func (ic *ImportRunController) GetImportRuns(c *gin.Context) {
	limit := repository.DefaultJobLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = n
	}

	runs, err := ic.Jobs.ListRuns(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch import runs: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, runs)
}
