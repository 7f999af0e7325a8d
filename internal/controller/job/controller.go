// Package job provides HTTP handlers for the imported job listings.
package job

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/model"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/repository"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/utilities"
)

// JobController handles job related endpoints
type JobController struct {
	Jobs *repository.JobRepository
}

// NewJobController creates a new instance of JobController
func NewJobController(jobs *repository.JobRepository) *JobController {
	return &JobController{
		Jobs: jobs,
	}
}

// JobsResponse wraps a job listing.
type JobsResponse struct {
	Jobs []model.Job `json:"jobs"`
}

// JobResponse wraps a single job.
type JobResponse struct {
	Job model.Job `json:"job"`
}

func parseFilter(c *gin.Context) (repository.JobFilter, error) {
	f := repository.JobFilter{
		Search:          strings.TrimSpace(c.Query("search")),
		City:            strings.TrimSpace(c.Query("city")),
		Department:      strings.TrimSpace(c.Query("department")),
		Remote:          c.Query("remote"),
		ContractType:    c.Query("contract_type"),
		Source:          c.Query("source"),
		IncludeInactive: strings.ToLower(c.Query("include_inactive")) == "true",
		Desc:            strings.ToLower(c.Query("desc")) == "true",
	}

	if f.Remote != "" && !model.RemoteMode(f.Remote).Valid() {
		return f, fmt.Errorf("invalid remote %q", f.Remote)
	}
	if f.ContractType != "" && !model.ContractType(f.ContractType).Valid() {
		return f, fmt.Errorf("invalid contract_type %q", f.ContractType)
	}
	if f.Source != "" && !utilities.Contains(model.KnownSources, f.Source) {
		return f, fmt.Errorf("invalid source %q", f.Source)
	}

	var err error
	if raw := c.Query("limit"); raw != "" {
		if f.Limit, err = strconv.Atoi(raw); err != nil || f.Limit < 1 {
			return f, fmt.Errorf("limit must be a positive integer")
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if f.Offset, err = strconv.Atoi(raw); err != nil || f.Offset < 0 {
			return f, fmt.Errorf("offset must be a non-negative integer")
		}
	}
	return f, nil
}

// GetJobs returns the jobs matching the query.
// @Summary List jobs
// @Description Only active jobs unless include_inactive is true
// @Tags Job
// @Produce json
// @Param search query string false "Substring of the title, case insensitive"
// @Param city query string false "Beginning of the city, case insensitive"
// @Param department query string false "Department code, e.g. 75 or 2A"
// @Param remote query string false "full, partial, none or not_specified"
// @Param contract_type query string false "CDI, CDD, stage, alternance or freelance"
// @Param source query string false "FranceTravail, Adzuna, ..."
// @Param include_inactive query boolean false "Also list inactive jobs"
// @Param desc query boolean false "Newest first if true"
// @Param limit query integer false "Page size, default 50, at most 100"
// @Param offset query integer false "Rows to skip"
// @Success 200 {object} JobsResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid query"
// @Failure 404 {object} utilities.ErrorResponse "Jobs not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [get]
func (jc *JobController) GetJobs(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	jobs, err := jc.Jobs.FindAll(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch jobs: ", err.Error()),
		})
		return
	}

	if len(jobs) == 0 {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Jobs not found"})
		return
	}

	c.JSON(http.StatusOK, JobsResponse{Jobs: jobs})
}

// GetJobByID returns a job with its technologies.
// @Summary Get job by ID
// @Tags Job
// @Produce json
// @Param id path integer true "ID of desired job"
// @Success 200 {object} JobResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [get]
func (jc *JobController) GetJobByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid job id"})
		return
	}

	job, err := jc.Jobs.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, JobResponse{Job: *job})
}
