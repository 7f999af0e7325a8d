// Package technology provides HTTP handlers for the technology catalog.
package technology

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/database"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/model"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/utilities"
)

// TechnologyController handles technology related endpoints
type TechnologyController struct {
	DB *database.DBinstanceStruct
}

// NewTechnologyController creates a new instance of TechnologyController
func NewTechnologyController(db *database.DBinstanceStruct) *TechnologyController {
	return &TechnologyController{
		DB: db,
	}
}

// GetTechnologies returns every technology, filtered by category if given.
// @Summary List technologies
// @Tags Technology
// @Produce json
// @Param category query string false "frontend, backend, database, devops or other"
// @Success 200 {array} model.Technology
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /technologies [get]
func (tc *TechnologyController) GetTechnologies(c *gin.Context) {
	technologies := []model.Technology{}

	query := tc.DB.WithContext(c.Request.Context()).Order("name")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Find(&technologies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch technologies: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, technologies)
}
