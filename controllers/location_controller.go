package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/norvalex/pizza-form/models"
	"github.com/norvalex/pizza-form/services"
)

// LocationController handles HTTP requests for location operations.
type LocationController struct {
	locationService services.LocationService
}

// NewLocationController creates a LocationController.
func NewLocationController(locationService services.LocationService) *LocationController {
	return &LocationController{locationService: locationService}
}

// ListLocations handles GET /api/locations.
func (lc *LocationController) ListLocations(c *gin.Context) {
	locations, svcErr := lc.locationService.ListLocations(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, locations)
}

// GetLocation handles GET /api/locations/:id.
func (lc *LocationController) GetLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	location, svcErr := lc.locationService.GetLocation(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, location)
}

// CreateLocation handles POST /api/locations (authenticated).
func (lc *LocationController) CreateLocation(c *gin.Context) {
	var req models.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	location, svcErr := lc.locationService.CreateLocation(c.Request.Context(), &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, location)
}

// UpdateLocation handles PUT /api/locations/:id (authenticated).
func (lc *LocationController) UpdateLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	location, svcErr := lc.locationService.UpdateLocation(c.Request.Context(), id, &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, location)
}

// DeleteLocation handles DELETE /api/locations/:id (admin only).
func (lc *LocationController) DeleteLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	location, svcErr := lc.locationService.DeleteLocation(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, location)
}
