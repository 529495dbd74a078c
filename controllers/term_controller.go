package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/norvalex/pizza-form/models"
	"github.com/norvalex/pizza-form/services"
)

// TermController handles HTTP requests for term operations.
type TermController struct {
	termService services.TermService
}

// NewTermController creates a TermController.
func NewTermController(termService services.TermService) *TermController {
	return &TermController{termService: termService}
}

// ListTerms handles GET /api/terms.
func (tc *TermController) ListTerms(c *gin.Context) {
	terms, svcErr := tc.termService.ListTerms(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, terms)
}

// GetTerm handles GET /api/terms/:id.
func (tc *TermController) GetTerm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	term, svcErr := tc.termService.GetTerm(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, term)
}

// CreateTerm handles POST /api/terms (authenticated).
func (tc *TermController) CreateTerm(c *gin.Context) {
	var req models.TermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	term, svcErr := tc.termService.CreateTerm(c.Request.Context(), &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, term)
}

// UpdateTerm handles PUT /api/terms/:id (authenticated).
func (tc *TermController) UpdateTerm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.TermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	term, svcErr := tc.termService.UpdateTerm(c.Request.Context(), id, &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, term)
}

// DeleteTerm handles DELETE /api/terms/:id (admin only).
func (tc *TermController) DeleteTerm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	term, svcErr := tc.termService.DeleteTerm(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, term)
}
