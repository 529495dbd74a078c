package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/norvalex/pizza-form/models"
	"github.com/norvalex/pizza-form/services"
)

// PersonController handles HTTP requests for person operations.
type PersonController struct {
	personService services.PersonService
}

// NewPersonController creates a PersonController.
func NewPersonController(personService services.PersonService) *PersonController {
	return &PersonController{personService: personService}
}

// ListPersons handles GET /api/persons.
func (pc *PersonController) ListPersons(c *gin.Context) {
	persons, svcErr := pc.personService.ListPersons(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, persons)
}

// GetPerson handles GET /api/persons/:id.
func (pc *PersonController) GetPerson(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	person, svcErr := pc.personService.GetPerson(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, person)
}

// CreatePerson handles POST /api/persons (authenticated).
func (pc *PersonController) CreatePerson(c *gin.Context) {
	var req models.PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	person, svcErr := pc.personService.CreatePerson(c.Request.Context(), &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, person)
}

// UpdatePerson handles PUT /api/persons/:id (authenticated).
func (pc *PersonController) UpdatePerson(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	person, svcErr := pc.personService.UpdatePerson(c.Request.Context(), id, &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, person)
}

// DeletePerson handles DELETE /api/persons/:id (admin only).
func (pc *PersonController) DeletePerson(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	person, svcErr := pc.personService.DeletePerson(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, person)
}
