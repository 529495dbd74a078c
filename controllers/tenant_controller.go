package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/norvalex/pizza-form/models"
	"github.com/norvalex/pizza-form/services"
)

// TenantController handles HTTP requests for tenant operations.
type TenantController struct {
	tenantService services.TenantService
}

// NewTenantController creates a TenantController.
func NewTenantController(tenantService services.TenantService) *TenantController {
	return &TenantController{tenantService: tenantService}
}

// ListTenants handles GET /api/tenants.
func (tc *TenantController) ListTenants(c *gin.Context) {
	tenants, svcErr := tc.tenantService.ListTenants(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, tenants)
}

// GetTenant handles GET /api/tenants/:id.
func (tc *TenantController) GetTenant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	tenant, svcErr := tc.tenantService.GetTenant(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// CreateTenant handles POST /api/tenants (authenticated).
func (tc *TenantController) CreateTenant(c *gin.Context) {
	var req models.TenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	tenant, svcErr := tc.tenantService.CreateTenant(c.Request.Context(), &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// UpdateTenant handles PUT /api/tenants/:id (authenticated).
func (tc *TenantController) UpdateTenant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.TenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	tenant, svcErr := tc.tenantService.UpdateTenant(c.Request.Context(), id, &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// DeleteTenant handles DELETE /api/tenants/:id (admin only).
func (tc *TenantController) DeleteTenant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	tenant, svcErr := tc.tenantService.DeleteTenant(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, tenant)
}
