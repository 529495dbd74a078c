package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/norvalex/pizza-form/controllers"
	"github.com/norvalex/pizza-form/middleware"
)

// Controllers bundles everything RegisterRoutes needs to wire up.
type Controllers struct {
	Locations *controllers.LocationController
	Terms     *controllers.TermController
	Persons   *controllers.PersonController
	Orders    *controllers.OrderController
	Tenants   *controllers.TenantController
	Auth      *controllers.AuthController
}

// RegisterRoutes wires every resource under /api. Reads are open,
// writes require a token and deletes additionally require admin.
func RegisterRoutes(r *gin.Engine, c Controllers, jwtSecret string) {
	auth := middleware.Authenticate(jwtSecret)
	admin := middleware.AdminOnly()

	locations := r.Group("/api/locations")
	{
		locations.GET("", c.Locations.ListLocations)
		locations.GET("/:id", c.Locations.GetLocation)
		locations.POST("", auth, c.Locations.CreateLocation)
		locations.PUT("/:id", auth, c.Locations.UpdateLocation)
		locations.DELETE("/:id", auth, admin, c.Locations.DeleteLocation)
	}

	terms := r.Group("/api/terms")
	{
		terms.GET("", c.Terms.ListTerms)
		terms.GET("/:id", c.Terms.GetTerm)
		terms.POST("", auth, c.Terms.CreateTerm)
		terms.PUT("/:id", auth, c.Terms.UpdateTerm)
		terms.DELETE("/:id", auth, admin, c.Terms.DeleteTerm)
	}

	persons := r.Group("/api/persons")
	{
		persons.GET("", c.Persons.ListPersons)
		persons.GET("/:id", c.Persons.GetPerson)
		persons.POST("", auth, c.Persons.CreatePerson)
		persons.PUT("/:id", auth, c.Persons.UpdatePerson)
		persons.DELETE("/:id", auth, admin, c.Persons.DeletePerson)
	}

	orders := r.Group("/api/orders")
	{
		orders.GET("", c.Orders.ListOrders)
		orders.GET("/:id", c.Orders.GetOrder)
		orders.POST("", auth, c.Orders.CreateOrder)
		orders.PUT("/:id", auth, c.Orders.UpdateOrder)
		orders.DELETE("/:id", auth, admin, c.Orders.DeleteOrder)
	}

	// TODO: gate tenant writes once tenant accounts get their own roles.
	tenants := r.Group("/api/tenants")
	{
		tenants.GET("", c.Tenants.ListTenants)
		tenants.GET("/:id", c.Tenants.GetTenant)
		tenants.POST("", c.Tenants.CreateTenant)
		tenants.PUT("/:id", c.Tenants.UpdateTenant)
		tenants.DELETE("/:id", auth, admin, c.Tenants.DeleteTenant)
	}

	r.POST("/api/users", c.Auth.Register)
	r.POST("/api/auth", c.Auth.Login)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Pizza Form!!"})
	})
}
