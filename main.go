package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/norvalex/pizza-form/controllers"
	"github.com/norvalex/pizza-form/database"
	"github.com/norvalex/pizza-form/middleware"
	"github.com/norvalex/pizza-form/repository"
	"github.com/norvalex/pizza-form/routes"
	"github.com/norvalex/pizza-form/services"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		zap.L().Fatal("Failed to load configuration", zap.Error(err))
	}

	client, db, err := database.Connect(cfg.MongoURL, cfg.DBName)
	if err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	zap.L().Info("Connected to MongoDB", zap.String("database", cfg.DBName))

	// Repositories
	locationRepo := repository.NewMongoLocationRepository(db)
	termRepo := repository.NewMongoTermRepository(db)
	personRepo := repository.NewMongoPersonRepository(db)
	orderRepo := repository.NewMongoOrderRepository(db)
	tenantRepo := repository.NewMongoTenantRepository(db)
	userRepo := repository.NewMongoUserRepository(db)

	// Services
	locationService := services.NewLocationService(locationRepo, logger)
	termService := services.NewTermService(termRepo, locationRepo, logger)
	personService := services.NewPersonService(personRepo, logger)
	orderService := services.NewOrderService(orderRepo, termRepo, personRepo, logger)
	tenantService := services.NewTenantService(tenantRepo, logger)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, logger)

	// Controllers
	ctrls := routes.Controllers{
		Locations: controllers.NewLocationController(locationService),
		Terms:     controllers.NewTermController(termService),
		Persons:   controllers.NewPersonController(personService),
		Orders:    controllers.NewOrderController(orderService),
		Tenants:   controllers.NewTenantController(tenantService),
		Auth:      controllers.NewAuthController(authService),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.Default())

	// Per-request timeout; store trouble past this point fails the
	// request, nothing retries.
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.RegisterRoutes(r, ctrls, cfg.JWTSecret)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Pizza form service starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := database.Close(client); err != nil {
		zap.L().Error("Failed to disconnect from MongoDB", zap.Error(err))
	}

	zap.L().Info("Stopped gracefully")
}
