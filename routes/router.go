package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"userregistry/internal/controllers"
	"userregistry/internal/middleware"
)

// Handlers bundles everything the HTTP surface serves.
type Handlers struct {
	Registrations *controllers.RegistrationController
	Exports       *controllers.ExportController
	Locations     *controllers.LocationController
	Age           *controllers.AgeController
	Gatherer      prometheus.Gatherer
	CORSOrigins   []string
}

// NewRouter wires middleware and every route group onto a fresh engine.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(middleware.CORS(h.CORSOrigins))
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(middleware.LoggerConfig{SkipPath: []string{"/metrics"}}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "User registry API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	RegisterRegistrationRoutes(router, h.Registrations, h.Exports)
	RegisterLocationRoutes(router, h.Locations)
	RegisterAgeRoutes(router, h.Age)
	RegisterSwaggerRoutes(router)
	if h.Gatherer != nil {
		RegisterMetricsRoutes(router, h.Gatherer)
	}

	return router
}
