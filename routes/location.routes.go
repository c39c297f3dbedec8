package routes

import (
	"github.com/gin-gonic/gin"

	"userregistry/internal/controllers"
)

func RegisterLocationRoutes(router *gin.Engine, locationController *controllers.LocationController) {
	locationRoutes := router.Group("/api/locations")
	{
		locationRoutes.GET("/countries", locationController.GetCountries)
		locationRoutes.GET("/countries/:country/states", locationController.GetStates)
		locationRoutes.GET("/countries/:country/states/:state/cities", locationController.GetCities)
	}
}
