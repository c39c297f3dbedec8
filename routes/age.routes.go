package routes

import (
	"github.com/gin-gonic/gin"

	"userregistry/internal/controllers"
)

func RegisterAgeRoutes(router *gin.Engine, ageController *controllers.AgeController) {
	router.GET("/api/age", ageController.PredictAge)
}
