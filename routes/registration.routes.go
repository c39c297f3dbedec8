package routes

import (
	"github.com/gin-gonic/gin"

	"userregistry/internal/controllers"
)

func RegisterRegistrationRoutes(router *gin.Engine, registrationController *controllers.RegistrationController, exportController *controllers.ExportController) {
	userRoutes := router.Group("/api/users")
	{
		userRoutes.POST("", registrationController.CreateRegistration)
		userRoutes.GET("", registrationController.ListRegistrations)
		userRoutes.GET("/export/pdf", exportController.ExportPDF)
		userRoutes.GET("/export/csv", exportController.ExportCSV)
	}
}
