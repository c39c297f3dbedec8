package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"userregistry/internal/agify"
)

// AgeController previews the age prediction while the form is being filled in.
type AgeController struct {
	predictor agify.Predictor
}

func NewAgeController(predictor agify.Predictor) *AgeController {
	return &AgeController{predictor: predictor}
}

// PredictAge godoc
// @Summary Predict an age from a name
// @Description predictedAge is null when the name is too short or no prediction exists
// @Tags age
// @Produce json
// @Param name query string true "First name"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "name is required"
// @Router /api/age [get]
func (ac *AgeController) PredictAge(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	var predictedAge *int
	if agify.PreviewEligible(name) {
		predictedAge = ac.predictor.PredictAge(c.Request.Context(), agify.FirstName(name))
	}

	c.JSON(http.StatusOK, gin.H{
		"name":         name,
		"predictedAge": predictedAge,
	})
}
