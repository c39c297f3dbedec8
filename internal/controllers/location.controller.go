package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"userregistry/internal/refdata"
)

// LocationController serves the country, state and city lists behind the form's
// cascading dropdowns.
type LocationController struct{}

func NewLocationController() *LocationController {
	return &LocationController{}
}

// GetCountries godoc
// @Summary List countries
// @Tags locations
// @Produce json
// @Success 200 {array} string
// @Router /api/locations/countries [get]
func (lc *LocationController) GetCountries(c *gin.Context) {
	c.JSON(http.StatusOK, refdata.Countries())
}

// GetStates godoc
// @Summary List the states of a country
// @Tags locations
// @Produce json
// @Param country path string true "Country"
// @Success 200 {array} string
// @Failure 404 {object} map[string]interface{} "Country not found"
// @Router /api/locations/countries/{country}/states [get]
func (lc *LocationController) GetStates(c *gin.Context) {
	states, ok := refdata.States(c.Param("country"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
		return
	}
	c.JSON(http.StatusOK, states)
}

// GetCities godoc
// @Summary List the cities of a state
// @Tags locations
// @Produce json
// @Param country path string true "Country"
// @Param state path string true "State"
// @Success 200 {array} string
// @Failure 404 {object} map[string]interface{} "State not found"
// @Router /api/locations/countries/{country}/states/{state}/cities [get]
func (lc *LocationController) GetCities(c *gin.Context) {
	cities, ok := refdata.Cities(c.Param("country"), c.Param("state"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "State not found"})
		return
	}
	c.JSON(http.StatusOK, cities)
}
