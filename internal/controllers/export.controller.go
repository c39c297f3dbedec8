package controllers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"userregistry/internal/export"
	"userregistry/internal/middleware"
)

const (
	PDFFilename = "registered_users.pdf"
	CSVFilename = "registered_users.csv"
)

type ExportController struct {
	lister RegistrationLister
}

func NewExportController(lister RegistrationLister) *ExportController {
	return &ExportController{lister: lister}
}

// ExportPDF godoc
// @Summary Export registered users as PDF
// @Tags export
// @Produce application/pdf
// @Success 200 {file} file
// @Failure 500 {object} map[string]interface{} "Failed to export users"
// @Router /api/users/export/pdf [get]
func (ec *ExportController) ExportPDF(c *gin.Context) {
	registrations, err := ec.lister.ListAll(c.Request.Context())
	if err != nil {
		logger := middleware.GetLogger(c)
		logger.Error().Err(err).Msg("Failed to load registrations for PDF export")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	var buf bytes.Buffer
	if err := export.WritePDF(&buf, registrations); err != nil {
		logger := middleware.GetLogger(c)
		logger.Error().Err(err).Msg("Failed to render PDF export")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export users"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+PDFFilename+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// ExportCSV godoc
// @Summary Export registered users as CSV
// @Tags export
// @Produce text/csv
// @Success 200 {file} file
// @Failure 500 {object} map[string]interface{} "Failed to export users"
// @Router /api/users/export/csv [get]
func (ec *ExportController) ExportCSV(c *gin.Context) {
	registrations, err := ec.lister.ListAll(c.Request.Context())
	if err != nil {
		logger := middleware.GetLogger(c)
		logger.Error().Err(err).Msg("Failed to load registrations for CSV export")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, registrations); err != nil {
		logger := middleware.GetLogger(c)
		logger.Error().Err(err).Msg("Failed to render CSV export")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export users"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+CSVFilename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
