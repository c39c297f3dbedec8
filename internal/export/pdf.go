package export

import (
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"userregistry/internal/models"
)

// Layout of the registered-users report, in millimetres on portrait A4.
const (
	TitleText     = "Registered Users"
	TitleX        = 14.0
	TitleY        = 22.0
	TitleFontSize = 18.0
	BodyFontSize  = 11.0
	ColumnX       = 14.0
	ColumnWidth   = 25.0
	HeaderY       = 30.0
	RowHeight     = 10.0
	BottomMargin  = 280.0
	PageTopY      = 20.0
)

// Columns are the report headers, in order.
var Columns = []string{"Full Name", "Age", "Email", "Phone", "Country", "State", "City", "Occupation"}

// Row returns the report cells for one registration.
func Row(r models.Registration) []string {
	age := ""
	if r.PredictedAge != nil {
		age = strconv.Itoa(*r.PredictedAge)
	}
	return []string{r.FullName, age, r.Email, r.Phone, r.Country, r.State, r.City, r.Occupation}
}

// BuildPDF lays the registrations out as a positional text table: fixed column
// offsets, fixed row height, and a new page once the cursor passes BottomMargin.
func BuildPDF(registrations []models.Registration) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "", TitleFontSize)
	pdf.Text(TitleX, TitleY, TitleText)

	pdf.SetFont("Helvetica", "", BodyFontSize)
	pdf.SetTextColor(100, 100, 100)

	y := HeaderY
	for i, header := range Columns {
		pdf.Text(columnX(i), y, header)
	}
	y += RowHeight

	for _, r := range registrations {
		for i, text := range Row(r) {
			pdf.Text(columnX(i), y, tr(text))
		}
		y += RowHeight

		if y > BottomMargin {
			pdf.AddPage()
			y = PageTopY
		}
	}

	return pdf
}

// WritePDF renders the report to w.
func WritePDF(w io.Writer, registrations []models.Registration) error {
	return BuildPDF(registrations).Output(w)
}

func columnX(i int) float64 {
	return ColumnX + float64(i)*ColumnWidth
}
