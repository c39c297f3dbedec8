package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/nyaruka/phonenumbers"

	"userregistry/internal/models"
	"userregistry/internal/refdata"
)

// CSVColumns are the header cells of the CSV export.
var CSVColumns = []string{
	"ID", "Full Name", "Email", "Phone", "Phone (E.164)", "Date of Birth", "Gender", "Predicted Age",
	"Address Line 1", "Address Line 2", "Country", "State", "City", "Zip", "Occupation", "Income", "Created At",
}

// WriteCSV writes one row per registration after a header row. Signatures are
// left out.
func WriteCSV(w io.Writer, registrations []models.Registration) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(CSVColumns); err != nil {
		return err
	}
	for _, r := range registrations {
		if err := writer.Write(csvRow(r)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func csvRow(r models.Registration) []string {
	predictedAge := ""
	if r.PredictedAge != nil {
		predictedAge = strconv.Itoa(*r.PredictedAge)
	}
	income := ""
	if r.Income != nil {
		income = strconv.FormatFloat(*r.Income, 'f', -1, 64)
	}

	return []string{
		strconv.FormatUint(uint64(r.ID), 10),
		r.FullName,
		r.Email,
		r.Phone,
		E164(r.Phone, r.Country),
		r.DOB.Format("2006-01-02"),
		r.Gender,
		predictedAge,
		r.Address1,
		r.Address2,
		r.Country,
		r.State,
		r.City,
		r.Zip,
		r.Occupation,
		income,
		r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// E164 formats a national phone number for the registration's country. It returns
// an empty string when the number is not valid there.
func E164(phone, country string) string {
	region := refdata.RegionCode(country)
	if region == "" {
		return ""
	}
	num, err := phonenumbers.Parse(phone, region)
	if err != nil || !phonenumbers.IsValidNumberForRegion(num, region) {
		return ""
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
