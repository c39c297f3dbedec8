package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userregistry/internal/models"
)

func registrations(n int) []models.Registration {
	out := make([]models.Registration, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Registration{
			ID:         uint(i + 1),
			FullName:   fmt.Sprintf("User %d", i),
			Email:      fmt.Sprintf("user%d@example.com", i),
			Phone:      "9876543210",
			DOB:        time.Date(1990, time.January, 2, 0, 0, 0, 0, time.UTC),
			Gender:     "Other",
			Address1:   "1 Main St",
			Country:    "India",
			State:      "Delhi",
			City:       "Noida",
			Zip:        "201301",
			Occupation: "Student",
			Signature:  "data:image/png;base64,AAAA",
			CreatedAt:  time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC),
		})
	}
	return out
}

func TestRow(t *testing.T) {
	age := 27
	r := registrations(1)[0]
	assert.Equal(t, []string{"User 0", "", "user0@example.com", "9876543210", "India", "Delhi", "Noida", "Student"}, Row(r))

	r.PredictedAge = &age
	assert.Equal(t, "27", Row(r)[1])
	assert.Len(t, Row(r), len(Columns))
}

func TestBuildPDFPagination(t *testing.T) {
	tests := []struct {
		rows  int
		pages int
	}{
		{0, 1},
		{24, 1},
		{25, 2},
		{51, 2},
		{52, 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d rows", tt.rows), func(t *testing.T) {
			pdf := BuildPDF(registrations(tt.rows))
			require.NoError(t, pdf.Error())
			assert.Equal(t, tt.pages, pdf.PageCount())
		})
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, registrations(3)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWriteCSV(t *testing.T) {
	income := 1250.5
	regs := registrations(2)
	regs[0].Income = &income

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, regs))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, CSVColumns, records[0])

	first := records[1]
	assert.Equal(t, "1", first[0])
	assert.Equal(t, "+919876543210", first[4])
	assert.Equal(t, "1990-01-02", first[5])
	assert.Equal(t, "", first[7])
	assert.Equal(t, "1250.5", first[15])
	assert.Equal(t, "2024-05-01T08:00:00Z", first[16])
	assert.Equal(t, "", records[2][15])
}

func TestE164(t *testing.T) {
	assert.Equal(t, "+919876543210", E164("9876543210", "India"))
	assert.Equal(t, "", E164("12345", "India"))
	assert.Equal(t, "", E164("9876543210", "Narnia"))
}
