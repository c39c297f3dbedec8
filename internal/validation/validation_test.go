package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"userregistry/internal/models"
)

var now = time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)

func TestValidateAcceptsCompleteRecord(t *testing.T) {
	errs := Validate(models.SampleRequest(), now)
	assert.Empty(t, errs)
	assert.True(t, Valid(errs))
}

func TestValidateOptionalFields(t *testing.T) {
	req := models.SampleRequest()
	req.Address2 = ""
	req.Income = ""

	assert.Empty(t, Validate(req, now))
}

func TestValidateReportsEveryFailingField(t *testing.T) {
	errs := Validate(models.RegistrationRequest{}, now)

	for _, field := range []string{
		"fullName", "email", "phone", "dob", "gender", "address1",
		"country", "state", "city", "zip", "occupation", "signature",
	} {
		assert.Contains(t, errs, field)
	}
	assert.NotContains(t, errs, "address2")
	assert.NotContains(t, errs, "income")
	assert.False(t, Valid(errs))
}

func TestValidateFieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.RegistrationRequest)
		field   string
		wantErr bool
	}{
		{"name of one letter", func(r *models.RegistrationRequest) { r.FullName = " A " }, "fullName", true},
		{"name of two letters", func(r *models.RegistrationRequest) { r.FullName = "Al" }, "fullName", false},
		{"name of fifty one letters", func(r *models.RegistrationRequest) { r.FullName = strings.Repeat("a", 51) }, "fullName", true},
		{"email without tld", func(r *models.RegistrationRequest) { r.Email = "user@host" }, "email", true},
		{"email with space", func(r *models.RegistrationRequest) { r.Email = "us er@host.com" }, "email", true},
		{"phone of five digits", func(r *models.RegistrationRequest) { r.Phone = "12345" }, "phone", true},
		{"phone of ten digits", func(r *models.RegistrationRequest) { r.Phone = "1234567890" }, "phone", false},
		{"phone of eleven digits", func(r *models.RegistrationRequest) { r.Phone = "12345678901" }, "phone", true},
		{"zip of four chars", func(r *models.RegistrationRequest) { r.Zip = "AB12" }, "zip", true},
		{"zip of five chars", func(r *models.RegistrationRequest) { r.Zip = "AB123" }, "zip", false},
		{"zip of six chars", func(r *models.RegistrationRequest) { r.Zip = "AB1234" }, "zip", false},
		{"zip with dash", func(r *models.RegistrationRequest) { r.Zip = "12-45" }, "zip", true},
		{"empty address1", func(r *models.RegistrationRequest) { r.Address1 = "" }, "address1", true},
		{"blank address1", func(r *models.RegistrationRequest) { r.Address1 = "   " }, "address1", false},
		{"long address1", func(r *models.RegistrationRequest) { r.Address1 = strings.Repeat("x", 101) }, "address1", true},
		{"address1 at limit", func(r *models.RegistrationRequest) { r.Address1 = strings.Repeat("x", 100) }, "address1", false},
		{"long address2", func(r *models.RegistrationRequest) { r.Address2 = strings.Repeat("x", 101) }, "address2", true},
		{"negative income", func(r *models.RegistrationRequest) { r.Income = "-5" }, "income", true},
		{"text income", func(r *models.RegistrationRequest) { r.Income = "lots" }, "income", true},
		{"zero income", func(r *models.RegistrationRequest) { r.Income = "0" }, "income", false},
		{"unparseable dob", func(r *models.RegistrationRequest) { r.DOB = "yesterday" }, "dob", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := models.SampleRequest()
			tt.mutate(&req)

			errs := Validate(req, now)
			if tt.wantErr {
				assert.Contains(t, errs, tt.field)
			} else {
				assert.NotContains(t, errs, tt.field)
			}
		})
	}
}

func TestValidateAgeBoundary(t *testing.T) {
	exactly18 := now.AddDate(-18, 0, 0).Format("2006-01-02")
	oneDayShort := now.AddDate(-18, 0, 1).Format("2006-01-02")

	req := models.SampleRequest()
	req.DOB = exactly18
	assert.NotContains(t, Validate(req, now), "dob")

	req.DOB = oneDayShort
	errs := Validate(req, now)
	assert.Equal(t, "User must be at least 18 years old.", errs["dob"])
}

func TestValidateDoesNotCheckLocationConsistency(t *testing.T) {
	req := models.SampleRequest()
	req.State = "Texas"
	req.City = "Toronto"

	assert.Empty(t, Validate(req, now))
}
