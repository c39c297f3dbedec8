package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"userregistry/internal/models"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	zipPattern   = regexp.MustCompile(`^[a-zA-Z0-9]{5,6}$`)
)

const (
	MinNameLength    = 2
	MaxNameLength    = 50
	MaxAddressLength = 100
)

// Validate checks every field of a candidate record and returns one message per
// failing field. An empty map means the record is acceptable. now is the reference
// time for the age rule.
func Validate(req models.RegistrationRequest, now time.Time) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(req.FullName)
	if n := utf8.RuneCountInString(name); n < MinNameLength || n > MaxNameLength {
		errs["fullName"] = "Full Name is required (2-50 characters)."
	}

	if req.Email == "" || !emailPattern.MatchString(req.Email) {
		errs["email"] = "Valid Email is required."
	}

	if req.Phone == "" || !phonePattern.MatchString(req.Phone) {
		errs["phone"] = "Phone Number is required and must be 10 digits."
	}

	if strings.TrimSpace(req.DOB) == "" {
		errs["dob"] = "Date of Birth is required."
	} else if dob, err := models.ParseDate(req.DOB); err != nil {
		errs["dob"] = "Date of Birth must be a valid date."
	} else if !models.IsAdult(dob, now) {
		errs["dob"] = "User must be at least 18 years old."
	}

	if req.Gender == "" {
		errs["gender"] = "Gender is required."
	}

	// presence is checked on the raw value; only the length ignores surrounding blanks
	if req.Address1 == "" || utf8.RuneCountInString(strings.TrimSpace(req.Address1)) > MaxAddressLength {
		errs["address1"] = "Address Line 1 is required (max 100 characters)."
	}

	if req.Address2 != "" && utf8.RuneCountInString(req.Address2) > MaxAddressLength {
		errs["address2"] = "Address Line 2 max length is 100 characters."
	}

	if req.Country == "" {
		errs["country"] = "Country is required."
	}
	if req.State == "" {
		errs["state"] = "State/Province is required."
	}
	if req.City == "" {
		errs["city"] = "City is required."
	}

	if req.Zip == "" || !zipPattern.MatchString(req.Zip) {
		errs["zip"] = "Zip Code is required (5-6 alphanumeric characters)."
	}

	if req.Occupation == "" {
		errs["occupation"] = "Occupation is required."
	}

	if !req.Income.IsEmpty() {
		if value, _, err := req.Income.Float(); err != nil || value < 0 {
			errs["income"] = "Annual Income must be a positive number."
		}
	}

	if req.Signature == "" {
		errs["signature"] = "Signature is required."
	}

	return errs
}

// Valid reports whether Validate found nothing wrong.
func Valid(errs map[string]string) bool {
	return len(errs) == 0
}
