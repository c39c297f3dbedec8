package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayouts lists the accepted date-of-birth encodings: the HTML date input value
// first, then full timestamps.
var DateLayouts = []string{"2006-01-02", time.RFC3339, time.RFC3339Nano}

// RegistrationRequest is the candidate record exactly as the form posts it. Any
// predictedAge sent by the client is not bound; the server computes its own.
type RegistrationRequest struct {
	FullName   string       `json:"fullName"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	DOB        string       `json:"dob"`
	Gender     string       `json:"gender"`
	Address1   string       `json:"address1"`
	Address2   string       `json:"address2"`
	Country    string       `json:"country"`
	State      string       `json:"state"`
	City       string       `json:"city"`
	Zip        string       `json:"zip"`
	Occupation string       `json:"occupation"`
	Income     NumericInput `json:"income"`
	Signature  string       `json:"signature"`
}

// NumericInput holds a form number that may arrive as a JSON number, a numeric
// string, an empty string or null. The raw text is kept for validation.
type NumericInput string

func (n *NumericInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*n = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericInput(s)
	default:
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return fmt.Errorf("income must be a number: %w", err)
		}
		*n = NumericInput(num.String())
	}
	return nil
}

func (n NumericInput) MarshalJSON() ([]byte, error) {
	if n.IsEmpty() {
		return []byte("null"), nil
	}
	if value, ok, err := n.Float(); err == nil && ok {
		return []byte(strconv.FormatFloat(value, 'f', -1, 64)), nil
	}
	return json.Marshal(string(n))
}

func (n NumericInput) IsEmpty() bool {
	return strings.TrimSpace(string(n)) == ""
}

// Float parses the value; ok is false for empty input.
func (n NumericInput) Float() (value float64, ok bool, err error) {
	if n.IsEmpty() {
		return 0, false, nil
	}
	value, err = strconv.ParseFloat(strings.TrimSpace(string(n)), 64)
	if err != nil {
		return 0, false, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false, fmt.Errorf("%q is not a finite number", string(n))
	}
	return value, true, nil
}

// ParseDate parses a date of birth in any of DateLayouts and returns midnight UTC
// of that calendar day.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range DateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// ToRegistration converts the candidate into the record to persist. The predicted
// age is supplied by the caller and replaces anything the client computed.
func (req RegistrationRequest) ToRegistration(predictedAge *int) (*Registration, error) {
	dob, err := ParseDate(req.DOB)
	if err != nil {
		return nil, err
	}

	var income *float64
	value, ok, err := req.Income.Float()
	if err != nil {
		return nil, fmt.Errorf("invalid income: %w", err)
	}
	if ok {
		income = &value
	}

	return &Registration{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		DOB:          dob,
		Gender:       req.Gender,
		PredictedAge: predictedAge,
		Address1:     req.Address1,
		Address2:     req.Address2,
		Country:      req.Country,
		State:        req.State,
		City:         req.City,
		Zip:          req.Zip,
		Occupation:   req.Occupation,
		Income:       income,
		Signature:    req.Signature,
	}, nil
}
