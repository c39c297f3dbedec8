package form

import (
	"strings"
	"time"

	"userregistry/internal/agify"
	"userregistry/internal/models"
	"userregistry/internal/refdata"
	"userregistry/internal/validation"
)

// Field names match the JSON keys of models.RegistrationRequest.
const (
	FieldFullName   = "fullName"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldDOB        = "dob"
	FieldGender     = "gender"
	FieldAddress1   = "address1"
	FieldAddress2   = "address2"
	FieldCountry    = "country"
	FieldState      = "state"
	FieldCity       = "city"
	FieldZip        = "zip"
	FieldOccupation = "occupation"
	FieldIncome     = "income"
	FieldSignature  = "signature"
)

// SubmitErrorKey holds a form-level error that is not tied to one field.
const SubmitErrorKey = "submit"

// State is one snapshot of the registration form. Reduce never mutates its input.
type State struct {
	Values       models.RegistrationRequest
	Errors       map[string]string
	PredictedAge *int
	Submitting   bool
	Submitted    bool
	StateOptions []string
	CityOptions  []string
}

// Initial returns an empty form.
func Initial() State {
	return State{Errors: map[string]string{}}
}

// FromRequest fills an empty form from a complete candidate record, in the order
// a user would: country before state before city.
func FromRequest(req models.RegistrationRequest) State {
	s := Initial()
	for _, field := range []struct{ name, value string }{
		{FieldFullName, req.FullName},
		{FieldEmail, req.Email},
		{FieldPhone, req.Phone},
		{FieldDOB, req.DOB},
		{FieldGender, req.Gender},
		{FieldAddress1, req.Address1},
		{FieldAddress2, req.Address2},
		{FieldCountry, req.Country},
		{FieldState, req.State},
		{FieldCity, req.City},
		{FieldZip, req.Zip},
		{FieldOccupation, req.Occupation},
		{FieldIncome, string(req.Income)},
		{FieldSignature, req.Signature},
	} {
		s = Reduce(s, SetField{Field: field.name, Value: field.value})
	}
	return s
}

// CountryOptions lists the countries offered by the form.
func CountryOptions() []string {
	return refdata.Countries()
}

// Action is a single update applied by Reduce.
type Action interface {
	isAction()
}

// SetField changes one input value.
type SetField struct {
	Field string
	Value string
}

// Validate runs the field rules against the current values.
type Validate struct {
	Now time.Time
}

// AgePredicted delivers the result of an age lookup for Name.
type AgePredicted struct {
	Name string
	Age  *int
}

// SubmitStarted marks the form as in flight.
type SubmitStarted struct{}

// SubmitFinished ends a submission. A nil Err resets the form.
type SubmitFinished struct {
	Fields map[string]string
	Err    error
}

func (SetField) isAction()       {}
func (Validate) isAction()       {}
func (AgePredicted) isAction()   {}
func (SubmitStarted) isAction()  {}
func (SubmitFinished) isAction() {}

// Reduce returns the state that results from applying action to s.
func Reduce(s State, action Action) State {
	next := s.clone()

	switch a := action.(type) {
	case SetField:
		if !next.set(a.Field, a.Value) {
			return s
		}
		delete(next.Errors, a.Field)
		delete(next.Errors, SubmitErrorKey)
		next.Submitted = false

	case Validate:
		next.Errors = validation.Validate(next.Values, a.Now)

	case AgePredicted:
		name, ok := PredictionName(next)
		if !ok || !strings.EqualFold(name, a.Name) {
			return s
		}
		next.PredictedAge = a.Age

	case SubmitStarted:
		next.Submitting = true
		next.Submitted = false

	case SubmitFinished:
		if a.Err == nil {
			reset := Initial()
			reset.Submitted = true
			return reset
		}
		next.Submitting = false
		next.Errors = map[string]string{}
		for k, v := range a.Fields {
			next.Errors[k] = v
		}
		if len(a.Fields) == 0 {
			next.Errors[SubmitErrorKey] = a.Err.Error()
		}
	}

	return next
}

// CanSubmit reports whether a submission may start: nothing in flight and no
// outstanding field errors.
func CanSubmit(s State) bool {
	return !s.Submitting && validation.Valid(s.Errors)
}

// PredictionName returns the name an age lookup should use. ok is false while the
// full name is still too short to look up.
func PredictionName(s State) (string, bool) {
	name := agify.FirstName(s.Values.FullName)
	if !agify.PreviewEligible(s.Values.FullName) || name == "" {
		return "", false
	}
	return name, true
}

// set writes one value and applies the country/state cascades. It returns false
// for an unknown field.
func (s *State) set(field, value string) bool {
	v := &s.Values

	switch field {
	case FieldFullName:
		if v.FullName != value {
			s.PredictedAge = nil
		}
		v.FullName = value
	case FieldEmail:
		v.Email = value
	case FieldPhone:
		v.Phone = value
	case FieldDOB:
		v.DOB = value
	case FieldGender:
		v.Gender = value
	case FieldAddress1:
		v.Address1 = value
	case FieldAddress2:
		v.Address2 = value
	case FieldCountry:
		v.Country = value
		v.State = ""
		v.City = ""
		s.StateOptions, _ = refdata.States(value)
		s.CityOptions = nil
	case FieldState:
		v.State = value
		v.City = ""
		s.CityOptions, _ = refdata.Cities(v.Country, value)
	case FieldCity:
		v.City = value
	case FieldZip:
		v.Zip = value
	case FieldOccupation:
		v.Occupation = value
	case FieldIncome:
		v.Income = models.NumericInput(value)
	case FieldSignature:
		v.Signature = value
	default:
		return false
	}
	return true
}

func (s State) clone() State {
	out := s
	out.Errors = make(map[string]string, len(s.Errors))
	for k, v := range s.Errors {
		out.Errors[k] = v
	}
	out.StateOptions = append([]string(nil), s.StateOptions...)
	out.CityOptions = append([]string(nil), s.CityOptions...)
	if s.PredictedAge != nil {
		age := *s.PredictedAge
		out.PredictedAge = &age
	}
	return out
}
