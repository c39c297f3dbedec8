package models

// SampleRequest returns a candidate record that passes every rule, for use in tests
// and the seed command.
func SampleRequest() RegistrationRequest {
	return RegistrationRequest{
		FullName:   "Asha Verma",
		Email:      "asha.verma@example.com",
		Phone:      "9876543210",
		DOB:        "1995-04-12",
		Gender:     "Female",
		Address1:   "12 MG Road",
		Address2:   "Near Metro",
		Country:    "India",
		State:      "Karnataka",
		City:       "Bangalore",
		Zip:        "560001",
		Occupation: "Engineer",
		Income:     "55000",
		Signature:  "data:image/png;base64,iVBORw0KGgo=",
	}
}
