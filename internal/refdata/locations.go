package refdata

import (
	"github.com/biter777/countries"
)

// Country is one top-level entry of the location table.
type Country struct {
	Name   string
	Code   countries.CountryCode
	States []State
}

// State holds the cities offered for one state or province.
type State struct {
	Name   string
	Cities []string
}

// Table is ordered the way the registration form lists it.
var Table = []Country{
	{
		Name: "USA",
		Code: countries.UnitedStatesOfAmerica,
		States: []State{
			{Name: "California", Cities: []string{"Los Angeles", "San Francisco", "San Diego"}},
			{Name: "Texas", Cities: []string{"Houston", "Austin", "Dallas"}},
			{Name: "New York", Cities: []string{"New York City", "Buffalo", "Rochester"}},
		},
	},
	{
		Name: "India",
		Code: countries.India,
		States: []State{
			{Name: "Maharashtra", Cities: []string{"Mumbai", "Pune", "Nagpur"}},
			{Name: "Karnataka", Cities: []string{"Bangalore", "Mysore", "Mangalore"}},
			{Name: "Delhi", Cities: []string{"New Delhi", "Noida", "Gurgaon"}},
		},
	},
	{
		Name: "Canada",
		Code: countries.Canada,
		States: []State{
			{Name: "Ontario", Cities: []string{"Toronto", "Ottawa", "Hamilton"}},
			{Name: "Quebec", Cities: []string{"Montreal", "Quebec City", "Laval"}},
			{Name: "British Columbia", Cities: []string{"Vancouver", "Victoria", "Kelowna"}},
		},
	},
}

// Countries returns the country names in table order.
func Countries() []string {
	names := make([]string, 0, len(Table))
	for _, c := range Table {
		names = append(names, c.Name)
	}
	return names
}

// LookupCountry finds a country entry by its exact name.
func LookupCountry(name string) (Country, bool) {
	for _, c := range Table {
		if c.Name == name {
			return c, true
		}
	}
	return Country{}, false
}

// States returns the states of a country, or false when the country is unknown.
func States(country string) ([]string, bool) {
	c, ok := LookupCountry(country)
	if !ok {
		return nil, false
	}
	names := make([]string, 0, len(c.States))
	for _, s := range c.States {
		names = append(names, s.Name)
	}
	return names, true
}

// Cities returns the cities of a (country, state) pair, or false when either key is unknown.
func Cities(country, state string) ([]string, bool) {
	c, ok := LookupCountry(country)
	if !ok {
		return nil, false
	}
	for _, s := range c.States {
		if s.Name == state {
			return append([]string(nil), s.Cities...), true
		}
	}
	return nil, false
}

// IsValidState reports whether state belongs to country.
func IsValidState(country, state string) bool {
	_, ok := Cities(country, state)
	return ok
}

// IsValidCity reports whether city belongs to the (country, state) pair.
func IsValidCity(country, state, city string) bool {
	cities, ok := Cities(country, state)
	if !ok {
		return false
	}
	for _, c := range cities {
		if c == city {
			return true
		}
	}
	return false
}

// RegionCode returns the ISO 3166-1 alpha-2 code for a table country, used as the
// default region when parsing national phone numbers.
func RegionCode(country string) string {
	c, ok := LookupCountry(country)
	if !ok {
		return ""
	}
	return c.Code.Alpha2()
}
