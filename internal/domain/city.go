package domain

import (
	"fmt"
	"strings"
)

// City tags flight origin and destination. Its display form is the
// upper-case name, which is also what occupancy queries compare against.
type City string

const (
	CityDelhi      City = "DELHI"
	CityMumbai     City = "MUMBAI"
	CityKolkata    City = "KOLKATA"
	CityChennai    City = "CHENNAI"
	CityBangalore  City = "BANGALORE"
	CityHyderabad  City = "HYDERABAD"
	CityKanpur     City = "KANPUR"
	CityJaipur     City = "JAIPUR"
	CityChandigarh City = "CHANDIGARH"
)

var knownCities = map[City]struct{}{
	CityDelhi:      {},
	CityMumbai:     {},
	CityKolkata:    {},
	CityChennai:    {},
	CityBangalore:  {},
	CityHyderabad:  {},
	CityKanpur:     {},
	CityJaipur:     {},
	CityChandigarh: {},
}

func (c City) String() string {
	return string(c)
}

func (c City) Valid() bool {
	_, ok := knownCities[c]
	return ok
}

// ParseCity accepts any letter case.
func ParseCity(s string) (City, error) {
	c := City(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown city %q", s)
	}
	return c, nil
}
