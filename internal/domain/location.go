package domain

const (
	// Country shown when the reverse geocoder has no country for a fix.
	OceanCountry = "Ocean"
	// City used when no city-like field could be resolved.
	UnknownCity = "Unknown City"
)

// Address fields returned by a reverse geocoder. Missing fields are empty.
type Address struct {
	Country string `json:"country"`
	City    string `json:"city"`
	Suburb  string `json:"suburb"`
	State   string `json:"state"`
}

// Human readable place under the ISS.
type LocationLabel struct {
	Country string
	City    string
}

// Over open water there is no city line to show.
func (l LocationLabel) IsOcean() bool { return l.Country == OceanCountry }
