package location

// Location is a resolved geographic position. City and Country may be blank
// when the source only yields coordinates (e.g. a raw GPS fix).
type Location struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64 // meters, 0 when unknown
	City      string
	Country   string
	Source    string // name of the provider that produced the fix
}

// Candidate is one result of a manual city/country search.
type Candidate struct {
	City      string
	Country   string
	Latitude  float64
	Longitude float64
}

// Loc converts a search candidate into a Location.
func (c Candidate) Loc() Location {
	return Location{
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		City:      c.City,
		Country:   c.Country,
		Source:    SourceManual,
	}
}

// Provider source names, recorded on resolved locations.
const (
	SourceManual = "manual"
	SourceGPS    = "gps"
	SourceGeoAPI = "geolocation-api"
	SourceIPAPI  = "ip-api"
	SourceStatic = "static"
)
