package location

import (
	"context"

	"googlemaps.github.io/maps"
)

// GeocodeSearcher implements manual city search through the Google Maps
// Geocoding API.
type GeocodeSearcher struct {
	client *maps.Client
}

// NewGeocodeSearcher creates a searcher backed by the Maps API.
func NewGeocodeSearcher(apiKey string) (*GeocodeSearcher, error) {
	c, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &GeocodeSearcher{client: c}, nil
}

// Search geocodes a free-form query into candidate locations. City and
// country names are pulled from the address components when present.
func (s *GeocodeSearcher) Search(ctx context.Context, query string) ([]Candidate, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(results))
	for _, res := range results {
		c := Candidate{
			Latitude:  res.Geometry.Location.Lat,
			Longitude: res.Geometry.Location.Lng,
		}
		for _, comp := range res.AddressComponents {
			for _, t := range comp.Types {
				switch t {
				case "locality":
					c.City = comp.LongName
				case "country":
					c.Country = comp.LongName
				}
			}
		}
		candidates = append(candidates, c)
	}

	return candidates, nil
}
