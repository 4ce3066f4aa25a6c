package location

import (
	"context"

	"googlemaps.github.io/maps"
)

// GeolocationProvider resolves a coarse position through the Google Maps
// Geolocation API, considering the caller's IP. It is the network step of the
// resolution chain when no device fix is available.
type GeolocationProvider struct {
	client *maps.Client
}

// NewGeolocationProvider creates a provider backed by the Maps API.
func NewGeolocationProvider(apiKey string) (*GeolocationProvider, error) {
	c, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &GeolocationProvider{client: c}, nil
}

// Name implements Provider.
func (g *GeolocationProvider) Name() string { return SourceGeoAPI }

// GetLocation requests an IP-based geolocation fix.
func (g *GeolocationProvider) GetLocation(ctx context.Context) (Location, error) {
	resp, err := g.client.Geolocate(ctx, &maps.GeolocationRequest{
		ConsiderIP: true,
	})
	if err != nil {
		return Location{}, err
	}

	return Location{
		Latitude:  resp.Location.Lat,
		Longitude: resp.Location.Lng,
		Accuracy:  resp.Accuracy,
		Source:    SourceGeoAPI,
	}, nil
}
