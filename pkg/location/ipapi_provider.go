package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultIPAPIEndpoint is the free ip-api.com JSON endpoint, which requires
// no API key and resolves to city level.
const DefaultIPAPIEndpoint = "http://ip-api.com/json/?fields=status,message,lat,lon,city,country"

// IPAPIProvider resolves a coarse, city-level position from the caller's
// public IP address via ip-api.com.
type IPAPIProvider struct {
	httpClient *http.Client

	// Endpoint is the lookup URL. Exported for testing with httptest.
	Endpoint string
}

type ipAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
	Country string  `json:"country"`
}

// NewIPAPIProvider creates an IPAPIProvider with the given request timeout.
func NewIPAPIProvider(timeout time.Duration) *IPAPIProvider {
	return &IPAPIProvider{
		httpClient: &http.Client{Timeout: timeout},
		Endpoint:   DefaultIPAPIEndpoint,
	}
}

// Name implements Provider.
func (p *IPAPIProvider) Name() string { return SourceIPAPI }

// GetLocation looks up the caller's position by public IP.
func (p *IPAPIProvider) GetLocation(ctx context.Context) (Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.Endpoint, nil)
	if err != nil {
		return Location{}, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("geolocation API returned status %d", resp.StatusCode)
	}

	var result ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Location{}, fmt.Errorf("failed to decode geolocation response: %w", err)
	}

	if result.Status != "success" {
		return Location{}, fmt.Errorf("geolocation failed: %s", result.Message)
	}

	return Location{
		Latitude:  result.Lat,
		Longitude: result.Lon,
		City:      result.City,
		Country:   result.Country,
		Source:    SourceIPAPI,
	}, nil
}
