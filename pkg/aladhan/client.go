// Package aladhan is a minimal client for the Al Adhan prayer-times API,
// covering the daily timings endpoints and Gregorian-to-Hijri conversion.
package aladhan

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.aladhan.com/v1"

// Client communicates with the Al Adhan API.
type Client struct {
	httpClient *http.Client

	// BaseURL is the API base URL. Exported for testing with httptest.
	BaseURL string
}

// NewClient creates a client whose requests time out after the given duration.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		BaseURL:    defaultBaseURL,
	}
}

// Timings fetches the prayer timings for the given date and coordinates.
// The calculation method and jurisprudence school are passed through as-is;
// negative values omit the parameter so the service applies its default.
func (c *Client) Timings(date time.Time, lat, lng float64, method, school int) (*Response, error) {
	endpoint := fmt.Sprintf("%s/timings/%s", c.BaseURL, date.Format("02-01-2006"))

	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", lat))
	params.Set("longitude", fmt.Sprintf("%f", lng))
	setMethodSchool(params, method, school)

	var resp Response
	if err := c.get(endpoint, params, &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("timing service error: code=%d status=%s", resp.Code, resp.Status)
	}
	return &resp, nil
}

// TimingsByCity fetches prayer timings for the given date by city and country
// name. Used as the first fallback when the coordinate query fails.
func (c *Client) TimingsByCity(date time.Time, city, country string, method, school int) (*Response, error) {
	endpoint := fmt.Sprintf("%s/timingsByCity/%s", c.BaseURL, date.Format("02-01-2006"))

	params := url.Values{}
	params.Set("city", city)
	params.Set("country", country)
	setMethodSchool(params, method, school)

	var resp Response
	if err := c.get(endpoint, params, &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("timing service error: code=%d status=%s", resp.Code, resp.Status)
	}
	return &resp, nil
}

// GregorianToHijri converts the given Gregorian date to its Hijri equivalent.
func (c *Client) GregorianToHijri(date time.Time) (*HijriDate, error) {
	endpoint := fmt.Sprintf("%s/gToH/%s", c.BaseURL, date.Format("02-01-2006"))

	var resp ConversionResponse
	if err := c.get(endpoint, url.Values{}, &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("conversion service error: code=%d status=%s", resp.Code, resp.Status)
	}
	return &resp.Data.Hijri, nil
}

func (c *Client) get(endpoint string, params url.Values, v any) error {
	reqURL := endpoint
	if len(params) > 0 {
		reqURL = fmt.Sprintf("%s?%s", endpoint, params.Encode())
	}

	resp, err := c.httpClient.Get(reqURL)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func setMethodSchool(params url.Values, method, school int) {
	if method >= 0 {
		params.Set("method", fmt.Sprintf("%d", method))
	}
	if school >= 0 {
		params.Set("school", fmt.Sprintf("%d", school))
	}
}
