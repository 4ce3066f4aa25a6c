package location

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIPAPIProvider_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status":"success","lat":51.5074,"lon":-0.1278,"city":"London","country":"United Kingdom"}`))
	}))
	defer server.Close()

	p := NewIPAPIProvider(time.Second)
	p.Endpoint = server.URL

	loc, err := p.GetLocation(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 51.5074, loc.Latitude)
	assert.Equal(t, -0.1278, loc.Longitude)
	assert.Equal(t, "London", loc.City)
	assert.Equal(t, "United Kingdom", loc.Country)
	assert.Equal(t, SourceIPAPI, loc.Source)
}

func TestIPAPIProvider_ServiceFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status":"fail","message":"private range"}`))
	}))
	defer server.Close()

	p := NewIPAPIProvider(time.Second)
	p.Endpoint = server.URL

	_, err := p.GetLocation(context.Background())
	assert.ErrorContains(t, err, "private range")
}

func TestIPAPIProvider_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	p := NewIPAPIProvider(time.Second)
	p.Endpoint = server.URL

	_, err := p.GetLocation(context.Background())
	assert.Error(t, err)
}

func TestIPAPIProvider_ContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"status":"success"}`))
	}))
	defer server.Close()

	p := NewIPAPIProvider(time.Second)
	p.Endpoint = server.URL

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := p.GetLocation(ctx)
	assert.Error(t, err)
}
