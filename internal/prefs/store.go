// Package prefs persists the user's manually selected location across
// sessions. The stored value is advisory only: resolution works without it.
package prefs

import (
	"github.com/hmousaa/athan-agent/pkg/file"
	"github.com/hmousaa/athan-agent/pkg/location"
	"github.com/rs/zerolog"
)

// savedLocation is the on-disk form of a remembered manual selection.
type savedLocation struct {
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Store reads and writes the remembered manual location.
type Store struct {
	path       string
	fileClient file.FileOperations
	logger     zerolog.Logger
}

// NewStore creates a Store backed by the given file path.
func NewStore(path string, fileClient file.FileOperations, logger zerolog.Logger) *Store {
	return &Store{
		path:       path,
		fileClient: fileClient,
		logger:     logger,
	}
}

// Load returns the remembered location, or ok=false when none is stored or
// the file is unreadable. Failures are logged, never surfaced.
func (s *Store) Load() (location.Location, bool) {
	exists, err := s.fileClient.IsFileExists(s.path)
	if err != nil || !exists {
		return location.Location{}, false
	}

	var saved savedLocation
	if err := s.fileClient.ReadJsonFile(s.path, &saved); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("Failed to read saved location")
		return location.Location{}, false
	}

	return location.Location{
		Latitude:  saved.Latitude,
		Longitude: saved.Longitude,
		City:      saved.City,
		Country:   saved.Country,
		Source:    location.SourceManual,
	}, true
}

// Save remembers a manually selected location. Failures are logged, never
// surfaced.
func (s *Store) Save(loc location.Location) {
	saved := savedLocation{
		City:      loc.City,
		Country:   loc.Country,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	}

	if err := s.fileClient.WriteJsonFile(s.path, saved); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("Failed to save manual location")
	}
}
