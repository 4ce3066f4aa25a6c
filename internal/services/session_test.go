package services

import (
	"testing"

	"github.com/hmousaa/athan-agent/internal/prayer"
	"github.com/hmousaa/athan-agent/internal/schedule"
	"github.com/hmousaa/athan-agent/pkg/location"
	"github.com/stretchr/testify/assert"
)

func TestSession_Empty(t *testing.T) {
	s := NewSession()

	_, ok := s.Location()
	assert.False(t, ok)

	_, _, ok = s.Schedule()
	assert.False(t, ok)
}

func TestSession_SetAndGet(t *testing.T) {
	s := NewSession()
	token := s.BeginResolution()

	loc := location.Location{Latitude: 24.7136, Longitude: 46.6753, City: "Riyadh"}
	assert.True(t, s.SetLocation(token, loc))
	assert.True(t, s.CommitSchedule(token, prayer.Emergency(), schedule.SourceStatic))

	gotLoc, ok := s.Location()
	assert.True(t, ok)
	assert.Equal(t, loc, gotLoc)

	gotSched, src, ok := s.Schedule()
	assert.True(t, ok)
	assert.Equal(t, prayer.Emergency(), gotSched)
	assert.Equal(t, schedule.SourceStatic, src)
}

// TestSession_LastRequestWins: a schedule fetched for an older resolution is
// discarded once a newer resolution has begun.
func TestSession_LastRequestWins(t *testing.T) {
	s := NewSession()

	oldToken := s.BeginResolution()
	assert.True(t, s.SetLocation(oldToken, location.Location{City: "Riyadh"}))

	// A newer resolution starts while the old schedule fetch is in flight.
	newToken := s.BeginResolution()
	assert.True(t, s.SetLocation(newToken, location.Location{City: "Jeddah"}))
	assert.True(t, s.CommitSchedule(newToken, prayer.Emergency(), schedule.SourceAPI))

	// The old fetch resolves late; its result must be rejected.
	stale := prayer.Emergency()
	stale.Fajr = 100
	assert.False(t, s.CommitSchedule(oldToken, stale, schedule.SourceAPI))
	assert.False(t, s.SetLocation(oldToken, location.Location{City: "Riyadh"}))

	gotLoc, _ := s.Location()
	assert.Equal(t, "Jeddah", gotLoc.City)

	gotSched, _, _ := s.Schedule()
	assert.Equal(t, prayer.Emergency(), gotSched)
}
