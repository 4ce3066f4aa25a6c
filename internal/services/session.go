package services

import (
	"sync"

	"github.com/hmousaa/athan-agent/internal/prayer"
	"github.com/hmousaa/athan-agent/internal/schedule"
	"github.com/hmousaa/athan-agent/pkg/location"
)

// Session is the single owner of the resolved location and daily schedule.
// Values are replaced wholesale, never mutated in place, so readers only
// observe complete states.
//
// A generation counter implements last-request-wins: a schedule fetched for
// an older resolution is discarded if a newer resolution has started since.
type Session struct {
	mu         sync.RWMutex
	loc        location.Location
	hasLoc     bool
	sched      prayer.Schedule
	schedSrc   schedule.Source
	hasSched   bool
	generation uint64
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// BeginResolution marks the start of a new location resolution and returns
// its generation token. Any in-flight schedule fetch holding an older token
// becomes stale.
func (s *Session) BeginResolution() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation
}

// SetLocation replaces the session location if the token is still current.
func (s *Session) SetLocation(token uint64, loc location.Location) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.generation {
		return false
	}
	s.loc = loc
	s.hasLoc = true
	return true
}

// CommitSchedule replaces the session schedule if the token is still
// current; a stale token means a newer resolution has landed and the result
// is discarded.
func (s *Session) CommitSchedule(token uint64, sched prayer.Schedule, src schedule.Source) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.generation {
		return false
	}
	s.sched = sched
	s.schedSrc = src
	s.hasSched = true
	return true
}

// Location returns the current session location.
func (s *Session) Location() (location.Location, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loc, s.hasLoc
}

// Schedule returns the current schedule and its source.
func (s *Session) Schedule() (prayer.Schedule, schedule.Source, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sched, s.schedSrc, s.hasSched
}
