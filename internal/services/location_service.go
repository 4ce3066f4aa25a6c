package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/hmousaa/athan-agent/internal/models"
	"github.com/hmousaa/athan-agent/internal/prayer"
	"github.com/hmousaa/athan-agent/internal/prefs"
	"github.com/hmousaa/athan-agent/internal/schedule"
	"github.com/hmousaa/athan-agent/pkg/location"
	"github.com/hmousaa/athan-agent/pkg/mqtt"
	"github.com/rs/zerolog"
)

// defaultSearchTimeout bounds a manual search when no timeout is configured,
// so a hung geocoding upstream cannot stall the run loop.
const defaultSearchTimeout = 10 * time.Second

// LocationResolver is the fallback-chain surface consumed by the service.
type LocationResolver interface {
	Resolve(ctx context.Context) location.Location
	DeviceDenied() bool
}

// ScheduleFetcher is the timing-service surface consumed by the service.
type ScheduleFetcher interface {
	Fetch(date time.Time, lat, lng float64) (prayer.Schedule, schedule.Source)
}

// LocationService owns the session location: it resolves it at startup,
// re-resolves on explicit user override, refetches the schedule at each
// calendar-day rollover, and publishes every resolved location.
//
// Location is never re-polled automatically; only an override command or the
// daily rollover triggers new work.
type LocationService struct {
	// Configuration fields
	pubTopic      string
	overrideTopic string
	qos           int
	searchTimeout time.Duration

	// Dependencies
	resolver  LocationResolver
	searcher  location.Searcher // may be nil when no API key is configured
	fetcher   ScheduleFetcher
	session   *Session
	pubsub    mqtt.PubSub
	prefStore *prefs.Store
	clk       clock.Clock
	logger    zerolog.Logger

	// Internal state management
	overrides chan models.OverrideRequest
	lastDay   string
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	running   bool
}

// NewLocationService creates a LocationService.
func NewLocationService(pubTopic, overrideTopic string, qos int, searchTimeout time.Duration,
	resolver LocationResolver, searcher location.Searcher, fetcher ScheduleFetcher, session *Session,
	pubsub mqtt.PubSub, prefStore *prefs.Store, clk clock.Clock, logger zerolog.Logger) *LocationService {
	if searchTimeout <= 0 {
		searchTimeout = defaultSearchTimeout
	}
	return &LocationService{
		pubTopic:      pubTopic,
		overrideTopic: overrideTopic,
		qos:           qos,
		searchTimeout: searchTimeout,
		resolver:      resolver,
		searcher:      searcher,
		fetcher:       fetcher,
		session:       session,
		pubsub:        pubsub,
		prefStore:     prefStore,
		clk:           clk,
		logger:        logger,
		overrides:     make(chan models.OverrideRequest, 1),
	}
}

// Start performs the initial resolution and begins listening for override
// commands and the daily rollover.
func (l *LocationService) Start() error {
	if l.running {
		l.logger.Warn().Msg("LocationService is already running")
		return errors.New("location service is already running")
	}

	l.ctx, l.cancel = context.WithCancel(context.Background())
	l.running = true

	if err := l.pubsub.Subscribe(l.overrideTopic, byte(l.qos), l.handleOverrideMessage); err != nil {
		l.logger.Error().Err(err).Str("topic", l.overrideTopic).Msg("Failed to subscribe to override topic")
		l.cancel()
		l.running = false
		return err
	}

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		l.runLoop()
	}()

	l.logger.Info().
		Str("topic", l.pubTopic).
		Str("override_topic", l.overrideTopic).
		Msg("LocationService started")
	return nil
}

// Stop gracefully stops the service.
func (l *LocationService) Stop() error {
	if !l.running {
		l.logger.Warn().Msg("LocationService is not running")
		return errors.New("location service is not running")
	}

	l.cancel()
	l.wg.Wait()
	l.running = false

	l.logger.Info().Msg("LocationService stopped")
	return nil
}

// Reresolve requests a new resolution with an optional manual query. The
// request is dropped when one is already pending.
func (l *LocationService) Reresolve(req models.OverrideRequest) {
	select {
	case l.overrides <- req:
	default:
		l.logger.Warn().Msg("Override request dropped, resolution already pending")
	}
}

func (l *LocationService) handleOverrideMessage(_ string, payload []byte) {
	var req models.OverrideRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		l.logger.Warn().Err(err).Msg("Ignoring malformed override request")
		return
	}
	l.Reresolve(req)
}

func (l *LocationService) runLoop() {
	// Initial resolution: a remembered manual selection takes the place of
	// the fallback chain when present.
	if saved, ok := l.loadSaved(); ok {
		l.applyLocation(saved, false)
	} else {
		l.resolveAndApply(models.OverrideRequest{})
	}

	// The rollover check runs every minute; a refetch only happens when the
	// calendar day actually changes.
	ticker := l.clk.Ticker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case req := <-l.overrides:
			l.resolveAndApply(req)
		case now := <-ticker.C:
			if day := now.Format("2006-01-02"); day != l.lastDay {
				l.refreshSchedule()
			}
		case <-l.ctx.Done():
			l.logger.Info().Msg("LocationService is stopping")
			return
		}
	}
}

// resolveAndApply produces a location for the request and installs it along
// with a freshly fetched schedule.
func (l *LocationService) resolveAndApply(req models.OverrideRequest) {
	manual := false
	var loc location.Location

	switch {
	case req.Latitude != 0 || req.Longitude != 0:
		// Explicit candidate selected from a prior search.
		loc = location.Candidate{
			City:      req.City,
			Country:   req.Country,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		}.Loc()
		manual = true
	case strings.TrimSpace(req.Query) != "" && l.searcher != nil:
		searchCtx, cancel := context.WithTimeout(l.ctx, l.searchTimeout)
		candidates, err := l.searcher.Search(searchCtx, req.Query)
		cancel()
		if err != nil || len(candidates) == 0 {
			l.logger.Warn().Err(err).Str("query", req.Query).Msg("Manual search failed, running fallback chain")
			loc = l.resolver.Resolve(l.ctx)
		} else {
			loc = candidates[0].Loc()
			manual = true
		}
	default:
		loc = l.resolver.Resolve(l.ctx)
	}

	l.applyLocation(loc, manual)
}

func (l *LocationService) applyLocation(loc location.Location, remember bool) {
	token := l.session.BeginResolution()
	if !l.session.SetLocation(token, loc) {
		l.logger.Info().Msg("Discarding resolution, a newer request has landed")
		return
	}

	l.publishLocation(loc)

	if remember && l.prefStore != nil {
		l.prefStore.Save(loc)
	}

	now := l.clk.Now()
	sched, src := l.fetcher.Fetch(now, loc.Latitude, loc.Longitude)
	if !l.session.CommitSchedule(token, sched, src) {
		l.logger.Info().Msg("Discarding stale schedule, a newer resolution has landed")
		return
	}
	l.lastDay = now.Format("2006-01-02")

	l.logger.Info().
		Str("source", string(src)).
		Str("day", l.lastDay).
		Msg("Prayer schedule installed")
}

// refreshSchedule refetches the schedule for the current location at the
// calendar-day rollover.
func (l *LocationService) refreshSchedule() {
	loc, ok := l.session.Location()
	if !ok {
		return
	}

	token := l.session.BeginResolution()
	if !l.session.SetLocation(token, loc) {
		return
	}

	now := l.clk.Now()
	sched, src := l.fetcher.Fetch(now, loc.Latitude, loc.Longitude)
	if !l.session.CommitSchedule(token, sched, src) {
		return
	}
	l.lastDay = now.Format("2006-01-02")

	l.logger.Info().Str("day", l.lastDay).Msg("Daily schedule refreshed")
}

func (l *LocationService) loadSaved() (location.Location, bool) {
	if l.prefStore == nil {
		return location.Location{}, false
	}
	return l.prefStore.Load()
}

func (l *LocationService) publishLocation(loc location.Location) {
	update := models.LocationUpdate{
		Latitude:     loc.Latitude,
		Longitude:    loc.Longitude,
		City:         loc.City,
		Country:      loc.Country,
		Source:       loc.Source,
		DeviceDenied: l.resolver.DeviceDenied(),
		Timestamp:    l.clk.Now(),
	}

	payload, err := json.Marshal(update)
	if err != nil {
		l.logger.Error().Err(err).Msg("Failed to serialize location update")
		return
	}

	if err := l.pubsub.Publish(l.pubTopic, byte(l.qos), false, payload); err != nil {
		l.logger.Error().Err(err).Str("topic", l.pubTopic).Msg("Failed to publish location update")
	}
}
