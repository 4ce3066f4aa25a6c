package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/hmousaa/athan-agent/internal/models"
	"github.com/hmousaa/athan-agent/internal/notify"
	"github.com/hmousaa/athan-agent/internal/prayer"
	"github.com/hmousaa/athan-agent/internal/utils"
	"github.com/hmousaa/athan-agent/pkg/mqtt"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/rs/zerolog"
)

// bannerDismissSeconds is how long the in-app banner stays up before the
// consumer auto-dismisses it.
const bannerDismissSeconds = 10

// firingWindowMinutes is the remaining-time window, in minutes, treated as
// "the prayer is starting". The tick cadence can observe the window more than
// once; the fired ledger keeps the firing at most once per prayer per day.
const firingWindowMinutes = 1

// TrackerService is the live tracking core: on a fixed cadence it evaluates
// the prayer state machine against the session schedule, publishes the
// resulting state, and fires the notification bundle on the prayer-start
// edge.
type TrackerService struct {
	// Configuration fields
	stateTopic  string
	bannerTopic string
	qos         int
	interval    time.Duration
	locale      string

	// Dependencies
	session   *Session
	publisher mqtt.Publisher
	gate      notify.Gate
	notifier  notify.Notifier
	player    notify.Player
	clk       clock.Clock
	pool      *utils.WorkerPool
	logger    zerolog.Logger

	// Internal state management
	fired   cmap.ConcurrentMap[string, models.NotificationEvent]
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

// NewTrackerService creates a TrackerService.
func NewTrackerService(stateTopic, bannerTopic string, qos int, interval time.Duration, locale string,
	session *Session, pub mqtt.Publisher, gate notify.Gate, notifier notify.Notifier, player notify.Player,
	clk clock.Clock, logger zerolog.Logger) *TrackerService {
	return &TrackerService{
		stateTopic:  stateTopic,
		bannerTopic: bannerTopic,
		qos:         qos,
		interval:    interval,
		locale:      locale,
		session:     session,
		publisher:   pub,
		gate:        gate,
		notifier:    notifier,
		player:      player,
		clk:         clk,
		pool:        utils.NewWorkerPool(2, 8),
		logger:      logger,
		fired:       cmap.New[models.NotificationEvent](),
	}
}

// Start launches the tick loop.
func (t *TrackerService) Start() error {
	if t.running {
		t.logger.Warn().Msg("TrackerService is already running")
		return errors.New("tracker service is already running")
	}

	t.ctx, t.cancel = context.WithCancel(context.Background())
	t.running = true

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		t.runLoop()
	}()

	t.logger.Info().
		Str("topic", t.stateTopic).
		Dur("interval", t.interval).
		Msg("TrackerService started")
	return nil
}

// Stop gracefully stops the tick loop and the side-effect workers.
func (t *TrackerService) Stop() error {
	if !t.running {
		t.logger.Warn().Msg("TrackerService is not running")
		return errors.New("tracker service is not running")
	}

	t.cancel()
	t.wg.Wait()
	t.pool.Shutdown()
	t.running = false

	t.logger.Info().Msg("TrackerService stopped")
	return nil
}

func (t *TrackerService) runLoop() {
	ticker := t.clk.Ticker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			t.tick(now)
		case <-t.ctx.Done():
			t.logger.Info().Msg("TrackerService is stopping")
			return
		}
	}
}

// tick evaluates the state machine once and performs the per-tick effects.
// Ticks missed while the process is suspended are not caught up.
func (t *TrackerService) tick(now time.Time) {
	sched, src, ok := t.session.Schedule()
	if !ok {
		t.logger.Debug().Msg("No schedule installed yet, skipping tick")
		return
	}

	nowMin := prayer.MinuteOfDay(now.Hour()*60 + now.Minute())
	state := prayer.Evaluate(sched, nowMin)

	t.publishState(state, sched, src.Approximate(), now)

	if state.Remaining > firingWindowMinutes {
		return
	}

	key := fmt.Sprintf("%s|%s", state.Next, now.Format("2006-01-02"))
	event := models.NotificationEvent{
		ID:      uuid.New().String(),
		Prayer:  string(state.Next),
		FiredAt: now,
	}

	// SetIfAbsent is the edge detector: only the first tick inside the
	// window for a given prayer and day wins.
	if t.fired.SetIfAbsent(key, event) {
		t.fire(state.Next, event)
	}
}

// fire dispatches the notification bundle for a starting prayer. Each
// channel is fire-and-forget and degrades independently.
func (t *TrackerService) fire(p prayer.Name, event models.NotificationEvent) {
	t.logger.Info().
		Str("prayer", string(p)).
		Str("event_id", event.ID).
		Msg("Prayer started, firing notification bundle")

	if t.gate.State() == notify.ConsentGranted {
		t.submit(func() {
			if err := t.notifier.Notify(notify.Title, notify.Body(p, t.locale)); err != nil {
				t.logger.Warn().Err(err).Msg("Platform notification failed")
			}
		})
	}

	t.submit(func() { t.publishBanner(p, event) })
	t.submit(func() { t.player.Play() })
}

func (t *TrackerService) submit(task func()) {
	if !t.pool.TrySubmit(task) {
		t.logger.Warn().Msg("Notification task dropped, dispatch queue full")
	}
}

func (t *TrackerService) publishState(state prayer.TrackingState, sched prayer.Schedule, approximate bool, now time.Time) {
	msg := models.TrackingState{
		CurrentPrayer:    string(state.Current),
		NextPrayer:       string(state.Next),
		NextPrayerAt:     nextPrayerAt(state.Next, sched),
		RemainingMinutes: state.Remaining,
		Remaining:        prayer.FormatRemaining(state.Remaining),
		Approximate:      approximate,
		Timestamp:        now,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		t.logger.Error().Err(err).Msg("Failed to serialize tracking state")
		return
	}

	if err := t.publisher.Publish(t.stateTopic, byte(t.qos), false, payload); err != nil {
		t.logger.Error().Err(err).Str("topic", t.stateTopic).Msg("Failed to publish tracking state")
	}
}

func (t *TrackerService) publishBanner(p prayer.Name, event models.NotificationEvent) {
	banner := models.BannerEvent{
		ID:                  event.ID,
		Prayer:              string(p),
		Title:               notify.Title,
		Body:                notify.Body(p, t.locale),
		DismissAfterSeconds: bannerDismissSeconds,
		FiredAt:             event.FiredAt,
	}

	payload, err := json.Marshal(banner)
	if err != nil {
		t.logger.Error().Err(err).Msg("Failed to serialize banner event")
		return
	}

	if err := t.publisher.Publish(t.bannerTopic, byte(t.qos), false, payload); err != nil {
		t.logger.Error().Err(err).Str("topic", t.bannerTopic).Msg("Failed to publish banner event")
	}
}

func nextPrayerAt(next prayer.Name, sched prayer.Schedule) string {
	for _, e := range sched.Obligatory() {
		if e.Name == next {
			return e.At.Clock12()
		}
	}
	return ""
}
