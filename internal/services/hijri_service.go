package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/hmousaa/athan-agent/internal/models"
	"github.com/hmousaa/athan-agent/pkg/mqtt"
	"github.com/rs/zerolog"
)

// HijriResolver is the date-conversion surface consumed by the service.
type HijriResolver interface {
	Resolve(gregorian time.Time, locale string) (string, bool)
}

// HijriService publishes the localized Hijri date at startup and at each
// calendar-day rollover. It runs independently of location and schedule,
// keyed only by the configured locale and the current date.
type HijriService struct {
	// Configuration fields
	topic  string
	qos    int
	locale string

	// Dependencies
	resolver  HijriResolver
	publisher mqtt.Publisher
	clk       clock.Clock
	logger    zerolog.Logger

	// Internal state management
	lastDay string
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

// NewHijriService creates a HijriService.
func NewHijriService(topic string, qos int, locale string, resolver HijriResolver,
	pub mqtt.Publisher, clk clock.Clock, logger zerolog.Logger) *HijriService {
	return &HijriService{
		topic:     topic,
		qos:       qos,
		locale:    locale,
		resolver:  resolver,
		publisher: pub,
		clk:       clk,
		logger:    logger,
	}
}

// Start resolves today's date and begins watching for the day rollover.
func (h *HijriService) Start() error {
	if h.running {
		h.logger.Warn().Msg("HijriService is already running")
		return errors.New("hijri service is already running")
	}

	h.ctx, h.cancel = context.WithCancel(context.Background())
	h.running = true

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		h.runLoop()
	}()

	h.logger.Info().Str("topic", h.topic).Str("locale", h.locale).Msg("HijriService started")
	return nil
}

// Stop gracefully stops the service.
func (h *HijriService) Stop() error {
	if !h.running {
		h.logger.Warn().Msg("HijriService is not running")
		return errors.New("hijri service is not running")
	}

	h.cancel()
	h.wg.Wait()
	h.running = false

	h.logger.Info().Msg("HijriService stopped")
	return nil
}

func (h *HijriService) runLoop() {
	h.resolveAndPublish(h.clk.Now())

	ticker := h.clk.Ticker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			if now.Format("2006-01-02") != h.lastDay {
				h.resolveAndPublish(now)
			}
		case <-h.ctx.Done():
			h.logger.Info().Msg("HijriService is stopping")
			return
		}
	}
}

func (h *HijriService) resolveAndPublish(now time.Time) {
	dateStr, approximate := h.resolver.Resolve(now, h.locale)
	h.lastDay = now.Format("2006-01-02")

	update := models.HijriUpdate{
		Date:        dateStr,
		Locale:      h.locale,
		Approximate: approximate,
		Timestamp:   now,
	}

	payload, err := json.Marshal(update)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to serialize hijri update")
		return
	}

	if err := h.publisher.Publish(h.topic, byte(h.qos), false, payload); err != nil {
		h.logger.Error().Err(err).Str("topic", h.topic).Msg("Failed to publish hijri update")
		return
	}

	h.logger.Info().
		Str("date", dateStr).
		Bool("approximate", approximate).
		Msg("Hijri date published")
}
