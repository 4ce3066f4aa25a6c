package location

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Step is one entry of the resolution chain: a provider with its own time
// bound. Each step degrades independently of the others.
type Step struct {
	Provider Provider
	Timeout  time.Duration
}

// Resolver walks an ordered list of providers and returns the first
// successful fix. It fails soft: when every step fails it returns the
// configured static fallback, never an error.
type Resolver struct {
	steps    []Step
	fallback Location
	logger   zerolog.Logger

	deviceDenied atomic.Bool
}

// NewResolver creates a Resolver over the given steps. The fallback location
// is returned when the whole chain fails; its Source is forced to "static".
func NewResolver(steps []Step, fallback Location, logger zerolog.Logger) *Resolver {
	fallback.Source = SourceStatic
	return &Resolver{
		steps:    steps,
		fallback: fallback,
		logger:   logger,
	}
}

// Resolve runs the chain, first success wins. A failed GPS step is recorded
// as an advisory device-denied hint but never blocks resolution.
func (r *Resolver) Resolve(ctx context.Context) Location {
	for _, step := range r.steps {
		stepCtx := ctx
		cancel := context.CancelFunc(func() {})
		if step.Timeout > 0 {
			stepCtx, cancel = context.WithTimeout(ctx, step.Timeout)
		}

		loc, err := step.Provider.GetLocation(stepCtx)
		cancel()

		if err != nil {
			if step.Provider.Name() == SourceGPS {
				r.deviceDenied.Store(true)
			}
			r.logger.Warn().
				Err(err).
				Str("provider", step.Provider.Name()).
				Msg("Location provider failed, trying next")
			continue
		}

		if step.Provider.Name() == SourceGPS {
			r.deviceDenied.Store(false)
		}
		r.logger.Info().
			Str("provider", step.Provider.Name()).
			Float64("latitude", loc.Latitude).
			Float64("longitude", loc.Longitude).
			Msg("Location resolved")
		return loc
	}

	r.logger.Warn().Msg("All location providers failed, using static fallback")
	return r.fallback
}

// DeviceDenied reports whether the last run's device step was denied or timed
// out. Surfaced to the UI as a hint to request stronger permission; advisory
// only.
func (r *Resolver) DeviceDenied() bool {
	return r.deviceDenied.Load()
}
