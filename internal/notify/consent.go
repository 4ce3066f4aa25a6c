package notify

import (
	"os"
	"os/exec"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
)

// ConsentState is the platform notification permission, set once per session.
type ConsentState string

const (
	ConsentGranted      ConsentState = "granted"
	ConsentDenied       ConsentState = "denied"
	ConsentUndetermined ConsentState = "undetermined"
)

// Gate exposes the cached platform notification permission.
type Gate interface {
	// RequestPermission probes the platform once and caches the decision.
	// Subsequent calls return the cached state without re-prompting.
	RequestPermission() ConsentState
	// State returns the cached state, ConsentUndetermined before the first
	// RequestPermission call.
	State() ConsentState
}

// PlatformGate probes whether a desktop notification transport is reachable.
// Denial is terminal for the session; the banner and audio channels keep
// working without the platform channel.
type PlatformGate struct {
	once   sync.Once
	mu     sync.Mutex
	state  ConsentState
	probe  func() bool
	logger zerolog.Logger
}

// NewPlatformGate creates a gate with the default platform probe.
func NewPlatformGate(logger zerolog.Logger) *PlatformGate {
	return &PlatformGate{
		state:  ConsentUndetermined,
		probe:  probePlatform,
		logger: logger,
	}
}

// NewGateWithProbe creates a gate with a custom probe, for tests.
func NewGateWithProbe(probe func() bool, logger zerolog.Logger) *PlatformGate {
	return &PlatformGate{
		state:  ConsentUndetermined,
		probe:  probe,
		logger: logger,
	}
}

// RequestPermission implements Gate.
func (g *PlatformGate) RequestPermission() ConsentState {
	g.once.Do(func() {
		decided := ConsentDenied
		if g.probe() {
			decided = ConsentGranted
		}
		g.mu.Lock()
		g.state = decided
		g.mu.Unlock()
		g.logger.Info().
			Str("consent", string(decided)).
			Msg("Platform notification permission determined")
	})
	return g.State()
}

// State implements Gate. Safe to call from any goroutine, including before
// RequestPermission has run.
func (g *PlatformGate) State() ConsentState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// probePlatform checks for a usable desktop notification transport without
// showing anything to the user.
func probePlatform() bool {
	switch runtime.GOOS {
	case "linux":
		if os.Getenv("DBUS_SESSION_BUS_ADDRESS") != "" {
			return true
		}
		_, err := exec.LookPath("notify-send")
		return err == nil
	default:
		return true
	}
}
