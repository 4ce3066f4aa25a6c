package notify

import (
	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"
)

// Notifier dispatches a platform notification. Dispatch is fire-and-forget;
// failures are logged by the caller and never retried.
type Notifier interface {
	Notify(title, body string) error
}

// DesktopNotifier sends desktop notifications through the OS notification
// facility.
type DesktopNotifier struct {
	iconPath string
	logger   zerolog.Logger
}

// NewDesktopNotifier creates a DesktopNotifier. iconPath may be empty.
func NewDesktopNotifier(iconPath string, logger zerolog.Logger) *DesktopNotifier {
	return &DesktopNotifier{
		iconPath: iconPath,
		logger:   logger,
	}
}

// Notify implements Notifier.
func (n *DesktopNotifier) Notify(title, body string) error {
	if err := beeep.Notify(title, body, n.iconPath); err != nil {
		return err
	}

	n.logger.Debug().Str("title", title).Msg("Platform notification dispatched")
	return nil
}
