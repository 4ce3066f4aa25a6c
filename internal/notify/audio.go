package notify

import (
	"context"
	"os/exec"
	"sync"

	"github.com/rs/zerolog"
)

// Player starts and stops the athan recitation stream. Both calls are safe
// regardless of current playback state, and playback failure never
// propagates: the notification degrades to banner-only.
type Player interface {
	Play()
	Stop()
}

// playback is the handle to a running player process.
type playback interface {
	// Wait blocks until playback finishes on its own.
	Wait() error
	// Kill stops playback immediately.
	Kill()
}

// starter launches the player and returns its handle.
type starter func() (playback, error)

// AthanPlayer plays the athan by launching an external audio player command,
// e.g. mpv or ffplay, against a local file or stream URL.
type AthanPlayer struct {
	mu      sync.Mutex
	current playback
	start   starter
	logger  zerolog.Logger
}

// NewAthanPlayer creates a player that runs `command args... source`.
func NewAthanPlayer(command string, args []string, source string, logger zerolog.Logger) *AthanPlayer {
	return &AthanPlayer{
		start:  execStarter(command, args, source),
		logger: logger,
	}
}

// newPlayerWithStarter is the injectable-constructor used by tests.
func newPlayerWithStarter(start starter, logger zerolog.Logger) *AthanPlayer {
	return &AthanPlayer{
		start:  start,
		logger: logger,
	}
}

// Play begins playback. A no-op while already playing. Failure to start is
// logged and swallowed.
func (p *AthanPlayer) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil {
		p.logger.Debug().Msg("Athan already playing, ignoring play request")
		return
	}

	proc, err := p.start()
	if err != nil {
		p.logger.Warn().Err(err).Msg("Athan playback blocked, degrading to banner only")
		return
	}

	p.current = proc
	p.logger.Info().Msg("Athan playback started")

	go func() {
		_ = proc.Wait()
		p.mu.Lock()
		if p.current == proc {
			p.current = nil
		}
		p.mu.Unlock()
	}()
}

// Stop releases playback immediately. Position resets implicitly since each
// Play launches a fresh process from the start of the recording.
func (p *AthanPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return
	}

	p.current.Kill()
	p.current = nil
	p.logger.Info().Msg("Athan playback stopped")
}

// execProc adapts exec.Cmd to the playback interface.
type execProc struct {
	cmd    *exec.Cmd
	cancel context.CancelFunc
}

func (e *execProc) Wait() error {
	defer e.cancel()
	return e.cmd.Wait()
}

func (e *execProc) Kill() {
	e.cancel()
}

func execStarter(command string, args []string, source string) starter {
	return func() (playback, error) {
		ctx, cancel := context.WithCancel(context.Background())
		cmd := exec.CommandContext(ctx, command, append(append([]string{}, args...), source)...)
		if err := cmd.Start(); err != nil {
			cancel()
			return nil, err
		}
		return &execProc{cmd: cmd, cancel: cancel}, nil
	}
}
