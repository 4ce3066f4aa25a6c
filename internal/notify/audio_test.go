package notify

import (
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type stubPlayback struct {
	mu     sync.Mutex
	done   chan struct{}
	killed bool
}

func newStubPlayback() *stubPlayback {
	return &stubPlayback{done: make(chan struct{})}
}

func (s *stubPlayback) Wait() error {
	<-s.done
	return nil
}

func (s *stubPlayback) Kill() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.killed {
		s.killed = true
		close(s.done)
	}
}

func (s *stubPlayback) wasKilled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.killed
}

func TestAthanPlayer_PlayIsNoOpWhilePlaying(t *testing.T) {
	starts := 0
	proc := newStubPlayback()
	p := newPlayerWithStarter(func() (playback, error) {
		starts++
		return proc, nil
	}, zerolog.Nop())

	p.Play()
	p.Play()
	p.Play()

	assert.Equal(t, 1, starts)
	p.Stop()
}

func TestAthanPlayer_StopReleasesPlayback(t *testing.T) {
	proc := newStubPlayback()
	p := newPlayerWithStarter(func() (playback, error) {
		return proc, nil
	}, zerolog.Nop())

	p.Play()
	p.Stop()

	assert.True(t, proc.wasKilled())

	// Stop on an idle player is safe.
	p.Stop()
}

func TestAthanPlayer_RestartAfterStop(t *testing.T) {
	starts := 0
	p := newPlayerWithStarter(func() (playback, error) {
		starts++
		return newStubPlayback(), nil
	}, zerolog.Nop())

	p.Play()
	p.Stop()
	p.Play()
	p.Stop()

	assert.Equal(t, 2, starts)
}

// TestAthanPlayer_BlockedPlaybackIsSwallowed: a failing player never
// propagates; the notification degrades to banner only.
func TestAthanPlayer_BlockedPlaybackIsSwallowed(t *testing.T) {
	p := newPlayerWithStarter(func() (playback, error) {
		return nil, errors.New("autoplay blocked")
	}, zerolog.Nop())

	assert.NotPanics(t, func() {
		p.Play()
		p.Stop()
	})
}
