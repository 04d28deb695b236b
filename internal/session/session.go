// Package session holds the state of one interactive formalization session:
// current input, output, loading flag, theme and last message. Shells read it
// through Snapshot and change it only through Session methods.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/formalized/internal/core/domain"
	"github.com/baditaflorin/formalized/internal/ports"
	"golang.org/x/sync/semaphore"
)

// Session serialises formalization requests: at most one is in flight.
type Session struct {
	mu    sync.Mutex
	state domain.State

	inflight  *semaphore.Weighted
	strategy  ports.Formalizer
	clipboard ports.Clipboard
	logger    ports.Logger
}

// New creates a session using strategy for formalization and clipboard for copies.
func New(strategy ports.Formalizer, clipboard ports.Clipboard, logger ports.Logger, theme domain.Theme) *Session {
	return &Session{
		state:     domain.State{Theme: theme},
		inflight:  semaphore.NewWeighted(1),
		strategy:  strategy,
		clipboard: clipboard,
		logger:    logger,
	}
}

// Strategy returns the name of the active strategy.
func (s *Session) Strategy() string {
	return s.strategy.Name()
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetInput replaces the input text.
func (s *Session) SetInput(text string) {
	s.mu.Lock()
	s.state.Input = text
	s.mu.Unlock()
}

// ToggleTheme flips the theme and returns the new one.
func (s *Session) ToggleTheme() domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Theme = s.state.Theme.Toggle()
	return s.state.Theme
}

// Formalize runs the strategy on the current input. It returns domain.ErrBusy
// without touching state while another call is in flight, and
// domain.ErrEmptyInput without clearing the previous output for blank input.
func (s *Session) Formalize(ctx context.Context) (string, error) {
	if !s.inflight.TryAcquire(1) {
		return "", domain.ErrBusy
	}
	defer s.inflight.Release(1)

	s.mu.Lock()
	input := s.state.Input
	if strings.TrimSpace(input) == "" {
		s.state.Message = MessageEmptyInput
		s.mu.Unlock()
		return "", domain.ErrEmptyInput
	}
	s.state.Loading = true
	s.state.Output = ""
	s.state.Message = ""
	s.mu.Unlock()

	start := time.Now()
	out, err := s.strategy.Formalize(ctx, input)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	if err != nil {
		s.logger.Error("Error formalizing text", "strategy", s.strategy.Name(), "error", err)
		s.state.Message = MessageFor(err)
		return "", err
	}
	s.state.Output = out
	s.logger.Info("Formalized text",
		"strategy", s.strategy.Name(),
		"input_chars", len([]rune(input)),
		"output_chars", len([]rune(out)),
		"duration", time.Since(start),
	)
	return out, nil
}

// Copy writes the current output to the clipboard.
func (s *Session) Copy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Output == "" {
		s.state.Message = MessageNothingToCopy
		return domain.ErrNothingToCopy
	}
	if err := s.clipboard.WriteAll(s.state.Output); err != nil {
		s.logger.Warn("Clipboard write failed", "error", err)
		s.state.Message = MessageCopyFailed
		return err
	}
	s.state.Message = ""
	return nil
}
