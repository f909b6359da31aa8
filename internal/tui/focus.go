package tui

import (
	"time"

	"github.com/selo-ai/mood-app/internal/store"
)

// focusModel manages the focus stopwatch separate from display. Unlike
// a countdown, it runs open-ended until stopped and only then lands in
// today's record.
type focusModel struct {
	store *store.Store

	active    bool
	startTime time.Time
	elapsed   time.Duration
}

func newFocusModel(s *store.Store) focusModel {
	m := focusModel{store: s}
	// Pick up a session that was started before this model existed.
	if session, ok := s.ActiveFocusSession(); ok {
		m.active = true
		m.startTime = session.StartTime
	}
	return m
}

func (f *focusModel) start() {
	if f.active {
		return
	}
	session := f.store.StartFocusSession()
	f.active = true
	f.startTime = session.StartTime
	f.elapsed = 0
}

// stop completes the session and returns the recorded whole minutes.
func (f *focusModel) stop() (int, bool) {
	if !f.active {
		return 0, false
	}
	session, ok := f.store.EndFocusSession()
	f.active = false
	f.elapsed = 0
	if !ok {
		return 0, false
	}
	return session.Duration, true
}

func (f *focusModel) tick() {
	if f.active {
		f.elapsed = time.Since(f.startTime)
	}
}

func (f focusModel) running() bool {
	return f.active
}

func (f focusModel) currentElapsed() time.Duration {
	if !f.active {
		return 0
	}
	return time.Since(f.startTime)
}
