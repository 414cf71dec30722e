package session

import "time"

// AutosaveScheduler tracks idle and periodic-interval timers plus a
// failure backoff, and decides when the main loop should trigger an
// autosave. It holds no goroutines of its own — the cooperative main
// loop polls Due() each iteration, matching spec.md's single-threaded
// dispatch model.
type AutosaveScheduler struct {
	opts Options

	lastActivity time.Time
	lastSave     time.Time
	lastFailure  time.Time
	failing      bool
	dirty        bool
}

// NewAutosaveScheduler returns a scheduler armed at now.
func NewAutosaveScheduler(opts Options, now time.Time) *AutosaveScheduler {
	return &AutosaveScheduler{opts: opts, lastActivity: now, lastSave: now}
}

// NoteActivity records that the document changed at now, resetting the
// idle timer.
func (s *AutosaveScheduler) NoteActivity(now time.Time) {
	s.lastActivity = now
	s.dirty = true
}

// NoteSaved records a successful save at now.
func (s *AutosaveScheduler) NoteSaved(now time.Time) {
	s.lastSave = now
	s.failing = false
	s.dirty = false
}

// NoteFailed records a failed save attempt at now, arming the backoff
// window.
func (s *AutosaveScheduler) NoteFailed(now time.Time) {
	s.lastFailure = now
	s.failing = true
}

// Due reports whether an autosave should run at now: either the
// document has been idle for AutosaveIdle since the last edit, or
// AutosaveInterval has elapsed since the last save — except while
// backing off from a recent failure.
func (s *AutosaveScheduler) Due(now time.Time) bool {
	if !s.opts.AutosaveEnabled {
		return false
	}
	if s.failing && now.Sub(s.lastFailure) < s.opts.AutosaveFailureBackoff {
		return false
	}
	if now.Sub(s.lastActivity) >= s.opts.AutosaveIdle && s.dirty {
		return true
	}
	return now.Sub(s.lastSave) >= s.opts.AutosaveInterval
}

// NextDeadline returns the earliest time Due could next become true,
// for use as the main loop's poll timeout.
func (s *AutosaveScheduler) NextDeadline() time.Time {
	next := s.lastSave.Add(s.opts.AutosaveInterval)
	if idleDeadline := s.lastActivity.Add(s.opts.AutosaveIdle); s.dirty && idleDeadline.Before(next) {
		next = idleDeadline
	}
	if s.failing {
		if backoffDeadline := s.lastFailure.Add(s.opts.AutosaveFailureBackoff); backoffDeadline.After(next) {
			next = backoffDeadline
		}
	}
	return next
}
