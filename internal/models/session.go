package models

import (
	"time"

	"github.com/google/uuid"
)

// FastSession is a single fasting session. PlanHours is a snapshot of the
// plan's fasting hours at start time; later plan changes do not touch
// existing sessions. End is a reserved target-time override and is currently
// always nil (the scheduled end is derived). CompletedAt is set exactly once
// when the user ends the fast; a nil CompletedAt means the session is open.
type FastSession struct {
	ID          string     `json:"id"`
	PlanHours   int        `json:"plan_hours"`
	Start       time.Time  `json:"start"`
	End         *time.Time `json:"end,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// NewFastSession creates a session starting at the given time.
func NewFastSession(planHours int, start time.Time) FastSession {
	return FastSession{
		ID:        uuid.New().String(),
		PlanHours: planHours,
		Start:     start,
	}
}

// ScheduledEnd returns the target completion time derived from the plan snapshot.
func (s FastSession) ScheduledEnd() time.Time {
	return s.Start.Add(time.Duration(s.PlanHours) * time.Hour)
}

// IsActive reports whether the session is open and its target end has not passed.
func (s FastSession) IsActive(now time.Time) bool {
	return s.CompletedAt == nil && now.Before(s.ScheduledEnd())
}

// DisplayEnd returns the end override if set, otherwise the scheduled end.
func (s FastSession) DisplayEnd() time.Time {
	if s.End != nil {
		return *s.End
	}
	return s.ScheduledEnd()
}
