package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/fastlit/internal/logger"
	"github.com/julianstephens/fastlit/internal/models"
	"github.com/julianstephens/fastlit/internal/utils"
)

// Scheduler translates a session plus reminder configuration into concrete
// one-shot notifications on a Gateway. Every ScheduleForSession call is a
// full reset: only one session is ever active, so pending notifications from
// a prior call must never survive. That also makes the call idempotent.
type Scheduler struct {
	gw  Gateway
	now func() time.Time
}

func NewScheduler(gw Gateway) *Scheduler {
	return &Scheduler{
		gw:  gw,
		now: time.Now,
	}
}

// NewSchedulerAt creates a scheduler with an injected clock, for tests.
func NewSchedulerAt(gw Gateway, now func() time.Time) *Scheduler {
	return &Scheduler{
		gw:  gw,
		now: now,
	}
}

// ScheduleForSession cancels all pending notifications, then schedules the
// end notification and, when configured, the pre-end reminder for the
// session. Fire times at or before now are silently dropped; resuming a
// session close to its end is expected, not an error.
func (s *Scheduler) ScheduleForSession(session models.FastSession, r models.ReminderSettings, is24h bool) error {
	if err := s.gw.CancelAll(); err != nil {
		return &SchedulingError{ID: session.ID, Err: err}
	}

	now := s.now()
	end := session.ScheduledEnd()
	body := fmt.Sprintf("Your %d:%d fast finishes at %s.",
		session.PlanHours, 24-session.PlanHours, utils.FormatClock(end, is24h))

	if end.After(now) {
		if err := s.gw.ScheduleOneShot(session.ID+".end", "Fasting complete", body, end); err != nil {
			return &SchedulingError{ID: session.ID + ".end", Err: err}
		}
	}

	if r.PreEndMinutes != nil {
		preEnd := end.Add(-time.Duration(*r.PreEndMinutes) * time.Minute)
		if preEnd.After(now) {
			if err := s.gw.ScheduleOneShot(session.ID+".preend", "Almost there", body, preEnd); err != nil {
				return &SchedulingError{ID: session.ID + ".preend", Err: err}
			}
		}
	}

	return nil
}

// ScheduleStartAlert issues an immediate start-of-fast notification.
// Failures are the caller's to log; a fast never fails to start over this.
func (s *Scheduler) ScheduleStartAlert(session models.FastSession, is24h bool) error {
	body := fmt.Sprintf("Fasting until %s.", utils.FormatClock(session.ScheduledEnd(), is24h))
	if err := s.gw.ScheduleRelative(session.ID+".start", "Fast started", body, 0); err != nil {
		return &SchedulingError{ID: session.ID + ".start", Err: err}
	}
	return nil
}

// ScheduleSnooze schedules a single check-in notification the given number
// of minutes from now. Each call uses a fresh identifier, so snoozes stack
// rather than replace. Gateway rejections propagate to the caller.
func (s *Scheduler) ScheduleSnooze(minutes int) error {
	id := uuid.New().String() + ".snooze"
	delay := time.Duration(minutes) * time.Minute
	if err := s.gw.ScheduleRelative(id, "Reminder", "Check in with your fast.", delay); err != nil {
		return &SchedulingError{ID: id, Err: err}
	}
	return nil
}

// CancelAll removes every pending notification, used when a session ends.
func (s *Scheduler) CancelAll() error {
	return s.gw.CancelAll()
}

// RequestPermission asks the gateway for authorization. An existing grant
// short-circuits without prompting; a failed prompt reads as not permitted.
func (s *Scheduler) RequestPermission() bool {
	if s.gw.AuthorizationStatus() == AuthAuthorized {
		return true
	}
	granted, err := s.gw.RequestAuthorization()
	if err != nil {
		logger.Debug("Notification authorization prompt failed", "error", err)
		return false
	}
	return granted
}
