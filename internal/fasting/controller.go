package fasting

import (
	"errors"
	"time"

	"github.com/julianstephens/fastlit/internal/logger"
	"github.com/julianstephens/fastlit/internal/models"
	"github.com/julianstephens/fastlit/internal/notify"
	"github.com/julianstephens/fastlit/internal/storage"
	"github.com/julianstephens/fastlit/internal/utils"
)

// Status is the controller's lifecycle state.
type Status string

const (
	StatusFasting Status = "fasting"
	StatusEating  Status = "eating"
)

// ErrFastInProgress is returned when starting a fast while one is active.
var ErrFastInProgress = errors.New("a fast is already in progress")

// EatingRemaining is the remaining-time placeholder while no fast is active;
// there is no next-fast schedule to count down to.
const EatingRemaining = "—"

// Controller is the session lifecycle state machine. It owns the canonical
// plan, reminder settings, session history and the single active session,
// and performs each mutation together with its persistence write as one
// step. It is single-owner state: not safe for concurrent use.
type Controller struct {
	store *storage.Store
	sched *notify.Scheduler

	plan          models.FastingPlan
	reminders     models.ReminderSettings
	sessions      []models.FastSession
	active        *models.FastSession
	timeFormat24h bool
	onboarded     bool
}

// NewController loads persisted state and resolves the active session as of now.
func NewController(store *storage.Store, sched *notify.Scheduler) *Controller {
	return NewControllerAt(store, sched, time.Now())
}

// NewControllerAt is NewController with an explicit load time, for tests.
func NewControllerAt(store *storage.Store, sched *notify.Scheduler, now time.Time) *Controller {
	c := &Controller{
		store:         store,
		sched:         sched,
		plan:          store.Plan(),
		reminders:     store.Reminders(),
		sessions:      store.Sessions(),
		timeFormat24h: store.TimeFormat24h(),
		onboarded:     store.Onboarded(),
	}
	for i := range c.sessions {
		if c.sessions[i].IsActive(now) {
			s := c.sessions[i]
			c.active = &s
			break
		}
	}
	return c
}

// Plan returns the current fasting plan.
func (c *Controller) Plan() models.FastingPlan { return c.plan }

// Reminders returns the current reminder settings.
func (c *Controller) Reminders() models.ReminderSettings { return c.reminders }

// Sessions returns the session history, most recent first.
func (c *Controller) Sessions() []models.FastSession { return c.sessions }

// Active returns the active session, or nil while eating.
func (c *Controller) Active() *models.FastSession { return c.active }

// TimeFormat24h returns the 24-hour display preference.
func (c *Controller) TimeFormat24h() bool { return c.timeFormat24h }

// Onboarded returns whether onboarding has been completed.
func (c *Controller) Onboarded() bool { return c.onboarded }

// Status reports fasting while an active session exists, eating otherwise.
func (c *Controller) Status() Status {
	if c.active != nil {
		return StatusFasting
	}
	return StatusEating
}

// StartFast begins a new session at now with the current plan's hours
// snapshotted. Starting while a fast is active is rejected; the caller must
// end the running fast first. Reminder setup is best effort: a permission
// or scheduling failure never blocks the fast from starting.
func (c *Controller) StartFast(now time.Time) (models.FastSession, error) {
	if c.active != nil {
		return models.FastSession{}, ErrFastInProgress
	}

	s := models.NewFastSession(c.plan.FastingHours(), now)
	c.active = &s
	c.sessions = append([]models.FastSession{s}, c.sessions...)
	if err := c.store.SaveSessions(c.sessions); err != nil {
		return s, err
	}

	if c.reminders.Enabled && (c.reminders.EndAlert || c.reminders.StartAlert) {
		if c.sched.RequestPermission() {
			if c.reminders.EndAlert {
				if err := c.sched.ScheduleForSession(s, c.reminders, c.timeFormat24h); err != nil {
					logger.Warn("Failed to schedule end reminders", "session", s.ID, "error", err)
				}
			}
			if c.reminders.StartAlert {
				if err := c.sched.ScheduleStartAlert(s, c.timeFormat24h); err != nil {
					logger.Debug("Start alert not delivered", "session", s.ID, "error", err)
				}
			}
		} else {
			logger.Debug("Notification permission not granted, skipping reminders", "session", s.ID)
		}
	}

	return s, nil
}

// EndFast completes the active session at the given time, writes the
// mutation back into the history at its existing position, and cancels all
// pending notifications. Ending while already eating is a no-op.
func (c *Controller) EndFast(at time.Time) error {
	if c.active == nil {
		return nil
	}

	s := *c.active
	s.CompletedAt = &at
	for i := range c.sessions {
		if c.sessions[i].ID == s.ID {
			c.sessions[i] = s
			break
		}
	}
	c.active = nil
	if err := c.store.SaveSessions(c.sessions); err != nil {
		return err
	}

	if err := c.sched.CancelAll(); err != nil {
		logger.Warn("Failed to cancel pending reminders", "session", s.ID, "error", err)
	}
	return nil
}

// Snooze schedules a check-in reminder the configured number of minutes from
// now. Valid in either state. A no-op when reminders are disabled; gateway
// rejections propagate, this is the one reminder action the user asked for
// directly and should see fail.
func (c *Controller) Snooze() error {
	if !c.reminders.Enabled {
		return nil
	}
	return c.sched.ScheduleSnooze(c.reminders.SnoozeMinutes)
}

// DeleteSessions removes history entries by position (most recent first)
// and persists. Deleting the active session's entry also clears the active
// reference so it cannot dangle.
func (c *Controller) DeleteSessions(indices []int) error {
	if len(indices) == 0 {
		return nil
	}

	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		drop[i] = true
	}

	kept := make([]models.FastSession, 0, len(c.sessions))
	for i, s := range c.sessions {
		if !drop[i] {
			kept = append(kept, s)
			continue
		}
		if c.active != nil && c.active.ID == s.ID {
			c.active = nil
			if err := c.sched.CancelAll(); err != nil {
				logger.Warn("Failed to cancel pending reminders", "session", s.ID, "error", err)
			}
		}
	}
	c.sessions = kept
	return c.store.SaveSessions(c.sessions)
}

// SetPlan replaces the plan selection and persists it. Sessions keep their
// hour snapshots; an active fast is unaffected.
func (c *Controller) SetPlan(plan models.FastingPlan) error {
	c.plan = plan
	return c.store.SavePlan(plan)
}

// SetReminders replaces reminder settings, persists them, and reschedules
// the active session's notifications to match.
func (c *Controller) SetReminders(r models.ReminderSettings) error {
	c.reminders = r
	if err := c.store.SaveReminders(r); err != nil {
		return err
	}
	if c.active == nil {
		return nil
	}
	if !r.Enabled || !r.EndAlert {
		if err := c.sched.CancelAll(); err != nil {
			logger.Warn("Failed to cancel pending reminders", "session", c.active.ID, "error", err)
		}
		return nil
	}
	if err := c.sched.ScheduleForSession(*c.active, r, c.timeFormat24h); err != nil {
		logger.Warn("Failed to reschedule reminders", "session", c.active.ID, "error", err)
	}
	return nil
}

// SetTimeFormat24h persists the 24-hour display preference.
func (c *Controller) SetTimeFormat24h(on bool) error {
	c.timeFormat24h = on
	return c.store.SetTimeFormat24h(on)
}

// SetOnboarded persists the onboarding-complete flag.
func (c *Controller) SetOnboarded(done bool) error {
	c.onboarded = done
	return c.store.SetOnboarded(done)
}

// Progress reports elapsed share of the active fast, clamped to [0,1].
// Always 0 while eating.
func (c *Controller) Progress(now time.Time) float64 {
	if c.active == nil {
		return 0
	}
	total := c.active.ScheduledEnd().Sub(c.active.Start).Seconds()
	if total <= 0 {
		return 1
	}
	done := now.Sub(c.active.Start).Seconds()
	p := done / total
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Remaining reports time until the scheduled end as "<H>h <MM>m" while
// fasting, and a placeholder while eating.
func (c *Controller) Remaining(now time.Time) string {
	if c.active == nil {
		return EatingRemaining
	}
	return utils.FormatDuration(c.active.ScheduledEnd().Sub(now))
}
