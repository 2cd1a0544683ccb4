package notify

import (
	"fmt"
	"time"
)

// AuthStatus is the notification gateway's authorization state.
type AuthStatus int

const (
	AuthNotDetermined AuthStatus = iota
	AuthAuthorized
	AuthDenied
)

// Gateway is the external notification sink. Implementations decide how a
// scheduled notification eventually reaches the user; the core only decides
// what to schedule and when.
type Gateway interface {
	// RequestAuthorization prompts for permission to notify and reports
	// whether it was granted.
	RequestAuthorization() (bool, error)

	// AuthorizationStatus reports the current permission state without prompting.
	AuthorizationStatus() AuthStatus

	// ScheduleOneShot registers a single notification firing at an absolute time.
	ScheduleOneShot(id, title, body string, fireAt time.Time) error

	// ScheduleRelative registers a single notification firing after a delay.
	ScheduleRelative(id, title, body string, delay time.Duration) error

	// CancelAll removes every pending notification registered through this gateway.
	CancelAll() error
}

// SchedulingError reports a gateway rejection of a scheduling call. It is
// surfaced to the user only where they explicitly asked for a reminder.
type SchedulingError struct {
	ID  string
	Err error
}

func (e *SchedulingError) Error() string {
	return fmt.Sprintf("failed to schedule notification %s: %v", e.ID, e.Err)
}

func (e *SchedulingError) Unwrap() error {
	return e.Err
}
