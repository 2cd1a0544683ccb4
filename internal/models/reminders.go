package models

import "github.com/julianstephens/fastlit/internal/constants"

// ReminderSettings holds the user's reminder configuration. A nil
// PreEndMinutes disables the pre-end reminder entirely.
type ReminderSettings struct {
	Enabled       bool `json:"enabled"`
	StartAlert    bool `json:"start_alert"`
	EndAlert      bool `json:"end_alert"`
	PreEndMinutes *int `json:"pre_end_minutes,omitempty"`
	SnoozeMinutes int  `json:"snooze_minutes"`
}

// DefaultReminderSettings returns the out-of-the-box reminder configuration.
func DefaultReminderSettings() ReminderSettings {
	preEnd := constants.DefaultPreEndMinutes
	return ReminderSettings{
		Enabled:       true,
		StartAlert:    true,
		EndAlert:      true,
		PreEndMinutes: &preEnd,
		SnoozeMinutes: constants.DefaultSnoozeMinutes,
	}
}
