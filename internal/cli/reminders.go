package cli

import (
	"fmt"

	"github.com/julianstephens/fastlit/internal/constants"
)

type RemindersCmd struct {
	List bool `help:"List current reminder settings."`

	Enabled       *bool `help:"Enable or disable reminders overall."`
	StartAlert    *bool `help:"Notify when a fast starts."`
	EndAlert      *bool `help:"Notify when a fast reaches its scheduled end."`
	PreEnd        *int  `help:"Minutes before the scheduled end to remind (0 disables)."`
	SnoozeMinutes *int  `help:"Snooze delay in minutes."`
}

func (c *RemindersCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	ctrl := ctx.Controller()
	r := ctrl.Reminders()

	if c.List {
		fmt.Println("Reminder Settings:")
		fmt.Printf("  Enabled:     %v\n", r.Enabled)
		fmt.Printf("  Start alert: %v\n", r.StartAlert)
		fmt.Printf("  End alert:   %v\n", r.EndAlert)
		if r.PreEndMinutes != nil {
			fmt.Printf("  Pre-end:     %d min before\n", *r.PreEndMinutes)
		} else {
			fmt.Printf("  Pre-end:     off\n")
		}
		fmt.Printf("  Snooze:      %d min\n", r.SnoozeMinutes)
		return nil
	}

	updated := false
	if c.Enabled != nil {
		r.Enabled = *c.Enabled
		updated = true
	}
	if c.StartAlert != nil {
		r.StartAlert = *c.StartAlert
		updated = true
	}
	if c.EndAlert != nil {
		r.EndAlert = *c.EndAlert
		updated = true
	}
	if c.PreEnd != nil {
		if *c.PreEnd < 0 {
			return fmt.Errorf("pre-end minutes cannot be negative")
		}
		if *c.PreEnd == 0 {
			r.PreEndMinutes = nil
		} else {
			m := *c.PreEnd
			r.PreEndMinutes = &m
		}
		updated = true
	}
	if c.SnoozeMinutes != nil {
		if *c.SnoozeMinutes < constants.MinSnoozeMinutes || *c.SnoozeMinutes > constants.MaxSnoozeMinutes {
			return fmt.Errorf("snooze minutes must be between %d and %d", constants.MinSnoozeMinutes, constants.MaxSnoozeMinutes)
		}
		r.SnoozeMinutes = *c.SnoozeMinutes
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := ctrl.SetReminders(r); err != nil {
		return fmt.Errorf("failed to save reminder settings: %w", err)
	}
	fmt.Println("Reminder settings updated.")
	return nil
}
