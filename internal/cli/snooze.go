package cli

import (
	"fmt"
)

type SnoozeCmd struct{}

func (c *SnoozeCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	ctrl := ctx.Controller()
	if !ctrl.Reminders().Enabled {
		fmt.Println("Reminders are disabled; nothing to snooze.")
		return nil
	}

	// Scheduling failures surface here: the user explicitly asked for
	// this reminder and should see it fail.
	if err := ctrl.Snooze(); err != nil {
		return fmt.Errorf("failed to schedule snooze: %w", err)
	}

	fmt.Printf("✓ Snooze reminder in %d minutes\n", ctrl.Reminders().SnoozeMinutes)
	return nil
}
