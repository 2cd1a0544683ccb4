package cli

import (
	"fmt"
)

type SettingsCmd struct {
	List bool `help:"List current display settings."`

	Time24h      *bool `help:"Use 24-hour time display."`
	HealthLinked *bool `help:"Toggle the health-integration placeholder (no behavior)."`
	Onboarded    *bool `help:"Mark onboarding as complete or reset it."`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	ctrl := ctx.Controller()

	if c.List {
		fmt.Println("Display Settings:")
		fmt.Printf("  24-hour time:  %v\n", ctrl.TimeFormat24h())
		fmt.Printf("  Onboarded:     %v\n", ctrl.Onboarded())
		fmt.Printf("  Health linked: %v (placeholder, no behavior)\n", ctx.Store.HealthLinked())
		return nil
	}

	updated := false
	if c.Time24h != nil {
		if err := ctrl.SetTimeFormat24h(*c.Time24h); err != nil {
			return fmt.Errorf("failed to save time format: %w", err)
		}
		updated = true
	}
	if c.Onboarded != nil {
		if err := ctrl.SetOnboarded(*c.Onboarded); err != nil {
			return fmt.Errorf("failed to save onboarding flag: %w", err)
		}
		updated = true
	}
	if c.HealthLinked != nil {
		if err := ctx.Store.SetHealthLinked(*c.HealthLinked); err != nil {
			return fmt.Errorf("failed to save health toggle: %w", err)
		}
		updated = true
	}

	if updated {
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}
	return nil
}
