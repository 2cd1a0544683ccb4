package cli

import (
	"fmt"

	"github.com/julianstephens/fastlit/internal/models"
)

type PlanCmd struct {
	Preset      string `help:"Select a preset plan (16:8, 18:6, 20:4)."`
	CustomHours *int   `help:"Select a custom plan with this many fasting hours."`
}

func (c *PlanCmd) Validate() error {
	if c.Preset != "" && c.CustomHours != nil {
		return fmt.Errorf("cannot specify both --preset and --custom-hours")
	}
	if c.Preset != "" {
		switch c.Preset {
		case "16:8", "18:6", "20:4":
		default:
			return fmt.Errorf("invalid preset %q (must be 16:8, 18:6, or 20:4)", c.Preset)
		}
	}
	if c.CustomHours != nil && (*c.CustomHours < 1 || *c.CustomHours > 23) {
		return fmt.Errorf("custom hours must be between 1 and 23")
	}
	return nil
}

func (c *PlanCmd) Run(ctx *Context) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := ctx.Load(); err != nil {
		return err
	}

	ctrl := ctx.Controller()

	if c.Preset == "" && c.CustomHours == nil {
		fmt.Printf("Current plan: %s (%d fasting hours)\n", ctrl.Plan().DisplayName(), ctrl.Plan().FastingHours())
		fmt.Println("\nPresets:")
		for _, p := range models.PlanPresets() {
			marker := " "
			if p == ctrl.Plan() {
				marker = "*"
			}
			fmt.Printf("  %s %s (%d fasting hours)\n", marker, p.DisplayName(), p.FastingHours())
		}
		return nil
	}

	var plan models.FastingPlan
	if c.Preset != "" {
		plan = models.ParsePlanTag(c.Preset)
	} else {
		plan = models.FastingPlan{Kind: models.PlanCustom, CustomHours: *c.CustomHours}
	}

	if err := ctrl.SetPlan(plan); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}

	fmt.Printf("✓ Plan set to %s\n", plan.DisplayName())
	if ctrl.Active() != nil {
		fmt.Println("  The running fast keeps its original target; the new plan applies from the next fast.")
	}
	return nil
}
