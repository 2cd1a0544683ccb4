package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/fastlit/internal/fasting"
	"github.com/julianstephens/fastlit/internal/utils"
)

type EndCmd struct {
	At string `help:"End time (RFC3339 or HH:MM, default now)."`
}

func (c *EndCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	ctrl := ctx.Controller()
	if ctrl.Status() == fasting.StatusEating {
		fmt.Println("No fast in progress.")
		return nil
	}

	at, err := utils.ParseWhen(c.At, time.Now())
	if err != nil {
		return err
	}

	active := *ctrl.Active()
	if err := ctrl.EndFast(at); err != nil {
		return err
	}

	fmt.Printf("✓ Ended fast after %s (target was %dh)\n",
		utils.FormatDuration(at.Sub(active.Start)), active.PlanHours)
	return nil
}
