package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/fastlit/internal/fasting"
	"github.com/julianstephens/fastlit/internal/utils"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	ctrl := ctx.Controller()
	now := time.Now()
	is24h := ctrl.TimeFormat24h()

	fmt.Printf("Plan: %s\n", ctrl.Plan().DisplayName())

	if ctrl.Status() == fasting.StatusEating {
		fmt.Println("Status: eating")
		return nil
	}

	s := ctrl.Active()
	fmt.Println("Status: fasting")
	fmt.Printf("  Started:       %s\n", utils.FormatClock(s.Start, is24h))
	fmt.Printf("  Scheduled end: %s\n", utils.FormatClock(s.ScheduledEnd(), is24h))
	fmt.Printf("  Elapsed:       %s\n", utils.FormatDuration(now.Sub(s.Start)))
	fmt.Printf("  Remaining:     %s\n", ctrl.Remaining(now))
	fmt.Printf("  Progress:      %d%%\n", int(ctrl.Progress(now)*100))
	return nil
}
