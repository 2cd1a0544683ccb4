package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/fastlit/internal/fasting"
	"github.com/julianstephens/fastlit/internal/utils"
)

type StartCmd struct {
	At string `help:"Start time (RFC3339 or HH:MM, default now)."`
}

func (c *StartCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	ctrl := ctx.Controller()

	at, err := utils.ParseWhen(c.At, time.Now())
	if err != nil {
		return err
	}

	s, err := ctrl.StartFast(at)
	if err != nil {
		if errors.Is(err, fasting.ErrFastInProgress) {
			return fmt.Errorf("a fast is already in progress, end it first with 'fastlit end'")
		}
		return err
	}

	is24h := ctrl.TimeFormat24h()
	fmt.Printf("✓ Started a %s fast at %s\n", ctrl.Plan().DisplayName(), utils.FormatClock(s.Start, is24h))
	fmt.Printf("  Scheduled end: %s\n", utils.FormatClock(s.ScheduledEnd(), is24h))
	return nil
}
