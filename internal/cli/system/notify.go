package system

import (
	"fmt"
	"time"

	"github.com/julianstephens/fastlit/internal/cli"
	"github.com/julianstephens/fastlit/internal/utils"
)

// NotifyCmd drains due notifications from the spool. It is hidden and meant
// to be run once a minute by a cron or systemd timer.
type NotifyCmd struct {
	DryRun bool `help:"Print pending notifications to stdout instead of delivering them."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	now := time.Now()

	if c.DryRun {
		entries, err := ctx.Spool.Pending()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No pending notifications.")
			return nil
		}
		for _, e := range entries {
			due := "pending"
			if !e.FireAt.After(now) {
				due = "due"
			}
			fmt.Printf("[DryRun] %s  %s: %s (fires %s, %s)\n",
				e.ID, e.Title, e.Body, utils.FormatClock(e.FireAt, true), due)
		}
		return nil
	}

	delivered, err := ctx.Spool.DeliverDue(now)
	if err != nil {
		return err
	}
	if delivered > 0 {
		fmt.Printf("Delivered %d notification(s)\n", delivered)
	}
	return nil
}
