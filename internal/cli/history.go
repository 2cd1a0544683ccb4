package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/fastlit/internal/constants"
	"github.com/julianstephens/fastlit/internal/models"
	"github.com/julianstephens/fastlit/internal/utils"
)

type HistoryListCmd struct{}

func (c *HistoryListCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	ctrl := ctx.Controller()
	sessions := ctrl.Sessions()

	if len(sessions) == 0 {
		fmt.Println("No fasting history yet.")
		return nil
	}

	now := time.Now()
	fmt.Printf("%-4s %-12s %-7s %-10s %-10s\n", "#", "Date", "Plan", "Done", "Status")
	fmt.Println(strings.Repeat("-", 48))

	for i, s := range sessions {
		status := "ended"
		if s.CompletedAt == nil {
			if s.IsActive(now) {
				status = "active"
			} else {
				status = "expired"
			}
		}
		fmt.Printf("%-4d %-12s %-7s %-10s %-10s\n",
			i,
			s.Start.Format(constants.DateFormat),
			fmt.Sprintf("%d:%d", s.PlanHours, 24-s.PlanHours),
			utils.FormatDuration(doneDuration(s, now)),
			status,
		)
	}

	return nil
}

// doneDuration is how much of the fast was actually completed, capped at the
// plan target.
func doneDuration(s models.FastSession, now time.Time) time.Duration {
	end := s.ScheduledEnd()
	if s.CompletedAt != nil {
		end = *s.CompletedAt
	} else if now.Before(end) {
		end = now
	}
	d := end.Sub(s.Start)
	if max := time.Duration(s.PlanHours) * time.Hour; d > max {
		d = max
	}
	if d < 0 {
		d = 0
	}
	return d
}

type HistoryDeleteCmd struct {
	Indices []int `arg:"" help:"History positions to delete (from 'history list')."`
}

func (c *HistoryDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	ctrl := ctx.Controller()
	count := len(ctrl.Sessions())
	for _, i := range c.Indices {
		if i < 0 || i >= count {
			return fmt.Errorf("no history entry at position %d", i)
		}
	}

	if err := ctrl.DeleteSessions(c.Indices); err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}

	fmt.Printf("✓ Deleted %d session(s)\n", len(c.Indices))
	return nil
}
