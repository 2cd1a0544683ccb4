package system

import (
	"fmt"

	"github.com/julianstephens/fastlit/internal/cli"
	"github.com/julianstephens/fastlit/internal/notify"
	"github.com/julianstephens/fastlit/internal/utils"
)

// DebugCmd prints diagnostic state: storage location, notification
// authorization, and the pending spool.
type DebugCmd struct{}

func (c *DebugCmd) Run(ctx *cli.Context) error {
	fmt.Printf("Storage: %s\n", ctx.Store.Gateway().ConfigPath())

	status := "denied (tray agent unreachable)"
	if ctx.Spool.AuthorizationStatus() == notify.AuthAuthorized {
		status = "authorized"
	}
	fmt.Printf("Notifications: %s\n", status)

	entries, err := ctx.Spool.Pending()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("Pending notifications: none")
		return nil
	}
	fmt.Printf("Pending notifications: %d\n", len(entries))
	for _, e := range entries {
		fmt.Printf("  %s  %s (fires %s)\n", e.ID, e.Title, utils.FormatClock(e.FireAt, true))
	}
	return nil
}
