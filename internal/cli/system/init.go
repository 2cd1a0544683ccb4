package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/fastlit/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting existing storage before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	gw := ctx.Store.Gateway()

	if c.Force {
		path := gw.ConfigPath()
		if _, err := os.Stat(path); err == nil {
			if err := gw.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			fmt.Printf("Deleted existing storage at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := gw.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized fastlit storage at: %s\n", gw.ConfigPath())
	return nil
}
