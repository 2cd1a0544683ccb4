package cli

import (
	"github.com/julianstephens/fastlit/internal/fasting"
	"github.com/julianstephens/fastlit/internal/notify"
	"github.com/julianstephens/fastlit/internal/storage"
)

// Context carries the shared dependencies into every kong command.
type Context struct {
	Store     *storage.Store
	Spool     *notify.SpoolGateway
	Scheduler *notify.Scheduler
}

// Load opens the underlying storage gateway.
func (c *Context) Load() error {
	return c.Store.Gateway().Load()
}

// Controller builds the session controller over the loaded store.
func (c *Context) Controller() *fasting.Controller {
	return fasting.NewController(c.Store, c.Scheduler)
}
