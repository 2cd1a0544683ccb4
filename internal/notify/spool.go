package notify

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/julianstephens/fastlit/internal/constants"
	"github.com/julianstephens/fastlit/internal/logger"
	"github.com/julianstephens/fastlit/internal/notifier"
)

// SpoolEntry is one pending notification awaiting delivery.
type SpoolEntry struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Body   string    `json:"body"`
	FireAt time.Time `json:"fire_at"`
}

// SpoolGateway is the local notification gateway. Scheduled notifications
// are spooled to disk and delivered by the hidden `fastlit notify` command,
// which a cron or systemd timer runs once a minute. Authorization maps to
// the tray agent being reachable: without it nothing can be delivered.
type SpoolGateway struct {
	path string
	n    *notifier.Notifier
	now  func() time.Time
}

func NewSpoolGateway(configDir string) *SpoolGateway {
	return &SpoolGateway{
		path: filepath.Join(configDir, constants.SpoolFileName),
		n:    notifier.New(),
		now:  time.Now,
	}
}

func (g *SpoolGateway) RequestAuthorization() (bool, error) {
	return g.n.Available(), nil
}

func (g *SpoolGateway) AuthorizationStatus() AuthStatus {
	if g.n.Available() {
		return AuthAuthorized
	}
	return AuthDenied
}

func (g *SpoolGateway) ScheduleOneShot(id, title, body string, fireAt time.Time) error {
	entries, err := g.load()
	if err != nil {
		return err
	}

	// Same id supersedes the previous entry
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	kept = append(kept, SpoolEntry{ID: id, Title: title, Body: body, FireAt: fireAt})

	return g.save(kept)
}

func (g *SpoolGateway) ScheduleRelative(id, title, body string, delay time.Duration) error {
	if delay <= 0 {
		// Immediate notifications skip the spool entirely
		return g.n.Notify(title, body)
	}
	return g.ScheduleOneShot(id, title, body, g.now().Add(delay))
}

func (g *SpoolGateway) CancelAll() error {
	if err := os.Remove(g.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear notification spool: %w", err)
	}
	return nil
}

// DeliverDue sends every entry whose fire time has passed and rewrites the
// spool with the remainder. Delivery failures keep the entry spooled for the
// next run.
func (g *SpoolGateway) DeliverDue(now time.Time) (int, error) {
	entries, err := g.load()
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].FireAt.Before(entries[j].FireAt) })

	delivered := 0
	var remaining []SpoolEntry
	for _, e := range entries {
		if e.FireAt.After(now) {
			remaining = append(remaining, e)
			continue
		}
		if err := g.n.Notify(e.Title, e.Body); err != nil {
			logger.Warn("Notification delivery failed, keeping spooled", "id", e.ID, "error", err)
			remaining = append(remaining, e)
			continue
		}
		delivered++
	}

	if err := g.save(remaining); err != nil {
		return delivered, err
	}
	return delivered, nil
}

// Pending returns the spooled entries, soonest first.
func (g *SpoolGateway) Pending() ([]SpoolEntry, error) {
	entries, err := g.load()
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].FireAt.Before(entries[j].FireAt) })
	return entries, nil
}

func (g *SpoolGateway) load() ([]SpoolEntry, error) {
	data, err := os.ReadFile(g.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read notification spool: %w", err)
	}
	var entries []SpoolEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		// A corrupt spool only costs pending reminders, never session data
		logger.Warn("Notification spool undecodable, discarding", "error", err)
		return nil, nil
	}
	return entries, nil
}

func (g *SpoolGateway) save(entries []SpoolEntry) error {
	if len(entries) == 0 {
		return g.CancelAll()
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize notification spool: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(g.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	tmp := g.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write notification spool: %w", err)
	}
	if err := os.Rename(tmp, g.path); err != nil {
		return fmt.Errorf("failed to replace notification spool: %w", err)
	}
	return nil
}
