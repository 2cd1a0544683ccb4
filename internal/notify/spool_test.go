package notify

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/fastlit/internal/constants"
)

func newTestSpool(t *testing.T) *SpoolGateway {
	t.Helper()
	g := NewSpoolGateway(t.TempDir())
	g.now = func() time.Time {
		return time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)
	}
	return g
}

func TestSpoolOneShotSupersedesSameID(t *testing.T) {
	g := newTestSpool(t)
	at := g.now().Add(time.Hour)

	if err := g.ScheduleOneShot("abc.end", "Fasting complete", "first", at); err != nil {
		t.Fatalf("ScheduleOneShot: %v", err)
	}
	if err := g.ScheduleOneShot("abc.end", "Fasting complete", "second", at.Add(time.Hour)); err != nil {
		t.Fatalf("ScheduleOneShot: %v", err)
	}

	pending, err := g.Pending()
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected same id to supersede, got %d entries", len(pending))
	}
	if pending[0].Body != "second" {
		t.Errorf("expected latest entry to win, got body %q", pending[0].Body)
	}
}

func TestSpoolPendingSortedSoonestFirst(t *testing.T) {
	g := newTestSpool(t)
	base := g.now()

	if err := g.ScheduleOneShot("b", "t", "", base.Add(2*time.Hour)); err != nil {
		t.Fatalf("ScheduleOneShot: %v", err)
	}
	if err := g.ScheduleOneShot("a", "t", "", base.Add(time.Hour)); err != nil {
		t.Fatalf("ScheduleOneShot: %v", err)
	}

	pending, err := g.Pending()
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(pending) != 2 || pending[0].ID != "a" || pending[1].ID != "b" {
		t.Errorf("expected soonest-first order, got %+v", pending)
	}
}

func TestSpoolCancelAll(t *testing.T) {
	g := newTestSpool(t)

	if err := g.ScheduleOneShot("abc.end", "t", "", g.now().Add(time.Hour)); err != nil {
		t.Fatalf("ScheduleOneShot: %v", err)
	}
	if err := g.CancelAll(); err != nil {
		t.Fatalf("CancelAll: %v", err)
	}
	// Cancelling an already empty spool is not an error.
	if err := g.CancelAll(); err != nil {
		t.Fatalf("CancelAll on empty spool: %v", err)
	}

	pending, err := g.Pending()
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("expected empty spool after cancel, got %d entries", len(pending))
	}
}

func TestSpoolDeliverDueKeepsFutureEntries(t *testing.T) {
	g := newTestSpool(t)
	base := g.now()

	if err := g.ScheduleOneShot("later", "t", "", base.Add(time.Hour)); err != nil {
		t.Fatalf("ScheduleOneShot: %v", err)
	}

	delivered, err := g.DeliverDue(base)
	if err != nil {
		t.Fatalf("DeliverDue: %v", err)
	}
	if delivered != 0 {
		t.Errorf("expected nothing delivered before fire time, got %d", delivered)
	}

	pending, err := g.Pending()
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(pending) != 1 {
		t.Errorf("expected future entry to stay spooled, got %d entries", len(pending))
	}
}

func TestSpoolDeliverDueKeepsUndeliverableEntries(t *testing.T) {
	// No tray agent runs during tests, so delivery fails and the entry
	// must survive for the next run.
	g := newTestSpool(t)
	base := g.now()

	if err := g.ScheduleOneShot("due", "t", "", base.Add(-time.Minute)); err != nil {
		t.Fatalf("ScheduleOneShot: %v", err)
	}

	delivered, err := g.DeliverDue(base)
	if err != nil {
		t.Fatalf("DeliverDue: %v", err)
	}
	if delivered != 0 {
		t.Errorf("expected no deliveries without an agent, got %d", delivered)
	}

	pending, err := g.Pending()
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(pending) != 1 {
		t.Errorf("expected undeliverable entry to stay spooled, got %d entries", len(pending))
	}
}

func TestSpoolDiscardsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	g := NewSpoolGateway(dir)

	if err := os.WriteFile(filepath.Join(dir, constants.SpoolFileName), []byte("{nope"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	pending, err := g.Pending()
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("expected corrupt spool to read as empty, got %d entries", len(pending))
	}
}
