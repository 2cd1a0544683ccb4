package notify

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/fastlit/internal/models"
)

type scheduledCall struct {
	id     string
	title  string
	fireAt time.Time
	delay  time.Duration
}

// fakeGateway records scheduling calls and can be forced to fail.
type fakeGateway struct {
	status    AuthStatus
	grant     bool
	grantErr  error
	failID    string
	scheduled []scheduledCall
	cancels   int
	prompted  bool
}

func (g *fakeGateway) RequestAuthorization() (bool, error) {
	g.prompted = true
	return g.grant, g.grantErr
}

func (g *fakeGateway) AuthorizationStatus() AuthStatus {
	return g.status
}

func (g *fakeGateway) ScheduleOneShot(id, title, body string, fireAt time.Time) error {
	if g.failID != "" && strings.HasSuffix(id, g.failID) {
		return errors.New("gateway unavailable")
	}
	g.scheduled = append(g.scheduled, scheduledCall{id: id, title: title, fireAt: fireAt})
	return nil
}

func (g *fakeGateway) ScheduleRelative(id, title, body string, delay time.Duration) error {
	if g.failID != "" && strings.HasSuffix(id, g.failID) {
		return errors.New("gateway unavailable")
	}
	g.scheduled = append(g.scheduled, scheduledCall{id: id, title: title, delay: delay})
	return nil
}

func (g *fakeGateway) CancelAll() error {
	g.cancels++
	g.scheduled = nil
	return nil
}

func TestScheduleForSession(t *testing.T) {
	start := time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)
	pre30 := 30

	tests := []struct {
		name      string
		now       time.Time
		reminders models.ReminderSettings
		wantIDs   []string
	}{
		{
			name:      "end and pre-end in the future",
			now:       start.Add(time.Hour),
			reminders: models.ReminderSettings{Enabled: true, EndAlert: true, PreEndMinutes: &pre30},
			wantIDs:   []string{".end", ".preend"},
		},
		{
			name:      "no pre-end configured",
			now:       start.Add(time.Hour),
			reminders: models.ReminderSettings{Enabled: true, EndAlert: true},
			wantIDs:   []string{".end"},
		},
		{
			name:      "pre-end already passed",
			now:       start.Add(16*time.Hour - 10*time.Minute),
			reminders: models.ReminderSettings{Enabled: true, EndAlert: true, PreEndMinutes: &pre30},
			wantIDs:   []string{".end"},
		},
		{
			name:      "end already passed",
			now:       start.Add(17 * time.Hour),
			reminders: models.ReminderSettings{Enabled: true, EndAlert: true, PreEndMinutes: &pre30},
			wantIDs:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{}
			sched := NewSchedulerAt(gw, func() time.Time { return tt.now })
			session := models.NewFastSession(16, start)

			if err := sched.ScheduleForSession(session, tt.reminders, true); err != nil {
				t.Fatalf("ScheduleForSession: %v", err)
			}
			if gw.cancels != 1 {
				t.Errorf("expected a single cancel-all reset, got %d", gw.cancels)
			}
			if len(gw.scheduled) != len(tt.wantIDs) {
				t.Fatalf("expected %d notifications, got %d", len(tt.wantIDs), len(gw.scheduled))
			}
			for i, suffix := range tt.wantIDs {
				if got := gw.scheduled[i].id; got != session.ID+suffix {
					t.Errorf("notification %d: expected id %s, got %s", i, session.ID+suffix, got)
				}
			}
		})
	}
}

func TestScheduleForSessionIsIdempotent(t *testing.T) {
	start := time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)
	gw := &fakeGateway{}
	sched := NewSchedulerAt(gw, func() time.Time { return start })
	session := models.NewFastSession(16, start)
	r := models.DefaultReminderSettings()

	for i := 0; i < 3; i++ {
		if err := sched.ScheduleForSession(session, r, false); err != nil {
			t.Fatalf("ScheduleForSession #%d: %v", i, err)
		}
	}
	if len(gw.scheduled) != 2 {
		t.Errorf("expected repeat scheduling to replace, not stack: got %d pending", len(gw.scheduled))
	}
}

func TestScheduleForSessionPropagatesFailure(t *testing.T) {
	start := time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)
	gw := &fakeGateway{failID: ".end"}
	sched := NewSchedulerAt(gw, func() time.Time { return start })

	err := sched.ScheduleForSession(models.NewFastSession(16, start), models.DefaultReminderSettings(), false)
	if err == nil {
		t.Fatal("expected scheduling error")
	}
	var serr *SchedulingError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *SchedulingError, got %T", err)
	}
	if !strings.HasSuffix(serr.ID, ".end") {
		t.Errorf("expected failing id to name the end notification, got %s", serr.ID)
	}
}

func TestScheduleSnooze(t *testing.T) {
	gw := &fakeGateway{}
	sched := NewScheduler(gw)

	if err := sched.ScheduleSnooze(10); err != nil {
		t.Fatalf("ScheduleSnooze: %v", err)
	}
	if err := sched.ScheduleSnooze(10); err != nil {
		t.Fatalf("ScheduleSnooze: %v", err)
	}

	if len(gw.scheduled) != 2 {
		t.Fatalf("expected snoozes to stack, got %d pending", len(gw.scheduled))
	}
	if gw.scheduled[0].id == gw.scheduled[1].id {
		t.Error("expected each snooze to use a fresh identifier")
	}
	for _, call := range gw.scheduled {
		if !strings.HasSuffix(call.id, ".snooze") {
			t.Errorf("expected snooze suffix on id %s", call.id)
		}
		if call.delay != 10*time.Minute {
			t.Errorf("expected 10m delay, got %v", call.delay)
		}
	}
}

func TestScheduleSnoozePropagatesFailure(t *testing.T) {
	gw := &fakeGateway{failID: ".snooze"}
	if err := NewScheduler(gw).ScheduleSnooze(10); err == nil {
		t.Error("expected gateway rejection to propagate")
	}
}

func TestRequestPermission(t *testing.T) {
	tests := []struct {
		name       string
		gw         *fakeGateway
		want       bool
		wantPrompt bool
	}{
		{
			name:       "already authorized short-circuits",
			gw:         &fakeGateway{status: AuthAuthorized},
			want:       true,
			wantPrompt: false,
		},
		{
			name:       "prompt granted",
			gw:         &fakeGateway{status: AuthNotDetermined, grant: true},
			want:       true,
			wantPrompt: true,
		},
		{
			name:       "prompt denied",
			gw:         &fakeGateway{status: AuthNotDetermined},
			want:       false,
			wantPrompt: true,
		},
		{
			name:       "prompt error reads as denied",
			gw:         &fakeGateway{status: AuthNotDetermined, grant: true, grantErr: errors.New("no agent")},
			want:       false,
			wantPrompt: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewScheduler(tt.gw).RequestPermission(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			if tt.gw.prompted != tt.wantPrompt {
				t.Errorf("expected prompted=%v, got %v", tt.wantPrompt, tt.gw.prompted)
			}
		})
	}
}
