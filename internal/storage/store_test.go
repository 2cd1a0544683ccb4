package storage

import (
	"testing"
	"time"

	"github.com/julianstephens/fastlit/internal/constants"
	"github.com/julianstephens/fastlit/internal/models"
)

func TestSessionsRoundTrip(t *testing.T) {
	store := NewStore(NewMemoryStore())

	base := time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)
	older := models.NewFastSession(16, base)
	newer := models.NewFastSession(18, base.Add(24*time.Hour))

	if err := store.SaveSessions([]models.FastSession{older, newer}); err != nil {
		t.Fatalf("SaveSessions: %v", err)
	}

	got := store.Sessions()
	if len(got) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(got))
	}
	if got[0].ID != newer.ID || got[1].ID != older.ID {
		t.Errorf("sessions not sorted newest first: got %s, %s", got[0].ID, got[1].ID)
	}
	if got[0].PlanHours != 18 {
		t.Errorf("expected plan hours 18, got %d", got[0].PlanHours)
	}
}

func TestSessionsDefaultsOnMissingOrCorrupt(t *testing.T) {
	tests := []struct {
		name string
		seed []byte
	}{
		{name: "missing key", seed: nil},
		{name: "corrupt payload", seed: []byte("{not json")},
		{name: "wrong shape", seed: []byte(`{"a":1}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := NewMemoryStore()
			if tt.seed != nil {
				gw.values[constants.KeySessions] = tt.seed
			}
			got := NewStore(gw).Sessions()
			if got == nil || len(got) != 0 {
				t.Errorf("expected empty history, got %v", got)
			}
		})
	}
}

func TestPlanRoundTrip(t *testing.T) {
	store := NewStore(NewMemoryStore())

	if got := store.Plan(); got.Kind != models.PlanSixteenEight {
		t.Errorf("expected default 16:8 plan, got %v", got.Kind)
	}

	custom := models.FastingPlan{Kind: models.PlanCustom, CustomHours: 14}
	if err := store.SavePlan(custom); err != nil {
		t.Fatalf("SavePlan: %v", err)
	}

	got := store.Plan()
	if got.Kind != models.PlanCustom || got.CustomHours != 14 {
		t.Errorf("expected custom:14 plan after reload, got %+v", got)
	}
}

func TestPlanDefaultsOnCorrupt(t *testing.T) {
	gw := NewMemoryStore()
	gw.values[constants.KeyPlan] = []byte("42")

	got := NewStore(gw).Plan()
	if got.Kind != models.PlanSixteenEight {
		t.Errorf("expected fallback to 16:8, got %v", got.Kind)
	}
}

func TestRemindersRoundTrip(t *testing.T) {
	store := NewStore(NewMemoryStore())

	defaults := store.Reminders()
	if !defaults.Enabled || defaults.PreEndMinutes == nil || *defaults.PreEndMinutes != constants.DefaultPreEndMinutes {
		t.Errorf("unexpected defaults: %+v", defaults)
	}

	pre := 30
	want := models.ReminderSettings{
		Enabled:       true,
		StartAlert:    true,
		EndAlert:      false,
		PreEndMinutes: &pre,
		SnoozeMinutes: 15,
	}
	if err := store.SaveReminders(want); err != nil {
		t.Fatalf("SaveReminders: %v", err)
	}

	got := store.Reminders()
	if got.EndAlert || !got.StartAlert || got.SnoozeMinutes != 15 {
		t.Errorf("reminders did not survive round trip: %+v", got)
	}
	if got.PreEndMinutes == nil || *got.PreEndMinutes != 30 {
		t.Errorf("expected pre-end 30, got %v", got.PreEndMinutes)
	}
}

func TestRemindersDefaultsOnCorrupt(t *testing.T) {
	gw := NewMemoryStore()
	gw.values[constants.KeyReminders] = []byte("{not json")

	got := NewStore(gw).Reminders()
	want := models.DefaultReminderSettings()
	if got.Enabled != want.Enabled || got.StartAlert != want.StartAlert || got.EndAlert != want.EndAlert {
		t.Errorf("expected default alert flags, got %+v", got)
	}
	if got.PreEndMinutes == nil || *got.PreEndMinutes != constants.DefaultPreEndMinutes {
		t.Errorf("expected default pre-end %d, got %v", constants.DefaultPreEndMinutes, got.PreEndMinutes)
	}
	if got.SnoozeMinutes != constants.DefaultSnoozeMinutes {
		t.Errorf("expected default snooze %d, got %d", constants.DefaultSnoozeMinutes, got.SnoozeMinutes)
	}
}

func TestBoolPreferences(t *testing.T) {
	store := NewStore(NewMemoryStore())

	if store.TimeFormat24h() || store.Onboarded() || store.HealthLinked() {
		t.Fatal("expected all boolean preferences to default to false")
	}

	if err := store.SetTimeFormat24h(true); err != nil {
		t.Fatalf("SetTimeFormat24h: %v", err)
	}
	if err := store.SetOnboarded(true); err != nil {
		t.Fatalf("SetOnboarded: %v", err)
	}
	if err := store.SetHealthLinked(true); err != nil {
		t.Fatalf("SetHealthLinked: %v", err)
	}

	if !store.TimeFormat24h() || !store.Onboarded() || !store.HealthLinked() {
		t.Error("expected boolean preferences to persist")
	}
}
