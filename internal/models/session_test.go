package models

import (
	"testing"
	"time"
)

func TestSessionDerivedValues(t *testing.T) {
	start := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	s := NewFastSession(16, start)

	if s.ID == "" {
		t.Error("NewFastSession() did not assign an id")
	}
	if !s.ScheduledEnd().Equal(start.Add(16 * time.Hour)) {
		t.Errorf("ScheduledEnd() = %v, want start + 16h", s.ScheduledEnd())
	}
	if !s.DisplayEnd().Equal(s.ScheduledEnd()) {
		t.Errorf("DisplayEnd() without override = %v, want scheduled end", s.DisplayEnd())
	}

	override := start.Add(12 * time.Hour)
	s.End = &override
	if !s.DisplayEnd().Equal(override) {
		t.Errorf("DisplayEnd() with override = %v, want %v", s.DisplayEnd(), override)
	}
}

func TestSessionIsActive(t *testing.T) {
	start := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	completed := start.Add(10 * time.Hour)

	tests := []struct {
		name        string
		completedAt *time.Time
		now         time.Time
		want        bool
	}{
		{
			name: "open before scheduled end",
			now:  start.Add(8 * time.Hour),
			want: true,
		},
		{
			name: "open after scheduled end",
			now:  start.Add(17 * time.Hour),
			want: false,
		},
		{
			name:        "completed",
			completedAt: &completed,
			now:         start.Add(8 * time.Hour),
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewFastSession(16, start)
			s.CompletedAt = tt.completedAt
			if got := s.IsActive(tt.now); got != tt.want {
				t.Errorf("IsActive(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}
