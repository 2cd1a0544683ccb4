package utils

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{
			name: "zero",
			d:    0,
			want: "0h 00m",
		},
		{
			name: "just under an hour",
			d:    3599 * time.Second,
			want: "0h 59m",
		},
		{
			name: "exactly one hour",
			d:    3600 * time.Second,
			want: "1h 00m",
		},
		{
			name: "one hour one minute one second truncates",
			d:    3661 * time.Second,
			want: "1h 01m",
		},
		{
			name: "sixteen hours",
			d:    16 * time.Hour,
			want: "16h 00m",
		},
		{
			name: "negative clamps to zero",
			d:    -10 * time.Second,
			want: "0h 00m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.d); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	at := time.Date(2025, 6, 1, 18, 5, 0, 0, time.UTC)

	if got := FormatClock(at, true); got != "18:05" {
		t.Errorf("FormatClock(24h) = %q, want %q", got, "18:05")
	}
	if got := FormatClock(at, false); got != "6:05 PM" {
		t.Errorf("FormatClock(12h) = %q, want %q", got, "6:05 PM")
	}
}

func TestParseWhen(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "empty returns now",
			value: "",
			want:  now,
		},
		{
			name:  "RFC3339",
			value: "2025-06-01T08:30:00Z",
			want:  time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC),
		},
		{
			name:  "HH:MM on today's date",
			value: "08:30",
			want:  time.Date(2025, 6, 1, 8, 30, 0, 0, time.Local),
		},
		{
			name:    "garbage",
			value:   "not-a-time",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWhen(tt.value, now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWhen() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseWhen() = %v, want %v", got, tt.want)
			}
		})
	}
}
