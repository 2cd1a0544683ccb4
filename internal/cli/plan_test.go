package cli

import "testing"

func TestPlanCmdValidate(t *testing.T) {
	hours := func(n int) *int { return &n }

	tests := []struct {
		name    string
		cmd     PlanCmd
		wantErr bool
	}{
		{name: "no flags shows current plan", cmd: PlanCmd{}, wantErr: false},
		{name: "valid preset", cmd: PlanCmd{Preset: "18:6"}, wantErr: false},
		{name: "unknown preset", cmd: PlanCmd{Preset: "14:10"}, wantErr: true},
		{name: "valid custom hours", cmd: PlanCmd{CustomHours: hours(8)}, wantErr: false},
		{name: "custom hours upper bound", cmd: PlanCmd{CustomHours: hours(23)}, wantErr: false},
		{name: "explicit zero custom hours", cmd: PlanCmd{CustomHours: hours(0)}, wantErr: true},
		{name: "negative custom hours", cmd: PlanCmd{CustomHours: hours(-1)}, wantErr: true},
		{name: "custom hours past a day", cmd: PlanCmd{CustomHours: hours(24)}, wantErr: true},
		{name: "preset and custom together", cmd: PlanCmd{Preset: "16:8", CustomHours: hours(8)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
