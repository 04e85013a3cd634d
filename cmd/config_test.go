package cmd

import (
	"testing"
	"time"

	"github.com/vitalcoach/vital-cli/internal/config"
)

func TestApplyConfigValue(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr bool
		check   func(cfg *config.Config) bool
	}{
		{"goals.step_target", "12000", false, func(c *config.Config) bool { return c.Goals.StepTarget == 12000 }},
		{"goals.step_target", "-5", true, nil},
		{"goals.step_target", "abc", true, nil},
		{"goals.sleep_hours_target", "7.5", false, func(c *config.Config) bool { return c.Goals.SleepHoursTarget == 7.5 }},
		{"sync.latency", "500ms", false, func(c *config.Config) bool { return time.Duration(c.Sync.Latency) == 500*time.Millisecond }},
		{"sync.latency", "soon", true, nil},
		{"notifications.enabled", "false", false, func(c *config.Config) bool { return !c.Notifications.Enabled }},
		{"nonsense.key", "1", true, nil},
	}

	for _, tt := range tests {
		cfg := config.DefaultConfig()
		err := applyConfigValue(cfg, tt.key, tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("applyConfigValue(%q, %q) error = %v, wantErr %v", tt.key, tt.value, err, tt.wantErr)
			continue
		}
		if tt.check != nil && !tt.check(cfg) {
			t.Errorf("applyConfigValue(%q, %q) did not apply", tt.key, tt.value)
		}
	}
}
