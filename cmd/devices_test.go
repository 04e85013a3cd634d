package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/vitalcoach/vital-cli/internal/adapters/notification"
	"github.com/vitalcoach/vital-cli/internal/config"
	"github.com/vitalcoach/vital-cli/internal/device"
	"github.com/vitalcoach/vital-cli/internal/domain"
	"github.com/vitalcoach/vital-cli/internal/services"
)

// wireTestDeps points the command globals at a fast provider so the
// refresh path doesn't wait out the real sync latency.
func wireTestDeps() {
	cfg := config.DefaultConfig()
	app.config = cfg
	app.notifier = notification.New(&cfg.Notifications)
	app.provider = device.NewMockProvider(5 * time.Millisecond)
	app.workouts = services.NewWorkoutService()
	app.sync = services.NewSyncService(app.provider)
	app.profiles = services.NewProfileService()
}

func TestRefreshDevices(t *testing.T) {
	wireTestDeps()
	ctx := context.Background()

	before := time.Now()
	if err := refreshDevices(ctx); err != nil {
		t.Fatalf("refreshDevices() error = %v", err)
	}

	devices, err := app.sync.Devices(ctx)
	if err != nil {
		t.Fatalf("Devices() error = %v", err)
	}
	for _, d := range devices {
		if d.Status != domain.SyncSynced {
			t.Errorf("device %s status = %q, want %q", d.ID, d.Status, domain.SyncSynced)
		}
		if d.LastSyncAt.Before(before) {
			t.Errorf("device %s LastSyncAt was not refreshed", d.ID)
		}
	}
}

func TestRefreshDevices_Canceled(t *testing.T) {
	wireTestDeps()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := refreshDevices(ctx); err == nil {
		t.Error("refreshDevices() with canceled context should return an error")
	}
}
