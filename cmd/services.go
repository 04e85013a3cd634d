package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vitalcoach/vital-cli/internal/adapters/notification"
	"github.com/vitalcoach/vital-cli/internal/config"
	"github.com/vitalcoach/vital-cli/internal/device"
	"github.com/vitalcoach/vital-cli/internal/ports"
	"github.com/vitalcoach/vital-cli/internal/services"
)

// appDeps groups everything the commands need after initialization.
type appDeps struct {
	config   *config.Config
	provider ports.HealthProvider
	notifier *notification.Notifier
	workouts *services.WorkoutService
	sync     *services.SyncService
	profiles *services.ProfileService
}

var app appDeps

func initializeServices() error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	app.config = cfg
	app.notifier = notification.New(&cfg.Notifications)
	app.provider = device.NewMockProvider(time.Duration(cfg.Sync.Latency))
	app.workouts = services.NewWorkoutService()
	app.sync = services.NewSyncService(app.provider)
	app.profiles = services.NewProfileService()
	return nil
}

func setupSignalHandler() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()
	return ctx, cancel
}
