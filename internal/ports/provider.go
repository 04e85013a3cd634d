// Package ports defines the interfaces between the application core
// and its adapters.
package ports

import (
	"context"
	"time"

	"github.com/vitalcoach/vital-cli/internal/domain"
)

// HealthProvider is the boundary to the wearable data source. The mock
// implementation serves a fixed snapshot and device list supplied at
// process start; the core never fetches anything itself.
type HealthProvider interface {
	// Snapshot returns the current health metrics bundle.
	Snapshot(ctx context.Context) (*domain.HealthSnapshot, error)

	// Readiness returns the workout-readiness tier derived from the
	// snapshot.
	Readiness(ctx context.Context) (domain.ReadinessTier, error)

	// Devices returns the connected device records. Callers own sync
	// transitions through domain.DeviceRecord methods.
	Devices(ctx context.Context) ([]*domain.DeviceRecord, error)

	// SyncLatency is the simulated duration of one refresh.
	SyncLatency() time.Duration
}
