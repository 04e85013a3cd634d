// Package device implements the mock wearable provider. It exposes a
// fixed health snapshot and device list with a simulated refresh
// latency; no real device protocol is involved.
package device

import (
	"context"
	"time"

	"github.com/vitalcoach/vital-cli/internal/domain"
)

// DefaultSyncLatency is the artificial delay of one simulated refresh.
const DefaultSyncLatency = 2 * time.Second

// MockProvider implements ports.HealthProvider over seed data.
type MockProvider struct {
	snapshot  domain.HealthSnapshot
	readiness domain.ReadinessTier
	devices   []*domain.DeviceRecord
	latency   time.Duration
}

// NewMockProvider builds the provider with the standard seed data:
// one connected Apple Watch synced five minutes ago, and the fixed
// metrics bundle the dashboard runs on.
func NewMockProvider(latency time.Duration) *MockProvider {
	if latency <= 0 {
		latency = DefaultSyncLatency
	}
	now := time.Now()
	return &MockProvider{
		snapshot: domain.HealthSnapshot{
			RestingHeartRate: 62,
			HRV:              45,
			SleepScore:       85,
			SleepHours:       7.5,
			RecoveryScore:    78,
			Steps:            8432,
			CaloriesBurned:   2340,
			ActiveMinutes:    87,
			HeartRateSeries:  []int{65, 68, 72, 69, 71, 67, 70},
			Timestamp:        now,
		},
		readiness: domain.ReadinessHigh,
		devices: []*domain.DeviceRecord{
			{
				ID:           "watch-1",
				Name:         "Alex's Apple Watch",
				Type:         domain.DeviceAppleWatch,
				BatteryLevel: 78,
				LastSyncAt:   now.Add(-5 * time.Minute),
				Connected:    true,
				Status:       domain.SyncSynced,
			},
		},
		latency: latency,
	}
}

// Snapshot returns a copy of the fixed metrics bundle so callers can
// never mutate the seed.
func (p *MockProvider) Snapshot(ctx context.Context) (*domain.HealthSnapshot, error) {
	s := p.snapshot
	s.HeartRateSeries = append([]int(nil), p.snapshot.HeartRateSeries...)
	return &s, nil
}

// Readiness returns the seeded readiness tier.
func (p *MockProvider) Readiness(ctx context.Context) (domain.ReadinessTier, error) {
	return p.readiness, nil
}

// Devices returns the seeded device records. The records themselves
// are shared: the sync service owns their status transitions.
func (p *MockProvider) Devices(ctx context.Context) ([]*domain.DeviceRecord, error) {
	return p.devices, nil
}

// SyncLatency returns the simulated refresh duration.
func (p *MockProvider) SyncLatency() time.Duration {
	return p.latency
}
