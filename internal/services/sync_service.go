package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vitalcoach/vital-cli/internal/domain"
	"github.com/vitalcoach/vital-cli/internal/ports"
)

// SyncService coordinates device refreshes against the health
// provider. It owns the pending -> syncing -> synced/error transitions
// on the provider's device records.
type SyncService struct {
	provider ports.HealthProvider
}

// NewSyncService creates a new sync service.
func NewSyncService(provider ports.HealthProvider) *SyncService {
	return &SyncService{provider: provider}
}

// Devices returns the current device records.
func (s *SyncService) Devices(ctx context.Context) ([]*domain.DeviceRecord, error) {
	return s.provider.Devices(ctx)
}

// Snapshot returns the current health metrics bundle.
func (s *SyncService) Snapshot(ctx context.Context) (*domain.HealthSnapshot, error) {
	return s.provider.Snapshot(ctx)
}

// Readiness returns the workout-readiness tier.
func (s *SyncService) Readiness(ctx context.Context) (domain.ReadinessTier, error) {
	return s.provider.Readiness(ctx)
}

// Latency is the simulated duration of one refresh.
func (s *SyncService) Latency() time.Duration {
	return s.provider.SyncLatency()
}

// RequestSync moves the named device into syncing. It returns false
// without error when the device is already syncing, so repeated
// requests cannot stack refreshes.
func (s *SyncService) RequestSync(ctx context.Context, deviceID string) (bool, error) {
	device, err := s.findDevice(ctx, deviceID)
	if err != nil {
		return false, err
	}
	return device.BeginSync(), nil
}

// ResolveSync completes an in-flight refresh, stamping the sync time.
// It is a no-op on devices that are not syncing, which covers the
// case of a refresh resolving after the device was reset.
func (s *SyncService) ResolveSync(ctx context.Context, deviceID string) error {
	device, err := s.findDevice(ctx, deviceID)
	if err != nil {
		return err
	}
	device.CompleteSync(time.Now())
	return nil
}

// FailSync marks an in-flight refresh as errored.
func (s *SyncService) FailSync(ctx context.Context, deviceID string) error {
	device, err := s.findDevice(ctx, deviceID)
	if err != nil {
		return err
	}
	device.FailSync()
	return nil
}

func (s *SyncService) findDevice(ctx context.Context, deviceID string) (*domain.DeviceRecord, error) {
	devices, err := s.provider.Devices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	for _, d := range devices {
		if d.ID == deviceID {
			return d, nil
		}
	}
	return nil, fmt.Errorf("unknown device: %s", deviceID)
}
