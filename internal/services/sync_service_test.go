package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalcoach/vital-cli/internal/device"
	"github.com/vitalcoach/vital-cli/internal/domain"
)

func newSyncService(t *testing.T) *SyncService {
	t.Helper()
	return NewSyncService(device.NewMockProvider(50 * time.Millisecond))
}

func TestSyncService_RequestSync(t *testing.T) {
	svc := newSyncService(t)
	ctx := context.Background()

	started, err := svc.RequestSync(ctx, "watch-1")
	require.NoError(t, err)
	assert.True(t, started)

	devices, err := svc.Devices(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, domain.SyncSyncing, devices[0].Status)
}

func TestSyncService_RequestSync_AlreadySyncing(t *testing.T) {
	svc := newSyncService(t)
	ctx := context.Background()

	started, err := svc.RequestSync(ctx, "watch-1")
	require.NoError(t, err)
	require.True(t, started)

	// A second request while the first is in flight does not stack.
	started, err = svc.RequestSync(ctx, "watch-1")
	require.NoError(t, err)
	assert.False(t, started)
}

func TestSyncService_ResolveSync(t *testing.T) {
	svc := newSyncService(t)
	ctx := context.Background()

	devices, err := svc.Devices(ctx)
	require.NoError(t, err)
	before := devices[0].LastSyncAt

	_, err = svc.RequestSync(ctx, "watch-1")
	require.NoError(t, err)

	require.NoError(t, svc.ResolveSync(ctx, "watch-1"))
	assert.Equal(t, domain.SyncSynced, devices[0].Status)
	assert.True(t, devices[0].LastSyncAt.After(before))
}

func TestSyncService_ResolveSync_NotSyncing(t *testing.T) {
	svc := newSyncService(t)
	ctx := context.Background()

	devices, err := svc.Devices(ctx)
	require.NoError(t, err)
	before := devices[0].LastSyncAt

	// Resolving a device that never started refreshing changes nothing.
	require.NoError(t, svc.ResolveSync(ctx, "watch-1"))
	assert.Equal(t, domain.SyncSynced, devices[0].Status)
	assert.Equal(t, before, devices[0].LastSyncAt)
}

func TestSyncService_FailSync(t *testing.T) {
	svc := newSyncService(t)
	ctx := context.Background()

	_, err := svc.RequestSync(ctx, "watch-1")
	require.NoError(t, err)
	require.NoError(t, svc.FailSync(ctx, "watch-1"))

	devices, err := svc.Devices(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SyncError, devices[0].Status)

	// An errored device can retry.
	started, err := svc.RequestSync(ctx, "watch-1")
	require.NoError(t, err)
	assert.True(t, started)
}

func TestSyncService_UnknownDevice(t *testing.T) {
	svc := newSyncService(t)
	ctx := context.Background()

	_, err := svc.RequestSync(ctx, "ghost")
	assert.Error(t, err)
	assert.Error(t, svc.ResolveSync(ctx, "ghost"))
}

func TestSyncService_SnapshotAndReadiness(t *testing.T) {
	svc := newSyncService(t)
	ctx := context.Background()

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8432, snap.Steps)
	assert.Equal(t, 7.5, snap.SleepHours)

	tier, err := svc.Readiness(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ReadinessHigh, tier)

	assert.Equal(t, 50*time.Millisecond, svc.Latency())
}
