package domain

import (
	"testing"
	"time"
)

func TestDeviceRecord_BeginSync(t *testing.T) {
	tests := []struct {
		name      string
		from      SyncStatus
		wantStart bool
	}{
		{"from pending", SyncPending, true},
		{"from synced", SyncSynced, true},
		{"from error", SyncError, true},
		{"re-entrant while syncing", SyncSyncing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &DeviceRecord{Status: tt.from}
			got := d.BeginSync()
			if got != tt.wantStart {
				t.Errorf("BeginSync() = %v, want %v", got, tt.wantStart)
			}
			if d.Status != SyncSyncing {
				t.Errorf("Status = %v after BeginSync, want syncing", d.Status)
			}
		})
	}
}

func TestDeviceRecord_CompleteSync(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	d := &DeviceRecord{Status: SyncSyncing}
	d.CompleteSync(now)
	if d.Status != SyncSynced {
		t.Errorf("Status = %v, want synced", d.Status)
	}
	if !d.LastSyncAt.Equal(now) {
		t.Errorf("LastSyncAt = %v, want %v", d.LastSyncAt, now)
	}

	// Completing outside the syncing state is ignored.
	idle := &DeviceRecord{Status: SyncSynced, LastSyncAt: now.Add(-time.Hour)}
	idle.CompleteSync(now)
	if idle.LastSyncAt.Equal(now) {
		t.Error("CompleteSync stamped time outside the syncing state")
	}
}

func TestDeviceRecord_FailSync(t *testing.T) {
	d := &DeviceRecord{Status: SyncSyncing}
	d.FailSync()
	if d.Status != SyncError {
		t.Errorf("Status = %v, want error", d.Status)
	}

	// Error is recoverable only via a fresh BeginSync.
	if !d.BeginSync() {
		t.Error("BeginSync() from error state should start")
	}

	// FailSync outside syncing is a no-op.
	idle := &DeviceRecord{Status: SyncPending}
	idle.FailSync()
	if idle.Status != SyncPending {
		t.Errorf("Status = %v, FailSync mutated a non-syncing device", idle.Status)
	}
}

func TestFormatTimeSince(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		last time.Time
		want string
	}{
		{"under a minute", now.Add(-30 * time.Second), "Just now"},
		{"five minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"forty-five minutes", now.Add(-45 * time.Minute), "45m ago"},
		{"ninety minutes", now.Add(-90 * time.Minute), "1h ago"},
		{"twenty-three hours", now.Add(-23 * time.Hour), "23h ago"},
		{"two days", now.Add(-2880 * time.Minute), "2d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatTimeSince(tt.last, now)
			if got != tt.want {
				t.Errorf("FormatTimeSince() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetSyncStatusLabel(t *testing.T) {
	tests := []struct {
		status SyncStatus
		want   string
	}{
		{SyncSynced, "Synced"},
		{SyncSyncing, "Syncing..."},
		{SyncError, "Sync Error"},
		{SyncPending, "Pending"},
		{SyncStatus("weird"), "Unknown"},
	}

	for _, tt := range tests {
		if got := GetSyncStatusLabel(tt.status); got != tt.want {
			t.Errorf("GetSyncStatusLabel(%v) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
