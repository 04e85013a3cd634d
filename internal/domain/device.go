package domain

import (
	"fmt"
	"time"
)

// SyncStatus is the lifecycle state of a device's most recent data pull.
type SyncStatus string

const (
	SyncPending SyncStatus = "pending"
	SyncSyncing SyncStatus = "syncing"
	SyncSynced  SyncStatus = "synced"
	SyncError   SyncStatus = "error"
)

// DeviceType identifies a supported wearable family.
type DeviceType string

const (
	DeviceAppleWatch DeviceType = "apple_watch"
	DeviceFitbit     DeviceType = "fitbit"
	DeviceGarmin     DeviceType = "garmin"
	DeviceSamsung    DeviceType = "samsung"
)

// DeviceRecord is one connected wearable. Its sync status is mutated
// only through the transition methods below, never directly.
type DeviceRecord struct {
	ID           string
	Name         string
	Type         DeviceType
	BatteryLevel int // 0-100
	LastSyncAt   time.Time
	Connected    bool
	Status       SyncStatus
}

// BeginSync moves the device into the syncing state. It is legal from
// pending, synced, and error; a call while already syncing is a no-op
// so a second refresh can never overlap the one in flight. The return
// value reports whether a new sync actually started.
func (d *DeviceRecord) BeginSync() bool {
	if d.Status == SyncSyncing {
		return false
	}
	d.Status = SyncSyncing
	return true
}

// CompleteSync resolves an in-flight sync, stamping the sync time.
// Calls outside the syncing state are ignored.
func (d *DeviceRecord) CompleteSync(now time.Time) {
	if d.Status != SyncSyncing {
		return
	}
	d.Status = SyncSynced
	d.LastSyncAt = now
}

// FailSync resolves an in-flight sync into the error state. The state
// is recoverable only by a fresh BeginSync; there is no automatic retry.
func (d *DeviceRecord) FailSync() {
	if d.Status != SyncSyncing {
		return
	}
	d.Status = SyncError
}

// GetSyncStatusLabel returns a human-readable label for a sync status.
func GetSyncStatusLabel(s SyncStatus) string {
	switch s {
	case SyncSynced:
		return "Synced"
	case SyncSyncing:
		return "Syncing..."
	case SyncError:
		return "Sync Error"
	case SyncPending:
		return "Pending"
	default:
		return "Unknown"
	}
}

// GetDeviceTypeLabel returns the product family name for a device type.
func GetDeviceTypeLabel(t DeviceType) string {
	switch t {
	case DeviceAppleWatch:
		return "Apple Watch"
	case DeviceFitbit:
		return "Fitbit"
	case DeviceGarmin:
		return "Garmin"
	case DeviceSamsung:
		return "Samsung Galaxy Watch"
	default:
		return "Smartwatch"
	}
}

// FormatTimeSince renders the distance between two timestamps the way
// the device views display it: "Just now" under a minute, then m/h/d
// buckets with floor rounding.
func FormatTimeSince(last, now time.Time) string {
	mins := int(now.Sub(last).Minutes())
	if mins < 1 {
		return "Just now"
	}
	if mins < 60 {
		return fmt.Sprintf("%dm ago", mins)
	}
	hours := mins / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	return fmt.Sprintf("%dd ago", hours/24)
}
