// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/vitalcoach/vital-cli/internal/config"
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg *config.NotificationConfig
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if n.cfg == nil || !n.cfg.Enabled {
		return nil
	}

	return beeep.Notify(title, message, "")
}

// NotifyWorkoutComplete displays a notification when every exercise of
// a workout session is done.
func (n *Notifier) NotifyWorkoutComplete(planName string) error {
	title := "💪 Workout Complete!"
	message := fmt.Sprintf("Great job! You finished %s.", planName)
	return n.Notify(title, message)
}

// NotifySyncComplete displays a notification when a device refresh lands.
func (n *Notifier) NotifySyncComplete(deviceName string) error {
	title := "⌚ Device Synced"
	message := fmt.Sprintf("%s is up to date.", deviceName)
	return n.Notify(title, message)
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
