package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vitalcoach/vital-cli/internal/domain"
)

var syncDevices bool

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List connected devices and their sync state",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := setupSignalHandler()
		defer cancel()
		if syncDevices {
			if err := refreshDevices(ctx); err != nil {
				return err
			}
		}
		return listDevices(ctx)
	},
}

func init() {
	devicesCmd.Flags().BoolVar(&syncDevices, "sync", false, "refresh every device before listing")
}

func listDevices(ctx context.Context) error {
	devices, err := app.sync.Devices(ctx)
	if err != nil {
		return fmt.Errorf("failed to list devices: %w", err)
	}

	if jsonOutput {
		list := make([]map[string]interface{}, 0, len(devices))
		for _, d := range devices {
			list = append(list, map[string]interface{}{
				"id":            d.ID,
				"name":          d.Name,
				"type":          string(d.Type),
				"status":        string(d.Status),
				"battery_level": d.BatteryLevel,
				"last_sync_at":  d.LastSyncAt,
				"connected":     d.Connected,
			})
		}
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal devices: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	now := time.Now()
	for _, d := range devices {
		fmt.Printf("%-24s %-12s %-10s battery %3d%%  last sync %s\n",
			d.Name,
			domain.GetDeviceTypeLabel(d.Type),
			domain.GetSyncStatusLabel(d.Status),
			d.BatteryLevel,
			domain.FormatTimeSince(d.LastSyncAt, now))
	}
	return nil
}

// refreshDevices syncs each device in turn, waiting out the provider
// latency so the listing afterwards shows fresh timestamps.
func refreshDevices(ctx context.Context) error {
	devices, err := app.sync.Devices(ctx)
	if err != nil {
		return fmt.Errorf("failed to list devices: %w", err)
	}
	for _, d := range devices {
		started, err := app.sync.RequestSync(ctx, d.ID)
		if err != nil {
			return fmt.Errorf("failed to sync %s: %w", d.Name, err)
		}
		if !started {
			continue
		}
		select {
		case <-time.After(app.sync.Latency()):
		case <-ctx.Done():
			return ctx.Err()
		}
		if err := app.sync.ResolveSync(ctx, d.ID); err != nil {
			return fmt.Errorf("failed to finish sync for %s: %w", d.Name, err)
		}
		fmt.Printf("Synced %s\n", d.Name)
		app.notifier.NotifySyncComplete(d.Name)
	}
	return nil
}
