package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/vitalcoach/vital-cli/internal/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's health metrics and device state",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := setupSignalHandler()
		defer cancel()
		return runStatus(ctx)
	},
}

func runStatus(ctx context.Context) error {
	snapshot, err := app.sync.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to read health snapshot: %w", err)
	}
	readiness, err := app.sync.Readiness(ctx)
	if err != nil {
		return fmt.Errorf("failed to read readiness: %w", err)
	}
	devices, err := app.sync.Devices(ctx)
	if err != nil {
		return fmt.Errorf("failed to list devices: %w", err)
	}

	if jsonOutput {
		return outputStatusJSON(snapshot, readiness, devices)
	}

	goals := app.config.Goals
	fmt.Println(statusRule())
	fmt.Printf("Readiness: %s\n", readiness)
	fmt.Printf("Heart rate: %d bpm (resting %d, HRV %d ms)\n",
		snapshot.CurrentHeartRate(), snapshot.RestingHeartRate, snapshot.HRV)
	fmt.Printf("Sleep: %.1fh — %s (score %d)\n",
		snapshot.SleepHours,
		domain.GetSleepQualityLabel(domain.ClassifySleep(snapshot.SleepHours)),
		snapshot.SleepScore)
	fmt.Printf("Steps: %d / %d (%d%%)\n",
		snapshot.Steps, goals.StepTarget,
		domain.CompletionRatio(snapshot.Steps, goals.StepTarget))
	fmt.Printf("Active: %d min, %d kcal burned\n",
		snapshot.ActiveMinutes, snapshot.CaloriesBurned)
	fmt.Println(statusRule())
	for _, d := range devices {
		fmt.Printf("%-24s %s, battery %d%%, last sync %s\n",
			d.Name, domain.GetSyncStatusLabel(d.Status), d.BatteryLevel,
			domain.FormatTimeSince(d.LastSyncAt, snapshot.Timestamp))
	}
	return nil
}

func outputStatusJSON(snapshot *domain.HealthSnapshot, readiness domain.ReadinessTier, devices []*domain.DeviceRecord) error {
	deviceList := make([]map[string]interface{}, 0, len(devices))
	for _, d := range devices {
		deviceList = append(deviceList, map[string]interface{}{
			"id":            d.ID,
			"name":          d.Name,
			"type":          string(d.Type),
			"status":        string(d.Status),
			"battery_level": d.BatteryLevel,
			"last_sync_at":  d.LastSyncAt,
			"connected":     d.Connected,
		})
	}
	output := map[string]interface{}{
		"readiness": string(readiness),
		"metrics": map[string]interface{}{
			"resting_heart_rate": snapshot.RestingHeartRate,
			"current_heart_rate": snapshot.CurrentHeartRate(),
			"hrv":                snapshot.HRV,
			"sleep_hours":        snapshot.SleepHours,
			"sleep_score":        snapshot.SleepScore,
			"recovery_score":     snapshot.RecoveryScore,
			"steps":              snapshot.Steps,
			"calories_burned":    snapshot.CaloriesBurned,
			"active_minutes":     snapshot.ActiveMinutes,
		},
		"devices": deviceList,
	}
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal status: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// statusRule draws a separator sized to the terminal, capped so wide
// windows don't get a wall of dashes.
func statusRule() string {
	width := 60
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 && w < width {
		width = w
	}
	return strings.Repeat("─", width)
}
