package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vitalcoach/vital-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := app.config

		if jsonOutput {
			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		path, err := config.GetConfigPath()
		if err == nil {
			fmt.Printf("Config file: %s\n\n", path)
		}
		fmt.Printf("first_run: %t\n", cfg.FirstRun)
		fmt.Printf("goals.step_target: %d\n", cfg.Goals.StepTarget)
		fmt.Printf("goals.calorie_target: %d\n", cfg.Goals.CalorieTarget)
		fmt.Printf("goals.sleep_hours_target: %.1f\n", cfg.Goals.SleepHoursTarget)
		fmt.Printf("goals.active_minutes_goal: %d\n", cfg.Goals.ActiveMinutesGoal)
		fmt.Printf("sync.latency: %s\n", cfg.Sync.Latency)
		fmt.Printf("notifications.enabled: %t\n", cfg.Notifications.Enabled)
		fmt.Printf("notifications.sound: %t\n", cfg.Notifications.Sound)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyConfigValue(app.config, args[0], args[1]); err != nil {
			return err
		}
		if err := config.Save(app.config); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Printf("Set %s = %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

func applyConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "goals.step_target":
		return setIntValue(&cfg.Goals.StepTarget, value)
	case "goals.calorie_target":
		return setIntValue(&cfg.Goals.CalorieTarget, value)
	case "goals.active_minutes_goal":
		return setIntValue(&cfg.Goals.ActiveMinutesGoal, value)
	case "goals.sleep_hours_target":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || v <= 0 {
			return fmt.Errorf("invalid value for %s: %s", key, value)
		}
		cfg.Goals.SleepHoursTarget = v
		return nil
	case "sync.latency":
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid duration for %s: %s", key, value)
		}
		cfg.Sync.Latency = config.Duration(d)
		return nil
	case "notifications.enabled":
		return setBoolValue(&cfg.Notifications.Enabled, key, value)
	case "notifications.sound":
		return setBoolValue(&cfg.Notifications.Sound, key, value)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}

func setIntValue(dst *int, value string) error {
	v, err := strconv.Atoi(value)
	if err != nil || v <= 0 {
		return fmt.Errorf("invalid value: %s", value)
	}
	*dst = v
	return nil
}

func setBoolValue(dst *bool, key, value string) error {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %s", key, value)
	}
	*dst = v
	return nil
}
