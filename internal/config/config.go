// Package config provides configuration management for Vital.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the Vital application.
type Config struct {
	FirstRun      bool               `mapstructure:"first_run"`
	Goals         GoalsConfig        `mapstructure:"goals"`
	Sync          SyncConfig         `mapstructure:"sync"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// GoalsConfig holds the daily targets derived metrics are measured
// against.
type GoalsConfig struct {
	StepTarget        int     `mapstructure:"step_target"`
	CalorieTarget     int     `mapstructure:"calorie_target"`
	SleepHoursTarget  float64 `mapstructure:"sleep_hours_target"`
	ActiveMinutesGoal int     `mapstructure:"active_minutes_goal"`
}

// SyncConfig holds device refresh settings.
type SyncConfig struct {
	Latency Duration `mapstructure:"latency"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// ThemeConfig holds theme customization settings (colors and icons).
// Categorical color tokens are keyed by the domain values they render:
// readiness tiers, difficulty grades, sync statuses, and BMI bands.
type ThemeConfig struct {
	ColorTitle  string `mapstructure:"color_title"`
	ColorAccent string `mapstructure:"color_accent"`
	ColorHelp   string `mapstructure:"color_help"`
	ColorValue  string `mapstructure:"color_value"`

	ColorReadinessHigh   string `mapstructure:"color_readiness_high"`
	ColorReadinessMedium string `mapstructure:"color_readiness_medium"`
	ColorReadinessLow    string `mapstructure:"color_readiness_low"`

	ColorDifficultyEasy   string `mapstructure:"color_difficulty_easy"`
	ColorDifficultyMedium string `mapstructure:"color_difficulty_medium"`
	ColorDifficultyHard   string `mapstructure:"color_difficulty_hard"`

	ColorSyncSynced  string `mapstructure:"color_sync_synced"`
	ColorSyncSyncing string `mapstructure:"color_sync_syncing"`
	ColorSyncError   string `mapstructure:"color_sync_error"`
	ColorSyncPending string `mapstructure:"color_sync_pending"`

	ColorBMIUnderweight string `mapstructure:"color_bmi_underweight"`
	ColorBMINormal      string `mapstructure:"color_bmi_normal"`
	ColorBMIOverweight  string `mapstructure:"color_bmi_overweight"`
	ColorBMIObese       string `mapstructure:"color_bmi_obese"`

	ProgressGradientStart string `mapstructure:"progress_gradient_start"`
	ProgressGradientEnd   string `mapstructure:"progress_gradient_end"`

	IconApp    string `mapstructure:"icon_app"`
	IconHeart  string `mapstructure:"icon_heart"`
	IconSleep  string `mapstructure:"icon_sleep"`
	IconActive string `mapstructure:"icon_active"`
	IconWatch  string `mapstructure:"icon_watch"`
	IconDone   string `mapstructure:"icon_done"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorTitle:  "#6B7280",
		ColorAccent: "#7C6FE0",
		ColorHelp:   "#95A5A6",
		ColorValue:  "#A0AEC0",

		ColorReadinessHigh:   "#2ECC71",
		ColorReadinessMedium: "#F1C40F",
		ColorReadinessLow:    "#E74C3C",

		ColorDifficultyEasy:   "#2ECC71",
		ColorDifficultyMedium: "#F1C40F",
		ColorDifficultyHard:   "#E74C3C",

		ColorSyncSynced:  "#2ECC71",
		ColorSyncSyncing: "#3498DB",
		ColorSyncError:   "#E74C3C",
		ColorSyncPending: "#F1C40F",

		ColorBMIUnderweight: "#3498DB",
		ColorBMINormal:      "#2ECC71",
		ColorBMIOverweight:  "#F1C40F",
		ColorBMIObese:       "#E74C3C",

		ProgressGradientStart: "#7C6FE0",
		ProgressGradientEnd:   "#A78BFA",

		IconApp:    "💚",
		IconHeart:  "❤",
		IconSleep:  "🌙",
		IconActive: "⚡",
		IconWatch:  "⌚",
		IconDone:   "✓",
	}
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		FirstRun: true,
		Goals: GoalsConfig{
			StepTarget:        10000,
			CalorieTarget:     2500,
			SleepHoursTarget:  8,
			ActiveMinutesGoal: 90,
		},
		Sync: SyncConfig{
			Latency: Duration(2 * time.Second),
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from the config file.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	setDefaults()

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("first_run", cfg.FirstRun)
	viper.Set("goals.step_target", cfg.Goals.StepTarget)
	viper.Set("goals.calorie_target", cfg.Goals.CalorieTarget)
	viper.Set("goals.sleep_hours_target", cfg.Goals.SleepHoursTarget)
	viper.Set("goals.active_minutes_goal", cfg.Goals.ActiveMinutesGoal)
	viper.Set("sync.latency", cfg.Sync.Latency.String())
	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("notifications.sound", cfg.Notifications.Sound)
	viper.Set("theme.color_title", cfg.Theme.ColorTitle)
	viper.Set("theme.color_accent", cfg.Theme.ColorAccent)
	viper.Set("theme.color_help", cfg.Theme.ColorHelp)
	viper.Set("theme.color_value", cfg.Theme.ColorValue)
	viper.Set("theme.color_readiness_high", cfg.Theme.ColorReadinessHigh)
	viper.Set("theme.color_readiness_medium", cfg.Theme.ColorReadinessMedium)
	viper.Set("theme.color_readiness_low", cfg.Theme.ColorReadinessLow)
	viper.Set("theme.color_difficulty_easy", cfg.Theme.ColorDifficultyEasy)
	viper.Set("theme.color_difficulty_medium", cfg.Theme.ColorDifficultyMedium)
	viper.Set("theme.color_difficulty_hard", cfg.Theme.ColorDifficultyHard)
	viper.Set("theme.color_sync_synced", cfg.Theme.ColorSyncSynced)
	viper.Set("theme.color_sync_syncing", cfg.Theme.ColorSyncSyncing)
	viper.Set("theme.color_sync_error", cfg.Theme.ColorSyncError)
	viper.Set("theme.color_sync_pending", cfg.Theme.ColorSyncPending)
	viper.Set("theme.color_bmi_underweight", cfg.Theme.ColorBMIUnderweight)
	viper.Set("theme.color_bmi_normal", cfg.Theme.ColorBMINormal)
	viper.Set("theme.color_bmi_overweight", cfg.Theme.ColorBMIOverweight)
	viper.Set("theme.color_bmi_obese", cfg.Theme.ColorBMIObese)
	viper.Set("theme.progress_gradient_start", cfg.Theme.ProgressGradientStart)
	viper.Set("theme.progress_gradient_end", cfg.Theme.ProgressGradientEnd)
	viper.Set("theme.icon_app", cfg.Theme.IconApp)
	viper.Set("theme.icon_heart", cfg.Theme.IconHeart)
	viper.Set("theme.icon_sleep", cfg.Theme.IconSleep)
	viper.Set("theme.icon_active", cfg.Theme.IconActive)
	viper.Set("theme.icon_watch", cfg.Theme.IconWatch)
	viper.Set("theme.icon_done", cfg.Theme.IconDone)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".vital", "config.toml"), nil
}

// setDefaults sets default values for viper.
func setDefaults() {
	viper.SetDefault("first_run", true)
	viper.SetDefault("goals.step_target", 10000)
	viper.SetDefault("goals.calorie_target", 2500)
	viper.SetDefault("goals.sleep_hours_target", 8.0)
	viper.SetDefault("goals.active_minutes_goal", 90)
	viper.SetDefault("sync.latency", "2s")
	viper.SetDefault("notifications.enabled", true)
	viper.SetDefault("notifications.sound", true)

	defaults := DefaultThemeConfig()
	viper.SetDefault("theme.color_title", defaults.ColorTitle)
	viper.SetDefault("theme.color_accent", defaults.ColorAccent)
	viper.SetDefault("theme.color_help", defaults.ColorHelp)
	viper.SetDefault("theme.color_value", defaults.ColorValue)
	viper.SetDefault("theme.color_readiness_high", defaults.ColorReadinessHigh)
	viper.SetDefault("theme.color_readiness_medium", defaults.ColorReadinessMedium)
	viper.SetDefault("theme.color_readiness_low", defaults.ColorReadinessLow)
	viper.SetDefault("theme.color_difficulty_easy", defaults.ColorDifficultyEasy)
	viper.SetDefault("theme.color_difficulty_medium", defaults.ColorDifficultyMedium)
	viper.SetDefault("theme.color_difficulty_hard", defaults.ColorDifficultyHard)
	viper.SetDefault("theme.color_sync_synced", defaults.ColorSyncSynced)
	viper.SetDefault("theme.color_sync_syncing", defaults.ColorSyncSyncing)
	viper.SetDefault("theme.color_sync_error", defaults.ColorSyncError)
	viper.SetDefault("theme.color_sync_pending", defaults.ColorSyncPending)
	viper.SetDefault("theme.color_bmi_underweight", defaults.ColorBMIUnderweight)
	viper.SetDefault("theme.color_bmi_normal", defaults.ColorBMINormal)
	viper.SetDefault("theme.color_bmi_overweight", defaults.ColorBMIOverweight)
	viper.SetDefault("theme.color_bmi_obese", defaults.ColorBMIObese)
	viper.SetDefault("theme.progress_gradient_start", defaults.ProgressGradientStart)
	viper.SetDefault("theme.progress_gradient_end", defaults.ProgressGradientEnd)
	viper.SetDefault("theme.icon_app", defaults.IconApp)
	viper.SetDefault("theme.icon_heart", defaults.IconHeart)
	viper.SetDefault("theme.icon_sleep", defaults.IconSleep)
	viper.SetDefault("theme.icon_active", defaults.IconActive)
	viper.SetDefault("theme.icon_watch", defaults.IconWatch)
	viper.SetDefault("theme.icon_done", defaults.IconDone)
}

// ReadinessColor returns the theme token for a readiness tier string.
// Unknown values fall back to the help color.
func (t *ThemeConfig) ReadinessColor(tier string) string {
	switch tier {
	case "High":
		return t.ColorReadinessHigh
	case "Medium":
		return t.ColorReadinessMedium
	case "Low":
		return t.ColorReadinessLow
	default:
		return t.ColorHelp
	}
}

// DifficultyColor returns the theme token for a difficulty grade.
func (t *ThemeConfig) DifficultyColor(level string) string {
	switch level {
	case "Easy":
		return t.ColorDifficultyEasy
	case "Medium":
		return t.ColorDifficultyMedium
	case "Hard":
		return t.ColorDifficultyHard
	default:
		return t.ColorHelp
	}
}

// SyncStatusColor returns the theme token for a sync status.
func (t *ThemeConfig) SyncStatusColor(status string) string {
	switch status {
	case "synced":
		return t.ColorSyncSynced
	case "syncing":
		return t.ColorSyncSyncing
	case "error":
		return t.ColorSyncError
	case "pending":
		return t.ColorSyncPending
	default:
		return t.ColorHelp
	}
}

// BMIColor returns the theme token for a BMI category.
func (t *ThemeConfig) BMIColor(category string) string {
	switch category {
	case "underweight":
		return t.ColorBMIUnderweight
	case "normal":
		return t.ColorBMINormal
	case "overweight":
		return t.ColorBMIOverweight
	case "obese":
		return t.ColorBMIObese
	default:
		return t.ColorHelp
	}
}
