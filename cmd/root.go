package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vitalcoach/vital-cli/internal/adapters/tui"
	"github.com/vitalcoach/vital-cli/internal/config"
)

// Build metadata, injected via ldflags.
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:   "vital",
	Short: "Personal wellness coach in your terminal",
	Long: `Vital is a terminal wellness coach: track workouts, nutrition,
sleep and device syncs from a single dashboard.

Run without arguments to launch the interactive dashboard.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.SetVersionTemplate(fmt.Sprintf("vital %s (built %s, commit %s)\n", Version, BuildDate, GitCommit))

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(plansCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(coachCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(resetCmd)
}

func runDashboard() error {
	ctx, cancel := setupSignalHandler()
	defer cancel()

	model := tui.NewModel(
		app.workouts,
		app.sync,
		app.profiles,
		&app.config.Theme,
		app.config.Goals,
		app.config.FirstRun,
	)
	model.SetCompletionCallbacks(
		func(planName string) { app.notifier.NotifyWorkoutComplete(planName) },
		func(deviceName string) { app.notifier.NotifySyncComplete(deviceName) },
	)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}

	// Once intake has completed we no longer greet with the welcome screen.
	if app.config.FirstRun && app.profiles.HasProfile() {
		app.config.FirstRun = false
		if err := config.Save(app.config); err != nil {
			return fmt.Errorf("failed to persist config: %w", err)
		}
	}
	return nil
}
