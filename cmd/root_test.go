package cmd

import (
	"testing"
)

func TestRootCmd_Structure(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd should not be nil")
	}
	if rootCmd.Use != "vital" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "vital")
	}
	if !rootCmd.SilenceUsage {
		t.Error("rootCmd should silence usage on error")
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	want := []string{"status", "devices", "plans", "report", "coach", "config", "reset"}
	for _, name := range want {
		found := false
		for _, sub := range rootCmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestInitializeServices(t *testing.T) {
	if err := initializeServices(); err != nil {
		t.Fatalf("initializeServices() error = %v", err)
	}
	if app.config == nil {
		t.Fatal("config should be initialized")
	}
	if app.workouts == nil || app.sync == nil || app.profiles == nil {
		t.Error("all services should be initialized")
	}
	if app.notifier == nil {
		t.Error("notifier should be initialized")
	}
	if app.sync.Latency() <= 0 {
		t.Errorf("sync latency = %v, want > 0", app.sync.Latency())
	}
}
