package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitalcoach/vital-cli/internal/config"
)

var forceReset bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings and re-run first-time intake",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !forceReset {
			fmt.Print("Reset configuration to defaults? [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}
		if err := config.Save(config.DefaultConfig()); err != nil {
			return fmt.Errorf("failed to reset config: %w", err)
		}
		app.profiles.Reset()
		fmt.Println("Configuration reset. The intake wizard will run on next launch.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&forceReset, "force", "f", false, "skip confirmation")
}
