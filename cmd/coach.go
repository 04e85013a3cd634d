package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitalcoach/vital-cli/internal/adapters/tui"
)

var coachCmd = &cobra.Command{
	Use:   "coach [question...]",
	Short: "Ask the wellness coach a question",
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.TrimSpace(strings.Join(args, " "))
		if question == "" {
			result := tui.RunTextPrompt("Ask your coach", "How did I sleep last night?", &app.config.Theme)
			if result.Aborted {
				return nil
			}
			question = strings.TrimSpace(result.Value)
		}
		if question == "" {
			return nil
		}
		fmt.Println(tui.CoachReply(question))
		return nil
	},
}
