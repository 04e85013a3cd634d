package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitalcoach/vital-cli/internal/adapters/tui"
	"github.com/vitalcoach/vital-cli/internal/domain"
)

var pickPlan bool

var plansCmd = &cobra.Command{
	Use:   "plans [id]",
	Short: "List workout plans or show one in detail",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plans := app.workouts.Plans()

		if len(args) == 1 {
			for _, p := range plans {
				if p.ID == args[0] {
					printPlanDetail(p)
					return nil
				}
			}
			return fmt.Errorf("unknown plan: %s", args[0])
		}

		if pickPlan {
			items := make([]tui.PickerItem, 0, len(plans))
			for _, p := range plans {
				items = append(items, tui.PickerItem{
					Label: p.Name,
					Desc:  planSummary(p),
				})
			}
			result := tui.RunPicker("Workout Plans", items, "↑/↓ navigate · enter select · esc cancel", &app.config.Theme)
			if result.Aborted {
				return nil
			}
			printPlanDetail(plans[result.Index])
			return nil
		}

		if jsonOutput {
			list := make([]map[string]interface{}, 0, len(plans))
			for _, p := range plans {
				list = append(list, map[string]interface{}{
					"id":               p.ID,
					"name":             p.Name,
					"duration_minutes": p.DurationMinutes,
					"difficulty":       string(p.Difficulty),
					"target_zone":      p.TargetZone,
					"exercises":        len(p.Exercises),
				})
			}
			data, err := json.MarshalIndent(list, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal plans: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		for _, p := range plans {
			fmt.Printf("%-3s %-24s %s\n", p.ID, p.Name, planSummary(p))
		}
		return nil
	},
}

func init() {
	plansCmd.Flags().BoolVar(&pickPlan, "pick", false, "choose a plan interactively")
}

func planSummary(p *domain.WorkoutPlan) string {
	return fmt.Sprintf("%d min · %s · %s",
		p.DurationMinutes, domain.GetDifficultyLabel(p.Difficulty), p.TargetZone)
}

func printPlanDetail(p *domain.WorkoutPlan) {
	fmt.Printf("%s — %s\n", p.Name, planSummary(p))
	if p.Insight != "" {
		fmt.Println(p.Insight)
	}
	fmt.Println()
	for i, ex := range p.Exercises {
		fmt.Printf("%d. %-24s %d × %s, rest %ds (%s)\n",
			i+1, ex.Name, ex.Sets, ex.Reps, ex.RestSeconds,
			strings.Join(ex.TargetMuscles, ", "))
	}
}
