package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the most recent workout report",
	RunE: func(cmd *cobra.Command, args []string) error {
		report := app.workouts.LastReport()
		if report == nil {
			fmt.Println("No workout report yet.")
			return nil
		}

		if jsonOutput {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal report: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("%s — %s (%s)\n", report.PlanName, report.Date, report.Duration)
		fmt.Printf("Completion: %d%%  Performance: %d%%  Calories: %d\n",
			report.CompletionRate(), report.OverallPerformance, report.CaloriesBurned)
		if report.HeartRateAvg > 0 {
			fmt.Printf("Heart rate: avg %d, max %d\n", report.HeartRateAvg, report.HeartRateMax)
		}
		fmt.Println()
		for _, ex := range report.Exercises {
			mark := "✗"
			if ex.Completed {
				mark = "✓"
			}
			fmt.Printf("  %s %-24s %d × %s @ %s\n", mark, ex.Name, ex.Sets, ex.Reps, ex.Weight)
		}
		if len(report.FocusAreas) > 0 {
			fmt.Println()
			fmt.Println("Focus areas:")
			for _, fa := range report.FocusAreas {
				fmt.Printf("  [%s] %s — %s\n", fa.Priority, fa.Area, fa.Recommendation)
			}
		}
		return nil
	},
}
