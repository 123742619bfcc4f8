package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sundialcare/careadmin/pkg/core/services"
)

// AddTimeOffCmd creates the addTimeOff command
func AddTimeOffCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addTimeOff <caregiver_id> <start_date> <end_date> [reason...]",
		Short: "Add a time-off period to a caregiver (dates YYYY-MM-DD)",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			caregiverID := args[0]
			startDate := args[1]
			endDate := args[2]
			reason := strings.Join(args[3:], " ")

			period, err := services.AddTimeOff(app.Ctx, app.CareClient, app.Logger,
				caregiverID, startDate, endDate, reason)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Time off added\n\n")
			fmt.Printf("ID:     %s\n", period.ID)
			fmt.Printf("Period: %s to %s\n", period.StartDate, period.EndDate)
			if period.Reason != "" {
				fmt.Printf("Reason: %s\n", period.Reason)
			}
			fmt.Println()

			return nil
		},
	}
}

// RemoveTimeOffCmd creates the removeTimeOff command
func RemoveTimeOffCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "removeTimeOff <caregiver_id> <time_off_id>",
		Short: "Remove a time-off period from a caregiver",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.RemoveTimeOff(app.Ctx, app.CareClient, app.Logger, args[0], args[1]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Time off %s removed\n\n", args[1])
			return nil
		},
	}
}
