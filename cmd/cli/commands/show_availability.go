package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sundialcare/careadmin/pkg/core/availability"
)

// ShowAvailabilityCmd creates the showAvailability command
func ShowAvailabilityCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "showAvailability <caregiver_id>",
		Short: "Show a caregiver's weekly availability and time off",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caregiverID := args[0]

			record, err := app.CareClient.GetCaregiver(app.Ctx, caregiverID)
			if err != nil {
				return err
			}

			schedule, unknown := availability.Load(record.Availability)
			for _, entry := range unknown {
				fmt.Printf("⚠️  Ignoring unrecognized day in stored availability: %q\n", entry.DayOfWeek)
			}

			fmt.Printf("\nAvailability for %s (%s):\n\n", record.Name, record.ID)
			printSchedule(&schedule)

			fmt.Printf("\nWeekly hours: %.1f over %d working days\n",
				schedule.TotalWeeklyHours(), schedule.WorkingDayCount())

			if len(record.TimeOff) > 0 {
				fmt.Println("\nTime off:")
				for _, entry := range record.TimeOff {
					reason := entry.Reason
					if reason == "" {
						reason = "(no reason)"
					}
					fmt.Printf("  %s  %s to %s  %s\n", entry.ID, entry.StartDate, entry.EndDate, reason)
				}
			}
			fmt.Println()

			return nil
		},
	}
}

// printSchedule renders all seven days, empty ones included, so operators see
// the full week at a glance
func printSchedule(schedule *availability.WeekSchedule) {
	for _, day := range availability.Weekdays {
		slots := schedule.Slots(day)
		if len(slots) == 0 {
			fmt.Printf("  %-10s not available\n", day.String())
			continue
		}

		fmt.Printf("  %-10s", day.String())
		for i, slot := range slots {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Printf("%s-%s", slot.Start, slot.End)
		}
		fmt.Println()
	}
}
