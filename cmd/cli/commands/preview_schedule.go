package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sundialcare/careadmin/pkg/core/services"
)

// PreviewScheduleCmd creates the previewSchedule command
func PreviewScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "previewSchedule <caregiver_id> <from> <to>",
		Short: "Expand a caregiver's weekly schedule into dated entries (dates YYYY-MM-DD)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseDateRange(args[1], args[2])
			if err != nil {
				return err
			}

			preview, err := services.PreviewSchedule(app.Ctx, app.CareClient, app.Cfg, app.Logger,
				args[0], from, to)
			if err != nil {
				return err
			}

			for _, day := range preview.UnknownDays {
				fmt.Printf("⚠️  Ignored unrecognized day in stored availability: %q\n", day)
			}

			fmt.Printf("\nSchedule for %s, %s to %s\n",
				preview.Caregiver.Name,
				preview.From.Format("Mon Jan 02 2006"),
				preview.To.Format("Mon Jan 02 2006"))
			fmt.Printf("Recurring week: %.1f hours over %d working days\n\n",
				preview.WeeklyHours, preview.WorkingDays)

			if len(preview.Days) == 0 {
				fmt.Println("No working days in this period.")
			}

			for _, day := range preview.Days {
				fmt.Printf("  %s  %.1fh  ", day.Date.Format("Mon Jan 02 2006"), day.Hours)
				for i, slot := range day.Slots {
					if i > 0 {
						fmt.Print(", ")
					}
					fmt.Printf("%s-%s", slot.Start, slot.End)
				}
				fmt.Println()
			}

			if len(preview.Excluded) > 0 {
				fmt.Println("\nExcluded:")
				for _, excluded := range preview.Excluded {
					fmt.Printf("  %s  %s\n", excluded.Date.Format("Mon Jan 02 2006"), excluded.Reason)
				}
			}
			fmt.Println()

			return nil
		},
	}
}
