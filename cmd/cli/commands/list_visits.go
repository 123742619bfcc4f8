package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ListVisitsCmd creates the listVisits command
func ListVisitsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listVisits",
		Short: "List unscheduled visits awaiting manual assignment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.CareClient.ListUnscheduledVisits(app.Ctx)
			if err != nil {
				return err
			}

			app.Logger.Info("Unscheduled visits fetched", zap.Int("count", len(records)))

			if len(records) == 0 {
				fmt.Println("\nNo unscheduled visits.")
				return nil
			}

			fmt.Printf("\n%d unscheduled visits:\n\n", len(records))
			for _, record := range records {
				visit := record.ToVisit()

				requirements := "none"
				if len(visit.Requirements) > 0 {
					requirements = strings.Join(visit.Requirements, ", ")
				}

				handed := ""
				if visit.DoubleHanded {
					handed = " [double-handed]"
				}

				fmt.Printf("- %s  %s %dmin  priority=%s%s\n    requires: %s\n    days: %s\n",
					visit.ID,
					visit.PreferredTime,
					visit.DurationMins,
					visit.Priority,
					handed,
					requirements,
					strings.Join(visit.ActiveDays(), ", "),
				)
			}
			fmt.Println()

			return nil
		},
	}
}
