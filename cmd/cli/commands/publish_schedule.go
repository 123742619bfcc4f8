package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sundialcare/careadmin/pkg/core/services"
)

// PublishScheduleCmd creates the publishSchedule command
func PublishScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "publishSchedule <caregiver_id> <from> <to>",
		Short: "Publish a caregiver's expanded schedule to the schedule sheet",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseDateRange(args[1], args[2])
			if err != nil {
				return err
			}

			published, err := services.PublishSchedule(app.Ctx, app.CareClient, app.SheetsClient,
				app.Cfg, app.Logger, args[0], from, to)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Published schedule for %s (%d rows)\n\n",
				published.CaregiverName, published.RowCount)

			return nil
		},
	}
}
