package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sundialcare/careadmin/pkg/core/services"
)

// SendScheduleNoticeCmd creates the sendScheduleNotice command
func SendScheduleNoticeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sendScheduleNotice <caregiver_id> <from> <to>",
		Short: "Email a caregiver their schedule for a date range",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseDateRange(args[1], args[2])
			if err != nil {
				return err
			}

			if err := services.SendScheduleNotice(app.Ctx, app.CareClient, app.GmailClient,
				app.Cfg, app.Logger, args[0], from, to); err != nil {
				return err
			}

			fmt.Println("\n✓ Schedule notice sent")
			return nil
		},
	}
}
