package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sundialcare/careadmin/pkg/core/model"
)

// ListCaregiversCmd creates the listCaregivers command
func ListCaregiversCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listCaregivers",
		Short: "List caregivers from the scheduling backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			activeOnly, _ := cmd.Flags().GetBool("active")

			records, err := app.CareClient.ListCaregivers(app.Ctx)
			if err != nil {
				return err
			}

			app.Logger.Info("Caregivers fetched successfully", zap.Int("count", len(records)))

			shown := 0
			fmt.Println()
			for _, record := range records {
				if activeOnly && !strings.EqualFold(record.Status, string(model.StatusActive)) {
					continue
				}
				shown++

				skills := "none"
				if len(record.Skills) > 0 {
					skills = strings.Join(record.Skills, ", ")
				}
				fmt.Printf("- %s (%s) - %s - %s\n    skills: %s\n",
					record.Name,
					record.ID,
					record.Status,
					record.Email,
					skills,
				)
			}

			fmt.Printf("\n%d caregivers\n", shown)

			return nil
		},
	}

	cmd.Flags().Bool("active", false, "Only show active caregivers")

	return cmd
}
