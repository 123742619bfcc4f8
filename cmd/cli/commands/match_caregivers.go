package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sundialcare/careadmin/pkg/core/matching"
	"github.com/sundialcare/careadmin/pkg/core/services"
)

// MatchCaregiversCmd creates the matchCaregivers command
func MatchCaregiversCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matchCaregivers <visit_id>",
		Short: "Rank candidate caregivers for a visit by match score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			result, err := services.MatchCaregivers(app.Ctx, app.CareClient, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\nVisit %s for %s\n", result.Visit.ID, result.Recipient.Name)
			if len(result.Visit.Requirements) > 0 {
				fmt.Printf("Requires: %s\n", strings.Join(result.Visit.Requirements, ", "))
			}
			if result.Visit.DoubleHanded {
				fmt.Println("Double-handed: two caregivers needed")
			}

			if len(result.Matches) == 0 {
				fmt.Println("\nNo available caregivers for this visit.")
				return nil
			}

			fmt.Printf("\n%d candidates:\n\n", len(result.Matches))
			for i, match := range result.Matches {
				if limit > 0 && i >= limit {
					fmt.Printf("  ... and %d more (use --limit 0 to show all)\n", len(result.Matches)-i)
					break
				}

				fmt.Printf("%2d. %-25s %3d/100\n", i+1, match.Caregiver.Name, matching.DisplayScore(match.Score))
				for _, reason := range match.Reasons {
					fmt.Printf("      %s\n", reason)
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Int("limit", 10, "Maximum candidates to display (0 for all)")

	return cmd
}
