package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sundialcare/careadmin/pkg/clients/careapi"
	"github.com/sundialcare/careadmin/pkg/core/availability"
	"github.com/sundialcare/careadmin/pkg/core/services"
)

// EditAvailabilityCmd creates the editAvailability command, an interactive
// editor for a caregiver's weekly schedule. Edits stay local until 'save';
// a schedule that fails validation is never persisted.
func EditAvailabilityCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "editAvailability <caregiver_id>",
		Short: "Interactively edit a caregiver's weekly availability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caregiverID := args[0]

			record, err := app.CareClient.GetCaregiver(app.Ctx, caregiverID)
			if err != nil {
				return err
			}

			schedule, unknown := availability.Load(record.Availability)
			for _, entry := range unknown {
				fmt.Printf("⚠️  Dropping unrecognized day in stored availability: %q\n", entry.DayOfWeek)
			}

			fmt.Printf("\nEditing availability for %s\n", record.Name)
			fmt.Println("Type 'help' for commands, 'save' to persist, 'quit' to discard")

			scanner := bufio.NewScanner(os.Stdin)

			for {
				fmt.Print("edit> ")

				if !scanner.Scan() {
					break
				}

				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				parts := strings.Fields(line)
				action := parts[0]
				actionArgs := parts[1:]

				switch action {
				case "quit", "exit":
					fmt.Println("Discarding changes")
					return nil

				case "help":
					printEditHelp()

				case "show":
					fmt.Println()
					printSchedule(&schedule)
					fmt.Printf("\nWeekly hours: %.1f over %d working days\n\n",
						schedule.TotalWeeklyHours(), schedule.WorkingDayCount())

				case "add":
					day, ok := requireDay(actionArgs, 0)
					if !ok {
						continue
					}
					schedule.AddSlot(day)
					fmt.Printf("Added %s-%s slot to %s\n",
						availability.DefaultSlotStart, availability.DefaultSlotEnd, day)

				case "remove":
					day, ok := requireDay(actionArgs, 0)
					if !ok {
						continue
					}
					index, ok := requireSlotIndex(actionArgs, 1)
					if !ok {
						continue
					}
					schedule.RemoveSlot(day, index)
					fmt.Printf("Removed slot %d from %s\n", index+1, day)

				case "update":
					// update <day> <n> start|end <HH:MM>
					day, ok := requireDay(actionArgs, 0)
					if !ok {
						continue
					}
					index, ok := requireSlotIndex(actionArgs, 1)
					if !ok {
						continue
					}
					if len(actionArgs) < 4 {
						fmt.Println("Usage: update <day> <slot#> start|end <HH:MM>")
						continue
					}
					var field availability.SlotField
					switch actionArgs[2] {
					case "start":
						field = availability.FieldStart
					case "end":
						field = availability.FieldEnd
					default:
						fmt.Println("Field must be 'start' or 'end'")
						continue
					}
					schedule.UpdateSlot(day, index, field, actionArgs[3])
					fmt.Printf("Updated %s slot %d\n", day, index+1)

				case "clear":
					day, ok := requireDay(actionArgs, 0)
					if !ok {
						continue
					}
					schedule.ClearDay(day)
					fmt.Printf("Cleared %s\n", day)

				case "copy":
					from, ok := requireDay(actionArgs, 0)
					if !ok {
						continue
					}
					to, ok := requireDay(actionArgs, 1)
					if !ok {
						continue
					}
					schedule.CopyDay(from, to)
					fmt.Printf("Copied %s to %s\n", from, to)

				case "preset":
					if len(actionArgs) < 1 {
						fmt.Printf("Usage: preset <%s>\n", strings.Join(availability.PresetKeys, "|"))
						continue
					}
					if err := schedule.ApplyPreset(actionArgs[0]); err != nil {
						fmt.Printf("❌ %v\n", err)
						continue
					}
					fmt.Printf("Applied preset %q\n", actionArgs[0])

				case "validate":
					validationErrors := schedule.Validate()
					if len(validationErrors) == 0 {
						fmt.Println("✓ Schedule is valid")
					} else {
						printValidationErrors(validationErrors)
					}

				case "save":
					result, err := services.UpdateAvailability(
						app.Ctx, app.CareClient, app.Logger, caregiverID,
						&schedule, careapi.TimeOffFromWire(record.TimeOff))
					if err != nil {
						return err
					}
					if !result.Saved {
						printValidationErrors(result.ValidationErrors)
						fmt.Println("Fix the schedule and save again, or 'quit' to discard")
						continue
					}
					fmt.Printf("\n✓ Availability saved (%.1f hours over %d days)\n\n",
						result.WeeklyHours, result.WorkingDays)
					return nil

				default:
					fmt.Printf("Unknown command: %s (type 'help')\n", action)
				}
			}

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("error reading input: %w", err)
			}

			return nil
		},
	}
}

func printEditHelp() {
	fmt.Println(`
  show                                  Show the current schedule
  add <day>                             Add a 09:00-17:00 slot to a day
  remove <day> <slot#>                  Remove a slot (1-based)
  update <day> <slot#> start|end <HH:MM>  Change a slot's start or end time
  clear <day>                           Remove all slots from a day
  copy <from_day> <to_day>              Copy one day's slots onto another
  preset <key>                          Replace the whole week with a preset
  validate                              Check the schedule without saving
  save                                  Validate and persist the schedule
  quit                                  Discard changes and exit`)
}

func printValidationErrors(errors []string) {
	fmt.Println("❌ Schedule has problems:")
	for _, msg := range errors {
		fmt.Printf("  - %s\n", msg)
	}
}

// requireDay parses a weekday argument at position pos, printing usage help on
// failure
func requireDay(args []string, pos int) (availability.Weekday, bool) {
	if pos >= len(args) {
		fmt.Println("Missing day name (e.g. Monday)")
		return 0, false
	}
	day, ok := availability.ParseWeekday(normalizeDayArg(args[pos]))
	if !ok {
		fmt.Printf("Unknown day: %q\n", args[pos])
		return 0, false
	}
	return day, true
}

// requireSlotIndex parses a 1-based slot number at position pos
func requireSlotIndex(args []string, pos int) (int, bool) {
	if pos >= len(args) {
		fmt.Println("Missing slot number")
		return 0, false
	}
	n, err := strconv.Atoi(args[pos])
	if err != nil || n < 1 {
		fmt.Printf("Slot number must be a positive integer, got %q\n", args[pos])
		return 0, false
	}
	return n - 1, true
}

// normalizeDayArg title-cases a day name so 'monday' works at the prompt while
// stored data still goes through the strict parser
func normalizeDayArg(arg string) string {
	if arg == "" {
		return arg
	}
	return strings.ToUpper(arg[:1]) + strings.ToLower(arg[1:])
}
