package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermh/jornada/internal/models"
	"github.com/javiermh/jornada/internal/timeutil"
	"github.com/javiermh/jornada/internal/workday"
)

var breakCmd = &cobra.Command{
	Use:   "break",
	Short: "Manage breaks within the workday",
}

var breakStartCmd = &cobra.Command{
	Use:   "start [rest|lunch|medical|other]",
	Short: "Start a categorized break",
	Long: `Start a break of the given type. Only one break can be open at a
time. Defaults to a rest break.

Examples:
  jornada break start lunch
  jornada break start medical --note "dentist"`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		breakType := models.BreakRest
		if len(args) > 0 {
			breakType = strings.ToLower(args[0])
		}
		if !models.ValidBreakType(breakType) {
			fmt.Printf("Error: unknown break type '%s'. Use rest, lunch, medical, or other.\n", breakType)
			return
		}

		store, err := openStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer store.Close()

		user, err := activeUser(store)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		manager, err := loadedManager(store, timeutil.SystemClock{}, user.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		note, _ := cmd.Flags().GetString("note")
		brk, err := manager.StartBreak(user.ID, breakType, note)
		if err != nil {
			switch {
			case errors.Is(err, workday.ErrNoActiveSession):
				fmt.Println("Error: no active workday. Use 'jornada in' to check in first.")
			case errors.Is(err, workday.ErrBreakAlreadyActive):
				fmt.Println("Error: a break is already running. End it with 'jornada break end'.")
			default:
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		fmt.Printf("☕ %s break started at %s\n",
			models.BreakTypeLabel(brk.BreakType), timeutil.FormatClock(brk.StartedAt))
	},
}

var breakEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the open break",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer store.Close()

		user, err := activeUser(store)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		manager, err := loadedManager(store, timeutil.SystemClock{}, user.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		brk, err := manager.EndBreak()
		if err != nil {
			if errors.Is(err, workday.ErrNoOpenBreak) {
				fmt.Println("No open break to end.")
			} else {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		fmt.Printf("▶️  %s break ended (%s)\n",
			models.BreakTypeLabel(brk.BreakType), timeutil.FormatMinutes(*brk.DurationMinutes))
	},
}

func init() {
	breakStartCmd.Flags().String("note", "", "Attach a note to the break")
	breakCmd.AddCommand(breakStartCmd)
	breakCmd.AddCommand(breakEndCmd)
}
