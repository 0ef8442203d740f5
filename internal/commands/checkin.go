package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermh/jornada/internal/parser"
	"github.com/javiermh/jornada/internal/timeutil"
	"github.com/javiermh/jornada/internal/tui"
	"github.com/javiermh/jornada/internal/workday"
)

var inCmd = &cobra.Command{
	Use:   "in",
	Short: "Check in and start the workday",
	Long: `Check in and start tracking the workday. Opens the live timer by
default, use --no-ui for a plain check-in.

Examples:
  jornada in              # Check in now, open the timer
  jornada in --no-ui      # Check in without the timer
  jornada in --at 08:30   # Check in backdated to 08:30 today`,
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

		clock, err := clockFromFlag(cmd, "at")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		manager, err := loadedManager(store, clock, user.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		session, err := manager.CheckIn(user.ID)
		if err != nil {
			switch {
			case errors.Is(err, workday.ErrAlreadyCheckedIn):
				fmt.Println("Error: you are already checked in. Use 'jornada out' to finish the day.")
			case errors.Is(err, workday.ErrDayCompleted):
				fmt.Println("Error: today's workday is already completed.")
			default:
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		// A backdated check-in skips the TUI: the timer and checkout
		// must run on the real clock, not the pinned one.
		noUI, _ := cmd.Flags().GetBool("no-ui")
		if atRaw, _ := cmd.Flags().GetString("at"); atRaw != "" {
			noUI = true
		}
		if noUI {
			fmt.Printf("🟢 Checked in, %s\n", user.FullName)
			fmt.Printf("Workday started at %s\n", timeutil.FormatClock(session.CheckIn))
			return
		}

		if err := tui.RunWorkdayTUI(manager, user); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

// clockFromFlag builds the command's clock, pinned to the --at override
// when one was given.
func clockFromFlag(cmd *cobra.Command, flag string) (timeutil.Clock, error) {
	raw, _ := cmd.Flags().GetString(flag)
	at, err := parser.ParseClockTime(raw, time.Now())
	if err != nil {
		return nil, err
	}
	if at != nil {
		return timeutil.NewFixedClock(*at), nil
	}
	return timeutil.SystemClock{}, nil
}

func init() {
	inCmd.Flags().Bool("no-ui", false, "Check in without the interactive timer")
	inCmd.Flags().String("at", "", "Check in at a specific time (HH:MM)")
}
