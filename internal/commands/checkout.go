package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermh/jornada/internal/timeutil"
	"github.com/javiermh/jornada/internal/workday"
)

var outCmd = &cobra.Command{
	Use:   "out",
	Short: "Check out and close the workday",
	Long: `Check out and close the workday. An open break is closed at the
same instant and counted as pause time.

Examples:
  jornada out                       # Check out now
  jornada out --at 17:30            # Check out backdated to 17:30
  jornada out --note "left early"   # Attach a note to the session`,
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

		note, _ := cmd.Flags().GetString("note")
		session, err := manager.CheckOut(note)
		if err != nil {
			if errors.Is(err, workday.ErrNoActiveSession) {
				fmt.Println("Error: no active workday. Use 'jornada in' to check in first.")
			} else {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		fmt.Printf("🔴 Checked out, %s\n", user.FullName)
		fmt.Printf("Worked %s net (%s on breaks)\n",
			timeutil.FormatMinutes(*session.NetMinutes),
			timeutil.FormatMinutes(session.PauseMinutes))
	},
}

func init() {
	outCmd.Flags().String("at", "", "Check out at a specific time (HH:MM)")
	outCmd.Flags().String("note", "", "Attach a note to the closed session")
}
