package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermh/jornada/internal/models"
	"github.com/javiermh/jornada/internal/timeutil"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current workday status",
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

		session := manager.Current()
		now := time.Now()

		switch manager.Status() {
		case models.StatusIdle:
			fmt.Println("No workday started today. Use 'jornada in' to check in.")
			return
		case models.StatusActive:
			fmt.Printf("🟢 Working since %s\n", timeutil.FormatClock(session.CheckIn))
		case models.StatusOnBreak:
			ab := manager.ActiveBreak()
			fmt.Printf("☕ On a %s break since %s\n",
				models.BreakTypeLabel(ab.BreakType), timeutil.FormatClock(ab.StartedAt))
			fmt.Printf("Break elapsed: %s\n",
				timeutil.FormatDuration(timeutil.ElapsedSeconds(ab.StartedAt, nil, now)))
		case models.StatusCompleted:
			fmt.Printf("✅ Workday completed (%s – %s)\n",
				timeutil.FormatClock(session.CheckIn), timeutil.FormatClock(*session.CheckOut))
		}

		fmt.Printf("Net worked time: %s\n",
			timeutil.FormatDuration(manager.NetElapsedSeconds(now)))

		if breaks := manager.Breaks(); len(breaks) > 0 {
			fmt.Printf("Breaks today: %d\n", len(breaks))
			for _, b := range breaks {
				if b.EndedAt != nil {
					fmt.Printf("  %s %s – %s (%s)\n",
						models.BreakTypeLabel(b.BreakType),
						timeutil.FormatClock(b.StartedAt),
						timeutil.FormatClock(*b.EndedAt),
						timeutil.FormatMinutes(*b.DurationMinutes))
				} else {
					fmt.Printf("  %s %s – ongoing\n",
						models.BreakTypeLabel(b.BreakType),
						timeutil.FormatClock(b.StartedAt))
				}
			}
		}
	},
}
