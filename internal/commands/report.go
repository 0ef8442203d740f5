package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermh/jornada/internal/timeutil"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize worked time per day",
	Long:  "Print net and pause minutes per day over the last days, plus totals.",
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

		days, _ := cmd.Flags().GetInt("days")
		if days < 1 {
			days = 1
		}

		now := time.Now()
		to := timeutil.StartOfDay(now).AddDate(0, 0, 1)
		from := to.AddDate(0, 0, -days)

		sessions, err := store.ListSessionsInRange(user.ID, from, to)
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}

		if len(sessions) == 0 {
			fmt.Printf("No closed sessions in the last %d days.\n", days)
			return
		}

		// Aggregate per calendar day, preserving chronological order
		type dayTotals struct {
			net   int
			pause int
		}
		var order []time.Time
		totals := make(map[time.Time]*dayTotals)
		for _, session := range sessions {
			day := timeutil.StartOfDay(session.CheckIn)
			t, ok := totals[day]
			if !ok {
				t = &dayTotals{}
				totals[day] = t
				order = append(order, day)
			}
			if session.NetMinutes != nil {
				t.net += *session.NetMinutes
			}
			t.pause += session.PauseMinutes
		}

		fmt.Printf("%-5s %-8s %-10s %s\n", "DAY", "DATE", "NET", "PAUSE")
		fmt.Println(strings.Repeat("-", 36))

		totalNet, totalPause := 0, 0
		for _, day := range order {
			t := totals[day]
			fmt.Printf("%-5s %-8s %-10s %s\n",
				day.Format("Mon"),
				timeutil.FormatDate(day),
				timeutil.FormatMinutes(t.net),
				timeutil.FormatMinutes(t.pause))
			totalNet += t.net
			totalPause += t.pause
		}

		fmt.Println(strings.Repeat("-", 36))
		fmt.Printf("Total: %s net, %s on breaks over %d days\n",
			timeutil.FormatMinutes(totalNet), timeutil.FormatMinutes(totalPause), days)
	},
}

func init() {
	reportCmd.Flags().IntP("days", "d", 7, "Number of days to include")
}
