package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermh/jornada/internal/timeutil"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed workdays",
	Long:  "List completed work sessions, most recent first.",
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

		limit, _ := cmd.Flags().GetInt("limit")
		sessions, err := store.ListCompletedSessions(user.ID, limit)
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}

		if len(sessions) == 0 {
			fmt.Println("No completed workdays yet. Use 'jornada in' to start one.")
			return
		}

		// Print table header
		fmt.Printf("%-8s %-6s %-6s %-8s %-8s %-9s %s\n", "DATE", "IN", "OUT", "NET", "PAUSE", "STATUS", "NOTES")
		fmt.Println(strings.Repeat("-", 70))

		for _, session := range sessions {
			out := "-"
			if session.CheckOut != nil {
				out = timeutil.FormatClock(*session.CheckOut)
			}
			net := "-"
			if session.NetMinutes != nil {
				net = timeutil.FormatMinutes(*session.NetMinutes)
			}

			// Truncate notes if too long
			notes := session.Notes
			if len(notes) > 20 {
				notes = notes[:17] + "..."
			}

			fmt.Printf("%-8s %-6s %-6s %-8s %-8s %-9s %s\n",
				timeutil.FormatDate(session.CheckIn),
				timeutil.FormatClock(session.CheckIn),
				out,
				net,
				timeutil.FormatMinutes(session.PauseMinutes),
				session.Status,
				notes)
		}
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 10, "Maximum number of sessions to show")
}
