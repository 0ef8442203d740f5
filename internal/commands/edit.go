package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermh/jornada/internal/models"
	"github.com/javiermh/jornada/internal/parser"
	"github.com/javiermh/jornada/internal/timeutil"
)

var editCmd = &cobra.Command{
	Use:   "edit <session-id>",
	Short: "Correct a closed work session",
	Long: `Correct the check-in or check-out time of a closed session.

Net minutes are recomputed from the corrected times, the session is
marked as edited, and an audit entry records the change.

Examples:
  jornada edit 3f1c... --in 08:15 --reason "forgot to check in"
  jornada edit 3f1c... --out 17:45`,
	Args: cobra.ExactArgs(1),
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

		session, err := store.GetSessionByID(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if session.Status == models.SessionActive || session.CheckOut == nil {
			fmt.Println("Error: cannot edit an active session. Check out first.")
			return
		}

		// Parse overrides relative to the session's own day
		inRaw, _ := cmd.Flags().GetString("in")
		outRaw, _ := cmd.Flags().GetString("out")
		newIn, err := parser.ParseClockTime(inRaw, session.CheckIn)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		newOut, err := parser.ParseClockTime(outRaw, session.CheckIn)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if newIn == nil && newOut == nil {
			fmt.Println("Nothing to change. Pass --in and/or --out.")
			return
		}

		checkIn := session.CheckIn
		if newIn != nil {
			checkIn = *newIn
		}
		checkOut := *session.CheckOut
		if newOut != nil {
			checkOut = *newOut
		}
		if !checkOut.After(checkIn) {
			fmt.Println("Error: check-out must be after check-in.")
			return
		}

		oldData, _ := json.Marshal(session)

		netMinutes := timeutil.ElapsedMinutes(checkIn, checkOut) - session.PauseMinutes
		if netMinutes < 0 {
			netMinutes = 0
		}

		updated, err := store.UpdateSession(session.ID, map[string]any{
			"check_in":    checkIn,
			"check_out":   checkOut,
			"net_minutes": netMinutes,
			"status":      models.SessionEdited,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		newData, _ := json.Marshal(updated)
		reason, _ := cmd.Flags().GetString("reason")
		if err := store.CreateAuditLog(&models.AuditLog{
			EditorID:  user.ID,
			TargetID:  session.ID,
			TableName: "work_sessions",
			Action:    models.AuditUpdate,
			OldData:   string(oldData),
			NewData:   string(newData),
			Reason:    reason,
		}); err != nil {
			fmt.Printf("Warning: session updated but audit entry failed: %v\n", err)
		}

		fmt.Printf("✏️  Session corrected: %s – %s, %s net\n",
			timeutil.FormatClock(updated.CheckIn),
			timeutil.FormatClock(*updated.CheckOut),
			timeutil.FormatMinutes(*updated.NetMinutes))
	},
}

func init() {
	editCmd.Flags().String("in", "", "Corrected check-in time (HH:MM)")
	editCmd.Flags().String("out", "", "Corrected check-out time (HH:MM)")
	editCmd.Flags().String("reason", "", "Why the session is being corrected")
}
