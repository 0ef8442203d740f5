package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermh/jornada/internal/db"
	"github.com/javiermh/jornada/internal/models"
	"github.com/javiermh/jornada/internal/timeutil"
	"github.com/javiermh/jornada/internal/workday"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "jornada",
	Short: "A CLI workday and break tracker",
	Long: `jornada tracks your workday from the terminal: check in when you
start, take categorized breaks, check out when you finish, and review
your worked hours later.`,
}

// openStore opens the record store at the default database path
func openStore() (*db.Store, error) {
	path, err := db.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}
	return db.Open(path)
}

// activeUser returns the signed-in profile or an error telling the
// user to log in first.
func activeUser(store *db.Store) (*models.Profile, error) {
	profile, err := store.ActiveProfile()
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("not logged in. Use 'jornada login <name>' first")
	}
	return profile, nil
}

// loadedManager builds a session manager on the given clock and loads
// today's state for the user.
func loadedManager(store *db.Store, clock timeutil.Clock, userID string) (*workday.Manager, error) {
	manager := workday.NewManager(store, clock)
	if err := manager.LoadToday(userID); err != nil {
		return nil, err
	}
	return manager, nil
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("jornada %s (commit %s, built %s)\n", version, commit, date)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(inCmd)
	rootCmd.AddCommand(outCmd)
	rootCmd.AddCommand(breakCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(versionCmd)
}
