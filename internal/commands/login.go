package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <name>",
	Short: "Sign in as a profile",
	Long:  "Sign in as the named profile, creating it on first use.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer store.Close()

		name := strings.Join(args, " ")
		profile, err := store.LoginProfile(name, time.Local.String())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("👋 Logged in as %s\n", profile.FullName)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer store.Close()

		if err := store.LogoutProfiles(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("Logged out.")
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in profile",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer store.Close()

		profile, err := store.ActiveProfile()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if profile == nil {
			fmt.Println("Not logged in.")
			return
		}
		fmt.Printf("%s (%s)\n", profile.FullName, profile.Role)
	},
}
