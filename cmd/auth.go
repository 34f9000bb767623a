// Package cmd implements the command-line interface for streamsan.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/streamsan-cli/streamsan/auth"
	"github.com/streamsan-cli/streamsan/color"
	"github.com/streamsan-cli/streamsan/icon"
	"github.com/streamsan-cli/streamsan/style"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd)
	authCmd.AddCommand(authGetCmd)
	authCmd.AddCommand(authDeleteCmd)
}

// authCmd serves as the parent command for Trakt credential management.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the Trakt API client id stored in the system keyring",
}

// authSetCmd persists the Trakt client id to the system keyring.
var authSetCmd = &cobra.Command{
	Use:   "set [client-id]",
	Short: "Store a Trakt API client id in the system keyring",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.SetClientID(args[0]))
		fmt.Printf(
			"%s stored Trakt client id in the keyring\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
		)
	},
}

// authGetCmd prints the stored Trakt client id.
var authGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the Trakt API client id stored in the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		clientID, err := auth.GetClientID()
		handleErr(err)
		fmt.Println(clientID)
	},
}

// authDeleteCmd removes the stored Trakt client id.
var authDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the Trakt API client id from the system keyring",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteClientID())
		fmt.Printf(
			"%s removed Trakt client id from the keyring\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
		)
	},
}
