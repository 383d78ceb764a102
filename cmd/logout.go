// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"learnhub/cli/internal/auth"
)

// logoutCmd represents the logout command for clearing authentication state.
// It ends the backend session (best-effort) and removes everything the CLI
// saved locally.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and remove the saved session",
	Long: `The logout command asks the backend to end the current session and then
clears the local state regardless of the backend's answer.

This command removes:
- The session cookies from the OS keychain
- The last known account information`,
	Args: cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err == nil {
			err = svc.Logout(cmd.Context())
		} else {
			err = auth.Clear()
		}
		if err != nil {
			return fmt.Errorf("clear local session: %w", err)
		}

		fmt.Println("✅ Signed out. Your saved session has been removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
