// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"learnhub/cli/internal/backend"
)

// whoamiCmd represents the whoami command for displaying current authentication state.
// It resolves the saved session with the backend and shows the account and profile.
var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Aliases: []string{"me"},
	Short:   "Show current authenticated account",
	Long: `The whoami command displays the account and profile of the current session.
It validates the saved session with the backend service.

When the backend cannot be reached, the account seen by the last successful
command is shown instead and marked as offline.`,
	Args: cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		svc, _, err := newService()
		if err != nil {
			return err
		}

		stop := startSpinner("Checking session")
		snap, resolveErr := svc.Resolve(ctx)
		stop()

		if snap.SignedIn() {
			fmt.Println(identityBox("👤 Current user", snap.Identity, snap.Profile))
			return nil
		}

		// Final fallback to local state when the backend was unreachable
		var apiErr *backend.APIError
		if last := svc.LastKnown(); resolveErr != nil && !errors.As(resolveErr, &apiErr) && last.SignedIn && last.Identity != nil {
			fmt.Println(identityBox("👤 Current user (offline)", last.Identity, last.Identity.Profile))
			fmt.Println("   The backend could not be reached; showing the last known account.")
			return nil
		}

		printNotLoggedIn()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
