// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"learnhub/cli/internal/terminal"
)

var (
	registerEmail string
	registerName  string
)

// registerCmd creates an account and signs it in.
var registerCmd = &cobra.Command{
	Use:     "register",
	Aliases: []string{"signup"},
	Short:   "Create a Learnhub account",
	Long: `The register command creates a new account with your name, email and a
password, then signs you in. Missing values are prompted for; the password is
asked twice and never echoed.

Validation errors reported by the backend (for example an email that is already
taken) are listed field by field.`,
	Args: cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		svc, cfg, err := newService()
		if err != nil {
			return err
		}

		p := terminal.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
		name, email := registerName, registerEmail
		if name == "" {
			if name, err = p.ReadLine("Full name", ""); err != nil {
				return err
			}
		}
		if email == "" {
			if email, err = p.ReadLine("Email", ""); err != nil {
				return err
			}
		}
		password, err := p.ReadSecret("Password")
		if err != nil {
			return err
		}
		confirm, err := p.ReadSecret("Confirm password")
		if err != nil {
			return err
		}
		if password != confirm {
			return errors.New("passwords do not match")
		}

		stop := startSpinner("Creating account")
		err = svc.Session().SignUp(ctx, email, password, name)
		stop()
		if err != nil {
			return presentError("register", err, cfg.BaseURL)
		}
		p.Erase()

		snap := svc.Session().Snapshot()
		fmt.Printf("✅ Account created. Welcome to Learnhub, %s!\n", snap.Identity.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "Account email (prompted when omitted)")
	registerCmd.Flags().StringVarP(&registerName, "name", "n", "", "Full name (prompted when omitted)")
}
