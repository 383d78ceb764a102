// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"learnhub/cli/internal/terminal"
)

var loginEmail string

// loginCmd signs in with email and password.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"signin"},
	Short:   "Sign in to your Learnhub account",
	Long: `The login command signs in with your email and password. The password is read
without echo. The resulting session cookie is stored in your OS keychain so later
commands stay signed in.

If a saved session is still valid, the command reports it and does nothing.`,
	Args: cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		svc, cfg, err := newService()
		if err != nil {
			return err
		}

		// If already logged in with a valid session, short-circuit.
		// The development bypass always resolves, so it never counts.
		if !cfg.DevBypass {
			stop := startSpinner("Checking saved session")
			snap, _ := svc.Resolve(ctx)
			stop()
			if snap.SignedIn() {
				fmt.Printf("Already logged in as %s\n", snap.Identity.Email)
				return nil
			}
		}

		p := terminal.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
		email := loginEmail
		if email == "" {
			if email, err = p.ReadLine("Email", svc.LastKnown().Account); err != nil {
				return err
			}
		}
		password, err := p.ReadSecret("Password")
		if err != nil {
			return err
		}

		stop := startSpinner("Signing in")
		err = svc.Session().SignIn(ctx, email, password)
		stop()
		if err != nil {
			return presentError("login", err, cfg.BaseURL)
		}
		p.Erase()

		snap := svc.Session().Snapshot()
		name := snap.Identity.Name
		if name == "" {
			name = snap.Identity.Email
		}
		fmt.Println(getRandomLoginGreeting(name))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email (prompted when omitted)")
}

// getRandomLoginGreeting returns a random greeting phrase with the user's name
func getRandomLoginGreeting(name string) string {
	greetings := []string{
		"🎉 Welcome back, %s!",
		"✨ Great to see you, %s!",
		"🚀 You're all set, %s!",
		"👋 Hello %s! Ready to learn?",
		"💫 Successfully signed in as %s",
		"🌟 Welcome aboard, %s!",
		"🎯 You're in, %s!",
		"🔓 Access granted! Welcome %s!",
	}

	return fmt.Sprintf(greetings[rand.IntN(len(greetings))], name)
}
