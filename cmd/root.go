// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the Learnhub CLI.
// It implements the account subcommands (register, login, logout, whoami,
// profile) and configuration management on top of the Cobra CLI framework,
// with a pterm terminal UI.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"learnhub/cli/internal/auth"
	"learnhub/cli/internal/config"
	"learnhub/cli/internal/logging"
)

var (
	showVersion bool
	baseURLFlag string
	verbose     bool
)

// errReported is returned by commands that already showed the failure to the user.
var errReported = errors.New("reported")

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "learnhub",
	Short: "Learnhub CLI for managing your Learnhub account",
	Long: `Learnhub is a command-line client for the Learnhub learning platform.
It signs you in against the Learnhub backend, keeps the session in your OS
keychain and lets you inspect and edit your profile.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "learnhub %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, logging.PresentError("learnhub", err))
		}
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
	rootCmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "Learnhub backend URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose debug output")
}

// loadConfig reads the layered config and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if baseURLFlag != "" {
		cfg.BaseURL = strings.TrimRight(baseURLFlag, "/")
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// newService loads config, installs the logger and builds the auth service.
func newService() (*auth.Service, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	logger := logging.New(cfg.LogLevel, os.Stderr)
	slog.SetDefault(logger)

	svc, err := auth.NewService(cfg, logger)
	if err != nil {
		return nil, cfg, err
	}
	return svc, cfg, nil
}
