// Copyright (c) 2026 Learnhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"learnhub/cli/internal/model"
)

var (
	profileFullName string
	profileHeadline string
	profileBio      string
	profileRole     string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect or edit your profile",
}

// profileSetCmd sends only the flags that were given.
var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	Long: `The set command updates the profile of the signed-in account. Only the fields
passed as flags are sent; the backend returns the complete profile, which is
shown afterwards.

Roles are admin, instructor and learner.`,
	Example: `  learnhub profile set --headline "Backend engineer" --bio "Go and Laravel"
  learnhub profile set --role instructor`,
	Args: cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		update, err := profileUpdateFromFlags(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		svc, cfg, err := newService()
		if err != nil {
			return err
		}

		stop := startSpinner("Updating profile")
		svc.Resolve(ctx)
		err = svc.Session().UpdateProfile(ctx, update)
		stop()
		if err != nil {
			return presentError("update profile", err, cfg.BaseURL)
		}

		snap := svc.Session().Snapshot()
		fmt.Println(identityBox("✅ Profile updated", snap.Identity, snap.Profile))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileSetCmd.Flags().StringVar(&profileFullName, "full-name", "", "Full name shown on your profile")
	profileSetCmd.Flags().StringVar(&profileHeadline, "headline", "", "One-line headline")
	profileSetCmd.Flags().StringVar(&profileBio, "bio", "", "Short biography")
	profileSetCmd.Flags().StringVar(&profileRole, "role", "", "Role: admin, instructor or learner")
}

// profileUpdateFromFlags builds a partial update from the flags that were set,
// so an explicitly empty value clears the field.
func profileUpdateFromFlags(cmd *cobra.Command) (model.ProfileUpdate, error) {
	var u model.ProfileUpdate
	flags := cmd.Flags()
	if flags.Changed("full-name") {
		u.FullName = &profileFullName
	}
	if flags.Changed("headline") {
		u.Headline = &profileHeadline
	}
	if flags.Changed("bio") {
		u.Bio = &profileBio
	}
	if flags.Changed("role") {
		r := model.ParseRole(profileRole)
		if !r.Valid() {
			return u, fmt.Errorf("unknown role %q (want admin, instructor or learner)", profileRole)
		}
		u.Role = &r
	}
	if u.Empty() {
		return u, errors.New("nothing to update: pass at least one of --full-name, --headline, --bio, --role")
	}
	return u, nil
}
