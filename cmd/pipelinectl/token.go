package main

import (
	"fmt"
	"time"

	"interview-ai/internal/service"

	"github.com/spf13/cobra"
)

// Tokens are normally issued by the identity provider. This one is for local API testing.
func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for local API testing",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetString("user")
			name, _ := cmd.Flags().GetString("name")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			authService, err := service.NewAuthService(cfg.Auth)
			if err != nil {
				return fmt.Errorf("create auth service: %w", err)
			}

			token, err := authService.CreateAccessToken(userID, name, ttl)
			if err != nil {
				return fmt.Errorf("create token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().String("user", "", "User id placed in the subject claim")
	cmd.Flags().String("name", "", "Display name shown on the leaderboard")
	cmd.Flags().Duration("ttl", time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
