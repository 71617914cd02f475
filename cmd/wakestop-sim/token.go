package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/wakestop/internal/pkg/jwt"
	"github.com/piresc/wakestop/internal/pkg/models"
	"github.com/spf13/cobra"
)

func newTokenCmd(opts *rootOptions) *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token <user-id>",
		Short: "Print a signed traveler token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := signToken(opts, args[0], ttl)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return cmd
}

func signToken(opts *rootOptions, userID string, ttl time.Duration) (string, error) {
	if opts.jwtSecret == "" {
		return "", fmt.Errorf("a JWT secret is required (--jwt-secret or JWT_SECRET)")
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return "", fmt.Errorf("user id must be a UUID: %w", err)
	}
	token, _, err := jwt.GenerateToken(id, jwt.RoleTraveler, models.JWTConfig{
		Secret:     opts.jwtSecret,
		Expiration: int(ttl.Minutes()),
		Issuer:     opts.jwtIssuer,
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
