package main

import (
	"fmt"

	"github.com/SscSPs/leadvault_backend/internal/core/services"
	"github.com/SscSPs/leadvault_backend/internal/dto"
	"github.com/SscSPs/leadvault_backend/internal/middleware"
	"github.com/spf13/cobra"
)

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}
	cmd.AddCommand(userCreateCmd())
	return cmd
}

func userCreateCmd() *cobra.Command {
	var req dto.RegisterRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a password account with the initial credit balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			ctx := middleware.WithLogger(cmd.Context(), e.logger)
			user, err := services.NewUserService(e.repos.UserRepo, e.cfg.InitialCredits).Register(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s) with %d credits\n", user.UserID, user.Email, user.Credits)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	cmd.Flags().StringVar(&req.Name, "name", "", "display name (defaults to the email)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
