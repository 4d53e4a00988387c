package main

import (
	"fmt"

	"github.com/SscSPs/leadvault_backend/internal/core/services"
	"github.com/SscSPs/leadvault_backend/internal/middleware"
	"github.com/spf13/cobra"
)

func creditsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credits",
		Short: "Inspect and adjust credit balances",
	}
	cmd.AddCommand(creditsGrantCmd())
	return cmd
}

func creditsGrantCmd() *cobra.Command {
	var (
		email   string
		credits int
		reason  string
	)

	cmd := &cobra.Command{
		Use:   "grant",
		Short: "Add credits to an account and record a ledger entry",
		Long: `Add credits to an account. The grant is written to the credit ledger
as "Manual grant: <reason>".

Examples:
  leadctl credits grant --email ops@example.com --credits 100 --reason "support refund"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if credits <= 0 {
				return fmt.Errorf("--credits must be positive")
			}

			e, err := loadEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			ctx := middleware.WithLogger(cmd.Context(), e.logger)
			user, err := services.NewUserService(e.repos.UserRepo, e.cfg.InitialCredits).GetUserByEmail(ctx, email)
			if err != nil {
				return fmt.Errorf("failed to find user %s: %w", email, err)
			}

			creditSvc := services.NewCreditService(e.repos.CreditRepo, e.repos.UserRepo, e.repos.LeadRepo)
			balance, err := creditSvc.GrantCredits(ctx, user.UserID, credits, reason)
			if err != nil {
				return fmt.Errorf("failed to grant credits: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "granted %d credits to %s, balance is now %d\n", credits, user.Email, balance)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().IntVar(&credits, "credits", 0, "credits to add")
	cmd.Flags().StringVar(&reason, "reason", "", "reason recorded in the ledger")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("credits")

	return cmd
}
