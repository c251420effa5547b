package system

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alijeyrad/dochouse_backend/internal/repo"
)

func NewAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Grant or revoke the admin role",
	}

	cmd.AddCommand(newRoleCommand("grant", "Give a registered user the admin role", repo.RoleAdmin))
	cmd.AddCommand(newRoleCommand("revoke", "Remove the admin role from a user", ""))

	return cmd
}

func newRoleCommand(use, short, role string) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			email = strings.TrimSpace(email)
			if email == "" {
				return errors.New("--email is required")
			}

			db, cfg, closeFn, err := openRepo(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout(cfg))
			defer cancel()

			if err := db.User.SetRole(ctx, email, role); err != nil {
				if repo.IsNotFound(err) {
					return fmt.Errorf("no user registered with email %q", email)
				}
				return fmt.Errorf("failed to update role: %w", err)
			}

			fmt.Printf("%s: %s done.\n", email, use)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email of the user")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
