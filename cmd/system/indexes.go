package system

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func NewIndexesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "indexes",
		Short: "Create the MongoDB collection indexes",
		Long: `Create the unique index on users.email and the lookup index on
appointments.email. Running it again is a no-op.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, cfg, closeFn, err := openRepo(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout(cfg))
			defer cancel()

			fmt.Println("Creating indexes.")
			if err := db.EnsureIndexes(ctx); err != nil {
				return fmt.Errorf("failed to create indexes: %w", err)
			}

			fmt.Println("Indexes created successfully.")
			return nil
		},
	}

	return cmd
}
