package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Alijeyrad/dochouse_backend/config"
	"github.com/Alijeyrad/dochouse_backend/internal/repo"
	"github.com/Alijeyrad/dochouse_backend/pkg/mongodb"
)

func NewSystemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system",
		Short: "Maintenance and tooling commands",
	}

	cmd.AddCommand(NewIndexesCommand())
	cmd.AddCommand(NewAdminCommand())
	cmd.AddCommand(NewGenDocsCommand())

	return cmd
}

// openRepo reads the config named by --config and connects to its database.
// The returned func disconnects.
func openRepo(cmd *cobra.Command) (*repo.Client, *config.Config, func(), error) {
	cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read config: %w", err)
	}

	mcfg := mongodb.FromCentralConfig(cfg.Database)
	ctx, cancel := context.WithTimeout(cmd.Context(), mcfg.ConnectTimeout+mcfg.ServerSelectionTimeout)
	defer cancel()

	client, err := mongodb.Connect(ctx, mcfg, nil)
	if err != nil {
		return nil, nil, nil, err
	}

	closeFn := func() { disconnect(client) }
	return repo.NewClient(client.Database(cfg.Database.Name)), cfg, closeFn, nil
}

func disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = client.Disconnect(ctx)
}

func commandTimeout(cfg *config.Config) time.Duration {
	if cfg.Server.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(cfg.Server.TimeoutSeconds) * time.Second
}
