package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"github.com/Alijeyrad/dochouse_backend/config"
	"github.com/Alijeyrad/dochouse_backend/internal/repo"
	"github.com/Alijeyrad/dochouse_backend/pkg/events"
	"github.com/Alijeyrad/dochouse_backend/pkg/mongodb"
	"github.com/Alijeyrad/dochouse_backend/pkg/observability"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideMongo),
	fx.Provide(ProvideRepo),
	fx.Provide(ProvideOTel),
	fx.Provide(ProvideNatsClient),
	fx.Provide(ProvideEventPublisher),
)

const indexTimeout = 30 * time.Second

func ProvideMongo(lc fx.Lifecycle, cfg *config.Config) (*mongo.Client, error) {
	mcfg := mongodb.FromCentralConfig(cfg.Database)

	var monitor *event.CommandMonitor
	if cfg.Observability.Enabled && cfg.Observability.Metrics.Enabled {
		monitor = observability.MongoMonitor()
	}

	ctx, cancel := context.WithTimeout(context.Background(), mcfg.ConnectTimeout+mcfg.ServerSelectionTimeout)
	defer cancel()

	client, err := mongodb.Connect(ctx, mcfg, monitor)
	if err != nil {
		return nil, err
	}
	slog.Info("connected to mongodb", "database", mcfg.Database)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing mongodb connection")
			return client.Disconnect(ctx)
		},
	})
	return client, nil
}

func ProvideRepo(lc fx.Lifecycle, client *mongo.Client, cfg *config.Config) *repo.Client {
	db := repo.NewClient(client.Database(cfg.Database.Name))

	if cfg.Database.AutoIndex {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				ctx, cancel := context.WithTimeout(ctx, indexTimeout)
				defer cancel()
				if err := db.EnsureIndexes(ctx); err != nil {
					return fmt.Errorf("auto index: %w", err)
				}
				slog.Info("collection indexes ensured")
				return nil
			},
		})
	}
	return db
}

func ProvideNatsClient(lc fx.Lifecycle, cfg *config.Config) (*nats.Conn, error) {
	if cfg.Nats.URL == "" {
		slog.Info("nats disabled, domain events are dropped")
		return nil, nil
	}

	nc, err := nats.Connect(cfg.Nats.URL,
		nats.Name(cfg.Observability.ServiceName),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				slog.Warn("nats disconnected", "err", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			slog.Info("nats reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("draining NATS connection")
			return nc.Drain()
		},
	})
	return nc, nil
}

func ProvideEventPublisher(nc *nats.Conn, cfg *config.Config) events.Publisher {
	if nc == nil {
		return events.Nop{}
	}
	return events.NewNATSPublisher(nc, cfg.Nats.SubjectPrefix)
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.Config{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		Environment:    cfg.Server.Environment,
		TracingEnabled: cfg.Observability.Tracing.Enabled,
		OTLPEndpoint:   cfg.Observability.Tracing.OTLPEndpoint,
		OTLPInsecure:   cfg.Observability.Tracing.OTLPInsecure,
		SamplingRate:   cfg.Observability.Tracing.SamplingRate,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
