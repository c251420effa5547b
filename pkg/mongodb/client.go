package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ClientOptions builds driver options pinned to the stable server API v1.
func ClientOptions(cfg Config, monitor *event.CommandMonitor) *options.ClientOptions {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetAppName(cfg.AppName).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		// Collections are read as free-form documents; nested ones stay maps.
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	if monitor != nil {
		opts.SetMonitor(monitor)
	}
	return opts
}

// Connect opens a client and confirms the deployment answers a ping on the
// admin database. The caller owns Disconnect.
func Connect(ctx context.Context, cfg Config, monitor *event.CommandMonitor) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, ClientOptions(cfg, monitor))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := Ping(ctx, client); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}

func Ping(ctx context.Context, client *mongo.Client) error {
	res := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}})
	if err := res.Err(); err != nil {
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return nil
}

// Primary reports whether the primary is reachable, for readiness probes.
func Primary(ctx context.Context, client *mongo.Client) error {
	return client.Ping(ctx, readpref.Primary())
}
