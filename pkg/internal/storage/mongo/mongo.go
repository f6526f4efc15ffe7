// Package mongo wraps the MongoDB client shared by the catalog collection and
// the GridFS image bucket.
package mongo

import (
	"context"
	"fmt"

	mongodrv "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/greengivers/nursery/pkg/configs"
	nlog "github.com/greengivers/nursery/pkg/log"
)

// Client wraps the driver client together with the configured database.
type Client struct {
	*mongodrv.Client
	database *mongodrv.Database
}

// New connects to MongoDB and verifies the connection with a ping. The
// process must not come up against an unreachable database.
func New(ctx context.Context, cfg *configs.MongoConfig) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName("nursery").
		SetConnectTimeout(cfg.TimeoutDuration())

	cli, err := mongodrv.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("create mongo client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.TimeoutDuration())
	defer cancel()

	if err := cli.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	nlog.Logger().Info().Str("database", cfg.Database).Msg("mongo connected")

	return &Client{Client: cli, database: cli.Database(cfg.Database)}, nil
}

// Database returns the configured database handle.
func (c *Client) Database() *mongodrv.Database {
	return c.database
}

// HealthCheck verifies the connection with a ping.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (c *Client) Close(ctx context.Context) error {
	return c.Disconnect(ctx)
}
