// Package mongo implements the persistence contract on MongoDB, the hosted
// document store backing the tracker outside demo mode.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/omotenashi/partner-crm/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// Repositories wires all five repositories onto db and bundles them behind
// the ports contract.
func Repositories(db *mongo.Database) ports.Store {
	return ports.Store{
		Clients:   NewClientRepository(db),
		Plans:     NewPlanRepository(db),
		History:   NewHistoryRepository(db),
		Memos:     NewMemoRepository(db),
		Countries: NewCountryRepository(db),
	}
}

// EnsureIndexes creates the indexes the repositories rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := NewHistoryRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("history indexes: %w", err)
	}
	if err := NewMemoRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("memo indexes: %w", err)
	}
	return nil
}
