package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/scamlens-backend/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo dials and pings MongoDB, returning the configured database.
func ConnectMongo(ctx context.Context, cfg *config.Config) (*mongo.Database, error) {
	start := time.Now()

	dctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	c, err := mongo.Connect(dctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := c.Ping(dctx, nil); err != nil {
		_ = c.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	slog.Info("database connected",
		"backend", "mongo",
		"uri", redactURI(cfg.MongoURI),
		"db", cfg.MongoDatabase,
		"took", time.Since(start).Round(time.Millisecond).String(),
	)
	return c.Database(cfg.MongoDatabase), nil
}

func DisconnectMongo(ctx context.Context, db *mongo.Database) error {
	if db == nil {
		return errors.New("mongo database is nil")
	}
	return db.Client().Disconnect(ctx)
}

func redactURI(raw string) string {
	if raw == "" || !strings.Contains(raw, "://") {
		return raw
	}
	scheme, _, _ := strings.Cut(raw, "://")
	u, err := url.Parse(raw)
	if err != nil {
		return scheme + "://redacted"
	}
	if u.User == nil {
		// An unescaped '#' or '?' in the password pushes credentials out of the userinfo.
		if strings.Contains(raw, "@") {
			return scheme + "://redacted"
		}
		return raw
	}
	return u.Redacted()
}
