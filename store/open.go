package store

import (
	"context"
	"fmt"
	"strings"

	"nilenavigator/db"
	"nilenavigator/rdx"
)

// Options selects and configures a backend.
type Options struct {
	Backend       string // memory, sqlite, redis, mongo
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
	MongoURI      string
	MongoDatabase string
}

func Open(ctx context.Context, opts Options) (KV, error) {
	switch strings.ToLower(opts.Backend) {
	case "memory":
		return NewMemory(), nil
	case "", "sqlite":
		return OpenSQLite(opts.SQLitePath)
	case "redis":
		client, err := rdx.Connect(ctx, opts.RedisAddr, opts.RedisPassword, opts.RedisDB)
		if err != nil {
			return nil, err
		}
		return NewRedis(client, opts.RedisPrefix), nil
	case "mongo":
		client, err := db.Connect(ctx, opts.MongoURI)
		if err != nil {
			return nil, err
		}
		name := opts.MongoDatabase
		if name == "" {
			name = "nilenavigator"
		}
		return NewMongo(client, client.Database(name).Collection("kv")), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}
