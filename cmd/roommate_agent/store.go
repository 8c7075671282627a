package main

import (
	"context"
	"fmt"

	"github.com/jonathan/roommate-matcher/internal/config"
	"github.com/jonathan/roommate-matcher/internal/db"
	"github.com/jonathan/roommate-matcher/internal/kvstore"
	"github.com/jonathan/roommate-matcher/internal/logging"
	"github.com/jonathan/roommate-matcher/internal/redisstore"
	"github.com/jonathan/roommate-matcher/internal/session"
)

// openStore opens the session store selected by the configuration. The
// returned store reports its calls to metrics under the driver name.
func openStore(ctx context.Context, storeCfg config.StoreConfig) (session.Store, error) {
	var (
		store session.Store
		err   error
	)

	switch storeCfg.Driver {
	case config.DriverMemory:
		store = session.NewMemoryStore()
	case config.DriverPostgres:
		store, err = db.Open(ctx, storeCfg.DatabaseURL)
	case config.DriverBadger:
		store, err = kvstore.Open(storeCfg.BadgerPath, storeCfg.SessionTTL)
	case config.DriverRedis:
		store, err = redisstore.Connect(ctx, storeCfg.RedisURL, storeCfg.RedisPrefix, storeCfg.SessionTTL)
	default:
		return nil, fmt.Errorf("unknown store driver %q", storeCfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", storeCfg.Driver, err)
	}

	logging.Info().Str("driver", storeCfg.Driver).Msg("session store opened")
	return session.Instrument(store, storeCfg.Driver), nil
}

func newService(store session.Store) *session.Service {
	return session.NewService(store, session.Options{
		WeightCap:     cfg.Engine.WeightCap,
		MaxCandidates: cfg.Engine.MaxCandidates,
	})
}
