package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/cesargomez89/fyyur/internal/app"
	"github.com/cesargomez89/fyyur/internal/cache"
	"github.com/cesargomez89/fyyur/internal/config"
	"github.com/cesargomez89/fyyur/internal/events"
	"github.com/cesargomez89/fyyur/internal/logger"
	"github.com/cesargomez89/fyyur/internal/store"
)

// runtime holds everything a command needs. close releases it in reverse
// order of acquisition.
type runtime struct {
	cfg     *config.Config
	log     *logger.Logger
	db      *store.DB
	app     *app.App
	closers []func() error
}

func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, wrap("load config", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, wrap("configuration", err)
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	return cfg, log, nil
}

// openStore opens the configured database and applies the schema.
func openStore(ctx context.Context, cfg *config.Config) (*store.DB, error) {
	db, err := store.Open(ctx, cfg.DBDriver, dsnFor(cfg))
	if err != nil {
		return nil, wrap("open database", err)
	}
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, wrap("migrate database", err)
	}
	return db, nil
}

func dsnFor(cfg *config.Config) string {
	if cfg.DBDriver == store.DriverSQLite {
		return store.SQLiteDSN(cfg.DBPath)
	}
	return cfg.DSN()
}

// openRuntime wires the store, the optional Redis cache, the optional AMQP
// publisher and the services.
func openRuntime(ctx context.Context) (*runtime, error) {
	cfg, log, err := loadConfig()
	if err != nil {
		return nil, err
	}
	rt := &runtime{cfg: cfg, log: log}

	if rt.db, err = openStore(ctx, cfg); err != nil {
		return nil, err
	}
	rt.closers = append(rt.closers, rt.db.Close)

	opts := []app.Option{app.WithLocation(cfg.Location())}

	if cfg.RedisAddr != "" {
		rdb, err := cache.NewRedisClient(cache.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDBIndex(),
			TLS:      cfg.RedisTLSEnabled(),
		})
		if err != nil {
			log.Warn("Redis unavailable, running without cache", "addr", cfg.RedisAddr, "error", err)
		} else {
			rt.closers = append(rt.closers, rdb.Close)
			opts = append(opts, app.WithCache(cache.NewRedis(rdb, cfg.CachePrefix, cfg.CacheTTLDuration())))
			log.Info("Locality cache enabled", "addr", cfg.RedisAddr, "db", strconv.Itoa(cfg.RedisDBIndex()))
		}
	}

	if cfg.AMQPURL != "" {
		pub, err := events.DialAMQP(cfg.AMQPURL, cfg.EventsQueue)
		if err != nil {
			_ = rt.close()
			return nil, wrap("connect event broker", err)
		}
		rt.closers = append(rt.closers, pub.Close)
		opts = append(opts, app.WithPublisher(pub))
		log.Info("Publishing events", "queue", cfg.EventsQueue)
	}

	rt.app = app.New(rt.db, log, opts...)
	return rt, nil
}

func (rt *runtime) close() error {
	var errs []error
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
