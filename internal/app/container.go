package app

import (
	"context"
	"fmt"
	"time"

	"job-portal/internal/clock"
	"job-portal/internal/config"
	"job-portal/internal/database"
	"job-portal/internal/database/migration"
	dbpostgres "job-portal/internal/database/postgres"
	"job-portal/internal/database/seeder"
	"job-portal/internal/infrastructure/cache"
	"job-portal/internal/infrastructure/kv"
	"job-portal/internal/infrastructure/persistence/postgres"
	"job-portal/internal/infrastructure/persistence/sqlite"
	"job-portal/internal/notify"
	"job-portal/internal/render"
	"job-portal/internal/repository"
	"job-portal/internal/usecase"
	"job-portal/internal/ws"

	"go.uber.org/zap"
)

type Container struct {
	Config   config.Config
	Logger   *zap.Logger
	DB       database.DB
	KV       kv.Store
	Hub      *ws.Hub
	Notify   *notify.Center
	Portal   *usecase.Portal
	Renderer *render.HTMLRenderer
}

func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Container{Config: cfg, Logger: logger}

	store, err := c.openStore(ctx)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.KV = store

	c.Hub = ws.NewHub(logger.Named("ws"))
	c.Notify = notify.NewCenter(cfg.Notification.TTL,
		notify.WithPublisher(c.Hub),
		notify.WithLogger(logger.Named("notify")),
	)

	c.Portal, err = usecase.NewPortal(ctx, usecase.PortalParams{
		Store:    repository.NewKVPortalStore(store, logger.Named("store")),
		Notifier: c.Notify,
		Clock:    clock.System(),
		Logger:   logger.Named("portal"),
	})
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Renderer = render.NewRenderer()

	return c, nil
}

func (c *Container) openStore(ctx context.Context) (kv.Store, error) {
	switch c.Config.Storage.Backend {
	case config.StorageRedis:
		r, err := cache.NewRedis(ctx, c.Config.Redis, c.Logger.Named("redis"))
		if err != nil {
			return nil, fmt.Errorf("open redis storage: %w", err)
		}
		return r, nil

	case config.StoragePostgres:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(connectCtx, c.Config.Database)
		if err != nil {
			return nil, fmt.Errorf("open postgres storage: %w", err)
		}
		c.DB = db

		if err := (migration.Runner{}).Run(ctx, db.SQLDB()); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, db); err != nil {
			return nil, err
		}
		c.Logger.Info("postgres storage ready", zap.String("host", c.Config.Database.DBHost), zap.String("db", c.Config.Database.DBName))
		return postgres.NewRecordRepository(db), nil

	case config.StorageSQLite:
		s, err := sqlite.Open(ctx, c.Config.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite storage: %w", err)
		}
		c.Logger.Info("sqlite storage ready", zap.String("path", c.Config.SQLite.Path))
		return s, nil

	default:
		c.Logger.Info("using in-memory storage; state is lost on restart")
		return kv.NewMemory(), nil
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.KV != nil {
		// the postgres record store owns the pool and closes it
		return c.KV.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
