package container

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/inotebook/config"
	"github.com/oksasatya/inotebook/internal/application"
	"github.com/oksasatya/inotebook/internal/domain/repository"
	"github.com/oksasatya/inotebook/internal/infrastructure/cache"
	pginfra "github.com/oksasatya/inotebook/internal/infrastructure/postgres"
	"github.com/oksasatya/inotebook/internal/infrastructure/sqlite"
	"github.com/oksasatya/inotebook/pkg/helpers"
)

// Pinger reports whether the active store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Container holds the constructed components shared by the router modules.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Tokens *helpers.TokenService
	Users  repository.UserRepository
	Notes  repository.NoteRepository
	Store  Pinger
	Redis  *redis.Client // nil when the identity cache is disabled

	closers []func()
}

// New opens the configured store, applies migrations and connects redis when configured.
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger,
		Tokens: helpers.NewTokenService(cfg.JWTSecret),
	}

	switch cfg.StoreDriver {
	case config.DriverSQLite:
		db, err := sqlite.New(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		c.onClose(func() { _ = db.Close() })
		if err := db.Migrate(); err != nil {
			c.Close()
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		c.Users = sqlite.NewUserRepository(db)
		c.Notes = sqlite.NewNoteRepository(db)
		c.Store = db
	default:
		if err := pginfra.RunMigrations(cfg.PostgresDSN(), logger); err != nil {
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
		pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{
			MaxConns:        cfg.DBMaxConns,
			MinConns:        cfg.DBMinConns,
			MaxConnLifetime: cfg.DBMaxConnLife,
			AppName:         cfg.AppName,
		})
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		c.onClose(pool.Close)
		c.Users = pginfra.NewUserRepository(pool)
		c.Notes = pginfra.NewNoteRepository(pool)
		c.Store = pool
	}
	helpers.LogInfo(logger, "store ready", logrus.Fields{"driver": cfg.StoreDriver})

	if cfg.RedisAddr != "" {
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := helpers.PingRedis(ctx, rdb, 3*time.Second); err != nil {
			// the cache is optional; serve from the store alone
			logger.WithError(err).WithField("addr", cfg.RedisAddr).Warn("redis unavailable, identity cache disabled")
			_ = rdb.Close()
		} else {
			c.Redis = rdb
			c.onClose(func() { _ = rdb.Close() })
		}
	}
	return c, nil
}

func (c *Container) onClose(fn func()) {
	c.closers = append(c.closers, fn)
}

// Close releases resources in reverse order of acquisition.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

// IdentityCache returns the redis-backed cache, or nil when redis is disabled.
func (c *Container) IdentityCache() application.IdentityCache {
	if c.Redis == nil {
		return nil
	}
	return cache.NewIdentityCache(c.Redis, c.Config.IdentityCacheTTL)
}

// UserService builds the credential flow on top of the container's components.
func (c *Container) UserService() *application.UserService {
	return application.NewUserService(c.Users, c.Tokens, c.IdentityCache(), c.Config.BcryptCost, c.Logger)
}

func (c *Container) NoteService() *application.NoteService {
	return application.NewNoteService(c.Notes, c.Logger)
}
