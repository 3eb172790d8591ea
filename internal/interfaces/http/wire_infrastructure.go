package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gymflow/gymflow/internal/infrastructure/auth"
	"github.com/gymflow/gymflow/internal/infrastructure/config"
	"github.com/gymflow/gymflow/internal/infrastructure/permission"
	"github.com/gymflow/gymflow/internal/infrastructure/ratelimit"
	"github.com/gymflow/gymflow/internal/interfaces/http/middleware"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

const redisPingTimeout = 3 * time.Second

func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	if needsRedis(cfg) {
		client, err := initRedis(cfg, log)
		if err != nil {
			return err
		}
		c.redis = client
	}

	c.repos = newRepositories(c.db, log)

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, c.clock)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log.Named("auth"))

	if cfg.RateLimit.Store == "redis" && c.redis != nil {
		c.rateLimiter = ratelimit.NewRedisRateLimiter(c.redis, c.clock)
	} else {
		c.rateLimiter = ratelimit.NewMemoryRateLimiter(c.clock.Now)
	}

	enforcer, err := permission.NewEnforcer(c.db, log.Named("permission"))
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := permission.SeedDefaultPolicies(enforcer); err != nil {
		return err
	}
	c.enforcer = enforcer
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, cfg.Permission.Enabled, log.Named("permission"))

	return nil
}

// needsRedis reports whether any configured component is backed by Redis.
func needsRedis(cfg *config.Config) bool {
	return cfg.Lock.Driver == "redis" || (cfg.RateLimit.Enabled && cfg.RateLimit.Store == "redis")
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient, nil
}
