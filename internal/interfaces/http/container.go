package http

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/gymflow/gymflow/internal/infrastructure/auth"
	"github.com/gymflow/gymflow/internal/infrastructure/config"
	"github.com/gymflow/gymflow/internal/infrastructure/permission"
	"github.com/gymflow/gymflow/internal/infrastructure/ratelimit"
	"github.com/gymflow/gymflow/internal/interfaces/http/handlers"
	"github.com/gymflow/gymflow/internal/interfaces/http/middleware"
	"github.com/gymflow/gymflow/internal/shared/biztime"
	"github.com/gymflow/gymflow/internal/shared/logger"
	"github.com/gymflow/gymflow/internal/shared/utils"
)

// Container holds infrastructure components, repositories, use cases and handlers,
// wires them together and provides Shutdown() for graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client
	clock  biztime.Clock

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	calculateRateLimit   *middleware.MemberRateLimit
	membershipAccess     *middleware.MembershipAccess

	jwtSvc      *auth.JWTService
	rateLimiter ratelimit.RateLimiter
	enforcer    *permission.Enforcer
}

// NewContainer wires every dependency. clock may be nil to use the system clock.
func NewContainer(cfg *config.Config, db *gorm.DB, clock biztime.Clock, log logger.Interface) (*Container, error) {
	if clock == nil {
		clock = biztime.SystemClock()
	}

	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
		clock:  clock,
	}

	if err := utils.RegisterPauseDurations(cfg.Membership.PauseDurations); err != nil {
		return nil, err
	}

	// Section 1: Infrastructure - Redis, repositories, auth, permissions
	if err := c.initInfrastructure(); err != nil {
		c.closeRedis()
		return nil, err
	}

	// Section 2: Membership use cases
	if err := c.initUseCases(); err != nil {
		c.closeRedis()
		return nil, err
	}

	// Section 3: Handlers and middlewares
	c.initHandlers()

	return c, nil
}

// Engine returns the gin engine; call SetupRoutes first.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases connections owned by the container. The database is owned
// by the caller.
func (c *Container) Shutdown(ctx context.Context) error {
	var errs []error
	if err := c.closeRedis(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close redis: %w", err))
	}
	if ctx.Err() != nil {
		errs = append(errs, ctx.Err())
	}
	return errors.Join(errs...)
}

// sqlPinger adapts the gorm handle for the health check.
func (c *Container) sqlPinger() handlers.Pinger {
	return gormPinger{db: c.db}
}

type gormPinger struct {
	db *gorm.DB
}

func (p gormPinger) PingContext(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (c *Container) closeRedis() error {
	if c.redis == nil {
		return nil
	}
	err := c.redis.Close()
	c.redis = nil
	return err
}
