// Package bootstrap loads configuration, logging and the database for CLI commands.
package bootstrap

import (
	"fmt"
	"os"

	"github.com/gymflow/gymflow/internal/infrastructure/config"
	"github.com/gymflow/gymflow/internal/infrastructure/database"
	"github.com/gymflow/gymflow/internal/shared/constants"
	"github.com/gymflow/gymflow/internal/shared/logger"
)

// Options are the persistent flags shared by every command.
type Options struct {
	Env        string
	ConfigPath string
}

// ResolveEnv lets the ENV variable override the --env flag.
func (o Options) ResolveEnv() string {
	if v := os.Getenv("ENV"); v != "" {
		return v
	}
	return o.Env
}

// Init loads config and initialises the global logger.
func Init(opts Options) (*config.Config, logger.Interface, error) {
	env := opts.ResolveEnv()

	cfg, err := config.Load(env, opts.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	debug := MapEnvToGinMode(env) == "debug"
	if err := logger.Init(&cfg.Logger, debug); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// InitWithDatabase is Init plus a database connection. Callers must defer database.Close.
func InitWithDatabase(opts Options) (*config.Config, logger.Interface, error) {
	cfg, log, err := Init(opts)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return cfg, log, nil
}

// MapEnvToGinMode translates a deployment environment name into a gin mode.
func MapEnvToGinMode(environment string) string {
	switch environment {
	case constants.EnvProduction, "prod", "release":
		return "release"
	case constants.EnvTest, "testing":
		return "test"
	default:
		return "debug"
	}
}
