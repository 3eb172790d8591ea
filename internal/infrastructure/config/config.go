package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/gymflow/gymflow/internal/shared/config"
)

type Config struct {
	Server     sharedConfig.ServerConfig     `mapstructure:"server"`
	Database   sharedConfig.DatabaseConfig   `mapstructure:"database"`
	Logger     sharedConfig.LoggerConfig     `mapstructure:"logger"`
	Auth       sharedConfig.AuthConfig       `mapstructure:"auth"`
	Redis      sharedConfig.RedisConfig      `mapstructure:"redis"`
	Lock       sharedConfig.LockConfig       `mapstructure:"lock"`
	RateLimit  sharedConfig.RateLimitConfig  `mapstructure:"ratelimit"`
	Membership sharedConfig.MembershipConfig `mapstructure:"membership"`
	Permission sharedConfig.PermissionConfig `mapstructure:"permission"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml (or configPath when set) and GYMFLOW_* environment overrides.
// A missing config file is not an error: defaults plus environment are enough to boot.
func Load(env, configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("GYMFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configPath != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &cfg
	appConfigMu.Unlock()

	return &cfg, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func validate(cfg *Config) error {
	switch cfg.Database.Driver {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	switch cfg.Lock.Driver {
	case "local", "redis":
	default:
		return fmt.Errorf("unsupported lock driver %q", cfg.Lock.Driver)
	}
	switch cfg.RateLimit.Store {
	case "memory", "redis":
	default:
		return fmt.Errorf("unsupported rate limit store %q", cfg.RateLimit.Store)
	}
	if cfg.Membership.PlanChangeTTLMinutes <= 0 {
		return fmt.Errorf("membership.plan_change_ttl_minutes must be positive")
	}
	if len(cfg.Membership.PauseDurations) == 0 {
		return fmt.Errorf("membership.pause_durations must not be empty")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")

	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "gymflow_dev")
	v.SetDefault("database.sqlite_path", "gymflow.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("auth.jwt.secret", "change-me-in-production")
	v.SetDefault("auth.jwt.access_exp_minutes", 15)
	v.SetDefault("auth.receipt_secret", "change-me-in-production")
	v.SetDefault("auth.bcrypt_cost", 12)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("lock.driver", "local")
	v.SetDefault("lock.ttl_seconds", 10)
	v.SetDefault("lock.wait_millis", 2000)

	v.SetDefault("ratelimit.enabled", false)
	v.SetDefault("ratelimit.store", "memory")
	v.SetDefault("ratelimit.calculate_requests_per_minute", 30)

	v.SetDefault("membership.plan_change_ttl_minutes", 15)
	v.SetDefault("membership.pause_durations", []int{15, 30, 90})
	v.SetDefault("membership.default_currency", "USD")

	v.SetDefault("permission.enabled", true)
}
