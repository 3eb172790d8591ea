package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	// Driver is "mysql" or "sqlite". sqlite is meant for local development.
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SQLitePath      string `mapstructure:"sqlite_path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
	// ReceiptSecret verifies payment receipts issued by the payment service.
	ReceiptSecret string `mapstructure:"receipt_secret"`
	BcryptCost    int    `mapstructure:"bcrypt_cost"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LockConfig struct {
	// Driver is "local" (in-process) or "redis" (shared across replicas).
	Driver     string `mapstructure:"driver"`
	TTLSeconds int    `mapstructure:"ttl_seconds"`
	WaitMillis int    `mapstructure:"wait_millis"`
}

func (l *LockConfig) TTL() time.Duration {
	return time.Duration(l.TTLSeconds) * time.Second
}

func (l *LockConfig) Wait() time.Duration {
	return time.Duration(l.WaitMillis) * time.Millisecond
}

type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Store is "memory" (per process) or "redis" (shared across replicas).
	Store                      string `mapstructure:"store"`
	CalculateRequestsPerMinute int    `mapstructure:"calculate_requests_per_minute"`
}

type MembershipConfig struct {
	PlanChangeTTLMinutes int    `mapstructure:"plan_change_ttl_minutes"`
	PauseDurations       []int  `mapstructure:"pause_durations"`
	DefaultCurrency      string `mapstructure:"default_currency"`
}

func (m *MembershipConfig) PlanChangeTTL() time.Duration {
	return time.Duration(m.PlanChangeTTLMinutes) * time.Minute
}

type PermissionConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
