package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application settings
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Grading  GradingConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port         string
	ReadTimeout  int
	WriteTimeout int
}

// DatabaseConfig holds PostgreSQL connection settings. Two credential sets
// connect to the same database: the app role for client-facing reads and the
// service role for the grading path. The app role's grants exclude the
// correct_answer column and all writes to user_quiz_attempts.
type DatabaseConfig struct {
	Host    string
	Port    string
	DBName  string
	SSLMode string

	// App role (restricted path)
	User     string
	Password string

	// Service role (elevated path)
	ServiceUser     string `mapstructure:"service_user"`
	ServicePassword string `mapstructure:"service_password"`
}

// RedisConfig holds Redis connection settings.
// Supported modes: single, sentinel, cluster.
type RedisConfig struct {
	Mode     string   `mapstructure:"mode"`
	Addrs    []string `mapstructure:"addrs"`
	Addr     string   `mapstructure:"addr"`
	Password string   `mapstructure:"password"`
	DB       int      `mapstructure:"db"`

	MasterName      string `mapstructure:"master_name"`
	MaxRetries      int    `mapstructure:"max_retries"`
	MinRetryBackoff int    `mapstructure:"min_retry_backoff"`
	MaxRetryBackoff int    `mapstructure:"max_retry_backoff"`
}

// JWTConfig holds token verification settings. The secret is shared with the
// identity provider that issues the tokens.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

// GradingConfig holds the grading pipeline knobs
type GradingConfig struct {
	// MaxAttemptsPerWindow attempts per (user, quiz) within WindowSeconds
	// trip the rate limit.
	MaxAttemptsPerWindow int `mapstructure:"max_attempts_per_window"`
	WindowSeconds        int `mapstructure:"window_seconds"`

	// RequestTimeoutSeconds bounds one grading invocation end to end.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds"`

	// KeyCacheTTLSeconds is the Redis TTL for cached grading keys.
	KeyCacheTTLSeconds int `mapstructure:"key_cache_ttl_seconds"`
}

// Window returns the sliding rate-limit window as a duration
func (g *GradingConfig) Window() time.Duration {
	return time.Duration(g.WindowSeconds) * time.Second
}

// RequestTimeout returns the per-invocation deadline as a duration
func (g *GradingConfig) RequestTimeout() time.Duration {
	return time.Duration(g.RequestTimeoutSeconds) * time.Second
}

// KeyCacheTTL returns the grading-key cache TTL as a duration
func (g *GradingConfig) KeyCacheTTL() time.Duration {
	return time.Duration(g.KeyCacheTTLSeconds) * time.Second
}

// AppConnectionString builds the app-role PostgreSQL DSN
func (d *DatabaseConfig) AppConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// ServiceConnectionString builds the service-role PostgreSQL DSN
func (d *DatabaseConfig) ServiceConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.ServiceUser, d.ServicePassword, d.DBName, d.SSLMode,
	)
}

// Load reads configuration from an optional file plus environment variables
func Load(configPath string) (*Config, error) {
	vip := viper.New() // fresh instance, no global state

	// Defaults for the grading pipeline
	vip.SetDefault("grading.max_attempts_per_window", 3)
	vip.SetDefault("grading.window_seconds", 60)
	vip.SetDefault("grading.request_timeout_seconds", 5)
	vip.SetDefault("grading.key_cache_ttl_seconds", 30)
	vip.SetDefault("server.port", "8080")
	vip.SetDefault("server.readtimeout", 10)
	vip.SetDefault("server.writetimeout", 10)
	vip.SetDefault("database.sslmode", "disable")

	// Bind environment variables explicitly
	vip.BindEnv("server.port", "SERVER_PORT")
	vip.BindEnv("server.readtimeout", "SERVER_READ_TIMEOUT")
	vip.BindEnv("server.writetimeout", "SERVER_WRITE_TIMEOUT")

	vip.BindEnv("database.host", "DATABASE_HOST")
	vip.BindEnv("database.port", "DATABASE_PORT")
	vip.BindEnv("database.user", "DATABASE_USER")
	vip.BindEnv("database.password", "DATABASE_PASSWORD")
	vip.BindEnv("database.service_user", "DATABASE_SERVICE_USER")
	vip.BindEnv("database.service_password", "DATABASE_SERVICE_PASSWORD")
	vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")

	vip.BindEnv("redis.mode", "REDIS_MODE")
	vip.BindEnv("redis.addrs", "REDIS_ADDRS")
	vip.BindEnv("redis.addr", "REDIS_ADDR")
	vip.BindEnv("redis.password", "REDIS_PASSWORD")
	vip.BindEnv("redis.db", "REDIS_DB")
	vip.BindEnv("redis.master_name", "REDIS_MASTER_NAME")

	vip.BindEnv("jwt.secret", "JWT_SECRET")

	vip.BindEnv("grading.max_attempts_per_window", "GRADING_MAX_ATTEMPTS_PER_WINDOW")
	vip.BindEnv("grading.window_seconds", "GRADING_WINDOW_SECONDS")
	vip.BindEnv("grading.request_timeout_seconds", "GRADING_REQUEST_TIMEOUT_SECONDS")
	vip.BindEnv("grading.key_cache_ttl_seconds", "GRADING_KEY_CACHE_TTL_SECONDS")

	if configPath != "" {
		vip.SetConfigFile(configPath)
		if err := vip.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				log.Printf("[Config] File '%s' not found, using environment variables and defaults", configPath)
			} else {
				log.Printf("[Config] Warning: could not read config file '%s': %v", configPath, err)
			}
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Required settings
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT secret is required (check JWT_SECRET env var)")
	}
	if cfg.Database.Host == "" || cfg.Database.DBName == "" || cfg.Database.User == "" {
		return nil, fmt.Errorf("database configuration (host, dbname, user) is incomplete (check DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER env vars)")
	}
	if cfg.Database.ServiceUser == "" {
		return nil, fmt.Errorf("service-role database user is required (check DATABASE_SERVICE_USER env var)")
	}
	if cfg.Database.ServiceUser == cfg.Database.User {
		return nil, fmt.Errorf("service-role user must differ from the app-role user; the privilege boundary depends on it")
	}
	if cfg.Grading.MaxAttemptsPerWindow <= 0 || cfg.Grading.WindowSeconds <= 0 {
		return nil, fmt.Errorf("grading rate-limit settings must be positive")
	}

	return &cfg, nil
}
