package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Log        LogConfig
	Validation ValidationConfig
	Calendar   CalendarConfig
	Platforms  map[string]PlatformConfig
	Health     HealthConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // in minutes
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// ValidationConfig holds validation threshold settings
type ValidationConfig struct {
	MaxBatchSize           int
	PerOrderEstimate       time.Duration
	MaxEstimatedDuration   time.Duration
	MaxSyncDuration        time.Duration
	MaxOrderProcessingTime time.Duration
}

// CalendarConfig holds regional business-calendar settings
type CalendarConfig struct {
	Region   string
	Timezone string
	CacheTTL time.Duration
}

// PlatformConfig holds the static provisioning state of one platform
type PlatformConfig struct {
	RateLimits    bool
	Auth          bool
	BusinessRules bool
	ErrorHandling bool
}

// HealthConfig holds health check scheduling settings
type HealthConfig struct {
	Interval time.Duration
	Tenants  []string
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/channelsync")

	v.SetEnvPrefix("CHANNELSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Config file is optional; environment variables and defaults apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for inconsistencies
func (c *Config) Validate() error {
	if c.Validation.MaxBatchSize <= 0 {
		return fmt.Errorf("validation.maxbatchsize must be positive")
	}
	if c.Validation.MaxSyncDuration <= 0 {
		return fmt.Errorf("validation.maxsyncduration must be positive")
	}
	if c.Calendar.Region == "" {
		return fmt.Errorf("calendar.region is required")
	}
	if c.Calendar.Timezone == "" {
		return fmt.Errorf("calendar.timezone is required")
	}
	return nil
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Addr returns the Redis address
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "channelsync")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.dbname", "channelsync")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.maxopenconns", 25)
	v.SetDefault("database.maxidleconns", 5)
	v.SetDefault("database.connmaxlifetime", 30)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("validation.maxbatchsize", 50)
	v.SetDefault("validation.perorderestimate", 500*time.Millisecond)
	v.SetDefault("validation.maxestimatedduration", 30*time.Second)
	v.SetDefault("validation.maxsyncduration", 30*time.Second)
	v.SetDefault("validation.maxorderprocessingtime", 5*time.Second)

	v.SetDefault("calendar.region", "ID")
	v.SetDefault("calendar.timezone", "Asia/Jakarta")
	v.SetDefault("calendar.cachettl", 24*time.Hour)

	v.SetDefault("health.interval", 5*time.Minute)
}
