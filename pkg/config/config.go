package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/finpet/finpet-api/pkg/pet"
)

// APIServerConfig represents the finpet API server configuration
type APIServerConfig struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Auth       AuthConfig       `yaml:"auth"`
	Logging    LoggingConfig    `yaml:"logging"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Pet        PetConfig        `yaml:"pet"`

	Reconciliation ReconciliationConfig `yaml:"reconciliation"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8081" validate:"gt=0,lt=65536"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"60s"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" default:"localhost" validate:"required"`
	Port     int    `yaml:"port" default:"5432"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"finpet" validate:"required"`
	SSLMode  string `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
}

// RedisConfig contains the optional Redis connection used by the rate limiter.
// An empty Addr disables Redis.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// AuthConfig configures verification of session tokens issued by the auth provider.
// Either Secret (HS256) or JWKSURL (RS256) must be set.
type AuthConfig struct {
	Secret  string `yaml:"secret"`
	JWKSURL string `yaml:"jwks_url"`
	Issuer  string `yaml:"issuer"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `yaml:"enabled" default:"true"`
}

// RateLimitConfig limits requests per caller and path. Requires Redis.
type RateLimitConfig struct {
	Enabled bool          `yaml:"enabled"`
	Limit   int           `yaml:"limit" default:"120" validate:"gt=0"`
	Window  time.Duration `yaml:"window" default:"1m"`
}

// ReconciliationConfig contains settings for balance reconciliation.
// A zero Interval disables the periodic run; a zero InitialTimeout skips the
// run at startup.
type ReconciliationConfig struct {
	InitialTimeout time.Duration `yaml:"initial_timeout" default:"30s"`
	Interval       time.Duration `yaml:"interval" default:"10m"`
	QuietPeriod    time.Duration `yaml:"quiet_period" default:"1m"`
	BatchSize      int           `yaml:"batch_size" default:"500" validate:"gt=0"`
}

// PetConfig holds the pet game rules and the timezone used to decide what "today" is.
type PetConfig struct {
	Timezone           string `yaml:"timezone" default:"UTC"`
	DailyMoodDecay     int    `yaml:"daily_mood_decay" default:"25" validate:"gte=0,lte=100"`
	DailyFullnessDecay int    `yaml:"daily_fullness_decay" default:"10" validate:"gte=0,lte=100"`
	LoginMoodBonus     int    `yaml:"login_mood_bonus" default:"5" validate:"gte=0,lte=100"`
	StreakTarget       int    `yaml:"streak_target" default:"5" validate:"gt=0"`
	StreakBonus        int    `yaml:"streak_bonus" default:"20" validate:"gte=0"`
}

// Location resolves the configured timezone.
func (c *PetConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid pet.timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Rules converts the configured constants into daily transition rules.
func (c *PetConfig) Rules() pet.Rules {
	return pet.Rules{
		MoodDecay:      c.DailyMoodDecay,
		FullnessDecay:  c.DailyFullnessDecay,
		LoginMoodBonus: c.LoginMoodBonus,
		StreakTarget:   c.StreakTarget,
		StreakBonus:    c.StreakBonus,
	}
}

// LoadAPIServer loads API server configuration from file.
// A .env file next to the working directory is loaded first so ${VAR}
// references in the YAML can be satisfied locally.
func LoadAPIServer(configPath string) (*APIServerConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseAPIServer(raw)
}

// ParseAPIServer parses, defaults and validates a YAML document.
func ParseAPIServer(raw []byte) (*APIServerConfig, error) {
	var cfg APIServerConfig
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateAPIServer(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func validateAPIServer(cfg *APIServerConfig) error {
	if err := validator.New().Struct(cfg); err != nil {
		return err
	}
	if cfg.Auth.Secret == "" && cfg.Auth.JWKSURL == "" {
		return fmt.Errorf("auth.secret or auth.jwks_url is required")
	}
	if cfg.RateLimit.Enabled && cfg.Redis.Addr == "" {
		return fmt.Errorf("rate_limit.enabled requires redis.addr")
	}
	if _, err := cfg.Pet.Location(); err != nil {
		return err
	}
	return nil
}

// GetConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) GetConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
