package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/YusovID/reputation-engine/internal/apperrors"
	"github.com/YusovID/reputation-engine/internal/reputation"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string   `yaml:"env" env:"ENV" env-default:"local"`
	Server   Server   `yaml:"server"`
	Postgres Postgres `yaml:"postgres"`
	Redis    Redis    `yaml:"redis"`
	Kafka    Kafka    `yaml:"kafka"`
	Scoring  Scoring  `yaml:"scoring"`
}

type Postgres struct {
	Username        string        `yaml:"username" env:"POSTGRES_USER" env-required:"true"`
	Password        string        `yaml:"password" env:"POSTGRES_PASSWORD" env-required:"true"`
	Host            string        `yaml:"host" env:"POSTGRES_HOST" env-required:"true"`
	Port            string        `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	Database        string        `yaml:"database" env:"POSTGRES_DB" env-required:"true"`
	SSLMode         string        `yaml:"sslmode" env:"POSTGRES_SSLMODE" env-default:"disable"`
	MaxOpenConns    int           `yaml:"max_open_conns" env-default:"50"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env-default:"10"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env-default:"5m"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" env-default:"1m"`
}

type Server struct {
	Host    string        `yaml:"host" env:"SERVER_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"SERVER_PORT" env-default:"8080"`
	Timeout time.Duration `yaml:"timeout" env-default:"5s"`
}

// Redis is optional: an empty Addr disables the snapshot cache.
type Redis struct {
	Addr        string        `yaml:"addr" env:"REDIS_ADDR"`
	Password    string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB          int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	SnapshotTTL time.Duration `yaml:"snapshot_ttl" env-default:"5m"`
}

// Kafka is optional: no brokers disables the routing audit stream.
type Kafka struct {
	Brokers    []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	AuditTopic string   `yaml:"audit_topic" env:"KAFKA_AUDIT_TOPIC" env-default:"feedback.routing.audit"`
}

type Scoring struct {
	VelocityTarget    int           `yaml:"velocity_target" env:"SCORING_VELOCITY_TARGET" env-default:"10"`
	VelocityWindow    time.Duration `yaml:"velocity_window" env:"SCORING_VELOCITY_WINDOW" env-default:"2160h"`
	ResponsivenessSLA time.Duration `yaml:"responsiveness_sla" env:"SCORING_RESPONSIVENESS_SLA" env-default:"168h"`
	GoalCap           int           `yaml:"goal_cap" env:"SCORING_GOAL_CAP" env-default:"9999"`
	DefaultTargets    []float64     `yaml:"default_targets" env:"SCORING_DEFAULT_TARGETS" env-separator:"," env-default:"4.8,4.9,5.0"`
}

// Load reads the file named by CONFIG_PATH and validates it.
func Load() (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		return nil, errors.New("CONFIG_PATH is not set")
	}

	return LoadFrom(configPath)
}

func LoadFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config file does not exist: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate returns a *apperrors.ConfigurationError for the first bad field.
func (c *Config) Validate() error {
	if c.Redis.Addr != "" && c.Redis.SnapshotTTL <= 0 {
		return &apperrors.ConfigurationError{Field: "redis.snapshot_ttl", Reason: "must be positive"}
	}

	if len(c.Kafka.Brokers) > 0 && c.Kafka.AuditTopic == "" {
		return &apperrors.ConfigurationError{Field: "kafka.audit_topic", Reason: "must be set when brokers are configured"}
	}

	return c.GetScoringConfig().Validate()
}

// GetScoringConfig exposes the scoring section as engine settings.
func (c *Config) GetScoringConfig() reputation.Settings {
	targets := make([]float64, len(c.Scoring.DefaultTargets))
	copy(targets, c.Scoring.DefaultTargets)

	return reputation.Settings{
		VelocityTarget:    c.Scoring.VelocityTarget,
		VelocityWindow:    c.Scoring.VelocityWindow,
		ResponsivenessSLA: c.Scoring.ResponsivenessSLA,
		GoalCap:           c.Scoring.GoalCap,
		DefaultTargets:    targets,
	}
}

func (p Postgres) ConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		p.Username, p.Password, p.Host, p.Port, p.Database, p.SSLMode,
	)
}
