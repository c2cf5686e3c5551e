package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service, worker and courier agent settings.
type Config struct {
	Port      int
	LogLevel  string
	DB        DB
	Redis     Redis
	Kafka     Kafka
	RateLimit RateLimit
	Pprof     PprofConfig
	Policy    Policy
	Agent     Agent
}

// DB stores Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a postgres connection string.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Redis stores merchant cache settings. An empty Addr disables the cache.
type Redis struct {
	Addr     string
	Password string
	DB       int
}

// Kafka stores orders consumer settings. No brokers disables the consumer.
type Kafka struct {
	Brokers []string
	GroupID string
	Topic   string
}

// RateLimit stores per-client HTTP limiter settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// PprofConfig stores admin server settings.
type PprofConfig struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// Policy stores evaluation settings.
type Policy struct {
	// DefaultOpen is the availability answer for missing or malformed schedules.
	DefaultOpen bool
	// FeeScheduleFile is a YAML fee config used when a merchant has none.
	FeeScheduleFile  string
	OperationTimeout time.Duration
	CacheTTL         time.Duration
}

// Agent stores courier agent settings.
type Agent struct {
	APIURL            string
	Token             string
	CourierID         int64
	TrackFile         string
	TrackInterval     time.Duration
	MinInterval       time.Duration
	MinDistanceMeters float64
	RequestTimeout    time.Duration
	Retry             Retry
}

// Retry stores outbound retry settings.
type Retry struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      defaultPort,
		LogLevel:  defaultLogLevel,
		DB:        defaultDB,
		Kafka:     defaultKafka,
		RateLimit: defaultRateLimit,
		Policy:    defaultPolicy,
		Agent:     defaultAgent,
	}

	if err := loadEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadEnv(cfg *Config) error {
	var err error
	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return err
	}
	cfg.LogLevel = envString("LOG_LEVEL", cfg.LogLevel)

	cfg.DB.Host = envString("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = envString("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = envString("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = envString("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = envString("POSTGRES_DB", cfg.DB.Name)
	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		return fmt.Errorf("invalid POSTGRES_PORT %q: %w", cfg.DB.Port, err)
	}

	cfg.Redis.Addr = envString("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = envString("REDIS_PASSWORD", cfg.Redis.Password)
	if cfg.Redis.DB, err = envInt("REDIS_DB", cfg.Redis.DB); err != nil {
		return err
	}

	if v := envString("KAFKA_BROKERS", ""); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	cfg.Kafka.GroupID = envString("KAFKA_GROUP_ID", cfg.Kafka.GroupID)
	cfg.Kafka.Topic = envString("KAFKA_ORDERS_TOPIC", cfg.Kafka.Topic)

	if cfg.RateLimit.Enabled, err = envBool("RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled); err != nil {
		return err
	}
	if cfg.RateLimit.Rate, err = envFloat("RATE_LIMIT_RPS", cfg.RateLimit.Rate); err != nil {
		return err
	}
	if cfg.RateLimit.Burst, err = envInt("RATE_LIMIT_BURST", cfg.RateLimit.Burst); err != nil {
		return err
	}

	if cfg.Pprof.Enabled, err = envBool("PPROF_ENABLED", cfg.Pprof.Enabled); err != nil {
		return err
	}
	cfg.Pprof.Addr = envString("PPROF_ADDR", cfg.Pprof.Addr)
	cfg.Pprof.User = envString("PPROF_USER", cfg.Pprof.User)
	cfg.Pprof.Pass = envString("PPROF_PASSWORD", cfg.Pprof.Pass)

	if cfg.Policy.DefaultOpen, err = envBool("AVAILABILITY_DEFAULT_OPEN", cfg.Policy.DefaultOpen); err != nil {
		return err
	}
	cfg.Policy.FeeScheduleFile = envString("FEE_SCHEDULE_FILE", cfg.Policy.FeeScheduleFile)
	if cfg.Policy.OperationTimeout, err = envDuration("POLICY_OPERATION_TIMEOUT", cfg.Policy.OperationTimeout); err != nil {
		return err
	}
	if cfg.Policy.CacheTTL, err = envDuration("MERCHANT_CACHE_TTL", cfg.Policy.CacheTTL); err != nil {
		return err
	}

	cfg.Agent.APIURL = envString("AGENT_API_URL", cfg.Agent.APIURL)
	cfg.Agent.Token = envString("AGENT_TOKEN", cfg.Agent.Token)
	if v := envString("AGENT_COURIER_ID", ""); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid AGENT_COURIER_ID %q: %w", v, err)
		}
		cfg.Agent.CourierID = id
	}
	cfg.Agent.TrackFile = envString("AGENT_TRACK_FILE", cfg.Agent.TrackFile)
	if cfg.Agent.TrackInterval, err = envDuration("AGENT_TRACK_INTERVAL", cfg.Agent.TrackInterval); err != nil {
		return err
	}
	if cfg.Agent.MinInterval, err = envDuration("AGENT_MIN_INTERVAL", cfg.Agent.MinInterval); err != nil {
		return err
	}
	if cfg.Agent.MinDistanceMeters, err = envFloat("AGENT_MIN_DISTANCE_METERS", cfg.Agent.MinDistanceMeters); err != nil {
		return err
	}
	return nil
}

func parseFlags(cfg *Config) error {
	fs := pflag.CommandLine
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.Policy.FeeScheduleFile, "fee-schedule", cfg.Policy.FeeScheduleFile, "YAML fee config used when a merchant has none")
	fs.BoolVar(&cfg.Policy.DefaultOpen, "default-open", cfg.Policy.DefaultOpen, "availability answer for unusable schedules")
	fs.Int64Var(&cfg.Agent.CourierID, "courier-id", cfg.Agent.CourierID, "courier id reported by the agent")
	fs.StringVar(&cfg.Agent.TrackFile, "track", cfg.Agent.TrackFile, "position track file replayed by the agent")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Policy.OperationTimeout <= 0 {
		return fmt.Errorf("invalid policy operation timeout: %s", c.Policy.OperationTimeout)
	}
	if c.Agent.MinInterval < 0 || c.Agent.MinDistanceMeters < 0 {
		return fmt.Errorf("agent gating must not be negative")
	}
	return nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
