// Package config loads and validates app config from env and an optional .env file using Viper.
// One Config serves every binary; each reads the fields it needs.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// GRPCAddr is the address the Invitation Orchestrator listens on (e.g. :8080).
	GRPCAddr string `mapstructure:"GRPC_ADDR"`
	// IdentityGRPCAddr is the address the Identity Service listens on.
	IdentityGRPCAddr string `mapstructure:"IDENTITY_GRPC_ADDR"`
	// WorkspaceGRPCAddr is the address the Workspace Service listens on.
	WorkspaceGRPCAddr string `mapstructure:"WORKSPACE_GRPC_ADDR"`
	// IdentityServiceAddr is the dial target for the Identity Service (orchestrator, seed).
	IdentityServiceAddr string `mapstructure:"IDENTITY_SERVICE_ADDR"`
	// WorkspaceServiceAddr is the dial target for the Workspace Service (orchestrator, seed).
	WorkspaceServiceAddr string `mapstructure:"WORKSPACE_SERVICE_ADDR"`

	// DatabaseURL is the Postgres DSN of the workspace store.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// IdentityDBPath is the SQLite file of the identity store.
	IdentityDBPath string `mapstructure:"IDENTITY_DB_PATH"`

	// JWTPrivateKey is the PEM-encoded private key (RSA or ECDSA) or path to file. Identity Service only.
	JWTPrivateKey string `mapstructure:"JWT_PRIVATE_KEY"`
	// JWTPublicKey is the PEM-encoded public key or path to file. The orchestrator validates with it.
	JWTPublicKey string `mapstructure:"JWT_PUBLIC_KEY"`
	// JWTIssuer is the iss claim.
	JWTIssuer string `mapstructure:"JWT_ISSUER"`
	// JWTAudience is the aud claim.
	JWTAudience string `mapstructure:"JWT_AUDIENCE"`
	// JWTAccessTTL is the access token lifetime (e.g. "15m").
	JWTAccessTTL string `mapstructure:"JWT_ACCESS_TTL"`
	// BcryptCost is the bcrypt cost factor (4–31); default 12.
	BcryptCost int `mapstructure:"BCRYPT_COST"`

	// InvitationTTLRaw is how long an invitation stays redeemable (e.g. "168h").
	InvitationTTLRaw string `mapstructure:"INVITATION_TTL"`
	// InviteBaseURL prefixes "/invite/<token>" in invite URLs.
	InviteBaseURL string `mapstructure:"INVITE_BASE_URL"`
	// CommandTimeoutRaw bounds every cross-service command (e.g. "5s").
	CommandTimeoutRaw string `mapstructure:"COMMAND_TIMEOUT"`

	// KafkaBrokers is a comma-separated list of Kafka broker addresses. Empty disables notifications.
	KafkaBrokers string `mapstructure:"KAFKA_BROKERS"`
	// NotificationKafkaTopic is the topic invitation.created events go to.
	NotificationKafkaTopic string `mapstructure:"NOTIFICATION_KAFKA_TOPIC"`
	// KafkaGroupID is the consumer group of the notification worker.
	KafkaGroupID string `mapstructure:"KAFKA_GROUP_ID"`

	// RedisAddr is the Redis address for shared rate limiting. Empty uses an in-process limiter.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	// PublicRateLimit is the number of calls per client IP and window on public methods. 0 disables.
	PublicRateLimit int `mapstructure:"PUBLIC_RATE_LIMIT"`
	// PublicRateWindowRaw is the rate limit window (e.g. "1m").
	PublicRateWindowRaw string `mapstructure:"PUBLIC_RATE_WINDOW"`

	// OTelEndpoint is the OTLP gRPC collector endpoint. Empty keeps no-op providers.
	OTelEndpoint string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	// OTelInsecure disables TLS to the collector.
	OTelInsecure bool `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`

	// Env is the application environment (e.g. "development", "production").
	Env string `mapstructure:"APP_ENV"`
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored (e.g. in CI). Env vars override .env. Returns an error if required fields are invalid.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("GRPC_ADDR", ":8080")
	v.SetDefault("IDENTITY_GRPC_ADDR", ":8081")
	v.SetDefault("WORKSPACE_GRPC_ADDR", ":8082")
	v.SetDefault("IDENTITY_SERVICE_ADDR", "localhost:8081")
	v.SetDefault("WORKSPACE_SERVICE_ADDR", "localhost:8082")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("IDENTITY_DB_PATH", "identity.db")
	v.SetDefault("JWT_PRIVATE_KEY", "")
	v.SetDefault("JWT_PUBLIC_KEY", "")
	v.SetDefault("JWT_ISSUER", "workspace-hub-identity")
	v.SetDefault("JWT_AUDIENCE", "workspace-hub-api")
	v.SetDefault("JWT_ACCESS_TTL", "15m")
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("INVITATION_TTL", "168h")
	v.SetDefault("INVITE_BASE_URL", "http://localhost:3000")
	v.SetDefault("COMMAND_TIMEOUT", "5s")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("NOTIFICATION_KAFKA_TOPIC", "workspace-hub-invitations")
	v.SetDefault("KAFKA_GROUP_ID", "workspace-hub-notifier")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("PUBLIC_RATE_LIMIT", 30)
	v.SetDefault("PUBLIC_RATE_WINDOW", "1m")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_INSECURE", true)
	v.SetDefault("APP_ENV", "")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.GRPCAddr == "" {
		return nil, errors.New("config: GRPC_ADDR must be set")
	}

	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = 12
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, errors.New("config: BCRYPT_COST must be between 4 and 31")
	}
	if cfg.PublicRateLimit < 0 {
		return nil, errors.New("config: PUBLIC_RATE_LIMIT must not be negative")
	}
	if cfg.Env == "production" && !strings.HasPrefix(cfg.InviteBaseURL, "https://") {
		return nil, errors.New("config: INVITE_BASE_URL must use https when APP_ENV=production")
	}

	return &cfg, nil
}

// AccessTTL parses JWTAccessTTL as a time.Duration. Returns 15m if unset or invalid.
func (c *Config) AccessTTL() time.Duration {
	return parseDuration(c.JWTAccessTTL, 15*time.Minute)
}

// InvitationTTL parses InvitationTTLRaw. Returns 168h if unset or invalid.
func (c *Config) InvitationTTL() time.Duration {
	return parseDuration(c.InvitationTTLRaw, 168*time.Hour)
}

// CommandTimeout parses CommandTimeoutRaw. Returns 5s if unset or invalid.
func (c *Config) CommandTimeout() time.Duration {
	return parseDuration(c.CommandTimeoutRaw, 5*time.Second)
}

// PublicRateWindow parses PublicRateWindowRaw. Returns 1m if unset or invalid.
func (c *Config) PublicRateWindow() time.Duration {
	return parseDuration(c.PublicRateWindowRaw, time.Minute)
}

func parseDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// KafkaBrokersList returns Kafka broker addresses from the comma-separated config.
// An empty list means notifications are disabled.
func (c *Config) KafkaBrokersList() []string {
	if c == nil || c.KafkaBrokers == "" {
		return nil
	}
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
