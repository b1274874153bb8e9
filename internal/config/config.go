package config

import (
	"strings"
	"time"

	"github.com/heartmarshall/batch-dashboard/internal/domain"
)

// Config is the root server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Batch     BatchConfig     `yaml:"batch"`
	Queue     QueueConfig     `yaml:"queue"`
	Calendar  CalendarConfig  `yaml:"calendar"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig limits login attempts per client address.
type RateLimitConfig struct {
	LoginPerMinute  int           `yaml:"login_per_minute" env:"RATE_LIMIT_LOGIN_PER_MINUTE" env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"1m"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Storage drivers accepted in DatabaseConfig.Driver.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// DatabaseConfig selects and configures the persistence backend.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"             env:"DATABASE_DRIVER"             env-default:"memory"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"batch-dashboard"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"24h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
	// DemoUsers is a comma-separated list of email:password pairs created at startup.
	DemoUsers string `yaml:"demo_users" env:"AUTH_DEMO_USERS" env-default:"demo@example.com:password123"`
}

// DemoAccount is one parsed entry of AuthConfig.DemoUsers.
type DemoAccount struct {
	Email    string
	Password string
}

// DemoAccounts parses DemoUsers. Malformed entries are skipped; Validate
// rejects them before this is called in practice.
func (c AuthConfig) DemoAccounts() []DemoAccount {
	var out []DemoAccount
	for _, pair := range strings.Split(c.DemoUsers, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		email, password, ok := strings.Cut(pair, ":")
		if !ok || email == "" || password == "" {
			continue
		}
		out = append(out, DemoAccount{Email: strings.TrimSpace(email), Password: password})
	}
	return out
}

// BatchConfig holds the settings a user gets before saving any.
type BatchConfig struct {
	DefaultTargetPercentage float64 `yaml:"default_target_percentage" env:"BATCH_DEFAULT_TARGET_PERCENTAGE" env-default:"0"`
	DefaultImportSetupID    int64   `yaml:"default_import_setup_id"   env:"BATCH_DEFAULT_IMPORT_SETUP_ID"   env-default:"1"`
	DefaultHourlyBatchCount float64 `yaml:"default_hourly_batch_count" env:"BATCH_DEFAULT_HOURLY_BATCH_COUNT" env-default:"60"`
}

// Defaults returns the configured defaults as domain settings.
func (c BatchConfig) Defaults() domain.BatchSettings {
	return domain.BatchSettings{
		TargetPercentage: c.DefaultTargetPercentage,
		ImportSetupID:    c.DefaultImportSetupID,
		HourlyBatchCount: c.DefaultHourlyBatchCount,
	}
}

// QueueConfig configures the AMQP dispatcher. An empty URL keeps batch
// commands in-process.
type QueueConfig struct {
	URL       string `yaml:"url"        env:"QUEUE_URL"`
	QueueName string `yaml:"queue_name" env:"QUEUE_NAME" env-default:"master_batch_commands"`
}

// Enabled reports whether commands are published to a broker.
func (c QueueConfig) Enabled() bool { return c.URL != "" }

// CalendarConfig configures the external calendar authorization redirect.
type CalendarConfig struct {
	AuthEndpoint string `yaml:"auth_endpoint" env:"CALENDAR_AUTH_ENDPOINT" env-default:"https://accounts.google.com/o/oauth2/v2/auth"`
	ClientID     string `yaml:"client_id"     env:"CALENDAR_CLIENT_ID"`
	RedirectURI  string `yaml:"redirect_uri"  env:"CALENDAR_REDIRECT_URI"`
	Scope        string `yaml:"scope"         env:"CALENDAR_SCOPE"         env-default:"https://www.googleapis.com/auth/calendar.readonly"`
}

// Configured reports whether enough is set to build an authorization URL.
func (c CalendarConfig) Configured() bool {
	return c.AuthEndpoint != "" && c.ClientID != "" && c.RedirectURI != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ClientConfig is the configuration of the dashboard client.
type ClientConfig struct {
	APIURL         string        `yaml:"api_url"         env:"DASHBOARD_API_URL"         env-default:"http://localhost:8080"`
	SessionFile    string        `yaml:"session_file"    env:"DASHBOARD_SESSION_FILE"`
	SuccessDisplay time.Duration `yaml:"success_display" env:"DASHBOARD_SUCCESS_DISPLAY" env-default:"5s"`
	LogFile        string        `yaml:"log_file"        env:"DASHBOARD_LOG_FILE"`
	Log            ClientLogConfig `yaml:"log"`
}

// ClientLogConfig mirrors LogConfig with quieter defaults for a terminal tool.
type ClientLogConfig struct {
	Level  string `yaml:"level"  env:"DASHBOARD_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"DASHBOARD_LOG_FORMAT" env-default:"text"`
}

// LogConfig converts the client log settings for app.NewLogger.
func (c ClientLogConfig) LogConfig() LogConfig {
	return LogConfig{Level: c.Level, Format: c.Format}
}
