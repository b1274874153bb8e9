package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be between 4 and 31 (got %d)", c.Auth.PasswordHashCost)
	}

	for _, pair := range strings.Split(c.Auth.DemoUsers, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		email, password, ok := strings.Cut(pair, ":")
		if !ok || strings.TrimSpace(email) == "" || password == "" {
			return fmt.Errorf("auth.demo_users: malformed entry %q (want email:password)", pair)
		}
	}

	switch c.Database.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("database.driver must be %q or %q (got %q)", DriverMemory, DriverPostgres, c.Database.Driver)
	}

	if err := c.Batch.Defaults().Validate(); err != nil {
		return fmt.Errorf("batch defaults: %w", err)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.RateLimit.LoginPerMinute <= 0 {
		return fmt.Errorf("rate_limit.login_per_minute must be > 0 (got %d)", c.RateLimit.LoginPerMinute)
	}

	if c.Calendar.AuthEndpoint != "" {
		if _, err := url.ParseRequestURI(c.Calendar.AuthEndpoint); err != nil {
			return fmt.Errorf("calendar.auth_endpoint: %w", err)
		}
	}

	return nil
}

// Validate checks the client configuration.
func (c *ClientConfig) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("api_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api_url must be an http(s) URL (got %q)", c.APIURL)
	}
	if u.Host == "" {
		return fmt.Errorf("api_url must include a host (got %q)", c.APIURL)
	}

	if c.SuccessDisplay <= 0 {
		return fmt.Errorf("success_display must be > 0 (got %s)", c.SuccessDisplay)
	}

	return nil
}
