package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Realtime.validate(); err != nil {
		return fmt.Errorf("realtime: %w", err)
	}

	if c.Redis.Enabled {
		if strings.TrimSpace(c.Redis.Addr) == "" {
			return fmt.Errorf("redis.addr is required when redis is enabled")
		}
		if strings.TrimSpace(c.Redis.Channel) == "" {
			return fmt.Errorf("redis.channel is required when redis is enabled")
		}
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}
	if c.RateLimit.ClientLogPerMinute <= 0 {
		return fmt.Errorf("rate_limit.client_log_per_minute must be > 0 (got %d)", c.RateLimit.ClientLogPerMinute)
	}

	return nil
}

func (r *RealtimeConfig) validate() error {
	if r.SendBuffer <= 0 {
		return fmt.Errorf("send_buffer must be > 0 (got %d)", r.SendBuffer)
	}
	if r.ForwardTimeout <= 0 {
		return fmt.Errorf("forward_timeout must be > 0 (got %v)", r.ForwardTimeout)
	}
	if r.PingInterval <= 0 {
		return fmt.Errorf("ping_interval must be > 0 (got %v)", r.PingInterval)
	}
	if r.WriteTimeout <= 0 {
		return fmt.Errorf("write_timeout must be > 0 (got %v)", r.WriteTimeout)
	}
	if r.MaxMessageSize <= 0 {
		return fmt.Errorf("max_message_size must be > 0 (got %d)", r.MaxMessageSize)
	}
	return nil
}
