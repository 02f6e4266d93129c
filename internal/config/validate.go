package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d,%d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if c.Auth.AdminPassword == "" {
		return fmt.Errorf("auth.admin_password must not be empty")
	}

	if c.Reports.Enabled {
		if c.Reports.URL == "" {
			return fmt.Errorf("reports.url must not be empty when the poller is enabled")
		}
		if c.Reports.Interval <= 0 {
			return fmt.Errorf("reports.interval must be > 0 (got %v)", c.Reports.Interval)
		}
		if c.Reports.Timeout <= 0 {
			return fmt.Errorf("reports.timeout must be > 0 (got %v)", c.Reports.Timeout)
		}
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0,65535] (got %d)", c.Server.Port)
	}

	return nil
}
