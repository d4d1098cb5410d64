package config

import (
	"fmt"
)

// Validate checks configuration consistency before anything opens a socket
// or a database handle. Configuration problems fail the whole process, never
// a partial run.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Database.Backend {
	case "sqlite":
		if c.Database.Path == "" {
			return fmt.Errorf("sqlite backend requires DATABASE_PATH")
		}
	case "postgres":
		if c.Database.URL == "" {
			return fmt.Errorf("postgres backend requires DATABASE_URL")
		}
	default:
		return fmt.Errorf("unknown database backend: %q (expected sqlite or postgres)", c.Database.Backend)
	}

	if c.Sync.MaxParallel < 1 {
		return fmt.Errorf("sync max parallel must be at least 1, got %d", c.Sync.MaxParallel)
	}
	if c.Sync.SourceTimeout <= 0 {
		return fmt.Errorf("sync source timeout must be positive, got %s", c.Sync.SourceTimeout)
	}

	return nil
}
