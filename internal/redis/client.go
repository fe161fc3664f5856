// Package redis builds the Redis client shared by the repositories
package redis

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
)

// Config configures the Redis connection. One address gives a standalone
// client, several give a cluster client, and MasterName selects sentinel
// failover.
type Config struct {
	Addrs           []string
	MasterName      string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// Validate checks the connection settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if len(c.Addrs) == 0 {
		vb.RequiredField("Addrs")
	}
	for _, addr := range c.Addrs {
		if addr == "" {
			vb.InvalidField("Addrs", "empty address")
			break
		}
	}
	if c.DB < 0 {
		vb.InvalidField("DB", "must not be negative")
	}
	if c.DB != 0 && len(c.Addrs) > 1 && c.MasterName == "" {
		vb.InvalidField("DB", "cluster mode only supports database 0")
	}
	return vb.Build()
}

// NewClient creates a client for the configured topology. Connections are
// opened lazily.
func NewClient(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("redis config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid redis config")
	}

	opts := &redis.UniversalOptions{
		Addrs:           cfg.Addrs,
		MasterName:      cfg.MasterName,
		Password:        cfg.Password,
		DB:              cfg.DB,
		PoolSize:        cfg.PoolSize,
		MinIdleConns:    cfg.MinIdleConns,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		MaxRetries:      cfg.MaxRetries,
	}
	if cfg.UseTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return redis.NewUniversalClient(opts), nil
}

// Ping checks the server is reachable
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis unreachable")
	}
	return nil
}
