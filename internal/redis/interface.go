package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the Redis surface repositories depend on. Standalone, sentinel
// and cluster clients all satisfy it.
type Client interface {
	redis.UniversalClient
}
