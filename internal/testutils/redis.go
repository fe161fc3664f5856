// Package testutils provides shared test helpers
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/redis"
)

// CreateTestRedisClient starts an in-memory Redis and returns a client for
// it. Both are closed when the test ends. The server is returned so tests
// can inspect keys or fast-forward TTLs.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(&redis.Config{Addrs: []string{mr.Addr()}})
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}
