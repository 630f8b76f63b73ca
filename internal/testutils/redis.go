// Package testutils provides helpers shared by package tests
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/ducttape-items/internal/redis"
)

// CreateTestRedisClientWithServer starts a miniredis server and a client for
// it. seed, when set, runs against the server before the client is created.
// The returned cleanup closes the client; the server stops with the test.
func CreateTestRedisClientWithServer(t *testing.T, seed func(mr *miniredis.Miniredis)) (redis.Client, *miniredis.Miniredis, func()) {
	t.Helper()

	mr := miniredis.RunT(t)
	if seed != nil {
		seed(mr)
	}

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	return client, mr, func() { _ = client.Close() }
}
