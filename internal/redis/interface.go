package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the go-redis universal client used by repositories
type Client interface {
	redis.UniversalClient
}
