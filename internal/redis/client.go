// Package redis wraps the go-redis client so repositories can share one
// connection and tests can swap in miniredis.
package redis

import (
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/ducttape-items/internal/errors"
)

// Options tunes the connection pool. The zero value uses go-redis defaults.
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
	// ReadOnly routes cluster reads to replicas
	ReadOnly bool
}

func (o *Options) universal(addrs []string, masterName string) *redis.UniversalOptions {
	if o == nil {
		o = &Options{}
	}
	u := &redis.UniversalOptions{
		Addrs:           addrs,
		MasterName:      masterName,
		PoolSize:        o.PoolSize,
		MinIdleConns:    o.MinIdleConns,
		ConnMaxIdleTime: o.ConnMaxIdleTime,
		MaxRetries:      o.MaxRetries,
		ReadOnly:        o.ReadOnly,
	}
	if o.UseTLS {
		// snapshot stores run behind self-signed certs
		u.TLSConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402
	}
	return u
}

// NewClient connects to a single instance
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}
	return redis.NewClient(opts.universal([]string{endpoint}, "").Simple()), nil
}

// NewClusterClient connects to a cluster through any of its nodes
func NewClusterClient(endpoints []string, opts *Options) (Client, error) {
	if len(endpoints) == 0 {
		return nil, errors.InvalidArgument("redis: at least one endpoint is required")
	}
	return redis.NewClusterClient(opts.universal(endpoints, "").Cluster()), nil
}

// NewFailoverClient follows the master named masterName through Sentinel
func NewFailoverClient(masterName string, sentinelAddrs []string, opts *Options) (Client, error) {
	vb := errors.NewValidationBuilder()
	if masterName == "" {
		vb.RequiredField("master name")
	}
	if len(sentinelAddrs) == 0 {
		vb.RequiredField("sentinel addresses")
	}
	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "redis: invalid failover settings")
	}
	return redis.NewFailoverClient(opts.universal(sentinelAddrs, masterName).Failover()), nil
}

// Connect picks the client flavour from the address list: a master name
// selects Sentinel, several addresses select cluster mode, otherwise a single
// instance.
func Connect(addrs []string, masterName string, opts *Options) (Client, error) {
	switch {
	case masterName != "":
		return NewFailoverClient(masterName, addrs, opts)
	case len(addrs) > 1:
		return NewClusterClient(addrs, opts)
	case len(addrs) == 1:
		return NewClient(addrs[0], opts)
	default:
		return nil, errors.InvalidArgument("redis: no address configured")
	}
}
