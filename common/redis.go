package common

import (
	"context"
	"crypto/tls"
	"net"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/go-redis/redis/v8"
)

// RedisNodeOptions addresses one ElastiCache node.
type RedisNodeOptions struct {
	// Addr is host:port.
	Addr     string
	Password string
	// TLS is required by groups with in-transit encryption.
	TLS     bool
	Timeout time.Duration
}

// NewRedisClient returns a client holding at most one connection to the node.
// Retries are off so an unreachable node fails on the first dial.
func NewRedisClient(opt RedisNodeOptions) (*redis.Client, error) {
	host, _, err := net.SplitHostPort(opt.Addr)
	if err != nil {
		return nil, errors.Wrapf(err, "parse redis address %q", opt.Addr)
	}

	ropt := &redis.Options{
		Addr:         opt.Addr,
		Password:     opt.Password,
		DialTimeout:  opt.Timeout,
		ReadTimeout:  opt.Timeout,
		WriteTimeout: opt.Timeout,
		MaxRetries:   -1,
		PoolSize:     1,
	}
	if opt.TLS {
		ropt.TLSConfig = &tls.Config{ServerName: host, MinVersion: tls.VersionTLS12}
	}
	return redis.NewClient(ropt), nil
}

// RedisPing sends PING and returns the round trip time.
func RedisPing(ctx context.Context, rdb redis.Cmdable, timeout time.Duration) (time.Duration, error) {
	if rdb == nil {
		return 0, errors.New("redis not initialized")
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return 0, errors.Wrap(err, "redis ping")
	}
	return time.Since(start), nil
}
