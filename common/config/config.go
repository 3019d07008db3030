package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Laisky/cloudsdk/common/env"
)

var (
	// DefaultRegion is used when neither Options.Region nor the loaded aws.Config carries one.
	DefaultRegion = env.String("AWS_REGION", "us-east-1")

	// MaxAttempts bounds the number of HTTP attempts per operation, retries included.
	MaxAttempts = func() int {
		v := env.Int("SDK_MAX_ATTEMPTS", 3)
		if v < 1 {
			panic(fmt.Sprintf("SDK_MAX_ATTEMPTS must be at least 1, got %d", v))
		}
		return v
	}()

	// HTTPTimeout caps a single HTTP exchange made by the default client.
	HTTPTimeout = env.Seconds("SDK_HTTP_TIMEOUT", 60*time.Second)

	// UserAgent is sent on every request, followed by the service name.
	UserAgent = env.String("SDK_USER_AGENT", "cloudsdk-go/1.0")

	// ElastiCacheEndpoint overrides the resolved ElastiCache endpoint, e.g. for a local emulator.
	ElastiCacheEndpoint = strings.TrimSuffix(env.String("ELASTICACHE_ENDPOINT", ""), "/")
	// LexModelsEndpoint overrides the resolved Lex Model Building endpoint.
	LexModelsEndpoint = strings.TrimSuffix(env.String("LEX_MODELS_ENDPOINT", ""), "/")

	// EndpointCacheTTL controls how long resolved endpoints stay memoized.
	EndpointCacheTTL = env.Seconds("ENDPOINT_CACHE_TTL", 10*time.Minute)

	// WaiterPollInterval is the delay between two describe calls made by a waiter.
	WaiterPollInterval = env.Seconds("WAITER_POLL_INTERVAL", 15*time.Second)
	// WaiterMaxWait bounds the total time a waiter keeps polling.
	WaiterMaxWait = env.Seconds("WAITER_MAX_WAIT", 30*time.Minute)

	// DebugEnabled toggles verbose structured logging when DEBUG=true.
	DebugEnabled = env.Bool("DEBUG", false)

	// EnablePrometheusMetrics registers the SDK collectors on the default prometheus registry.
	EnablePrometheusMetrics = env.Bool("ENABLE_PROMETHEUS_METRICS", true)
)
