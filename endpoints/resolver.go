// Package endpoints resolves the regional HTTPS endpoint of each supported service.
package endpoints

import (
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/patrickmn/go-cache"

	"github.com/Laisky/cloudsdk/common/config"
)

// ServiceID identifies a service in the endpoint table.
type ServiceID string

const (
	ElastiCache      ServiceID = "ElastiCache"
	LexModelBuilding ServiceID = "Lex Model Building Service"
)

// Service describes how a service is addressed and signed.
type Service struct {
	ID ServiceID
	// HostPrefix precedes "{region}.{dnsSuffix}".
	HostPrefix string
	// SigningName is the SigV4 service name.
	SigningName string
}

var services = map[ServiceID]Service{
	ElastiCache:      {ID: ElastiCache, HostPrefix: "elasticache", SigningName: "elasticache"},
	LexModelBuilding: {ID: LexModelBuilding, HostPrefix: "models.lex", SigningName: "lex"},
}

// Lookup returns the static description of id.
func Lookup(id ServiceID) (Service, error) {
	svc, ok := services[id]
	if !ok {
		return Service{}, errors.Errorf("unknown service %q", id)
	}
	return svc, nil
}

var regionPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// DNSSuffix returns the partition suffix for region.
func DNSSuffix(region string) string {
	switch {
	case strings.HasPrefix(region, "cn-"):
		return "amazonaws.com.cn"
	default:
		return "amazonaws.com"
	}
}

// Resolver turns (service, region) into a base URL. Results are memoized.
type Resolver struct {
	mu        sync.RWMutex
	overrides map[ServiceID]string
	cache     *cache.Cache
}

// NewResolver builds a resolver seeded with the overrides from the environment.
func NewResolver(ttl time.Duration) *Resolver {
	r := &Resolver{
		overrides: map[ServiceID]string{},
		cache:     cache.New(ttl, 2*ttl),
	}
	if config.ElastiCacheEndpoint != "" {
		r.overrides[ElastiCache] = config.ElastiCacheEndpoint
	}
	if config.LexModelsEndpoint != "" {
		r.overrides[LexModelBuilding] = config.LexModelsEndpoint
	}
	return r
}

var (
	defaultOnce     sync.Once
	defaultResolver *Resolver
)

// Default returns the shared resolver.
func Default() *Resolver {
	defaultOnce.Do(func() {
		defaultResolver = NewResolver(config.EndpointCacheTTL)
	})
	return defaultResolver
}

// WithOverride pins every region of id to rawURL.
func (r *Resolver) WithOverride(id ServiceID, rawURL string) *Resolver {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overrides[id] = strings.TrimSuffix(rawURL, "/")
	r.cache.Flush()
	return r
}

// Resolve returns the endpoint for id in region.
func (r *Resolver) Resolve(id ServiceID, region string) (*url.URL, error) {
	key := string(id) + "|" + region
	if v, ok := r.cache.Get(key); ok {
		u := *(v.(*url.URL))
		return &u, nil
	}

	svc, err := Lookup(id)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	override := r.overrides[id]
	r.mu.RUnlock()

	var raw string
	if override != "" {
		raw = override
	} else {
		if !regionPattern.MatchString(region) {
			return nil, errors.Errorf("invalid region %q", region)
		}
		raw = "https://" + svc.HostPrefix + "." + region + "." + DNSSuffix(region)
	}

	u, err := ParseEndpoint(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve endpoint for %s", id)
	}

	r.cache.SetDefault(key, u)
	cp := *u
	return &cp, nil
}

// ParseEndpoint validates a user-supplied base endpoint.
func ParseEndpoint(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSuffix(raw, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "parse endpoint %q", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("endpoint %q must use http or https", raw)
	}
	if u.Host == "" {
		return nil, errors.Errorf("endpoint %q has no host", raw)
	}
	return u, nil
}
