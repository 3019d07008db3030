// Package transport is the HTTP execution pipeline shared by every service
// client: endpoint resolution, SigV4 signing, sending, retries and error
// dispatch.
package transport

import (
	glog "github.com/Laisky/go-utils/v5/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"

	"github.com/Laisky/cloudsdk/common/client"
	"github.com/Laisky/cloudsdk/common/config"
	"github.com/Laisky/cloudsdk/common/logger"
	"github.com/Laisky/cloudsdk/common/metrics"
	"github.com/Laisky/cloudsdk/endpoints"
)

// Options configures a service client. The zero value is usable: missing
// members are filled from common/config when the client is built.
type Options struct {
	// Region selects the regional endpoint and the SigV4 scope.
	Region string
	// Credentials signs requests. nil sends unsigned requests.
	Credentials aws.CredentialsProvider
	HTTPClient  aws.HTTPClient
	Retryer     aws.Retryer
	// BaseEndpoint bypasses the resolver, e.g. http://localhost:4566.
	BaseEndpoint *string
	Resolver     *endpoints.Resolver
	Logger       glog.Logger
	// Metrics defaults to metrics.Default(). Pass metrics.NewCollector(nil)
	// to keep samples out of the default registry.
	Metrics   *metrics.Collector
	UserAgent string
}

// Copy returns a copy that shares no pointers the caller could mutate.
func (o Options) Copy() Options {
	to := o
	if o.BaseEndpoint != nil {
		to.BaseEndpoint = aws.String(*o.BaseEndpoint)
	}
	return to
}

// FromConfig takes region, credentials, HTTP client, retryer and base endpoint
// from a loaded aws.Config.
func FromConfig(cfg aws.Config) Options {
	o := Options{
		Region:       cfg.Region,
		Credentials:  cfg.Credentials,
		HTTPClient:   cfg.HTTPClient,
		BaseEndpoint: cfg.BaseEndpoint,
	}
	if cfg.Retryer != nil {
		o.Retryer = cfg.Retryer()
	}
	return o
}

// WithDefaults fills every unset member.
func (o Options) WithDefaults() Options {
	o = o.Copy()
	if o.Region == "" {
		o.Region = config.DefaultRegion
	}
	if o.HTTPClient == nil {
		o.HTTPClient = client.HTTPClient
	}
	if o.Retryer == nil {
		o.Retryer = retry.NewStandard(func(so *retry.StandardOptions) {
			so.MaxAttempts = config.MaxAttempts
		})
	}
	if o.Resolver == nil {
		o.Resolver = endpoints.Default()
	}
	if o.Logger == nil {
		o.Logger = logger.Logger.Named("transport")
	}
	if o.Metrics == nil {
		o.Metrics = metrics.Default()
	}
	if o.UserAgent == "" {
		o.UserAgent = config.UserAgent
	}
	if o.Credentials != nil {
		if _, cached := o.Credentials.(*aws.CredentialsCache); !cached {
			o.Credentials = aws.NewCredentialsCache(o.Credentials)
		}
	}
	return o
}
