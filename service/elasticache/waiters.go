package elasticache

import (
	"context"
	"time"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v5/log"
	"github.com/Laisky/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Laisky/cloudsdk/common/config"
	"github.com/Laisky/cloudsdk/common/logger"
	"github.com/Laisky/cloudsdk/common/random"
)

// WaiterOptions tunes polling. Delays grow exponentially from MinDelay to
// MaxDelay with random jitter.
type WaiterOptions struct {
	MinDelay time.Duration
	MaxDelay time.Duration
	Logger   glog.Logger
}

func defaultWaiterOptions(optFns []func(*WaiterOptions)) WaiterOptions {
	o := WaiterOptions{
		MinDelay: config.WaiterPollInterval,
		MaxDelay: 120 * time.Second,
		Logger:   logger.Logger.Named("waiter"),
	}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.MaxDelay < o.MinDelay {
		o.MaxDelay = o.MinDelay
	}
	return o
}

// ErrWaiterFailed is returned when a resource reaches a state from which the
// awaited state can no longer be reached.
var ErrWaiterFailed = errors.New("waiter reached a failure state")

// ErrWaiterTimeout is returned when maxWait elapses first.
var ErrWaiterTimeout = errors.New("exceeded max wait time for waiter")

type waitState int

const (
	waitRetry waitState = iota
	waitSuccess
	waitFailure
)

func (o WaiterOptions) delay(attempt int) time.Duration {
	d := o.MinDelay
	for i := 1; i < attempt && d < o.MaxDelay; i++ {
		d *= 2
	}
	if d > o.MaxDelay {
		d = o.MaxDelay
	}
	if d <= o.MinDelay {
		return d
	}
	return time.Duration(random.RandRange(int(o.MinDelay), int(d)+1))
}

// wait polls until check reports success or failure, ctx is done, or maxWait
// elapses. A zero maxWait uses WAITER_MAX_WAIT.
func wait(ctx context.Context, name string, opts WaiterOptions, maxWait time.Duration,
	check func(context.Context) (waitState, error)) error {
	if maxWait <= 0 {
		maxWait = config.WaiterMaxWait
	}
	ctx, cancel := context.WithTimeout(ctx, maxWait)
	defer cancel()

	log := opts.Logger.With(zap.String("waiter", name))
	for attempt := 1; ; attempt++ {
		state, err := check(ctx)
		switch state {
		case waitSuccess:
			log.Debug("waiter succeeded", zap.Int("attempt", attempt))
			return nil
		case waitFailure:
			if err != nil {
				return errors.Wrapf(err, "%s", name)
			}
			return errors.Wrapf(ErrWaiterFailed, "%s", name)
		}
		if err != nil {
			// the deadline may expire while a describe call is in flight
			if ctx.Err() != nil {
				return waitDone(ctx, name, maxWait)
			}
			return errors.Wrapf(err, "%s", name)
		}

		d := opts.delay(attempt)
		log.Debug("waiter retrying", zap.Int("attempt", attempt), zap.Duration("delay", d))
		timer := time.NewTimer(d)
		select {
		case <-ctx.Done():
			timer.Stop()
			return waitDone(ctx, name, maxWait)
		case <-timer.C:
		}
	}
}

func waitDone(ctx context.Context, name string, maxWait time.Duration) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.Wrapf(ErrWaiterTimeout, "%s after %s", name, maxWait)
	}
	return errors.Wrapf(ctx.Err(), "%s", name)
}

func clusterStates(out *DescribeCacheClustersOutput) []string {
	states := make([]string, 0, len(out.CacheClusters))
	for _, c := range out.CacheClusters {
		if c.CacheClusterStatus != nil {
			states = append(states, *c.CacheClusterStatus)
		}
	}
	return states
}

func replicationGroupStates(out *DescribeReplicationGroupsOutput) []string {
	states := make([]string, 0, len(out.ReplicationGroups))
	for _, g := range out.ReplicationGroups {
		if g.Status != nil {
			states = append(states, *g.Status)
		}
	}
	return states
}

func allEqual(states []string, want string) bool {
	if len(states) == 0 {
		return false
	}
	for _, s := range states {
		if s != want {
			return false
		}
	}
	return true
}

func anyIn(states []string, bad ...string) bool {
	for _, s := range states {
		for _, b := range bad {
			if s == b {
				return true
			}
		}
	}
	return false
}

// CacheClusterAvailableWaiter waits until every matched cluster is available.
type CacheClusterAvailableWaiter struct {
	client  DescribeCacheClustersAPIClient
	options WaiterOptions
}

func NewCacheClusterAvailableWaiter(client DescribeCacheClustersAPIClient, optFns ...func(*WaiterOptions)) *CacheClusterAvailableWaiter {
	return &CacheClusterAvailableWaiter{client: client, options: defaultWaiterOptions(optFns)}
}

func (w *CacheClusterAvailableWaiter) Wait(ctx context.Context, params *DescribeCacheClustersInput, maxWait time.Duration) error {
	return wait(ctx, "CacheClusterAvailable", w.options, maxWait, func(ctx context.Context) (waitState, error) {
		out, err := w.client.DescribeCacheClusters(ctx, params)
		if err != nil {
			return waitRetry, err
		}
		states := clusterStates(out)
		switch {
		case allEqual(states, "available"):
			return waitSuccess, nil
		case anyIn(states, "deleted", "deleting", "incompatible-network", "restore-failed"):
			return waitFailure, nil
		}
		return waitRetry, nil
	})
}

// CacheClusterDeletedWaiter waits until the matched clusters are gone.
type CacheClusterDeletedWaiter struct {
	client  DescribeCacheClustersAPIClient
	options WaiterOptions
}

func NewCacheClusterDeletedWaiter(client DescribeCacheClustersAPIClient, optFns ...func(*WaiterOptions)) *CacheClusterDeletedWaiter {
	return &CacheClusterDeletedWaiter{client: client, options: defaultWaiterOptions(optFns)}
}

func (w *CacheClusterDeletedWaiter) Wait(ctx context.Context, params *DescribeCacheClustersInput, maxWait time.Duration) error {
	return wait(ctx, "CacheClusterDeleted", w.options, maxWait, func(ctx context.Context) (waitState, error) {
		out, err := w.client.DescribeCacheClusters(ctx, params)
		if err != nil {
			var notFound *CacheClusterNotFoundFault
			if errors.As(err, &notFound) {
				return waitSuccess, nil
			}
			return waitRetry, err
		}
		states := clusterStates(out)
		switch {
		case allEqual(states, "deleted"):
			return waitSuccess, nil
		case anyIn(states, "available", "creating", "incompatible-network", "modifying", "restore-failed", "snapshotting"):
			return waitFailure, nil
		}
		return waitRetry, nil
	})
}

// ReplicationGroupAvailableWaiter waits until every matched group is available.
type ReplicationGroupAvailableWaiter struct {
	client  DescribeReplicationGroupsAPIClient
	options WaiterOptions
}

func NewReplicationGroupAvailableWaiter(client DescribeReplicationGroupsAPIClient, optFns ...func(*WaiterOptions)) *ReplicationGroupAvailableWaiter {
	return &ReplicationGroupAvailableWaiter{client: client, options: defaultWaiterOptions(optFns)}
}

func (w *ReplicationGroupAvailableWaiter) Wait(ctx context.Context, params *DescribeReplicationGroupsInput, maxWait time.Duration) error {
	return wait(ctx, "ReplicationGroupAvailable", w.options, maxWait, func(ctx context.Context) (waitState, error) {
		out, err := w.client.DescribeReplicationGroups(ctx, params)
		if err != nil {
			return waitRetry, err
		}
		states := replicationGroupStates(out)
		switch {
		case allEqual(states, "available"):
			return waitSuccess, nil
		case anyIn(states, "deleted"):
			return waitFailure, nil
		}
		return waitRetry, nil
	})
}

// ReplicationGroupDeletedWaiter waits until the matched groups are gone.
type ReplicationGroupDeletedWaiter struct {
	client  DescribeReplicationGroupsAPIClient
	options WaiterOptions
}

func NewReplicationGroupDeletedWaiter(client DescribeReplicationGroupsAPIClient, optFns ...func(*WaiterOptions)) *ReplicationGroupDeletedWaiter {
	return &ReplicationGroupDeletedWaiter{client: client, options: defaultWaiterOptions(optFns)}
}

func (w *ReplicationGroupDeletedWaiter) Wait(ctx context.Context, params *DescribeReplicationGroupsInput, maxWait time.Duration) error {
	return wait(ctx, "ReplicationGroupDeleted", w.options, maxWait, func(ctx context.Context) (waitState, error) {
		out, err := w.client.DescribeReplicationGroups(ctx, params)
		if err != nil {
			var notFound *ReplicationGroupNotFoundFault
			if errors.As(err, &notFound) {
				return waitSuccess, nil
			}
			return waitRetry, err
		}
		states := replicationGroupStates(out)
		switch {
		case allEqual(states, "deleted"):
			return waitSuccess, nil
		case anyIn(states, "available"):
			return waitFailure, nil
		}
		return waitRetry, nil
	})
}

// WaitForAll runs waitOne for every id concurrently, at most limit at a time,
// and returns the first error. limit <= 0 means unbounded.
func WaitForAll(ctx context.Context, ids []string, limit int, waitOne func(ctx context.Context, id string) error) error {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, id := range ids {
		g.Go(func() error {
			if err := waitOne(gctx, id); err != nil {
				return errors.Wrapf(err, "wait for %s", id)
			}
			return nil
		})
	}
	return g.Wait()
}
