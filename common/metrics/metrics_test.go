package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollectorRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.ObserveOperation("ElastiCache", "DescribeCacheClusters", OutcomeSuccess, 20*time.Millisecond)
	c.IncError("ElastiCache", "DescribeCacheClusters", "CacheClusterNotFound")
	c.IncError("ElastiCache", "DescribeCacheClusters", "CacheClusterNotFound")
	c.IncRetry("Lex Model Building Service", "GetBots")

	require.Equal(t, 2.0, testutil.ToFloat64(c.OperationErrors.WithLabelValues("ElastiCache", "DescribeCacheClusters", "CacheClusterNotFound")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.Retries.WithLabelValues("Lex Model Building Service", "GetBots")))
	require.Equal(t, 1, testutil.CollectAndCount(c.OperationDuration))

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 3)
}

func TestNilCollectorIsNoop(t *testing.T) {
	var c *Collector
	c.ObserveOperation("svc", "op", OutcomeSuccess, time.Second)
	c.IncError("svc", "op", "code")
	c.IncRetry("svc", "op")
}
