package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Laisky/cloudsdk/internal/mockserver"
	"github.com/Laisky/cloudsdk/service/elasticache"
	"github.com/Laisky/cloudsdk/service/lexmodelbuilding"
	"github.com/Laisky/cloudsdk/transport"
)

func newTestApp(t *testing.T) (*app, *mockserver.Server) {
	t.Helper()
	srv := mockserver.New()
	t.Cleanup(srv.Close)

	opts := transport.Options{
		Region:       "eu-west-1",
		Credentials:  credentials.NewStaticCredentialsProvider("AKID", "SECRET", ""),
		HTTPClient:   srv.Client(),
		BaseEndpoint: aws.String(srv.URL),
		Retryer:      aws.NopRetryer{},
	}
	ec, err := elasticache.New(opts)
	require.NoError(t, err)
	lex, err := lexmodelbuilding.New(opts)
	require.NoError(t, err)
	return &app{ec: ec, lex: lex}, srv
}

func run(a *app, args ...string) (string, error) {
	var out bytes.Buffer
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

const clusterPage1 = `<Marker>m-2</Marker><CacheClusters>
	<CacheCluster>
		<CacheClusterId>sessions</CacheClusterId>
		<Engine>redis</Engine>
		<EngineVersion>7.1</EngineVersion>
		<CacheNodeType>cache.t4g.micro</CacheNodeType>
		<CacheClusterStatus>available</CacheClusterStatus>
		<NumCacheNodes>1</NumCacheNodes>
	</CacheCluster>
</CacheClusters>`

const clusterPage2 = `<CacheClusters>
	<CacheCluster>
		<CacheClusterId>pages</CacheClusterId>
		<Engine>memcached</Engine>
		<CacheClusterStatus>creating</CacheClusterStatus>
		<NumCacheNodes>2</NumCacheNodes>
	</CacheCluster>
</CacheClusters>`

func expectClusters(srv *mockserver.Server) {
	srv.ExpectAction("DescribeCacheClusters", http.StatusOK,
		mockserver.QueryResult("DescribeCacheClusters", clusterPage1, "r1")).Times(1)
	srv.ExpectAction("DescribeCacheClusters", http.StatusOK,
		mockserver.QueryResult("DescribeCacheClusters", clusterPage2, "r2")).Times(1)
}

func TestClustersOutput(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		a, srv := newTestApp(t)
		expectClusters(srv)

		out, err := run(a, "elasticache", "clusters")
		require.NoError(t, err)
		assert.Contains(t, out, "sessions")
		assert.Contains(t, out, "cache.t4g.micro")
		assert.Contains(t, out, "pages")
		assert.Contains(t, out, "NODE TYPE")

		reqs := srv.Requests()
		require.Len(t, reqs, 2)
		assert.Equal(t, "m-2", reqs[1].Form.Get("Marker"))
	})

	t.Run("json", func(t *testing.T) {
		a, srv := newTestApp(t)
		expectClusters(srv)

		out, err := run(a, "ec", "clusters", "-o", "json")
		require.NoError(t, err)

		var clusters []elasticache.CacheCluster
		require.NoError(t, json.Unmarshal([]byte(out), &clusters))
		require.Len(t, clusters, 2)
		assert.Equal(t, "pages", aws.ToString(clusters[1].CacheClusterId))
		assert.Equal(t, int32(2), aws.ToInt32(clusters[1].NumCacheNodes))
	})

	t.Run("yaml", func(t *testing.T) {
		a, srv := newTestApp(t)
		expectClusters(srv)

		out, err := run(a, "elasticache", "clusters", "--output", "yaml")
		require.NoError(t, err)

		var doc []map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
		require.Len(t, doc, 2)
		assert.Equal(t, "sessions", doc[0]["CacheClusterId"])
		assert.Equal(t, "7.1", doc[0]["EngineVersion"])
	})

	t.Run("unknown format", func(t *testing.T) {
		a, srv := newTestApp(t)
		_, err := run(a, "elasticache", "clusters", "-o", "xml")
		require.ErrorContains(t, err, `unknown output format "xml"`)
		assert.Empty(t, srv.Requests())
	})
}

func TestServiceErrorIsReturned(t *testing.T) {
	a, srv := newTestApp(t)
	srv.ExpectAction("DescribeReplicationGroups", http.StatusNotFound,
		mockserver.QueryError("Sender", "ReplicationGroupNotFoundFault", "no such group"))

	_, err := run(a, "elasticache", "replication-groups", "--id", "ghost")
	require.Error(t, err)

	var notFound *elasticache.ReplicationGroupNotFoundFault
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "describe replication groups")
}

func TestEventsInput(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

	t.Run("defaults to today until now", func(t *testing.T) {
		in, err := eventsInput("", "", "", "", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), aws.ToTime(in.StartTime))
		assert.Equal(t, now, aws.ToTime(in.EndTime))
		assert.Nil(t, in.SourceIdentifier)
		assert.Equal(t, elasticache.SourceType(""), in.SourceType)
	})

	t.Run("past days end at midnight", func(t *testing.T) {
		in, err := eventsInput("2024-03-01", "2024-03-02", "replication-group", "orders", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), aws.ToTime(in.EndTime))
		assert.Equal(t, elasticache.SourceTypeReplicationGroup, in.SourceType)
		assert.Equal(t, "orders", aws.ToString(in.SourceIdentifier))
	})

	t.Run("rejects", func(t *testing.T) {
		_, err := eventsInput("2024-02-01", "2024-03-01", "", "", now)
		require.ErrorContains(t, err, "maximum allowed: 14 days")

		_, err = eventsInput("2024-03-05", "2024-03-01", "", "", now)
		require.Error(t, err)

		_, err = eventsInput("2024-03-11", "2024-03-11", "", "", now)
		require.ErrorContains(t, err, "in the future")
	})
}

func TestEventsCommand(t *testing.T) {
	a, srv := newTestApp(t)
	srv.ExpectAction("DescribeEvents", http.StatusOK, mockserver.QueryResult("DescribeEvents",
		`<Events><Event>
			<SourceIdentifier>sessions</SourceIdentifier>
			<SourceType>cache-cluster</SourceType>
			<Message>Cache cluster created</Message>
			<Date>2024-03-01T10:00:00.000Z</Date>
		</Event></Events>`, "r1"))

	out, err := run(a, "elasticache", "events", "--from", "2024-03-01", "--to", "2024-03-02", "--source-type", "cache-cluster")
	require.NoError(t, err)
	assert.Contains(t, out, "Cache cluster created")
	assert.Contains(t, out, "2024-03-01T10:00:00Z")

	form := srv.Requests()[0].Form
	assert.Equal(t, "2024-03-01T00:00:00Z", form.Get("StartTime"))
	assert.Equal(t, "2024-03-03T00:00:00Z", form.Get("EndTime"))
	assert.Equal(t, "cache-cluster", form.Get("SourceType"))
}

func TestWaitCommand(t *testing.T) {
	a, srv := newTestApp(t)
	srv.ExpectAction("DescribeCacheClusters", http.StatusOK, mockserver.QueryResult("DescribeCacheClusters",
		`<CacheClusters><CacheCluster><CacheClusterStatus>creating</CacheClusterStatus></CacheCluster></CacheClusters>`, "r1")).Times(2)
	srv.ExpectAction("DescribeCacheClusters", http.StatusOK, mockserver.QueryResult("DescribeCacheClusters",
		`<CacheClusters><CacheCluster><CacheClusterStatus>available</CacheClusterStatus></CacheCluster></CacheClusters>`, "r2"))

	out, err := run(a, "elasticache", "wait", "a", "b", "--interval", "1ms", "--concurrency", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "2 resource(s) done")

	ids := map[string]bool{}
	for _, r := range srv.Requests() {
		ids[r.Form.Get("CacheClusterId")] = true
	}
	assert.Equal(t, map[string]bool{"a": true, "b": true}, ids)
}

func TestWaitCommandFailure(t *testing.T) {
	a, srv := newTestApp(t)
	srv.ExpectAction("DescribeReplicationGroups", http.StatusOK, mockserver.QueryResult("DescribeReplicationGroups",
		`<ReplicationGroups><ReplicationGroup><Status>available</Status></ReplicationGroup></ReplicationGroups>`, "r1"))

	_, err := run(a, "elasticache", "wait", "orders", "--replication-groups", "--deleted", "--interval", "1ms")
	require.ErrorIs(t, err, elasticache.ErrWaiterFailed)
	assert.Contains(t, err.Error(), "wait for orders")
}

func TestPing(t *testing.T) {
	t.Run("unreachable node", func(t *testing.T) {
		a, srv := newTestApp(t)
		srv.ExpectAction("DescribeCacheClusters", http.StatusOK, mockserver.QueryResult("DescribeCacheClusters",
			`<CacheClusters><CacheCluster>
				<CacheClusterId>sessions</CacheClusterId>
				<Engine>redis</Engine>
				<CacheNodes>
					<CacheNode><CacheNodeId>0001</CacheNodeId><Endpoint><Address>127.0.0.1</Address><Port>1</Port></Endpoint></CacheNode>
					<CacheNode><CacheNodeId>0002</CacheNodeId></CacheNode>
				</CacheNodes>
			</CacheCluster></CacheClusters>`, "r1"))

		out, err := run(a, "elasticache", "ping", "sessions", "--timeout", "500ms", "-o", "json")
		require.ErrorContains(t, err, "2 of 2 nodes did not answer")

		var results []pingResult
		require.NoError(t, json.Unmarshal([]byte(out), &results))
		require.Len(t, results, 2)
		assert.Equal(t, "0001", results[0].Node)
		assert.Equal(t, "127.0.0.1:1", results[0].Address)
		assert.False(t, results[0].OK)
		assert.NotEmpty(t, results[0].Error)
		assert.Equal(t, "no endpoint", results[1].Error)

		form := srv.Requests()[0].Form
		assert.Equal(t, "true", form.Get("ShowCacheNodeInfo"))
	})

	t.Run("memcached", func(t *testing.T) {
		a, srv := newTestApp(t)
		srv.ExpectAction("DescribeCacheClusters", http.StatusOK, mockserver.QueryResult("DescribeCacheClusters",
			`<CacheClusters><CacheCluster><CacheClusterId>pages</CacheClusterId><Engine>memcached</Engine></CacheCluster></CacheClusters>`, "r1"))

		_, err := run(a, "elasticache", "ping", "pages")
		require.ErrorContains(t, err, "ping needs redis")
	})
}

func TestLexBots(t *testing.T) {
	a, srv := newTestApp(t)
	srv.Expect(http.MethodGet, "/bots/", http.StatusOK,
		`{"bots":[{"name":"OrderFlowers","status":"READY","version":"$LATEST"}],"nextToken":"t2"}`).Times(1)
	srv.Expect(http.MethodGet, "/bots/", http.StatusOK,
		`{"bots":[{"name":"BookTrip","status":"BUILDING","version":"$LATEST"}]}`).Times(1)

	out, err := run(a, "lex", "bots", "--name-contains", "o")
	require.NoError(t, err)
	assert.Contains(t, out, "OrderFlowers")
	assert.Contains(t, out, "BUILDING")

	reqs := srv.Requests()
	require.Len(t, reqs, 2)
	q, err := url.ParseQuery(reqs[1].RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "t2", q.Get("nextToken"))
	assert.Equal(t, "o", q.Get("nameContains"))
}

func TestLexBot(t *testing.T) {
	a, srv := newTestApp(t)
	srv.Expect(http.MethodGet, "/bots/OrderFlowers/versions/3", http.StatusOK, `{
		"name": "OrderFlowers",
		"version": "3",
		"status": "FAILED",
		"failureReason": "missing slot",
		"locale": "en-US",
		"childDirected": false,
		"intents": [{"intentName": "OrderFlowers", "intentVersion": "2"}]
	}`)

	out, err := run(a, "lex", "bot", "OrderFlowers", "--version", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "OrderFlowers:2")
	assert.Contains(t, out, "missing slot")
	assert.Contains(t, out, "en-US")
}

func TestLexExport(t *testing.T) {
	a, srv := newTestApp(t)
	srv.Expect(http.MethodGet, "/exports/", http.StatusOK,
		`{"name":"OrderFlowers","version":"1","exportStatus":"IN_PROGRESS"}`).Times(1)
	srv.Expect(http.MethodGet, "/exports/", http.StatusOK,
		`{"name":"OrderFlowers","version":"1","exportStatus":"READY","url":"https://example.com/export.zip"}`)

	out, err := run(a, "lex", "export", "OrderFlowers", "--wait", "--interval", "1ms", "--export-type", "alexa_skills_kit")
	require.NoError(t, err)
	assert.Contains(t, out, "https://example.com/export.zip")

	reqs := srv.Requests()
	require.Len(t, reqs, 2)
	q, err := url.ParseQuery(reqs[0].RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "ALEXA_SKILLS_KIT", q.Get("exportType"))
	assert.Equal(t, "BOT", q.Get("resourceType"))
}

func TestLexExportFailed(t *testing.T) {
	a, srv := newTestApp(t)
	srv.Expect(http.MethodGet, "/exports/", http.StatusOK,
		`{"name":"OrderFlowers","version":"1","exportStatus":"FAILED","failureReason":"bot not built"}`)

	_, err := run(a, "lex", "export", "OrderFlowers")
	require.ErrorContains(t, err, "bot not built")
}
