package elasticache

import (
	"context"
	"net/http"
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Laisky/cloudsdk/internal/mockserver"
)

type pagedClusters struct {
	pages   map[string]*DescribeCacheClustersOutput
	markers []string
	fail    error
}

func (p *pagedClusters) DescribeCacheClusters(_ context.Context, in *DescribeCacheClustersInput) (*DescribeCacheClustersOutput, error) {
	m := aws.ToString(in.Marker)
	p.markers = append(p.markers, m)
	if p.fail != nil {
		return nil, p.fail
	}
	return p.pages[m], nil
}

func clusterPage(next string, ids ...string) *DescribeCacheClustersOutput {
	out := &DescribeCacheClustersOutput{}
	if next != "" {
		out.Marker = aws.String(next)
	}
	for _, id := range ids {
		out.CacheClusters = append(out.CacheClusters, CacheCluster{CacheClusterId: aws.String(id)})
	}
	return out
}

func collectClusterIDs(t *testing.T, p *Paginator[DescribeCacheClustersInput, DescribeCacheClustersOutput]) []string {
	t.Helper()
	var ids []string
	for p.HasMorePages() {
		page, err := p.NextPage(context.Background())
		require.NoError(t, err)
		for _, c := range page.CacheClusters {
			ids = append(ids, aws.ToString(c.CacheClusterId))
		}
	}
	return ids
}

func TestPaginatorFollowsMarkers(t *testing.T) {
	client := &pagedClusters{pages: map[string]*DescribeCacheClustersOutput{
		"":   clusterPage("m1", "a", "b"),
		"m1": clusterPage("m2", "c"),
		"m2": clusterPage("", "d"),
	}}
	params := &DescribeCacheClustersInput{MaxRecords: aws.Int32(20)}

	ids := collectClusterIDs(t, NewDescribeCacheClustersPaginator(client, params))
	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"", "m1", "m2"}, client.markers)
	assert.Nil(t, params.Marker, "caller input must not be modified")
}

func TestPaginatorStartsFromCallerMarker(t *testing.T) {
	client := &pagedClusters{pages: map[string]*DescribeCacheClustersOutput{
		"m1": clusterPage("", "c"),
	}}

	ids := collectClusterIDs(t, NewDescribeCacheClustersPaginator(client,
		&DescribeCacheClustersInput{Marker: aws.String("m1")}))
	assert.Equal(t, []string{"c"}, ids)
	assert.Equal(t, []string{"m1"}, client.markers)
}

func TestPaginatorStopsOnRepeatedMarker(t *testing.T) {
	client := &pagedClusters{pages: map[string]*DescribeCacheClustersOutput{
		"":     clusterPage("loop", "a"),
		"loop": clusterPage("loop", "b"),
	}}

	ids := collectClusterIDs(t, NewDescribeCacheClustersPaginator(client, nil))
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestPaginatorStopsWhenCallerMarkerIsEchoed(t *testing.T) {
	client := &pagedClusters{pages: map[string]*DescribeCacheClustersOutput{
		"m1": clusterPage("m1", "c"),
	}}

	ids := collectClusterIDs(t, NewDescribeCacheClustersPaginator(client,
		&DescribeCacheClustersInput{Marker: aws.String("m1")}))
	assert.Equal(t, []string{"c"}, ids)
	assert.Equal(t, []string{"m1"}, client.markers)
}

func TestPaginatorErrors(t *testing.T) {
	client := &pagedClusters{fail: errors.New("boom")}
	p := NewDescribeCacheClustersPaginator(client, nil)

	_, err := p.NextPage(context.Background())
	require.ErrorContains(t, err, "boom")
	assert.True(t, p.HasMorePages(), "a failed first page can be retried")

	client.fail = nil
	client.pages = map[string]*DescribeCacheClustersOutput{"": clusterPage("")}
	_, err = p.NextPage(context.Background())
	require.NoError(t, err)
	assert.False(t, p.HasMorePages())

	_, err = p.NextPage(context.Background())
	require.Error(t, err)
}

func TestEngineDefaultsPaginatorOverHTTP(t *testing.T) {
	c, srv := newTestClient(t)
	srv.ExpectAction("DescribeEngineDefaultParameters", http.StatusOK, mockserver.QueryResult("DescribeEngineDefaultParameters",
		`<EngineDefaults>
			<CacheParameterGroupFamily>redis7</CacheParameterGroupFamily>
			<Marker>next-1</Marker>
			<Parameters><Parameter><ParameterName>maxmemory-policy</ParameterName></Parameter></Parameters>
		</EngineDefaults>`, "r1")).Times(1)
	srv.ExpectAction("DescribeEngineDefaultParameters", http.StatusOK, mockserver.QueryResult("DescribeEngineDefaultParameters",
		`<EngineDefaults>
			<CacheParameterGroupFamily>redis7</CacheParameterGroupFamily>
			<Parameters><Parameter><ParameterName>timeout</ParameterName></Parameter></Parameters>
		</EngineDefaults>`, "r2")).Times(1)

	p := NewDescribeEngineDefaultParametersPaginator(c, &DescribeEngineDefaultParametersInput{
		CacheParameterGroupFamily: aws.String("redis7"),
	})
	var names []string
	for p.HasMorePages() {
		page, err := p.NextPage(context.Background())
		require.NoError(t, err)
		require.NotNil(t, page.EngineDefaults)
		for _, param := range page.EngineDefaults.Parameters {
			names = append(names, aws.ToString(param.ParameterName))
		}
	}
	assert.Equal(t, []string{"maxmemory-policy", "timeout"}, names)

	reqs := srv.Requests()
	require.Len(t, reqs, 2)
	assert.Empty(t, reqs[0].Form.Get("Marker"))
	assert.Equal(t, "next-1", reqs[1].Form.Get("Marker"))
	assert.Equal(t, "redis7", reqs[1].Form.Get("CacheParameterGroupFamily"))
}
