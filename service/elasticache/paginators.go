package elasticache

import (
	"context"

	"github.com/Laisky/errors/v2"
	"github.com/jinzhu/copier"
)

// Paginator walks the pages of a marker-paginated Describe operation. The
// caller's input is copied once and never modified; a Marker set on it is used
// for the first page.
//
//	p := NewDescribeCacheClustersPaginator(client, &DescribeCacheClustersInput{})
//	for p.HasMorePages() {
//		page, err := p.NextPage(ctx)
//		...
//	}
type Paginator[I, O any] struct {
	fetch       func(context.Context, *I) (*O, error)
	inputMarker func(*I) **string
	marker      func(*O) *string

	params    *I
	next      *string
	firstPage bool
}

func newPaginator[I, O any](params *I, fetch func(context.Context, *I) (*O, error),
	inputMarker func(*I) **string, marker func(*O) *string) *Paginator[I, O] {
	cloned := new(I)
	if params != nil {
		if err := copier.Copy(cloned, params); err != nil {
			// unreachable: source and destination share a type
			panic(err)
		}
	}
	return &Paginator[I, O]{
		fetch:       fetch,
		inputMarker: inputMarker,
		marker:      marker,
		params:      cloned,
		firstPage:   true,
	}
}

// HasMorePages reports whether NextPage can be called.
func (p *Paginator[I, O]) HasMorePages() bool {
	return p.firstPage || (p.next != nil && *p.next != "")
}

// NextPage fetches the next page.
func (p *Paginator[I, O]) NextPage(ctx context.Context) (*O, error) {
	if !p.HasMorePages() {
		return nil, errors.New("no more pages available")
	}

	if !p.firstPage {
		*p.inputMarker(p.params) = p.next
	}
	out, err := p.fetch(ctx, p.params)
	if err != nil {
		return nil, err
	}
	p.firstPage = false

	prev := *p.inputMarker(p.params)
	p.next = p.marker(out)
	// a service repeating the marker would loop forever
	if prev != nil && p.next != nil && *prev == *p.next {
		p.next = nil
	}
	return out, nil
}

// DescribeCacheClustersAPIClient is the subset of Client used by its paginator.
type DescribeCacheClustersAPIClient interface {
	DescribeCacheClusters(context.Context, *DescribeCacheClustersInput) (*DescribeCacheClustersOutput, error)
}

func NewDescribeCacheClustersPaginator(client DescribeCacheClustersAPIClient, params *DescribeCacheClustersInput) *Paginator[DescribeCacheClustersInput, DescribeCacheClustersOutput] {
	return newPaginator(params, client.DescribeCacheClusters,
		func(in *DescribeCacheClustersInput) **string { return &in.Marker },
		func(out *DescribeCacheClustersOutput) *string { return out.Marker })
}

// DescribeCacheEngineVersionsAPIClient is the subset of Client used by its paginator.
type DescribeCacheEngineVersionsAPIClient interface {
	DescribeCacheEngineVersions(context.Context, *DescribeCacheEngineVersionsInput) (*DescribeCacheEngineVersionsOutput, error)
}

func NewDescribeCacheEngineVersionsPaginator(client DescribeCacheEngineVersionsAPIClient, params *DescribeCacheEngineVersionsInput) *Paginator[DescribeCacheEngineVersionsInput, DescribeCacheEngineVersionsOutput] {
	return newPaginator(params, client.DescribeCacheEngineVersions,
		func(in *DescribeCacheEngineVersionsInput) **string { return &in.Marker },
		func(out *DescribeCacheEngineVersionsOutput) *string { return out.Marker })
}

// DescribeCacheParameterGroupsAPIClient is the subset of Client used by its paginator.
type DescribeCacheParameterGroupsAPIClient interface {
	DescribeCacheParameterGroups(context.Context, *DescribeCacheParameterGroupsInput) (*DescribeCacheParameterGroupsOutput, error)
}

func NewDescribeCacheParameterGroupsPaginator(client DescribeCacheParameterGroupsAPIClient, params *DescribeCacheParameterGroupsInput) *Paginator[DescribeCacheParameterGroupsInput, DescribeCacheParameterGroupsOutput] {
	return newPaginator(params, client.DescribeCacheParameterGroups,
		func(in *DescribeCacheParameterGroupsInput) **string { return &in.Marker },
		func(out *DescribeCacheParameterGroupsOutput) *string { return out.Marker })
}

// DescribeCacheParametersAPIClient is the subset of Client used by its paginator.
type DescribeCacheParametersAPIClient interface {
	DescribeCacheParameters(context.Context, *DescribeCacheParametersInput) (*DescribeCacheParametersOutput, error)
}

func NewDescribeCacheParametersPaginator(client DescribeCacheParametersAPIClient, params *DescribeCacheParametersInput) *Paginator[DescribeCacheParametersInput, DescribeCacheParametersOutput] {
	return newPaginator(params, client.DescribeCacheParameters,
		func(in *DescribeCacheParametersInput) **string { return &in.Marker },
		func(out *DescribeCacheParametersOutput) *string { return out.Marker })
}

// DescribeCacheSecurityGroupsAPIClient is the subset of Client used by its paginator.
type DescribeCacheSecurityGroupsAPIClient interface {
	DescribeCacheSecurityGroups(context.Context, *DescribeCacheSecurityGroupsInput) (*DescribeCacheSecurityGroupsOutput, error)
}

func NewDescribeCacheSecurityGroupsPaginator(client DescribeCacheSecurityGroupsAPIClient, params *DescribeCacheSecurityGroupsInput) *Paginator[DescribeCacheSecurityGroupsInput, DescribeCacheSecurityGroupsOutput] {
	return newPaginator(params, client.DescribeCacheSecurityGroups,
		func(in *DescribeCacheSecurityGroupsInput) **string { return &in.Marker },
		func(out *DescribeCacheSecurityGroupsOutput) *string { return out.Marker })
}

// DescribeCacheSubnetGroupsAPIClient is the subset of Client used by its paginator.
type DescribeCacheSubnetGroupsAPIClient interface {
	DescribeCacheSubnetGroups(context.Context, *DescribeCacheSubnetGroupsInput) (*DescribeCacheSubnetGroupsOutput, error)
}

func NewDescribeCacheSubnetGroupsPaginator(client DescribeCacheSubnetGroupsAPIClient, params *DescribeCacheSubnetGroupsInput) *Paginator[DescribeCacheSubnetGroupsInput, DescribeCacheSubnetGroupsOutput] {
	return newPaginator(params, client.DescribeCacheSubnetGroups,
		func(in *DescribeCacheSubnetGroupsInput) **string { return &in.Marker },
		func(out *DescribeCacheSubnetGroupsOutput) *string { return out.Marker })
}

// DescribeEngineDefaultParametersAPIClient is the subset of Client used by its paginator.
type DescribeEngineDefaultParametersAPIClient interface {
	DescribeEngineDefaultParameters(context.Context, *DescribeEngineDefaultParametersInput) (*DescribeEngineDefaultParametersOutput, error)
}

func NewDescribeEngineDefaultParametersPaginator(client DescribeEngineDefaultParametersAPIClient, params *DescribeEngineDefaultParametersInput) *Paginator[DescribeEngineDefaultParametersInput, DescribeEngineDefaultParametersOutput] {
	return newPaginator(params, client.DescribeEngineDefaultParameters,
		func(in *DescribeEngineDefaultParametersInput) **string { return &in.Marker },
		func(out *DescribeEngineDefaultParametersOutput) *string {
			if out.EngineDefaults == nil {
				return nil
			}
			return out.EngineDefaults.Marker
		})
}

// DescribeEventsAPIClient is the subset of Client used by its paginator.
type DescribeEventsAPIClient interface {
	DescribeEvents(context.Context, *DescribeEventsInput) (*DescribeEventsOutput, error)
}

func NewDescribeEventsPaginator(client DescribeEventsAPIClient, params *DescribeEventsInput) *Paginator[DescribeEventsInput, DescribeEventsOutput] {
	return newPaginator(params, client.DescribeEvents,
		func(in *DescribeEventsInput) **string { return &in.Marker },
		func(out *DescribeEventsOutput) *string { return out.Marker })
}

// DescribeReplicationGroupsAPIClient is the subset of Client used by its paginator.
type DescribeReplicationGroupsAPIClient interface {
	DescribeReplicationGroups(context.Context, *DescribeReplicationGroupsInput) (*DescribeReplicationGroupsOutput, error)
}

func NewDescribeReplicationGroupsPaginator(client DescribeReplicationGroupsAPIClient, params *DescribeReplicationGroupsInput) *Paginator[DescribeReplicationGroupsInput, DescribeReplicationGroupsOutput] {
	return newPaginator(params, client.DescribeReplicationGroups,
		func(in *DescribeReplicationGroupsInput) **string { return &in.Marker },
		func(out *DescribeReplicationGroupsOutput) *string { return out.Marker })
}

// DescribeReservedCacheNodesAPIClient is the subset of Client used by its paginator.
type DescribeReservedCacheNodesAPIClient interface {
	DescribeReservedCacheNodes(context.Context, *DescribeReservedCacheNodesInput) (*DescribeReservedCacheNodesOutput, error)
}

func NewDescribeReservedCacheNodesPaginator(client DescribeReservedCacheNodesAPIClient, params *DescribeReservedCacheNodesInput) *Paginator[DescribeReservedCacheNodesInput, DescribeReservedCacheNodesOutput] {
	return newPaginator(params, client.DescribeReservedCacheNodes,
		func(in *DescribeReservedCacheNodesInput) **string { return &in.Marker },
		func(out *DescribeReservedCacheNodesOutput) *string { return out.Marker })
}

// DescribeReservedCacheNodesOfferingsAPIClient is the subset of Client used by its paginator.
type DescribeReservedCacheNodesOfferingsAPIClient interface {
	DescribeReservedCacheNodesOfferings(context.Context, *DescribeReservedCacheNodesOfferingsInput) (*DescribeReservedCacheNodesOfferingsOutput, error)
}

func NewDescribeReservedCacheNodesOfferingsPaginator(client DescribeReservedCacheNodesOfferingsAPIClient, params *DescribeReservedCacheNodesOfferingsInput) *Paginator[DescribeReservedCacheNodesOfferingsInput, DescribeReservedCacheNodesOfferingsOutput] {
	return newPaginator(params, client.DescribeReservedCacheNodesOfferings,
		func(in *DescribeReservedCacheNodesOfferingsInput) **string { return &in.Marker },
		func(out *DescribeReservedCacheNodesOfferingsOutput) *string { return out.Marker })
}

// DescribeSnapshotsAPIClient is the subset of Client used by its paginator.
type DescribeSnapshotsAPIClient interface {
	DescribeSnapshots(context.Context, *DescribeSnapshotsInput) (*DescribeSnapshotsOutput, error)
}

func NewDescribeSnapshotsPaginator(client DescribeSnapshotsAPIClient, params *DescribeSnapshotsInput) *Paginator[DescribeSnapshotsInput, DescribeSnapshotsOutput] {
	return newPaginator(params, client.DescribeSnapshots,
		func(in *DescribeSnapshotsInput) **string { return &in.Marker },
		func(out *DescribeSnapshotsOutput) *string { return out.Marker })
}
