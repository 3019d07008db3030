package elasticache

import (
	"context"

	"github.com/Laisky/cloudsdk/transport"
)

type DescribeReservedCacheNodesInput struct {
	ReservedCacheNodeId          *string
	ReservedCacheNodesOfferingId *string
	CacheNodeType                *string
	// Duration is 1 or 3 (years), or the equivalent in seconds.
	Duration           *string
	ProductDescription *string
	OfferingType       *string
	MaxRecords         *int32
	Marker             *string
}

type DescribeReservedCacheNodesOutput struct {
	transport.Metadata `xml:"-"`

	Marker             *string             `xml:"Marker"`
	ReservedCacheNodes []ReservedCacheNode `xml:"ReservedCacheNodes>ReservedCacheNode"`
}

func (c *Client) DescribeReservedCacheNodes(ctx context.Context, in *DescribeReservedCacheNodesInput) (*DescribeReservedCacheNodesOutput, error) {
	out := new(DescribeReservedCacheNodesOutput)
	if err := c.invoke(ctx, "DescribeReservedCacheNodes", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DescribeReservedCacheNodesOfferingsInput struct {
	ReservedCacheNodesOfferingId *string
	CacheNodeType                *string
	Duration                     *string
	ProductDescription           *string
	OfferingType                 *string
	MaxRecords                   *int32
	Marker                       *string
}

type DescribeReservedCacheNodesOfferingsOutput struct {
	transport.Metadata `xml:"-"`

	Marker                      *string                      `xml:"Marker"`
	ReservedCacheNodesOfferings []ReservedCacheNodesOffering `xml:"ReservedCacheNodesOfferings>ReservedCacheNodesOffering"`
}

func (c *Client) DescribeReservedCacheNodesOfferings(ctx context.Context, in *DescribeReservedCacheNodesOfferingsInput) (*DescribeReservedCacheNodesOfferingsOutput, error) {
	out := new(DescribeReservedCacheNodesOfferingsOutput)
	if err := c.invoke(ctx, "DescribeReservedCacheNodesOfferings", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type PurchaseReservedCacheNodesOfferingInput struct {
	ReservedCacheNodesOfferingId *string `validate:"required"`
	ReservedCacheNodeId          *string
	CacheNodeCount               *int32
}

type PurchaseReservedCacheNodesOfferingOutput struct {
	transport.Metadata `xml:"-"`

	ReservedCacheNode *ReservedCacheNode `xml:"ReservedCacheNode"`
}

// PurchaseReservedCacheNodesOffering buys reserved capacity. The purchase is
// billed immediately and cannot be undone.
func (c *Client) PurchaseReservedCacheNodesOffering(ctx context.Context, in *PurchaseReservedCacheNodesOfferingInput) (*PurchaseReservedCacheNodesOfferingOutput, error) {
	out := new(PurchaseReservedCacheNodesOfferingOutput)
	if err := c.invoke(ctx, "PurchaseReservedCacheNodesOffering", in, out); err != nil {
		return nil, err
	}
	return out, nil
}
