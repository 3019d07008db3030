package elasticache

import (
	"context"

	"github.com/Laisky/cloudsdk/transport"
)

type CreateCacheSubnetGroupInput struct {
	CacheSubnetGroupName        *string  `validate:"required"`
	CacheSubnetGroupDescription *string  `validate:"required"`
	SubnetIds                   []string `member:"SubnetIdentifier" validate:"required"`
}

type CreateCacheSubnetGroupOutput struct {
	transport.Metadata `xml:"-"`

	CacheSubnetGroup *CacheSubnetGroup `xml:"CacheSubnetGroup"`
}

func (c *Client) CreateCacheSubnetGroup(ctx context.Context, in *CreateCacheSubnetGroupInput) (*CreateCacheSubnetGroupOutput, error) {
	out := new(CreateCacheSubnetGroupOutput)
	if err := c.invoke(ctx, "CreateCacheSubnetGroup", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteCacheSubnetGroupInput struct {
	CacheSubnetGroupName *string `validate:"required"`
}

type DeleteCacheSubnetGroupOutput struct {
	transport.Metadata `xml:"-"`
}

// DeleteCacheSubnetGroup fails with CacheSubnetGroupInUse while any cluster uses the group.
func (c *Client) DeleteCacheSubnetGroup(ctx context.Context, in *DeleteCacheSubnetGroupInput) (*DeleteCacheSubnetGroupOutput, error) {
	out := new(DeleteCacheSubnetGroupOutput)
	if err := c.invoke(ctx, "DeleteCacheSubnetGroup", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DescribeCacheSubnetGroupsInput struct {
	CacheSubnetGroupName *string
	MaxRecords           *int32
	Marker               *string
}

type DescribeCacheSubnetGroupsOutput struct {
	transport.Metadata `xml:"-"`

	Marker            *string            `xml:"Marker"`
	CacheSubnetGroups []CacheSubnetGroup `xml:"CacheSubnetGroups>CacheSubnetGroup"`
}

func (c *Client) DescribeCacheSubnetGroups(ctx context.Context, in *DescribeCacheSubnetGroupsInput) (*DescribeCacheSubnetGroupsOutput, error) {
	out := new(DescribeCacheSubnetGroupsOutput)
	if err := c.invoke(ctx, "DescribeCacheSubnetGroups", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type ModifyCacheSubnetGroupInput struct {
	CacheSubnetGroupName        *string `validate:"required"`
	CacheSubnetGroupDescription *string
	// SubnetIds replaces the whole subnet list when set.
	SubnetIds []string `member:"SubnetIdentifier"`
}

type ModifyCacheSubnetGroupOutput struct {
	transport.Metadata `xml:"-"`

	CacheSubnetGroup *CacheSubnetGroup `xml:"CacheSubnetGroup"`
}

func (c *Client) ModifyCacheSubnetGroup(ctx context.Context, in *ModifyCacheSubnetGroupInput) (*ModifyCacheSubnetGroupOutput, error) {
	out := new(ModifyCacheSubnetGroupOutput)
	if err := c.invoke(ctx, "ModifyCacheSubnetGroup", in, out); err != nil {
		return nil, err
	}
	return out, nil
}
