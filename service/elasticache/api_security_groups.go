package elasticache

import (
	"context"

	"github.com/Laisky/cloudsdk/transport"
)

type AuthorizeCacheSecurityGroupIngressInput struct {
	CacheSecurityGroupName  *string `validate:"required"`
	EC2SecurityGroupName    *string `validate:"required"`
	EC2SecurityGroupOwnerId *string `validate:"required"`
}

type AuthorizeCacheSecurityGroupIngressOutput struct {
	transport.Metadata `xml:"-"`

	CacheSecurityGroup *CacheSecurityGroup `xml:"CacheSecurityGroup"`
}

// AuthorizeCacheSecurityGroupIngress lets an EC2 security group reach the
// clusters of a cache security group. EC2-Classic only.
func (c *Client) AuthorizeCacheSecurityGroupIngress(ctx context.Context, in *AuthorizeCacheSecurityGroupIngressInput) (*AuthorizeCacheSecurityGroupIngressOutput, error) {
	out := new(AuthorizeCacheSecurityGroupIngressOutput)
	if err := c.invoke(ctx, "AuthorizeCacheSecurityGroupIngress", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type CreateCacheSecurityGroupInput struct {
	CacheSecurityGroupName *string `validate:"required"`
	Description            *string `validate:"required"`
}

type CreateCacheSecurityGroupOutput struct {
	transport.Metadata `xml:"-"`

	CacheSecurityGroup *CacheSecurityGroup `xml:"CacheSecurityGroup"`
}

func (c *Client) CreateCacheSecurityGroup(ctx context.Context, in *CreateCacheSecurityGroupInput) (*CreateCacheSecurityGroupOutput, error) {
	out := new(CreateCacheSecurityGroupOutput)
	if err := c.invoke(ctx, "CreateCacheSecurityGroup", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteCacheSecurityGroupInput struct {
	CacheSecurityGroupName *string `validate:"required"`
}

type DeleteCacheSecurityGroupOutput struct {
	transport.Metadata `xml:"-"`
}

func (c *Client) DeleteCacheSecurityGroup(ctx context.Context, in *DeleteCacheSecurityGroupInput) (*DeleteCacheSecurityGroupOutput, error) {
	out := new(DeleteCacheSecurityGroupOutput)
	if err := c.invoke(ctx, "DeleteCacheSecurityGroup", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DescribeCacheSecurityGroupsInput struct {
	CacheSecurityGroupName *string
	MaxRecords             *int32
	Marker                 *string
}

type DescribeCacheSecurityGroupsOutput struct {
	transport.Metadata `xml:"-"`

	Marker              *string              `xml:"Marker"`
	CacheSecurityGroups []CacheSecurityGroup `xml:"CacheSecurityGroups>CacheSecurityGroup"`
}

func (c *Client) DescribeCacheSecurityGroups(ctx context.Context, in *DescribeCacheSecurityGroupsInput) (*DescribeCacheSecurityGroupsOutput, error) {
	out := new(DescribeCacheSecurityGroupsOutput)
	if err := c.invoke(ctx, "DescribeCacheSecurityGroups", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type RevokeCacheSecurityGroupIngressInput struct {
	CacheSecurityGroupName  *string `validate:"required"`
	EC2SecurityGroupName    *string `validate:"required"`
	EC2SecurityGroupOwnerId *string `validate:"required"`
}

type RevokeCacheSecurityGroupIngressOutput struct {
	transport.Metadata `xml:"-"`

	CacheSecurityGroup *CacheSecurityGroup `xml:"CacheSecurityGroup"`
}

func (c *Client) RevokeCacheSecurityGroupIngress(ctx context.Context, in *RevokeCacheSecurityGroupIngressInput) (*RevokeCacheSecurityGroupIngressOutput, error) {
	out := new(RevokeCacheSecurityGroupIngressOutput)
	if err := c.invoke(ctx, "RevokeCacheSecurityGroupIngress", in, out); err != nil {
		return nil, err
	}
	return out, nil
}
