package elasticache

import (
	"context"

	"github.com/Laisky/cloudsdk/transport"
)

type CreateCacheParameterGroupInput struct {
	CacheParameterGroupName *string `validate:"required"`
	// CacheParameterGroupFamily is e.g. memcached1.4 or redis3.2.
	CacheParameterGroupFamily *string `validate:"required"`
	Description               *string `validate:"required"`
}

type CreateCacheParameterGroupOutput struct {
	transport.Metadata `xml:"-"`

	CacheParameterGroup *CacheParameterGroup `xml:"CacheParameterGroup"`
}

func (c *Client) CreateCacheParameterGroup(ctx context.Context, in *CreateCacheParameterGroupInput) (*CreateCacheParameterGroupOutput, error) {
	out := new(CreateCacheParameterGroupOutput)
	if err := c.invoke(ctx, "CreateCacheParameterGroup", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteCacheParameterGroupInput struct {
	CacheParameterGroupName *string `validate:"required"`
}

type DeleteCacheParameterGroupOutput struct {
	transport.Metadata `xml:"-"`
}

// DeleteCacheParameterGroup deletes a group that no cluster uses. Default
// groups cannot be deleted.
func (c *Client) DeleteCacheParameterGroup(ctx context.Context, in *DeleteCacheParameterGroupInput) (*DeleteCacheParameterGroupOutput, error) {
	out := new(DeleteCacheParameterGroupOutput)
	if err := c.invoke(ctx, "DeleteCacheParameterGroup", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DescribeCacheParameterGroupsInput struct {
	CacheParameterGroupName *string
	MaxRecords              *int32
	Marker                  *string
}

type DescribeCacheParameterGroupsOutput struct {
	transport.Metadata `xml:"-"`

	Marker               *string               `xml:"Marker"`
	CacheParameterGroups []CacheParameterGroup `xml:"CacheParameterGroups>CacheParameterGroup"`
}

func (c *Client) DescribeCacheParameterGroups(ctx context.Context, in *DescribeCacheParameterGroupsInput) (*DescribeCacheParameterGroupsOutput, error) {
	out := new(DescribeCacheParameterGroupsOutput)
	if err := c.invoke(ctx, "DescribeCacheParameterGroups", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DescribeCacheParametersInput struct {
	CacheParameterGroupName *string `validate:"required"`
	// Source is one of user, system or engine-default.
	Source     *string
	MaxRecords *int32
	Marker     *string
}

type DescribeCacheParametersOutput struct {
	transport.Metadata `xml:"-"`

	Marker                          *string                          `xml:"Marker"`
	Parameters                      []Parameter                      `xml:"Parameters>Parameter"`
	CacheNodeTypeSpecificParameters []CacheNodeTypeSpecificParameter `xml:"CacheNodeTypeSpecificParameters>CacheNodeTypeSpecificParameter"`
}

func (c *Client) DescribeCacheParameters(ctx context.Context, in *DescribeCacheParametersInput) (*DescribeCacheParametersOutput, error) {
	out := new(DescribeCacheParametersOutput)
	if err := c.invoke(ctx, "DescribeCacheParameters", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DescribeEngineDefaultParametersInput struct {
	CacheParameterGroupFamily *string `validate:"required"`
	MaxRecords                *int32
	Marker                    *string
}

type DescribeEngineDefaultParametersOutput struct {
	transport.Metadata `xml:"-"`

	EngineDefaults *EngineDefaults `xml:"EngineDefaults"`
}

// DescribeEngineDefaultParameters returns the default parameters of a family.
// The pagination marker lives inside EngineDefaults.
func (c *Client) DescribeEngineDefaultParameters(ctx context.Context, in *DescribeEngineDefaultParametersInput) (*DescribeEngineDefaultParametersOutput, error) {
	out := new(DescribeEngineDefaultParametersOutput)
	if err := c.invoke(ctx, "DescribeEngineDefaultParameters", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type ModifyCacheParameterGroupInput struct {
	CacheParameterGroupName *string              `validate:"required"`
	ParameterNameValues     []ParameterNameValue `member:"ParameterNameValue" validate:"required,min=1"`
}

type ModifyCacheParameterGroupOutput struct {
	transport.Metadata `xml:"-"`

	CacheParameterGroupName *string `xml:"CacheParameterGroupName"`
}

// ModifyCacheParameterGroup changes up to 20 parameters in one call.
func (c *Client) ModifyCacheParameterGroup(ctx context.Context, in *ModifyCacheParameterGroupInput) (*ModifyCacheParameterGroupOutput, error) {
	out := new(ModifyCacheParameterGroupOutput)
	if err := c.invoke(ctx, "ModifyCacheParameterGroup", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type ResetCacheParameterGroupInput struct {
	CacheParameterGroupName *string `validate:"required"`
	// ResetAllParameters resets every parameter; otherwise only ParameterNameValues.
	ResetAllParameters  *bool
	ParameterNameValues []ParameterNameValue `member:"ParameterNameValue"`
}

type ResetCacheParameterGroupOutput struct {
	transport.Metadata `xml:"-"`

	CacheParameterGroupName *string `xml:"CacheParameterGroupName"`
}

func (c *Client) ResetCacheParameterGroup(ctx context.Context, in *ResetCacheParameterGroupInput) (*ResetCacheParameterGroupOutput, error) {
	out := new(ResetCacheParameterGroupOutput)
	if err := c.invoke(ctx, "ResetCacheParameterGroup", in, out); err != nil {
		return nil, err
	}
	return out, nil
}
