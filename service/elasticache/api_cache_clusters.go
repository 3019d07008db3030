package elasticache

import (
	"context"

	"github.com/Laisky/cloudsdk/transport"
)

type CreateCacheClusterInput struct {
	// CacheClusterId is lowercased by the service; 1 to 20 alphanumerics or hyphens.
	CacheClusterId *string `validate:"required"`

	// ReplicationGroupId adds the cluster as a read replica of an existing group.
	ReplicationGroupId         *string
	AZMode                     AZMode
	PreferredAvailabilityZone  *string
	PreferredAvailabilityZones []string `member:"PreferredAvailabilityZone"`
	NumCacheNodes              *int32
	CacheNodeType              *string
	Engine                     *string
	EngineVersion              *string
	CacheParameterGroupName    *string
	CacheSubnetGroupName       *string
	CacheSecurityGroupNames    []string `member:"CacheSecurityGroupName"`
	SecurityGroupIds           []string `member:"SecurityGroupId"`
	Tags                       []Tag    `member:"Tag"`
	SnapshotArns               []string `member:"SnapshotArn"`
	SnapshotName               *string
	PreferredMaintenanceWindow *string
	Port                       *int32
	NotificationTopicArn       *string
	AutoMinorVersionUpgrade    *bool
	SnapshotRetentionLimit     *int32
	SnapshotWindow             *string
	AuthToken                  *string
}

type CreateCacheClusterOutput struct {
	transport.Metadata `xml:"-"`

	CacheCluster *CacheCluster `xml:"CacheCluster"`
}

// CreateCacheCluster creates a Memcached cluster, a standalone Redis node, or
// a replica inside an existing replication group.
func (c *Client) CreateCacheCluster(ctx context.Context, in *CreateCacheClusterInput) (*CreateCacheClusterOutput, error) {
	out := new(CreateCacheClusterOutput)
	if err := c.invoke(ctx, "CreateCacheCluster", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteCacheClusterInput struct {
	CacheClusterId *string `validate:"required"`
	// FinalSnapshotIdentifier names a snapshot taken right before deletion. Redis only.
	FinalSnapshotIdentifier *string
}

type DeleteCacheClusterOutput struct {
	transport.Metadata `xml:"-"`

	CacheCluster *CacheCluster `xml:"CacheCluster"`
}

// DeleteCacheCluster starts deleting a cluster. The returned cluster is in the
// deleting state; use CacheClusterDeletedWaiter to wait for completion.
func (c *Client) DeleteCacheCluster(ctx context.Context, in *DeleteCacheClusterInput) (*DeleteCacheClusterOutput, error) {
	out := new(DeleteCacheClusterOutput)
	if err := c.invoke(ctx, "DeleteCacheCluster", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DescribeCacheClustersInput struct {
	CacheClusterId *string
	// MaxRecords is between 20 and 100, default 100.
	MaxRecords                              *int32
	Marker                                  *string
	ShowCacheNodeInfo                       *bool
	ShowCacheClustersNotInReplicationGroups *bool
}

type DescribeCacheClustersOutput struct {
	transport.Metadata `xml:"-"`

	Marker        *string        `xml:"Marker"`
	CacheClusters []CacheCluster `xml:"CacheClusters>CacheCluster"`
}

// DescribeCacheClusters lists clusters, or one cluster when CacheClusterId is set.
// Node endpoints are only returned with ShowCacheNodeInfo.
func (c *Client) DescribeCacheClusters(ctx context.Context, in *DescribeCacheClustersInput) (*DescribeCacheClustersOutput, error) {
	out := new(DescribeCacheClustersOutput)
	if err := c.invoke(ctx, "DescribeCacheClusters", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DescribeCacheEngineVersionsInput struct {
	Engine                    *string
	EngineVersion             *string
	CacheParameterGroupFamily *string
	MaxRecords                *int32
	Marker                    *string
	DefaultOnly               *bool
}

type DescribeCacheEngineVersionsOutput struct {
	transport.Metadata `xml:"-"`

	Marker              *string              `xml:"Marker"`
	CacheEngineVersions []CacheEngineVersion `xml:"CacheEngineVersions>CacheEngineVersion"`
}

func (c *Client) DescribeCacheEngineVersions(ctx context.Context, in *DescribeCacheEngineVersionsInput) (*DescribeCacheEngineVersionsOutput, error) {
	out := new(DescribeCacheEngineVersionsOutput)
	if err := c.invoke(ctx, "DescribeCacheEngineVersions", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type ListAllowedNodeTypeModificationsInput struct {
	// Exactly one of CacheClusterId and ReplicationGroupId should be set.
	CacheClusterId     *string
	ReplicationGroupId *string
}

type ListAllowedNodeTypeModificationsOutput struct {
	transport.Metadata `xml:"-"`

	ScaleUpModifications []string `xml:"ScaleUpModifications>member"`
}

// ListAllowedNodeTypeModifications lists the node types a Redis cluster or
// replication group can scale up to.
func (c *Client) ListAllowedNodeTypeModifications(ctx context.Context, in *ListAllowedNodeTypeModificationsInput) (*ListAllowedNodeTypeModificationsOutput, error) {
	out := new(ListAllowedNodeTypeModificationsOutput)
	if err := c.invoke(ctx, "ListAllowedNodeTypeModifications", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type ModifyCacheClusterInput struct {
	CacheClusterId *string `validate:"required"`

	NumCacheNodes              *int32
	CacheNodeIdsToRemove       []string `member:"CacheNodeId"`
	AZMode                     AZMode
	NewAvailabilityZones       []string `member:"PreferredAvailabilityZone"`
	CacheSecurityGroupNames    []string `member:"CacheSecurityGroupName"`
	SecurityGroupIds           []string `member:"SecurityGroupId"`
	PreferredMaintenanceWindow *string
	NotificationTopicArn       *string
	CacheParameterGroupName    *string
	NotificationTopicStatus    *string
	// ApplyImmediately applies the change now instead of in the maintenance window.
	ApplyImmediately        *bool
	EngineVersion           *string
	AutoMinorVersionUpgrade *bool
	SnapshotRetentionLimit  *int32
	SnapshotWindow          *string
	CacheNodeType           *string
}

type ModifyCacheClusterOutput struct {
	transport.Metadata `xml:"-"`

	CacheCluster *CacheCluster `xml:"CacheCluster"`
}

func (c *Client) ModifyCacheCluster(ctx context.Context, in *ModifyCacheClusterInput) (*ModifyCacheClusterOutput, error) {
	out := new(ModifyCacheClusterOutput)
	if err := c.invoke(ctx, "ModifyCacheCluster", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type RebootCacheClusterInput struct {
	CacheClusterId       *string  `validate:"required"`
	CacheNodeIdsToReboot []string `member:"CacheNodeId" validate:"required"`
}

type RebootCacheClusterOutput struct {
	transport.Metadata `xml:"-"`

	CacheCluster *CacheCluster `xml:"CacheCluster"`
}

// RebootCacheCluster reboots the listed nodes. Pending parameter group changes
// are applied on reboot.
func (c *Client) RebootCacheCluster(ctx context.Context, in *RebootCacheClusterInput) (*RebootCacheClusterOutput, error) {
	out := new(RebootCacheClusterOutput)
	if err := c.invoke(ctx, "RebootCacheCluster", in, out); err != nil {
		return nil, err
	}
	return out, nil
}
