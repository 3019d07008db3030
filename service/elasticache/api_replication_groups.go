package elasticache

import (
	"context"

	"github.com/Laisky/cloudsdk/transport"
)

type CreateReplicationGroupInput struct {
	ReplicationGroupId          *string `validate:"required"`
	ReplicationGroupDescription *string `validate:"required"`

	// PrimaryClusterId seeds the group from an existing available cluster.
	PrimaryClusterId         *string
	AutomaticFailoverEnabled *bool
	NumCacheClusters         *int32
	PreferredCacheClusterAZs []string `member:"AvailabilityZone"`
	// NumNodeGroups and NodeGroupConfiguration describe a cluster-mode Redis group.
	NumNodeGroups              *int32
	ReplicasPerNodeGroup       *int32
	NodeGroupConfiguration     []NodeGroupConfiguration `member:"NodeGroupConfiguration"`
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
	TransitEncryptionEnabled   *bool
	AtRestEncryptionEnabled    *bool
}

type CreateReplicationGroupOutput struct {
	transport.Metadata `xml:"-"`

	ReplicationGroup *ReplicationGroup `xml:"ReplicationGroup"`
}

// CreateReplicationGroup creates a Redis replication group, with or without
// cluster mode.
func (c *Client) CreateReplicationGroup(ctx context.Context, in *CreateReplicationGroupInput) (*CreateReplicationGroupOutput, error) {
	out := new(CreateReplicationGroupOutput)
	if err := c.invoke(ctx, "CreateReplicationGroup", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteReplicationGroupInput struct {
	ReplicationGroupId      *string `validate:"required"`
	RetainPrimaryCluster    *bool
	FinalSnapshotIdentifier *string
}

type DeleteReplicationGroupOutput struct {
	transport.Metadata `xml:"-"`

	ReplicationGroup *ReplicationGroup `xml:"ReplicationGroup"`
}

// DeleteReplicationGroup deletes a group and, unless RetainPrimaryCluster is
// set, every cluster in it.
func (c *Client) DeleteReplicationGroup(ctx context.Context, in *DeleteReplicationGroupInput) (*DeleteReplicationGroupOutput, error) {
	out := new(DeleteReplicationGroupOutput)
	if err := c.invoke(ctx, "DeleteReplicationGroup", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DescribeReplicationGroupsInput struct {
	ReplicationGroupId *string
	MaxRecords         *int32
	Marker             *string
}

type DescribeReplicationGroupsOutput struct {
	transport.Metadata `xml:"-"`

	Marker            *string            `xml:"Marker"`
	ReplicationGroups []ReplicationGroup `xml:"ReplicationGroups>ReplicationGroup"`
}

func (c *Client) DescribeReplicationGroups(ctx context.Context, in *DescribeReplicationGroupsInput) (*DescribeReplicationGroupsOutput, error) {
	out := new(DescribeReplicationGroupsOutput)
	if err := c.invoke(ctx, "DescribeReplicationGroups", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type ModifyReplicationGroupInput struct {
	ReplicationGroupId *string `validate:"required"`

	ReplicationGroupDescription *string
	PrimaryClusterId            *string
	SnapshottingClusterId       *string
	AutomaticFailoverEnabled    *bool
	CacheSecurityGroupNames     []string `member:"CacheSecurityGroupName"`
	SecurityGroupIds            []string `member:"SecurityGroupId"`
	PreferredMaintenanceWindow  *string
	NotificationTopicArn        *string
	CacheParameterGroupName     *string
	NotificationTopicStatus     *string
	ApplyImmediately            *bool
	EngineVersion               *string
	AutoMinorVersionUpgrade     *bool
	SnapshotRetentionLimit      *int32
	SnapshotWindow              *string
	CacheNodeType               *string
	NodeGroupId                 *string
}

type ModifyReplicationGroupOutput struct {
	transport.Metadata `xml:"-"`

	ReplicationGroup *ReplicationGroup `xml:"ReplicationGroup"`
}

func (c *Client) ModifyReplicationGroup(ctx context.Context, in *ModifyReplicationGroupInput) (*ModifyReplicationGroupOutput, error) {
	out := new(ModifyReplicationGroupOutput)
	if err := c.invoke(ctx, "ModifyReplicationGroup", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type ModifyReplicationGroupShardConfigurationInput struct {
	ReplicationGroupId *string `validate:"required"`
	// NodeGroupCount is the number of shards wanted after the change.
	NodeGroupCount *int32 `validate:"required"`
	// ApplyImmediately must be true; the service rejects scheduled resharding.
	ApplyImmediately        *bool                     `validate:"required"`
	ReshardingConfiguration []ReshardingConfiguration `member:"ReshardingConfiguration"`
	NodeGroupsToRemove      []string                  `member:"NodeGroupToRemove"`
}

type ModifyReplicationGroupShardConfigurationOutput struct {
	transport.Metadata `xml:"-"`

	ReplicationGroup *ReplicationGroup `xml:"ReplicationGroup"`
}

// ModifyReplicationGroupShardConfiguration adds or removes shards of a
// cluster-mode Redis group and rebalances its slots.
func (c *Client) ModifyReplicationGroupShardConfiguration(ctx context.Context, in *ModifyReplicationGroupShardConfigurationInput) (*ModifyReplicationGroupShardConfigurationOutput, error) {
	out := new(ModifyReplicationGroupShardConfigurationOutput)
	if err := c.invoke(ctx, "ModifyReplicationGroupShardConfiguration", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type TestFailoverInput struct {
	ReplicationGroupId *string `validate:"required"`
	NodeGroupId        *string `validate:"required"`
}

type TestFailoverOutput struct {
	transport.Metadata `xml:"-"`

	ReplicationGroup *ReplicationGroup `xml:"ReplicationGroup"`
}

// TestFailover promotes a replica of the given shard to primary.
func (c *Client) TestFailover(ctx context.Context, in *TestFailoverInput) (*TestFailoverOutput, error) {
	out := new(TestFailoverOutput)
	if err := c.invoke(ctx, "TestFailover", in, out); err != nil {
		return nil, err
	}
	return out, nil
}
