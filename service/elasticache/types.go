package elasticache

import (
	"time"
)

// AZMode places the nodes of a Memcached cluster.
type AZMode string

const (
	AZModeSingleAZ AZMode = "single-az"
	AZModeCrossAZ  AZMode = "cross-az"
)

type AutomaticFailoverStatus string

const (
	AutomaticFailoverStatusEnabled   AutomaticFailoverStatus = "enabled"
	AutomaticFailoverStatusDisabled  AutomaticFailoverStatus = "disabled"
	AutomaticFailoverStatusEnabling  AutomaticFailoverStatus = "enabling"
	AutomaticFailoverStatusDisabling AutomaticFailoverStatus = "disabling"
)

type PendingAutomaticFailoverStatus string

const (
	PendingAutomaticFailoverStatusEnabled  PendingAutomaticFailoverStatus = "enabled"
	PendingAutomaticFailoverStatusDisabled PendingAutomaticFailoverStatus = "disabled"
)

// ChangeType tells whether a parameter change applies immediately or after a reboot.
type ChangeType string

const (
	ChangeTypeImmediate      ChangeType = "immediate"
	ChangeTypeRequiresReboot ChangeType = "requires-reboot"
)

// SourceType filters DescribeEvents.
type SourceType string

const (
	SourceTypeCacheCluster        SourceType = "cache-cluster"
	SourceTypeCacheParameterGroup SourceType = "cache-parameter-group"
	SourceTypeCacheSecurityGroup  SourceType = "cache-security-group"
	SourceTypeCacheSubnetGroup    SourceType = "cache-subnet-group"
	SourceTypeReplicationGroup    SourceType = "replication-group"
)

// Endpoint is the DNS name and port of a node or of a cluster's configuration endpoint.
type Endpoint struct {
	Address *string `xml:"Address"`
	Port    *int32  `xml:"Port"`
}

type Tag struct {
	Key   *string `xml:"Key"`
	Value *string `xml:"Value"`
}

type CacheNode struct {
	CacheNodeId              *string    `xml:"CacheNodeId"`
	CacheNodeStatus          *string    `xml:"CacheNodeStatus"`
	CacheNodeCreateTime      *time.Time `xml:"CacheNodeCreateTime"`
	Endpoint                 *Endpoint  `xml:"Endpoint"`
	ParameterGroupStatus     *string    `xml:"ParameterGroupStatus"`
	SourceCacheNodeId        *string    `xml:"SourceCacheNodeId"`
	CustomerAvailabilityZone *string    `xml:"CustomerAvailabilityZone"`
}

type CacheParameterGroupStatus struct {
	CacheParameterGroupName *string  `xml:"CacheParameterGroupName"`
	ParameterApplyStatus    *string  `xml:"ParameterApplyStatus"`
	CacheNodeIdsToReboot    []string `xml:"CacheNodeIdsToReboot>CacheNodeId"`
}

type CacheSecurityGroupMembership struct {
	CacheSecurityGroupName *string `xml:"CacheSecurityGroupName"`
	Status                 *string `xml:"Status"`
}

type SecurityGroupMembership struct {
	SecurityGroupId *string `xml:"SecurityGroupId"`
	Status          *string `xml:"Status"`
}

type NotificationConfiguration struct {
	TopicArn    *string `xml:"TopicArn"`
	TopicStatus *string `xml:"TopicStatus"`
}

type PendingModifiedValues struct {
	NumCacheNodes        *int32   `xml:"NumCacheNodes"`
	CacheNodeIdsToRemove []string `xml:"CacheNodeIdsToRemove>CacheNodeId"`
	EngineVersion        *string  `xml:"EngineVersion"`
	CacheNodeType        *string  `xml:"CacheNodeType"`
}

// CacheCluster describes one Memcached or Redis cluster.
type CacheCluster struct {
	CacheClusterId             *string                        `xml:"CacheClusterId"`
	ConfigurationEndpoint      *Endpoint                      `xml:"ConfigurationEndpoint"`
	ClientDownloadLandingPage  *string                        `xml:"ClientDownloadLandingPage"`
	CacheNodeType              *string                        `xml:"CacheNodeType"`
	Engine                     *string                        `xml:"Engine"`
	EngineVersion              *string                        `xml:"EngineVersion"`
	CacheClusterStatus         *string                        `xml:"CacheClusterStatus"`
	NumCacheNodes              *int32                         `xml:"NumCacheNodes"`
	PreferredAvailabilityZone  *string                        `xml:"PreferredAvailabilityZone"`
	CacheClusterCreateTime     *time.Time                     `xml:"CacheClusterCreateTime"`
	PreferredMaintenanceWindow *string                        `xml:"PreferredMaintenanceWindow"`
	PendingModifiedValues      *PendingModifiedValues         `xml:"PendingModifiedValues"`
	NotificationConfiguration  *NotificationConfiguration     `xml:"NotificationConfiguration"`
	CacheSecurityGroups        []CacheSecurityGroupMembership `xml:"CacheSecurityGroups>CacheSecurityGroup"`
	CacheParameterGroup        *CacheParameterGroupStatus     `xml:"CacheParameterGroup"`
	CacheSubnetGroupName       *string                        `xml:"CacheSubnetGroupName"`
	CacheNodes                 []CacheNode                    `xml:"CacheNodes>CacheNode"`
	AutoMinorVersionUpgrade    *bool                          `xml:"AutoMinorVersionUpgrade"`
	SecurityGroups             []SecurityGroupMembership      `xml:"SecurityGroups>member"`
	ReplicationGroupId         *string                        `xml:"ReplicationGroupId"`
	SnapshotRetentionLimit     *int32                         `xml:"SnapshotRetentionLimit"`
	SnapshotWindow             *string                        `xml:"SnapshotWindow"`
}

type CacheEngineVersion struct {
	Engine                        *string `xml:"Engine"`
	EngineVersion                 *string `xml:"EngineVersion"`
	CacheParameterGroupFamily     *string `xml:"CacheParameterGroupFamily"`
	CacheEngineDescription        *string `xml:"CacheEngineDescription"`
	CacheEngineVersionDescription *string `xml:"CacheEngineVersionDescription"`
}

type CacheParameterGroup struct {
	CacheParameterGroupName   *string `xml:"CacheParameterGroupName"`
	CacheParameterGroupFamily *string `xml:"CacheParameterGroupFamily"`
	Description               *string `xml:"Description"`
}

// Parameter is one engine setting of a parameter group.
type Parameter struct {
	ParameterName        *string    `xml:"ParameterName"`
	ParameterValue       *string    `xml:"ParameterValue"`
	Description          *string    `xml:"Description"`
	Source               *string    `xml:"Source"`
	DataType             *string    `xml:"DataType"`
	AllowedValues        *string    `xml:"AllowedValues"`
	IsModifiable         *bool      `xml:"IsModifiable"`
	MinimumEngineVersion *string    `xml:"MinimumEngineVersion"`
	ChangeType           ChangeType `xml:"ChangeType"`
}

type CacheNodeTypeSpecificValue struct {
	CacheNodeType *string `xml:"CacheNodeType"`
	Value         *string `xml:"Value"`
}

type CacheNodeTypeSpecificParameter struct {
	ParameterName               *string                      `xml:"ParameterName"`
	Description                 *string                      `xml:"Description"`
	Source                      *string                      `xml:"Source"`
	DataType                    *string                      `xml:"DataType"`
	AllowedValues               *string                      `xml:"AllowedValues"`
	IsModifiable                *bool                        `xml:"IsModifiable"`
	MinimumEngineVersion        *string                      `xml:"MinimumEngineVersion"`
	CacheNodeTypeSpecificValues []CacheNodeTypeSpecificValue `xml:"CacheNodeTypeSpecificValues>CacheNodeTypeSpecificValue"`
	ChangeType                  ChangeType                   `xml:"ChangeType"`
}

// EngineDefaults is the result of DescribeEngineDefaultParameters.
type EngineDefaults struct {
	CacheParameterGroupFamily       *string                          `xml:"CacheParameterGroupFamily"`
	Marker                          *string                          `xml:"Marker"`
	Parameters                      []Parameter                      `xml:"Parameters>Parameter"`
	CacheNodeTypeSpecificParameters []CacheNodeTypeSpecificParameter `xml:"CacheNodeTypeSpecificParameters>CacheNodeTypeSpecificParameter"`
}

// ParameterNameValue is one parameter change in ModifyCacheParameterGroup and
// ResetCacheParameterGroup.
type ParameterNameValue struct {
	ParameterName  *string
	ParameterValue *string
}

type EC2SecurityGroup struct {
	Status                  *string `xml:"Status"`
	EC2SecurityGroupName    *string `xml:"EC2SecurityGroupName"`
	EC2SecurityGroupOwnerId *string `xml:"EC2SecurityGroupOwnerId"`
}

type CacheSecurityGroup struct {
	OwnerId                *string            `xml:"OwnerId"`
	CacheSecurityGroupName *string            `xml:"CacheSecurityGroupName"`
	Description            *string            `xml:"Description"`
	EC2SecurityGroups      []EC2SecurityGroup `xml:"EC2SecurityGroups>EC2SecurityGroup"`
}

type AvailabilityZone struct {
	Name *string `xml:"Name"`
}

type Subnet struct {
	SubnetIdentifier       *string           `xml:"SubnetIdentifier"`
	SubnetAvailabilityZone *AvailabilityZone `xml:"SubnetAvailabilityZone"`
}

type CacheSubnetGroup struct {
	CacheSubnetGroupName        *string  `xml:"CacheSubnetGroupName"`
	CacheSubnetGroupDescription *string  `xml:"CacheSubnetGroupDescription"`
	VpcId                       *string  `xml:"VpcId"`
	Subnets                     []Subnet `xml:"Subnets>Subnet"`
}

type Event struct {
	SourceIdentifier *string    `xml:"SourceIdentifier"`
	SourceType       SourceType `xml:"SourceType"`
	Message          *string    `xml:"Message"`
	Date             *time.Time `xml:"Date"`
}

type NodeGroupMember struct {
	CacheClusterId            *string   `xml:"CacheClusterId"`
	CacheNodeId               *string   `xml:"CacheNodeId"`
	ReadEndpoint              *Endpoint `xml:"ReadEndpoint"`
	PreferredAvailabilityZone *string   `xml:"PreferredAvailabilityZone"`
	CurrentRole               *string   `xml:"CurrentRole"`
}

// NodeGroup is a shard of a replication group.
type NodeGroup struct {
	NodeGroupId      *string           `xml:"NodeGroupId"`
	Status           *string           `xml:"Status"`
	PrimaryEndpoint  *Endpoint         `xml:"PrimaryEndpoint"`
	Slots            *string           `xml:"Slots"`
	NodeGroupMembers []NodeGroupMember `xml:"NodeGroupMembers>NodeGroupMember"`
}

// NodeGroupConfiguration shapes one shard at creation time. It appears in
// requests and in snapshot descriptions.
type NodeGroupConfiguration struct {
	Slots                    *string  `xml:"Slots"`
	ReplicaCount             *int32   `xml:"ReplicaCount"`
	PrimaryAvailabilityZone  *string  `xml:"PrimaryAvailabilityZone"`
	ReplicaAvailabilityZones []string `xml:"ReplicaAvailabilityZones>AvailabilityZone" member:"AvailabilityZone"`
}

type ReshardingStatus struct {
	SlotMigration *SlotMigration `xml:"SlotMigration"`
}

type SlotMigration struct {
	ProgressPercentage *float64 `xml:"ProgressPercentage"`
}

type ReplicationGroupPendingModifiedValues struct {
	PrimaryClusterId        *string                        `xml:"PrimaryClusterId"`
	AutomaticFailoverStatus PendingAutomaticFailoverStatus `xml:"AutomaticFailoverStatus"`
	Resharding              *ReshardingStatus              `xml:"Resharding"`
}

// ReplicationGroup is a Redis primary with its replicas, possibly sharded.
type ReplicationGroup struct {
	ReplicationGroupId     *string                                `xml:"ReplicationGroupId"`
	Description            *string                                `xml:"Description"`
	Status                 *string                                `xml:"Status"`
	PendingModifiedValues  *ReplicationGroupPendingModifiedValues `xml:"PendingModifiedValues"`
	MemberClusters         []string                               `xml:"MemberClusters>ClusterId"`
	NodeGroups             []NodeGroup                            `xml:"NodeGroups>NodeGroup"`
	SnapshottingClusterId  *string                                `xml:"SnapshottingClusterId"`
	AutomaticFailover      AutomaticFailoverStatus                `xml:"AutomaticFailover"`
	ConfigurationEndpoint  *Endpoint                              `xml:"ConfigurationEndpoint"`
	SnapshotRetentionLimit *int32                                 `xml:"SnapshotRetentionLimit"`
	SnapshotWindow         *string                                `xml:"SnapshotWindow"`
	ClusterEnabled         *bool                                  `xml:"ClusterEnabled"`
	CacheNodeType          *string                                `xml:"CacheNodeType"`
	AuthTokenEnabled       *bool                                  `xml:"AuthTokenEnabled"`
	TransitEncryption      *bool                                  `xml:"TransitEncryptionEnabled"`
	AtRestEncryption       *bool                                  `xml:"AtRestEncryptionEnabled"`
}

type RecurringCharge struct {
	RecurringChargeAmount    *float64 `xml:"RecurringChargeAmount"`
	RecurringChargeFrequency *string  `xml:"RecurringChargeFrequency"`
}

type ReservedCacheNode struct {
	ReservedCacheNodeId          *string           `xml:"ReservedCacheNodeId"`
	ReservedCacheNodesOfferingId *string           `xml:"ReservedCacheNodesOfferingId"`
	CacheNodeType                *string           `xml:"CacheNodeType"`
	StartTime                    *time.Time        `xml:"StartTime"`
	Duration                     *int32            `xml:"Duration"`
	FixedPrice                   *float64          `xml:"FixedPrice"`
	UsagePrice                   *float64          `xml:"UsagePrice"`
	CacheNodeCount               *int32            `xml:"CacheNodeCount"`
	ProductDescription           *string           `xml:"ProductDescription"`
	OfferingType                 *string           `xml:"OfferingType"`
	State                        *string           `xml:"State"`
	RecurringCharges             []RecurringCharge `xml:"RecurringCharges>RecurringCharge"`
}

type ReservedCacheNodesOffering struct {
	ReservedCacheNodesOfferingId *string           `xml:"ReservedCacheNodesOfferingId"`
	CacheNodeType                *string           `xml:"CacheNodeType"`
	Duration                     *int32            `xml:"Duration"`
	FixedPrice                   *float64          `xml:"FixedPrice"`
	UsagePrice                   *float64          `xml:"UsagePrice"`
	ProductDescription           *string           `xml:"ProductDescription"`
	OfferingType                 *string           `xml:"OfferingType"`
	RecurringCharges             []RecurringCharge `xml:"RecurringCharges>RecurringCharge"`
}

type NodeSnapshot struct {
	CacheClusterId         *string                 `xml:"CacheClusterId"`
	NodeGroupId            *string                 `xml:"NodeGroupId"`
	CacheNodeId            *string                 `xml:"CacheNodeId"`
	NodeGroupConfiguration *NodeGroupConfiguration `xml:"NodeGroupConfiguration"`
	CacheSize              *string                 `xml:"CacheSize"`
	CacheNodeCreateTime    *time.Time              `xml:"CacheNodeCreateTime"`
	SnapshotCreateTime     *time.Time              `xml:"SnapshotCreateTime"`
}

// Snapshot is a point-in-time copy of a Redis cluster.
type Snapshot struct {
	SnapshotName                *string                 `xml:"SnapshotName"`
	ReplicationGroupId          *string                 `xml:"ReplicationGroupId"`
	ReplicationGroupDescription *string                 `xml:"ReplicationGroupDescription"`
	CacheClusterId              *string                 `xml:"CacheClusterId"`
	SnapshotStatus              *string                 `xml:"SnapshotStatus"`
	SnapshotSource              *string                 `xml:"SnapshotSource"`
	CacheNodeType               *string                 `xml:"CacheNodeType"`
	Engine                      *string                 `xml:"Engine"`
	EngineVersion               *string                 `xml:"EngineVersion"`
	NumCacheNodes               *int32                  `xml:"NumCacheNodes"`
	PreferredAvailabilityZone   *string                 `xml:"PreferredAvailabilityZone"`
	CacheClusterCreateTime      *time.Time              `xml:"CacheClusterCreateTime"`
	PreferredMaintenanceWindow  *string                 `xml:"PreferredMaintenanceWindow"`
	TopicArn                    *string                 `xml:"TopicArn"`
	Port                        *int32                  `xml:"Port"`
	CacheParameterGroupName     *string                 `xml:"CacheParameterGroupName"`
	CacheSubnetGroupName        *string                 `xml:"CacheSubnetGroupName"`
	VpcId                       *string                 `xml:"VpcId"`
	AutoMinorVersionUpgrade     *bool                   `xml:"AutoMinorVersionUpgrade"`
	SnapshotRetentionLimit      *int32                  `xml:"SnapshotRetentionLimit"`
	SnapshotWindow              *string                 `xml:"SnapshotWindow"`
	NumNodeGroups               *int32                  `xml:"NumNodeGroups"`
	AutomaticFailover           AutomaticFailoverStatus `xml:"AutomaticFailover"`
	NodeSnapshots               []NodeSnapshot          `xml:"NodeSnapshots>NodeSnapshot"`
}

// ReshardingConfiguration places one shard during ModifyReplicationGroupShardConfiguration.
type ReshardingConfiguration struct {
	PreferredAvailabilityZones []string `member:"AvailabilityZone"`
}
