package elasticache

import (
	"github.com/Laisky/cloudsdk/apierror"
)

// Typed errors. Each embeds the decoded *apierror.ServiceError, so code,
// message, fault, status and request id stay reachable through errors.As.
type (
	// CacheClusterAlreadyExistsFault: the cluster id is already in use.
	CacheClusterAlreadyExistsFault struct{ *apierror.ServiceError }
	// CacheClusterNotFoundFault: the cluster does not exist.
	CacheClusterNotFoundFault             struct{ *apierror.ServiceError }
	CacheParameterGroupAlreadyExistsFault struct{ *apierror.ServiceError }
	CacheParameterGroupNotFoundFault      struct{ *apierror.ServiceError }
	CacheParameterGroupQuotaExceededFault struct{ *apierror.ServiceError }
	CacheSecurityGroupAlreadyExistsFault  struct{ *apierror.ServiceError }
	CacheSecurityGroupNotFoundFault       struct{ *apierror.ServiceError }
	CacheSecurityGroupQuotaExceededFault  struct{ *apierror.ServiceError }
	CacheSubnetGroupAlreadyExistsFault    struct{ *apierror.ServiceError }
	// CacheSubnetGroupInUse: the subnet group is still used by a cluster.
	CacheSubnetGroupInUse                 struct{ *apierror.ServiceError }
	CacheSubnetGroupNotFoundFault         struct{ *apierror.ServiceError }
	CacheSubnetGroupQuotaExceededFault    struct{ *apierror.ServiceError }
	CacheSubnetQuotaExceededFault         struct{ *apierror.ServiceError }
	AuthorizationAlreadyExistsFault       struct{ *apierror.ServiceError }
	AuthorizationNotFoundFault            struct{ *apierror.ServiceError }
	ClusterQuotaForCustomerExceededFault  struct{ *apierror.ServiceError }
	InsufficientCacheClusterCapacityFault struct{ *apierror.ServiceError }
	InvalidARNFault                       struct{ *apierror.ServiceError }
	// InvalidCacheClusterStateFault: the cluster is not in the available state.
	InvalidCacheClusterStateFault                   struct{ *apierror.ServiceError }
	InvalidCacheParameterGroupStateFault            struct{ *apierror.ServiceError }
	InvalidCacheSecurityGroupStateFault             struct{ *apierror.ServiceError }
	InvalidParameterCombinationException            struct{ *apierror.ServiceError }
	InvalidParameterValueException                  struct{ *apierror.ServiceError }
	InvalidReplicationGroupStateFault               struct{ *apierror.ServiceError }
	InvalidSnapshotStateFault                       struct{ *apierror.ServiceError }
	InvalidSubnet                                   struct{ *apierror.ServiceError }
	InvalidVPCNetworkStateFault                     struct{ *apierror.ServiceError }
	NodeGroupNotFoundFault                          struct{ *apierror.ServiceError }
	NodeGroupsPerReplicationGroupQuotaExceededFault struct{ *apierror.ServiceError }
	NodeQuotaForClusterExceededFault                struct{ *apierror.ServiceError }
	NodeQuotaForCustomerExceededFault               struct{ *apierror.ServiceError }
	ReplicationGroupAlreadyExistsFault              struct{ *apierror.ServiceError }
	ReplicationGroupNotFoundFault                   struct{ *apierror.ServiceError }
	ReservedCacheNodeAlreadyExistsFault             struct{ *apierror.ServiceError }
	ReservedCacheNodeNotFoundFault                  struct{ *apierror.ServiceError }
	ReservedCacheNodeQuotaExceededFault             struct{ *apierror.ServiceError }
	ReservedCacheNodesOfferingNotFoundFault         struct{ *apierror.ServiceError }
	SnapshotAlreadyExistsFault                      struct{ *apierror.ServiceError }
	// SnapshotFeatureNotSupportedFault: snapshots are not supported for the engine or node type.
	SnapshotFeatureNotSupportedFault struct{ *apierror.ServiceError }
	SnapshotNotFoundFault            struct{ *apierror.ServiceError }
	SnapshotQuotaExceededFault       struct{ *apierror.ServiceError }
	SubnetInUse                      struct{ *apierror.ServiceError }
	TagNotFoundFault                 struct{ *apierror.ServiceError }
	// TagQuotaPerResourceExceeded: the resource already carries 50 tags.
	TagQuotaPerResourceExceeded   struct{ *apierror.ServiceError }
	TestFailoverNotAvailableFault struct{ *apierror.ServiceError }
	// APICallRateForCustomerExceededFault: the account is being throttled.
	APICallRateForCustomerExceededFault struct{ *apierror.ServiceError }
)

// errorRegistry maps error codes to typed errors, in lookup order.
var errorRegistry = apierror.NewRegistry().
	Register("CacheClusterAlreadyExists", func(b *apierror.ServiceError) error { return &CacheClusterAlreadyExistsFault{b} }).
	Register("CacheClusterNotFound", func(b *apierror.ServiceError) error { return &CacheClusterNotFoundFault{b} }).
	Register("CacheParameterGroupAlreadyExists", func(b *apierror.ServiceError) error { return &CacheParameterGroupAlreadyExistsFault{b} }).
	Register("CacheParameterGroupNotFound", func(b *apierror.ServiceError) error { return &CacheParameterGroupNotFoundFault{b} }).
	Register("CacheParameterGroupQuotaExceeded", func(b *apierror.ServiceError) error { return &CacheParameterGroupQuotaExceededFault{b} }).
	Register("CacheSecurityGroupAlreadyExists", func(b *apierror.ServiceError) error { return &CacheSecurityGroupAlreadyExistsFault{b} }).
	Register("CacheSecurityGroupNotFound", func(b *apierror.ServiceError) error { return &CacheSecurityGroupNotFoundFault{b} }).
	Register("QuotaExceeded.CacheSecurityGroup", func(b *apierror.ServiceError) error { return &CacheSecurityGroupQuotaExceededFault{b} }).
	Register("CacheSubnetGroupAlreadyExists", func(b *apierror.ServiceError) error { return &CacheSubnetGroupAlreadyExistsFault{b} }).
	Register("CacheSubnetGroupInUse", func(b *apierror.ServiceError) error { return &CacheSubnetGroupInUse{b} }).
	Register("CacheSubnetGroupNotFoundFault", func(b *apierror.ServiceError) error { return &CacheSubnetGroupNotFoundFault{b} }).
	Register("CacheSubnetGroupQuotaExceeded", func(b *apierror.ServiceError) error { return &CacheSubnetGroupQuotaExceededFault{b} }).
	Register("CacheSubnetQuotaExceededFault", func(b *apierror.ServiceError) error { return &CacheSubnetQuotaExceededFault{b} }).
	Register("AuthorizationAlreadyExists", func(b *apierror.ServiceError) error { return &AuthorizationAlreadyExistsFault{b} }).
	Register("AuthorizationNotFound", func(b *apierror.ServiceError) error { return &AuthorizationNotFoundFault{b} }).
	Register("ClusterQuotaForCustomerExceeded", func(b *apierror.ServiceError) error { return &ClusterQuotaForCustomerExceededFault{b} }).
	Register("InsufficientCacheClusterCapacity", func(b *apierror.ServiceError) error { return &InsufficientCacheClusterCapacityFault{b} }).
	Register("InvalidARN", func(b *apierror.ServiceError) error { return &InvalidARNFault{b} }).
	Register("InvalidCacheClusterState", func(b *apierror.ServiceError) error { return &InvalidCacheClusterStateFault{b} }).
	Register("InvalidCacheParameterGroupState", func(b *apierror.ServiceError) error { return &InvalidCacheParameterGroupStateFault{b} }).
	Register("InvalidCacheSecurityGroupState", func(b *apierror.ServiceError) error { return &InvalidCacheSecurityGroupStateFault{b} }).
	Register("InvalidParameterCombination", func(b *apierror.ServiceError) error { return &InvalidParameterCombinationException{b} }).
	Register("InvalidParameterValue", func(b *apierror.ServiceError) error { return &InvalidParameterValueException{b} }).
	Register("InvalidReplicationGroupState", func(b *apierror.ServiceError) error { return &InvalidReplicationGroupStateFault{b} }).
	Register("InvalidSnapshotState", func(b *apierror.ServiceError) error { return &InvalidSnapshotStateFault{b} }).
	Register("InvalidSubnet", func(b *apierror.ServiceError) error { return &InvalidSubnet{b} }).
	Register("InvalidVPCNetworkStateFault", func(b *apierror.ServiceError) error { return &InvalidVPCNetworkStateFault{b} }).
	Register("NodeGroupNotFoundFault", func(b *apierror.ServiceError) error { return &NodeGroupNotFoundFault{b} }).
	Register("NodeGroupsPerReplicationGroupQuotaExceeded", func(b *apierror.ServiceError) error { return &NodeGroupsPerReplicationGroupQuotaExceededFault{b} }).
	Register("NodeQuotaForClusterExceeded", func(b *apierror.ServiceError) error { return &NodeQuotaForClusterExceededFault{b} }).
	Register("NodeQuotaForCustomerExceeded", func(b *apierror.ServiceError) error { return &NodeQuotaForCustomerExceededFault{b} }).
	Register("ReplicationGroupAlreadyExists", func(b *apierror.ServiceError) error { return &ReplicationGroupAlreadyExistsFault{b} }).
	Register("ReplicationGroupNotFoundFault", func(b *apierror.ServiceError) error { return &ReplicationGroupNotFoundFault{b} }).
	Register("ReservedCacheNodeAlreadyExists", func(b *apierror.ServiceError) error { return &ReservedCacheNodeAlreadyExistsFault{b} }).
	Register("ReservedCacheNodeNotFound", func(b *apierror.ServiceError) error { return &ReservedCacheNodeNotFoundFault{b} }).
	Register("ReservedCacheNodeQuotaExceeded", func(b *apierror.ServiceError) error { return &ReservedCacheNodeQuotaExceededFault{b} }).
	Register("ReservedCacheNodesOfferingNotFound", func(b *apierror.ServiceError) error { return &ReservedCacheNodesOfferingNotFoundFault{b} }).
	Register("SnapshotAlreadyExistsFault", func(b *apierror.ServiceError) error { return &SnapshotAlreadyExistsFault{b} }).
	Register("SnapshotFeatureNotSupportedFault", func(b *apierror.ServiceError) error { return &SnapshotFeatureNotSupportedFault{b} }).
	Register("SnapshotNotFoundFault", func(b *apierror.ServiceError) error { return &SnapshotNotFoundFault{b} }).
	Register("SnapshotQuotaExceededFault", func(b *apierror.ServiceError) error { return &SnapshotQuotaExceededFault{b} }).
	Register("SubnetInUse", func(b *apierror.ServiceError) error { return &SubnetInUse{b} }).
	Register("TagNotFound", func(b *apierror.ServiceError) error { return &TagNotFoundFault{b} }).
	Register("TagQuotaPerResource.Exceeded", func(b *apierror.ServiceError) error { return &TagQuotaPerResourceExceeded{b} }).
	Register("TestFailoverNotAvailableFault", func(b *apierror.ServiceError) error { return &TestFailoverNotAvailableFault{b} }).
	Register("APICallRateForCustomerExceeded", func(b *apierror.ServiceError) error { return &APICallRateForCustomerExceededFault{b} })

// ErrorCodes lists the codes that map to typed errors, in lookup order.
func ErrorCodes() []string { return errorRegistry.Codes() }
