package elasticache

import (
	"context"

	"github.com/Laisky/cloudsdk/transport"
)

type CopySnapshotInput struct {
	SourceSnapshotName *string `validate:"required"`
	TargetSnapshotName *string `validate:"required"`
	// TargetBucket exports the copy to an S3 bucket instead of keeping it in ElastiCache.
	TargetBucket *string
}

type CopySnapshotOutput struct {
	transport.Metadata `xml:"-"`

	Snapshot *Snapshot `xml:"Snapshot"`
}

func (c *Client) CopySnapshot(ctx context.Context, in *CopySnapshotInput) (*CopySnapshotOutput, error) {
	out := new(CopySnapshotOutput)
	if err := c.invoke(ctx, "CopySnapshot", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type CreateSnapshotInput struct {
	SnapshotName *string `validate:"required"`
	// One of CacheClusterId and ReplicationGroupId selects the source.
	CacheClusterId     *string
	ReplicationGroupId *string
}

type CreateSnapshotOutput struct {
	transport.Metadata `xml:"-"`

	Snapshot *Snapshot `xml:"Snapshot"`
}

func (c *Client) CreateSnapshot(ctx context.Context, in *CreateSnapshotInput) (*CreateSnapshotOutput, error) {
	out := new(CreateSnapshotOutput)
	if err := c.invoke(ctx, "CreateSnapshot", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteSnapshotInput struct {
	SnapshotName *string `validate:"required"`
}

type DeleteSnapshotOutput struct {
	transport.Metadata `xml:"-"`

	Snapshot *Snapshot `xml:"Snapshot"`
}

func (c *Client) DeleteSnapshot(ctx context.Context, in *DeleteSnapshotInput) (*DeleteSnapshotOutput, error) {
	out := new(DeleteSnapshotOutput)
	if err := c.invoke(ctx, "DeleteSnapshot", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DescribeSnapshotsInput struct {
	ReplicationGroupId *string
	CacheClusterId     *string
	SnapshotName       *string
	// SnapshotSource is user or system.
	SnapshotSource      *string
	Marker              *string
	MaxRecords          *int32
	ShowNodeGroupConfig *bool
}

type DescribeSnapshotsOutput struct {
	transport.Metadata `xml:"-"`

	Marker    *string    `xml:"Marker"`
	Snapshots []Snapshot `xml:"Snapshots>Snapshot"`
}

func (c *Client) DescribeSnapshots(ctx context.Context, in *DescribeSnapshotsInput) (*DescribeSnapshotsOutput, error) {
	out := new(DescribeSnapshotsOutput)
	if err := c.invoke(ctx, "DescribeSnapshots", in, out); err != nil {
		return nil, err
	}
	return out, nil
}
