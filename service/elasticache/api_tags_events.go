package elasticache

import (
	"context"
	"time"

	"github.com/Laisky/cloudsdk/transport"
)

type AddTagsToResourceInput struct {
	// ResourceName is the ARN of a cluster or snapshot.
	ResourceName *string `validate:"required"`
	Tags         []Tag   `member:"Tag" validate:"required"`
}

type AddTagsToResourceOutput struct {
	transport.Metadata `xml:"-"`

	TagList []Tag `xml:"TagList>Tag"`
}

// AddTagsToResource adds or overwrites tags and returns the full tag list.
func (c *Client) AddTagsToResource(ctx context.Context, in *AddTagsToResourceInput) (*AddTagsToResourceOutput, error) {
	out := new(AddTagsToResourceOutput)
	if err := c.invoke(ctx, "AddTagsToResource", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type ListTagsForResourceInput struct {
	ResourceName *string `validate:"required"`
}

type ListTagsForResourceOutput struct {
	transport.Metadata `xml:"-"`

	TagList []Tag `xml:"TagList>Tag"`
}

func (c *Client) ListTagsForResource(ctx context.Context, in *ListTagsForResourceInput) (*ListTagsForResourceOutput, error) {
	out := new(ListTagsForResourceOutput)
	if err := c.invoke(ctx, "ListTagsForResource", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type RemoveTagsFromResourceInput struct {
	ResourceName *string  `validate:"required"`
	TagKeys      []string `validate:"required"`
}

type RemoveTagsFromResourceOutput struct {
	transport.Metadata `xml:"-"`

	TagList []Tag `xml:"TagList>Tag"`
}

func (c *Client) RemoveTagsFromResource(ctx context.Context, in *RemoveTagsFromResourceInput) (*RemoveTagsFromResourceOutput, error) {
	out := new(RemoveTagsFromResourceOutput)
	if err := c.invoke(ctx, "RemoveTagsFromResource", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DescribeEventsInput struct {
	SourceIdentifier *string
	SourceType       SourceType
	StartTime        *time.Time
	EndTime          *time.Time
	// Duration is in minutes, at most 14 days.
	Duration   *int32
	MaxRecords *int32
	Marker     *string
}

type DescribeEventsOutput struct {
	transport.Metadata `xml:"-"`

	Marker *string `xml:"Marker"`
	Events []Event `xml:"Events>Event"`
}

// DescribeEvents lists events of the last 14 days, newest first.
func (c *Client) DescribeEvents(ctx context.Context, in *DescribeEventsInput) (*DescribeEventsOutput, error) {
	out := new(DescribeEventsOutput)
	if err := c.invoke(ctx, "DescribeEvents", in, out); err != nil {
		return nil, err
	}
	return out, nil
}
