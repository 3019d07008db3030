package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"

	"github.com/Laisky/cloudsdk/common/config"
	"github.com/Laisky/cloudsdk/common/utils"
	"github.com/Laisky/cloudsdk/service/elasticache"
)

// maxEventDays is how far back DescribeEvents can look.
const maxEventDays = 14

func newElastiCacheCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "elasticache",
		Aliases: []string{"ec"},
		Short:   "Amazon ElastiCache",
	}
	cmd.AddCommand(
		newClustersCmd(a),
		newReplicationGroupsCmd(a),
		newSnapshotsCmd(a),
		newEventsCmd(a),
		newWaitCmd(a),
		newPingCmd(a),
	)
	return cmd
}

func newClustersCmd(a *app) *cobra.Command {
	var (
		id        string
		showNodes bool
	)
	cmd := &cobra.Command{
		Use:   "clusters",
		Short: "List cache clusters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := &elasticache.DescribeCacheClustersInput{ShowCacheNodeInfo: aws.Bool(showNodes)}
			if id != "" {
				in.CacheClusterId = aws.String(id)
			}
			clusters, err := listClusters(cmd.Context(), a.ec, in)
			if err != nil {
				return err
			}

			t := table{header: []string{"id", "engine", "version", "node type", "status", "nodes", "replication group"}}
			for _, c := range clusters {
				t.rows = append(t.rows, []string{
					str(c.CacheClusterId), str(c.Engine), str(c.EngineVersion), str(c.CacheNodeType),
					str(c.CacheClusterStatus), num(c.NumCacheNodes), str(c.ReplicationGroupId),
				})
			}
			return render(cmd.OutOrStdout(), a.output, clusters, t)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "only this cluster")
	cmd.Flags().BoolVar(&showNodes, "show-nodes", false, "include node endpoints")
	return cmd
}

func listClusters(ctx context.Context, client elasticache.DescribeCacheClustersAPIClient,
	in *elasticache.DescribeCacheClustersInput) ([]elasticache.CacheCluster, error) {
	var clusters []elasticache.CacheCluster
	p := elasticache.NewDescribeCacheClustersPaginator(client, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "describe cache clusters")
		}
		clusters = append(clusters, page.CacheClusters...)
	}
	return clusters, nil
}

func newReplicationGroupsCmd(a *app) *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:     "replication-groups",
		Aliases: []string{"rg"},
		Short:   "List replication groups",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := &elasticache.DescribeReplicationGroupsInput{}
			if id != "" {
				in.ReplicationGroupId = aws.String(id)
			}

			var groups []elasticache.ReplicationGroup
			p := elasticache.NewDescribeReplicationGroupsPaginator(a.ec, in)
			for p.HasMorePages() {
				page, err := p.NextPage(cmd.Context())
				if err != nil {
					return errors.Wrap(err, "describe replication groups")
				}
				groups = append(groups, page.ReplicationGroups...)
			}

			t := table{header: []string{"id", "status", "failover", "shards", "members", "description"}}
			for _, g := range groups {
				t.rows = append(t.rows, []string{
					str(g.ReplicationGroupId), str(g.Status), string(g.AutomaticFailover),
					strconv.Itoa(len(g.NodeGroups)), strings.Join(g.MemberClusters, ","), str(g.Description),
				})
			}
			return render(cmd.OutOrStdout(), a.output, groups, t)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "only this replication group")
	return cmd
}

func newSnapshotsCmd(a *app) *cobra.Command {
	var in elasticache.DescribeSnapshotsInput
	var cluster, group, source string
	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "List snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cluster != "" {
				in.CacheClusterId = aws.String(cluster)
			}
			if group != "" {
				in.ReplicationGroupId = aws.String(group)
			}
			if source != "" {
				in.SnapshotSource = aws.String(source)
			}

			var snapshots []elasticache.Snapshot
			p := elasticache.NewDescribeSnapshotsPaginator(a.ec, &in)
			for p.HasMorePages() {
				page, err := p.NextPage(cmd.Context())
				if err != nil {
					return errors.Wrap(err, "describe snapshots")
				}
				snapshots = append(snapshots, page.Snapshots...)
			}

			t := table{header: []string{"name", "cluster", "replication group", "status", "source", "engine"}}
			for _, s := range snapshots {
				t.rows = append(t.rows, []string{
					str(s.SnapshotName), str(s.CacheClusterId), str(s.ReplicationGroupId),
					str(s.SnapshotStatus), str(s.SnapshotSource), str(s.Engine),
				})
			}
			return render(cmd.OutOrStdout(), a.output, snapshots, t)
		},
	}
	cmd.Flags().StringVar(&cluster, "cluster", "", "snapshots of this cluster")
	cmd.Flags().StringVar(&group, "replication-group", "", "snapshots of this replication group")
	cmd.Flags().StringVar(&source, "source", "", "user or system")
	return cmd
}

func newEventsCmd(a *app) *cobra.Command {
	var from, to, sourceType, sourceID string
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List events between two days, both inclusive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := eventsInput(from, to, sourceType, sourceID, time.Now())
			if err != nil {
				return err
			}

			var events []elasticache.Event
			p := elasticache.NewDescribeEventsPaginator(a.ec, in)
			for p.HasMorePages() {
				page, err := p.NextPage(cmd.Context())
				if err != nil {
					return errors.Wrap(err, "describe events")
				}
				events = append(events, page.Events...)
			}

			t := table{header: []string{"date", "source type", "source", "message"}}
			for _, e := range events {
				t.rows = append(t.rows, []string{
					stamp(e.Date), string(e.SourceType), str(e.SourceIdentifier), str(e.Message),
				})
			}
			return render(cmd.OutOrStdout(), a.output, events, t)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first day, YYYY-MM-DD, defaults to today")
	cmd.Flags().StringVar(&to, "to", "", "last day, YYYY-MM-DD, defaults to today")
	cmd.Flags().StringVar(&sourceType, "source-type", "", "cache-cluster, replication-group, ...")
	cmd.Flags().StringVar(&sourceID, "source-id", "", "only events of this resource")
	return cmd
}

// eventsInput turns the day flags into a time window. The window ends at now
// when the last day is today.
func eventsInput(from, to, sourceType, sourceID string, now time.Time) (*elasticache.DescribeEventsInput, error) {
	today := now.UTC().Format("2006-01-02")
	if from == "" {
		from = today
	}
	if to == "" {
		to = today
	}
	start, end, err := utils.NormalizeDateRange(from, to, maxEventDays)
	if err != nil {
		return nil, errors.Wrap(err, "parse --from/--to")
	}
	if end.After(now) {
		end = now.UTC()
	}
	if !start.Before(end) {
		return nil, errors.Errorf("--from %s is in the future", from)
	}

	in := &elasticache.DescribeEventsInput{
		StartTime:  aws.Time(start),
		EndTime:    aws.Time(end),
		SourceType: elasticache.SourceType(sourceType),
	}
	if sourceID != "" {
		in.SourceIdentifier = aws.String(sourceID)
	}
	return in, nil
}

func newWaitCmd(a *app) *cobra.Command {
	var (
		replicationGroups bool
		deleted           bool
		concurrency       int
		maxWait           time.Duration
		interval          time.Duration
	)
	cmd := &cobra.Command{
		Use:   "wait ID...",
		Short: "Block until clusters or replication groups are available or deleted",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			optFns := []func(*elasticache.WaiterOptions){func(o *elasticache.WaiterOptions) {
				o.Logger = a.logger
				if interval > 0 {
					o.MinDelay = interval
				}
				if o.MaxDelay < o.MinDelay {
					o.MaxDelay = o.MinDelay
				}
			}}
			waitOne := waitFunc(a.ec, replicationGroups, deleted, maxWait, optFns)

			start := time.Now()
			err := elasticache.WaitForAll(cmd.Context(), args, concurrency, func(ctx context.Context, id string) error {
				if err := waitOne(ctx, id); err != nil {
					return err
				}
				a.logger.Info("resource ready", zap.String("id", id), zap.Duration("elapsed", time.Since(start)))
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d resource(s) done in %s\n", len(args), time.Since(start).Round(time.Second))
			return nil
		},
	}
	cmd.Flags().BoolVar(&replicationGroups, "replication-groups", false, "ids are replication groups")
	cmd.Flags().BoolVar(&deleted, "deleted", false, "wait for deletion instead of availability")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "resources polled at once, 0 for all")
	cmd.Flags().DurationVar(&maxWait, "max-wait", config.WaiterMaxWait, "give up after this long")
	cmd.Flags().DurationVar(&interval, "interval", 0, "first delay between polls")
	return cmd
}

type describeAPI interface {
	elasticache.DescribeCacheClustersAPIClient
	elasticache.DescribeReplicationGroupsAPIClient
}

func waitFunc(client describeAPI, replicationGroups, deleted bool, maxWait time.Duration,
	optFns []func(*elasticache.WaiterOptions)) func(context.Context, string) error {
	switch {
	case replicationGroups && deleted:
		w := elasticache.NewReplicationGroupDeletedWaiter(client, optFns...)
		return func(ctx context.Context, id string) error {
			return w.Wait(ctx, &elasticache.DescribeReplicationGroupsInput{ReplicationGroupId: aws.String(id)}, maxWait)
		}
	case replicationGroups:
		w := elasticache.NewReplicationGroupAvailableWaiter(client, optFns...)
		return func(ctx context.Context, id string) error {
			return w.Wait(ctx, &elasticache.DescribeReplicationGroupsInput{ReplicationGroupId: aws.String(id)}, maxWait)
		}
	case deleted:
		w := elasticache.NewCacheClusterDeletedWaiter(client, optFns...)
		return func(ctx context.Context, id string) error {
			return w.Wait(ctx, &elasticache.DescribeCacheClustersInput{CacheClusterId: aws.String(id)}, maxWait)
		}
	default:
		w := elasticache.NewCacheClusterAvailableWaiter(client, optFns...)
		return func(ctx context.Context, id string) error {
			return w.Wait(ctx, &elasticache.DescribeCacheClustersInput{CacheClusterId: aws.String(id)}, maxWait)
		}
	}
}
