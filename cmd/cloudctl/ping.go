package main

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Laisky/cloudsdk/common"
	"github.com/Laisky/cloudsdk/service/elasticache"
)

type pingResult struct {
	Node    string `json:"node"`
	Address string `json:"address"`
	OK      bool   `json:"ok"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

type pingOptions struct {
	password string
	tls      bool
	timeout  time.Duration
}

func newPingCmd(a *app) *cobra.Command {
	var opts pingOptions
	cmd := &cobra.Command{
		Use:   "ping CLUSTER_ID",
		Short: "Send a redis PING to every node of a cluster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clusters, err := listClusters(cmd.Context(), a.ec, &elasticache.DescribeCacheClustersInput{
				CacheClusterId:    aws.String(args[0]),
				ShowCacheNodeInfo: aws.Bool(true),
			})
			if err != nil {
				return err
			}
			if len(clusters) == 0 {
				return errors.Errorf("cluster %s not found", args[0])
			}
			cluster := clusters[0]
			if engine := aws.ToString(cluster.Engine); engine != "redis" && engine != "valkey" {
				return errors.Errorf("cluster %s runs %s, ping needs redis", args[0], engine)
			}

			results := pingNodes(cmd.Context(), cluster.CacheNodes, opts)

			failed := 0
			t := table{header: []string{"node", "address", "ok", "latency", "error"}}
			for _, r := range results {
				if !r.OK {
					failed++
					a.logger.Warn("ping failed", zap.String("node", r.Node), zap.String("error", r.Error))
				}
				t.rows = append(t.rows, []string{r.Node, r.Address, strconv.FormatBool(r.OK), r.Latency, r.Error})
			}
			if err := render(cmd.OutOrStdout(), a.output, results, t); err != nil {
				return err
			}
			if failed > 0 {
				return errors.Errorf("%d of %d nodes did not answer", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.password, "password", "", "AUTH token")
	cmd.Flags().BoolVar(&opts.tls, "tls", false, "connect with in-transit encryption")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 5*time.Second, "per node timeout")
	return cmd
}

// pingNodes pings all nodes at once. Results keep the order of nodes.
func pingNodes(ctx context.Context, nodes []elasticache.CacheNode, opts pingOptions) []pingResult {
	results := make([]pingResult, len(nodes))
	var g errgroup.Group
	for i, node := range nodes {
		g.Go(func() error {
			results[i] = pingNode(ctx, node, opts)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func pingNode(ctx context.Context, node elasticache.CacheNode, opts pingOptions) pingResult {
	r := pingResult{Node: aws.ToString(node.CacheNodeId)}
	if node.Endpoint == nil || node.Endpoint.Address == nil {
		r.Error = "no endpoint"
		return r
	}
	host := aws.ToString(node.Endpoint.Address)
	r.Address = net.JoinHostPort(host, strconv.Itoa(int(aws.ToInt32(node.Endpoint.Port))))

	rdb, err := common.NewRedisClient(common.RedisNodeOptions{
		Addr:     r.Address,
		Password: opts.password,
		TLS:      opts.tls,
		Timeout:  opts.timeout,
	})
	if err != nil {
		r.Error = err.Error()
		return r
	}
	defer rdb.Close() // nolint: errcheck

	latency, err := common.RedisPing(ctx, rdb, opts.timeout)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.OK = true
	r.Latency = latency.Round(time.Microsecond).String()
	return r
}
