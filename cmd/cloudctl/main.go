// Command cloudctl inspects ElastiCache and Lex Model Building resources from
// the terminal. Settings come from flags, the environment and an optional .env
// file in the working directory.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v5/log"
	"github.com/Laisky/zap"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/Laisky/cloudsdk/common/config"
	"github.com/Laisky/cloudsdk/common/logger"
	"github.com/Laisky/cloudsdk/service/elasticache"
	"github.com/Laisky/cloudsdk/service/lexmodelbuilding"
	"github.com/Laisky/cloudsdk/transport"
)

type app struct {
	region      string
	endpointURL string
	output      string
	debug       bool

	logger glog.Logger
	ec     *elasticache.Client
	lex    *lexmodelbuilding.Client
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&app{}).ExecuteContext(ctx); err != nil {
		logger.Logger.Error("cloudctl failed", zap.Error(err))
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "cloudctl",
		Short:         "Inspect ElastiCache clusters and Lex bots",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.region, "region", config.DefaultRegion, "AWS region")
	flags.StringVar(&a.endpointURL, "endpoint-url", "", "send requests to this URL instead of the regional endpoint")
	flags.StringVarP(&a.output, "output", "o", formatTable, "output format: table, json or yaml")
	flags.BoolVar(&a.debug, "debug", config.DebugEnabled, "log every request")

	root.AddCommand(newElastiCacheCmd(a), newLexCmd(a))
	return root
}

// setup checks global flags and builds any client not already set.
func (a *app) setup(ctx context.Context) error {
	if err := checkFormat(a.output); err != nil {
		return err
	}
	if a.debug {
		config.DebugEnabled = true
	}
	logger.SetupLogger()
	a.logger = logger.Logger.Named("cloudctl")

	if a.ec != nil && a.lex != nil {
		return nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(a.region))
	if err != nil {
		return errors.Wrap(err, "load aws config")
	}
	withCLI := func(o *transport.Options) {
		o.Logger = a.logger
		if a.endpointURL != "" {
			o.BaseEndpoint = aws.String(a.endpointURL)
		}
	}

	if a.ec == nil {
		if a.ec, err = elasticache.NewFromConfig(cfg, withCLI); err != nil {
			return errors.Wrap(err, "new elasticache client")
		}
	}
	if a.lex == nil {
		if a.lex, err = lexmodelbuilding.NewFromConfig(cfg, withCLI); err != nil {
			return errors.Wrap(err, "new lex client")
		}
	}

	a.logger.Debug("clients ready",
		zap.String("region", a.region),
		zap.String("endpoint", a.endpointURL))
	return nil
}
