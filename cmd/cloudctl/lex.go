package main

import (
	"context"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"

	"github.com/Laisky/cloudsdk/common/config"
	"github.com/Laisky/cloudsdk/service/lexmodelbuilding"
)

func newLexCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lex",
		Short: "Amazon Lex model building",
	}
	cmd.AddCommand(newBotsCmd(a), newBotCmd(a), newIntentsCmd(a), newExportCmd(a))
	return cmd
}

func newBotsCmd(a *app) *cobra.Command {
	var nameContains string
	cmd := &cobra.Command{
		Use:   "bots",
		Short: "List bots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := &lexmodelbuilding.GetBotsInput{}
			if nameContains != "" {
				in.NameContains = aws.String(nameContains)
			}

			var bots []lexmodelbuilding.BotMetadata
			p := lexmodelbuilding.NewGetBotsPaginator(a.lex, in)
			for p.HasMorePages() {
				page, err := p.NextPage(cmd.Context())
				if err != nil {
					return errors.Wrap(err, "get bots")
				}
				bots = append(bots, page.Bots...)
			}

			t := table{header: []string{"name", "status", "version", "updated", "description"}}
			for _, b := range bots {
				t.rows = append(t.rows, []string{
					str(b.Name), string(b.Status), str(b.Version), stamp(b.LastUpdatedDate), str(b.Description),
				})
			}
			return render(cmd.OutOrStdout(), a.output, bots, t)
		},
	}
	cmd.Flags().StringVar(&nameContains, "name-contains", "", "substring of the bot name")
	return cmd
}

func newBotCmd(a *app) *cobra.Command {
	var version string
	cmd := &cobra.Command{
		Use:   "bot NAME",
		Short: "Show one bot version or alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bot, err := a.lex.GetBot(cmd.Context(), &lexmodelbuilding.GetBotInput{
				Name:           aws.String(args[0]),
				VersionOrAlias: aws.String(version),
			})
			if err != nil {
				return errors.Wrapf(err, "get bot %s", args[0])
			}

			intents := make([]string, 0, len(bot.Intents))
			for _, in := range bot.Intents {
				intents = append(intents, str(in.IntentName)+":"+str(in.IntentVersion))
			}
			t := table{header: []string{"field", "value"}, rows: [][]string{
				{"name", str(bot.Name)},
				{"version", str(bot.Version)},
				{"status", string(bot.Status)},
				{"locale", string(bot.Locale)},
				{"child directed", boolean(bot.ChildDirected)},
				{"idle session ttl", num(bot.IdleSessionTTLInSeconds)},
				{"intents", strings.Join(intents, ", ")},
				{"updated", stamp(bot.LastUpdatedDate)},
				{"checksum", str(bot.Checksum)},
			}}
			if bot.FailureReason != nil {
				t.rows = append(t.rows, []string{"failure reason", *bot.FailureReason})
			}
			return render(cmd.OutOrStdout(), a.output, bot, t)
		},
	}
	cmd.Flags().StringVar(&version, "version", "$LATEST", "version number or alias")
	return cmd
}

func newIntentsCmd(a *app) *cobra.Command {
	var nameContains string
	cmd := &cobra.Command{
		Use:   "intents",
		Short: "List intents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := &lexmodelbuilding.GetIntentsInput{}
			if nameContains != "" {
				in.NameContains = aws.String(nameContains)
			}

			var intents []lexmodelbuilding.IntentMetadata
			p := lexmodelbuilding.NewGetIntentsPaginator(a.lex, in)
			for p.HasMorePages() {
				page, err := p.NextPage(cmd.Context())
				if err != nil {
					return errors.Wrap(err, "get intents")
				}
				intents = append(intents, page.Intents...)
			}

			t := table{header: []string{"name", "version", "updated", "description"}}
			for _, it := range intents {
				t.rows = append(t.rows, []string{
					str(it.Name), str(it.Version), stamp(it.LastUpdatedDate), str(it.Description),
				})
			}
			return render(cmd.OutOrStdout(), a.output, intents, t)
		},
	}
	cmd.Flags().StringVar(&nameContains, "name-contains", "", "substring of the intent name")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var (
		version      string
		resourceType string
		exportType   string
		wait         bool
		interval     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "export NAME",
		Short: "Request an export and print its download URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := &lexmodelbuilding.GetExportInput{
				Name:         aws.String(args[0]),
				Version:      aws.String(version),
				ResourceType: lexmodelbuilding.ResourceType(strings.ToUpper(resourceType)),
				ExportType:   lexmodelbuilding.ExportType(strings.ToUpper(exportType)),
			}
			out, err := pollExport(cmd.Context(), a, in, wait, interval)
			if err != nil {
				return err
			}

			t := table{header: []string{"name", "version", "status", "url"}, rows: [][]string{{
				str(out.Name), str(out.Version), string(out.ExportStatus), str(out.URL),
			}}}
			if err := render(cmd.OutOrStdout(), a.output, out, t); err != nil {
				return err
			}
			if out.ExportStatus == lexmodelbuilding.ExportStatusFailed {
				return errors.Errorf("export failed: %s", str(out.FailureReason))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&version, "version", "1", "version to export, numbered only")
	cmd.Flags().StringVar(&resourceType, "resource-type", string(lexmodelbuilding.ResourceTypeBot), "BOT, INTENT or SLOT_TYPE")
	cmd.Flags().StringVar(&exportType, "export-type", string(lexmodelbuilding.ExportTypeLex), "LEX or ALEXA_SKILLS_KIT")
	cmd.Flags().BoolVar(&wait, "wait", false, "poll until the export is no longer in progress")
	cmd.Flags().DurationVar(&interval, "interval", config.WaiterPollInterval, "delay between polls")
	return cmd
}

// pollExport calls GetExport, repeating it while the export is in progress
// when wait is set.
func pollExport(ctx context.Context, a *app, in *lexmodelbuilding.GetExportInput,
	wait bool, interval time.Duration) (*lexmodelbuilding.GetExportOutput, error) {
	for {
		out, err := a.lex.GetExport(ctx, in)
		if err != nil {
			return nil, errors.Wrapf(err, "get export %s", aws.ToString(in.Name))
		}
		if !wait || out.ExportStatus != lexmodelbuilding.ExportStatusInProgress {
			return out, nil
		}

		a.logger.Debug("export in progress", zap.String("name", aws.ToString(in.Name)))
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "wait for export")
		case <-time.After(interval):
		}
	}
}
