package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aokabi/slack-export/internal/exporter"
	"github.com/aokabi/slack-export/internal/storage"
	"github.com/aokabi/slack-export/pkg/config"
)

const dateLayout = "2006-01-02"

var (
	endDate    string
	outputPath string
	configPath string
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	rootCmd := &cobra.Command{
		Use:   "slack-export <channel> <start-date>",
		Short: "Export a Slack channel's message history, threads included, to a JSON file",
		Long: `Export the full message history of one Slack channel over a date range
into a self-contained JSON document with resolved user names.

The channel may be given as a raw ID or as an archive URL. Dates are
YYYY-MM-DD and interpreted in the configured timezone (Asia/Tokyo by
default). The Slack token is read from SLACK_TOKEN (a .env file is
honored) or from the config file.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), logger, args[0], args[1])
		},
	}

	rootCmd.Flags().StringVarP(&endDate, "end-date", "e", "", "export end date (YYYY-MM-DD, defaults to today)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file name (defaults to <channel>-<YYYYMMDD>-<HHMMSS>.json)")
	rootCmd.Flags().StringVar(&configPath, "config", "config.yaml", "configuration file path")

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Export failed", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger, channelArg, startDate string) error {
	// Load SLACK_TOKEN from a .env file if present
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	if _, err := time.Parse(dateLayout, startDate); err != nil {
		return fmt.Errorf("start date must be YYYY-MM-DD: %w", err)
	}

	channelID := exporter.ExtractChannelID(channelArg)
	if channelID != channelArg {
		logger.Info("Extracted channel ID from archive URL",
			zap.String("channel_id", channelID))
	}

	store := storage.NewMemoryStore()
	defer store.Close()

	exp, err := exporter.New(slack.New(cfg.Slack.Token), store, cfg, logger)
	if err != nil {
		return err
	}

	now := time.Now().In(exp.Location())
	if endDate == "" {
		endDate = now.Format(dateLayout)
		logger.Info("End date not specified, using today",
			zap.String("end_date", endDate))
	} else if _, err := time.Parse(dateLayout, endDate); err != nil {
		return fmt.Errorf("end date must be YYYY-MM-DD: %w", err)
	}

	outFile := exporter.OutputFilename(channelID, outputPath, now)

	logger.Info("Starting export",
		zap.String("run_id", uuid.New().String()),
		zap.String("channel_id", channelID),
		zap.String("start_date", startDate),
		zap.String("end_date", endDate),
		zap.String("output", outFile))

	return exp.Run(ctx, channelID, startDate, endDate, outFile)
}
