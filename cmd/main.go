package main

import (
	"channel-report/contract"
	"channel-report/infrastructure/slackapi"
	"channel-report/internal"
	"channel-report/repositories"
	"channel-report/services"
	"channel-report/sink"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mama165/sdk-go/logs"
)

// Exit codes of the report generator.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
	}
	os.Exit(code)
}

// run wires the fetch layer, the staging store and the report engine,
// generates the report once and writes it out.
func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	oldest, err := config.OldestTime()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	allowList, err := internal.ReadAllowList(config.ChannelsFile)
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	// 2. Staging store, in memory only
	db, err := repositories.OpenInMemory()
	if err != nil {
		return exitRuntime, fmt.Errorf("staging store opening failed: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()
	messageRepository := repositories.NewMessageRepository(db, log)

	// 3. Slack client & report service
	client := slackapi.NewClient(config.SlackToken, slackapi.Options{
		PageLimit:         config.HistoryPageLimit,
		RequestsPerMinute: config.SlackRequestsPerMinute,
		MaxRetries:        config.SlackMaxRetries,
	}, log)
	reportService := services.NewReportService(client, messageRepository, log, allowList, oldest, config.FetchConcurrency)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Generate & write
	var reportSink contract.ReportSink = sink.NewFileSink(config.CSVPath, config.JSONPath, log)
	start := time.Now()
	log.Info("Generating report", "oldest", oldest.Format(time.DateOnly), "channels", len(allowList))
	table, err := reportService.Publish(ctx, start, reportSink)
	if err != nil {
		return exitRuntime, fmt.Errorf("report generation failed: %w", err)
	}

	// 6. Console preview
	if config.Preview {
		sink.Preview(os.Stdout, table)
	}
	log.Info("Report generated", "duration", time.Since(start).Round(time.Millisecond))
	return exitOK, nil
}
