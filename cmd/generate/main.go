package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/config"
	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/domain"
	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/export"
	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/generator"
	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/logger"
	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/observability"
	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/persistence/postgres"
	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/publish"
)

func main() {
	cfg := config.Load()
	params := cfg.Params()
	run := domain.NewRun(params.Seed, params.Users, params.Days, params.StartDate, params.MissingFraction, params.OutlierFraction)

	log, err := logger.New(cfg.LoggerOptions("run_id", run.ID))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = generate(ctx, cfg, run, log, os.Stdout)
	stop()
	if err != nil {
		log.Error("generation run failed", "error", err)
	}
	log.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// generate writes the dataset file, feeds the configured sinks and pushes metrics.
// Metrics are pushed even when a sink fails.
func generate(ctx context.Context, cfg config.Config, run domain.Run, log *logger.Logger, stdout io.Writer) error {
	format := export.FormatFromPath(cfg.OutputPath)
	if cfg.OutputFormat != "" {
		var err error
		if format, err = export.ParseFormat(cfg.OutputFormat); err != nil {
			return err
		}
	}

	start := time.Now()
	ds, err := generator.Generate(cfg.Params())
	if err != nil {
		return fmt.Errorf("generate dataset: %w", err)
	}
	log.Info("dataset generated",
		"users", ds.Users(),
		"days", ds.Days(),
		"rows", len(ds.Records),
		"outliers", len(ds.OutlierRows),
		"seed", run.Seed,
		"elapsed", time.Since(start),
	)

	if err := export.WriteFile(cfg.OutputPath, format, ds); err != nil {
		return fmt.Errorf("write %s: %w", cfg.OutputPath, err)
	}
	observability.RecordSinkWrite(string(format), len(ds.Records))
	if err := export.Preview(stdout, cfg.OutputPath, ds, cfg.PreviewRows); err != nil {
		log.Warn("preview failed", "error", err)
	}

	sinkCtx, cancel := context.WithTimeout(ctx, cfg.SinkTimeout)
	defer cancel()

	sinkErr := runSinks(sinkCtx, cfg, run, ds, log)
	if sinkErr == nil {
		observability.RecordRunCompleted(time.Now())
	}
	if err := observability.Push(sinkCtx, cfg.PushgatewayURL, run.ID); err != nil {
		log.Warn("metrics push failed", "error", err)
	}
	return sinkErr
}

// runSinks feeds every enabled sink, continuing past failures.
func runSinks(ctx context.Context, cfg config.Config, run domain.Run, ds *domain.Dataset, log *logger.Logger) error {
	var errs []error

	if cfg.PostgresURL != "" {
		if err := saveToPostgres(ctx, cfg.PostgresURL, run, ds); err != nil {
			errs = append(errs, fmt.Errorf("postgres sink: %w", err))
		} else {
			log.Info("dataset stored in postgres", "rows", len(ds.Records))
		}
	}

	if len(cfg.KafkaBrokers) > 0 {
		if err := publishToKafka(ctx, cfg, run, ds, log); err != nil {
			errs = append(errs, fmt.Errorf("kafka sink: %w", err))
		}
	}

	return errors.Join(errs...)
}

func saveToPostgres(ctx context.Context, url string, run domain.Run, ds *domain.Dataset) error {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := postgres.NewRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}
	return repo.SaveDataset(ctx, run, ds)
}

func publishToKafka(ctx context.Context, cfg config.Config, run domain.Run, ds *domain.Dataset, log *logger.Logger) error {
	producer := publish.NewKafkaProducer(cfg.KafkaBrokers,
		publish.WithBatchSize(cfg.PublishBatchSize),
		publish.WithProducerLogger(log),
	)
	publisher := publish.NewPublisher(producer, publish.Config{
		RecordsTopic: cfg.RecordsTopic,
		EventsTopic:  cfg.EventsTopic,
		BatchSize:    cfg.PublishBatchSize,
	}, publish.WithLogger(log))

	err := publisher.Publish(ctx, run, ds)
	if closeErr := producer.Close(); closeErr != nil {
		log.Warn("kafka producer close failed", "error", closeErr)
	}
	return err
}
