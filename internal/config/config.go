// Package config centralises configuration parsing for the cohort generator.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/domain"
	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/generator"
	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/logger"
)

// Config captures runtime configuration values for the generator binaries.
type Config struct {
	Users           int
	Days            int
	StartDate       time.Time
	Seed            int64
	MissingFraction float64
	OutlierFraction float64
	OutputPath      string
	OutputFormat    string // empty means infer from OutputPath
	PreviewRows     int
	LogMode         string
	LogLevel        string // empty means the mode's default

	PostgresURL      string   // empty disables the Postgres sink
	KafkaBrokers     []string // empty disables the Kafka sink
	RecordsTopic     string
	EventsTopic      string
	PublishBatchSize int
	PushgatewayURL   string // empty disables the metrics push
	SinkTimeout      time.Duration
}

// Load reads an optional .env file and environment variables into Config.
// Defaults reproduce the reference dataset.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads Config from the process environment only.
func FromEnv() Config {
	defaults := generator.DefaultParams()
	return Config{
		Users:            getIntEnv("COHORT_USERS", defaults.Users),
		Days:             getIntEnv("COHORT_DAYS", defaults.Days),
		StartDate:        getDateEnv("COHORT_START_DATE", defaults.StartDate),
		Seed:             getInt64Env("COHORT_SEED", defaults.Seed),
		MissingFraction:  getFloatEnv("MISSING_FRACTION", defaults.MissingFraction),
		OutlierFraction:  getFloatEnv("OUTLIER_FRACTION", defaults.OutlierFraction),
		OutputPath:       getEnv("OUTPUT_PATH", "personal_fitness_data.csv"),
		OutputFormat:     getEnv("OUTPUT_FORMAT", ""),
		PreviewRows:      getIntEnv("PREVIEW_ROWS", 5),
		LogMode:          getEnv("LOG_MODE", "dev"),
		LogLevel:         getEnv("LOG_LEVEL", ""),
		PostgresURL:      getEnv("POSTGRES_URL", ""),
		KafkaBrokers:     splitAndTrim(getEnv("KAFKA_BROKERS", "")),
		RecordsTopic:     getEnv("KAFKA_RECORDS_TOPIC", "fitness_daily_records"),
		EventsTopic:      getEnv("KAFKA_EVENTS_TOPIC", "fitness_dataset_events"),
		PublishBatchSize: getIntEnv("PUBLISH_BATCH_SIZE", 500),
		PushgatewayURL:   getEnv("PUSHGATEWAY_URL", ""),
		SinkTimeout:      getDurationEnv("SINK_TIMEOUT", 2*time.Minute),
	}
}

// LoggerOptions maps the logging settings onto logger.Options.
func (c Config) LoggerOptions(fields ...interface{}) logger.Options {
	return logger.Options{Mode: c.LogMode, Level: c.LogLevel, Fields: fields}
}

// Params maps the configuration onto generator parameters.
func (c Config) Params() generator.Params {
	return generator.Params{
		Users:           c.Users,
		Days:            c.Days,
		StartDate:       c.StartDate,
		Seed:            c.Seed,
		MissingFraction: c.MissingFraction,
		OutlierFraction: c.OutlierFraction,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt64Env(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDateEnv(key string, fallback time.Time) time.Time {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.Parse(domain.DateLayout, value); err == nil {
			return parsed
		}
	}
	return fallback
}
