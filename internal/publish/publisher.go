// Package publish streams generated datasets to Kafka.
package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/domain"
	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/events"
	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/logger"
	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/observability"
)

// MessageWriter is the subset of KafkaProducer the Publisher needs.
type MessageWriter interface {
	WriteMessages(context.Context, string, ...kafka.Message) error
}

// Config names the destination topics and batch size.
type Config struct {
	RecordsTopic string
	EventsTopic  string
	BatchSize    int
}

// Option configures optional behaviour for the Publisher.
type Option func(*Publisher)

// WithLogger overrides the logger used to report progress.
func WithLogger(l *logger.Logger) Option {
	return func(p *Publisher) {
		p.logger = l
	}
}

// Publisher writes every record of a dataset, keyed by user, followed by a summary event.
type Publisher struct {
	writer MessageWriter
	cfg    Config
	logger *logger.Logger
}

// NewPublisher constructs a Publisher.
func NewPublisher(writer MessageWriter, cfg Config, opts ...Option) *Publisher {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 500
	}
	p := &Publisher{
		writer: writer,
		cfg:    cfg,
		logger: logger.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish sends all records in batches, then the DatasetGenerated event.
// Records of one user share a partition key so they stay ordered by date.
func (p *Publisher) Publish(ctx context.Context, run domain.Run, ds *domain.Dataset) error {
	batch := make([]kafka.Message, 0, p.cfg.BatchSize)
	sent := 0
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := p.writer.WriteMessages(ctx, p.cfg.RecordsTopic, batch...); err != nil {
			return fmt.Errorf("publish records (offset=%d): %w", sent, err)
		}
		sent += len(batch)
		observability.RecordSinkWrite("kafka", len(batch))
		batch = make([]kafka.Message, 0, p.cfg.BatchSize)
		return nil
	}

	for i := range ds.Records {
		msg, err := recordMessage(run.ID, &ds.Records[i])
		if err != nil {
			return err
		}
		batch = append(batch, msg)
		if len(batch) == p.cfg.BatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := flush(); err != nil {
		return err
	}
	p.logger.Debug("records published", "run_id", run.ID, "topic", p.cfg.RecordsTopic, "count", sent)

	summary, err := summaryMessage(run, ds, p.cfg.RecordsTopic)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, p.cfg.EventsTopic, summary); err != nil {
		return fmt.Errorf("publish dataset event: %w", err)
	}
	p.logger.Info("dataset published", "run_id", run.ID, "records", sent, "events_topic", p.cfg.EventsTopic)
	return nil
}

func recordMessage(runID string, r *domain.DailyRecord) (kafka.Message, error) {
	payload := events.DailyRecordGenerated{
		RunID:             runID,
		Date:              r.Date.Format(domain.DateLayout),
		UserID:            r.UserID,
		Gender:            string(r.Gender),
		Age:               r.Age,
		HeightCM:          r.HeightCM,
		WeightKG:          r.WeightKG,
		Steps:             r.Steps,
		ActiveMinutes:     r.ActiveMinutes,
		CaloriesBurned:    r.CaloriesBurned,
		RestingHeartRate:  r.RestingHeartRate,
		SleepHours:        r.SleepHours,
		StressLevel:       string(r.StressLevel),
		DietQuality:       string(r.DietQuality),
		WaterIntakeLiters: r.WaterIntakeLiters,
		FitnessScore:      r.FitnessScore,
		WeightChangeKG:    r.WeightChangeKG,
	}
	if r.GoalAchieved {
		payload.GoalAchieved = 1
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:     []byte(strconv.Itoa(r.UserID)),
		Value:   body,
		Headers: headers(events.TypeDailyRecordGenerated, runID),
	}, nil
}

func summaryMessage(run domain.Run, ds *domain.Dataset, recordsTopic string) (kafka.Message, error) {
	missing := make(map[string]int, len(domain.MissingColumns))
	for _, column := range domain.MissingColumns {
		missing[column] = ds.MissingCount(column)
	}
	body, err := json.Marshal(events.DatasetGenerated{
		RunID:        run.ID,
		Seed:         run.Seed,
		Users:        ds.Users(),
		Days:         ds.Days(),
		StartDate:    run.StartDate.Format(domain.DateLayout),
		Rows:         len(ds.Records),
		MissingCells: missing,
		OutlierRows:  len(ds.OutlierRows),
		RecordsTopic: recordsTopic,
		GeneratedAt:  run.CreatedAt,
	})
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:     []byte(run.ID),
		Value:   body,
		Time:    time.Now().UTC(),
		Headers: headers(events.TypeDatasetGenerated, run.ID),
	}, nil
}

func headers(eventType, runID string) []kafka.Header {
	return []kafka.Header{
		{Key: "event_type", Value: []byte(eventType)},
		{Key: "run_id", Value: []byte(runID)},
	}
}
