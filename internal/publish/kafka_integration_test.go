//go:build integration

package publish

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	kafkaContainer "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/domain"
	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/events"
	"github.com/dipak1920basnet/Personal-Fitness-Data-Analysis/internal/generator"
)

func TestKafkaPublisherDeliversDataset(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
	defer cancel()

	kafkaC, err := kafkaContainer.RunContainer(ctx, testcontainers.WithEnv(map[string]string{
		"KAFKA_AUTO_CREATE_TOPICS_ENABLE": "true",
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kafkaC.Terminate(context.Background()) })

	brokers, err := kafkaC.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)

	conn, err := kafka.Dial("tcp", brokers[0])
	require.NoError(t, err)
	defer conn.Close()
	for _, topic := range []string{"records", "events"} {
		require.NoError(t, conn.CreateTopics(kafka.TopicConfig{
			Topic:             topic,
			NumPartitions:     1,
			ReplicationFactor: 1,
		}))
	}

	p := generator.DefaultParams()
	p.Users = 2
	p.Days = 5
	ds, err := generator.Generate(p)
	require.NoError(t, err)
	run := domain.NewRun(p.Seed, p.Users, p.Days, p.StartDate, p.MissingFraction, p.OutlierFraction)

	producer := NewKafkaProducer(brokers)
	t.Cleanup(func() { _ = producer.Close() })
	publisher := NewPublisher(producer, Config{RecordsTopic: "records", EventsTopic: "events", BatchSize: 3})
	require.NoError(t, publisher.Publish(ctx, run, ds))

	recordsReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    "records",
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer recordsReader.Close()

	for i := 0; i < len(ds.Records); i++ {
		msg, err := recordsReader.ReadMessage(ctx)
		require.NoError(t, err)
		var payload events.DailyRecordGenerated
		require.NoError(t, json.Unmarshal(msg.Value, &payload))
		require.Equal(t, run.ID, payload.RunID)
		require.Equal(t, ds.Records[i].UserID, payload.UserID)
	}

	eventsReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    "events",
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer eventsReader.Close()

	msg, err := eventsReader.ReadMessage(ctx)
	require.NoError(t, err)
	var summary events.DatasetGenerated
	require.NoError(t, json.Unmarshal(msg.Value, &summary))
	require.Equal(t, run.ID, summary.RunID)
	require.Equal(t, len(ds.Records), summary.Rows)
}
