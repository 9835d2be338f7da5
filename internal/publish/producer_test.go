package publish

import (
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

func TestKafkaProducerReusesWriterPerTopic(t *testing.T) {
	p := NewKafkaProducer([]string{"localhost:9092"}, WithBatchSize(50), WithWriteTimeout(time.Second))

	records := p.writer("records")
	require.Same(t, records, p.writer("records"))
	require.NotSame(t, records, p.writer("events"))

	require.Equal(t, "records", records.Topic)
	require.Equal(t, 50, records.BatchSize)
	require.Equal(t, time.Second, records.WriteTimeout)
	require.IsType(t, &kafka.Hash{}, records.Balancer)

	require.NoError(t, p.Close())
	require.Empty(t, p.writers)
}

func TestKafkaProducerIgnoresNonPositiveOptions(t *testing.T) {
	p := NewKafkaProducer(nil, WithBatchSize(0), WithWriteTimeout(-time.Second))
	require.Equal(t, 500, p.batchSize)
	require.Equal(t, 10*time.Second, p.writeTimeout)
}
