package broker

import (
	"context"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Kafka publishes records to a Kafka cluster using franz-go.
// The underlying client manages its own I/O goroutines; async promises run
// on those goroutines, not on the caller's.
type Kafka struct {
	client *kgo.Client
}

// NewKafka connects a Kafka-backed client. Additional kgo options are
// appended after the config-derived ones and may override them.
func NewKafka(cfg Config, opts ...kgo.Opt) (*Kafka, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	kopts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ClientID(cfg.ClientID),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	}
	kopts = append(kopts, opts...)

	client, err := kgo.NewClient(kopts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	return &Kafka{client: client}, nil
}

// Publish sends the record and blocks until the cluster acknowledges it.
func (k *Kafka) Publish(ctx context.Context, rec Record) (Metadata, error) {
	res, err := k.client.ProduceSync(ctx, kafkaRecord(rec)).First()
	if err != nil {
		return Metadata{}, err
	}
	return kafkaMetadata(res), nil
}

// PublishAsync sends the record without blocking. The promise is invoked
// once on the client's goroutines when delivery succeeds or fails.
func (k *Kafka) PublishAsync(ctx context.Context, rec Record, promise func(Metadata, error)) {
	k.client.Produce(ctx, kafkaRecord(rec), func(r *kgo.Record, err error) {
		if err != nil {
			promise(Metadata{}, err)
			return
		}
		promise(kafkaMetadata(r), nil)
	})
}

// Close flushes buffered records and releases the connection.
func (k *Kafka) Close() error {
	k.client.Close()
	return nil
}

func kafkaRecord(rec Record) *kgo.Record {
	headers := make([]kgo.RecordHeader, 0, len(rec.Headers))
	for _, h := range rec.Headers {
		headers = append(headers, kgo.RecordHeader{Key: h.Key, Value: h.Value})
	}

	return &kgo.Record{
		Topic:   rec.Topic,
		Key:     rec.Key,
		Value:   rec.Value,
		Headers: headers,
	}
}

func kafkaMetadata(r *kgo.Record) Metadata {
	return Metadata{
		Topic:     r.Topic,
		Partition: r.Partition,
		Offset:    r.Offset,
	}
}
