// Package broker defines the publish primitive the producer depends on and
// provides two implementations: a Kafka-backed client built on franz-go and
// an in-memory client for tests and local development.
//
// A Client accepts one Record per publish attempt and reports the broker's
// acknowledgment as Metadata. Publish blocks until the attempt resolves;
// PublishAsync registers a promise that the client invokes exactly once on
// its own goroutines. Implementations must be safe for concurrent use by
// multiple in-flight requests.
//
// Kafka usage:
//
//	var cfg broker.Config
//	config.MustLoad(&cfg)
//
//	client, err := broker.NewKafka(cfg)
//	if err != nil {
//		// handle startup failure
//	}
//	defer client.Close()
package broker
