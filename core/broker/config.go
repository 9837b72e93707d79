package broker

import "errors"

// ErrMissingBrokers is returned when no seed broker address is configured.
var ErrMissingBrokers = errors.New("at least one broker address is required")

// ErrMissingTopic is returned when the destination topic is not configured.
var ErrMissingTopic = errors.New("broker topic is required")

// Config holds broker connection settings with environment variable support.
// The topic is injected once at startup and read-only thereafter.
type Config struct {
	Brokers  []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	Topic    string   `env:"KAFKA_TOPIC" envDefault:"library-events"`
	ClientID string   `env:"KAFKA_CLIENT_ID" envDefault:"library-events-producer"`
}

// Validate checks that the configuration is complete enough to connect.
func (c Config) Validate() error {
	if len(c.Brokers) == 0 {
		return ErrMissingBrokers
	}
	if c.Topic == "" {
		return ErrMissingTopic
	}
	return nil
}
