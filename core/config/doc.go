// Package config provides type-safe environment variable loading using Go
// generics. A .env file is loaded automatically on first use, and each
// configuration type is parsed once and cached for subsequent calls.
//
// Basic usage:
//
//	type Config struct {
//		AppName string        `env:"APP_NAME" envDefault:"library-events-producer"`
//		Kafka   broker.Config
//		Server  server.Config
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg) // panic on error, useful at startup
package config
