package main

import (
	"github.com/dmitrymomot/libraryevents/core/broker"
	"github.com/dmitrymomot/libraryevents/core/server"
)

type Config struct {
	AppName string `env:"APP_NAME" envDefault:"library-events-producer"`
	Env     string `env:"APP_ENV" envDefault:"development"`

	Kafka  broker.Config
	Server server.Config
}
