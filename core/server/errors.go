package server

import "errors"

var (
	// ErrMissingAddress is returned when the server address is not provided.
	ErrMissingAddress = errors.New("server address is required")

	// ErrServerAlreadyRunning is returned when starting a server twice.
	ErrServerAlreadyRunning = errors.New("server already running")
)
