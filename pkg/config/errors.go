package config

import "errors"

var (
	// ErrLoadEnvFile is returned when an explicitly named .env file cannot be read.
	ErrLoadEnvFile = errors.New("config: failed to load env file")

	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("config: failed to parse environment variables")

	// ErrInvalidConfig is returned when parsed values are out of range.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)
