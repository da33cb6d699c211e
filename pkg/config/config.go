package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/fieldcheck/pkg/httpserver"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

// Prefix is prepended to every variable name.
const Prefix = "FIELDCHECK_"

// Config is the server configuration.
type Config struct {
	Env     string `env:"ENV" envDefault:"development"`
	Service string `env:"SERVICE" envDefault:"fieldcheck"`

	// LogLevel is debug, info, warn or error. Empty picks the level implied by Env.
	LogLevel string `env:"LOG_LEVEL"`
	// LogFormat is json or text. Empty picks the format implied by Env.
	LogFormat string `env:"LOG_FORMAT"`

	// FormSpec is the path of the form definition file.
	FormSpec string `env:"FORM_SPEC" envDefault:"forms/signup.yaml"`

	HTTP httpserver.Config `envPrefix:"HTTP_"`
}

// Load seeds the process environment from files and parses it. With no
// files the optional ./.env is used.
func Load(files ...string) (Config, error) {
	if err := LoadEnv(files...); err != nil {
		return Config{}, err
	}
	return parse(env.Options{Prefix: Prefix})
}

// Parse reads the configuration from vars instead of the process environment.
// Keys carry the prefix, as they would in the environment.
func Parse(vars map[string]string) (Config, error) {
	return parse(env.Options{Prefix: Prefix, Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadEnv loads .env files into the process environment without overriding
// variables that are already set. Named files must exist; the default ./.env
// is skipped when missing.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Join(ErrLoadEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadEnvFile, err)
	}
	return nil
}

// Validate checks values the parser cannot.
func (c Config) Validate() error {
	var errs []error
	if c.LogLevel != "" {
		if _, ok := logger.ParseLevel(c.LogLevel); !ok {
			errs = append(errs, fmt.Errorf("%sLOG_LEVEL: unknown level %q", Prefix, c.LogLevel))
		}
	}
	switch logger.Format(c.LogFormat) {
	case "", logger.FormatJSON, logger.FormatText:
	default:
		errs = append(errs, fmt.Errorf("%sLOG_FORMAT: unknown format %q", Prefix, c.LogFormat))
	}
	if c.HTTP.Addr == "" {
		errs = append(errs, fmt.Errorf("%sHTTP_ADDR: must not be empty", Prefix))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

// IsDevelopment reports whether Env is the development environment.
func (c Config) IsDevelopment() bool {
	return c.Env == logger.EnvDevelopment
}

// LoggerOptions returns logger options for the configured environment,
// with explicit level and format settings applied last.
func (c Config) LoggerOptions() []logger.Option {
	opts := []logger.Option{logger.WithEnvironment(c.Env, c.Service)}
	if c.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(c.LogLevel))
	}
	if c.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(c.LogFormat)))
	}
	return opts
}
