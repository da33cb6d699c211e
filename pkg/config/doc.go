// Package config loads the fieldcheck server configuration from the
// environment.
//
// Values come from FIELDCHECK_-prefixed variables, optionally seeded from one
// or more .env files through github.com/joho/godotenv (variables already set in
// the process win over file values). Parsing is done with
// github.com/caarlos0/env/v11 struct tags:
//
//	FIELDCHECK_ENV=production
//	FIELDCHECK_SERVICE=fieldcheck
//	FIELDCHECK_LOG_LEVEL=info
//	FIELDCHECK_LOG_FORMAT=json
//	FIELDCHECK_FORM_SPEC=forms/signup.yaml
//	FIELDCHECK_HTTP_ADDR=:8080
//	FIELDCHECK_HTTP_READ_TIMEOUT=15s
//
// Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//	log := logger.New(cfg.LoggerOptions()...)
//
// Errors can be compared with errors.Is against ErrLoadEnvFile,
// ErrParsingConfig and ErrInvalidConfig.
package config
