// Command fieldcheck serves field validation for the forms described in a
// form definition file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"regexp"
	"syscall"

	"github.com/dmitrymomot/fieldcheck"
	"github.com/dmitrymomot/fieldcheck/pkg/config"
	"github.com/dmitrymomot/fieldcheck/pkg/formhandler"
	"github.com/dmitrymomot/fieldcheck/pkg/formspec"
	"github.com/dmitrymomot/fieldcheck/pkg/httpserver"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/requestid"
)

var passwordRe = regexp.MustCompile(`^(?:.*[A-Za-z].*[0-9]|.*[0-9].*[A-Za-z]).*$`)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fieldcheck:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(append(cfg.LoggerOptions(),
		logger.WithContextExtractors(requestid.Extractor()),
	)...)

	spec, err := formspec.Load(cfg.FormSpec)
	if err != nil {
		return err
	}

	rules := fieldcheck.NewRuleSet().
		MustRegister("password", func(value string, _ any) bool {
			return passwordRe.MatchString(value)
		})
	if err := spec.Verify(rules); err != nil {
		return err
	}
	log.Info("form definition loaded",
		logger.Component("formspec"),
		"path", cfg.FormSpec,
		"fields", len(spec.Fields),
	)

	handler := formhandler.New(spec,
		formhandler.WithRuleSet(rules),
		formhandler.WithLogger(log.With(logger.Component("formhandler"))),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log.With(logger.Component("httpserver"))))
	return srv.Run(ctx, handler.Router())
}
