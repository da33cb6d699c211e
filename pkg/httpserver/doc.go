// Package httpserver runs an http.Handler with configured timeouts and a
// graceful shutdown bound to a context.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run binds the listener before it serves, so Addr reports the real address
// (useful with ":0") as soon as Ready is closed. Listen failures are wrapped
// with ErrStart and shutdown failures with ErrShutdown.
//
// HealthHandler serves liveness and readiness probes.
package httpserver
