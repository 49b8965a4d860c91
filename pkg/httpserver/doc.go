// Package httpserver runs an http.Handler with graceful shutdown.
//
// Server.Run blocks until its context is cancelled or the process receives
// SIGINT/SIGTERM, then calls http.Server.Shutdown bounded by the configured
// shutdown timeout. Listen failures are wrapped with ErrStart and drain
// failures with ErrShutdown.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server exited", logger.Error(err))
//	}
//
// HealthHandler provides a JSON liveness/readiness probe.
package httpserver
