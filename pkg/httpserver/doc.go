// Package httpserver runs an http.Handler with graceful shutdown and
// lifecycle hooks.
//
// Run binds the listener, runs start hooks (a failing hook aborts startup),
// then serves until its context is cancelled, an interrupt or TERM signal
// arrives, or Shutdown is called. Stop hooks run after the HTTP server has
// drained, which makes them the place to stop background workers that feed
// open streams.
//
//	srv := httpserver.NewFromConfig(cfg,
//	    httpserver.WithLogger(log),
//	    httpserver.WithStartHook(scheduler.Start),
//	    httpserver.WithStopHook(func(context.Context) error { return scheduler.Stop() }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// HealthCheckHandler answers liveness and readiness probes.
package httpserver
