// Package logger builds *slog.Logger instances with functional options and
// exposes attribute helpers that keep key names consistent across toastkit.
//
// New selects a text or JSON handler, applies static attributes and wraps the
// result in a ContextHandler, which runs ContextExtractor callbacks on every
// record. That is how request-scoped values such as a request id reach log
// lines without being passed around explicitly.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "toastkit"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "toast spawned",
//	    logger.NoticeID(id),
//	    logger.Kind("warning"),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
