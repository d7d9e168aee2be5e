// Package requestid tags each HTTP request with an id taken from the
// X-Request-ID header or generated as a UUID, and exposes it to handlers and
// to the logger.
//
//	r.Use(requestid.Middleware)
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
