// Package requestid attaches a correlation ID to each HTTP request.
//
// Middleware accepts a client-supplied X-Request-ID made of letters, digits,
// '-' and '_' (at most 128 bytes) and otherwise generates a UUIDv7. The ID is
// echoed in the response header and stored in the request context;
// LoggerExtractor exposes it to logger.WithContextExtractors so every log
// line written during the request carries it.
package requestid
