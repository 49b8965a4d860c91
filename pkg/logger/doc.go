// Package logger builds *slog.Logger instances for services that embed the
// device classifier. It adds functional options, attribute helpers for the
// values the classifier pipeline logs (rule names, user agents, screen
// metrics) and injection of request-scoped attributes from context.Context.
//
// New is the single factory. Options select:
//
//   - the output format (text or json) and destination
//   - the minimum log level
//   - static attributes applied to every record
//   - ContextExtractor callbacks run on every Handle call, for example the
//     platform package's LoggerExtractor that logs the classified device.
//
// # Architecture
//
// Logger builds a decorated slog.Handler. First, New determines the concrete
// slog.Handler implementation – slog.NewTextHandler or slog.NewJSONHandler –
// based on the configured Format. It then wraps the handler with
// LogHandlerDecorator which is responsible for executing any registered
// ContextExtractor callbacks before delegating to the underlying handler.
//
// Helper constructors such as Group, Error, Rule, UserAgent, etc. live in attr.go and
// return commonly-used slog.Attr instances to keep attribute naming consistent
// across the codebase.
//
// # Usage
//
//	import "github.com/dmitrymomot/devicekit/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithDevelopment("edge-gateway"),
//	        logger.WithContextExtractors(platform.LoggerExtractor()),
//	    )
//	    logger.SetAsDefault(log)
//
//	    log.InfoContext(ctx, "classified request",
//	        logger.Rule("ipad"),
//	        logger.UserAgent(r.UserAgent()),
//	    )
//	}
//
// # Configuration
//
// The behaviour of New can be tuned with a variety of Option helpers:
//
//   - WithDevelopment / WithProduction – sensible defaults per environment.
//   - WithFormat / WithTextFormatter / WithJSONFormatter – override output format.
//   - WithLevel – set a custom slog.Level.
//   - WithAttr – attach static attributes.
//   - WithContextExtractors / WithContextValue – inject attributes from context.
//
// NewFromConfig builds the same logger from a Config loaded with the config
// package (LOG_LEVEL, LOG_FORMAT, SERVICE_NAME).
//
// # Error Handling
//
// Helper functions Error and Errors produce attributes only when the supplied
// error value is non-nil allowing calls like:
//
//	log.Info("operation succeeded", logger.Error(err))
//
// without an additional nil check.
package logger
