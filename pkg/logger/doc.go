// Package logger builds *slog.Logger values with functional options and
// provides attribute constructors with consistent key names for queue logs.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler by Format, applies
// the level and any static attributes, and returns the logger. Presets such
// as WithDevelopment and WithProduction set format, level and the service and
// env attributes in one step.
//
// # Usage
//
//	import "github.com/dmitrymomot/tape/pkg/logger"
//
//	func main() {
//	    log := logger.New(logger.WithEnvironment(os.Getenv("APP_ENV"), "tapedemo"))
//	    logger.SetAsDefault(log)
//
//	    log.Info("task completed",
//	        logger.Queue("uploads"),
//	        logger.Outcome("completed"),
//	        logger.Duration(time.Since(start)),
//	    )
//	}
//
// # Error Handling
//
// Error and Errors produce attributes only for non-nil errors, and Expiry
// and Queue skip zero values, so calls like
//
//	log.Info("drop", logger.Error(err), logger.Expiry(deadline))
//
// need no nil checks.
package logger
