// Package logger provides a factory for configured log/slog loggers with
// consistent formatting and context-aware attribute injection.
//
// The factory covers three concerns:
//
//   - Presets — WithDevelopment and WithProduction configure sane defaults
//     for the respective environments; WithEnvironment selects one by name.
//   - Static attributes — WithAttr attaches service-level metadata to every
//     record.
//   - Context extraction — WithContextValue and WithContextExtractors pull
//     request-scoped values (correlation IDs and the like) out of the
//     context at log time.
//
// The package also exposes typed attribute helpers (Index, Query, Operation,
// DocumentCount, ...) so log keys stay consistent across packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithProduction("searchkit"),
//	    logger.WithContextValue("request_id", requestIDKey),
//	)
//	log.InfoContext(ctx, "index updated",
//	    logger.Index("hotels"),
//	    logger.DocumentCount(42),
//	)
package logger
