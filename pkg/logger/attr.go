package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Index records a search index name under the key "index".
func Index(name string) slog.Attr {
	return slog.String("index", name)
}

// Query records the query text under the key "query".
func Query(q string) slog.Attr {
	return slog.String("query", q)
}

// Operation records the service operation name under the key "operation".
func Operation(name string) slog.Attr {
	return slog.String("operation", name)
}

// DocumentCount records a number of documents under the key "document_count".
func DocumentCount(n int64) slog.Attr {
	return slog.Int64("document_count", n)
}

// BatchSize records the size of a document batch under the key "batch_size".
func BatchSize(n int) slog.Attr {
	return slog.Int("batch_size", n)
}

// StatusCode records an HTTP status code under the key "status_code".
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// Attempt records the retry attempt number under the key "attempt".
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
