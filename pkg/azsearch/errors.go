package azsearch

import "errors"

var (
	// ErrMissingEndpoint indicates the service endpoint is empty.
	ErrMissingEndpoint = errors.New("azure search endpoint is required")

	// ErrMissingAdminKey indicates the admin api-key is empty.
	ErrMissingAdminKey = errors.New("azure search admin key is required")

	// ErrMissingIndexName indicates the bound index name is empty.
	ErrMissingIndexName = errors.New("azure search index name is required")

	// ErrInvalidEndpoint indicates the endpoint could not be parsed as a URL
	// with a scheme and host.
	ErrInvalidEndpoint = errors.New("azure search endpoint is not a valid URL")

	// ErrUnauthorized indicates the service rejected the api-key.
	// Use errors.Is() to check.
	ErrUnauthorized = errors.New("azure search request unauthorized")

	// ErrIndexNotFound indicates the named index does not exist on the service.
	ErrIndexNotFound = errors.New("azure search index not found")

	// ErrDocumentNotFound indicates a document lookup missed.
	ErrDocumentNotFound = errors.New("azure search document not found")

	// ErrConflict indicates a concurrent modification was rejected by the service.
	ErrConflict = errors.New("azure search resource conflict")

	// ErrThrottled indicates the service is rate limiting requests.
	ErrThrottled = errors.New("azure search request throttled")

	// ErrRequestFailed is the generic failure for non-2xx responses that do
	// not map to a more specific sentinel.
	ErrRequestFailed = errors.New("azure search request failed")

	// ErrPartialFailure indicates some documents in an indexing batch were
	// rejected while others succeeded.
	ErrPartialFailure = errors.New("azure search batch partially failed")

	// ErrHealthcheckFailed indicates the service is unreachable or rejecting
	// requests. Returned by Healthcheck.
	ErrHealthcheckFailed = errors.New("azure search healthcheck failed")
)
