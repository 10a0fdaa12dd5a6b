package azsearch

import "time"

// DefaultAPIVersion is the GA REST API version the client speaks unless
// overridden via configuration.
const DefaultAPIVersion = "2024-07-01"

// Config holds Azure AI Search connection parameters with environment
// variable mapping. Uses struct tags compatible with
// github.com/dmitrymomot/searchkit/pkg/config for zero-config
// environment-based initialization.
type Config struct {
	// Endpoint is the full service URL, e.g. https://<service>.search.windows.net.
	Endpoint string `env:"AZURE_AI_SEARCH_SERVICE_ENDPOINT,required,notEmpty"`

	// AdminKey authorizes management and indexing operations. Sent as the
	// api-key header on every request.
	AdminKey string `env:"AZURE_SEARCH_ADMIN_KEY,required,notEmpty"`

	// IndexName is the index the client's document and query operations are
	// bound to. Index management operations accept explicit names.
	IndexName string `env:"SEARCH_INDEX_NAME,required,notEmpty"`

	APIVersion     string        `env:"AZURE_SEARCH_API_VERSION" envDefault:"2024-07-01"`
	RequestTimeout time.Duration `env:"AZURE_SEARCH_REQUEST_TIMEOUT" envDefault:"30s"`
	MaxRetries     int           `env:"AZURE_SEARCH_MAX_RETRIES" envDefault:"3"`
	RetryWaitTime  time.Duration `env:"AZURE_SEARCH_RETRY_WAIT" envDefault:"1s"`
}
