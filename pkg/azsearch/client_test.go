package azsearch_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/searchkit/pkg/azsearch"
	"github.com/dmitrymomot/searchkit/pkg/config"
)

func validConfig() azsearch.Config {
	return azsearch.Config{
		Endpoint:  "https://demo.search.windows.net",
		AdminKey:  "admin-key",
		IndexName: "hotels",
	}
}

// newTestClient builds a client against a fake service. The returned handler
// counter lets tests assert that construction itself never dials.
func newTestClient(t *testing.T, handler http.HandlerFunc) *azsearch.Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The service always answers JSON; resty keys response parsing on it.
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	cfg := validConfig()
	cfg.Endpoint = srv.URL
	client, err := azsearch.New(cfg)
	require.NoError(t, err)
	return client
}

func TestNew_Success(t *testing.T) {
	client, err := azsearch.New(validConfig())

	require.NoError(t, err)
	assert.Equal(t, "https://demo.search.windows.net", client.Endpoint())
	assert.Equal(t, "hotels", client.IndexName())
	assert.Equal(t, azsearch.DefaultAPIVersion, client.APIVersion())
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	cfg := validConfig()
	cfg.Endpoint = "https://demo.search.windows.net/"

	client, err := azsearch.New(cfg)

	require.NoError(t, err)
	assert.Equal(t, "https://demo.search.windows.net", client.Endpoint())
}

func TestNew_MissingValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*azsearch.Config)
		wantErr error
	}{
		{
			name:    "empty endpoint",
			mutate:  func(c *azsearch.Config) { c.Endpoint = "" },
			wantErr: azsearch.ErrMissingEndpoint,
		},
		{
			name:    "whitespace endpoint",
			mutate:  func(c *azsearch.Config) { c.Endpoint = "   " },
			wantErr: azsearch.ErrMissingEndpoint,
		},
		{
			name:    "empty admin key",
			mutate:  func(c *azsearch.Config) { c.AdminKey = "" },
			wantErr: azsearch.ErrMissingAdminKey,
		},
		{
			name:    "empty index name",
			mutate:  func(c *azsearch.Config) { c.IndexName = "" },
			wantErr: azsearch.ErrMissingIndexName,
		},
		{
			name:    "endpoint without scheme",
			mutate:  func(c *azsearch.Config) { c.Endpoint = "demo.search.windows.net" },
			wantErr: azsearch.ErrInvalidEndpoint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			client, err := azsearch.New(cfg)

			assert.Nil(t, client)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNew_NoNetworkOnConstruction(t *testing.T) {
	dialed := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		dialed = true
	})

	require.NotNil(t, client)
	assert.False(t, dialed, "construction must not issue any request")
}

func TestNew_FromEnvironment(t *testing.T) {
	t.Setenv("AZURE_AI_SEARCH_SERVICE_ENDPOINT", "https://env.search.windows.net")
	t.Setenv("AZURE_SEARCH_ADMIN_KEY", "env-admin-key")
	t.Setenv("SEARCH_INDEX_NAME", "env-index")
	config.ResetCache()

	var cfg azsearch.Config
	require.NoError(t, config.Load(&cfg))

	client, err := azsearch.New(cfg)

	require.NoError(t, err)
	assert.Equal(t, "https://env.search.windows.net", client.Endpoint())
	assert.Equal(t, "env-index", client.IndexName())
}

func TestNew_FromEnvironment_MissingVariable(t *testing.T) {
	t.Setenv("AZURE_AI_SEARCH_SERVICE_ENDPOINT", "https://env.search.windows.net")
	t.Setenv("SEARCH_INDEX_NAME", "env-index")
	os.Unsetenv("AZURE_SEARCH_ADMIN_KEY")
	config.ResetCache()

	var cfg azsearch.Config
	err := config.Load(&cfg)

	require.Error(t, err, "missing admin key must fail before any network call")
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}
