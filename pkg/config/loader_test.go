package config_test

import (
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/searchkit/pkg/config"
)

type successConfig struct {
	Endpoint string `env:"TEST_SEARCH_ENDPOINT"`
	Retries  int    `env:"TEST_SEARCH_RETRIES" envDefault:"3"`
	Verbose  bool   `env:"TEST_SEARCH_VERBOSE" envDefault:"false"`
}

type defaultsConfig struct {
	APIVersion string `env:"TEST_API_VERSION_DEFAULT" envDefault:"2024-07-01"`
	Timeout    string `env:"TEST_TIMEOUT_DEFAULT" envDefault:"30s"`
}

type requiredConfig struct {
	AdminKey string `env:"TEST_REQUIRED_ADMIN_KEY,required,notEmpty"`
}

type cachedConfig struct {
	Value string `env:"TEST_CACHED_VALUE" envDefault:"initial"`
}

type reloadConfig struct {
	Value string `env:"TEST_RELOAD_VALUE" envDefault:"initial"`
}

type concurrentConfig struct {
	Value string `env:"TEST_CONCURRENT_VALUE" envDefault:"shared"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_SEARCH_ENDPOINT", "https://demo.search.windows.net")
	t.Setenv("TEST_SEARCH_RETRIES", "5")
	t.Setenv("TEST_SEARCH_VERBOSE", "true")
	config.ResetCache()

	var cfg successConfig
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "https://demo.search.windows.net", cfg.Endpoint)
	assert.Equal(t, 5, cfg.Retries)
	assert.True(t, cfg.Verbose)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("TEST_API_VERSION_DEFAULT")
	os.Unsetenv("TEST_TIMEOUT_DEFAULT")
	config.ResetCache()

	var cfg defaultsConfig
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "2024-07-01", cfg.APIVersion)
	assert.Equal(t, "30s", cfg.Timeout)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("TEST_REQUIRED_ADMIN_KEY")
	config.ResetCache()

	var cfg requiredConfig
	err := config.Load(&cfg)

	require.Error(t, err, "missing required variable must fail the load")
	assert.True(t, errors.Is(err, config.ErrParsingConfig))
}

func TestLoad_EmptyRequired(t *testing.T) {
	t.Setenv("TEST_REQUIRED_ADMIN_KEY", "")
	config.ResetCache()

	var cfg requiredConfig
	err := config.Load(&cfg)

	require.Error(t, err, "empty required variable must fail the load")
	assert.True(t, errors.Is(err, config.ErrParsingConfig))
}

func TestLoad_NilPointer(t *testing.T) {
	config.ResetCache()

	err := config.Load[successConfig](nil)

	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("TEST_CACHED_VALUE", "first")
	config.ResetCache()

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	require.Equal(t, "first", first.Value)

	// Environment changes after the first load are invisible to Load.
	t.Setenv("TEST_CACHED_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value, "cached copy should be returned")
}

func TestForceReload(t *testing.T) {
	t.Setenv("TEST_RELOAD_VALUE", "before")
	config.ResetCache()

	var cfg reloadConfig
	require.NoError(t, config.Load(&cfg))
	require.Equal(t, "before", cfg.Value)

	t.Setenv("TEST_RELOAD_VALUE", "after")

	require.NoError(t, config.ForceReload(&cfg))
	assert.Equal(t, "after", cfg.Value)
}

func TestLoad_Concurrent(t *testing.T) {
	t.Setenv("TEST_CONCURRENT_VALUE", "race-free")
	config.ResetCache()

	const goroutines = 16

	var wg sync.WaitGroup
	results := make([]concurrentConfig, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = config.Load(&results[i])
		}(i)
	}
	wg.Wait()

	for i := 0; i < goroutines; i++ {
		assert.Equal(t, "race-free", results[i].Value)
	}
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	os.Unsetenv("TEST_REQUIRED_ADMIN_KEY")
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/does-not-exist.env")

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
