package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cacheMu sync.RWMutex
	cache   = make(map[string]any)

	defaultEnvOnce sync.Once
)

// LoadEnv loads one or more .env files into the process environment before
// config structs are parsed. Later files do not override variables that are
// already set, matching godotenv semantics.
//
// Missing files are reported as an error here because an explicit path is a
// deliberate choice; the implicit default .env used by Load stays a no-op
// when absent.
func LoadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load populates the configuration struct from environment variables based on
// `env` field tags. The default .env file is loaded once per process if it
// exists; a missing .env is not an error.
//
// Each configuration type is parsed at most once for the lifetime of the
// process. Subsequent calls for the same type return the cached copy, so a
// config struct can be loaded independently by every package that needs it
// without re-reading the environment.
//
// Example:
//
//	type SearchConfig struct {
//		Endpoint string `env:"AZURE_AI_SEARCH_SERVICE_ENDPOINT,required,notEmpty"`
//		AdminKey string `env:"AZURE_SEARCH_ADMIN_KEY,required,notEmpty"`
//	}
//
//	var cfg SearchConfig
//	if err := config.Load(&cfg); err != nil {
//		// a missing required variable surfaces here, before any network call
//	}
func Load[T any](v *T) error {
	defaultEnvOnce.Do(func() {
		// The default .env might not exist and that's fine.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeName[T]()

	cacheMu.RLock()
	cached, ok := cache[key]
	cacheMu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	cacheMu.Lock()
	// Another goroutine may have parsed the same type concurrently; the first
	// stored copy wins so every caller observes identical values.
	if cached, ok := cache[key]; ok {
		*v = cached.(T)
	} else {
		cache[key] = *v
	}
	cacheMu.Unlock()

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Intended for configuration without which the application cannot start.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReload discards the cached copy of the given configuration type and
// parses the environment again. Useful in tests after t.Setenv.
func ForceReload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	cacheMu.Lock()
	delete(cache, typeName[T]())
	cacheMu.Unlock()

	return Load(v)
}

// ResetCache clears all cached configuration values. Test helper.
func ResetCache() {
	cacheMu.Lock()
	cache = make(map[string]any)
	cacheMu.Unlock()
}

// typeName returns a stable string identifier for the generic type T.
func typeName[T any]() string {
	var zero T
	if t := reflect.TypeOf(zero); t != nil {
		return t.String()
	}
	// Interface types have no concrete reflect.Type for the zero value.
	return fmt.Sprintf("%T", *new(T))
}
