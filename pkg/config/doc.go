// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 to deliver
// a small API that:
//
//   - Loads the default .env file from the working directory once per process,
//     treating a missing file as a no-op rather than an error.
//   - Loads additional named .env files on demand via LoadEnv.
//   - Parses the environment into any Go struct using `env` field tags.
//   - Caches each successfully parsed configuration type so it is read at most
//     once for the lifetime of the process.
//
// # Usage
//
// Describe the configuration as a struct with `env` tags:
//
//	type SearchConfig struct {
//	    Endpoint  string `env:"AZURE_AI_SEARCH_SERVICE_ENDPOINT,required,notEmpty"`
//	    AdminKey  string `env:"AZURE_SEARCH_ADMIN_KEY,required,notEmpty"`
//	    IndexName string `env:"SEARCH_INDEX_NAME,required,notEmpty"`
//	}
//
// Then populate it:
//
//	var cfg SearchConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Subsequent calls to config.Load for the same struct type are served from the
// in-memory cache without touching the environment again.
//
// # Error Handling
//
// Sentinel errors can be compared with errors.Is:
//
//   - ErrParsingConfig — env vars could not be parsed, including a missing
//     required variable.
//   - ErrLoadingEnvFile — an explicitly named .env file could not be read.
//   - ErrNilPointer — nil pointer passed to Load or ForceReload.
//
// # Testing
//
// Use ResetCache between tests, or ForceReload after changing the process
// environment with t.Setenv.
package config
