// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The first Load call reads `./.env` when present; LoadEnv reads explicit
//     files. Neither overrides variables already set in the process.
//   - Load parses the environment into any struct using `env` field tags.
//   - Each configuration type is parsed at most once per process and served
//     from a cache afterwards, even under concurrent first use.
//
// The classifier, screen and logger packages each publish a Config struct
// meant to be loaded this way.
//
// # Usage
//
//	import "github.com/dmitrymomot/devicekit/pkg/config"
//
//	func main() {
//	    var screenCfg screen.Config
//	    config.MustLoad(&screenCfg)
//
//	    var platformCfg platform.Config
//	    if err := config.Load(&platformCfg); err != nil {
//	        log.Fatalf("parsing env: %v", err)
//	    }
//	}
//
// # Error Handling
//
// Sentinel errors, compared with errors.Is:
//
//   - ErrParsingConfig – env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile – an explicit LoadEnv file could not be read.
//   - ErrNilPointer – nil pointer passed to Load/MustLoad.
//
// A failed parse is cached like a successful one; call ResetCache (tests) to
// retry after fixing the environment.
package config
