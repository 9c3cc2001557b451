// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing the environment into structs
// annotated with `env` tags. Each configuration type is parsed once and
// cached for the lifetime of the process.
//
// # Usage
//
//	type AppConfig struct {
//	    Env   string       `env:"APP_ENV" envDefault:"development"`
//	    Queue queue.Config
//	}
//
//	func main() {
//	    config.MustLoadEnv("./.env.local")
//
//	    var cfg AppConfig
//	    config.MustLoad(&cfg)
//	}
//
// # Error Handling
//
// Sentinel errors can be compared with errors.Is:
//
//   - ErrParsingConfig  – the environment could not be parsed into the struct.
//   - ErrLoadingEnvFile – a .env file could not be read.
//   - ErrNilPointer     – a nil pointer was passed to Load or MustLoad.
//
// # Testing Helpers
//
// ResetCache clears cached values so a test can parse the environment again
// after changing it with t.Setenv.
package config
