package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache stores parsed configuration values keyed by their type
type cache struct {
	mu     sync.RWMutex
	values map[reflect.Type]any
}

var (
	globalCache = &cache{values: make(map[reflect.Type]any)}

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v using `env` struct tags.
//
// The default .env file in the working directory is loaded once, if present.
// Each configuration type is parsed only once; later calls for the same type
// receive the cached copy until ResetCache is called.
//
// Example:
//
//	type QueueConfig struct {
//		DefaultTTL time.Duration `env:"QUEUE_DEFAULT_TTL" envDefault:"0s"`
//	}
//
//	var cfg QueueConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The default .env file is optional
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := reflect.TypeFor[T]()

	globalCache.mu.RLock()
	cached, ok := globalCache.values[key]
	globalCache.mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	// Another goroutine may have parsed it while we waited for the lock
	if cached, ok := globalCache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	globalCache.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv loads one or more .env files into the process environment.
// Later files override values from earlier ones. Variables already set in
// the environment before the first call are overridden as well.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Overload(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// ResetCache drops every cached configuration so the next Load parses the
// environment again. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	clear(globalCache.values)
}
