package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tape/pkg/config"
	"github.com/dmitrymomot/tape/pkg/queue"
)

type TestConfigDefault struct {
	TestString string `env:"TEST_STRING_DEFAULT" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_DEFAULT" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_DEFAULT" envDefault:"true"`
}

type TestConfigSuccess struct {
	TestString string `env:"TEST_STRING_SUCCESS" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_SUCCESS" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_SUCCESS" envDefault:"true"`
}

type TestConfigSingleton struct {
	TestString string `env:"TEST_STRING_SINGLETON" envDefault:"default_value"`
}

type TestConfigFile struct {
	Name    string        `env:"TEST_FILE_NAME"`
	Timeout time.Duration `env:"TEST_FILE_TIMEOUT"`
}

type RequiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_STRING_SUCCESS", "test_value")
	t.Setenv("TEST_INT_SUCCESS", "100")
	t.Setenv("TEST_BOOL_SUCCESS", "false")

	var cfg TestConfigSuccess
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "test_value", cfg.TestString)
	assert.Equal(t, 100, cfg.TestInt)
	assert.False(t, cfg.TestBool)
}

func TestLoad_DefaultValues(t *testing.T) {
	config.ResetCache()

	var cfg TestConfigDefault
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "default_value", cfg.TestString)
	assert.Equal(t, 42, cfg.TestInt)
	assert.True(t, cfg.TestBool)
}

func TestLoad_MissingRequired(t *testing.T) {
	config.ResetCache()

	var cfg RequiredConfig
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_Singleton(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_STRING_SINGLETON", "first_value")

	var first TestConfigSingleton
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_STRING_SINGLETON", "second_value")

	var second TestConfigSingleton
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first_value", second.TestString, "cached value should be returned")

	config.ResetCache()

	var third TestConfigSingleton
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second_value", third.TestString, "reset should force a reparse")
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *TestConfigSuccess
	err := config.Load(cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg RequiredConfig
		config.MustLoad(&cfg)
	})

	t.Setenv("REQUIRED_VALUE", "set")
	assert.NotPanics(t, func() {
		var cfg RequiredConfig
		config.MustLoad(&cfg)
		assert.Equal(t, "set", cfg.Required)
	})
}

func TestLoad_QueueConfig(t *testing.T) {
	config.ResetCache()
	t.Setenv("QUEUE_DEFAULT_TTL", "90s")
	t.Setenv("QUEUE_DEFAULT_RETRY_BUDGET", "4")

	var cfg queue.Config
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, 90*time.Second, cfg.DefaultTTL)
	assert.Equal(t, 4, cfg.DefaultRetryBudget)
	assert.Equal(t, 16, cfg.EventBufferSize)
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads values from file", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_FILE_NAME", "")
		t.Setenv("TEST_FILE_TIMEOUT", "")

		path := writeEnvFile(t, "TEST_FILE_NAME=from_file\nTEST_FILE_TIMEOUT=5s\n")
		require.NoError(t, config.LoadEnv(path))

		var cfg TestConfigFile
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from_file", cfg.Name)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("later files win", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_FILE_NAME", "")

		base := writeEnvFile(t, "TEST_FILE_NAME=base\n")
		override := writeEnvFile(t, "TEST_FILE_NAME=override\n")
		require.NoError(t, config.LoadEnv(base, override))

		var cfg TestConfigFile
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "override", cfg.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("no files is a no-op", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})
}

func TestMustLoadEnv(t *testing.T) {
	t.Setenv("TEST_FILE_NAME", "")
	path := writeEnvFile(t, "TEST_FILE_NAME=must\n")

	assert.NotPanics(t, func() { config.MustLoadEnv(path) })
	assert.Panics(t, func() {
		config.MustLoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	})
}
