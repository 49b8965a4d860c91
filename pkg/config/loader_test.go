package config_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicekit/pkg/config"
	"github.com/dmitrymomot/devicekit/pkg/screen"
)

type TestConfigSuccess struct {
	RulesFile string  `env:"TEST_RULES_FILE_SUCCESS" envDefault:"rules.yaml"`
	Width     float64 `env:"TEST_WIDTH_SUCCESS" envDefault:"1280"`
	Disabled  bool    `env:"TEST_DISABLED_SUCCESS" envDefault:"true"`
}

type TestConfigSingleton struct {
	Value string `env:"TEST_VALUE_SINGLETON" envDefault:"default_value"`
}

type TestConfigEnvFile struct {
	Value string `env:"TEST_VALUE_ENV_FILE"`
}

type RequiredConfig struct {
	Required string `env:"TEST_REQUIRED_VALUE,required"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_RULES_FILE_SUCCESS", "/etc/devicekit/rules.yaml")
	t.Setenv("TEST_WIDTH_SUCCESS", "1440")
	t.Setenv("TEST_DISABLED_SUCCESS", "false")
	config.ResetCache()

	var cfg TestConfigSuccess
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "/etc/devicekit/rules.yaml", cfg.RulesFile)
	assert.InDelta(t, 1440.0, cfg.Width, 0.001)
	assert.False(t, cfg.Disabled)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("SCREEN_DEFAULT_PIXEL_DENSITY")
	os.Unsetenv("SCREEN_DEFAULT_WIDTH")
	config.ResetCache()

	var cfg screen.Config
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, screen.Default, cfg.Defaults())
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("TEST_REQUIRED_VALUE")
	config.ResetCache()

	var cfg RequiredConfig
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
	assert.Panics(t, func() {
		config.MustLoad(&cfg)
	})
}

func TestLoad_Singleton(t *testing.T) {
	t.Setenv("TEST_VALUE_SINGLETON", "first_value")
	config.ResetCache()

	var first TestConfigSingleton
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_VALUE_SINGLETON", "second_value")

	var second TestConfigSingleton
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first_value", second.Value, "second load should be served from cache")

	config.ResetCache()

	var third TestConfigSingleton
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second_value", third.Value, "reset cache should re-parse the environment")
}

func TestLoad_Concurrent(t *testing.T) {
	t.Setenv("TEST_RULES_FILE_SUCCESS", "concurrent.yaml")
	config.ResetCache()

	var wg sync.WaitGroup
	results := make([]TestConfigSuccess, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, config.Load(&results[i]))
		}(i)
	}
	wg.Wait()

	for _, cfg := range results {
		assert.Equal(t, "concurrent.yaml", cfg.RulesFile)
	}
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *TestConfigSuccess
	err := config.Load(cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	os.Unsetenv("TEST_VALUE_ENV_FILE")
	t.Cleanup(func() { os.Unsetenv("TEST_VALUE_ENV_FILE") })
	config.ResetCache()

	path := filepath.Join(t.TempDir(), ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("TEST_VALUE_ENV_FILE=from_file\n"), 0o600))

	require.NoError(t, config.LoadEnv(path))

	var cfg TestConfigEnvFile
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Value)

	err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
