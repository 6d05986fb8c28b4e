package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: mealtrack
  log:
    level: info
http:
  timeouts:
    readTimeout: 3s
jwt:
  secret: from-file
auth:
  bcryptCost: 5
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(content), 0o600))

	return dir
}

func chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	chdir(t, writeConfig(t, testYAML))

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "mealtrack", cfg.Env.ServiceName)
	assert.Equal(t, "from-file", cfg.JWT.Secret)
	assert.Equal(t, 3*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 5, cfg.Auth.BcryptCost)
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	chdir(t, writeConfig(t, testYAML))
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("AUTH_BCRYPTCOST", "9")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, 9, cfg.Auth.BcryptCost)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.NotNil(t, cfg.Auth)
}
