package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "STORAGE_BACKEND", "AUTH_MODE", "WATER_GOAL_ML", "SHUTDOWN_TIMEOUT", "HTTP_ADDR"} {
		t.Setenv(k, "")
	}
	c := FromEnv()
	assert.Equal(t, "development", c.Env)
	assert.Equal(t, "file", c.DBType)
	assert.Equal(t, "local", c.AuthMode)
	assert.Equal(t, ":8088", c.Addr)
	assert.Equal(t, 2000.0, c.WaterGoalML)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
	assert.NoError(t, c.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("WATER_GOAL_ML", "2500")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("AUTH_MODE", "jwt")
	t.Setenv("JWT_SECRET", "s3cret")
	c := FromEnv()
	assert.Equal(t, 2500.0, c.WaterGoalML)
	assert.Equal(t, 3*time.Second, c.ShutdownTimeout)
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{Env: "development", DBType: "file", DataDir: "data", AuthMode: "local", WaterGoalML: 2000}
	}
	testCases := []struct {
		Desc   string
		Mutate func(c *Config)
		Error  string
	}{
		{Desc: "postgres without dsn", Mutate: func(c *Config) { c.DBType = "postgres" }, Error: "POSTGRES_DSN is required when STORAGE_BACKEND=postgres"},
		{Desc: "unknown backend", Mutate: func(c *Config) { c.DBType = "redis" }, Error: "STORAGE_BACKEND must be one of: file, postgres"},
		{Desc: "unknown env", Mutate: func(c *Config) { c.Env = "qa" }, Error: "APP_ENV must be one of: development, staging, production"},
		{Desc: "remote without url", Mutate: func(c *Config) { c.AuthMode = "remote" }, Error: "AUTH_SERVICE_URL is required when AUTH_MODE=remote"},
		{Desc: "jwt without secret", Mutate: func(c *Config) { c.AuthMode = "jwt" }, Error: "JWT_SECRET is required when AUTH_MODE=jwt"},
		{Desc: "bad water goal", Mutate: func(c *Config) { c.WaterGoalML = 0 }, Error: "WATER_GOAL_ML must be positive"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			c := valid()
			tc.Mutate(c)
			assert.EqualError(t, c.Validate(), tc.Error)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nHEALTH_TEST_KEY=from-file\n"), 0644))
	t.Setenv("HEALTH_TEST_KEY", "")
	os.Unsetenv("HEALTH_TEST_KEY")

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("HEALTH_TEST_KEY"))
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
