package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapEnvToGinMode(t *testing.T) {
	tests := map[string]string{
		"production":  "release",
		"prod":        "release",
		"release":     "release",
		"test":        "test",
		"testing":     "test",
		"development": "debug",
		"dev":         "debug",
		"":            "debug",
		"staging":     "debug",
	}

	for env, want := range tests {
		assert.Equal(t, want, MapEnvToGinMode(env), env)
	}
}

func TestOptions_ResolveEnv(t *testing.T) {
	opts := Options{Env: "development"}

	t.Setenv("ENV", "")
	assert.Equal(t, "development", opts.ResolveEnv())

	t.Setenv("ENV", "production")
	assert.Equal(t, "production", opts.ResolveEnv())
}

func TestInit_LoadsExplicitConfig(t *testing.T) {
	t.Setenv("ENV", "")
	path := t.TempDir() + "/config.yaml"
	writeFile(t, path, "database:\n  driver: sqlite\n  sqlite_path: \":memory:\"\nlogger:\n  output_path: stderr\n")

	cfg, log, err := Init(Options{Env: "test", ConfigPath: path})
	assert.NoError(t, err)
	assert.NotNil(t, log)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestInit_MissingExplicitConfig(t *testing.T) {
	t.Setenv("ENV", "")
	_, _, err := Init(Options{Env: "test", ConfigPath: t.TempDir() + "/absent.yaml"})
	assert.Error(t, err)
}
