package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c, err := load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	assert.Equal(t, "8080", c.AppPort)
	assert.Equal(t, "co-authors/v1", c.Namespace)
	assert.Equal(t, "posts", c.ParentBase)
	assert.Equal(t, "author", c.Taxonomy)
	assert.Equal(t, "author-terms", c.TermsBase)
	assert.Equal(t, "author-posts", c.PostsBase)
	assert.Equal(t, "author-users", c.UsersBase)
	assert.Equal(t, []string{"*"}, c.AllowedOrigins)
	assert.False(t, c.CacheEnabled)
	assert.Equal(t, "http://localhost:8080/wp-json", c.APIBase())
}

func TestLoadGroupedJSON(t *testing.T) {
	path := writeJSON(t, `{
		"app": {"AppPort": "9000", "JWTSecret": "s3cret", "AllowedOrigins": ["https://a.example"]},
		"api": {"PublicURL": "https://news.example/", "Root": "/api/", "Taxonomy": "byline"},
		"cache": {"Enabled": true, "TTLSeconds": 60},
		"log": {"Level": "debug", "MaxBackups": 9}
	}`)

	c, err := load(path)
	require.NoError(t, err)
	assert.Equal(t, "9000", c.AppPort)
	assert.Equal(t, "s3cret", c.JWTSecret)
	assert.Equal(t, []string{"https://a.example"}, c.AllowedOrigins)
	assert.Equal(t, "byline", c.Taxonomy)
	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 60, c.CacheTTLSeconds)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 9, c.LogMaxBackups)
	assert.Equal(t, "https://news.example/api", c.APIBase())
}

func TestEnvOverridesJSON(t *testing.T) {
	path := writeJSON(t, `{"app": {"AppPort": "9000"}, "cache": {"Enabled": true}}`)
	t.Setenv("APP_PORT", "7000")
	t.Setenv("API_NAMESPACE", "bylines/v2")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CACHE_TTL_SECONDS", "15")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	c, err := load(path)
	require.NoError(t, err)
	assert.Equal(t, "7000", c.AppPort)
	assert.Equal(t, "bylines/v2", c.Namespace)
	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 15, c.CacheTTLSeconds)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.AllowedOrigins)
}

func TestInvalidInputsFail(t *testing.T) {
	_, err := load(writeJSON(t, `{not json`))
	assert.Error(t, err)

	t.Setenv("REDIS_PORT", "abc")
	_, err = load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "REDIS_PORT")
}
