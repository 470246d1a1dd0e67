package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "local", cfg.Server.Env)
	assert.Equal(t, "blog.db", cfg.DB.LocalURI)
	assert.Equal(t, 5, cfg.Blog.NoOfPosts)
	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 30*24*time.Hour, cfg.Session.Remember)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9000"
  env: local
  secret: sss
db:
  local_uri: test.db
blog:
  name: Example
  no_of_posts: 7
admin:
  user: boss
  password: pw
redis:
  addr: 127.0.0.1:6379
  cache_ttl_seconds: 30
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "test.db", cfg.DSN())
	assert.Equal(t, "Example", cfg.Blog.Name)
	assert.Equal(t, 7, cfg.Blog.NoOfPosts)
	assert.Equal(t, "boss", cfg.Admin.User)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
}

func TestLoadRejectsBadConfigs(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("prod without prod_uri", func(t *testing.T) {
		path := writeConfig(t, "server:\n  env: prod\n")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("unknown env", func(t *testing.T) {
		path := writeConfig(t, "server:\n  env: staging\n")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("page size floor", func(t *testing.T) {
		path := writeConfig(t, "blog:\n  no_of_posts: 0\n")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.Blog.NoOfPosts)
	})
}

func TestProdSelectsProdURI(t *testing.T) {
	path := writeConfig(t, `
server:
  env: prod
db:
  prod_uri: "host=db user=u dbname=blog"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "host=db user=u dbname=blog", cfg.DSN())
}
