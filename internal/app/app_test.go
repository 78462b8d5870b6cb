package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"job-portal/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr(" 8080 ")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	addr, err = ListenAddr(":9000")
	require.NoError(t, err)
	assert.Equal(t, ":9000", addr)

	_, err = ListenAddr("")
	assert.Error(t, err)
}

func testConfig() config.Config {
	return config.Config{
		App:     config.AppConfig{AppName: "job-portal", Environment: "test", HTTPPort: "0"},
		Storage: config.StorageConfig{Backend: config.StorageMemory},
	}
}

func TestBootstrap_MemoryBackend(t *testing.T) {
	a, cleanup, err := Bootstrap(context.Background(), testConfig(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	resp, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/api/v1/candidates", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestBootstrap_RedisBackend(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.Storage.Backend = config.StorageRedis
	cfg.Redis = config.RedisConfig{Host: mr.Host(), Port: mr.Port(), KeyPrefix: "jobportal:"}

	c, err := NewContainer(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	_, err = c.Portal.CompanyLogin(context.Background(), "company@techcorp.com", "demo123")
	require.NoError(t, err)
	assert.True(t, mr.Exists("jobportal:currentCompany"))
}

func TestBootstrap_SQLiteBackendSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.Storage.Backend = config.StorageSQLite
	cfg.SQLite.Path = filepath.Join(t.TempDir(), "portal.sqlite")

	c, err := NewContainer(ctx, cfg, nil)
	require.NoError(t, err)
	_, err = c.Portal.CompanyLogin(ctx, "hr@innovative.com", "demo123")
	require.NoError(t, err)
	require.NoError(t, c.Close())

	c, err = NewContainer(ctx, cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	co, err := c.Portal.CurrentCompany(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Innovative Industries", co.Name)
}

func TestNewContainer_RedisUnavailable(t *testing.T) {
	cfg := testConfig()
	cfg.Storage.Backend = config.StorageRedis
	cfg.Redis = config.RedisConfig{Host: "127.0.0.1", Port: "1"}

	_, err := NewContainer(context.Background(), cfg, nil)
	assert.Error(t, err)
}
