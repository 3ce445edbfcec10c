package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/stackgrid/internal/config"
)

func restoreDefaultLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func testConfig() *config.Config {
	return &config.Config{
		Port:                0,
		LogLevel:            "debug",
		LogFormat:           "text",
		Environment:         "test",
		ServiceName:         "stackgrid",
		Version:             "test",
		InventoryRows:       2,
		InventoryCols:       2,
		StoreMaxInventories: 4,
		StoreIdleTTL:        time.Minute,
		RateLimitRequests:   100,
		RateLimitWindow:     time.Minute,
	}
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2024-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0600))

	cleanupLogs(dir, 9)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), LogFileExtension) {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, 9)
	assert.NotContains(t, logs, "session_2024-01-01_00-00-00.log")
	assert.Contains(t, logs, "session_2024-01-12_00-00-00.log")
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestCleanupLogs_MissingDir(t *testing.T) {
	assert.NotPanics(t, func() { cleanupLogs(filepath.Join(t.TempDir(), "absent"), 9) })
}

func TestSetupLogger(t *testing.T) {
	t.Run("stdout only", func(t *testing.T) {
		restoreDefaultLogger(t)
		var stdout bytes.Buffer

		f, err := setupLogger(testConfig(), &stdout, time.Now())

		require.NoError(t, err)
		assert.Nil(t, f)
		assert.Contains(t, stdout.String(), LogMsgLoggingInitialized)
		assert.Contains(t, stdout.String(), LogMsgConfigurationLoaded)
	})

	t.Run("session file", func(t *testing.T) {
		restoreDefaultLogger(t)
		cfg := testConfig()
		cfg.LogDir = filepath.Join(t.TempDir(), "logs")
		now := time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)
		var stdout bytes.Buffer

		f, err := setupLogger(cfg, &stdout, now)
		require.NoError(t, err)
		require.NotNil(t, f)
		t.Cleanup(func() { f.Close() })

		slog.Info("hello from test")

		content, err := os.ReadFile(filepath.Join(cfg.LogDir, "session_2024-03-04_05-06-07.log"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "hello from test")
		assert.Contains(t, stdout.String(), "hello from test")
	})

	t.Run("environment preset fills unset level and format", func(t *testing.T) {
		restoreDefaultLogger(t)
		cfg := testConfig()
		cfg.Environment = "prod"
		cfg.LogLevel = ""
		cfg.LogFormat = ""
		var stdout bytes.Buffer

		_, err := setupLogger(cfg, &stdout, time.Now())
		require.NoError(t, err)

		out := stdout.String()
		assert.True(t, strings.HasPrefix(out, "{"), "production preset logs JSON")
		assert.Contains(t, out, LogMsgStarting)
		assert.NotContains(t, out, LogMsgConfigurationLoaded, "debug lines are dropped at info")
	})

	t.Run("log dir is a file", func(t *testing.T) {
		restoreDefaultLogger(t)
		cfg := testConfig()
		cfg.LogDir = filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(cfg.LogDir, nil, 0600))

		f, err := setupLogger(cfg, &bytes.Buffer{}, time.Now())

		assert.Nil(t, f)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFailedCreateLogsDir)
	})
}

func TestBuildApp(t *testing.T) {
	t.Run("with catalog", func(t *testing.T) {
		cfg := testConfig()
		cfg.ItemsPath = filepath.Join("..", "..", config.ConfigPathItems)

		app, err := BuildApp(cfg, prometheus.NewRegistry())

		require.NoError(t, err)
		assert.Positive(t, app.Catalog.Len())
		_, ok := app.Catalog.Lookup("wood")
		assert.True(t, ok)

		rec := httptest.NewRecorder()
		app.Server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/inventories", strings.NewReader(`{}`)))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, 1, app.Store.Len())
	})

	t.Run("without catalog", func(t *testing.T) {
		app, err := BuildApp(testConfig(), prometheus.NewRegistry())

		require.NoError(t, err)
		assert.Equal(t, 0, app.Catalog.Len())
	})

	t.Run("bad catalog path", func(t *testing.T) {
		cfg := testConfig()
		cfg.ItemsPath = filepath.Join(t.TempDir(), "missing.json")

		app, err := BuildApp(cfg, prometheus.NewRegistry())

		assert.Nil(t, app)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFailedLoadCatalog)
	})
}

func TestGracefulShutdown(t *testing.T) {
	restoreDefaultLogger(t)
	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))

	app, err := BuildApp(testConfig(), prometheus.NewRegistry())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	GracefulShutdown(ctx, ShutdownComponents{Server: app.Server, Inventories: app.Store.Len})

	assert.Contains(t, buf.String(), LogMsgInventoriesDropped)
	assert.Contains(t, buf.String(), LogMsgServerStopped)
}
