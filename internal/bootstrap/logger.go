package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/stackgrid/internal/config"
	"github.com/osse101/stackgrid/internal/logger"
)

// SetupLogger initializes the application logger. With cfg.LogDir set, output
// also goes to a timestamped session file in that directory and older session
// files beyond the retention count are removed. The returned file is nil when
// logging to stdout only; otherwise the caller must close it.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	return setupLogger(cfg, os.Stdout, time.Now())
}

func setupLogger(cfg *config.Config, stdout io.Writer, now time.Time) (*os.File, error) {
	// Unset LOG_LEVEL and LOG_FORMAT fall back to the environment's preset
	loggerConfig := logger.PresetFor(cfg.Environment).
		WithOverrides(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version)

	var (
		out     = stdout
		logFile *os.File
	)
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
		}

		cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, now.Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
		}
		logFile = f
		out = io.MultiWriter(stdout, f)
	}

	logger.InitLoggerWithWriter(loggerConfig, out)

	slog.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel(), "log_dir", cfg.LogDir)
	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"log_level", loggerConfig.Level,
		"log_format", loggerConfig.Format,
		"version", cfg.Version)
	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"items_path", cfg.ItemsPath,
		"grid", fmt.Sprintf("%dx%d", cfg.InventoryRows, cfg.InventoryCols),
		"store_max_inventories", cfg.StoreMaxInventories,
		"store_idle_ttl", cfg.StoreIdleTTL,
		"auth_enabled", cfg.APIKey != "")

	return logFile, nil
}

// cleanupLogs removes the oldest session files so that at most keep remain.
// Session file names sort chronologically.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			names = append(names, entry.Name())
		}
	}
	if len(names) <= keep {
		return
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", LogMsgFailedDeleteOldLog, name, err)
		}
	}
}
