package bootstrap

import "time"

// File system permissions
const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// Session log files
const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is how many older session files survive cleanup
	LogFileRetentionCount = 9
)

// Log messages for startup
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting stackgrid"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgCatalogMissing      = "No item catalog configured, every item uses default metadata"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// Error messages for startup
const (
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	ErrMsgFailedLoadCatalog   = "failed to load item catalog"
)

// Shutdown
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgInventoriesDropped   = "Dropping live inventories"

	// ShutdownTimeout bounds how long in-flight requests get to finish
	ShutdownTimeout = 10 * time.Second
)
