package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrAlreadyRunning  ErrorCode = "already_running"

	// Configuration errors
	ErrInvalidConfig  ErrorCode = "invalid_configuration"
	ErrReadConfig     ErrorCode = "read_config_failed"
	ErrInvalidPeriod  ErrorCode = "invalid_period"
	ErrInvalidTimeout ErrorCode = "invalid_timeout"

	// Initialization errors
	ErrInitFailed     ErrorCode = "initialization_failed"
	ErrShutdownFailed ErrorCode = "shutdown_failed"

	// Capture errors
	ErrSourceArmed      ErrorCode = "source_already_armed"
	ErrBufferIncomplete ErrorCode = "capture_buffer_incomplete"

	// Session errors
	ErrSessionTimeout ErrorCode = "session_timeout"
	ErrTriggerClosed  ErrorCode = "trigger_input_closed"
	ErrMainLoop       ErrorCode = "main_loop_failed"

	// Stats errors
	ErrInvalidStats       ErrorCode = "invalid_stats"
	ErrInvalidStatsConfig ErrorCode = "invalid_stats_configuration"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:           "Internal error occurred",
	ErrInvalidArgument:    "Invalid argument provided",
	ErrAlreadyRunning:     "Another instance is already running",
	ErrInvalidConfig:      "Invalid configuration",
	ErrReadConfig:         "Failed to read configuration",
	ErrInvalidPeriod:      "Invalid tick period value",
	ErrInvalidTimeout:     "Invalid session timeout value",
	ErrInitFailed:         "Initialization failed",
	ErrShutdownFailed:     "Shutdown failed",
	ErrSourceArmed:        "Tick source is already armed",
	ErrBufferIncomplete:   "Capture buffer is not complete",
	ErrSessionTimeout:     "Capture session timed out",
	ErrTriggerClosed:      "Trigger input stream closed",
	ErrMainLoop:           "Error in main loop",
	ErrInvalidStats:       "Invalid stats snapshot",
	ErrInvalidStatsConfig: "Invalid stats configuration",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
