package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrAlreadyRunning  ErrorCode = "already_running"

	// Configuration errors
	ErrInvalidConfig   ErrorCode = "invalid_configuration"
	ErrReadConfig      ErrorCode = "read_config_failed"
	ErrBindFlags       ErrorCode = "bind_flags_failed"
	ErrUnknownModule   ErrorCode = "unknown_module"
	ErrDuplicateModule ErrorCode = "duplicate_module"
	ErrInvalidTick     ErrorCode = "invalid_tick"
	ErrInvalidDisplay  ErrorCode = "invalid_display_mode"
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Sampling errors. A transient miss skips one cycle; a permanent
	// failure terminates the module's loop for good.
	ErrSampleTransient ErrorCode = "sample_unavailable"
	ErrSourceGone      ErrorCode = "sample_source_gone"
	ErrMalformedData   ErrorCode = "sample_data_malformed"

	// Initialization errors
	ErrInitFailed ErrorCode = "initialization_failed"
	ErrInitEngine ErrorCode = "init_engine_failed"
	ErrMainLoop   ErrorCode = "main_loop_failed"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:        "Internal error occurred",
	ErrInvalidArgument: "Invalid argument provided",
	ErrAlreadyRunning:  "Another instance is already running",
	ErrInvalidConfig:   "Invalid configuration",
	ErrReadConfig:      "Failed to read config file",
	ErrBindFlags:       "Failed to bind flags",
	ErrUnknownModule:   "Unknown module name",
	ErrDuplicateModule: "Module listed more than once",
	ErrInvalidTick:     "Tick interval must be positive",
	ErrInvalidDisplay:  "Invalid display mode",
	ErrInvalidLogLevel: "Invalid log level",
	ErrSampleTransient: "Sample unavailable this cycle",
	ErrSourceGone:      "Sample source no longer exists",
	ErrMalformedData:   "Sample source returned malformed data",
	ErrInitFailed:      "Initialization failed",
	ErrInitEngine:      "Failed to initialize engine",
	ErrMainLoop:        "Error in main loop",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
