package types

// RunMode is the deployment mode the binary runs in.
type RunMode string

const (
	ModeLocal RunMode = "local"
	ModeDemo  RunMode = "demo"
)

// LogLevel controls the verbosity of the zap logger.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

func (l LogLevel) String() string {
	return string(l)
}
