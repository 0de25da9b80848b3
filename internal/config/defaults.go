package config

// Default configuration values.
const (
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = LogFormatText
	DefaultEncoding      = "utf-8"
	DefaultMaxFileSize   = "256MiB"
	DefaultCommentMarker = "#"
	DefaultOutputFormat  = OutputTable
)
