package configs

// Config holds all configuration for the application.
type Config struct {
	Log       LogConfig       `mapstructure:"log" validate:"required"`
	Store     StoreConfig     `mapstructure:"store" validate:"required"`
	Ingestion IngestionConfig `mapstructure:"ingestion" validate:"required"`
	Report    ReportConfig    `mapstructure:"report"`
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

const (
	StoreDriverMongo  = "mongo"
	StoreDriverSQLite = "sqlite"
)

// StoreConfig selects and configures the interval store backend.
type StoreConfig struct {
	Driver             string `mapstructure:"driver" validate:"required,oneof=mongo sqlite"`
	URI                string `mapstructure:"uri" validate:"required_if=Driver mongo,mongouri"`
	Database           string `mapstructure:"database" validate:"required_if=Driver mongo"`
	IntervalCollection string `mapstructure:"interval_collection" validate:"required_if=Driver mongo"`
	EventCollection    string `mapstructure:"event_collection" validate:"required_if=Driver mongo"`
	SQLitePath         string `mapstructure:"sqlite_path" validate:"required_if=Driver sqlite"`
	OperationTimeout   int    `mapstructure:"operation_timeout" validate:"required,min=1"` // seconds, per store call
}

// IngestionConfig holds event log ingestion configuration.
type IngestionConfig struct {
	LogPath    string `mapstructure:"log_path" validate:"required"`
	ArchiveDir string `mapstructure:"archive_dir"` // empty disables archiving of consumed logs
}

// ReportConfig holds report configuration.
type ReportConfig struct {
	WindowSeconds int64 `mapstructure:"window_seconds" validate:"min=0"`
}

// ServerConfig holds server-related configuration (serve command only).
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}
