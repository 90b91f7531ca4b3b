package configs

import (
	"fmt"
	"os"
	"strings"

	"code-time/internal/shared/validators"

	"github.com/spf13/viper"
)

const envPrefix = "CODETIME"

// LoadConfig reads configuration from file, applies CODETIME_* environment overrides and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	// CODETIME_STORE_URI overrides store.uri, and so on
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Ingestion.LogPath = os.ExpandEnv(cfg.Ingestion.LogPath)
	cfg.Ingestion.ArchiveDir = os.ExpandEnv(cfg.Ingestion.ArchiveDir)
	cfg.Store.SQLitePath = os.ExpandEnv(cfg.Store.SQLitePath)

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")

	v.SetDefault("store.driver", StoreDriverMongo)
	v.SetDefault("store.uri", "mongodb://localhost:27017")
	v.SetDefault("store.database", "code_time")
	v.SetDefault("store.interval_collection", "time")
	v.SetDefault("store.event_collection", "events")
	v.SetDefault("store.sqlite_path", "")
	v.SetDefault("store.operation_timeout", 10)

	v.SetDefault("ingestion.log_path", "${HOME}/.time")
	v.SetDefault("ingestion.archive_dir", "")

	v.SetDefault("report.window_seconds", 24*3600)

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_header_timeout", 5)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 60)
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "store.driver")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.Store.Driver" -> "store.driver")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			// Skip "Config" prefix, convert to lowercase with dots
			fieldPath := strings.ToLower(strings.Join(parts[1:], "."))
			field = fieldPath
		}
	}

	var msg string
	switch tag {
	case "required", "required_if":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	case validators.TagMongoURI:
		msg = fmt.Sprintf("%s (expected mongodb:// or mongodb+srv:// uri)", field)
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
