package config

// Config agrupa toda la configuración de la aplicación.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
}

type ServerConfig struct {
	Port      int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel  string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=text json"`
}

type DatabaseConfig struct {
	// URL vacía = store in-memory (dev/tests).
	URL string `mapstructure:"url" validate:"omitempty"`
}
