package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del proceso.
// Todo viene de env vars con defaults razonables (no hay archivo de config).
type Config struct {
	Port      string
	DBDSN     string
	LogLevel  string
	LogFormat string
	AppName   string
}

// Load lee env vars vía viper con defaults.
// DB_DSN vacío => store in-memory (modo dev).
func Load() Config {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("db_dsn", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("app_name", "medication-tracker")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// bind explícito: sin prefijo, mismas keys que usa el resto del stack
	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("db_dsn", "DB_DSN")
	_ = v.BindEnv("log_level", "LOG_LEVEL")
	_ = v.BindEnv("log_format", "LOG_FORMAT")
	_ = v.BindEnv("app_name", "APP_NAME")

	return Config{
		Port:      v.GetString("port"),
		DBDSN:     v.GetString("db_dsn"),
		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		AppName:   v.GetString("app_name"),
	}
}
