// Package config provides the viper-backed runtime configuration.
package config

import "github.com/spf13/viper"

// Config is the fully resolved runtime configuration.
type Config struct {
	Database   DatabaseConfig
	Categories CategoriesConfig
	Logging    LoggingConfig
	Server     ServerConfig
}

// DatabaseConfig locates the SQLite database file.
type DatabaseConfig struct {
	Path string
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr    string
	Origins []string
}

// CategoriesConfig locates the categories resource file.
type CategoriesConfig struct {
	Path string
}

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	Level  string
	Format string
}

// SetDefaults registers the default value for every configuration key.
func SetDefaults() {
	viper.SetDefault("database.path", "~/.local/share/tally/tally.db")
	viper.SetDefault("server.addr", ":8000")
	viper.SetDefault("server.origins", []string{"*"})
	viper.SetDefault("categories.path", "~/.config/tally/categories.json")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
}

// Load resolves the current configuration from viper, expanding file paths.
func Load() Config {
	return Config{
		Database: DatabaseConfig{
			Path: ExpandPath(viper.GetString("database.path")),
		},
		Server: ServerConfig{
			Addr:    viper.GetString("server.addr"),
			Origins: viper.GetStringSlice("server.origins"),
		},
		Categories: CategoriesConfig{
			Path: ExpandPath(viper.GetString("categories.path")),
		},
		Logging: LoggingConfig{
			Level:  viper.GetString("logging.level"),
			Format: viper.GetString("logging.format"),
		},
	}
}
