// Package config loads xlsx2csv settings from the environment and an optional
// YAML file. The CLI takes no flags, so this is the only way to tune it.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. XLSX2CSV_LOG_LEVEL.
const EnvPrefix = "XLSX2CSV"

// Config holds runtime settings.
type Config struct {
	LogLevel  string
	LogFormat string
	Password  string
	// File is the config file that was read, or "" when none was found.
	File string
}

// Load reads xlsx2csv.yaml from the given directories (default: "." and
// ~/.config/xlsx2csv) and overlays XLSX2CSV_* environment variables.
// A missing config file is not an error.
func Load(dirs ...string) (Config, error) {
	v := viper.New()
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("password", "")

	v.SetConfigName("xlsx2csv")
	v.SetConfigType("yaml")
	if len(dirs) == 0 {
		dirs = defaultDirs()
	}
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	return Config{
		LogLevel:  v.GetString("log.level"),
		LogFormat: v.GetString("log.format"),
		Password:  v.GetString("password"),
		File:      v.ConfigFileUsed(),
	}, nil
}

func defaultDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "xlsx2csv"))
	}
	return dirs
}
