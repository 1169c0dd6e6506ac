package logger

import (
	"os"
	"strconv"
	"strings"
)

// Config holds logging configuration. The zero value is not useful; start
// from DefaultConfig.
type Config struct {
	Level          string `yaml:"level"`
	ConsoleEnabled bool   `yaml:"console_enabled"`
	ConsoleFormat  string `yaml:"console_format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// Environment variables consulted by ApplyEnv.
const (
	EnvLevel  = "LVMAZE_LOG_LEVEL"
	EnvFormat = "LVMAZE_LOG_FORMAT"
	EnvFile   = "LVMAZE_LOG_FILE"
)

// DefaultConfig logs INFO and above as text to stderr, with file output off.
func DefaultConfig() Config {
	return Config{
		Level:          "INFO",
		ConsoleEnabled: true,
		ConsoleFormat:  FormatText,
		FileEnabled:    false,
		FilePath:       "logs/lvmaze.log",
		FileFormat:     FormatText,
		FileMaxSizeMB:  10,
		FileMaxBackups: 5,
		FileMaxAgeDays: 30,
	}
}

// ApplyEnv applies LVMAZE_LOG_* overrides. LVMAZE_LOG_FORMAT sets both
// console and file formats; a non-empty LVMAZE_LOG_FILE enables file output
// at that path, and "false" or "off" disables it.
func (c Config) ApplyEnv() Config {
	if v := os.Getenv(EnvLevel); v != "" {
		c.Level = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.ConsoleFormat = v
		c.FileFormat = v
	}
	if v := os.Getenv(EnvFile); v != "" {
		if on, err := strconv.ParseBool(v); err == nil {
			c.FileEnabled = on
		} else if strings.EqualFold(v, "off") {
			c.FileEnabled = false
		} else {
			c.FileEnabled = true
			c.FilePath = v
		}
	}
	return c
}
