package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultLogLevel  = "warn"
	defaultLogFormat = "console"
)

// Logging contains configuration for log output.
type Logging struct {
	Level  string
	Format string
}

// Config encapsulates the resolved settings for one organizer run.
type Config struct {
	// TargetDir is the absolute path of the directory to organize.
	TargetDir string
	// DryRun reports planned moves without mutating the filesystem.
	DryRun  bool
	Logging Logging
}

// Default returns a Config populated with repository defaults. The target
// directory defaults to the process working directory.
func Default() Config {
	return Config{
		TargetDir: ".",
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// Resolve builds a validated Config from CLI inputs. An empty target selects
// the current working directory.
func Resolve(target string, dryRun bool, logLevel, logFormat string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(target) != "" {
		cfg.TargetDir = target
	}
	cfg.DryRun = dryRun
	if strings.TrimSpace(logLevel) != "" {
		cfg.Logging.Level = logLevel
	}
	if strings.TrimSpace(logFormat) != "" {
		cfg.Logging.Format = logFormat
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() error {
	var err error
	if c.TargetDir, err = expandPath(c.TargetDir); err != nil {
		return fmt.Errorf("target directory: %w", err)
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	return nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
