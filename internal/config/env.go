package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/ytget/gdrive-downloader/internal/link"
	"github.com/ytget/gdrive-downloader/internal/logger"
)

// Environment variable names
const (
	EnvEndpoint = "GDRIVE_DL_ENDPOINT"
	EnvLogFile  = "GDRIVE_DL_LOG_FILE"
	EnvLogLevel = "GDRIVE_DL_LOG_LEVEL"
)

// Defaults for process settings
const (
	DefaultEnvFile  = ".env"
	DefaultLogFile  = "logs.txt"
	DefaultLogLevel = logger.LevelInfo
)

// Env holds process settings shared by the GUI and the CLI
type Env struct {
	Endpoint string
	LogFile  string
	LogLevel string
}

// LoadEnv reads files into the process environment (missing files are
// skipped, already set variables win) and returns the resulting settings.
// LogLevel is returned as written; logger.OpenFile validates it once any
// command-line override has been applied.
func LoadEnv(files ...string) (Env, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Env{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	return Env{
		Endpoint: getenv(EnvEndpoint, link.DefaultEndpoint),
		LogFile:  getenv(EnvLogFile, DefaultLogFile),
		LogLevel: getenv(EnvLogLevel, DefaultLogLevel),
	}, nil
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
