package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"fjacquet/stmt-ledger/internal/logging"
)

// LoadEnv loads a .env file from the working directory or its parent, if
// one exists, and returns the file it loaded. Variables already set in the
// environment are not overwritten.
func LoadEnv(logger logging.Logger) string {
	for _, candidate := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := godotenv.Load(candidate); err != nil {
			logger.WithError(err).Warn("Error loading .env file", logging.F(logging.FieldFile, candidate))
			return ""
		}
		logger.Debug("Loaded environment variables", logging.F(logging.FieldFile, candidate))
		return candidate
	}
	return ""
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
