package env

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file. An empty path
// falls back to ENV_PATH; with neither set nothing is loaded. Variables
// already present in the environment win over the file.
func LoadDotEnv(path string) error {
	envPath := path
	if envPath == "" {
		envPath = os.Getenv("ENV_PATH")
	}
	if envPath == "" {
		slog.Debug("Skipping .env, no path given and ENV_PATH is not set")
		return nil
	}

	if err := godotenv.Load(envPath); err != nil {
		return fmt.Errorf("load %s: %w", envPath, err)
	}
	slog.Debug("Loaded .env", "path", envPath)
	return nil
}
