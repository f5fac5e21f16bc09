package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/tbeaudouin05/checkenv/api/checkenv"
)

// ErrNoDotEnv is returned by FindDotEnv when no .env file exists up to the root.
var ErrNoDotEnv = errors.New("no .env file found")

// AppConfig holds the global bootstrap configuration
var AppConfig *Config

// Config holds the bootstrap configuration
type Config struct {
	// Path of the YAML manifest declaring the variables to check
	ManifestPath string
	// Directory where .env discovery starts
	DotEnvDir string
	// Log level for the global logger
	LogLevel string
}

// LoadConfig loads bootstrap configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{}

	vars := []struct {
		field *string
		env   string
		def   string
	}{
		{&config.ManifestPath, "CHECKENV_MANIFEST", "checkenv.yaml"},
		{&config.DotEnvDir, "CHECKENV_DOTENV_DIR", ""},
		{&config.LogLevel, "LOG_LEVEL", ""},
	}
	for _, v := range vars {
		*v.field = os.Getenv(v.env)
		if *v.field == "" {
			*v.field = v.def
		}
	}

	if config.DotEnvDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		config.DotEnvDir = wd
	}
	return config, nil
}

// FindDotEnv looks for a .env file in dir and its parent directories.
func FindDotEnv(dir string) (string, error) {
	currentDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	for {
		envPath := filepath.Join(currentDir, ".env")
		if fi, err := os.Stat(envPath); err == nil && !fi.IsDir() {
			return envPath, nil
		}
		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			return "", ErrNoDotEnv
		}
		currentDir = parent
	}
}

// LoadSnapshot returns the process environment layered over the nearest .env
// file found from dir upwards. Process values win, as with godotenv.Load, but
// the process environment itself is left untouched.
func LoadSnapshot(dir string) (checkenv.Env, error) {
	env := checkenv.Environ()

	envPath, err := FindDotEnv(dir)
	if errors.Is(err, ErrNoDotEnv) {
		return env, nil
	}
	if err != nil {
		return nil, err
	}

	fileVars, err := godotenv.Read(envPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	for k, v := range fileVars {
		if _, ok := env[k]; !ok {
			env[k] = v
		}
	}
	return env, nil
}
