package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// parseDotEnv reads the .env file at path and maps its variables onto a
// [StructuredConfig] using the same tags as the process environment.
//
// The process environment is left untouched. A missing file yields a nil
// config and no error.
func parseDotEnv(path string) (*StructuredConfig, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading dotenv file: %w", err)
	}

	cfg := &StructuredConfig{}
	if err = parseEnvMap(cfg, vars); err != nil {
		return nil, err
	}

	return cfg, nil
}
