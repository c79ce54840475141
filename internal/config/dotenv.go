package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

const (
	envFileVariable = "ENV_FILE"
	defaultEnvFile  = ".env"
)

// loadDotEnv reads KEY=VALUE pairs from path (".env" when empty) into the
// process environment. Variables that are already set are left untouched.
// A missing default file is not an error; a missing explicit file is.
func loadDotEnv(path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading env file %q: %w", path, err)
}
