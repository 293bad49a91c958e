package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// MissingCredentialError is returned when the bearer token variable is unset
// or empty.
type MissingCredentialError struct {
	EnvVar string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s environment variable not set.", e.EnvVar)
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// Variables already set are left alone. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ResolveToken reads the bearer token from envVar.
func ResolveToken(envVar string) (string, error) {
	token := os.Getenv(envVar)
	if token == "" {
		return "", &MissingCredentialError{EnvVar: envVar}
	}
	return token, nil
}
