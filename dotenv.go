package apiconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// defaultEnvFile is the dotenv file name used when no ENV_FILE setting or
// environment variable overrides it.
const defaultEnvFile = ".env"

// loadDotenv resolves the dotenv file during construction. The path comes
// from the ENV_FILE setting via the usual detect rule (default ".env"). An
// existing path is loaded directly; otherwise the file is searched for
// upward from the working directory, the result — possibly empty — is
// recorded under ENV_FILE, and the file is loaded when found.
func (s *Store) loadDotenv() error {
	detected, err := s.Detect("ENV_FILE", WithDefault(defaultEnvFile))
	if err != nil {
		return err
	}

	path, ok := detected.(string)
	if !ok {
		return fmt.Errorf("ENV_FILE must be a string, got %T", detected)
	}

	if _, err := os.Stat(path); err == nil {
		return s.overlayDotenv(path)
	}

	found, err := findDotenv(path)
	if err != nil {
		return err
	}

	if err := s.Set("ENV_FILE", found); err != nil {
		return err
	}

	if found == "" {
		s.log.Debug().Str("name", path).Msg("no dotenv file found")
		return nil
	}

	return s.overlayDotenv(found)
}

// overlayDotenv reads the dotenv file at path and merges its values under
// the environment snapshot. Variables already present in the snapshot win
// over the file.
func (s *Store) overlayDotenv(path string) error {
	values, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("error reading dotenv file %q: %w", path, err)
	}

	for key, value := range values {
		if _, ok := s.env[key]; !ok {
			s.env[key] = value
		}
	}

	s.log.Debug().Str("path", path).Int("values", len(values)).Msg("dotenv file loaded")

	return nil
}

// findDotenv walks upward from the working directory looking for a file with
// the base name of name. Returns the full path of the first match, or ""
// when no directory up to the filesystem root contains one.
func findDotenv(name string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("error resolving working directory: %w", err)
	}

	base := filepath.Base(name)
	for {
		candidate := filepath.Join(dir, base)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
