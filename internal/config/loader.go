package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "projtrack.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "projtrack.yml"

// EnvFileName is the dotenv file read from the config directory.
const EnvFileName = ".env"

// maxUpwardSearchLevels limits how far up the directory tree FindProjectRoot looks.
const maxUpwardSearchLevels = 10

// FindConfigFile returns the config file in dir, preferring projtrack.yaml.
// Returns empty string if neither exists.
func FindConfigFile(dir string) string {
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// FindProjectRoot walks up from startDir to the first directory containing
// a projtrack config file. Returns empty string if not found.
func FindProjectRoot(startDir string) string {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if FindConfigFile(dir) != "" {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return ""
		}
		dir = parent
	}
	return ""
}

// ReadEnvFile reads dir/.env and returns the PROJTRACK_ entries with the
// prefix stripped and keys lowercased (PROJTRACK_DUE_SOON_DAYS -> due_soon_days).
// A missing file yields an empty map. The process environment is not modified.
func ReadEnvFile(dir string) (map[string]interface{}, error) {
	out := make(map[string]interface{})

	values, err := godotenv.Read(filepath.Join(dir, EnvFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return out, nil
		}
		return nil, err
	}

	for key, val := range values {
		if !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		out[EnvKey(key)] = val
	}
	return out, nil
}

// EnvKey maps an environment variable name to its config key.
func EnvKey(name string) string {
	return strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
}
