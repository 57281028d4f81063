// Package envfile loads key=value configuration files.
package envfile

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds values loaded from a key=value file. Comments, blank
// lines, surrounding quotes, and "export " prefixes are handled by the
// parser.
type Config struct {
	path string
	vars map[string]string
}

// Load reads the file at path. A missing file is its own error so
// callers can tell absent configuration apart from a parse failure.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return &Config{path: path, vars: vars}, nil
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Lookup returns the value for key and whether it was present.
func (c *Config) Lookup(key string) (string, bool) {
	v, ok := c.vars[key]
	return v, ok
}

// Get returns the value for key, or fallback when unset.
func (c *Config) Get(key, fallback string) string {
	if v, ok := c.vars[key]; ok {
		return v
	}
	return fallback
}

// repoPathKeys, newest first. REPO_PFAD_LIN is the key older config
// files used; it keeps working.
var repoPathKeys = []string{"REPO_PATH", "REPO_PFAD_LIN"}

// RepoPath resolves the configured repository path.
func (c *Config) RepoPath() (string, error) {
	for _, key := range repoPathKeys {
		if v, ok := c.vars[key]; ok && v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("%s: no REPO_PATH entry", c.path)
}
