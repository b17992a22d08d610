package utils

import (
	"os"
	"path/filepath"
)

const configFileName = "gradient-shine.json"

// ConfigSearchPaths lists the places a settings file is looked for, in order.
func ConfigSearchPaths() []string {
	paths := []string{configFileName}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "gradient-shine", "config.json"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "gradient-shine", "config.json"))
	}
	return paths
}

// ResolveConfigPath returns the explicit path when given, otherwise the first
// existing entry of ConfigSearchPaths. An empty result means "use defaults".
func ResolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}

	for _, p := range ConfigSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			Debug("Config: found settings at %s", p)
			return p
		}
	}
	return ""
}

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}
