package files

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	GencompDir   = ".gencomp"
	SettingsFile = "config.yaml"
	LogsDir      = "logs"
)

// InitProjectStructure creates the .gencomp directory under root
func InitProjectStructure(root string) error {
	dirs := []string{
		filepath.Join(root, GencompDir),
		filepath.Join(root, GencompDir, LogsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// ProjectSettingsPath returns the project-level config path under root
func ProjectSettingsPath(root string) string {
	return filepath.Join(root, GencompDir, SettingsFile)
}

// UserSettingsPath returns the per-user config path, or "" when the
// platform has no config directory
func UserSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gencomp", SettingsFile)
}

// WriteFile writes content to a file
func WriteFile(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// ReadFile reads a whole file as a string
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(data), nil
}
