package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gencomp/gencomp-cli/pkg/models"
)

// API key environment variables, checked in order
const (
	APIKeyEnvVar         = "GEMINI_API_KEY"
	FallbackAPIKeyEnvVar = "GOOGLE_API_KEY"
)

// ReadSettings loads settings from path, layering the file over the defaults.
// A missing file yields the defaults.
func ReadSettings(path string) (*models.Settings, error) {
	settings := models.DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	problems, err := ValidateSettingsYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(problems) > 0 {
		return nil, models.NewConfigError(fmt.Sprintf("invalid settings in %s: %s", path, strings.Join(problems, "; ")))
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML %s: %w", path, err)
	}

	return settings, nil
}

// WriteSettings saves settings as YAML, creating parent directories
func WriteSettings(path string, settings *models.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for settings: %w", err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}

	return nil
}

// ResolveSettingsPath picks the config file to load: an explicit path wins,
// then the project file under root, then the per-user file. It returns the
// project path when none exist so callers have somewhere to write.
func ResolveSettingsPath(explicit, root string) string {
	if explicit != "" {
		return explicit
	}

	project := ProjectSettingsPath(root)
	if _, err := os.Stat(project); err == nil {
		return project
	}

	if user := UserSettingsPath(); user != "" {
		if _, err := os.Stat(user); err == nil {
			return user
		}
	}

	return project
}

// LoadSettings resolves and reads the active settings
func LoadSettings(explicit, root string) (*models.Settings, string, error) {
	path := ResolveSettingsPath(explicit, root)
	settings, err := ReadSettings(path)
	if err != nil {
		return nil, path, err
	}
	return settings, path, nil
}

// APIKey returns the Gemini API key from the environment, or ""
func APIKey() string {
	for _, name := range []string{APIKeyEnvVar, FallbackAPIKeyEnvVar} {
		if key := strings.TrimSpace(os.Getenv(name)); key != "" {
			return key
		}
	}
	return ""
}
