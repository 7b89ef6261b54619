package cli

import (
	"fmt"
	"os"

	"github.com/gencomp/gencomp-cli/pkg/files"
	"github.com/gencomp/gencomp-cli/pkg/models"
)

// CommandContext carries the project root and the resolved settings
type CommandContext struct {
	Root         string
	ConfigPath   string
	Settings     *models.Settings
	SettingsPath string
}

// NewCommandContext creates a command context rooted at the working directory.
// configPath is the --config flag value and may be empty.
func NewCommandContext(configPath string) (*CommandContext, error) {
	root, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine current directory: %w", err)
	}
	return &CommandContext{
		Root:       root,
		ConfigPath: configPath,
	}, nil
}

// LoadSettings reads the active settings once. A missing file yields the
// defaults; an invalid one is an error.
func (c *CommandContext) LoadSettings() (*models.Settings, error) {
	if c.Settings != nil {
		return c.Settings, nil
	}

	settings, path, err := files.LoadSettings(c.ConfigPath, c.Root)
	if err != nil {
		return nil, err
	}

	c.Settings = settings
	c.SettingsPath = path
	return settings, nil
}

// APIKey returns the configured Gemini key, or a ConfigError
func (c *CommandContext) APIKey() (string, error) {
	key := files.APIKey()
	if key == "" {
		return "", models.NewConfigError(fmt.Sprintf("%s is not set", files.APIKeyEnvVar))
	}
	return key, nil
}
