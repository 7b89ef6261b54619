package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gencomp/gencomp-cli/internal/cli"
	"github.com/gencomp/gencomp-cli/pkg/files"
	"github.com/gencomp/gencomp-cli/pkg/models"
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default .gencomp/config.yaml",
		Long:  `Creates the .gencomp folder in the current directory with a default config file.`,
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	root := cmdCtx.Root
	cli.PrintInfo("Initializing GenComp project in %s...", root)

	if err := files.InitProjectStructure(root); err != nil {
		return fmt.Errorf("failed to initialize project structure: %w", err)
	}

	path := cmdCtx.ConfigPath
	if path == "" {
		path = files.ProjectSettingsPath(root)
	}

	if _, err := os.Stat(path); err == nil {
		ok, err := cli.Confirm(fmt.Sprintf("%s already exists. Replace it with the defaults?", path), false)
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			cli.PrintInfo("Kept existing %s", path)
			return nil
		}
	}

	if err := files.WriteSettings(path, models.DefaultSettings()); err != nil {
		return err
	}

	cli.PrintSuccess("Created %s", path)
	if files.APIKey() == "" {
		cli.PrintWarning("%s is not set; generation stays disabled until it is", files.APIKeyEnvVar)
	}
	cli.PrintInfo("Run 'gencomp' to start the interactive TUI.")
	return nil
}
