package commands

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/gencomp/gencomp-cli/internal/cli"
	"github.com/gencomp/gencomp-cli/internal/logging"
	"github.com/gencomp/gencomp-cli/pkg/files"
	"github.com/gencomp/gencomp-cli/pkg/models"
	"github.com/gencomp/gencomp-cli/pkg/studio"
	"github.com/gencomp/gencomp-cli/pkg/tui"
)

type globalOptions struct {
	configPath string
	quiet      bool
	noColor    bool
	logLevel   string
	yes        bool
}

var (
	globals globalOptions
	cmdCtx  *cli.CommandContext
)

// NewRootCommand builds the gencomp command tree
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gencomp",
		Short: "Generate UI components from a plain-language description",
		Long: `GenComp turns a description of a UI component into a single HTML document
using Google Gemini. Running it without a subcommand opens the interactive TUI,
where you can pick a framework, generate, inspect the source, preview it in a
browser and copy or save the result.

The API key is read from GEMINI_API_KEY (or GOOGLE_API_KEY).`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE:              runTUI,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&globals.configPath, "config", "", "Config file (default .gencomp/config.yaml, then the user config)")
	flags.BoolVarP(&globals.quiet, "quiet", "q", false, "Suppress informational output")
	flags.BoolVar(&globals.noColor, "no-color", false, "Disable colored output")
	flags.StringVar(&globals.logLevel, "log-level", "", "Log level: debug, info, warn or error (default silent)")
	flags.BoolVarP(&globals.yes, "yes", "y", false, "Answer yes to every confirmation")

	cmd.AddCommand(
		NewGenerateCommand(),
		NewPreviewCommand(),
		NewFrameworksCommand(),
		NewInitCommand(),
		NewVersionCommand(version),
	)

	return cmd
}

// setup applies the global flags and starts logging. Settings errors are
// reported by the commands that need settings.
func setup(cmd *cobra.Command, _ []string) error {
	cli.SetGlobalFlags(globals.quiet, globals.noColor, globals.yes)
	if globals.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	ctx, err := cli.NewCommandContext(globals.configPath)
	if err != nil {
		return err
	}
	cmdCtx = ctx

	level := globals.logLevel
	var logFile string
	if settings, err := ctx.LoadSettings(); err == nil {
		if level == "" {
			level = settings.Logging.Level
		}
		logFile = settings.Logging.File
	}

	// The TUI owns the terminal, so its logs go to a file
	if logFile == "" && cmd == cmd.Root() && (level != "" || os.Getenv(logging.LogLevelEnvVar) != "") {
		logFile = filepath.Join(ctx.Root, files.GencompDir, files.LogsDir, "gencomp.log")
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	return logging.Initialize(level, logFile)
}

// requireSettings returns the active settings or the reason they could not be read
func requireSettings() (*models.Settings, error) {
	if cmdCtx == nil {
		ctx, err := cli.NewCommandContext(globals.configPath)
		if err != nil {
			return nil, err
		}
		cmdCtx = ctx
	}
	settings, err := cmdCtx.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	settings, err := requireSettings()
	if err != nil {
		return err
	}
	defer logging.Sync()

	session := studio.New(studio.Options{
		Generator:       newClient(settings),
		APIKey:          files.APIKey(),
		Framework:       settings.Generation.Framework,
		Clipboard:       clipboardWriter,
		ExportDir:       settings.Output.ExportPath,
		DefaultFilename: settings.Output.DefaultFilename,
		Logger:          logging.Named("studio"),
	})

	app := tui.NewApp(session, settings)
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}
